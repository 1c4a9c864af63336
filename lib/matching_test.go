//----------------------------------------------------------------------
// This file is part of antgen.
// Copyright (C) 2024-present Bernd Fix >Y<,  DO3YQ
//
// antgen is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License,
// or (at your option) any later version.
//
// antgen is distributed in the hope that it will be useful, but
// WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
// Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.
//
// SPDX-License-Identifier: AGPL3.0-or-later
//----------------------------------------------------------------------


package lib

import "testing"

func TestSynthesizeLSection(t *testing.T) {
	spec := MatchingSpec{
		Topology: TopoLSection,
		Freq:     1e9,
		Zs:       50,
		Zl:       complex(25, 15),
	}
	sch, err := SynthesizeMatching(spec)
	if err != nil {
		t.Fatalf("SynthesizeMatching: %v", err)
	}
	if err := sch.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if n := countKind(sch, KindPort); n != 2 {
		t.Errorf("expected 2 ports, got %d", n)
	}
}

func TestSynthesizeSingleStub(t *testing.T) {
	spec := MatchingSpec{
		Topology: TopoSingleStub,
		Freq:     1e9,
		Zs:       50,
		Zl:       complex(75, 25),
		OpenStub: true,
	}
	sch, err := SynthesizeMatching(spec)
	if err != nil {
		t.Fatalf("SynthesizeMatching: %v", err)
	}
	if n := countKind(sch, KindOpenStub); n != 1 {
		t.Errorf("expected 1 open stub, got %d", n)
	}
	if err := sch.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestSynthesizeSingleStubShortCircuit(t *testing.T) {
	spec := MatchingSpec{
		Topology: TopoSingleStub,
		Freq:     1e9,
		Zs:       50,
		Zl:       complex(30, -40),
		OpenStub: false,
	}
	sch, err := SynthesizeMatching(spec)
	if err != nil {
		t.Fatalf("SynthesizeMatching: %v", err)
	}
	if n := countKind(sch, KindShortStub); n != 1 {
		t.Errorf("expected 1 short stub, got %d", n)
	}
}

func TestSynthesizeDoubleStub(t *testing.T) {
	spec := MatchingSpec{
		Topology: TopoDoubleStub,
		Freq:     1e9,
		Zs:       50,
		Zl:       complex(60, 20),
		OpenStub: true,
	}
	sch, err := SynthesizeMatching(spec)
	if err != nil {
		t.Fatalf("SynthesizeMatching: %v", err)
	}
	if n := countKind(sch, KindOpenStub); n != 2 {
		t.Errorf("expected 2 open stubs, got %d", n)
	}
	if n := countKind(sch, KindTransmissionLine); n != 1 {
		t.Errorf("expected 1 connecting line, got %d", n)
	}
}

func TestSynthesizeDoubleStubRejectsUnmatchableRegion(t *testing.T) {
	// a very high load conductance falls in the unmatchable region for d=lambda/8
	spec := MatchingSpec{
		Topology: TopoDoubleStub,
		Freq:     1e9,
		Zs:       50,
		Zl:       complex(1, 0),
	}
	if _, err := SynthesizeMatching(spec); err == nil {
		t.Fatal("expected unmatchable-region rejection")
	}
}

func TestSynthesizeMultiSectionQWBinomial(t *testing.T) {
	spec := MatchingSpec{
		Topology:  TopoMultiSectionQW,
		Freq:      1e9,
		Zs:        50,
		Zl:        complex(200, 0),
		Sections:  3,
		Weighting: WeightBinomial,
	}
	sch, err := SynthesizeMatching(spec)
	if err != nil {
		t.Fatalf("SynthesizeMatching: %v", err)
	}
	if n := countKind(sch, KindTransmissionLine); n != 3 {
		t.Errorf("expected 3 line sections, got %d", n)
	}
	if err := sch.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestSynthesizeMultiSectionQWChebyshev(t *testing.T) {
	spec := MatchingSpec{
		Topology:  TopoMultiSectionQW,
		Freq:      1e9,
		Zs:        50,
		Zl:        complex(200, 0),
		Sections:  5,
		Weighting: WeightChebyshev,
	}
	sch, err := SynthesizeMatching(spec)
	if err != nil {
		t.Fatalf("SynthesizeMatching: %v", err)
	}
	if n := countKind(sch, KindTransmissionLine); n != 5 {
		t.Errorf("expected 5 line sections, got %d", n)
	}
}

func TestSynthesizeMultiSectionQWRejectsUntabulatedChebyshevOrder(t *testing.T) {
	spec := MatchingSpec{
		Topology:  TopoMultiSectionQW,
		Freq:      1e9,
		Zs:        50,
		Zl:        complex(200, 0),
		Sections:  9,
		Weighting: WeightChebyshev,
	}
	if _, err := SynthesizeMatching(spec); err == nil {
		t.Fatal("expected error for untabulated Chebyshev section count")
	}
}

func TestSynthesizeCascadedLC(t *testing.T) {
	spec := MatchingSpec{
		Topology: TopoCascadedLC,
		Freq:     1e9,
		Zs:       50,
		Zl:       complex(200, 0),
		Sections: 3,
	}
	sch, err := SynthesizeMatching(spec)
	if err != nil {
		t.Fatalf("SynthesizeMatching: %v", err)
	}
	if n := countKind(sch, KindGround); n != 3 {
		t.Errorf("expected 3 shunt-to-ground stages, got %d", n)
	}
	if err := sch.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestSynthesizeLambda8Lambda4(t *testing.T) {
	spec := MatchingSpec{
		Topology: TopoLambda8Lambda4,
		Freq:     1e9,
		Zs:       50,
		Zl:       complex(75, 40),
	}
	sch, err := SynthesizeMatching(spec)
	if err != nil {
		t.Fatalf("SynthesizeMatching: %v", err)
	}
	if n := countKind(sch, KindTransmissionLine); n != 2 {
		t.Errorf("expected 2 line sections, got %d", n)
	}
}

func TestSynthesizeLambda8Lambda4RejectsDegenerateLoad(t *testing.T) {
	// |Zl| == Xl only when Zl has a zero real part; here Zl = j40
	spec := MatchingSpec{
		Topology: TopoLambda8Lambda4,
		Freq:     1e9,
		Zs:       50,
		Zl:       complex(0, 40),
	}
	if _, err := SynthesizeMatching(spec); err == nil {
		t.Fatal("expected rejection of a degenerate reactive-only load")
	}
}

// TestSynthesizeTwoPortMatching exercises the two-port composition mode:
// an L-section IMN and OMN synthesized against an active device's
// conjugate-match impedances, spliced around an inserted
// SParameterBlock, with both external ports wired end to end.
func TestSynthesizeTwoPortMatching(t *testing.T) {
	spec := MatchingSpec{
		TwoPort: true,
		Zs:      50,
		S: [2][2]complex128{
			{complex(0.1, 0.05), complex(0.02, 0)},
			{complex(3.0, 0.5), complex(0.15, -0.05)},
		},
		Input: &MatchingSpec{
			Topology: TopoLSection,
			Freq:     2e9,
			Zs:       50,
		},
		Output: &MatchingSpec{
			Topology: TopoLSection,
			Freq:     2e9,
			Zs:       50,
		},
	}
	sch, err := SynthesizeMatching(spec)
	if err != nil {
		t.Fatalf("SynthesizeMatching: %v", err)
	}
	if n := countKind(sch, KindSParameterBlock); n != 1 {
		t.Errorf("expected 1 SParameterBlock, got %d", n)
	}
	if n := countKind(sch, KindPort); n != 2 {
		t.Errorf("expected 2 external ports, got %d", n)
	}
	if err := sch.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	// both external ports must be wired to something
	for _, p := range sch.Ports() {
		wired := false
		for _, w := range sch.Wires {
			if w.From.ID == p.ID || w.To.ID == p.ID {
				wired = true
				break
			}
		}
		if !wired {
			t.Errorf("port %s is not wired to anything", p.ID)
		}
	}
}

func TestSynthesizeTwoPortMatchingRequiresBothSubSpecs(t *testing.T) {
	spec := MatchingSpec{
		TwoPort: true,
		Zs:      50,
		Input:   &MatchingSpec{Topology: TopoLSection, Freq: 2e9, Zs: 50},
	}
	if _, err := SynthesizeMatching(spec); err == nil {
		t.Fatal("expected error when Output sub-spec is missing")
	}
}
