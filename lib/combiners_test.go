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

import (
	"math"
	"testing"
)

// TestSynthesizeWilkinson2WayEqualSplit checks an equal split at
// f=1GHz, Z0=50Ω: exactly 3 TransmissionLine components each
// c/(4e9)=74.948mm long, one 100Ω resistor, and 3 ports.
func TestSynthesizeWilkinson2WayEqualSplit(t *testing.T) {
	spec := CombinerSpec{
		Topology: TopoWilkinson2Way,
		Freq:     1e9,
		Z0:       50,
	}
	sch, err := SynthesizeCombiner(spec)
	if err != nil {
		t.Fatalf("SynthesizeCombiner: %v", err)
	}
	if err := sch.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if n := countKind(sch, KindTransmissionLine); n != 3 {
		t.Errorf("expected 3 transmission lines, got %d", n)
	}
	if n := countKind(sch, KindResistor); n != 1 {
		t.Errorf("expected 1 isolation resistor, got %d", n)
	}
	if n := countKind(sch, KindPort); n != 3 {
		t.Errorf("expected 3 ports, got %d", n)
	}
	for _, c := range sch.Components {
		if c.Kind != KindTransmissionLine {
			continue
		}
		wantLen := C / (4 * 1e9)
		if math.Abs(wantLen-74.948e-3) > 1e-4 {
			t.Fatalf("sanity: quarter wavelength at 1GHz should be ~74.948mm, got %v mm", wantLen*1e3)
		}
		if got := c.Param("L"); got != "74.948 mm" {
			t.Errorf("%s: L = %q, want 74.948 mm", c.ID, got)
		}
	}
	var riso *Component
	for _, c := range sch.Components {
		if c.Kind == KindResistor {
			riso = c
		}
	}
	if riso == nil {
		t.Fatal("no isolation resistor found")
	}
	if v := riso.Param("R"); v != "100.000 Ohm" {
		t.Errorf("isolation resistor R = %q, want 100.000 Ohm", v)
	}
}

func TestSynthesizeMultistageWilkinson(t *testing.T) {
	spec := CombinerSpec{
		Topology: TopoMultistageWilkinson,
		Freq:     1e9,
		Z0:       50,
		NStages:  3,
		Alpha:    0.01,
	}
	sch, err := SynthesizeCombiner(spec)
	if err != nil {
		t.Fatalf("SynthesizeCombiner: %v", err)
	}
	if n := countKind(sch, KindTransmissionLine); n != 6 {
		t.Errorf("expected 6 transmission lines (2 per stage), got %d", n)
	}
	if n := countKind(sch, KindResistor); n != 3 {
		t.Errorf("expected 3 isolation resistors, got %d", n)
	}
	if err := sch.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestSynthesizeMultistageWilkinsonLumped(t *testing.T) {
	spec := CombinerSpec{
		Topology:    TopoMultistageWilkinson,
		Freq:        1e9,
		Z0:          50,
		NStages:     2,
		Alpha:       0.01,
		Realization: RealizationLumped,
	}
	sch, err := SynthesizeCombiner(spec)
	if err != nil {
		t.Fatalf("SynthesizeCombiner: %v", err)
	}
	if n := countKind(sch, KindTransmissionLine); n != 0 {
		t.Errorf("lumped realization should emit no transmission lines, got %d", n)
	}
	if n := countKind(sch, KindInductor) + countKind(sch, KindCapacitor); n != 4 {
		t.Errorf("expected 4 lumped line elements (2 per stage), got %d", n)
	}
	if err := sch.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestSynthesizeMultistageWilkinsonRejectsBadStageCount(t *testing.T) {
	spec := CombinerSpec{Topology: TopoMultistageWilkinson, Freq: 1e9, Z0: 50, NStages: 0}
	if _, err := SynthesizeCombiner(spec); err == nil {
		t.Fatal("expected error for NStages < 1")
	}
}

func TestSynthesizeTJunction(t *testing.T) {
	spec := CombinerSpec{Topology: TopoTJunction, Freq: 2e9, Z0: 50}
	sch, err := SynthesizeCombiner(spec)
	if err != nil {
		t.Fatalf("SynthesizeCombiner: %v", err)
	}
	if n := countKind(sch, KindPort); n != 3 {
		t.Errorf("expected 3 ports, got %d", n)
	}
	if err := sch.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestSynthesizeBranchline(t *testing.T) {
	spec := CombinerSpec{Topology: TopoBranchline, Freq: 2e9, Z0: 50}
	sch, err := SynthesizeCombiner(spec)
	if err != nil {
		t.Fatalf("SynthesizeCombiner: %v", err)
	}
	if n := countKind(sch, KindPort); n != 3 {
		t.Errorf("expected 3 visible ports (fourth is internally terminated), got %d", n)
	}
	if n := countKind(sch, KindResistor); n != 1 {
		t.Errorf("expected 1 isolation resistor, got %d", n)
	}
	if err := sch.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestSynthesizeDoubleBoxBranchline(t *testing.T) {
	spec := CombinerSpec{Topology: TopoDoubleBoxBranchline, Freq: 2e9, Z0: 50}
	sch, err := SynthesizeCombiner(spec)
	if err != nil {
		t.Fatalf("SynthesizeCombiner: %v", err)
	}
	if n := countKind(sch, KindPort); n != 3 {
		t.Errorf("expected 3 visible ports, got %d", n)
	}
	if err := sch.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestSynthesizeBagley(t *testing.T) {
	spec := CombinerSpec{Topology: TopoBagley, Freq: 1e9, Z0: 50, NOutputs: 5}
	sch, err := SynthesizeCombiner(spec)
	if err != nil {
		t.Fatalf("SynthesizeCombiner: %v", err)
	}
	if n := countKind(sch, KindPort); n != 6 {
		t.Errorf("expected 6 ports (1+5), got %d", n)
	}
	if err := sch.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestSynthesizeBagleyRejectsEvenNOutputs(t *testing.T) {
	spec := CombinerSpec{Topology: TopoBagley, Freq: 1e9, Z0: 50, NOutputs: 4}
	if _, err := SynthesizeCombiner(spec); err == nil {
		t.Fatal("expected error for even N_out")
	}
}

func TestSynthesizeGysel(t *testing.T) {
	spec := CombinerSpec{Topology: TopoGysel, Freq: 1e9, Z0: 50}
	sch, err := SynthesizeCombiner(spec)
	if err != nil {
		t.Fatalf("SynthesizeCombiner: %v", err)
	}
	if n := countKind(sch, KindPort); n != 3 {
		t.Errorf("expected 3 ports, got %d", n)
	}
	if n := countKind(sch, KindGround); n != 2 {
		t.Errorf("expected 2 grounded loads, got %d", n)
	}
	if err := sch.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestSynthesizeLimEom(t *testing.T) {
	spec := CombinerSpec{
		Topology: TopoLimEom,
		Freq:     1e9,
		Z0:       50,
		PowerDB:  []float64{0, 0, 0},
	}
	sch, err := SynthesizeCombiner(spec)
	if err != nil {
		t.Fatalf("SynthesizeCombiner: %v", err)
	}
	if n := countKind(sch, KindPort); n != 4 {
		t.Errorf("expected 4 ports (1+3), got %d", n)
	}
	if err := sch.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestSynthesizeLimEomRequiresThreeRatios(t *testing.T) {
	spec := CombinerSpec{Topology: TopoLimEom, Freq: 1e9, Z0: 50}
	if _, err := SynthesizeCombiner(spec); err == nil {
		t.Fatal("expected error when power-ratio entries are missing")
	}
}

func TestSynthesizeWilkinson3WayImproved(t *testing.T) {
	spec := CombinerSpec{Topology: TopoWilkinson3WayImproved, Freq: 1e9, Z0: 50}
	sch, err := SynthesizeCombiner(spec)
	if err != nil {
		t.Fatalf("SynthesizeCombiner: %v", err)
	}
	if n := countKind(sch, KindPort); n != 4 {
		t.Errorf("expected 4 ports (1+3), got %d", n)
	}
	if n := countKind(sch, KindResistor); n != 2 {
		t.Errorf("expected 2 isolation resistors, got %d", n)
	}
	if err := sch.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestSynthesizeRecombinant3Way(t *testing.T) {
	spec := CombinerSpec{Topology: TopoRecombinant3Way, Freq: 1e9, Z0: 50}
	sch, err := SynthesizeCombiner(spec)
	if err != nil {
		t.Fatalf("SynthesizeCombiner: %v", err)
	}
	if n := countKind(sch, KindPort); n != 4 {
		t.Errorf("expected 4 ports (1+3), got %d", n)
	}
	if err := sch.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestSynthesizeCombinerRejectsBadFrequency(t *testing.T) {
	spec := CombinerSpec{Topology: TopoWilkinson2Way, Freq: 0, Z0: 50}
	if _, err := SynthesizeCombiner(spec); err == nil {
		t.Fatal("expected error for non-positive frequency")
	}
}
