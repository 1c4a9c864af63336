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

// TestSynthesizeQuarterWaveStubFilter checks N=3, f0=3GHz, BW=300MHz,
// Z0=50Ω: 4 through lines and 3 short stubs, each stub a quarter
// wavelength of 24.98mm.
func TestSynthesizeQuarterWaveStubFilter(t *testing.T) {
	spec := FilterSpec{
		Class:     ClassBandpass,
		Response:  ResponseButterworth,
		Order:     3,
		Fc:        3e9,
		Bandwidth: 300e6,
		Zs:        50,
	}
	sch, err := SynthesizeQuarterWaveStubFilter(spec)
	if err != nil {
		t.Fatalf("SynthesizeQuarterWaveStubFilter: %v", err)
	}
	if n := countKind(sch, KindTransmissionLine); n != 4 {
		t.Errorf("expected 4 through-line sections, got %d", n)
	}
	if n := countKind(sch, KindShortStub); n != 3 {
		t.Errorf("expected 3 short stubs, got %d", n)
	}

	wantLen := C / (4 * 3e9)
	if math.Abs(wantLen-24.98e-3) > 1e-4 {
		t.Fatalf("sanity: quarter wavelength at 3GHz should be ~24.98mm, got %v mm", wantLen*1e3)
	}
	for _, c := range sch.Components {
		if c.Kind == KindShortStub && c.Param("L") != "24.983 mm" {
			t.Errorf("%s: L = %q, want 24.983 mm", c.ID, c.Param("L"))
		}
	}
}

func TestSynthesizeQuarterWaveStubFilterLumped(t *testing.T) {
	spec := FilterSpec{
		Class:       ClassBandpass,
		Response:    ResponseButterworth,
		Order:       3,
		Fc:          3e9,
		Bandwidth:   300e6,
		Zs:          50,
		Realization: RealizationLumped,
	}
	sch, err := SynthesizeQuarterWaveStubFilter(spec)
	if err != nil {
		t.Fatalf("SynthesizeQuarterWaveStubFilter: %v", err)
	}
	if n := countKind(sch, KindTransmissionLine) + countKind(sch, KindShortStub); n != 0 {
		t.Errorf("lumped realization should emit no distributed elements, got %d", n)
	}
	if n := countKind(sch, KindInductor); n != 4+3 {
		t.Errorf("expected 4 line inductors + 3 stub-resonator inductors, got %d", n)
	}
	if n := countKind(sch, KindCapacitor); n != 3 {
		t.Errorf("expected 3 stub-resonator capacitors, got %d", n)
	}
	if err := sch.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestSynthesizeSteppedImpedanceFilter(t *testing.T) {
	spec := FilterSpec{
		Class:    ClassLowpass,
		Response: ResponseButterworth,
		Order:    3,
		Fc:       1e9,
		Zs:       50,
		MinLineZ: 20,
		MaxLineZ: 120,
		IsCLC:    true,
	}
	sch, err := SynthesizeSteppedImpedanceFilter(spec)
	if err != nil {
		t.Fatalf("SynthesizeSteppedImpedanceFilter: %v", err)
	}
	if n := countKind(sch, KindTransmissionLine); n != 3 {
		t.Errorf("expected 3 line sections, got %d", n)
	}
	if err := sch.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestSynthesizeSteppedImpedanceRejectsNonLP(t *testing.T) {
	if _, err := SynthesizeSteppedImpedanceFilter(FilterSpec{Class: ClassBandpass}); err == nil {
		t.Fatal("expected error for non-lowpass class")
	}
}

func TestSynthesizeEndCoupledFilter(t *testing.T) {
	spec := FilterSpec{
		Class:     ClassBandpass,
		Response:  ResponseButterworth,
		Order:     3,
		Fc:        2e9,
		Bandwidth: 100e6,
		Zs:        50,
	}
	sch, err := SynthesizeEndCoupledFilter(spec)
	if err != nil {
		t.Fatalf("SynthesizeEndCoupledFilter: %v", err)
	}
	if n := countKind(sch, KindCapacitor); n != spec.Order+1 {
		t.Errorf("expected %d coupling capacitors, got %d", spec.Order+1, n)
	}
	if err := sch.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestSynthesizeCapacitivelyCoupledShuntFilter(t *testing.T) {
	spec := FilterSpec{
		Class:     ClassBandpass,
		Response:  ResponseButterworth,
		Order:     3,
		Fc:        2e9,
		Bandwidth: 100e6,
		Zs:        50,
	}
	sch, err := SynthesizeCapacitivelyCoupledShuntFilter(spec)
	if err != nil {
		t.Fatalf("SynthesizeCapacitivelyCoupledShuntFilter: %v", err)
	}
	if err := sch.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestSynthesizeCoupledLineFilter(t *testing.T) {
	spec := FilterSpec{
		Class:     ClassBandpass,
		Response:  ResponseButterworth,
		Order:     3,
		Fc:        2e9,
		Bandwidth: 100e6,
		Zs:        50,
	}
	sch, err := SynthesizeCoupledLineFilter(spec)
	if err != nil {
		t.Fatalf("SynthesizeCoupledLineFilter: %v", err)
	}
	if n := countKind(sch, KindTransmissionLine); n != spec.Order+1 {
		t.Errorf("expected %d coupled-line sections, got %d", spec.Order+1, n)
	}
	if err := sch.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}
