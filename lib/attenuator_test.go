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

func TestSynthesizeTeeAttenuator(t *testing.T) {
	spec := AttenuatorSpec{Topology: TopoTeeAttenuator, AttenuationDB: 10, Z0: 50}
	sch, err := SynthesizeAttenuator(spec)
	if err != nil {
		t.Fatalf("SynthesizeAttenuator: %v", err)
	}
	if n := countKind(sch, KindResistor); n != 3 {
		t.Errorf("expected 3 resistors, got %d", n)
	}
	if err := sch.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestSynthesizePiAttenuator(t *testing.T) {
	spec := AttenuatorSpec{Topology: TopoPiAttenuator, AttenuationDB: 6, Z0: 50}
	sch, err := SynthesizeAttenuator(spec)
	if err != nil {
		t.Fatalf("SynthesizeAttenuator: %v", err)
	}
	if n := countKind(sch, KindResistor); n != 3 {
		t.Errorf("expected 3 resistors, got %d", n)
	}
	if n := countKind(sch, KindGround); n != 2 {
		t.Errorf("expected 2 shunt grounds, got %d", n)
	}
	if err := sch.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestSynthesizeLPad(t *testing.T) {
	spec := AttenuatorSpec{Topology: TopoLPad, AttenuationDB: 3, Z0: 50}
	sch, err := SynthesizeAttenuator(spec)
	if err != nil {
		t.Fatalf("SynthesizeAttenuator: %v", err)
	}
	if n := countKind(sch, KindResistor); n != 2 {
		t.Errorf("expected 2 resistors, got %d", n)
	}
	if err := sch.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestSynthesizeAttenuatorRejectsNonPositiveAttenuation(t *testing.T) {
	spec := AttenuatorSpec{Topology: TopoTeeAttenuator, AttenuationDB: 0, Z0: 50}
	if _, err := SynthesizeAttenuator(spec); err == nil {
		t.Fatal("expected error for zero attenuation")
	}
}
