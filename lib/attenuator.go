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

import "math"

// SynthesizeAttenuator dispatches to the requested resistive-pad
// topology: symmetric Tee/Pi or an asymmetric L-pad.
func SynthesizeAttenuator(spec AttenuatorSpec) (*Schematic, error) {
	if spec.AttenuationDB <= 0 || spec.Z0 <= 0 {
		return nil, NewConfigurationError("attenuator synthesis requires a positive attenuation and reference impedance")
	}
	switch spec.Topology {
	case TopoTeeAttenuator:
		return synthesizeTeeAttenuator(spec)
	case TopoPiAttenuator:
		return synthesizePiAttenuator(spec)
	case TopoLPad:
		return synthesizeLPad(spec)
	default:
		return nil, NewConfigurationError("unsupported attenuator topology %q", spec.Topology)
	}
}

// synthesizeTeeAttenuator builds a symmetric Tee resistive pad between
// equal terminations (L = 10^(Atten/10)).
func synthesizeTeeAttenuator(spec AttenuatorSpec) (*Schematic, error) {
	l := math.Pow(10, spec.AttenuationDB/10)
	z := spec.Z0
	r2 := 2 * z * math.Sqrt(l) / (l - 1)
	r1 := z*(l+1)/(l-1) - r2
	r3 := r1

	sch := NewSchematic()
	pIn := sch.AddComponent(KindPort, 0, NewPoint(0, 0))
	rSeries1 := addResistor(sch, NewPoint(StrideDefault, 0), r1, 90)
	sch.AddWire(pIn.ID, 0, rSeries1.ID, 0)

	node := sch.AddNode(NewPoint(2*StrideDefault, 0), true)
	sch.AddWire(rSeries1.ID, 1, node.ID, 0)

	rShunt := addResistor(sch, NewPoint(2*StrideDefault, ShuntOffsetY), r2, 0)
	sch.AddWire(node.ID, 0, rShunt.ID, 0)
	gnd := sch.AddComponent(KindGround, 0, NewPoint(2*StrideDefault, GroundOffsetY))
	sch.AddWire(rShunt.ID, 1, gnd.ID, 0)

	rSeries2 := addResistor(sch, NewPoint(3*StrideDefault, 0), r3, 90)
	sch.AddWire(node.ID, 0, rSeries2.ID, 0)

	pOut := sch.AddComponent(KindPort, 180, NewPoint(4*StrideDefault, 0))
	sch.AddWire(rSeries2.ID, 1, pOut.ID, 0)

	return sch, sch.Validate()
}

// synthesizePiAttenuator builds the dual Pi resistive pad: two shunt
// resistors to ground flanking a single series resistor, using the
// standard Pi/Tee dual of the same attenuation ratio L.
func synthesizePiAttenuator(spec AttenuatorSpec) (*Schematic, error) {
	l := math.Pow(10, spec.AttenuationDB/10)
	z := spec.Z0
	sqrtL := math.Sqrt(l)
	rShuntVal := z * (sqrtL + 1) / (sqrtL - 1)
	rSeriesVal := z * (l - 1) / (2 * sqrtL)

	sch := NewSchematic()
	pIn := sch.AddComponent(KindPort, 0, NewPoint(0, 0))

	node1 := sch.AddNode(NewPoint(StrideDefault, 0), true)
	sch.AddWire(pIn.ID, 0, node1.ID, 0)
	rShunt1 := addResistor(sch, NewPoint(StrideDefault, ShuntOffsetY), rShuntVal, 0)
	sch.AddWire(node1.ID, 0, rShunt1.ID, 0)
	gnd1 := sch.AddComponent(KindGround, 0, NewPoint(StrideDefault, GroundOffsetY))
	sch.AddWire(rShunt1.ID, 1, gnd1.ID, 0)

	rSeries := addResistor(sch, NewPoint(2*StrideDefault, 0), rSeriesVal, 90)
	sch.AddWire(node1.ID, 0, rSeries.ID, 0)

	node2 := sch.AddNode(NewPoint(3*StrideDefault, 0), true)
	sch.AddWire(rSeries.ID, 1, node2.ID, 0)
	rShunt2 := addResistor(sch, NewPoint(3*StrideDefault, ShuntOffsetY), rShuntVal, 0)
	sch.AddWire(node2.ID, 0, rShunt2.ID, 0)
	gnd2 := sch.AddComponent(KindGround, 0, NewPoint(3*StrideDefault, GroundOffsetY))
	sch.AddWire(rShunt2.ID, 1, gnd2.ID, 0)

	pOut := sch.AddComponent(KindPort, 180, NewPoint(4*StrideDefault, 0))
	sch.AddWire(node2.ID, 0, pOut.ID, 0)

	return sch, sch.Validate()
}

// synthesizeLPad builds the asymmetric L-pad (first-series variant):
// a series resistor followed by a shunt resistor, presenting Zin at
// the input but an attenuation-dependent, generally unequal Zout.
func synthesizeLPad(spec AttenuatorSpec) (*Schematic, error) {
	l := math.Pow(10, -spec.AttenuationDB/10)
	z := spec.Z0
	sqrtL := math.Sqrt(l)
	r1 := -z * (l - 1) / (sqrtL + 1)
	r2 := -z * (l + sqrtL) / (l - 1)

	sch := NewSchematic()
	pIn := sch.AddComponent(KindPort, 0, NewPoint(0, 0))
	rSeries := addResistor(sch, NewPoint(StrideDefault, 0), r1, 90)
	sch.AddWire(pIn.ID, 0, rSeries.ID, 0)

	node := sch.AddNode(NewPoint(2*StrideDefault, 0), true)
	sch.AddWire(rSeries.ID, 1, node.ID, 0)

	rShunt := addResistor(sch, NewPoint(2*StrideDefault, ShuntOffsetY), r2, 0)
	sch.AddWire(node.ID, 0, rShunt.ID, 0)
	gnd := sch.AddComponent(KindGround, 0, NewPoint(2*StrideDefault, GroundOffsetY))
	sch.AddWire(rShunt.ID, 1, gnd.ID, 0)

	pOut := sch.AddComponent(KindPort, 180, NewPoint(3*StrideDefault, 0))
	sch.AddWire(node.ID, 0, pOut.ID, 0)

	return sch, sch.Validate()
}
