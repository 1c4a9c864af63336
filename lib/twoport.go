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

import "math/cmplx"

// TwoPort holds the S-parameter matrix of a two-port device, referenced
// to a single impedance Z0, and is embedded into a matching-network
// schematic by the two-port composition mode.
type TwoPort struct {
	Z0 float64
	S  [2][2]complex128
}

// SourceMatchImpedance returns the impedance the input matching network
// must present to this two-port's input port for a conjugate match,
// i.e. Z0·(1+S11*)/(1-S11*).
func (tp TwoPort) SourceMatchImpedance() complex128 {
	return FromReflection(cmplx.Conj(tp.S[0][0]), complex(tp.Z0, 0))
}

// LoadMatchImpedance returns the impedance the output matching network
// must present to this two-port's output port for a conjugate match.
func (tp TwoPort) LoadMatchImpedance() complex128 {
	return FromReflection(cmplx.Conj(tp.S[1][1]), complex(tp.Z0, 0))
}

// InsertSParameterBlock appends a device's S-parameters as a single
// schematic component exposing two two-terminal ports (pins 0-1 input,
// 2-3 output).
func InsertSParameterBlock(sch *Schematic, pos Point, tp TwoPort) *Component {
	c := sch.AddComponent(KindSParameterBlock, 0, pos)
	c.SetParam("Z0", RenderParam(tp.Z0, "Ohm"))
	c.SetParam("S11", complexString(tp.S[0][0]))
	c.SetParam("S12", complexString(tp.S[0][1]))
	c.SetParam("S21", complexString(tp.S[1][0]))
	c.SetParam("S22", complexString(tp.S[1][1]))
	return c
}

func complexString(z complex128) string {
	return RenderParam(real(z), "") + (func() string {
		if imag(z) >= 0 {
			return "+" + RenderParam(imag(z), "j")
		}
		return RenderParam(imag(z), "j")
	})()
}
