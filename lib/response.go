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
	"math/cmplx"
)

// ABCD is a two-port chain (transmission) matrix; cascading two sections
// is matrix multiplication in signal-flow order.
type ABCD [2][2]complex128

// Cascade chains a after the receiver (source-to-load order).
func (a ABCD) Cascade(b ABCD) ABCD {
	return ABCD{
		{a[0][0]*b[0][0] + a[0][1]*b[1][0], a[0][0]*b[0][1] + a[0][1]*b[1][1]},
		{a[1][0]*b[0][0] + a[1][1]*b[1][0], a[1][0]*b[0][1] + a[1][1]*b[1][1]},
	}
}

// SeriesImpedanceABCD is the chain matrix of a single series impedance z.
func SeriesImpedanceABCD(z complex128) ABCD {
	return ABCD{{1, z}, {0, 1}}
}

// ShuntAdmittanceABCD is the chain matrix of a single shunt admittance y.
func ShuntAdmittanceABCD(y complex128) ABCD {
	return ABCD{{1, 0}, {y, 1}}
}

// ToS converts a chain matrix terminated in real source and load
// impedances z01, z02 to its input reflection and forward transmission
// coefficients.
func (abcd ABCD) ToS(z01, z02 float64) (s11, s21 complex128) {
	a, b, c, d := abcd[0][0], abcd[0][1], abcd[1][0], abcd[1][1]
	zz01, zz02 := complex(z01, 0), complex(z02, 0)
	denom := a*zz02 + b + c*zz01*zz02 + d*zz01
	s11 = (a*zz02 + b - c*zz01*zz02 - d*zz01) / denom
	s21 = 2 * cmplx.Sqrt(zz01*zz02) / denom
	return
}

// seriesResonantImpedance is the impedance of an inductor l in parallel
// with a capacitor c at angular frequency omega, the series-arm resonator
// used throughout the elliptic ladder to place a finite transmission zero.
// c == 0 degenerates to a plain series inductor.
func seriesResonantImpedance(omega, l, c float64) complex128 {
	yl := complex(0, -1/(omega*l))
	if c == 0 {
		return 1 / yl
	}
	yc := complex(0, omega*c)
	return 1 / (yl + yc)
}

// EllipticChainAt builds the cascade ABCD matrix of the normalized
// elliptic ladder (shunt, [series, shunt]*n) at normalized angular
// frequency omega (Ω = f/fc for a low-pass prototype with unit cutoff).
func EllipticChainAt(res EllipticResult, omega float64) ABCD {
	n := len(res.Lseries)
	chain := ShuntAdmittanceABCD(complex(0, omega*res.Cshunt[0]))
	for j := 0; j < n; j++ {
		z := seriesResonantImpedance(omega, res.Lseries[j], res.Cseries[j])
		chain = chain.Cascade(SeriesImpedanceABCD(z))
		chain = chain.Cascade(ShuntAdmittanceABCD(complex(0, omega*res.Cshunt[j+1])))
	}
	return chain
}

// EllipticAttenuationDB evaluates the forward insertion loss (in dB,
// positive for attenuation) of a normalized elliptic ladder at a swept
// list of normalized frequencies Ω = f/fc, terminated between a unit
// source and res.RL.
func EllipticAttenuationDB(res EllipticResult, omegas []float64) []float64 {
	out := make([]float64, len(omegas))
	for i, omega := range omegas {
		_, s21 := EllipticChainAt(res, omega).ToS(1, res.RL)
		out[i] = -20 * math.Log10(cmplx.Abs(s21))
	}
	return out
}
