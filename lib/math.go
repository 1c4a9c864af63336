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

	"gonum.org/v1/gonum/mat"
)

//----------------------------------------------------------------------

// Global settings and defaults
const (
	eps = 1e-9 // lower bound for non-zero

	// mathematical constants
	RectAng = math.Pi / 2 // right angle
	CircAng = 2 * math.Pi //full circle
)

// IsNull returns true if number is zero (within tolerance)
func IsNull(f float64) bool {
	return math.Abs(f) < eps
}

// InRange returns true if value v is in range (with tolerance)
func InRange(v, from, to float64) bool {
	return v-from > -eps && to-v > -eps
}

// Sqr returns the square of a value
func Sqr(v float64) float64 {
	return v * v
}

// ----------------------------------------------------------------------

// Solve2x2 solves the linear system J·d = r for a dense 2x2 Jacobian,
// used by the coupled-microstrip Newton iteration (§4.1) to update
// (width, gap) from probed impedance errors in one step.
func Solve2x2(j [2][2]float64, r [2]float64) (d [2]float64, err error) {
	J := mat.NewDense(2, 2, []float64{j[0][0], j[0][1], j[1][0], j[1][1]})
	R := mat.NewVecDense(2, []float64{r[0], r[1]})
	var x mat.VecDense
	if err = x.SolveVec(J, R); err != nil {
		return
	}
	d[0], d[1] = x.AtVec(0), x.AtVec(1)
	return
}

// Coth computes the hyperbolic cotangent, used throughout the Chebyshev
// prototype recurrence and the elliptic-filter load-resistance formula.
func Coth(x float64) float64 {
	return 1 / math.Tanh(x)
}
