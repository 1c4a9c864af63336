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

import "fmt"

// Point is an integer 2-D pixel-grid coordinate. Topology synthesizers
// place components on this grid; the grid is an output contract (§9),
// not an implementation detail, since downstream consumers render and
// export it verbatim.
type Point struct {
	X, Y int
}

// NewPoint creates a grid coordinate.
func NewPoint(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (translation).
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// String returns a human-readable coordinate.
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// common placement strides used by the ladder/topology builders (§4.4-4.7)
const (
	StrideDefault = 50  // default horizontal stride between stages
	StrideWide    = 80  // wider stride (used by some BP/BS stages)
	StrideShunt   = 300 // stride reserved for shunt-branch elements in BP/BS
	ShuntOffsetY  = 50  // vertical offset of a shunt-branch element
	GroundOffsetY = 100 // vertical offset of a shunt branch's ground symbol
)
