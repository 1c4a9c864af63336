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
	"encoding/json"
	"os"
)

// Microstrip holds the Newton-solver tuning for the microstrip
// synthesizer (§4.1).
type Microstrip struct {
	Tolerance   float64 `json:"tolerance"`   // |Z-Ztarget| convergence bound
	MaxIter     int     `json:"maxIter"`     // single-line iteration cap
	MaxIterPair int     `json:"maxIterPair"` // coupled-line iteration cap
	InitWidth   float64 `json:"initWidth"`   // initial width guess (m)
	ProbeStep   float64 `json:"probeStep"`   // relative probe step for derivative estimate
}

// Elliptic holds the fixed-point solver tuning for the elliptic
// filter synthesizer (§4.3).
type Elliptic struct {
	Tolerance float64 `json:"tolerance"` // modulus convergence bound
	MaxIter   int     `json:"maxIter"`   // fixed-point iteration cap
}

// Config for the synthesis core.
type Config struct {
	Microstrip *Microstrip `json:"microstrip"`
	Elliptic   *Elliptic   `json:"elliptic"`
}

// Cfg is the globally-accessible configuration (pre-set defaults,
// overridable via ReadConfig). Only solver tuning lives here: the core
// takes no other configuration, per §6.
var Cfg = &Config{
	Microstrip: &Microstrip{
		Tolerance:   1e-7,
		MaxIter:     150,
		MaxIterPair: 200,
		InitWidth:   1e-3,
		ProbeStep:   0.01,
	},
	Elliptic: &Elliptic{
		Tolerance: 1e-6,
		MaxIter:   200,
	},
}

// ReadConfig loads solver tuning overrides from a JSON file. The host
// application owns this call; the synthesis core never reads files
// itself (§6).
func ReadConfig(fname string) (err error) {
	var data []byte
	if data, err = os.ReadFile(fname); err == nil {
		err = json.Unmarshal(data, &Cfg)
	}
	return
}
