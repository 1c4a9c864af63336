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

// ConfigurationError reports an unsupported topology/class/realization
// combination, or an order/parameter outside a tabulated range (§7).
// It is always the sole return value of a synthesizer (no partial
// schematic is returned alongside it).
type ConfigurationError struct {
	Msg string
}

func (e *ConfigurationError) Error() string {
	return "configuration error: " + e.Msg
}

// NewConfigurationError builds a ConfigurationError.
func NewConfigurationError(format string, args ...any) error {
	return &ConfigurationError{Msg: fmt.Sprintf(format, args...)}
}

// UnmatchableLoad reports a load that cannot be matched by the chosen
// topology (e.g. the double-stub unmatchable region, §7). A synthesizer
// hitting this returns an empty (non-nil, zero-component) schematic
// rather than a malformed one.
type UnmatchableLoad struct {
	Msg string
}

func (e *UnmatchableLoad) Error() string {
	return "unmatchable load: " + e.Msg
}

// NewUnmatchableLoad builds an UnmatchableLoad error.
func NewUnmatchableLoad(format string, args ...any) error {
	return &UnmatchableLoad{Msg: fmt.Sprintf(format, args...)}
}

// NonConvergence reports that an iterative solver (microstrip Newton
// solve, elliptic fixed point) hit its iteration cap without reaching
// tolerance. Per §7 this is also carried in-band: the offending
// component's geometry parameter is given a negative-width sentinel so
// a caller that ignores the error can still detect the failure.
type NonConvergence struct {
	Msg string
}

func (e *NonConvergence) Error() string {
	return "non-convergence: " + e.Msg
}

// NewNonConvergence builds a NonConvergence error.
func NewNonConvergence(format string, args ...any) error {
	return &NonConvergence{Msg: fmt.Sprintf(format, args...)}
}

// NumericOverflow reports a divisor collapse inside a filter
// transformation (e.g. 1-J² ≈ 0 in end-coupled synthesis, §7).
type NumericOverflow struct {
	Msg string
}

func (e *NumericOverflow) Error() string {
	return "numeric overflow: " + e.Msg
}

// NewNumericOverflow builds a NumericOverflow error.
func NewNumericOverflow(format string, args ...any) error {
	return &NumericOverflow{Msg: fmt.Sprintf(format, args...)}
}
