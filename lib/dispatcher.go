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

// SynthesizeFilter is the top-level filter entry point (§4.8): it
// validates that (class, topology, realization) is a supported
// combination, then dispatches to the requested topology's
// synthesizer.
func SynthesizeFilter(spec FilterSpec) (*Schematic, error) {
	switch spec.Topology {
	case "", TopoCanonical:
		if spec.Realization == RealizationMicrostrip {
			return nil, NewConfigurationError("canonical lumped topology does not support microstrip realization")
		}
		return SynthesizeCanonicalFilter(spec)
	case TopoSteppedImpedance:
		if spec.Class != ClassLowpass {
			return nil, NewConfigurationError("stepped-impedance topology only supports lowpass filters")
		}
		return SynthesizeSteppedImpedanceFilter(spec)
	case TopoQuarterWaveStub:
		if spec.Class != ClassBandpass && spec.Class != ClassBandstop {
			return nil, NewConfigurationError("quarter-wave-stub topology only supports bandpass/bandstop filters")
		}
		return SynthesizeQuarterWaveStubFilter(spec)
	case TopoEndCoupled:
		if spec.Class != ClassBandpass {
			return nil, NewConfigurationError("end-coupled topology only supports bandpass filters")
		}
		return SynthesizeEndCoupledFilter(spec)
	case TopoCapacitivelyCoupled:
		if spec.Class != ClassBandpass {
			return nil, NewConfigurationError("capacitively-coupled-shunt topology only supports bandpass filters")
		}
		return SynthesizeCapacitivelyCoupledShuntFilter(spec)
	case TopoCoupledLine:
		if spec.Class != ClassBandpass {
			return nil, NewConfigurationError("coupled-line topology only supports bandpass filters")
		}
		return SynthesizeCoupledLineFilter(spec)
	default:
		return nil, NewConfigurationError("unsupported filter topology %q", spec.Topology)
	}
}

// Dispatch selects a combiner/matching/filter/attenuator synthesizer
// from the concrete type of spec, returning the schematic or a
// configuration error for an unsupported combination. Callers that
// already know which kind of input record they hold should call the
// specific Synthesize* function directly; Dispatch exists for hosts
// that receive a generic record value, e.g. deserialized from a
// request body.
func Dispatch(spec any) (*Schematic, error) {
	switch s := spec.(type) {
	case FilterSpec:
		return SynthesizeFilter(s)
	case MatchingSpec:
		return SynthesizeMatching(s)
	case CombinerSpec:
		return SynthesizeCombiner(s)
	case AttenuatorSpec:
		return SynthesizeAttenuator(s)
	default:
		return nil, NewConfigurationError("unsupported specification type %T", spec)
	}
}
