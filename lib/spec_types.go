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

// FilterClass is the passband class of a filter (§3).
type FilterClass string

const (
	ClassLowpass  FilterClass = "LP"
	ClassHighpass FilterClass = "HP"
	ClassBandpass FilterClass = "BP"
	ClassBandstop FilterClass = "BS"
)

// Response is the prototype approximation used to derive g-coefficients
// (§4.2).
type Response string

const (
	ResponseButterworth Response = "Butterworth"
	ResponseChebyshev   Response = "Chebyshev"
	ResponseBessel      Response = "Bessel"
	ResponseGaussian    Response = "Gaussian"
	ResponseLegendre    Response = "Legendre"
	ResponseElliptic    Response = "Elliptic"
)

// FilterTopology selects the synthesizer (§4.4, §4.5).
type FilterTopology string

const (
	TopoCanonical              FilterTopology = "Canonical"
	TopoSteppedImpedance       FilterTopology = "SteppedImpedance"
	TopoQuarterWaveStub        FilterTopology = "QuarterWaveStub"
	TopoEndCoupled             FilterTopology = "EndCoupled"
	TopoCapacitivelyCoupled    FilterTopology = "CapacitivelyCoupledShunt"
	TopoCoupledLine            FilterTopology = "CoupledLine"
)

// EllipticType selects the elliptic-solver sub-mode (§4.3).
type EllipticType string

const (
	EllipticTypeS EllipticType = "S" // equiripple both bands, equal terminations
	EllipticTypeA EllipticType = "A"
	EllipticTypeB EllipticType = "B"
	EllipticTypeC EllipticType = "C"
)

// Realization chooses between ideal transmission lines and microstrip
// (§3).
type Realization string

const (
	RealizationLumped     Realization = "Lumped"
	RealizationIdeal      Realization = "Ideal"
	RealizationMicrostrip Realization = "Microstrip"
)

// FilterSpec is the input record for filter synthesis (§3).
type FilterSpec struct {
	Topology   FilterTopology
	Response   Response
	Class      FilterClass
	Order      int
	Fc         float64 // center/cutoff frequency (Hz)
	Bandwidth  float64 // bandwidth (Hz), BP/BS only
	RippleDB   float64 // passband ripple (dB), Chebyshev/elliptic
	StopbandDB float64 // stopband attenuation (dB), elliptic
	Elliptic   EllipticType

	Zs float64 // source/port impedance (Ω)

	MinLineZ float64 // min. realizable line impedance (Ω), 0 = unconstrained
	MaxLineZ float64 // max. realizable line impedance (Ω), 0 = unconstrained

	Realization Realization
	SemiLumped  bool // substitute stubs/lines for L and C (§4.4)
	IsCLC       bool // shunt-C first (true) vs series-L first (false)

	Substrate Substrate
}

// MatchingTopology selects the matching-network synthesizer (§4.6).
type MatchingTopology string

const (
	TopoLSection          MatchingTopology = "LSection"
	TopoSingleStub        MatchingTopology = "SingleStub"
	TopoDoubleStub        MatchingTopology = "DoubleStub"
	TopoMultiSectionQW    MatchingTopology = "MultiSectionQuarterWave"
	TopoCascadedLC        MatchingTopology = "CascadedLC"
	TopoLambda8Lambda4    MatchingTopology = "Lambda8Lambda4"
)

// TaperWeighting selects the section-impedance taper for the
// multi-section quarter-wave transformer (§4.6).
type TaperWeighting string

const (
	WeightBinomial  TaperWeighting = "Binomial"
	WeightChebyshev TaperWeighting = "Chebyshev"
)

// MatchingSpec is the input record for matching-network synthesis
// (§3).
type MatchingSpec struct {
	Topology MatchingTopology
	Freq     float64 // design frequency (Hz)
	Zs       float64 // source impedance (Ω)
	Zl       complex128

	Solution int // 1 or 2: which closed-form branch to use

	OpenStub bool // open- vs short-circuit stub

	Sections  int     // number of sections (multi-section QW)
	GammaMax  float64 // Chebyshev ripple γ_MAX
	Weighting TaperWeighting

	Substrate   Substrate
	Realization Realization

	TwoPort bool
	Input   *MatchingSpec // IMN sub-spec, two-port mode
	Output  *MatchingSpec // OMN sub-spec, two-port mode
	S       [2][2]complex128
}

// CombinerTopology selects the power-combiner synthesizer (§4.7).
type CombinerTopology string

const (
	TopoWilkinson2Way         CombinerTopology = "Wilkinson2Way"
	TopoMultistageWilkinson   CombinerTopology = "MultistageWilkinson"
	TopoTJunction             CombinerTopology = "TJunction"
	TopoBranchline            CombinerTopology = "Branchline"
	TopoDoubleBoxBranchline   CombinerTopology = "DoubleBoxBranchline"
	TopoBagley                CombinerTopology = "Bagley"
	TopoGysel                 CombinerTopology = "Gysel"
	TopoLimEom                CombinerTopology = "LimEom"
	TopoWilkinson3WayImproved CombinerTopology = "Wilkinson3WayImproved"
	TopoRecombinant3Way       CombinerTopology = "Recombinant3Way"
)

// CombinerSpec is the input record for power-combiner/divider synthesis
// (§3).
type CombinerSpec struct {
	Topology  CombinerTopology
	NOutputs  int
	Freq      float64
	Z0        float64
	PowerDB   []float64 // output-power ratio in dB, one per split (0 = equal)
	Alpha     float64   // attenuation coefficient (multistage Wilkinson isolators, Np/m)
	NStages   int

	Realization Realization
	Substrate   Substrate
}

// AttenuatorTopology selects the resistive-attenuator synthesizer:
// symmetric Tee/Pi pads or an asymmetric L-pad.
type AttenuatorTopology string

const (
	TopoTeeAttenuator AttenuatorTopology = "Tee"
	TopoPiAttenuator  AttenuatorTopology = "Pi"
	TopoLPad          AttenuatorTopology = "LPad"
)

// AttenuatorSpec is the input record for resistive-attenuator
// synthesis (supplemented feature).
type AttenuatorSpec struct {
	Topology     AttenuatorTopology
	AttenuationDB float64
	Z0           float64
}
