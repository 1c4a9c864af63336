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

// SynthesizeCombiner dispatches to the requested power-combiner/divider
// topology (§4.7).
func SynthesizeCombiner(spec CombinerSpec) (*Schematic, error) {
	if spec.Freq <= 0 || spec.Z0 <= 0 {
		return nil, NewConfigurationError("combiner synthesis requires a positive frequency and reference impedance")
	}
	switch spec.Topology {
	case TopoWilkinson2Way:
		return synthesizeWilkinson2Way(spec)
	case TopoMultistageWilkinson:
		return synthesizeMultistageWilkinson(spec)
	case TopoTJunction:
		return synthesizeTJunction(spec)
	case TopoBranchline:
		return synthesizeBranchline(spec)
	case TopoDoubleBoxBranchline:
		return synthesizeDoubleBoxBranchline(spec)
	case TopoBagley:
		return synthesizeBagley(spec)
	case TopoGysel:
		return synthesizeGysel(spec)
	case TopoLimEom:
		return synthesizeLimEom(spec)
	case TopoWilkinson3WayImproved:
		return synthesizeWilkinson3WayImproved(spec)
	case TopoRecombinant3Way:
		return synthesizeRecombinant3Way(spec)
	default:
		return nil, NewConfigurationError("unsupported combiner topology %q", spec.Topology)
	}
}

// splitRatio converts a per-output power ratio in dB (0 = equal split)
// to a linear power ratio, defaulting to 1 when absent.
func splitRatio(powerDB []float64, idx int) float64 {
	if idx >= len(powerDB) {
		return 1
	}
	return math.Pow(10, powerDB[idx]/10)
}

// addResistor appends a two-terminal resistor.
func addResistor(sch *Schematic, pos Point, r float64, rotation int) *Component {
	c := sch.AddComponent(KindResistor, rotation, pos)
	c.SetParam("R", RenderParam(r, "Ohm"))
	return c
}

// synthesizeWilkinson2Way builds the classic two-way Wilkinson divider:
// a central λ/4 line at Z0 feeding two λ/4 branches at Z2, Z3, with an
// isolation resistor bridging the branch outputs (§4.7).
func synthesizeWilkinson2Way(spec CombinerSpec) (*Schematic, error) {
	k := splitRatio(spec.PowerDB, 0)
	z2 := spec.Z0 * math.Sqrt(2*(1+k)/k)
	z3 := spec.Z0 * math.Sqrt(2*(1+k))
	r2 := spec.Z0 * k
	r3 := spec.Z0 / k

	sch := NewSchematic()
	pIn := sch.AddComponent(KindPort, 0, NewPoint(0, 0))
	central := addLine(sch, NewPoint(StrideWide, 0), spec.Z0, 0.25, spec.Freq, spec.Realization, spec.Substrate)
	sch.AddWire(pIn.ID, 0, central.ID, 0)

	split := sch.AddNode(NewPoint(2*StrideWide, 0), true)
	sch.AddWire(central.ID, 1, split.ID, 0)

	upper := addLine(sch, NewPoint(3*StrideWide, ShuntOffsetY), z2, 0.25, spec.Freq, spec.Realization, spec.Substrate)
	sch.AddWire(split.ID, 0, upper.ID, 0)
	lower := addLine(sch, NewPoint(3*StrideWide, -ShuntOffsetY), z3, 0.25, spec.Freq, spec.Realization, spec.Substrate)
	sch.AddWire(split.ID, 0, lower.ID, 0)

	riso := addResistor(sch, NewPoint(4*StrideWide, 0), r2+r3, 90)
	sch.AddWire(upper.ID, 1, riso.ID, 0)
	sch.AddWire(lower.ID, 1, riso.ID, 1)

	pOut1 := sch.AddComponent(KindPort, 180, NewPoint(4*StrideWide, ShuntOffsetY))
	sch.AddWire(upper.ID, 1, pOut1.ID, 0)
	pOut2 := sch.AddComponent(KindPort, 180, NewPoint(4*StrideWide, -ShuntOffsetY))
	sch.AddWire(lower.ID, 1, pOut2.ID, 0)

	return sch, sch.Validate()
}

// chebyshevIsolatorTaper returns the N-stage Chebyshev-weighted
// impedance taper between Z0 and RL, for N = 1..5 (§4.7), using the
// equal-ripple reflection-coefficient weighting of a Chebyshev
// transformer.
func chebyshevIsolatorTaper(z0, rl float64, n int, ripple float64) ([]float64, error) {
	logRatio := math.Abs(math.Log(rl/z0) / (2 * ripple))
	secThetaM := 0.0
	if logRatio >= 1 {
		secThetaM = math.Cosh(math.Acosh(logRatio) / float64(n))
	}
	s := secThetaM
	var w []float64
	switch n {
	case 1:
		w = []float64{s}
	case 2:
		w = []float64{s * s, 2 * (s*s - 1)}
	case 3:
		w1 := 3 * (s*s*s - s)
		w = []float64{s * s * s, w1, w1}
	case 4:
		w1 := 4 * s * s * (s*s - 1)
		w2 := 2 * (1 - 4*s*s + 3*s*s*s*s)
		w = []float64{s * s * s * s, w1, w2, w1}
	case 5:
		w1 := 5 * (math.Pow(s, 5) - math.Pow(s, 3))
		w2 := 10*math.Pow(s, 5) - 15*math.Pow(s, 3) + 5*s
		w = []float64{math.Pow(s, 5), w1, w2, w2, w1}
	default:
		return nil, NewConfigurationError("Chebyshev isolator taper only tabulated for N=1..5, got %d", n)
	}

	taper := make([]float64, n)
	zPrev := z0
	for i := 0; i < n; i++ {
		var zi float64
		if rl < z0 {
			zi = math.Exp(math.Log(zPrev) - ripple*w[i])
		} else {
			zi = math.Exp(math.Log(zPrev) + ripple*w[i])
		}
		zPrev = zi
		taper[n-1-i] = zi
	}
	return taper, nil
}

// synthesizeMultistageWilkinson builds an N-stage Chebyshev-tapered
// Wilkinson divider between Z0 and 2Z0, with per-stage isolators
// computed from the back-propagated impedance through all downstream
// stages using a lossy propagation constant (§4.7).
func synthesizeMultistageWilkinson(spec CombinerSpec) (*Schematic, error) {
	n := spec.NStages
	if n < 1 {
		return nil, NewConfigurationError("multistage Wilkinson requires NStages >= 1")
	}
	zLines, err := chebyshevIsolatorTaper(spec.Z0, 2*spec.Z0, n, 0.05)
	if err != nil {
		return nil, err
	}
	lambda4 := C / (4 * spec.Freq)
	alpha := spec.Alpha
	beta := 2 * math.Pi * spec.Freq / C

	sch := NewSchematic()
	pIn := sch.AddComponent(KindPort, 0, NewPoint(0, 0))
	var prevU, prevL *Component
	prevU, prevL = pIn, pIn
	portU, portL := 0, 0
	x := StrideWide

	zAux := zLines[n-1]
	for i := 0; i < n; i++ {
		gammaL := complex(alpha, beta) * complex(lambda4, 0)
		th := ctanh(gammaL)
		zBack := cmplx128Abs(complex(zAux, 0) * (complex(spec.Z0, 0) + complex(zAux, 0)*th) / (complex(zAux, 0) + complex(spec.Z0, 0)*th))
		zAux = zLines[i]
		r := spec.Z0 * zBack / (zBack - spec.Z0)

		lineU := addLine(sch, NewPoint(x, ShuntOffsetY), zLines[i], 0.25, spec.Freq, spec.Realization, spec.Substrate)
		sch.AddWire(prevU.ID, portU, lineU.ID, 0)
		lineL := addLine(sch, NewPoint(x, -ShuntOffsetY), zLines[i], 0.25, spec.Freq, spec.Realization, spec.Substrate)
		sch.AddWire(prevL.ID, portL, lineL.ID, 0)

		riso := addResistor(sch, NewPoint(x+StrideDefault, 0), 2*r, 90)
		sch.AddWire(lineU.ID, 1, riso.ID, 0)
		sch.AddWire(lineL.ID, 1, riso.ID, 1)

		prevU, portU = lineU, 1
		prevL, portL = lineL, 1
		x += StrideWide
	}

	pOut1 := sch.AddComponent(KindPort, 180, NewPoint(x, ShuntOffsetY))
	sch.AddWire(prevU.ID, portU, pOut1.ID, 0)
	pOut2 := sch.AddComponent(KindPort, 180, NewPoint(x, -ShuntOffsetY))
	sch.AddWire(prevL.ID, portL, pOut2.ID, 0)
	return sch, sch.Validate()
}

// cmplx128Abs returns the real-valued magnitude of a complex value,
// used to reduce a back-propagated branch impedance to a real
// resistance ratio.
func cmplx128Abs(z complex128) float64 {
	return math.Hypot(real(z), imag(z))
}

// synthesizeTJunction builds a reactanceless T-junction divider: a
// single λ/4 input line then two λ/4 branches at Z0(K+1) and
// Z0(K+1)/K (§4.7).
func synthesizeTJunction(spec CombinerSpec) (*Schematic, error) {
	k := splitRatio(spec.PowerDB, 0)
	zUpper := spec.Z0 * (k + 1)
	zLower := spec.Z0 * (k + 1) / k

	sch := NewSchematic()
	pIn := sch.AddComponent(KindPort, 0, NewPoint(0, 0))
	input := addLine(sch, NewPoint(StrideWide, 0), spec.Z0, 0.25, spec.Freq, spec.Realization, spec.Substrate)
	sch.AddWire(pIn.ID, 0, input.ID, 0)

	split := sch.AddNode(NewPoint(2*StrideWide, 0), true)
	sch.AddWire(input.ID, 1, split.ID, 0)

	upper := addLine(sch, NewPoint(3*StrideWide, ShuntOffsetY), zUpper, 0.25, spec.Freq, spec.Realization, spec.Substrate)
	sch.AddWire(split.ID, 0, upper.ID, 0)
	lower := addLine(sch, NewPoint(3*StrideWide, -ShuntOffsetY), zLower, 0.25, spec.Freq, spec.Realization, spec.Substrate)
	sch.AddWire(split.ID, 0, lower.ID, 0)

	pOut1 := sch.AddComponent(KindPort, 180, NewPoint(4*StrideWide, ShuntOffsetY))
	sch.AddWire(upper.ID, 1, pOut1.ID, 0)
	pOut2 := sch.AddComponent(KindPort, 180, NewPoint(4*StrideWide, -ShuntOffsetY))
	sch.AddWire(lower.ID, 1, pOut2.ID, 0)
	return sch, sch.Validate()
}

// synthesizeBranchline builds the 2x2 quarter-wave branch-line
// coupler: shunt arms Z_A = Z0*sqrt(K/(K+1)), series arms
// Z_B = Z0*sqrt(K), with an isolation resistor Z0 terminating the
// fourth port (§4.7).
func synthesizeBranchline(spec CombinerSpec) (*Schematic, error) {
	k := splitRatio(spec.PowerDB, 0)
	za := spec.Z0 * math.Sqrt(k/(k+1))
	zb := spec.Z0 * math.Sqrt(k)

	sch := NewSchematic()
	pIn := sch.AddComponent(KindPort, 0, NewPoint(0, 0))

	nTopL := sch.AddNode(NewPoint(StrideWide, ShuntOffsetY), true)
	sch.AddWire(pIn.ID, 0, nTopL.ID, 0)
	shuntL := addLine(sch, NewPoint(StrideWide, -ShuntOffsetY), za, 0.25, spec.Freq, spec.Realization, spec.Substrate)
	sch.AddWire(nTopL.ID, 0, shuntL.ID, 0)
	nBotL := sch.AddNode(NewPoint(StrideWide, -2*ShuntOffsetY), true)
	sch.AddWire(shuntL.ID, 1, nBotL.ID, 0)

	seriesTop := addLine(sch, NewPoint(2*StrideWide, ShuntOffsetY), zb, 0.25, spec.Freq, spec.Realization, spec.Substrate)
	sch.AddWire(nTopL.ID, 0, seriesTop.ID, 0)
	seriesBot := addLine(sch, NewPoint(2*StrideWide, -2*ShuntOffsetY), zb, 0.25, spec.Freq, spec.Realization, spec.Substrate)
	sch.AddWire(nBotL.ID, 0, seriesBot.ID, 0)

	nTopR := sch.AddNode(NewPoint(3*StrideWide, ShuntOffsetY), true)
	sch.AddWire(seriesTop.ID, 1, nTopR.ID, 0)
	nBotR := sch.AddNode(NewPoint(3*StrideWide, -2*ShuntOffsetY), true)
	sch.AddWire(seriesBot.ID, 1, nBotR.ID, 0)
	shuntR := addLine(sch, NewPoint(3*StrideWide, -ShuntOffsetY), za, 0.25, spec.Freq, spec.Realization, spec.Substrate)
	sch.AddWire(nTopR.ID, 0, shuntR.ID, 0)
	sch.AddWire(shuntR.ID, 1, nBotR.ID, 0)

	pOut1 := sch.AddComponent(KindPort, 180, NewPoint(4*StrideWide, ShuntOffsetY))
	sch.AddWire(nTopR.ID, 0, pOut1.ID, 0)
	pOut2 := sch.AddComponent(KindPort, 180, NewPoint(4*StrideWide, -2*ShuntOffsetY))
	sch.AddWire(nBotR.ID, 0, pOut2.ID, 0)

	riso := addResistor(sch, NewPoint(0, -2*ShuntOffsetY), spec.Z0, 0)
	sch.AddWire(nBotL.ID, 0, riso.ID, 0)
	gnd := sch.AddComponent(KindGround, 0, NewPoint(-StrideDefault, -2*ShuntOffsetY))
	sch.AddWire(riso.ID, 1, gnd.ID, 0)

	return sch, sch.Validate()
}

// synthesizeDoubleBoxBranchline builds the 3-column, 6-line
// double-box branch-line lattice: shunt arms Z_A, bridging arms Z_D,
// and series arms Z_B computed from the split ratio (§4.7).
func synthesizeDoubleBoxBranchline(spec CombinerSpec) (*Schematic, error) {
	k := splitRatio(spec.PowerDB, 0)
	r := 1.0
	t := math.Sqrt((1 + k) * r)
	za := spec.Z0 * math.Sqrt(r*(t*t-r)) / (t - r)
	zd := spec.Z0 * math.Sqrt(r*(t*t-r)) / (t - 1)
	zb := spec.Z0 * math.Sqrt(r-(r*r)/(t*t))

	sch := NewSchematic()
	pIn := sch.AddComponent(KindPort, 0, NewPoint(0, 0))

	top := [3]*Node{}
	bot := [3]*Node{}
	top[0] = sch.AddNode(NewPoint(StrideWide, ShuntOffsetY), true)
	bot[0] = sch.AddNode(NewPoint(StrideWide, -ShuntOffsetY), true)
	sch.AddWire(pIn.ID, 0, top[0].ID, 0)
	inputBridge := addLine(sch, NewPoint(StrideWide, 0), za, 0.25, spec.Freq, spec.Realization, spec.Substrate)
	sch.AddWire(top[0].ID, 0, inputBridge.ID, 0)
	sch.AddWire(inputBridge.ID, 1, bot[0].ID, 0)

	riso := addResistor(sch, NewPoint(StrideWide/2, -ShuntOffsetY), spec.Z0, 0)
	sch.AddWire(bot[0].ID, 0, riso.ID, 0)
	gnd := sch.AddComponent(KindGround, 0, NewPoint(0, -ShuntOffsetY))
	sch.AddWire(riso.ID, 1, gnd.ID, 0)

	x := 2 * StrideWide
	for col := 1; col < 3; col++ {
		top[col] = sch.AddNode(NewPoint(x, ShuntOffsetY), true)
		bot[col] = sch.AddNode(NewPoint(x, -ShuntOffsetY), true)
		st := addLine(sch, NewPoint(x-StrideDefault, ShuntOffsetY), zb, 0.25, spec.Freq, spec.Realization, spec.Substrate)
		sch.AddWire(top[col-1].ID, 0, st.ID, 0)
		sch.AddWire(st.ID, 1, top[col].ID, 0)
		sb := addLine(sch, NewPoint(x-StrideDefault, -ShuntOffsetY), zb, 0.25, spec.Freq, spec.Realization, spec.Substrate)
		sch.AddWire(bot[col-1].ID, 0, sb.ID, 0)
		sch.AddWire(sb.ID, 1, bot[col].ID, 0)
		if col == 1 {
			mid := addLine(sch, NewPoint(x, 0), zd, 0.25, spec.Freq, spec.Realization, spec.Substrate)
			sch.AddWire(top[col].ID, 0, mid.ID, 0)
			sch.AddWire(mid.ID, 1, bot[col].ID, 0)
		}
		x += StrideWide
	}

	pOut1 := sch.AddComponent(KindPort, 180, NewPoint(x, ShuntOffsetY))
	sch.AddWire(top[2].ID, 0, pOut1.ID, 0)
	pOut2 := sch.AddComponent(KindPort, 180, NewPoint(x, -ShuntOffsetY))
	sch.AddWire(bot[2].ID, 0, pOut2.ID, 0)

	return sch, sch.Validate()
}

// synthesizeBagley builds the Bagley N-way power divider: a λ/4 Z0 feed
// line into one hub, from which N_out arms at Z_branch = 2*Z0/sqrt(N_out)
// each run to their own output port. The two outer arms are λ/4 and the
// N_out-2 inner arms are λ/2; the arms are not joined to one another.
// N_out is constrained odd (§4.7).
func synthesizeBagley(spec CombinerSpec) (*Schematic, error) {
	n := spec.NOutputs
	if n < 3 || n%2 == 0 {
		return nil, NewConfigurationError("Bagley divider requires an odd N_out >= 3, got %d", n)
	}
	zBranch := 2 * spec.Z0 / math.Sqrt(float64(n))

	sch := NewSchematic()
	pIn := sch.AddComponent(KindPort, 0, NewPoint(0, 0))
	hub := sch.AddNode(NewPoint(StrideWide, 0), true)
	feed := addLine(sch, NewPoint(StrideWide/2, 0), spec.Z0, 0.25, spec.Freq, spec.Realization, spec.Substrate)
	sch.AddWire(pIn.ID, 0, feed.ID, 0)
	sch.AddWire(feed.ID, 1, hub.ID, 0)

	spacing := 2 * StrideShunt / (n - 1)
	baseY := -StrideShunt
	x := 2 * StrideWide
	for i := 0; i < n; i++ {
		y := baseY + i*spacing
		var lenFrac float64
		if i == 0 || i == n-1 {
			lenFrac = 0.25
		} else {
			lenFrac = 0.5
		}
		arm := addLine(sch, NewPoint(x, y), zBranch, lenFrac, spec.Freq, spec.Realization, spec.Substrate)
		sch.AddWire(hub.ID, 0, arm.ID, 0)
		pOut := sch.AddComponent(KindPort, 180, NewPoint(x+StrideWide, y))
		sch.AddWire(arm.ID, 1, pOut.ID, 0)
	}
	return sch, sch.Validate()
}

// synthesizeGysel builds the Gysel two-way combiner: two λ/4 arms at
// √2·Z0 feeding a central λ/2 line at Z0/√2 between two grounded Z0
// loads, giving high-power isolation without a floating resistor
// (§4.7).
func synthesizeGysel(spec CombinerSpec) (*Schematic, error) {
	sch := NewSchematic()
	pIn := sch.AddComponent(KindPort, 0, NewPoint(0, 0))
	split := sch.AddNode(NewPoint(StrideWide, 0), true)
	sch.AddWire(pIn.ID, 0, split.ID, 0)

	armU := addLine(sch, NewPoint(2*StrideWide, ShuntOffsetY), math.Sqrt2*spec.Z0, 0.25, spec.Freq, spec.Realization, spec.Substrate)
	sch.AddWire(split.ID, 0, armU.ID, 0)
	armL := addLine(sch, NewPoint(2*StrideWide, -ShuntOffsetY), math.Sqrt2*spec.Z0, 0.25, spec.Freq, spec.Realization, spec.Substrate)
	sch.AddWire(split.ID, 0, armL.ID, 0)

	nU := sch.AddNode(NewPoint(3*StrideWide, ShuntOffsetY), true)
	sch.AddWire(armU.ID, 1, nU.ID, 0)
	nL := sch.AddNode(NewPoint(3*StrideWide, -ShuntOffsetY), true)
	sch.AddWire(armL.ID, 1, nL.ID, 0)

	bridge := addLine(sch, NewPoint(3*StrideWide, 0), spec.Z0/math.Sqrt2, 0.5, spec.Freq, spec.Realization, spec.Substrate)
	sch.AddWire(nU.ID, 0, bridge.ID, 0)
	sch.AddWire(bridge.ID, 1, nL.ID, 0)

	loadU := addResistor(sch, NewPoint(3*StrideWide+StrideDefault, ShuntOffsetY), spec.Z0, 90)
	sch.AddWire(nU.ID, 0, loadU.ID, 0)
	gndU := sch.AddComponent(KindGround, 0, NewPoint(3*StrideWide+StrideDefault, ShuntOffsetY+GroundOffsetY))
	sch.AddWire(loadU.ID, 1, gndU.ID, 0)
	loadL := addResistor(sch, NewPoint(3*StrideWide+StrideDefault, -ShuntOffsetY), spec.Z0, 90)
	sch.AddWire(nL.ID, 0, loadL.ID, 0)
	gndL := sch.AddComponent(KindGround, 0, NewPoint(3*StrideWide+StrideDefault, -ShuntOffsetY-GroundOffsetY))
	sch.AddWire(loadL.ID, 1, gndL.ID, 0)

	pOut1 := sch.AddComponent(KindPort, 180, NewPoint(4*StrideWide, ShuntOffsetY))
	sch.AddWire(nU.ID, 0, pOut1.ID, 0)
	pOut2 := sch.AddComponent(KindPort, 180, NewPoint(4*StrideWide, -ShuntOffsetY))
	sch.AddWire(nL.ID, 0, pOut2.ID, 0)

	return sch, sch.Validate()
}

// synthesizeLimEom builds the Lim-Eom three-way combiner: five
// quarter-wave impedances derived from the (M, N, K) power ratios and
// two isolator resistors at Z0 (§4.7).
func synthesizeLimEom(spec CombinerSpec) (*Schematic, error) {
	if len(spec.PowerDB) < 3 {
		return nil, NewConfigurationError("Lim-Eom combiner requires three power-ratio entries (M, N, K)")
	}
	m, n, k := splitRatio(spec.PowerDB, 0), splitRatio(spec.PowerDB, 1), splitRatio(spec.PowerDB, 2)
	d1 := m + n + k
	d2 := n + k
	z1 := spec.Z0 * math.Sqrt(d1/d2)
	z2 := spec.Z0 * math.Sqrt(d1/m)
	z3 := spec.Z0
	z4 := spec.Z0 * math.Sqrt(d2/n)
	z5 := spec.Z0 * math.Sqrt(d2/k)

	sch := NewSchematic()
	pIn := sch.AddComponent(KindPort, 0, NewPoint(0, 0))
	stage1 := addLine(sch, NewPoint(StrideWide, 0), z2, 0.25, spec.Freq, spec.Realization, spec.Substrate)
	sch.AddWire(pIn.ID, 0, stage1.ID, 0)

	hub1 := sch.AddNode(NewPoint(2*StrideWide, 0), true)
	sch.AddWire(stage1.ID, 1, hub1.ID, 0)

	armM := addLine(sch, NewPoint(3*StrideWide, ShuntOffsetY), z1, 0.25, spec.Freq, spec.Realization, spec.Substrate)
	sch.AddWire(hub1.ID, 0, armM.ID, 0)
	pOutM := sch.AddComponent(KindPort, 180, NewPoint(4*StrideWide, ShuntOffsetY))
	sch.AddWire(armM.ID, 1, pOutM.ID, 0)

	stage2 := addLine(sch, NewPoint(3*StrideWide, -ShuntOffsetY), z3, 0.25, spec.Freq, spec.Realization, spec.Substrate)
	sch.AddWire(hub1.ID, 0, stage2.ID, 0)
	hub2 := sch.AddNode(NewPoint(4*StrideWide, -ShuntOffsetY), true)
	sch.AddWire(stage2.ID, 1, hub2.ID, 0)

	riso1 := addResistor(sch, NewPoint(3*StrideWide, 0), spec.Z0, 90)
	sch.AddWire(hub1.ID, 0, riso1.ID, 0)
	gnd1 := sch.AddComponent(KindGround, 0, NewPoint(3*StrideWide, GroundOffsetY))
	sch.AddWire(riso1.ID, 1, gnd1.ID, 0)

	armN := addLine(sch, NewPoint(5*StrideWide, ShuntOffsetY), z4, 0.25, spec.Freq, spec.Realization, spec.Substrate)
	sch.AddWire(hub2.ID, 0, armN.ID, 0)
	pOutN := sch.AddComponent(KindPort, 180, NewPoint(6*StrideWide, ShuntOffsetY))
	sch.AddWire(armN.ID, 1, pOutN.ID, 0)

	armK := addLine(sch, NewPoint(5*StrideWide, -2*ShuntOffsetY), z5, 0.25, spec.Freq, spec.Realization, spec.Substrate)
	sch.AddWire(hub2.ID, 0, armK.ID, 0)
	pOutK := sch.AddComponent(KindPort, 180, NewPoint(6*StrideWide, -2*ShuntOffsetY))
	sch.AddWire(armK.ID, 1, pOutK.ID, 0)

	riso2 := addResistor(sch, NewPoint(5*StrideWide, -ShuntOffsetY), spec.Z0, 90)
	sch.AddWire(hub2.ID, 0, riso2.ID, 0)
	gnd2 := sch.AddComponent(KindGround, 0, NewPoint(5*StrideWide, -ShuntOffsetY+GroundOffsetY))
	sch.AddWire(riso2.ID, 1, gnd2.ID, 0)

	return sch, sch.Validate()
}

// synthesizeWilkinson3WayImproved builds the two-stage three-way
// Wilkinson tree with empirically optimized impedances/resistances
// for improved isolation (§4.7).
func synthesizeWilkinson3WayImproved(spec CombinerSpec) (*Schematic, error) {
	z1 := 2.28 * spec.Z0
	z2 := 1.316 * spec.Z0
	r1 := 1.319 * spec.Z0
	r2 := 4 * spec.Z0

	sch := NewSchematic()
	pIn := sch.AddComponent(KindPort, 0, NewPoint(0, 0))
	stage1 := addLine(sch, NewPoint(StrideWide, 0), z1, 0.25, spec.Freq, spec.Realization, spec.Substrate)
	sch.AddWire(pIn.ID, 0, stage1.ID, 0)
	nodeA := sch.AddNode(NewPoint(2*StrideWide, 0), true)
	sch.AddWire(stage1.ID, 1, nodeA.ID, 0)

	center := addLine(sch, NewPoint(3*StrideWide, ShuntOffsetY), z2, 0.25, spec.Freq, spec.Realization, spec.Substrate)
	sch.AddWire(nodeA.ID, 0, center.ID, 0)
	outCenter := sch.AddNode(NewPoint(4*StrideWide, ShuntOffsetY), true)
	sch.AddWire(center.ID, 1, outCenter.ID, 0)
	pOutCenter := sch.AddComponent(KindPort, 180, NewPoint(5*StrideWide, ShuntOffsetY))
	sch.AddWire(outCenter.ID, 0, pOutCenter.ID, 0)

	side := addLine(sch, NewPoint(3*StrideWide, -ShuntOffsetY), z2, 0.25, spec.Freq, spec.Realization, spec.Substrate)
	sch.AddWire(nodeA.ID, 0, side.ID, 0)
	nodeSide := sch.AddNode(NewPoint(4*StrideWide, -ShuntOffsetY), true)
	sch.AddWire(side.ID, 1, nodeSide.ID, 0)

	riso1 := addResistor(sch, NewPoint(4*StrideWide, 0), r1, 90)
	sch.AddWire(outCenter.ID, 0, riso1.ID, 0)
	sch.AddWire(nodeSide.ID, 0, riso1.ID, 1)

	upper := addLine(sch, NewPoint(5*StrideWide, ShuntOffsetY), z2, 0.25, spec.Freq, spec.Realization, spec.Substrate)
	sch.AddWire(nodeSide.ID, 0, upper.ID, 0)
	outUpper := sch.AddNode(NewPoint(6*StrideWide, ShuntOffsetY), true)
	sch.AddWire(upper.ID, 1, outUpper.ID, 0)
	pOutUpper := sch.AddComponent(KindPort, 180, NewPoint(7*StrideWide, ShuntOffsetY))
	sch.AddWire(outUpper.ID, 0, pOutUpper.ID, 0)

	lower := addLine(sch, NewPoint(5*StrideWide, -ShuntOffsetY), z2, 0.25, spec.Freq, spec.Realization, spec.Substrate)
	sch.AddWire(nodeSide.ID, 0, lower.ID, 0)
	outLower := sch.AddNode(NewPoint(6*StrideWide, -ShuntOffsetY), true)
	sch.AddWire(lower.ID, 1, outLower.ID, 0)
	pOutLower := sch.AddComponent(KindPort, 180, NewPoint(7*StrideWide, -ShuntOffsetY))
	sch.AddWire(outLower.ID, 0, pOutLower.ID, 0)

	riso2 := addResistor(sch, NewPoint(6*StrideWide, 0), r2, 90)
	sch.AddWire(outUpper.ID, 0, riso2.ID, 0)
	sch.AddWire(outLower.ID, 0, riso2.ID, 1)

	return sch, sch.Validate()
}

// synthesizeRecombinant3Way builds the recombinant three-way mesh from
// a fixed parameter table scaled to Z0: Z1=0.72Z0 (input), Z2=Z3=0.8Z0
// and Z4=Z6=1.6Z0 (branch arms), R1=Z0 and R2=2Z0 isolators (§4.7).
func synthesizeRecombinant3Way(spec CombinerSpec) (*Schematic, error) {
	z1 := spec.Z0 * 0.72
	z2 := spec.Z0 * 0.8
	z4 := spec.Z0 * 1.6
	r1 := spec.Z0
	r2 := spec.Z0 * 2

	sch := NewSchematic()
	pIn := sch.AddComponent(KindPort, 0, NewPoint(0, 0))
	input := addLine(sch, NewPoint(StrideWide, 0), z1, 0.25, spec.Freq, spec.Realization, spec.Substrate)
	sch.AddWire(pIn.ID, 0, input.ID, 0)
	hub := sch.AddNode(NewPoint(2*StrideWide, 0), true)
	sch.AddWire(input.ID, 1, hub.ID, 0)

	branchU := addLine(sch, NewPoint(3*StrideWide, ShuntOffsetY), z2, 0.25, spec.Freq, spec.Realization, spec.Substrate)
	sch.AddWire(hub.ID, 0, branchU.ID, 0)
	branchL := addLine(sch, NewPoint(3*StrideWide, -ShuntOffsetY), z2, 0.25, spec.Freq, spec.Realization, spec.Substrate)
	sch.AddWire(hub.ID, 0, branchL.ID, 0)

	riso1 := addResistor(sch, NewPoint(4*StrideWide, 0), r1, 90)
	sch.AddWire(branchU.ID, 1, riso1.ID, 0)
	sch.AddWire(branchL.ID, 1, riso1.ID, 1)

	subU1 := addLine(sch, NewPoint(4*StrideWide, 2*ShuntOffsetY), z4, 0.25, spec.Freq, spec.Realization, spec.Substrate)
	sch.AddWire(branchU.ID, 1, subU1.ID, 0)
	subU2 := addLine(sch, NewPoint(4*StrideWide, ShuntOffsetY+GroundOffsetY), z2, 0.25, spec.Freq, spec.Realization, spec.Substrate)
	sch.AddWire(branchU.ID, 1, subU2.ID, 0)

	subL1 := addLine(sch, NewPoint(4*StrideWide, -2*ShuntOffsetY), z4, 0.25, spec.Freq, spec.Realization, spec.Substrate)
	sch.AddWire(branchL.ID, 1, subL1.ID, 0)
	subL2 := addLine(sch, NewPoint(4*StrideWide, -ShuntOffsetY-GroundOffsetY), z2, 0.25, spec.Freq, spec.Realization, spec.Substrate)
	sch.AddWire(branchL.ID, 1, subL2.ID, 0)

	riso2 := addResistor(sch, NewPoint(5*StrideWide, ShuntOffsetY+GroundOffsetY/2), r2, 90)
	sch.AddWire(subU2.ID, 1, riso2.ID, 0)
	sch.AddWire(subU1.ID, 1, riso2.ID, 1)
	riso3 := addResistor(sch, NewPoint(5*StrideWide, -ShuntOffsetY-GroundOffsetY/2), r2, 90)
	sch.AddWire(subL2.ID, 1, riso3.ID, 0)
	sch.AddWire(subL1.ID, 1, riso3.ID, 1)

	pOut1 := sch.AddComponent(KindPort, 180, NewPoint(5*StrideWide, 2*ShuntOffsetY))
	sch.AddWire(subU1.ID, 1, pOut1.ID, 0)
	pOut2 := sch.AddComponent(KindPort, 180, NewPoint(5*StrideWide, -2*ShuntOffsetY))
	sch.AddWire(subL1.ID, 1, pOut2.ID, 0)
	pOut3 := sch.AddComponent(KindPort, 180, NewPoint(5*StrideWide, 0))
	sch.AddWire(hub.ID, 0, pOut3.ID, 0)

	return sch, sch.Validate()
}
