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

// SynthesizeMatching dispatches to the requested matching-network
// topology (§4.6). Two-port mode synthesizes the input and output
// sub-specs independently against the device's conjugate-match
// impedances, then composes the two schematics.
func SynthesizeMatching(spec MatchingSpec) (*Schematic, error) {
	if spec.TwoPort {
		return synthesizeTwoPortMatching(spec)
	}
	if spec.Freq <= 0 || spec.Zs <= 0 {
		return nil, NewConfigurationError("matching network requires a positive frequency and source impedance")
	}
	switch spec.Topology {
	case TopoLSection:
		return synthesizeLSection(spec)
	case TopoSingleStub:
		return synthesizeSingleStub(spec)
	case TopoDoubleStub:
		return synthesizeDoubleStub(spec)
	case TopoMultiSectionQW:
		return synthesizeMultiSectionQW(spec)
	case TopoCascadedLC:
		return synthesizeCascadedLC(spec)
	case TopoLambda8Lambda4:
		return synthesizeLambda8Lambda4(spec)
	default:
		return nil, NewConfigurationError("unsupported matching topology %q", spec.Topology)
	}
}

// synthesizeLSection builds the two-element L-section matching
// Zs to Zl, reusing the existing Zmatch solver (§4.6).
func synthesizeLSection(spec MatchingSpec) (*Schematic, error) {
	_, m := Zmatch(complex(spec.Zs, 0), spec.Zl)
	sch := NewSchematic()
	pIn := sch.AddComponent(KindPort, 0, NewPoint(0, 0))
	pOut := sch.AddComponent(KindPort, 180, NewPoint(StrideWide*2, 0))

	addReactance := func(pos Point, x float64, rotation int) *Component {
		if x > 0 {
			c := sch.AddComponent(KindInductor, rotation, pos)
			c.SetParam("L", RenderParam(x/(2*math.Pi*spec.Freq), "H"))
			return c
		}
		c := sch.AddComponent(KindCapacitor, rotation, pos)
		c.SetParam("C", RenderParam(-1/(2*math.Pi*spec.Freq*x), "F"))
		return c
	}
	addSusceptance := func(pos Point, b float64, rotation int) *Component {
		if b > 0 {
			c := sch.AddComponent(KindCapacitor, rotation, pos)
			c.SetParam("C", RenderParam(b/(2*math.Pi*spec.Freq), "F"))
			return c
		}
		c := sch.AddComponent(KindInductor, rotation, pos)
		c.SetParam("L", RenderParam(-1/(2*math.Pi*spec.Freq*b), "H"))
		return c
	}

	var shuntAt Point
	if m.AtSource {
		shuntAt = NewPoint(StrideWide/2, 0)
	} else {
		shuntAt = NewPoint(3*StrideWide/2, 0)
	}
	node := sch.AddNode(shuntAt, true)
	shuntX := addSusceptance(shuntAt.Add(NewPoint(0, ShuntOffsetY)), 1/m.xp, 90)
	gnd := sch.AddComponent(KindGround, 0, shuntAt.Add(NewPoint(0, GroundOffsetY)))
	sch.AddWire(shuntX.ID, 1, gnd.ID, 0)

	if m.AtSource {
		sch.AddWire(pIn.ID, 0, node.ID, 0)
		sch.AddWire(node.ID, 0, shuntX.ID, 0)
		series := addReactance(NewPoint(StrideWide, 0), m.xr, 0)
		sch.AddWire(node.ID, 0, series.ID, 0)
		sch.AddWire(series.ID, 1, pOut.ID, 0)
	} else {
		series := addReactance(NewPoint(StrideWide/2, 0), m.xr, 0)
		sch.AddWire(pIn.ID, 0, series.ID, 0)
		sch.AddWire(series.ID, 1, node.ID, 0)
		sch.AddWire(node.ID, 0, shuntX.ID, 0)
		sch.AddWire(node.ID, 0, pOut.ID, 0)
	}
	return sch, sch.Validate()
}

// synthesizeSingleStub builds a single-stub tuner: a length t of
// Z0 line from the load followed by a shunt open/short stub (§4.6).
func synthesizeSingleStub(spec MatchingSpec) (*Schematic, error) {
	z0 := spec.Zs
	zl := spec.Zl
	yl := 1 / zl
	gl, bl := real(yl)*z0, imag(yl)*z0

	// quadratic for distance t = tan(beta*d): from standard stub-match
	// derivation, t satisfies gl*t^2 - 2*bl*t + (gl-1) = 0 when gl != 1
	var t float64
	if math.Abs(gl-1) < 1e-12 {
		t = -bl / 2
	} else {
		disc := gl * ((1-gl)*(1-gl) + bl*bl)
		if disc < 0 {
			return NewSchematic(), NewUnmatchableLoad("single-stub: no real solution for load %v", zl)
		}
		root := math.Sqrt(disc)
		t1 := (bl + root) / (gl - 1)
		t2 := (bl - root) / (gl - 1)
		t = t1
		if t1 == 0 {
			t = t2
		}
	}
	d := math.Atan(t) / (2 * math.Pi) // fraction of lambda
	if d < 0 {
		d += 0.5
	}

	// susceptance the stub must cancel, normalized
	b := (gl*gl*t - (1-bl*t)*(bl+t)) / ((1-bl*t)*(1-bl*t) + gl*gl*t*t)

	var stubLenFrac float64
	if spec.OpenStub {
		stubLenFrac = -math.Atan(b) / (2 * math.Pi)
	} else {
		stubLenFrac = math.Atan(1/b) / (2 * math.Pi)
	}
	for stubLenFrac < 0 {
		stubLenFrac += 0.5
	}

	sch := NewSchematic()
	pIn := sch.AddComponent(KindPort, 0, NewPoint(0, 0))
	line := addLine(sch, NewPoint(StrideWide, 0), z0, d, spec.Freq, spec.Realization, spec.Substrate)
	sch.AddWire(pIn.ID, 0, line.ID, 0)
	node := sch.AddNode(NewPoint(2*StrideWide, 0), true)
	sch.AddWire(line.ID, 1, node.ID, 0)
	stub := addStub(sch, NewPoint(2*StrideWide, ShuntOffsetY), z0, stubLenFrac, spec.Freq, spec.OpenStub, spec.Realization, spec.Substrate)
	sch.AddWire(node.ID, 0, stub.ID, 0)
	pOut := sch.AddComponent(KindPort, 180, NewPoint(2*StrideWide+StrideDefault, 0))
	sch.AddWire(node.ID, 0, pOut.ID, 0)
	return sch, sch.Validate()
}

// synthesizeDoubleStub builds a fixed-spacing (λ/8) double-stub tuner,
// rejecting loads that fall in the unmatchable region (§4.6).
func synthesizeDoubleStub(spec MatchingSpec) (*Schematic, error) {
	z0 := spec.Zs
	yl := 1 / spec.Zl
	y0 := 1 / z0
	gl := real(yl) / real(complex(y0, 0))
	t := math.Tan(2 * math.Pi * 0.125) // spacing d=lambda/8

	if gl > (1+t*t)/(2*t*t) {
		return NewSchematic(), NewUnmatchableLoad("double-stub: load conductance %v exceeds the unmatchable-region bound for d=λ/8", gl)
	}

	bl := imag(yl) / real(complex(y0, 0))
	b11 := -bl + (1+math.Sqrt((1+t*t)*gl-t*t*gl*gl))/t
	b21 := 1/t + math.Sqrt(gl*(1+t*t)-t*t*gl*gl)/(gl*t)

	var len1, len2 float64
	if spec.OpenStub {
		len1 = -math.Atan(b11) / (2 * math.Pi)
		len2 = -math.Atan(b21) / (2 * math.Pi)
	} else {
		len1 = math.Atan(1/b11) / (2 * math.Pi)
		len2 = math.Atan(1/b21) / (2 * math.Pi)
	}
	for len1 < 0 {
		len1 += 0.5
	}
	for len2 < 0 {
		len2 += 0.5
	}

	sch := NewSchematic()
	pIn := sch.AddComponent(KindPort, 0, NewPoint(0, 0))
	node1 := sch.AddNode(NewPoint(StrideWide, 0), true)
	sch.AddWire(pIn.ID, 0, node1.ID, 0)
	stub1 := addStub(sch, NewPoint(StrideWide, ShuntOffsetY), z0, len1, spec.Freq, spec.OpenStub, spec.Realization, spec.Substrate)
	sch.AddWire(node1.ID, 0, stub1.ID, 0)

	line := addLine(sch, NewPoint(2*StrideWide, 0), z0, 0.125, spec.Freq, spec.Realization, spec.Substrate)
	sch.AddWire(node1.ID, 0, line.ID, 0)

	node2 := sch.AddNode(NewPoint(3*StrideWide, 0), true)
	sch.AddWire(line.ID, 1, node2.ID, 0)
	stub2 := addStub(sch, NewPoint(3*StrideWide, ShuntOffsetY), z0, len2, spec.Freq, spec.OpenStub, spec.Realization, spec.Substrate)
	sch.AddWire(node2.ID, 0, stub2.ID, 0)

	pOut := sch.AddComponent(KindPort, 180, NewPoint(4*StrideWide, 0))
	sch.AddWire(node2.ID, 0, pOut.ID, 0)
	return sch, sch.Validate()
}

// binomialWeights returns the normalized C(N-1,k-1)/2^(N-1) taper
// weights for a binomial multisection transformer.
func binomialWeights(n int) []float64 {
	w := make([]float64, n)
	total := math.Pow(2, float64(n-1))
	c := 1.0
	for k := 0; k < n; k++ {
		w[k] = c / total
		c = c * float64(n-1-k) / float64(k+1)
	}
	return w
}

// chebyshevWeights holds the closed-form equal-ripple taper weights
// for N=1..7 sections (normalized to sum to 1).
var chebyshevWeights = map[int][]float64{
	1: {1.0},
	2: {0.5, 0.5},
	3: {0.3, 0.4, 0.3},
	4: {0.2, 0.3, 0.3, 0.2},
	5: {0.15, 0.2, 0.3, 0.2, 0.15},
	6: {0.1, 0.17, 0.23, 0.23, 0.17, 0.1},
	7: {0.08, 0.14, 0.18, 0.2, 0.18, 0.14, 0.08},
}

// synthesizeMultiSectionQW builds an N-section quarter-wave
// transformer with a binomial or Chebyshev impedance taper (§4.6).
func synthesizeMultiSectionQW(spec MatchingSpec) (*Schematic, error) {
	n := spec.Sections
	if n < 1 {
		return nil, NewConfigurationError("multi-section quarter-wave transformer requires Sections >= 1")
	}
	var weights []float64
	switch spec.Weighting {
	case WeightChebyshev:
		w, ok := chebyshevWeights[n]
		if !ok {
			return nil, NewConfigurationError("Chebyshev taper only tabulated for N=1..7, got %d", n)
		}
		weights = w
	default:
		weights = binomialWeights(n)
	}

	zl := real(spec.Zl)
	if zl <= 0 {
		return nil, NewConfigurationError("multi-section quarter-wave transformer requires a real, positive load resistance")
	}
	logRatio := math.Log(zl / spec.Zs)

	sch := NewSchematic()
	pIn := sch.AddComponent(KindPort, 0, NewPoint(0, 0))
	var prev *Component = pIn
	prevPort := 0
	x := StrideWide
	cum := 0.0
	zPrev := spec.Zs
	for k := 0; k < n; k++ {
		cum += weights[k]
		zJunction := spec.Zs * math.Exp(cum*logRatio)
		zSection := math.Sqrt(zPrev * zJunction)
		line := addLine(sch, NewPoint(x, 0), zSection, 0.25, spec.Freq, spec.Realization, spec.Substrate)
		sch.AddWire(prev.ID, prevPort, line.ID, 0)
		prev, prevPort = line, 1
		zPrev = zJunction
		x += StrideWide
	}
	pOut := sch.AddComponent(KindPort, 180, NewPoint(x, 0))
	sch.AddWire(prev.ID, prevPort, pOut.ID, 0)
	return sch, sch.Validate()
}

// synthesizeCascadedLC cascades N L-section stages across a
// geometric-progression of intermediate resistances (§4.6).
func synthesizeCascadedLC(spec MatchingSpec) (*Schematic, error) {
	n := spec.Sections
	if n < 1 {
		return nil, NewConfigurationError("cascaded-LC matching requires Sections >= 1")
	}
	r1, r2 := spec.Zs, real(spec.Zl)
	if r1 <= 0 || r2 <= 0 {
		return nil, NewConfigurationError("cascaded-LC matching requires positive real terminations")
	}

	sch := NewSchematic()
	pIn := sch.AddComponent(KindPort, 0, NewPoint(0, 0))
	var prev *Component = pIn
	prevPort := 0
	x := StrideWide

	rPrev := r1
	for k := 1; k <= n; k++ {
		rk := math.Pow(r1, float64(n-k)/float64(n)) * math.Pow(r2, float64(k)/float64(n))
		_, m := Zmatch(complex(rPrev, 0), complex(rk, 0))

		node := sch.AddNode(NewPoint(x, 0), true)
		sch.AddWire(prev.ID, prevPort, node.ID, 0)
		var shunt *Component
		if m.xp > 0 {
			shunt = sch.AddComponent(KindCapacitor, 90, NewPoint(x, ShuntOffsetY))
			shunt.SetParam("C", RenderParam(1/(2*math.Pi*spec.Freq*m.xp), "F"))
		} else {
			shunt = sch.AddComponent(KindInductor, 90, NewPoint(x, ShuntOffsetY))
			shunt.SetParam("L", RenderParam(-m.xp/(2*math.Pi*spec.Freq), "H"))
		}
		gnd := sch.AddComponent(KindGround, 0, NewPoint(x, GroundOffsetY))
		sch.AddWire(node.ID, 0, shunt.ID, 0)
		sch.AddWire(shunt.ID, 1, gnd.ID, 0)

		var series *Component
		if m.xr > 0 {
			series = sch.AddComponent(KindInductor, 0, NewPoint(x+StrideDefault, 0))
			series.SetParam("L", RenderParam(m.xr/(2*math.Pi*spec.Freq), "H"))
		} else {
			series = sch.AddComponent(KindCapacitor, 0, NewPoint(x+StrideDefault, 0))
			series.SetParam("C", RenderParam(-1/(2*math.Pi*spec.Freq*m.xr), "F"))
		}
		sch.AddWire(node.ID, 0, series.ID, 0)
		prev, prevPort = series, 1
		rPrev = rk
		x += StrideWide
	}
	pOut := sch.AddComponent(KindPort, 180, NewPoint(x, 0))
	sch.AddWire(prev.ID, prevPort, pOut.ID, 0)
	return sch, sch.Validate()
}

// synthesizeLambda8Lambda4 builds the two cascaded transmission-line
// solution for a complex load: a λ/8 line of impedance Zm followed by
// a λ/4 line of impedance |Zl| (§4.6).
func synthesizeLambda8Lambda4(spec MatchingSpec) (*Schematic, error) {
	zl := spec.Zl
	xl := imag(zl)
	magZl := cmplx.Abs(zl)
	if magZl == xl {
		return NewSchematic(), NewUnmatchableLoad("λ/8+λ/4 match: load %v makes |Zl|-Xl vanish", zl)
	}
	zm := math.Sqrt(spec.Zs * real(zl) * math.Abs(xl) / (math.Abs(xl) - xl))
	zmm := magZl

	sch := NewSchematic()
	pIn := sch.AddComponent(KindPort, 0, NewPoint(0, 0))
	line1 := addLine(sch, NewPoint(StrideWide, 0), zm, 0.125, spec.Freq, spec.Realization, spec.Substrate)
	sch.AddWire(pIn.ID, 0, line1.ID, 0)
	line2 := addLine(sch, NewPoint(2*StrideWide, 0), zmm, 0.25, spec.Freq, spec.Realization, spec.Substrate)
	sch.AddWire(line1.ID, 1, line2.ID, 0)
	pOut := sch.AddComponent(KindPort, 180, NewPoint(3*StrideWide, 0))
	sch.AddWire(line2.ID, 1, pOut.ID, 0)
	return sch, sch.Validate()
}

// portNeighbor finds the (ID, port) wired to the schematic's single
// Port component of the given rotation (0=input side, 180=output
// side), looking through the wire in either direction.
func portNeighbor(sch *Schematic, rotation int) (id string, port int) {
	var p *Component
	for _, c := range sch.Components {
		if c.Kind == KindPort && c.Rotation == rotation {
			p = c
			break
		}
	}
	if p == nil {
		return "", 0
	}
	for _, w := range sch.Wires {
		if w.From.ID == p.ID {
			return w.To.ID, w.To.Port
		}
		if w.To.ID == p.ID {
			return w.From.ID, w.From.Port
		}
	}
	return "", 0
}

// copyInto copies every node, non-Port component and internal wire of src
// into dst at the given position transform, returning the ID mapping
// so the caller can splice boundary wires using src's original IDs.
func copyInto(dst, src *Schematic, xform func(Point) Point) map[string]string {
	idMap := make(map[string]string)
	for _, n := range src.Nodes {
		nn := dst.AddNode(xform(n.Pos), n.Visible)
		idMap[n.ID] = nn.ID
	}
	for _, c := range src.Components {
		if c.Kind == KindPort {
			continue
		}
		nc := dst.AddComponent(c.Kind, c.Rotation, xform(c.Pos))
		for k, v := range c.Params {
			nc.SetParam(k, v)
		}
		idMap[c.ID] = nc.ID
	}
	for _, w := range src.Wires {
		from, to := idMap[w.From.ID], idMap[w.To.ID]
		if from == "" || to == "" {
			continue // endpoint was a dropped Port
		}
		dst.AddWire(from, w.From.Port, to, w.To.Port)
	}
	return idMap
}

// synthesizeTwoPortMatching synthesizes the IMN and OMN against the
// device's conjugate-match impedances and composes the two schematics:
// mirror the OMN, rename conflicting IDs, insert the device as an
// SParameterBlock, and splice the wires together (§4.6).
func synthesizeTwoPortMatching(spec MatchingSpec) (*Schematic, error) {
	if spec.Input == nil || spec.Output == nil {
		return nil, NewConfigurationError("two-port matching requires both Input and Output sub-specs")
	}
	tp := TwoPort{Z0: spec.Zs, S: spec.S}

	inSpec := *spec.Input
	inSpec.Zl = tp.SourceMatchImpedance()
	imn, err := SynthesizeMatching(inSpec)
	if err != nil {
		return nil, err
	}

	outSpec := *spec.Output
	outSpec.Zl = tp.LoadMatchImpedance()
	omn, err := SynthesizeMatching(outSpec)
	if err != nil {
		return nil, err
	}

	imnOutID, imnOutPort := portNeighbor(imn, 180)
	omnInID, omnInPort := portNeighbor(omn, 0)
	omnOutID, omnOutPort := portNeighbor(omn, 180)

	sch := NewSchematic()
	imnMap := copyInto(sch, imn, func(p Point) Point { return p })

	maxX := 0
	for _, c := range imn.Components {
		if c.Pos.X > maxX {
			maxX = c.Pos.X
		}
	}
	device := InsertSParameterBlock(sch, NewPoint(maxX+StrideWide, 0), tp)
	if imnOutID != "" {
		sch.AddWire(imnMap[imnOutID], imnOutPort, device.ID, 0)
	}

	// mirror the OMN horizontally about the device plane
	mirrorX := 2 * (maxX + StrideWide)
	omnMap := copyInto(sch, omn, func(p Point) Point { return NewPoint(mirrorX-p.X, p.Y) })
	if omnInID != "" {
		sch.AddWire(device.ID, 2, omnMap[omnInID], omnInPort)
	}

	pIn := sch.AddComponent(KindPort, 0, NewPoint(-StrideWide, 0))
	if imnOutID == "" {
		// degenerate IMN with no internal components: wire the source straight to the device
		sch.AddWire(pIn.ID, 0, device.ID, 0)
	} else if imnInID, imnInPort := portNeighbor(imn, 0); imnInID != "" {
		sch.AddWire(pIn.ID, 0, imnMap[imnInID], imnInPort)
	}

	pOut := sch.AddComponent(KindPort, 180, NewPoint(mirrorX+StrideWide, 0))
	if omnOutID != "" {
		sch.AddWire(omnMap[omnOutID], omnOutPort, pOut.ID, 0)
	} else {
		sch.AddWire(device.ID, 2, pOut.ID, 0)
	}

	return sch, sch.Validate()
}
