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

// ladderElement is one normalized prototype element awaiting frequency
// and impedance scaling.
type ladderElement struct {
	shunt bool
	kind  Kind
	value float64
}

// prototypeCoefficients resolves a filter spec's response to g[0..N+1]
// (§4.2). Elliptic has no g-prototype: for it this returns the
// ConfigurationError of GPrototype, and SynthesizeCanonicalFilter calls
// the elliptic solver itself.
func prototypeCoefficients(spec FilterSpec) ([]float64, error) {
	switch spec.Response {
	case ResponseChebyshev:
		return GPrototypeChebyshev(spec.Order, spec.RippleDB)
	default:
		return GPrototype(spec.Response, spec.Order)
	}
}

// canonicalLPHPElements builds the scaled LP (or, via LP->HP
// transform, HP) element chain from g-coefficients (§4.4).
func canonicalLPHPElements(g []float64, spec FilterSpec) []ladderElement {
	n := spec.Order
	wc := 2 * math.Pi * spec.Fc
	els := make([]ladderElement, n)
	for k := 1; k <= n; k++ {
		shunt := (k%2 == 1) == spec.IsCLC
		var kind Kind
		var value float64
		if shunt {
			kind, value = KindCapacitor, g[k]/(wc*spec.Zs)
		} else {
			kind, value = KindInductor, g[k]*spec.Zs/wc
		}
		if spec.Class == ClassHighpass {
			value = LPtoHP(value, wc)
			if kind == KindCapacitor {
				kind = KindInductor
			} else {
				kind = KindCapacitor
			}
		}
		els[k-1] = ladderElement{shunt: shunt, kind: kind, value: value}
	}
	return els
}

// bpBranch is a series- or shunt-role bandpass/bandstop resonator: an
// inductor and a capacitor whose arrangement (chained vs bridging the
// same two nodes) depends on whether it realizes a series or a shunt
// role, and on bandpass-vs-bandstop duality (§4.4).
type bpBranch struct {
	shunt  bool
	l, c   float64
	resonantChain bool // true: L and C are wired in series with each other; false: L and C bridge the same two nodes
}

// canonicalBPBSElements builds the bandpass/bandstop resonator chain
// from g-coefficients. Each LP prototype element becomes a resonator;
// bandstop is the dual of bandpass (series<->shunt role keeps its
// position, but the internal L/C arrangement flips between chained and
// bridging, per §4.4).
func canonicalBPBSElements(g []float64, spec FilterSpec) []bpBranch {
	n := spec.Order
	wc := 2 * math.Pi * spec.Fc
	delta := 2 * math.Pi * spec.Bandwidth
	w0 := math.Sqrt(Sqr(wc) - Sqr(delta)/4)

	branches := make([]bpBranch, n)
	bandstop := spec.Class == ClassBandstop
	for k := 1; k <= n; k++ {
		shunt := (k%2 == 1) == spec.IsCLC
		var l, c float64
		if shunt {
			// prototype shunt capacitor g_k
			c = g[k] / (spec.Zs * delta)
			l = (spec.Zs * delta) / (Sqr(w0) * g[k])
		} else {
			// prototype series inductor g_k
			l = spec.Zs * g[k] / delta
			c = delta / (Sqr(w0) * spec.Zs * g[k])
		}
		branches[k-1] = bpBranch{shunt: shunt, l: l, c: c, resonantChain: shunt == bandstop}
	}
	return branches
}

// SynthesizeCanonicalFilter builds the canonical ladder network for an
// LP/HP/BP/BS filter spec (§4.4). Elliptic responses bypass the
// g-coefficient path and scale the solver's normalized element values
// directly.
func SynthesizeCanonicalFilter(spec FilterSpec) (*Schematic, error) {
	if spec.Order < 1 {
		return nil, NewConfigurationError("filter order must be >= 1, got %d", spec.Order)
	}
	if spec.Fc <= 0 || spec.Zs <= 0 {
		return nil, NewConfigurationError("filter cutoff frequency and source impedance must be positive")
	}
	if (spec.Class == ClassBandpass || spec.Class == ClassBandstop) && spec.Bandwidth <= 0 {
		return nil, NewConfigurationError("bandpass/bandstop filters require a positive bandwidth")
	}

	sch := NewSchematic()

	if spec.Response == ResponseElliptic {
		res, err := SynthesizeElliptic(spec.Order, spec.RippleDB, spec.StopbandDB, spec.Zs, spec.Elliptic, spec.SemiLumped)
		if err != nil {
			return nil, err
		}
		wc := 2 * math.Pi * spec.Fc
		n := len(res.Lseries)
		els := make([]ladderElement, n)
		for k := 0; k < n; k++ {
			shunt := (k%2 == 0) == spec.IsCLC
			if shunt {
				els[k] = ladderElement{shunt: true, kind: KindCapacitor, value: res.Cshunt[k] / (wc * spec.Zs)}
			} else {
				els[k] = ladderElement{shunt: false, kind: KindInductor, value: res.Lseries[k] * spec.Zs / wc}
			}
		}
		buildLPHPLadder(sch, els, spec)
		return sch, sch.Validate()
	}

	g, err := prototypeCoefficients(spec)
	if err != nil {
		return nil, err
	}

	switch spec.Class {
	case ClassLowpass, ClassHighpass:
		els := canonicalLPHPElements(g, spec)
		buildLPHPLadder(sch, els, spec)
	case ClassBandpass, ClassBandstop:
		branches := canonicalBPBSElements(g, spec)
		buildBPBSLadder(sch, branches, spec)
	default:
		return nil, NewConfigurationError("unsupported filter class %q", spec.Class)
	}
	return sch, sch.Validate()
}

// buildLPHPLadder places a straight series/shunt ladder of two-terminal
// elements along y=0, per the placement rule in §4.4.
func buildLPHPLadder(sch *Schematic, els []ladderElement, spec FilterSpec) {
	pIn := sch.AddComponent(KindPort, 0, NewPoint(0, 0))
	x := StrideDefault
	prevID := pIn.ID
	prevPort := 0

	for _, el := range els {
		if el.shunt {
			node := sch.AddNode(NewPoint(x, 0), true)
			sch.AddWire(prevID, prevPort, node.ID, 0)
			comp := sch.AddComponent(el.kind, 90, NewPoint(x, ShuntOffsetY))
			setElementParam(comp, el.kind, el.value)
			gnd := sch.AddComponent(KindGround, 0, NewPoint(x, GroundOffsetY))
			sch.AddWire(node.ID, 0, comp.ID, 0)
			sch.AddWire(comp.ID, 1, gnd.ID, 0)
			prevID, prevPort = node.ID, 0
		} else {
			comp := sch.AddComponent(el.kind, 0, NewPoint(x, 0))
			setElementParam(comp, el.kind, el.value)
			sch.AddWire(prevID, prevPort, comp.ID, 0)
			prevID, prevPort = comp.ID, 1
		}
		x += StrideDefault
	}

	pOut := sch.AddComponent(KindPort, 180, NewPoint(x, 0))
	sch.AddWire(prevID, prevPort, pOut.ID, 0)
}

// buildBPBSLadder places the bandpass/bandstop resonator chain. Series
// roles chain along the main line (possibly as two components forming
// one resonator); shunt roles branch to ground (possibly as two
// components in parallel or chained, per bpBranch.resonantChain).
func buildBPBSLadder(sch *Schematic, branches []bpBranch, spec FilterSpec) {
	pIn := sch.AddComponent(KindPort, 0, NewPoint(0, 0))
	x := StrideWide
	prevID := pIn.ID
	prevPort := 0

	for _, br := range branches {
		if !br.shunt {
			a := sch.AddComponent(KindInductor, 0, NewPoint(x, 0))
			setElementParam(a, KindInductor, br.l)
			sch.AddWire(prevID, prevPort, a.ID, 0)
			if br.resonantChain {
				b := sch.AddComponent(KindCapacitor, 0, NewPoint(x+StrideDefault, 0))
				setElementParam(b, KindCapacitor, br.c)
				sch.AddWire(a.ID, 1, b.ID, 0)
				prevID, prevPort = b.ID, 1
				x += StrideDefault
			} else {
				// L and C bridge the same two main-line nodes (parallel notch)
				nextNode := sch.AddNode(NewPoint(x+StrideDefault, 0), true)
				sch.AddWire(a.ID, 1, nextNode.ID, 0)
				c := sch.AddComponent(KindCapacitor, 0, NewPoint(x, ShuntOffsetY))
				setElementParam(c, KindCapacitor, br.c)
				sch.AddWire(prevID, prevPort, c.ID, 0)
				sch.AddWire(c.ID, 1, nextNode.ID, 0)
				prevID, prevPort = nextNode.ID, 0
			}
		} else {
			node := sch.AddNode(NewPoint(x, 0), true)
			sch.AddWire(prevID, prevPort, node.ID, 0)
			l := sch.AddComponent(KindInductor, 90, NewPoint(x, ShuntOffsetY))
			setElementParam(l, KindInductor, br.l)
			gnd := sch.AddComponent(KindGround, 0, NewPoint(x, GroundOffsetY))
			if br.resonantChain {
				c := sch.AddComponent(KindCapacitor, 90, NewPoint(x+40, ShuntOffsetY))
				setElementParam(c, KindCapacitor, br.c)
				sch.AddWire(node.ID, 0, l.ID, 0)
				sch.AddWire(l.ID, 1, c.ID, 0)
				sch.AddWire(c.ID, 1, gnd.ID, 0)
			} else {
				c := sch.AddComponent(KindCapacitor, 90, NewPoint(x+40, ShuntOffsetY))
				setElementParam(c, KindCapacitor, br.c)
				sch.AddWire(node.ID, 0, l.ID, 0)
				sch.AddWire(l.ID, 1, gnd.ID, 0)
				sch.AddWire(node.ID, 0, c.ID, 0)
				sch.AddWire(c.ID, 1, gnd.ID, 0)
			}
			prevID, prevPort = node.ID, 0
		}
		x += StrideShunt
	}

	pOut := sch.AddComponent(KindPort, 180, NewPoint(x, 0))
	sch.AddWire(prevID, prevPort, pOut.ID, 0)
}

// setElementParam renders a lumped element's value into its parameter
// bag, using the unit implied by its kind.
func setElementParam(c *Component, kind Kind, value float64) {
	switch kind {
	case KindInductor:
		c.SetParam("L", RenderParam(value, "H"))
	case KindCapacitor:
		c.SetParam("C", RenderParam(value, "F"))
	}
}
