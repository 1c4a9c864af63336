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

// addLine appends a through transmission-line section of impedance z0
// and physical length corresponding to lengthFrac wavelengths at freq,
// as an ideal TransmissionLine, a synthesized microstrip line, or — in
// Lumped realization — the single series reactance X = z0·sin(θ) that
// reproduces the line's ABCD "B" term at freq (§4.1, §4.5).
func addLine(sch *Schematic, pos Point, z0, lengthFrac, freq float64, real Realization, sub Substrate) *Component {
	lambda := C / freq
	switch real {
	case RealizationMicrostrip:
		res := Synthesize(z0, 2*math.Pi*lengthFrac, freq, sub)
		c := sch.AddComponent(KindMicrostripLine, 0, pos)
		c.SetParam("W", RenderParam(res.Width, "m"))
		c.SetParam("L", RenderParam(res.PhysicalLength, "m"))
		if res.Failed {
			c.SetParam("Error", "NonConvergence")
		}
		return c
	case RealizationLumped:
		return addLumpedSeries(sch, pos, z0, lengthFrac, freq)
	default:
		c := sch.AddComponent(KindTransmissionLine, 0, pos)
		c.SetParam("Z0", RenderParam(z0, "Ohm"))
		c.SetParam("L", RenderParam(lengthFrac*lambda, "m"))
		c.SetParam("E", RenderParam(lengthFrac*360, "deg"))
		return c
	}
}

// addLumpedSeries realizes a through line of impedance z0 and electrical
// length 2π·lengthFrac as a single series inductor or capacitor carrying
// the line's series reactance X = z0·sin(θ) at freq. At θ=π/2 (the
// quarter-wave case used throughout the combiners) this is the familiar
// L = z0/ω lumped quarter-wave inverter element.
func addLumpedSeries(sch *Schematic, pos Point, z0, lengthFrac, freq float64) *Component {
	omega := 2 * math.Pi * freq
	x := z0 * math.Sin(2*math.Pi*lengthFrac)
	if x >= 0 {
		c := sch.AddComponent(KindInductor, 0, pos)
		c.SetParam("L", RenderParam(x/omega, "H"))
		return c
	}
	c := sch.AddComponent(KindCapacitor, 0, pos)
	c.SetParam("C", RenderParam(-1/(omega*x), "F"))
	return c
}

// addStub appends a shunt open- or short-circuit stub of impedance z0
// and length lengthFrac wavelengths, as an ideal stub, a microstrip
// stub, or — in Lumped realization — the LC resonator it approximates
// at freq: a parallel tank for a short-circuit stub (high impedance at
// resonance, like the λ/4 shorted stub it replaces) or a series LC
// branch for an open-circuit stub (low impedance at resonance).
func addStub(sch *Schematic, pos Point, z0, lengthFrac, freq float64, open bool, real Realization, sub Substrate) *Component {
	lambda := C / freq
	switch real {
	case RealizationMicrostrip:
		res := Synthesize(z0, 2*math.Pi*lengthFrac, freq, sub)
		line := sch.AddComponent(KindMicrostripLine, 90, pos)
		line.SetParam("W", RenderParam(res.Width, "m"))
		line.SetParam("L", RenderParam(res.PhysicalLength, "m"))
		var term *Component
		if open {
			term = sch.AddComponent(KindMicrostripOpen, 0, pos.Add(NewPoint(20, 0)))
		} else {
			term = sch.AddComponent(KindMicrostripVia, 0, pos.Add(NewPoint(20, 0)))
		}
		sch.AddWire(line.ID, 1, term.ID, 0)
		return line
	case RealizationLumped:
		return addLumpedResonator(sch, pos, z0, freq, open)
	default:
		kind := KindShortStub
		if open {
			kind = KindOpenStub
		}
		c := sch.AddComponent(kind, 90, pos)
		c.SetParam("Z0", RenderParam(z0, "Ohm"))
		c.SetParam("L", RenderParam(lengthFrac*lambda, "m"))
		return c
	}
}

// addLumpedResonator realizes a stub's LC resonator equivalent, sized so
// that it resonates at freq with characteristic impedance z0 (L=z0/ω,
// C=1/(z0·ω)): a parallel L-C tank for a short-circuit stub, a series
// L-C branch for an open-circuit stub. Returns the inductor.
func addLumpedResonator(sch *Schematic, pos Point, z0, freq float64, open bool) *Component {
	omega := 2 * math.Pi * freq
	l := sch.AddComponent(KindInductor, 90, pos)
	l.SetParam("L", RenderParam(z0/omega, "H"))
	c := sch.AddComponent(KindCapacitor, 90, pos.Add(NewPoint(20, 0)))
	c.SetParam("C", RenderParam(1/(z0*omega), "F"))
	if open {
		sch.AddWire(l.ID, 1, c.ID, 0)
		return l
	}
	node := sch.AddNode(pos, true)
	sch.AddWire(node.ID, 0, l.ID, 0)
	sch.AddWire(node.ID, 0, c.ID, 0)
	gnd := sch.AddComponent(KindGround, 0, pos.Add(NewPoint(0, 20)))
	sch.AddWire(l.ID, 1, gnd.ID, 0)
	sch.AddWire(c.ID, 1, gnd.ID, 0)
	return l
}

// SynthesizeSteppedImpedanceFilter builds a stepped-impedance LP
// approximation: series prototype inductors become short sections of
// high-impedance line, shunt capacitors become short sections of
// low-impedance line (§4.5, LP only).
func SynthesizeSteppedImpedanceFilter(spec FilterSpec) (*Schematic, error) {
	if spec.Class != ClassLowpass {
		return nil, NewConfigurationError("stepped-impedance realization is only defined for lowpass filters")
	}
	if spec.MinLineZ <= 0 || spec.MaxLineZ <= 0 {
		return nil, NewConfigurationError("stepped-impedance realization requires MinLineZ and MaxLineZ")
	}
	g, err := prototypeCoefficients(spec)
	if err != nil {
		return nil, err
	}
	beta := 2 * math.Pi * spec.Fc / C

	sch := NewSchematic()
	pIn := sch.AddComponent(KindPort, 0, NewPoint(0, 0))
	var prev *Component = pIn
	prevPort := 0
	x := StrideWide
	prevZ0 := spec.Zs
	for k := 1; k <= spec.Order; k++ {
		shunt := (k%2 == 1) == spec.IsCLC
		var z0, lenFrac float64
		if shunt {
			z0 = spec.MinLineZ
			lenFrac = (g[k] * spec.MinLineZ / spec.Zs) / (beta * C / spec.Fc) // g*Zmin/(beta*Z0), expressed as a length fraction of lambda
		} else {
			z0 = spec.MaxLineZ
			lenFrac = (g[k] * spec.Zs / spec.MaxLineZ) / (beta * C / spec.Fc)
		}
		if spec.Realization == RealizationMicrostrip && z0 != prevZ0 {
			step := sch.AddComponent(KindMicrostripStep, 0, NewPoint(x-StrideDefault/2, 0))
			sch.AddWire(prev.ID, prevPort, step.ID, 0)
			prev, prevPort = step, 1
		}
		line := addLine(sch, NewPoint(x, 0), z0, lenFrac, spec.Fc, spec.Realization, spec.Substrate)
		sch.AddWire(prev.ID, prevPort, line.ID, 0)
		prevZ0 = z0
		prev, prevPort = line, 1
		x += StrideWide
	}
	pOut := sch.AddComponent(KindPort, 180, NewPoint(x, 0))
	sch.AddWire(prev.ID, prevPort, pOut.ID, 0)
	return sch, sch.Validate()
}

// SynthesizeQuarterWaveStubFilter builds the quarter-wave shunt-stub
// BP/BS filter: N+1 quarter-wave through-line sections of Z0 separated
// by N shunt quarter-wave stubs (short-circuited for BP, open-circuited for BS)
// of impedance derived from the fractional bandwidth and g-coefficient
// (§4.5, BP and BS only).
func SynthesizeQuarterWaveStubFilter(spec FilterSpec) (*Schematic, error) {
	if spec.Class != ClassBandpass && spec.Class != ClassBandstop {
		return nil, NewConfigurationError("quarter-wave stub realization is only defined for bandpass/bandstop filters")
	}
	if spec.Bandwidth <= 0 {
		return nil, NewConfigurationError("quarter-wave stub realization requires a positive bandwidth")
	}
	g, err := prototypeCoefficients(spec)
	if err != nil {
		return nil, err
	}
	bwFrac := spec.Bandwidth / spec.Fc
	openStub := spec.Class == ClassBandstop

	sch := NewSchematic()
	pIn := sch.AddComponent(KindPort, 0, NewPoint(0, 0))
	prevID := pIn.ID
	prevPort := 0
	x := StrideWide

	for k := 1; k <= spec.Order+1; k++ {
		line := addLine(sch, NewPoint(x, 0), spec.Zs, 0.25, spec.Fc, spec.Realization, spec.Substrate)
		sch.AddWire(prevID, prevPort, line.ID, 0)
		prevID, prevPort = line.ID, 1
		x += StrideWide

		if k <= spec.Order {
			node := sch.AddNode(NewPoint(x, 0), true)
			sch.AddWire(prevID, prevPort, node.ID, 0)
			var zStub float64
			if openStub {
				zStub = 4 * spec.Zs / (math.Pi * bwFrac * g[k])
			} else {
				zStub = math.Pi * spec.Zs * bwFrac / (4 * g[k])
			}
			stub := addStub(sch, NewPoint(x, ShuntOffsetY), zStub, 0.25, spec.Fc, openStub, spec.Realization, spec.Substrate)
			sch.AddWire(node.ID, 0, stub.ID, 0)
			prevID, prevPort = node.ID, 0
			x += StrideShunt
		}
	}
	pOut := sch.AddComponent(KindPort, 180, NewPoint(x, 0))
	sch.AddWire(prevID, prevPort, pOut.ID, 0)
	return sch, sch.Validate()
}

// SynthesizeEndCoupledFilter builds an end-coupled (gap-coupled) BP
// filter: N+1 admittance inverters realized as series gap capacitors
// between N resonant line sections (§4.5, BP only).
func SynthesizeEndCoupledFilter(spec FilterSpec) (*Schematic, error) {
	if spec.Class != ClassBandpass {
		return nil, NewConfigurationError("end-coupled realization is only defined for bandpass filters")
	}
	g, err := prototypeCoefficients(spec)
	if err != nil {
		return nil, err
	}
	bwFrac := spec.Bandwidth / spec.Fc
	w0 := 2 * math.Pi * spec.Fc

	sch := NewSchematic()
	pIn := sch.AddComponent(KindPort, 0, NewPoint(0, 0))
	var prev *Component = pIn
	prevPort := 0
	x := StrideWide

	js := make([]float64, spec.Order+1)
	for k := 0; k <= spec.Order; k++ {
		js[k] = 0.5 * math.Pi * bwFrac / math.Sqrt(g[k]*g[k+1])
	}
	kCoupling, qe0, qeN := AdjustResonatorCoupling(g, bwFrac)
	pIn.SetParam("Qe", FormatNumber(qe0, 4))

	for k := 0; k <= spec.Order; k++ {
		j := js[k]
		if IsNull(1 - Sqr(j)) {
			return nil, NewNumericOverflow("end-coupled: 1-J² vanishes for inverter %d (J=%v)", k, j)
		}
		b := j / (1 - Sqr(j))
		capVal := b / (w0 * spec.Zs)
		c := sch.AddComponent(KindCapacitor, 0, NewPoint(x, 0))
		c.SetParam("C", RenderParam(capVal, "F"))
		if k >= 1 && k <= spec.Order-1 {
			c.SetParam("K", FormatNumber(kCoupling[k-1], 4))
		}
		sch.AddWire(prev.ID, prevPort, c.ID, 0)
		prev, prevPort = c, 1
		x += StrideDefault

		if k < spec.Order {
			line := addLine(sch, NewPoint(x, 0), spec.Zs, 0.5, spec.Fc, spec.Realization, spec.Substrate)
			sch.AddWire(prev.ID, prevPort, line.ID, 0)
			prev, prevPort = line, 1
			x += StrideWide
		}
	}
	pOut := sch.AddComponent(KindPort, 180, NewPoint(x, 0))
	pOut.SetParam("Qe", FormatNumber(qeN, 4))
	sch.AddWire(prev.ID, prevPort, pOut.ID, 0)
	return sch, sch.Validate()
}

// SynthesizeCapacitivelyCoupledShuntFilter builds the capacitively
// coupled-shunt-resonator BP filter: each resonator is a shunt
// quarter-wave line lengthened or shortened by the coupling capacitance,
// joined by series coupling capacitors (§4.5, BP only).
func SynthesizeCapacitivelyCoupledShuntFilter(spec FilterSpec) (*Schematic, error) {
	if spec.Class != ClassBandpass {
		return nil, NewConfigurationError("capacitively-coupled-shunt realization is only defined for bandpass filters")
	}
	g, err := prototypeCoefficients(spec)
	if err != nil {
		return nil, err
	}
	bwFrac := spec.Bandwidth / spec.Fc
	w0 := 2 * math.Pi * spec.Fc
	lambda := C / spec.Fc
	kCoupling, qe0, qeN := AdjustResonatorCoupling(g, bwFrac)

	sch := NewSchematic()
	pIn := sch.AddComponent(KindPort, 0, NewPoint(0, 0))
	pIn.SetParam("Qe", FormatNumber(qe0, 4))
	prevID := pIn.ID
	prevPort := 0
	x := StrideWide

	for k := 1; k <= spec.Order; k++ {
		j := 0.5 * math.Pi * bwFrac / g[k]
		deltaC := j / w0

		lenFrac := 0.25 + spec.Zs*w0*deltaC*lambda/(2*math.Pi*lambda)
		if lenFrac < 0 {
			lenFrac += 0.25
		}

		node := sch.AddNode(NewPoint(x, 0), true)
		sch.AddWire(prevID, prevPort, node.ID, 0)
		stub := addLine(sch, NewPoint(x, ShuntOffsetY), spec.Zs, lenFrac, spec.Fc, spec.Realization, spec.Substrate)
		gnd := sch.AddComponent(KindGround, 0, NewPoint(x, GroundOffsetY))
		sch.AddWire(node.ID, 0, stub.ID, 0)
		sch.AddWire(stub.ID, 1, gnd.ID, 0)
		prevID, prevPort = node.ID, 0
		x += StrideDefault

		if k < spec.Order {
			c := sch.AddComponent(KindCapacitor, 0, NewPoint(x, 0))
			c.SetParam("C", RenderParam(deltaC, "F"))
			if k-1 < len(kCoupling) {
				c.SetParam("K", FormatNumber(kCoupling[k-1], 4))
			}
			sch.AddWire(prevID, prevPort, c.ID, 0)
			prevID, prevPort = c.ID, 1
			x += StrideDefault
		}
	}
	pOut := sch.AddComponent(KindPort, 180, NewPoint(x, 0))
	pOut.SetParam("Qe", FormatNumber(qeN, 4))
	sch.AddWire(prevID, prevPort, pOut.ID, 0)
	return sch, sch.Validate()
}

// SynthesizeCoupledLineFilter builds a side-coupled parallel-line BP
// filter: N+1 coupled-line sections, each a quarter-wave pair whose
// even/odd mode impedances are derived from the g-coefficients, then
// realized via the coupled-microstrip synthesizer when microstrip
// realization is requested (§4.5, BP only).
func SynthesizeCoupledLineFilter(spec FilterSpec) (*Schematic, error) {
	if spec.Class != ClassBandpass {
		return nil, NewConfigurationError("coupled-line realization is only defined for bandpass filters")
	}
	g, err := prototypeCoefficients(spec)
	if err != nil {
		return nil, err
	}
	bwFrac := spec.Bandwidth / spec.Fc

	sch := NewSchematic()
	pIn := sch.AddComponent(KindPort, 0, NewPoint(0, 0))
	var prev *Component = pIn
	prevPort := 0
	x := StrideWide

	for k := 0; k <= spec.Order; k++ {
		j := 0.5 * math.Pi * bwFrac / math.Sqrt(g[k]*g[k+1])
		zEven := spec.Zs * (1 + j + Sqr(j))
		zOdd := spec.Zs * (1 - j + Sqr(j))

		var comp *Component
		if spec.Realization == RealizationMicrostrip {
			res := SynthesizeCoupled(zEven, zOdd, spec.Fc, spec.Substrate)
			comp = sch.AddComponent(KindMicrostripLine, 0, NewPoint(x, 0))
			comp.SetParam("W", RenderParam(res.Width, "m"))
			comp.SetParam("S", RenderParam(res.Gap, "m"))
			if res.Failed {
				comp.SetParam("Error", "NonConvergence")
			}
		} else {
			comp = sch.AddComponent(KindTransmissionLine, 0, NewPoint(x, 0))
			comp.SetParam("Ze", RenderParam(zEven, "Ohm"))
			comp.SetParam("Zo", RenderParam(zOdd, "Ohm"))
			comp.SetParam("L", RenderParam(0.25*C/spec.Fc, "m"))
		}
		sch.AddWire(prev.ID, prevPort, comp.ID, 0)
		prev, prevPort = comp, 1
		x += StrideWide
	}
	pOut := sch.AddComponent(KindPort, 180, NewPoint(x, 0))
	sch.AddWire(prev.ID, prevPort, pOut.ID, 0)
	return sch, sch.Validate()
}
