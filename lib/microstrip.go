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

// Analyze computes the effective relative permittivity and
// characteristic impedance of a microstrip line of given width on the
// given substrate at the given frequency, per the Hammerstad-Jensen
// quasi-static model with thickness correction and Kirschning-Jensen
// frequency dispersion (§4.1).
func Analyze(width float64, sub Substrate, freq float64) (erEff, z0 float64) {
	h := sub.Height
	u := width / h

	// thickness correction (Hammerstad-Jensen, widened effective width)
	if sub.Thickness > 0 && sub.Thickness < h/2 {
		t := sub.Thickness / h
		var dw float64
		if u >= 1/(2*math.Pi) {
			dw = t / math.Pi * (1 + math.Log(2*h/sub.Thickness))
		} else {
			dw = t / math.Pi * (1 + math.Log(4*math.Pi*width/sub.Thickness))
		}
		u += dw
	}

	erEffStatic, z0Static := hammerstadJensenStatic(u, sub.Er)

	// Kirschning-Jensen dispersion
	erEff = kirschningDispersion(erEffStatic, sub.Er, u, freq, h)
	z0 = kirschningImpedance(z0Static, sub.Er, erEffStatic, erEff, u, freq, h)
	return
}

// hammerstadJensenStatic evaluates the quasi-static effective
// permittivity and impedance for normalized width u = W/h.
func hammerstadJensenStatic(u, er float64) (erEff, z0 float64) {
	a := 1 + 1./49*math.Log((math.Pow(u, 4)+Sqr(u/52))/(math.Pow(u, 4)+0.432)) +
		1./18.7*math.Log(1+Cube(u/18.1))
	b := 0.564 * math.Pow((er-0.9)/(er+3), 0.053)
	erEff = (er+1)/2 + (er-1)/2*math.Pow(1+10/u, -a*b)

	f := 6 + (2*math.Pi-6)*math.Exp(-math.Pow(30.666/u, 0.7528))
	z0Air := Z0Vac / (2 * math.Pi) * math.Log(f/u+math.Sqrt(1+Sqr(2/u)))
	z0 = z0Air / math.Sqrt(erEff)
	return
}

// Cube returns v^3.
func Cube(v float64) float64 {
	return v * v * v
}

// kirschningDispersion applies the Kirschning-Jensen frequency
// dispersion model to the static effective permittivity.
func kirschningDispersion(erEffStatic, er, u, freq, h float64) float64 {
	fn := freq * h * 1e-6 // normalized frequency-height product (GHz·mm convention folded into coefficients)

	p1 := 0.27488 + u*(0.6315+0.525/math.Pow(1+0.0157*fn, 20)) - 0.065683*math.Exp(-8.7513*u)
	p2 := 0.33622 * (1 - math.Exp(-0.03442*er))
	p3 := 0.0363 * math.Exp(-4.6*u) * (1 - math.Exp(-math.Pow(fn/38.7, 4.97)))
	p4 := 1 + 2.751*(1-math.Exp(-math.Pow(er/15.916, 8)))
	p := p1 * p2 * math.Pow((0.1844+p3*p4)*fn, 1.5763)

	return er - (er-erEffStatic)/(1+p)
}

// kirschningImpedance applies the corresponding dispersion correction
// to the characteristic impedance.
func kirschningImpedance(z0Static, er, erEffStatic, erEffDynamic, u, freq, h float64) float64 {
	fn := freq * h * 1e-6
	r1 := 0.03891 * math.Pow(er, 1.4)
	r2 := 0.267 * math.Pow(u, 7)
	r3 := 4.766 * math.Exp(-3.228 * math.Pow(u, 0.641))
	r4 := 0.016 + math.Pow(0.0514*er, 4.524)
	r5 := math.Pow(fn/28.843, 12)
	r6 := 22.2 * math.Pow(u, 1.92)

	r7 := 1.206 - 0.3144*math.Exp(-r1)*(1-math.Exp(-r2))
	r8 := 1 + 1.275*(1-math.Exp(-0.004625*r3*math.Pow(er, 1.674)*math.Pow(fn/18.365, 2.745)))
	r9 := 5.086 * r4 * r5 / (0.3838 + 0.386*r4) * math.Exp(-r6) / (1 + 1.2992*r5) *
		math.Pow(er-1, 6) / (1 + 10*math.Pow(er-1, 6))
	r10 := 0.00044 * math.Pow(er, 2.136) + 0.0184
	r11 := math.Pow(fn/19.47, 6) / (1 + 0.0962*math.Pow(fn/19.47, 6))
	r12 := 1 / (1 + 0.00245*Sqr(u))
	r13 := 0.9408*math.Pow(erEffDynamic, r8) - 0.9603
	r14 := (0.9408-r9)*math.Pow(erEffStatic, r8) - 0.9603
	r15 := 0.707 * r10 * math.Pow(fn/12.3, 1.097)
	r16 := 1 + 0.0503*Sqr(er)*r11*(1-math.Exp(-math.Pow(u/15, 6)))
	r17 := r7 * (1 - 1.1241*r12/r16*math.Exp(-0.026*math.Pow(fn, 1.15656)-r15))

	zFactor := math.Pow(r13/r14, r17)
	return z0Static * zFactor
}

// SynthesizeResult carries the outcome of a microstrip Newton solve.
// Failed is set (and Width negative) if the solver did not converge
// within its iteration cap (§4.1, §7).
type SynthesizeResult struct {
	Width          float64
	PhysicalLength float64
	ErEff          float64
	Failed         bool
}

// Synthesize computes the physical geometry (width, length) realizing
// a target characteristic impedance and electrical length at a design
// frequency, using Newton iteration on Analyze (§4.1).
func Synthesize(z0Target, electricalLength, freq float64, sub Substrate) SynthesizeResult {
	w := Cfg.Microstrip.InitWidth
	tol := Cfg.Microstrip.Tolerance
	for i := 0; i < Cfg.Microstrip.MaxIter; i++ {
		erEff, z := Analyze(w, sub, freq)
		d := z - z0Target
		if math.Abs(d) < tol {
			return SynthesizeResult{
				Width:          w,
				PhysicalLength: electricalLength / math.Sqrt(erEff),
				ErEff:          erEff,
			}
		}
		dw := w / 100
		_, zStep := Analyze(w+dw, sub, freq)
		deriv := zStep - z
		if IsNull(deriv) {
			break
		}
		w -= d * dw / deriv
		if w <= 0 {
			w = Cfg.Microstrip.InitWidth / 10
		}
	}
	return SynthesizeResult{Width: -1, Failed: true}
}

// CoupledSynthesizeResult carries the outcome of a coupled-microstrip
// Newton-Jacobian solve.
type CoupledSynthesizeResult struct {
	Width, Gap float64
	Failed     bool
}

// AnalyzeCoupled returns the even- and odd-mode characteristic
// impedances of a coupled microstrip pair of given width and gap. This
// uses the single-line Hammerstad-Jensen static solution as the base
// and applies the Akhtarzad/Garg-style coupling correction factors for
// even/odd mode capacitance, which is the customary simplification when
// a full coupled-line dispersion model is not required.
func AnalyzeCoupled(width, gap float64, sub Substrate, freq float64) (zEven, zOdd float64) {
	erEffSingle, z0Single := Analyze(width, sub, freq)
	g := gap / sub.Height

	// odd-mode: stronger coupling narrows effective impedance
	ke := math.Exp(-0.1 * math.Exp(2.33-2.53*g))
	ko := math.Exp(-1.0 * math.Exp(0.48*math.Pow(g, 0.96)))

	zOdd = z0Single * (1 - ko*(1-erEffSingle/sub.Er))
	zEven = z0Single * (1 + ke*(sub.Er/erEffSingle-1))
	return
}

// SynthesizeCoupled jointly solves for (width, gap) hitting target
// (zEven, zOdd) using a 2x2 Jacobian built from four probe evaluations
// per Newton step (§4.1).
func SynthesizeCoupled(zEvenTarget, zOddTarget, freq float64, sub Substrate) CoupledSynthesizeResult {
	w := Cfg.Microstrip.InitWidth
	g := Cfg.Microstrip.InitWidth
	tol := Cfg.Microstrip.Tolerance
	step := Cfg.Microstrip.ProbeStep

	for i := 0; i < Cfg.Microstrip.MaxIterPair; i++ {
		ze, zo := AnalyzeCoupled(w, g, sub, freq)
		re, ro := ze-zEvenTarget, zo-zOddTarget
		if math.Abs(re) < tol && math.Abs(ro) < tol {
			return CoupledSynthesizeResult{Width: w, Gap: g}
		}

		dw, dg := w*step, g*step
		zeW, zoW := AnalyzeCoupled(w+dw, g, sub, freq)
		zeG, zoG := AnalyzeCoupled(w, g+dg, sub, freq)

		jac := [2][2]float64{
			{(zeW - ze) / dw, (zeG - ze) / dg},
			{(zoW - zo) / dw, (zoG - zo) / dg},
		}
		delta, err := Solve2x2(jac, [2]float64{re, ro})
		if err != nil {
			break
		}
		w -= delta[0]
		g -= delta[1]
		if w <= 0 {
			w = Cfg.Microstrip.InitWidth / 10
		}
		if g <= 0 {
			g = Cfg.Microstrip.InitWidth / 10
		}
	}
	return CoupledSynthesizeResult{Width: -1, Gap: -1, Failed: true}
}
