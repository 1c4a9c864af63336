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

// EllipticResult carries the per-resonator element values of an
// elliptic low-pass prototype: Lseries[j]/Cseries[j] form the series
// resonator of section j, Cshunt[j] is the shunt capacitor at node j,
// and RL is the load-side termination implied by the synthesis (which
// need not equal the source impedance for Type A/B, §4.3).
type EllipticResult struct {
	Lseries []float64
	Cseries []float64
	Cshunt  []float64
	RL      float64
}

// SynthesizeElliptic computes the elliptic low-pass prototype element
// values for the requested sub-mode (§4.3). Semilumped designs are
// only defined for Type S and are silently coerced to it.
func SynthesizeElliptic(order int, rippleDB, asDB, zs float64, typ EllipticType, semilumped bool) (EllipticResult, error) {
	if order < 1 {
		return EllipticResult{}, NewConfigurationError("elliptic order must be >= 1, got %d", order)
	}
	if rippleDB <= 0 || asDB <= 0 {
		return EllipticResult{}, NewConfigurationError("elliptic ripple and stopband attenuation must be positive")
	}
	if semilumped {
		typ = EllipticTypeS
	}

	if typ == EllipticTypeS {
		lser, cser, cshunt := ellipticTypeS(order, rippleDB, asDB)
		return EllipticResult{Lseries: lser, Cseries: cser, Cshunt: cshunt, RL: zs}, nil
	}
	lser, cser, cshunt, rl := ellipticTypesABC(order, rippleDB, asDB, zs, typ)
	return EllipticResult{Lseries: lser, Cseries: cser, Cshunt: cshunt, RL: rl}, nil
}

// snReal evaluates the Jacobi-like elliptic sine product used by the
// Amstutz synthesis, truncated to 10 terms, which converges well
// within double precision for the quarter-periods involved here.
func snReal(u, z float64) float64 {
	x := math.Tanh(z)
	for j := 1; j < 10; j++ {
		fj := float64(j)
		x *= math.Tanh(fj*u-z) * math.Tanh(fj*u+z)
	}
	return x
}

// snComplex is the complex-argument counterpart of snReal, used to
// locate the complex natural frequencies of the Type A/B/C networks.
func snComplex(u float64, z complex128) complex128 {
	x := ctanh(z)
	for j := 1; j < 10; j++ {
		ju := complex(float64(j)*u, 0)
		x *= ctanh(ju-z) * ctanh(ju+z)
	}
	return x
}

func ctanh(z complex128) complex128 {
	// tanh(z) = sinh(z)/cosh(z); expanded via exp to keep the sign
	// convention explicit and consistent with the surrounding formulas.
	e2z := cexp(2 * z)
	return (e2z - 1) / (e2z + 1)
}

func cexp(z complex128) complex128 {
	r := math.Exp(real(z))
	return complex(r*math.Cos(imag(z)), r*math.Sin(imag(z)))
}

// ellipticTypeS synthesizes the Type S (equiripple both bands, equal
// terminations) network: converges the modulus K by fixed-point
// iteration, computes the natural frequencies via snReal, and applies
// the permutation method (Eqn 3.6) to decouple the ladder.
func ellipticTypeS(n int, rippleDB, asDB float64) (lser, cser, cshunt []float64) {
	const dbn = 0.23025851
	m := 2*n + 1

	u := math.Pi * math.Pi / math.Log(16*(math.Exp(asDB*dbn)-1)/(math.Exp(rippleDB*dbn)-1))
	w := (u / (2 * math.Pi)) * math.Log((math.Exp(rippleDB*dbn/2)+1)/(math.Exp(rippleDB*dbn/2)-1))

	e := make([]float64, n)
	f := make([]float64, m-1)
	for j := 1; j < m; j++ {
		f[j-1] = snReal(float64(m)*u, float64(j)*u)
	}

	k, delta, j := 1.0, 1.0, 1
	for delta > Cfg.Elliptic.Tolerance && j <= Cfg.Elliptic.MaxIter {
		kaux := k * (Sqr(math.Tan(w)) + Sqr(math.Tanh(float64(j)*float64(m)*u))) /
			(1 + Sqr(math.Tan(w)*math.Tanh(float64(j)*float64(m)*u)))
		delta = math.Abs(k - kaux)
		k = kaux
		j++
	}
	a0 := math.Tan(w) * k
	e[n-1] = a0

	cser = make([]float64, n)
	for j := 0; j < n; j++ {
		cser[j] = f[2*j+1] * (1 - math.Pow(f[j], 4)) / f[j] // Eqn 5.7
	}

	c := make([]float64, n)
	c[0] = 1 / (a0 * f[n])
	for j := 1; j < n; j++ {
		c[j] = (c[j-1] - a0*f[n-j-1]) / (1 + c[j-1]*a0*f[n-j-1])
		e[n-j-1] = e[n-j] + e[n-1]*cser[j-1]/(1+Sqr(a0*f[j-1]))
	}

	lser = make([]float64, n+1)
	cshunt = make([]float64, n+1)
	for j := 0; j < n; j++ {
		lser[j] = ((1+Sqr(c[j]))*e[j]/cser[j] - c[j]/f[j]) / 2
		cshunt[j] = c[j] * f[j]
	}
	lser[n] = lser[n-1]
	cshunt[n] = cshunt[n-1]

	// permutation method (Eqn 3.6)
	for l := 0; l < 2; l++ {
		for pk := l + 2; pk < n+1; pk += 2 {
			for pj := l; pj <= pk-2; pj += 2 {
				uu := cshunt[pj] - cshunt[pk]
				vv := 1 / (uu/((Sqr(f[pk])-Sqr(f[pj]))*lser[pj]) - 1)
				cshunt[pk] = uu * vv
				lser[pk] = Sqr(vv)*lser[pk] - Sqr(vv+1)*lser[pj]
			}
		}
	}

	for j := 0; j < n; j++ {
		cser[j] = lser[j] * Sqr(f[j])
		lser[j] = 1 / lser[j]
	}
	lser = lser[:n]
	return
}

// ellipticTypesABC synthesizes the Type A/B/C networks (unequal
// terminations permitted) via the Amstutz recurrence: complex natural
// frequencies, normalized passband edge, B/C coefficients, and the same
// permutation method used by Type S.
func ellipticTypesABC(order int, rippleDB, asDB, zs float64, typ EllipticType) (lser, cser, cshunt []float64, rl float64) {
	const dbn = 0.23025851
	m := order
	n := 2 * m

	u := math.Pi * math.Pi / math.Log(16*(math.Exp(asDB*dbn)-1)/(math.Exp(rippleDB*dbn)-1))
	w := (u / (2 * math.Pi)) * math.Log((math.Exp(rippleDB*dbn/2)+1)/(math.Exp(rippleDB*dbn/2)-1))

	e := make([]float64, n)
	for j := 0; j < n; j++ {
		e[j] = snReal(float64(m)*u, float64(j+1-m)*u/2)
	}

	k, delta, jj := 1.0, 1.0, 1
	for delta > Cfg.Elliptic.Tolerance && jj <= Cfg.Elliptic.MaxIter {
		kaux := k * (Sqr(math.Tan(w)) + Sqr(math.Tanh(float64(jj)*float64(m)*u))) /
			(1 + Sqr(math.Tan(w)*math.Tanh(float64(jj)*float64(m)*u)))
		delta = math.Abs(k - kaux)
		k = kaux
		jj++
	}
	a0 := math.Tan(w) * k

	r := make([]float64, m)
	s := make([]float64, m)
	i1 := complex(0, 1)
	for j := 0; j < m; j++ {
		z := complex(float64(m+1-2*(j+1))*u/2, w)
		rs := i1 * snComplex(float64(m)*u, z)
		r[j], s[j] = real(rs), imag(rs)
	}

	var e8, e0 float64
	var it int
	if typ == EllipticTypeA {
		e8, it = e[n-1], 1
	} else {
		e8, it = -e[0], 2
	}
	if typ == EllipticTypeC {
		e0 = -e[0]
	} else {
		e0 = e[n-1]
	}

	fp := snReal(float64(n)*u, float64(n)*u/2) // normalized passband edge (Eqn 4.15)

	d := make([]float64, m+1)
	for j := it; j <= m; j++ {
		d[j-1] = (e[2*j-2] + e8) / (1 + e0*e[2*j-2])
	}

	f := make([]float64, m+1)
	for i := 0; i < m; i++ {
		f[i] = math.Sqrt(1 / d[i])
	}

	tq, t0 := 0.0, 0.0
	sign := 1
	b := make([]float64, m+1)
	for j := 0; j < m; j++ {
		ww := (Sqr(a0) + Sqr(e[2*j])) / (1 + Sqr(a0*e[2*j]))
		uu := math.Sqrt((Sqr(e0) + 2*e0*s[j] + ww) / (1 + 2*e8*s[j] + ww*Sqr(e8)))
		vv := ((1+e0*e8)*s[j] + e0 + e8*ww) / (1 + 2*e8*s[j] + ww*Sqr(e8))
		r[j] = math.Sqrt((uu - vv) / 2)
		s[j] = math.Sqrt((uu + vv) / 2)
		sign = -sign
		pw := float64(sign) * r[j] / s[j]
		tq = (tq + pw) / (1 - tq*pw)
		if typ == EllipticTypeA {
			au := (f[1] - s[j]) / r[j]
			av := (f[1] + s[j]) / r[j]
			aw := float64(sign) * (av - au) / (1 + au*av)
			t0 = (t0 + aw) / (1 - t0*aw)
		}
		b[0] += r[j]
	}
	if typ == EllipticTypeA {
		t0 = t0 / (1 + math.Sqrt(1+Sqr(t0)))
	}

	db := make([]float64, m+1)
	tb := make([]float64, m+1)
	c := make([]float64, m+1)
	for kk := it - 1; kk < m; kk++ {
		tb[kk] = t0
		sign = 1
		for j := 0; j < m; j++ {
			db[kk] += 1 / (r[j] + Sqr(f[kk]-s[j])/r[j])
			db[kk] += 1 / (r[j] + Sqr(f[kk]+s[j])/r[j])
			sign = -sign
			pw := (f[kk] - float64(sign)*s[j]) / r[j]
			tb[kk] = (tb[kk] + pw) / (1 - tb[kk]*pw)
		}
	}
	d[m], f[m], db[m], tb[m] = d[m-1], f[m-1], db[m-1], tb[m-1]

	for j := 0; j < m+1-it; j += 2 {
		tb[m-j-1] = -1 / tb[m-j-1]
	}
	for j := it - 1; j <= m; j++ {
		b[j] = (1+Sqr(tb[j]))*db[j]/(4*d[j]) - tb[j]*f[j]/2
		c[j] = tb[j] / f[j]
	}

	var scale float64
	if typ != EllipticTypeC {
		scale = Sqr((1 - tq*t0) / (tq + t0)) // Types A and B permit RL != source impedance
	} else {
		scale = 1
	}
	for j := 0; j < m+1; j += 2 {
		b[j] *= scale
		c[j] *= scale
	}
	rl = zs / scale

	// permutation method (Eqn 3.6)
	for l := 0; l < 2; l++ {
		for pk := l + 2; pk < m+1; pk += 2 {
			for pj := l; pj <= pk-2; pj += 2 {
				uu := c[pj] - c[pk]
				vv := 1 / (uu/(b[pj]*(d[pk]-d[pj])) - 1)
				c[pk] = uu * vv
				b[pk] = (b[pk]-b[pj])*Sqr(vv) - b[pj]*(2*vv+1)
			}
		}
	}

	lser = make([]float64, m)
	cser = make([]float64, m)
	cshunt = make([]float64, m+1)
	if typ != EllipticTypeA {
		lser[0] = fp / b[0]
	}
	for j := it - 1; j < m-1; j++ {
		ww := f[j] / fp
		l_ := fp / b[j]
		cser[j] = 1 / (Sqr(ww) * l_)
		lser[j] = l_
		cshunt[j] = fp * c[j]
	}
	ww := f[m-1] / fp
	l_ := fp / b[m-1]
	cser[m-1] = 1 / (Sqr(ww) * l_)
	lser[m-1] = l_
	cshunt[m-1] = fp * c[m-1]
	cshunt[m] = fp * c[m]
	return
}
