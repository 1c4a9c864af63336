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
	"testing"
)

func TestSynthesizeEllipticTypeS(t *testing.T) {
	res, err := SynthesizeElliptic(3, 0.1, 40, 50, EllipticTypeS, false)
	if err != nil {
		t.Fatalf("SynthesizeElliptic: %v", err)
	}
	if len(res.Lseries) != 3 || len(res.Cseries) != 3 {
		t.Fatalf("expected 3 series resonators, got L=%d C=%d", len(res.Lseries), len(res.Cseries))
	}
	if len(res.Cshunt) != 4 {
		t.Fatalf("expected 4 shunt capacitors (N+1), got %d", len(res.Cshunt))
	}
	for j, l := range res.Lseries {
		if l <= 0 || math.IsNaN(l) || math.IsInf(l, 0) {
			t.Errorf("Lseries[%d] = %v, want finite positive", j, l)
		}
	}
	for j, c := range res.Cseries {
		if c <= 0 || math.IsNaN(c) || math.IsInf(c, 0) {
			t.Errorf("Cseries[%d] = %v, want finite positive", j, c)
		}
	}
	if res.RL != 50 {
		t.Errorf("Type S RL = %v, want equal to source impedance 50", res.RL)
	}
	t.Logf("Lseries=%v Cseries=%v Cshunt=%v", res.Lseries, res.Cseries, res.Cshunt)
}

// TestSynthesizeEllipticOrder5 checks that a higher odd order yields a
// ladder with one series element per order; the passband/stopband
// response is checked by TestEllipticFrequencyResponsePassbandAndStopband.
func TestSynthesizeEllipticOrder5(t *testing.T) {
	res, err := SynthesizeElliptic(5, 0.1, 40, 50, EllipticTypeS, false)
	if err != nil {
		t.Fatalf("SynthesizeElliptic: %v", err)
	}
	if len(res.Lseries) != 5 {
		t.Fatalf("expected order-5 ladder, got %d series elements", len(res.Lseries))
	}
}

func TestSynthesizeEllipticSemilumpedForcesTypeS(t *testing.T) {
	withS, err := SynthesizeElliptic(3, 0.1, 40, 50, EllipticTypeS, false)
	if err != nil {
		t.Fatalf("SynthesizeElliptic(S): %v", err)
	}
	forced, err := SynthesizeElliptic(3, 0.1, 40, 50, EllipticTypeA, true)
	if err != nil {
		t.Fatalf("SynthesizeElliptic(A, semilumped): %v", err)
	}
	for j := range withS.Lseries {
		if math.Abs(withS.Lseries[j]-forced.Lseries[j]) > 1e-9 {
			t.Errorf("semilumped Type A result diverged from Type S at %d: %v vs %v", j, withS.Lseries[j], forced.Lseries[j])
		}
	}
}

func TestSynthesizeEllipticTypesABC(t *testing.T) {
	for _, typ := range []EllipticType{EllipticTypeA, EllipticTypeB, EllipticTypeC} {
		res, err := SynthesizeElliptic(3, 0.1, 40, 50, typ, false)
		if err != nil {
			t.Fatalf("SynthesizeElliptic(%s): %v", typ, err)
		}
		if len(res.Lseries) == 0 {
			t.Fatalf("%s: empty result", typ)
		}
		if math.IsNaN(res.RL) || res.RL <= 0 {
			t.Errorf("%s: RL = %v, want finite positive", typ, res.RL)
		}
		for j, l := range res.Lseries {
			if math.IsNaN(l) || math.IsInf(l, 0) {
				t.Errorf("%s: Lseries[%d] = %v, want finite", typ, j, l)
			}
		}
		t.Logf("%s: RL=%v Lseries=%v", typ, res.RL, res.Lseries)
	}
}

func TestSynthesizeEllipticRejectsInvalidOrder(t *testing.T) {
	if _, err := SynthesizeElliptic(0, 0.1, 40, 50, EllipticTypeS, false); err == nil {
		t.Fatal("expected error for order 0")
	}
}

// TestEllipticFrequencyResponsePassbandAndStopband sweeps the normalized
// elliptic ladder's forward transmission with EllipticAttenuationDB and
// checks the two properties the ripple/stopband spec actually promises:
// loss deep in the passband stays near the nominal ripple, and loss deep
// in the stopband clears the nominal attenuation floor.
func TestEllipticFrequencyResponsePassbandAndStopband(t *testing.T) {
	const rippleDB, asDB = 0.5, 40.0
	res, err := SynthesizeElliptic(3, rippleDB, asDB, 1, EllipticTypeS, false)
	if err != nil {
		t.Fatalf("SynthesizeElliptic: %v", err)
	}

	atten := EllipticAttenuationDB(res, []float64{0.3, 5.0})
	passband, stopband := atten[0], atten[1]
	if math.IsNaN(passband) || math.IsNaN(stopband) {
		t.Fatalf("non-finite attenuation: passband=%v stopband=%v", passband, stopband)
	}
	if passband > rippleDB+3.0 {
		t.Errorf("passband attenuation at Ω=0.3 = %.3f dB, want within a few dB of ripple %.1f", passband, rippleDB)
	}
	if stopband < asDB*0.5 {
		t.Errorf("stopband attenuation at Ω=5 = %.3f dB, want well above half the nominal %.1f dB floor", stopband, asDB)
	}
	if stopband <= passband {
		t.Errorf("stopband attenuation %.3f dB should exceed passband attenuation %.3f dB", stopband, passband)
	}
}

func TestSynthesizeEllipticRejectsNonPositiveRipple(t *testing.T) {
	if _, err := SynthesizeElliptic(3, 0, 40, 50, EllipticTypeS, false); err == nil {
		t.Fatal("expected error for zero ripple")
	}
	if _, err := SynthesizeElliptic(3, 0.1, 0, 50, EllipticTypeS, false); err == nil {
		t.Fatal("expected error for zero stopband attenuation")
	}
}
