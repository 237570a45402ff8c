/*
 * powint.go, part of symf.
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

package symf

import "math"

// PowInt returns x raised to the integer magnitude of n, or its reciprocal
// if n is negative. The magnitude is the truncation of |n|. It uses
// repeated squaring, so it is only meant for small integral n. Magnitudes
// of MaxPowIntExp or more (and NaN) are handed to math.Pow.
// An x exactly equal to 0 gives 0 for any n, including negative ones.
func PowInt(x, n float64) float64 {
	//TODO: the exact comparison could become abs(x) < epsilon if the
	//neighbor lists turn out to produce near-zero distances.
	if x == 0.0 {
		return 0.0
	}
	mag := math.Trunc(math.Abs(n))
	if !(mag < MaxPowIntExp) {
		res := math.Pow(x, mag)
		if n > 0 {
			return res
		}
		return 1.0 / res
	}
	nn := uint64(mag)
	res := 1.0
	for tmp := x; nn != 0; nn, tmp = nn>>1, tmp*tmp {
		if nn&1 == 1 {
			res *= tmp
		}
	}
	if n > 0 {
		return res
	}
	return 1.0 / res
}

// MaxPowIntExp is the bound on the exponent magnitude PowInt handles
// by repeated squaring. PowModeFor never picks PowInteger at or above it.
const MaxPowIntExp = 1 << 31

// PowMode selects how the angular term of a symmetry function is
// raised to zeta-1. It is a property of the parameter set, and should
// be picked once with PowModeFor.
// Both modes agree only for integral zeta >= 1. For zeta < 1 the general
// mode uses |zeta-1| as exponent while the integer mode uses zeta-1, so
// forcing PowGeneral with, say, zeta=0 gives |cosv| instead of 1/|cosv|.
type PowMode int

const (
	PowGeneral PowMode = iota //math.Pow on |base| with exponent |zeta-1|
	PowInteger                //PowInt on |base| with exponent zeta-1. Only valid for integral zeta.
)

// PowModeFor returns PowInteger if zeta is integral and its magnitude is
// below MaxPowIntExp, PowGeneral otherwise.
func PowModeFor(zeta float64) PowMode {
	if math.Abs(zeta) < MaxPowIntExp && zeta == math.Trunc(zeta) {
		return PowInteger
	}
	return PowGeneral
}

func (m PowMode) String() string {
	if m == PowInteger {
		return "integer"
	}
	return "general"
}

//angular returns |cosv|^(zeta-1). The absolute value keeps a slightly negative
//cosv (from rounding) from turning into NaN with a fractional exponent.
//The general mode also takes the absolute value of the exponent.
func (m PowMode) angular(cosv, zeta float64) float64 {
	if m == PowInteger {
		return PowInt(math.Abs(cosv), zeta-1)
	}
	return math.Pow(math.Abs(cosv), math.Abs(zeta-1))
}

// Sigmoid returns the logistic function of x and its derivative.
func Sigmoid(x float64) (float64, float64) {
	expl := 1. / (1. + math.Exp(-x))
	return expl, expl * (1 - expl)
}
