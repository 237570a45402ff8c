/*
 * helpers_test.go, part of symf.
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

import (
	"math"
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/stat"
)

//precalFor builds the precalculated geometry for r and the cutoff radius rc
//the way a neighbor list code would, using the law of cosines.
func precalFor(r Triplet, rc float64, cache *CutoffCache) Precal {
	if cache == nil {
		cache = new(CutoffCache)
	}
	a, b, c := r.Rij, r.Rik, r.Rjk
	var p Precal
	p.FcIJ, p.DFcIJ = cache.Get(a, rc, 0)
	p.FcIK, p.DFcIK = cache.Get(b, rc, 1)
	p.FcJK, p.DFcJK = cache.Get(c, rc, 2)
	p.SumSq2 = a*a + b*b
	p.SumSq3 = p.SumSq2 + c*c
	p.Cos = (a*a + b*b - c*c) / (2 * a * b)
	p.DCosIJ = (a*a - b*b + c*c) / (2 * a * a * b)
	p.DCosIK = (b*b - a*a + c*c) / (2 * a * b * b)
	p.DCosJK = -c / (a * b)
	p.Sin = math.Sqrt(1 - p.Cos*p.Cos)
	f := -p.Cos / p.Sin
	p.DSinIJ = f * p.DCosIJ
	p.DSinIK = f * p.DCosIK
	p.DSinJK = f * p.DCosJK
	return p
}

//randomTriplet returns a valid triangle with Rij and Rik inside the cutoff
//and an angle far enough from 0 and pi for the sine to be well behaved.
func randomTriplet(rnd *rand.Rand, rc float64) Triplet {
	const min = 0.8
	a := min + rnd.Float64()*(0.9*rc-min)
	b := min + rnd.Float64()*(0.9*rc-min)
	theta := 0.3 + rnd.Float64()*(math.Pi-0.6)
	c := math.Sqrt(a*a + b*b - 2*a*b*math.Cos(theta))
	return Triplet{Rij: a, Rik: b, Rjk: c}
}

//swapped exchanges the roles of j and k.
func swapped(r Triplet, p Precal) (Triplet, Precal) {
	r.Rij, r.Rik = r.Rik, r.Rij
	p.FcIJ, p.FcIK = p.FcIK, p.FcIJ
	p.DFcIJ, p.DFcIK = p.DFcIK, p.DFcIJ
	p.DCosIJ, p.DCosIK = p.DCosIK, p.DCosIJ
	p.DSinIJ, p.DSinIK = p.DSinIK, p.DSinIJ
	return r, p
}

func dist(r Triplet, i int) float64 {
	return [3]float64{r.Rij, r.Rik, r.Rjk}[i]
}

func setDist(r Triplet, i int, x float64) Triplet {
	switch i {
	case 0:
		r.Rij = x
	case 1:
		r.Rik = x
	default:
		r.Rjk = x
	}
	return r
}

var distNames = []string{"Rij", "Rik", "Rjk"}

//checkFD compares each analytic derivative of the descriptor d at r with a
//central finite difference. The geometry is rebuilt for every displaced
//distance. It returns the relative errors found.
func checkFD(Te *testing.T, d Descriptor, rc float64, r Triplet) []float64 {
	Te.Helper()
	settings := &fd.Settings{Formula: fd.Central, Step: 1e-6}
	res := d.Eval(r, precalFor(r, rc, nil))
	relerrs := make([]float64, 0, len(res.Deriv))
	for i, an := range res.Deriv {
		f := func(x float64) float64 {
			rr := setDist(r, i, x)
			return d.Eval(rr, precalFor(rr, rc, nil)).Value
		}
		num := fd.Derivative(f, dist(r, i), settings)
		if !scalar.EqualWithinAbsOrRel(an, num, 1e-8, 1e-4) {
			Te.Errorf("%v %+v d/d%s: analytic %g, finite difference %g", d.Kind(), r, distNames[i], an, num)
		}
		relerrs = append(relerrs, math.Abs(an-num)/math.Max(math.Abs(num), 1e-8))
	}
	return relerrs
}

func reportFD(Te *testing.T, name string, relerrs []float64) {
	if len(relerrs) == 0 {
		return
	}
	Te.Logf("%s: %d derivatives checked, mean relative error %.3g, max %.3g", name, len(relerrs), stat.Mean(relerrs, nil), floats.Max(relerrs))
}
