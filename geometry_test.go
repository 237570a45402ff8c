package symf

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
)

//g4Flat and g6Flat evaluate G4 and G6 straight from the flat layout,
//to check that PrecalFromSlice puts every slot where the functions expect it.
func g4Flat(rij, rik, rjk float64, p, par []float64, powint bool) (float64, [3]float64) {
	var d [3]float64
	expl := math.Exp(-par[1]*p[6]) * math.Pow(2, 1-par[2])
	cosv := 1 + par[3]*p[7]
	var powcos float64
	if powint {
		powcos = PowInt(math.Abs(cosv), par[2]-1)
	} else {
		powcos = math.Pow(math.Abs(cosv), math.Abs(par[2]-1))
	}
	d[0] = expl * powcos * p[2] * p[4] * ((-2*par[1]*rij*p[0]+p[1])*cosv + par[2]*par[3]*p[0]*p[8])
	d[1] = expl * powcos * p[0] * p[4] * ((-2*par[1]*rik*p[2]+p[3])*cosv + par[2]*par[3]*p[2]*p[9])
	d[2] = expl * powcos * p[0] * p[2] * ((-2*par[1]*rjk*p[4]+p[5])*cosv - par[2]*par[3]*p[4]*p[10])
	return powcos * cosv * expl * p[0] * p[2] * p[4], d
}

func g6Flat(rij, rik float64, p, par []float64, powint bool) (float64, [3]float64) {
	var d [3]float64
	sints, costs := math.Sincos(par[4])
	expo := 0.5*(rij+rik) - par[3]
	expl := math.Exp(-par[1]*expo*expo) * math.Pow(2, 1-par[2])
	cosv := 1 + costs*p[7] + sints*p[12]
	var powcos float64
	if powint {
		powcos = PowInt(math.Abs(cosv), par[2]-1)
	} else {
		powcos = math.Pow(math.Abs(cosv), math.Abs(par[2]-1))
	}
	d[0] = expl * powcos * p[2] * (p[0]*par[2]*(costs*p[8]+sints*p[13]*p[14]) + cosv*(p[1]-par[1]*expo*p[0]))
	d[1] = expl * powcos * p[0] * (p[2]*par[2]*(costs*p[9]+sints*p[13]*p[15]) + cosv*(p[3]-par[1]*expo*p[2]))
	d[2] = expl * powcos * p[0] * p[2] * par[2] * (-costs*p[10] + sints*p[13]*p[16])
	return powcos * cosv * expl * p[0] * p[2], d
}

//flatFor builds the flat layout with a non-trivial factorization of the
//sine derivatives.
func flatFor(r Triplet, rc float64) []float64 {
	p := precalFor(r, rc, nil).Slice()
	p[pDSin] = -p[pCos] / p[pSin]
	p[pDSinIJ] = p[pDCosIJ]
	p[pDSinIK] = p[pDCosIK]
	p[pDSinJK] = -p[pDCosJK]
	return p
}

func TestFlatLayout(Te *testing.T) {
	rnd := rand.New(rand.NewSource(11))
	for _, pr := range angularParams {
		for i := 0; i < 10; i++ {
			r := randomTriplet(rnd, pr[0])
			flat := flatFor(r, pr[0])
			p, err := PrecalFromSlice(flat)
			if err != nil {
				Te.Fatal(err)
			}
			par, _ := AngularParamsFromSlice(pr)
			v, d := G4(r, p.Narrow(), par)
			vf, df := g4Flat(r.Rij, r.Rik, r.Rjk, flat, pr, par.Pow == PowInteger)
			if !scalar.EqualWithinAbsOrRel(v, vf, 1e-14, 1e-12) || !floats.EqualApprox(d[:], df[:], 1e-12) {
				Te.Errorf("G4 %v %+v: named %g %v flat %g %v", pr, r, v, d, vf, df)
			}
		}
	}
	for _, pr := range aniParams {
		for i := 0; i < 10; i++ {
			r := randomTriplet(rnd, pr[0])
			flat := flatFor(r, pr[0])
			p, err := PrecalFromSlice(flat)
			if err != nil {
				Te.Fatal(err)
			}
			par, _ := ANIParamsFromSlice(pr)
			v, d := G6(r, p.ANI(), par)
			vf, df := g6Flat(r.Rij, r.Rik, flat, pr, par.Pow == PowInteger)
			if !scalar.EqualWithinAbsOrRel(v, vf, 1e-14, 1e-12) || !floats.EqualApprox(d[:], df[:], 1e-12) {
				Te.Errorf("G6 %v %+v: named %g %v flat %g %v", pr, r, v, d, vf, df)
			}
		}
	}
}

func TestPrecalFromSlice(Te *testing.T) {
	flat := make([]float64, PrecalLen)
	for i := range flat {
		flat[i] = float64(i + 1)
	}
	p, err := PrecalFromSlice(flat)
	if err != nil {
		Te.Fatal(err)
	}
	if p.FcIJ != 1 || p.DFcJK != 6 || p.SumSq3 != 7 || p.Cos != 8 || p.SumSq2 != 12 || p.Sin != 13 {
		Te.Errorf("wrong mapping: %v", p)
	}
	if p.DCosJK != -11 {
		Te.Errorf("slot 10 should be negated, got %g", p.DCosJK)
	}
	if p.DSinIJ != 14*15 || p.DSinIK != 14*16 || p.DSinJK != 14*17 {
		Te.Errorf("sine derivatives not multiplied by the common factor: %g %g %g", p.DSinIJ, p.DSinIK, p.DSinJK)
	}
	q, _ := PrecalFromSlice(p.Slice())
	if q != p {
		Te.Errorf("Slice doesn't give back the same geometry:\n%v\n%v", p, q)
	}
	//Short slices are fine, the rest is zero.
	r, err := PrecalFromSlice(flat[:KindG2.PrecalLen()])
	if err != nil || r.Radial() != (RadialGeometry{1, 2}) || r.FcIK != 0 {
		Te.Errorf("radial-only slice read as %v, %v", r, err)
	}
	_, err = PrecalFromSlice(make([]float64, PrecalLen+1))
	if !errors.Is(err, ErrPrecalLength) {
		Te.Errorf("too long slice should fail with ErrPrecalLength, got %v", err)
	}
}

func TestViews(Te *testing.T) {
	p := precalFor(Triplet{2, 3, 4}, 6, nil)
	w := p.Wide()
	if w.SumSq != p.SumSq2 || w.DCosJK != p.DCosJK || w.FcIK != p.FcIK {
		Te.Errorf("wide view %+v of %v", w, p)
	}
	n := p.Narrow()
	if n.SumSq != p.SumSq3 || n.FcJK != p.FcJK || n.DFcJK != p.DFcJK {
		Te.Errorf("narrow view %+v of %v", n, p)
	}
	a := p.ANI()
	if a.Sin != p.Sin || a.DSinJK != p.DSinJK || a.DCosIK != p.DCosIK {
		Te.Errorf("ANI view %+v of %v", a, p)
	}
}
