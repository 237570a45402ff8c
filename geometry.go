/*
 * geometry.go, part of symf.
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

import "fmt"

// Triplet holds the three pair distances of an i-j-k triplet of atoms,
// i being the central atom.
type Triplet struct {
	Rij, Rik, Rjk float64
}

//Positions in the flat precalculated geometry slice. This is the only place
//where the positional layout is known.
const (
	pFcIJ   = iota //cutoff(Rij)
	pDFcIJ         //d cutoff(Rij)/d Rij
	pFcIK          //cutoff(Rik)
	pDFcIK         //d cutoff(Rik)/d Rik
	pFcJK          //cutoff(Rjk)
	pDFcJK         //d cutoff(Rjk)/d Rjk
	pSumSq3        //Rij²+Rik²+Rjk²
	pCos           //cos(theta_ijk)
	pDCosIJ        //d cos/d Rij
	pDCosIK        //d cos/d Rik
	pDCosJK        //-d cos/d Rjk. Note the sign.
	pSumSq2        //Rij²+Rik²
	pSin           //sin(theta_ijk)
	pDSin          //common factor of the sine derivatives
	pDSinIJ        //d sin/d Rij = p[pDSin]*p[pDSinIJ]
	pDSinIK        //d sin/d Rik = p[pDSin]*p[pDSinIK]
	pDSinJK        //d sin/d Rjk = p[pDSin]*p[pDSinJK]

	// PrecalLen is the length of a complete flat precalculated geometry.
	PrecalLen
)

// Precal is the precalculated geometry of a triplet: cutoffs, their
// derivatives, and the angle theta_ijk with its derivatives.
// All derivatives are the true partial derivatives with respect to the
// named distance.
type Precal struct {
	FcIJ, DFcIJ float64
	FcIK, DFcIK float64
	FcJK, DFcJK float64

	SumSq3 float64 //Rij²+Rik²+Rjk²
	SumSq2 float64 //Rij²+Rik²

	Cos                    float64
	DCosIJ, DCosIK, DCosJK float64
	Sin                    float64
	DSinIJ, DSinIK, DSinJK float64
}

// PrecalFromSlice reads a flat precalculated geometry, in the layout
// used by the C/LAMMPS symmetry function code. Slices shorter than
// PrecalLen are accepted, the missing fields are left as zero. Use
// Kind.PrecalLen to know how long a slice must be for a given type.
func PrecalFromSlice(p []float64) (Precal, error) {
	if len(p) > PrecalLen {
		return Precal{}, newError(ErrPrecalLength, true, "symf: precalculated geometry has %d elements, at most %d allowed", len(p), PrecalLen)
	}
	var full [PrecalLen]float64
	copy(full[:], p)
	ret := Precal{
		FcIJ:   full[pFcIJ],
		DFcIJ:  full[pDFcIJ],
		FcIK:   full[pFcIK],
		DFcIK:  full[pDFcIK],
		FcJK:   full[pFcJK],
		DFcJK:  full[pDFcJK],
		SumSq3: full[pSumSq3],
		SumSq2: full[pSumSq2],
		Cos:    full[pCos],
		DCosIJ: full[pDCosIJ],
		DCosIK: full[pDCosIK],
		DCosJK: -full[pDCosJK],
		Sin:    full[pSin],
		DSinIJ: full[pDSin] * full[pDSinIJ],
		DSinIK: full[pDSin] * full[pDSinIK],
		DSinJK: full[pDSin] * full[pDSinJK],
	}
	return ret, nil
}

// Slice returns the flat layout read by PrecalFromSlice. The common factor
// of the sine derivatives is written as 1, so the products are preserved
// but not how they were factored in the slice they were read from.
func (p Precal) Slice() []float64 {
	ret := make([]float64, PrecalLen)
	ret[pFcIJ] = p.FcIJ
	ret[pDFcIJ] = p.DFcIJ
	ret[pFcIK] = p.FcIK
	ret[pDFcIK] = p.DFcIK
	ret[pFcJK] = p.FcJK
	ret[pDFcJK] = p.DFcJK
	ret[pSumSq3] = p.SumSq3
	ret[pCos] = p.Cos
	ret[pDCosIJ] = p.DCosIJ
	ret[pDCosIK] = p.DCosIK
	ret[pDCosJK] = -p.DCosJK
	ret[pSumSq2] = p.SumSq2
	ret[pSin] = p.Sin
	ret[pDSin] = 1
	ret[pDSinIJ] = p.DSinIJ
	ret[pDSinIK] = p.DSinIK
	ret[pDSinJK] = p.DSinJK
	return ret
}

func (p Precal) String() string {
	return fmt.Sprintf("fc: %g %g %g dfc: %g %g %g sumsq: %g %g cos: %g dcos: %g %g %g sin: %g dsin: %g %g %g",
		p.FcIJ, p.FcIK, p.FcJK, p.DFcIJ, p.DFcIK, p.DFcJK, p.SumSq3, p.SumSq2,
		p.Cos, p.DCosIJ, p.DCosIK, p.DCosJK, p.Sin, p.DSinIJ, p.DSinIK, p.DSinJK)
}

// RadialGeometry is the part of the precalculated geometry read by G2.
type RadialGeometry struct {
	Fc, DFc float64
}

// NarrowGeometry is the part of the precalculated geometry read by G4.
type NarrowGeometry struct {
	FcIJ, DFcIJ float64
	FcIK, DFcIK float64
	FcJK, DFcJK float64

	SumSq float64 //Rij²+Rik²+Rjk²

	Cos                    float64
	DCosIJ, DCosIK, DCosJK float64
}

// WideGeometry is the part of the precalculated geometry read by G5.
// It has no jk cutoff, since G5 doesn't use it.
type WideGeometry struct {
	FcIJ, DFcIJ float64
	FcIK, DFcIK float64

	SumSq float64 //Rij²+Rik², no Rjk term.

	Cos                    float64
	DCosIJ, DCosIK, DCosJK float64
}

// ANIGeometry is the part of the precalculated geometry read by G6.
type ANIGeometry struct {
	FcIJ, DFcIJ float64
	FcIK, DFcIK float64

	Cos                    float64
	DCosIJ, DCosIK, DCosJK float64
	Sin                    float64
	DSinIJ, DSinIK, DSinJK float64
}

// Radial returns the ij cutoff and its derivative.
func (p Precal) Radial() RadialGeometry {
	return RadialGeometry{Fc: p.FcIJ, DFc: p.DFcIJ}
}

func (p Precal) Narrow() NarrowGeometry {
	return NarrowGeometry{
		FcIJ: p.FcIJ, DFcIJ: p.DFcIJ,
		FcIK: p.FcIK, DFcIK: p.DFcIK,
		FcJK: p.FcJK, DFcJK: p.DFcJK,
		SumSq:  p.SumSq3,
		Cos:    p.Cos,
		DCosIJ: p.DCosIJ, DCosIK: p.DCosIK, DCosJK: p.DCosJK,
	}
}

func (p Precal) Wide() WideGeometry {
	return WideGeometry{
		FcIJ: p.FcIJ, DFcIJ: p.DFcIJ,
		FcIK: p.FcIK, DFcIK: p.DFcIK,
		SumSq:  p.SumSq2,
		Cos:    p.Cos,
		DCosIJ: p.DCosIJ, DCosIK: p.DCosIK, DCosJK: p.DCosJK,
	}
}

func (p Precal) ANI() ANIGeometry {
	return ANIGeometry{
		FcIJ: p.FcIJ, DFcIJ: p.DFcIJ,
		FcIK: p.FcIK, DFcIK: p.DFcIK,
		Cos:    p.Cos,
		DCosIJ: p.DCosIJ, DCosIK: p.DCosIK, DCosJK: p.DCosJK,
		Sin:    p.Sin,
		DSinIJ: p.DSinIJ, DSinIK: p.DSinIK, DSinJK: p.DSinJK,
	}
}
