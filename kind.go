/*
 * kind.go, part of symf.
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
	"fmt"
	"slices"
)

// Kind identifies a symmetry function type by the number it carries
// in the parameter tables (2 for G2, 4 for G4 and so on).
type Kind int

const (
	KindG2 Kind = 2 //radial
	KindG4 Kind = 4 //angular, all three pairs with cutoffs
	KindG5 Kind = 5 //angular, no jk cutoff
	KindG6 Kind = 6 //angular, ANI-1 style
)

//Add new types here when they are implemented.
var implemented = []Kind{KindG2, KindG4, KindG5, KindG6}

// Implemented returns the symmetry function types this package can evaluate.
// The returned slice is a copy and can be modified freely.
func Implemented() []Kind {
	return slices.Clone(implemented)
}

// Implemented returns true if k can be evaluated by this package.
func (k Kind) Implemented() bool {
	return slices.Contains(implemented, k)
}

// ParseKind converts a type identifier taken from a parameter table
// into a Kind. Types not implemented here are rejected with an error
// that wraps ErrUnimplementedKind.
func ParseKind(n int) (Kind, error) {
	k := Kind(n)
	if !k.Implemented() {
		return 0, newError(ErrUnimplementedKind, true, "symf: symmetry function type %d not implemented (have %v)", n, implemented)
	}
	return k, nil
}

// NParams is the number of parameters the type reads from a parameter set.
func (k Kind) NParams() int {
	switch k {
	case KindG2:
		return 3
	case KindG4, KindG5:
		return 4
	case KindG6:
		return 5
	}
	return 0
}

// PrecalLen is the minimum length of a flat precalculated geometry
// slice for the type. See PrecalFromSlice.
func (k Kind) PrecalLen() int {
	switch k {
	case KindG2:
		return pDFcIJ + 1
	case KindG4:
		return pDCosJK + 1
	case KindG5:
		return pSumSq2 + 1
	case KindG6:
		return PrecalLen
	}
	return 0
}

// Angular is true for the three-body types.
func (k Kind) Angular() bool {
	return k == KindG4 || k == KindG5 || k == KindG6
}

func (k Kind) String() string {
	return fmt.Sprintf("G%d", int(k))
}
