/*
 * descriptor.go, part of symf.
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

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
)

// Result is the value of a symmetry function and its derivatives
// with respect to the pair distances: one element (Rij) for radial
// functions, three (Rij, Rik, Rjk) for angular ones.
type Result struct {
	Value float64
	Deriv []float64
}

// EqualWithin returns true if the values and all the derivatives of r and
// o are equal within tol, either absolute or relative.
func (r Result) EqualWithin(o Result, tol float64) bool {
	if len(r.Deriv) != len(o.Deriv) {
		return false
	}
	return scalar.EqualWithinAbsOrRel(r.Value, o.Value, tol, tol) && floats.EqualApprox(r.Deriv, o.Deriv, tol)
}

func (r Result) String() string {
	return fmt.Sprintf("%g d: %v", r.Value, r.Deriv)
}

// Compile binds the parameter set par, in table order, to a symmetry
// function of type k. It returns an error if k is not implemented or
// par is too short for it.
func Compile(k Kind, par []float64) (Descriptor, error) {
	if !k.Implemented() {
		return nil, newError(ErrUnimplementedKind, true, "symf: symmetry function type %d not implemented", int(k))
	}
	var err error
	var d Descriptor
	switch k {
	case KindG2:
		var p RadialParams
		p, err = RadialParamsFromSlice(par)
		d = radial{p}
	case KindG4:
		var p AngularParams
		p, err = AngularParamsFromSlice(par)
		d = narrow{p}
	case KindG5:
		var p AngularParams
		p, err = AngularParamsFromSlice(par)
		d = wide{p}
	case KindG6:
		var p ANIParams
		p, err = ANIParamsFromSlice(par)
		d = ani{p}
	}
	if err != nil {
		return nil, errDecorate(err, "Compile")
	}
	return d, nil
}

// NewDescriptor returns a Descriptor for already built parameters,
// which must be RadialParams, AngularParams or ANIParams. AngularParams
// need k to tell G4 from G5.
func NewDescriptor(k Kind, par interface{}) (Descriptor, error) {
	switch p := par.(type) {
	case RadialParams:
		if k == KindG2 {
			return radial{p}, nil
		}
	case AngularParams:
		if k == KindG4 {
			return narrow{p}, nil
		}
		if k == KindG5 {
			return wide{p}, nil
		}
	case ANIParams:
		if k == KindG6 {
			return ani{p}, nil
		}
	}
	if !k.Implemented() {
		return nil, newError(ErrUnimplementedKind, true, "symf: symmetry function type %d not implemented", int(k))
	}
	return nil, newError(ErrParamType, true, "symf: parameters of type %T can't be used for %v", par, k)
}

type radial struct{ par RadialParams }

func (d radial) Kind() Kind { return KindG2 }

func (d radial) Eval(r Triplet, p Precal) Result {
	v, dv := G2(r.Rij, p.Radial(), d.par)
	return Result{Value: v, Deriv: []float64{dv}}
}

type narrow struct{ par AngularParams }

func (d narrow) Kind() Kind { return KindG4 }

func (d narrow) Eval(r Triplet, p Precal) Result {
	v, dv := G4(r, p.Narrow(), d.par)
	return Result{Value: v, Deriv: dv[:]}
}

type wide struct{ par AngularParams }

func (d wide) Kind() Kind { return KindG5 }

func (d wide) Eval(r Triplet, p Precal) Result {
	v, dv := G5(r, p.Wide(), d.par)
	return Result{Value: v, Deriv: dv[:]}
}

type ani struct{ par ANIParams }

func (d ani) Kind() Kind { return KindG6 }

func (d ani) Eval(r Triplet, p Precal) Result {
	v, dv := G6(r, p.ANI(), d.par)
	return Result{Value: v, Deriv: dv[:]}
}
