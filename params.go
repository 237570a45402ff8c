/*
 * params.go, part of symf.
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
	"log"
	"math"
)

// RadialParams are the parameters of a G2 symmetry function.
type RadialParams struct {
	Rc  float64 //cutoff radius
	Eta float64 //gaussian width
	Rs  float64 //center of the gaussian
}

// RadialParamsFromSlice reads the parameters in the table order
// Rc, eta, Rs. Extra elements are ignored.
func RadialParamsFromSlice(par []float64) (RadialParams, error) {
	if err := checkParams(KindG2, par); err != nil {
		return RadialParams{}, errDecorate(err, "RadialParamsFromSlice")
	}
	return RadialParams{Rc: par[0], Eta: par[1], Rs: par[2]}, nil
}

// AngularParams are the parameters of the G4 and G5 symmetry functions.
// PowTwo and Pow are derived from Zeta, so AngularParams should be obtained
// from NewAngularParams or AngularParamsFromSlice rather than built directly.
type AngularParams struct {
	Rc     float64 //cutoff radius
	Eta    float64 //gaussian width
	Zeta   float64 //angular sharpness
	Lambda float64 //angular sign, +1 or -1

	PowTwo float64 //2^(1-Zeta)
	Pow    PowMode
}

// NewAngularParams returns the G4/G5 parameters with the normalization
// 2^(1-zeta) and the power mode set for zeta.
func NewAngularParams(rc, eta, zeta, lambda float64) AngularParams {
	return AngularParams{
		Rc:     rc,
		Eta:    eta,
		Zeta:   zeta,
		Lambda: lambda,
		PowTwo: math.Pow(2, 1-zeta),
		Pow:    PowModeFor(zeta),
	}
}

// AngularParamsFromSlice reads the parameters in the table order
// Rc, eta, zeta, lambda. Extra elements are ignored.
func AngularParamsFromSlice(par []float64) (AngularParams, error) {
	if err := checkParams(KindG4, par); err != nil {
		return AngularParams{}, errDecorate(err, "AngularParamsFromSlice")
	}
	return NewAngularParams(par[0], par[1], par[2], par[3]), nil
}

// WithPow returns a copy of the parameters using the power mode m.
// Forcing PowInteger with a non-integral zeta is allowed, but the
// derivatives will not be consistent with the values.
func (p AngularParams) WithPow(m PowMode) AngularParams {
	warnPow(m, p.Zeta)
	p.Pow = m
	return p
}

// ANIParams are the parameters of the G6 (ANI-1 like) symmetry function.
// Like AngularParams, they should be obtained from NewANIParams or
// ANIParamsFromSlice.
type ANIParams struct {
	Rc     float64 //cutoff radius
	Eta    float64 //gaussian width
	Zeta   float64 //angular sharpness
	Rs     float64 //radial offset
	ThetaS float64 //angular offset, radians

	PowTwo       float64 //2^(1-Zeta)
	CosTs, SinTs float64 //cos(ThetaS), sin(ThetaS)
	Pow          PowMode
}

// NewANIParams returns the G6 parameters with the derived
// constants set.
func NewANIParams(rc, eta, zeta, rs, thetas float64) ANIParams {
	sin, cos := math.Sincos(thetas)
	return ANIParams{
		Rc:     rc,
		Eta:    eta,
		Zeta:   zeta,
		Rs:     rs,
		ThetaS: thetas,
		PowTwo: math.Pow(2, 1-zeta),
		CosTs:  cos,
		SinTs:  sin,
		Pow:    PowModeFor(zeta),
	}
}

// ANIParamsFromSlice reads the parameters in the table order
// Rc, eta, zeta, Rs, theta_s. Extra elements are ignored.
func ANIParamsFromSlice(par []float64) (ANIParams, error) {
	if err := checkParams(KindG6, par); err != nil {
		return ANIParams{}, errDecorate(err, "ANIParamsFromSlice")
	}
	return NewANIParams(par[0], par[1], par[2], par[3], par[4]), nil
}

// WithPow returns a copy of the parameters using the power mode m.
func (p ANIParams) WithPow(m PowMode) ANIParams {
	warnPow(m, p.Zeta)
	p.Pow = m
	return p
}

func warnPow(m PowMode, zeta float64) {
	if m == PowInteger && PowModeFor(zeta) != PowInteger {
		log.Printf("symf: integer power requested for non-integral zeta %g. Derivatives will not match the values", zeta)
	}
}

func checkParams(k Kind, par []float64) error {
	if len(par) < k.NParams() {
		return newError(ErrParamCount, true, "symf: %v needs %d parameters, got %d", k, k.NParams(), len(par))
	}
	return nil
}
