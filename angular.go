/*
 * angular.go, part of symf.
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

// G4 returns the angular symmetry function
//
//	2^(1-zeta) * (1 + lambda*cos(theta_ijk))^zeta * exp(-eta*(Rij²+Rik²+Rjk²)) * fc(Rij)*fc(Rik)*fc(Rjk)
//
// and its derivatives with respect to Rij, Rik and Rjk, in that order.
// Only the distances of r are read. The rest comes from geom.
func G4(r Triplet, geom NarrowGeometry, par AngularParams) (float64, [3]float64) {
	var deriv [3]float64
	expl := math.Exp(-par.Eta*geom.SumSq) * par.PowTwo
	cosv := 1 + par.Lambda*geom.Cos
	powcos := par.Pow.angular(cosv, par.Zeta)
	zl := par.Zeta * par.Lambda

	deriv[0] = expl * powcos * geom.FcIK * geom.FcJK *
		((-2*par.Eta*r.Rij*geom.FcIJ+geom.DFcIJ)*cosv + zl*geom.FcIJ*geom.DCosIJ)
	deriv[1] = expl * powcos * geom.FcIJ * geom.FcJK *
		((-2*par.Eta*r.Rik*geom.FcIK+geom.DFcIK)*cosv + zl*geom.FcIK*geom.DCosIK)
	deriv[2] = expl * powcos * geom.FcIJ * geom.FcIK *
		((-2*par.Eta*r.Rjk*geom.FcJK+geom.DFcJK)*cosv + zl*geom.FcJK*geom.DCosJK)

	return powcos * cosv * expl * geom.FcIJ * geom.FcIK * geom.FcJK, deriv
}

// G5 returns the angular symmetry function
//
//	2^(1-zeta) * (1 + lambda*cos(theta_ijk))^zeta * exp(-eta*(Rij²+Rik²)) * fc(Rij)*fc(Rik)
//
// and its derivatives with respect to Rij, Rik and Rjk. Rjk only enters
// through the angle, so r.Rjk is not read.
func G5(r Triplet, geom WideGeometry, par AngularParams) (float64, [3]float64) {
	var deriv [3]float64
	expl := math.Exp(-par.Eta*geom.SumSq) * par.PowTwo
	cosv := 1 + par.Lambda*geom.Cos
	powcos := par.Pow.angular(cosv, par.Zeta)
	zl := par.Zeta * par.Lambda

	deriv[0] = expl * powcos * geom.FcIK *
		((-2*par.Eta*r.Rij*geom.FcIJ+geom.DFcIJ)*cosv + zl*geom.FcIJ*geom.DCosIJ)
	deriv[1] = expl * powcos * geom.FcIJ *
		((-2*par.Eta*r.Rik*geom.FcIK+geom.DFcIK)*cosv + zl*geom.FcIK*geom.DCosIK)
	deriv[2] = expl * powcos * geom.FcIJ * geom.FcIK * zl * geom.DCosJK

	return powcos * cosv * expl * geom.FcIJ * geom.FcIK, deriv
}
