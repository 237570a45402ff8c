/*
 * ani.go, part of symf.
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

// G6 returns the modified angular symmetry function from ANI-1
// (J. S. Smith et al., Chem. Sci., 2017, 8, 3192):
//
//	2^(1-zeta) * (1 + cos(theta_ijk - theta_s))^zeta * exp(-eta*((Rij+Rik)/2 - Rs)²) * fc(Rij)*fc(Rik)
//
// and its derivatives with respect to Rij, Rik and Rjk.
// cos(theta_ijk - theta_s) is expanded as cos(theta_s)cos(theta_ijk)+sin(theta_s)sin(theta_ijk).
func G6(r Triplet, geom ANIGeometry, par ANIParams) (float64, [3]float64) {
	var deriv [3]float64
	expo := 0.5*(r.Rij+r.Rik) - par.Rs
	expl := math.Exp(-par.Eta*expo*expo) * par.PowTwo
	cosv := 1 + par.CosTs*geom.Cos + par.SinTs*geom.Sin
	powcos := par.Pow.angular(cosv, par.Zeta)

	deriv[0] = expl * powcos * geom.FcIK *
		(geom.FcIJ*par.Zeta*(par.CosTs*geom.DCosIJ+par.SinTs*geom.DSinIJ) +
			cosv*(geom.DFcIJ-par.Eta*expo*geom.FcIJ))
	deriv[1] = expl * powcos * geom.FcIJ *
		(geom.FcIK*par.Zeta*(par.CosTs*geom.DCosIK+par.SinTs*geom.DSinIK) +
			cosv*(geom.DFcIK-par.Eta*expo*geom.FcIK))
	deriv[2] = expl * powcos * geom.FcIJ * geom.FcIK * par.Zeta *
		(par.CosTs*geom.DCosJK + par.SinTs*geom.DSinJK)

	return powcos * cosv * expl * geom.FcIJ * geom.FcIK, deriv
}
