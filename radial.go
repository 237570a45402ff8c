/*
 * radial.go, part of symf.
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

// G2 returns the radial symmetry function
//
//	exp(-eta*(Rij-Rs)²) * fc(Rij)
//
// and its derivative with respect to rij.
func G2(rij float64, geom RadialGeometry, par RadialParams) (float64, float64) {
	tmp := rij - par.Rs
	expl := math.Exp(-par.Eta * tmp * tmp)
	deriv := expl * (-2*par.Eta*tmp*geom.Fc + geom.DFc)
	return expl * geom.Fc, deriv
}
