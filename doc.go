/*
 * doc.go, part of symf.
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

/*Package symf computes atom-centered symmetry functions and their analytic
derivatives with respect to the pair distances, to be used as input for
machine-learned interatomic potentials.


	**Implemented symmetry functions**

	G2: radial, exp(-eta*(Rij-Rs)²)*fc(Rij).

	G4: angular, with the cutoffs and the gaussian of all three pair distances.

	G5: angular, only the two distances from the central atom. There is no
	Rjk cutoff.

	G6: the modified angular function from ANI-1 (J. S. Smith et al.,
	Chem. Sci., 2017, 8, 3192), with an angular and a radial offset.

The cosine cutoff function, fc, and its derivative are also provided,
with a small caller-owned cache (CutoffCache) for the values shared
among the many symmetry functions evaluated on the same pair distance.

The functions do not build the geometry. The caller computes the distances,
the cutoffs, the angle and their derivatives for each triplet, and passes them
in a Precal (or one of its per-type views). Precal can be read from the flat
17-element layout used by the C/LAMMPS code with PrecalFromSlice.

All the symmetry functions are pure and can be called concurrently. A
CutoffCache must not be shared among goroutines.

Symmetry functions never return errors. Errors are only returned when
building parameters or descriptors from the untyped slices of a parameter
table, and they implement the Error interface.*/
package symf
