/*
 * interfaces.go, part of symf.
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

// Descriptor is a symmetry function with its parameters already bound.
// Descriptors are obtained from Compile and are safe for concurrent use.
type Descriptor interface {

	//Kind returns the symmetry function type implemented by the descriptor.
	Kind() Kind

	//Eval evaluates the descriptor for the distances in r, reading from p
	//only the fields that the descriptor's type consumes. For radial
	//descriptors only r.Rij and the ij fields of p are used.
	Eval(r Triplet, p Precal) Result
}

//Errors

// Error is implemented by every error this package returns. Decorate adds
// the name of a calling function to the error, so the path an error took can
// be read back later without wrapping it into a new type.
type Error interface {
	Error() string
	Decorate(string) []string //Each call returns the decoration slice resulting from the current call. An empty string adds nothing.
	Critical() bool
}
