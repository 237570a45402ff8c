/*
 * cutoff.go, part of symf.
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

// CacheSlots is the number of (distance, cutoff radius) pairs a
// CutoffCache remembers. One slot per pair distance of a triplet.
const CacheSlots = 3

// Cutoff returns the cosine cutoff function for frac = distance/cutoff radius.
// It is 1 at frac=0 and 0 for frac>=1.
func Cutoff(frac float64) float64 {
	if frac >= 1.0 {
		return 0
	}
	return 0.5 * (1 + math.Cos(math.Pi*frac))
}

// CutoffDeriv returns the derivative of the cutoff function with
// respect to the distance dist, for the cutoff radius rc.
func CutoffDeriv(dist, rc float64) float64 {
	if dist/rc >= 1.0 {
		return 0
	}
	return -0.5 * math.Pi * math.Sin(math.Pi*dist/rc) / rc
}

// CutoffAndDeriv returns both the cutoff function and its derivative
// for the distance dist and the cutoff radius rc, sharing the trigonometry.
func CutoffAndDeriv(dist, rc float64) (f, df float64) {
	frac := dist / rc
	if frac >= 1.0 {
		return 0, 0
	}
	sin, cos := math.Sincos(math.Pi * frac)
	return 0.5 * (1 + cos), -0.5 * math.Pi * sin / rc
}

type cutoffSlot struct {
	dist, rc float64
	f, df    float64
	filled   bool
}

// CutoffCache remembers the last cutoff value and derivative computed in
// each of its slots. The zero value is ready to use.
// A CutoffCache is not safe for concurrent use. Each goroutine
// computing geometries should own its own cache.
type CutoffCache struct {
	slots [CacheSlots]cutoffSlot
}

// Get returns the cutoff function and its derivative for dist and rc.
// If the slot was last used with exactly the same dist and rc, the stored
// values are returned without recomputing them. The caller is responsible
// for using different slots for values needed at the same time.
// Get panics if slot is not in [0, CacheSlots).
func (c *CutoffCache) Get(dist, rc float64, slot int) (f, df float64) {
	s := &c.slots[slot]
	if s.filled && s.dist == dist && s.rc == rc {
		return s.f, s.df
	}
	f, df = CutoffAndDeriv(dist, rc)
	*s = cutoffSlot{dist: dist, rc: rc, f: f, df: df, filled: true}
	return f, df
}

// Reset forgets all the stored values.
func (c *CutoffCache) Reset() {
	c.slots = [CacheSlots]cutoffSlot{}
}
