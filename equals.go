/*
Copyright © 2026 the GoSpatial authors.
This file is part of GoSpatial.

GoSpatial is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

GoSpatial is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with GoSpatial.  If not, see <http://www.gnu.org/licenses/>.
*/

package gospatial

// Equals determines whether a and b are the same primitive type and
// structurally equal within tolerance. Polygon comparison is invariant
// to rotation of the ring's starting vertex and to winding direction;
// multi-geometry comparison is invariant to component order. A
// tolerance ≤ 0 selects DefaultTolerance.
func Equals(a, b Geom, tolerance float64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equals(b, tol(tolerance))
}

// ringEquals compares two closed rings for equality within tolerance
// e, anchoring both at their bottom-most-of-leftmost vertex so the
// comparison is invariant to the starting vertex, and checking both
// traversal directions so it is invariant to winding.
func ringEquals(a, b []Vertex, e float64) bool {
	if len(a) != len(b) {
		return false
	}
	if ringsMatchForward(a, b, e) {
		return true
	}
	rev := make([]Vertex, len(b))
	for i, v := range b {
		rev[len(b)-1-i] = v
	}
	return ringsMatchForward(a, rev, e)
}

func ringsMatchForward(a, b []Vertex, e float64) bool {
	ia := minVertex(a)
	ib := minVertex(b)
	for i := 0; i < len(a); i++ {
		if !vertexSimilar(a[ia], b[ib], e) {
			return false
		}
		ia = nextRingIndex(ia, len(a))
		ib = nextRingIndex(ib, len(b))
	}
	return true
}

// nextRingIndex iterates over a closed ring, skipping the final vertex
// that repeats the first.
func nextRingIndex(i, n int) int {
	if i == n-2 {
		return 0
	}
	return i + 1
}

// minVertex finds the bottom-most of leftmost vertices, to have a
// fixed anchor.
func minVertex(ring []Vertex) int {
	min := 0
	for i, v := range ring {
		if v.X < ring[min].X || (v.X == ring[min].X && v.Y < ring[min].Y) {
			min = i
		}
	}
	return min
}
