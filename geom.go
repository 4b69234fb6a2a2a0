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

// Package gospatial holds planar geometry primitives and functions to
// operate on them. All primitives are immutable after construction and
// can therefore be shared freely between goroutines; the batch
// subpackage relies on this to evaluate operations in parallel without
// locking.
//
// Coordinates are planar (or pre-projected) values in a single
// consistent reference frame supplied by the caller. Every predicate
// takes an explicit numeric tolerance; passing a value ≤ 0 selects
// DefaultTolerance.
package gospatial

// DefaultTolerance is the numeric tolerance used for equality and
// collinearity comparisons when the caller passes a tolerance ≤ 0.
const DefaultTolerance = 1.e-9

// Geom is an interface for generic geometry types.
type Geom interface {
	// Bounds returns a copy of the axis-aligned bounding box of the
	// geometry. The box is computed once at construction and cached.
	Bounds() *Bounds

	// Dimension returns the topological dimension of the geometry:
	// 0 for a Vertex, 1 for a Line or Path, 2 for a Polygon.
	Dimension() int

	// Vertices returns a copy of the vertices defining the geometry.
	Vertices() []Vertex

	// Equals determines whether this geometry is structurally equal to
	// g within tolerance. Polygon equality is invariant to rotation of
	// the ring's starting vertex and to winding direction.
	Equals(g Geom, tolerance float64) bool

	// revalidate re-checks construction invariants, guarding against
	// primitives built outside the validated constructors.
	revalidate() error
}

// Polygonal is an interface for types that are polygonal in nature.
type Polygonal interface {
	Geom

	// Polygons returns the rings making up the geometry.
	Polygons() []Polygon

	// Contains reports the position of v relative to the geometry.
	Contains(v Vertex, tolerance float64) WithinStatus

	// Area returns the enclosed area.
	Area() float64
}

// tol normalizes a caller-supplied tolerance.
func tol(tolerance float64) float64 {
	if tolerance <= 0 {
		return DefaultTolerance
	}
	return tolerance
}
