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

import "math"

// Bounds holds the spatial extent of a geometry.
type Bounds struct {
	Min, Max Vertex
}

// NewBounds initializes a new, empty bounds object.
func NewBounds() *Bounds {
	return &Bounds{
		Min: Vertex{X: math.Inf(1), Y: math.Inf(1)},
		Max: Vertex{X: math.Inf(-1), Y: math.Inf(-1)},
	}
}

// Copy returns a copy of b.
func (b *Bounds) Copy() *Bounds {
	return &Bounds{Min: b.Min, Max: b.Max}
}

// Empty returns true if b does not contain any points.
func (b *Bounds) Empty() bool {
	return b.Max.X < b.Min.X || b.Max.Y < b.Min.Y
}

// Extend increases the extent of b to include b2.
func (b *Bounds) Extend(b2 *Bounds) {
	if b2 == nil {
		return
	}
	b.extendVertex(b2.Min)
	b.extendVertex(b2.Max)
}

func (b *Bounds) extendVertex(v Vertex) {
	b.Min.X = math.Min(b.Min.X, v.X)
	b.Min.Y = math.Min(b.Min.Y, v.Y)
	b.Max.X = math.Max(b.Max.X, v.X)
	b.Max.Y = math.Max(b.Max.Y, v.Y)
}

func (b *Bounds) extendVertices(vs []Vertex) {
	for _, v := range vs {
		b.extendVertex(v)
	}
}

// Overlaps returns whether b and b2 overlap.
func (b *Bounds) Overlaps(b2 *Bounds) bool {
	return b.Min.X <= b2.Max.X && b.Min.Y <= b2.Max.Y &&
		b.Max.X >= b2.Min.X && b.Max.Y >= b2.Min.Y
}

// OverlapsWithin returns whether b and b2 overlap after expanding b by
// tolerance on each side, so that boxes that merely touch within
// tolerance are still considered overlapping. Every binary operation
// uses this as a fast-reject filter: boxes that do not overlap cannot
// share a point, so exact computation is skipped. It is never a source
// of false negatives.
func (b *Bounds) OverlapsWithin(b2 *Bounds, tolerance float64) bool {
	tolerance = tol(tolerance)
	return b.Min.X-tolerance <= b2.Max.X && b.Min.Y-tolerance <= b2.Max.Y &&
		b.Max.X+tolerance >= b2.Min.X && b.Max.Y+tolerance >= b2.Min.Y
}

// containsBounds reports whether b2 lies within b expanded by tolerance.
func (b *Bounds) containsBounds(b2 *Bounds, tolerance float64) bool {
	return b.Min.X-tolerance <= b2.Min.X && b.Min.Y-tolerance <= b2.Min.Y &&
		b.Max.X+tolerance >= b2.Max.X && b.Max.Y+tolerance >= b2.Max.Y
}

// boundsOf computes the bounding box of a vertex sequence.
func boundsOf(vs []Vertex) Bounds {
	b := NewBounds()
	b.extendVertices(vs)
	return *b
}
