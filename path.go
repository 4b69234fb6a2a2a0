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

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Path is an ordered open chain of two or more vertices. Consecutive
// vertices differ and the first vertex differs from the last.
// Self-intersection is permitted. The vertex sequence is owned by
// value and the bounding box is cached at construction.
type Path struct {
	vertices []Vertex
	bounds   Bounds
}

// NewPath returns a new path along the given vertices. The input slice
// is copied. Chains with fewer than two vertices, equal consecutive
// vertices, non-finite coordinates, or equal first and last vertices
// are rejected with a *DegenerateGeometryError.
func NewPath(vertices []Vertex) (Path, error) {
	if len(vertices) < 2 {
		return Path{}, newDegenerate(InsufficientVertices, "a path needs at least 2 vertices, got %d", len(vertices))
	}
	vs := make([]Vertex, len(vertices))
	copy(vs, vertices)
	if err := validateChain(vs); err != nil {
		return Path{}, err
	}
	if vs[0] == vs[len(vs)-1] {
		return Path{}, newDegenerate(ClosedChain, "first and last vertices are equal: %v", vs[0])
	}
	return Path{vertices: vs, bounds: boundsOf(vs)}, nil
}

func validateChain(vs []Vertex) error {
	for i, v := range vs {
		if err := v.revalidate(); err != nil {
			return err
		}
		if i > 0 && v == vs[i-1] {
			return newDegenerate(RepeatedVertex, "vertices %d and %d are equal: %v", i-1, i, v)
		}
	}
	return nil
}

// Bounds gives the rectangular extents of the path.
func (p Path) Bounds() *Bounds { return p.bounds.Copy() }

// Dimension returns 1.
func (p Path) Dimension() int { return 1 }

// Vertices returns a copy of the path's vertex sequence.
func (p Path) Vertices() []Vertex {
	vs := make([]Vertex, len(p.vertices))
	copy(vs, p.vertices)
	return vs
}

// NumVertices returns the number of vertices in the path.
func (p Path) NumVertices() int { return len(p.vertices) }

// Vertex returns the i'th vertex of the path.
func (p Path) Vertex(i int) Vertex { return p.vertices[i] }

// Length calculates the total Euclidean length of p.
func (p Path) Length() float64 {
	if len(p.vertices) < 2 {
		return 0
	}
	lengths := make([]float64, len(p.vertices)-1)
	for i := 1; i < len(p.vertices); i++ {
		lengths[i-1] = math.Hypot(p.vertices[i].X-p.vertices[i-1].X,
			p.vertices[i].Y-p.vertices[i-1].Y)
	}
	return floats.Sum(lengths)
}

// Equals determines whether p and g are the same path within
// tolerance: same ordered vertex sequence. A MultiPath holding a
// single equal chain compares equal too, so equality stays symmetric
// across the two container types.
func (p Path) Equals(g Geom, tolerance float64) bool {
	switch g2 := g.(type) {
	case Path:
		return verticesSimilar(p.vertices, g2.vertices, tol(tolerance))
	case MultiPath:
		return len(g2.paths) == 1 && verticesSimilar(p.vertices, g2.paths[0].vertices, tol(tolerance))
	default:
		return false
	}
}

func (p Path) revalidate() error {
	if len(p.vertices) < 2 {
		return newDegenerate(InsufficientVertices, "a path needs at least 2 vertices, got %d", len(p.vertices))
	}
	if err := validateChain(p.vertices); err != nil {
		return err
	}
	if p.vertices[0] == p.vertices[len(p.vertices)-1] {
		return newDegenerate(ClosedChain, "first and last vertices are equal: %v", p.vertices[0])
	}
	return nil
}

func (p Path) segments() []segment {
	segs := make([]segment, 0, len(p.vertices)-1)
	for i := 1; i < len(p.vertices); i++ {
		segs = append(segs, segment{a: p.vertices[i-1], b: p.vertices[i]})
	}
	return segs
}
