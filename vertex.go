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
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Vertex is a holder for 2D coordinates X and Y. It is an immutable
// value; both coordinates are finite.
type Vertex struct {
	X, Y float64
}

// NewVertex returns a new vertex with coordinates x and y. Non-finite
// coordinates (NaN or ±Inf) are rejected with a
// *DegenerateGeometryError.
func NewVertex(x, y float64) (Vertex, error) {
	v := Vertex{X: x, Y: y}
	if err := v.revalidate(); err != nil {
		return Vertex{}, err
	}
	return v, nil
}

// Bounds gives the rectangular extents of the vertex.
func (v Vertex) Bounds() *Bounds {
	return &Bounds{Min: v, Max: v}
}

// Dimension returns 0.
func (v Vertex) Dimension() int { return 0 }

// Vertices returns []{v} to fulfill the Geom interface.
func (v Vertex) Vertices() []Vertex { return []Vertex{v} }

// Equals determines whether v and g are the same vertex within
// tolerance.
func (v Vertex) Equals(g Geom, tolerance float64) bool {
	v2, ok := g.(Vertex)
	if !ok {
		return false
	}
	return vertexSimilar(v, v2, tol(tolerance))
}

func (v Vertex) String() string {
	return fmt.Sprintf("Vertex(%g, %g)", v.X, v.Y)
}

func (v Vertex) revalidate() error {
	if math.IsNaN(v.X) || math.IsInf(v.X, 0) || math.IsNaN(v.Y) || math.IsInf(v.Y, 0) {
		return newDegenerate(NonFiniteCoordinate, "(%v, %v)", v.X, v.Y)
	}
	return nil
}

// vertexSimilar reports whether two vertices coincide within tolerance e.
func vertexSimilar(a, b Vertex, e float64) bool {
	return floats.EqualWithinAbs(a.X, b.X, e) && floats.EqualWithinAbs(a.Y, b.Y, e)
}

func verticesSimilar(a, b []Vertex, e float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i, n := 0, len(a); i < n; i++ {
		if !vertexSimilar(a[i], b[i], e) {
			return false
		}
	}
	return true
}
