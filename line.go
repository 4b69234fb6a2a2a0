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
)

// Line is an ordered pair of two distinct vertices. It owns its
// vertices by value and caches its bounding box at construction.
type Line struct {
	start, end Vertex
	bounds     Bounds
}

// NewLine returns a new line from start to end. Identical start and
// end vertices are rejected with a *DegenerateGeometryError.
func NewLine(start, end Vertex) (Line, error) {
	if err := start.revalidate(); err != nil {
		return Line{}, err
	}
	if err := end.revalidate(); err != nil {
		return Line{}, err
	}
	if start == end {
		return Line{}, newDegenerate(ZeroLength, "start and end vertices are equal: %v", start)
	}
	return Line{
		start:  start,
		end:    end,
		bounds: boundsOf([]Vertex{start, end}),
	}, nil
}

// Start returns the starting vertex of the line.
func (l Line) Start() Vertex { return l.start }

// End returns the ending vertex of the line.
func (l Line) End() Vertex { return l.end }

// Bounds gives the rectangular extents of the line.
func (l Line) Bounds() *Bounds { return l.bounds.Copy() }

// Dimension returns 1.
func (l Line) Dimension() int { return 1 }

// Vertices returns the start and end vertices.
func (l Line) Vertices() []Vertex { return []Vertex{l.start, l.end} }

// Length calculates the Euclidean length of l.
func (l Line) Length() float64 {
	return math.Hypot(l.end.X-l.start.X, l.end.Y-l.start.Y)
}

// Equals determines whether l and g are the same line within
// tolerance: same ordered vertex pair.
func (l Line) Equals(g Geom, tolerance float64) bool {
	l2, ok := g.(Line)
	if !ok {
		return false
	}
	e := tol(tolerance)
	return vertexSimilar(l.start, l2.start, e) && vertexSimilar(l.end, l2.end, e)
}

func (l Line) String() string {
	return fmt.Sprintf("Line(%v, %v)", l.start, l.end)
}

func (l Line) revalidate() error {
	if err := l.start.revalidate(); err != nil {
		return err
	}
	if err := l.end.revalidate(); err != nil {
		return err
	}
	if l.start == l.end {
		return newDegenerate(ZeroLength, "start and end vertices are equal: %v", l.start)
	}
	return nil
}

func (l Line) segments() []segment {
	return []segment{{a: l.start, b: l.end}}
}
