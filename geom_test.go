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

import "testing"

// square builds an axis-aligned counter-clockwise square for tests.
func square(t *testing.T, x0, y0, x1, y1 float64) Polygon {
	t.Helper()
	p, err := NewPolygon([]Vertex{{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}})
	if err != nil {
		t.Fatalf("square(%g,%g,%g,%g): %v", x0, y0, x1, y1, err)
	}
	return p
}

func line(t *testing.T, x0, y0, x1, y1 float64) Line {
	t.Helper()
	l, err := NewLine(Vertex{x0, y0}, Vertex{x1, y1})
	if err != nil {
		t.Fatalf("line(%g,%g,%g,%g): %v", x0, y0, x1, y1, err)
	}
	return l
}

func path(t *testing.T, vs ...Vertex) Path {
	t.Helper()
	p, err := NewPath(vs)
	if err != nil {
		t.Fatalf("path(%v): %v", vs, err)
	}
	return p
}

func TestBounds(t *testing.T) {
	b := NewBounds()
	if !b.Empty() {
		t.Error("new bounds should be empty")
	}
	b.extendVertices([]Vertex{{1, 2}, {-1, 5}, {3, 0}})
	if b.Min.X != -1 || b.Min.Y != 0 || b.Max.X != 3 || b.Max.Y != 5 {
		t.Errorf("wrong extent: %+v", b)
	}

	b2 := &Bounds{Min: Vertex{4, 0}, Max: Vertex{5, 1}}
	if b.Overlaps(b2) {
		t.Error("disjoint bounds should not overlap")
	}
	if !b.OverlapsWithin(b2, 1.5) {
		t.Error("bounds within tolerance of each other should overlap")
	}
	b.Extend(b2)
	if b.Max.X != 5 {
		t.Errorf("extend: want Max.X = 5, got %g", b.Max.X)
	}
}

func TestDefaultTolerance(t *testing.T) {
	for _, c := range []struct {
		in, want float64
	}{
		{0, DefaultTolerance},
		{-1, DefaultTolerance},
		{1e-3, 1e-3},
	} {
		if got := tol(c.in); got != c.want {
			t.Errorf("tol(%g) = %g, want %g", c.in, got, c.want)
		}
	}
}
