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

func TestIntersectSegmentsCross(t *testing.T) {
	// The diagonals of the square (0,0)-(2,2) cross at its center.
	x, err := IntersectSegments(line(t, 0, 0, 2, 2), line(t, 0, 2, 2, 0), 0)
	if err != nil {
		t.Fatal(err)
	}
	if x.Relation != SegmentsCross {
		t.Fatalf("relation = %v, want cross", x.Relation)
	}
	if !vertexSimilar(x.Point, Vertex{1, 1}, 1e-12) {
		t.Errorf("point = %v, want (1, 1)", x.Point)
	}
}

func TestIntersectSegmentsEndpointTouch(t *testing.T) {
	x, err := IntersectSegments(line(t, 0, 0, 1, 0), line(t, 1, 0, 1, 1), 0)
	if err != nil {
		t.Fatal(err)
	}
	if x.Relation != SegmentsCross {
		t.Fatalf("relation = %v, want cross", x.Relation)
	}
	if !vertexSimilar(x.Point, Vertex{1, 0}, 1e-9) {
		t.Errorf("point = %v, want (1, 0)", x.Point)
	}
}

func TestIntersectSegmentsOverlap(t *testing.T) {
	x, err := IntersectSegments(line(t, 0, 0, 2, 0), line(t, 1, 0, 3, 0), 0)
	if err != nil {
		t.Fatal(err)
	}
	if x.Relation != SegmentsOverlap {
		t.Fatalf("relation = %v, want overlap", x.Relation)
	}
	if !vertexSimilar(x.Start, Vertex{1, 0}, 1e-9) || !vertexSimilar(x.End, Vertex{2, 0}, 1e-9) {
		t.Errorf("overlap = %v to %v, want (1,0) to (2,0)", x.Start, x.End)
	}
}

func TestIntersectSegmentsDisjoint(t *testing.T) {
	cases := []struct {
		name   string
		l1, l2 Line
	}{
		{"parallel", line(t, 0, 0, 1, 0), line(t, 0, 1, 1, 1)},
		{"collinear apart", line(t, 0, 0, 1, 0), line(t, 2, 0, 3, 0)},
		{"skew apart", line(t, 0, 0, 1, 1), line(t, 3, 0, 4, 2)},
	}
	for _, c := range cases {
		x, err := IntersectSegments(c.l1, c.l2, 0)
		if err != nil {
			t.Errorf("%s: %v", c.name, err)
			continue
		}
		if x.Relation != SegmentsDisjoint {
			t.Errorf("%s: relation = %v, want disjoint", c.name, x.Relation)
		}
	}
}

func TestIntersectSegmentsNearTouch(t *testing.T) {
	// A gap smaller than the tolerance counts as endpoint contact.
	x, err := IntersectSegments(line(t, 0, 0, 1, 0), line(t, 1+1e-12, 0, 2, 1), 1e-9)
	if err != nil {
		t.Fatal(err)
	}
	if x.Relation != SegmentsCross {
		t.Errorf("relation = %v, want cross within tolerance", x.Relation)
	}
}
