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
	"errors"
	"math"
	"testing"
)

func TestNewVertex(t *testing.T) {
	v, err := NewVertex(1, 2)
	if err != nil {
		t.Fatal(err)
	}
	if v.X != 1 || v.Y != 2 {
		t.Errorf("wrong coordinates: %v", v)
	}
	b := v.Bounds()
	if b.Min != v || b.Max != v {
		t.Errorf("vertex bounds should collapse to the vertex, got %+v", b)
	}

	for _, bad := range [][2]float64{
		{math.NaN(), 0},
		{0, math.Inf(1)},
		{math.Inf(-1), 0},
	} {
		_, err := NewVertex(bad[0], bad[1])
		var dErr *DegenerateGeometryError
		if !errors.As(err, &dErr) || dErr.Reason != NonFiniteCoordinate {
			t.Errorf("NewVertex(%v): want NonFiniteCoordinate, got %v", bad, err)
		}
	}
}

func TestVertexEquals(t *testing.T) {
	a := Vertex{1, 1}
	if !a.Equals(Vertex{1 + 1e-10, 1 - 1e-10}, 0) {
		t.Error("vertices within default tolerance should be equal")
	}
	if a.Equals(Vertex{1.1, 1}, 0) {
		t.Error("distinct vertices should not be equal")
	}
	if !a.Equals(Vertex{1.1, 1}, 0.2) {
		t.Error("vertices within explicit tolerance should be equal")
	}
	if a.Equals(Line{}, 0) {
		t.Error("a vertex never equals another primitive type")
	}
}

func TestNewLine(t *testing.T) {
	l := line(t, 0, 0, 3, 4)
	if got := l.Length(); got != 5 {
		t.Errorf("length = %g, want 5", got)
	}
	if l.Dimension() != 1 {
		t.Errorf("dimension = %d, want 1", l.Dimension())
	}
	b := l.Bounds()
	if b.Min != (Vertex{0, 0}) || b.Max != (Vertex{3, 4}) {
		t.Errorf("wrong bounds: %+v", b)
	}

	_, err := NewLine(Vertex{1, 1}, Vertex{1, 1})
	var dErr *DegenerateGeometryError
	if !errors.As(err, &dErr) || dErr.Reason != ZeroLength {
		t.Errorf("want ZeroLength, got %v", err)
	}
}

func TestLineEquals(t *testing.T) {
	a := line(t, 0, 0, 1, 1)
	if !a.Equals(line(t, 0, 0, 1, 1), 0) {
		t.Error("identical lines should be equal")
	}
	// Lines are ordered vertex pairs.
	if a.Equals(line(t, 1, 1, 0, 0), 0) {
		t.Error("reversed lines should not be equal")
	}
}

func TestNewPath(t *testing.T) {
	p := path(t, Vertex{0, 0}, Vertex{3, 4}, Vertex{3, 8})
	if got := p.Length(); got != 9 {
		t.Errorf("length = %g, want 9", got)
	}
	if p.NumVertices() != 3 {
		t.Errorf("vertex count = %d, want 3", p.NumVertices())
	}
	if p.Vertex(1) != (Vertex{3, 4}) {
		t.Errorf("wrong middle vertex: %v", p.Vertex(1))
	}

	cases := []struct {
		vs     []Vertex
		reason DegenerateReason
	}{
		{[]Vertex{{0, 0}}, InsufficientVertices},
		{[]Vertex{{0, 0}, {0, 0}, {1, 1}}, RepeatedVertex},
		{[]Vertex{{0, 0}, {1, 1}, {0, 0}}, ClosedChain},
		{[]Vertex{{0, 0}, {math.NaN(), 1}}, NonFiniteCoordinate},
	}
	for _, c := range cases {
		_, err := NewPath(c.vs)
		var dErr *DegenerateGeometryError
		if !errors.As(err, &dErr) || dErr.Reason != c.reason {
			t.Errorf("NewPath(%v): want %v, got %v", c.vs, c.reason, err)
		}
	}
}

func TestPathVerticesIsolated(t *testing.T) {
	in := []Vertex{{0, 0}, {1, 0}}
	p, err := NewPath(in)
	if err != nil {
		t.Fatal(err)
	}
	in[0] = Vertex{9, 9}
	if p.Vertex(0) != (Vertex{0, 0}) {
		t.Error("path should copy its input slice")
	}
	out := p.Vertices()
	out[0] = Vertex{8, 8}
	if p.Vertex(0) != (Vertex{0, 0}) {
		t.Error("Vertices should return a copy")
	}
}

func TestNewPolygon(t *testing.T) {
	p := square(t, 0, 0, 1, 1)
	b := p.Bounds()
	if b.Min != (Vertex{0, 0}) || b.Max != (Vertex{1, 1}) {
		t.Errorf("unit square bounds = %+v, want (0,0)-(1,1)", b)
	}
	if got := p.Area(); got != 1 {
		t.Errorf("area = %g, want 1", got)
	}
	if got := p.Centroid(); !vertexSimilar(got, Vertex{0.5, 0.5}, 1e-12) {
		t.Errorf("centroid = %v, want (0.5, 0.5)", got)
	}
	if p.Winding() != CounterClockwise {
		t.Errorf("winding = %v, want counterclockwise", p.Winding())
	}

	// Clockwise input is preserved, not normalized.
	cw, err := NewPolygon([]Vertex{{0, 0}, {0, 1}, {1, 1}, {1, 0}})
	if err != nil {
		t.Fatal(err)
	}
	if cw.Winding() != Clockwise {
		t.Errorf("winding = %v, want clockwise", cw.Winding())
	}

	// Explicitly closed input is accepted.
	closed, err := NewPolygon([]Vertex{{0, 0}, {1, 0}, {1, 1}, {0, 1}, {0, 0}})
	if err != nil {
		t.Fatal(err)
	}
	if !closed.Equals(p, 0) {
		t.Error("explicitly and implicitly closed rings should build equal polygons")
	}
}

func TestNewPolygonDegenerate(t *testing.T) {
	cases := []struct {
		name   string
		vs     []Vertex
		reason DegenerateReason
	}{
		{"too few", []Vertex{{0, 0}, {1, 0}}, InsufficientVertices},
		{"collinear", []Vertex{{0, 0}, {1, 1}, {2, 2}}, ZeroArea},
		{"bowtie", []Vertex{{0, 0}, {3, 3}, {3, 0}, {0, 2}}, SelfIntersection},
		{"repeated", []Vertex{{0, 0}, {1, 0}, {1, 0}, {1, 1}}, RepeatedVertex},
	}
	for _, c := range cases {
		_, err := NewPolygon(c.vs)
		var dErr *DegenerateGeometryError
		if !errors.As(err, &dErr) || dErr.Reason != c.reason {
			t.Errorf("%s: want %v, got %v", c.name, c.reason, err)
		}
	}
}

func TestPolygonEqualsInvariance(t *testing.T) {
	p := square(t, 0, 0, 1, 1)

	if !p.Equals(p, 0) {
		t.Error("a polygon should equal itself")
	}

	// Same ring, rotated starting vertex.
	rotated, err := NewPolygon([]Vertex{{1, 1}, {0, 1}, {0, 0}, {1, 0}})
	if err != nil {
		t.Fatal(err)
	}
	if !p.Equals(rotated, 0) || !rotated.Equals(p, 0) {
		t.Error("equality should be invariant to the starting vertex")
	}

	// Same ring, opposite winding.
	reversed, err := NewPolygon([]Vertex{{0, 0}, {0, 1}, {1, 1}, {1, 0}})
	if err != nil {
		t.Fatal(err)
	}
	if !p.Equals(reversed, 0) {
		t.Error("equality should be invariant to winding direction")
	}

	other := square(t, 0, 0, 2, 2)
	if p.Equals(other, 0) {
		t.Error("different rings should not be equal")
	}
}

func TestPolygonContains(t *testing.T) {
	p := square(t, 0, 0, 1, 1)
	cases := []struct {
		v    Vertex
		want WithinStatus
	}{
		{Vertex{0.5, 0.5}, Inside},
		{Vertex{2, 2}, Outside},
		{Vertex{-0.1, 0.5}, Outside},
		{Vertex{0.5, 0}, OnBoundary},
		{Vertex{0, 0}, OnBoundary},
		{Vertex{1, 1}, OnBoundary},
	}
	for _, c := range cases {
		if got := p.Contains(c.v, 0); got != c.want {
			t.Errorf("Contains(%v) = %v, want %v", c.v, got, c.want)
		}
	}
}

func TestMultiPolygonHole(t *testing.T) {
	outer := square(t, 0, 0, 3, 3)
	hole, err := NewPolygon([]Vertex{{1, 1}, {1, 2}, {2, 2}, {2, 1}}) // clockwise
	if err != nil {
		t.Fatal(err)
	}
	mp, err := NewMultiPolygon([]Polygon{outer, hole})
	if err != nil {
		t.Fatal(err)
	}
	if got := mp.Area(); got != 8 {
		t.Errorf("area = %g, want 8", got)
	}
	cases := []struct {
		v    Vertex
		want WithinStatus
	}{
		{Vertex{0.5, 0.5}, Inside},
		{Vertex{1.5, 1.5}, Outside}, // inside the hole
		{Vertex{1, 1.5}, OnBoundary},
		{Vertex{4, 4}, Outside},
	}
	for _, c := range cases {
		if got := mp.Contains(c.v, 0); got != c.want {
			t.Errorf("Contains(%v) = %v, want %v", c.v, got, c.want)
		}
	}

	// Component order does not matter for equality.
	mp2, err := NewMultiPolygon([]Polygon{hole, outer})
	if err != nil {
		t.Fatal(err)
	}
	if !mp.Equals(mp2, 0) {
		t.Error("ring order should not affect equality")
	}
}

func TestEqualsSymmetricAcrossContainers(t *testing.T) {
	sq := square(t, 0, 0, 1, 1)
	mp, err := NewMultiPolygon([]Polygon{sq})
	if err != nil {
		t.Fatal(err)
	}
	p := path(t, Vertex{0, 0}, Vertex{1, 0}, Vertex{1, 1})
	mpath, err := NewMultiPath([]Path{p})
	if err != nil {
		t.Fatal(err)
	}
	two, err := NewMultiPolygon([]Polygon{sq, square(t, 5, 5, 6, 6)})
	if err != nil {
		t.Fatal(err)
	}
	cases := []struct {
		name string
		a, b Geom
		want bool
	}{
		{"polygon and single-ring multi-polygon", sq, mp, true},
		{"path and single-chain multi-path", p, mpath, true},
		{"polygon and two-ring multi-polygon", sq, two, false},
		{"polygon and shifted single-ring multi-polygon", square(t, 2, 2, 3, 3), mp, false},
	}
	for _, c := range cases {
		ab := c.a.Equals(c.b, 0)
		ba := c.b.Equals(c.a, 0)
		if ab != ba {
			t.Errorf("%s: asymmetric equality %v vs %v", c.name, ab, ba)
		}
		if ab != c.want {
			t.Errorf("%s: Equals = %v, want %v", c.name, ab, c.want)
		}
	}
}
