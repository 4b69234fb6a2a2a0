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
	"testing"
)

func TestOrient(t *testing.T) {
	cases := []struct {
		name    string
		a, b, c Vertex
		want    Orientation
	}{
		{"ccw", Vertex{0, 0}, Vertex{1, 0}, Vertex{0, 1}, CounterClockwise},
		{"cw", Vertex{0, 0}, Vertex{0, 1}, Vertex{1, 1}, Clockwise},
		{"collinear", Vertex{0, 0}, Vertex{1, 1}, Vertex{2, 2}, Collinear},
		{"collinear backwards", Vertex{0, 0}, Vertex{2, 2}, Vertex{1, 1}, Collinear},
		{"near collinear within tolerance", Vertex{0, 0}, Vertex{1, 0}, Vertex{2, 1e-12}, Collinear},
	}
	for _, c := range cases {
		got, err := Orient(c.a, c.b, c.c, 0)
		if err != nil {
			t.Errorf("%s: %v", c.name, err)
			continue
		}
		if got != c.want {
			t.Errorf("%s: Orient = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestOrientInstability(t *testing.T) {
	// Large magnitudes inflate the rounding error band. The
	// determinant here is 1e15 while the band is about 3.6e15, so with
	// a tolerance below the determinant its sign cannot be certified.
	a := Vertex{0, 0}
	b := Vertex{1e15, 1e15}
	c := Vertex{2e15, 2e15 + 1}
	_, err := Orient(a, b, c, 1)
	var nErr *NumericInstabilityError
	if !errors.As(err, &nErr) {
		t.Fatalf("want *NumericInstabilityError, got %v", err)
	}

	// The same triple resolves to collinear with a tolerance above the
	// determinant.
	got, err := Orient(a, b, c, 2e15)
	if err != nil {
		t.Fatal(err)
	}
	if got != Collinear {
		t.Errorf("want collinear at loose tolerance, got %v", got)
	}
}

func TestOrientConsistency(t *testing.T) {
	// Swapping b and c flips the turn direction.
	a, b, c := Vertex{0.1, 0.1}, Vertex{2.7, 0.3}, Vertex{1.3, 1.9}
	o1, err := Orient(a, b, c, 0)
	if err != nil {
		t.Fatal(err)
	}
	o2, err := Orient(a, c, b, 0)
	if err != nil {
		t.Fatal(err)
	}
	if o1 != CounterClockwise || o2 != Clockwise {
		t.Errorf("got %v and %v, want counterclockwise and clockwise", o1, o2)
	}
}
