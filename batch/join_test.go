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

package batch

import (
	"reflect"
	"testing"

	"github.com/otavioabreu27/gospatial"
)

func TestJoin(t *testing.T) {
	subjects := []gospatial.Geom{
		testSquare(t, 0, 0, 2, 2),
		testSquare(t, 10, 10, 11, 11),
		gospatial.Vertex{X: 1, Y: 1},
	}
	clips := []gospatial.Geom{
		testSquare(t, 1, 1, 3, 3),
		testSquare(t, 50, 50, 51, 51),
		testSquare(t, 9.5, 9.5, 10.5, 10.5),
		testSquare(t, 0.5, 0.5, 1.5, 1.5),
	}

	got := Join(subjects, clips, 1e-9)

	// Brute force over bounding boxes.
	var want []Pair
	for i, s := range subjects {
		for j, c := range clips {
			if s.Bounds().OverlapsWithin(c.Bounds(), 1e-9) {
				want = append(want, Pair{Subject: i, Clip: j})
			}
		}
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Join = %v, want %v", got, want)
	}
}

func TestJoinNilAndEmpty(t *testing.T) {
	if got := Join(nil, nil, 0); len(got) != 0 {
		t.Errorf("empty join = %v, want none", got)
	}
	subjects := []gospatial.Geom{nil, testSquare(t, 0, 0, 1, 1)}
	clips := []gospatial.Geom{testSquare(t, 0.5, 0.5, 2, 2), nil}
	got := Join(subjects, clips, 0)
	want := []Pair{{Subject: 1, Clip: 0}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Join = %v, want %v", got, want)
	}
}
