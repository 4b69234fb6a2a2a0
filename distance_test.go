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
	"testing"
)

func TestEuclideanDistance(t *testing.T) {
	if got := EuclideanDistance(Vertex{0, 0}, Vertex{3, 4}); got != 5 {
		t.Errorf("distance = %g, want 5", got)
	}
	if got := EuclideanDistance(Vertex{1, 1}, Vertex{1, 1}); got != 0 {
		t.Errorf("distance = %g, want 0", got)
	}
}

func TestHaversineDistance(t *testing.T) {
	// Equator to the north pole is a quarter of the circumference.
	want := math.Pi / 2 * earthRadiusKM
	if got := HaversineDistance(Vertex{X: 0, Y: 0}, Vertex{X: 0, Y: 90}); math.Abs(got-want) > 1e-6 {
		t.Errorf("equator to pole = %g km, want %g km", got, want)
	}

	// One degree of longitude on the equator.
	want = 2 * math.Pi * earthRadiusKM / 360
	if got := HaversineDistance(Vertex{X: 0, Y: 0}, Vertex{X: 1, Y: 0}); math.Abs(got-want) > 1e-6 {
		t.Errorf("one degree on equator = %g km, want %g km", got, want)
	}

	if got := HaversineDistance(Vertex{X: 10, Y: 20}, Vertex{X: 10, Y: 20}); got != 0 {
		t.Errorf("coincident points = %g km, want 0", got)
	}
}

func TestVincentyDistance(t *testing.T) {
	// Meridian arc from the equator to the pole on WGS84.
	got, err := VincentyDistance(Vertex{X: 0, Y: 0}, Vertex{X: 0, Y: 90})
	if err != nil {
		t.Fatal(err)
	}
	const wantPole = 10001965.729
	if math.Abs(got-wantPole) > 1 {
		t.Errorf("equator to pole = %g m, want about %g m", got, wantPole)
	}

	// One degree of longitude along the equator is a/180*pi exactly,
	// since the equator is a circle of radius a.
	got, err = VincentyDistance(Vertex{X: 0, Y: 0}, Vertex{X: 1, Y: 0})
	if err != nil {
		t.Fatal(err)
	}
	want := math.Pi / 180 * wgs84SemiMajorM
	if math.Abs(got-want) > 1 {
		t.Errorf("one degree on equator = %g m, want about %g m", got, want)
	}

	got, err = VincentyDistance(Vertex{X: 5, Y: 5}, Vertex{X: 5, Y: 5})
	if err != nil {
		t.Fatal(err)
	}
	if got != 0 {
		t.Errorf("coincident points = %g m, want 0", got)
	}
}
