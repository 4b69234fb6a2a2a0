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

// WithinStatus gives the status of a point relative to a polygon:
// whether it is inside, outside, or on the boundary.
type WithinStatus int

const (
	// Outside the polygon.
	Outside WithinStatus = iota
	// Inside the polygon's interior.
	Inside
	// OnBoundary means the point lies exactly on an edge, within
	// tolerance.
	OnBoundary
)

func (w WithinStatus) String() string {
	switch w {
	case Outside:
		return "outside"
	case Inside:
		return "inside"
	case OnBoundary:
		return "on boundary"
	default:
		return "unknown"
	}
}

func (w WithinStatus) invert() WithinStatus {
	if w == Outside {
		return Inside
	}
	return Outside
}

// vertexInRing determines whether v is within the closed ring, by ray
// casting. Boundary membership is detected explicitly: a point within
// tolerance of an edge is OnBoundary, never Inside or Outside.
// Adapted from https://rosettacode.org/wiki/Ray-casting_algorithm#Go.
// ringBounds may be nil.
func vertexInRing(v Vertex, ring []Vertex, ringBounds *Bounds, tolerance float64) WithinStatus {
	if len(ring) < 4 {
		return Outside
	}
	if ringBounds != nil && !ringBounds.OverlapsWithin(v.Bounds(), tolerance) {
		return Outside
	}
	in := Outside
	for i := 1; i < len(ring); i++ {
		if vertexOnSegment(v, ring[i-1], ring[i], tolerance) {
			return OnBoundary
		}
		if rayIntersectsSegment(v, ring[i-1], ring[i]) {
			in = in.invert()
		}
	}
	return in
}

// rayIntersectsSegment reports whether a ray cast from p in the +X
// direction crosses the segment ab. Nudging p.Y off the segment
// endpoints keeps vertex hits from being counted twice.
func rayIntersectsSegment(p, a, b Vertex) bool {
	if a.Y > b.Y {
		a, b = b, a
	}
	for p.Y == a.Y || p.Y == b.Y {
		p.Y = math.Nextafter(p.Y, math.Inf(1))
	}
	if p.Y < a.Y || p.Y > b.Y {
		return false
	}
	if a.X > b.X {
		if p.X >= a.X {
			return false
		}
		if p.X < b.X {
			return true
		}
	} else {
		if p.X > b.X {
			return false
		}
		if p.X < a.X {
			return true
		}
	}
	return (p.Y-a.Y)/(p.X-a.X) >= (b.Y-a.Y)/(b.X-a.X)
}

// distToSegment returns the shortest distance from p to the segment
// ab. From http://geomalgorithms.com/a02-_lines.html.
func distToSegment(p, a, b Vertex) float64 {
	vx, vy := b.X-a.X, b.Y-a.Y
	wx, wy := p.X-a.X, p.Y-a.Y

	c1 := wx*vx + wy*vy
	if c1 <= 0 {
		return math.Hypot(wx, wy)
	}
	c2 := vx*vx + vy*vy
	if c2 <= c1 {
		return math.Hypot(p.X-b.X, p.Y-b.Y)
	}
	t := c1 / c2
	return math.Hypot(p.X-(a.X+t*vx), p.Y-(a.Y+t*vy))
}

// vertexOnSegment reports whether p lies on the segment ab within
// tolerance.
func vertexOnSegment(p, a, b Vertex, tolerance float64) bool {
	return distToSegment(p, a, b) <= tolerance
}
