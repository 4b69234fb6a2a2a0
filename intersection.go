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

// segment is an edge of a path or polygon ring.
type segment struct {
	a, b Vertex
}

func (s segment) length() float64 {
	return math.Hypot(s.b.X-s.a.X, s.b.Y-s.a.Y)
}

// at returns the point at parameter t along the segment.
func (s segment) at(t float64) Vertex {
	return Vertex{X: s.a.X + t*(s.b.X-s.a.X), Y: s.a.Y + t*(s.b.Y-s.a.Y)}
}

// SegmentRelation classifies how two segments intersect.
type SegmentRelation int

const (
	// SegmentsDisjoint means the segments share no point.
	SegmentsDisjoint SegmentRelation = iota
	// SegmentsCross means the segments share exactly one point,
	// whether by proper crossing or endpoint contact.
	SegmentsCross
	// SegmentsOverlap means the segments are collinear and share a
	// sub-segment of positive length.
	SegmentsOverlap
)

func (r SegmentRelation) String() string {
	switch r {
	case SegmentsDisjoint:
		return "disjoint"
	case SegmentsCross:
		return "cross"
	case SegmentsOverlap:
		return "overlap"
	default:
		return "unknown"
	}
}

// SegmentIntersection is the result of intersecting two segments.
type SegmentIntersection struct {
	Relation SegmentRelation

	// Point is the shared point when Relation is SegmentsCross.
	Point Vertex

	// Start and End delimit the overlapping sub-segment when Relation
	// is SegmentsOverlap.
	Start, End Vertex
}

// IntersectSegments intersects two lines, distinguishing proper
// crossing, endpoint contact (both reported as SegmentsCross with the
// shared point), and collinear overlap (reported as the overlapping
// sub-segment). Endpoint contact is detected within tolerance.
func IntersectSegments(l1, l2 Line, tolerance float64) (SegmentIntersection, error) {
	if err := l1.revalidate(); err != nil {
		return SegmentIntersection{}, err
	}
	if err := l2.revalidate(); err != nil {
		return SegmentIntersection{}, err
	}
	return segIntersect(segment{a: l1.start, b: l1.end}, segment{a: l2.start, b: l2.end}, tol(tolerance))
}

// segIntersect intersects two segments. Based on code by Martínez et
// al. (http://wwwdi.ujaen.es/~fmartin/bool_op.html) with the epsilon
// made an explicit parameter.
func segIntersect(s0, s1 segment, tolerance float64) (SegmentIntersection, error) {
	d0 := Vertex{X: s0.b.X - s0.a.X, Y: s0.b.Y - s0.a.Y}
	d1 := Vertex{X: s1.b.X - s1.a.X, Y: s1.b.Y - s1.a.Y}
	e := Vertex{X: s1.a.X - s0.a.X, Y: s1.a.Y - s0.a.Y}

	kross := d0.X*d1.Y - d0.Y*d1.X
	sqrKross := kross * kross
	sqrLen0 := d0.X*d0.X + d0.Y*d0.Y
	sqrLen1 := d1.X*d1.X + d1.Y*d1.Y
	sqrEpsilon := tolerance * tolerance

	if sqrKross > sqrEpsilon*sqrLen0*sqrLen1 {
		// The segments' lines are not parallel.
		eps0 := tolerance / math.Sqrt(sqrLen0)
		eps1 := tolerance / math.Sqrt(sqrLen1)
		s := (e.X*d1.Y - e.Y*d1.X) / kross
		if s < -eps0 || s > 1+eps0 {
			return SegmentIntersection{Relation: SegmentsDisjoint}, nil
		}
		t := (e.X*d0.Y - e.Y*d0.X) / kross
		if t < -eps1 || t > 1+eps1 {
			return SegmentIntersection{Relation: SegmentsDisjoint}, nil
		}
		s = clamp01(s)
		return SegmentIntersection{Relation: SegmentsCross, Point: s0.at(s)}, nil
	}

	// The segments' lines are parallel; coincident only if s1.a lies on
	// the line of s0.
	sqrLenE := e.X*e.X + e.Y*e.Y
	krossE := e.X*d0.Y - e.Y*d0.X
	if krossE*krossE > sqrEpsilon*sqrLen0*sqrLenE {
		return SegmentIntersection{Relation: SegmentsDisjoint}, nil
	}

	// Collinear lines; test for overlap of the segments themselves.
	p0 := (d0.X*e.X + d0.Y*e.Y) / sqrLen0
	p1 := p0 + (d0.X*d1.X+d0.Y*d1.Y)/sqrLen0
	pmin, pmax := math.Min(p0, p1), math.Max(p0, p1)
	eps := tolerance / math.Sqrt(sqrLen0)
	w, n := intervalOverlap(0, 1, pmin, pmax, eps)
	switch n {
	case 0:
		return SegmentIntersection{Relation: SegmentsDisjoint}, nil
	case 1:
		return SegmentIntersection{Relation: SegmentsCross, Point: s0.at(clamp01(w[0]))}, nil
	default:
		va := s0.at(clamp01(w[0]))
		vb := s0.at(clamp01(w[1]))
		if vertexSimilar(va, vb, tolerance) {
			// A vanishingly short overlap collapses to a point.
			return SegmentIntersection{Relation: SegmentsCross, Point: va}, nil
		}
		return SegmentIntersection{Relation: SegmentsOverlap, Start: va, End: vb}, nil
	}
}

// intervalOverlap intersects the intervals [u0, u1] and [v0, v1],
// treating endpoints within eps as touching.
func intervalOverlap(u0, u1, v0, v1, eps float64) ([2]float64, int) {
	var w [2]float64
	if u1 < v0-eps || u0 > v1+eps {
		return w, 0
	}
	if math.Abs(u1-v0) <= eps {
		w[0] = u1
		return w, 1
	}
	if math.Abs(u0-v1) <= eps {
		w[0] = u0
		return w, 1
	}
	w[0] = math.Max(u0, v0)
	w[1] = math.Min(u1, v1)
	return w, 2
}

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
