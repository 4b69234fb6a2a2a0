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

// Intersects reports whether a and b share at least one point. It is
// symmetric. Bounding boxes are compared first; exact computation runs
// only when the boxes overlap within tolerance.
func Intersects(a, b Geom, tolerance float64) (bool, error) {
	tolerance = tol(tolerance)
	if err := checkPair("intersects", a, b); err != nil {
		return false, err
	}
	if !a.Bounds().OverlapsWithin(b.Bounds(), tolerance) {
		return false, nil
	}
	return sharePoint(a, b, tolerance), nil
}

// Within reports whether a lies within b: every vertex of a is inside
// or on the boundary of b, and a is not equal to b. b must be
// polygonal; other containers are rejected with an
// *UnsupportedOperationError.
func Within(a, b Geom, tolerance float64) (bool, error) {
	tolerance = tol(tolerance)
	if err := checkPair("within", a, b); err != nil {
		return false, err
	}
	pb, ok := b.(Polygonal)
	if !ok {
		return false, &UnsupportedOperationError{Op: "within", A: a, B: b}
	}
	if a.Equals(b, tolerance) {
		return false, nil
	}
	if !b.Bounds().containsBounds(a.Bounds(), tolerance) {
		return false, nil
	}
	for _, v := range a.Vertices() {
		if pb.Contains(v, tolerance) == Outside {
			return false, nil
		}
	}
	return true, nil
}

// Touches reports whether a and b share at least one boundary point
// while their interiors stay disjoint.
func Touches(a, b Geom, tolerance float64) (bool, error) {
	tolerance = tol(tolerance)
	if err := checkPair("touches", a, b); err != nil {
		return false, err
	}
	if !a.Bounds().OverlapsWithin(b.Bounds(), tolerance) {
		return false, nil
	}
	if !sharePoint(a, b, tolerance) {
		return false, nil
	}
	return !interiorsIntersect(a, b, tolerance), nil
}

// Crosses reports whether a and b intersect such that the intersection
// has a lower dimension than the greater of their dimensions and is
// not fully contained in either boundary. Vertices cannot cross, and
// two polygonal geometries cannot cross (a lower-dimensional shared
// part would lie in both boundaries).
func Crosses(a, b Geom, tolerance float64) (bool, error) {
	tolerance = tol(tolerance)
	if err := checkPair("crosses", a, b); err != nil {
		return false, err
	}
	if !a.Bounds().OverlapsWithin(b.Bounds(), tolerance) {
		return false, nil
	}
	da, db := a.Dimension(), b.Dimension()
	switch {
	case da == 0 || db == 0:
		return false, nil
	case da == 2 && db == 2:
		return false, nil
	case da == 1 && db == 1:
		return linesCross(a, b, tolerance), nil
	case db == 2:
		return lineCrossesArea(a, b.(Polygonal), tolerance), nil
	default:
		return lineCrossesArea(b, a.(Polygonal), tolerance), nil
	}
}

func checkPair(op string, a, b Geom) error {
	if a == nil || b == nil {
		return &UnsupportedOperationError{Op: op, A: a, B: b}
	}
	if err := a.revalidate(); err != nil {
		return err
	}
	return b.revalidate()
}

// sharePoint reports whether a and b share at least one point, given
// overlapping bounding boxes.
func sharePoint(a, b Geom, tolerance float64) bool {
	if va, ok := a.(Vertex); ok {
		return vertexTouchesGeom(va, b, tolerance)
	}
	if vb, ok := b.(Vertex); ok {
		return vertexTouchesGeom(vb, a, tolerance)
	}
	for _, s := range segmentsOf(a) {
		for _, t := range segmentsOf(b) {
			if x, err := segIntersect(s, t, tolerance); err == nil && x.Relation != SegmentsDisjoint {
				return true
			}
		}
	}
	// One geometry may sit entirely inside the other without any edge
	// contact.
	if pb, ok := b.(Polygonal); ok {
		for _, v := range a.Vertices() {
			if pb.Contains(v, tolerance) != Outside {
				return true
			}
		}
	}
	if pa, ok := a.(Polygonal); ok {
		for _, v := range b.Vertices() {
			if pa.Contains(v, tolerance) != Outside {
				return true
			}
		}
	}
	return false
}

func vertexTouchesGeom(v Vertex, g Geom, tolerance float64) bool {
	switch g2 := g.(type) {
	case Vertex:
		return vertexSimilar(v, g2, tolerance)
	case Polygonal:
		return g2.Contains(v, tolerance) != Outside
	default:
		for _, s := range segmentsOf(g) {
			if vertexOnSegment(v, s.a, s.b, tolerance) {
				return true
			}
		}
		return false
	}
}

// interiorsIntersect reports whether the interiors of a and b share a
// point. The interior of a Vertex is the vertex itself; the interior
// of a Line or Path excludes its two end vertices; the interior of a
// polygonal geometry excludes its ring boundary.
func interiorsIntersect(a, b Geom, tolerance float64) bool {
	if va, ok := a.(Vertex); ok {
		return vertexInInterior(va, b, tolerance)
	}
	if vb, ok := b.(Vertex); ok {
		return vertexInInterior(vb, a, tolerance)
	}
	pa, aPoly := a.(Polygonal)
	pb, bPoly := b.(Polygonal)
	switch {
	case aPoly && bPoly:
		if a.Equals(b, tolerance) || b.Equals(a, tolerance) {
			return true
		}
		for _, v := range a.Vertices() {
			if pb.Contains(v, tolerance) == Inside {
				return true
			}
		}
		for _, v := range b.Vertices() {
			if pa.Contains(v, tolerance) == Inside {
				return true
			}
		}
		return anyMidpointInside(a, pb, tolerance) || anyMidpointInside(b, pa, tolerance)
	case bPoly:
		return anyMidpointInside(a, pb, tolerance)
	case aPoly:
		return anyMidpointInside(b, pa, tolerance)
	default:
		return lineInteriorsIntersect(a, b, tolerance)
	}
}

// anyMidpointInside splits g's edges at every crossing with the
// polygonal geometry's boundary and reports whether any resulting
// sub-edge midpoint lies strictly inside it.
func anyMidpointInside(g Geom, p Polygonal, tolerance float64) bool {
	subs := splitAll(segmentsOf(g), segmentsOf(p), tolerance)
	for _, s := range subs {
		if p.Contains(midpoint(s), tolerance) == Inside {
			return true
		}
	}
	return false
}

func vertexInInterior(v Vertex, g Geom, tolerance float64) bool {
	switch g2 := g.(type) {
	case Vertex:
		return vertexSimilar(v, g2, tolerance)
	case Polygonal:
		return g2.Contains(v, tolerance) == Inside
	default:
		if !vertexTouchesGeom(v, g, tolerance) {
			return false
		}
		return !vertexNear(v, boundaryVertices(g), tolerance)
	}
}

// lineInteriorsIntersect handles the 1D/1D case: the interiors share a
// point when a crossing lands away from both geometries' end vertices,
// or when a collinear overlap has positive length.
func lineInteriorsIntersect(a, b Geom, tolerance float64) bool {
	endsA := boundaryVertices(a)
	endsB := boundaryVertices(b)
	for _, s := range segmentsOf(a) {
		for _, t := range segmentsOf(b) {
			x, err := segIntersect(s, t, tolerance)
			if err != nil {
				continue
			}
			switch x.Relation {
			case SegmentsOverlap:
				return true
			case SegmentsCross:
				if !vertexNear(x.Point, endsA, tolerance) && !vertexNear(x.Point, endsB, tolerance) {
					return true
				}
			}
		}
	}
	return false
}

// linesCross handles the 1D/1D crossing rule: a zero-dimensional
// interior intersection with no collinear overlap anywhere.
func linesCross(a, b Geom, tolerance float64) bool {
	endsA := boundaryVertices(a)
	endsB := boundaryVertices(b)
	crossing := false
	for _, s := range segmentsOf(a) {
		for _, t := range segmentsOf(b) {
			x, err := segIntersect(s, t, tolerance)
			if err != nil {
				continue
			}
			switch x.Relation {
			case SegmentsOverlap:
				return false
			case SegmentsCross:
				if !vertexNear(x.Point, endsA, tolerance) && !vertexNear(x.Point, endsB, tolerance) {
					crossing = true
				}
			}
		}
	}
	return crossing
}

// lineCrossesArea reports whether the 1D geometry g has interior
// points both strictly inside and strictly outside the polygonal
// geometry.
func lineCrossesArea(g Geom, p Polygonal, tolerance float64) bool {
	subs := splitAll(segmentsOf(g), segmentsOf(p), tolerance)
	var inside, outside bool
	for _, s := range subs {
		switch p.Contains(midpoint(s), tolerance) {
		case Inside:
			inside = true
		case Outside:
			outside = true
		}
		if inside && outside {
			return true
		}
	}
	return false
}

// segmenter is implemented by every geometry with edges.
type segmenter interface {
	segments() []segment
}

func segmentsOf(g Geom) []segment {
	if s, ok := g.(segmenter); ok {
		return s.segments()
	}
	return nil
}

// boundaryVertices returns the 0-dimensional boundary of a 1D
// geometry: the end vertices of each chain.
func boundaryVertices(g Geom) []Vertex {
	switch g2 := g.(type) {
	case Line:
		return []Vertex{g2.start, g2.end}
	case Path:
		return []Vertex{g2.vertices[0], g2.vertices[len(g2.vertices)-1]}
	case MultiPath:
		var vs []Vertex
		for _, p := range g2.paths {
			vs = append(vs, p.vertices[0], p.vertices[len(p.vertices)-1])
		}
		return vs
	default:
		return nil
	}
}

func vertexNear(v Vertex, vs []Vertex, tolerance float64) bool {
	for _, v2 := range vs {
		if vertexSimilar(v, v2, tolerance) {
			return true
		}
	}
	return false
}

func midpoint(s segment) Vertex {
	return Vertex{X: (s.a.X + s.b.X) / 2, Y: (s.a.Y + s.b.Y) / 2}
}
