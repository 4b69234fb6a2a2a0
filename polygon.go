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

// Polygon is a single closed, simple ring of three or more distinct
// vertices. The ring is stored explicitly closed (the last vertex
// equals the first) regardless of whether the input was closed; either
// winding direction is accepted and preserved. The vertex sequence is
// owned by value and the bounding box is cached at construction.
type Polygon struct {
	ring   []Vertex
	bounds Bounds
}

// NewPolygon returns a new polygon over the given ring, which may be
// given implicitly or explicitly closed. The input slice is copied.
// Rings with fewer than three distinct vertices, equal consecutive
// vertices, non-finite coordinates, zero enclosed area, or
// self-intersections are rejected with a *DegenerateGeometryError.
// Simplicity and area checks use DefaultTolerance.
func NewPolygon(vertices []Vertex) (Polygon, error) {
	open := vertices
	if len(vertices) >= 2 && vertices[0] == vertices[len(vertices)-1] {
		open = vertices[:len(vertices)-1] // explicitly closed input
	}
	if len(open) < 3 {
		return Polygon{}, newDegenerate(InsufficientVertices, "a polygon needs at least 3 distinct vertices, got %d", len(open))
	}
	ring := make([]Vertex, len(open)+1)
	copy(ring, open)
	ring[len(open)] = open[0]
	if err := validateChain(ring); err != nil {
		return Polygon{}, err
	}
	if math.Abs(signedRingArea(ring)) <= DefaultTolerance {
		return Polygon{}, newDegenerate(ZeroArea, "ring encloses no area")
	}
	if err := validateSimple(ring); err != nil {
		return Polygon{}, err
	}
	return Polygon{ring: ring, bounds: boundsOf(ring)}, nil
}

// newPolygonRing builds a polygon from a ring already known to be
// closed and non-degenerate, as produced by overlay reassembly. No
// simplicity check is performed: reassembled rings may touch
// themselves at single vertices without being invalid output.
func newPolygonRing(ring []Vertex) Polygon {
	return Polygon{ring: ring, bounds: boundsOf(ring)}
}

// validateSimple checks that no two non-adjacent ring edges intersect
// and no two adjacent edges overlap collinearly.
func validateSimple(ring []Vertex) error {
	segs := ringSegments(ring)
	n := len(segs)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			adjacent := j == i+1 || (i == 0 && j == n-1)
			x, err := segIntersect(segs[i], segs[j], DefaultTolerance)
			if err != nil {
				return newDegenerate(SelfIntersection, "edges %d and %d: %v", i, j, err)
			}
			switch x.Relation {
			case SegmentsOverlap:
				return newDegenerate(SelfIntersection, "edges %d and %d overlap", i, j)
			case SegmentsCross:
				if !adjacent {
					return newDegenerate(SelfIntersection, "edges %d and %d intersect at %v", i, j, x.Point)
				}
			}
		}
	}
	return nil
}

// Bounds gives the rectangular extents of the polygon.
func (p Polygon) Bounds() *Bounds { return p.bounds.Copy() }

// Dimension returns 2.
func (p Polygon) Dimension() int { return 2 }

// Vertices returns a copy of the closed ring, with the last vertex
// equal to the first.
func (p Polygon) Vertices() []Vertex {
	vs := make([]Vertex, len(p.ring))
	copy(vs, p.ring)
	return vs
}

// Polygons returns []{p} to fulfill the Polygonal interface.
func (p Polygon) Polygons() []Polygon { return []Polygon{p} }

// Area returns the area enclosed by p.
func (p Polygon) Area() float64 {
	return math.Abs(signedRingArea(p.ring))
}

// Winding returns the traversal direction of the ring: Clockwise or
// CounterClockwise.
func (p Polygon) Winding() Orientation {
	if signedRingArea(p.ring) > 0 {
		return CounterClockwise
	}
	return Clockwise
}

// Centroid calculates the centroid of p.
func (p Polygon) Centroid() Vertex {
	r := p.ring
	a := signedRingArea(r)
	var cx, cy float64
	for i := 0; i < len(r)-1; i++ {
		cross := r[i].X*r[i+1].Y - r[i+1].X*r[i].Y
		cx += (r[i].X + r[i+1].X) * cross
		cy += (r[i].Y + r[i+1].Y) * cross
	}
	return Vertex{X: cx / (6 * a), Y: cy / (6 * a)}
}

// Contains reports the position of v relative to p: Inside,
// OnBoundary (v lies on an edge within tolerance), or Outside.
func (p Polygon) Contains(v Vertex, tolerance float64) WithinStatus {
	return vertexInRing(v, p.ring, &p.bounds, tol(tolerance))
}

// Equals determines whether p and g enclose the same ring within
// tolerance. The comparison is invariant to rotation of the starting
// vertex and to winding direction. A MultiPolygon holding a single
// equal ring compares equal too, so equality stays symmetric across
// the two container types.
func (p Polygon) Equals(g Geom, tolerance float64) bool {
	switch g2 := g.(type) {
	case Polygon:
		return ringEquals(p.ring, g2.ring, tol(tolerance))
	case MultiPolygon:
		return len(g2.rings) == 1 && ringEquals(p.ring, g2.rings[0].ring, tol(tolerance))
	default:
		return false
	}
}

func (p Polygon) revalidate() error {
	if len(p.ring) < 4 {
		return newDegenerate(InsufficientVertices, "a polygon needs at least 3 distinct vertices, got %d", len(p.ring))
	}
	if p.ring[0] != p.ring[len(p.ring)-1] {
		return newDegenerate(UnclosedRing, "first and last ring vertices differ")
	}
	if err := validateChain(p.ring[:len(p.ring)-1]); err != nil {
		return err
	}
	if math.Abs(signedRingArea(p.ring)) <= DefaultTolerance {
		return newDegenerate(ZeroArea, "ring encloses no area")
	}
	return nil
}

func (p Polygon) segments() []segment {
	return ringSegments(p.ring)
}

// ringSegments returns the edges of a closed ring.
func ringSegments(ring []Vertex) []segment {
	segs := make([]segment, 0, len(ring)-1)
	for i := 1; i < len(ring); i++ {
		segs = append(segs, segment{a: ring[i-1], b: ring[i]})
	}
	return segs
}

// signedRingArea computes the signed area of a closed ring: positive
// for counter-clockwise winding, negative for clockwise.
// See http://www.mathopenref.com/coordpolygonarea2.html.
func signedRingArea(ring []Vertex) float64 {
	if len(ring) < 3 {
		return 0
	}
	var a float64
	for i := 0; i < len(ring)-1; i++ {
		a += (ring[i].X + ring[i+1].X) * (ring[i+1].Y - ring[i].Y)
	}
	return a / 2
}

// reverseRing reverses a ring in place.
func reverseRing(ring []Vertex) {
	for i, j := 0, len(ring)-1; i < j; i, j = i+1, j-1 {
		ring[i], ring[j] = ring[j], ring[i]
	}
}
