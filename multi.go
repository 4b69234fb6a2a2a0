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

// MultiPolygon is a collection of rings with alternating winding
// semantics: counter-clockwise rings are filled areas, clockwise rings
// nested inside them are holes. It is the result container for overlay
// operations whose output is not a single simple ring.
type MultiPolygon struct {
	rings  []Polygon
	bounds Bounds
}

// NewMultiPolygon returns a new multi-polygon over the given rings.
// The input slice is copied; an empty input is rejected.
func NewMultiPolygon(rings []Polygon) (MultiPolygon, error) {
	if len(rings) == 0 {
		return MultiPolygon{}, newDegenerate(InsufficientVertices, "a multi-polygon needs at least one ring")
	}
	rs := make([]Polygon, len(rings))
	copy(rs, rings)
	b := NewBounds()
	for _, r := range rs {
		if err := r.revalidate(); err != nil {
			return MultiPolygon{}, err
		}
		b.Extend(&r.bounds)
	}
	return MultiPolygon{rings: rs, bounds: *b}, nil
}

// Bounds gives the rectangular extents of the multi-polygon.
func (mp MultiPolygon) Bounds() *Bounds { return mp.bounds.Copy() }

// Dimension returns 2.
func (mp MultiPolygon) Dimension() int { return 2 }

// Vertices returns a copy of the vertices of all rings, concatenated.
func (mp MultiPolygon) Vertices() []Vertex {
	var vs []Vertex
	for _, r := range mp.rings {
		vs = append(vs, r.ring...)
	}
	return vs
}

// Polygons returns a copy of the rings making up the multi-polygon.
func (mp MultiPolygon) Polygons() []Polygon {
	rs := make([]Polygon, len(mp.rings))
	copy(rs, mp.rings)
	return rs
}

// Area returns the net enclosed area, with holes subtracted. It
// assumes ring windings alternate as produced by overlay operations.
func (mp MultiPolygon) Area() float64 {
	var a float64
	for _, r := range mp.rings {
		a += signedRingArea(r.ring)
	}
	return math.Abs(a)
}

// Contains reports the position of v relative to the multi-polygon.
// Boundary contact with any ring is OnBoundary; otherwise containment
// inverts once per ring enclosing v, so holes are excluded.
func (mp MultiPolygon) Contains(v Vertex, tolerance float64) WithinStatus {
	tolerance = tol(tolerance)
	in := Outside
	for _, r := range mp.rings {
		switch vertexInRing(v, r.ring, &r.bounds, tolerance) {
		case OnBoundary:
			return OnBoundary
		case Inside:
			in = in.invert()
		}
	}
	return in
}

// Equals determines whether mp and g contain equal rings within
// tolerance, matching rings irrespective of their order.
func (mp MultiPolygon) Equals(g Geom, tolerance float64) bool {
	var rings2 []Polygon
	switch g2 := g.(type) {
	case MultiPolygon:
		rings2 = g2.rings
	case Polygon:
		rings2 = []Polygon{g2}
	default:
		return false
	}
	tolerance = tol(tolerance)
	if len(mp.rings) != len(rings2) {
		return false
	}
	matched := make([]bool, len(rings2))
	for _, r := range mp.rings {
		found := false
		for i, r2 := range rings2 {
			if !matched[i] && ringEquals(r.ring, r2.ring, tolerance) {
				matched[i] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func (mp MultiPolygon) revalidate() error {
	if len(mp.rings) == 0 {
		return newDegenerate(InsufficientVertices, "a multi-polygon needs at least one ring")
	}
	for _, r := range mp.rings {
		if err := r.revalidate(); err != nil {
			return err
		}
	}
	return nil
}

func (mp MultiPolygon) segments() []segment {
	var segs []segment
	for _, r := range mp.rings {
		segs = append(segs, r.segments()...)
	}
	return segs
}

// MultiPath is a collection of open chains; it is the result container
// for clipping a Path by a polygonal geometry.
type MultiPath struct {
	paths  []Path
	bounds Bounds
}

// NewMultiPath returns a new multi-path over the given chains. The
// input slice is copied; an empty input is rejected.
func NewMultiPath(paths []Path) (MultiPath, error) {
	if len(paths) == 0 {
		return MultiPath{}, newDegenerate(InsufficientVertices, "a multi-path needs at least one path")
	}
	ps := make([]Path, len(paths))
	copy(ps, paths)
	b := NewBounds()
	for _, p := range ps {
		if err := p.revalidate(); err != nil {
			return MultiPath{}, err
		}
		b.Extend(&p.bounds)
	}
	return MultiPath{paths: ps, bounds: *b}, nil
}

// Bounds gives the rectangular extents of the multi-path.
func (mp MultiPath) Bounds() *Bounds { return mp.bounds.Copy() }

// Dimension returns 1.
func (mp MultiPath) Dimension() int { return 1 }

// Vertices returns a copy of the vertices of all chains, concatenated.
func (mp MultiPath) Vertices() []Vertex {
	var vs []Vertex
	for _, p := range mp.paths {
		vs = append(vs, p.vertices...)
	}
	return vs
}

// Paths returns a copy of the chains making up the multi-path.
func (mp MultiPath) Paths() []Path {
	ps := make([]Path, len(mp.paths))
	copy(ps, mp.paths)
	return ps
}

// Length calculates the combined Euclidean length of all chains.
func (mp MultiPath) Length() float64 {
	var l float64
	for _, p := range mp.paths {
		l += p.Length()
	}
	return l
}

// Equals determines whether mp and g contain equal chains within
// tolerance, matching chains irrespective of their order.
func (mp MultiPath) Equals(g Geom, tolerance float64) bool {
	var paths2 []Path
	switch g2 := g.(type) {
	case MultiPath:
		paths2 = g2.paths
	case Path:
		paths2 = []Path{g2}
	default:
		return false
	}
	tolerance = tol(tolerance)
	if len(mp.paths) != len(paths2) {
		return false
	}
	matched := make([]bool, len(paths2))
	for _, p := range mp.paths {
		found := false
		for i, p2 := range paths2 {
			if !matched[i] && verticesSimilar(p.vertices, p2.vertices, tolerance) {
				matched[i] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func (mp MultiPath) revalidate() error {
	if len(mp.paths) == 0 {
		return newDegenerate(InsufficientVertices, "a multi-path needs at least one path")
	}
	for _, p := range mp.paths {
		if err := p.revalidate(); err != nil {
			return err
		}
	}
	return nil
}

func (mp MultiPath) segments() []segment {
	var segs []segment
	for _, p := range mp.paths {
		segs = append(segs, p.segments()...)
	}
	return segs
}
