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

import "sort"

// OverlayMode selects the set operation Overlay performs.
type OverlayMode int

const (
	// UnionMode keeps area covered by either input.
	UnionMode OverlayMode = iota
	// IntersectionMode keeps area covered by both inputs.
	IntersectionMode
	// DifferenceMode keeps area covered by the first input only.
	DifferenceMode
	// XORMode keeps area covered by exactly one input.
	XORMode
)

func (m OverlayMode) String() string {
	switch m {
	case UnionMode:
		return "union"
	case IntersectionMode:
		return "intersection"
	case DifferenceMode:
		return "difference"
	case XORMode:
		return "xor"
	default:
		return "unknown"
	}
}

// Overlay computes the set operation selected by mode over a and b.
//
// Two polygonal inputs support every mode and produce a Polygon, a
// MultiPolygon, or nil when the result is empty. A Line, Path, or
// MultiPath first operand with a polygonal second operand supports
// IntersectionMode (clip to the inside) and DifferenceMode (clip to
// the outside), producing a Path, a MultiPath, or nil. Any other
// combination returns an *UnsupportedOperationError.
//
// The inputs are decomposed into edges, every edge is split at each
// intersection with the other geometry, sub-edges are classified by
// the containment of their midpoints, and the per-mode selection is
// reassembled into rings or chains.
func Overlay(a, b Geom, mode OverlayMode, tolerance float64) (Geom, error) {
	tolerance = tol(tolerance)
	if err := checkPair("overlay "+mode.String(), a, b); err != nil {
		return nil, err
	}
	if mode < UnionMode || mode > XORMode {
		return nil, &UnsupportedOperationError{Op: "overlay", A: a, B: b}
	}
	pa, aPoly := a.(Polygonal)
	pb, bPoly := b.(Polygonal)
	switch {
	case aPoly && bPoly:
		return overlayPolygons(pa, pb, mode, tolerance), nil
	case a.Dimension() == 1 && bPoly:
		if mode != IntersectionMode && mode != DifferenceMode {
			return nil, &UnsupportedOperationError{Op: "overlay " + mode.String(), A: a, B: b}
		}
		return clipChains(a, pb, mode, tolerance), nil
	default:
		return nil, &UnsupportedOperationError{Op: "overlay " + mode.String(), A: a, B: b}
	}
}

func overlayPolygons(a, b Polygonal, mode OverlayMode, tolerance float64) Geom {
	if !a.Bounds().OverlapsWithin(b.Bounds(), tolerance) {
		return disjointOverlay(a, b, mode, tolerance)
	}
	if mode == XORMode {
		// The symmetric difference is composed from the two one-sided
		// differences, whose rings meet at most at isolated points.
		// Emitting all four edge classes at once would instead rebuild
		// the overlapping input rings.
		d1 := overlayPolygons(a, b, DifferenceMode, tolerance)
		d2 := overlayPolygons(b, a, DifferenceMode, tolerance)
		switch {
		case d1 == nil:
			return d2
		case d2 == nil:
			return d1
		default:
			return overlayPolygons(d1.(Polygonal), d2.(Polygonal), UnionMode, tolerance)
		}
	}

	segsA := splitAll(polySegments(a), polySegments(b), tolerance)
	segsB := splitAll(polySegments(b), polySegments(a), tolerance)

	conn := newConnector(tolerance)
	for _, s := range segsA {
		switch b.Contains(midpoint(s), tolerance) {
		case Inside:
			if mode == IntersectionMode {
				conn.add(s)
			}
		case Outside:
			if mode == UnionMode || mode == DifferenceMode {
				conn.add(s)
			}
		case OnBoundary:
			// Shared boundary sub-edges are emitted once, from the first
			// operand's side. Edges the operands traverse in the same
			// direction bound area on the same side and belong to the
			// union and the intersection; opposing edges cancel except
			// in the difference.
			if sameDirectionOnBoundary(s, b, tolerance) {
				if mode == UnionMode || mode == IntersectionMode {
					conn.add(s)
				}
			} else if mode == DifferenceMode {
				conn.add(s)
			}
		}
	}
	for _, s := range segsB {
		switch a.Contains(midpoint(s), tolerance) {
		case Inside:
			if mode == IntersectionMode || mode == DifferenceMode {
				conn.add(s)
			}
		case Outside:
			if mode == UnionMode {
				conn.add(s)
			}
		}
	}

	polys := assemblePolygons(conn.rings(), tolerance)
	switch len(polys) {
	case 0:
		return nil
	case 1:
		return polys[0]
	default:
		mp, err := NewMultiPolygon(polys)
		if err != nil {
			return nil
		}
		return mp
	}
}

// disjointOverlay handles inputs whose bounding boxes do not touch.
func disjointOverlay(a, b Polygonal, mode OverlayMode, tolerance float64) Geom {
	switch mode {
	case IntersectionMode:
		return nil
	case DifferenceMode:
		return polygonalResult(a.Polygons(), tolerance)
	default:
		return polygonalResult(append(a.Polygons(), b.Polygons()...), tolerance)
	}
}

// polygonalResult renormalizes pass-through rings the same way
// computed rings are assembled, so output winding is consistent
// regardless of the winding the inputs arrived with.
func polygonalResult(rings []Polygon, tolerance float64) Geom {
	raw := make([][]Vertex, len(rings))
	for i, r := range rings {
		raw[i] = r.Vertices()
	}
	polys := assemblePolygons(raw, tolerance)
	switch len(polys) {
	case 0:
		return nil
	case 1:
		return polys[0]
	default:
		mp, err := NewMultiPolygon(polys)
		if err != nil {
			return nil
		}
		return mp
	}
}

// sameDirectionOnBoundary reports whether sub-edge s, known to lie on
// the boundary of p, runs in the same direction as the boundary edge
// carrying it.
func sameDirectionOnBoundary(s segment, p Polygonal, tolerance float64) bool {
	m := midpoint(s)
	for _, t := range polySegments(p) {
		if !vertexOnSegment(m, t.a, t.b, tolerance) {
			continue
		}
		dot := (s.b.X-s.a.X)*(t.b.X-t.a.X) + (s.b.Y-s.a.Y)*(t.b.Y-t.a.Y)
		return dot > 0
	}
	return true
}

func polySegments(p Polygonal) []segment {
	var segs []segment
	for _, r := range p.Polygons() {
		segs = append(segs, r.segments()...)
	}
	return segs
}

// clipChains clips a 1D geometry against a polygonal one: intersection
// keeps the parts inside or on the boundary, difference the parts
// strictly outside. Consecutive kept sub-edges are merged back into
// chains.
func clipChains(g Geom, p Polygonal, mode OverlayMode, tolerance float64) Geom {
	subs := splitAll(segmentsOf(g), polySegments(p), tolerance)
	var paths []Path
	var cur []Vertex
	flush := func() {
		if len(cur) >= 2 {
			paths = append(paths, Path{vertices: cur, bounds: boundsOf(cur)})
		}
		cur = nil
	}
	for _, s := range subs {
		keep := false
		switch p.Contains(midpoint(s), tolerance) {
		case Inside, OnBoundary:
			keep = mode == IntersectionMode
		case Outside:
			keep = mode == DifferenceMode
		}
		if !keep {
			flush()
			continue
		}
		if len(cur) > 0 && vertexSimilar(cur[len(cur)-1], s.a, tolerance) {
			cur = append(cur, s.b)
		} else {
			flush()
			cur = []Vertex{s.a, s.b}
		}
	}
	flush()
	switch len(paths) {
	case 0:
		return nil
	case 1:
		return paths[0]
	default:
		mp, err := NewMultiPath(paths)
		if err != nil {
			return nil
		}
		return mp
	}
}

// splitAll splits every segment in segs at each of its intersections
// with the cutters, preserving segment order and dropping pieces
// shorter than tolerance.
func splitAll(segs, cutters []segment, tolerance float64) []segment {
	var out []segment
	for _, s := range segs {
		ts := []float64{0, 1}
		for _, c := range cutters {
			x, err := segIntersect(s, c, tolerance)
			if err != nil {
				continue
			}
			switch x.Relation {
			case SegmentsCross:
				ts = append(ts, paramOf(s, x.Point))
			case SegmentsOverlap:
				ts = append(ts, paramOf(s, x.Start), paramOf(s, x.End))
			}
		}
		sort.Float64s(ts)
		prev := ts[0]
		for _, t := range ts[1:] {
			if t <= prev {
				continue
			}
			sub := segment{a: s.at(clamp01(prev)), b: s.at(clamp01(t))}
			if sub.length() > tolerance {
				out = append(out, sub)
				prev = t
			}
		}
	}
	return out
}

// paramOf projects v onto the segment and returns its parameter in
// [0, 1].
func paramOf(s segment, v Vertex) float64 {
	dx, dy := s.b.X-s.a.X, s.b.Y-s.a.Y
	l := dx*dx + dy*dy
	if l == 0 {
		return 0
	}
	return clamp01(((v.X-s.a.X)*dx + (v.Y-s.a.Y)*dy) / l)
}
