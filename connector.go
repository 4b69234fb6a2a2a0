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

// chain is a partially assembled sequence of connected edges. Vertices
// link within tolerance e so edges produced by independent split
// computations still join.
type chain struct {
	vertices []Vertex
	closed   bool
}

func newChain(s segment) *chain {
	return &chain{vertices: []Vertex{s.a, s.b}}
}

func (c *chain) front() Vertex { return c.vertices[0] }
func (c *chain) back() Vertex  { return c.vertices[len(c.vertices)-1] }

func (c *chain) pushFront(v Vertex) {
	c.vertices = append([]Vertex{v}, c.vertices...)
}

func (c *chain) pushBack(v Vertex) {
	c.vertices = append(c.vertices, v)
}

// linkSegment attaches s to either end of the chain if one of its
// vertices matches, closing the chain when the other vertex meets the
// opposite end.
func (c *chain) linkSegment(s segment, e float64) bool {
	switch {
	case vertexSimilar(s.a, c.front(), e):
		if vertexSimilar(s.b, c.back(), e) {
			c.closed = true
		} else {
			c.pushFront(s.b)
		}
		return true
	case vertexSimilar(s.a, c.back(), e):
		if vertexSimilar(s.b, c.front(), e) {
			c.closed = true
		} else {
			c.pushBack(s.b)
		}
		return true
	case vertexSimilar(s.b, c.front(), e):
		if vertexSimilar(s.a, c.back(), e) {
			c.closed = true
		} else {
			c.pushFront(s.a)
		}
		return true
	case vertexSimilar(s.b, c.back(), e):
		if vertexSimilar(s.a, c.front(), e) {
			c.closed = true
		} else {
			c.pushBack(s.a)
		}
		return true
	}
	return false
}

// linkChain appends the other chain's vertices onto c if their ends
// meet, leaving the other chain empty on success.
func (c *chain) linkChain(other *chain, e float64) bool {
	appendReversed := func(vs []Vertex) {
		for i := len(vs) - 1; i >= 0; i-- {
			c.pushBack(vs[i])
		}
	}
	switch {
	case vertexSimilar(other.front(), c.back(), e):
		c.vertices = append(c.vertices, other.vertices[1:]...)
	case vertexSimilar(other.back(), c.front(), e):
		c.vertices = append(other.vertices[:len(other.vertices)-1:len(other.vertices)-1], c.vertices...)
	case vertexSimilar(other.front(), c.front(), e):
		reverseRing(c.vertices)
		c.vertices = append(c.vertices, other.vertices[1:]...)
	case vertexSimilar(other.back(), c.back(), e):
		appendReversed(other.vertices[:len(other.vertices)-1])
	default:
		return false
	}
	if vertexSimilar(c.front(), c.back(), e) {
		c.vertices = c.vertices[:len(c.vertices)-1]
		c.closed = true
	}
	other.vertices = nil
	return true
}

// connector reassembles a soup of edges into closed rings.
type connector struct {
	open      []*chain
	closed    [][]Vertex
	tolerance float64
}

func newConnector(tolerance float64) *connector {
	return &connector{tolerance: tolerance}
}

// add links the edge into an existing open chain, merging chains that
// become connected, or starts a new chain.
func (c *connector) add(s segment) {
	for i, ch := range c.open {
		if !ch.linkSegment(s, c.tolerance) {
			continue
		}
		if ch.closed {
			c.closeChain(i)
			return
		}
		// The new edge may bridge this chain to another one.
		for j, other := range c.open {
			if j == i {
				continue
			}
			if ch.linkChain(other, c.tolerance) {
				c.open = append(c.open[:j], c.open[j+1:]...)
				if ch.closed {
					for k, ch2 := range c.open {
						if ch2 == ch {
							c.closeChain(k)
							break
						}
					}
				}
				return
			}
		}
		return
	}
	c.open = append(c.open, newChain(s))
}

func (c *connector) closeChain(i int) {
	ch := c.open[i]
	c.open = append(c.open[:i], c.open[i+1:]...)
	ring := ch.vertices
	ring = append(ring, ring[0])
	c.closed = append(c.closed, ring)
}

// rings returns all closed rings. Open chains whose ends nearly meet
// are force-closed; stragglers are dropped as numeric debris.
func (c *connector) rings() [][]Vertex {
	rings := c.closed
	for _, ch := range c.open {
		if len(ch.vertices) >= 3 && vertexSimilar(ch.front(), ch.back(), c.tolerance*2) {
			ring := ch.vertices[:len(ch.vertices)-1]
			ring = append(ring, ring[0])
			rings = append(rings, ring)
		}
	}
	c.open = nil
	return rings
}

// assemblePolygons turns reassembled rings into polygons with
// alternating winding: rings at even nesting depth run counter-
// clockwise, rings at odd depth (holes) run clockwise. Split vertices
// left over on straight edges are pruned, and rings enclosing no
// meaningful area are dropped.
func assemblePolygons(rings [][]Vertex, tolerance float64) []Polygon {
	kept := rings[:0]
	for _, r := range rings {
		r = simplifyRing(r, tolerance)
		if len(r) >= 4 && absArea(r) > tolerance {
			kept = append(kept, r)
		}
	}
	polys := make([]Polygon, 0, len(kept))
	for i, r := range kept {
		depth := 0
		for j, r2 := range kept {
			if j != i && vertexInRing(interiorPoint(r), r2, nil, tolerance) == Inside {
				depth++
			}
		}
		ccw := signedRingArea(r) > 0
		if (depth%2 == 0) != ccw {
			reverseRing(r)
		}
		polys = append(polys, newPolygonRing(r))
	}
	return polys
}

// simplifyRing removes ring vertices lying on the straight segment
// between their neighbors, which edge splitting leaves behind on
// shared boundaries. The ring stays explicitly closed. A ring with
// fewer than three corners left collapses to nil.
func simplifyRing(ring []Vertex, tolerance float64) []Vertex {
	if len(ring) < 4 {
		return nil
	}
	open := ring[:len(ring)-1]
	n := len(open)
	start := -1
	for i := 0; i < n; i++ {
		prev, v, next := open[(i+n-1)%n], open[i], open[(i+1)%n]
		if distToSegment(v, prev, next) > tolerance {
			start = i
			break
		}
	}
	if start < 0 {
		return nil // every vertex is collinear with its neighbors
	}
	out := []Vertex{open[start]}
	for k := 1; k < n; k++ {
		v := open[(start+k)%n]
		next := open[(start+k+1)%n]
		if distToSegment(v, out[len(out)-1], next) > tolerance {
			out = append(out, v)
		}
	}
	if len(out) < 3 {
		return nil
	}
	return append(out, out[0])
}

func absArea(ring []Vertex) float64 {
	a := signedRingArea(ring)
	if a < 0 {
		return -a
	}
	return a
}

// interiorPoint picks a representative point of the ring for nesting
// tests: the midpoint of its first edge nudged toward the ring's
// interior side.
func interiorPoint(ring []Vertex) Vertex {
	a, b := ring[0], ring[1]
	mid := Vertex{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
	// Normal pointing left of a→b; for a counter-clockwise ring that is
	// inward, for a clockwise ring outward, but parity against other
	// rings is unaffected as long as the offset is tiny.
	nx, ny := -(b.Y - a.Y), b.X-a.X
	l := nx*nx + ny*ny
	if l == 0 {
		return mid
	}
	scale := 1e-7 / l
	if signedRingArea(ring) < 0 {
		scale = -scale
	}
	return Vertex{X: mid.X + nx*scale, Y: mid.Y + ny*scale}
}
