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

// Orientation describes the turn direction of an ordered vertex
// triple, or the traversal direction of a polygon ring.
type Orientation int

const (
	// Collinear means the three vertices lie on one line within
	// tolerance.
	Collinear Orientation = iota
	// Clockwise turn (negative cross product).
	Clockwise
	// CounterClockwise turn (positive cross product).
	CounterClockwise
)

func (o Orientation) String() string {
	switch o {
	case Collinear:
		return "collinear"
	case Clockwise:
		return "clockwise"
	case CounterClockwise:
		return "counterclockwise"
	default:
		return "unknown"
	}
}

// crossErrBound scales the magnitudes involved in the cross product to
// bound the rounding error of its compensated evaluation (about 4 ulp).
const crossErrBound = 8.881784197001252e-16

// Orient classifies the turn a→b→c as Clockwise, CounterClockwise, or
// Collinear, by the sign of the cross product of (b−a) and (c−a).
//
// The cross product is evaluated with a fused-multiply-add
// compensation so near-collinear triples classify consistently instead
// of flipping under floating rounding. A magnitude at or below
// tolerance is Collinear. If the magnitude exceeds tolerance but falls
// inside the numeric error band of the computation, the sign cannot be
// certified and a *NumericInstabilityError is returned.
func Orient(a, b, c Vertex, tolerance float64) (Orientation, error) {
	tolerance = tol(tolerance)
	det, bound := robustCross(a, b, c)
	mag := math.Abs(det)
	if mag <= tolerance {
		return Collinear, nil
	}
	if mag <= bound {
		return Collinear, &NumericInstabilityError{
			Op:     "Orient",
			Detail: "cross product magnitude is inside the rounding error band; a looser tolerance may resolve it",
		}
	}
	if det > 0 {
		return CounterClockwise, nil
	}
	return Clockwise, nil
}

// robustCross returns the cross product of (b−a) and (c−a) computed
// with Kahan's fused-multiply-add compensation, together with an upper
// bound on its rounding error.
func robustCross(a, b, c Vertex) (det, errBound float64) {
	ux, uy := b.X-a.X, b.Y-a.Y
	vx, vy := c.X-a.X, c.Y-a.Y
	w := uy * vx
	e := math.FMA(-uy, vx, w) // rounding error of w
	f := math.FMA(ux, vy, -w)
	det = f + e
	errBound = crossErrBound * (math.Abs(ux*vy) + math.Abs(uy*vx))
	return det, errBound
}
