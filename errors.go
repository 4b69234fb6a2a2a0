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
	"fmt"
	"reflect"
)

// DegenerateReason identifies the construction invariant that a
// degenerate geometry violates.
type DegenerateReason int

const (
	// NonFiniteCoordinate means a coordinate is NaN or ±Inf.
	NonFiniteCoordinate DegenerateReason = iota
	// ZeroLength means a line's start and end vertices coincide.
	ZeroLength
	// RepeatedVertex means two consecutive vertices coincide.
	RepeatedVertex
	// InsufficientVertices means the vertex sequence is too short for
	// the primitive being constructed.
	InsufficientVertices
	// UnclosedRing means a ring's first and last vertices differ where
	// explicit closure was required.
	UnclosedRing
	// ClosedChain means a path's first and last vertices coincide;
	// paths are open chains.
	ClosedChain
	// SelfIntersection means a polygon ring crosses itself.
	SelfIntersection
	// ZeroArea means a polygon ring encloses no area.
	ZeroArea
)

func (r DegenerateReason) String() string {
	switch r {
	case NonFiniteCoordinate:
		return "non-finite coordinate"
	case ZeroLength:
		return "zero length"
	case RepeatedVertex:
		return "repeated vertex"
	case InsufficientVertices:
		return "insufficient vertex count"
	case UnclosedRing:
		return "unclosed ring"
	case ClosedChain:
		return "closed chain"
	case SelfIntersection:
		return "self intersection"
	case ZeroArea:
		return "zero area"
	default:
		return fmt.Sprintf("unknown reason %d", int(r))
	}
}

// DegenerateGeometryError reports a construction-time invariant
// violation. It is returned by constructors instead of producing an
// invalid primitive.
type DegenerateGeometryError struct {
	Reason DegenerateReason
	Detail string
}

func (e *DegenerateGeometryError) Error() string {
	if e.Detail == "" {
		return "gospatial: degenerate geometry (" + e.Reason.String() + ")"
	}
	return "gospatial: degenerate geometry (" + e.Reason.String() + "): " + e.Detail
}

func newDegenerate(reason DegenerateReason, format string, args ...interface{}) *DegenerateGeometryError {
	return &DegenerateGeometryError{Reason: reason, Detail: fmt.Sprintf(format, args...)}
}

// UnsupportedOperationError reports an operation that is not defined
// for the given primitive combination.
type UnsupportedOperationError struct {
	Op   string
	A, B Geom
}

func (e *UnsupportedOperationError) Error() string {
	return fmt.Sprintf("gospatial: operation %s is not supported for geometry types %s and %s",
		e.Op, typeName(e.A), typeName(e.B))
}

// NumericInstabilityError reports a predicate that could not resolve
// an orientation or intersection within the requested tolerance. It is
// surfaced rather than silently guessed; retrying with a looser
// tolerance is a caller decision.
type NumericInstabilityError struct {
	Op     string
	Detail string
}

func (e *NumericInstabilityError) Error() string {
	return "gospatial: numeric instability in " + e.Op + ": " + e.Detail
}

func typeName(g Geom) string {
	if g == nil {
		return "nil"
	}
	return reflect.TypeOf(g).String()
}
