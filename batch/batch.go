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

// Package batch evaluates geometry predicates and overlays over many
// operand pairs concurrently. Requests are assigned to a fixed pool of
// workers by striding, so the result slice is deterministic for any
// worker count: slot i always holds the outcome of request i.
package batch

import (
	"context"
	"errors"
	"runtime"
	"sync"
	"time"

	"github.com/GaryBoone/GoStats/stats"
	"github.com/sirupsen/logrus"

	"github.com/otavioabreu27/gospatial"
)

// Log receives batch telemetry at debug level. It discards debug
// messages unless the caller raises its level.
var Log = logrus.New()

// ErrCanceled fills the result slots of requests that were still
// pending when the context was canceled.
var ErrCanceled = errors.New("batch: evaluation canceled")

// Op selects the operation a Request evaluates.
type Op int

const (
	// OpEquals tests structural equality.
	OpEquals Op = iota
	// OpIntersects tests for any shared point.
	OpIntersects
	// OpWithin tests containment of A in B.
	OpWithin
	// OpTouches tests boundary-only contact.
	OpTouches
	// OpCrosses tests lower-dimensional interior crossing.
	OpCrosses
	// OpOverlay computes the set operation selected by Request.Mode.
	OpOverlay
)

func (op Op) String() string {
	switch op {
	case OpEquals:
		return "equals"
	case OpIntersects:
		return "intersects"
	case OpWithin:
		return "within"
	case OpTouches:
		return "touches"
	case OpCrosses:
		return "crosses"
	case OpOverlay:
		return "overlay"
	default:
		return "unknown"
	}
}

// Request is one operation over one operand pair. A zero Tolerance
// selects gospatial.DefaultTolerance. Mode is only meaningful when Op
// is OpOverlay.
type Request struct {
	Op        Op
	A, B      gospatial.Geom
	Mode      gospatial.OverlayMode
	Tolerance float64
}

// Result is the outcome of one request: Bool for predicates, Geom for
// overlays. Err is per-request; an error in one slot never affects its
// siblings.
type Result struct {
	Bool bool
	Geom gospatial.Geom
	Err  error
}

// Stats summarizes the wall-time of the individual requests in one
// Evaluate call.
type Stats struct {
	Requests int
	Workers  int
	Total    time.Duration

	// Per-request durations in seconds.
	Mean, StdDev, Min, Max float64
}

// Evaluate runs all requests on a fixed pool of workers and returns
// one result per request, in request order. workers ≤ 0 selects
// runtime.GOMAXPROCS(0). Cancellation is cooperative: a canceled
// context stops workers between requests, and every request not yet
// evaluated gets ErrCanceled in its slot.
func Evaluate(ctx context.Context, requests []Request, workers int) []Result {
	results, _ := EvaluateStats(ctx, requests, workers)
	return results
}

// EvaluateStats is Evaluate plus the batch timing statistics it logs.
func EvaluateStats(ctx context.Context, requests []Request, workers int) ([]Result, Stats) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	results := make([]Result, len(requests))
	durations := make([][]float64, workers)
	start := time.Now()
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := w; i < len(requests); i += workers {
				select {
				case <-ctx.Done():
					results[i] = Result{Err: ErrCanceled}
					continue
				default:
				}
				t0 := time.Now()
				results[i] = evalOne(requests[i])
				durations[w] = append(durations[w], time.Since(t0).Seconds())
			}
		}(w)
	}
	wg.Wait()
	s := summarize(durations, workers, len(requests), time.Since(start))
	Log.WithFields(logrus.Fields{
		"requests": s.Requests,
		"workers":  s.Workers,
		"total":    s.Total,
		"mean_s":   s.Mean,
		"stddev_s": s.StdDev,
	}).Debug("batch evaluated")
	return results, s
}

func evalOne(r Request) Result {
	switch r.Op {
	case OpEquals:
		return Result{Bool: gospatial.Equals(r.A, r.B, r.Tolerance)}
	case OpIntersects:
		ok, err := gospatial.Intersects(r.A, r.B, r.Tolerance)
		return Result{Bool: ok, Err: err}
	case OpWithin:
		ok, err := gospatial.Within(r.A, r.B, r.Tolerance)
		return Result{Bool: ok, Err: err}
	case OpTouches:
		ok, err := gospatial.Touches(r.A, r.B, r.Tolerance)
		return Result{Bool: ok, Err: err}
	case OpCrosses:
		ok, err := gospatial.Crosses(r.A, r.B, r.Tolerance)
		return Result{Bool: ok, Err: err}
	case OpOverlay:
		g, err := gospatial.Overlay(r.A, r.B, r.Mode, r.Tolerance)
		return Result{Geom: g, Err: err}
	default:
		return Result{Err: &gospatial.UnsupportedOperationError{Op: r.Op.String(), A: r.A, B: r.B}}
	}
}

func summarize(durations [][]float64, workers, requests int, total time.Duration) Stats {
	var all []float64
	for _, d := range durations {
		all = append(all, d...)
	}
	s := Stats{Requests: requests, Workers: workers, Total: total}
	if len(all) == 0 {
		return s
	}
	s.Mean = stats.StatsMean(all)
	s.Min = stats.StatsMin(all)
	s.Max = stats.StatsMax(all)
	if len(all) > 1 {
		s.StdDev = stats.StatsSampleStandardDeviation(all)
	}
	return s
}
