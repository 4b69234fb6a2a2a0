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

package batch

import (
	"context"
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"io"
	"math"
	"runtime"
	"strconv"

	"github.com/ctessum/requestcache"

	"github.com/otavioabreu27/gospatial"
)

// defaultCacheSize is the number of results kept in memory when the
// caller does not choose one.
const defaultCacheSize = 100

// Cache is a memoizing evaluator. Identical requests, as determined by
// a content hash of the operation and operand coordinates, are
// evaluated once; concurrent duplicates are deduplicated in flight.
type Cache struct {
	cache *requestcache.Cache
}

// NewCache returns a cache that evaluates requests on up to workers
// goroutines (≤0 selects runtime.GOMAXPROCS(0)) and keeps up to size
// results in memory (≤0 selects a default of 100).
func NewCache(size, workers int) *Cache {
	if size <= 0 {
		size = defaultCacheSize
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	c := requestcache.NewCache(func(ctx context.Context, request interface{}) (interface{}, error) {
		res := evalOne(request.(Request))
		if res.Err != nil {
			return nil, res.Err
		}
		return res, nil
	}, workers, requestcache.Deduplicate(), requestcache.Memory(size))
	return &Cache{cache: c}
}

// Evaluate returns the result for r, computing it only if no equal
// request has been evaluated before.
func (c *Cache) Evaluate(ctx context.Context, r Request) (Result, error) {
	req := c.cache.NewRequest(ctx, r, requestKey(r))
	v, err := req.Result()
	if err != nil {
		return Result{}, err
	}
	return v.(Result), nil
}

// requestKey hashes the request's operation, mode, tolerance, and the
// type and coordinates of both operands.
func requestKey(r Request) string {
	h := fnv.New64a()
	fmt.Fprintf(h, "%d|%d|%g", r.Op, r.Mode, r.Tolerance)
	hashGeom(h, r.A)
	hashGeom(h, r.B)
	return strconv.FormatUint(h.Sum64(), 16)
}

func hashGeom(w io.Writer, g gospatial.Geom) {
	if g == nil {
		io.WriteString(w, "|nil")
		return
	}
	fmt.Fprintf(w, "|%T", g)
	var buf [8]byte
	for _, v := range g.Vertices() {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v.X))
		w.Write(buf[:])
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v.Y))
		w.Write(buf[:])
	}
}
