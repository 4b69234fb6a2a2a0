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
	"sort"

	"github.com/dhconnelly/rtreego"

	"github.com/otavioabreu27/gospatial"
)

// Pair indexes one subject/clip combination whose bounding boxes
// overlap.
type Pair struct {
	Subject, Clip int
}

// Join returns the index pairs whose bounding boxes overlap within
// tolerance, for building Evaluate batches without testing every
// combination. The clips are indexed in an R-tree and each subject box,
// expanded by tolerance, is queried against it. Pairs are ordered by
// subject and then by clip. Nil entries are skipped.
func Join(subjects, clips []gospatial.Geom, tolerance float64) []Pair {
	tree := rtreego.NewTree(2, 25, 50)
	for j, c := range clips {
		if c == nil {
			continue
		}
		tree.Insert(&treeEntry{index: j, rect: rectOf(c.Bounds(), 0)})
	}
	var pairs []Pair
	for i, s := range subjects {
		if s == nil {
			continue
		}
		hits := tree.SearchIntersect(rectOf(s.Bounds(), tolerance))
		idx := make([]int, 0, len(hits))
		for _, h := range hits {
			idx = append(idx, h.(*treeEntry).index)
		}
		sort.Ints(idx)
		for _, j := range idx {
			pairs = append(pairs, Pair{Subject: i, Clip: j})
		}
	}
	return pairs
}

type treeEntry struct {
	index int
	rect  rtreego.Rect
}

func (e *treeEntry) Bounds() rtreego.Rect { return e.rect }

// rectOf converts bounds to an R-tree rectangle, padding each side by
// pad and clamping degenerate extents to a sliver so point and
// vertical/horizontal boxes remain indexable.
func rectOf(b *gospatial.Bounds, pad float64) rtreego.Rect {
	const sliver = 1e-12
	p := rtreego.Point{b.Min.X - pad, b.Min.Y - pad}
	lengths := []float64{
		b.Max.X - b.Min.X + 2*pad,
		b.Max.Y - b.Min.Y + 2*pad,
	}
	for i, l := range lengths {
		if l < sliver {
			lengths[i] = sliver
		}
	}
	r, err := rtreego.NewRect(p, lengths)
	if err != nil {
		panic(err)
	}
	return r
}
