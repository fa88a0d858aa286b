package timeline

import (
	"container/heap"
	"sort"
)

// NoOwner marks time that no activity covers.
const NoOwner = -1

// Interval is an inclusive millisecond range owned by one activity.
type Interval struct {
	From  int64
	To    int64
	Owner int
}

// IntervalMap is a sorted list of non overlapping intervals.
type IntervalMap []Interval

// span is an activity range as given, before overlaps are resolved.
type span struct {
	from  int64
	to    int64
	owner int
}

type ownerHeap []int

func (h ownerHeap) Len() int           { return len(h) }
func (h ownerHeap) Less(i, j int) bool { return h[i] > h[j] }
func (h ownerHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *ownerHeap) Push(x any)        { *h = append(*h, x.(int)) }
func (h *ownerHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

// buildIntervalMap resolves overlapping spans in one sweep over their sorted
// boundaries. Where spans overlap, the one with the highest owner wins.
func buildIntervalMap(spans []span) IntervalMap {
	if len(spans) == 0 {
		return IntervalMap{}
	}

	type boundary struct {
		at    int64
		owner int
		open  bool
	}
	boundaries := make([]boundary, 0, 2*len(spans))
	for _, s := range spans {
		boundaries = append(boundaries,
			boundary{at: s.from, owner: s.owner, open: true},
			// half open end so a single point span still covers its instant
			boundary{at: s.to + 1, owner: s.owner},
		)
	}
	sort.Slice(boundaries, func(i, j int) bool {
		return boundaries[i].at < boundaries[j].at
	})

	active := &ownerHeap{}
	closed := make(map[int]int, len(spans))
	top := func() int {
		for active.Len() > 0 {
			o := (*active)[0]
			if closed[o] == 0 {
				return o
			}
			closed[o]--
			heap.Pop(active)
		}
		return NoOwner
	}

	var out IntervalMap
	for i := 0; i < len(boundaries); {
		at := boundaries[i].at
		for ; i < len(boundaries) && boundaries[i].at == at; i++ {
			if boundaries[i].open {
				heap.Push(active, boundaries[i].owner)
			} else {
				closed[boundaries[i].owner]++
			}
		}

		owner := top()
		if owner == NoOwner || i == len(boundaries) {
			continue
		}
		to := boundaries[i].at - 1
		if n := len(out); n > 0 && out[n-1].Owner == owner && out[n-1].To == at-1 {
			out[n-1].To = to
			continue
		}
		out = append(out, Interval{From: at, To: to, Owner: owner})
	}

	return out
}

// OwnerAt returns the owner covering ts, or NoOwner.
func (m IntervalMap) OwnerAt(ts int64) int {
	i := sort.Search(len(m), func(i int) bool {
		return m[i].To >= ts
	})
	if i < len(m) && m[i].From <= ts {
		return m[i].Owner
	}
	return NoOwner
}
