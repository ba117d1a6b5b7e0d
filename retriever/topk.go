package retriever

import (
	"container/heap"
	"sort"
)

// Compile time check to ensure resultHeap satisfies the heap interface.
var _ heap.Interface = (*resultHeap)(nil)

// TopK keeps the k best results seen so far.
type TopK struct {
	k     int
	items resultHeap
}

// maxPrealloc bounds the initial heap capacity; k may be huge to mean "all".
const maxPrealloc = 64

// NewTopK returns a collector for the best k results. A collector with
// k <= 0 keeps nothing.
func NewTopK(k int) *TopK {
	return &TopK{k: k, items: make(resultHeap, 0, max(0, min(k, maxPrealloc)))}
}

// Push offers r to the collector.
func (t *TopK) Push(r Result) {
	if t.k <= 0 {
		return
	}
	if len(t.items) < t.k {
		heap.Push(&t.items, r)
		return
	}
	if better(r, t.items[0]) {
		t.items[0] = r
		heap.Fix(&t.items, 0)
	}
}

// Len returns the number of results held.
func (t *TopK) Len() int {
	return len(t.items)
}

// Results returns the collected results, best first.
func (t *TopK) Results() []Result {
	out := make([]Result, len(t.items))
	copy(out, t.items)
	sort.Slice(out, func(i, j int) bool { return better(out[i], out[j]) })
	return out
}

// better orders by score, then by document ID.
func better(a, b Result) bool {
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	return a.DocID < b.DocID
}

// resultHeap keeps the worst result on top.
type resultHeap []Result

func (h resultHeap) Len() int           { return len(h) }
func (h resultHeap) Less(i, j int) bool { return better(h[j], h[i]) }
func (h resultHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *resultHeap) Push(x any) {
	*h = append(*h, x.(Result))
}

func (h *resultHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
