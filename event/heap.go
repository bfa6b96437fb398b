package event

import "container/heap"

// Heap is the scheduler's single-consumer min-heap of Events, ordered
// by Time ascending with deterministic insertion-order tie-break
// (spec §4.3). It may contain stale entries; callers must check
// Event.IsValid after popping.
type Heap struct {
	items  innerHeap
	nextSeq int64
}

// NewHeap returns an empty Heap.
func NewHeap() *Heap {
	return &Heap{items: make(innerHeap, 0)}
}

// Push inserts e into the heap.
func (h *Heap) Push(e Event) {
	e.seq = h.nextSeq
	h.nextSeq++
	heap.Push(&h.items, e)
}

// Len returns the heap's physical size (may include stale events).
func (h *Heap) Len() int { return h.items.Len() }

// Peek returns the earliest event without removing it. Panics if the
// heap is empty; callers must check Len() first.
func (h *Heap) Peek() Event { return h.items[0] }

// Pop removes and returns the earliest event.
func (h *Heap) Pop() Event {
	return heap.Pop(&h.items).(Event)
}

// innerHeap is the container/heap.Interface implementation backing
// Heap, grounded on the pack's own idiom for a priority queue
// (see pthm-soup/systems/astar.go's nodeHeap).
type innerHeap []Event

func (h innerHeap) Len() int { return len(h) }

func (h innerHeap) Less(i, j int) bool {
	if h[i].Time != h[j].Time {
		return h[i].Time < h[j].Time
	}
	return h[i].seq < h[j].seq
}

func (h innerHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *innerHeap) Push(x any) {
	*h = append(*h, x.(Event))
}

func (h *innerHeap) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	*h = old[:n-1]
	return e
}
