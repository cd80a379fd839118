package runtime

import "container/heap"

type node[S comparable] struct {
	state S
	cost  float64
	depth int
	seq   uint64 // insertion order, breaks cost ties FIFO
}

type nodeHeap[S comparable] []*node[S]

func (h nodeHeap[S]) Len() int { return len(h) }

func (h nodeHeap[S]) Less(i, j int) bool {
	if h[i].cost == h[j].cost {
		return h[i].seq < h[j].seq
	}
	return h[i].cost < h[j].cost
}

func (h nodeHeap[S]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *nodeHeap[S]) Push(x any) { *h = append(*h, x.(*node[S])) }

func (h *nodeHeap[S]) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return item
}

// frontier is a min-priority queue of discovered, unexpanded states.
type frontier[S comparable] struct {
	items nodeHeap[S]
	seq   uint64
}

func newFrontier[S comparable]() *frontier[S] {
	return &frontier[S]{}
}

func (f *frontier[S]) push(state S, cost float64, depth int) {
	heap.Push(&f.items, &node[S]{state: state, cost: cost, depth: depth, seq: f.seq})
	f.seq++
}

func (f *frontier[S]) pop() *node[S] {
	return heap.Pop(&f.items).(*node[S])
}

func (f *frontier[S]) Len() int {
	return f.items.Len()
}
