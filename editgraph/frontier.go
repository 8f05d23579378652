package editgraph

import "container/heap"

// frontierItem is one live path head in the frontier: a reference into the
// visited-index arena, its cost at the time it was pushed, and a monotonic
// sequence number used to break ties deterministically by insertion order.
// editgraph's element type A may have no natural order, so an explicit
// counter is used for the tie-break rather than relying on an ordered key.
type frontierItem[C Cost] struct {
	idx  nodeIndex
	cost C
	seq  uint64
}

// frontier is a min-priority queue of frontierItem ordered by (cost, seq):
// O(log n) push and pop, no decrease-key. Relaxation is
// handled by re-pushing (see search.go), and staleness is detected lazily
// on pop by comparing the popped cost against the node's current stored
// cost in the visited index.
type frontier[C Cost] struct {
	items []frontierItem[C]
	next  uint64
}

func newFrontier[C Cost](capHint int) *frontier[C] {
	f := &frontier[C]{items: make([]frontierItem[C], 0, capHint)}
	heap.Init(f)
	return f
}

// push inserts idx at cost into the frontier, stamping it with the next
// sequence number.
func (f *frontier[C]) push(idx nodeIndex, cost C) {
	heap.Push(f, frontierItem[C]{idx: idx, cost: cost, seq: f.next})
	f.next++
}

// popMin removes and returns the minimum-cost item, reporting false if the
// frontier is empty.
func (f *frontier[C]) popMin() (frontierItem[C], bool) {
	if len(f.items) == 0 {
		return frontierItem[C]{}, false
	}
	return heap.Pop(f).(frontierItem[C]), true
}

func (f *frontier[C]) size() int { return len(f.items) }

// Len, Less, Swap, Push, Pop implement container/heap.Interface.

func (f *frontier[C]) Len() int { return len(f.items) }

func (f *frontier[C]) Less(i, j int) bool {
	if f.items[i].cost != f.items[j].cost {
		return f.items[i].cost < f.items[j].cost
	}
	return f.items[i].seq < f.items[j].seq
}

func (f *frontier[C]) Swap(i, j int) { f.items[i], f.items[j] = f.items[j], f.items[i] }

func (f *frontier[C]) Push(x any) { f.items = append(f.items, x.(frontierItem[C])) }

func (f *frontier[C]) Pop() any {
	old := f.items
	n := len(old)
	item := old[n-1]
	f.items = old[:n-1]
	return item
}
