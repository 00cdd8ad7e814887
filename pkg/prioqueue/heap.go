// Package prioqueue implements a min-priority queue over a binary heap.
package prioqueue

import (
	"cmp"
	"fmt"
	"iter"
	"slices"

	"github.com/cockroachdb/redact"
	"go.llib.dev/adt/internal/growbuf"
	"go.llib.dev/adt/pkg/datastruct"
	"go.llib.dev/adt/pkg/elemtype"
	"go.llib.dev/adt/pkg/snapshot"
	"go.llib.dev/frameless/pkg/errorkit"
)

const ErrNilCompare errorkit.Error = "ErrNilCompare"

var (
	_ datastruct.PriorityQueue[int, string] = (*Heap[int, string])(nil)
	_ datastruct.Capacitor                  = (*Heap[int, string])(nil)
)

// Heap is a min-heap kept in a 1-indexed array, slot 0 is never used.
// Entries are ordered by priority, then by their insertion sequence number,
// so two entries never compare as equal and equal priorities are released first-in first-out.
type Heap[P, T any] struct {
	buf     growbuf.Buffer[node[P, T]]
	last    int
	seq     uint64
	compare func(a, b P) int
	etype   elemtype.Type
}

type node[P, T any] struct {
	priority P
	value    T
	seq      uint64
}

// New makes a Heap that orders priorities with their natural order.
func New[P cmp.Ordered, T any](opts ...datastruct.Option) (*Heap[P, T], error) {
	return NewFunc[P, T](cmp.Compare[P], opts...)
}

// NewFunc makes a Heap with a priority comparison function,
// which returns a negative number when a has a higher priority than b.
func NewFunc[P, T any](compare func(a, b P) int, opts ...datastruct.Option) (*Heap[P, T], error) {
	if compare == nil {
		return nil, ErrNilCompare.F("HeapPrioQueue: a priority comparison function is required")
	}
	c := datastruct.ToConfig(opts)
	if err := c.CheckCapacity(); err != nil {
		return nil, err
	}
	etype, err := elemtype.For[T](c.ElementType)
	if err != nil {
		return nil, err
	}
	h := &Heap[P, T]{
		seq:     1,
		compare: compare,
		etype:   etype,
		buf: growbuf.Buffer[node[P, T]]{
			Name:      "HeapPrioQueue",
			Allocator: c.Allocator,
			Logger:    c.Logger,
		},
	}
	if err := h.buf.Init(c.Capacity); err != nil {
		return nil, err
	}
	return h, nil
}

// Insert adds v with the given priority.
func (h *Heap[P, T]) Insert(priority P, v T) error {
	if err := h.etype.Check(v); err != nil {
		return fmt.Errorf("HeapPrioQueue.Insert: %w", err)
	}
	i := h.last + 1
	if h.buf.Cap() <= i {
		if err := h.buf.Grow(0, i); err != nil {
			return err
		}
	}
	h.buf.Slots[i] = node[P, T]{priority: priority, value: v, seq: h.seq}
	h.seq++
	h.last = i
	h.siftUp()
	return nil
}

func (h *Heap[P, T]) Min() (P, T, error) {
	if h.last == 0 {
		return h.empty("Min")
	}
	n := h.buf.Slots[1]
	return n.priority, n.value, nil
}

func (h *Heap[P, T]) RemoveMin() (P, T, error) {
	if h.last == 0 {
		return h.empty("RemoveMin")
	}
	n := h.buf.Slots[1]
	h.buf.Slots[1] = h.buf.Slots[h.last]
	h.buf.Zero(h.last)
	h.last--
	siftDown(h.buf.Slots, h.last, h.less)
	return n.priority, n.value, nil
}

func (h *Heap[P, T]) empty(op string) (P, T, error) {
	var (
		p P
		v T
	)
	return p, v, datastruct.ErrEmptyCollection.F("HeapPrioQueue.%s: priority queue is empty", op)
}

// Clone duplicates the heap with the same capacity, entries and insertion sequence.
// The clone allocates its slots through the same Allocator.
func (h *Heap[P, T]) Clone() (*Heap[P, T], error) {
	c := *h
	if err := c.buf.Init(h.buf.Cap()); err != nil {
		return nil, err
	}
	copy(c.buf.Slots, h.buf.Slots[:h.last+1])
	return &c, nil
}

// Clear removes every entry.
// Sequence numbers keep increasing across Clear calls.
func (h *Heap[P, T]) Clear() {
	h.buf.Release()
	h.last = 0
}

func (h *Heap[P, T]) Len() int { return h.last }

func (h *Heap[P, T]) IsEmpty() bool { return h.last == 0 }

// Cap counts every slot of the backing array, the unused slot 0 included.
func (h *Heap[P, T]) Cap() int { return h.buf.Cap() }

func (h *Heap[P, T]) ElementType() elemtype.Type { return h.etype }

// ToSlice lists the entries in the order RemoveMin would release them.
// It drains a copy of the heap, the Heap itself is left untouched.
func (h *Heap[P, T]) ToSlice() []datastruct.PV[P, T] {
	nodes := slices.Clone(h.buf.Slots[:h.last+1])
	out := make([]datastruct.PV[P, T], 0, h.last)
	for last := h.last; 0 < last; last-- {
		n := nodes[1]
		out = append(out, datastruct.PV[P, T]{Priority: n.priority, Value: n.value})
		nodes[1] = nodes[last]
		siftDown(nodes, last-1, h.less)
	}
	return out
}

func (h *Heap[P, T]) Values() iter.Seq[datastruct.PV[P, T]] { return slices.Values(h.ToSlice()) }

func (h *Heap[P, T]) Iterator() *snapshot.Iterator[datastruct.PV[P, T]] {
	return snapshot.Of(h.ToSlice())
}

func (h *Heap[P, T]) String() string { return h.summary().String() }

func (h *Heap[P, T]) SafeFormat(w redact.SafePrinter, r rune) { h.summary().SafeFormat(w, r) }

func (h *Heap[P, T]) summary() datastruct.Summary {
	return datastruct.Summary{
		Kind:     "HeapPrioQueue",
		Capacity: h.buf.Cap(),
		Size:     h.last,
		Type:     h.etype,
	}
}

// less never reports two distinct nodes as equal.
func (h *Heap[P, T]) less(a, b node[P, T]) bool {
	if c := h.compare(a.priority, b.priority); c != 0 {
		return c < 0
	}
	return a.seq < b.seq
}

// siftUp restores heap(1, last) when heap(1, last-1) holds.
func (h *Heap[P, T]) siftUp() {
	nodes := h.buf.Slots
	for i := h.last; 1 < i; {
		p := i / 2
		if !h.less(nodes[i], nodes[p]) {
			break
		}
		nodes[p], nodes[i] = nodes[i], nodes[p]
		i = p
	}
}

// siftDown restores heap(1, last) when only the node at index 1 may be out of place.
func siftDown[N any](nodes []N, last int, less func(a, b N) bool) {
	for i := 1; ; {
		c := 2 * i
		if last < c {
			return
		}
		if c+1 <= last && less(nodes[c+1], nodes[c]) {
			c++
		}
		if !less(nodes[c], nodes[i]) {
			return
		}
		nodes[i], nodes[c] = nodes[c], nodes[i]
		i = c
	}
}
