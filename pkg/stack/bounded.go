package stack

import (
	"iter"
	"slices"

	"github.com/cockroachdb/redact"
	"go.llib.dev/adt/pkg/alloc"
	"go.llib.dev/adt/pkg/datastruct"
	"go.llib.dev/adt/pkg/elemtype"
	"go.llib.dev/adt/pkg/snapshot"
	"golang.org/x/exp/constraints"
)

var (
	_ datastruct.Stack[int64] = (*Bounded[int64])(nil)
	_ datastruct.Capacitor    = (*Bounded[int64])(nil)
)

// Bounded is an integer stack with a fixed capacity.
// Pushing onto a full Bounded stack fails with datastruct.ErrCollectionFull.
type Bounded[T constraints.Integer] struct {
	slots []T
	next  int
	etype elemtype.Type
}

// NewBoundedInt makes a Bounded stack of int64 values.
func NewBoundedInt(opts ...datastruct.Option) (*Bounded[int64], error) {
	return NewBounded[int64](opts...)
}

func NewBounded[T constraints.Integer](opts ...datastruct.Option) (*Bounded[T], error) {
	c := datastruct.ToConfig(opts)
	if err := c.CheckCapacity(); err != nil {
		return nil, err
	}
	etype, err := elemtype.For[T](c.ElementType)
	if err != nil {
		return nil, err
	}
	slots, err := alloc.MakeSlice[T](c.Allocator, c.Capacity)
	if err != nil {
		return nil, err
	}
	return &Bounded[T]{slots: slots, etype: etype}, nil
}

func (s *Bounded[T]) Push(v T) error {
	if s.next == len(s.slots) {
		return datastruct.ErrCollectionFull.F("BoundedStack.Push: stack is full at capacity %d", len(s.slots))
	}
	s.slots[s.next] = v
	s.next++
	return nil
}

func (s *Bounded[T]) Pop() (T, error) {
	if s.next == 0 {
		return 0, datastruct.ErrEmptyCollection.F("BoundedStack.Pop: stack is empty")
	}
	s.next--
	v := s.slots[s.next]
	s.slots[s.next] = 0
	return v, nil
}

func (s *Bounded[T]) Peek() (T, error) {
	if s.next == 0 {
		return 0, datastruct.ErrEmptyCollection.F("BoundedStack.Peek: stack is empty")
	}
	return s.slots[s.next-1], nil
}

// IsFull reports whether the next Push would fail.
func (s *Bounded[T]) IsFull() bool { return s.next == len(s.slots) }

func (s *Bounded[T]) Clear() {
	clear(s.slots)
	s.next = 0
}

func (s *Bounded[T]) Len() int { return s.next }

func (s *Bounded[T]) IsEmpty() bool { return s.next == 0 }

func (s *Bounded[T]) Cap() int { return len(s.slots) }

func (s *Bounded[T]) ElementType() elemtype.Type { return s.etype }

// ToSlice lists the elements from the top to the bottom of the stack.
func (s *Bounded[T]) ToSlice() []T {
	out := slices.Clone(s.slots[:s.next])
	slices.Reverse(out)
	return out
}

func (s *Bounded[T]) Values() iter.Seq[T] { return slices.Values(s.ToSlice()) }

func (s *Bounded[T]) Iterator() *snapshot.Iterator[T] { return snapshot.Of(s.ToSlice()) }

func (s *Bounded[T]) String() string { return s.summary().String() }

func (s *Bounded[T]) SafeFormat(w redact.SafePrinter, r rune) { s.summary().SafeFormat(w, r) }

func (s *Bounded[T]) summary() datastruct.Summary {
	return datastruct.Summary{
		Kind:     "BoundedStack",
		Capacity: len(s.slots),
		Size:     s.next,
		Type:     s.etype,
	}
}
