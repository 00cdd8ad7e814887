package stack

import (
	"fmt"
	"iter"
	"slices"

	"github.com/cockroachdb/redact"
	"go.llib.dev/adt/internal/growbuf"
	"go.llib.dev/adt/pkg/datastruct"
	"go.llib.dev/adt/pkg/elemtype"
	"go.llib.dev/adt/pkg/snapshot"
)

var (
	_ datastruct.Stack[int] = (*Array[int])(nil)
	_ datastruct.Capacitor  = (*Array[int])(nil)
)

// Array is a stack over a growable array.
// The bottom of the stack is at index 0, and the next free slot is at index next.
type Array[T any] struct {
	buf   growbuf.Buffer[T]
	next  int
	etype elemtype.Type
}

func NewArray[T any](opts ...datastruct.Option) (*Array[T], error) {
	c := datastruct.ToConfig(opts)
	if err := c.CheckCapacity(); err != nil {
		return nil, err
	}
	etype, err := elemtype.For[T](c.ElementType)
	if err != nil {
		return nil, err
	}
	s := &Array[T]{
		etype: etype,
		buf: growbuf.Buffer[T]{
			Name:      "ArrayStack",
			Allocator: c.Allocator,
			Logger:    c.Logger,
		},
	}
	if err := s.buf.Init(c.Capacity); err != nil {
		return nil, err
	}
	return s, nil
}

// Push places v on the top of the stack.
// A full stack is grown to double its capacity first.
func (s *Array[T]) Push(v T) error {
	if err := s.etype.Check(v); err != nil {
		return fmt.Errorf("ArrayStack.Push: %w", err)
	}
	if s.next == s.buf.Cap() {
		if err := s.buf.Grow(0, s.next); err != nil {
			return err
		}
	}
	s.buf.Slots[s.next] = v
	s.next++
	return nil
}

func (s *Array[T]) Pop() (T, error) {
	if s.next == 0 {
		var zero T
		return zero, datastruct.ErrEmptyCollection.F("ArrayStack.Pop: stack is empty")
	}
	s.next--
	v := s.buf.Slots[s.next]
	s.buf.Zero(s.next)
	return v, nil
}

func (s *Array[T]) Peek() (T, error) {
	if s.next == 0 {
		var zero T
		return zero, datastruct.ErrEmptyCollection.F("ArrayStack.Peek: stack is empty")
	}
	return s.buf.Slots[s.next-1], nil
}

func (s *Array[T]) Clear() {
	s.buf.Release()
	s.next = 0
}

func (s *Array[T]) Len() int { return s.next }

func (s *Array[T]) IsEmpty() bool { return s.next == 0 }

func (s *Array[T]) Cap() int { return s.buf.Cap() }

func (s *Array[T]) ElementType() elemtype.Type { return s.etype }

// ToSlice lists the elements from the top to the bottom of the stack.
func (s *Array[T]) ToSlice() []T {
	out := slices.Clone(s.buf.Slots[:s.next])
	slices.Reverse(out)
	return out
}

func (s *Array[T]) Values() iter.Seq[T] { return slices.Values(s.ToSlice()) }

func (s *Array[T]) Iterator() *snapshot.Iterator[T] { return snapshot.Of(s.ToSlice()) }

func (s *Array[T]) String() string { return s.summary().String() }

func (s *Array[T]) SafeFormat(w redact.SafePrinter, r rune) { s.summary().SafeFormat(w, r) }

func (s *Array[T]) summary() datastruct.Summary {
	return datastruct.Summary{
		Kind:     "ArrayStack",
		Capacity: s.buf.Cap(),
		Size:     s.next,
		Type:     s.etype,
	}
}
