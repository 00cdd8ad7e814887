package stack

import (
	"context"
	"fmt"
	"iter"
	"slices"

	"github.com/cockroachdb/redact"
	"go.llib.dev/adt/internal/chain"
	"go.llib.dev/adt/pkg/alloc"
	"go.llib.dev/adt/pkg/datastruct"
	"go.llib.dev/adt/pkg/elemtype"
	"go.llib.dev/adt/pkg/snapshot"
	"go.llib.dev/frameless/pkg/logging"
)

var _ datastruct.Stack[int] = (*Linked[int])(nil)

// Linked is a stack over a singly linked chain, with the top of the stack at the head.
// It has no capacity, every Push acquires one node.
type Linked[T any] struct {
	head   *chain.Node[T]
	count  int
	etype  elemtype.Type
	alloc  alloc.Allocator
	logger *logging.Logger
}

func NewLinked[T any](opts ...datastruct.Option) (*Linked[T], error) {
	c := datastruct.ToConfig(opts)
	etype, err := elemtype.For[T](c.ElementType)
	if err != nil {
		return nil, err
	}
	return &Linked[T]{
		etype:  etype,
		alloc:  c.Allocator,
		logger: c.Logger,
	}, nil
}

func (s *Linked[T]) Push(v T) error {
	if err := s.etype.Check(v); err != nil {
		return fmt.Errorf("LinkedStack.Push: %w", err)
	}
	head, err := chain.Prepend(s.alloc, s.head, v)
	if err != nil {
		if s.logger != nil {
			s.logger.Warn(context.Background(), "node allocation refused",
				logging.Field("container", "LinkedStack"),
				logging.ErrField(err))
		}
		return err
	}
	s.head = head
	s.count++
	return nil
}

func (s *Linked[T]) Pop() (T, error) {
	if s.head == nil {
		var zero T
		return zero, datastruct.ErrEmptyCollection.F("LinkedStack.Pop: stack is empty")
	}
	node := s.head
	chain.Unlink(&s.head, nil, node)
	s.count--
	return node.Value, nil
}

func (s *Linked[T]) Peek() (T, error) {
	if s.head == nil {
		var zero T
		return zero, datastruct.ErrEmptyCollection.F("LinkedStack.Peek: stack is empty")
	}
	return s.head.Value, nil
}

// Clear drops the chain, leaving its nodes to the garbage collector.
func (s *Linked[T]) Clear() {
	s.head = nil
	s.count = 0
}

func (s *Linked[T]) Len() int { return s.count }

func (s *Linked[T]) IsEmpty() bool { return s.count == 0 }

func (s *Linked[T]) ElementType() elemtype.Type { return s.etype }

// ToSlice lists the elements from the most to the least recently pushed.
func (s *Linked[T]) ToSlice() []T {
	return chain.AppendTo(make([]T, 0, s.count), s.head)
}

func (s *Linked[T]) Values() iter.Seq[T] { return slices.Values(s.ToSlice()) }

func (s *Linked[T]) Iterator() *snapshot.Iterator[T] { return snapshot.Of(s.ToSlice()) }

func (s *Linked[T]) String() string { return s.summary().String() }

func (s *Linked[T]) SafeFormat(w redact.SafePrinter, r rune) { s.summary().SafeFormat(w, r) }

func (s *Linked[T]) summary() datastruct.Summary {
	return datastruct.Summary{
		Kind:     "LinkedStack",
		Capacity: -1,
		Size:     s.count,
		Type:     s.etype,
	}
}
