// Package snapshot implements a forward iterator over a copy of a container's contents.
//
// An Iterator never observes the container after its creation,
// and mutating the container never invalidates an ongoing iteration.
package snapshot

import (
	"iter"
	"slices"

	"go.llib.dev/frameless/pkg/iterkit"
)

var _ iterkit.PullIter[int] = (*Iterator[int])(nil)

type Iterator[T any] struct {
	values []T
	next   int
	value  T
	closed bool
}

// Of takes ownership of vs, and iterates over them in order.
// The caller must not modify vs afterwards.
func Of[T any](vs []T) *Iterator[T] {
	return &Iterator[T]{values: vs}
}

// Copy iterates over a copy of vs.
func Copy[T any](vs []T) *Iterator[T] {
	return Of(slices.Clone(vs))
}

func (i *Iterator[T]) Next() bool {
	if i.closed || len(i.values) <= i.next {
		var zero T
		i.value = zero
		return false
	}
	i.value = i.values[i.next]
	i.next++
	return true
}

func (i *Iterator[T]) Value() T { return i.value }

func (i *Iterator[T]) Err() error { return nil }

func (i *Iterator[T]) Close() error {
	i.closed = true
	i.values = nil
	return nil
}

// Len returns the number of elements not yet visited.
func (i *Iterator[T]) Len() int {
	if i.closed {
		return 0
	}
	return len(i.values) - i.next
}

// Seq consumes the remaining elements as an iter.Seq.
func (i *Iterator[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i.Next() {
			if !yield(i.Value()) {
				return
			}
		}
	}
}
