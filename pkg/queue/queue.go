// Package queue implements first-in first-out containers over a circular array,
// which doubles its capacity when an insert finds it full.
package queue

import (
	"iter"
	"slices"

	"github.com/cockroachdb/redact"
	"go.llib.dev/adt/pkg/datastruct"
	"go.llib.dev/adt/pkg/elemtype"
	"go.llib.dev/adt/pkg/snapshot"
)

const (
	queueName = "ArrayQueue"
	dequeName = "ArrayDeque"
)

var (
	_ datastruct.Queue[int] = (*Array[int])(nil)
	_ datastruct.Capacitor  = (*Array[int])(nil)
)

// Array is a queue over a circular array.
type Array[T any] struct {
	r ring[T]
}

func NewArray[T any](opts ...datastruct.Option) (*Array[T], error) {
	q := &Array[T]{}
	if err := q.r.init(queueName, opts); err != nil {
		return nil, err
	}
	return q, nil
}

// Enqueue appends v to the tail of the queue.
func (q *Array[T]) Enqueue(v T) error { return q.r.pushBack("Enqueue", v) }

// Dequeue removes the head of the queue.
func (q *Array[T]) Dequeue() (T, error) { return q.r.popFront("Dequeue") }

func (q *Array[T]) Front() (T, error) { return q.r.front("Front") }

func (q *Array[T]) Clear() { q.r.clear() }

func (q *Array[T]) Len() int { return q.r.count }

func (q *Array[T]) IsEmpty() bool { return q.r.count == 0 }

func (q *Array[T]) Cap() int { return q.r.buf.Cap() }

func (q *Array[T]) ElementType() elemtype.Type { return q.r.etype }

// ToSlice lists the elements from the head to the tail of the queue.
func (q *Array[T]) ToSlice() []T { return q.r.toSlice() }

func (q *Array[T]) Values() iter.Seq[T] { return slices.Values(q.ToSlice()) }

func (q *Array[T]) Iterator() *snapshot.Iterator[T] { return snapshot.Of(q.ToSlice()) }

func (q *Array[T]) String() string { return q.r.summary().String() }

func (q *Array[T]) SafeFormat(w redact.SafePrinter, r rune) { q.r.summary().SafeFormat(w, r) }
