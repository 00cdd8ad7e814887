package queue

import (
	"iter"
	"slices"

	"github.com/cockroachdb/redact"
	"go.llib.dev/adt/pkg/datastruct"
	"go.llib.dev/adt/pkg/elemtype"
	"go.llib.dev/adt/pkg/snapshot"
)

var (
	_ datastruct.Deque[int] = (*Deque[int])(nil)
	_ datastruct.Capacitor  = (*Deque[int])(nil)
)

// Deque is a double-ended queue over a circular array.
type Deque[T any] struct {
	r ring[T]
}

func NewDeque[T any](opts ...datastruct.Option) (*Deque[T], error) {
	d := &Deque[T]{}
	if err := d.r.init(dequeName, opts); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Deque[T]) InsertFirst(v T) error { return d.r.pushFront("InsertFirst", v) }

func (d *Deque[T]) InsertLast(v T) error { return d.r.pushBack("InsertLast", v) }

func (d *Deque[T]) First() (T, error) { return d.r.front("First") }

func (d *Deque[T]) Last() (T, error) { return d.r.back("Last") }

func (d *Deque[T]) RemoveFirst() (T, error) { return d.r.popFront("RemoveFirst") }

func (d *Deque[T]) RemoveLast() (T, error) { return d.r.popBack("RemoveLast") }

func (d *Deque[T]) Clear() { d.r.clear() }

func (d *Deque[T]) Len() int { return d.r.count }

func (d *Deque[T]) IsEmpty() bool { return d.r.count == 0 }

func (d *Deque[T]) Cap() int { return d.r.buf.Cap() }

func (d *Deque[T]) ElementType() elemtype.Type { return d.r.etype }

// ToSlice lists the elements from the first to the last.
func (d *Deque[T]) ToSlice() []T { return d.r.toSlice() }

func (d *Deque[T]) Values() iter.Seq[T] { return slices.Values(d.ToSlice()) }

func (d *Deque[T]) Iterator() *snapshot.Iterator[T] { return snapshot.Of(d.ToSlice()) }

func (d *Deque[T]) String() string { return d.r.summary().String() }

func (d *Deque[T]) SafeFormat(w redact.SafePrinter, r rune) { d.r.summary().SafeFormat(w, r) }
