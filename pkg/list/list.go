// Package list implements an index addressable sequence over a growable array.
package list

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
	_ datastruct.List[int] = (*DynamicArray[int])(nil)
	_ datastruct.Capacitor = (*DynamicArray[int])(nil)
)

// DynamicArray is a list whose backing array doubles when an Add finds it full.
// Its elements occupy [0, Len) of the backing array.
type DynamicArray[T any] struct {
	buf   growbuf.Buffer[T]
	size  int
	etype elemtype.Type
}

func New[T any](opts ...datastruct.Option) (*DynamicArray[T], error) {
	c := datastruct.ToConfig(opts)
	if err := c.CheckCapacity(); err != nil {
		return nil, err
	}
	etype, err := elemtype.For[T](c.ElementType)
	if err != nil {
		return nil, err
	}
	l := &DynamicArray[T]{
		etype: etype,
		buf: growbuf.Buffer[T]{
			Name:      "DynamicArray",
			Allocator: c.Allocator,
			Logger:    c.Logger,
		},
	}
	if err := l.buf.Init(c.Capacity); err != nil {
		return nil, err
	}
	return l, nil
}

// Add appends v to the end of the list.
func (l *DynamicArray[T]) Add(v T) error {
	if err := l.etype.Check(v); err != nil {
		return fmt.Errorf("DynamicArray.Add: %w", err)
	}
	if l.size == l.buf.Cap() {
		if err := l.buf.Grow(0, l.size); err != nil {
			return err
		}
	}
	l.buf.Slots[l.size] = v
	l.size++
	return nil
}

func (l *DynamicArray[T]) Get(index int) (T, error) {
	if index < 0 || l.size <= index {
		var zero T
		return zero, datastruct.ErrIndexOutOfRange.F("DynamicArray.Get: illegal index %d", index)
	}
	return l.buf.Slots[index], nil
}

// Set replaces the element at index.
func (l *DynamicArray[T]) Set(index int, v T) error {
	if err := l.etype.Check(v); err != nil {
		return fmt.Errorf("DynamicArray.Set: %w", err)
	}
	if index < 0 || l.size <= index {
		return datastruct.ErrIndexOutOfRange.F("DynamicArray.Set: illegal index %d", index)
	}
	l.buf.Slots[index] = v
	return nil
}

func (l *DynamicArray[T]) Clear() {
	l.buf.Release()
	l.size = 0
}

func (l *DynamicArray[T]) Len() int { return l.size }

func (l *DynamicArray[T]) IsEmpty() bool { return l.size == 0 }

func (l *DynamicArray[T]) Cap() int { return l.buf.Cap() }

func (l *DynamicArray[T]) ElementType() elemtype.Type { return l.etype }

func (l *DynamicArray[T]) ToSlice() []T { return slices.Clone(l.buf.Slots[:l.size]) }

func (l *DynamicArray[T]) Values() iter.Seq[T] { return slices.Values(l.ToSlice()) }

func (l *DynamicArray[T]) Iterator() *snapshot.Iterator[T] { return snapshot.Of(l.ToSlice()) }

func (l *DynamicArray[T]) String() string { return l.summary().String() }

func (l *DynamicArray[T]) SafeFormat(w redact.SafePrinter, r rune) { l.summary().SafeFormat(w, r) }

func (l *DynamicArray[T]) summary() datastruct.Summary {
	return datastruct.Summary{
		Kind:     "DynamicArray",
		Capacity: l.buf.Cap(),
		Size:     l.size,
		Type:     l.etype,
	}
}
