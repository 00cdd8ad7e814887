// Package growbuf implements the doubling growth shared by the array-backed containers.
package growbuf

import (
	"context"

	"go.llib.dev/adt/pkg/alloc"
	"go.llib.dev/frameless/pkg/logging"
)

// Buffer is a fixed capacity slot array that can be replaced by one with double the capacity.
// A Buffer knows nothing about which slots are live, the owning container passes that in.
type Buffer[T any] struct {
	// Name identifies the owning container in log entries.
	Name      string
	Allocator alloc.Allocator
	Logger    *logging.Logger

	Slots []T
}

// Init allocates the initial slot array.
func (b *Buffer[T]) Init(capacity int) error {
	slots, err := alloc.MakeSlice[T](b.Allocator, capacity)
	if err != nil {
		b.warn(capacity, err)
		return err
	}
	b.Slots = slots
	return nil
}

func (b *Buffer[T]) Cap() int { return len(b.Slots) }

// Index maps the offset'th element of the circular region starting at head to its slot index.
func (b *Buffer[T]) Index(head, offset int) int {
	return (head + offset) % len(b.Slots)
}

// Prev returns the slot index that precedes i in circular order.
func (b *Buffer[T]) Prev(i int) int {
	return (i - 1 + len(b.Slots)) % len(b.Slots)
}

// Grow replaces the slot array with one of exactly double the capacity.
// The count live elements of the circular region starting at head
// are copied into [0, count) of the new array.
//
// The new array is fully populated before it replaces the old one,
// so on failure the Buffer is left as it was.
func (b *Buffer[T]) Grow(head, count int) error {
	from := len(b.Slots)
	to, err := alloc.Double(from)
	if err != nil {
		b.warn(from, err)
		return err
	}
	slots, err := alloc.MakeSlice[T](b.Allocator, to)
	if err != nil {
		b.warn(to, err)
		return err
	}
	if 0 < count {
		if head+count <= from {
			copy(slots, b.Slots[head:head+count])
		} else {
			n := copy(slots, b.Slots[head:])
			copy(slots[n:count], b.Slots[:count-n])
		}
	}
	b.Slots = slots
	if b.Logger != nil {
		b.Logger.Debug(context.Background(), "buffer grown",
			logging.Field("container", b.Name),
			logging.Field("from", from),
			logging.Field("to", to))
	}
	return nil
}

// Snapshot copies the count live elements of the circular region starting at head.
func (b *Buffer[T]) Snapshot(head, count int) []T {
	out := make([]T, count)
	if count == 0 {
		return out
	}
	if head+count <= len(b.Slots) {
		copy(out, b.Slots[head:head+count])
		return out
	}
	n := copy(out, b.Slots[head:])
	copy(out[n:], b.Slots[:count-n])
	return out
}

// Release zeroes every slot, so the garbage collector can reclaim what they referenced.
func (b *Buffer[T]) Release() { clear(b.Slots) }

// Zero zeroes a single vacated slot.
func (b *Buffer[T]) Zero(i int) {
	var zero T
	b.Slots[i] = zero
}

func (b *Buffer[T]) warn(capacity int, err error) {
	if b.Logger == nil {
		return
	}
	b.Logger.Warn(context.Background(), "buffer allocation refused",
		logging.Field("container", b.Name),
		logging.Field("capacity", capacity),
		logging.ErrField(err))
}
