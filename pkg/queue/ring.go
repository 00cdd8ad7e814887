package queue

import (
	"fmt"

	"go.llib.dev/adt/internal/growbuf"
	"go.llib.dev/adt/pkg/datastruct"
	"go.llib.dev/adt/pkg/elemtype"
)

// ring is the circular region shared by Array and Deque.
// The live elements are at [head, head+count) modulo the capacity.
type ring[T any] struct {
	buf   growbuf.Buffer[T]
	head  int
	count int
	etype elemtype.Type
}

func (r *ring[T]) init(name string, opts []datastruct.Option) error {
	c := datastruct.ToConfig(opts)
	if err := c.CheckCapacity(); err != nil {
		return err
	}
	etype, err := elemtype.For[T](c.ElementType)
	if err != nil {
		return err
	}
	r.etype = etype
	r.buf = growbuf.Buffer[T]{
		Name:      name,
		Allocator: c.Allocator,
		Logger:    c.Logger,
	}
	return r.buf.Init(c.Capacity)
}

// reserve makes room for one more element.
// After a growth the region starts at slot 0 again.
func (r *ring[T]) reserve(op string, v T) error {
	if err := r.etype.Check(v); err != nil {
		return fmt.Errorf("%s.%s: %w", r.buf.Name, op, err)
	}
	if r.count < r.buf.Cap() {
		return nil
	}
	if err := r.buf.Grow(r.head, r.count); err != nil {
		return err
	}
	r.head = 0
	return nil
}

func (r *ring[T]) pushBack(op string, v T) error {
	if err := r.reserve(op, v); err != nil {
		return err
	}
	r.buf.Slots[r.buf.Index(r.head, r.count)] = v
	r.count++
	return nil
}

func (r *ring[T]) pushFront(op string, v T) error {
	if err := r.reserve(op, v); err != nil {
		return err
	}
	r.head = r.buf.Prev(r.head)
	r.buf.Slots[r.head] = v
	r.count++
	return nil
}

func (r *ring[T]) front(op string) (T, error) {
	if r.count == 0 {
		return r.empty(op)
	}
	return r.buf.Slots[r.head], nil
}

func (r *ring[T]) back(op string) (T, error) {
	if r.count == 0 {
		return r.empty(op)
	}
	return r.buf.Slots[r.buf.Index(r.head, r.count-1)], nil
}

func (r *ring[T]) popFront(op string) (T, error) {
	if r.count == 0 {
		return r.empty(op)
	}
	v := r.buf.Slots[r.head]
	r.buf.Zero(r.head)
	r.head = r.buf.Index(r.head, 1)
	r.count--
	return v, nil
}

func (r *ring[T]) popBack(op string) (T, error) {
	if r.count == 0 {
		return r.empty(op)
	}
	i := r.buf.Index(r.head, r.count-1)
	v := r.buf.Slots[i]
	r.buf.Zero(i)
	r.count--
	return v, nil
}

func (r *ring[T]) empty(op string) (T, error) {
	var zero T
	return zero, datastruct.ErrEmptyCollection.F("%s.%s: %s is empty", r.buf.Name, op, kindOf(r.buf.Name))
}

func (r *ring[T]) clear() {
	r.buf.Release()
	r.head = 0
	r.count = 0
}

func (r *ring[T]) toSlice() []T { return r.buf.Snapshot(r.head, r.count) }

func (r *ring[T]) summary() datastruct.Summary {
	return datastruct.Summary{
		Kind:     r.buf.Name,
		Capacity: r.buf.Cap(),
		Size:     r.count,
		Type:     r.etype,
	}
}

func kindOf(name string) string {
	if name == dequeName {
		return "deque"
	}
	return "queue"
}
