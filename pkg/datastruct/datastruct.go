// Package datastruct defines the capabilities shared by the container implementations,
// along with their error kinds and construction options.
//
// Every concrete container lives in its own package,
// and is chosen at construction time:
//
//	s, err := stack.NewArray[int](datastruct.Capacity(64))
//	q, err := queue.NewArray[string]()
//	m, err := hashmap.New[string, int](nil, datastruct.Buckets(32))
package datastruct

import (
	"fmt"
	"iter"

	"go.llib.dev/adt/pkg/snapshot"
)

type Sizer interface {
	// Len returns the number of elements held.
	Len() int
	IsEmpty() bool
}

// Container is the capability set every container has.
type Container[T any] interface {
	Sizer
	fmt.Stringer
	// Clear removes every element, without shrinking the capacity.
	Clear()
	// ToSlice returns a fresh copy of the contents in the container's own order.
	ToSlice() []T
	// Values iterates over a snapshot of the contents.
	Values() iter.Seq[T]
	// Iterator returns a pull iterator over a snapshot of the contents.
	Iterator() *snapshot.Iterator[T]
}

// Capacitor is implemented by array-backed containers.
type Capacitor interface {
	// Cap returns the number of elements the container can hold before it has to grow.
	Cap() int
}

// Stack is a last-in first-out container.
type Stack[T any] interface {
	Container[T]
	Push(v T) error
	Pop() (T, error)
	Peek() (T, error)
}

// Queue is a first-in first-out container.
type Queue[T any] interface {
	Container[T]
	Enqueue(v T) error
	Dequeue() (T, error)
	Front() (T, error)
}

// Deque is a double-ended queue.
type Deque[T any] interface {
	Container[T]
	InsertFirst(v T) error
	InsertLast(v T) error
	First() (T, error)
	Last() (T, error)
	RemoveFirst() (T, error)
	RemoveLast() (T, error)
}

// List is an index addressable sequence.
type List[T any] interface {
	Container[T]
	Add(v T) error
	Get(index int) (T, error)
	Set(index int, v T) error
}

// PriorityQueue releases its entries in ascending priority order.
// Entries with equal priority are released in their insertion order.
type PriorityQueue[P, T any] interface {
	Container[PV[P, T]]
	Insert(priority P, v T) error
	Min() (P, T, error)
	RemoveMin() (P, T, error)
}

type Map[K comparable, V any] interface {
	Container[KV[K, V]]
	Put(key K, value V) error
	PutUnique(key K, value V) error
	Get(key K) (V, error)
	ContainsKey(key K) bool
	Remove(key K) (V, error)
	Keys() []K
}

type KV[K comparable, V any] struct {
	Key   K
	Value V
}

// PV is a priority queue entry.
type PV[P, V any] struct {
	Priority P
	Value    V
}
