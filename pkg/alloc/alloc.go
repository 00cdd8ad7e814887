// Package alloc is the allocation gate used by the containers.
//
// Every buffer or node a container acquires goes through an Allocator first,
// which makes it possible to cap the memory a container may request
// and to inject allocation failures during testing.
package alloc

import (
	"fmt"
	"math"
	"unsafe"

	"go.llib.dev/frameless/pkg/errorkit"
)

const ErrOutOfMemory errorkit.Error = "ErrOutOfMemory"

// DefaultMaxBytes is the upper bound of a single allocation with the Default allocator.
const DefaultMaxBytes uint64 = 1 << 36

// Default is the Allocator used when a container is not configured with one.
var Default Allocator = Limit{MaxBytes: DefaultMaxBytes}

type Allocator interface {
	// Allocate reports whether a buffer of n elements,
	// each elemSize bytes large, may be acquired.
	// A refusal must be an ErrOutOfMemory error.
	Allocate(n int, elemSize uintptr) error
}

// Limit refuses any single allocation larger than MaxBytes.
// A zero MaxBytes means no limit.
type Limit struct {
	MaxBytes uint64
}

func (l Limit) Allocate(n int, elemSize uintptr) error {
	if n < 0 {
		return ErrOutOfMemory.F("negative length requested: %d", n)
	}
	if l.MaxBytes == 0 || n == 0 || elemSize == 0 {
		return nil
	}
	if uint64(n) > math.MaxUint64/uint64(elemSize) {
		return ErrOutOfMemory.F("%d elements of %d bytes overflow the address space", n, elemSize)
	}
	if size := uint64(n) * uint64(elemSize); l.MaxBytes < size {
		return ErrOutOfMemory.F("%d bytes requested, limit is %d bytes", size, l.MaxBytes)
	}
	return nil
}

// Func is an Allocator adapter for ordinary functions.
type Func func(n int, elemSize uintptr) error

func (fn Func) Allocate(n int, elemSize uintptr) error { return fn(n, elemSize) }

// Fail is an Allocator that refuses every request.
var Fail Allocator = Func(func(n int, elemSize uintptr) error {
	return ErrOutOfMemory.F("allocation of %d elements refused", n)
})

// MakeSlice acquires a slice with a length of n.
// The runtime's own refusal (makeslice: len out of range) is reported as ErrOutOfMemory as well.
func MakeSlice[T any](a Allocator, n int) (_ []T, returnErr error) {
	if a == nil {
		a = Default
	}
	if err := a.Allocate(n, sizeOf[T]()); err != nil {
		return nil, err
	}
	defer func() {
		if r := recover(); r != nil {
			returnErr = ErrOutOfMemory.Wrap(fmt.Errorf("%v", r))
		}
	}()
	return make([]T, n), nil
}

// New acquires a single value of T.
func New[T any](a Allocator) (*T, error) {
	if a == nil {
		a = Default
	}
	if err := a.Allocate(1, sizeOf[T]()); err != nil {
		return nil, err
	}
	return new(T), nil
}

// Double returns the doubled capacity of c,
// or ErrOutOfMemory when the result would not fit into an int.
func Double(c int) (int, error) {
	if c < 1 {
		return 1, nil
	}
	if math.MaxInt/2 < c {
		return 0, ErrOutOfMemory.F("capacity %d can not be doubled", c)
	}
	return c * 2, nil
}

func sizeOf[T any]() uintptr {
	var zero T
	return unsafe.Sizeof(zero)
}
