package datastructcontract

import (
	"testing"

	"go.llib.dev/frameless/port/option"
	"go.llib.dev/testcase"
)

type Option[T any] interface {
	option.Option[Config[T]]
}

type Config[T any] struct {
	// MakeElem makes an element for the container under test.
	// It is required when T is an interface type.
	MakeElem func(testing.TB) T
}

var _ Option[int] = Config[int]{}

func (c Config[T]) Configure(o *Config[T]) {
	if c.MakeElem != nil {
		o.MakeElem = c.MakeElem
	}
}

func (c Config[T]) makeElem(tb testing.TB) T {
	if c.MakeElem != nil {
		return c.MakeElem(tb)
	}
	return makeValue[T](tb)
}

type MapOption[K comparable, V any] interface {
	option.Option[MapConfig[K, V]]
}

type MapConfig[K comparable, V any] struct {
	MakeK func(testing.TB) K
	MakeV func(testing.TB) V
}

var _ MapOption[string, int] = MapConfig[string, int]{}

func (c MapConfig[K, V]) Configure(o *MapConfig[K, V]) {
	if c.MakeK != nil {
		o.MakeK = c.MakeK
	}
	if c.MakeV != nil {
		o.MakeV = c.MakeV
	}
}

func (c MapConfig[K, V]) makeK(tb testing.TB) K {
	if c.MakeK != nil {
		return c.MakeK(tb)
	}
	return makeValue[K](tb)
}

func (c MapConfig[K, V]) makeV(tb testing.TB) V {
	if c.MakeV != nil {
		return c.MakeV(tb)
	}
	return makeValue[V](tb)
}

func makeValue[T any](tb testing.TB) T {
	t := testcase.ToT(&tb)
	return t.Random.Make(*new(T)).(T)
}
