package datastructcontract

import (
	"fmt"

	"go.llib.dev/adt/pkg/datastruct"
	"go.llib.dev/frameless/port/contract"
	"go.llib.dev/frameless/port/option"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"
)

// List specifies the index addressing of a datastruct.List.
func List[T any](mk contract.Make[datastruct.List[T]], opts ...Option[T]) contract.Contract {
	s := testcase.NewSpec(nil)
	c := option.ToConfig[Config[T]](opts)

	subject := let.Var(s, func(t *testcase.T) datastruct.List[T] {
		return mk(t)
	})

	add := func(t *testcase.T) []T {
		var added []T
		t.Random.Repeat(1, maxFill, func() {
			v := c.makeElem(t)
			assert.NoError(t, subject.Get(t).Add(v))
			added = append(added, v)
		})
		return added
	}

	container(s, subject, add)

	s.Test("Get returns the element at the index", func(t *testcase.T) {
		for i, exp := range add(t) {
			got, err := subject.Get(t).Get(i)
			assert.NoError(t, err)
			assert.Equal(t, exp, got)
		}
	})

	s.Test("Set replaces the element at the index", func(t *testcase.T) {
		added := add(t)
		i := t.Random.IntN(len(added))
		v := c.makeElem(t)
		assert.NoError(t, subject.Get(t).Set(i, v))
		added[i] = v
		assert.Equal(t, added, subject.Get(t).ToSlice())
		assert.Equal(t, len(added), subject.Get(t).Len())
	})

	s.Test("indexes outside of [0, Len) are out of range", func(t *testcase.T) {
		added := add(t)
		l := subject.Get(t)
		for _, i := range []int{-1, len(added), len(added) + t.Random.IntBetween(1, 10)} {
			_, err := l.Get(i)
			assert.ErrorIs(t, err, datastruct.ErrIndexOutOfRange)
			assert.ErrorIs(t, l.Set(i, c.makeElem(t)), datastruct.ErrIndexOutOfRange)
		}
		assert.Equal(t, added, l.ToSlice())
	})

	s.Test("an empty list has no valid index", func(t *testcase.T) {
		_, err := subject.Get(t).Get(0)
		assert.ErrorIs(t, err, datastruct.ErrIndexOutOfRange)
	})

	return s.AsSuite(fmt.Sprintf("List[%s]", typeName[T]()))
}
