package datastructcontract

import (
	"fmt"
	"reflect"

	"go.llib.dev/adt/pkg/datastruct"
	"go.llib.dev/frameless/pkg/iterkit"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
)

// maxFill is the largest number of elements a contract puts into a container.
// Bounded containers under contract must be able to hold that many.
const maxFill = 32

// container specifies what every ordered container has in common.
// fill populates the subject and returns the sequence ToSlice is expected to return.
func container[T any, C datastruct.Container[T]](s *testcase.Spec, subject testcase.Var[C], fill func(t *testcase.T) []T) {
	s.Test("a new container is empty", func(t *testcase.T) {
		c := subject.Get(t)
		assert.Equal(t, 0, c.Len())
		assert.True(t, c.IsEmpty())
		assert.Empty(t, c.ToSlice())
		assert.Empty(t, iterkit.Collect(c.Values()))
	})

	s.Test("size follows the number of elements held", func(t *testcase.T) {
		exp := fill(t)
		assert.Equal(t, len(exp), subject.Get(t).Len())
		assert.Equal(t, len(exp) == 0, subject.Get(t).IsEmpty())
	})

	s.Test("ToSlice and the iterators yield the same sequence", func(t *testcase.T) {
		exp := fill(t)
		c := subject.Get(t)
		assert.Equal(t, exp, c.ToSlice())
		assert.Equal(t, exp, iterkit.Collect(c.Values()))
		got, err := iterkit.CollectPullIter[T](c.Iterator())
		assert.NoError(t, err)
		assert.Equal(t, exp, got)
	})

	s.Test("ToSlice does not consume the container", func(t *testcase.T) {
		exp := fill(t)
		c := subject.Get(t)
		_ = c.ToSlice()
		assert.Equal(t, len(exp), c.Len())
		assert.Equal(t, exp, c.ToSlice())
	})

	s.Test("an iterator does not observe later mutation", func(t *testcase.T) {
		exp := fill(t)
		c := subject.Get(t)
		it := c.Iterator()
		c.Clear()
		assert.Equal(t, len(exp), it.Len())
		assert.Equal(t, exp, iterkit.Collect(it.Seq()))
	})

	s.Test("Clear removes every element", func(t *testcase.T) {
		fill(t)
		c := subject.Get(t)
		c.Clear()
		assert.Equal(t, 0, c.Len())
		assert.True(t, c.IsEmpty())
		assert.Empty(t, c.ToSlice())

		exp := fill(t)
		assert.Equal(t, exp, c.ToSlice(), "container is usable after Clear")
	})

	s.Test("an array-backed container holds no more than its capacity, and Clear keeps it", func(t *testcase.T) {
		c, ok := any(subject.Get(t)).(datastruct.Capacitor)
		if !ok {
			t.Skip("container has no capacity")
		}
		fill(t)
		capacity := c.Cap()
		assert.True(t, subject.Get(t).Len() <= capacity)
		subject.Get(t).Clear()
		assert.Equal(t, capacity, c.Cap())
	})

	s.Test("String describes the container", func(t *testcase.T) {
		exp := fill(t)
		str := subject.Get(t).String()
		assert.NotEmpty(t, str)
		assert.Contains(t, str, fmt.Sprintf("size: %d,", len(exp)))
		assert.Contains(t, str, "type: ")
	})
}

func typeName[T any]() string {
	return reflect.TypeFor[T]().String()
}
