package datastructcontract

import (
	"fmt"
	"slices"

	"go.llib.dev/adt/pkg/datastruct"
	"go.llib.dev/frameless/port/contract"
	"go.llib.dev/frameless/port/option"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"
)

// Stack specifies the last-in first-out behaviour of a datastruct.Stack.
func Stack[T any](mk contract.Make[datastruct.Stack[T]], opts ...Option[T]) contract.Contract {
	s := testcase.NewSpec(nil)
	c := option.ToConfig[Config[T]](opts)

	subject := let.Var(s, func(t *testcase.T) datastruct.Stack[T] {
		return mk(t)
	})

	push := func(t *testcase.T) []T {
		var pushed []T
		t.Random.Repeat(1, maxFill, func() {
			v := c.makeElem(t)
			assert.NoError(t, subject.Get(t).Push(v))
			pushed = append(pushed, v)
		})
		return pushed
	}

	container(s, subject, func(t *testcase.T) []T {
		exp := push(t)
		slices.Reverse(exp)
		return exp
	})

	s.Test("pops reverse the push order", func(t *testcase.T) {
		pushed := push(t)
		for i := len(pushed) - 1; 0 <= i; i-- {
			got, err := subject.Get(t).Pop()
			assert.NoError(t, err)
			assert.Equal(t, pushed[i], got)
		}
		assert.True(t, subject.Get(t).IsEmpty())
	})

	s.Test("Peek returns the top without removing it", func(t *testcase.T) {
		pushed := push(t)
		got, err := subject.Get(t).Peek()
		assert.NoError(t, err)
		assert.Equal(t, pushed[len(pushed)-1], got)
		assert.Equal(t, len(pushed), subject.Get(t).Len())
	})

	s.Test("Pop and Peek fail on an empty stack", func(t *testcase.T) {
		_, err := subject.Get(t).Pop()
		assert.ErrorIs(t, err, datastruct.ErrEmptyCollection)
		_, err = subject.Get(t).Peek()
		assert.ErrorIs(t, err, datastruct.ErrEmptyCollection)
		assert.Equal(t, 0, subject.Get(t).Len())
	})

	s.Test("interleaved pushes and pops", func(t *testcase.T) {
		var model []T
		t.Random.Repeat(maxFill, maxFill*2, func() {
			if 0 < len(model) && t.Random.Bool() {
				got, err := subject.Get(t).Pop()
				assert.NoError(t, err)
				assert.Equal(t, model[len(model)-1], got)
				model = model[:len(model)-1]
				return
			}
			if maxFill <= len(model) {
				return
			}
			v := c.makeElem(t)
			assert.NoError(t, subject.Get(t).Push(v))
			model = append(model, v)
		})
		assert.Equal(t, len(model), subject.Get(t).Len())
	})

	return s.AsSuite(fmt.Sprintf("Stack[%s]", typeName[T]()))
}
