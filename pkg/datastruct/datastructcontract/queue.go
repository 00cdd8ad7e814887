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

// Queue specifies the first-in first-out behaviour of a datastruct.Queue.
func Queue[T any](mk contract.Make[datastruct.Queue[T]], opts ...Option[T]) contract.Contract {
	s := testcase.NewSpec(nil)
	c := option.ToConfig[Config[T]](opts)

	subject := let.Var(s, func(t *testcase.T) datastruct.Queue[T] {
		return mk(t)
	})

	enqueue := func(t *testcase.T) []T {
		var enqueued []T
		t.Random.Repeat(1, maxFill, func() {
			v := c.makeElem(t)
			assert.NoError(t, subject.Get(t).Enqueue(v))
			enqueued = append(enqueued, v)
		})
		return enqueued
	}

	container(s, subject, enqueue)

	s.Test("dequeues keep the enqueue order", func(t *testcase.T) {
		enqueued := enqueue(t)
		for _, exp := range enqueued {
			got, err := subject.Get(t).Dequeue()
			assert.NoError(t, err)
			assert.Equal(t, exp, got)
		}
		assert.True(t, subject.Get(t).IsEmpty())
	})

	s.Test("Front returns the head without removing it", func(t *testcase.T) {
		enqueued := enqueue(t)
		got, err := subject.Get(t).Front()
		assert.NoError(t, err)
		assert.Equal(t, enqueued[0], got)
		assert.Equal(t, len(enqueued), subject.Get(t).Len())
	})

	s.Test("Dequeue and Front fail on an empty queue", func(t *testcase.T) {
		_, err := subject.Get(t).Dequeue()
		assert.ErrorIs(t, err, datastruct.ErrEmptyCollection)
		_, err = subject.Get(t).Front()
		assert.ErrorIs(t, err, datastruct.ErrEmptyCollection)
	})

	s.Test("order is kept while the head wraps around", func(t *testcase.T) {
		var model []T
		t.Random.Repeat(maxFill, maxFill*4, func() {
			if 0 < len(model) && t.Random.Bool() {
				got, err := subject.Get(t).Dequeue()
				assert.NoError(t, err)
				assert.Equal(t, model[0], got)
				model = model[1:]
				return
			}
			v := c.makeElem(t)
			assert.NoError(t, subject.Get(t).Enqueue(v))
			model = append(model, v)
		})
		assert.Equal(t, len(model), subject.Get(t).Len())
		if len(model) == 0 {
			assert.Empty(t, subject.Get(t).ToSlice())
			return
		}
		assert.Equal(t, model, subject.Get(t).ToSlice())
	})

	return s.AsSuite(fmt.Sprintf("Queue[%s]", typeName[T]()))
}
