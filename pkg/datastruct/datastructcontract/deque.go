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

// Deque specifies a datastruct.Deque, which is expected to behave like a stack and a queue at both of its ends.
func Deque[T any](mk contract.Make[datastruct.Deque[T]], opts ...Option[T]) contract.Contract {
	s := testcase.NewSpec(nil)
	c := option.ToConfig[Config[T]](opts)

	subject := let.Var(s, func(t *testcase.T) datastruct.Deque[T] {
		return mk(t)
	})

	// fill inserts at random ends, and returns the expected head to tail order
	fill := func(t *testcase.T) []T {
		var model []T
		t.Random.Repeat(1, maxFill, func() {
			v := c.makeElem(t)
			if t.Random.Bool() {
				assert.NoError(t, subject.Get(t).InsertFirst(v))
				model = append([]T{v}, model...)
			} else {
				assert.NoError(t, subject.Get(t).InsertLast(v))
				model = append(model, v)
			}
		})
		return model
	}

	container(s, subject, fill)

	s.Test("First and Last peek at the two ends", func(t *testcase.T) {
		model := fill(t)
		first, err := subject.Get(t).First()
		assert.NoError(t, err)
		assert.Equal(t, model[0], first)
		last, err := subject.Get(t).Last()
		assert.NoError(t, err)
		assert.Equal(t, model[len(model)-1], last)
		assert.Equal(t, len(model), subject.Get(t).Len())
	})

	s.Test("removing from the front yields head to tail order", func(t *testcase.T) {
		for _, exp := range fill(t) {
			got, err := subject.Get(t).RemoveFirst()
			assert.NoError(t, err)
			assert.Equal(t, exp, got)
		}
		assert.True(t, subject.Get(t).IsEmpty())
	})

	s.Test("removing from the back yields tail to head order", func(t *testcase.T) {
		model := fill(t)
		for i := len(model) - 1; 0 <= i; i-- {
			got, err := subject.Get(t).RemoveLast()
			assert.NoError(t, err)
			assert.Equal(t, model[i], got)
		}
		assert.True(t, subject.Get(t).IsEmpty())
	})

	s.Test("every accessor fails on an empty deque", func(t *testcase.T) {
		d := subject.Get(t)
		for _, fn := range []func() (T, error){d.First, d.Last, d.RemoveFirst, d.RemoveLast} {
			_, err := fn()
			assert.ErrorIs(t, err, datastruct.ErrEmptyCollection)
		}
	})

	s.Test("random operations at both ends", func(t *testcase.T) {
		var model []T
		t.Random.Repeat(maxFill, maxFill*4, func() {
			d := subject.Get(t)
			switch t.Random.IntN(4) {
			case 0:
				v := c.makeElem(t)
				assert.NoError(t, d.InsertFirst(v))
				model = append([]T{v}, model...)
			case 1:
				v := c.makeElem(t)
				assert.NoError(t, d.InsertLast(v))
				model = append(model, v)
			case 2:
				got, err := d.RemoveFirst()
				if len(model) == 0 {
					assert.ErrorIs(t, err, datastruct.ErrEmptyCollection)
					return
				}
				assert.NoError(t, err)
				assert.Equal(t, model[0], got)
				model = model[1:]
			case 3:
				got, err := d.RemoveLast()
				if len(model) == 0 {
					assert.ErrorIs(t, err, datastruct.ErrEmptyCollection)
					return
				}
				assert.NoError(t, err)
				assert.Equal(t, model[len(model)-1], got)
				model = model[:len(model)-1]
			}
		})
		assert.Equal(t, len(model), subject.Get(t).Len())
		if 0 < len(model) {
			assert.Equal(t, model, subject.Get(t).ToSlice())
		}
	})

	return s.AsSuite(fmt.Sprintf("Deque[%s]", typeName[T]()))
}
