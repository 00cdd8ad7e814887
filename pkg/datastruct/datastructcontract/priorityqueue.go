package datastructcontract

import (
	"cmp"
	"fmt"
	"slices"
	"testing"

	"go.llib.dev/adt/pkg/datastruct"
	"go.llib.dev/frameless/port/contract"
	"go.llib.dev/frameless/port/option"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"
)

// PriorityQueue specifies a min-priority queue,
// where entries of equal priority are released in their insertion order.
//
// Priorities are made with Config.MakeElem, values with makeValue.
func PriorityQueue[P cmp.Ordered, T any](mk contract.Make[datastruct.PriorityQueue[P, T]], makeValue func(testing.TB) T, opts ...Option[P]) contract.Contract {
	s := testcase.NewSpec(nil)
	c := option.ToConfig[Config[P]](opts)

	subject := let.Var(s, func(t *testcase.T) datastruct.PriorityQueue[P, T] {
		return mk(t)
	})

	// insert returns the inserted entries in their expected release order.
	insert := func(t *testcase.T) []datastruct.PV[P, T] {
		var (
			entries    []datastruct.PV[P, T]
			priorities []P
		)
		t.Random.Repeat(1, maxFill, func() {
			var p P
			if 0 < len(priorities) && t.Random.Bool() {
				p = priorities[t.Random.IntN(len(priorities))]
			} else {
				p = c.makeElem(t)
				priorities = append(priorities, p)
			}
			v := makeValue(t)
			assert.NoError(t, subject.Get(t).Insert(p, v))
			entries = append(entries, datastruct.PV[P, T]{Priority: p, Value: v})
		})
		slices.SortStableFunc(entries, func(a, b datastruct.PV[P, T]) int {
			return cmp.Compare(a.Priority, b.Priority)
		})
		return entries
	}

	container(s, subject, insert)

	s.Test("RemoveMin releases by ascending priority then insertion order", func(t *testcase.T) {
		for _, exp := range insert(t) {
			p, v, err := subject.Get(t).RemoveMin()
			assert.NoError(t, err)
			assert.Equal(t, exp.Priority, p)
			assert.Equal(t, exp.Value, v)
		}
		assert.True(t, subject.Get(t).IsEmpty())
	})

	s.Test("Min peeks at the next entry", func(t *testcase.T) {
		exp := insert(t)
		p, v, err := subject.Get(t).Min()
		assert.NoError(t, err)
		assert.Equal(t, exp[0].Priority, p)
		assert.Equal(t, exp[0].Value, v)
		assert.Equal(t, len(exp), subject.Get(t).Len())
	})

	s.Test("Min and RemoveMin fail on an empty queue", func(t *testcase.T) {
		_, _, err := subject.Get(t).Min()
		assert.ErrorIs(t, err, datastruct.ErrEmptyCollection)
		_, _, err = subject.Get(t).RemoveMin()
		assert.ErrorIs(t, err, datastruct.ErrEmptyCollection)
	})

	s.Test("insertion order of equal priorities survives Clear", func(t *testcase.T) {
		insert(t)
		subject.Get(t).Clear()
		exp := insert(t)
		for _, e := range exp {
			_, v, err := subject.Get(t).RemoveMin()
			assert.NoError(t, err)
			assert.Equal(t, e.Value, v)
		}
	})

	return s.AsSuite(fmt.Sprintf("PriorityQueue[%s, %s]", typeName[P](), typeName[T]()))
}
