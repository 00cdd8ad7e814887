package datastructcontract

import (
	"fmt"

	"go.llib.dev/adt/pkg/datastruct"
	"go.llib.dev/frameless/pkg/iterkit"
	"go.llib.dev/frameless/port/contract"
	"go.llib.dev/frameless/port/option"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"
	"go.llib.dev/testcase/random"
)

func Map[K comparable, V any](mk contract.Make[datastruct.Map[K, V]], opts ...MapOption[K, V]) contract.Contract {
	s := testcase.NewSpec(nil)
	c := option.ToConfig[MapConfig[K, V]](opts)

	subject := let.Var(s, func(t *testcase.T) datastruct.Map[K, V] {
		return mk(t)
	})

	put := func(t *testcase.T) map[K]V {
		expected := map[K]V{}
		t.Random.Repeat(1, maxFill, func() {
			key := random.Unique(func() K {
				return c.makeK(t)
			}, keys(expected)...)
			expected[key] = c.makeV(t)
			assert.NoError(t, subject.Get(t).Put(key, expected[key]))
		})
		return expected
	}

	s.Test("smoke", func(t *testcase.T) {
		m := subject.Get(t)
		assert.True(t, m.IsEmpty())

		expected := put(t)
		assert.Equal(t, len(expected), m.Len())
		for k, v := range expected {
			assert.True(t, m.ContainsKey(k))
			got, err := m.Get(k)
			assert.NoError(t, err)
			assert.Equal(t, v, got)
		}

		kNoise := random.Unique(func() K { return c.makeK(t) }, keys(expected)...)
		assert.False(t, m.ContainsKey(kNoise))
		_, err := m.Get(kNoise)
		assert.ErrorIs(t, err, datastruct.ErrKeyNotFound)

		vNoise := c.makeV(t)
		assert.NoError(t, m.Put(kNoise, vNoise))
		assert.Equal(t, len(expected)+1, m.Len())
		got, err := m.Remove(kNoise)
		assert.NoError(t, err)
		assert.Equal(t, vNoise, got)
		assert.Equal(t, len(expected), m.Len())
		assert.False(t, m.ContainsKey(kNoise))
	})

	s.Test("keys are unique in the map", func(t *testcase.T) {
		m := subject.Get(t)
		k := c.makeK(t)
		t.Random.Repeat(3, 7, func() {
			assert.NoError(t, m.Put(k, c.makeV(t)))
		})
		assert.Equal(t, 1, m.Len())
		exp := c.makeV(t)
		assert.NoError(t, m.Put(k, exp))
		assert.Equal(t, 1, m.Len())
		got, err := m.Get(k)
		assert.NoError(t, err)
		assert.Equal(t, exp, got)
		_, err = m.Remove(k)
		assert.NoError(t, err)
		assert.Equal(t, 0, m.Len())
	})

	s.Test("PutUnique refuses an existing key and keeps its value", func(t *testcase.T) {
		m := subject.Get(t)
		k, v := c.makeK(t), c.makeV(t)
		assert.NoError(t, m.PutUnique(k, v))
		assert.ErrorIs(t, m.PutUnique(k, c.makeV(t)), datastruct.ErrDuplicateKey)
		got, err := m.Get(k)
		assert.NoError(t, err)
		assert.Equal(t, v, got)
		assert.Equal(t, 1, m.Len())
	})

	s.Test("Remove of an absent key fails without changing the size", func(t *testcase.T) {
		expected := put(t)
		k := random.Unique(func() K { return c.makeK(t) }, keys(expected)...)
		_, err := subject.Get(t).Remove(k)
		assert.ErrorIs(t, err, datastruct.ErrKeyNotFound)
		assert.Equal(t, len(expected), subject.Get(t).Len())
	})

	s.Test("the pairs are listed by Keys, ToSlice and the iterators", func(t *testcase.T) {
		m := subject.Get(t)
		expected := put(t)
		var pairs []datastruct.KV[K, V]
		for k, v := range expected {
			pairs = append(pairs, datastruct.KV[K, V]{Key: k, Value: v})
		}
		assert.ContainsExactly(t, keys(expected), m.Keys())
		assert.ContainsExactly(t, pairs, m.ToSlice())
		assert.Equal(t, m.ToSlice(), iterkit.Collect(m.Values()))
		got, err := iterkit.CollectPullIter[datastruct.KV[K, V]](m.Iterator())
		assert.NoError(t, err)
		assert.Equal(t, m.ToSlice(), got)
	})

	s.Test("an iterator does not observe later mutation", func(t *testcase.T) {
		m := subject.Get(t)
		put(t)
		exp := m.ToSlice()
		it := m.Iterator()
		m.Clear()
		assert.Equal(t, exp, iterkit.Collect(it.Seq()))
	})

	s.Test("Clear removes every pair", func(t *testcase.T) {
		m := subject.Get(t)
		expected := put(t)
		m.Clear()
		assert.True(t, m.IsEmpty())
		assert.Empty(t, m.Keys())
		for k := range expected {
			assert.False(t, m.ContainsKey(k))
		}
		put(t)
		assert.False(t, m.IsEmpty())
	})

	s.Test("String describes the map", func(t *testcase.T) {
		expected := put(t)
		assert.Contains(t, subject.Get(t).String(), fmt.Sprintf("size: %d,", len(expected)))
	})

	return s.AsSuite(fmt.Sprintf("Map[%s, %s]", typeName[K](), typeName[V]()))
}

func keys[K comparable, V any](m map[K]V) []K {
	out := make([]K, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
