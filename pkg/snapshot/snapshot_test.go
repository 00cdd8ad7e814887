package snapshot_test

import (
	"testing"

	"go.llib.dev/adt/pkg/snapshot"
	"go.llib.dev/frameless/pkg/iterkit"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"
	"go.llib.dev/testcase/random"
)

func TestIterator(t *testing.T) {
	s := testcase.NewSpec(t)

	values := let.Var(s, func(t *testcase.T) []int {
		return random.Slice(t.Random.IntBetween(1, 7), t.Random.Int)
	})
	subject := let.Var(s, func(t *testcase.T) *snapshot.Iterator[int] {
		return snapshot.Copy(values.Get(t))
	})

	s.Test("yields the values in order", func(t *testcase.T) {
		var got []int
		for subject.Get(t).Next() {
			got = append(got, subject.Get(t).Value())
		}
		assert.Equal(t, values.Get(t), got)
		assert.NoError(t, subject.Get(t).Err())
	})

	s.Test("Len reports the remaining elements", func(t *testcase.T) {
		assert.Equal(t, len(values.Get(t)), subject.Get(t).Len())
		assert.True(t, subject.Get(t).Next())
		assert.Equal(t, len(values.Get(t))-1, subject.Get(t).Len())
	})

	s.Test("it is not restartable", func(t *testcase.T) {
		assert.Equal(t, values.Get(t), iterkit.Collect(subject.Get(t).Seq()))
		assert.False(t, subject.Get(t).Next())
		assert.Empty(t, iterkit.Collect(subject.Get(t).Seq()))
	})

	s.Test("source mutation is not observed", func(t *testcase.T) {
		exp := append([]int{}, values.Get(t)...)
		it := subject.Get(t)
		for i := range values.Get(t) {
			values.Get(t)[i] = -1
		}
		assert.Equal(t, exp, iterkit.Collect(it.Seq()))
	})

	s.Test("Close stops the iteration", func(t *testcase.T) {
		assert.NoError(t, subject.Get(t).Close())
		assert.False(t, subject.Get(t).Next())
		assert.Equal(t, 0, subject.Get(t).Len())
	})

	s.Test("it can be consumed through iterkit", func(t *testcase.T) {
		got, err := iterkit.CollectPullIter[int](subject.Get(t))
		assert.NoError(t, err)
		assert.Equal(t, values.Get(t), got)
	})
}

func TestOf_empty(t *testing.T) {
	it := snapshot.Of[string](nil)
	assert.False(t, it.Next())
	assert.Equal(t, "", it.Value())
	assert.Equal(t, 0, it.Len())
}
