package datastruct_test

import (
	"errors"
	"math"
	"testing"

	"github.com/cockroachdb/redact"
	"go.llib.dev/adt/pkg/alloc"
	"go.llib.dev/adt/pkg/datastruct"
	"go.llib.dev/adt/pkg/elemtype"
	"go.llib.dev/frameless/pkg/logging"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"
)

func TestToConfig(t *testing.T) {
	s := testcase.NewSpec(t)

	opts := let.VarOf[[]datastruct.Option](s, nil)
	act := let.Act(func(t *testcase.T) datastruct.Config {
		return datastruct.ToConfig(opts.Get(t))
	})

	s.When("no option is given", func(s *testcase.Spec) {
		s.Then("the defaults are used", func(t *testcase.T) {
			c := act(t)
			assert.Equal(t, datastruct.DefaultCapacity, c.Capacity)
			assert.Equal(t, datastruct.DefaultBuckets, c.Buckets)
			assert.Equal(t, datastruct.DefaultLoadFactor, c.LoadFactor)
			assert.NotNil(t, c.Allocator)
			assert.Nil(t, c.Logger)
			assert.True(t, c.ElementType.IsZero())
			assert.NoError(t, c.CheckCapacity())
			assert.NoError(t, c.CheckBuckets())
		})
	})

	s.When("options are given", func(s *testcase.Spec) {
		logger, _ := logging.Stub(t)

		opts.Let(s, func(t *testcase.T) []datastruct.Option {
			return []datastruct.Option{
				datastruct.Capacity(7),
				datastruct.Buckets(3),
				datastruct.LoadFactor(2),
				datastruct.ElementType(elemtype.Of[string]()),
				datastruct.Allocator(alloc.Fail),
				datastruct.Logger(logger),
			}
		})

		s.Then("they are applied", func(t *testcase.T) {
			c := act(t)
			assert.Equal(t, 7, c.Capacity)
			assert.Equal(t, 3, c.Buckets)
			assert.Equal(t, 2.0, c.LoadFactor)
			assert.True(t, c.ElementType.Equal(elemtype.Of[string]()))
			assert.True(t, c.Logger == logger)
			assert.ErrorIs(t, c.Allocator.Allocate(1, 1), alloc.ErrOutOfMemory)
		})
	})

	s.When("the load factor is too small", func(s *testcase.Spec) {
		opts.Let(s, func(t *testcase.T) []datastruct.Option {
			return []datastruct.Option{datastruct.LoadFactor(0.0001)}
		})

		s.Then("it falls back to the default", func(t *testcase.T) {
			assert.Equal(t, datastruct.DefaultLoadFactor, act(t).LoadFactor)
		})
	})

	s.When("the load factor is not a number", func(s *testcase.Spec) {
		opts.Let(s, func(t *testcase.T) []datastruct.Option {
			return []datastruct.Option{datastruct.LoadFactor(math.NaN())}
		})

		s.Then("it falls back to the default", func(t *testcase.T) {
			assert.Equal(t, datastruct.DefaultLoadFactor, act(t).LoadFactor)
		})
	})

	s.When("the bucket count is above the maximum", func(s *testcase.Spec) {
		opts.Let(s, func(t *testcase.T) []datastruct.Option {
			return []datastruct.Option{datastruct.Buckets(datastruct.MaxBuckets + 1)}
		})

		s.Then("it is capped", func(t *testcase.T) {
			assert.Equal(t, datastruct.MaxBuckets, act(t).Buckets)
		})
	})

	s.When("the capacity is not positive", func(s *testcase.Spec) {
		opts.Let(s, func(t *testcase.T) []datastruct.Option {
			return []datastruct.Option{datastruct.Capacity(-t.Random.IntBetween(0, 10)), datastruct.Buckets(0)}
		})

		s.Then("validation fails", func(t *testcase.T) {
			assert.ErrorIs(t, act(t).CheckCapacity(), datastruct.ErrInvalidCapacity)
			assert.ErrorIs(t, act(t).CheckBuckets(), datastruct.ErrInvalidCapacity)
		})
	})

	s.Test("a Config is an Option itself", func(t *testcase.T) {
		c := datastruct.ToConfig([]datastruct.Option{datastruct.Config{Capacity: 99}})
		assert.Equal(t, 99, c.Capacity)
		assert.Equal(t, datastruct.DefaultBuckets, c.Buckets)
	})
}

func TestErrors(t *testing.T) {
	assert.True(t, errors.Is(datastruct.ErrTypeMismatch, elemtype.ErrTypeMismatch))
	assert.True(t, errors.Is(datastruct.ErrOutOfMemory, alloc.ErrOutOfMemory))
	assert.ErrorIs(t, datastruct.ErrEmptyCollection.F("Pop"), datastruct.ErrEmptyCollection)
}

func TestSummary(t *testing.T) {
	t.Run("with capacity", func(t *testing.T) {
		s := datastruct.Summary{Kind: "ArrayStack", Capacity: 1024, Size: 3, Type: elemtype.Int()}
		assert.Equal(t, "ArrayStack - capacity: 1,024, size: 3, type: int64", s.String())
	})
	t.Run("with a named capacity", func(t *testing.T) {
		s := datastruct.Summary{Kind: "HashMap", CapacityName: "buckets", Capacity: 16, Size: 12345, Type: elemtype.Of[string]()}
		assert.Equal(t, "HashMap - buckets: 16, size: 12,345, type: string", s.String())
	})
	t.Run("without capacity", func(t *testing.T) {
		s := datastruct.Summary{Kind: "LinkedStack", Capacity: -1, Size: 2, Type: elemtype.Of[float32]()}
		assert.Equal(t, "LinkedStack - size: 2, type: float64", s.String())
	})
	t.Run("nothing is redacted", func(t *testing.T) {
		s := datastruct.Summary{Kind: "ArrayQueue", Capacity: 2, Size: 1, Type: elemtype.Int()}
		assert.Equal(t, s.String(), redact.Sprint(s).Redact().StripMarkers())
	})
}
