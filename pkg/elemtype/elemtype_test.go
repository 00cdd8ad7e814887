package elemtype_test

import (
	"fmt"
	"reflect"
	"testing"

	"go.llib.dev/adt/pkg/elemtype"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"
)

type MyInt int

func TestNormalize(t *testing.T) {
	for _, v := range []any{int(1), int8(1), int16(1), int32(1), int64(1)} {
		assert.Equal(t, reflect.TypeFor[int64](), elemtype.Normalize(reflect.TypeOf(v)))
	}
	for _, v := range []any{uint(1), uint8(1), uint16(1), uint32(1), uint64(1), uintptr(1)} {
		assert.Equal(t, reflect.TypeFor[uint64](), elemtype.Normalize(reflect.TypeOf(v)))
	}
	assert.Equal(t, reflect.TypeFor[float64](), elemtype.Normalize(reflect.TypeFor[float32]()))
	assert.Equal(t, reflect.TypeFor[complex128](), elemtype.Normalize(reflect.TypeFor[complex64]()))
	assert.Equal(t, reflect.TypeFor[string](), elemtype.Normalize(reflect.TypeFor[string]()))
	assert.Equal(t, reflect.TypeFor[MyInt](), elemtype.Normalize(reflect.TypeFor[MyInt]()))
	assert.Nil(t, elemtype.Normalize(nil))
}

func TestType_Check(t *testing.T) {
	s := testcase.NewSpec(t)

	declared := let.Var(s, func(t *testcase.T) elemtype.Type {
		return elemtype.Int()
	})
	datum := let.Var[any](s, func(t *testcase.T) any {
		return t.Random.Int()
	})
	act := let.Act(func(t *testcase.T) error {
		return declared.Get(t).Check(datum.Get(t))
	})

	s.Then("matching datum is accepted", func(t *testcase.T) {
		assert.NoError(t, act(t))
	})

	s.When("datum has a different integer width", func(s *testcase.Spec) {
		datum.Let(s, func(t *testcase.T) any {
			return int8(t.Random.IntBetween(0, 100))
		})

		s.Then("it is accepted as the same integer type", func(t *testcase.T) {
			assert.NoError(t, act(t))
		})
	})

	s.When("datum is of a different type", func(s *testcase.Spec) {
		datum.Let(s, func(t *testcase.T) any {
			return t.Random.String()
		})

		s.Then("type mismatch is reported", func(t *testcase.T) {
			assert.ErrorIs(t, act(t), elemtype.ErrTypeMismatch)
		})
	})

	s.When("datum is nil", func(s *testcase.Spec) {
		datum.LetValue(s, nil)

		s.Then("type mismatch is reported", func(t *testcase.T) {
			assert.ErrorIs(t, act(t), elemtype.ErrTypeMismatch)
		})
	})

	s.When("declared type is an interface", func(s *testcase.Spec) {
		declared.Let(s, func(t *testcase.T) elemtype.Type {
			return elemtype.Of[fmt.Stringer]()
		})

		s.And("datum implements it", func(s *testcase.Spec) {
			datum.Let(s, func(t *testcase.T) any { return elemtype.Int() })

			s.Then("it is accepted", func(t *testcase.T) {
				assert.NoError(t, act(t))
			})
		})

		s.And("datum does not implement it", func(s *testcase.Spec) {
			s.Then("type mismatch is reported", func(t *testcase.T) {
				assert.ErrorIs(t, act(t), elemtype.ErrTypeMismatch)
			})
		})
	})

	s.When("type is undeclared", func(s *testcase.Spec) {
		declared.Let(s, func(t *testcase.T) elemtype.Type { return elemtype.Type{} })

		s.Then("nothing is accepted", func(t *testcase.T) {
			assert.ErrorIs(t, act(t), elemtype.ErrTypeMismatch)
		})
	})
}

func TestFor(t *testing.T) {
	t.Run("concrete type declares itself", func(t *testing.T) {
		got, err := elemtype.For[string](elemtype.Type{})
		assert.NoError(t, err)
		assert.True(t, got.Equal(elemtype.Of[string]()))
	})
	t.Run("interface type defaults to int", func(t *testing.T) {
		got, err := elemtype.For[any](elemtype.Type{})
		assert.NoError(t, err)
		assert.True(t, got.Equal(elemtype.Int()))
	})
	t.Run("interface type that int does not implement declares itself", func(t *testing.T) {
		got, err := elemtype.For[fmt.Stringer](elemtype.Type{})
		assert.NoError(t, err)
		assert.True(t, got.Equal(elemtype.Of[fmt.Stringer]()))
		assert.NoError(t, got.Check(elemtype.Int()))
		assert.ErrorIs(t, got.Check(42), elemtype.ErrTypeMismatch)
	})
	t.Run("compatible declaration", func(t *testing.T) {
		got, err := elemtype.For[int32](elemtype.Of[int8]())
		assert.NoError(t, err)
		assert.True(t, got.Equal(elemtype.Int()))
	})
	t.Run("declaration under an interface type", func(t *testing.T) {
		got, err := elemtype.For[any](elemtype.Of[float32]())
		assert.NoError(t, err)
		assert.True(t, got.Equal(elemtype.Of[float64]()))
	})
	t.Run("incompatible declaration", func(t *testing.T) {
		_, err := elemtype.For[string](elemtype.Int())
		assert.ErrorIs(t, err, elemtype.ErrTypeMismatch)
	})
	t.Run("declaration that does not implement the interface", func(t *testing.T) {
		_, err := elemtype.For[fmt.Stringer](elemtype.Int())
		assert.ErrorIs(t, err, elemtype.ErrTypeMismatch)
	})
}

func TestType_String(t *testing.T) {
	assert.Equal(t, "int64", elemtype.Int().String())
	assert.Equal(t, "<undeclared>", elemtype.Type{}.String())
	assert.True(t, elemtype.Type{}.IsZero())
}

func TestTypeOf(t *testing.T) {
	assert.True(t, elemtype.TypeOf(int16(7)).Equal(elemtype.Int()))
	assert.True(t, elemtype.TypeOf(MyInt(7)).Equal(elemtype.Of[MyInt]()))
	assert.True(t, elemtype.TypeOf(nil).IsZero())
	assert.Equal(t, reflect.TypeFor[uint64](), elemtype.TypeOf(uint8(1)).Reflect())
	assert.Nil(t, elemtype.Type{}.Reflect())
}
