package growbuf_test

import (
	"testing"

	"go.llib.dev/adt/internal/growbuf"
	"go.llib.dev/adt/pkg/alloc"
	"go.llib.dev/frameless/pkg/logging"
	"go.llib.dev/testcase/assert"
)

func TestBuffer_Grow_linear(t *testing.T) {
	b := growbuf.Buffer[int]{Name: "test"}
	assert.NoError(t, b.Init(4))
	copy(b.Slots, []int{1, 2, 3, 4})

	assert.NoError(t, b.Grow(0, 4))
	assert.Equal(t, 8, b.Cap())
	assert.Equal(t, []int{1, 2, 3, 4, 0, 0, 0, 0}, b.Slots)
}

func TestBuffer_Grow_circular(t *testing.T) {
	b := growbuf.Buffer[int]{Name: "test"}
	assert.NoError(t, b.Init(4))
	// live region starts at index 2 and wraps: 3, 4, 1, 2
	copy(b.Slots, []int{1, 2, 3, 4})

	assert.NoError(t, b.Grow(2, 4))
	assert.Equal(t, 8, b.Cap())
	assert.Equal(t, []int{3, 4, 1, 2}, b.Slots[:4])
}

func TestBuffer_Grow_refused(t *testing.T) {
	var calls int
	b := growbuf.Buffer[int]{
		Name: "test",
		Allocator: alloc.Func(func(n int, elemSize uintptr) error {
			calls++
			if 1 < calls {
				return alloc.ErrOutOfMemory
			}
			return nil
		}),
	}
	assert.NoError(t, b.Init(2))
	copy(b.Slots, []int{7, 8})

	assert.ErrorIs(t, b.Grow(0, 2), alloc.ErrOutOfMemory)
	assert.Equal(t, 2, b.Cap())
	assert.Equal(t, []int{7, 8}, b.Slots)
}

func TestBuffer_Snapshot(t *testing.T) {
	b := growbuf.Buffer[string]{}
	assert.NoError(t, b.Init(3))
	copy(b.Slots, []string{"c", "a", "b"})

	assert.Equal(t, []string{"a", "b", "c"}, b.Snapshot(1, 3))
	assert.Equal(t, []string{"a"}, b.Snapshot(1, 1))
	assert.Equal(t, []string{}, b.Snapshot(0, 0))
}

func TestBuffer_Index(t *testing.T) {
	b := growbuf.Buffer[int]{}
	assert.NoError(t, b.Init(4))
	assert.Equal(t, 1, b.Index(3, 2))
	assert.Equal(t, 3, b.Prev(0))
	assert.Equal(t, 0, b.Prev(1))
}

func TestBuffer_logging(t *testing.T) {
	logger, out := logging.Stub(t)
	b := growbuf.Buffer[int]{Name: "ArrayStack", Logger: logger}
	assert.NoError(t, b.Init(1))
	assert.NoError(t, b.Grow(0, 1))
	assert.Contains(t, out.String(), "buffer grown")
	assert.Contains(t, out.String(), "ArrayStack")
}
