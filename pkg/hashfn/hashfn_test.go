package hashfn_test

import (
	"hash/maphash"
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/spaolacci/murmur3"
	"go.llib.dev/adt/pkg/hashfn"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
)

type name string

type point struct{ X, Y int }

func TestDefault(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("strings are hashed with xxhash", func(t *testcase.T) {
		k := t.Random.String()
		assert.Equal(t, xxhash.Sum64String(k), hashfn.Default[string]()(k))
	})

	s.Test("named string types hash like their underlying value", func(t *testcase.T) {
		k := t.Random.String()
		assert.Equal(t, xxhash.Sum64String(k), hashfn.Default[name]()(name(k)))
	})

	s.Test("equal comparable keys have equal hashes", func(t *testcase.T) {
		hash := hashfn.Default[point]()
		p := point{X: t.Random.Int(), Y: t.Random.Int()}
		assert.Equal(t, hash(p), hash(point{X: p.X, Y: p.Y}))
	})

	s.Test("distinct keys are spread", func(t *testcase.T) {
		hash := hashfn.Default[int]()
		seen := map[uint64]struct{}{}
		for i := 0; i < 1000; i++ {
			seen[hash(i)] = struct{}{}
		}
		assert.True(t, 990 < len(seen))
	})
}

func TestMurmur3(t *testing.T) {
	assert.Equal(t, murmur3.Sum64([]byte("foo")), hashfn.Murmur3[string]()("foo"))
	assert.Equal(t, hashfn.Murmur3[string]()("foo"), hashfn.Murmur3[[]byte]()([]byte("foo")))
}

func TestXXHash(t *testing.T) {
	assert.Equal(t, xxhash.Sum64String("foo"), hashfn.XXHash[name]()("foo"))
}

func TestComparable(t *testing.T) {
	seed := maphash.MakeSeed()
	assert.Equal(t, hashfn.Comparable[int](seed)(42), hashfn.Comparable[int](seed)(42))
}

func TestInteger(t *testing.T) {
	assert.Equal(t, uint64(42), hashfn.Integer[int]()(42))
	assert.Equal(t, uint64(7), hashfn.Integer[uint8]()(7))
}
