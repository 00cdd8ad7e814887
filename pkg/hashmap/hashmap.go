// Package hashmap implements a map over an array of singly linked bucket chains.
//
// A key lives in bucket hash(key) % Buckets().
// When an insert would push the load above the configured load factor,
// the bucket array is doubled and every entry is redistributed first.
package hashmap

import (
	"context"
	"fmt"
	"iter"
	"slices"

	"github.com/cockroachdb/redact"
	"go.llib.dev/adt/internal/chain"
	"go.llib.dev/adt/pkg/alloc"
	"go.llib.dev/adt/pkg/datastruct"
	"go.llib.dev/adt/pkg/elemtype"
	"go.llib.dev/adt/pkg/hashfn"
	"go.llib.dev/adt/pkg/snapshot"
	"go.llib.dev/frameless/pkg/logging"
)

var _ datastruct.Map[string, int] = (*HashMap[string, int])(nil)

type HashMap[K comparable, V any] struct {
	buckets    []*chain.Node[datastruct.KV[K, V]]
	size       int
	loadFactor float64
	hash       hashfn.Func[K]
	etype      elemtype.Type
	alloc      alloc.Allocator
	logger     *logging.Logger
}

// New makes a HashMap with the given hash function.
// A nil hash function falls back to hashfn.Default.
//
// The datastruct.ElementType option declares the value type.
func New[K comparable, V any](hash hashfn.Func[K], opts ...datastruct.Option) (*HashMap[K, V], error) {
	c := datastruct.ToConfig(opts)
	if err := c.CheckBuckets(); err != nil {
		return nil, err
	}
	etype, err := elemtype.For[V](c.ElementType)
	if err != nil {
		return nil, err
	}
	if hash == nil {
		hash = hashfn.Default[K]()
	}
	m := &HashMap[K, V]{
		loadFactor: c.LoadFactor,
		hash:       hash,
		etype:      etype,
		alloc:      c.Allocator,
		logger:     c.Logger,
	}
	buckets, err := alloc.MakeSlice[*chain.Node[datastruct.KV[K, V]]](m.alloc, c.Buckets)
	if err != nil {
		m.warn(c.Buckets, err)
		return nil, err
	}
	m.buckets = buckets
	return m, nil
}

// Put stores value under key, replacing the value of an existing entry.
func (m *HashMap[K, V]) Put(key K, value V) error {
	if err := m.etype.Check(value); err != nil {
		return fmt.Errorf("HashMap.Put: %w", err)
	}
	if _, node := m.find(key); node != nil {
		node.Value.Value = value
		return nil
	}
	return m.insert(key, value)
}

// PutUnique stores value under key, unless the key is already present.
func (m *HashMap[K, V]) PutUnique(key K, value V) error {
	if err := m.etype.Check(value); err != nil {
		return fmt.Errorf("HashMap.PutUnique: %w", err)
	}
	if _, node := m.find(key); node != nil {
		return datastruct.ErrDuplicateKey.F("HashMap.PutUnique: key already exists")
	}
	return m.insert(key, value)
}

func (m *HashMap[K, V]) Get(key K) (V, error) {
	_, node := m.find(key)
	if node == nil {
		var zero V
		return zero, datastruct.ErrKeyNotFound.F("HashMap.Get: invalid key")
	}
	return node.Value.Value, nil
}

func (m *HashMap[K, V]) ContainsKey(key K) bool {
	_, node := m.find(key)
	return node != nil
}

// Remove deletes the entry of key, and returns its value.
func (m *HashMap[K, V]) Remove(key K) (V, error) {
	bi := m.index(key)
	prev, node := chain.Find(m.buckets[bi], m.matcher(key))
	if node == nil {
		var zero V
		return zero, datastruct.ErrKeyNotFound.F("HashMap.Remove: key does not exist")
	}
	chain.Unlink(&m.buckets[bi], prev, node)
	m.size--
	return node.Value.Value, nil
}

// Clear removes every entry, and keeps the current bucket count.
func (m *HashMap[K, V]) Clear() {
	clear(m.buckets)
	m.size = 0
}

func (m *HashMap[K, V]) Len() int { return m.size }

func (m *HashMap[K, V]) IsEmpty() bool { return m.size == 0 }

// Buckets returns the current number of buckets.
func (m *HashMap[K, V]) Buckets() int { return len(m.buckets) }

// Load returns the ratio of entries to buckets.
func (m *HashMap[K, V]) Load() float64 { return float64(m.size) / float64(len(m.buckets)) }

func (m *HashMap[K, V]) LoadFactor() float64 { return m.loadFactor }

func (m *HashMap[K, V]) ElementType() elemtype.Type { return m.etype }

// Keys lists the keys in bucket order.
func (m *HashMap[K, V]) Keys() []K {
	out := make([]K, 0, m.size)
	for _, head := range m.buckets {
		for n := head; n != nil; n = n.Next {
			out = append(out, n.Value.Key)
		}
	}
	return out
}

// ToSlice lists the entries in bucket order, which is the order Keys lists them.
func (m *HashMap[K, V]) ToSlice() []datastruct.KV[K, V] {
	out := make([]datastruct.KV[K, V], 0, m.size)
	for _, head := range m.buckets {
		out = chain.AppendTo(out, head)
	}
	return out
}

func (m *HashMap[K, V]) Values() iter.Seq[datastruct.KV[K, V]] { return slices.Values(m.ToSlice()) }

func (m *HashMap[K, V]) Iterator() *snapshot.Iterator[datastruct.KV[K, V]] {
	return snapshot.Of(m.ToSlice())
}

func (m *HashMap[K, V]) String() string { return m.summary().String() }

func (m *HashMap[K, V]) SafeFormat(w redact.SafePrinter, r rune) { m.summary().SafeFormat(w, r) }

func (m *HashMap[K, V]) summary() datastruct.Summary {
	return datastruct.Summary{
		Kind:         "HashMap",
		CapacityName: "buckets",
		Capacity:     len(m.buckets),
		Size:         m.size,
		Type:         m.etype,
	}
}

func (m *HashMap[K, V]) index(key K) int {
	return int(m.hash(key) % uint64(len(m.buckets)))
}

func (m *HashMap[K, V]) matcher(key K) func(datastruct.KV[K, V]) bool {
	return func(kv datastruct.KV[K, V]) bool { return kv.Key == key }
}

func (m *HashMap[K, V]) find(key K) (prev, node *chain.Node[datastruct.KV[K, V]]) {
	return chain.Find(m.buckets[m.index(key)], m.matcher(key))
}

// insert adds an entry for a key known to be absent.
// Every allocation happens before the map is modified.
func (m *HashMap[K, V]) insert(key K, value V) error {
	node, err := chain.Prepend(m.alloc, nil, datastruct.KV[K, V]{Key: key, Value: value})
	if err != nil {
		m.warn(1, err)
		return err
	}
	if err := m.maybeRehash(); err != nil {
		return err
	}
	bi := m.index(key)
	node.Next = m.buckets[bi]
	m.buckets[bi] = node
	m.size++
	return nil
}

func (m *HashMap[K, V]) maybeRehash() error {
	from := len(m.buckets)
	if float64(m.size+1) <= float64(from)*m.loadFactor || datastruct.MaxBuckets <= from {
		return nil
	}
	to := min(from*2, datastruct.MaxBuckets)
	buckets, err := alloc.MakeSlice[*chain.Node[datastruct.KV[K, V]]](m.alloc, to)
	if err != nil {
		m.warn(to, err)
		return err
	}
	for _, head := range m.buckets {
		for n := head; n != nil; {
			next := n.Next
			bi := int(m.hash(n.Value.Key) % uint64(to))
			n.Next = buckets[bi]
			buckets[bi] = n
			n = next
		}
	}
	m.buckets = buckets
	if m.logger != nil {
		m.logger.Debug(context.Background(), "hash map rehashed",
			logging.Field("container", "HashMap"),
			logging.Field("from", from),
			logging.Field("to", to),
			logging.Field("size", m.size))
	}
	return nil
}

func (m *HashMap[K, V]) warn(n int, err error) {
	if m.logger == nil {
		return
	}
	m.logger.Warn(context.Background(), "hash map allocation refused",
		logging.Field("container", "HashMap"),
		logging.Field("length", n),
		logging.ErrField(err))
}
