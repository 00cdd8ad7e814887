package datastruct

import (
	"go.llib.dev/adt/pkg/alloc"
	"go.llib.dev/adt/pkg/elemtype"
	"go.llib.dev/frameless/pkg/logging"
	"go.llib.dev/frameless/pkg/zerokit"
	"go.llib.dev/frameless/port/option"
)

const (
	DefaultCapacity   = 25
	DefaultBuckets    = 16
	DefaultLoadFactor = 0.75
	// MaxBuckets is the upper bound of a hash map's bucket count.
	MaxBuckets = 1 << 27
)

// minLoadFactor is the smallest load factor accepted, anything below or NaN falls back to DefaultLoadFactor.
const minLoadFactor = 0.001

type Option interface {
	option.Option[Config]
}

// Config is the construction configuration shared by the containers.
// Each container reads only the fields that apply to it.
type Config struct {
	// Capacity is the initial number of slots of an array-backed container,
	// or the fixed bound of a bounded one.
	Capacity int
	// ElementType is the declared element type.
	// For a map it is the declared value type.
	ElementType elemtype.Type
	// Buckets is the initial bucket count of a hash map.
	Buckets int
	// LoadFactor is the size/buckets ratio above which a hash map rehashes.
	LoadFactor float64
	// Allocator gates every buffer and node acquisition.
	Allocator alloc.Allocator
	// Logger receives growth and allocation events.
	// A nil Logger keeps the container silent.
	Logger *logging.Logger
}

var _ Option = Config{}

func (c *Config) Init() {
	c.Capacity = DefaultCapacity
	c.Buckets = DefaultBuckets
	c.LoadFactor = DefaultLoadFactor
	c.Allocator = alloc.Default
}

func (c Config) Configure(o *Config) {
	o.Capacity = zerokit.Coalesce(c.Capacity, o.Capacity)
	o.Buckets = zerokit.Coalesce(c.Buckets, o.Buckets)
	o.LoadFactor = zerokit.Coalesce(c.LoadFactor, o.LoadFactor)
	o.Logger = zerokit.Coalesce(c.Logger, o.Logger)
	if !c.ElementType.IsZero() {
		o.ElementType = c.ElementType
	}
	if c.Allocator != nil {
		o.Allocator = c.Allocator
	}
}

func ToConfig(opts []Option) Config {
	c := option.ToConfig[Config](opts)
	if !(minLoadFactor <= c.LoadFactor) {
		c.LoadFactor = DefaultLoadFactor
	}
	if MaxBuckets < c.Buckets {
		c.Buckets = MaxBuckets
	}
	if c.Allocator == nil {
		c.Allocator = alloc.Default
	}
	return c
}

// CheckCapacity validates the configured Capacity.
func (c Config) CheckCapacity() error {
	if c.Capacity < 1 {
		return ErrInvalidCapacity.F("capacity must be at least 1, got %d", c.Capacity)
	}
	return nil
}

// CheckBuckets validates the configured Buckets.
func (c Config) CheckBuckets() error {
	if c.Buckets < 1 {
		return ErrInvalidCapacity.F("bucket count must be at least 1, got %d", c.Buckets)
	}
	return nil
}

func Capacity(n int) Option {
	return option.Func[Config](func(c *Config) { c.Capacity = n })
}

func ElementType(t elemtype.Type) Option {
	return option.Func[Config](func(c *Config) { c.ElementType = t })
}

func Buckets(n int) Option {
	return option.Func[Config](func(c *Config) { c.Buckets = n })
}

func LoadFactor(f float64) Option {
	return option.Func[Config](func(c *Config) { c.LoadFactor = f })
}

func Allocator(a alloc.Allocator) Option {
	return option.Func[Config](func(c *Config) { c.Allocator = a })
}

func Logger(l *logging.Logger) Option {
	return option.Func[Config](func(c *Config) { c.Logger = l })
}
