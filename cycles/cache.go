package cycles

import "github.com/katalvlaran/potflow/network"

// Cache memoizes the basis of the most recent instance. A lookup hits only
// when both the instance pointer and its Version match; anything else
// rebuilds. A Cache is not safe for concurrent use.
type Cache struct {
	opts   []Option
	inst   *network.Instance
	basis  *Basis
	builds int
}

// NewCache returns an empty cache that builds with opts.
func NewCache(opts ...Option) *Cache {
	return &Cache{opts: opts}
}

// Basis returns the memoized basis of in, building it on a miss.
func (c *Cache) Basis(in *network.Instance) (*Basis, error) {
	if in == nil {
		return nil, ErrNilInstance
	}
	if c.inst == in && c.basis != nil && c.basis.Version == in.Version() {
		return c.basis, nil
	}

	b, err := Build(in, c.opts...)
	if err != nil {
		return nil, err
	}
	c.inst, c.basis = in, b
	c.builds++

	return b, nil
}

// Builds reports how many times the cache had to rebuild.
func (c *Cache) Builds() int { return c.builds }
