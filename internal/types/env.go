package types

import "github.com/benbjohnson/immutable"

var emptyEnv = immutable.NewSortedMap(nil)

// Env is the checker's persistent, structurally shared name -> Scheme type
// environment (component I). Grounded on
// _examples/wdamron-poly/types/type_map.go's TypeMap/TypeMapBuilder pattern,
// simplified from a name -> list-of-types multimap to a name -> single
// Scheme map, since the checker's environment always resolves a name to
// exactly one active scheme (the innermost declaration shadows outer ones).
type Env struct {
	m *immutable.SortedMap
}

// NewEnv returns the empty environment.
func NewEnv() Env { return Env{emptyEnv} }

// Get looks up a name's scheme.
func (e Env) Get(name string) (*Scheme, bool) {
	if e.m == nil {
		return nil, false
	}
	v, ok := e.m.Get(name)
	if !ok {
		return nil, false
	}
	return v.(*Scheme), true
}

// Builder returns a builder seeded with this environment's entries.
func (e Env) Builder() EnvBuilder {
	m := e.m
	if m == nil {
		m = emptyEnv
	}
	return EnvBuilder{immutable.NewSortedMapBuilder(m)}
}

// EnvBuilder enables in-place updates before finalizing a new Env, leaving
// prior Env values untouched (persistent update).
type EnvBuilder struct {
	b *immutable.SortedMapBuilder
}

// NewEnvBuilder returns a builder over the empty environment.
func NewEnvBuilder() EnvBuilder { return EnvBuilder{immutable.NewSortedMapBuilder(emptyEnv)} }

// Set binds name to scheme in the builder.
func (b EnvBuilder) Set(name string, s *Scheme) EnvBuilder {
	b.b.Set(name, s)
	return b
}

// Build finalizes the builder into an immutable Env.
func (b EnvBuilder) Build() Env { return Env{b.b.Map()} }

// Range visits every entry in the environment in name order.
func (e Env) Range(f func(string, *Scheme) bool) {
	if e.m == nil {
		return
	}
	iter := e.m.Iterator()
	for !iter.Done() {
		k, v := iter.Next()
		if !f(k.(string), v.(*Scheme)) {
			return
		}
	}
}
