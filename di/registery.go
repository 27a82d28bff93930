package di

import "reflect"

// Registry is the assembly-time collection of factory entries.
//
// It is intentionally two-phase:
//   - assembly: Register / RegisterInstance / Use mutate the registry
//   - serving: New snapshots the entries into an immutable Container
//
// Registration is expected to be sequential and to finish before any
// resolution happens; the registry itself is not safe for concurrent
// mutation. The Container built from it is read-only and safe to share.
type Registry struct {
	entries   []*Factory
	providers map[reflect.Type]struct{}

	// provider types whose RegisterInto is currently on the stack; keeps a
	// provider that calls Use on its own type from recursing forever.
	registering map[reflect.Type]struct{}
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		providers:   make(map[reflect.Type]struct{}),
		registering: make(map[reflect.Type]struct{}),
	}
}

// Register adds a factory entry.
//
// Identity is (Service, Tag): registering a factory whose identity matches an
// existing entry replaces that entry in place, preserving its position in
// registration order. A distinct identity appends.
//
// It returns an error only for misuse: a nil factory, a zero service token,
// or a nil build function.
func (r *Registry) Register(f *Factory) error {
	if f == nil {
		return ErrNilFactory
	}
	if f.Service.IsZero() {
		return ErrZeroToken
	}
	if f.Build == nil {
		return ErrNilBuild
	}

	for i, existing := range r.entries {
		if existing.Service == f.Service && existing.Tag == f.Tag {
			r.entries[i] = f
			return nil
		}
	}
	r.entries = append(r.entries, f)
	return nil
}

// RegisterFunc registers a factory from its parts.
//
// It is shorthand for Register(&Factory{...}).
func (r *Registry) RegisterFunc(service Token, tag string, supports []Token, build BuildFunc) error {
	return r.Register(&Factory{Service: service, Tag: tag, Supports: supports, Build: build})
}

// RegisterInstance registers an already-constructed value.
//
// The concrete service token is derived from the value's dynamic type, and
// the wrapping factory's build step always succeeds and returns the value.
// The entry behaves like any other factory: same identity rules, same
// candidate matching, same caching.
func (r *Registry) RegisterInstance(value any, tag string, supports ...Token) error {
	service := TokenOf(value)
	if service.IsZero() {
		return ErrZeroToken
	}
	return r.Register(&Factory{
		Service:  service,
		Tag:      tag,
		Supports: supports,
		Build:    func(*Container) (any, error) { return value, nil },
	})
}

// Matching returns, in registration order, every entry whose Service equals
// iface or whose Supports set contains iface. It is side-effect free; the
// returned slice is the caller's to keep.
func (r *Registry) Matching(iface Token) []*Factory {
	return matching(r.entries, iface)
}

// Bound reports whether at least one entry satisfies iface.
func (r *Registry) Bound(iface Token) bool {
	for _, f := range r.entries {
		if f.Satisfies(iface) {
			return true
		}
	}
	return false
}

// Tokens returns the distinct concrete service tokens in registration order.
// Useful for debugging what has been assembled.
func (r *Registry) Tokens() []Token {
	seen := make(map[Token]struct{}, len(r.entries))
	out := make([]Token, 0, len(r.entries))
	for _, f := range r.entries {
		if _, ok := seen[f.Service]; ok {
			continue
		}
		seen[f.Service] = struct{}{}
		out = append(out, f.Service)
	}
	return out
}

// snapshot returns a copy of the entry list for a container to freeze.
func (r *Registry) snapshot() []*Factory {
	out := make([]*Factory, len(r.entries))
	copy(out, r.entries)
	return out
}
