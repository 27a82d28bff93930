package di

// Container is the resolution engine: an immutable snapshot of an assembled
// registry, a disambiguation policy, and the two cache tiers.
//
// A container is created from a registry with New and never mutated
// afterwards; its caches fill lazily as resolutions happen and live until the
// container is dropped. Resolution is safe for concurrent use.
type Container struct {
	entries    []*Factory
	policy     Policy
	clients    *clientCache
	singletons *singletonCache
}

// Option configures a Container at construction time.
type Option func(*Container)

// WithPolicy installs a disambiguation policy. The default is StrictPolicy.
func WithPolicy(p Policy) Option {
	return func(c *Container) {
		if p != nil {
			c.policy = p
		}
	}
}

// New freezes the registry into a serving container.
//
// The entry list is copied: later registry mutations do not leak into the
// container. Registration after New simply does not affect this container —
// build a new one instead.
func New(r *Registry, opts ...Option) *Container {
	c := &Container{
		policy:     StrictPolicy{},
		clients:    newClientCache(),
		singletons: newSingletonCache(),
	}
	if r != nil {
		c.entries = r.snapshot()
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Make resolves the implementation of iface usable by client.
//
// Resolution order:
//  1. replay a cached outcome for (iface, client) if one exists
//  2. collect candidates in registration order
//  3. none: fail with NoCandidatesError (cached per-client only)
//  4. several: ask the policy to choose; its failure is cached and returned
//  5. approve the choice — always, even for a lone candidate; a veto is
//     cached as RejectedError
//  6. reuse the concrete type's singleton outcome if it exists
//  7. otherwise build once, cache the outcome (success or failure) in the
//     singleton tier, and mirror it per-client
//
// Every failure kind is terminal and cached: repeated identical requests fail
// identically without repeating the work that produced the failure.
func (c *Container) Make(iface, client Token) (any, error) {
	if iface.IsZero() {
		return nil, ErrZeroToken
	}

	key := clientKey(iface, client)
	if out, ok := c.clients.get(key); ok {
		return out.unwrap()
	}

	candidates := matching(c.entries, iface)
	if len(candidates) == 0 {
		return c.fail(key, NoCandidatesError{Interface: iface})
	}

	chosen := candidates[0]
	if len(candidates) > 1 {
		var err error
		chosen, err = c.policy.Choose(candidates, iface, c, client)
		if err != nil {
			return c.fail(key, err)
		}
		if chosen == nil {
			// A policy that returns neither a choice nor an error is broken;
			// surface that as ambiguity rather than dereferencing nil.
			return c.fail(key, ambiguous(candidates, iface))
		}
	}

	if err := c.policy.Approve(chosen, iface, c, client); err != nil {
		return c.fail(key, RejectedError{Interface: iface, Cause: err})
	}

	out := c.singletons.resolve(chosen.Service, func() (any, error) {
		v, err := chosen.Build(c)
		if err != nil {
			return nil, ConstructionError{Service: chosen.Service, Cause: err}
		}
		return v, nil
	})

	return c.clients.put(key, out).unwrap()
}

// fail caches err under the per-client key and returns the authoritative
// stored failure (first write wins under concurrency).
func (c *Container) fail(key string, err error) (any, error) {
	return c.clients.put(key, failure(err)).unwrap()
}

// Resolved reports whether (iface, client) already has a cached outcome,
// successful or failed.
func (c *Container) Resolved(iface, client Token) bool {
	_, ok := c.clients.get(clientKey(iface, client))
	return ok
}

// Bound reports whether at least one frozen entry satisfies iface.
func (c *Container) Bound(iface Token) bool {
	return len(matching(c.entries, iface)) > 0
}

// MakeAs resolves the implementation of T usable by client and converts the
// result.
//
// A failed conversion yields TypeMismatchError: the registration claimed an
// interface its product does not implement. The engine outcome itself stays
// cached; only the downcast is repeated on retry.
func MakeAs[T any](c *Container, client Token) (T, error) {
	var zero T

	iface := TokenFor[T]()
	v, err := c.Make(iface, client)
	if err != nil {
		return zero, err
	}

	typed, ok := v.(T)
	if !ok {
		return zero, TypeMismatchError{Interface: iface, GotType: TokenOf(v).String()}
	}
	return typed, nil
}

// MustMakeAs is like MakeAs but panics on error.
//
// Useful in composition roots and tests where a failed resolution should
// fail fast.
func MustMakeAs[T any](c *Container, client Token) T {
	v, err := MakeAs[T](c, client)
	if err != nil {
		panic(err)
	}
	return v
}
