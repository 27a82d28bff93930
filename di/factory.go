package di

// BuildFunc constructs a service value. It receives the container so the
// factory can resolve its own dependencies through the same engine.
//
// The engine treats a build as opaque and atomic: it either returns a value
// or an error, and whichever it returns is cached as the concrete type's
// singleton outcome for the container's lifetime.
type BuildFunc func(c *Container) (any, error)

// Factory describes one registered way of producing a service.
//
// Service is the concrete type token the factory produces. Tag is an optional
// disambiguating label; (Service, Tag) is the factory's identity for
// replacement purposes. Supports lists the interface tokens the factory can
// satisfy in addition to Service — a factory always implicitly satisfies its
// own Service token.
//
// Supports is fixed at registration time; the engine never mutates it.
type Factory struct {
	Service  Token
	Tag      string
	Supports []Token
	Build    BuildFunc
}

// Satisfies reports whether the factory can serve the given interface token.
func (f *Factory) Satisfies(iface Token) bool {
	if f.Service == iface {
		return true
	}
	for _, t := range f.Supports {
		if t == iface {
			return true
		}
	}
	return false
}

// matching filters entries to those satisfying iface, preserving order.
func matching(entries []*Factory, iface Token) []*Factory {
	var out []*Factory
	for _, f := range entries {
		if f.Satisfies(iface) {
			out = append(out, f)
		}
	}
	return out
}
