package di

import "reflect"

// Provider bulk-registers related factories during container assembly.
//
// Providers are the composition-root building block: each one owns the
// registrations for a cohesive slice of the application (logging, storage,
// transport, ...) and is handed the registry once, via Use.
//
// Example:
//
//	type LoggingProvider struct{}
//
//	func (LoggingProvider) RegisterInto(r *di.Registry) error {
//	    return r.RegisterFunc(consoleTok, "", []di.Token{loggerTok}, newConsoleLogger)
//	}
type Provider interface {
	RegisterInto(r *Registry) error
}

// Use runs a provider's registrations against the registry.
//
// At most one provider per runtime type may be registered: a second Use with
// a provider of an already-seen type is a silent no-op, so composition roots
// can layer provider lists without double-registration bookkeeping.
//
// If RegisterInto fails, the failure propagates and the provider is NOT
// recorded as registered — a corrected retry will run it again. A provider
// whose RegisterInto re-enters Use with its own type gets the same no-op
// treatment as an already-registered one, so the call terminates.
func (r *Registry) Use(p Provider) error {
	if p == nil {
		return ErrNilProvider
	}

	pt := reflect.TypeOf(p)
	if _, ok := r.providers[pt]; ok {
		return nil
	}
	if _, ok := r.registering[pt]; ok {
		return nil
	}

	r.registering[pt] = struct{}{}
	err := p.RegisterInto(r)
	delete(r.registering, pt)
	if err != nil {
		return err
	}

	r.providers[pt] = struct{}{}
	return nil
}
