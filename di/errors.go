package di

import (
	"errors"
	"strconv"
)

var (
	// ErrNilFactory is returned when Register is called with a nil factory.
	ErrNilFactory = errors.New("di: nil factory")

	// ErrNilBuild is returned when a factory is registered without a build function.
	ErrNilBuild = errors.New("di: nil build function")

	// ErrZeroToken is returned when a zero Token is used where a real type
	// identity is required (service token on registration, interface token
	// on resolution).
	ErrZeroToken = errors.New("di: zero type token")

	// ErrNilProvider is returned when Use is called with a nil provider.
	ErrNilProvider = errors.New("di: nil provider")
)

// NoCandidatesError is returned by Make when no registered factory satisfies
// the requested interface token.
//
// The failure is cached per (interface, client) pair, so repeated requests
// for a never-registered interface replay this error without re-scanning the
// factory list.
type NoCandidatesError struct {
	// Interface is the requested interface token.
	Interface Token
}

// Error implements the error interface.
func (e NoCandidatesError) Error() string {
	// Example: di: no factory registered for "examples.Mailer"; register one with Register or RegisterInstance before building the container
	return "di: no factory registered for " + strconv.Quote(e.Interface.String()) +
		"; register one with Register or RegisterInstance before building the container"
}

// AmbiguousError is returned when more than one factory satisfies a requested
// interface and the policy could not narrow the field to a single candidate.
//
// It is the failure produced by StrictPolicy and by TagPolicy's fallback; a
// custom Policy may return its own error instead, which the engine propagates
// verbatim.
type AmbiguousError struct {
	// Interface is the requested interface token.
	Interface Token

	// Count is the number of matching candidates.
	Count int

	// Tags lists the candidates' tags in registration order; untagged
	// candidates appear as the empty string.
	Tags []string
}

// Error implements the error interface.
func (e AmbiguousError) Error() string {
	// Example: di: ambiguous resolution for "examples.Logger": 2 candidates (tags "", "debug"); disambiguate with a tag or a custom policy
	msg := "di: ambiguous resolution for " + strconv.Quote(e.Interface.String()) +
		": " + strconv.Itoa(e.Count) + " candidates"
	if len(e.Tags) > 0 {
		msg += " (tags"
		for i, tag := range e.Tags {
			if i > 0 {
				msg += ","
			}
			msg += " " + strconv.Quote(tag)
		}
		msg += ")"
	}
	return msg + "; disambiguate with a tag or a custom policy"
}

// RejectedError is returned when the policy's approval step vetoed an
// otherwise-valid choice. The policy's own error is available via Unwrap.
type RejectedError struct {
	// Interface is the requested interface token.
	Interface Token

	// Cause is the veto returned by Policy.Approve.
	Cause error
}

// Error implements the error interface.
func (e RejectedError) Error() string {
	return "di: resolution of " + strconv.Quote(e.Interface.String()) + " rejected by policy: " + e.Cause.Error()
}

// Unwrap returns the policy's veto.
func (e RejectedError) Unwrap() error { return e.Cause }

// ConstructionError is returned when the chosen factory's build step failed.
// The underlying failure is available via Unwrap.
//
// Construction failures are cached in the singleton tier: the factory is not
// re-invoked on later resolutions of the same concrete type.
type ConstructionError struct {
	// Service is the concrete service token whose construction failed.
	Service Token

	// Cause is the error returned by the factory's build function.
	Cause error
}

// Error implements the error interface.
func (e ConstructionError) Error() string {
	return "di: construction of " + strconv.Quote(e.Service.String()) + " failed: " + e.Cause.Error()
}

// Unwrap returns the factory's build error.
func (e ConstructionError) Unwrap() error { return e.Cause }

// TypeMismatchError is returned by the typed façade (MakeAs) when the resolved
// value does not convert to the caller's expected type.
//
// This indicates a registration bug: a factory claims to support an interface
// but builds a value that does not implement it.
type TypeMismatchError struct {
	// Interface is the requested interface token.
	Interface Token

	// GotType is the dynamic type of the value the engine resolved.
	GotType string
}

// Error implements the error interface.
func (e TypeMismatchError) Error() string {
	return "di: resolved value for " + strconv.Quote(e.Interface.String()) +
		" has wrong type (" + e.GotType + ")"
}
