package di

import (
	"reflect"
	"strconv"
	"sync"
	"sync/atomic"
)

// Token is an opaque, comparable identifier for a type.
//
// Tokens are the unit of lookup and cache keying inside the container:
// factories declare the concrete type they produce and the interfaces they
// satisfy as Tokens, and resolution requests name the wanted interface and
// the requesting client as Tokens.
//
// A Token captures its type descriptor once, at the point TokenFor / TokenOf
// is called (normally during registration). Lookups only ever compare Tokens;
// no value is reflected over at resolution time.
//
// Tokens are comparable and usable as map keys. The zero Token identifies
// nothing: it is rejected wherever a service identity is required (service
// token on registration, interface token on Make). As a client token it is
// permitted and acts as a shared anonymous client.
type Token struct {
	typ reflect.Type
}

// TokenFor returns the Token identifying type T.
//
// T may be an interface or a concrete type:
//
//	var loggerTok = di.TokenFor[Logger]()        // interface token
//	var consoleTok = di.TokenFor[*ConsoleLogger]() // concrete token
//
// Calling TokenFor twice for the same T yields equal Tokens.
func TokenFor[T any]() Token {
	return Token{typ: reflect.TypeOf((*T)(nil)).Elem()}
}

// TokenOf returns the Token for v's dynamic type.
//
// It is used by RegisterInstance to derive the concrete service token from an
// already-constructed value. TokenOf(nil) returns the zero Token.
func TokenOf(v any) Token {
	return Token{typ: reflect.TypeOf(v)}
}

// IsZero reports whether the Token identifies no type.
func (t Token) IsZero() bool { return t.typ == nil }

// String returns a human-readable description of the identified type,
// e.g. "examples.Logger" or "*examples.ConsoleLogger".
func (t Token) String() string {
	if t.typ == nil {
		return "<zero token>"
	}
	return t.typ.String()
}

// typeIDs assigns each distinct reflect.Type an opaque, process-unique id.
// Name-based keys are not enough: reflect.Type.String() keeps only the last
// package-path element, and pointer and unnamed types have no PkgPath, so
// identically named types from identically named packages would collide.
var (
	typeIDs    sync.Map // reflect.Type -> string
	nextTypeID atomic.Uint64
)

// key returns a stable, collision-free string form used by the per-client
// cache tier. Keys are opaque; Token.String remains the readable form.
func (t Token) key() string {
	if t.typ == nil {
		return ""
	}
	if id, ok := typeIDs.Load(t.typ); ok {
		return id.(string)
	}
	id := "t#" + strconv.FormatUint(nextTypeID.Add(1), 10)
	actual, _ := typeIDs.LoadOrStore(t.typ, id)
	return actual.(string)
}
