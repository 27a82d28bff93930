// Package clash exists for tests: together with its sibling under beta it
// provides two distinct types whose reflect string forms are identical.
package clash

// Svc is a minimal concrete service type.
type Svc struct {
	Name string
}
