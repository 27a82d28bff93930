// Package odc is an opinionated dependency-resolution container for Go.
//
// Where its sibling odi keeps wiring fully explicit in the composition root,
// odc adds the container: factories are registered (directly or through
// providers) into an assembly-time registry, frozen into an immutable
// container, and resolved on demand with pluggable disambiguation and
// two-tier outcome caching (per interface/client, and per concrete type).
//
// See subpackages:
//   - di: the container library (registry, policy, engine, caches)
//   - examples/*: runnable wiring demos, including a chi-based web service
package odc
