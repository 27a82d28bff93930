// Package di is a runtime dependency-resolution container.
//
// Callers ask for "the implementation of interface X usable by client C"; the
// container finds the candidate factories, disambiguates when several match,
// constructs the winner, and caches the result so repeat resolutions are
// cheap and deterministic.
//
// The moving parts:
//
//   - Token — an opaque, comparable type identity (TokenFor[T]()), the unit
//     of lookup and cache keying.
//   - Registry — the assembly-time, ordered collection of Factory entries,
//     with replace-in-place identity on (service, tag) and provider bootstrap
//     via Use.
//   - Policy — the pluggable disambiguation strategy: Choose picks one of
//     several candidates, Approve gets a final veto on every resolution.
//     StrictPolicy (error on ambiguity) is the default; TagPolicy narrows by
//     preferred tag per interface or per client.
//   - Container — the frozen, serving form: Make / MakeAs / MustMakeAs plus
//     two cache tiers. The per-client tier memoizes the outcome each
//     (interface, client) pair observed; the singleton tier guarantees each
//     concrete type is constructed at most once per container, successes and
//     failures alike.
//
// Failures are cached like successes: a factory that blew up once is not
// re-invoked on retry, the same error replays instead. Fresh state means a
// fresh container.
//
// Assembly is sequential and finishes before serving starts:
//
//	reg := di.NewRegistry()
//	_ = reg.Use(LoggingProvider{})
//	_ = reg.RegisterInstance(cfg, "", di.TokenFor[Config]())
//
//	c := di.New(reg, di.WithPolicy(di.NewTagPolicy().Prefer(loggerTok, "debug")))
//	logger, err := di.MakeAs[Logger](c, di.TokenFor[ClientX]())
//
// Import
//
//	"github.com/sghaida/odc/di"
package di
