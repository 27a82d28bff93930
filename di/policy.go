package di

// Policy decides which candidate wins when several factories satisfy a
// requested interface, and gets a final say before any construction happens.
//
// Choose is invoked only when more than one candidate matched; it must pick
// exactly one entry from the list or fail. Approve is invoked exactly once
// per fresh resolution, even when there was only one candidate and Choose was
// skipped — it is a universal checkpoint, not a disambiguation-path one, and
// may veto an otherwise-valid resolution.
//
// Both hooks receive the container (read-only) and the requesting client
// token, so a policy can make per-client decisions.
type Policy interface {
	Choose(candidates []*Factory, iface Token, c *Container, client Token) (*Factory, error)
	Approve(chosen *Factory, iface Token, c *Container, client Token) error
}

// StrictPolicy is the minimal conforming policy: any ambiguity is an error,
// and every unambiguous choice is approved.
//
// It is the container default.
type StrictPolicy struct{}

// Choose fails with AmbiguousError describing the candidate set.
func (StrictPolicy) Choose(candidates []*Factory, iface Token, _ *Container, _ Token) (*Factory, error) {
	return nil, ambiguous(candidates, iface)
}

// Approve always passes.
func (StrictPolicy) Approve(*Factory, Token, *Container, Token) error { return nil }

// TagPolicy narrows ambiguous candidate sets by exact tag match before
// choosing.
//
// The preferred tag is looked up per requesting client first, then per
// requested interface; the more specific client preference wins. If narrowing
// leaves exactly one candidate it is chosen; otherwise the decision is
// delegated to Fallback (StrictPolicy when nil), with the narrowed set when
// narrowing matched anything and the original set when it matched nothing.
//
// Preferences are normally assembled with the chaining helpers:
//
//	policy := di.NewTagPolicy().
//	    Prefer(loggerTok, "debug").
//	    PreferFor(jobWorkerTok, "buffered")
type TagPolicy struct {
	// Interfaces maps an interface token to its preferred tag.
	Interfaces map[Token]string

	// Clients maps a client token to its preferred tag.
	Clients map[Token]string

	// Fallback handles still-ambiguous sets and approval. Nil means StrictPolicy.
	Fallback Policy
}

// NewTagPolicy creates an empty TagPolicy.
func NewTagPolicy() *TagPolicy {
	return &TagPolicy{
		Interfaces: make(map[Token]string),
		Clients:    make(map[Token]string),
	}
}

// Prefer records a preferred tag for an interface token and returns the
// policy for chaining.
func (p *TagPolicy) Prefer(iface Token, tag string) *TagPolicy {
	if p.Interfaces == nil {
		p.Interfaces = make(map[Token]string)
	}
	p.Interfaces[iface] = tag
	return p
}

// PreferFor records a preferred tag for a client token and returns the
// policy for chaining.
func (p *TagPolicy) PreferFor(client Token, tag string) *TagPolicy {
	if p.Clients == nil {
		p.Clients = make(map[Token]string)
	}
	p.Clients[client] = tag
	return p
}

// Choose implements Policy.
func (p *TagPolicy) Choose(candidates []*Factory, iface Token, c *Container, client Token) (*Factory, error) {
	tag, ok := p.Clients[client]
	if !ok {
		tag, ok = p.Interfaces[iface]
	}

	if ok {
		var narrowed []*Factory
		for _, f := range candidates {
			if f.Tag == tag {
				narrowed = append(narrowed, f)
			}
		}
		if len(narrowed) == 1 {
			return narrowed[0], nil
		}
		if len(narrowed) > 1 {
			candidates = narrowed
		}
	}

	return p.fallback().Choose(candidates, iface, c, client)
}

// Approve implements Policy by delegating to the fallback.
func (p *TagPolicy) Approve(chosen *Factory, iface Token, c *Container, client Token) error {
	return p.fallback().Approve(chosen, iface, c, client)
}

func (p *TagPolicy) fallback() Policy {
	if p.Fallback != nil {
		return p.Fallback
	}
	return StrictPolicy{}
}

// PolicyFuncs adapts plain functions into a Policy; nil fields fall back to
// StrictPolicy behavior. Handy in tests and for one-off overrides.
type PolicyFuncs struct {
	ChooseFn  func(candidates []*Factory, iface Token, c *Container, client Token) (*Factory, error)
	ApproveFn func(chosen *Factory, iface Token, c *Container, client Token) error
}

// Choose implements Policy.
func (p PolicyFuncs) Choose(candidates []*Factory, iface Token, c *Container, client Token) (*Factory, error) {
	if p.ChooseFn == nil {
		return StrictPolicy{}.Choose(candidates, iface, c, client)
	}
	return p.ChooseFn(candidates, iface, c, client)
}

// Approve implements Policy.
func (p PolicyFuncs) Approve(chosen *Factory, iface Token, c *Container, client Token) error {
	if p.ApproveFn == nil {
		return nil
	}
	return p.ApproveFn(chosen, iface, c, client)
}

// ambiguous builds the AmbiguousError for a candidate set.
func ambiguous(candidates []*Factory, iface Token) error {
	tags := make([]string, len(candidates))
	for i, f := range candidates {
		tags[i] = f.Tag
	}
	return AmbiguousError{Interface: iface, Count: len(candidates), Tags: tags}
}
