package machine

import "flp/internal/cbpv"

// pendingComp is a suspended computation paired with the environment it
// must run in once forced (spec §3 "Suspension store").
type pendingComp struct {
	Comp cbpv.Computation
	Env  *Env
}

type suspEntry struct {
	bound   VClosure
	pending *pendingComp
}

// SuspEnv is the mutable map from suspension identifier to either a
// bound value-closure (a "value suspension") or a pending computation
// (spec §3, §4.5). Entries are monotone (invariant I3): a pending
// entry becomes bound exactly once, when its computation reaches
// Return.
type SuspEnv struct {
	entries []suspEntry
}

// NewSuspEnv returns an empty suspension store.
func NewSuspEnv() *SuspEnv { return &SuspEnv{} }

// Fresh allocates a new pending suspension bound to (comp, env).
func (s *SuspEnv) Fresh(comp cbpv.Computation, env *Env) Ident {
	ident := Ident(len(s.entries))
	s.entries = append(s.entries, suspEntry{pending: &pendingComp{Comp: comp, Env: env}})
	return ident
}

// Lookup returns ident's bound value-closure, or its pending
// computation if it has not yet been forced to completion.
func (s *SuspEnv) Lookup(ident Ident) (bound VClosure, pending *pendingComp, err error) {
	if int(ident) >= len(s.entries) {
		return nil, nil, structErr("unknown suspension identifier %d", ident)
	}
	e := s.entries[ident]
	if e.pending != nil {
		return nil, e.pending, nil
	}
	return e.bound, nil, nil
}

// Set binds ident to a resolved value-closure, completing its
// suspension (spec §4.5 "Set" frame semantics).
func (s *SuspEnv) Set(ident Ident, vc VClosure) {
	s.entries[ident] = suspEntry{bound: vc}
}

// Clone deep-copies the store for branch isolation (spec I6).
func (s *SuspEnv) Clone() *SuspEnv {
	entries := make([]suspEntry, len(s.entries))
	copy(entries, s.entries)
	return &SuspEnv{entries: entries}
}
