// Package machine implements the evaluation engine: the environment,
// logic-variable and suspension stores, value-closure resolution,
// unification, the machine step relation and the fuel-bounded driver
// (spec.md §3-§5, §4.2-§4.8 — this package is THE CORE).
package machine

import "flp/internal/cbpv"

// Ident is a fresh, monotonically assigned identifier used by both the
// logic store and the suspension store (spec §3).
type Ident int

// Env is a persistent, immutable sequence of value-closures. Index 0 is
// the most recently bound entry; extension prepends and never mutates
// the parent, so sibling branches can share an environment lineage at
// zero cost (spec §4.3).
type Env struct {
	head VClosure
	tail *Env
	size int
}

// EmptyEnv returns the environment with no bindings.
func EmptyEnv() *Env { return nil }

func (e *Env) Size() int {
	if e == nil {
		return 0
	}
	return e.size
}

// Lookup returns the i-th value-closure from the front, or false if i
// is out of range (a violation of invariant I1 at the call site).
func (e *Env) Lookup(i int) (VClosure, bool) {
	for cur := e; cur != nil; cur = cur.tail {
		if i == 0 {
			return cur.head, true
		}
		i--
	}
	return nil, false
}

func (e *Env) extend(vc VClosure) *Env {
	return &Env{head: vc, tail: e, size: e.Size() + 1}
}

// ExtendVal extends e with a value closed under venv.
func (e *Env) ExtendVal(val cbpv.Value, venv *Env) *Env {
	return e.extend(Clos(val, venv))
}

// ExtendClos extends e with an already-built value-closure.
func (e *Env) ExtendClos(vc VClosure) *Env {
	return e.extend(vc)
}

// ExtendLVar extends e with a reference to a logic-store entry.
func (e *Env) ExtendLVar(ident Ident) *Env {
	return e.extend(LogicVarRef(ident))
}

// ExtendSusp extends e with a reference to a suspension-store entry.
func (e *Env) ExtendSusp(ident Ident) *Env {
	return e.extend(SuspRef(ident))
}
