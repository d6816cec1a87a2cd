package machine

import (
	"fmt"

	"flp/internal/cbpv"
)

// VClosure is the closure form travelling through the machine: a value
// paired with the environment it is closed under, or a reference into
// the logic store or the suspension store (spec §3).
type VClosure interface {
	isVClosure()
}

func (*ClosVC) isVClosure()     {}
func (*LogicVarVC) isVClosure() {}
func (*SuspVC) isVClosure()     {}

// ClosVC is a value in an environment.
type ClosVC struct {
	Val cbpv.Value
	Env *Env
}

// LogicVarVC references an entry in the logic store.
type LogicVarVC struct{ Ident Ident }

// SuspVC references an entry in the suspension store.
type SuspVC struct{ Ident Ident }

func Clos(val cbpv.Value, env *Env) VClosure   { return &ClosVC{Val: val, Env: env} }
func LogicVarRef(ident Ident) VClosure          { return &LogicVarVC{Ident: ident} }
func SuspRef(ident Ident) VClosure              { return &SuspVC{Ident: ident} }

// SuspRequest is returned by CloseHead/unify when resolution is blocked
// on a pending suspension: the caller must force ident's computation
// before it can make further progress (spec §4.1(c), §4.5).
type SuspRequest struct {
	Ident Ident
	Comp  cbpv.Computation
	Env   *Env
}

// StructuralError signals an ill-formed IR or impossible machine state
// (spec §7, error kind 1): these are fatal and propagate to the CLI.
type StructuralError struct{ Msg string }

func (e *StructuralError) Error() string { return e.Msg }

func structErr(format string, args ...any) error {
	return &StructuralError{Msg: fmt.Sprintf(format, args...)}
}

// CloseHead resolves vc until its outermost shape is either a Clos
// whose value is not Var(_), an unbound LogicVarVC, or — when it fails
// — a pending SuspVC (spec §4.1, `close_head`).
func CloseHead(vc VClosure, lenv *LogicEnv, senv *SuspEnv) (VClosure, *SuspRequest, error) {
	for {
		switch x := vc.(type) {
		case *ClosVC:
			v, ok := x.Val.(*cbpv.VarValue)
			if !ok {
				return vc, nil, nil
			}
			next, ok := x.Env.Lookup(v.Index)
			if !ok {
				return nil, nil, structErr("de Bruijn index %d out of range", v.Index)
			}
			vc = next
		case *LogicVarVC:
			bound, ok := lenv.Lookup(x.Ident)
			if !ok {
				return vc, nil, nil
			}
			vc = bound
		case *SuspVC:
			bound, pending, err := senv.Lookup(x.Ident)
			if err != nil {
				return nil, nil, err
			}
			if pending != nil {
				return nil, &SuspRequest{Ident: x.Ident, Comp: pending.Comp, Env: pending.Env}, nil
			}
			vc = bound
		default:
			return nil, nil, structErr("unknown value-closure variant %T", vc)
		}
	}
}

// OccursLVar checks whether ident occurs in the head-closed transitive
// form of vc, never descending into thunks (spec §4.1 "Occurs check").
// Like CloseHead and Unify, it can find a sub-position blocked on a
// pending suspension — unifying a fresh variable against a structure
// that embeds a not-yet-forced Bind is a normal program, not an
// ill-formed one — so it returns a *SuspRequest for the caller
// (stepEquate, via Unify) to force, exactly as Unify's own worklist
// does, instead of aborting.
func OccursLVar(vc VClosure, ident Ident, lenv *LogicEnv, senv *SuspEnv) (bool, *SuspRequest, error) {
	head, req, err := CloseHead(vc, lenv, senv)
	if err != nil {
		return false, nil, err
	}
	if req != nil {
		return false, req, nil
	}
	switch x := head.(type) {
	case *ClosVC:
		switch v := x.Val.(type) {
		case *cbpv.SuccValue:
			return OccursLVar(Clos(v.Pred, x.Env), ident, lenv, senv)
		case *cbpv.ConsValue:
			h, req, err := OccursLVar(Clos(v.Head, x.Env), ident, lenv, senv)
			if err != nil || req != nil || h {
				return h, req, err
			}
			return OccursLVar(Clos(v.Tail, x.Env), ident, lenv, senv)
		case *cbpv.PairValue:
			h, req, err := OccursLVar(Clos(v.Fst, x.Env), ident, lenv, senv)
			if err != nil || req != nil || h {
				return h, req, err
			}
			return OccursLVar(Clos(v.Snd, x.Env), ident, lenv, senv)
		case *cbpv.InlValue:
			return OccursLVar(Clos(v.Val, x.Env), ident, lenv, senv)
		case *cbpv.InrValue:
			return OccursLVar(Clos(v.Val, x.Env), ident, lenv, senv)
		case *cbpv.VarValue:
			return false, nil, structErr("value should already be head-closed in occurs check")
		case *cbpv.ThunkValue:
			return false, nil, structErr("occurs check must not descend into a thunk")
		default:
			return false, nil, nil
		}
	case *LogicVarVC:
		return lenv.Representative(x.Ident) == lenv.Representative(ident), nil, nil
	default:
		return false, nil, structErr("occurs check met an unresolved closure shape %T", head)
	}
}

// CloseVal fully closes a value-closure to a ground cbpv.Value. It is
// used on the answers of done machines (spec §4.1, §4.8). If symbolic
// is true, an unbound logic variable closes to a cbpv.FreeVarValue
// marker instead of erroring — the driver's documented policy for the
// open question in spec §9.
func CloseVal(vc VClosure, lenv *LogicEnv, senv *SuspEnv, symbolic bool) (cbpv.Value, error) {
	switch x := vc.(type) {
	case *ClosVC:
		switch v := x.Val.(type) {
		case *cbpv.VarValue:
			next, ok := x.Env.Lookup(v.Index)
			if !ok {
				return nil, structErr("de Bruijn index %d out of range", v.Index)
			}
			return CloseVal(next, lenv, senv, symbolic)
		case cbpv.ZeroValue:
			return cbpv.Zero(), nil
		case *cbpv.SuccValue:
			inner, err := CloseVal(Clos(v.Pred, x.Env), lenv, senv, symbolic)
			if err != nil {
				return nil, err
			}
			return cbpv.Succ(inner), nil
		case cbpv.NilValue:
			return cbpv.Nil(), nil
		case *cbpv.ConsValue:
			h, err := CloseVal(Clos(v.Head, x.Env), lenv, senv, symbolic)
			if err != nil {
				return nil, err
			}
			t, err := CloseVal(Clos(v.Tail, x.Env), lenv, senv, symbolic)
			if err != nil {
				return nil, err
			}
			return cbpv.Cons(h, t), nil
		case *cbpv.PairValue:
			f, err := CloseVal(Clos(v.Fst, x.Env), lenv, senv, symbolic)
			if err != nil {
				return nil, err
			}
			s, err := CloseVal(Clos(v.Snd, x.Env), lenv, senv, symbolic)
			if err != nil {
				return nil, err
			}
			return cbpv.Pair(f, s), nil
		case *cbpv.InlValue:
			inner, err := CloseVal(Clos(v.Val, x.Env), lenv, senv, symbolic)
			if err != nil {
				return nil, err
			}
			return cbpv.Inl(inner), nil
		case *cbpv.InrValue:
			inner, err := CloseVal(Clos(v.Val, x.Env), lenv, senv, symbolic)
			if err != nil {
				return nil, err
			}
			return cbpv.Inr(inner), nil
		case *cbpv.ThunkValue:
			return nil, structErr("must not close a thunk to a ground value: %s", v)
		default:
			return nil, structErr("unknown value variant %T", v)
		}
	case *LogicVarVC:
		bound, ok := lenv.Lookup(x.Ident)
		if !ok {
			if symbolic {
				return cbpv.FreeVar(int(x.Ident)), nil
			}
			return nil, structErr("unresolved logic variable %d", x.Ident)
		}
		return CloseVal(bound, lenv, senv, symbolic)
	case *SuspVC:
		bound, pending, err := senv.Lookup(x.Ident)
		if err != nil {
			return nil, err
		}
		if pending != nil {
			return nil, structErr("still-pending suspension %d in a ground answer", x.Ident)
		}
		return CloseVal(bound, lenv, senv, symbolic)
	default:
		return nil, structErr("unknown value-closure variant %T", vc)
	}
}

// FindSusp walks vc looking for the first still-pending suspension it
// transitively references, without descending into thunks (spec §4.6
// "Return v with empty stack": "find the next pending suspension
// referenced by v and force it"). It returns nil, nil if vc is fully
// ground or only references bound suspensions/logic variables.
func FindSusp(vc VClosure, lenv *LogicEnv, senv *SuspEnv) (*SuspRequest, error) {
	switch x := vc.(type) {
	case *ClosVC:
		switch v := x.Val.(type) {
		case *cbpv.VarValue:
			next, ok := x.Env.Lookup(v.Index)
			if !ok {
				return nil, structErr("de Bruijn index %d out of range", v.Index)
			}
			return FindSusp(next, lenv, senv)
		case *cbpv.SuccValue:
			return FindSusp(Clos(v.Pred, x.Env), lenv, senv)
		case *cbpv.ConsValue:
			req, err := FindSusp(Clos(v.Head, x.Env), lenv, senv)
			if err != nil || req != nil {
				return req, err
			}
			return FindSusp(Clos(v.Tail, x.Env), lenv, senv)
		case *cbpv.PairValue:
			req, err := FindSusp(Clos(v.Fst, x.Env), lenv, senv)
			if err != nil || req != nil {
				return req, err
			}
			return FindSusp(Clos(v.Snd, x.Env), lenv, senv)
		case *cbpv.InlValue:
			return FindSusp(Clos(v.Val, x.Env), lenv, senv)
		case *cbpv.InrValue:
			return FindSusp(Clos(v.Val, x.Env), lenv, senv)
		default:
			return nil, nil
		}
	case *LogicVarVC:
		bound, ok := lenv.Lookup(x.Ident)
		if !ok {
			return nil, nil
		}
		return FindSusp(bound, lenv, senv)
	case *SuspVC:
		bound, pending, err := senv.Lookup(x.Ident)
		if err != nil {
			return nil, err
		}
		if pending != nil {
			return &SuspRequest{Ident: x.Ident, Comp: pending.Comp, Env: pending.Env}, nil
		}
		return FindSusp(bound, lenv, senv)
	default:
		return nil, structErr("unknown value-closure variant %T", vc)
	}
}
