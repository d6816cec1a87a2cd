package machine

import "flp/internal/cbpv"

type closurePair struct{ lhs, rhs VClosure }

// Unify performs first-order structural unification of two values
// closed under env, with occurs checking and suspension propagation
// (spec §4.2). It returns:
//   - (true, nil, nil) on success, with lenv possibly extended,
//   - (false, nil, nil) on a structural mismatch or occurs-check
//     failure (spec's "logical failure", kind 2 — prunes the machine),
//   - (false, req, nil) when a pending suspension must be forced
//     before unification can proceed,
//   - (false, nil, err) on a structural/IR error (kind 1).
func Unify(lhs, rhs cbpv.Value, env *Env, lenv *LogicEnv, senv *SuspEnv) (bool, *SuspRequest, error) {
	worklist := []closurePair{{Clos(lhs, env), Clos(rhs, env)}}

	for len(worklist) > 0 {
		pair := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]

		lh, req, err := CloseHead(pair.lhs, lenv, senv)
		if err != nil {
			return false, nil, err
		}
		if req != nil {
			return false, req, nil
		}
		rh, req, err := CloseHead(pair.rhs, lenv, senv)
		if err != nil {
			return false, nil, err
		}
		if req != nil {
			return false, req, nil
		}

		lv, lIsVar := lh.(*LogicVarVC)
		rv, rIsVar := rh.(*LogicVarVC)

		switch {
		case lIsVar && rIsVar:
			lenv.Identify(lv.Ident, rv.Ident)

		case lIsVar:
			occ, occReq, err := OccursLVar(rh, lv.Ident, lenv, senv)
			if err != nil {
				return false, nil, err
			}
			if occReq != nil {
				return false, occReq, nil
			}
			if occ {
				return false, nil, nil
			}
			lenv.Bind(lv.Ident, rh)

		case rIsVar:
			occ, occReq, err := OccursLVar(lh, rv.Ident, lenv, senv)
			if err != nil {
				return false, nil, err
			}
			if occReq != nil {
				return false, occReq, nil
			}
			if occ {
				return false, nil, nil
			}
			lenv.Bind(rv.Ident, lh)

		default:
			lc, rc := lh.(*ClosVC), rh.(*ClosVC)
			ok, pairs, err := unifyConstructors(lc, rc)
			if err != nil {
				return false, nil, err
			}
			if !ok {
				return false, nil, nil
			}
			worklist = append(worklist, pairs...)
		}
	}
	return true, nil, nil
}

// unifyConstructors compares the head constructors of two non-variable
// closures, pushing sub-closure pairs for matching unary/binary
// constructors (spec §4.2: "Succ, Cons, Pair, Inl, Inr"). A Thunk on
// either side is a structural error — thunks are not first-order.
func unifyConstructors(lc, rc *ClosVC) (bool, []closurePair, error) {
	if _, ok := rc.Val.(*cbpv.ThunkValue); ok {
		return false, nil, structErr("cannot unify a thunk: %s", rc.Val)
	}
	switch l := lc.Val.(type) {
	case cbpv.ZeroValue:
		_, ok := rc.Val.(cbpv.ZeroValue)
		return ok, nil, nil
	case *cbpv.SuccValue:
		r, ok := rc.Val.(*cbpv.SuccValue)
		if !ok {
			return false, nil, nil
		}
		return true, []closurePair{{Clos(l.Pred, lc.Env), Clos(r.Pred, rc.Env)}}, nil
	case cbpv.NilValue:
		_, ok := rc.Val.(cbpv.NilValue)
		return ok, nil, nil
	case *cbpv.ConsValue:
		r, ok := rc.Val.(*cbpv.ConsValue)
		if !ok {
			return false, nil, nil
		}
		return true, []closurePair{
			{Clos(l.Head, lc.Env), Clos(r.Head, rc.Env)},
			{Clos(l.Tail, lc.Env), Clos(r.Tail, rc.Env)},
		}, nil
	case *cbpv.PairValue:
		r, ok := rc.Val.(*cbpv.PairValue)
		if !ok {
			return false, nil, nil
		}
		return true, []closurePair{
			{Clos(l.Fst, lc.Env), Clos(r.Fst, rc.Env)},
			{Clos(l.Snd, lc.Env), Clos(r.Snd, rc.Env)},
		}, nil
	case *cbpv.InlValue:
		r, ok := rc.Val.(*cbpv.InlValue)
		if !ok {
			return false, nil, nil
		}
		return true, []closurePair{{Clos(l.Val, lc.Env), Clos(r.Val, rc.Env)}}, nil
	case *cbpv.InrValue:
		r, ok := rc.Val.(*cbpv.InrValue)
		if !ok {
			return false, nil, nil
		}
		return true, []closurePair{{Clos(l.Val, lc.Env), Clos(r.Val, rc.Env)}}, nil
	case *cbpv.ThunkValue:
		return false, nil, structErr("cannot unify a thunk: %s", l)
	default:
		return false, nil, structErr("unknown value variant in unification: %T", l)
	}
}
