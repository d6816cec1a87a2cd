package translate

import (
	"fmt"

	"flp/internal/ast"
	"flp/internal/cbpv"
)

// translateExpr lowers a surface Expr to a CBPV Computation. Every
// case ultimately produces something ending in Return, matching
// original_source/src/cbpv/translate/expr.rs's shape: evaluate
// sub-expressions left to right via nested Bind, then Return the
// constructed value.
func translateExpr(e ast.Expr, sc *scope) (cbpv.Computation, error) {
	switch e := e.(type) {
	case *ast.NatLit:
		return cbpv.Return(natValue(e.Value)), nil

	case *ast.ListLit:
		return translateListLit(e, sc)

	case *ast.PairExpr:
		fst, err := translateExpr(e.Fst, sc)
		if err != nil {
			return nil, err
		}
		snd, err := translateExpr(e.Snd, sc.push(""))
		if err != nil {
			return nil, err
		}
		return bind2(fst, snd, func() cbpv.Computation {
			return cbpv.Return(cbpv.Pair(cbpv.Var(1), cbpv.Var(0)))
		}), nil

	case *ast.InlExpr:
		inner, err := translateExpr(e.Val, sc)
		if err != nil {
			return nil, err
		}
		return cbpv.Bind(inner, cbpv.Return(cbpv.Inl(cbpv.Var(0)))), nil

	case *ast.InrExpr:
		inner, err := translateExpr(e.Val, sc)
		if err != nil {
			return nil, err
		}
		return cbpv.Bind(inner, cbpv.Return(cbpv.Inr(cbpv.Var(0)))), nil

	case *ast.AppExpr:
		if c, ok, err := translateBuiltin(e, sc); ok || err != nil {
			return c, err
		}
		return translateApp(e, sc)

	case *ast.LambdaExpr:
		body, err := translateStmt(e.Body, sc.push(e.Param.Name))
		if err != nil {
			return nil, err
		}
		return cbpv.Return(cbpv.Thunk(cbpv.Lambda(body))), nil

	case *ast.IdentExpr:
		if c, ok, err := translateBuiltin(e, sc); ok || err != nil {
			return c, err
		}
		idx := sc.resolve(e.Name.Name)
		if idx < 0 {
			return nil, fmt.Errorf("undefined identifier %q at %s", e.Name.Name, posString(e.NodePos()))
		}
		return cbpv.Return(cbpv.Var(idx)), nil

	case *ast.ParenExpr:
		return translateExpr(e.Inner, sc)

	case *ast.IfzExpr:
		return translateIfz(e, sc)

	case *ast.MatchExpr:
		return translateMatch(e, sc)

	case *ast.CaseExpr:
		return translateCase(e, sc)

	case *ast.BadExpr:
		return nil, fmt.Errorf("cannot translate bad expression: %s", e.Message)
	}
	return nil, fmt.Errorf("translate: unhandled expression %T", e)
}

// bind2 sequences two already-translated computations (the Rust
// prototype's Bind{var:"0",...}/Bind{var:"1",...} chain) and hands the
// continuation builder a scope where Var(0) is the second result and
// Var(1) the first.
func bind2(first, second cbpv.Computation, cont func() cbpv.Computation) cbpv.Computation {
	return cbpv.Bind(first, cbpv.Bind(second, cont()))
}

func translateApp(e *ast.AppExpr, sc *scope) (cbpv.Computation, error) {
	// The function runs after the argument's Bind, so it is translated
	// one slot deeper than the argument.
	fn, err := translateExpr(e.Fn, sc.push(""))
	if err != nil {
		return nil, err
	}
	arg, err := translateExpr(e.Arg, sc)
	if err != nil {
		return nil, err
	}
	// Argument first, then function — the reverse of expr.rs's own
	// evaluation order, but answer-set equivalent since neither side
	// can observe the other's bindings before Equate/Choice run. The
	// function ends up at Var(0) once both are bound, the argument at
	// Var(1).
	return cbpv.Bind(arg, cbpv.Bind(fn, cbpv.App(cbpv.Force(cbpv.Var(0)), cbpv.Var(1)))), nil
}

func translateListLit(e *ast.ListLit, sc *scope) (cbpv.Computation, error) {
	if len(e.Elems) == 0 {
		return cbpv.Return(cbpv.Nil()), nil
	}
	head, err := translateExpr(e.Elems[0], sc)
	if err != nil {
		return nil, err
	}
	restLit := &ast.ListLit{Elems: e.Elems[1:]}
	tail, err := translateListLit(restLit, sc.push(""))
	if err != nil {
		return nil, err
	}
	return cbpv.Bind(head, cbpv.Bind(tail, cbpv.Return(cbpv.Cons(cbpv.Var(1), cbpv.Var(0))))), nil
}

func translateIfz(e *ast.IfzExpr, sc *scope) (cbpv.Computation, error) {
	scrut, err := translateExpr(e.Scrutinee, sc)
	if err != nil {
		return nil, err
	}
	inner := sc.push("") // reserve the bound-scrutinee slot at Var(0)
	zeroComp, err := translateStmt(e.ZeroBody, inner)
	if err != nil {
		return nil, err
	}
	succComp, err := translateStmt(e.SuccBody, inner.push(e.PredName.Name))
	if err != nil {
		return nil, err
	}
	return cbpv.Bind(scrut, cbpv.Ifz(cbpv.Var(0), zeroComp, succComp)), nil
}

func translateMatch(e *ast.MatchExpr, sc *scope) (cbpv.Computation, error) {
	scrut, err := translateExpr(e.Scrutinee, sc)
	if err != nil {
		return nil, err
	}
	inner := sc.push("")
	nilComp, err := translateStmt(e.NilBody, inner)
	if err != nil {
		return nil, err
	}
	consScope := inner.push(e.HeadName.Name).push(e.TailName.Name)
	consComp, err := translateStmt(e.ConsBody, consScope)
	if err != nil {
		return nil, err
	}
	return cbpv.Bind(scrut, cbpv.Match(cbpv.Var(0), nilComp, consComp)), nil
}

func translateCase(e *ast.CaseExpr, sc *scope) (cbpv.Computation, error) {
	scrut, err := translateExpr(e.Scrutinee, sc)
	if err != nil {
		return nil, err
	}
	inner := sc.push("")
	inlComp, err := translateStmt(e.LeftBody, inner.push(e.LeftName.Name))
	if err != nil {
		return nil, err
	}
	inrComp, err := translateStmt(e.RightBody, inner.push(e.RightName.Name))
	if err != nil {
		return nil, err
	}
	return cbpv.Bind(scrut, cbpv.Case(cbpv.Var(0), inlComp, inrComp)), nil
}

func natValue(n int) cbpv.Value {
	v := cbpv.Zero()
	for i := 0; i < n; i++ {
		v = cbpv.Succ(v)
	}
	return v
}

func posString(p ast.Position) string {
	return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column)
}
