package translate

import (
	"flp/internal/ast"
	"flp/internal/cbpv"
)

// The concrete examples in spec §8 write values with capitalized
// constructor application syntax (`Succ Zero`, `Cons y ys`) rather than
// integer/list literals. Those names are not keywords: they are
// ordinary identifiers recognized as built-in constructors only when
// nothing in scope already binds them, so a user is free to shadow
// "Cons" with a parameter name if they really want to.
var builtinArity = map[string]int{
	"Zero": 0,
	"Succ": 1,
	"Nil":  0,
	"Cons": 2,
	"Pair": 2,
}

// spine unwinds a left-nested AppExpr chain into its head and the
// arguments applied to it, in source order.
func spine(e ast.Expr) (ast.Expr, []ast.Expr) {
	var args []ast.Expr
	for {
		app, ok := e.(*ast.AppExpr)
		if !ok {
			return e, args
		}
		args = append([]ast.Expr{app.Arg}, args...)
		e = app.Fn
	}
}

// translateBuiltin returns a translated computation and true if e is
// an application of a built-in constructor not shadowed by sc; it
// returns (nil, false) for anything else, letting the caller fall back
// to ordinary application/identifier handling.
func translateBuiltin(e ast.Expr, sc *scope) (cbpv.Computation, bool, error) {
	head, args := spine(e)
	ident, ok := head.(*ast.IdentExpr)
	if !ok {
		return nil, false, nil
	}
	name := ident.Name.Name
	arity, known := builtinArity[name]
	if !known || sc.resolve(name) >= 0 || len(args) != arity {
		return nil, false, nil
	}

	switch name {
	case "Zero":
		return cbpv.Return(cbpv.Zero()), true, nil
	case "Nil":
		return cbpv.Return(cbpv.Nil()), true, nil
	case "Succ":
		inner, err := translateExpr(args[0], sc)
		if err != nil {
			return nil, true, err
		}
		return cbpv.Bind(inner, cbpv.Return(cbpv.Succ(cbpv.Var(0)))), true, nil
	case "Cons":
		head, err := translateExpr(args[0], sc)
		if err != nil {
			return nil, true, err
		}
		tail, err := translateExpr(args[1], sc.push(""))
		if err != nil {
			return nil, true, err
		}
		return cbpv.Bind(head, cbpv.Bind(tail, cbpv.Return(cbpv.Cons(cbpv.Var(1), cbpv.Var(0))))), true, nil
	case "Pair":
		fst, err := translateExpr(args[0], sc)
		if err != nil {
			return nil, true, err
		}
		snd, err := translateExpr(args[1], sc.push(""))
		if err != nil {
			return nil, true, err
		}
		return cbpv.Bind(fst, cbpv.Bind(snd, cbpv.Return(cbpv.Pair(cbpv.Var(1), cbpv.Var(0))))), true, nil
	}
	return nil, false, nil
}
