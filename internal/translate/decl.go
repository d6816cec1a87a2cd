package translate

import (
	"flp/internal/ast"
	"flp/internal/cbpv"
)

// translateFuncDecl lowers a top-level function declaration into a
// curried Thunk(Rec{...}) value, grounded in
// original_source/src/cbpv/translate/decl.rs. globalScope already
// contains every previously declared function, innermost last; the
// function's own name is pushed as the self-reference Rec gives every
// computation (cbpv.RecComp binds a thunk of itself one slot below
// where the first Lambda's argument lands), and each parameter is
// pushed in declaration order on top of that. Every Lambda after the
// first is wrapped as Return(Thunk(Lambda ...)), so a partial
// application returns a thunk that the next application forces.
func translateFuncDecl(d *ast.FuncDecl, globalScope *scope) (cbpv.Computation, error) {
	sc := globalScope.push(d.Name.Name)
	for _, p := range d.Params {
		sc = sc.push(p.Name)
	}
	body, err := translateStmt(d.Body, sc)
	if err != nil {
		return nil, err
	}
	for i := range d.Params {
		if i > 0 {
			body = cbpv.Return(cbpv.Thunk(body))
		}
		body = cbpv.Lambda(body)
	}
	return cbpv.Rec(body), nil
}
