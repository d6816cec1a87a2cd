package translate

import (
	"fmt"

	"flp/internal/ast"
	"flp/internal/cbpv"
)

// translateStmt lowers the sequencing language (exists/equate/choice/
// return/bare-expr), mirroring original_source/src/cbpv/translate/stm.rs.
func translateStmt(s ast.Stmt, sc *scope) (cbpv.Computation, error) {
	switch s := s.(type) {
	case *ast.ExistsStmt:
		pt, err := translateValueType(s.Type)
		if err != nil {
			return nil, err
		}
		body, err := translateStmt(s.Body, sc.push(s.Name.Name))
		if err != nil {
			return nil, err
		}
		return cbpv.Exists(pt, body), nil

	case *ast.EquateStmt:
		lhs, err := translateExpr(s.Lhs, sc)
		if err != nil {
			return nil, err
		}
		// rhs runs after lhs's Bind, so it sees one extra slot.
		rhs, err := translateExpr(s.Rhs, sc.push(""))
		if err != nil {
			return nil, err
		}
		// lhs and rhs each leave a binding live in Body's env (the two
		// Binds below are never popped), so Body sees two extra,
		// unnamed slots ahead of anything from the outer scope.
		body, err := translateStmt(s.Body, sc.push("").push(""))
		if err != nil {
			return nil, err
		}
		return cbpv.Bind(lhs, cbpv.Bind(rhs, cbpv.Equate(cbpv.Var(1), cbpv.Var(0), body))), nil

	case *ast.ChoiceStmt:
		branches := make([]cbpv.Computation, len(s.Branches))
		for i, b := range s.Branches {
			c, err := translateStmt(b, sc)
			if err != nil {
				return nil, err
			}
			branches[i] = c
		}
		return cbpv.Choice(branches...), nil

	case *ast.ReturnStmt:
		return translateExpr(s.Value, sc)

	case *ast.ExprStmt:
		return translateExpr(s.Value, sc)

	case *ast.BadStmt:
		return nil, fmt.Errorf("cannot translate bad statement: %s", s.Message)
	}
	return nil, fmt.Errorf("translate: unhandled statement %T", s)
}

func translateValueType(t ast.TypeExpr) (cbpv.ValueType, error) {
	switch t := t.(type) {
	case *ast.NatTypeExpr:
		return cbpv.Nat, nil
	case *ast.ListTypeExpr:
		elem, err := translateValueType(t.Elem)
		if err != nil {
			return nil, err
		}
		return cbpv.List(elem), nil
	case *ast.ProductTypeExpr:
		fst, err := translateValueType(t.Fst)
		if err != nil {
			return nil, err
		}
		snd, err := translateValueType(t.Snd)
		if err != nil {
			return nil, err
		}
		return cbpv.Product(fst, snd), nil
	case *ast.SumTypeExpr:
		left, err := translateValueType(t.Left)
		if err != nil {
			return nil, err
		}
		right, err := translateValueType(t.Right)
		if err != nil {
			return nil, err
		}
		return cbpv.Sum(left, right), nil
	}
	return nil, fmt.Errorf("translate: unhandled type %T", t)
}
