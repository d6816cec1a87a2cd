package parser

import (
	"flp/internal/ast"
)

// convert.go lowers the participle grammar tree into internal/ast. It
// performs no semantic analysis: that is translate's job (spec §6).

func toPos(p grammarPos) ast.Position {
	return ast.Position{
		Filename: p.Filename,
		Offset:   p.Offset,
		Line:     p.Line,
		Column:   p.Column,
	}
}

func convertProgram(g *grammarProgram) *ast.Program {
	prog := &ast.Program{}
	prog.Pos = toPos(g.Pos)
	for _, item := range g.Items {
		if item.Func != nil {
			prog.Decls = append(prog.Decls, convertFuncDecl(item.Func))
		}
		if item.Main != nil {
			prog.Main = convertStmt(item.Main.Stmt)
		}
	}
	return prog
}

func convertIdent(pos grammarPos, name string) ast.Ident {
	id := ast.Ident{Name: name}
	id.Pos = toPos(pos)
	id.EndPos = id.Pos
	return id
}

func convertFuncDecl(g *grammarFuncDecl) *ast.FuncDecl {
	d := &ast.FuncDecl{}
	d.Pos = toPos(g.Pos)
	d.Name = convertIdent(g.Pos, g.Name)
	for _, p := range g.Params {
		d.Params = append(d.Params, convertIdent(g.Pos, p))
	}
	d.Body = convertStmt(g.Body)
	return d
}

func convertStmt(g *grammarStmt) ast.Stmt {
	switch {
	case g.Exists != nil:
		s := &ast.ExistsStmt{}
		s.Pos = toPos(g.Exists.Pos)
		s.Name = convertIdent(g.Exists.Pos, g.Exists.Name)
		s.Type = convertType(g.Exists.Type)
		s.Body = convertStmt(g.Exists.Body)
		return s
	case g.Return != nil:
		s := &ast.ReturnStmt{}
		s.Pos = toPos(g.Return.Pos)
		s.Value = convertExpr(g.Return.Value)
		return s
	case g.Equate != nil:
		s := &ast.EquateStmt{}
		s.Pos = toPos(g.Equate.Pos)
		s.Lhs = convertExpr(g.Equate.Lhs)
		s.Rhs = convertExpr(g.Equate.Rhs)
		s.Body = convertStmt(g.Equate.Body)
		return s
	case g.Choice != nil:
		s := &ast.ChoiceStmt{}
		s.Pos = toPos(g.Choice.Pos)
		s.Branches = append(s.Branches, exprStmt(g.Choice.First))
		for _, rest := range g.Choice.Rest {
			s.Branches = append(s.Branches, exprStmt(rest))
		}
		return s
	case g.Plain != nil:
		return exprStmt(g.Plain)
	}
	bad := &ast.BadStmt{Message: "empty statement"}
	bad.Pos = toPos(g.Pos)
	return bad
}

func exprStmt(g *grammarExpr) ast.Stmt {
	s := &ast.ExprStmt{Value: convertExpr(g)}
	s.Pos = toPos(g.Pos)
	return s
}

// convertExpr flattens Fn/Args into left-nested binary AppExpr nodes,
// matching the one-argument App{op,arg} IR shape (spec §3).
func convertExpr(g *grammarExpr) ast.Expr {
	result := convertAtom(g.Fn)
	for _, arg := range g.Args {
		app := &ast.AppExpr{Fn: result, Arg: convertAtom(arg)}
		app.Pos = toPos(arg.Pos)
		result = app
	}
	return result
}

func convertAtom(g *grammarAtom) ast.Expr {
	switch {
	case g.Nat != nil:
		n := &ast.NatLit{Value: int(*g.Nat)}
		n.Pos = toPos(g.Pos)
		return n
	case g.List != nil:
		l := &ast.ListLit{}
		l.Pos = toPos(g.Pos)
		for _, e := range g.List.Elems {
			l.Elems = append(l.Elems, convertExpr(e))
		}
		return l
	case g.Inl != nil:
		e := &ast.InlExpr{Val: convertAtom(g.Inl)}
		e.Pos = toPos(g.Pos)
		return e
	case g.Inr != nil:
		e := &ast.InrExpr{Val: convertAtom(g.Inr)}
		e.Pos = toPos(g.Pos)
		return e
	case g.Ifz != nil:
		return convertIfz(g.Ifz)
	case g.Match != nil:
		return convertMatch(g.Match)
	case g.Case != nil:
		return convertCase(g.Case)
	case g.Paren != nil:
		return convertParen(g.Paren)
	case g.Ident != nil:
		id := convertIdent(g.Pos, *g.Ident)
		e := &ast.IdentExpr{Name: id}
		e.Pos = id.Pos
		return e
	}
	bad := &ast.BadExpr{Message: "empty atom"}
	bad.Pos = toPos(g.Pos)
	return bad
}

func convertParen(g *grammarParen) ast.Expr {
	switch {
	case g.Lambda != nil:
		e := &ast.LambdaExpr{
			Param: convertIdent(g.Lambda.Pos, g.Lambda.Param),
			Body:  convertStmt(g.Lambda.Body),
		}
		e.Pos = toPos(g.Lambda.Pos)
		return e
	case g.Pair != nil:
		e := &ast.PairExpr{
			Fst: convertExpr(g.Pair.Fst),
			Snd: convertExpr(g.Pair.Snd),
		}
		e.Pos = toPos(g.Pair.Pos)
		return e
	case g.Expr != nil:
		e := &ast.ParenExpr{Inner: convertExpr(g.Expr)}
		e.Pos = toPos(g.Expr.Pos)
		return e
	}
	bad := &ast.BadExpr{Message: "empty parenthesized atom"}
	bad.Pos = toPos(g.Pos)
	return bad
}

func convertIfz(g *grammarIfz) *ast.IfzExpr {
	e := &ast.IfzExpr{
		Scrutinee: convertExpr(g.Scrutinee),
		ZeroBody:  convertStmt(g.ZeroBody),
		PredName:  convertIdent(g.Pos, g.PredName),
		SuccBody:  convertStmt(g.SuccBody),
	}
	e.Pos = toPos(g.Pos)
	return e
}

func convertMatch(g *grammarMatch) *ast.MatchExpr {
	e := &ast.MatchExpr{
		Scrutinee: convertExpr(g.Scrutinee),
		NilBody:   convertStmt(g.NilBody),
		HeadName:  convertIdent(g.Pos, g.HeadName),
		TailName:  convertIdent(g.Pos, g.TailName),
		ConsBody:  convertStmt(g.ConsBody),
	}
	e.Pos = toPos(g.Pos)
	return e
}

func convertCase(g *grammarCase) *ast.CaseExpr {
	e := &ast.CaseExpr{
		Scrutinee: convertExpr(g.Scrutinee),
		LeftName:  convertIdent(g.Pos, g.LeftName),
		LeftBody:  convertStmt(g.LeftBody),
		RightName: convertIdent(g.Pos, g.RightName),
		RightBody: convertStmt(g.RightBody),
	}
	e.Pos = toPos(g.Pos)
	return e
}

func convertType(g *grammarType) ast.TypeExpr {
	switch {
	case g.Nat:
		t := &ast.NatTypeExpr{}
		t.Pos = toPos(g.Pos)
		return t
	case g.List != nil:
		t := &ast.ListTypeExpr{Elem: convertType(g.List)}
		t.Pos = toPos(g.Pos)
		return t
	case g.Paren != nil:
		fst := convertType(g.Paren.Fst)
		snd := convertType(g.Paren.Snd)
		if g.Paren.IsSum {
			t := &ast.SumTypeExpr{Left: fst, Right: snd}
			t.Pos = toPos(g.Pos)
			return t
		}
		t := &ast.ProductTypeExpr{Fst: fst, Snd: snd}
		t.Pos = toPos(g.Pos)
		return t
	}
	t := &ast.NatTypeExpr{}
	t.Pos = toPos(g.Pos)
	return t
}
