package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Expr is the surface expression language: the value/computation
// distinction of spec §3 does not exist yet at this level — translate
// (internal/translate) is what splits an Expr into MValue/MComputation.
type Expr interface {
	Node
	isExpr()
}

func (*BadExpr) isExpr()    {}
func (*NatLit) isExpr()     {}
func (*ListLit) isExpr()    {}
func (*PairExpr) isExpr()   {}
func (*InlExpr) isExpr()    {}
func (*InrExpr) isExpr()    {}
func (*LambdaExpr) isExpr() {}
func (*AppExpr) isExpr()    {}
func (*IdentExpr) isExpr()  {}
func (*ParenExpr) isExpr()  {}
func (*IfzExpr) isExpr()    {}
func (*MatchExpr) isExpr()  {}
func (*CaseExpr) isExpr()   {}

// BadExpr records a parse error at expression position so the parser
// can keep going far enough to report more than one diagnostic.
type BadExpr struct {
	base
	Message string
}

type NatLit struct {
	base
	Value int
}

type ListLit struct {
	base
	Elems []Expr
}

type PairExpr struct {
	base
	Fst, Snd Expr
}

type InlExpr struct {
	base
	Val Expr
}

type InrExpr struct {
	base
	Val Expr
}

// LambdaExpr is single-argument; `translate` handles currying of
// surface multi-argument declarations (spec §6).
type LambdaExpr struct {
	base
	Param Ident
	Body  Stmt
}

// AppExpr is binary application; `f a b c` parses as left-nested
// AppExpr, matching the `App{op,arg}` one-argument IR shape (spec §3).
type AppExpr struct {
	base
	Fn, Arg Expr
}

type IdentExpr struct {
	base
	Name Ident
}

type ParenExpr struct {
	base
	Inner Expr
}

// IfzExpr pattern-matches a Nat: zero-branch plus a succ-branch that
// binds PredName to the predecessor.
type IfzExpr struct {
	base
	Scrutinee Expr
	ZeroBody  Stmt
	PredName  Ident
	SuccBody  Stmt
}

// MatchExpr pattern-matches a List: nil-branch plus a cons-branch that
// binds HeadName/TailName.
type MatchExpr struct {
	base
	Scrutinee Expr
	NilBody   Stmt
	HeadName  Ident
	TailName  Ident
	ConsBody  Stmt
}

// CaseExpr pattern-matches a Sum: inl/inr branches each bind one name.
type CaseExpr struct {
	base
	Scrutinee Expr
	LeftName  Ident
	LeftBody  Stmt
	RightName Ident
	RightBody Stmt
}

func (*BadExpr) NodeType() NodeType    { return BAD_EXPR }
func (*NatLit) NodeType() NodeType     { return NAT_LIT }
func (*ListLit) NodeType() NodeType    { return LIST_LIT }
func (*PairExpr) NodeType() NodeType   { return PAIR_EXPR }
func (*InlExpr) NodeType() NodeType    { return INL_EXPR }
func (*InrExpr) NodeType() NodeType    { return INR_EXPR }
func (*LambdaExpr) NodeType() NodeType { return LAMBDA_EXPR }
func (*AppExpr) NodeType() NodeType    { return APP_EXPR }
func (*IdentExpr) NodeType() NodeType  { return IDENT_EXPR }
func (*ParenExpr) NodeType() NodeType  { return PAREN_EXPR }
func (*IfzExpr) NodeType() NodeType    { return IFZ_EXPR }
func (*MatchExpr) NodeType() NodeType  { return MATCH_EXPR }
func (*CaseExpr) NodeType() NodeType   { return CASE_EXPR }

func (e *BadExpr) String() string { return fmt.Sprintf("BadExpr: %s", e.Message) }
func (e *NatLit) String() string  { return strconv.Itoa(e.Value) }
func (e *ListLit) String() string {
	parts := make([]string, len(e.Elems))
	for i, el := range e.Elems {
		parts[i] = el.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
func (e *PairExpr) String() string { return fmt.Sprintf("(%s, %s)", e.Fst, e.Snd) }
func (e *InlExpr) String() string  { return fmt.Sprintf("inl %s", e.Val) }
func (e *InrExpr) String() string  { return fmt.Sprintf("inr %s", e.Val) }
func (e *LambdaExpr) String() string {
	return fmt.Sprintf("\\%s. %s", e.Param.Name, e.Body)
}
func (e *AppExpr) String() string   { return fmt.Sprintf("%s %s", e.Fn, e.Arg) }
func (e *IdentExpr) String() string { return e.Name.Name }
func (e *ParenExpr) String() string { return "(" + e.Inner.String() + ")" }
func (e *IfzExpr) String() string {
	return fmt.Sprintf("ifz %s { zero -> %s ; succ %s -> %s }", e.Scrutinee, e.ZeroBody, e.PredName.Name, e.SuccBody)
}
func (e *MatchExpr) String() string {
	return fmt.Sprintf("match %s { nil -> %s ; %s :: %s -> %s }", e.Scrutinee, e.NilBody, e.HeadName.Name, e.TailName.Name, e.ConsBody)
}
func (e *CaseExpr) String() string {
	return fmt.Sprintf("case %s { inl %s -> %s ; inr %s -> %s }", e.Scrutinee, e.LeftName.Name, e.LeftBody, e.RightName.Name, e.RightBody)
}
