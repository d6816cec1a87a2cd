package cbpv

import (
	"fmt"
	"strings"
)

// Value is the tagged sum of first-order data and thunks (spec §3,
// `MValue`). Every constructor is a small struct implementing the
// marker method, the same pattern the teacher uses for internal/ast.Expr.
type Value interface {
	isValue()
	String() string
}

func (*VarValue) isValue()   {}
func (ZeroValue) isValue()   {}
func (*SuccValue) isValue()  {}
func (NilValue) isValue()    {}
func (*ConsValue) isValue()  {}
func (*PairValue) isValue()  {}
func (*InlValue) isValue()   {}
func (*InrValue) isValue()   {}
func (*ThunkValue) isValue() {}
func (FreeVarValue) isValue() {}

// VarValue is a de Bruijn index into the ambient environment.
type VarValue struct{ Index int }

// ZeroValue and NilValue are singletons; no state to carry.
type ZeroValue struct{}
type NilValue struct{}

type SuccValue struct{ Pred Value }
type ConsValue struct{ Head, Tail Value }
type PairValue struct{ Fst, Snd Value }
type InlValue struct{ Val Value }
type InrValue struct{ Val Value }

// ThunkValue carries a suspended computation (spec §3: "Thunk(c)").
type ThunkValue struct{ Comp Computation }

func Var(i int) Value           { return &VarValue{Index: i} }
func Zero() Value               { return ZeroValue{} }
func Succ(v Value) Value        { return &SuccValue{Pred: v} }
func Nil() Value                { return NilValue{} }
func Cons(h, t Value) Value     { return &ConsValue{Head: h, Tail: t} }
func Pair(a, b Value) Value     { return &PairValue{Fst: a, Snd: b} }
func Inl(v Value) Value         { return &InlValue{Val: v} }
func Inr(v Value) Value         { return &InrValue{Val: v} }
func Thunk(c Computation) Value { return &ThunkValue{Comp: c} }

// FreeVarValue is the externally-visible marker for an answer that
// still references an unbound logic variable when the driver closes it
// (spec §4.8, §9 Open Question — documented policy: surface, don't panic).
type FreeVarValue struct{ Ident int }

func FreeVar(ident int) Value { return FreeVarValue{Ident: ident} }

// printNat returns the decimal rendering of a Zero/Succ chain, or false
// if the value is not a pure nat chain (spec §6 "Value printing").
func printNat(v Value) (string, bool) {
	n := 0
	for {
		switch x := v.(type) {
		case ZeroValue:
			return fmt.Sprintf("%d", n), true
		case *SuccValue:
			n++
			v = x.Pred
		default:
			return "", false
		}
	}
}

func (v *VarValue) String() string { return fmt.Sprintf("idx %d", v.Index) }
func (ZeroValue) String() string   { return "0" }

func (v *SuccValue) String() string {
	if s, ok := printNat(v); ok {
		return s
	}
	return fmt.Sprintf("Succ(%s)", v.Pred)
}

func (NilValue) String() string { return "[]" }

func (v *ConsValue) String() string {
	var elems []string
	var cur Value = v
	for {
		switch x := cur.(type) {
		case *ConsValue:
			elems = append(elems, x.Head.String())
			cur = x.Tail
		case NilValue:
			return "[" + strings.Join(elems, ", ") + "]"
		default:
			elems = append(elems, "."+cur.String())
			return "[" + strings.Join(elems, ", ") + "]"
		}
	}
}

func (v *PairValue) String() string { return fmt.Sprintf("(%s, %s)", v.Fst, v.Snd) }
func (v *InlValue) String() string  { return fmt.Sprintf("inl(%s)", v.Val) }
func (v *InrValue) String() string  { return fmt.Sprintf("inr(%s)", v.Val) }
func (v *ThunkValue) String() string { return fmt.Sprintf("<thunk %s>", v.Comp) }
func (v FreeVarValue) String() string { return fmt.Sprintf("_%d", v.Ident) }
