package cbpv

import "fmt"

// Computation is the tagged sum of CBPV computations (spec §3,
// `MComputation`): producers, consumers, sequencing, the logic-
// programming extensions (Exists/Equate/Choice) and the eliminators.
type Computation interface {
	isComputation()
	String() string
}

func (*ReturnComp) isComputation()  {}
func (*BindComp) isComputation()    {}
func (*ForceComp) isComputation()   {}
func (*LambdaComp) isComputation()  {}
func (*AppComp) isComputation()     {}
func (*ChoiceComp) isComputation()  {}
func (*ExistsComp) isComputation()  {}
func (*EquateComp) isComputation()  {}
func (*IfzComp) isComputation()     {}
func (*MatchComp) isComputation()   {}
func (*CaseComp) isComputation()    {}
func (*RecComp) isComputation()     {}

// ReturnComp produces a value.
type ReturnComp struct{ Val Value }

// BindComp sequences comp then cont, with cont's environment extended
// by the value comp produces at index 0 (spec §3, §4.5).
type BindComp struct {
	Comp Computation
	Cont Computation
}

// ForceComp demands the computation carried by a thunk.
type ForceComp struct{ Val Value }

// LambdaComp/AppComp model one-argument functions; multi-argument
// functions are curried by the translator (spec §3, §6).
type LambdaComp struct{ Body Computation }
type AppComp struct {
	Op  Computation
	Arg Value
}

// ChoiceComp is the n-ary non-determinism operator.
type ChoiceComp struct{ Branches []Computation }

// ExistsComp introduces a fresh logic variable of a first-order type.
type ExistsComp struct {
	PType ValueType
	Body  Computation
}

// EquateComp unifies Lhs and Rhs and continues with Body on success.
type EquateComp struct {
	Lhs, Rhs Value
	Body     Computation
}

// IfzComp/MatchComp/CaseComp are the eliminators for Nat/List/Sum.
type IfzComp struct {
	Num    Value
	ZeroK  Computation
	SuccK  Computation
}

type MatchComp struct {
	List  Value
	NilK  Computation
	ConsK Computation
}

type CaseComp struct {
	Sum  Value
	InlK Computation
	InrK Computation
}

// RecComp evaluates Body in an environment extended by a thunk of
// itself at index 0 — the only recursion primitive (spec §3, §6).
type RecComp struct{ Body Computation }

func Return(v Value) Computation        { return &ReturnComp{Val: v} }
func Bind(c, k Computation) Computation { return &BindComp{Comp: c, Cont: k} }
func Force(v Value) Computation         { return &ForceComp{Val: v} }
func Lambda(body Computation) Computation { return &LambdaComp{Body: body} }
func App(op Computation, arg Value) Computation {
	return &AppComp{Op: op, Arg: arg}
}
func Choice(branches ...Computation) Computation { return &ChoiceComp{Branches: branches} }
func Exists(pt ValueType, body Computation) Computation {
	return &ExistsComp{PType: pt, Body: body}
}
func Equate(lhs, rhs Value, body Computation) Computation {
	return &EquateComp{Lhs: lhs, Rhs: rhs, Body: body}
}
func Ifz(num Value, zk, sk Computation) Computation {
	return &IfzComp{Num: num, ZeroK: zk, SuccK: sk}
}
func Match(list Value, nilk, consk Computation) Computation {
	return &MatchComp{List: list, NilK: nilk, ConsK: consk}
}
func Case(sum Value, inlk, inrk Computation) Computation {
	return &CaseComp{Sum: sum, InlK: inlk, InrK: inrk}
}
func Rec(body Computation) Computation { return &RecComp{Body: body} }

func (c *ReturnComp) String() string { return fmt.Sprintf("return(%s)", c.Val) }
func (c *BindComp) String() string   { return fmt.Sprintf("%s to %s", c.Comp, c.Cont) }
func (c *ForceComp) String() string  { return fmt.Sprintf("force(%s)", c.Val) }
func (c *LambdaComp) String() string { return fmt.Sprintf("λ(%s)", c.Body) }
func (c *AppComp) String() string    { return fmt.Sprintf("%s(%s)", c.Op, c.Arg) }

func (c *ChoiceComp) String() string {
	s := ""
	for i, b := range c.Branches {
		if i > 0 {
			s += " <> "
		}
		s += b.String()
	}
	return s
}

func (c *ExistsComp) String() string {
	return fmt.Sprintf("exists %s. %s", c.PType, c.Body)
}

func (c *EquateComp) String() string {
	return fmt.Sprintf("%s =:= %s. %s", c.Lhs, c.Rhs, c.Body)
}

func (c *IfzComp) String() string {
	return fmt.Sprintf("ifz(%s, %s, %s)", c.Num, c.ZeroK, c.SuccK)
}

func (c *MatchComp) String() string {
	return fmt.Sprintf("match(%s, %s, %s)", c.List, c.NilK, c.ConsK)
}

func (c *CaseComp) String() string {
	return fmt.Sprintf("case(%s, %s, %s)", c.Sum, c.InlK, c.InrK)
}

func (c *RecComp) String() string { return fmt.Sprintf("rec(%s)", c.Body) }
