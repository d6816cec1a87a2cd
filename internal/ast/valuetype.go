package ast

// TypeExpr is the (deliberately shallow) surface type annotation
// admissible on exists — only first-order shapes, matching spec §3's
// ValueType and §1's "no polymorphism beyond first-order type tags".
type TypeExpr interface {
	Node
	isTypeExpr()
}

func (*NatTypeExpr) isTypeExpr()     {}
func (*ListTypeExpr) isTypeExpr()    {}
func (*ProductTypeExpr) isTypeExpr() {}
func (*SumTypeExpr) isTypeExpr()     {}

type NatTypeExpr struct{ base }

type ListTypeExpr struct {
	base
	Elem TypeExpr
}

type ProductTypeExpr struct {
	base
	Fst, Snd TypeExpr
}

type SumTypeExpr struct {
	base
	Left, Right TypeExpr
}

func (*NatTypeExpr) NodeType() NodeType     { return NAT_TYPE }
func (*ListTypeExpr) NodeType() NodeType    { return LIST_TYPE }
func (*ProductTypeExpr) NodeType() NodeType { return PRODUCT_TYPE }
func (*SumTypeExpr) NodeType() NodeType     { return SUM_TYPE }

func (*NatTypeExpr) String() string { return "Nat" }
func (t *ListTypeExpr) String() string {
	return "List " + t.Elem.String()
}
func (t *ProductTypeExpr) String() string {
	return "(" + t.Fst.String() + ", " + t.Snd.String() + ")"
}
func (t *SumTypeExpr) String() string {
	return "(" + t.Left.String() + " + " + t.Right.String() + ")"
}
