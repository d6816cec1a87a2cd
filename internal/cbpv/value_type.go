// Package cbpv defines the call-by-push-value intermediate representation
// that the evaluation engine runs: values, computations and first-order
// value types, all in de Bruijn form.
package cbpv

import "fmt"

// ValueType is a first-order type tag, the only kind of type admissible
// for an `exists` binder (thunks are not first-order, see ExistsComp).
type ValueType interface {
	isValueType()
	String() string
}

// Nat is the type of naturals built from Zero/Succ.
type NatType struct{}

func (NatType) isValueType() {}
func (NatType) String() string { return "Nat" }

// ListType is the type of lists built from Nil/Cons over Elem.
type ListType struct{ Elem ValueType }

func (ListType) isValueType() {}
func (t ListType) String() string { return fmt.Sprintf("List(%s)", t.Elem) }

// ProductType is the type of pairs.
type ProductType struct{ Fst, Snd ValueType }

func (ProductType) isValueType() {}
func (t ProductType) String() string { return fmt.Sprintf("Product(%s, %s)", t.Fst, t.Snd) }

// SumType is the type of Inl/Inr values.
type SumType struct{ Left, Right ValueType }

func (SumType) isValueType() {}
func (t SumType) String() string { return fmt.Sprintf("Sum(%s, %s)", t.Left, t.Right) }

var Nat ValueType = NatType{}

func List(elem ValueType) ValueType  { return ListType{Elem: elem} }
func Product(a, b ValueType) ValueType { return ProductType{Fst: a, Snd: b} }
func Sum(a, b ValueType) ValueType   { return SumType{Left: a, Right: b} }
