package ast

// Ident is any bound name: a function, a lambda parameter, a pattern
// variable introduced by exists/match/case.
type Ident struct {
	base
	Name string
}

func (*Ident) NodeType() NodeType { return IDENT }
func (i *Ident) String() string   { return i.Name }
