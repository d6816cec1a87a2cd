package ast

import "strings"

// FuncDecl is a top-level function definition `name p1 ... pn = body.`
// (spec §6's "Source-to-IR contract": compiled to Thunk(Rec{body})).
type FuncDecl struct {
	base
	Name   Ident
	Params []Ident
	Body   Stmt
}

func (*FuncDecl) NodeType() NodeType { return FUNC_DECL }

func (d *FuncDecl) String() string {
	var names []string
	for _, p := range d.Params {
		names = append(names, p.Name)
	}
	prefix := d.Name.Name
	if len(names) > 0 {
		prefix += " " + strings.Join(names, " ")
	}
	return prefix + " = " + d.Body.String() + "."
}

// Program is a whole source file: zero or more function declarations
// plus an optional top-level statement (spec §6's "top-level
// statement"). Main is nil for a file that only declares functions.
type Program struct {
	base
	Decls []*FuncDecl
	Main  Stmt
}

func (*Program) NodeType() NodeType { return PROGRAM }

func (p *Program) String() string {
	var b strings.Builder
	for _, d := range p.Decls {
		b.WriteString(d.String())
		b.WriteByte('\n')
	}
	if p.Main != nil {
		b.WriteString(p.Main.String())
		b.WriteString(".\n")
	}
	return b.String()
}
