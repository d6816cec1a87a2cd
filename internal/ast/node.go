// Package ast defines the surface syntax tree produced by internal/parser
// and consumed by internal/translate. It is deliberately shallow: no type
// annotations beyond the first-order tag on exists (spec §1's "no
// polymorphism" non-goal), no module system.
package ast

// Position tracks location information for error reporting and tooling.
type Position struct {
	Filename string
	Offset   int
	Line     int
	Column   int
}

// NodeID uniquely identifies an AST node for diagnostics.
type NodeID uint32

// Metadata carries the debugging information the teacher's ast package
// tracks per node. Compilation/bytecode tracking fields from the
// teacher (IR id, bytecode ranges) have no analogue here and are
// dropped rather than carried as dead fields.
type Metadata struct {
	NodeID     NodeID
	SourceText string
}

// Node is implemented by every AST node.
type Node interface {
	NodePos() Position
	NodeEndPos() Position
	NodeType() NodeType
	String() string
	GetMetadata() *Metadata
	SetMetadata(*Metadata)
}

type base struct {
	Pos, EndPos Position
	metadata    *Metadata
}

func (b *base) NodePos() Position       { return b.Pos }
func (b *base) NodeEndPos() Position    { return b.EndPos }
func (b *base) GetMetadata() *Metadata  { return b.metadata }
func (b *base) SetMetadata(m *Metadata) { b.metadata = m }
