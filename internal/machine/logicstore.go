package machine

import "flp/internal/cbpv"

// logicEntry is a logic-variable's first-order type together with its
// optional bound value-closure (spec §3 "Logic store"). Entries are
// monotone: once bound is non-nil it is never rewritten (invariant I2).
type logicEntry struct {
	ptype cbpv.ValueType
	bound VClosure
}

// LogicEnv is the mutable map from logic-variable identifier to
// (type, optional bound value-closure), backed by a parent-pointer
// union-find with path compression so that variable-to-variable unification (`identify`) is
// cheap and `CloseHead`/the occurs check can find the representative
// of an aliased chain (spec §4.4, Design Notes "Cycles in the logic
// store").
type LogicEnv struct {
	entries []logicEntry
	parent  []int // union-find parent pointers, index == ident
}

// NewLogicEnv returns an empty logic store.
func NewLogicEnv() *LogicEnv {
	return &LogicEnv{}
}

// Fresh allocates a new unbound logic variable of the given type.
func (l *LogicEnv) Fresh(pt cbpv.ValueType) Ident {
	ident := Ident(len(l.entries))
	l.entries = append(l.entries, logicEntry{ptype: pt})
	l.parent = append(l.parent, int(ident))
	return ident
}

// find is the union-find root lookup with path compression.
func (l *LogicEnv) find(i int) int {
	root := i
	for l.parent[root] != root {
		root = l.parent[root]
	}
	for i != root {
		l.parent[i], i = root, l.parent[i]
	}
	return root
}

// Representative returns the union-find root of ident's alias chain.
func (l *LogicEnv) Representative(ident Ident) Ident {
	return Ident(l.find(int(ident)))
}

// Identify aliases i and j: unification of two unbound logic variables
// records their equivalence through the union-find structure (spec
// §4.2, §4.4 `identify`).
func (l *LogicEnv) Identify(i, j Ident) {
	ri, rj := l.find(int(i)), l.find(int(j))
	if ri == rj {
		return
	}
	l.parent[ri] = rj
}

// Lookup returns the bound closure for ident's representative, if any.
func (l *LogicEnv) Lookup(ident Ident) (VClosure, bool) {
	root := l.find(int(ident))
	if l.entries[root].bound == nil {
		return nil, false
	}
	return l.entries[root].bound, true
}

// Bind records vc as ident's (representative's) bound value-closure.
// Binding an already-bound entry is a structural-invariant violation
// (I2) and the caller is expected never to attempt it.
func (l *LogicEnv) Bind(ident Ident, vc VClosure) {
	root := l.find(int(ident))
	l.entries[root].bound = vc
}

// GetType returns ident's first-order type tag.
func (l *LogicEnv) GetType(ident Ident) cbpv.ValueType {
	return l.entries[l.find(int(ident))].ptype
}

// Clone deep-copies the store so a branch point (Choice, or a logic-
// variable split in Ifz/Match/Case) gives each successor machine an
// independent lineage (spec invariant I6, §5 "Shared-resource policy").
func (l *LogicEnv) Clone() *LogicEnv {
	entries := make([]logicEntry, len(l.entries))
	copy(entries, l.entries)
	parent := make([]int, len(l.parent))
	copy(parent, l.parent)
	return &LogicEnv{entries: entries, parent: parent}
}
