package translate

import (
	"flp/internal/ast"
	"flp/internal/cbpv"
	"flp/internal/machine"
)

// Program is a translated source file: a single computation closed
// over the empty environment (spec §6's "(main_comp, initial_env)
// pair"). Func declarations become let-bound thunks ahead of Main;
// a file with no top-level statement has nothing runnable and Program
// is built around Return(Zero) as an inert placeholder main.
type Program struct {
	Comp cbpv.Computation
	Env  *machine.Env
}

// Translate lowers an ast.Program into CBPV. Top-level functions are
// bound in declaration order as a chain of lets (machine.stepBind's
// Return case extends Env one slot per function, persistent across
// everything after it), so a later function or Main may call any
// earlier one, and any function may call itself via Rec. There is no
// forward reference or mutual recursion between top-level functions,
// unlike the dynamic name-table lookup in the original prototype —
// the de Bruijn machine has no such table (see DESIGN.md).
func Translate(prog *ast.Program) (*Program, error) {
	sc := newScope()
	lets := make([]cbpv.Computation, len(prog.Decls))
	for i, d := range prog.Decls {
		c, err := translateFuncDecl(d, sc)
		if err != nil {
			return nil, err
		}
		lets[i] = cbpv.Return(cbpv.Thunk(c))
		sc = sc.push(d.Name.Name)
	}

	var mainComp cbpv.Computation
	if prog.Main != nil {
		c, err := translateStmt(prog.Main, sc)
		if err != nil {
			return nil, err
		}
		mainComp = c
	} else {
		mainComp = cbpv.Return(cbpv.Zero())
	}

	comp := mainComp
	for i := len(lets) - 1; i >= 0; i-- {
		comp = cbpv.Bind(lets[i], comp)
	}

	return &Program{Comp: comp, Env: machine.EmptyEnv()}, nil
}

func (p *Program) String() string {
	return p.Comp.String()
}
