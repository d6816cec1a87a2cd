package machine

import "flp/internal/cbpv"

// Frame is one stack entry awaiting a returned value (spec §3 "Stack").
type Frame interface{ isFrame() }

func (*ValueFrame) isFrame() {}
func (*ToFrame) isFrame()    {}
func (*SetFrame) isFrame()   {}

// ValueFrame is an argument awaiting a Lambda.
type ValueFrame struct{ Val cbpv.Value }

// ToFrame is a continuation awaiting a produced value.
type ToFrame struct{ Cont cbpv.Computation }

// SetFrame marks a suspension-completion point: when a value reaches
// this frame it is written into suspension Ident and Cont resumes.
type SetFrame struct {
	Ident Ident
	Cont  cbpv.Computation
}

// StackEntry pairs a frame with the environment it was pushed under.
type StackEntry struct {
	Frame Frame
	Env   *Env
}

// Machine is the tuple (comp, env, logic-store, susp-store, stack,
// done) of spec §3. Done is true only once the machine's step relation
// has nothing left to do: stack empty, comp = Return v, and v references
// no pending suspension (it may still contain unbound logic variables,
// which the driver surfaces symbolically).
type Machine struct {
	Comp  cbpv.Computation
	Env   *Env
	LEnv  *LogicEnv
	SEnv  *SuspEnv
	Stack []StackEntry
	Done  bool
}

// pushValue and pushSet always copy the backing array rather than
// append in place. A branch point (Choice, a logic-variable split)
// copies the Machine struct by value, so sibling successors share one
// []StackEntry header; appending in place would write into that shared
// backing array whenever a prior pop (stepReturn/stepLambda reslicing)
// left spare capacity, corrupting one sibling's stack top with
// another's push. Copying here keeps each successor's stack as
// independent as its store clones (spec I6), matching the Rust
// reference's push_closure, which clones the stack on every push.
func pushValue(stack []StackEntry, val cbpv.Value, env *Env) []StackEntry {
	return copyAppend(stack, StackEntry{Frame: &ValueFrame{Val: val}, Env: env})
}

func pushSet(stack []StackEntry, ident Ident, cont cbpv.Computation, env *Env) []StackEntry {
	return copyAppend(stack, StackEntry{Frame: &SetFrame{Ident: ident, Cont: cont}, Env: env})
}

func copyAppend(stack []StackEntry, entry StackEntry) []StackEntry {
	stk := make([]StackEntry, len(stack), len(stack)+1)
	copy(stk, stack)
	return append(stk, entry)
}

// forceMachine rewrites m to evaluate a pending suspension's
// computation, pushing a Set frame so the original computation resumes
// once the suspension completes (spec §4.5, §4.6).
func forceMachine(m Machine, req *SuspRequest) Machine {
	m.Stack = pushSet(m.Stack, req.Ident, m.Comp, m.Env)
	m.Comp = req.Comp
	m.Env = req.Env
	return m
}

// Step performs one small-step transition, returning the machine's
// successors (spec §4.6). Zero successors with a nil error means the
// machine was pruned by logical failure (spec §4.7); a non-nil error
// is a structural/IR error (spec §7 kind 1) and is fatal to the whole
// evaluation.
func (m Machine) Step() ([]Machine, error) {
	switch c := m.Comp.(type) {

	case *cbpv.ReturnComp:
		return m.stepReturn(c)

	case *cbpv.BindComp:
		return m.stepBind(c)

	case *cbpv.ForceComp:
		return m.stepForce(c)

	case *cbpv.LambdaComp:
		return m.stepLambda(c)

	case *cbpv.AppComp:
		m.Stack = pushValue(m.Stack, c.Arg, m.Env)
		m.Comp = c.Op
		return []Machine{m}, nil

	case *cbpv.ChoiceComp:
		return m.stepChoice(c)

	case *cbpv.ExistsComp:
		ident := m.LEnv.Fresh(c.PType)
		m.Env = m.Env.ExtendLVar(ident)
		m.Comp = c.Body
		return []Machine{m}, nil

	case *cbpv.EquateComp:
		return m.stepEquate(c)

	case *cbpv.IfzComp:
		return m.stepIfz(c)

	case *cbpv.MatchComp:
		return m.stepMatch(c)

	case *cbpv.CaseComp:
		return m.stepCase(c)

	case *cbpv.RecComp:
		thunkEnv := m.Env
		m.Env = m.Env.ExtendVal(cbpv.Thunk(m.Comp), thunkEnv)
		m.Comp = c.Body
		return []Machine{m}, nil

	default:
		return nil, structErr("unknown computation variant %T", c)
	}
}

func (m Machine) stepReturn(c *cbpv.ReturnComp) ([]Machine, error) {
	if len(m.Stack) == 0 {
		req, err := FindSusp(Clos(c.Val, m.Env), m.LEnv, m.SEnv)
		if err != nil {
			return nil, err
		}
		if req != nil {
			return []Machine{forceMachine(m, req)}, nil
		}
		m.Done = true
		return []Machine{m}, nil
	}

	top := m.Stack[len(m.Stack)-1]
	rest := m.Stack[:len(m.Stack)-1]

	switch f := top.Frame.(type) {
	case *ValueFrame:
		return nil, structErr("return met a value frame")
	case *ToFrame:
		m.Env = top.Env.ExtendClos(Clos(c.Val, m.Env))
		m.Stack = rest
		m.Comp = f.Cont
		return []Machine{m}, nil
	case *SetFrame:
		m.SEnv.Set(f.Ident, Clos(c.Val, m.Env))
		m.Env = top.Env
		m.Stack = rest
		m.Comp = f.Cont
		return []Machine{m}, nil
	default:
		return nil, structErr("unknown stack frame %T", top.Frame)
	}
}

func (m Machine) stepBind(c *cbpv.BindComp) ([]Machine, error) {
	if ret, ok := c.Comp.(*cbpv.ReturnComp); ok {
		m.Env = m.Env.ExtendClos(Clos(ret.Val, m.Env))
		m.Comp = c.Cont
		return []Machine{m}, nil
	}
	ident := m.SEnv.Fresh(c.Comp, m.Env)
	m.Env = m.Env.ExtendSusp(ident)
	m.Comp = c.Cont
	return []Machine{m}, nil
}

func (m Machine) stepForce(c *cbpv.ForceComp) ([]Machine, error) {
	head, req, err := CloseHead(Clos(c.Val, m.Env), m.LEnv, m.SEnv)
	if err != nil {
		return nil, err
	}
	if req != nil {
		return []Machine{forceMachine(m, req)}, nil
	}
	switch x := head.(type) {
	case *ClosVC:
		th, ok := x.Val.(*cbpv.ThunkValue)
		if !ok {
			return nil, structErr("cannot force a non-thunk value: %s", x.Val)
		}
		m.Comp = th.Comp
		m.Env = x.Env
		return []Machine{m}, nil
	case *LogicVarVC:
		return nil, structErr("cannot force an unbound logic variable")
	default:
		return nil, structErr("unexpected closure shape in Force: %T", head)
	}
}

func (m Machine) stepLambda(c *cbpv.LambdaComp) ([]Machine, error) {
	if len(m.Stack) == 0 {
		return nil, structErr("lambda met an empty stack")
	}
	top := m.Stack[len(m.Stack)-1]
	vf, ok := top.Frame.(*ValueFrame)
	if !ok {
		return nil, structErr("lambda met a non-value frame")
	}
	m.Stack = m.Stack[:len(m.Stack)-1]
	m.Env = m.Env.ExtendVal(vf.Val, top.Env)
	m.Comp = c.Body
	return []Machine{m}, nil
}

func (m Machine) stepChoice(c *cbpv.ChoiceComp) ([]Machine, error) {
	successors := make([]Machine, 0, len(c.Branches))
	for _, branch := range c.Branches {
		successor := m
		successor.Comp = branch
		successor.LEnv = m.LEnv.Clone()
		successor.SEnv = m.SEnv.Clone()
		successors = append(successors, successor)
	}
	return successors, nil
}

func (m Machine) stepEquate(c *cbpv.EquateComp) ([]Machine, error) {
	ok, req, err := Unify(c.Lhs, c.Rhs, m.Env, m.LEnv, m.SEnv)
	if err != nil {
		return nil, err
	}
	if req != nil {
		return []Machine{forceMachine(m, req)}, nil
	}
	if !ok {
		return nil, nil
	}
	m.Comp = c.Body
	return []Machine{m}, nil
}

func (m Machine) stepIfz(c *cbpv.IfzComp) ([]Machine, error) {
	head, req, err := CloseHead(Clos(c.Num, m.Env), m.LEnv, m.SEnv)
	if err != nil {
		return nil, err
	}
	if req != nil {
		return []Machine{forceMachine(m, req)}, nil
	}
	switch x := head.(type) {
	case *ClosVC:
		switch v := x.Val.(type) {
		case cbpv.ZeroValue:
			m.Comp = c.ZeroK
			return []Machine{m}, nil
		case *cbpv.SuccValue:
			m.Env = m.Env.ExtendClos(Clos(v.Pred, x.Env))
			m.Comp = c.SuccK
			return []Machine{m}, nil
		default:
			return nil, structErr("ifz on a non-numeric value: %s", v)
		}
	case *LogicVarVC:
		zero := m
		zero.LEnv = m.LEnv.Clone()
		zero.SEnv = m.SEnv.Clone()
		zero.LEnv.Bind(x.Ident, Clos(cbpv.Zero(), EmptyEnv()))
		zero.Comp = c.ZeroK

		succ := m
		succ.LEnv = m.LEnv.Clone()
		succ.SEnv = m.SEnv.Clone()
		predIdent := succ.LEnv.Fresh(cbpv.Nat)
		succ.LEnv.Bind(x.Ident, Clos(cbpv.Succ(cbpv.Var(0)), EmptyEnv().ExtendLVar(predIdent)))
		succ.Env = m.Env.ExtendLVar(predIdent)
		succ.Comp = c.SuccK

		return []Machine{zero, succ}, nil
	default:
		return nil, structErr("unexpected closure shape in Ifz: %T", head)
	}
}

func (m Machine) stepMatch(c *cbpv.MatchComp) ([]Machine, error) {
	head, req, err := CloseHead(Clos(c.List, m.Env), m.LEnv, m.SEnv)
	if err != nil {
		return nil, err
	}
	if req != nil {
		return []Machine{forceMachine(m, req)}, nil
	}
	switch x := head.(type) {
	case *ClosVC:
		switch v := x.Val.(type) {
		case cbpv.NilValue:
			m.Comp = c.NilK
			return []Machine{m}, nil
		case *cbpv.ConsValue:
			m.Env = m.Env.ExtendClos(Clos(v.Head, x.Env)).ExtendClos(Clos(v.Tail, x.Env))
			m.Comp = c.ConsK
			return []Machine{m}, nil
		default:
			return nil, structErr("match on a non-list value: %s", v)
		}
	case *LogicVarVC:
		lt, ok := m.LEnv.GetType(x.Ident).(cbpv.ListType)
		if !ok {
			return nil, structErr("match on a logic variable of non-list type")
		}

		nilM := m
		nilM.LEnv = m.LEnv.Clone()
		nilM.SEnv = m.SEnv.Clone()
		nilM.LEnv.Bind(x.Ident, Clos(cbpv.Nil(), EmptyEnv()))
		nilM.Comp = c.NilK

		consM := m
		consM.LEnv = m.LEnv.Clone()
		consM.SEnv = m.SEnv.Clone()
		headIdent := consM.LEnv.Fresh(lt.Elem)
		tailIdent := consM.LEnv.Fresh(cbpv.List(lt.Elem))
		boundEnv := EmptyEnv().ExtendLVar(headIdent).ExtendLVar(tailIdent)
		consM.LEnv.Bind(x.Ident, Clos(cbpv.Cons(cbpv.Var(1), cbpv.Var(0)), boundEnv))
		consM.Env = m.Env.ExtendLVar(headIdent).ExtendLVar(tailIdent)
		consM.Comp = c.ConsK

		return []Machine{nilM, consM}, nil
	default:
		return nil, structErr("unexpected closure shape in Match: %T", head)
	}
}

func (m Machine) stepCase(c *cbpv.CaseComp) ([]Machine, error) {
	head, req, err := CloseHead(Clos(c.Sum, m.Env), m.LEnv, m.SEnv)
	if err != nil {
		return nil, err
	}
	if req != nil {
		return []Machine{forceMachine(m, req)}, nil
	}
	switch x := head.(type) {
	case *ClosVC:
		switch v := x.Val.(type) {
		case *cbpv.InlValue:
			m.Env = m.Env.ExtendClos(Clos(v.Val, x.Env))
			m.Comp = c.InlK
			return []Machine{m}, nil
		case *cbpv.InrValue:
			m.Env = m.Env.ExtendClos(Clos(v.Val, x.Env))
			m.Comp = c.InrK
			return []Machine{m}, nil
		default:
			return nil, structErr("case on a non-sum value: %s", v)
		}
	case *LogicVarVC:
		st, ok := m.LEnv.GetType(x.Ident).(cbpv.SumType)
		if !ok {
			return nil, structErr("case on a logic variable of non-sum type")
		}

		// Symmetric with Ifz/Match: the reference sources stub this
		// branch as todo!(); this resolves it per the Open Question in
		// spec §9 ("intended specification").
		inlM := m
		inlM.LEnv = m.LEnv.Clone()
		inlM.SEnv = m.SEnv.Clone()
		leftIdent := inlM.LEnv.Fresh(st.Left)
		inlM.LEnv.Bind(x.Ident, Clos(cbpv.Inl(cbpv.Var(0)), EmptyEnv().ExtendLVar(leftIdent)))
		inlM.Env = m.Env.ExtendLVar(leftIdent)
		inlM.Comp = c.InlK

		inrM := m
		inrM.LEnv = m.LEnv.Clone()
		inrM.SEnv = m.SEnv.Clone()
		rightIdent := inrM.LEnv.Fresh(st.Right)
		inrM.LEnv.Bind(x.Ident, Clos(cbpv.Inr(cbpv.Var(0)), EmptyEnv().ExtendLVar(rightIdent)))
		inrM.Env = m.Env.ExtendLVar(rightIdent)
		inrM.Comp = c.InrK

		return []Machine{inlM, inrM}, nil
	default:
		return nil, structErr("unexpected closure shape in Case: %T", head)
	}
}
