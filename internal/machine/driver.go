package machine

import "flp/internal/cbpv"

// Result is the outcome of a fuel-bounded evaluation (spec §4.8, §7
// kind 3): Answers are always populated with whatever was collected,
// even when fuel ran out before the frontier emptied.
type Result struct {
	Answers   []cbpv.Value
	Exhausted bool // true if fuel reached zero with live machines remaining
}

// Eval seeds one machine from (comp, env) and drives it to completion
// or exhaustion (spec §4.8). Each iteration steps every live machine,
// partitions successors into done/live, collects done answers, and
// decrements fuel once. A structural error in any machine aborts the
// whole evaluation (spec §7 kind 1); a logical failure just prunes that
// machine (kind 2, §4.7) via zero-successors.
func Eval(comp cbpv.Computation, env *Env, fuel int) (Result, error) {
	machines := []Machine{{
		Comp: comp,
		Env:  env,
		LEnv: NewLogicEnv(),
		SEnv: NewSuspEnv(),
	}}

	var answers []cbpv.Value

	for fuel > 0 && len(machines) > 0 {
		var successors []Machine
		for _, m := range machines {
			next, err := m.Step()
			if err != nil {
				return Result{}, err
			}
			successors = append(successors, next...)
		}

		var live []Machine
		for _, m := range successors {
			if !m.Done {
				live = append(live, m)
				continue
			}
			v, err := answerOf(m)
			if err != nil {
				return Result{}, err
			}
			answers = append(answers, v)
		}

		machines = live
		fuel--
	}

	return Result{Answers: answers, Exhausted: fuel == 0 && len(machines) > 0}, nil
}

// answerOf closes a done machine's returned value to a ground cbpv.Value,
// surfacing any still-unbound logic variable symbolically rather than
// erroring (spec §4.8, §9 Open Question decision — see SPEC_FULL.md §1).
func answerOf(m Machine) (cbpv.Value, error) {
	ret, ok := m.Comp.(*cbpv.ReturnComp)
	if !ok {
		return nil, structErr("done machine's computation is not Return: %T", m.Comp)
	}
	return CloseVal(Clos(ret.Val, m.Env), m.LEnv, m.SEnv, true)
}
