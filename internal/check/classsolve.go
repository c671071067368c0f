package check

import (
	"github.com/bolt-lang/bolt/internal/diag"
	"github.com/bolt-lang/bolt/internal/types"
)

// solveClassConstraints drains c.curConstraints into wi.residual, solving
// every Equal constraint immediately (they should already be solved by the
// time this runs, since c.unify runs eagerly during generation, but a
// scheme's own declared constraints can still carry one) and attempting to
// discharge every Class constraint against either the declaration's assumed
// context or the registered instance environment (spec.md §4.I step 3:
// "discharging class constraints... by searching the instance environment
// for a matching instance").
func (c *Checker) solveClassConstraints(wi *workItem) {
	flat := types.Flatten(c.curConstraints)
	residual := make([]types.Constraint, 0, len(flat))
	for _, ct := range flat {
		switch ct.Kind {
		case types.EqualConstraint:
			c.unify(ct.Left, ct.Right, wi.node)
		case types.ClassConstraint:
			if !c.dischargeClassConstraint(ct, wi) {
				residual = append(residual, ct)
			}
		}
	}
	wi.residual = residual
	c.curConstraints = nil
}

// dischargeClassConstraint tries, in order: (1) a match against the
// declaration's own assumed context (its instantiated declared
// constraints, when it has an explicit signature — spec.md §9's decision
// that a signature's qualifier context is available to its own body, not
// just its callers); (2) deferral, when the constraint still mentions a
// variable that this SCC will generalize over (matching a concrete
// instance now would be premature — the variable could still unify with
// anything); (3) a concrete instance lookup. Returns true if the
// constraint is discharged (including the "no instance found" case, which
// reports 2101 and then drops the constraint so it cannot cascade into
// further spurious diagnostics).
func (c *Checker) dischargeClassConstraint(ct types.Constraint, wi *workItem) bool {
	for _, a := range wi.assumed {
		if a.Kind == types.ClassConstraint && a.ClassName == ct.ClassName && sameArgs(a.Args, ct.Args) {
			return true
		}
	}

	for _, arg := range ct.Args {
		if len(types.FreeVars(arg, c.sccOuterLevel)) > 0 {
			return false
		}
	}

	for _, inst := range c.classEnv.Instances(ct.ClassName) {
		if len(inst.Args) != len(ct.Args) {
			continue
		}
		sub := make(map[*types.Var]*types.Var)
		freshArgs := make([]types.Type, len(inst.Args))
		for i, a := range inst.Args {
			freshArgs[i] = c.freshenType(a, sub)
		}
		mark := len(c.trail)
		matched := true
		for i := range freshArgs {
			if !c.tryUnify(freshArgs[i], ct.Args[i]) {
				matched = false
				break
			}
		}
		if !matched {
			c.rollbackTo(mark)
			continue
		}
		return true
	}

	c.diags.Errorf(diag.InstanceNotFound, wi.node.Range(), wi.node.ID(),
		"no instance of %s for %s", ct.ClassName, argsString(ct.Args))
	return true
}

func sameArgs(a, b []types.Type) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if types.String(a[i]) != types.String(b[i]) {
			return false
		}
	}
	return true
}

func argsString(args []types.Type) string {
	s := ""
	for i, a := range args {
		if i > 0 {
			s += " "
		}
		s += types.String(a)
	}
	return s
}

// freshenType copies t, replacing every generalized variable it reaches
// with a fresh unification variable at the current level (consistently,
// via sub), and leaving every other node shared. Used to instantiate an
// instance's own argument types before matching them against a residual
// class constraint, the same way Scheme.Instantiate does for a let
// declaration's scheme.
func (c *Checker) freshenType(t types.Type, sub map[*types.Var]*types.Var) types.Type {
	switch rt := types.RealType(t).(type) {
	case *types.Var:
		if !rt.IsGeneric() {
			return rt
		}
		if repl, ok := sub[rt]; ok {
			return repl
		}
		fresh := c.freshVar()
		sub[rt] = fresh
		return fresh
	case *types.App:
		args := make([]types.Type, len(rt.Args))
		for i, a := range rt.Args {
			args[i] = c.freshenType(a, sub)
		}
		return &types.App{Head: c.freshenType(rt.Head, sub), Args: args}
	case *types.Arrow:
		params := make([]types.Type, len(rt.Params))
		for i, p := range rt.Params {
			params[i] = c.freshenType(p, sub)
		}
		return &types.Arrow{Params: params, Result: c.freshenType(rt.Result, sub)}
	case *types.Tuple:
		elems := make([]types.Type, len(rt.Elems))
		for i, e := range rt.Elems {
			elems[i] = c.freshenType(e, sub)
		}
		return &types.Tuple{Elems: elems}
	default:
		return rt
	}
}
