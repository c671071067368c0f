package check

import (
	"errors"
	"fmt"

	"github.com/bolt-lang/bolt/internal/ast"
	"github.com/bolt-lang/bolt/internal/diag"
	"github.com/bolt-lang/bolt/internal/types"
)

// errOccursCheck and errArityMismatch are sentinels unifyCore returns so the
// caller can select the right diagnostic code (spec.md §4.I step 3, §4.I
// "Kind checking is implicit"); every other failure is a plain
// UnificationError.
var errOccursCheck = errors.New("occurs check")

type arityMismatchError struct{ expected, actual int }

func (e *arityMismatchError) Error() string {
	return fmt.Sprintf("arity mismatch: expected %d, got %d", e.expected, e.actual)
}

// linkVar links v to t and records the link on the trail so a failed
// speculative match can be undone (grounded on
// _examples/wdamron-poly/unify.go's stashLink/unstashLinks discipline,
// simplified since bolt has no weak-variable tracking to restore).
func (c *Checker) linkVar(v *types.Var, t types.Type) {
	v.SetLink(t)
	c.trail = append(c.trail, v)
}

func (c *Checker) rollbackTo(mark int) {
	for i := len(c.trail) - 1; i >= mark; i-- {
		c.trail[i].SetLink(nil)
	}
	c.trail = c.trail[:mark]
}

// occursAdjustLevel walks t, failing if it finds id (the occurs check), and
// otherwise lowers the level of any unbound variable it finds whose level
// exceeds level — the level-based generalization bookkeeping from
// _examples/wdamron-poly/unify.go's occursAdjustLevels.
func occursAdjustLevel(id, level int, t types.Type) error {
	switch t := types.RealType(t).(type) {
	case *types.Var:
		if t.IsGeneric() {
			return errors.New("generic variable encountered during unification")
		}
		if t.Id() == id {
			return errOccursCheck
		}
		if t.Level() > level {
			t.SetLevel(level)
		}
		return nil
	case *types.App:
		if err := occursAdjustLevel(id, level, t.Head); err != nil {
			return err
		}
		for _, a := range t.Args {
			if err := occursAdjustLevel(id, level, a); err != nil {
				return err
			}
		}
		return nil
	case *types.Arrow:
		for _, p := range t.Params {
			if err := occursAdjustLevel(id, level, p); err != nil {
				return err
			}
		}
		return occursAdjustLevel(id, level, t.Result)
	case *types.Tuple:
		for _, e := range t.Elems {
			if err := occursAdjustLevel(id, level, e); err != nil {
				return err
			}
		}
		return nil
	case *types.Record:
		for _, f := range t.Fields {
			if err := occursAdjustLevel(id, level, f.Type); err != nil {
				return err
			}
		}
		return nil
	default:
		return nil
	}
}

// unifyCore performs structural equality unification with the occurs check,
// mutating variable links through linkVar (spec.md §4.I step 3: "Equality by
// union-find on unification variables + structural unification with the
// occurs check").
func (c *Checker) unifyCore(a, b types.Type) error {
	a, b = types.RealType(a), types.RealType(b)
	if a == b {
		return nil
	}

	if av, ok := a.(*types.Var); ok {
		if err := occursAdjustLevel(av.Id(), av.Level(), b); err != nil {
			return err
		}
		c.linkVar(av, b)
		return nil
	}
	if bv, ok := b.(*types.Var); ok {
		if err := occursAdjustLevel(bv.Id(), bv.Level(), a); err != nil {
			return err
		}
		c.linkVar(bv, a)
		return nil
	}

	switch a := a.(type) {
	case *types.Con:
		if b, ok := b.(*types.Con); ok && a.Name == b.Name {
			return nil
		}
	case *types.App:
		b, ok := b.(*types.App)
		if !ok {
			break
		}
		if len(a.Args) != len(b.Args) {
			return &arityMismatchError{expected: len(a.Args), actual: len(b.Args)}
		}
		if err := c.unifyCore(a.Head, b.Head); err != nil {
			return err
		}
		for i := range a.Args {
			if err := c.unifyCore(a.Args[i], b.Args[i]); err != nil {
				return err
			}
		}
		return nil
	case *types.Arrow:
		b, ok := b.(*types.Arrow)
		if !ok || len(a.Params) != len(b.Params) {
			break
		}
		for i := range a.Params {
			if err := c.unifyCore(a.Params[i], b.Params[i]); err != nil {
				return err
			}
		}
		return c.unifyCore(a.Result, b.Result)
	case *types.Tuple:
		b, ok := b.(*types.Tuple)
		if !ok || len(a.Elems) != len(b.Elems) {
			break
		}
		for i := range a.Elems {
			if err := c.unifyCore(a.Elems[i], b.Elems[i]); err != nil {
				return err
			}
		}
		return nil
	case *types.Record:
		if b, ok := b.(*types.Record); ok && a.Name == b.Name {
			return nil
		}
	}

	return fmt.Errorf("failed to unify %s with %s", types.String(a), types.String(b))
}

// unify solves one equality constraint, reporting a diagnostic anchored at
// node on failure and leaving node's type an unconstrained fresh variable so
// downstream checks keep producing meaningful diagnostics (spec.md §7).
func (c *Checker) unify(a, b types.Type, node ast.Node) {
	mark := len(c.trail)
	err := c.unifyCore(a, b)
	if err == nil {
		return
	}
	c.rollbackTo(mark)

	var am *arityMismatchError
	switch {
	case errors.Is(err, errOccursCheck):
		c.diags.Errorf(diag.OccursCheck, node.Range(), node.ID(),
			"occurs check failed unifying %s with %s", types.String(a), types.String(b))
	case errors.As(err, &am):
		c.diags.Errorf(diag.ArityMismatch, node.Range(), node.ID(),
			"arity mismatch: expected %d type arguments, got %d", am.expected, am.actual)
	default:
		c.diags.Errorf(diag.UnificationError, node.Range(), node.ID(),
			"cannot unify %s with %s", types.String(a), types.String(b))
	}
}

// tryUnify attempts a unification speculatively, undoing every link it made
// if it fails. Used by class-constraint discharge to test a candidate
// instance without corrupting state on a failed match (spec.md §4.I step 3:
// "matching, not unification" — implemented here as unification against a
// freshly instantiated copy of the instance's argument types, so the
// instance's own variables are the only ones at risk of a discarded link).
func (c *Checker) tryUnify(a, b types.Type) bool {
	mark := len(c.trail)
	if err := c.unifyCore(a, b); err != nil {
		c.rollbackTo(mark)
		return false
	}
	return true
}
