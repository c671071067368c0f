package check

import (
	"github.com/bolt-lang/bolt/internal/ast"
	"github.com/bolt-lang/bolt/internal/diag"
	"github.com/bolt-lang/bolt/internal/types"
)

// workItem carries the per-declaration bookkeeping checkSCC threads between
// its three passes: pre-registration, body inference, and generalization.
type workItem struct {
	decl      *ast.LetDeclaration
	paramVars []types.Type
	resultVar types.Type

	// node is the node class-constraint diagnostics anchor to: decl for a
	// genuine declaration, or some other node when solveClassConstraints
	// is reused for a bare top-level expression (checker.go) that has no
	// declaration of its own.
	node ast.Node

	// finalType is the declaration's working type: either the arrow built
	// from paramVars/resultVar, or (when an explicit signature is present)
	// the freshly instantiated declared type that working type was unified
	// against.
	finalType types.Type

	// declScheme is the pre-instantiation scheme built from an explicit
	// signature, nil when the declaration has none. When present it is
	// installed as-is (signature pinning, spec.md §4.I "Signatures").
	declScheme         *types.Scheme
	declaredClassNames []string

	// assumed holds the explicit signature's instantiated constraints,
	// available to discharge the body's own obligations (spec.md §9: a
	// declared context is available to its own body, not only its callers).
	assumed []types.Constraint

	// residual holds class constraints left undischarged after the body has
	// been fully checked, to be generalized over or checked against an
	// explicit signature.
	residual []types.Constraint
}

// checkSCC runs phase 2 of the checker over one strongly connected
// component of mutually-referencing declarations (spec.md §4.I phase 2):
// every declaration in the SCC is given a fresh monomorphic working type
// up front so the whole component can reference itself and its siblings,
// each body is then walked to generate and eagerly solve constraints, and
// finally each declaration is independently generalized against the level
// that was active before the SCC was entered.
func (c *Checker) checkSCC(scc []*ast.LetDeclaration) {
	if len(scc) == 0 {
		return
	}

	outerLevel := c.level
	c.sccOuterLevel = outerLevel
	c.enterLevel()

	items := make([]*workItem, len(scc))
	for i, d := range scc {
		wi := &workItem{decl: d, node: d}

		paramVars := make([]types.Type, len(d.Params))
		for j := range paramVars {
			paramVars[j] = c.freshVar()
		}
		resultVar := c.freshVar()
		wi.paramVars, wi.resultVar = paramVars, resultVar

		var working types.Type = resultVar
		if len(paramVars) > 0 {
			working = &types.Arrow{Params: paramVars, Result: resultVar}
		}

		if d.Signature != nil {
			tv := newTyVarScope(c)
			sigConstraints, sigType := c.resolveQualifiedType(d.Signature, tv)
			declScheme := &types.Scheme{Vars: tv.allVars(), Constraints: sigConstraints, Type: sigType}
			wi.declScheme = declScheme
			for _, ct := range sigConstraints {
				if ct.Kind == types.ClassConstraint {
					wi.declaredClassNames = append(wi.declaredClassNames, ct.ClassName)
				}
			}

			instType, instConstraints := declScheme.Instantiate(c.level, c.freshVarID)
			wi.assumed = instConstraints
			c.unify(working, instType, d)
			working = instType
		}
		wi.finalType = working

		_, inInstance := d.Parent().(*ast.InstanceDeclaration)
		if name, ok := bindPatternName(d.Name); ok && !inInstance {
			c.env = c.env.Builder().Set(name, types.Monomorphic(working)).Build()
		}
		items[i] = wi
	}

	for _, wi := range items {
		d := wi.decl
		c.curConstraints = nil
		for j, p := range d.Params {
			c.inferPattern(p.Pattern, wi.paramVars[j])
		}
		if d.Body != nil {
			if block, ok := d.Body.(*ast.Block); ok {
				c.checkBlock(block, wi.resultVar)
			} else {
				bodyType := c.inferExpr(d.Body)
				c.unify(bodyType, wi.resultVar, d)
			}
		}
		c.solveClassConstraints(wi)
	}

	c.exitLevel()

	for _, wi := range items {
		c.generalizeOne(wi, outerLevel)
	}
}

func (c *Checker) generalizeOne(wi *workItem, outerLevel int) {
	name, ok := bindPatternName(wi.decl.Name)
	if !ok {
		return
	}
	// An instance's method implementation never replaces the class method's
	// scheme in the environment, so callers keep the class constraint.
	if _, inInstance := wi.decl.Parent().(*ast.InstanceDeclaration); inInstance {
		return
	}

	if wi.declScheme != nil {
		for _, ct := range wi.residual {
			if ct.Kind == types.ClassConstraint && !containsName(wi.declaredClassNames, ct.ClassName) {
				c.diags.Errorf(diag.TypeSignatureMismatch, wi.decl.Range(), wi.decl.ID(),
					"inferred constraint %s %s on %s is not covered by its declared signature",
					ct.ClassName, argsString(ct.Args), name)
			}
		}
		for _, v := range wi.declScheme.Vars {
			v.SetGeneric()
		}
		c.env = c.env.Builder().Set(name, wi.declScheme).Build()
		return
	}

	vars := dedupeVars(append(
		types.FreeVars(wi.finalType, outerLevel),
		types.FreeVarsInConstraints(wi.residual, outerLevel)...,
	))
	for _, v := range vars {
		v.SetGeneric()
	}
	scheme := &types.Scheme{Vars: vars, Constraints: wi.residual, Type: wi.finalType}
	c.env = c.env.Builder().Set(name, scheme).Build()
}

func dedupeVars(vs []*types.Var) []*types.Var {
	seen := make(map[*types.Var]bool, len(vs))
	out := make([]*types.Var, 0, len(vs))
	for _, v := range vs {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}

func containsName(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
