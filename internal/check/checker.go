// Package check implements the type checker (component I): a two-phase
// Hindley-Milner inference engine extended with type-class constraints,
// over the scope-annotated CST produced by internal/parser and
// internal/ast.
//
// Structured as two passes: collection of classes, instances and
// constructors (collect.go), then per-SCC body checking (generalize.go),
// with the union-find/level-based inference engine in unify.go and
// class-constraint discharge in classsolve.go.
package check

import (
	"github.com/bolt-lang/bolt/internal/ast"
	"github.com/bolt-lang/bolt/internal/diag"
	"github.com/bolt-lang/bolt/internal/types"
)

// Checker carries all cross-declaration state for one source file: the
// running variable id counter, the current let-level, the class/instance
// environment, and the diagnostic sink (spec.md §4.I, §5).
type Checker struct {
	diags *diag.Store

	classEnv *types.ClassEnv

	// nominalTypes maps a struct/enum declaration's name to the Type that
	// stands for it, populated during collection before any signature or
	// body is resolved so mutually-referencing declarations can see each
	// other's names.
	nominalTypes map[string]types.Type

	// structOrder lists struct names in declaration order, so record
	// expression checking (infer.go) has a deterministic scan order when
	// matching a `{ field = value, ... }` literal against its struct type.
	structOrder []string

	nextVarID int
	level     int

	// sccOuterLevel is the level that was active just before the SCC
	// currently being checked was entered, i.e. the "free(env)" boundary
	// generalization and class-constraint deferral are measured against
	// (spec.md §4.I phase 2 step 4).
	sccOuterLevel int

	// trail records every variable linked during unification so a failed
	// speculative instance match can be undone (see unify.go).
	trail []*types.Var

	// curConstraints accumulates the class/equality constraints generated
	// while inferring the body of the declaration currently being checked
	// (reset per declaration by checkSCC; see infer.go).
	curConstraints []types.Constraint

	// env is the accumulated name -> scheme environment, threaded through
	// each SCC in dependency order (spec.md §4.I phase 2 step 4:
	// generalization is measured against "free(env)" as it stood before
	// the SCC being solved).
	env types.Env
}

// NewChecker constructs a checker with an empty environment and class
// environment, reporting into diags. The environment is seeded with the
// two nullary Bool constructors every scenario's `if` test produces or
// consumes (spec.md §8): `True`/`False` have no declaration of their own
// to collect a scheme from, the same way IntegerLiteral/StringLiteral
// nodes get a type straight from inferExpr rather than a binding.
func NewChecker(diags *diag.Store) *Checker {
	env := types.NewEnv().Builder().
		Set("True", types.Monomorphic(types.Bool())).
		Set("False", types.Monomorphic(types.Bool())).
		Build()
	return &Checker{
		diags:        diags,
		classEnv:     types.NewClassEnv(),
		nominalTypes: make(map[string]types.Type),
		env:          env,
		level:        1,
	}
}

// Check runs both phases over one source file (spec.md §4.I).
func Check(file *ast.SourceFile, diags *diag.Store) *Checker {
	c := NewChecker(diags)
	c.collectClasses(file.Decls)
	sccs := orderDeclarationsBySCC(valueDeclarations(file.Decls))
	for _, scc := range sccs {
		c.checkSCC(scc)
	}
	// A bare expression in statement position at file scope (e.g. a
	// literal on its own line) isn't a value declaration and so never
	// enters the SCC graph; it still gets a type, at the top level, same
	// as one would inside a block (spec.md §8 scenario 1).
	for _, d := range file.Decls {
		if s, ok := d.(*ast.ExprStatement); ok {
			c.curConstraints = nil
			c.inferExpr(s.Expr)
			c.solveClassConstraints(&workItem{node: s})
		}
	}
	return c
}

// Env exposes the final top-level environment, used by tests that assert
// on an inferred scheme's printed form.
func (c *Checker) Env() types.Env { return c.env }

// ClassEnv exposes the checker's class/instance environment.
func (c *Checker) ClassEnv() *types.ClassEnv { return c.classEnv }

func (c *Checker) freshVarID() int {
	c.nextVarID++
	return c.nextVarID
}

// freshVar allocates a fresh unification variable at the current level.
func (c *Checker) freshVar() *types.Var {
	return types.NewVar(c.freshVarID(), c.level)
}

// enterLevel bumps the let-level on entering a new declaration's
// right-hand side (spec.md §5 "added": levels are a push/pop counter).
func (c *Checker) enterLevel() {
	c.level++
}

// exitLevel restores the let-level on leaving a declaration's right-hand
// side.
func (c *Checker) exitLevel() {
	c.level--
}

// bindPatternName extracts the bound name from a let-header pattern when it
// is a simple binder, the same rule the scope builder in internal/ast uses.
func bindPatternName(pat ast.Node) (string, bool) {
	if b, ok := pat.(*ast.BindPattern); ok {
		return b.Name, true
	}
	return "", false
}

// valueDeclarations filters a declaration list down to the LetDeclarations
// that Phase 1's dependency graph is built over (spec.md §4.I: "a dependency
// graph over value declarations").
func valueDeclarations(decls []ast.Node) []*ast.LetDeclaration {
	var out []*ast.LetDeclaration
	for _, d := range decls {
		switch d := d.(type) {
		case *ast.LetDeclaration:
			out = append(out, d)
		case *ast.InstanceDeclaration:
			for _, m := range d.Body {
				if let, ok := m.(*ast.LetDeclaration); ok {
					out = append(out, let)
				}
			}
		}
	}
	return out
}
