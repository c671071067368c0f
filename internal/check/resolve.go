package check

import (
	"github.com/bolt-lang/bolt/internal/ast"
	"github.com/bolt-lang/bolt/internal/types"
)

// tyVarScope maps a declaration's lowercase type-parameter names to the
// generic unification variables standing for them while a signature or
// struct/enum/class header is resolved. New names encountered that are not
// already bound are treated as additional implicit quantifiers (spec.md's
// qualType grammar never requires explicit quantifier binders).
type tyVarScope struct {
	vars  map[string]*types.Var
	order []string
	c     *Checker
}

func newTyVarScope(c *Checker) *tyVarScope {
	return &tyVarScope{vars: make(map[string]*types.Var), c: c}
}

func (s *tyVarScope) get(name string) *types.Var {
	if v, ok := s.vars[name]; ok {
		return v
	}
	v := s.c.freshVar()
	v.SetGeneric()
	s.vars[name] = v
	s.order = append(s.order, name)
	return v
}

// orderedFrom returns the scope's variables for names, in the order names
// lists them (allocating any not yet seen), used to build a Scheme's
// quantifier list deterministically.
func (s *tyVarScope) orderedFrom(names []string) []*types.Var {
	out := make([]*types.Var, 0, len(names))
	for _, n := range names {
		out = append(out, s.get(n))
	}
	return out
}

// allVars returns every variable the scope has allocated so far, in
// first-seen order. Used where (unlike a struct/enum/class header) there is
// no predeclared type-parameter list to drive orderedFrom — a let
// declaration's inline signature introduces its quantifiers implicitly,
// simply by using a lowercase name somewhere in its qualType.
func (s *tyVarScope) allVars() []*types.Var {
	return s.orderedFrom(s.order)
}

// builtinTypeNames are the scalar types every program can reference without
// an import (spec.md §4.I: IntegerLiteral ~ Int, StringLiteral ~ String;
// Bool appears in every scenario's `if` test).
var builtinTypeNames = map[string]bool{"Int": true, "String": true, "Bool": true}

// resolveType turns one type-expression node into a types.Type, resolving
// lowercase names against tv (fresh generic vars, shared within one
// signature/header) and uppercase names against builtins or the checker's
// registered nominal types.
func (c *Checker) resolveType(n ast.Node, tv *tyVarScope) types.Type {
	switch t := n.(type) {
	case *ast.NamedType:
		if t.Name == "" {
			return c.freshVar()
		}
		if r := []rune(t.Name); r[0] >= 'a' && r[0] <= 'z' {
			return tv.get(t.Name)
		}
		if builtinTypeNames[t.Name] {
			return &types.Con{Name: t.Name}
		}
		if nom, ok := c.nominalTypes[t.Name]; ok {
			return nom
		}
		return &types.Con{Name: t.Name}
	case *ast.AppType:
		head := c.resolveType(t.Head, tv)
		args := make([]types.Type, len(t.Args))
		for i, a := range t.Args {
			args[i] = c.resolveType(a, tv)
		}
		return &types.App{Head: head, Args: args}
	case *ast.ArrowType:
		params := make([]types.Type, len(t.Params))
		for i, p := range t.Params {
			params[i] = c.resolveType(p, tv)
		}
		return &types.Arrow{Params: params, Result: c.resolveType(t.Result, tv)}
	case *ast.TupleType:
		elems := make([]types.Type, len(t.Elements))
		for i, e := range t.Elements {
			elems[i] = c.resolveType(e, tv)
		}
		return &types.Tuple{Elems: elems}
	default:
		return c.freshVar()
	}
}

// resolveConstraint turns one constraint node into a types.Constraint.
func (c *Checker) resolveConstraint(n ast.Node, tv *tyVarScope) types.Constraint {
	switch t := n.(type) {
	case *ast.ClassConstraint:
		args := make([]types.Type, len(t.Args))
		for i, a := range t.Args {
			args[i] = c.resolveType(a, tv)
		}
		return types.Class(t.ClassName, args, t.ID())
	case *ast.EqualConstraint:
		return types.Equal(c.resolveType(t.Left, tv), c.resolveType(t.Right, tv), t.ID())
	default:
		return types.Constraint{}
	}
}

// resolveQualifiedType resolves a *ast.QualifiedType (or a bare type used in
// its place) into the constraints and underlying type it names.
func (c *Checker) resolveQualifiedType(n ast.Node, tv *tyVarScope) ([]types.Constraint, types.Type) {
	q, ok := n.(*ast.QualifiedType)
	if !ok {
		return nil, c.resolveType(n, tv)
	}
	cs := make([]types.Constraint, 0, len(q.Constraints))
	for _, cn := range q.Constraints {
		cs = append(cs, c.resolveConstraint(cn, tv))
	}
	return cs, c.resolveType(q.TypeAnnotation, tv)
}
