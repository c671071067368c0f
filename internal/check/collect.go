package check

import (
	"github.com/bolt-lang/bolt/internal/ast"
	"github.com/bolt-lang/bolt/internal/diag"
	"github.com/bolt-lang/bolt/internal/types"
)

// collectClasses runs Phase 1's class- and instance-environment
// construction (spec.md §4.I): "A class environment: each class declaration
// contributes (class-name, type-parameters, method-name -> method-scheme)."
// and "An instance environment: each instance contributes (class-name,
// instance-types, per-method declaration)." Struct/enum nominal types and
// constructor schemes are collected first (collectConstructors) so a
// class's or instance's signatures may reference them.
func (c *Checker) collectClasses(decls []ast.Node) {
	c.collectNominalPlaceholders(decls)
	c.collectConstructors(decls)

	for _, n := range decls {
		if d, ok := n.(*ast.ClassDeclaration); ok {
			c.collectClass(d)
		}
	}
	for _, n := range decls {
		if d, ok := n.(*ast.InstanceDeclaration); ok {
			c.collectInstance(d)
		}
	}
}

func (c *Checker) collectClass(d *ast.ClassDeclaration) {
	class := &types.TypeClass{
		Name:    d.Name,
		Params:  d.TypeParams,
		Methods: make(map[string]*types.Scheme),
	}

	for _, m := range d.Body {
		let, ok := m.(*ast.LetDeclaration)
		if !ok {
			continue
		}
		name, ok := bindPatternName(let.Name)
		if !ok || let.Signature == nil {
			continue
		}
		tv := newTyVarScope(c)
		// Bind the class's own type parameters first so they reuse the
		// same variables the signature's body refers to.
		for _, p := range d.TypeParams {
			tv.get(p)
		}
		cs, typ := c.resolveQualifiedType(let.Signature, tv)
		classArgs := make([]types.Type, len(d.TypeParams))
		for i, p := range d.TypeParams {
			classArgs[i] = tv.get(p)
		}
		cs = append(cs, types.Class(d.Name, classArgs, d.ID()))
		scheme := &types.Scheme{
			Vars:        tv.orderedFrom(d.TypeParams),
			Constraints: cs,
			Type:        typ,
		}
		class.Methods[name] = scheme
		c.env = c.env.Builder().Set(name, scheme).Build()
	}

	c.classEnv.AddClass(class)
}

func (c *Checker) collectInstance(d *ast.InstanceDeclaration) {
	class, ok := c.classEnv.Class(d.ClassName)
	if !ok {
		c.diags.Errorf(diag.InstanceNotFound, d.Range(), d.ID(),
			"no class named %s", d.ClassName)
		return
	}

	tv := newTyVarScope(c)
	args := make([]types.Type, len(d.Args))
	for i, a := range d.Args {
		args[i] = c.resolveType(a, tv)
	}

	methods := make(map[string]string)
	for _, m := range d.Body {
		let, ok := m.(*ast.LetDeclaration)
		if !ok {
			continue
		}
		if name, ok := bindPatternName(let.Name); ok {
			methods[name] = name
		}
	}

	inst := &types.Instance{Class: class, Args: args, Methods: methods}
	if existing := c.classEnv.Instances(d.ClassName); c.overlaps(existing, inst) {
		c.diags.Errorf(diag.InstanceOverlap, d.Range(), d.ID(),
			"overlapping instance for class %s", d.ClassName)
		return
	}
	c.classEnv.AddInstance(inst)
}

// overlaps reports whether a new instance's argument types could unify with
// an existing registered instance's, implementing spec.md §9's third Open
// Question decision to reject overlap outright.
func (c *Checker) overlaps(existing []*types.Instance, inst *types.Instance) bool {
	for _, e := range existing {
		if len(e.Args) != len(inst.Args) {
			continue
		}
		mark := len(c.trail)
		unifies := true
		for i := range e.Args {
			if !c.tryUnify(e.Args[i], inst.Args[i]) {
				unifies = false
				break
			}
		}
		c.rollbackTo(mark)
		if unifies {
			return true
		}
	}
	return false
}

// collectNominalPlaceholders pre-registers an empty nominal type for every
// struct/enum name so that mutually-referencing declarations resolve.
func (c *Checker) collectNominalPlaceholders(decls []ast.Node) {
	for _, n := range decls {
		switch d := n.(type) {
		case *ast.StructDeclaration:
			c.nominalTypes[d.Name] = &types.Record{Name: d.Name}
			c.structOrder = append(c.structOrder, d.Name)
		case *ast.EnumDeclaration:
			c.nominalTypes[d.Name] = &types.Con{Name: d.Name}
		}
	}
}

// collectConstructors fills in struct field lists and registers each enum
// variant's constructor scheme in the environment (spec.md §4.I: "a fresh
// type scheme for ... each data constructor").
func (c *Checker) collectConstructors(decls []ast.Node) {
	for _, n := range decls {
		switch d := n.(type) {
		case *ast.StructDeclaration:
			c.collectStruct(d)
		case *ast.EnumDeclaration:
			c.collectEnum(d)
		}
	}
}

func (c *Checker) collectStruct(d *ast.StructDeclaration) {
	tv := newTyVarScope(c)
	fields := make([]types.RecordField, len(d.Fields))
	for i, f := range d.Fields {
		fields[i] = types.RecordField{Name: f.Name, Type: c.resolveType(f.TypeAnnotation, tv)}
	}
	rec := c.nominalTypes[d.Name].(*types.Record)
	rec.Fields = fields
}

func (c *Checker) collectEnum(d *ast.EnumDeclaration) {
	tv := newTyVarScope(c)
	for _, p := range d.TypeParams {
		tv.get(p)
	}
	base := c.nominalTypes[d.Name]
	resultType := base
	if len(d.TypeParams) > 0 {
		args := make([]types.Type, len(d.TypeParams))
		for i, p := range d.TypeParams {
			args[i] = tv.get(p)
		}
		resultType = &types.App{Head: base, Args: args}
	}

	for _, v := range d.Variants {
		var ctorType types.Type = resultType
		if len(v.Fields) > 0 {
			params := make([]types.Type, len(v.Fields))
			for i, f := range v.Fields {
				params[i] = c.resolveType(f.TypeAnnotation, tv)
			}
			ctorType = &types.Arrow{Params: params, Result: resultType}
		}
		scheme := &types.Scheme{Vars: tv.orderedFrom(d.TypeParams), Type: ctorType}
		c.env = c.env.Builder().Set(v.Name, scheme).Build()
	}
}
