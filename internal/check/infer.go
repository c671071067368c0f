package check

import (
	"github.com/bolt-lang/bolt/internal/ast"
	"github.com/bolt-lang/bolt/internal/diag"
	"github.com/bolt-lang/bolt/internal/types"
)

// inferExpr generates constraints for one expression node and returns its
// type, implementing spec.md §4.I's constraint-generation rules. Equality
// constraints are solved eagerly via c.unify as they arise; class
// constraints are appended to c.curConstraints for deferred discharge once
// the enclosing declaration's body has been fully walked (classsolve.go).
func (c *Checker) inferExpr(n ast.Node) types.Type {
	switch e := n.(type) {
	case *ast.IntegerLiteral:
		t := types.Int()
		e.SetType(t)
		return t
	case *ast.StringLiteral:
		t := types.StringType()
		e.SetType(t)
		return t
	case *ast.Ident:
		t := c.resolveName(e, e.Name)
		e.SetType(t)
		return t
	case *ast.IdentAlt:
		t := c.resolveName(e, e.Name)
		e.SetType(t)
		return t
	case *ast.CallExpression:
		calleeType := c.inferExpr(e.Callee)
		args := make([]types.Type, len(e.Args))
		for i, a := range e.Args {
			args[i] = c.inferExpr(a)
		}
		result := c.freshVar()
		c.unify(calleeType, &types.Arrow{Params: args, Result: result}, e)
		e.SetType(result)
		return result
	case *ast.InfixExpression:
		left := c.inferExpr(e.Left)
		right := c.inferExpr(e.Right)
		opType := c.resolveOperator(e.Op, e)
		result := c.freshVar()
		c.unify(opType, &types.Arrow{Params: []types.Type{left, right}, Result: result}, e)
		e.SetType(result)
		return result
	case *ast.PrefixExpression:
		return c.inferPrefix(e)
	case *ast.MemberExpression:
		return c.inferMember(e)
	case *ast.TupleExpression:
		elems := make([]types.Type, len(e.Elements))
		for i, el := range e.Elements {
			elems[i] = c.inferExpr(el)
		}
		t := &types.Tuple{Elems: elems}
		e.SetType(t)
		return t
	case *ast.RecordExpression:
		return c.inferRecordExpression(e)
	case *ast.MatchExpression:
		return c.inferMatchExpression(e)
	default:
		fresh := c.freshVar()
		n.SetType(fresh)
		return fresh
	}
}

// resolveName resolves a bare identifier's type, either by instantiating a
// registered scheme (a let declaration, a class method, or a data
// constructor) or by reading back a pattern-bound variable's node-local
// type (spec.md §4.I: "ReferenceExpression(name): look up name in the
// lexical scope chain... if the referent is a declaration, instantiate its
// scheme").
func (c *Checker) resolveName(node ast.Node, name string) types.Type {
	scope := ast.EnclosingScope(node)
	if scope == nil {
		c.diags.Errorf(diag.BindingNotFound, node.Range(), node.ID(), "%s not found", name)
		return c.freshVar()
	}
	entries, ok := scope.Lookup(name)
	if !ok {
		// A name with no declaration in any scope can still be one of the
		// environment's seeded bindings (True/False, see NewChecker).
		if scheme, found := c.env.Get(name); found {
			t, cs := scheme.Instantiate(c.level, c.freshVarID)
			c.curConstraints = append(c.curConstraints, cs...)
			return t
		}
		c.diags.Errorf(diag.BindingNotFound, node.Range(), node.ID(), "%s not found", name)
		return c.freshVar()
	}
	entry := entries[len(entries)-1]

	if bp, ok := entry.Decl.(*ast.BindPattern); ok {
		if t := bp.Type(); t != nil {
			return t
		}
		fresh := c.freshVar()
		bp.SetType(fresh)
		return fresh
	}

	scheme, ok := c.env.Get(name)
	if !ok {
		// Declared but its scheme hasn't been registered yet (a forward
		// reference within the same SCC, whose monomorphic scheme is
		// installed by checkSCC before any body is checked).
		return c.freshVar()
	}
	t, cs := scheme.Instantiate(c.level, c.freshVarID)
	c.curConstraints = append(c.curConstraints, cs...)
	return t
}

// resolveOperator resolves an infix operator name, preferring a
// user-declared binding of the same name (a class method or let
// declaration) over the built-in arithmetic/comparison/logical signatures
// spec.md's scenarios exercise, since bolt has no separate operator
// declaration form: an operator is just a name looked up like any other.
func (c *Checker) resolveOperator(op string, node ast.Node) types.Type {
	if scope := ast.EnclosingScope(node); scope != nil {
		if _, ok := scope.Lookup(op); ok {
			return c.resolveName(node, op)
		}
	}
	return c.builtinOperatorType(op)
}

func (c *Checker) builtinOperatorType(op string) types.Type {
	intT, boolT := types.Int(), types.Bool()
	switch op {
	case "+", "-", "*", "/", "%":
		return &types.Arrow{Params: []types.Type{intT, intT}, Result: intT}
	case "==", "!=", "<", ">", "<=", ">=":
		a := c.freshVar()
		return &types.Arrow{Params: []types.Type{a, a}, Result: boolT}
	case "&&", "||":
		return &types.Arrow{Params: []types.Type{boolT, boolT}, Result: boolT}
	default:
		return c.freshVar()
	}
}

// inferPrefix handles unary `-` and `!` directly rather than through the
// operator table, since neither is ever user-overloadable in spec.md's
// grammar (a PrefixExpression's Op is always one of these two tokens).
func (c *Checker) inferPrefix(e *ast.PrefixExpression) types.Type {
	operand := c.inferExpr(e.Operand)
	switch e.Op {
	case "!":
		c.unify(operand, types.Bool(), e)
		e.SetType(types.Bool())
		return types.Bool()
	default: // "-"
		c.unify(operand, types.Int(), e)
		e.SetType(types.Int())
		return types.Int()
	}
}

// inferMember resolves `<expr> . <name>` against the target's nominal
// record type (spec.md §4.I: "MemberExpression: the target's type must be a
// named-record type that declares the given field").
func (c *Checker) inferMember(e *ast.MemberExpression) types.Type {
	targetType := c.inferExpr(e.Target)
	rec, ok := types.RealType(targetType).(*types.Record)
	if !ok {
		c.diags.Errorf(diag.UnificationError, e.Range(), e.ID(),
			"%s has no field %s: not a record type", types.String(targetType), e.Field)
		fresh := c.freshVar()
		e.SetType(fresh)
		return fresh
	}
	fieldType, ok := rec.FieldByName(e.Field)
	if !ok {
		c.diags.Errorf(diag.BindingNotFound, e.Range(), e.ID(),
			"%s has no field named %s", rec.Name, e.Field)
		fresh := c.freshVar()
		e.SetType(fresh)
		return fresh
	}
	e.SetType(fieldType)
	return fieldType
}

// inferRecordExpression checks a `{ field = value, ... }` literal against
// the first registered struct whose field-name set matches exactly,
// unifying each field's value type with the struct's declared field type.
func (c *Checker) inferRecordExpression(e *ast.RecordExpression) types.Type {
	fieldTypes := make(map[string]types.Type, len(e.Fields))
	order := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		fieldTypes[f.Name] = c.inferExpr(f.Value)
		order[i] = f.Name
	}

	for _, name := range c.structOrder {
		rec, ok := c.nominalTypes[name].(*types.Record)
		if !ok || !recordFieldsMatch(rec, fieldTypes) {
			continue
		}
		for _, rf := range rec.Fields {
			c.unify(fieldTypes[rf.Name], rf.Type, e)
		}
		e.SetType(rec)
		return rec
	}

	c.diags.Errorf(diag.UnificationError, e.Range(), e.ID(),
		"no struct declares exactly the fields given in this record expression")
	fresh := c.freshVar()
	e.SetType(fresh)
	return fresh
}

func recordFieldsMatch(rec *types.Record, fieldTypes map[string]types.Type) bool {
	if len(rec.Fields) != len(fieldTypes) {
		return false
	}
	for _, f := range rec.Fields {
		if _, ok := fieldTypes[f.Name]; !ok {
			return false
		}
	}
	return true
}

// inferMatchExpression checks the scrutinee against every case's pattern
// and unifies every case body against one shared result type (spec.md
// §4.I: "MatchExpression: the scrutinee's type is matched against each
// case's pattern... every case's body type is unified together").
func (c *Checker) inferMatchExpression(e *ast.MatchExpression) types.Type {
	scrutineeType := c.inferExpr(e.Scrutinee)
	result := c.freshVar()
	for _, cs := range e.Cases {
		c.inferPattern(cs.Pattern, scrutineeType)
		bodyType := c.inferExpr(cs.Body)
		c.unify(bodyType, result, cs)
	}
	e.SetType(result)
	return result
}

// inferPattern binds and constrains a pattern against a scrutinee's type
// (spec.md §4.I's per-pattern rules), recording each BindPattern's type on
// the node itself so resolveName can read it back when the body refers to
// the bound name.
func (c *Checker) inferPattern(pat ast.Node, scrutinee types.Type) {
	switch p := pat.(type) {
	case *ast.BindPattern:
		p.SetType(scrutinee)
	case *ast.LiteralPattern:
		var lt types.Type
		if p.LitKind == ast.LiteralInteger {
			lt = types.Int()
		} else {
			lt = types.StringType()
		}
		c.unify(scrutinee, lt, p)
		p.SetType(lt)
	case *ast.NamedPattern:
		c.inferNamedPattern(p, scrutinee)
	case *ast.NestedPattern:
		c.inferPattern(p.Inner, scrutinee)
		p.SetType(p.Inner.Type())
	}
}

func (c *Checker) inferNamedPattern(p *ast.NamedPattern, scrutinee types.Type) {
	scheme, ok := c.env.Get(p.Ctor)
	if !ok {
		c.diags.Errorf(diag.BindingNotFound, p.Range(), p.ID(), "unknown constructor %s", p.Ctor)
		for _, a := range p.Args {
			c.inferPattern(a, c.freshVar())
		}
		fresh := c.freshVar()
		p.SetType(fresh)
		return
	}
	instType, cs := scheme.Instantiate(c.level, c.freshVarID)
	c.curConstraints = append(c.curConstraints, cs...)

	if arrow, ok := types.RealType(instType).(*types.Arrow); ok {
		if len(arrow.Params) != len(p.Args) {
			c.diags.Errorf(diag.ArityMismatch, p.Range(), p.ID(),
				"constructor %s expects %d argument(s), got %d", p.Ctor, len(arrow.Params), len(p.Args))
		}
		for i, a := range p.Args {
			if i < len(arrow.Params) {
				c.inferPattern(a, arrow.Params[i])
			} else {
				c.inferPattern(a, c.freshVar())
			}
		}
		c.unify(scrutinee, arrow.Result, p)
		p.SetType(arrow.Result)
		return
	}

	if len(p.Args) != 0 {
		c.diags.Errorf(diag.ArityMismatch, p.Range(), p.ID(),
			"constructor %s expects 0 arguments, got %d", p.Ctor, len(p.Args))
	}
	c.unify(scrutinee, instType, p)
	p.SetType(instType)
}

// checkBlock type-checks a block's elements in order, restoring the
// checker's environment on exit so a local let declaration's binding does
// not leak past the block that scopes it (spec.md §4.G: a Block is
// scope-owning).
func (c *Checker) checkBlock(b *ast.Block, expectedReturn types.Type) {
	savedEnv := c.env
	for _, el := range b.Elements {
		c.checkStatement(el, expectedReturn)
	}
	c.env = savedEnv
}

func (c *Checker) checkStatement(n ast.Node, expectedReturn types.Type) {
	switch s := n.(type) {
	case *ast.LetDeclaration:
		c.checkSCC([]*ast.LetDeclaration{s})
	case *ast.IfStatement:
		c.checkIfStatement(s, expectedReturn)
	case *ast.ReturnStatement:
		if s.Value != nil {
			c.unify(c.inferExpr(s.Value), expectedReturn, s)
		}
	case *ast.ExprStatement:
		c.inferExpr(s.Expr)
	}
}

func (c *Checker) checkIfStatement(s *ast.IfStatement, expectedReturn types.Type) {
	c.unify(c.inferExpr(s.Cond), types.Bool(), s)
	c.checkBlock(s.Then, expectedReturn)
	for _, el := range s.Elifs {
		c.unify(c.inferExpr(el.Cond), types.Bool(), el)
		c.checkBlock(el.Then, expectedReturn)
	}
	if s.Else != nil {
		c.checkBlock(s.Else, expectedReturn)
	}
}
