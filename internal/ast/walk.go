package ast

// Children returns a node's direct children in source order. Used both by
// AssignParents (the single post-parse ownership pass, spec.md §3) and by
// the checker's declaration-dependency walk (component I).
func Children(n Node) []Node {
	switch n := n.(type) {
	case *SourceFile:
		return n.Decls
	case *LetDeclaration:
		var out []Node
		if n.Name != nil {
			out = append(out, n.Name)
		}
		for _, p := range n.Params {
			out = append(out, p)
		}
		if n.Signature != nil {
			out = append(out, n.Signature)
		}
		if n.Body != nil {
			out = append(out, n.Body)
		}
		return out
	case *Param:
		out := []Node{n.Pattern}
		if n.TypeAnnotation != nil {
			out = append(out, n.TypeAnnotation)
		}
		return out
	case *Field:
		return []Node{n.TypeAnnotation}
	case *StructDeclaration:
		out := make([]Node, len(n.Fields))
		for i, f := range n.Fields {
			out[i] = f
		}
		return out
	case *Variant:
		out := make([]Node, len(n.Fields))
		for i, f := range n.Fields {
			out[i] = f
		}
		return out
	case *EnumDeclaration:
		out := make([]Node, len(n.Variants))
		for i, v := range n.Variants {
			out[i] = v
		}
		return out
	case *ClassDeclaration:
		return n.Body
	case *InstanceDeclaration:
		out := append([]Node{}, n.Args...)
		return append(out, n.Body...)
	case *Block:
		return n.Elements
	case *ElifClause:
		return []Node{n.Cond, n.Then}
	case *IfStatement:
		out := []Node{n.Cond, n.Then}
		for _, e := range n.Elifs {
			out = append(out, e)
		}
		if n.Else != nil {
			out = append(out, n.Else)
		}
		return out
	case *ReturnStatement:
		if n.Value == nil {
			return nil
		}
		return []Node{n.Value}
	case *ExprStatement:
		return []Node{n.Expr}
	case *CallExpression:
		out := []Node{n.Callee}
		return append(out, n.Args...)
	case *InfixExpression:
		return []Node{n.Left, n.Right}
	case *PrefixExpression:
		return []Node{n.Operand}
	case *MemberExpression:
		return []Node{n.Target}
	case *TupleExpression:
		return n.Elements
	case *RecordFieldExpr:
		return []Node{n.Value}
	case *RecordExpression:
		out := make([]Node, len(n.Fields))
		for i, f := range n.Fields {
			out[i] = f
		}
		return out
	case *MatchCase:
		return []Node{n.Pattern, n.Body}
	case *MatchExpression:
		out := []Node{n.Scrutinee}
		for _, c := range n.Cases {
			out = append(out, c)
		}
		return out
	case *NamedPattern:
		return n.Args
	case *NestedPattern:
		return []Node{n.Inner}
	case *AppType:
		out := []Node{n.Head}
		return append(out, n.Args...)
	case *ArrowType:
		out := append([]Node{}, n.Params...)
		return append(out, n.Result)
	case *TupleType:
		return n.Elements
	case *ClassConstraint:
		return n.Args
	case *EqualConstraint:
		return []Node{n.Left, n.Right}
	case *QualifiedType:
		out := append([]Node{}, n.Constraints...)
		return append(out, n.TypeAnnotation)
	default:
		// Ident, IdentAlt, IntegerLiteral, StringLiteral, BindPattern,
		// LiteralPattern, NamedType: leaves.
		return nil
	}
}

// AssignParents walks the tree rooted at root once, setting every child's
// parent back-reference (spec.md §3 Ownership: "set in a single post-parse
// pass").
func AssignParents(root Node) {
	for _, child := range Children(root) {
		if child == nil {
			continue
		}
		child.setParent(root)
		AssignParents(child)
	}
}
