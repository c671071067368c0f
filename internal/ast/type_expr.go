package ast

// NamedType is a bare type name reference: `Int`, `a`, `Point`, ...
type NamedType struct {
	base
	Name string
}

// AppType is application of a type constructor to arguments: `list a`.
type AppType struct {
	base
	Head Node
	Args []Node
}

// ArrowType is `atype -> type`, right-associative.
type ArrowType struct {
	base
	Params []Node
	Result Node
}

// TupleType is `( type, type, ... )`.
type TupleType struct {
	base
	Elements []Node
}

// ClassConstraint is a type-class predicate `<Name> <type>+`.
type ClassConstraint struct {
	base
	ClassName string
	Args      []Node
}

// EqualConstraint is an equality constraint `<type> ~ <type>`.
type EqualConstraint struct {
	base
	Left  Node
	Right Node
}

// QualifiedType is `( <constraint> , ... ) => <type>`, with an empty
// Constraints slice when the `(...) =>` prefix is absent.
type QualifiedType struct {
	base
	Constraints    []Node
	TypeAnnotation Node
}
