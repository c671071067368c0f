package ast

// SourceFile is the root of the CST (component A/F). It owns every
// declaration parsed from one file's token stream and is a scope-owning
// node (spec.md §3, §4.G).
type SourceFile struct {
	base
	Decls []Node
}

// Scope lazily builds the file-level scope over top-level declarations.
func (f *SourceFile) Scope() *Scope {
	if f.scope == nil {
		f.scope = newScope(nil)
		collectDirectDeclarations(f.scope, f.Decls)
	}
	return f.scope
}

// LetDeclaration is `[pub] let [mut] <pattern> <param>* [: <qualType>] [= <expr> | <block>]`.
type LetDeclaration struct {
	base
	Pub       bool
	Mut       bool
	Name      Node // pattern, usually *BindPattern
	Params    []*Param
	Signature Node // *QualifiedType, or nil when there is no explicit signature
	Body      Node // expression, *Block, or nil for a signature-only class method
}

// Scope lazily builds the scope hosting this declaration's parameter
// bindings, visible to its body (spec.md §4.G: "LetDeclaration" is
// scope-owning).
func (d *LetDeclaration) Scope() *Scope {
	if d.scope == nil {
		d.scope = newScope(EnclosingScope(d.parent))
		for _, p := range d.Params {
			collectPatternBindings(d.scope, p.Pattern)
		}
	}
	return d.scope
}

// Param is one parameter pattern of a let declaration. The parser leaves
// TypeAnnotation nil: a ':' after the parameters starts the let's signature.
type Param struct {
	base
	Pattern        Node
	TypeAnnotation Node // nil if unannotated
}

// Field is one `name: type` member of a struct declaration or enum variant.
type Field struct {
	base
	Name           string
	TypeAnnotation Node
}

// StructDeclaration is `[pub] struct <Name> . <field>*`.
type StructDeclaration struct {
	base
	Pub    bool
	Name   string
	Fields []*Field
}

// Variant is one constructor of an enum declaration, with optional fields.
type Variant struct {
	base
	Name   string
	Fields []*Field
}

// EnumDeclaration is `[pub] enum <Name> <tyvar>* . <variant>*`.
type EnumDeclaration struct {
	base
	Pub        bool
	Name       string
	TypeParams []string
	Variants   []*Variant
}

// ClassDeclaration is `[pub] class <Name> <tyvar>+ . <element>*`. Body holds
// each method's signature-only LetDeclaration.
type ClassDeclaration struct {
	base
	Pub        bool
	Name       string
	TypeParams []string
	Body       []Node
}

// MethodsByName returns each class method's LetDeclaration keyed by its
// declared name, used to populate the enclosing scope (component G).
func (d *ClassDeclaration) MethodsByName() map[string]*LetDeclaration {
	out := make(map[string]*LetDeclaration)
	for _, n := range d.Body {
		if let, ok := n.(*LetDeclaration); ok {
			if name, ok := bindPatternName(let.Name); ok {
				out[name] = let
			}
		}
	}
	return out
}

// InstanceDeclaration is `instance <Name> <type>+ . <element>*`. Body holds
// each method's implementing LetDeclaration.
type InstanceDeclaration struct {
	base
	ClassName string
	Args      []Node
	Body      []Node
}

// MethodsByName mirrors ClassDeclaration.MethodsByName for instance bodies.
func (d *InstanceDeclaration) MethodsByName() map[string]*LetDeclaration {
	out := make(map[string]*LetDeclaration)
	for _, n := range d.Body {
		if let, ok := n.(*LetDeclaration); ok {
			if name, ok := bindPatternName(let.Name); ok {
				out[name] = let
			}
		}
	}
	return out
}

// Block is an indented sequence of elements introduced by a layout-pending
// construct (a let body, an if/elif/else arm, ...). It is scope-owning
// (spec.md §3, §4.G: "any block body").
type Block struct {
	base
	Elements []Node
}

// Scope lazily builds the scope over this block's direct declarations.
func (b *Block) Scope() *Scope {
	if b.scope == nil {
		b.scope = newScope(EnclosingScope(b.parent))
		collectDirectDeclarations(b.scope, b.Elements)
	}
	return b.scope
}

// ElifClause is one `elif <expr> . <block>` arm of an if statement.
type ElifClause struct {
	base
	Cond Node
	Then *Block
}

// IfStatement is `if <expr> . <block> (elif <expr> . <block>)* (else . <block>)?`.
type IfStatement struct {
	base
	Cond  Node
	Then  *Block
	Elifs []*ElifClause
	Else  *Block // nil if absent
}

// ReturnStatement is `return <expr>?`.
type ReturnStatement struct {
	base
	Value Node // nil for a bare return
}

// ExprStatement wraps an expression used in statement position.
type ExprStatement struct {
	base
	Expr Node
}
