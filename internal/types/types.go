// Package types implements the checker's type representation (component H):
// type variables with a union-find parent and generalization level, type
// constructors, function/tuple/record types, schemes, and constraints.
// Grounded on _examples/wdamron-poly/types (types.go, type_var.go): the
// union-find Var with a mutable link/level pair and RealType flattening is
// adopted directly; row-polymorphic Record/Variant/RowExtend machinery is
// not, since bolt's records are nominal with a fixed field set rather than
// row-polymorphic.
package types

// Type is implemented by every member of the closed type representation
// named in spec.md §3.
type Type interface {
	typeNode()
}

// GenericVarLevel marks a type variable as fully generalized (bound by a
// scheme's quantifier list, no longer free).
const GenericVarLevel = 1<<31 - 1

// Var is a unification variable. Kind (Unification vs. Rigid, spec.md §3)
// is not tracked as a separate tag: a Var created at GenericVarLevel behaves
// as the rigid/skolem case once instantiated with a fresh copy per use.
type Var struct {
	id    int
	level int
	link  Type
}

// NewVar creates a fresh unbound variable at the given level.
func NewVar(id, level int) *Var { return &Var{id: id, level: level} }

func (v *Var) typeNode() {}

// Id returns the variable's unique identifier (used for printing/ordering, not equality).
func (v *Var) Id() int { return v.id }

// Level returns the variable's generalization level.
func (v *Var) Level() int { return v.level }

// Link returns the type this variable has been unified to, or nil if unbound.
func (v *Var) Link() Type { return v.link }

// IsLinked reports whether the variable has been bound by unification.
func (v *Var) IsLinked() bool { return v.link != nil }

// IsGeneric reports whether the variable has been generalized.
func (v *Var) IsGeneric() bool { return v.link == nil && v.level == GenericVarLevel }

// SetLink binds the variable to t (a successful unification step).
func (v *Var) SetLink(t Type) { v.link = t }

// SetLevel rebinds the variable's level, used when adjusting levels during
// the occurs check (level-adjustment unification, wdamron-poly's
// occursAdjustLevels).
func (v *Var) SetLevel(level int) { v.level = level }

// SetGeneric marks the variable as generalized.
func (v *Var) SetGeneric() { v.link = nil; v.level = GenericVarLevel }

// Con is a nullary type constructor (Int, Bool, String, or a user-declared nullary type).
type Con struct{ Name string }

func (*Con) typeNode() {}

// App is a saturated or partial application of a type constructor to arguments.
type App struct {
	Head Type
	Args []Type
}

func (*App) typeNode() {}

// Arrow is an n-ary function type.
type Arrow struct {
	Params []Type
	Result Type
}

func (*Arrow) typeNode() {}

// Tuple is a fixed-arity product type.
type Tuple struct{ Elems []Type }

func (*Tuple) typeNode() {}

// RecordField is one named, ordered field of a nominal record type.
type RecordField struct {
	Name string
	Type Type
}

// Record is a nominal record type with named, ordered fields.
type Record struct {
	Name   string
	Fields []RecordField
}

func (*Record) typeNode() {}

// Built-in nullary constructors. Fresh instances are returned rather than
// shared singletons so structural equality checks never need to special-case
// pointer identity against a package-level value.
func Int() Type        { return &Con{Name: "Int"} }
func Bool() Type       { return &Con{Name: "Bool"} }
func StringType() Type { return &Con{Name: "String"} }

// RealType flattens a chain of linked (already-unified) variables down to
// the representative type, mirroring wdamron-poly's RealType.
func RealType(t Type) Type {
	for {
		v, ok := t.(*Var)
		if !ok || !v.IsLinked() {
			return t
		}
		t = v.link
	}
}

// FieldByName returns the named field's type, or false if the record has no
// such field.
func (r *Record) FieldByName(name string) (Type, bool) {
	for _, f := range r.Fields {
		if f.Name == name {
			return f.Type, true
		}
	}
	return nil, false
}
