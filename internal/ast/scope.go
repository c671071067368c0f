package ast

import "github.com/benbjohnson/immutable"

var emptyScopeMap = immutable.NewSortedMap(nil)

// SymbolKind classifies a scope entry (spec.md §3: "kind ∈ {Var, Class, Type}").
type SymbolKind int

const (
	SymbolVar SymbolKind = iota
	SymbolClass
	SymbolType
)

// ScopeEntry binds one name to the declaration node that introduced it.
type ScopeEntry struct {
	Name string
	Kind SymbolKind
	Decl Node
}

// Scope is a lexically nested, persistent multimap from name to the
// (possibly several) declarations bound to that name (spec.md §3: "a
// multimap from a symbol name to (declaration node, kind)"). Grounded on
// _examples/wdamron-poly/types/type_map.go's TypeMap/TypeMapBuilder
// persistent-map pattern, the one real third-party dependency retrieved in
// the example pack.
type Scope struct {
	parent *Scope
	m      *immutable.SortedMap // name -> *immutable.List of ScopeEntry
}

func newScope(parent *Scope) *Scope {
	return &Scope{parent: parent, m: emptyScopeMap}
}

// Parent returns the enclosing scope, or nil at the source file's scope.
func (s *Scope) Parent() *Scope { return s.parent }

func (s *Scope) insert(e ScopeEntry) {
	existing, ok := s.m.Get(e.Name)
	var list *immutable.List
	if ok {
		list = existing.(*immutable.List)
	} else {
		list = immutable.NewList()
	}
	s.m = s.m.Set(e.Name, list.Append(e))
}

// LookupDirect returns the entries bound to name in this scope only,
// without ascending to parent scopes (spec.md §4.G: "lookupDirect does not ascend").
func (s *Scope) LookupDirect(name string) ([]ScopeEntry, bool) {
	v, ok := s.m.Get(name)
	if !ok {
		return nil, false
	}
	list := v.(*immutable.List)
	out := make([]ScopeEntry, list.Len())
	it := list.Iterator()
	for i := 0; !it.Done(); i++ {
		_, val := it.Next()
		out[i] = val.(ScopeEntry)
	}
	return out, true
}

// Lookup tries this scope, then walks parent scopes until a binding is
// found (spec.md §4.G: "lookup tries the local scope then walks parents").
func (s *Scope) Lookup(name string) ([]ScopeEntry, bool) {
	for cur := s; cur != nil; cur = cur.parent {
		if entries, ok := cur.LookupDirect(name); ok {
			return entries, true
		}
	}
	return nil, false
}

// EnclosingScope walks from n up through its ancestors and returns the
// nearest scope, or nil if n has no scope-owning ancestor (only possible
// before parent assignment has run, or for a detached node).
func EnclosingScope(n Node) *Scope {
	for cur := n; cur != nil; cur = cur.Parent() {
		if s := cur.Scope(); s != nil {
			return s
		}
	}
	return nil
}

// collectDirectDeclarations scans a slice of direct children for the
// declaration kinds spec.md §4.G names (LetDeclaration, ClassDeclaration,
// InstanceDeclaration, StructDeclaration, EnumDeclaration) and inserts one
// entry per named declaration into scope. Instance declarations introduce no
// symbol of their own (they extend an existing class), matching spec.md's
// silence on an instance name.
func collectDirectDeclarations(scope *Scope, children []Node) {
	for _, n := range children {
		switch d := n.(type) {
		case *LetDeclaration:
			if name, ok := bindPatternName(d.Name); ok {
				scope.insert(ScopeEntry{Name: name, Kind: SymbolVar, Decl: d})
			}
		case *ClassDeclaration:
			scope.insert(ScopeEntry{Name: d.Name, Kind: SymbolClass, Decl: d})
			for methodName, methodDecl := range d.MethodsByName() {
				scope.insert(ScopeEntry{Name: methodName, Kind: SymbolVar, Decl: methodDecl})
			}
		case *StructDeclaration:
			scope.insert(ScopeEntry{Name: d.Name, Kind: SymbolType, Decl: d})
		case *EnumDeclaration:
			scope.insert(ScopeEntry{Name: d.Name, Kind: SymbolType, Decl: d})
			for _, v := range d.Variants {
				scope.insert(ScopeEntry{Name: v.Name, Kind: SymbolVar, Decl: v})
			}
		case *InstanceDeclaration:
			for _, m := range d.Body {
				if let, ok := m.(*LetDeclaration); ok {
					collectDirectDeclarations(scope, []Node{let})
				}
			}
		}
	}
}

// collectPatternBindings appends every name bound by a pattern (spec.md
// §4.I BindPattern rule; §4.G "pattern-bound names in parameters and
// let-bodies").
func collectPatternBindings(scope *Scope, pat Node) {
	switch p := pat.(type) {
	case *BindPattern:
		scope.insert(ScopeEntry{Name: p.Name, Kind: SymbolVar, Decl: p})
	case *NamedPattern:
		for _, a := range p.Args {
			collectPatternBindings(scope, a)
		}
	case *NestedPattern:
		collectPatternBindings(scope, p.Inner)
	}
}

// bindPatternName extracts the bound name from a let-header pattern, when it
// is a simple binder (the common case in every scenario spec.md §8 names).
func bindPatternName(pat Node) (string, bool) {
	if b, ok := pat.(*BindPattern); ok {
		return b.Name, true
	}
	return "", false
}
