package types

// Scheme is a universally quantified, possibly qualified type: ∀ vars.
// constraints ⇒ type (spec.md §3).
type Scheme struct {
	Vars        []*Var
	Constraints []Constraint
	Type        Type
}

// Monomorphic wraps a bare type with no quantifiers or constraints, used for
// declarations still being solved within their own SCC (spec.md §4.I:
// "monomorphism inside an SCC").
func Monomorphic(t Type) *Scheme { return &Scheme{Type: t} }

// Instantiate replaces every quantified variable with a fresh unification
// variable at the given level and substitutes the same replacement through
// the scheme's constraints, returning the instantiated type and constraints
// (spec.md §4.I: "instantiate it (fresh unification variables for
// universals, emit the scheme's constraints with those substitutions)").
// next supplies fresh variable ids.
func (s *Scheme) Instantiate(level int, next func() int) (Type, []Constraint) {
	if len(s.Vars) == 0 {
		return s.Type, s.Constraints
	}
	sub := make(map[*Var]*Var, len(s.Vars))
	for _, v := range s.Vars {
		sub[v] = NewVar(next(), level)
	}
	t := substitute(s.Type, sub)
	cs := make([]Constraint, len(s.Constraints))
	for i, c := range s.Constraints {
		cs[i] = substituteConstraint(c, sub)
	}
	return t, cs
}

func substitute(t Type, sub map[*Var]*Var) Type {
	switch t := RealType(t).(type) {
	case *Var:
		if repl, ok := sub[t]; ok {
			return repl
		}
		return t
	case *Con:
		return t
	case *App:
		args := make([]Type, len(t.Args))
		for i, a := range t.Args {
			args[i] = substitute(a, sub)
		}
		return &App{Head: substitute(t.Head, sub), Args: args}
	case *Arrow:
		params := make([]Type, len(t.Params))
		for i, p := range t.Params {
			params[i] = substitute(p, sub)
		}
		return &Arrow{Params: params, Result: substitute(t.Result, sub)}
	case *Tuple:
		elems := make([]Type, len(t.Elems))
		for i, e := range t.Elems {
			elems[i] = substitute(e, sub)
		}
		return &Tuple{Elems: elems}
	case *Record:
		fields := make([]RecordField, len(t.Fields))
		for i, f := range t.Fields {
			fields[i] = RecordField{Name: f.Name, Type: substitute(f.Type, sub)}
		}
		return &Record{Name: t.Name, Fields: fields}
	default:
		return t
	}
}

func substituteConstraint(c Constraint, sub map[*Var]*Var) Constraint {
	switch c.Kind {
	case EqualConstraint:
		return Equal(substitute(c.Left, sub), substitute(c.Right, sub), c.Origin)
	case ClassConstraint:
		args := make([]Type, len(c.Args))
		for i, a := range c.Args {
			args[i] = substitute(a, sub)
		}
		return Class(c.ClassName, args, c.Origin)
	case ManyConstraint:
		many := make([]Constraint, len(c.Many))
		for i, m := range c.Many {
			many[i] = substituteConstraint(m, sub)
		}
		return Many(many)
	default:
		return c
	}
}

// FreeVars returns the distinct unbound variables reachable from t whose
// level is strictly greater than minLevel (i.e. bound no earlier than the
// scope being generalized), in first-seen order. Grounded on wdamron-poly's
// generalize.go visitTypeVars walk.
func FreeVars(t Type, minLevel int) []*Var {
	var out []*Var
	seen := make(map[*Var]bool)
	var walk func(Type)
	walk = func(t Type) {
		switch t := RealType(t).(type) {
		case *Var:
			if seen[t] {
				return
			}
			seen[t] = true
			if !t.IsGeneric() && t.Level() > minLevel {
				out = append(out, t)
			}
		case *App:
			walk(t.Head)
			for _, a := range t.Args {
				walk(a)
			}
		case *Arrow:
			for _, p := range t.Params {
				walk(p)
			}
			walk(t.Result)
		case *Tuple:
			for _, e := range t.Elems {
				walk(e)
			}
		case *Record:
			for _, f := range t.Fields {
				walk(f.Type)
			}
		}
	}
	walk(t)
	return out
}

// FreeVarsInConstraints extends FreeVars to a constraint set, used so that
// generalization quantifies over variables occurring only in a residual
// class constraint (e.g. `(Eq a) => a -> a -> Bool`).
func FreeVarsInConstraints(cs []Constraint, minLevel int) []*Var {
	var out []*Var
	seen := make(map[*Var]bool)
	add := func(vs []*Var) {
		for _, v := range vs {
			if !seen[v] {
				seen[v] = true
				out = append(out, v)
			}
		}
	}
	for _, c := range cs {
		switch c.Kind {
		case EqualConstraint:
			add(FreeVars(c.Left, minLevel))
			add(FreeVars(c.Right, minLevel))
		case ClassConstraint:
			for _, a := range c.Args {
				add(FreeVars(a, minLevel))
			}
		case ManyConstraint:
			add(FreeVarsInConstraints(c.Many, minLevel))
		}
	}
	return out
}
