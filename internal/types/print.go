package types

import (
	"fmt"
	"strings"
)

// String renders a type for diagnostic messages, zonking (spec.md §7)
// linked variables to their representative first.
func String(t Type) string {
	var b strings.Builder
	writeType(&b, RealType(t))
	return b.String()
}

func writeType(b *strings.Builder, t Type) {
	switch t := t.(type) {
	case *Var:
		if t.IsLinked() {
			writeType(b, RealType(t))
			return
		}
		fmt.Fprintf(b, "t%d", t.Id())
	case *Con:
		b.WriteString(t.Name)
	case *App:
		writeType(b, t.Head)
		for _, a := range t.Args {
			b.WriteByte(' ')
			writeType(b, a)
		}
	case *Arrow:
		for i, p := range t.Params {
			if i > 0 {
				b.WriteString(" -> ")
			}
			writeType(b, p)
		}
		b.WriteString(" -> ")
		writeType(b, t.Result)
	case *Tuple:
		b.WriteByte('(')
		for i, e := range t.Elems {
			if i > 0 {
				b.WriteString(", ")
			}
			writeType(b, e)
		}
		b.WriteByte(')')
	case *Record:
		b.WriteString(t.Name)
	default:
		b.WriteString("?")
	}
}

// StringScheme renders a scheme's constraints and type, e.g. "(Eq a) => a -> a -> Bool".
func StringScheme(s *Scheme) string {
	var b strings.Builder
	if len(s.Constraints) > 0 {
		b.WriteByte('(')
		for i, c := range Flatten(s.Constraints) {
			if i > 0 {
				b.WriteString(", ")
			}
			writeConstraint(&b, c)
		}
		b.WriteString(") => ")
	}
	writeType(&b, s.Type)
	return b.String()
}

func writeConstraint(b *strings.Builder, c Constraint) {
	switch c.Kind {
	case EqualConstraint:
		writeType(b, c.Left)
		b.WriteString(" ~ ")
		writeType(b, c.Right)
	case ClassConstraint:
		b.WriteString(c.ClassName)
		for _, a := range c.Args {
			b.WriteByte(' ')
			writeType(b, a)
		}
	}
}
