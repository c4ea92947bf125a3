package module

import (
	"reflect"
	"strings"
)

// Namer lets a module choose the type name shown by Repr.
type Namer interface {
	TypeName() string
}

// ExtraReprer lets a module add its own configuration to Repr, e.g.
// "in_features=2, out_features=3".
type ExtraReprer interface {
	ExtraRepr() string
}

// Repr returns the nested text representation of m:
//
//	Sequential(
//	  (0): Linear(in_features=2, out_features=3)
//	  (1): ReLU()
//	)
//
// Each child is rendered as "(name): <child>" and nested output is indented
// by two spaces per level.
func Repr(m Module) string {
	var extraLines []string
	if er, ok := m.(ExtraReprer); ok {
		if extra := er.ExtraRepr(); extra != "" {
			extraLines = strings.Split(extra, "\n")
		}
	}

	var childLines []string
	for _, child := range m.core().NamedChildren() {
		childLines = append(childLines, "("+child.Name+"): "+addIndent(Repr(child.Module), 2))
	}

	lines := append(extraLines, childLines...)

	var sb strings.Builder
	sb.WriteString(typeName(m))
	sb.WriteString("(")
	switch {
	case len(extraLines) == 1 && len(childLines) == 0:
		sb.WriteString(extraLines[0])
	case len(lines) > 0:
		sb.WriteString("\n  ")
		sb.WriteString(strings.Join(lines, "\n  "))
		sb.WriteString("\n")
	}
	sb.WriteString(")")
	return sb.String()
}

// addIndent indents every line of s except the first by n spaces.
func addIndent(s string, n int) string {
	first, rest, found := strings.Cut(s, "\n")
	if !found {
		return s
	}
	pad := strings.Repeat(" ", n)
	lines := strings.Split(rest, "\n")
	for i, line := range lines {
		lines[i] = pad + line
	}
	return first + "\n" + strings.Join(lines, "\n")
}

func typeName(m Module) string {
	if n, ok := m.(Namer); ok {
		return n.TypeName()
	}
	t := reflect.TypeOf(m)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	name := t.Name()
	// Drop type arguments of generic modules: "Wrapper[...]" -> "Wrapper".
	if i := strings.IndexByte(name, '['); i >= 0 {
		name = name[:i]
	}
	return name
}
