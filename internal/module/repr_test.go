package module_test

import (
	"strings"
	"testing"

	"github.com/born-ml/minitorch/internal/module"
	"github.com/stretchr/testify/assert"
)

// Tree is a root module type for representation tests.
type Tree struct {
	module.Base
}

// Configured reports its settings through ExtraRepr and a custom type name.
type Configured struct {
	module.Base
	extra string
}

func (c *Configured) TypeName() string  { return "Conf" }
func (c *Configured) ExtraRepr() string { return c.extra }

func TestRepr_Empty(t *testing.T) {
	assert.Equal(t, "Leaf()", module.Repr(&Leaf{}))
	assert.Equal(t, "Base()", module.Repr(module.NewBase()))
}

func TestRepr_TwoLevels(t *testing.T) {
	root := &Tree{}
	a := &Leaf{}
	a.AddModule("c", &Leaf{})
	root.AddModule("a", a)
	root.AddModule("b", &Leaf{})

	want := strings.Join([]string{
		"Tree(",
		"  (a): Leaf(",
		"    (c): Leaf()",
		"  )",
		"  (b): Leaf()",
		")",
	}, "\n")
	assert.Equal(t, want, module.Repr(root))
}

func TestRepr_ParametersNotListed(t *testing.T) {
	m := &Leaf{}
	m.AddParameter("w", 1)

	assert.Equal(t, "Leaf()", module.Repr(m))
}

func TestRepr_ExtraRepr(t *testing.T) {
	single := &Configured{extra: "size=3"}
	assert.Equal(t, "Conf(size=3)", module.Repr(single))

	withChild := &Configured{extra: "size=3"}
	withChild.AddModule("inner", &Configured{})
	want := strings.Join([]string{
		"Conf(",
		"  size=3",
		"  (inner): Conf()",
		")",
	}, "\n")
	assert.Equal(t, want, module.Repr(withChild))
}
