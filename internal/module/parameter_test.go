package module_test

import (
	"fmt"
	"testing"

	"github.com/born-ml/minitorch/internal/module"
	"github.com/born-ml/minitorch/internal/scalar"
	"github.com/stretchr/testify/assert"
)

func TestNewParameter_PlainValue(t *testing.T) {
	p := module.NewParameter(5, "")

	assert.Equal(t, 5, p.Value())
	assert.Empty(t, p.Name())
}

func TestNewParameter_Trackable(t *testing.T) {
	s := scalar.New(1)
	p := module.NewParameter(s, "weight")

	assert.Same(t, s, p.Value())
	assert.True(t, s.RequiresGrad())
	assert.Equal(t, "weight", s.Name())
}

func TestNewParameter_UnnamedKeepsValueName(t *testing.T) {
	s := scalar.New(1)
	s.SetName("original")

	module.NewParameter(s, "")

	assert.True(t, s.RequiresGrad())
	assert.Equal(t, "original", s.Name())
}

func TestParameter_Update(t *testing.T) {
	p := module.NewParameter(1, "w")
	s := scalar.New(2)

	p.Update(s)

	assert.Equal(t, "w", p.Name(), "update keeps the name")
	assert.Same(t, s, p.Value())
	assert.True(t, s.RequiresGrad())
	assert.Equal(t, "w", s.Name())

	p.Update("plain")
	assert.Equal(t, "plain", p.Value())
	assert.Equal(t, "w", p.Name())
}

func TestParameter_Format(t *testing.T) {
	p := module.NewParameter(scalar.New(0.5), "b")

	assert.Equal(t, "Scalar(0.5)", p.String())
	assert.Equal(t, "Scalar(0.5)", fmt.Sprint(p))
	assert.Equal(t, `Scalar{value: 0.5, name: "b", requiresGrad: true}`, fmt.Sprintf("%#v", p))
	assert.Equal(t, "3", module.NewParameter(3, "").String())
}
