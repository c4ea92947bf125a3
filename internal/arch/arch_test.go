package arch_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/born-ml/minitorch/internal/arch"
	"github.com/born-ml/minitorch/internal/module"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const xorArch = `
name: xor
layers:
  - type: linear
    in: 2
    out: 4
  - type: tanh
  - type: sequential
    layers:
      - type: linear
        in: 4
        out: 1
      - type: sigmoid
`

func TestParse(t *testing.T) {
	spec, err := arch.Parse([]byte(xorArch))
	require.NoError(t, err)

	want := &arch.Spec{
		Name: "xor",
		Layers: []arch.Layer{
			{Type: "linear", In: 2, Out: 4},
			{Type: "tanh"},
			{Type: "sequential", Layers: []arch.Layer{
				{Type: "linear", In: 4, Out: 1},
				{Type: "sigmoid"},
			}},
		},
	}
	if diff := cmp.Diff(want, spec); diff != "" {
		t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{name: "empty", doc: "name: x\n", want: "no layers"},
		{name: "unknown field", doc: "name: x\nlayers:\n  - type: relu\n    size: 3\n", want: "size"},
		{name: "malformed", doc: "layers: [", want: "failed to parse architecture"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := arch.Parse([]byte(tt.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestBuild(t *testing.T) {
	spec, err := arch.Parse([]byte(xorArch))
	require.NoError(t, err)

	model, err := spec.Build()
	require.NoError(t, err)

	want := strings.Join([]string{
		"Sequential(",
		"  (0): Linear(in_features=2, out_features=4)",
		"  (1): Tanh()",
		"  (2): Sequential(",
		"    (0): Linear(in_features=4, out_features=1)",
		"    (1): Sigmoid()",
		"  )",
		")",
	}, "\n")
	assert.Equal(t, want, module.Repr(model))

	named := model.NamedParameters()
	require.Len(t, named, (2*4+4)+(4*1+1))
	assert.Equal(t, "2.0.bias_0", named[len(named)-1].Name)

	out, err := module.Call(model, []float64{1, 0})
	require.NoError(t, err)
	require.Len(t, out, 1)
	y := out.([]float64)[0]
	assert.True(t, y > 0 && y < 1, "sigmoid output %v out of range", y)
}

func TestBuild_Errors(t *testing.T) {
	tests := []struct {
		name  string
		spec  arch.Spec
		want  string
		isErr error
	}{
		{
			name:  "unknown type",
			spec:  arch.Spec{Layers: []arch.Layer{{Type: "relu"}, {Type: "conv"}}},
			want:  `layer 1: unknown layer type: "conv"`,
			isErr: arch.ErrUnknownLayer,
		},
		{
			name: "bad linear",
			spec: arch.Spec{Layers: []arch.Layer{{Type: "linear", In: 2}}},
			want: "layer 0: linear needs positive in and out, got in=2 out=0",
		},
		{
			name:  "nested",
			spec:  arch.Spec{Layers: []arch.Layer{{Type: "sequential", Layers: []arch.Layer{{Type: "pool"}}}}},
			want:  "layer 0: layer 0.0: unknown layer type",
			isErr: arch.ErrUnknownLayer,
		},
		{
			name: "empty nested",
			spec: arch.Spec{Layers: []arch.Layer{{Type: "sequential"}}},
			want: "sequential needs at least one layer",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.spec.Build()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
			if tt.isErr != nil {
				assert.ErrorIs(t, err, tt.isErr)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "xor.yaml")
	require.NoError(t, os.WriteFile(path, []byte(xorArch), 0o600))

	spec, err := arch.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "xor", spec.Name)

	_, err = arch.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read architecture")
}
