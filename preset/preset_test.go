package preset

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/richinsley/goshaderparams/device"
	"github.com/richinsley/goshaderparams/introspect"
	"github.com/richinsley/goshaderparams/shade"
	"github.com/richinsley/goshaderparams/shader"
)

const sample = `
[[uniform]]
name = "u_tint"
vec4 = [1.0, 0.5, 0.25, 1.0]

[[uniform]]
name = "u_level"
int = 3

[[uniform]]
name = "u_time"
float = 0.5

[[uniform]]
name = "u_mvp"
mat4 = [[1.0, 0.0, 0.0, 2.0], [0.0, 1.0, 0.0, 0.0], [0.0, 0.0, 1.0, 0.0], [0.0, 0.0, 0.0, 1.0]]

[[block]]
name = "Globals"

[[texture]]
name = "u_albedo"
`

func TestDecode(t *testing.T) {
	d, err := Decode([]byte(sample))
	require.NoError(t, err)
	require.Len(t, d.Uniforms, 4)
	assert.Equal(t, device.UniformValue(device.ValueF32Vec{1, 0.5, 0.25, 1}), d.Uniform("u_tint").Get())
	assert.Equal(t, device.UniformValue(device.ValueI32(3)), d.Uniform("u_level").Get())
	assert.Equal(t, device.UniformValue(device.ValueF32(0.5)), d.Uniform("u_time").Get())
	mvp := d.Uniform("u_mvp").Get().(device.ValueF32Matrix)
	assert.Equal(t, float32(2), mvp[0][3])
	require.NotNil(t, d.Block("Globals"))
	assert.True(t, d.Block("Globals").Get().IsZero())
	require.NotNil(t, d.Texture("u_albedo"))
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"no value", "[[uniform]]\nname = \"a\"\n"},
		{"two values", "[[uniform]]\nname = \"a\"\nint = 1\nfloat = 2.0\n"},
		{"no name", "[[uniform]]\nint = 1\n"},
		{"unnamed block", "[[block]]\n"},
		{"unknown key", "[[uniform]]\nname = \"a\"\nvec3 = [1.0, 2.0, 3.0]\n"},
		{"bad syntax", "[[uniform\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.doc))
			assert.Error(t, err)
		})
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	d, err := Decode([]byte(sample))
	require.NoError(t, err)
	d.Uniform("u_time").Set(device.ValueF32(2.5))

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, d))
	back, err := Decode(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, device.UniformValue(device.ValueF32(2.5)), back.Uniform("u_time").Get())
	assert.Equal(t, d.Uniform("u_mvp").Get(), back.Uniform("u_mvp").Get())
	assert.Len(t, back.Textures, 1)

	d.AddUniform("unset", nil)
	assert.Error(t, Encode(&buf, d))
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "params.toml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))
	d, err := LoadFile(path)
	require.NoError(t, err)

	program := device.ProgramHandle{Name: 1, Info: &device.ProgramInfo{
		Uniforms: []device.UniformVar{{Name: "u_mvp"}, {Name: "u_tint"}},
		Textures: []device.SamplerVar{{Name: "u_albedo"}},
	}}
	shell, err := shade.Connect[*shade.ParamDictionaryLink](program, d)
	require.NoError(t, err)
	out := device.NewParamValues(program.Info)
	shell.FillParams(out)
	assert.Equal(t, d.Uniform("u_tint").Get(), out.Uniforms[1])

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestCheckDemoShader(t *testing.T) {
	info, err := introspect.FromWGSL(shader.DemoWGSL)
	require.NoError(t, err)
	d, err := Decode(shader.DefaultPreset)
	require.NoError(t, err)

	report := Check(info, d)
	assert.NoError(t, report.Missing)
	require.Len(t, report.Unused, 2)
	assert.Equal(t, shade.UniformError("tint"), report.Unused[0].Param)
	assert.Equal(t, shade.UniformError("mvp"), report.Unused[1].Param)
	assert.True(t, report.OK(false))
	assert.False(t, report.OK(true))
}

func TestCheckMissing(t *testing.T) {
	d, err := Decode([]byte(sample))
	require.NoError(t, err)
	info := &device.ProgramInfo{
		Uniforms: []device.UniformVar{{Name: "u_tint"}, {Name: "u_exposure"}},
	}

	report := Check(info, d)
	require.Error(t, report.Missing)
	assert.ErrorIs(t, report.Missing, shade.ErrMissingParameter)
	var perr *shade.ParameterError
	require.ErrorAs(t, report.Missing, &perr)
	assert.Equal(t, "u_exposure", perr.Name)
	assert.False(t, report.OK(false))
}
