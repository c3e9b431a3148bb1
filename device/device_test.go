package device

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewParamValues(t *testing.T) {
	info := &ProgramInfo{
		Uniforms: []UniformVar{{Name: "a"}, {Name: "b"}},
		Textures: []SamplerVar{{Name: "t"}},
	}
	pv := NewParamValues(info)
	u, b, tx := pv.Len()
	assert.Equal(t, 2, u)
	assert.Equal(t, 0, b)
	assert.Equal(t, 1, tx)
	assert.Nil(t, pv.Uniforms[0])

	pv.Uniforms[1] = ValueF32(2)
	pv.Textures[0] = TextureParam{Texture: TextureHandle{Name: 3}}
	pv.Reset()
	assert.Nil(t, pv.Uniforms[1])
	assert.True(t, pv.Textures[0].IsZero())

	empty := NewParamValues(nil)
	u, b, tx = empty.Len()
	assert.Zero(t, u+b+tx)
}

func TestProgramHandleFillParams(t *testing.T) {
	p := ProgramHandle{Name: 7, Info: &ProgramInfo{}}
	assert.Equal(t, p, p.GetProgram())
	assert.True(t, p.Info.Empty())
	assert.NotPanics(t, func() { p.FillParams(ParamValues{}) })

	withInputs := ProgramHandle{Name: 8, Info: &ProgramInfo{Uniforms: []UniformVar{{Name: "u_color"}}}}
	assert.Panics(t, func() { withInputs.FillParams(NewParamValues(withInputs.Info)) })
}

func TestUniformValueEquality(t *testing.T) {
	var a UniformValue = ValueF32Vec{1, 2, 3, 4}
	var b UniformValue = ValueF32Vec{1, 2, 3, 4}
	assert.True(t, a == b)
	assert.NotEqual(t, UniformValue(ValueI32(1)), UniformValue(ValueF32(1)))

	m := ValueF32Matrix{{1, 2, 3, 4}, {5, 6, 7, 8}, {9, 10, 11, 12}, {13, 14, 15, 16}}
	tr := m.Transposed()
	assert.Equal(t, float32(5), tr[0][1])
	assert.Equal(t, m, tr.Transposed())
	assert.Equal(t, "i32(3)", ValueI32(3).String())
}

func TestHandlesZero(t *testing.T) {
	assert.True(t, BufferHandle{}.IsZero())
	assert.False(t, BufferHandle{Name: 1}.IsZero())
	assert.True(t, SamplerHandle{}.IsZero())
	assert.Equal(t, "Cube", TextureCube.String())
	assert.Equal(t, "mat4x4", Container{Kind: Matrix, Rows: 4, Cols: 4}.String())
}
