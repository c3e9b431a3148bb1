package glbackend

import (
	"testing"

	gl "github.com/go-gl/gl/v4.1-core/gl"
	gst "github.com/richinsley/goshadertranslator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/richinsley/goshaderparams/device"
)

func translatedShader() *gst.Shader {
	vars := []gst.ShaderVariable{
		{Name: "u_b", MappedName: "_uu_b", Type: gl.FLOAT_VEC4, Category: "uniforms", Active: true},
		{Name: "u_a", MappedName: "_uu_a", Type: gl.FLOAT, Category: "uniforms", Active: true},
		{Name: "tex", MappedName: "_utex", Type: gl.SAMPLER_2D, Category: "uniforms", StaticUse: true},
		{Name: "env", MappedName: "_uenv", Type: gl.SAMPLER_CUBE, Category: "uniforms", Active: true},
		{Name: "Glob", MappedName: "_uGlob", Category: "interface_blocks", Active: true},
		{Name: "dead", MappedName: "_udead", Type: gl.FLOAT, Category: "uniforms"},
		{Name: "v_out", MappedName: "_uv_out", Type: gl.FLOAT_VEC2, Category: "varyings", Active: true},
		{Name: "u_odd", MappedName: "_uu_odd", Type: gl.DOUBLE, Category: "uniforms", Active: true},
	}
	s := &gst.Shader{Variables: make(map[string]gst.ShaderVariable, len(vars))}
	for _, v := range vars {
		s.Variables[v.Name] = v
	}
	return s
}

func TestSignature(t *testing.T) {
	info := Signature(translatedShader())

	require.Len(t, info.Uniforms, 2)
	assert.Equal(t, device.UniformVar{Name: "u_a", Location: -1, Count: 1, Base: device.BaseF32}, info.Uniforms[0])
	assert.Equal(t, device.UniformVar{
		Name: "u_b", Location: -1, Count: 1, Base: device.BaseF32,
		Container: device.Container{Kind: device.Vector, Rows: 4},
	}, info.Uniforms[1])

	require.Len(t, info.Blocks, 1)
	assert.Equal(t, device.BlockVar{Name: "Glob", Usage: device.StageFragment, Slot: 0}, info.Blocks[0])

	require.Len(t, info.Textures, 2)
	assert.Equal(t, "env", info.Textures[0].Name)
	assert.Equal(t, device.TextureCube, info.Textures[0].Type.Kind)
	assert.Equal(t, uint8(0), info.Textures[0].Slot)
	assert.Equal(t, "tex", info.Textures[1].Name)
	assert.Equal(t, device.Texture2D, info.Textures[1].Type.Kind)
	assert.Equal(t, uint8(1), info.Textures[1].Slot)
	assert.Equal(t, int32(-1), info.Textures[1].Location)
}

func TestSignatureEmpty(t *testing.T) {
	info := Signature(&gst.Shader{})
	assert.True(t, info.Empty())
}

func TestRenameMapped(t *testing.T) {
	info := &device.ProgramInfo{
		Uniforms: []device.UniformVar{{Name: "_uu_a"}, {Name: "gl_unmapped"}},
		Blocks:   []device.BlockVar{{Name: "_uGlob"}},
		Textures: []device.SamplerVar{{Name: "_utex"}},
	}
	renameMapped(info, translatedShader().Variables)

	assert.Equal(t, "u_a", info.Uniforms[0].Name)
	assert.Equal(t, "gl_unmapped", info.Uniforms[1].Name)
	assert.Equal(t, "Glob", info.Blocks[0].Name)
	assert.Equal(t, "tex", info.Textures[0].Name)
}

func TestUniformType(t *testing.T) {
	tests := []struct {
		name  string
		xtype uint32
		base  device.BaseType
		c     device.Container
		ok    bool
	}{
		{"float", gl.FLOAT, device.BaseF32, device.Container{}, true},
		{"vec3", gl.FLOAT_VEC3, device.BaseF32, device.Container{Kind: device.Vector, Rows: 3}, true},
		{"ivec2", gl.INT_VEC2, device.BaseI32, device.Container{Kind: device.Vector, Rows: 2}, true},
		{"uint", gl.UNSIGNED_INT, device.BaseU32, device.Container{}, true},
		{"bool", gl.BOOL, device.BaseBool, device.Container{}, true},
		{"mat3", gl.FLOAT_MAT3, device.BaseF32, device.Container{Kind: device.Matrix, Rows: 3, Cols: 3}, true},
		{"mat4", gl.FLOAT_MAT4, device.BaseF32, device.Container{Kind: device.Matrix, Rows: 4, Cols: 4}, true},
		{"sampler", gl.SAMPLER_2D, 0, device.Container{}, false},
		{"double", gl.DOUBLE, 0, device.Container{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base, c, ok := uniformType(tt.xtype)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.base, base)
			assert.Equal(t, tt.c, c)
		})
	}
}

func TestSamplerType(t *testing.T) {
	tests := []struct {
		name  string
		xtype uint32
		base  device.BaseType
		st    device.SamplerType
		ok    bool
	}{
		{"2d", gl.SAMPLER_2D, device.BaseF32, device.SamplerType{Kind: device.Texture2D}, true},
		{"3d", gl.SAMPLER_3D, device.BaseF32, device.SamplerType{Kind: device.Texture3D}, true},
		{"cube", gl.SAMPLER_CUBE, device.BaseF32, device.SamplerType{Kind: device.TextureCube}, true},
		{"array", gl.SAMPLER_2D_ARRAY, device.BaseF32, device.SamplerType{Kind: device.Texture2DArray}, true},
		{"shadow", gl.SAMPLER_2D_SHADOW, device.BaseF32, device.SamplerType{Kind: device.Texture2D, Shadow: true}, true},
		{"multisample", gl.SAMPLER_2D_MULTISAMPLE, device.BaseF32, device.SamplerType{Kind: device.Texture2D, Multisampled: true}, true},
		{"isampler", gl.INT_SAMPLER_2D, device.BaseI32, device.SamplerType{Kind: device.Texture2D}, true},
		{"usampler", gl.UNSIGNED_INT_SAMPLER_2D, device.BaseU32, device.SamplerType{Kind: device.Texture2D}, true},
		{"vec4", gl.FLOAT_VEC4, 0, device.SamplerType{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base, st, ok := samplerType(tt.xtype)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.base, base)
			assert.Equal(t, tt.st, st)
		})
	}
}

func TestTextureTarget(t *testing.T) {
	assert.Equal(t, uint32(gl.TEXTURE_2D), textureTarget(device.Texture2D))
	assert.Equal(t, uint32(gl.TEXTURE_CUBE_MAP), textureTarget(device.TextureCube))
	assert.Equal(t, uint32(gl.TEXTURE_3D), textureTarget(device.Texture3D))
	assert.Equal(t, uint32(gl.TEXTURE_2D_ARRAY), textureTarget(device.Texture2DArray))
}
