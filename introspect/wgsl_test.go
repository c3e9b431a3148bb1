package introspect

import (
	"testing"

	"github.com/gogpu/naga/ir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/richinsley/goshaderparams/device"
	"github.com/richinsley/goshaderparams/shade"
)

const texturedWGSL = `
struct Globals {
    mvp: mat4x4<f32>,
    tint: vec4<f32>,
}

@group(0) @binding(0) var<uniform> globals: Globals;
@group(0) @binding(1) var albedo: texture_2d<f32>;
@group(0) @binding(2) var albedo_sampler: sampler;
@group(0) @binding(3) var shadow_map: texture_depth_2d;

@fragment
fn fs_main(@location(0) uv: vec2<f32>) -> @location(0) vec4<f32> {
    return globals.tint;
}
`

func TestFromWGSL(t *testing.T) {
	info, err := FromWGSL(texturedWGSL)
	require.NoError(t, err)

	assert.Empty(t, info.Uniforms)
	require.Len(t, info.Blocks, 1)
	assert.Equal(t, "globals", info.Blocks[0].Name)
	assert.Equal(t, 80, info.Blocks[0].Size)
	assert.Equal(t, device.StageFragment, info.Blocks[0].Usage)
	assert.Equal(t, uint8(0), info.Blocks[0].Slot)

	require.Len(t, info.Textures, 2)
	assert.Equal(t, "albedo", info.Textures[0].Name)
	assert.Equal(t, device.Texture2D, info.Textures[0].Type.Kind)
	assert.False(t, info.Textures[0].Type.Shadow)
	assert.Equal(t, "shadow_map", info.Textures[1].Name)
	assert.True(t, info.Textures[1].Type.Shadow)
	assert.Equal(t, uint8(1), info.Textures[1].Slot)
}

func TestFromWGSLLinksDictionary(t *testing.T) {
	info, err := FromWGSL(texturedWGSL)
	require.NoError(t, err)

	d := shade.NewParamDictionary()
	d.AddBlock("globals", device.BufferHandle{Name: 1})
	d.AddTexture("albedo", device.TextureParam{Texture: device.TextureHandle{Name: 2}})
	_, err = d.CreateLink(shade.LinkInput(info))
	var lerr *shade.ParameterLinkError
	require.ErrorAs(t, err, &lerr)
	assert.Equal(t, shade.TextureError("shadow_map"), lerr.Param)

	d.AddTexture("shadow_map", device.TextureParam{})
	link, err := d.CreateLink(shade.LinkInput(info))
	require.NoError(t, err)
	out := device.NewParamValues(info)
	d.FillParams(link, out)
	assert.Equal(t, device.BufferHandle{Name: 1}, out.Blocks[0])
}

func TestFromWGSLParseError(t *testing.T) {
	_, err := FromWGSL("fn main( {")
	assert.Error(t, err)
}

func TestTypeSize(t *testing.T) {
	four := uint32(4)
	m := &ir.Module{Types: []ir.Type{
		{Inner: ir.ScalarType{Kind: ir.ScalarFloat, Width: 4}},
		{Inner: ir.VectorType{Size: ir.Vec4, Scalar: ir.ScalarType{Kind: ir.ScalarFloat, Width: 4}}},
		{Inner: ir.MatrixType{Columns: ir.Vec3, Rows: ir.Vec3, Scalar: ir.ScalarType{Kind: ir.ScalarFloat, Width: 4}}},
		{Inner: ir.ArrayType{Base: 1, Size: ir.ArraySize{Constant: &four}, Stride: 16}},
		{Inner: ir.SamplerType{}},
	}}
	tests := []struct {
		handle ir.TypeHandle
		want   uint32
	}{
		{0, 4},
		{1, 16},
		{2, 48},
		{3, 64},
		{4, 0},
		{9, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, typeSize(m, tt.handle), "type %d", tt.handle)
	}
}

func TestFromModuleInvalidHandle(t *testing.T) {
	m := &ir.Module{GlobalVariables: []ir.GlobalVariable{{Name: "x", Space: ir.SpaceUniform, Type: 3}}}
	_, err := FromModule(m)
	assert.Error(t, err)
}
