package glbackend

import (
	gl "github.com/go-gl/gl/v4.1-core/gl"

	"github.com/richinsley/goshaderparams/device"
)

// uniformType maps a GL uniform type enum to its base type and shape.
// ok is false for sampler types and types this backend cannot upload.
func uniformType(xtype uint32) (base device.BaseType, c device.Container, ok bool) {
	vec := func(n uint8) device.Container { return device.Container{Kind: device.Vector, Rows: n} }
	mat := func(n uint8) device.Container { return device.Container{Kind: device.Matrix, Rows: n, Cols: n} }
	switch xtype {
	case gl.FLOAT:
		return device.BaseF32, device.Container{}, true
	case gl.FLOAT_VEC2:
		return device.BaseF32, vec(2), true
	case gl.FLOAT_VEC3:
		return device.BaseF32, vec(3), true
	case gl.FLOAT_VEC4:
		return device.BaseF32, vec(4), true
	case gl.INT:
		return device.BaseI32, device.Container{}, true
	case gl.INT_VEC2:
		return device.BaseI32, vec(2), true
	case gl.INT_VEC3:
		return device.BaseI32, vec(3), true
	case gl.INT_VEC4:
		return device.BaseI32, vec(4), true
	case gl.BOOL:
		return device.BaseBool, device.Container{}, true
	case gl.UNSIGNED_INT:
		return device.BaseU32, device.Container{}, true
	case gl.FLOAT_MAT2:
		return device.BaseF32, mat(2), true
	case gl.FLOAT_MAT3:
		return device.BaseF32, mat(3), true
	case gl.FLOAT_MAT4:
		return device.BaseF32, mat(4), true
	}
	return 0, device.Container{}, false
}

// samplerType maps a GL sampler type enum. ok is false for non-samplers.
func samplerType(xtype uint32) (base device.BaseType, st device.SamplerType, ok bool) {
	switch xtype {
	case gl.SAMPLER_1D:
		return device.BaseF32, device.SamplerType{Kind: device.Texture1D}, true
	case gl.SAMPLER_2D:
		return device.BaseF32, device.SamplerType{Kind: device.Texture2D}, true
	case gl.SAMPLER_3D:
		return device.BaseF32, device.SamplerType{Kind: device.Texture3D}, true
	case gl.SAMPLER_CUBE:
		return device.BaseF32, device.SamplerType{Kind: device.TextureCube}, true
	case gl.SAMPLER_2D_ARRAY:
		return device.BaseF32, device.SamplerType{Kind: device.Texture2DArray}, true
	case gl.SAMPLER_2D_SHADOW:
		return device.BaseF32, device.SamplerType{Kind: device.Texture2D, Shadow: true}, true
	case gl.SAMPLER_2D_MULTISAMPLE:
		return device.BaseF32, device.SamplerType{Kind: device.Texture2D, Multisampled: true}, true
	case gl.INT_SAMPLER_2D:
		return device.BaseI32, device.SamplerType{Kind: device.Texture2D}, true
	case gl.UNSIGNED_INT_SAMPLER_2D:
		return device.BaseU32, device.SamplerType{Kind: device.Texture2D}, true
	}
	return 0, device.SamplerType{}, false
}

func textureTarget(kind device.TextureKind) uint32 {
	switch kind {
	case device.Texture1D:
		return gl.TEXTURE_1D
	case device.Texture3D:
		return gl.TEXTURE_3D
	case device.TextureCube:
		return gl.TEXTURE_CUBE_MAP
	case device.Texture2DArray:
		return gl.TEXTURE_2D_ARRAY
	default:
		return gl.TEXTURE_2D
	}
}
