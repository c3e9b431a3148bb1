package shade

import "github.com/richinsley/goshaderparams/device"

// VarUniform is a uniform slot index. A link entry is one per declared
// uniform and holds the slot of the source's storage that feeds it.
type VarUniform uint16

// VarBlock is a uniform block slot index.
type VarBlock uint8

// VarTexture is a texture slot index.
type VarTexture uint8

// slotIndex narrows a storage position to a slot index. ok is false when the
// position does not fit.
func slotIndex[V VarUniform | VarBlock | VarTexture](pos int) (v V, ok bool) {
	v = V(pos)
	return v, pos >= 0 && int(v) == pos
}

type (
	// ParamValues is the per-draw staging buffer; see device.ParamValues.
	ParamValues = device.ParamValues
	// TextureParam is a texture with an optional sampler.
	TextureParam = device.TextureParam
)

// ParamLinkInput is the declared input signature a link is built against.
// It borrows the program's descriptor slices and must not be retained past
// link creation.
type ParamLinkInput struct {
	Uniforms []device.UniformVar
	Blocks   []device.BlockVar
	Textures []device.SamplerVar
}

// LinkInput returns the declared input signature of a program.
func LinkInput(info *device.ProgramInfo) ParamLinkInput {
	if info == nil {
		return ParamLinkInput{}
	}
	return ParamLinkInput{
		Uniforms: info.Uniforms,
		Blocks:   info.Blocks,
		Textures: info.Textures,
	}
}
