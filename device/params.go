package device

// ParamValues is the staging area a parameter source fills for one draw.
// Each slice is positionally aligned with the corresponding sequence of the
// program's ProgramInfo. The caller owns the storage; fill operations only
// write into it and must not retain it.
type ParamValues struct {
	Uniforms []UniformValue
	Blocks   []BufferHandle
	Textures []TextureParam
}

// NewParamValues allocates a buffer sized to the signature of info, with
// every slot unset.
func NewParamValues(info *ProgramInfo) ParamValues {
	if info == nil {
		return ParamValues{}
	}
	return ParamValues{
		Uniforms: make([]UniformValue, len(info.Uniforms)),
		Blocks:   make([]BufferHandle, len(info.Blocks)),
		Textures: make([]TextureParam, len(info.Textures)),
	}
}

// Len returns the number of uniform, block and texture slots.
func (pv ParamValues) Len() (uniforms, blocks, textures int) {
	return len(pv.Uniforms), len(pv.Blocks), len(pv.Textures)
}

// Reset marks every slot unset so the buffer can be reused for another fill.
func (pv ParamValues) Reset() {
	clear(pv.Uniforms)
	clear(pv.Blocks)
	clear(pv.Textures)
}
