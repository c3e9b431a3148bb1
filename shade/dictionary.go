package shade

import (
	"fmt"

	"github.com/richinsley/goshaderparams/device"
)

// NamedCell is a named, independently settable value. Cells are held by
// pointer so every link into a dictionary sees the latest value.
// A cell is meant to be written by the thread that owns the GL context.
//
// A cell holding nil (or a zero handle) still satisfies a link: values are
// read at fill time, so the slot is filled as unset and the backend leaves
// that input untouched for the draw.
type NamedCell[T any] struct {
	Name  string
	value T
}

// NewNamedCell returns a cell holding v.
func NewNamedCell[T any](name string, v T) *NamedCell[T] {
	return &NamedCell[T]{Name: name, value: v}
}

// Get returns the current value.
func (c *NamedCell[T]) Get() T { return c.value }

// Set overwrites the value.
func (c *NamedCell[T]) Set(v T) { c.value = v }

// ParamDictionary is a named parameter store that can be linked to any
// number of programs. A program input is matched to the first cell whose name
// equals the input's name exactly.
type ParamDictionary struct {
	Uniforms []*NamedCell[device.UniformValue]
	Blocks   []*NamedCell[device.BufferHandle]
	Textures []*NamedCell[TextureParam]
}

// ParamDictionaryLink maps each declared input to a cell position in the
// dictionary it was created from.
type ParamDictionaryLink struct {
	uniforms []VarUniform
	blocks   []VarBlock
	textures []VarTexture
}

var _ ShaderParam[*ParamDictionaryLink] = (*ParamDictionary)(nil)

// NewParamDictionary returns an empty dictionary.
func NewParamDictionary() *ParamDictionary {
	return &ParamDictionary{}
}

// AddUniform appends a uniform cell.
func (d *ParamDictionary) AddUniform(name string, v device.UniformValue) *NamedCell[device.UniformValue] {
	c := NewNamedCell(name, v)
	d.Uniforms = append(d.Uniforms, c)
	return c
}

// AddBlock appends a uniform block cell.
func (d *ParamDictionary) AddBlock(name string, b device.BufferHandle) *NamedCell[device.BufferHandle] {
	c := NewNamedCell(name, b)
	d.Blocks = append(d.Blocks, c)
	return c
}

// AddTexture appends a texture cell.
func (d *ParamDictionary) AddTexture(name string, t TextureParam) *NamedCell[TextureParam] {
	c := NewNamedCell(name, t)
	d.Textures = append(d.Textures, c)
	return c
}

// Uniform returns the first uniform cell with the given name, or nil.
func (d *ParamDictionary) Uniform(name string) *NamedCell[device.UniformValue] {
	return findCell(d.Uniforms, name)
}

// Block returns the first block cell with the given name, or nil.
func (d *ParamDictionary) Block(name string) *NamedCell[device.BufferHandle] {
	return findCell(d.Blocks, name)
}

// Texture returns the first texture cell with the given name, or nil.
func (d *ParamDictionary) Texture(name string) *NamedCell[TextureParam] {
	return findCell(d.Textures, name)
}

func findCell[T any](cells []*NamedCell[T], name string) *NamedCell[T] {
	if i := cellIndex(cells, name); i >= 0 {
		return cells[i]
	}
	return nil
}

func cellIndex[T any](cells []*NamedCell[T], name string) int {
	for i, c := range cells {
		if c.Name == name {
			return i
		}
	}
	return -1
}

// CreateLink resolves every declared input to a cell position. A dictionary
// with more cells of a kind than a slot index can address fails with an
// internal parameter error once an input resolves past that limit.
func (d *ParamDictionary) CreateLink(in ParamLinkInput) (*ParamDictionaryLink, error) {
	link := &ParamDictionaryLink{
		uniforms: make([]VarUniform, len(in.Uniforms)),
		blocks:   make([]VarBlock, len(in.Blocks)),
		textures: make([]VarTexture, len(in.Textures)),
	}
	var ok bool
	for i, v := range in.Uniforms {
		pos := cellIndex(d.Uniforms, v.Name)
		if pos < 0 {
			return nil, missing(UniformError(v.Name))
		}
		if link.uniforms[i], ok = slotIndex[VarUniform](pos); !ok {
			return nil, missing(ParameterError{Kind: ParamInternal})
		}
	}
	for i, v := range in.Blocks {
		pos := cellIndex(d.Blocks, v.Name)
		if pos < 0 {
			return nil, missing(BlockError(v.Name))
		}
		if link.blocks[i], ok = slotIndex[VarBlock](pos); !ok {
			return nil, missing(ParameterError{Kind: ParamInternal})
		}
	}
	for i, v := range in.Textures {
		pos := cellIndex(d.Textures, v.Name)
		if pos < 0 {
			return nil, missing(TextureError(v.Name))
		}
		if link.textures[i], ok = slotIndex[VarTexture](pos); !ok {
			return nil, missing(ParameterError{Kind: ParamInternal})
		}
	}
	return link, nil
}

// FillParams copies the current cell values into out.
func (d *ParamDictionary) FillParams(link *ParamDictionaryLink, out ParamValues) {
	checkFill(link, out)
	for i, id := range link.uniforms {
		out.Uniforms[i] = d.Uniforms[id].Get()
	}
	for i, id := range link.blocks {
		out.Blocks[i] = d.Blocks[id].Get()
	}
	for i, id := range link.textures {
		out.Textures[i] = d.Textures[id].Get()
	}
}

func checkFill(link *ParamDictionaryLink, out ParamValues) {
	u, b, t := out.Len()
	if u < len(link.uniforms) || b < len(link.blocks) || t < len(link.textures) {
		panic(fmt.Sprintf("shade: parameter buffer (%d, %d, %d) is smaller than its link (%d, %d, %d)",
			u, b, t, len(link.uniforms), len(link.blocks), len(link.textures)))
	}
}

// Unused reports the cells no input of in refers to, as UnusedParameter
// errors. A shared dictionary usually has unused cells; this is for
// diagnostics only.
func (d *ParamDictionary) Unused(in ParamLinkInput) []*ParameterLinkError {
	var errs []*ParameterLinkError
	for _, c := range d.Uniforms {
		if !declared(in.Uniforms, c.Name, func(v device.UniformVar) string { return v.Name }) {
			errs = append(errs, unused(UniformError(c.Name)))
		}
	}
	for _, c := range d.Blocks {
		if !declared(in.Blocks, c.Name, func(v device.BlockVar) string { return v.Name }) {
			errs = append(errs, unused(BlockError(c.Name)))
		}
	}
	for _, c := range d.Textures {
		if !declared(in.Textures, c.Name, func(v device.SamplerVar) string { return v.Name }) {
			errs = append(errs, unused(TextureError(c.Name)))
		}
	}
	return errs
}

func declared[V any](vars []V, name string, nameOf func(V) string) bool {
	for _, v := range vars {
		if nameOf(v) == name {
			return true
		}
	}
	return false
}
