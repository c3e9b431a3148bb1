package shade

import (
	"fmt"
	"log"
	"reflect"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/richinsley/goshaderparams/device"
)

type fieldKind uint8

const (
	fieldUniform fieldKind = iota
	fieldBlock
	fieldTexture
)

type paramField struct {
	name  string
	index int
	kind  fieldKind
	conv  func(reflect.Value) device.UniformValue
}

// StructParams is a parameter source backed by the fields of a struct.
//
// Exported fields whose type is one of the Uniform types, a
// device.UniformValue, a device.BufferHandle or a device.TextureParam are
// parameters. The program input name is taken from the `shader` tag, or the
// field name when the tag is absent; `shader:"-"` skips a field.
//
// A nil device.UniformValue field links like any other and fills its slot
// as unset, so the input keeps whatever the program last had.
type StructParams[T any] struct {
	// Value holds the parameter values. Set its fields between draws.
	Value *T
	// Strict makes a field the program never declares a link error instead
	// of a log line.
	Strict bool

	fields []paramField
}

// StructLink maps each declared input to a struct field.
type StructLink struct {
	uniforms []paramField
	blocks   []int
	textures []int
}

// NewStructParams scans the fields of *v.
func NewStructParams[T any](v *T) (*StructParams[T], error) {
	rt := reflect.TypeOf(v).Elem()
	if rt.Kind() != reflect.Struct {
		return nil, fmt.Errorf("shade: %s is not a struct", rt)
	}
	sp := &StructParams[T]{Value: v}
	for i := 0; i < rt.NumField(); i++ {
		f := rt.Field(i)
		tag, tagged := f.Tag.Lookup("shader")
		if !f.IsExported() || tag == "-" {
			continue
		}
		name := f.Name
		if tag != "" {
			name = tag
		}
		pf := paramField{name: name, index: i}
		switch {
		case f.Type == reflect.TypeOf(device.BufferHandle{}):
			pf.kind = fieldBlock
		case f.Type == reflect.TypeOf(device.TextureParam{}):
			pf.kind = fieldTexture
		default:
			pf.kind = fieldUniform
			pf.conv = uniformConverter(f.Type)
			if pf.conv == nil {
				if tagged {
					return nil, fmt.Errorf("shade: field %s.%s: type %s cannot be a shader parameter", rt, f.Name, f.Type)
				}
				continue
			}
		}
		sp.fields = append(sp.fields, pf)
	}
	return sp, nil
}

var uniformValueType = reflect.TypeOf((*device.UniformValue)(nil)).Elem()

func uniformConverter(t reflect.Type) func(reflect.Value) device.UniformValue {
	switch t {
	case reflect.TypeOf(int32(0)):
		return func(v reflect.Value) device.UniformValue { return device.ValueI32(v.Int()) }
	case reflect.TypeOf(float32(0)):
		return func(v reflect.Value) device.UniformValue { return device.ValueF32(v.Float()) }
	case reflect.TypeOf([4]int32{}):
		return func(v reflect.Value) device.UniformValue { return ToUniform(v.Interface().([4]int32)) }
	case reflect.TypeOf([4]float32{}):
		return func(v reflect.Value) device.UniformValue { return ToUniform(v.Interface().([4]float32)) }
	case reflect.TypeOf([4][4]float32{}):
		return func(v reflect.Value) device.UniformValue { return ToUniform(v.Interface().([4][4]float32)) }
	case reflect.TypeOf(mgl32.Vec4{}):
		return func(v reflect.Value) device.UniformValue { return ToUniform(v.Interface().(mgl32.Vec4)) }
	case reflect.TypeOf(mgl32.Mat4{}):
		return func(v reflect.Value) device.UniformValue { return ToUniform(v.Interface().(mgl32.Mat4)) }
	case uniformValueType:
		return func(v reflect.Value) device.UniformValue {
			if v.IsNil() {
				return nil
			}
			return v.Interface().(device.UniformValue)
		}
	}
	return nil
}

func (sp *StructParams[T]) field(kind fieldKind, name string) (paramField, bool) {
	for _, f := range sp.fields {
		if f.kind == kind && f.name == name {
			return f, true
		}
	}
	return paramField{}, false
}

// CreateLink resolves every declared input to a field.
func (sp *StructParams[T]) CreateLink(in ParamLinkInput) (*StructLink, error) {
	link := &StructLink{
		uniforms: make([]paramField, len(in.Uniforms)),
		blocks:   make([]int, len(in.Blocks)),
		textures: make([]int, len(in.Textures)),
	}
	used := make(map[int]bool)
	for i, v := range in.Uniforms {
		f, ok := sp.field(fieldUniform, v.Name)
		if !ok {
			return nil, missing(UniformError(v.Name))
		}
		link.uniforms[i] = f
		used[f.index] = true
	}
	for i, v := range in.Blocks {
		f, ok := sp.field(fieldBlock, v.Name)
		if !ok {
			return nil, missing(BlockError(v.Name))
		}
		link.blocks[i] = f.index
		used[f.index] = true
	}
	for i, v := range in.Textures {
		f, ok := sp.field(fieldTexture, v.Name)
		if !ok {
			return nil, missing(TextureError(v.Name))
		}
		link.textures[i] = f.index
		used[f.index] = true
	}
	for _, f := range sp.fields {
		if used[f.index] {
			continue
		}
		var perr ParameterError
		switch f.kind {
		case fieldBlock:
			perr = BlockError(f.name)
		case fieldTexture:
			perr = TextureError(f.name)
		default:
			perr = UniformError(f.name)
		}
		if sp.Strict {
			return nil, unused(perr)
		}
		log.Printf("shade: parameter %v is not used by the program", &perr)
	}
	return link, nil
}

// FillParams reads the linked fields of Value into out.
func (sp *StructParams[T]) FillParams(link *StructLink, out ParamValues) {
	rv := reflect.ValueOf(sp.Value).Elem()
	for i, f := range link.uniforms {
		out.Uniforms[i] = f.conv(rv.Field(f.index))
	}
	for i, idx := range link.blocks {
		out.Blocks[i] = rv.Field(idx).Interface().(device.BufferHandle)
	}
	for i, idx := range link.textures {
		out.Textures[i] = rv.Field(idx).Interface().(device.TextureParam)
	}
}
