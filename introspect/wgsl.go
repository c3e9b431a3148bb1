// Package introspect derives a program's declared input signature from shader
// source, without a GPU context. It lets a parameter source be linked and
// checked before any program exists.
package introspect

import (
	"fmt"

	"github.com/gogpu/naga"
	"github.com/gogpu/naga/ir"

	"github.com/richinsley/goshaderparams/device"
)

// FromWGSL parses and lowers WGSL source and returns its declared inputs.
func FromWGSL(source string) (*device.ProgramInfo, error) {
	ast, err := naga.Parse(source)
	if err != nil {
		return nil, fmt.Errorf("introspect: %w", err)
	}
	module, err := naga.LowerWithSource(ast, source)
	if err != nil {
		return nil, fmt.Errorf("introspect: %w", err)
	}
	return FromModule(module)
}

// FromModule returns the declared inputs of a lowered module, in declaration
// order. Uniform-space globals become blocks and sampled or depth images
// become textures. Samplers are not slots of their own: the sampler paired
// with a texture travels in its TextureParam.
func FromModule(module *ir.Module) (*device.ProgramInfo, error) {
	info := &device.ProgramInfo{}
	usage := stages(module)
	for _, gv := range module.GlobalVariables {
		if int(gv.Type) >= len(module.Types) {
			return nil, fmt.Errorf("introspect: global %q has invalid type handle %d", gv.Name, gv.Type)
		}
		switch gv.Space {
		case ir.SpaceUniform:
			if len(info.Blocks) > 255 {
				return nil, fmt.Errorf("introspect: too many uniform blocks")
			}
			info.Blocks = append(info.Blocks, device.BlockVar{
				Name:  gv.Name,
				Size:  int(typeSize(module, gv.Type)),
				Usage: usage,
				Slot:  uint8(len(info.Blocks)),
			})
		case ir.SpaceHandle:
			img, ok := module.Types[gv.Type].Inner.(ir.ImageType)
			if !ok || img.Class == ir.ImageClassStorage {
				continue
			}
			if len(info.Textures) > 255 {
				return nil, fmt.Errorf("introspect: too many textures")
			}
			info.Textures = append(info.Textures, device.SamplerVar{
				Name:     gv.Name,
				Location: -1,
				Base:     device.BaseF32,
				Type:     samplerType(img),
				Slot:     uint8(len(info.Textures)),
			})
		}
	}
	return info, nil
}

func stages(module *ir.Module) device.StageMask {
	var mask device.StageMask
	for _, ep := range module.EntryPoints {
		switch ep.Stage {
		case ir.StageVertex:
			mask |= device.StageVertex
		case ir.StageFragment:
			mask |= device.StageFragment
		case ir.StageCompute:
			mask |= device.StageCompute
		}
	}
	return mask
}

func samplerType(img ir.ImageType) device.SamplerType {
	st := device.SamplerType{
		Shadow:       img.Class == ir.ImageClassDepth,
		Multisampled: img.Multisampled,
	}
	switch {
	case img.Arrayed:
		st.Kind = device.Texture2DArray
	case img.Dim == ir.Dim1D:
		st.Kind = device.Texture1D
	case img.Dim == ir.Dim3D:
		st.Kind = device.Texture3D
	case img.Dim == ir.DimCube:
		st.Kind = device.TextureCube
	default:
		st.Kind = device.Texture2D
	}
	return st
}

// typeSize is the byte size of a uniform-space type; 0 when unknown.
func typeSize(module *ir.Module, h ir.TypeHandle) uint32 {
	if int(h) >= len(module.Types) {
		return 0
	}
	switch t := module.Types[h].Inner.(type) {
	case ir.ScalarType:
		return uint32(t.Width)
	case ir.VectorType:
		return uint32(t.Size) * uint32(t.Scalar.Width)
	case ir.MatrixType:
		// Columns are padded to vec4 when rows == 3.
		rows := uint32(t.Rows)
		if rows == 3 {
			rows = 4
		}
		return uint32(t.Columns) * rows * uint32(t.Scalar.Width)
	case ir.ArrayType:
		if t.Size.Constant == nil {
			return 0
		}
		return *t.Size.Constant * t.Stride
	case ir.StructType:
		return t.Span
	}
	return 0
}
