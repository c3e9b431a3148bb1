package device

import "fmt"

// BaseType is the scalar type of a shader variable.
type BaseType uint8

const (
	BaseF32 BaseType = iota
	BaseF64
	BaseI32
	BaseU32
	BaseBool
)

func (b BaseType) String() string {
	switch b {
	case BaseF64:
		return "f64"
	case BaseI32:
		return "i32"
	case BaseU32:
		return "u32"
	case BaseBool:
		return "bool"
	default:
		return "f32"
	}
}

// ContainerKind tells whether a variable is a scalar, vector or matrix.
type ContainerKind uint8

const (
	Single ContainerKind = iota
	Vector
	Matrix
)

// Container is the shape of a uniform variable.
// Rows is the vector size for vectors; Cols is only used by matrices.
type Container struct {
	Kind ContainerKind
	Rows uint8
	Cols uint8
}

func (c Container) String() string {
	switch c.Kind {
	case Vector:
		return fmt.Sprintf("vec%d", c.Rows)
	case Matrix:
		return fmt.Sprintf("mat%dx%d", c.Cols, c.Rows)
	default:
		return "scalar"
	}
}

// StageMask is a set of shader stages.
type StageMask uint8

const (
	StageVertex StageMask = 1 << iota
	StageFragment
	StageCompute
)

// SamplerType describes what a sampler variable samples.
type SamplerType struct {
	Kind         TextureKind
	Shadow       bool
	Multisampled bool
}

// UniformVar is a loose uniform declared by a program.
type UniformVar struct {
	Name      string
	Location  int32
	Count     int
	Base      BaseType
	Container Container
}

// BlockVar is a uniform block declared by a program.
type BlockVar struct {
	Name  string
	Size  int
	Usage StageMask
	// Slot is the buffer binding point the block is attached to.
	Slot uint8
}

// SamplerVar is a texture/sampler input declared by a program.
type SamplerVar struct {
	Name     string
	Location int32
	Base     BaseType
	Type     SamplerType
	// Slot is the texture unit the sampler reads from.
	Slot uint8
}

// ProgramInfo is the declared input signature of a linked program.
type ProgramInfo struct {
	Uniforms []UniformVar
	Blocks   []BlockVar
	Textures []SamplerVar
}

// Empty reports whether the program declares no inputs at all.
func (p *ProgramInfo) Empty() bool {
	return p == nil || len(p.Uniforms) == 0 && len(p.Blocks) == 0 && len(p.Textures) == 0
}

// ProgramHandle identifies a linked program together with its signature.
type ProgramHandle struct {
	Name Name
	Info *ProgramInfo
}

// GetProgram returns the handle itself, so a bare program can be drawn
// wherever a shell is expected.
func (p ProgramHandle) GetProgram() ProgramHandle {
	return p
}

// FillParams fills nothing: a bare program has no parameter source. It panics
// if the caller passes slots to fill, because the program declares inputs
// nobody will provide.
func (p ProgramHandle) FillParams(out ParamValues) {
	if u, b, t := out.Len(); u != 0 || b != 0 || t != 0 {
		panic(fmt.Sprintf("program %d declares %d uniforms, %d blocks and %d textures; connect it to a parameter source before drawing", p.Name, u, b, t))
	}
}
