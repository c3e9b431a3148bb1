package device

// Name is the opaque identifier a backend assigns to a GPU object.
type Name = uint32

// TextureKind is the dimensionality of a texture object.
type TextureKind uint8

const (
	Texture2D TextureKind = iota
	Texture1D
	Texture3D
	TextureCube
	Texture2DArray
)

func (k TextureKind) String() string {
	switch k {
	case Texture1D:
		return "1D"
	case Texture3D:
		return "3D"
	case TextureCube:
		return "Cube"
	case Texture2DArray:
		return "2DArray"
	default:
		return "2D"
	}
}

// BufferInfo describes a buffer object.
type BufferInfo struct {
	Size int
}

// TextureInfo describes a texture object.
type TextureInfo struct {
	Kind   TextureKind
	Width  int
	Height int
	Depth  int
}

// SamplerInfo describes a sampler object.
type SamplerInfo struct {
	Filter string // "nearest", "linear" or "mipmap"
	Wrap   string // "repeat", "clamp" or "mirror"
}

// BufferHandle identifies a buffer object. The zero handle means no buffer.
type BufferHandle struct {
	Name Name
	Info BufferInfo
}

// IsZero reports whether h refers to no buffer.
func (h BufferHandle) IsZero() bool { return h == BufferHandle{} }

// TextureHandle identifies a texture object. The zero handle means no texture.
type TextureHandle struct {
	Name Name
	Info TextureInfo
}

// IsZero reports whether h refers to no texture.
func (h TextureHandle) IsZero() bool { return h == TextureHandle{} }

// SamplerHandle identifies a sampler object. The zero handle selects the
// program's default sampling state.
type SamplerHandle struct {
	Name Name
	Info SamplerInfo
}

// IsZero reports whether h refers to no sampler.
func (h SamplerHandle) IsZero() bool { return h == SamplerHandle{} }

// TextureParam is a texture paired with an optional sampler.
type TextureParam struct {
	Texture TextureHandle
	Sampler SamplerHandle
}

// IsZero reports whether neither a texture nor a sampler is set.
func (t TextureParam) IsZero() bool { return t == TextureParam{} }
