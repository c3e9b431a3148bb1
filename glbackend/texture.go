package glbackend

import (
	"fmt"
	"image"
	"image/draw"

	gl "github.com/go-gl/gl/v4.1-core/gl"

	"github.com/richinsley/goshaderparams/device"
)

// TextureOptions controls how an image is uploaded.
type TextureOptions struct {
	SRGB  bool
	Float bool
	VFlip bool
	// Mipmap generates a mip chain after upload.
	Mipmap bool
}

// vflip vertically flips the provided RGBA image.
func vflip(src *image.RGBA) *image.RGBA {
	bounds := src.Bounds()
	flipped := image.NewRGBA(bounds)
	height := bounds.Dy()

	rowSize := bounds.Dx() * 4
	for y := 0; y < height; y++ {
		srcRow := src.Pix[((height-1)-y)*src.Stride:]
		dstRow := flipped.Pix[y*flipped.Stride:]
		copy(dstRow, srcRow[:rowSize])
	}
	return flipped
}

// NewTexture uploads img as a 2D texture.
func NewTexture(img image.Image, opts TextureOptions) (device.TextureHandle, error) {
	if img == nil {
		return device.TextureHandle{}, fmt.Errorf("input image is nil")
	}

	rgba := image.NewRGBA(img.Bounds())
	draw.Draw(rgba, rgba.Bounds(), img, img.Bounds().Min, draw.Src)
	if opts.VFlip {
		rgba = vflip(rgba)
	}

	width := int32(rgba.Rect.Size().X)
	height := int32(rgba.Rect.Size().Y)
	if width == 0 || height == 0 {
		return device.TextureHandle{}, fmt.Errorf("input image is empty")
	}

	var textureID uint32
	gl.GenTextures(1, &textureID)
	gl.BindTexture(gl.TEXTURE_2D, textureID)

	var internalFormat int32 = gl.RGBA8
	if opts.Float {
		internalFormat = gl.RGBA16F
	} else if opts.SRGB {
		internalFormat = gl.SRGB8_ALPHA8
	}

	gl.TexImage2D(gl.TEXTURE_2D, 0, internalFormat, width, height, 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(rgba.Pix))
	if opts.Mipmap {
		gl.GenerateMipmap(gl.TEXTURE_2D)
	}
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return device.TextureHandle{
		Name: textureID,
		Info: device.TextureInfo{Kind: device.Texture2D, Width: int(width), Height: int(height), Depth: 1},
	}, nil
}

// DeleteTexture releases a texture.
func DeleteTexture(t device.TextureHandle) {
	gl.DeleteTextures(1, &t.Name)
}

// getWrapMode converts a wrap name to a GL constant.
func getWrapMode(wrap string) int32 {
	switch wrap {
	case "clamp":
		return gl.CLAMP_TO_EDGE
	case "mirror":
		return gl.MIRRORED_REPEAT
	default:
		return gl.REPEAT
	}
}

// getFilterMode converts a filter name to GL min/mag constants.
func getFilterMode(filter string) (minFilter, magFilter int32) {
	switch filter {
	case "mipmap":
		return gl.LINEAR_MIPMAP_LINEAR, gl.LINEAR
	case "nearest":
		return gl.NEAREST, gl.NEAREST
	default:
		return gl.LINEAR, gl.LINEAR
	}
}

// NewSampler creates a sampler object. filter is "nearest", "linear" or
// "mipmap"; wrap is "repeat", "clamp" or "mirror".
func NewSampler(filter, wrap string) device.SamplerHandle {
	var id uint32
	gl.GenSamplers(1, &id)
	minFilter, magFilter := getFilterMode(filter)
	gl.SamplerParameteri(id, gl.TEXTURE_MIN_FILTER, minFilter)
	gl.SamplerParameteri(id, gl.TEXTURE_MAG_FILTER, magFilter)
	gl.SamplerParameteri(id, gl.TEXTURE_WRAP_S, getWrapMode(wrap))
	gl.SamplerParameteri(id, gl.TEXTURE_WRAP_T, getWrapMode(wrap))
	gl.SamplerParameteri(id, gl.TEXTURE_WRAP_R, getWrapMode(wrap))
	return device.SamplerHandle{Name: id, Info: device.SamplerInfo{Filter: filter, Wrap: wrap}}
}

// DeleteSampler releases a sampler.
func DeleteSampler(s device.SamplerHandle) {
	gl.DeleteSamplers(1, &s.Name)
}

// NewCubeTexture uploads six faces, in +X, -X, +Y, -Y, +Z, -Z order, as a
// cube map. Faces are flipped to GL's bottom-up row order.
func NewCubeTexture(faces [6]image.Image, opts TextureOptions) (device.TextureHandle, error) {
	for i, img := range faces {
		if img == nil {
			return device.TextureHandle{}, fmt.Errorf("input image for cube map face %d is nil", i)
		}
	}
	size := faces[0].Bounds().Size()

	var textureID uint32
	gl.GenTextures(1, &textureID)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, textureID)

	var internalFormat int32 = gl.RGBA8
	if opts.SRGB {
		internalFormat = gl.SRGB8_ALPHA8
	}

	for i, img := range faces {
		if img.Bounds().Size() != size {
			gl.BindTexture(gl.TEXTURE_CUBE_MAP, 0)
			gl.DeleteTextures(1, &textureID)
			return device.TextureHandle{}, fmt.Errorf("cube map face %d is %v, want %v", i, img.Bounds().Size(), size)
		}
		rgba := image.NewRGBA(img.Bounds())
		draw.Draw(rgba, rgba.Bounds(), img, img.Bounds().Min, draw.Src)
		rgba = vflip(rgba)
		gl.TexImage2D(gl.TEXTURE_CUBE_MAP_POSITIVE_X+uint32(i), 0, internalFormat,
			int32(size.X), int32(size.Y), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(rgba.Pix))
	}
	if opts.Mipmap {
		gl.GenerateMipmap(gl.TEXTURE_CUBE_MAP)
	}
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, 0)

	return device.TextureHandle{
		Name: textureID,
		Info: device.TextureInfo{Kind: device.TextureCube, Width: size.X, Height: size.Y, Depth: 6},
	}, nil
}
