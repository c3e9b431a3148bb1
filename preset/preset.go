// Package preset loads parameter dictionaries from TOML files.
//
//	[[uniform]]
//	name = "u_tint"
//	vec4 = [1.0, 0.5, 0.25, 1.0]
//
//	[[uniform]]
//	name = "u_level"
//	int = 3
//
//	[[block]]
//	name = "Globals"
//
//	[[texture]]
//	name = "u_albedo"
//
// Each uniform sets exactly one of int, float, ivec4, vec4 or mat4 (four rows).
// Blocks and textures only declare a cell; their handles are set at runtime
// once the GPU objects exist.
package preset

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/richinsley/goshaderparams/device"
	"github.com/richinsley/goshaderparams/shade"
)

// Uniform is one [[uniform]] entry.
type Uniform struct {
	Name  string         `toml:"name"`
	Int   *int32         `toml:"int,omitempty"`
	Float *float32       `toml:"float,omitempty"`
	IVec4 *[4]int32      `toml:"ivec4,omitempty"`
	Vec4  *[4]float32    `toml:"vec4,omitempty"`
	Mat4  *[4][4]float32 `toml:"mat4,omitempty"`
}

// Named is a [[block]] or [[texture]] entry.
type Named struct {
	Name string `toml:"name"`
}

// File is the document layout.
type File struct {
	Uniforms []Uniform `toml:"uniform"`
	Blocks   []Named   `toml:"block"`
	Textures []Named   `toml:"texture"`
}

// Value returns the uniform value the entry sets.
func (u Uniform) Value() (device.UniformValue, error) {
	var v device.UniformValue
	n := 0
	if u.Int != nil {
		v = shade.ToUniform(*u.Int)
		n++
	}
	if u.Float != nil {
		v = shade.ToUniform(*u.Float)
		n++
	}
	if u.IVec4 != nil {
		v = shade.ToUniform(*u.IVec4)
		n++
	}
	if u.Vec4 != nil {
		v = shade.ToUniform(*u.Vec4)
		n++
	}
	if u.Mat4 != nil {
		v = shade.ToUniform(*u.Mat4)
		n++
	}
	if n != 1 {
		return nil, fmt.Errorf("uniform %q sets %d values, want exactly one", u.Name, n)
	}
	return v, nil
}

// Dictionary builds a dictionary with one cell per entry, in file order.
func (f *File) Dictionary() (*shade.ParamDictionary, error) {
	d := shade.NewParamDictionary()
	for i, u := range f.Uniforms {
		if u.Name == "" {
			return nil, fmt.Errorf("uniform #%d has no name", i+1)
		}
		v, err := u.Value()
		if err != nil {
			return nil, err
		}
		d.AddUniform(u.Name, v)
	}
	for i, b := range f.Blocks {
		if b.Name == "" {
			return nil, fmt.Errorf("block #%d has no name", i+1)
		}
		d.AddBlock(b.Name, device.BufferHandle{})
	}
	for i, t := range f.Textures {
		if t.Name == "" {
			return nil, fmt.Errorf("texture #%d has no name", i+1)
		}
		d.AddTexture(t.Name, device.TextureParam{})
	}
	return d, nil
}

// Decode parses a TOML document into a dictionary.
func Decode(data []byte) (*shade.ParamDictionary, error) {
	return Load(bytes.NewReader(data))
}

// Load reads a TOML document from r into a dictionary.
func Load(r io.Reader) (*shade.ParamDictionary, error) {
	var f File
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("preset: %w", err)
	}
	d, err := f.Dictionary()
	if err != nil {
		return nil, fmt.Errorf("preset: %w", err)
	}
	return d, nil
}

// LoadFile reads the preset at path.
func LoadFile(path string) (*shade.ParamDictionary, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("preset: %w", err)
	}
	defer fh.Close()
	d, err := Load(fh)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.Printf("Loaded preset %s: %d uniforms, %d blocks, %d textures", path, len(d.Uniforms), len(d.Blocks), len(d.Textures))
	return d, nil
}

// Encode writes the uniforms of d back out as TOML. Block and texture cells
// are written by name only.
func Encode(w io.Writer, d *shade.ParamDictionary) error {
	var f File
	for _, c := range d.Uniforms {
		u := Uniform{Name: c.Name}
		switch v := c.Get().(type) {
		case device.ValueI32:
			x := int32(v)
			u.Int = &x
		case device.ValueF32:
			x := float32(v)
			u.Float = &x
		case device.ValueI32Vec:
			x := [4]int32(v)
			u.IVec4 = &x
		case device.ValueF32Vec:
			x := [4]float32(v)
			u.Vec4 = &x
		case device.ValueF32Matrix:
			x := [4][4]float32(v)
			u.Mat4 = &x
		default:
			return fmt.Errorf("preset: uniform %q has no value", c.Name)
		}
		f.Uniforms = append(f.Uniforms, u)
	}
	for _, c := range d.Blocks {
		f.Blocks = append(f.Blocks, Named{Name: c.Name})
	}
	for _, c := range d.Textures {
		f.Textures = append(f.Textures, Named{Name: c.Name})
	}
	return toml.NewEncoder(w).Encode(f)
}
