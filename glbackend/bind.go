package glbackend

import (
	gl "github.com/go-gl/gl/v4.1-core/gl"

	"github.com/richinsley/goshaderparams/device"
)

// Bind makes program current and uploads every set slot of values. values
// must be aligned with program.Info; unset slots are left untouched.
func Bind(program device.ProgramHandle, values device.ParamValues) {
	gl.UseProgram(program.Name)
	if program.Info == nil {
		return
	}
	for i, v := range values.Uniforms {
		if v == nil {
			continue
		}
		uploadUniform(program.Info.Uniforms[i], v)
	}
	for i, b := range values.Blocks {
		if b.IsZero() {
			continue
		}
		gl.BindBufferBase(gl.UNIFORM_BUFFER, uint32(program.Info.Blocks[i].Slot), b.Name)
	}
	for i, t := range values.Textures {
		if t.Texture.IsZero() {
			continue
		}
		unit := uint32(program.Info.Textures[i].Slot)
		gl.ActiveTexture(gl.TEXTURE0 + unit)
		gl.BindTexture(textureTarget(t.Texture.Info.Kind), t.Texture.Name)
		gl.BindSampler(unit, t.Sampler.Name)
	}
}

// Unbind clears the texture units and sampler bindings a program uses.
func Unbind(program device.ProgramHandle) {
	if program.Info == nil {
		return
	}
	for _, s := range program.Info.Textures {
		unit := uint32(s.Slot)
		gl.ActiveTexture(gl.TEXTURE0 + unit)
		gl.BindTexture(textureTarget(s.Type.Kind), 0)
		gl.BindSampler(unit, 0)
	}
	gl.ActiveTexture(gl.TEXTURE0)
}

// uploadUniform picks the GL call from the declared shape, so a vec4 value
// can feed a vec2/vec3 uniform and a 4x4 matrix a mat2/mat3 uniform.
func uploadUniform(u device.UniformVar, v device.UniformValue) {
	loc := u.Location
	if loc < 0 {
		return
	}
	switch x := v.(type) {
	case device.ValueI32:
		gl.Uniform1i(loc, int32(x))
	case device.ValueF32:
		gl.Uniform1f(loc, float32(x))
	case device.ValueI32Vec:
		switch u.Container.Rows {
		case 2:
			gl.Uniform2iv(loc, 1, &x[0])
		case 3:
			gl.Uniform3iv(loc, 1, &x[0])
		default:
			gl.Uniform4iv(loc, 1, &x[0])
		}
	case device.ValueF32Vec:
		switch u.Container.Rows {
		case 2:
			gl.Uniform2fv(loc, 1, &x[0])
		case 3:
			gl.Uniform3fv(loc, 1, &x[0])
		default:
			gl.Uniform4fv(loc, 1, &x[0])
		}
	case device.ValueF32Matrix:
		// Rows are contiguous, so GL transposes on upload.
		switch u.Container.Cols {
		case 2:
			m := [4]float32{x[0][0], x[0][1], x[1][0], x[1][1]}
			gl.UniformMatrix2fv(loc, 1, true, &m[0])
		case 3:
			m := [9]float32{
				x[0][0], x[0][1], x[0][2],
				x[1][0], x[1][1], x[1][2],
				x[2][0], x[2][1], x[2][2],
			}
			gl.UniformMatrix3fv(loc, 1, true, &m[0])
		default:
			gl.UniformMatrix4fv(loc, 1, true, &x[0][0])
		}
	}
}
