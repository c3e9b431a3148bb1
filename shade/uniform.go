// Package shade binds program inputs to parameter values.
//
// A parameter source (NoParams, ParamDictionary, StructParams or any type
// implementing ShaderParam) resolves a program's declared inputs once, into a
// link. The link is then replayed every draw to fill a ParamValues buffer by
// position, without looking at names again.
package shade

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/richinsley/goshaderparams/device"
)

// Uniform is the set of Go types that convert to a device.UniformValue.
type Uniform interface {
	int32 | float32 | [4]int32 | [4]float32 | [4][4]float32 | mgl32.Vec4 | mgl32.Mat4
}

// ToUniform converts v to its uniform representation.
func ToUniform[T Uniform](v T) device.UniformValue {
	switch x := any(v).(type) {
	case int32:
		return device.ValueI32(x)
	case float32:
		return device.ValueF32(x)
	case [4]int32:
		return device.ValueI32Vec(x)
	case [4]float32:
		return device.ValueF32Vec(x)
	case [4][4]float32:
		return device.ValueF32Matrix(x)
	case mgl32.Vec4:
		return device.ValueF32Vec(x)
	case mgl32.Mat4:
		return matrixFromMat4(x)
	}
	panic("unreachable")
}

// mgl32 matrices are column-major; ValueF32Matrix is row-major.
func matrixFromMat4(m mgl32.Mat4) device.ValueF32Matrix {
	var out device.ValueF32Matrix
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out[r][c] = m.At(r, c)
		}
	}
	return out
}
