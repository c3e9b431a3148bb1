package device

import "fmt"

// UniformValue is a value that can be uploaded to a single uniform variable.
// The variants are ValueI32, ValueF32, ValueI32Vec, ValueF32Vec and
// ValueF32Matrix. A nil UniformValue stands for an unset slot.
type UniformValue interface {
	uniformValue()
	fmt.Stringer
}

// ValueI32 is a signed 32-bit integer uniform.
type ValueI32 int32

// ValueF32 is a 32-bit float uniform.
type ValueF32 float32

// ValueI32Vec is a 4-component integer vector uniform.
type ValueI32Vec [4]int32

// ValueF32Vec is a 4-component float vector uniform.
type ValueF32Vec [4]float32

// ValueF32Matrix is a 4x4 float matrix uniform, stored row-major:
// m[row][column].
type ValueF32Matrix [4][4]float32

func (ValueI32) uniformValue()       {}
func (ValueF32) uniformValue()       {}
func (ValueI32Vec) uniformValue()    {}
func (ValueF32Vec) uniformValue()    {}
func (ValueF32Matrix) uniformValue() {}

func (v ValueI32) String() string       { return fmt.Sprintf("i32(%d)", int32(v)) }
func (v ValueF32) String() string       { return fmt.Sprintf("f32(%g)", float32(v)) }
func (v ValueI32Vec) String() string    { return fmt.Sprintf("ivec4%v", [4]int32(v)) }
func (v ValueF32Vec) String() string    { return fmt.Sprintf("vec4%v", [4]float32(v)) }
func (v ValueF32Matrix) String() string { return fmt.Sprintf("mat4%v", [4][4]float32(v)) }

// Transposed returns the matrix with rows and columns swapped, which is the
// column-major layout GL expects when transpose is false.
func (v ValueF32Matrix) Transposed() ValueF32Matrix {
	var t ValueF32Matrix
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			t[c][r] = v[r][c]
		}
	}
	return t
}
