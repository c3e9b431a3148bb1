package glbackend

import (
	"fmt"
	"unsafe"

	gl "github.com/go-gl/gl/v4.1-core/gl"

	"github.com/richinsley/goshaderparams/device"
)

// NewUniformBuffer allocates a uniform buffer of size bytes.
func NewUniformBuffer(size int) device.BufferHandle {
	var id uint32
	gl.GenBuffers(1, &id)
	gl.BindBuffer(gl.UNIFORM_BUFFER, id)
	gl.BufferData(gl.UNIFORM_BUFFER, size, nil, gl.DYNAMIC_DRAW)
	gl.BindBuffer(gl.UNIFORM_BUFFER, 0)
	return device.BufferHandle{Name: id, Info: device.BufferInfo{Size: size}}
}

// UpdateUniformBuffer overwrites the start of b with data, which must be a
// slice of fixed-size values (e.g. []float32).
func UpdateUniformBuffer[T any](b device.BufferHandle, data []T) error {
	if len(data) == 0 {
		return nil
	}
	var zero T
	size := len(data) * int(unsafe.Sizeof(zero))
	if size > b.Info.Size {
		return fmt.Errorf("buffer %d holds %d bytes, got %d", b.Name, b.Info.Size, size)
	}
	gl.BindBuffer(gl.UNIFORM_BUFFER, b.Name)
	gl.BufferSubData(gl.UNIFORM_BUFFER, 0, size, gl.Ptr(data))
	gl.BindBuffer(gl.UNIFORM_BUFFER, 0)
	return nil
}

// DeleteBuffer releases a buffer.
func DeleteBuffer(b device.BufferHandle) {
	gl.DeleteBuffers(1, &b.Name)
}
