// Package glbackend turns GLSL sources into device.ProgramHandles and
// translates filled device.ParamValues into OpenGL binding calls.
//
// Every function must be called on the thread that owns the current GL
// context.
package glbackend

import (
	"fmt"
	"log"
	"strings"
	"sync"

	gl "github.com/go-gl/gl/v4.1-core/gl"

	"github.com/richinsley/goshaderparams/device"
)

var glInitOnce sync.Once

// Init loads the GL function pointers for the current context. It is safe to
// call more than once.
func Init() error {
	var initErr error
	glInitOnce.Do(func() {
		initErr = gl.Init()
		if initErr == nil {
			log.Printf("OpenGL version %s", gl.GoStr(gl.GetString(gl.VERSION)))
		}
	})
	if initErr != nil {
		return fmt.Errorf("failed to initialize OpenGL: %w", initErr)
	}
	return nil
}

// NewProgram compiles and links a program and introspects its inputs.
func NewProgram(vertexShaderSource, fragmentShaderSource string) (device.ProgramHandle, error) {
	name, err := linkProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return device.ProgramHandle{}, err
	}
	info, err := Introspect(name)
	if err != nil {
		gl.DeleteProgram(name)
		return device.ProgramHandle{}, err
	}
	return device.ProgramHandle{Name: name, Info: info}, nil
}

// DeleteProgram releases a program.
func DeleteProgram(p device.ProgramHandle) {
	gl.DeleteProgram(p.Name)
}

func linkProgram(vertexShaderSource, fragmentShaderSource string) (uint32, error) {
	vertexShader, err := compileShader(vertexShaderSource, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fragmentShader, err := compileShader(fragmentShaderSource, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vertexShader)
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)
	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		infoLog := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(infoLog))
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("failed to link program: %v", infoLog)
	}
	return program, nil
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		logText := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(logText))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("failed to compile shader: %v", logText)
	}
	return shader, nil
}

// Introspect reads the declared inputs of a linked program. Uniform blocks
// are bound to binding point = slot and samplers to texture unit = slot, so
// Bind only needs the slot numbers.
func Introspect(program uint32) (*device.ProgramInfo, error) {
	info := &device.ProgramInfo{}

	var count, maxLen int32
	gl.GetProgramiv(program, gl.ACTIVE_UNIFORMS, &count)
	gl.GetProgramiv(program, gl.ACTIVE_UNIFORM_MAX_LENGTH, &maxLen)
	nameBuf := make([]uint8, maxLen+1)
	for i := uint32(0); i < uint32(count); i++ {
		var blockIndex int32
		gl.GetActiveUniformsiv(program, 1, &i, gl.UNIFORM_BLOCK_INDEX, &blockIndex)
		if blockIndex != -1 {
			continue // block member, bound through its buffer
		}
		var length, size int32
		var xtype uint32
		gl.GetActiveUniform(program, i, int32(len(nameBuf)), &length, &size, &xtype, &nameBuf[0])
		name := string(nameBuf[:length])
		location := gl.GetUniformLocation(program, gl.Str(name+"\x00"))
		name = strings.TrimSuffix(name, "[0]")

		if base, st, ok := samplerType(xtype); ok {
			slot := len(info.Textures)
			if slot > 255 {
				return nil, fmt.Errorf("program %d: too many samplers", program)
			}
			gl.ProgramUniform1i(program, location, int32(slot))
			info.Textures = append(info.Textures, device.SamplerVar{
				Name:     name,
				Location: location,
				Base:     base,
				Type:     st,
				Slot:     uint8(slot),
			})
			continue
		}
		base, container, ok := uniformType(xtype)
		if !ok {
			return nil, fmt.Errorf("program %d: uniform %q has unsupported type 0x%x", program, name, xtype)
		}
		info.Uniforms = append(info.Uniforms, device.UniformVar{
			Name:      name,
			Location:  location,
			Count:     int(size),
			Base:      base,
			Container: container,
		})
	}

	var blocks int32
	gl.GetProgramiv(program, gl.ACTIVE_UNIFORM_BLOCKS, &blocks)
	gl.GetProgramiv(program, gl.ACTIVE_UNIFORM_BLOCK_MAX_NAME_LENGTH, &maxLen)
	nameBuf = make([]uint8, maxLen+1)
	for i := uint32(0); i < uint32(blocks); i++ {
		if i > 255 {
			return nil, fmt.Errorf("program %d: too many uniform blocks", program)
		}
		var length, size, vs, fs int32
		gl.GetActiveUniformBlockName(program, i, int32(len(nameBuf)), &length, &nameBuf[0])
		gl.GetActiveUniformBlockiv(program, i, gl.UNIFORM_BLOCK_DATA_SIZE, &size)
		gl.GetActiveUniformBlockiv(program, i, gl.UNIFORM_BLOCK_REFERENCED_BY_VERTEX_SHADER, &vs)
		gl.GetActiveUniformBlockiv(program, i, gl.UNIFORM_BLOCK_REFERENCED_BY_FRAGMENT_SHADER, &fs)
		var usage device.StageMask
		if vs != 0 {
			usage |= device.StageVertex
		}
		if fs != 0 {
			usage |= device.StageFragment
		}
		gl.UniformBlockBinding(program, i, i)
		info.Blocks = append(info.Blocks, device.BlockVar{
			Name:  string(nameBuf[:length]),
			Size:  int(size),
			Usage: usage,
			Slot:  uint8(i),
		})
	}

	log.Printf("Program %d: %d uniforms, %d blocks, %d textures", program, len(info.Uniforms), len(info.Blocks), len(info.Textures))
	return info, nil
}
