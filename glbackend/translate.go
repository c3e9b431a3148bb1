package glbackend

import (
	"fmt"
	"sort"
	"strings"

	gst "github.com/richinsley/goshadertranslator"

	"github.com/richinsley/goshaderparams/device"
	"github.com/richinsley/goshaderparams/translator"
)

// NewTranslatedProgram runs a WebGL2 fragment shader through the ANGLE
// translator before linking it, as Shadertoy-style sources need. ANGLE renames
// user variables, so the introspected descriptors are renamed back to the
// names written in the source; parameter sources keep using those.
func NewTranslatedProgram(vertexShaderSource, fragmentShaderSource string, gles bool) (device.ProgramHandle, error) {
	xlate, err := translator.Get()
	if err != nil {
		return device.ProgramHandle{}, err
	}
	outputFormat := gst.OutputFormatGLSL410
	if gles {
		outputFormat = gst.OutputFormatESSL
	}
	fsShader, err := xlate.TranslateShader(fragmentShaderSource, "fragment", gst.ShaderSpecWebGL2, outputFormat)
	if err != nil {
		return device.ProgramHandle{}, fmt.Errorf("fragment shader translation failed: %w", err)
	}

	program, err := NewProgram(vertexShaderSource, fsShader.Code)
	if err != nil {
		return device.ProgramHandle{}, err
	}
	renameMapped(program.Info, fsShader.Variables)
	return program, nil
}

func renameMapped(info *device.ProgramInfo, vars map[string]gst.ShaderVariable) {
	original := make(map[string]string, len(vars))
	for _, v := range vars {
		if v.MappedName != "" {
			original[v.MappedName] = v.Name
		}
	}
	rename := func(name string) string {
		if n, ok := original[name]; ok {
			return n
		}
		return name
	}
	for i := range info.Uniforms {
		info.Uniforms[i].Name = rename(info.Uniforms[i].Name)
	}
	for i := range info.Blocks {
		info.Blocks[i].Name = rename(info.Blocks[i].Name)
	}
	for i := range info.Textures {
		info.Textures[i].Name = rename(info.Textures[i].Name)
	}
}

// Signature builds the declared inputs of a translated shader from the
// translator's variable report, without linking anything. Locations are
// unknown (-1) and slots follow name order.
func Signature(shader *gst.Shader) *device.ProgramInfo {
	names := make([]string, 0, len(shader.Variables))
	for name, v := range shader.Variables {
		if v.Active || v.StaticUse {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	info := &device.ProgramInfo{}
	for _, name := range names {
		v := shader.Variables[name]
		cat := strings.ToLower(v.Category)
		switch {
		case strings.Contains(cat, "block"):
			info.Blocks = append(info.Blocks, device.BlockVar{
				Name:  v.Name,
				Usage: device.StageFragment,
				Slot:  uint8(len(info.Blocks)),
			})
		case strings.Contains(cat, "uniform"):
			if base, st, ok := samplerType(uint32(v.Type)); ok {
				info.Textures = append(info.Textures, device.SamplerVar{
					Name:     v.Name,
					Location: -1,
					Base:     base,
					Type:     st,
					Slot:     uint8(len(info.Textures)),
				})
				continue
			}
			if base, c, ok := uniformType(uint32(v.Type)); ok {
				info.Uniforms = append(info.Uniforms, device.UniformVar{
					Name:      v.Name,
					Location:  -1,
					Count:     1,
					Base:      base,
					Container: c,
				})
			}
		}
	}
	return info
}
