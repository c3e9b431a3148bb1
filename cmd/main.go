package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"log"
	"math"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	gst "github.com/richinsley/goshadertranslator"

	"github.com/richinsley/goshaderparams/device"
	"github.com/richinsley/goshaderparams/glbackend"
	"github.com/richinsley/goshaderparams/glfwcontext"
	"github.com/richinsley/goshaderparams/introspect"
	"github.com/richinsley/goshaderparams/options"
	"github.com/richinsley/goshaderparams/preset"
	"github.com/richinsley/goshaderparams/renderer"
	"github.com/richinsley/goshaderparams/shade"
	"github.com/richinsley/goshaderparams/shader"
	"github.com/richinsley/goshaderparams/translator"
)

// background feeds the background program from plain struct fields.
type background struct {
	Time       float32             `shader:"time"`
	Mouse      mgl32.Vec4          `shader:"mouse"`
	Resolution [4]float32          `shader:"resolution"`
	Sky        device.TextureParam `shader:"sky"`
}

func init() {
	runtime.LockOSThread()
}

func loadDictionary(path string) (*shade.ParamDictionary, error) {
	if path == "" {
		return preset.Decode(shader.DefaultPreset)
	}
	return preset.LoadFile(path)
}

// signature reads the declared inputs of a shader file without a GPU. WGSL
// goes through naga; anything else is treated as a WebGL2 fragment shader
// and goes through the ANGLE translator.
func signature(path string) (*device.ProgramInfo, error) {
	if path == "" {
		return introspect.FromWGSL(shader.DemoWGSL)
	}
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if filepath.Ext(path) == ".wgsl" {
		return introspect.FromWGSL(string(src))
	}
	xlate, err := translator.Get()
	if err != nil {
		return nil, err
	}
	fsShader, err := xlate.TranslateShader(string(src), "fragment", gst.ShaderSpecWebGL2, gst.OutputFormatGLSL410)
	if err != nil {
		return nil, fmt.Errorf("fragment shader translation failed: %w", err)
	}
	return glbackend.Signature(fsShader), nil
}

func runCheck(opts *options.Options) error {
	d, err := loadDictionary(*opts.Preset)
	if err != nil {
		return err
	}
	info, err := signature(*opts.Shader)
	if err != nil {
		return err
	}

	report := preset.Check(info, d)
	for _, u := range report.Unused {
		log.Printf("Warning: %v", u)
	}
	if report.Missing != nil {
		log.Printf("Error: %v", report.Missing)
	}
	if !report.OK(*opts.Strict) {
		return fmt.Errorf("preset does not match the shader")
	}
	log.Printf("Preset links: %d uniforms, %d blocks, %d textures", len(info.Uniforms), len(info.Blocks), len(info.Textures))
	return nil
}

func checkerboard(size, cell int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	light := color.RGBA{R: 230, G: 230, B: 230, A: 255}
	dark := color.RGBA{R: 40, G: 40, B: 60, A: 255}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if (x/cell+y/cell)%2 == 0 {
				img.SetRGBA(x, y, light)
			} else {
				img.SetRGBA(x, y, dark)
			}
		}
	}
	return img
}

func skyFaces(size int) [6]image.Image {
	colors := [6]color.RGBA{
		{R: 200, G: 80, B: 80, A: 255},
		{R: 120, G: 40, B: 40, A: 255},
		{R: 140, G: 180, B: 240, A: 255},
		{R: 40, G: 50, B: 70, A: 255},
		{R: 80, G: 200, B: 120, A: 255},
		{R: 30, G: 90, B: 60, A: 255},
	}
	var faces [6]image.Image
	for i, c := range colors {
		img := image.NewRGBA(image.Rect(0, 0, size, size))
		draw.Draw(img, img.Bounds(), &image.Uniform{C: c}, image.Point{}, draw.Src)
		faces[i] = img
	}
	return faces
}

func runView(opts *options.Options) error {
	if err := glfwcontext.Init(); err != nil {
		return fmt.Errorf("failed to initialize graphics: %w", err)
	}
	defer glfwcontext.Terminate()

	ctx, err := glfwcontext.New(opts, "goshaderparams")
	if err != nil {
		return fmt.Errorf("failed to create window: %w", err)
	}
	defer ctx.Close()

	r, err := renderer.NewRenderer(ctx)
	if err != nil {
		return err
	}
	defer r.Shutdown()

	var textured device.ProgramHandle
	if *opts.Translate {
		// The window is always a desktop core context, so ANGLE emits GLSL 410.
		textured, err = glbackend.NewTranslatedProgram(shader.TransformVertexShader(), shader.TexturedFragmentShader(true), false)
	} else {
		textured, err = glbackend.NewProgram(shader.TransformVertexShader(), shader.TexturedFragmentShader(false))
	}
	if err != nil {
		return fmt.Errorf("failed to create textured program: %w", err)
	}
	defer glbackend.DeleteProgram(textured)

	grayscale, err := glbackend.NewProgram(shader.TransformVertexShader(), shader.GrayscaleFragmentShader())
	if err != nil {
		return fmt.Errorf("failed to create grayscale program: %w", err)
	}
	defer glbackend.DeleteProgram(grayscale)

	bg, err := glbackend.NewProgram(shader.VertexShader(), shader.BackgroundFragmentShader())
	if err != nil {
		return fmt.Errorf("failed to create background program: %w", err)
	}
	defer glbackend.DeleteProgram(bg)

	vignette, err := glbackend.NewProgram(shader.VertexShader(), shader.VignetteFragmentShader())
	if err != nil {
		return fmt.Errorf("failed to create vignette program: %w", err)
	}
	defer glbackend.DeleteProgram(vignette)

	tex, err := glbackend.NewTexture(checkerboard(256, 32), glbackend.TextureOptions{SRGB: true, Mipmap: true})
	if err != nil {
		return err
	}
	defer glbackend.DeleteTexture(tex)
	sampler := glbackend.NewSampler("mipmap", "repeat")
	defer glbackend.DeleteSampler(sampler)
	sky, err := glbackend.NewCubeTexture(skyFaces(16), glbackend.TextureOptions{})
	if err != nil {
		return err
	}
	defer glbackend.DeleteTexture(sky)
	skySampler := glbackend.NewSampler("linear", "clamp")
	defer glbackend.DeleteSampler(skySampler)
	ubo := glbackend.NewUniformBuffer(16)
	defer glbackend.DeleteBuffer(ubo)

	dict, err := loadDictionary(*opts.Preset)
	if err != nil {
		return err
	}
	if c := dict.Texture("albedo"); c != nil {
		c.Set(device.TextureParam{Texture: tex, Sampler: sampler})
	} else {
		dict.AddTexture("albedo", device.TextureParam{Texture: tex, Sampler: sampler})
	}
	if c := dict.Block("globals"); c != nil {
		c.Set(ubo)
	} else {
		dict.AddBlock("globals", ubo)
	}
	mvp := dict.Uniform("mvp")
	if mvp == nil {
		mvp = dict.AddUniform("mvp", shade.ToUniform(mgl32.Ident4()))
	}
	for _, u := range dict.Unused(shade.LinkInput(textured.Info)) {
		log.Printf("Warning: %v", u)
	}

	shared := shade.Share(dict)
	defer shared.Release()
	view := shared.Clone()
	defer view.Release()

	mainShell, err := shade.Connect[*shade.ParamDictionaryLink](textured, view)
	if err != nil {
		return err
	}

	bgParams, err := shade.NewStructParams(&background{
		Sky: device.TextureParam{Texture: sky, Sampler: skySampler},
	})
	if err != nil {
		return err
	}
	bgParams.Strict = *opts.Strict
	bgShell, err := shade.Connect[*shade.StructLink](bg, bgParams)
	if err != nil {
		return err
	}

	vignetteShell, err := shade.Connect[shade.NoLink](vignette, shade.NoParams{})
	if err != nil {
		return err
	}

	programs := []device.ProgramHandle{textured, grayscale}
	current := 0
	ctx.Bind(glfw.KeyG, func() {
		next := (current + 1) % len(programs)
		if err := mainShell.Relink(programs[next]); err != nil {
			log.Printf("Error: %v", err)
			return
		}
		current = next
	})

	log.Println("Starting render loop, press G to swap programs...")
	r.Run(func(f renderer.Frame) {
		bgParams.Value.Time = float32(f.Time)
		bgParams.Value.Mouse = mgl32.Vec4{f.Cursor[0], f.Cursor[1]}
		bgParams.Value.Resolution = [4]float32{float32(f.Width), float32(f.Height)}

		aspect := float32(f.Height) / float32(max(f.Width, 1))
		rotation := mgl32.Scale3D(aspect, 1, 1).Mul4(mgl32.HomogRotate3DZ(float32(f.Time) * 0.5))
		mvp.Set(shade.ToUniform(rotation))

		pulse := float32(math.Sin(f.Time * 2))
		if err := glbackend.UpdateUniformBuffer(ubo, []float32{pulse, 0, 0, 0}); err != nil {
			log.Printf("Error: %v", err)
		}

		r.Draw(bgShell)
		r.Draw(mainShell)
		r.Draw(vignetteShell)
	})
	return nil
}

func main() {
	opts := &options.Options{
		Help:      flag.Bool("help", false, "Show help message"),
		Mode:      flag.String("mode", "view", "Mode: 'view' draws the demo, 'check' validates a preset against a shader"),
		Width:     flag.Int("width", 1280, "Width of the window"),
		Height:    flag.Int("height", 720, "Height of the window"),
		BitDepth:  flag.Int("bitdepth", 8, "Color bit depth of the window (8, 10 or 16)"),
		Preset:    flag.String("preset", "", "TOML parameter preset (built-in demo preset if empty)"),
		Shader:    flag.String("shader", "", "Shader to check the preset against: .wgsl, or a WebGL2 fragment shader (built-in WGSL if empty)"),
		Translate: flag.Bool("translate", false, "Run the demo fragment shader through the ANGLE translator"),
		Strict:    flag.Bool("strict", false, "Treat unused parameters as errors"),
	}
	flag.Parse()

	if *opts.Help {
		fmt.Println("Shader parameter binding demo")
		flag.PrintDefaults()
		return
	}

	var err error
	switch *opts.Mode {
	case "view":
		err = runView(opts)
	case "check":
		err = runCheck(opts)
	default:
		log.Fatalf("Unknown mode: %s", *opts.Mode)
	}
	if err != nil {
		log.Fatalf("%v", err)
	}
}
