package options

type Options struct {
	Help      *bool
	Mode      *string // "view" draws the demo, "check" validates a preset against a shader
	Width     *int
	Height    *int
	BitDepth  *int
	Preset    *string // TOML dictionary preset
	Shader    *string // WGSL source for check mode
	Translate *bool   // run the fragment shader through the ANGLE translator
	Strict    *bool   // treat unused parameters as errors
}
