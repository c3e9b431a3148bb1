// Package shader holds the sources and default preset of the demo programs.
package shader

import (
	_ "embed"
)

// DefaultPreset is the dictionary the demo starts from when no preset file
// is given.
//
//go:embed demo.toml
var DefaultPreset []byte

// DemoWGSL declares the same block and texture as the GL demo program, for
// checking a preset without a GPU.
//
//go:embed demo.wgsl
var DemoWGSL string

// ────────────────────────────────── Desktop GL ──────────────────────────────────

const vertexShaderSourceGL = `#version 410 core
layout (location = 0) in vec2 in_vert;
out vec2 frag_uv;
void main() {
    frag_uv = in_vert * 0.5 + 0.5;
    gl_Position = vec4(in_vert, 0.0, 1.0);
}
`

const transformVertexShaderSourceGL = `#version 410 core
layout (location = 0) in vec2 in_vert;
uniform mat4 mvp;
out vec2 frag_uv;
void main() {
    frag_uv = in_vert * 0.5 + 0.5;
    gl_Position = mvp * vec4(in_vert * 0.6, 0.0, 1.0);
}
`

const texturedFragmentShaderSourceGL = `#version 410 core
in vec2 frag_uv;
out vec4 fragColor;
uniform vec4 tint;
uniform sampler2D albedo;
layout(std140) uniform globals {
    vec4 pulse;
};
void main() {
    vec4 texel = texture(albedo, frag_uv);
    fragColor = vec4(texel.rgb * tint.rgb * (0.75 + 0.25 * pulse.x), 1.0);
}
`

const grayscaleFragmentShaderSourceGL = `#version 410 core
in vec2 frag_uv;
out vec4 fragColor;
uniform vec4 tint;
uniform sampler2D albedo;
layout(std140) uniform globals {
    vec4 pulse;
};
void main() {
    float l = dot(texture(albedo, frag_uv).rgb, vec3(0.2126, 0.7152, 0.0722));
    fragColor = vec4(vec3(l) * tint.a * (0.75 + 0.25 * pulse.x), 1.0);
}
`

const backgroundFragmentShaderSourceGL = `#version 410 core
in vec2 frag_uv;
out vec4 fragColor;
uniform float time;
uniform vec4 mouse;
uniform vec2 resolution;
uniform samplerCube sky;
void main() {
    vec2 m = mouse.xy / max(resolution, vec2(1.0));
    float d = distance(frag_uv, m);
    vec3 col = 0.5 + 0.5 * cos(time + frag_uv.xyx + vec3(0.0, 2.0, 4.0));
    vec3 dir = normalize(vec3(frag_uv * 2.0 - 1.0, 1.0));
    col = mix(col, texture(sky, dir).rgb, 0.3);
    fragColor = vec4(col * (1.0 - 0.5 * d), 1.0);
}
`

const vignetteFragmentShaderSourceGL = `#version 410 core
in vec2 frag_uv;
out vec4 fragColor;
void main() {
    float d = distance(frag_uv, vec2(0.5));
    fragColor = vec4(0.0, 0.0, 0.0, smoothstep(0.4, 0.8, d));
}
`

// ─────────────────────────────────── WebGL2 ─────────────────────────────────────

// texturedFragmentShaderSourceWebGL is translated by ANGLE before linking.
const texturedFragmentShaderSourceWebGL = `#version 300 es
precision highp float;
precision highp int;

in vec2 frag_uv;
out vec4 fragColor;
uniform vec4 tint;
uniform sampler2D albedo;
layout(std140) uniform globals {
    vec4 pulse;
};
void main() {
    vec4 texel = texture(albedo, frag_uv);
    fragColor = vec4(texel.rgb * tint.rgb * (0.75 + 0.25 * pulse.x), 1.0);
}
`

// ────────────────────────────────── Public API ─────────────────────────────────

func VertexShader() string {
	return vertexShaderSourceGL
}

func TransformVertexShader() string {
	return transformVertexShaderSourceGL
}

// TexturedFragmentShader returns the tinted, textured fragment shader. The
// WebGL2 variant must go through the translator.
func TexturedFragmentShader(webgl bool) string {
	if webgl {
		return texturedFragmentShaderSourceWebGL
	}
	return texturedFragmentShaderSourceGL
}

// GrayscaleFragmentShader declares the same inputs as TexturedFragmentShader.
func GrayscaleFragmentShader() string {
	return grayscaleFragmentShaderSourceGL
}

func BackgroundFragmentShader() string {
	return backgroundFragmentShaderSourceGL
}

// VignetteFragmentShader declares no inputs.
func VignetteFragmentShader() string {
	return vignetteFragmentShaderSourceGL
}
