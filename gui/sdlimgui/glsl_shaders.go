// This file is part of Chippy8.
//
// Chippy8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Chippy8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Chippy8.  If not, see <https://www.gnu.org/licenses/>.

package sdlimgui

import (
	"strings"

	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/inkyblackness/imgui-go/v4"
	"github.com/julienr/chippy8/gui/sdlimgui/shaders"
)

// shaderEnvironment is how a shader program learns about the current draw
// command.
type shaderEnvironment struct {
	// the function to call to trigger the shader
	draw func()

	// vertex projection
	presentationProj [4][4]float32

	// the texture the shader will work with
	srcTextureID uint32
}

// shaderProgram is the interface for the shaders used by the glsl renderer.
type shaderProgram interface {
	destroy()
	setAttributes(shaderEnvironment)
}

// shader implements the common parts of a shaderProgram. it will be embedded
// by the real shader types.
type shader struct {
	handle uint32

	// vertex
	projMtx  int32
	position int32
	uv       int32
	color    int32

	// fragment
	texture int32
}

func (sh *shader) destroy() {
	if sh.handle != 0 {
		gl.DeleteProgram(sh.handle)
		sh.handle = 0
	}
}

func (sh *shader) setAttributes(env shaderEnvironment) {
	gl.UseProgram(sh.handle)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, env.srcTextureID)

	gl.Uniform1i(sh.texture, 0)
	gl.UniformMatrix4fv(sh.projMtx, 1, false, &env.presentationProj[0][0])

	// rely on combined texture/sampler state
	gl.BindSampler(0, 0)

	vertexSize, vertexOffsetPos, vertexOffsetUv, vertexOffsetCol := imgui.VertexBufferLayout()
	gl.EnableVertexAttribArray(uint32(sh.position))
	gl.VertexAttribPointerWithOffset(uint32(sh.position), 2, gl.FLOAT, false,
		int32(vertexSize), uintptr(vertexOffsetPos))
	gl.EnableVertexAttribArray(uint32(sh.uv))
	gl.VertexAttribPointerWithOffset(uint32(sh.uv), 2, gl.FLOAT, false,
		int32(vertexSize), uintptr(vertexOffsetUv))
	gl.EnableVertexAttribArray(uint32(sh.color))
	gl.VertexAttribPointerWithOffset(uint32(sh.color), 4, gl.UNSIGNED_BYTE, true,
		int32(vertexSize), uintptr(vertexOffsetCol))
}

// createProgram compiles and links the shader program from the supplied
// sources. any compilation error will result in a panic, there is no
// recovering from a bad shader.
func (sh *shader) createProgram(vertProgram string, fragProgram ...string) {
	sh.destroy()

	sh.handle = gl.CreateProgram()

	vertHandle := gl.CreateShader(gl.VERTEX_SHADER)
	fragHandle := gl.CreateShader(gl.FRAGMENT_SHADER)

	glShaderSource := func(handle uint32, source string) {
		csource, free := gl.Strs(source + "\x00")
		defer free()

		gl.ShaderSource(handle, 1, csource, nil)
	}

	glShaderSource(vertHandle, vertProgram)
	glShaderSource(fragHandle, strings.Join(fragProgram, "\n"))

	gl.CompileShader(vertHandle)
	if log := sh.getShaderCompileError(vertHandle); log != "" {
		panic(log)
	}

	gl.CompileShader(fragHandle)
	if log := sh.getShaderCompileError(fragHandle); log != "" {
		panic(log)
	}

	gl.AttachShader(sh.handle, vertHandle)
	gl.AttachShader(sh.handle, fragHandle)
	gl.LinkProgram(sh.handle)

	// the individual shaders are no longer needed once the program has linked
	gl.DeleteShader(fragHandle)
	gl.DeleteShader(vertHandle)

	// get references to shader attributes and uniform variables
	sh.projMtx = gl.GetUniformLocation(sh.handle, gl.Str("ProjMtx"+"\x00"))
	sh.position = gl.GetAttribLocation(sh.handle, gl.Str("Position"+"\x00"))
	sh.uv = gl.GetAttribLocation(sh.handle, gl.Str("UV"+"\x00"))
	sh.color = gl.GetAttribLocation(sh.handle, gl.Str("Color"+"\x00"))
	sh.texture = gl.GetUniformLocation(sh.handle, gl.Str("Texture"+"\x00"))
}

// getShaderCompileError returns the most recent error generated by the shader
// compiler.
func (sh *shader) getShaderCompileError(shader uint32) string {
	var isCompiled int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &isCompiled)
	if isCompiled == 0 {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		if logLength > 0 {
			// enough space for message and null terminator
			log := strings.Repeat("\x00", int(logLength+1))
			gl.GetShaderInfoLog(shader, logLength, &logLength, gl.Str(log))
			return log
		}
	}
	return ""
}

// guiShader is the default shader for imgui elements. the colour of a
// fragment comes from the vertex colour; the font atlas supplies the alpha.
type guiShader struct {
	shader
}

func newGUIShader() shaderProgram {
	sh := &guiShader{}
	sh.createProgram(string(shaders.StraightVertexShader), string(shaders.GUIShader))
	return sh
}

// screenShader is used for the machine's display texture. unlike the gui
// shader the texture is a full RGBA image.
type screenShader struct {
	shader
}

func newScreenShader() shaderProgram {
	sh := &screenShader{}
	sh.createProgram(string(shaders.StraightVertexShader), string(shaders.ScreenShader))
	return sh
}
