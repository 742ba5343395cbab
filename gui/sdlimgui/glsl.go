// This file is part of makeref.
//
// makeref is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// makeref is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with makeref.  If not, see <https://www.gnu.org/licenses/>.

package sdlimgui

import (
	"strings"

	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/jetsetilly/makeref/curated"
	"github.com/jetsetilly/makeref/engine"
	"github.com/jetsetilly/makeref/gui/sdlimgui/shaders"
)

// Sentinal error patterns.
const (
	UnknownShader = "glsl: unknown shader (%s)"
	ShaderCompile = "glsl: compile %s: %s"
	ShaderLink    = "glsl: link: %s"
)

// attribs are bound to fixed locations before linking so that the vertex
// layout can be applied without querying the program
var attribs = []engine.Attrib{
	engine.AttribPosition,
	engine.AttribColor0,
	engine.AttribTexCoord0,
}

type shaderProgram struct {
	handle uint32

	// uniforms
	modelViewProj int32
	texColor      int32
}

// compile and link shader programs. the vertex and fragment shaders are
// identified by name.
func newShaderProgram(vs string, fs string) (*shaderProgram, error) {
	vertSource, ok := shaders.Lookup(vs)
	if !ok {
		return nil, curated.Errorf(UnknownShader, vs)
	}
	fragSource, ok := shaders.Lookup(fs)
	if !ok {
		return nil, curated.Errorf(UnknownShader, fs)
	}

	vertHandle, err := compileShader(gl.VERTEX_SHADER, vs, vertSource)
	if err != nil {
		return nil, err
	}
	defer gl.DeleteShader(vertHandle)

	fragHandle, err := compileShader(gl.FRAGMENT_SHADER, fs, fragSource)
	if err != nil {
		return nil, err
	}
	defer gl.DeleteShader(fragHandle)

	sh := &shaderProgram{
		handle: gl.CreateProgram(),
	}

	gl.AttachShader(sh.handle, vertHandle)
	gl.AttachShader(sh.handle, fragHandle)

	for i, a := range attribs {
		gl.BindAttribLocation(sh.handle, uint32(i), gl.Str(a.String()+"\x00"))
	}

	gl.LinkProgram(sh.handle)
	if log := getProgramLinkError(sh.handle); log != "" {
		sh.destroy()
		return nil, curated.Errorf(ShaderLink, log)
	}

	// get references to uniform variables. missing uniforms have a location
	// of -1, which GL quietly ignores
	sh.modelViewProj = gl.GetUniformLocation(sh.handle, gl.Str("u_modelViewProj"+"\x00"))
	sh.texColor = gl.GetUniformLocation(sh.handle, gl.Str("s_texColor"+"\x00"))

	return sh, nil
}

func (sh *shaderProgram) destroy() {
	if sh.handle != 0 {
		gl.DeleteProgram(sh.handle)
		sh.handle = 0
	}
}

func compileShader(typ uint32, name string, source string) (uint32, error) {
	handle := gl.CreateShader(typ)

	csource, free := gl.Strs(source + "\x00")
	defer free()
	gl.ShaderSource(handle, 1, csource, nil)

	gl.CompileShader(handle)
	if log := getShaderCompileError(handle); log != "" {
		gl.DeleteShader(handle)
		return 0, curated.Errorf(ShaderCompile, name, log)
	}

	return handle, nil
}

// getShaderCompileError returns the most recent error generated
// by the shader compiler.
func getShaderCompileError(shader uint32) string {
	var isCompiled int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &isCompiled)
	if isCompiled == 0 {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		if logLength > 0 {
			// the maxLength includes the NULL character
			log := strings.Repeat("\x00", int(logLength+1))
			gl.GetShaderInfoLog(shader, logLength, &logLength, gl.Str(log))
			return strings.TrimRight(log, "\x00")
		}
		return "unknown error"
	}
	return ""
}

func getProgramLinkError(program uint32) string {
	var isLinked int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &isLinked)
	if isLinked == 0 {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		if logLength > 0 {
			log := strings.Repeat("\x00", int(logLength+1))
			gl.GetProgramInfoLog(program, logLength, &logLength, gl.Str(log))
			return strings.TrimRight(log, "\x00")
		}
		return "unknown error"
	}
	return ""
}
