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

package shaders

import _ "embed"

//go:embed "vs_cubes.vert"
var CubesVertexShader []byte

//go:embed "fs_cubes.frag"
var CubesFragmentShader []byte

//go:embed "vs_imgui.vert"
var ImguiVertexShader []byte

//go:embed "fs_imgui.frag"
var ImguiFragmentShader []byte

var byName = map[string][]byte{
	"vs_cubes": CubesVertexShader,
	"fs_cubes": CubesFragmentShader,
	"vs_imgui": ImguiVertexShader,
	"fs_imgui": ImguiFragmentShader,
}

// Lookup returns the GLSL source of the named shader. The second return
// value is false if the name is not recognised.
func Lookup(name string) (string, bool) {
	src, ok := byName[name]
	if !ok {
		return "", false
	}
	return string(src), true
}
