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

package shaders_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/makeref/gui/sdlimgui/shaders"
	"github.com/jetsetilly/makeref/test"
)

func TestLookup(t *testing.T) {
	for _, name := range []string{"vs_cubes", "fs_cubes", "vs_imgui", "fs_imgui"} {
		src, ok := shaders.Lookup(name)
		test.DemandSuccess(t, ok)
		test.ExpectSuccess(t, strings.HasPrefix(src, "#version 150"))
	}

	_, ok := shaders.Lookup("vs_unknown")
	test.ExpectFailure(t, ok)
}

func TestAttributeNames(t *testing.T) {
	// attribute names must match the names bound by the GL backend
	src, _ := shaders.Lookup("vs_cubes")
	test.ExpectSuccess(t, strings.Contains(src, "in vec3 a_position;"))
	test.ExpectSuccess(t, strings.Contains(src, "in vec4 a_color0;"))
	test.ExpectSuccess(t, strings.Contains(src, "uniform mat4 u_modelViewProj;"))

	src, _ = shaders.Lookup("vs_imgui")
	test.ExpectSuccess(t, strings.Contains(src, "in vec2 a_texcoord0;"))

	src, _ = shaders.Lookup("fs_imgui")
	test.ExpectSuccess(t, strings.Contains(src, "uniform sampler2D s_texColor;"))
}
