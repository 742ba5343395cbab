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
	"testing"

	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/jetsetilly/makeref/demo"
	"github.com/jetsetilly/makeref/engine"
	"github.com/jetsetilly/makeref/test"
)

func TestGridState(t *testing.T) {
	st := newGLState(demo.GridState)
	test.ExpectEquality(t, st.colorMask, [4]bool{true, true, true, true})
	test.ExpectSuccess(t, st.depthMask)
	test.ExpectSuccess(t, st.depthTest)
	test.ExpectSuccess(t, st.cull)
	test.ExpectEquality(t, st.frontFace, uint32(gl.CCW))
	test.ExpectFailure(t, st.blend)
	test.ExpectSuccess(t, st.msaa)
	test.ExpectEquality(t, st.primitive, uint32(gl.TRIANGLES))
}

func TestOverlayState(t *testing.T) {
	st := newGLState(engine.StateWriteRGB | engine.StateWriteA | engine.StateBlendAlpha)
	test.ExpectFailure(t, st.depthMask)
	test.ExpectFailure(t, st.depthTest)
	test.ExpectFailure(t, st.cull)
	test.ExpectSuccess(t, st.blend)

	st = newGLState(engine.StateWriteR | engine.StateCullCCW | engine.StatePtLines)
	test.ExpectEquality(t, st.colorMask, [4]bool{true, false, false, false})
	test.ExpectEquality(t, st.frontFace, uint32(gl.CW))
	test.ExpectEquality(t, st.primitive, uint32(gl.LINES))
}

func TestRGBA(t *testing.T) {
	r, g, b, a := rgba(demo.ClearColour)
	test.ExpectApproximate(t, r, 0x30/255.0, 0.0001)
	test.ExpectApproximate(t, g, 0x30/255.0, 0.0001)
	test.ExpectApproximate(t, b, 0x30/255.0, 0.0001)
	test.ExpectEquality(t, a, 1.0)
}

func TestGLRect(t *testing.T) {
	// same size window and framebuffer
	x, y, w, h := glRect(engine.Rect{X: 10, Y: 20, Width: 100, Height: 50}, 640, 480, 640, 480)
	test.ExpectEquality(t, x, 10)
	test.ExpectEquality(t, y, 480-20-50)
	test.ExpectEquality(t, w, 100)
	test.ExpectEquality(t, h, 50)

	// high DPI framebuffer
	x, y, w, h = glRect(engine.Rect{X: 10, Y: 20, Width: 100, Height: 50}, 640, 480, 1280, 960)
	test.ExpectEquality(t, x, 20)
	test.ExpectEquality(t, y, 960-40-100)
	test.ExpectEquality(t, w, 200)
	test.ExpectEquality(t, h, 100)

	// minimised window
	_, _, w, h = glRect(engine.Rect{Width: 100, Height: 50}, 0, 0, 0, 0)
	test.ExpectEquality(t, w, 0)
	test.ExpectEquality(t, h, 0)
}
