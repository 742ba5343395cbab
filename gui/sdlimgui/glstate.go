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
	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/jetsetilly/makeref/engine"
)

// glState is the GL pipeline state implied by an engine.State value.
type glState struct {
	colorMask [4]bool
	depthMask bool
	depthTest bool
	depthFunc uint32

	cull      bool
	frontFace uint32

	blend bool
	msaa  bool

	primitive uint32
}

func newGLState(s engine.State) glState {
	st := glState{
		colorMask: [4]bool{
			s&engine.StateWriteR == engine.StateWriteR,
			s&engine.StateWriteG == engine.StateWriteG,
			s&engine.StateWriteB == engine.StateWriteB,
			s&engine.StateWriteA == engine.StateWriteA,
		},
		depthMask: s&engine.StateWriteZ == engine.StateWriteZ,
		depthTest: s&engine.StateDepthTestLess == engine.StateDepthTestLess,
		depthFunc: gl.LESS,
		blend:     s&engine.StateBlendAlpha == engine.StateBlendAlpha,
		msaa:      s&engine.StateMSAA == engine.StateMSAA,
		primitive: gl.TRIANGLES,
	}

	// back faces are always the ones culled. the winding that counts as
	// front is chosen by the cull flag
	switch {
	case s&engine.StateCullCW == engine.StateCullCW:
		st.cull = true
		st.frontFace = gl.CCW
	case s&engine.StateCullCCW == engine.StateCullCCW:
		st.cull = true
		st.frontFace = gl.CW
	}

	if s&engine.StatePtLines == engine.StatePtLines {
		st.primitive = gl.LINES
	}

	return st
}

func (st glState) apply() {
	gl.ColorMask(st.colorMask[0], st.colorMask[1], st.colorMask[2], st.colorMask[3])
	gl.DepthMask(st.depthMask)

	if st.depthTest {
		gl.Enable(gl.DEPTH_TEST)
		gl.DepthFunc(st.depthFunc)
	} else {
		gl.Disable(gl.DEPTH_TEST)
	}

	if st.cull {
		gl.Enable(gl.CULL_FACE)
		gl.FrontFace(st.frontFace)
		gl.CullFace(gl.BACK)
	} else {
		gl.Disable(gl.CULL_FACE)
	}

	if st.blend {
		gl.Enable(gl.BLEND)
		gl.BlendEquation(gl.FUNC_ADD)
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	} else {
		gl.Disable(gl.BLEND)
	}

	if st.msaa {
		gl.Enable(gl.MULTISAMPLE)
	} else {
		gl.Disable(gl.MULTISAMPLE)
	}
}

// rgba splits a packed 0xRRGGBBAA colour into normalised components.
func rgba(c uint32) (float32, float32, float32, float32) {
	return float32((c>>24)&0xff) / 255.0,
		float32((c>>16)&0xff) / 255.0,
		float32((c>>8)&0xff) / 255.0,
		float32(c&0xff) / 255.0
}

// glRect converts a rectangle with a top left origin, in window coordinates,
// to a rectangle with a bottom left origin in framebuffer coordinates.
func glRect(r engine.Rect, winW, winH, fbW, fbH int) (int32, int32, int32, int32) {
	if winW <= 0 || winH <= 0 {
		return 0, 0, 0, 0
	}
	sx := float32(fbW) / float32(winW)
	sy := float32(fbH) / float32(winH)

	x := int32(float32(r.X) * sx)
	w := int32(float32(r.Width) * sx)
	h := int32(float32(r.Height) * sy)
	y := int32(fbH) - int32(float32(r.Y)*sy) - h

	return x, y, w, h
}
