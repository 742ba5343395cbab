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

package engine

// Draw is a single submitted draw call.
type Draw struct {
	View    ViewID
	Program ProgramHandle
	State   State

	// exactly one of VertexBuffer or TransientVB is set
	VertexBuffer DynamicVertexBufferHandle
	TransientVB  *TransientVertexBuffer

	// exactly one of IndexBuffer or TransientIB is set
	IndexBuffer IndexBufferHandle
	TransientIB *TransientIndexBuffer

	// range of indices to draw. a NumIndices of zero means all indices from
	// StartIndex
	StartIndex int
	NumIndices int

	Texture TextureHandle

	// zero Scissor means no scissor test
	Scissor Rect
}

// newDraw returns draw state with no resources set
func newDraw() Draw {
	return Draw{
		Program:      InvalidProgram,
		VertexBuffer: InvalidDynamicVertexBuffer,
		IndexBuffer:  InvalidIndexBuffer,
		Texture:      InvalidTexture,
	}
}

// Frame is everything the render thread needs to render one frame. Backends
// must treat the Frame as read only.
type Frame struct {
	Num        uint64
	Resolution Resolution
	Debug      Debug
	Views      [MaxViews]View
	Touched    [MaxViews]bool
	Draws      []Draw

	// commands executed before and after the draws
	pre  []func(Backend)
	post []func(Backend)

	// handles to return to the allocators once the frame has been rendered
	free []func()

	init bool
	exit bool
}

func newFrame(num uint64) *Frame {
	f := &Frame{Num: num}
	for i := range f.Views {
		f.Views[i] = defaultView()
	}
	return f
}

// reset frame for reuse. views are copied in by Frame()
func (f *Frame) reset(num uint64) {
	f.Num = num
	f.Touched = [MaxViews]bool{}
	f.Draws = f.Draws[:0]
	f.pre = f.pre[:0]
	f.post = f.post[:0]
	f.free = f.free[:0]
	f.init = false
	f.exit = false
}

// IsViewUsed returns true if the view has been touched or has at least one
// draw.
func (f *Frame) IsViewUsed(id ViewID) bool {
	if f.Touched[id] {
		return true
	}
	for _, d := range f.Draws {
		if d.View == id {
			return true
		}
	}
	return false
}
