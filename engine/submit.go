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

// SetVertexBuffer sets the vertex buffer for the next draw.
func (ctx *Context) SetVertexBuffer(h DynamicVertexBufferHandle) {
	ctx.apiThread.Check()
	ctx.draw.VertexBuffer = h
	ctx.draw.TransientVB = nil
}

// SetTransientVertexBuffer sets a transient vertex buffer for the next draw.
func (ctx *Context) SetTransientVertexBuffer(tvb *TransientVertexBuffer) {
	ctx.apiThread.Check()
	ctx.draw.TransientVB = tvb
	ctx.draw.VertexBuffer = InvalidDynamicVertexBuffer
}

// SetIndexBuffer sets the index buffer for the next draw. All indices in the
// buffer are drawn.
func (ctx *Context) SetIndexBuffer(h IndexBufferHandle) {
	ctx.apiThread.Check()
	ctx.draw.IndexBuffer = h
	ctx.draw.TransientIB = nil
	ctx.draw.StartIndex = 0
	ctx.draw.NumIndices = 0
}

// SetTransientIndexBuffer sets a transient index buffer and the range of
// indices to draw.
func (ctx *Context) SetTransientIndexBuffer(tib *TransientIndexBuffer, start int, num int) {
	ctx.apiThread.Check()
	ctx.draw.TransientIB = tib
	ctx.draw.IndexBuffer = InvalidIndexBuffer
	ctx.draw.StartIndex = start
	ctx.draw.NumIndices = num
}

// SetState sets the render state for the next draw.
func (ctx *Context) SetState(state State) {
	ctx.apiThread.Check()
	ctx.draw.State = state
}

// SetTexture sets the texture for the next draw.
func (ctx *Context) SetTexture(h TextureHandle) {
	ctx.apiThread.Check()
	ctx.draw.Texture = h
}

// SetScissor sets the scissor rectangle for the next draw.
func (ctx *Context) SetScissor(x int, y int, width int, height int) {
	ctx.apiThread.Check()
	ctx.draw.Scissor = Rect{X: x, Y: y, Width: width, Height: height}
}

// Submit the draw state to the view using program. The draw state is reset
// for the next draw. Draws without a vertex buffer are discarded.
func (ctx *Context) Submit(id ViewID, program ProgramHandle) {
	ctx.apiThread.Check()
	ctx.view(id)

	d := ctx.draw
	ctx.draw = newDraw()

	if d.TransientVB == nil && !d.VertexBuffer.IsValid() {
		return
	}
	if d.TransientIB == nil && !d.IndexBuffer.IsValid() {
		return
	}
	d.View = id
	d.Program = program
	ctx.submit.Draws = append(ctx.submit.Draws, d)
}
