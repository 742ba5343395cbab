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
	"fmt"

	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/jetsetilly/makeref/engine"
	"github.com/jetsetilly/makeref/logger"
)

type gl32Buffer struct {
	id     uint32
	layout engine.Layout

	// size in bytes
	size int
}

type gl32Texture struct {
	id     uint32
	width  int
	height int
}

// gl32 implements the engine.Backend interface with OpenGL 3.2 core. All
// methods are called on the render thread, which is the thread that owns the
// GL context.
type gl32 struct {
	plt *platform

	vao uint32

	// transient buffers are reused for every draw that uses them
	transientVB uint32
	transientIB uint32

	dvbs     map[engine.DynamicVertexBufferHandle]gl32Buffer
	ibs      map[engine.IndexBufferHandle]gl32Buffer
	programs map[engine.ProgramHandle]*shaderProgram
	textures map[engine.TextureHandle]gl32Texture

	reset engine.Reset
}

func newGL32(plt *platform) *gl32 {
	return &gl32{
		plt:      plt,
		dvbs:     make(map[engine.DynamicVertexBufferHandle]gl32Buffer),
		ibs:      make(map[engine.IndexBufferHandle]gl32Buffer),
		programs: make(map[engine.ProgramHandle]*shaderProgram),
		textures: make(map[engine.TextureHandle]gl32Texture),
	}
}

func (rnd *gl32) Type() engine.RendererType {
	return engine.RendererOpenGL
}

func (rnd *gl32) Init(res engine.Resolution) (engine.Caps, error) {
	err := gl.Init()
	if err != nil {
		return engine.Caps{}, fmt.Errorf("gl32: %w", err)
	}

	// log GPU vendor information
	logger.Logf(logger.Allow, "gl32", "vendor: %s", gl.GoStr(gl.GetString(gl.VENDOR)))
	logger.Logf(logger.Allow, "gl32", "renderer: %s", gl.GoStr(gl.GetString(gl.RENDERER)))
	logger.Logf(logger.Allow, "gl32", "driver: %s", gl.GoStr(gl.GetString(gl.VERSION)))

	// a single VAO is bound for the lifetime of the backend
	gl.GenVertexArrays(1, &rnd.vao)
	gl.BindVertexArray(rnd.vao)

	gl.GenBuffers(1, &rnd.transientVB)
	gl.GenBuffers(1, &rnd.transientIB)

	rnd.applyReset(res.Reset)

	var maxTextureSize int32
	gl.GetIntegerv(gl.MAX_TEXTURE_SIZE, &maxTextureSize)

	return engine.Caps{
		Renderer:         engine.RendererOpenGL,
		HomogeneousDepth: true,
		OriginBottomLeft: true,
		MaxTextureSize:   int(maxTextureSize),
	}, nil
}

func (rnd *gl32) applyReset(reset engine.Reset) {
	if reset&engine.ResetVSync == engine.ResetVSync {
		rnd.plt.setSwapInterval(syncWithVerticalRetrace)
	} else {
		rnd.plt.setSwapInterval(syncImmediateUpdate)
	}
	rnd.reset = reset
}

func (rnd *gl32) Shutdown() {
	for h := range rnd.dvbs {
		rnd.DestroyDynamicVertexBuffer(h)
	}
	for h := range rnd.ibs {
		rnd.DestroyIndexBuffer(h)
	}
	for h := range rnd.programs {
		rnd.DestroyProgram(h)
	}
	for h := range rnd.textures {
		rnd.DestroyTexture(h)
	}

	gl.DeleteBuffers(1, &rnd.transientVB)
	gl.DeleteBuffers(1, &rnd.transientIB)
	gl.BindVertexArray(0)
	gl.DeleteVertexArrays(1, &rnd.vao)

	logger.Log(logger.Allow, "gl32", "shutdown")
}

func (rnd *gl32) BeginFrame(f *engine.Frame) {
	if f.Resolution.Reset != rnd.reset {
		rnd.applyReset(f.Resolution.Reset)
	}
}

func (rnd *gl32) CreateDynamicVertexBuffer(h engine.DynamicVertexBufferHandle, num int, layout engine.Layout) {
	b := gl32Buffer{
		layout: layout,
		size:   num * layout.Stride(),
	}
	gl.GenBuffers(1, &b.id)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.id)
	gl.BufferData(gl.ARRAY_BUFFER, b.size, nil, gl.DYNAMIC_DRAW)
	rnd.dvbs[h] = b
}

func (rnd *gl32) UpdateDynamicVertexBuffer(h engine.DynamicVertexBufferHandle, offset int, mem *engine.Memory) {
	b, ok := rnd.dvbs[h]
	if !ok {
		return
	}

	data := mem.Data()
	start := offset * b.layout.Stride()
	if len(data) == 0 || start >= b.size {
		return
	}
	n := min(len(data), b.size-start)

	gl.BindBuffer(gl.ARRAY_BUFFER, b.id)
	gl.BufferSubData(gl.ARRAY_BUFFER, start, n, gl.Ptr(data))
}

func (rnd *gl32) DestroyDynamicVertexBuffer(h engine.DynamicVertexBufferHandle) {
	if b, ok := rnd.dvbs[h]; ok {
		gl.DeleteBuffers(1, &b.id)
		delete(rnd.dvbs, h)
	}
}

func (rnd *gl32) CreateIndexBuffer(h engine.IndexBufferHandle, mem *engine.Memory) {
	data := mem.Data()
	b := gl32Buffer{
		size: len(data),
	}
	gl.GenBuffers(1, &b.id)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, b.id)
	if len(data) > 0 {
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(data), gl.Ptr(data), gl.STATIC_DRAW)
	}
	rnd.ibs[h] = b
}

func (rnd *gl32) DestroyIndexBuffer(h engine.IndexBufferHandle) {
	if b, ok := rnd.ibs[h]; ok {
		gl.DeleteBuffers(1, &b.id)
		delete(rnd.ibs, h)
	}
}

func (rnd *gl32) CreateProgram(h engine.ProgramHandle, vs string, fs string) error {
	sh, err := newShaderProgram(vs, fs)
	if err != nil {
		return err
	}
	rnd.programs[h] = sh
	return nil
}

func (rnd *gl32) DestroyProgram(h engine.ProgramHandle) {
	if sh, ok := rnd.programs[h]; ok {
		sh.destroy()
		delete(rnd.programs, h)
	}
}

func (rnd *gl32) CreateTexture2D(h engine.TextureHandle, width int, height int, format engine.TextureFormat, mem *engine.Memory) {
	tex := gl32Texture{
		width:  width,
		height: height,
	}

	gl.GenTextures(1, &tex.id)
	gl.BindTexture(gl.TEXTURE_2D, tex.id)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)

	data := mem.Data()
	if len(data) < width*height*format.BytesPerPixel() {
		logger.Logf(logger.Allow, "gl32", "texture %s: not enough pixel data", h)
		data = make([]byte, width*height*format.BytesPerPixel())
	}

	switch format {
	case engine.TextureA8:
		gl.TexImage2D(gl.TEXTURE_2D, 0, gl.R8, int32(width), int32(height), 0, gl.RED, gl.UNSIGNED_BYTE, gl.Ptr(data))
	case engine.TextureRGBA8:
		gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(width), int32(height), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(data))
	}

	rnd.textures[h] = tex
}

func (rnd *gl32) DestroyTexture(h engine.TextureHandle) {
	if tex, ok := rnd.textures[h]; ok {
		gl.DeleteTextures(1, &tex.id)
		delete(rnd.textures, h)
	}
}

// Submit renders the draws of each view in view order. Draws within a view
// are rendered in submission order.
func (rnd *gl32) Submit(f *engine.Frame) {
	winW, winH := rnd.plt.windowSize()
	fbW, fbH := rnd.plt.framebufferSize()

	// avoid rendering when minimised
	if fbW <= 0 || fbH <= 0 {
		return
	}

	if f.Debug&engine.DebugWireframe == engine.DebugWireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	} else {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}

	gl.Enable(gl.SCISSOR_TEST)

	for id := engine.ViewID(0); id < engine.MaxViews; id++ {
		if !f.IsViewUsed(id) {
			continue
		}

		v := &f.Views[id]
		rect := v.Rect
		if rect.IsZero() {
			rect = engine.Rect{Width: winW, Height: winH}
		}
		vx, vy, vw, vh := glRect(rect, winW, winH, fbW, fbH)
		gl.Viewport(vx, vy, vw, vh)

		rnd.clear(v, vx, vy, vw, vh)

		mvp := engine.Mul(v.ViewMtx, v.ProjMtx)

		for i := range f.Draws {
			d := &f.Draws[i]
			if d.View != id {
				continue
			}

			if d.Scissor.IsZero() {
				gl.Scissor(vx, vy, vw, vh)
			} else {
				gl.Scissor(glRect(d.Scissor, winW, winH, fbW, fbH))
			}

			rnd.draw(d, &mvp)
		}
	}

	gl.Disable(gl.SCISSOR_TEST)
}

func (rnd *gl32) clear(v *engine.View, x, y, w, h int32) {
	var mask uint32

	if v.Clear&engine.ClearColor == engine.ClearColor {
		gl.ColorMask(true, true, true, true)
		gl.ClearColor(rgba(v.ClearRGBA))
		mask |= gl.COLOR_BUFFER_BIT
	}
	if v.Clear&engine.ClearDepth == engine.ClearDepth {
		gl.DepthMask(true)
		gl.ClearDepth(float64(v.ClearDepth))
		mask |= gl.DEPTH_BUFFER_BIT
	}
	if v.Clear&engine.ClearStencil == engine.ClearStencil {
		gl.ClearStencil(int32(v.ClearStencil))
		mask |= gl.STENCIL_BUFFER_BIT
	}

	if mask != 0 {
		gl.Scissor(x, y, w, h)
		gl.Clear(mask)
	}
}

func (rnd *gl32) draw(d *engine.Draw, mvp *[16]float32) {
	sh, ok := rnd.programs[d.Program]
	if !ok {
		return
	}

	// vertex data
	var layout engine.Layout
	if d.TransientVB != nil {
		if len(d.TransientVB.Data) == 0 {
			return
		}
		layout = d.TransientVB.Layout
		gl.BindBuffer(gl.ARRAY_BUFFER, rnd.transientVB)
		gl.BufferData(gl.ARRAY_BUFFER, len(d.TransientVB.Data), gl.Ptr(d.TransientVB.Data), gl.STREAM_DRAW)
	} else {
		b, ok := rnd.dvbs[d.VertexBuffer]
		if !ok {
			return
		}
		layout = b.layout
		gl.BindBuffer(gl.ARRAY_BUFFER, b.id)
	}

	// index data
	var numIndices int
	if d.TransientIB != nil {
		if len(d.TransientIB.Data) == 0 {
			return
		}
		numIndices = d.TransientIB.NumIndices()
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, rnd.transientIB)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(d.TransientIB.Data), gl.Ptr(d.TransientIB.Data), gl.STREAM_DRAW)
	} else {
		b, ok := rnd.ibs[d.IndexBuffer]
		if !ok {
			return
		}
		numIndices = b.size / 2
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, b.id)
	}

	count := numIndices - d.StartIndex
	if d.NumIndices > 0 {
		count = min(count, d.NumIndices)
	}
	if count <= 0 {
		return
	}

	gl.UseProgram(sh.handle)
	gl.UniformMatrix4fv(sh.modelViewProj, 1, false, &mvp[0])

	if tex, ok := rnd.textures[d.Texture]; ok {
		gl.ActiveTexture(gl.TEXTURE0)
		gl.BindTexture(gl.TEXTURE_2D, tex.id)
		gl.Uniform1i(sh.texColor, 0)
	}

	stride := int32(layout.Stride())
	for i, a := range attribs {
		decl, ok := layout.Decl(a)
		if !ok {
			gl.DisableVertexAttribArray(uint32(i))
			continue
		}

		typ := uint32(gl.FLOAT)
		if decl.Type == engine.AttribUint8 {
			typ = gl.UNSIGNED_BYTE
		}

		gl.EnableVertexAttribArray(uint32(i))
		gl.VertexAttribPointerWithOffset(uint32(i), int32(decl.Num), typ, decl.Normalized, stride, uintptr(decl.Offset))
	}

	st := newGLState(d.State)
	st.apply()

	gl.DrawElementsWithOffset(st.primitive, int32(count), gl.UNSIGNED_SHORT, uintptr(d.StartIndex*2))
}
