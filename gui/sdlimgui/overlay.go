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
	"time"
	"unsafe"

	"github.com/inkyblackness/imgui-go/v4"
	"github.com/jetsetilly/makeref/curated"
	"github.com/jetsetilly/makeref/demo"
	"github.com/jetsetilly/makeref/engine"
	"github.com/jetsetilly/makeref/logger"
)

// Sentinal error patterns.
const (
	OverlayLayout = "overlay: unsupported imgui vertex layout (%s)"
)

// overlayState is the render state of every imgui draw.
const overlayState = engine.StateWriteRGB | engine.StateWriteA | engine.StateBlendAlpha | engine.StateMSAA

// overlay implements the demo.Overlay interface with dear imgui. The imgui
// draw lists are copied into transient engine buffers, so the overlay is
// rendered by the render thread like any other draw.
//
// All methods are called on the goroutine running the demo. The imgui
// context is not shared with any other goroutine.
type overlay struct {
	ctx  *engine.Context
	view engine.ViewID

	context *imgui.Context
	io      imgui.IO

	layout  engine.Layout
	font    engine.TextureHandle
	program engine.ProgramHandle

	width  int
	height int

	last time.Time
}

func newOverlay() *overlay {
	return &overlay{
		font:    engine.InvalidTexture,
		program: engine.InvalidProgram,
	}
}

// Create implements the demo.Overlay interface.
func (ov *overlay) Create(ctx *engine.Context, view engine.ViewID) error {
	ov.ctx = ctx
	ov.view = view

	ov.layout.Begin().
		Add(engine.AttribPosition, 2, engine.AttribFloat, false).
		Add(engine.AttribTexCoord0, 2, engine.AttribFloat, false).
		Add(engine.AttribColor0, 4, engine.AttribUint8, true).
		End()

	// the imgui vertex must match the layout exactly because draw lists are
	// copied without conversion
	size, pos, uv, col := imgui.VertexBufferLayout()
	posDecl, _ := ov.layout.Decl(engine.AttribPosition)
	uvDecl, _ := ov.layout.Decl(engine.AttribTexCoord0)
	colDecl, _ := ov.layout.Decl(engine.AttribColor0)
	if size != ov.layout.Stride() || pos != posDecl.Offset || uv != uvDecl.Offset || col != colDecl.Offset {
		return curated.Errorf(OverlayLayout, ov.layout.String())
	}
	if imgui.IndexBufferLayout() != 2 {
		return curated.Errorf(OverlayLayout, "32bit indices")
	}

	ov.context = imgui.CreateContext(nil)
	ov.io = imgui.CurrentIO()

	// window positions are set by the demo every time it starts
	ov.io.SetIniFilename("")

	fonts := ov.io.Fonts()
	image := fonts.TextureDataAlpha8()
	pixels := unsafe.Slice((*byte)(image.Pixels), image.Width*image.Height)

	var err error

	// pixels belong to the font atlas so they are copied
	ov.font, err = ctx.CreateTexture2D(image.Width, image.Height, engine.TextureA8, engine.Copy(pixels))
	if err != nil {
		ov.Destroy()
		return err
	}
	fonts.SetTextureID(imgui.TextureID(ov.font.Index()))

	ov.program, err = ctx.CreateProgram("vs_imgui", "fs_imgui")
	if err != nil {
		ov.Destroy()
		return err
	}

	ov.last = time.Now()

	logger.Logf(logger.Allow, "overlay", "font atlas %dx%d", image.Width, image.Height)

	return nil
}

// Destroy implements the demo.Overlay interface.
func (ov *overlay) Destroy() {
	if ov.ctx != nil {
		ov.ctx.DestroyProgram(ov.program)
		ov.ctx.DestroyTexture(ov.font)
		ov.program = engine.InvalidProgram
		ov.font = engine.InvalidTexture
	}
	if ov.context != nil {
		ov.context.Destroy()
		ov.context = nil
	}
}

// BeginFrame implements the demo.Overlay interface.
func (ov *overlay) BeginFrame(in demo.Input, width int, height int) {
	ov.width = width
	ov.height = height

	now := time.Now()
	dt := float32(now.Sub(ov.last).Seconds())
	if dt <= 0 {
		dt = 1.0 / 60.0
	}
	ov.last = now

	ov.io.SetDisplaySize(imgui.Vec2{X: float32(width), Y: float32(height)})
	ov.io.SetDeltaTime(dt)
	ov.io.SetMousePosition(imgui.Vec2{X: float32(in.Mouse.X), Y: float32(in.Mouse.Y)})
	ov.io.SetMouseButtonDown(0, in.Mouse.Left)
	ov.io.SetMouseButtonDown(1, in.Mouse.Right)
	ov.io.SetMouseButtonDown(2, in.Mouse.Middle)
	if in.Mouse.Scroll != 0 {
		ov.io.AddMouseWheelDelta(0, float32(in.Mouse.Scroll))
	}

	imgui.NewFrame()
}

// Begin implements the demo.Overlay interface.
func (ov *overlay) Begin(title string, x float32, y float32, width float32, height float32) {
	imgui.SetNextWindowPosV(imgui.Vec2{X: x, Y: y}, imgui.ConditionFirstUseEver, imgui.Vec2{})
	imgui.SetNextWindowSizeV(imgui.Vec2{X: width, Y: height}, imgui.ConditionFirstUseEver)
	imgui.Begin(title)
}

// End implements the demo.Overlay interface.
func (ov *overlay) End() {
	imgui.End()
}

// Checkbox implements the demo.Overlay interface.
func (ov *overlay) Checkbox(label string, v *bool) bool {
	return imgui.Checkbox(label, v)
}

// EndFrame implements the demo.Overlay interface. The imgui draw data is
// submitted to the overlay view.
func (ov *overlay) EndFrame() {
	imgui.Render()

	if ov.width <= 0 || ov.height <= 0 {
		return
	}

	w := float32(ov.width)
	h := float32(ov.height)
	proj := engine.Ortho(0, w, h, 0, 0, 1000, ov.ctx.Caps().HomogeneousDepth)
	ov.ctx.SetViewTransform(ov.view, engine.Identity(), proj)
	ov.ctx.SetViewRect(ov.view, 0, 0, ov.width, ov.height)

	stride := ov.layout.Stride()

	for _, list := range imgui.RenderedDrawData().CommandLists() {
		vertexBuffer, vertexBufferSize := list.VertexBuffer()
		indexBuffer, indexBufferSize := list.IndexBuffer()
		if vertexBufferSize == 0 || indexBufferSize == 0 {
			continue
		}

		tvb := ov.ctx.AllocTransientVertexBuffer(vertexBufferSize/stride, ov.layout)
		copy(tvb.Data, unsafe.Slice((*byte)(vertexBuffer), vertexBufferSize))

		tib := ov.ctx.AllocTransientIndexBuffer(indexBufferSize / 2)
		copy(tib.Data, unsafe.Slice((*byte)(indexBuffer), indexBufferSize))

		var offset int
		for _, cmd := range list.Commands() {
			if cmd.HasUserCallback() {
				cmd.CallUserCallback(list)
			} else {
				clip := cmd.ClipRect()
				ov.ctx.SetScissor(int(clip.X), int(clip.Y), int(clip.Z-clip.X), int(clip.W-clip.Y))
				ov.ctx.SetState(overlayState)
				ov.ctx.SetTexture(ov.font)
				ov.ctx.SetTransientVertexBuffer(tvb)
				ov.ctx.SetTransientIndexBuffer(tib, offset, cmd.ElementCount())
				ov.ctx.Submit(ov.view, ov.program)
			}
			offset += cmd.ElementCount()
		}
	}
}
