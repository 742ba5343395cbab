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

	"github.com/jetsetilly/makeref/engine"
	"github.com/veandco/go-sdl2/sdl"
)

// maximum time Service() waits for the engine to hand over a frame. keeps
// the window responsive when the demo is slow to produce frames
const renderTimeout = 50 * time.Millisecond

// Service implements GuiCreator interface.
func (img *SdlImgui) Service() {
	ctx := img.ctx.Load()

	// poll for sdl event or timeout. when an engine context is attached we
	// wait in RenderFrame() instead
	ev := img.wait(ctx == nil)

	var scroll int
	quit := false

	for ; ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			quit = true

		case *sdl.KeyboardEvent:
			if ev.Type == sdl.KEYUP && ev.Keysym.Sym == sdl.K_ESCAPE {
				quit = true
			}

		case *sdl.MouseWheelEvent:
			scroll += int(ev.Y)
		}
	}

	img.publishInput(scroll, quit)

	if ctx == nil {
		return
	}

	switch ctx.RenderFrame(renderTimeout) {
	case engine.RenderFrameRender:
		img.plt.postRender()
		img.rendered.Add(1)
	case engine.RenderFrameExiting:
		img.ctx.CompareAndSwap(ctx, nil)
	}
}

// publishInput makes the current state of the mouse and window available to
// ProcessEvents()
func (img *SdlImgui) publishInput(scroll int, quit bool) {
	x, y, state := sdl.GetMouseState()
	w, h := img.plt.windowSize()

	img.inputLock.Lock()
	defer img.inputLock.Unlock()

	img.input.Mouse.X = int(x)
	img.input.Mouse.Y = int(y)
	img.input.Mouse.Scroll += scroll
	img.input.Mouse.Left = state&sdl.Button(sdl.BUTTON_LEFT) != 0
	img.input.Mouse.Right = state&sdl.Button(sdl.BUTTON_RIGHT) != 0
	img.input.Mouse.Middle = state&sdl.Button(sdl.BUTTON_MIDDLE) != 0
	img.input.Width = w
	img.input.Height = h

	if quit {
		img.quit = true
	}
}
