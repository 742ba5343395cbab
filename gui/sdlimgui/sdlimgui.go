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
	"io"
	"sync"
	"sync/atomic"

	"github.com/jetsetilly/makeref/curated"
	"github.com/jetsetilly/makeref/demo"
	"github.com/jetsetilly/makeref/engine"
	"github.com/jetsetilly/makeref/prefs"
)

// SdlImgui is an SDL window with an OpenGL context, an engine backend that
// renders to the window and a dear imgui overlay.
//
// The window and the GL context belong to the main thread. The main thread
// must call Service() repeatedly. Service() handles window events and acts as
// the engine's render thread.
type SdlImgui struct {
	plt     *platform
	rnd     *gl32
	overlay *overlay
	prefs   *prefs.Disk

	// the engine context is attached by the goroutine running the demo and
	// detached by Service() when the render thread exits
	ctx atomic.Pointer[engine.Context]

	// input is written by Service() and read by ProcessEvents()
	inputLock sync.Mutex
	input     demo.Input
	quit      bool

	// number of frames rendered by Service()
	rendered atomic.Uint64
}

// NewSdlImgui is the preferred method of initialisation for the SdlImgui
// type. Must be called from the main thread.
func NewSdlImgui() (*SdlImgui, error) {
	img := &SdlImgui{
		overlay: newOverlay(),
	}

	var err error

	img.plt, err = newPlatform()
	if err != nil {
		return nil, curated.Errorf("sdlimgui: %v", err)
	}

	img.rnd = newGL32(img.plt)

	err = img.initPrefs()
	if err != nil {
		_ = img.plt.destroy()
		return nil, curated.Errorf("sdlimgui: %v", err)
	}

	img.plt.window.Show()

	w, h := img.plt.windowSize()
	img.input.Width = w
	img.input.Height = h

	return img, nil
}

// Destroy implements GuiCreator interface.
func (img *SdlImgui) Destroy(output io.Writer) {
	err := img.prefs.Save()
	if err != nil {
		output.Write([]byte(err.Error()))
	}

	err = img.plt.destroy()
	if err != nil {
		output.Write([]byte(err.Error()))
	}
}

// Backend returns the engine backend that renders to the window. The backend
// must be used with engine.RenderThreadExternal and with the SdlImgui
// instance as the RenderHost.
func (img *SdlImgui) Backend() engine.Backend {
	return img.rnd
}

// Overlay returns the imgui implementation of the demo.Overlay interface.
func (img *SdlImgui) Overlay() demo.Overlay {
	return img.overlay
}

// WindowSize returns the current size of the window.
func (img *SdlImgui) WindowSize() (int, int) {
	img.inputLock.Lock()
	defer img.inputLock.Unlock()
	return img.input.Width, img.input.Height
}

// Rendered returns the number of frames rendered to the window.
func (img *SdlImgui) Rendered() uint64 {
	return img.rendered.Load()
}

// AttachContext implements the engine.RenderHost interface.
func (img *SdlImgui) AttachContext(ctx *engine.Context) {
	img.ctx.Store(ctx)
}

// ProcessEvents implements the demo.Events interface.
func (img *SdlImgui) ProcessEvents() (demo.Input, bool) {
	img.inputLock.Lock()
	defer img.inputLock.Unlock()

	in := img.input

	// scroll is accumulated between calls
	img.input.Mouse.Scroll = 0

	return in, !img.quit
}

// Quit causes the next call to ProcessEvents() to indicate that the
// application should quit.
func (img *SdlImgui) Quit() {
	img.inputLock.Lock()
	defer img.inputLock.Unlock()
	img.quit = true
}
