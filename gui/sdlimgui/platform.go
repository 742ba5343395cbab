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
	"runtime"

	"github.com/jetsetilly/makeref/demo"
	"github.com/jetsetilly/makeref/logger"
	"github.com/jetsetilly/makeref/version"
	"github.com/veandco/go-sdl2/sdl"
)

type platform struct {
	window    *sdl.Window
	glContext sdl.GLContext
	mode      sdl.DisplayMode
}

// newPlatform is the preferred method of initialisation for the platform type.
func newPlatform() (*platform, error) {
	// the SDL package calls LockOSThread() but we call it here too. it can't
	// hurt and we never unlock it in any case
	runtime.LockOSThread()

	err := sdl.Init(sdl.INIT_VIDEO)
	if err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}

	attrs := []struct {
		attr  sdl.GLattr
		value int
	}{
		{sdl.GL_CONTEXT_MAJOR_VERSION, 3},
		{sdl.GL_CONTEXT_MINOR_VERSION, 2},
		{sdl.GL_CONTEXT_FLAGS, sdl.GL_CONTEXT_FORWARD_COMPATIBLE_FLAG},
		{sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE},
		{sdl.GL_DEPTH_SIZE, 24},
		{sdl.GL_MULTISAMPLEBUFFERS, 1},
		{sdl.GL_MULTISAMPLESAMPLES, 4},
	}
	for _, a := range attrs {
		err = sdl.GLSetAttribute(a.attr, a.value)
		if err != nil {
			sdl.Quit()
			return nil, fmt.Errorf("sdl: %w", err)
		}
	}

	var sdlVersion sdl.Version
	sdl.VERSION(&sdlVersion)
	logger.Logf(logger.Allow, "sdl", "version %d.%d.%d", sdlVersion.Major, sdlVersion.Minor, sdlVersion.Patch)

	plt := &platform{}

	plt.mode, err = sdl.GetCurrentDisplayMode(0)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("sdl: %w", err)
	}
	logger.Logf(logger.Allow, "sdl", "refresh rate: %dHz", plt.mode.RefreshRate)

	// window is shown once the preferences have been applied
	plt.window, err = sdl.CreateWindow(fmt.Sprintf("%s: %s", version.String(), demo.Info.Name),
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(float32(plt.mode.W)*0.60), int32(float32(plt.mode.H)*0.60),
		sdl.WINDOW_OPENGL|sdl.WINDOW_ALLOW_HIGHDPI|sdl.WINDOW_RESIZABLE|sdl.WINDOW_HIDDEN)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("sdl: %w", err)
	}

	plt.glContext, err = plt.window.GLCreateContext()
	if err != nil {
		_ = plt.destroy()
		return nil, fmt.Errorf("sdl: %w", err)
	}
	err = plt.window.GLMakeCurrent(plt.glContext)
	if err != nil {
		_ = plt.destroy()
		return nil, fmt.Errorf("sdl: %w", err)
	}

	major, _ := sdl.GLGetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION)
	minor, _ := sdl.GLGetAttribute(sdl.GL_CONTEXT_MINOR_VERSION)
	logger.Logf(logger.Allow, "sdl", "using GL version %d.%d core", major, minor)

	return plt, nil
}

// list of swap interval values. these are values defined and expected by the
// SDL.GLSetSwapInterval() function
const (
	syncImmediateUpdate     = 0
	syncWithVerticalRetrace = 1
)

func (plt *platform) setSwapInterval(i int) {
	err := sdl.GLSetSwapInterval(i)
	if err != nil {
		logger.Logf(logger.Allow, "sdl", "GLSetSwapInterval(%d): %s", i, err.Error())
	}
}

// destroy cleans up the resources.
func (plt *platform) destroy() error {
	if plt.glContext != nil {
		sdl.GLDeleteContext(plt.glContext)
		plt.glContext = nil
	}

	if plt.window != nil {
		err := plt.window.Destroy()
		if err != nil {
			return err
		}
		plt.window = nil
	}
	sdl.Quit()

	return nil
}

// windowSize returns the dimensions of the window in screen coordinates.
func (plt *platform) windowSize() (int, int) {
	w, h := plt.window.GetSize()
	return int(w), int(h)
}

// framebufferSize returns the dimensions of the framebuffer. on high DPI
// displays this is larger than the window size.
func (plt *platform) framebufferSize() (int, int) {
	w, h := plt.window.GLGetDrawableSize()
	return int(w), int(h)
}

// postRender performs a buffer swap.
func (plt *platform) postRender() {
	plt.window.GLSwap()
}
