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

package demo

import "github.com/jetsetilly/makeref/engine"

// MouseState is the state of the mouse at the time of the most recent event.
type MouseState struct {
	X      int
	Y      int
	Scroll int
	Left   bool
	Right  bool
	Middle bool
}

// Input collected since the previous frame.
type Input struct {
	Mouse MouseState

	// size of the window. zero values mean the size has not changed
	Width  int
	Height int
}

// Events is the source of input for the frame driver.
type Events interface {
	// ProcessEvents returns the most recent input. The second return value
	// is false if the application should quit.
	ProcessEvents() (Input, bool)
}

// Overlay draws the settings window. All methods are called on the
// goroutine that calls App.Update().
type Overlay interface {
	Create(ctx *engine.Context, view engine.ViewID) error
	Destroy()

	BeginFrame(in Input, width int, height int)
	EndFrame()

	// Begin a window with an initial position and size. The position and
	// size are only used the first time the window is seen.
	Begin(title string, x float32, y float32, width float32, height float32)
	End()

	// Checkbox returns true if the value was changed by the user.
	Checkbox(label string, v *bool) bool
}

type noOverlay struct{}

func (noOverlay) Create(_ *engine.Context, _ engine.ViewID) error { return nil }
func (noOverlay) Destroy()                                        {}
func (noOverlay) BeginFrame(_ Input, _ int, _ int)                {}
func (noOverlay) EndFrame()                                       {}
func (noOverlay) Begin(_ string, _, _, _, _ float32)              {}
func (noOverlay) End()                                            {}
func (noOverlay) Checkbox(_ string, _ *bool) bool                 { return false }
