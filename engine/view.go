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

// ViewID identifies a view. Draws are rendered in view order.
type ViewID uint16

// MaxViews is the number of views available.
const MaxViews = 16

// Rect is a rectangle in pixels. The origin is at the top left of the back
// buffer.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// IsZero returns true if the rectangle has no area.
func (r Rect) IsZero() bool {
	return r.Width <= 0 || r.Height <= 0
}

// View is the state of a single view at the time the frame was submitted.
type View struct {
	Clear        Clear
	ClearRGBA    uint32
	ClearDepth   float32
	ClearStencil uint8

	Rect Rect

	ViewMtx [16]float32
	ProjMtx [16]float32
}

func defaultView() View {
	return View{
		ClearDepth: 1.0,
		ViewMtx:    Identity(),
		ProjMtx:    Identity(),
	}
}
