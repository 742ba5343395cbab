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

// RendererType identifies the backend.
type RendererType int

// List of valid RendererType values.
const (
	RendererNoop RendererType = iota
	RendererCapture
	RendererOpenGL
)

func (t RendererType) String() string {
	switch t {
	case RendererNoop:
		return "Noop"
	case RendererCapture:
		return "Capture"
	case RendererOpenGL:
		return "OpenGL"
	}
	return "unknown renderer"
}

// Caps are the capabilities of the backend.
type Caps struct {
	Renderer RendererType

	// depth range of clip space is -1 to 1 rather than 0 to 1
	HomogeneousDepth bool

	// texture coordinate origin is at the bottom left
	OriginBottomLeft bool

	MaxTextureSize int
}

// Resolution of the back buffer.
type Resolution struct {
	Width  int
	Height int
	Reset  Reset
}
