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

// Backend does the actual rendering. Every method is called on the render
// thread. Resource methods are called in the order the API thread made the
// corresponding requests.
//
// For every frame the render thread calls BeginFrame(), then executes the
// resource creation and update commands, then calls Submit(), then executes
// the resource destruction commands.
type Backend interface {
	Type() RendererType

	// Init is called on the render thread before any other method.
	Init(res Resolution) (Caps, error)

	// Shutdown is called on the render thread after all resources have been
	// destroyed.
	Shutdown()

	BeginFrame(f *Frame)

	CreateDynamicVertexBuffer(h DynamicVertexBufferHandle, num int, layout Layout)

	// UpdateDynamicVertexBuffer replaces the content of the buffer starting
	// at vertex offset. The data in mem must be consumed before the method
	// returns.
	UpdateDynamicVertexBuffer(h DynamicVertexBufferHandle, offset int, mem *Memory)
	DestroyDynamicVertexBuffer(h DynamicVertexBufferHandle)

	CreateIndexBuffer(h IndexBufferHandle, mem *Memory)
	DestroyIndexBuffer(h IndexBufferHandle)

	CreateProgram(h ProgramHandle, vs string, fs string) error
	DestroyProgram(h ProgramHandle)

	CreateTexture2D(h TextureHandle, width int, height int, format TextureFormat, mem *Memory)
	DestroyTexture(h TextureHandle)

	// Submit renders the draws in the frame.
	Submit(f *Frame)
}

// TextureFormat is the pixel format of a texture.
type TextureFormat int

// List of valid TextureFormat values.
const (
	TextureA8 TextureFormat = iota
	TextureRGBA8
)

// BytesPerPixel returns the size of a pixel in bytes.
func (tf TextureFormat) BytesPerPixel() int {
	if tf == TextureRGBA8 {
		return 4
	}
	return 1
}
