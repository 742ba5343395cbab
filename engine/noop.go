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

type noop struct{}

// NewNoop returns a Backend that renders nothing.
func NewNoop() Backend {
	return noop{}
}

func (noop) Type() RendererType { return RendererNoop }

func (noop) Init(_ Resolution) (Caps, error) {
	return Caps{Renderer: RendererNoop, HomogeneousDepth: true}, nil
}

func (noop) Shutdown()                                                        {}
func (noop) BeginFrame(_ *Frame)                                              {}
func (noop) CreateDynamicVertexBuffer(_ DynamicVertexBufferHandle, _ int, _ Layout) {}
func (noop) UpdateDynamicVertexBuffer(_ DynamicVertexBufferHandle, _ int, _ *Memory) {}
func (noop) DestroyDynamicVertexBuffer(_ DynamicVertexBufferHandle)           {}
func (noop) CreateIndexBuffer(_ IndexBufferHandle, _ *Memory)                 {}
func (noop) DestroyIndexBuffer(_ IndexBufferHandle)                           {}
func (noop) CreateProgram(_ ProgramHandle, _ string, _ string) error          { return nil }
func (noop) DestroyProgram(_ ProgramHandle)                                   {}
func (noop) CreateTexture2D(_ TextureHandle, _ int, _ int, _ TextureFormat, _ *Memory) {}
func (noop) DestroyTexture(_ TextureHandle)                                   {}
func (noop) Submit(_ *Frame)                                                  {}
