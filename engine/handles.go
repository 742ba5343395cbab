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

import "fmt"

const invalidHandle = 0xffff

// DynamicVertexBufferHandle refers to a vertex buffer whose content can be
// replaced with UpdateDynamicVertexBuffer().
type DynamicVertexBufferHandle struct{ idx uint16 }

// IndexBufferHandle refers to a static index buffer.
type IndexBufferHandle struct{ idx uint16 }

// ProgramHandle refers to a linked shader program.
type ProgramHandle struct{ idx uint16 }

// TextureHandle refers to a texture.
type TextureHandle struct{ idx uint16 }

// Invalid handles. The zero value of a handle type is a valid handle so these
// values should be used to indicate the absence of a resource.
var (
	InvalidDynamicVertexBuffer = DynamicVertexBufferHandle{invalidHandle}
	InvalidIndexBuffer         = IndexBufferHandle{invalidHandle}
	InvalidProgram             = ProgramHandle{invalidHandle}
	InvalidTexture             = TextureHandle{invalidHandle}
)

// IsValid returns false if handle is the invalid handle.
func (h DynamicVertexBufferHandle) IsValid() bool { return h.idx != invalidHandle }

// IsValid returns false if handle is the invalid handle.
func (h IndexBufferHandle) IsValid() bool { return h.idx != invalidHandle }

// IsValid returns false if handle is the invalid handle.
func (h ProgramHandle) IsValid() bool { return h.idx != invalidHandle }

// IsValid returns false if handle is the invalid handle.
func (h TextureHandle) IsValid() bool { return h.idx != invalidHandle }

// Index returns the index value of the handle. Backends can use the index to
// store resources in a slice.
func (h DynamicVertexBufferHandle) Index() int { return int(h.idx) }

// Index returns the index value of the handle.
func (h IndexBufferHandle) Index() int { return int(h.idx) }

// Index returns the index value of the handle.
func (h ProgramHandle) Index() int { return int(h.idx) }

// Index returns the index value of the handle.
func (h TextureHandle) Index() int { return int(h.idx) }

func (h DynamicVertexBufferHandle) String() string { return fmt.Sprintf("dvb#%d", h.idx) }
func (h IndexBufferHandle) String() string         { return fmt.Sprintf("ib#%d", h.idx) }
func (h ProgramHandle) String() string             { return fmt.Sprintf("prog#%d", h.idx) }
func (h TextureHandle) String() string             { return fmt.Sprintf("tex#%d", h.idx) }

// handleAlloc hands out handle indexes. indexes are returned to the allocator
// only once the render thread has finished with them
type handleAlloc struct {
	max  int
	next uint16
	free []uint16
}

func newHandleAlloc(max int) *handleAlloc {
	return &handleAlloc{max: max}
}

func (a *handleAlloc) alloc() (uint16, bool) {
	if len(a.free) > 0 {
		idx := a.free[len(a.free)-1]
		a.free = a.free[:len(a.free)-1]
		return idx, true
	}
	if int(a.next) >= a.max {
		return invalidHandle, false
	}
	idx := a.next
	a.next++
	return idx, true
}

func (a *handleAlloc) release(idx uint16) {
	a.free = append(a.free, idx)
}

// used returns the number of handles currently allocated
func (a *handleAlloc) used() int {
	return int(a.next) - len(a.free)
}
