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

package geometry

import (
	"encoding/binary"
	"fmt"
	"math"
	"unsafe"
)

// Vertex is a position with a packed colour. The memory layout matches the
// vertex layout declared to the renderer: three 32bit floats followed by four
// unsigned bytes in ABGR order.
type Vertex struct {
	X    float32
	Y    float32
	Z    float32
	ABGR uint32
}

// VertexSize is the size in bytes of a single Vertex.
const VertexSize = int(unsafe.Sizeof(Vertex{}))

// Colour of every vertex in the grid.
const Colour uint32 = 0xff00ffff

func (v Vertex) String() string {
	return fmt.Sprintf("(%.2f, %.2f, %.2f) %08x", v.X, v.Y, v.Z, v.ABGR)
}

// FromBytes decodes vertex data as stored by the renderer. The length of b
// should be a multiple of VertexSize. Any trailing bytes are ignored.
func FromBytes(b []byte) []Vertex {
	n := len(b) / VertexSize
	verts := make([]Vertex, n)
	for i := range verts {
		o := i * VertexSize
		verts[i] = Vertex{
			X:    math.Float32frombits(binary.LittleEndian.Uint32(b[o:])),
			Y:    math.Float32frombits(binary.LittleEndian.Uint32(b[o+4:])),
			Z:    math.Float32frombits(binary.LittleEndian.Uint32(b[o+8:])),
			ABGR: binary.LittleEndian.Uint32(b[o+12:]),
		}
	}
	return verts
}
