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

import "unsafe"

// Size of the triangle grid.
const (
	TrisAcross   = 15
	TrisDown     = 30
	NumTriangles = TrisAcross * TrisDown
	NumVerts     = NumTriangles * 3
)

// Grid is the host side vertex storage. The storage is written in place by
// Generator.Fill() and must not be copied if a renderer has been given a
// reference to it.
type Grid struct {
	Vertices [NumVerts]Vertex
}

// Bytes returns the vertex storage as a slice of bytes. The slice aliases the
// storage; no copy is made.
func (g *Grid) Bytes() []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(&g.Vertices[0])), NumVerts*VertexSize)
}

// Triangle returns the three vertices of the triangle at row and column.
func (g *Grid) Triangle(row int, col int) [3]Vertex {
	i := (row*TrisAcross + col) * 3
	return [3]Vertex{g.Vertices[i], g.Vertices[i+1], g.Vertices[i+2]}
}
