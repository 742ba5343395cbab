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

// Indices is the static index sequence for the grid. Index i refers to vertex
// i, so the grid is drawn as a plain triangle list.
type Indices [NumVerts]uint16

// NewIndices returns the index sequence 0 to NumVerts-1.
func NewIndices() *Indices {
	var idx Indices
	for i := range idx {
		idx[i] = uint16(i)
	}
	return &idx
}

// Bytes returns the index storage as a slice of bytes. The slice aliases the
// storage.
func (idx *Indices) Bytes() []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(&idx[0])), len(idx)*2)
}
