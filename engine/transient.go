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

// TransientVertexBuffer is vertex data that is valid for one frame only.
type TransientVertexBuffer struct {
	Data   []byte
	Layout Layout
}

// NumVertices returns the number of vertices that fit in the buffer.
func (tvb *TransientVertexBuffer) NumVertices() int {
	if tvb.Layout.Stride() == 0 {
		return 0
	}
	return len(tvb.Data) / tvb.Layout.Stride()
}

// TransientIndexBuffer is 16bit index data that is valid for one frame only.
type TransientIndexBuffer struct {
	Data []byte
}

// NumIndices returns the number of indices that fit in the buffer.
func (tib *TransientIndexBuffer) NumIndices() int {
	return len(tib.Data) / 2
}
