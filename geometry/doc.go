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

// Package geometry generates the triangle grid that is uploaded to the
// renderer every frame.
//
// The grid is TrisAcross triangles wide and TrisDown triangles high. Every
// call to Generator.Fill() writes the whole grid, alternating between an
// unshifted layout (starting at x = -18) and a shifted layout (starting at
// x = +2). The Generator can be slowed down with a Pause function, which is
// called after every vertex write. A slow generator leaves the storage in a
// partially written state for longer, which is what makes a renderer reading
// the same storage likely to observe a mix of the two layouts.
//
// Inspect() classifies a snapshot of vertices as read by a renderer. A
// snapshot that mixes the two layouts, or that contains a triangle that
// matches neither layout, is torn.
package geometry
