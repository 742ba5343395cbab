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

import "fmt"

// Layout of a single triangle in a snapshot.
type Layout int

// List of valid Layout values.
const (
	Corrupt Layout = iota
	Unshifted
	Shifted
)

func (l Layout) String() string {
	switch l {
	case Unshifted:
		return "unshifted"
	case Shifted:
		return "shifted"
	}
	return "corrupt"
}

// Inspection is the result of Inspect().
type Inspection struct {
	Unshifted int
	Shifted   int
	Corrupt   int

	// index of the first triangle that does not match the layout of
	// triangle zero. -1 if every triangle matches
	FirstMismatch int
}

func (ins Inspection) String() string {
	return fmt.Sprintf("unshifted: %d, shifted: %d, corrupt: %d", ins.Unshifted, ins.Shifted, ins.Corrupt)
}

// Torn returns true if the snapshot mixes layouts or contains a corrupt
// triangle.
func (ins Inspection) Torn() bool {
	return ins.Corrupt > 0 || (ins.Unshifted > 0 && ins.Shifted > 0)
}

// Layout returns the layout of the whole snapshot. Torn snapshots are
// reported as Corrupt.
func (ins Inspection) Layout() Layout {
	if ins.Torn() {
		return Corrupt
	}
	if ins.Shifted > 0 {
		return Shifted
	}
	if ins.Unshifted > 0 {
		return Unshifted
	}
	return Corrupt
}

// Inspect classifies every triangle in verts. The number of vertices should
// be NumVerts; missing triangles are counted as corrupt.
func Inspect(verts []Vertex) Inspection {
	ins := Inspection{FirstMismatch: -1}

	var first Layout
	for t := 0; t < NumTriangles; t++ {
		l := Corrupt
		if (t+1)*3 <= len(verts) {
			l = classify(t/TrisAcross, t%TrisAcross, verts[t*3:t*3+3])
		}

		switch l {
		case Unshifted:
			ins.Unshifted++
		case Shifted:
			ins.Shifted++
		default:
			ins.Corrupt++
		}

		if t == 0 {
			first = l
		} else if l != first && ins.FirstMismatch == -1 {
			ins.FirstMismatch = t
		}
	}

	return ins
}

func classify(row int, col int, tri []Vertex) Layout {
	for _, l := range []Layout{Unshifted, Shifted} {
		x, y := corner(row, col, l == Shifted)
		if tri[0] == (Vertex{X: x, Y: y, ABGR: Colour}) &&
			tri[1] == (Vertex{X: x + 1.0, Y: y, ABGR: Colour}) &&
			tri[2] == (Vertex{X: x, Y: y + 1.0, ABGR: Colour}) {
			return l
		}
	}
	return Corrupt
}
