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

// Cell dimensions and grid origin.
const (
	CellWidth  float32 = 1.2
	CellHeight float32 = 1.2

	StartX float32 = -18.0
	StartY float32 = -17.0

	// horizontal distance between the unshifted and shifted layouts
	Shift float32 = 20.0
)

// Generator writes the triangle grid. It keeps no lock and makes no attempt
// to coordinate with readers of the grid.
type Generator struct {
	pause Pause
	shift bool
	fills int
}

// NewGenerator is the preferred method of initialisation for the Generator
// type. A nil pause is the same as NoPause.
func NewGenerator(pause Pause) *Generator {
	gen := &Generator{
		shift: true,
	}
	gen.SetPause(pause)
	return gen
}

// SetPause changes the pause function. It must be called from the same
// goroutine that calls Fill().
func (gen *Generator) SetPause(pause Pause) {
	if pause == nil {
		pause = NoPause
	}
	gen.pause = pause
}

// Shifted returns true if the most recent call to Fill() wrote the shifted
// layout.
func (gen *Generator) Shifted() bool {
	return gen.shift
}

// Fills returns the number of calls to Fill().
func (gen *Generator) Fills() int {
	return gen.fills
}

// Fill writes every triangle of the grid, alternating layout on every call.
// The first call writes the unshifted layout.
func (gen *Generator) Fill(g *Grid) {
	gen.shift = !gen.shift
	gen.fills++

	i := 0
	for r := 0; r < TrisDown; r++ {
		for c := 0; c < TrisAcross; c++ {
			x, y := corner(r, c, gen.shift)

			g.Vertices[i] = Vertex{X: x, Y: y, ABGR: Colour}
			gen.pause(r)
			g.Vertices[i+1] = Vertex{X: x + 1.0, Y: y, ABGR: Colour}
			gen.pause(r)
			g.Vertices[i+2] = Vertex{X: x, Y: y + 1.0, ABGR: Colour}
			gen.pause(r)

			i += 3
		}
	}
}

// corner returns the position of the first vertex of a triangle
func corner(row int, col int, shift bool) (float32, float32) {
	x := StartX + float32(col)*CellWidth
	if shift {
		x += Shift
	}
	return x, StartY + float32(row)*CellHeight
}
