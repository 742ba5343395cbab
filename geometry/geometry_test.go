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

package geometry_test

import (
	"testing"
	"time"

	"github.com/jetsetilly/makeref/geometry"
	"github.com/jetsetilly/makeref/test"
)

func TestSizes(t *testing.T) {
	test.ExpectEquality(t, geometry.VertexSize, 16)
	test.ExpectEquality(t, geometry.NumVerts, 1350)
	test.ExpectEquality(t, geometry.NumVerts, geometry.TrisAcross*geometry.TrisDown*3)

	var g geometry.Grid
	test.ExpectEquality(t, len(g.Bytes()), geometry.NumVerts*geometry.VertexSize)

	idx := geometry.NewIndices()
	test.ExpectEquality(t, len(idx), geometry.NumVerts)
	test.ExpectEquality(t, len(idx.Bytes()), geometry.NumVerts*2)
}

func TestIndices(t *testing.T) {
	idx := geometry.NewIndices()
	test.ExpectEquality(t, idx[0], 0)
	for i := 1; i < len(idx); i++ {
		if !test.ExpectEquality(t, idx[i] > idx[i-1], true, i) {
			break
		}
	}
	test.ExpectEquality(t, int(idx[len(idx)-1]), geometry.NumVerts-1)
}

func TestAlternatingLayout(t *testing.T) {
	var g geometry.Grid
	gen := geometry.NewGenerator(nil)

	for i := 0; i < 6; i++ {
		gen.Fill(&g)

		expectedX := float32(-18.0)
		if i%2 == 1 {
			expectedX = 2.0
		}
		test.ExpectEquality(t, g.Vertices[0].X, expectedX, i)
		test.ExpectEquality(t, g.Vertices[0].Y, float32(-17.0), i)
		test.ExpectEquality(t, gen.Shifted(), i%2 == 1, i)

		ins := geometry.Inspect(g.Vertices[:])
		test.ExpectFailure(t, ins.Torn(), i)
		test.ExpectEquality(t, ins.Corrupt, 0, i)
		test.ExpectEquality(t, ins.FirstMismatch, -1, i)
		if gen.Shifted() {
			test.ExpectEquality(t, ins.Shifted, geometry.NumTriangles, i)
			test.ExpectEquality(t, ins.Layout(), geometry.Shifted, i)
		} else {
			test.ExpectEquality(t, ins.Unshifted, geometry.NumTriangles, i)
			test.ExpectEquality(t, ins.Layout(), geometry.Unshifted, i)
		}
	}

	test.ExpectEquality(t, gen.Fills(), 6)
}

func TestTriangleShape(t *testing.T) {
	var g geometry.Grid
	gen := geometry.NewGenerator(geometry.NoPause)
	gen.Fill(&g)

	tri := g.Triangle(2, 3)
	x := float32(-18.0) + 3*geometry.CellWidth
	y := float32(-17.0) + 2*geometry.CellHeight
	test.ExpectApproximate(t, tri[0].X, x, 0.0001)
	test.ExpectApproximate(t, tri[0].Y, y, 0.0001)
	test.ExpectApproximate(t, tri[1].X, x+1.0, 0.0001)
	test.ExpectApproximate(t, tri[1].Y, y, 0.0001)
	test.ExpectApproximate(t, tri[2].X, x, 0.0001)
	test.ExpectApproximate(t, tri[2].Y, y+1.0, 0.0001)

	for _, v := range tri {
		test.ExpectEquality(t, v.Z, 0)
		test.ExpectEquality(t, v.ABGR, geometry.Colour)
	}
}

func TestPauseCalls(t *testing.T) {
	var g geometry.Grid
	rows := make(map[int]int)
	gen := geometry.NewGenerator(func(row int) {
		rows[row]++
	})
	gen.Fill(&g)

	test.ExpectEquality(t, len(rows), geometry.TrisDown)
	for r := 0; r < geometry.TrisDown; r++ {
		test.ExpectEquality(t, rows[r], geometry.TrisAcross*3, r)
	}
}

func TestTornSnapshot(t *testing.T) {
	var g geometry.Grid
	gen := geometry.NewGenerator(nil)
	gen.Fill(&g)

	before := g
	gen.Fill(&g)

	// combine the top half of the new layout with the bottom half of the old
	mixed := g
	half := geometry.NumVerts / 2
	copy(mixed.Vertices[half:], before.Vertices[half:])

	ins := geometry.Inspect(mixed.Vertices[:])
	test.ExpectSuccess(t, ins.Torn())
	test.ExpectEquality(t, ins.Layout(), geometry.Corrupt)
	test.ExpectEquality(t, ins.Shifted, geometry.NumTriangles/2)
	test.ExpectEquality(t, ins.Unshifted, geometry.NumTriangles/2)
	test.ExpectEquality(t, ins.FirstMismatch, geometry.NumTriangles/2)

	// a single bad vertex is enough to tear the snapshot
	corrupt := before
	corrupt.Vertices[10].X = 100
	ins = geometry.Inspect(corrupt.Vertices[:])
	test.ExpectSuccess(t, ins.Torn())
	test.ExpectEquality(t, ins.Corrupt, 1)

	// empty storage is entirely corrupt
	var empty geometry.Grid
	ins = geometry.Inspect(empty.Vertices[:])
	test.ExpectEquality(t, ins.Corrupt, geometry.NumTriangles)

	// short snapshots count the missing triangles as corrupt
	ins = geometry.Inspect(before.Vertices[:30])
	test.ExpectEquality(t, ins.Unshifted, 10)
	test.ExpectEquality(t, ins.Corrupt, geometry.NumTriangles-10)
}

func TestFromBytes(t *testing.T) {
	var g geometry.Grid
	gen := geometry.NewGenerator(nil)
	gen.Fill(&g)

	b := make([]byte, len(g.Bytes()))
	copy(b, g.Bytes())

	verts := geometry.FromBytes(b)
	test.ExpectEquality(t, len(verts), geometry.NumVerts)
	test.ExpectEquality(t, verts[0], g.Vertices[0])
	test.ExpectEquality(t, verts[geometry.NumVerts-1], g.Vertices[geometry.NumVerts-1])
	test.ExpectFailure(t, geometry.Inspect(verts).Torn())
}

func TestBytesAliasStorage(t *testing.T) {
	var g geometry.Grid
	b := g.Bytes()

	g.Vertices[0].ABGR = 0x11223344
	verts := geometry.FromBytes(b[:geometry.VertexSize])
	test.ExpectEquality(t, verts[0].ABGR, 0x11223344)
}

func TestCubicPause(t *testing.T) {
	p := geometry.CubicPause(time.Microsecond)

	// row zero never waits
	start := time.Now()
	p(0)
	test.ExpectSuccess(t, time.Since(start) < time.Millisecond)

	// 20 * 3³ = 540µs
	start = time.Now()
	p(3)
	test.ExpectSuccess(t, time.Since(start) >= 540*time.Microsecond)

	start = time.Now()
	geometry.Wait(2 * time.Millisecond)
	test.ExpectSuccess(t, time.Since(start) >= 2*time.Millisecond)
}
