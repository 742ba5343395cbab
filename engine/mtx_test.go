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

package engine_test

import (
	"testing"

	"github.com/jetsetilly/makeref/engine"
	"github.com/jetsetilly/makeref/test"
)

func TestLookAt(t *testing.T) {
	eye := engine.Vec3{X: 0, Y: 0, Z: -35}
	view := engine.LookAt(eye, engine.Vec3{})

	// camera looks down the positive Z axis so the origin is 35 units ahead
	p, w := engine.Transform(engine.Vec3{}, view)
	test.ExpectApproximate(t, p.X, 0, 0.0001)
	test.ExpectApproximate(t, p.Y, 0, 0.0001)
	test.ExpectApproximate(t, p.Z, 35, 0.0001)
	test.ExpectApproximate(t, w, 1, 0.0001)

	// the x and y axes are unchanged
	p, _ = engine.Transform(engine.Vec3{X: 1, Y: 2, Z: 0}, view)
	test.ExpectApproximate(t, p.X, 1, 0.0001)
	test.ExpectApproximate(t, p.Y, 2, 0.0001)
}

func TestProj(t *testing.T) {
	near := float32(0.1)
	far := float32(100.0)

	for _, homogeneous := range []bool{false, true} {
		proj := engine.Proj(60, 1.0, near, far, homogeneous)
		test.ExpectEquality(t, proj[11], 1.0)

		pn, w := engine.Transform(engine.Vec3{Z: near}, proj)
		test.ExpectApproximate(t, w, near, 0.0001)
		pf, _ := engine.Transform(engine.Vec3{Z: far}, proj)
		test.ExpectApproximate(t, pf.Z, 1.0, 0.0001, homogeneous)

		if homogeneous {
			test.ExpectApproximate(t, pn.Z, -1.0, 0.0001)
		} else {
			test.ExpectApproximate(t, pn.Z, 0.0, 0.0001)
		}
	}

	// a 60 degree field of view puts a point at 30 degrees on the edge of the
	// view
	proj := engine.Proj(60, 2.0, near, far, false)
	p, _ := engine.Transform(engine.Vec3{Y: 0.57735, Z: 1}, proj)
	test.ExpectApproximate(t, p.Y, 1.0, 0.001)
	p, _ = engine.Transform(engine.Vec3{X: 2 * 0.57735, Z: 1}, proj)
	test.ExpectApproximate(t, p.X, 1.0, 0.001)
}

func TestMul(t *testing.T) {
	id := engine.Identity()
	view := engine.LookAt(engine.Vec3{Z: -35}, engine.Vec3{})
	test.ExpectEquality(t, engine.Mul(id, view), view)
	test.ExpectEquality(t, engine.Mul(view, id), view)

	// transforming by the product is the same as transforming twice
	proj := engine.Proj(60, 1.5, 0.1, 100, true)
	mvp := engine.Mul(view, proj)
	pt := engine.Vec3{X: 3, Y: -4, Z: 2}

	a, _ := engine.Transform(pt, mvp)
	v, _ := engine.Transform(pt, view)
	b, _ := engine.Transform(v, proj)
	test.ExpectApproximate(t, a.X, b.X, 0.0001)
	test.ExpectApproximate(t, a.Y, b.Y, 0.0001)
	test.ExpectApproximate(t, a.Z, b.Z, 0.0001)
}

func TestOrtho(t *testing.T) {
	m := engine.Ortho(0, 640, 480, 0, 0, 1000, true)

	p, _ := engine.Transform(engine.Vec3{X: 0, Y: 0}, m)
	test.ExpectApproximate(t, p.X, -1, 0.0001)
	test.ExpectApproximate(t, p.Y, 1, 0.0001)

	p, _ = engine.Transform(engine.Vec3{X: 640, Y: 480}, m)
	test.ExpectApproximate(t, p.X, 1, 0.0001)
	test.ExpectApproximate(t, p.Y, -1, 0.0001)
}
