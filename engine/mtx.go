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

import "github.com/chewxy/math32"

// Vec3 is a three component vector.
type Vec3 struct {
	X, Y, Z float32
}

func (a Vec3) sub(b Vec3) Vec3 {
	return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

func (a Vec3) dot(b Vec3) float32 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

func (a Vec3) cross(b Vec3) Vec3 {
	return Vec3{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

func (a Vec3) normalize() Vec3 {
	l := math32.Sqrt(a.dot(a))
	if l == 0 {
		return a
	}
	return Vec3{a.X / l, a.Y / l, a.Z / l}
}

// Matrices are column major, left handed and transform row vectors, ie. a
// point is transformed by p * view * proj.

// Identity returns the identity matrix.
func Identity() [16]float32 {
	return [16]float32{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// LookAt returns a view matrix for a camera at eye looking at at, with the Y
// axis up.
func LookAt(eye Vec3, at Vec3) [16]float32 {
	return LookAtUp(eye, at, Vec3{0, 1, 0})
}

// LookAtUp is like LookAt() but with an explicit up vector.
func LookAtUp(eye Vec3, at Vec3, up Vec3) [16]float32 {
	view := at.sub(eye).normalize()

	right := Vec3{1, 0, 0}
	if uxv := up.cross(view); uxv.dot(uxv) != 0 {
		right = uxv.normalize()
	}
	up = view.cross(right)

	return [16]float32{
		right.X, up.X, view.X, 0,
		right.Y, up.Y, view.Y, 0,
		right.Z, up.Z, view.Z, 0,
		-right.dot(eye), -up.dot(eye), -view.dot(eye), 1,
	}
}

// Proj returns a perspective projection matrix. The field of view is in
// degrees. If homogeneousDepth is true the depth range is -1 to 1, otherwise
// 0 to 1. See Caps.HomogeneousDepth.
func Proj(fovy float32, aspect float32, near float32, far float32, homogeneousDepth bool) [16]float32 {
	height := 1.0 / math32.Tan(fovy*math32.Pi/180.0*0.5)
	width := height / aspect
	diff := far - near

	var aa, bb float32
	if homogeneousDepth {
		aa = (far + near) / diff
		bb = 2.0 * far * near / diff
	} else {
		aa = far / diff
		bb = near * aa
	}

	var m [16]float32
	m[0] = width
	m[5] = height
	m[10] = aa
	m[11] = 1.0
	m[14] = -bb
	return m
}

// Ortho returns an orthographic projection matrix.
func Ortho(left, right, bottom, top, near, far float32, homogeneousDepth bool) [16]float32 {
	var cc, ff float32
	if homogeneousDepth {
		cc = 2.0 / (far - near)
		ff = (near + far) / (near - far)
	} else {
		cc = 1.0 / (far - near)
		ff = near / (near - far)
	}

	var m [16]float32
	m[0] = 2.0 / (right - left)
	m[5] = 2.0 / (top - bottom)
	m[10] = cc
	m[12] = (left + right) / (left - right)
	m[13] = (top + bottom) / (bottom - top)
	m[14] = ff
	m[15] = 1.0
	return m
}

// Mul returns the product a * b. Transforming by the result is the same as
// transforming by a and then by b.
func Mul(a [16]float32, b [16]float32) [16]float32 {
	var m [16]float32
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			var s float32
			for k := 0; k < 4; k++ {
				s += a[i*4+k] * b[k*4+j]
			}
			m[i*4+j] = s
		}
	}
	return m
}

// Transform returns the point p transformed by m and divided by w. The
// second return value is w.
func Transform(p Vec3, m [16]float32) (Vec3, float32) {
	x := p.X*m[0] + p.Y*m[4] + p.Z*m[8] + m[12]
	y := p.X*m[1] + p.Y*m[5] + p.Z*m[9] + m[13]
	z := p.X*m[2] + p.Y*m[6] + p.Z*m[10] + m[14]
	w := p.X*m[3] + p.Y*m[7] + p.Z*m[11] + m[15]
	if w == 0 {
		return Vec3{x, y, z}, w
	}
	return Vec3{x / w, y / w, z / w}, w
}
