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

import (
	"fmt"
	"strings"
)

// Attrib is a vertex attribute.
type Attrib int

// List of valid Attrib values.
const (
	AttribPosition Attrib = iota
	AttribColor0
	AttribTexCoord0
	attribCount
)

func (a Attrib) String() string {
	switch a {
	case AttribPosition:
		return "a_position"
	case AttribColor0:
		return "a_color0"
	case AttribTexCoord0:
		return "a_texcoord0"
	}
	return "unknown attrib"
}

// AttribType is the storage type of a vertex attribute.
type AttribType int

// List of valid AttribType values.
const (
	AttribFloat AttribType = iota
	AttribUint8
)

func (t AttribType) size() int {
	if t == AttribUint8 {
		return 1
	}
	return 4
}

// AttribDecl describes a single attribute in a Layout.
type AttribDecl struct {
	Num        int
	Type       AttribType
	Normalized bool
	Offset     int
}

// Layout describes the memory layout of a single vertex. Layouts are built
// with Begin(), Add() and End():
//
//	var layout engine.Layout
//	layout.Begin().
//		Add(engine.AttribPosition, 3, engine.AttribFloat, false).
//		Add(engine.AttribColor0, 4, engine.AttribUint8, true).
//		End()
type Layout struct {
	attribs [attribCount]AttribDecl
	used    [attribCount]bool
	stride  int
	ended   bool
}

// Begin a new layout declaration. Any previous declaration is forgotten.
func (l *Layout) Begin() *Layout {
	*l = Layout{}
	return l
}

// Add an attribute to the layout. Attributes are laid out in the order they
// are added.
func (l *Layout) Add(attrib Attrib, num int, typ AttribType, normalized bool) *Layout {
	l.attribs[attrib] = AttribDecl{
		Num:        num,
		Type:       typ,
		Normalized: normalized,
		Offset:     l.stride,
	}
	l.used[attrib] = true
	l.stride += num * typ.size()
	return l
}

// End the layout declaration.
func (l *Layout) End() {
	l.ended = true
}

// IsValid returns true if the declaration has been ended and has at least one
// attribute.
func (l *Layout) IsValid() bool {
	return l.ended && l.stride > 0
}

// Stride returns the size in bytes of a single vertex.
func (l *Layout) Stride() int {
	return l.stride
}

// Has returns true if the attribute is part of the layout.
func (l *Layout) Has(attrib Attrib) bool {
	return l.used[attrib]
}

// Decl returns the declaration of an attribute. The second return value is
// false if the attribute is not part of the layout.
func (l *Layout) Decl(attrib Attrib) (AttribDecl, bool) {
	return l.attribs[attrib], l.used[attrib]
}

func (l *Layout) String() string {
	s := strings.Builder{}
	for a := Attrib(0); a < attribCount; a++ {
		if !l.used[a] {
			continue
		}
		d := l.attribs[a]
		fmt.Fprintf(&s, "%s[%d]@%d ", a, d.Num, d.Offset)
	}
	fmt.Fprintf(&s, "stride=%d", l.stride)
	return s.String()
}
