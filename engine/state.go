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

import "strings"

// State is the render state of a draw. The zero value is not a useful state;
// a typical value is StateDefault.
type State uint64

// List of State flags.
const (
	StateWriteR State = 1 << iota
	StateWriteG
	StateWriteB
	StateWriteA
	StateWriteZ
	StateDepthTestLess
	StateCullCW
	StateCullCCW
	StateBlendAlpha
	StateMSAA
	StatePtLines
)

// Combined State flags.
const (
	StateWriteRGB = StateWriteR | StateWriteG | StateWriteB
	StateDefault  = StateWriteRGB | StateWriteA | StateWriteZ | StateDepthTestLess | StateCullCW | StateMSAA
)

var stateNames = []struct {
	flag State
	name string
}{
	{StateWriteR, "R"},
	{StateWriteG, "G"},
	{StateWriteB, "B"},
	{StateWriteA, "A"},
	{StateWriteZ, "Z"},
	{StateDepthTestLess, "depth<"},
	{StateCullCW, "cullCW"},
	{StateCullCCW, "cullCCW"},
	{StateBlendAlpha, "blend"},
	{StateMSAA, "msaa"},
	{StatePtLines, "lines"},
}

func (s State) String() string {
	var b strings.Builder
	for _, n := range stateNames {
		if s&n.flag == n.flag {
			if b.Len() > 0 {
				b.WriteString("|")
			}
			b.WriteString(n.name)
		}
	}
	if b.Len() == 0 {
		return "none"
	}
	return b.String()
}

// Clear flags for SetViewClear().
type Clear uint16

// List of Clear flags.
const (
	ClearNone  Clear = 0
	ClearColor Clear = 1 << iota
	ClearDepth
	ClearStencil
)

// Reset flags for Init() and Reset().
type Reset uint32

// List of Reset flags.
const (
	ResetNone  Reset = 0
	ResetVSync Reset = 1 << iota
	ResetMSAAX4
)

// Debug flags for SetDebug().
type Debug uint32

// List of Debug flags.
const (
	DebugNone      Debug = 0
	DebugWireframe Debug = 1 << iota
	DebugText
	DebugStats
)
