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

// Memory is data passed to the engine. See MakeRef() and Copy().
type Memory struct {
	data    []byte
	ref     bool
	release func()
}

// MakeRef returns Memory that refers to b without copying it. The data is
// read by the render thread when the command that uses it is executed, which
// will be after the next call to Frame(). The contents of b must not change
// until then.
func MakeRef(b []byte) *Memory {
	return &Memory{data: b, ref: true}
}

// MakeRefRelease is like MakeRef() but the release function is called on the
// render thread once the data is no longer needed.
func MakeRefRelease(b []byte, release func()) *Memory {
	return &Memory{data: b, ref: true, release: release}
}

// Copy returns Memory containing a copy of b. The caller is free to change b
// as soon as Copy() returns.
func Copy(b []byte) *Memory {
	c := make([]byte, len(b))
	copy(c, b)
	return &Memory{data: c}
}

// Alloc returns Memory of the given size owned by the engine.
func Alloc(size int) *Memory {
	return &Memory{data: make([]byte, size)}
}

// Data returns the bytes of the memory. For memory created with MakeRef(),
// this is the caller's data.
func (m *Memory) Data() []byte {
	return m.data
}

// Size returns the length of the data in bytes.
func (m *Memory) Size() int {
	return len(m.data)
}

// IsRef returns true if the memory was created with MakeRef() or
// MakeRefRelease().
func (m *Memory) IsRef() bool {
	return m.ref
}

// done is called on the render thread when the memory has been consumed
func (m *Memory) done() {
	if m.release != nil {
		m.release()
		m.release = nil
	}
}
