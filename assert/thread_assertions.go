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

//go:build assertions

package assert

import (
	"fmt"
	"sync/atomic"
)

// Thread remembers the goroutine that is allowed to call a group of
// functions. The engine API for example, must only be called from the
// goroutine that initialised it.
type Thread struct {
	name string
	id   atomic.Uint64
}

// NewThread is the preferred method of initialisation for the Thread type.
func NewThread(name string) *Thread {
	return &Thread{name: name}
}

// Claim the thread for the calling goroutine.
func (th *Thread) Claim() {
	th.id.Store(GetGoRoutineID())
}

// Check panics if the calling goroutine is not the goroutine that most
// recently called Claim(). Unclaimed threads are never checked.
func (th *Thread) Check() {
	id := th.id.Load()
	if id == 0 {
		return
	}
	if g := GetGoRoutineID(); g != id {
		panic(fmt.Sprintf("%s: called from goroutine %d (expected %d)", th.name, g, id))
	}
}
