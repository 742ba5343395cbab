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

import (
	"runtime"
	"time"
)

// Pause is called by the Generator after every vertex write. The argument is
// the row being written.
type Pause func(row int)

// NoPause does not wait.
func NoPause(_ int) {}

// CubicPause returns a Pause that waits for 20 * row³ units. Later rows are
// written more slowly than earlier rows. A unit of zero is the same as
// NoPause.
func CubicPause(unit time.Duration) Pause {
	if unit <= 0 {
		return NoPause
	}
	return func(row int) {
		Wait(time.Duration(20*row*row*row) * unit)
	}
}

// Wait for the duration d. Short durations are spun out because the
// resolution of time.Sleep() is too coarse on some platforms.
func Wait(d time.Duration) {
	if d <= 0 {
		return
	}
	if d >= time.Millisecond {
		time.Sleep(d)
		return
	}
	deadline := time.Now().Add(d)
	for time.Now().Before(deadline) {
		runtime.Gosched()
	}
}
