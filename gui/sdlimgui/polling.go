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

package sdlimgui

import (
	"github.com/veandco/go-sdl2/sdl"
)

// time period in milliseconds to wait for an event when there is no render
// thread work to wait on
const idleSleepPeriod = 50

// wait for the first SDL event. if block is false the event queue is only
// polled.
func (img *SdlImgui) wait(block bool) sdl.Event {
	if block {
		return sdl.WaitEventTimeout(idleSleepPeriod)
	}
	return sdl.PollEvent()
}
