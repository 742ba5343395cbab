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

// Package statsview serves live runtime statistics while makeref runs. It is
// useful for watching goroutine counts and GC pauses while the render thread
// and the frame driver race each other.
//
// The package is only active when the program is built with the statsview
// build tag:
//
//	go build -tags=statsview .
//
// Without the tag, Available() returns false and Launch() does nothing.
// When active the charts are served at:
//
//	localhost:12600/debug/statsview
package statsview
