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

// Package demo is the threads vs makeRef demonstration. Every frame the
// triangle grid is regenerated and uploaded to a dynamic vertex buffer,
// either by reference or by copy. When uploaded by reference the render
// thread reads the grid while the next frame is being generated, so the grid
// drawn is often a mix of two frames.
//
// The demonstration does not own the window or the render thread. Input is
// provided by an implementation of the Events interface and the settings
// window is drawn by an implementation of the Overlay interface.
package demo
