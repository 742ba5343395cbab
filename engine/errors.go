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

// Sentinal error patterns.
const (
	InitError    = "engine: init: %v"
	NoBackend    = "engine: no backend"
	NoRenderHost = "engine: external render thread requires a render host"
	InitTimeout  = "engine: render thread did not initialise the backend within %v"
	OutOfHandles = "engine: out of %s handles"
)

const logTag = "engine"
