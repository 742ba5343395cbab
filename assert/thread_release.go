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

//go:build !assertions

package assert

// Thread remembers the goroutine that is allowed to call a group of
// functions. Without the "assertions" build tag the type does nothing.
type Thread struct{}

// NewThread is the preferred method of initialisation for the Thread type.
func NewThread(_ string) *Thread {
	return &Thread{}
}

// Claim does nothing without the "assertions" build tag.
func (th *Thread) Claim() {}

// Check does nothing without the "assertions" build tag.
func (th *Thread) Check() {}
