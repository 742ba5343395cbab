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

package prefs

// keys that were once used but are no longer. they are dropped from the
// preferences file the next time it is saved.
var defunct = []string{
	"demo.singlethread",
	"race.spin",
}

func isDefunct(key string) bool {
	for _, d := range defunct {
		if d == key {
			return true
		}
	}
	return false
}
