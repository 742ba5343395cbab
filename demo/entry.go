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

package demo

import "fmt"

// Entry describes the demonstration.
type Entry struct {
	Name        string
	Description string
	URL         string
}

func (e Entry) String() string {
	return fmt.Sprintf("%s: %s", e.Name, e.Description)
}

// Info about this demonstration.
var Info = Entry{
	Name:        "x01-threads-vs-makeref",
	Description: "Demonstrate race condition with shared vertex buffer between main and rendering thread.",
	URL:         "http://zombo.com",
}
