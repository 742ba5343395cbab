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

// Package paths should be used whenever a request to the filesystem is made
// for a resource belonging to the program, such as the preferences file. The
// functions herein make sure that the correct path is used for the resource.
//
// When compiled with the "release" build tag the resources are placed in the
// user's configuration directory, as defined by os.UserConfigDir(). Otherwise
// the resources are placed in a directory in the current working directory.
package paths
