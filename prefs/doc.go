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

// Package prefs facilitates the storage of preferential values in the
// program. The Bool, String, Int, Float and Duration types are safe to read
// from one goroutine while being set in another.
//
// Preference values are associated with a key and added to a Disk instance,
// which is then used to load and save the values to a file:
//
//	dsk, err := prefs.NewDisk(pth)
//	var makeRef prefs.Bool
//	err = dsk.Add("demo.makeref", &makeRef)
//	err = dsk.Load()
//
// Values in the preferences file that have not been added to the Disk
// instance are preserved when the file is saved. This means that more than
// one Disk instance can share the same preferences file.
//
// Values can be overridden for the duration of a program run by the command
// line stack. See PushCommandLineStack() for details.
package prefs
