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

package prefs_test

import (
	"path/filepath"
	"testing"

	"github.com/jetsetilly/makeref/prefs"
	"github.com/jetsetilly/makeref/test"
)

func TestCommandLineStack(t *testing.T) {
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)

	prefs.PushCommandLineStack("foo::bar; baz::qux")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 1)

	ok, v := prefs.GetCommandLinePref("foo")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, "bar")

	// values are consumed on retrieval
	ok, _ = prefs.GetCommandLinePref("foo")
	test.ExpectFailure(t, ok)

	prefs.PushCommandLineStack("foo::inner")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 2)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "foo::inner")

	test.ExpectEquality(t, prefs.PopCommandLineStack(), "baz::qux")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")
}

func TestCommandLineOverridesDisk(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "makeref_prefs_test")

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var makeRef prefs.Bool
	test.ExpectSuccess(t, dsk.Add("demo.makeref", &makeRef))
	test.ExpectSuccess(t, makeRef.Set(true))
	test.DemandSuccess(t, dsk.Save())

	prefs.PushCommandLineStack("demo.makeref::false")
	defer prefs.PopCommandLineStack()

	test.DemandSuccess(t, dsk.Load())
	test.ExpectEquality(t, makeRef.Get().(bool), false)
}
