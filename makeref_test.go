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

package main

import (
	"testing"

	"github.com/jetsetilly/makeref/demo"
	"github.com/jetsetilly/makeref/test"
)

type forever struct{}

func (forever) ProcessEvents() (demo.Input, bool) {
	return demo.Input{Width: 10, Height: 10}, true
}

func TestFrameLimit(t *testing.T) {
	fl := &frameLimit{Events: forever{}, limit: 3}
	for i := 0; i < 3; i++ {
		in, ok := fl.ProcessEvents()
		test.ExpectSuccess(t, ok)
		test.ExpectEquality(t, in.Width, 10)
	}
	_, ok := fl.ProcessEvents()
	test.ExpectFailure(t, ok)
}

func TestNoFrameLimit(t *testing.T) {
	fl := &frameLimit{Events: forever{}}
	for i := 0; i < 100; i++ {
		_, ok := fl.ProcessEvents()
		test.DemandSuccess(t, ok)
	}
}
