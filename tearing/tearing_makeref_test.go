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

//go:build !race

package tearing_test

import (
	"testing"
	"time"

	"github.com/jetsetilly/makeref/buffers"
	"github.com/jetsetilly/makeref/engine/capture"
	"github.com/jetsetilly/makeref/geometry"
	"github.com/jetsetilly/makeref/tearing"
	"github.com/jetsetilly/makeref/test"
)

// these tests read memory that is being written by another goroutine. that is
// the point of the tests but the race detector would report it

func TestMakeRefTearsInLockstep(t *testing.T) {
	const frames = 6
	ls := newLockstep(frames)

	var mixed int
	rep, err := tearing.Run(tearing.Config{
		Frames:   frames,
		Transfer: buffers.TransferRef,
		Pause:    ls.pause,
		Before:   ls.before,
		Observe: func(s capture.Snapshot, ins geometry.Inspection) {
			if ins.FirstMismatch == stopRow*geometry.TrisAcross {
				mixed++
			}
			ls.observe(s, ins)
		},
	})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, rep.Frames, frames)

	// every frame except the last is read while the following frame is
	// being generated
	test.ExpectEquality(t, rep.Torn, frames-1)
	test.ExpectEquality(t, rep.Consistent, 1)
	test.ExpectEquality(t, rep.FirstTorn, 1)
	test.ExpectEquality(t, mixed, frames-1)
}

func TestMakeRefTearsUnderPressure(t *testing.T) {
	rep, err := tearing.Run(tearing.Config{
		Frames:   10,
		Transfer: buffers.TransferRef,
		Pause:    geometry.CubicPause(time.Nanosecond),
		Latency:  time.Millisecond,
	})
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, rep.Torn > 0, rep.String())
}

func TestCompare(t *testing.T) {
	reports, err := tearing.Compare(tearing.Config{
		Frames:  8,
		Pause:   geometry.CubicPause(time.Nanosecond),
		Latency: time.Millisecond,
	})
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(reports), 2)
	test.ExpectEquality(t, reports[0].Transfer, buffers.TransferCopy)
	test.ExpectEquality(t, reports[0].Torn, 0)
	test.ExpectEquality(t, reports[1].Transfer, buffers.TransferRef)
	test.ExpectSuccess(t, reports[1].Torn > 0, reports[1].String())
}
