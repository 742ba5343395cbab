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

package performance_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jetsetilly/makeref/curated"
	"github.com/jetsetilly/makeref/performance"
	"github.com/jetsetilly/makeref/test"
)

func TestParseProfileString(t *testing.T) {
	p, err := performance.ParseProfileString("")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileNone)

	p, err = performance.ParseProfileString("cpu")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileCPU)

	p, err = performance.ParseProfileString("CPU, mem")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileAll)

	_, err = performance.ParseProfileString("trace")
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, performance.ProfileError))
}

func TestRunProfiler(t *testing.T) {
	hdr := filepath.Join(t.TempDir(), "race")

	var ran bool
	err := performance.RunProfiler(performance.ProfileAll, hdr, func() error {
		ran = true
		return nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, ran)

	_, err = os.Stat(hdr + "_cpu.profile")
	test.ExpectSuccess(t, err)
	_, err = os.Stat(hdr + "_mem.profile")
	test.ExpectSuccess(t, err)
}

func TestRunProfilerError(t *testing.T) {
	hdr := filepath.Join(t.TempDir(), "race")

	runErr := errors.New("run failed")
	err := performance.RunProfiler(performance.ProfileMem, hdr, func() error {
		return runErr
	})
	test.ExpectSuccess(t, errors.Is(err, runErr))

	// no memory profile if the run failed
	_, err = os.Stat(hdr + "_mem.profile")
	test.ExpectFailure(t, err)
}

func TestCalcFPS(t *testing.T) {
	fps, accuracy := performance.CalcFPS(120, 2*time.Second, 60)
	test.ExpectApproximate(t, fps, 60.0, 0.001)
	test.ExpectApproximate(t, accuracy, 100.0, 0.001)

	fps, accuracy = performance.CalcFPS(30, time.Second, 0)
	test.ExpectApproximate(t, fps, 30.0, 0.001)
	test.ExpectEquality(t, accuracy, 0.0)

	fps, _ = performance.CalcFPS(30, 0, 60)
	test.ExpectEquality(t, fps, 0.0)
}
