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

// Package tearing runs the demonstration against the capture backend and
// counts how many of the frames drawn by the render thread were torn. A torn
// frame is one where the vertex data read by the render thread contains
// parts of two different frames.
//
// With buffers.TransferCopy no frame should ever be torn. With
// buffers.TransferRef frames are torn whenever the render thread reads the
// grid while the next frame is being generated, which is made likely by
// slowing the generator with a Pause and slowing the render thread with a
// Latency.
package tearing

import (
	"fmt"
	"sync"
	"time"

	"github.com/jetsetilly/makeref/buffers"
	"github.com/jetsetilly/makeref/demo"
	"github.com/jetsetilly/makeref/engine"
	"github.com/jetsetilly/makeref/engine/capture"
	"github.com/jetsetilly/makeref/geometry"
	"github.com/jetsetilly/makeref/logger"
)

// maximum number of torn frames logged by each call to Run()
const maxTornLog = 5

// Config for Run().
type Config struct {
	// number of frames to run
	Frames int

	Transfer buffers.Transfer

	// delay used by the generator and by the render thread
	Pause   geometry.Pause
	Latency time.Duration

	// called on the render thread before each frame is processed
	Before func(f *engine.Frame)

	// called on the render thread for every frame drawn to the scene view
	Observe func(s capture.Snapshot, ins geometry.Inspection)

	// called on the application goroutine after each frame is handed over
	Progress func(frame int)
}

// Report is the result of Run().
type Report struct {
	Transfer   buffers.Transfer
	Frames     int
	Consistent int
	Torn       int

	// number of the first torn frame. zero if no frame was torn
	FirstTorn uint64

	Elapsed time.Duration
}

func (r Report) String() string {
	return fmt.Sprintf("%-7s frames: %d, consistent: %d, torn: %d (%.1f%%) in %v",
		r.Transfer, r.Frames, r.Consistent, r.Torn, r.TornPercent(), r.Elapsed.Round(time.Millisecond))
}

// TornPercent returns the percentage of observed frames that were torn.
func (r Report) TornPercent() float64 {
	n := r.Consistent + r.Torn
	if n == 0 {
		return 0
	}
	return float64(r.Torn) * 100.0 / float64(n)
}

// counted events run for a fixed number of frames
type counted struct {
	remaining int
	frame     int
	progress  func(frame int)
}

func (c *counted) ProcessEvents() (demo.Input, bool) {
	if c.frame > 0 && c.progress != nil {
		c.progress(c.frame)
	}
	if c.remaining <= 0 {
		return demo.Input{}, false
	}
	c.remaining--
	c.frame++
	return demo.Input{}, true
}

// Run the demonstration for the configured number of frames.
func Run(cfg Config) (Report, error) {
	rep := Report{
		Transfer: cfg.Transfer,
	}

	var crit sync.Mutex

	// torn frames can happen on every frame
	tornLog := logger.NewLimit(maxTornLog)

	observer := func(s capture.Snapshot) {
		if s.View != demo.SceneView || !s.Dynamic {
			return
		}

		ins := geometry.Inspect(geometry.FromBytes(s.Vertices))

		crit.Lock()
		if ins.Torn() {
			rep.Torn++
			if rep.FirstTorn == 0 {
				rep.FirstTorn = s.Frame
			}
			logger.Logf(tornLog, "tearing", "%s: frame %d torn: %s", cfg.Transfer, s.Frame, ins)
		} else {
			rep.Consistent++
		}
		crit.Unlock()

		if cfg.Observe != nil {
			cfg.Observe(s, ins)
		}
	}

	bk := capture.New(capture.Config{
		Latency:  cfg.Latency,
		Before:   cfg.Before,
		Observer: observer,
	})

	app, err := demo.Init(demo.Config{
		Backend: bk,
		Width:   1280,
		Height:  720,
		Events: &counted{
			remaining: cfg.Frames,
			progress:  cfg.Progress,
		},
		Pause:   cfg.Pause,
		MakeRef: cfg.Transfer == buffers.TransferRef,
	})
	if err != nil {
		return rep, err
	}

	start := time.Now()
	for app.Update() {
	}
	rep.Frames = int(app.Frames())
	app.Shutdown()
	rep.Elapsed = time.Since(start)

	crit.Lock()
	defer crit.Unlock()
	return rep, nil
}

// Compare runs the demonstration once for each transfer method.
func Compare(cfg Config) ([]Report, error) {
	var reports []Report
	for _, t := range []buffers.Transfer{buffers.TransferCopy, buffers.TransferRef} {
		cfg.Transfer = t
		r, err := Run(cfg)
		if err != nil {
			return reports, err
		}
		reports = append(reports, r)
	}
	return reports, nil
}
