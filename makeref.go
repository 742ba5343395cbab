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
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync/atomic"
	"time"

	"github.com/jetsetilly/makeref/buffers"
	"github.com/jetsetilly/makeref/demo"
	"github.com/jetsetilly/makeref/engine"
	"github.com/jetsetilly/makeref/engine/capture"
	"github.com/jetsetilly/makeref/geometry"
	"github.com/jetsetilly/makeref/gui/sdlimgui"
	"github.com/jetsetilly/makeref/logger"
	"github.com/jetsetilly/makeref/modalflag"
	"github.com/jetsetilly/makeref/paths"
	"github.com/jetsetilly/makeref/performance"
	"github.com/jetsetilly/makeref/prefs"
	"github.com/jetsetilly/makeref/statsview"
	"github.com/jetsetilly/makeref/tearing"
	"github.com/jetsetilly/makeref/terminal"
	"github.com/jetsetilly/makeref/version"
	"github.com/schollz/progressbar/v3"
)

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"

	// reset interrupt signal handling. used when an alternative handler is
	// more appropriate.
	//
	// takes no arguments.
	reqNoIntSig stateReq = "NOINTSIG"
)

type stateRequest struct {
	req  stateReq
	args interface{}
}

// GuiCreator facilitates the creation, servicing and destruction of GUIs
// that need to be run in the main thread.
//
// Note that there is no Create() function because we need the freedom to
// create the GUI how we want. Instead the creator is a channel which accepts
// a function that returns an instance of GuiCreator.
type GuiCreator interface {
	// cleanup resources used by the gui
	Destroy(io.Writer)

	// Service() should not pause or loop longer than necessary (if at all). It
	// MUST ONLY by called as part of a larger loop from the main thread. It
	// should service all gui events that are not safe to do in sub-threads.
	Service()
}

// communication between the main() function and the launch() function. this is
// required because SDL requires window event handling (including creation) to
// occur on the main thread. for the same reason the main thread is also the
// engine's render thread when the GUI is being used.
type mainSync struct {
	state   chan stateRequest
	creator chan func() (GuiCreator, error)

	// the result of creator will be returned on either of these two channels.
	creation      chan GuiCreator
	creationError chan error
}

// #mainthread
func main() {
	sync := &mainSync{
		state:         make(chan stateRequest),
		creator:       make(chan func() (GuiCreator, error)),
		creation:      make(chan GuiCreator),
		creationError: make(chan error),
	}

	// the value to use with os.Exit(). can be changed with reqQuit
	// stateRequest
	exitVal := 0

	// #ctrlc default handler. can be turned off with reqNoIntSig request
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	// launch program as a go routine. further communication is through
	// the mainSync instance
	go launch(sync)

	// loop until done is true. every iteration of the loop we listen for:
	//
	//  1. interrupt signals
	//  2. new gui creation functions
	//  3. state requests
	//  4. anything in the Service() function of the most recently created GUI
	//
	done := false
	var gui GuiCreator
	for !done {
		select {
		case <-intChan:
			fmt.Println("\r")
			done = true

		case creator := <-sync.creator:
			var err error

			// destroy existing gui
			if gui != nil {
				gui.Destroy(os.Stderr)
			}

			gui, err = creator()
			if err != nil {
				sync.creationError <- err

				// creator() returns a nil pointer of a concrete type, which
				// is not a nil interface
				gui = nil
			} else {
				sync.creation <- gui
			}

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if gui != nil {
					gui.Destroy(os.Stderr)
				}

				if state.args != nil {
					if v, ok := state.args.(int); ok {
						exitVal = v
					} else {
						panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
					}
				}

			case reqNoIntSig:
				signal.Reset(os.Interrupt)
				if state.args != nil {
					panic(fmt.Sprintf("%s does not accept any arguments", reqNoIntSig))
				}
			}

		default:
			if gui != nil {
				gui.Service()
			}
		}
	}

	fmt.Print("\r")
	os.Exit(exitVal)
}

// launch is called from main() as a goroutine. uses mainSync instance to
// indicate gui creation and to quit.
func launch(sync *mainSync) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RUN", "HEADLESS", "RACE")
	md.AdditionalHelp(fmt.Sprintf("%s: %s", demo.Info.Name, demo.Info.Description))

	log := md.AddBool("log", false, "echo debugging log to stdout")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run statsview server on %s", statsview.Address))
	showVersion := md.AddBool("version", false, "print version and exit")
	prefsOverride := md.AddString("prefs", "", "override preferences (eg. \"demo.makeref::false; demo.pause::0s\")")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		sync.state <- stateRequest{req: reqQuit}
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		sync.state <- stateRequest{req: reqQuit, args: 10}
		return
	}

	if *showVersion {
		v, r, _ := version.Version()
		fmt.Printf("%s %s (%s)\n", version.ApplicationName, v, r)
		sync.state <- stateRequest{req: reqQuit}
		return
	}

	// set debugging log echo
	if *log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	if *stats {
		if statsview.Available() {
			statsview.Launch(os.Stdout)
		} else {
			fmt.Println("* statsview not available in this build")
		}
	}

	prefs.PushCommandLineStack(*prefsOverride)

	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		fmt.Printf("* error: %v\n", err)
		sync.state <- stateRequest{req: reqQuit, args: 10}
		return
	}

	dp, err := demo.NewPreferences(pth)
	if err != nil {
		fmt.Printf("* error: %v\n", err)
		sync.state <- stateRequest{req: reqQuit, args: 10}
		return
	}

	switch md.Mode() {
	case "RUN":
		err = run(md, sync, dp)

	case "HEADLESS":
		err = headless(md, sync, dp)

	case "RACE":
		err = race(md, dp)
	}

	// preferences given on the command line that were never used are
	// probably mistyped
	if unused := prefs.PopCommandLineStack(); unused != "" {
		fmt.Printf("! unused preferences: %s\n", unused)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

func run(md *modalflag.Modes, sync *mainSync, dp *demo.Preferences) error {
	md.NewMode()

	makeRef := md.AddBool("makeref", dp.MakeRef.Get().(bool), "update vertex buffer with makeRef (else copy)")
	pause := md.AddDuration("pause", dp.PauseUnit.Get().(time.Duration), "unit of cubic pause while generating the grid")
	vsync := md.AddBool("vsync", true, "synchronise with vertical retrace")
	wireframe := md.AddBool("wireframe", false, "render in wireframe")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	// create gui
	sync.creator <- func() (GuiCreator, error) {
		return sdlimgui.NewSdlImgui()
	}

	// wait for creator result
	var img *sdlimgui.SdlImgui
	select {
	case g := <-sync.creation:
		img = g.(*sdlimgui.SdlImgui)
	case err := <-sync.creationError:
		return err
	}

	reset := engine.ResetMSAAX4
	if *vsync {
		reset |= engine.ResetVSync
	}
	debug := engine.DebugText
	if *wireframe {
		debug |= engine.DebugWireframe
	}

	w, h := img.WindowSize()

	app, err := demo.Init(demo.Config{
		Backend:      img.Backend(),
		RenderThread: engine.RenderThreadExternal,
		RenderHost:   img,
		Width:        w,
		Height:       h,
		Reset:        reset,
		Debug:        debug,
		Events:       img,
		Overlay:      img.Overlay(),
		Pause:        geometry.CubicPause(*pause),
		MakeRef:      *makeRef,
	})
	if err != nil {
		return err
	}

	start := time.Now()
	for app.Update() {
	}
	elapsed := time.Since(start)

	err = dp.MakeRef.Set(app.MakeRef())
	if err != nil {
		return err
	}

	app.Shutdown()

	fps, _ := performance.CalcFPS(img.Rendered(), elapsed, 0)
	fmt.Printf("%s: %d frames rendered (%.2f fps)\n", demo.Info.Name, img.Rendered(), fps)

	return dp.Save()
}

// frameLimit wraps a demo.Events implementation and quits after a fixed
// number of frames. A limit of zero means no limit.
type frameLimit struct {
	demo.Events
	limit  int
	frames int
}

func (fl *frameLimit) ProcessEvents() (demo.Input, bool) {
	in, ok := fl.Events.ProcessEvents()
	if fl.limit > 0 {
		if fl.frames >= fl.limit {
			return in, false
		}
		fl.frames++
	}
	return in, ok
}

func headless(md *modalflag.Modes, sync *mainSync, dp *demo.Preferences) error {
	md.NewMode()

	makeRef := md.AddBool("makeref", dp.MakeRef.Get().(bool), "update vertex buffer with makeRef (else copy)")
	pause := md.AddDuration("pause", dp.PauseUnit.Get().(time.Duration), "unit of cubic pause while generating the grid")
	latency := md.AddDuration("latency", dp.Latency.Get().(time.Duration), "render thread delay at the start of every frame")
	frames := md.AddInt("frames", 0, "number of frames to run (0 runs until quit)")
	memviz := md.AddBool("memviz", false, "write graph of host and engine vertex memory on exit")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	var torn atomic.Uint64
	var consistent atomic.Uint64

	bk := capture.New(capture.Config{
		Latency: *latency,
		Observer: func(s capture.Snapshot) {
			if s.View != demo.SceneView || !s.Dynamic {
				return
			}
			if geometry.Inspect(geometry.FromBytes(s.Vertices)).Torn() {
				torn.Add(1)
			} else {
				consistent.Add(1)
			}
		},
	})

	var app *demo.App

	status := func() string {
		return fmt.Sprintf("%s, consistent: %d, torn: %d", app, consistent.Load(), torn.Load())
	}

	trm, err := terminal.Open(os.Stdout, status)
	if err != nil {
		return err
	}
	defer trm.Close()

	// the terminal handles the quit key. ctrl-c is passed to the terminal
	// so that the demo can be shutdown cleanly
	sync.state <- stateRequest{req: reqNoIntSig}
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)
	go func() {
		if _, ok := <-intChan; ok {
			trm.Quit()
		}
	}()

	app, err = demo.Init(demo.Config{
		Backend: bk,
		Width:   1280,
		Height:  720,
		Events: &frameLimit{
			Events: trm,
			limit:  *frames,
		},
		Overlay: trm,
		Pause:   geometry.CubicPause(*pause),
		MakeRef: *makeRef,
	})
	if err != nil {
		return err
	}

	for app.Update() {
	}

	if *memviz {
		fn := fmt.Sprintf("%s.dot", paths.UniqueFilename("memviz", app.Transfer().String()))
		f, err := os.Create(fn)
		if err != nil {
			logger.Log(logger.Allow, "memviz", err)
		} else {
			app.Buffers().Dump(f, app.Grid())
			f.Close()
			fmt.Printf("\nmemviz graph written to %s\n", fn)
		}
	}

	app.Shutdown()

	fmt.Printf("\n%s\n", status())

	return nil
}

func race(md *modalflag.Modes, dp *demo.Preferences) error {
	md.NewMode()

	frames := md.AddInt("frames", 100, "number of frames to run for each transfer method")
	pause := md.AddDuration("pause", dp.PauseUnit.Get().(time.Duration), "unit of cubic pause while generating the grid")
	latency := md.AddDuration("latency", time.Millisecond, "render thread delay at the start of every frame")
	only := md.AddString("transfer", "", "run only one transfer method: makeRef, copy")
	profile := md.AddString("profile", "none", "run race through profiler: CPU, MEM, ALL (comma separated)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	if *frames <= 0 {
		return fmt.Errorf("number of frames must be positive")
	}

	transfers := []buffers.Transfer{buffers.TransferCopy, buffers.TransferRef}
	switch *only {
	case "":
	case buffers.TransferRef.String():
		transfers = transfers[1:]
	case buffers.TransferCopy.String():
		transfers = transfers[:1]
	default:
		return fmt.Errorf("unknown transfer method (%s)", *only)
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	bar := progressbar.Default(int64(*frames*len(transfers)), "racing")
	defer bar.Close()

	cfg := tearing.Config{
		Frames:  *frames,
		Pause:   geometry.CubicPause(*pause),
		Latency: *latency,
		Progress: func(_ int) {
			bar.Add(1)
		},
	}

	var reports []tearing.Report
	err = performance.RunProfiler(prf, "race", func() error {
		for _, t := range transfers {
			bar.Describe(t.String())
			cfg.Transfer = t
			r, err := tearing.Run(cfg)
			if err != nil {
				return err
			}
			reports = append(reports, r)
		}
		return nil
	})
	if err != nil {
		return err
	}

	bar.Finish()
	fmt.Println()
	for _, r := range reports {
		fmt.Println(r)
	}

	return nil
}
