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

import (
	"fmt"

	"github.com/jetsetilly/makeref/buffers"
	"github.com/jetsetilly/makeref/curated"
	"github.com/jetsetilly/makeref/engine"
	"github.com/jetsetilly/makeref/geometry"
	"github.com/jetsetilly/makeref/logger"
)

// Views used by the demonstration.
const (
	SceneView   engine.ViewID = 0
	OverlayView engine.ViewID = 1
)

// Render state of the triangle grid.
const GridState = engine.StateWriteRGB | engine.StateWriteA | engine.StateWriteZ |
	engine.StateDepthTestLess | engine.StateCullCW | engine.StateMSAA

// Label of the settings checkbox.
const MakeRefLabel = "Use makeRef\n(else: copy)"

// Camera and projection.
var (
	Eye = engine.Vec3{X: 0, Y: 0, Z: -35}
	At  = engine.Vec3{X: 0, Y: 0, Z: 0}
)

// Projection values.
const (
	FieldOfView = 60.0
	Near        = 0.1
	Far         = 100.0
)

// ClearColour of the scene view.
const ClearColour = 0x303030ff

// Config for Init().
type Config struct {
	Backend      engine.Backend
	RenderThread engine.RenderThread
	RenderHost   engine.RenderHost

	Width  int
	Height int
	Reset  engine.Reset
	Debug  engine.Debug

	// Events must not be nil. Overlay can be nil
	Events  Events
	Overlay Overlay

	// artificial delay while generating the grid. nil means no delay
	Pause geometry.Pause

	// initial value of the makeRef setting
	MakeRef bool
}

// Sentinal error patterns.
const (
	InitError = "demo: %v"
	NoEvents  = "no events source"
)

// App is the running demonstration. All methods must be called from the
// goroutine that called Init().
type App struct {
	ctx     *engine.Context
	events  Events
	overlay Overlay

	width  int
	height int
	reset  engine.Reset
	caps   engine.Caps

	layout  engine.Layout
	grid    geometry.Grid
	gen     *geometry.Generator
	indices *geometry.Indices
	buffers *buffers.Manager
	program engine.ProgramHandle

	makeRef bool
	frames  uint64
}

// Init the engine and create the resources needed by the demonstration.
func Init(cfg Config) (*App, error) {
	if cfg.Events == nil {
		return nil, curated.Errorf(InitError, curated.Errorf(NoEvents))
	}

	app := &App{
		events:  cfg.Events,
		overlay: cfg.Overlay,
		width:   cfg.Width,
		height:  cfg.Height,
		reset:   cfg.Reset,
		makeRef: cfg.MakeRef,
		program: engine.InvalidProgram,
	}
	if app.overlay == nil {
		app.overlay = noOverlay{}
	}

	var err error

	app.ctx, err = engine.Init(engine.Config{
		Backend:      cfg.Backend,
		RenderThread: cfg.RenderThread,
		RenderHost:   cfg.RenderHost,
		Resolution: engine.Resolution{
			Width:  cfg.Width,
			Height: cfg.Height,
			Reset:  cfg.Reset,
		},
		Debug: cfg.Debug,
	})
	if err != nil {
		logger.Log(logger.Allow, "demo", err)
		return nil, curated.Errorf(InitError, err)
	}
	app.caps = app.ctx.Caps()

	app.ctx.SetDebug(cfg.Debug)
	app.ctx.SetViewClear(SceneView, engine.ClearColor|engine.ClearDepth, ClearColour, 1.0, 0)

	app.layout.Begin().
		Add(engine.AttribPosition, 3, engine.AttribFloat, false).
		Add(engine.AttribColor0, 4, engine.AttribUint8, true).
		End()

	app.gen = geometry.NewGenerator(cfg.Pause)
	app.gen.Fill(&app.grid)

	// the index buffer is filled only once
	app.indices = geometry.NewIndices()

	app.buffers, err = buffers.NewManager(app.ctx, app.layout, app.indices)
	if err != nil {
		return nil, app.abort(err)
	}

	app.program, err = app.ctx.CreateProgram("vs_cubes", "fs_cubes")
	if err != nil {
		return nil, app.abort(err)
	}

	if err := app.overlay.Create(app.ctx, OverlayView); err != nil {
		return nil, app.abort(err)
	}

	logger.Logf(logger.Allow, "demo", "%s (%s renderer, transfer by %s)", Info.Name, app.caps.Renderer, app.Transfer())

	return app, nil
}

// abort a partially completed Init()
func (app *App) abort(err error) error {
	logger.Log(logger.Allow, "demo", err)
	if app.buffers != nil {
		app.buffers.Destroy()
	}
	if app.program.IsValid() {
		app.ctx.DestroyProgram(app.program)
	}
	app.ctx.Shutdown()
	return curated.Errorf(InitError, err)
}

// Shutdown destroys all resources and shuts down the engine.
func (app *App) Shutdown() {
	app.overlay.Destroy()
	app.buffers.Destroy()
	app.ctx.DestroyProgram(app.program)
	app.ctx.Shutdown()
	logger.Logf(logger.Allow, "demo", "shutdown after %d frames", app.frames)
}

// Update runs one frame of the demonstration. Returns false if the
// application should quit, in which case nothing has been submitted.
func (app *App) Update() bool {
	in, ok := app.events.ProcessEvents()
	if !ok {
		return false
	}

	if in.Width > 0 && in.Height > 0 && (in.Width != app.width || in.Height != app.height) {
		app.width = in.Width
		app.height = in.Height
		app.ctx.Reset(app.width, app.height, app.reset)
	}

	w := float32(app.width)
	h := float32(app.height)

	app.overlay.BeginFrame(in, app.width, app.height)
	app.overlay.Begin("Settings", w-w/5.0-10.0, 10.0, w/5.0, h/3.5)
	app.overlay.Checkbox(MakeRefLabel, &app.makeRef)
	app.overlay.End()
	app.overlay.EndFrame()

	aspect := float32(1.0)
	if app.height > 0 {
		aspect = w / h
	}
	view := engine.LookAt(Eye, At)
	proj := engine.Proj(FieldOfView, aspect, Near, Far, app.caps.HomogeneousDepth)
	app.ctx.SetViewTransform(SceneView, view, proj)
	app.ctx.SetViewRect(SceneView, 0, 0, app.width, app.height)

	// make sure the view is cleared even if nothing is drawn
	app.ctx.Touch(SceneView)

	app.gen.Fill(&app.grid)
	app.buffers.Update(&app.grid, app.Transfer())

	app.buffers.Bind()
	app.ctx.SetState(GridState)
	app.ctx.Submit(SceneView, app.program)

	app.ctx.Frame()
	app.frames++

	return true
}

// Context returns the engine context.
func (app *App) Context() *engine.Context {
	return app.ctx
}

// Frames returns the number of calls to Update() that submitted a frame.
func (app *App) Frames() uint64 {
	return app.frames
}

// MakeRef returns the current value of the makeRef setting.
func (app *App) MakeRef() bool {
	return app.makeRef
}

// SetMakeRef changes the makeRef setting. Takes effect from the next frame.
func (app *App) SetMakeRef(makeRef bool) {
	app.makeRef = makeRef
}

// Transfer returns the transfer method implied by the makeRef setting.
func (app *App) Transfer() buffers.Transfer {
	return buffers.TransferFromBool(app.makeRef)
}

// SetPause changes the artificial delay used while generating the grid.
func (app *App) SetPause(pause geometry.Pause) {
	app.gen.SetPause(pause)
}

// Grid returns the host grid storage.
func (app *App) Grid() *geometry.Grid {
	return &app.grid
}

// Buffers returns the buffer manager.
func (app *App) Buffers() *buffers.Manager {
	return app.buffers
}

func (app *App) String() string {
	return fmt.Sprintf("frame %d, %s", app.frames, app.Transfer())
}
