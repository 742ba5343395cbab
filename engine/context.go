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

package engine

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/jetsetilly/makeref/assert"
	"github.com/jetsetilly/makeref/curated"
	"github.com/jetsetilly/makeref/logger"
)

// RenderThread selects how the render thread is run.
type RenderThread int

// List of valid RenderThread values.
const (
	// Init() starts a goroutine to act as the render thread
	RenderThreadInternal RenderThread = iota

	// the RenderHost calls RenderFrame() from a thread of its choosing
	RenderThreadExternal
)

func (rt RenderThread) String() string {
	if rt == RenderThreadExternal {
		return "external"
	}
	return "internal"
}

// RenderHost is required for RenderThreadExternal. It is given the context
// before Init() waits for the backend to be initialised, so the host must
// already be calling RenderFrame() or must start doing so promptly.
type RenderHost interface {
	AttachContext(ctx *Context)
}

// Config is the configuration for the Init() function.
type Config struct {
	Backend      Backend
	Resolution   Resolution
	Debug        Debug
	RenderThread RenderThread
	RenderHost   RenderHost

	// maximum time to wait for the backend to initialise. defaults to five
	// seconds
	InitTimeout time.Duration

	// maximum number of handles of each type. defaults to 256
	MaxHandles int
}

// Stats are collected by the API thread.
type Stats struct {
	// frame number of the frame currently being built
	Frame uint64

	// number of draws in the previous frame
	NumDraws int

	// time the API thread spent in Frame() waiting for the render thread
	WaitRender time.Duration

	// number of frames completed by the render thread
	Rendered uint64

	NumDynamicVertexBuffers int
	NumIndexBuffers         int
	NumPrograms             int
	NumTextures             int
}

// Context is an initialised engine. All methods except RenderFrame() must be
// called from the goroutine that called Init().
type Context struct {
	apiThread    *assert.Thread
	renderThread *assert.Thread

	backend      Backend
	threadMode   RenderThread
	caps         Caps
	resolution   Resolution
	debug        Debug

	// the frame being built by the API thread and the frame being rendered
	submit *Frame
	render *Frame

	// apiSem is posted by Frame() when a frame is ready to render. renderSem
	// is posted by the render thread when a frame has been rendered
	apiSem    chan struct{}
	renderSem chan struct{}

	// result of backend initialisation. sent once by the render thread
	initResult chan error

	// closed by the render thread when it has shut down the backend
	exited chan struct{}

	// persistent view state. copied into every frame
	views [MaxViews]View

	// draw state for the next call to Submit()
	draw Draw

	dvbHandles     *handleAlloc
	ibHandles      *handleAlloc
	programHandles *handleAlloc
	textureHandles *handleAlloc

	stats    Stats
	rendered atomic.Uint64
	shutdown bool
}

// Init the engine. On success the backend has been initialised on the render
// thread.
func Init(cfg Config) (*Context, error) {
	if cfg.Backend == nil {
		return nil, curated.Errorf(InitError, curated.Errorf(NoBackend))
	}
	if cfg.RenderThread == RenderThreadExternal && cfg.RenderHost == nil {
		return nil, curated.Errorf(InitError, curated.Errorf(NoRenderHost))
	}
	if cfg.InitTimeout <= 0 {
		cfg.InitTimeout = 5 * time.Second
	}
	if cfg.MaxHandles <= 0 {
		cfg.MaxHandles = 256
	}

	ctx := &Context{
		apiThread:      assert.NewThread("engine api"),
		renderThread:   assert.NewThread("engine render"),
		backend:        cfg.Backend,
		threadMode:     cfg.RenderThread,
		resolution:     cfg.Resolution,
		debug:          cfg.Debug,
		submit:         newFrame(0),
		render:         newFrame(0),
		apiSem:         make(chan struct{}, 1),
		renderSem:      make(chan struct{}, 1),
		initResult:     make(chan error, 1),
		exited:         make(chan struct{}),
		dvbHandles:     newHandleAlloc(cfg.MaxHandles),
		ibHandles:      newHandleAlloc(cfg.MaxHandles),
		programHandles: newHandleAlloc(cfg.MaxHandles),
		textureHandles: newHandleAlloc(cfg.MaxHandles),
	}
	ctx.apiThread.Claim()
	ctx.draw = newDraw()

	for i := range ctx.views {
		ctx.views[i] = defaultView()
	}

	// no frame is being rendered yet
	ctx.renderSem <- struct{}{}

	switch cfg.RenderThread {
	case RenderThreadInternal:
		go func() {
			for ctx.RenderFrame(-1) != RenderFrameExiting {
			}
		}()
	case RenderThreadExternal:
		cfg.RenderHost.AttachContext(ctx)
	}

	// the first frame carries the backend initialisation
	ctx.submit.init = true
	ctx.Frame()

	select {
	case err := <-ctx.initResult:
		if err != nil {
			logger.Log(logger.Allow, logTag, err)
			return nil, curated.Errorf(InitError, err)
		}
	case <-time.After(cfg.InitTimeout):
		return nil, curated.Errorf(InitError, curated.Errorf(InitTimeout, cfg.InitTimeout))
	}

	logger.Logf(logger.Allow, logTag, "initialised %s backend (%dx%d) with %s render thread",
		ctx.caps.Renderer, cfg.Resolution.Width, cfg.Resolution.Height, ctx.threadMode)

	return ctx, nil
}

// Caps returns the capabilities of the backend.
func (ctx *Context) Caps() Caps {
	ctx.apiThread.Check()
	return ctx.caps
}

// Stats returns a copy of the current statistics.
func (ctx *Context) Stats() Stats {
	ctx.apiThread.Check()
	s := ctx.stats
	s.Frame = ctx.submit.Num
	s.Rendered = ctx.rendered.Load()
	s.NumDynamicVertexBuffers = ctx.dvbHandles.used()
	s.NumIndexBuffers = ctx.ibHandles.used()
	s.NumPrograms = ctx.programHandles.used()
	s.NumTextures = ctx.textureHandles.used()
	return s
}

// Frame hands the current frame to the render thread and begins a new frame.
// It waits only for the render thread to finish the previous frame. Returns
// the number of the frame that was handed over.
func (ctx *Context) Frame() uint64 {
	ctx.apiThread.Check()

	startWait := time.Now()
	<-ctx.renderSem
	ctx.stats.WaitRender = time.Since(startWait)

	// the render frame has been fully processed so handles destroyed during
	// that frame can now be reused
	for _, f := range ctx.render.free {
		f()
	}

	ctx.submit.Resolution = ctx.resolution
	ctx.submit.Debug = ctx.debug
	ctx.submit.Views = ctx.views
	ctx.stats.NumDraws = len(ctx.submit.Draws)

	num := ctx.submit.Num
	ctx.submit, ctx.render = ctx.render, ctx.submit
	ctx.submit.reset(num + 1)
	ctx.draw = newDraw()

	ctx.apiSem <- struct{}{}

	return num
}

// RenderFrameResult is returned by RenderFrame().
type RenderFrameResult int

// List of valid RenderFrameResult values.
const (
	RenderFrameNoContext RenderFrameResult = iota
	RenderFrameRender
	RenderFrameTimeout
	RenderFrameExiting
)

func (r RenderFrameResult) String() string {
	switch r {
	case RenderFrameNoContext:
		return "no context"
	case RenderFrameRender:
		return "render"
	case RenderFrameTimeout:
		return "timeout"
	case RenderFrameExiting:
		return "exiting"
	}
	return "unknown"
}

// RenderFrame renders the next frame handed over by Frame(). It waits at
// most timeout for a frame to become available; a negative timeout waits
// forever. Must always be called from the same goroutine.
//
// Calling RenderFrame() on a nil Context returns RenderFrameNoContext.
func (ctx *Context) RenderFrame(timeout time.Duration) RenderFrameResult {
	if ctx == nil {
		return RenderFrameNoContext
	}

	if timeout < 0 {
		<-ctx.apiSem
	} else {
		select {
		case <-ctx.apiSem:
		case <-time.After(timeout):
			return RenderFrameTimeout
		}
	}

	f := ctx.render

	if f.init {
		ctx.renderThread.Claim()
		caps, err := ctx.backend.Init(f.Resolution)
		if err != nil {
			ctx.initResult <- err
			close(ctx.exited)
			return RenderFrameExiting
		}
		ctx.caps = caps
		ctx.initResult <- nil
	}
	ctx.renderThread.Check()

	ctx.backend.BeginFrame(f)
	for _, c := range f.pre {
		c(ctx.backend)
	}
	ctx.backend.Submit(f)
	for _, c := range f.post {
		c(ctx.backend)
	}

	ctx.rendered.Add(1)

	if f.exit {
		ctx.backend.Shutdown()
		close(ctx.exited)
		return RenderFrameExiting
	}

	ctx.renderSem <- struct{}{}

	return RenderFrameRender
}

// Shutdown the engine. Resources that have not been destroyed are destroyed
// by the backend. The Context must not be used after Shutdown() returns.
func (ctx *Context) Shutdown() {
	ctx.apiThread.Check()
	if ctx.shutdown {
		return
	}
	ctx.shutdown = true

	// flush the current frame and then send the exit frame
	ctx.Frame()
	ctx.submit.exit = true
	ctx.Frame()

	<-ctx.exited
}

// Exited returns a channel that is closed once the render thread has shut
// down the backend.
func (ctx *Context) Exited() <-chan struct{} {
	return ctx.exited
}

// Reset the back buffer resolution. Takes effect from the next frame.
func (ctx *Context) Reset(width int, height int, reset Reset) {
	ctx.apiThread.Check()
	ctx.resolution = Resolution{Width: width, Height: height, Reset: reset}
}

// SetDebug flags. Takes effect from the next frame.
func (ctx *Context) SetDebug(debug Debug) {
	ctx.apiThread.Check()
	ctx.debug = debug
}

func (ctx *Context) view(id ViewID) *View {
	if int(id) >= MaxViews {
		panic(fmt.Sprintf("engine: view %d out of range", id))
	}
	return &ctx.views[id]
}

// SetViewClear sets how the view is cleared at the start of the frame.
func (ctx *Context) SetViewClear(id ViewID, flags Clear, rgba uint32, depth float32, stencil uint8) {
	ctx.apiThread.Check()
	v := ctx.view(id)
	v.Clear = flags
	v.ClearRGBA = rgba
	v.ClearDepth = depth
	v.ClearStencil = stencil
}

// SetViewRect sets the area of the back buffer the view renders to.
func (ctx *Context) SetViewRect(id ViewID, x int, y int, width int, height int) {
	ctx.apiThread.Check()
	ctx.view(id).Rect = Rect{X: x, Y: y, Width: width, Height: height}
}

// SetViewTransform sets the view and projection matrices for the view.
func (ctx *Context) SetViewTransform(id ViewID, view [16]float32, proj [16]float32) {
	ctx.apiThread.Check()
	v := ctx.view(id)
	v.ViewMtx = view
	v.ProjMtx = proj
}

// Touch the view so that it is cleared even if nothing is drawn to it. Any
// draw state that has been set is discarded.
func (ctx *Context) Touch(id ViewID) {
	ctx.apiThread.Check()
	ctx.view(id)
	ctx.submit.Touched[id] = true
	ctx.draw = newDraw()
}
