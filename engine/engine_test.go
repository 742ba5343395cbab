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

package engine_test

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jetsetilly/makeref/curated"
	"github.com/jetsetilly/makeref/engine"
	"github.com/jetsetilly/makeref/test"
)

// recorder is a backend that records the calls made to it
type recorder struct {
	crit    sync.Mutex
	calls   []string
	updates [][]byte
	frames  []engine.Frame

	initErr    error
	beginFrame func(f *engine.Frame)
}

func (r *recorder) record(s string, args ...any) {
	r.crit.Lock()
	defer r.crit.Unlock()
	r.calls = append(r.calls, fmt.Sprintf(s, args...))
}

func (r *recorder) Calls() []string {
	r.crit.Lock()
	defer r.crit.Unlock()
	return append([]string{}, r.calls...)
}

func (r *recorder) Type() engine.RendererType { return engine.RendererNoop }

func (r *recorder) Init(res engine.Resolution) (engine.Caps, error) {
	r.record("init %dx%d", res.Width, res.Height)
	return engine.Caps{Renderer: engine.RendererNoop}, r.initErr
}

func (r *recorder) Shutdown() { r.record("shutdown") }

func (r *recorder) BeginFrame(f *engine.Frame) {
	if r.beginFrame != nil {
		r.beginFrame(f)
	}
}

func (r *recorder) CreateDynamicVertexBuffer(h engine.DynamicVertexBufferHandle, num int, layout engine.Layout) {
	r.record("create %s %d %d", h, num, layout.Stride())
}

func (r *recorder) UpdateDynamicVertexBuffer(h engine.DynamicVertexBufferHandle, offset int, mem *engine.Memory) {
	r.record("update %s %d", h, offset)
	r.crit.Lock()
	defer r.crit.Unlock()
	r.updates = append(r.updates, append([]byte{}, mem.Data()...))
}

func (r *recorder) DestroyDynamicVertexBuffer(h engine.DynamicVertexBufferHandle) {
	r.record("destroy %s", h)
}

func (r *recorder) CreateIndexBuffer(h engine.IndexBufferHandle, mem *engine.Memory) {
	r.record("create %s %d", h, mem.Size())
}

func (r *recorder) DestroyIndexBuffer(h engine.IndexBufferHandle) {
	r.record("destroy %s", h)
}

func (r *recorder) CreateProgram(h engine.ProgramHandle, vs string, fs string) error {
	r.record("create %s %s %s", h, vs, fs)
	return nil
}

func (r *recorder) DestroyProgram(h engine.ProgramHandle) {
	r.record("destroy %s", h)
}

func (r *recorder) CreateTexture2D(h engine.TextureHandle, width int, height int, _ engine.TextureFormat, _ *engine.Memory) {
	r.record("create %s %dx%d", h, width, height)
}

func (r *recorder) DestroyTexture(h engine.TextureHandle) {
	r.record("destroy %s", h)
}

func (r *recorder) Submit(f *engine.Frame) {
	r.record("submit %d draws", len(f.Draws))
	r.crit.Lock()
	defer r.crit.Unlock()
	c := *f
	c.Draws = append([]engine.Draw{}, f.Draws...)
	r.frames = append(r.frames, c)
}

func initRecorder(t *testing.T, r *recorder) *engine.Context {
	t.Helper()
	ctx, err := engine.Init(engine.Config{
		Backend:    r,
		Resolution: engine.Resolution{Width: 320, Height: 240},
	})
	test.DemandSuccess(t, err)
	return ctx
}

func TestInitErrors(t *testing.T) {
	_, err := engine.Init(engine.Config{})
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Has(err, engine.NoBackend))

	_, err = engine.Init(engine.Config{
		Backend:      engine.NewNoop(),
		RenderThread: engine.RenderThreadExternal,
	})
	test.ExpectSuccess(t, curated.Has(err, engine.NoRenderHost))

	r := &recorder{initErr: errors.New("no display")}
	_, err = engine.Init(engine.Config{Backend: r})
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, engine.InitError))
}

func TestNoop(t *testing.T) {
	ctx, err := engine.Init(engine.Config{Backend: engine.NewNoop()})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, ctx.Caps().Renderer, engine.RendererNoop)
	for i := 0; i < 10; i++ {
		ctx.Touch(0)
		ctx.Frame()
	}
	ctx.Shutdown()

	// shutdown more than once is harmless
	ctx.Shutdown()
}

func TestResourceOrder(t *testing.T) {
	r := &recorder{}
	ctx := initRecorder(t, r)

	var layout engine.Layout
	layout.Begin().Add(engine.AttribPosition, 3, engine.AttribFloat, false).End()

	vb, err := ctx.CreateDynamicVertexBuffer(3, layout)
	test.DemandSuccess(t, err)
	ib, err := ctx.CreateIndexBuffer(engine.Copy([]byte{0, 0, 1, 0, 2, 0}))
	test.DemandSuccess(t, err)
	prog, err := ctx.CreateProgram("vs", "fs")
	test.DemandSuccess(t, err)

	ctx.UpdateDynamicVertexBuffer(vb, 0, engine.Copy(make([]byte, 36)))
	ctx.SetVertexBuffer(vb)
	ctx.SetIndexBuffer(ib)
	ctx.SetState(engine.StateDefault)
	ctx.Submit(0, prog)

	ctx.DestroyDynamicVertexBuffer(vb)
	ctx.DestroyIndexBuffer(ib)
	ctx.DestroyProgram(prog)
	ctx.Frame()
	ctx.Shutdown()

	expected := []string{
		"init 320x240",
		"submit 0 draws",
		"create dvb#0 3 12",
		"create ib#0 6",
		"create prog#0 vs fs",
		"update dvb#0 0",
		"submit 1 draws",
		"destroy dvb#0",
		"destroy ib#0",
		"destroy prog#0",
		"submit 0 draws",
		"submit 0 draws",
		"shutdown",
	}

	calls := r.Calls()
	test.DemandEquality(t, len(calls), len(expected))
	for i := range expected {
		test.ExpectEquality(t, calls[i], expected[i], i)
	}
}

func TestCopyAndRef(t *testing.T) {
	r := &recorder{}
	ctx := initRecorder(t, r)

	var layout engine.Layout
	layout.Begin().Add(engine.AttribColor0, 4, engine.AttribUint8, true).End()
	vb, err := ctx.CreateDynamicVertexBuffer(1, layout)
	test.DemandSuccess(t, err)

	copied := []byte{1, 2, 3, 4}
	ctx.UpdateDynamicVertexBuffer(vb, 0, engine.Copy(copied))
	copied[0] = 9

	referenced := []byte{1, 2, 3, 4}
	ctx.UpdateDynamicVertexBuffer(vb, 0, engine.MakeRef(referenced))
	referenced[0] = 9

	ctx.Frame()
	ctx.Shutdown()

	test.DemandEquality(t, len(r.updates), 2)

	// copy is immune to the later change
	test.ExpectEquality(t, r.updates[0][0], 1)

	// the reference is read when the render thread gets to it
	test.ExpectEquality(t, r.updates[1][0], 9)
}

func TestReleaseCallback(t *testing.T) {
	ctx, err := engine.Init(engine.Config{Backend: engine.NewNoop()})
	test.DemandSuccess(t, err)

	var released atomic.Bool
	idx := []byte{0, 0}
	ib, err := ctx.CreateIndexBuffer(engine.MakeRefRelease(idx, func() {
		released.Store(true)
	}))
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, released.Load())

	ctx.Frame()
	ctx.DestroyIndexBuffer(ib)
	ctx.Shutdown()
	test.ExpectSuccess(t, released.Load())
}

func TestFrameRunsAheadOfRenderThread(t *testing.T) {
	gate := make(chan struct{})
	r := &recorder{}
	r.beginFrame = func(f *engine.Frame) {
		if f.Num == 1 {
			<-gate
		}
	}
	ctx := initRecorder(t, r)

	// handing over frame 1 does not wait for it to be rendered
	test.ExpectEquality(t, ctx.Frame(), 1)

	var opened atomic.Bool
	go func() {
		time.Sleep(50 * time.Millisecond)
		opened.Store(true)
		close(gate)
	}()

	// handing over frame 2 must wait for frame 1 to be rendered
	test.ExpectEquality(t, ctx.Frame(), 2)
	test.ExpectSuccess(t, opened.Load())
	test.ExpectSuccess(t, ctx.Stats().WaitRender > 0)

	ctx.Shutdown()
}

func TestHandleReuse(t *testing.T) {
	ctx, err := engine.Init(engine.Config{Backend: engine.NewNoop(), MaxHandles: 2})
	test.DemandSuccess(t, err)
	defer ctx.Shutdown()

	p0, err := ctx.CreateProgram("a", "b")
	test.DemandSuccess(t, err)
	p1, err := ctx.CreateProgram("a", "b")
	test.DemandSuccess(t, err)
	test.ExpectInequality(t, p0, p1)

	_, err = ctx.CreateProgram("a", "b")
	test.ExpectSuccess(t, curated.Is(err, engine.OutOfHandles))
	test.ExpectEquality(t, ctx.Stats().NumPrograms, 2)

	// the handle is not available until the render thread has finished with it
	ctx.DestroyProgram(p0)
	_, err = ctx.CreateProgram("a", "b")
	test.ExpectFailure(t, err)

	ctx.Frame()
	ctx.Frame()
	p2, err := ctx.CreateProgram("a", "b")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p2, p0)
}

func TestDrawsAndViews(t *testing.T) {
	r := &recorder{}
	ctx := initRecorder(t, r)

	var layout engine.Layout
	layout.Begin().Add(engine.AttribPosition, 3, engine.AttribFloat, false).End()

	ctx.SetViewClear(0, engine.ClearColor|engine.ClearDepth, 0x303030ff, 1.0, 0)
	ctx.SetViewRect(0, 0, 0, 320, 240)

	// nothing bound so the draw is discarded
	prog, err := ctx.CreateProgram("vs", "fs")
	test.DemandSuccess(t, err)
	ctx.Submit(0, prog)

	tvb := ctx.AllocTransientVertexBuffer(3, layout)
	tib := ctx.AllocTransientIndexBuffer(3)
	test.ExpectEquality(t, tvb.NumVertices(), 3)
	test.ExpectEquality(t, tib.NumIndices(), 3)

	ctx.SetTransientVertexBuffer(tvb)
	ctx.SetTransientIndexBuffer(tib, 0, 3)
	ctx.SetScissor(1, 2, 3, 4)
	ctx.Submit(1, prog)
	ctx.Touch(2)
	ctx.Frame()
	ctx.Shutdown()

	// the first frame is the initialisation frame
	test.DemandSuccess(t, len(r.frames) >= 2)
	f := r.frames[1]
	test.ExpectEquality(t, len(f.Draws), 1)
	test.ExpectEquality(t, f.Draws[0].View, 1)
	test.ExpectEquality(t, f.Draws[0].Scissor, engine.Rect{X: 1, Y: 2, Width: 3, Height: 4})
	test.ExpectEquality(t, f.Draws[0].NumIndices, 3)
	test.ExpectSuccess(t, f.IsViewUsed(1))
	test.ExpectSuccess(t, f.IsViewUsed(2))
	test.ExpectFailure(t, f.IsViewUsed(0))
	test.ExpectEquality(t, f.Views[0].Clear, engine.ClearColor|engine.ClearDepth)
	test.ExpectEquality(t, f.Views[0].ClearRGBA, 0x303030ff)
	test.ExpectEquality(t, f.Views[0].Rect.Width, 320)
}

// host drives the render thread from a goroutine of its own
type host struct {
	results chan engine.RenderFrameResult
}

func (h *host) AttachContext(ctx *engine.Context) {
	go func() {
		for {
			r := ctx.RenderFrame(10 * time.Millisecond)
			select {
			case h.results <- r:
			default:
			}
			if r == engine.RenderFrameExiting {
				close(h.results)
				return
			}
		}
	}()
}

func TestExternalRenderThread(t *testing.T) {
	h := &host{results: make(chan engine.RenderFrameResult, 100)}
	ctx, err := engine.Init(engine.Config{
		Backend:      engine.NewNoop(),
		RenderThread: engine.RenderThreadExternal,
		RenderHost:   h,
	})
	test.DemandSuccess(t, err)

	// an idle render thread times out
	time.Sleep(50 * time.Millisecond)
	ctx.Shutdown()

	var timeouts, renders int
	var exiting bool
	for r := range h.results {
		switch r {
		case engine.RenderFrameTimeout:
			timeouts++
		case engine.RenderFrameRender:
			renders++
		case engine.RenderFrameExiting:
			exiting = true
		}
	}
	test.ExpectSuccess(t, timeouts > 0)
	test.ExpectSuccess(t, renders > 0)
	test.ExpectSuccess(t, exiting)

	var nilCtx *engine.Context
	test.ExpectEquality(t, nilCtx.RenderFrame(0), engine.RenderFrameNoContext)
}

func TestLayout(t *testing.T) {
	var layout engine.Layout
	test.ExpectFailure(t, layout.IsValid())

	layout.Begin().
		Add(engine.AttribPosition, 3, engine.AttribFloat, false).
		Add(engine.AttribColor0, 4, engine.AttribUint8, true).
		End()

	test.ExpectSuccess(t, layout.IsValid())
	test.ExpectEquality(t, layout.Stride(), 16)
	test.ExpectSuccess(t, layout.Has(engine.AttribColor0))
	test.ExpectFailure(t, layout.Has(engine.AttribTexCoord0))

	d, ok := layout.Decl(engine.AttribColor0)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, d.Offset, 12)
	test.ExpectEquality(t, d.Normalized, true)
}

func TestState(t *testing.T) {
	s := engine.StateWriteRGB | engine.StateWriteA | engine.StateWriteZ |
		engine.StateDepthTestLess | engine.StateCullCW | engine.StateMSAA
	test.ExpectEquality(t, s, engine.StateDefault)
	test.ExpectEquality(t, s.String(), "R|G|B|A|Z|depth<|cullCW|msaa")
	test.ExpectEquality(t, engine.State(0).String(), "none")
}
