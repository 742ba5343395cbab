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

// Package capture is an engine backend that renders nothing but keeps CPU
// side copies of every buffer. Each draw produces a Snapshot of the vertex
// data as it was at the time the render thread executed the draw.
//
// The backend can be slowed down with a latency, which is applied at the
// start of every frame before any buffer is updated. A slow backend gives the
// application thread time to modify referenced memory before the render
// thread reads it.
package capture

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/jetsetilly/makeref/engine"
	"github.com/jetsetilly/makeref/logger"
)

// Config for the capture backend.
type Config struct {
	// delay at the start of every frame
	Latency time.Duration

	// called on the render thread at the start of every frame, after the
	// latency delay and before any commands are executed
	Before func(f *engine.Frame)

	// called on the render thread for every draw
	Observer func(s Snapshot)
}

// Snapshot of a single draw.
type Snapshot struct {
	Frame   uint64
	View    engine.ViewID
	State   engine.State
	Stride  int
	Dynamic bool

	// copies of the buffer contents at the time of the draw
	Vertices []byte
	Indices  []byte
}

// NumVertices returns the number of vertices in the snapshot.
func (s Snapshot) NumVertices() int {
	if s.Stride == 0 {
		return 0
	}
	return len(s.Vertices) / s.Stride
}

type vertexBuffer struct {
	data   []byte
	layout engine.Layout
}

// Backend implements the engine.Backend interface.
type Backend struct {
	cfg Config

	// buffers are only touched by the render thread but the accessor
	// functions can be called from anywhere
	crit     sync.Mutex
	vbs      map[engine.DynamicVertexBufferHandle]*vertexBuffer
	ibs      map[engine.IndexBufferHandle][]byte
	programs map[engine.ProgramHandle]bool
	textures map[engine.TextureHandle][]byte

	frames atomic.Uint64
	draws  atomic.Uint64
}

// New is the preferred method of initialisation for the Backend type.
func New(cfg Config) *Backend {
	return &Backend{
		cfg:      cfg,
		vbs:      make(map[engine.DynamicVertexBufferHandle]*vertexBuffer),
		ibs:      make(map[engine.IndexBufferHandle][]byte),
		programs: make(map[engine.ProgramHandle]bool),
		textures: make(map[engine.TextureHandle][]byte),
	}
}

// Type implements the engine.Backend interface.
func (b *Backend) Type() engine.RendererType {
	return engine.RendererCapture
}

// Init implements the engine.Backend interface.
func (b *Backend) Init(res engine.Resolution) (engine.Caps, error) {
	logger.Logf(logger.Allow, "capture", "latency %v", b.cfg.Latency)
	return engine.Caps{
		Renderer:         engine.RendererCapture,
		HomogeneousDepth: false,
		MaxTextureSize:   4096,
	}, nil
}

// Shutdown implements the engine.Backend interface.
func (b *Backend) Shutdown() {
	b.crit.Lock()
	defer b.crit.Unlock()
	if n := len(b.vbs) + len(b.ibs) + len(b.programs) + len(b.textures); n > 0 {
		logger.Logf(logger.Allow, "capture", "%d resources not destroyed", n)
	}
	clear(b.vbs)
	clear(b.ibs)
	clear(b.programs)
	clear(b.textures)
}

// BeginFrame implements the engine.Backend interface.
func (b *Backend) BeginFrame(f *engine.Frame) {
	if b.cfg.Latency > 0 {
		time.Sleep(b.cfg.Latency)
	}
	if b.cfg.Before != nil {
		b.cfg.Before(f)
	}
}

// CreateDynamicVertexBuffer implements the engine.Backend interface.
func (b *Backend) CreateDynamicVertexBuffer(h engine.DynamicVertexBufferHandle, num int, layout engine.Layout) {
	b.crit.Lock()
	defer b.crit.Unlock()
	b.vbs[h] = &vertexBuffer{
		data:   make([]byte, num*layout.Stride()),
		layout: layout,
	}
}

// UpdateDynamicVertexBuffer implements the engine.Backend interface.
func (b *Backend) UpdateDynamicVertexBuffer(h engine.DynamicVertexBufferHandle, offset int, mem *engine.Memory) {
	b.crit.Lock()
	defer b.crit.Unlock()
	vb, ok := b.vbs[h]
	if !ok {
		return
	}
	o := offset * vb.layout.Stride()
	if o >= len(vb.data) {
		return
	}

	// this is the point at which referenced memory is read
	copy(vb.data[o:], mem.Data())
}

// DestroyDynamicVertexBuffer implements the engine.Backend interface.
func (b *Backend) DestroyDynamicVertexBuffer(h engine.DynamicVertexBufferHandle) {
	b.crit.Lock()
	defer b.crit.Unlock()
	delete(b.vbs, h)
}

// CreateIndexBuffer implements the engine.Backend interface.
func (b *Backend) CreateIndexBuffer(h engine.IndexBufferHandle, mem *engine.Memory) {
	b.crit.Lock()
	defer b.crit.Unlock()
	b.ibs[h] = append([]byte{}, mem.Data()...)
}

// DestroyIndexBuffer implements the engine.Backend interface.
func (b *Backend) DestroyIndexBuffer(h engine.IndexBufferHandle) {
	b.crit.Lock()
	defer b.crit.Unlock()
	delete(b.ibs, h)
}

// CreateProgram implements the engine.Backend interface. Any shader names are
// accepted.
func (b *Backend) CreateProgram(h engine.ProgramHandle, _ string, _ string) error {
	b.crit.Lock()
	defer b.crit.Unlock()
	b.programs[h] = true
	return nil
}

// DestroyProgram implements the engine.Backend interface.
func (b *Backend) DestroyProgram(h engine.ProgramHandle) {
	b.crit.Lock()
	defer b.crit.Unlock()
	delete(b.programs, h)
}

// CreateTexture2D implements the engine.Backend interface.
func (b *Backend) CreateTexture2D(h engine.TextureHandle, _ int, _ int, _ engine.TextureFormat, mem *engine.Memory) {
	b.crit.Lock()
	defer b.crit.Unlock()
	var data []byte
	if mem != nil {
		data = append(data, mem.Data()...)
	}
	b.textures[h] = data
}

// DestroyTexture implements the engine.Backend interface.
func (b *Backend) DestroyTexture(h engine.TextureHandle) {
	b.crit.Lock()
	defer b.crit.Unlock()
	delete(b.textures, h)
}

// Submit implements the engine.Backend interface.
func (b *Backend) Submit(f *engine.Frame) {
	b.frames.Add(1)

	for _, d := range f.Draws {
		s, ok := b.snapshot(f, d)
		if !ok {
			continue
		}
		b.draws.Add(1)
		if b.cfg.Observer != nil {
			b.cfg.Observer(s)
		}
	}
}

func (b *Backend) snapshot(f *engine.Frame, d engine.Draw) (Snapshot, bool) {
	b.crit.Lock()
	defer b.crit.Unlock()

	if !b.programs[d.Program] {
		return Snapshot{}, false
	}

	s := Snapshot{
		Frame: f.Num,
		View:  d.View,
		State: d.State,
	}

	if d.TransientVB != nil {
		s.Vertices = append([]byte{}, d.TransientVB.Data...)
		s.Stride = d.TransientVB.Layout.Stride()
	} else {
		vb, ok := b.vbs[d.VertexBuffer]
		if !ok {
			return Snapshot{}, false
		}
		s.Vertices = append([]byte{}, vb.data...)
		s.Stride = vb.layout.Stride()
		s.Dynamic = true
	}

	var idx []byte
	if d.TransientIB != nil {
		idx = d.TransientIB.Data
	} else {
		var ok bool
		idx, ok = b.ibs[d.IndexBuffer]
		if !ok {
			return Snapshot{}, false
		}
	}
	start := d.StartIndex * 2
	end := len(idx)
	if d.NumIndices > 0 {
		end = min(start+d.NumIndices*2, len(idx))
	}
	if start > end {
		start = end
	}
	s.Indices = append([]byte{}, idx[start:end]...)

	return s, true
}

// Frames returns the number of frames rendered.
func (b *Backend) Frames() uint64 {
	return b.frames.Load()
}

// Draws returns the number of draws that produced a snapshot.
func (b *Backend) Draws() uint64 {
	return b.draws.Load()
}

// BufferSize returns the size in bytes of the dynamic vertex buffer. Returns
// -1 if the buffer does not exist.
func (b *Backend) BufferSize(h engine.DynamicVertexBufferHandle) int {
	b.crit.Lock()
	defer b.crit.Unlock()
	vb, ok := b.vbs[h]
	if !ok {
		return -1
	}
	return len(vb.data)
}

// IndexData returns a copy of the index buffer. Returns nil if the buffer
// does not exist.
func (b *Backend) IndexData(h engine.IndexBufferHandle) []byte {
	b.crit.Lock()
	defer b.crit.Unlock()
	ib, ok := b.ibs[h]
	if !ok {
		return nil
	}
	return append([]byte{}, ib...)
}

// Resources returns the number of live resources.
func (b *Backend) Resources() int {
	b.crit.Lock()
	defer b.crit.Unlock()
	return len(b.vbs) + len(b.ibs) + len(b.programs) + len(b.textures)
}
