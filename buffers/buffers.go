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

// Package buffers manages the two buffers used to draw the triangle grid: a
// dynamic vertex buffer whose content is replaced every frame and a static
// index buffer whose content is set once.
//
// The vertex buffer can be updated in one of two ways. TransferRef gives the
// engine a reference to the host grid storage, which is read by the render
// thread at some point after the next frame has been handed over.
// TransferCopy gives the engine a copy of the grid, made at the time of the
// call.
package buffers

import (
	"fmt"
	"io"
	"unsafe"

	"github.com/bradleyjkemp/memviz"

	"github.com/jetsetilly/makeref/engine"
	"github.com/jetsetilly/makeref/geometry"
)

// Transfer is the method by which vertex data is given to the engine.
type Transfer int

// List of valid Transfer values.
const (
	TransferRef Transfer = iota
	TransferCopy
)

func (t Transfer) String() string {
	switch t {
	case TransferRef:
		return "makeRef"
	case TransferCopy:
		return "copy"
	}
	return "unknown transfer"
}

// TransferFromBool returns TransferRef if makeRef is true and TransferCopy
// otherwise.
func TransferFromBool(makeRef bool) Transfer {
	if makeRef {
		return TransferRef
	}
	return TransferCopy
}

// Engine is the subset of engine.Context used by the Manager.
type Engine interface {
	CreateDynamicVertexBuffer(num int, layout engine.Layout) (engine.DynamicVertexBufferHandle, error)
	UpdateDynamicVertexBuffer(h engine.DynamicVertexBufferHandle, offset int, mem *engine.Memory)
	DestroyDynamicVertexBuffer(h engine.DynamicVertexBufferHandle)
	CreateIndexBuffer(mem *engine.Memory) (engine.IndexBufferHandle, error)
	DestroyIndexBuffer(h engine.IndexBufferHandle)
	SetVertexBuffer(h engine.DynamicVertexBufferHandle)
	SetIndexBuffer(h engine.IndexBufferHandle)
}

// Manager owns the vertex and index buffers.
type Manager struct {
	eng     Engine
	vb      engine.DynamicVertexBufferHandle
	ib      engine.IndexBufferHandle
	indices *geometry.Indices

	// the memory passed to the most recent Update()
	last     *engine.Memory
	transfer Transfer
}

// NewManager creates a vertex buffer with space for the whole grid and an
// index buffer referring to indices. The indices must not change for the
// lifetime of the Manager.
func NewManager(eng Engine, layout engine.Layout, indices *geometry.Indices) (*Manager, error) {
	mgr := &Manager{
		eng:     eng,
		indices: indices,
	}

	var err error

	mgr.vb, err = eng.CreateDynamicVertexBuffer(geometry.NumVerts, layout)
	if err != nil {
		return nil, fmt.Errorf("buffers: %w", err)
	}

	// static data can be referenced
	mgr.ib, err = eng.CreateIndexBuffer(engine.MakeRef(indices.Bytes()))
	if err != nil {
		eng.DestroyDynamicVertexBuffer(mgr.vb)
		return nil, fmt.Errorf("buffers: %w", err)
	}

	return mgr, nil
}

// Update the vertex buffer with the content of the grid. With TransferRef the
// grid must not change until the render thread has read it, but nothing
// prevents the caller from doing so.
func (mgr *Manager) Update(g *geometry.Grid, transfer Transfer) {
	var mem *engine.Memory
	switch transfer {
	case TransferRef:
		mem = engine.MakeRef(g.Bytes())
	default:
		mem = engine.Copy(g.Bytes())
	}
	mgr.eng.UpdateDynamicVertexBuffer(mgr.vb, 0, mem)
	mgr.last = mem
	mgr.transfer = transfer
}

// Bind the vertex and index buffers for the next draw.
func (mgr *Manager) Bind() {
	mgr.eng.SetVertexBuffer(mgr.vb)
	mgr.eng.SetIndexBuffer(mgr.ib)
}

// Destroy both buffers.
func (mgr *Manager) Destroy() {
	mgr.eng.DestroyIndexBuffer(mgr.ib)
	mgr.eng.DestroyDynamicVertexBuffer(mgr.vb)
	mgr.vb = engine.InvalidDynamicVertexBuffer
	mgr.ib = engine.InvalidIndexBuffer
	mgr.last = nil
}

// VertexBuffer returns the handle of the vertex buffer.
func (mgr *Manager) VertexBuffer() engine.DynamicVertexBufferHandle {
	return mgr.vb
}

// IndexBuffer returns the handle of the index buffer.
func (mgr *Manager) IndexBuffer() engine.IndexBufferHandle {
	return mgr.ib
}

// NumVertices returns the capacity of the vertex buffer.
func (mgr *Manager) NumVertices() int {
	return geometry.NumVerts
}

// NumIndices returns the number of indices in the index buffer.
func (mgr *Manager) NumIndices() int {
	return len(mgr.indices)
}

// Aliased returns true if the memory passed to the engine by the most recent
// Update() shares storage with g.
func (mgr *Manager) Aliased(g *geometry.Grid) bool {
	if mgr.last == nil || mgr.last.Size() == 0 {
		return false
	}
	return unsafe.SliceData(mgr.last.Data()) == unsafe.SliceData(g.Bytes())
}

// transferGraph is the structure given to memviz. the pointers show whether
// the engine memory is the host storage or a separate copy
type transferGraph struct {
	Transfer string
	Host     *geometry.Vertex
	Engine   *geometry.Vertex
}

// Dump writes a graph in DOT format showing the relationship between the
// host grid storage and the memory passed to the engine by the most recent
// Update().
func (mgr *Manager) Dump(w io.Writer, g *geometry.Grid) {
	gr := transferGraph{
		Transfer: mgr.transfer.String(),
		Host:     &g.Vertices[0],
	}
	if mgr.last != nil && mgr.last.Size() >= geometry.VertexSize {
		gr.Engine = (*geometry.Vertex)(unsafe.Pointer(unsafe.SliceData(mgr.last.Data())))
	}
	memviz.Map(w, &gr)
}
