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
	"github.com/jetsetilly/makeref/curated"
	"github.com/jetsetilly/makeref/logger"
)

// CreateDynamicVertexBuffer creates a vertex buffer with space for num
// vertices. The content is undefined until UpdateDynamicVertexBuffer() is
// called.
func (ctx *Context) CreateDynamicVertexBuffer(num int, layout Layout) (DynamicVertexBufferHandle, error) {
	ctx.apiThread.Check()

	idx, ok := ctx.dvbHandles.alloc()
	if !ok {
		return InvalidDynamicVertexBuffer, curated.Errorf(OutOfHandles, "dynamic vertex buffer")
	}
	h := DynamicVertexBufferHandle{idx}

	ctx.submit.pre = append(ctx.submit.pre, func(b Backend) {
		b.CreateDynamicVertexBuffer(h, num, layout)
	})

	return h, nil
}

// UpdateDynamicVertexBuffer replaces the content of the buffer from the
// vertex at offset onwards. The data in mem is read by the render thread
// after the next call to Frame().
func (ctx *Context) UpdateDynamicVertexBuffer(h DynamicVertexBufferHandle, offset int, mem *Memory) {
	ctx.apiThread.Check()
	if !h.IsValid() || mem == nil {
		return
	}

	ctx.submit.pre = append(ctx.submit.pre, func(b Backend) {
		b.UpdateDynamicVertexBuffer(h, offset, mem)
		mem.done()
	})
}

// DestroyDynamicVertexBuffer releases the buffer once the current frame has
// been rendered.
func (ctx *Context) DestroyDynamicVertexBuffer(h DynamicVertexBufferHandle) {
	ctx.apiThread.Check()
	if !h.IsValid() {
		return
	}

	ctx.submit.post = append(ctx.submit.post, func(b Backend) {
		b.DestroyDynamicVertexBuffer(h)
	})
	ctx.submit.free = append(ctx.submit.free, func() {
		ctx.dvbHandles.release(h.idx)
	})
}

// CreateIndexBuffer creates a static buffer of 16bit indices.
func (ctx *Context) CreateIndexBuffer(mem *Memory) (IndexBufferHandle, error) {
	ctx.apiThread.Check()

	idx, ok := ctx.ibHandles.alloc()
	if !ok {
		return InvalidIndexBuffer, curated.Errorf(OutOfHandles, "index buffer")
	}
	h := IndexBufferHandle{idx}

	ctx.submit.pre = append(ctx.submit.pre, func(b Backend) {
		b.CreateIndexBuffer(h, mem)
		mem.done()
	})

	return h, nil
}

// DestroyIndexBuffer releases the buffer once the current frame has been
// rendered.
func (ctx *Context) DestroyIndexBuffer(h IndexBufferHandle) {
	ctx.apiThread.Check()
	if !h.IsValid() {
		return
	}

	ctx.submit.post = append(ctx.submit.post, func(b Backend) {
		b.DestroyIndexBuffer(h)
	})
	ctx.submit.free = append(ctx.submit.free, func() {
		ctx.ibHandles.release(h.idx)
	})
}

// CreateProgram creates a shader program from named vertex and fragment
// shaders. How names are resolved is up to the backend. A failure to create
// the program is logged by the render thread and draws using the program are
// skipped by the backend.
func (ctx *Context) CreateProgram(vs string, fs string) (ProgramHandle, error) {
	ctx.apiThread.Check()

	idx, ok := ctx.programHandles.alloc()
	if !ok {
		return InvalidProgram, curated.Errorf(OutOfHandles, "program")
	}
	h := ProgramHandle{idx}

	ctx.submit.pre = append(ctx.submit.pre, func(b Backend) {
		if err := b.CreateProgram(h, vs, fs); err != nil {
			logger.Logf(logger.Allow, logTag, "program %s/%s: %v", vs, fs, err)
		}
	})

	return h, nil
}

// DestroyProgram releases the program once the current frame has been
// rendered.
func (ctx *Context) DestroyProgram(h ProgramHandle) {
	ctx.apiThread.Check()
	if !h.IsValid() {
		return
	}

	ctx.submit.post = append(ctx.submit.post, func(b Backend) {
		b.DestroyProgram(h)
	})
	ctx.submit.free = append(ctx.submit.free, func() {
		ctx.programHandles.release(h.idx)
	})
}

// CreateTexture2D creates a texture from the pixels in mem.
func (ctx *Context) CreateTexture2D(width int, height int, format TextureFormat, mem *Memory) (TextureHandle, error) {
	ctx.apiThread.Check()

	idx, ok := ctx.textureHandles.alloc()
	if !ok {
		return InvalidTexture, curated.Errorf(OutOfHandles, "texture")
	}
	h := TextureHandle{idx}

	ctx.submit.pre = append(ctx.submit.pre, func(b Backend) {
		b.CreateTexture2D(h, width, height, format, mem)
		mem.done()
	})

	return h, nil
}

// DestroyTexture releases the texture once the current frame has been
// rendered.
func (ctx *Context) DestroyTexture(h TextureHandle) {
	ctx.apiThread.Check()
	if !h.IsValid() {
		return
	}

	ctx.submit.post = append(ctx.submit.post, func(b Backend) {
		b.DestroyTexture(h)
	})
	ctx.submit.free = append(ctx.submit.free, func() {
		ctx.textureHandles.release(h.idx)
	})
}

// AllocTransientVertexBuffer returns a vertex buffer with space for num
// vertices. The buffer is valid until the next call to Frame().
func (ctx *Context) AllocTransientVertexBuffer(num int, layout Layout) *TransientVertexBuffer {
	ctx.apiThread.Check()
	return &TransientVertexBuffer{
		Data:   make([]byte, num*layout.Stride()),
		Layout: layout,
	}
}

// AllocTransientIndexBuffer returns an index buffer with space for num 16bit
// indices. The buffer is valid until the next call to Frame().
func (ctx *Context) AllocTransientIndexBuffer(num int) *TransientIndexBuffer {
	ctx.apiThread.Check()
	return &TransientIndexBuffer{
		Data: make([]byte, num*2),
	}
}
