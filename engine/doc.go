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

// Package engine is a small real-time rendering engine with a render thread
// that is decoupled from the thread submitting work.
//
// The application thread (the API thread) builds a frame by creating
// resources, setting view state and submitting draws. Frame() hands the
// frame to the render thread and returns immediately, so that the API thread
// can build the next frame while the previous one is being rendered. Frame()
// only waits for the render thread to finish the frame before that.
//
// The render thread is either internal, started by Init(), or external. An
// external render thread is useful when rendering must happen on a specific
// thread, such as the main thread when using SDL. In that case the host calls
// RenderFrame() repeatedly from the required thread:
//
//	for ctx.RenderFrame(timeout) != engine.RenderFrameExiting {
//		// service window events etc.
//	}
//
// Data is passed to the engine as a Memory value. Memory created with Copy()
// is duplicated immediately. Memory created with MakeRef() refers to the
// caller's data and is read only when the render thread gets to it, at some
// point after Frame() has returned. The caller must not modify referenced
// data until then; the engine does not enforce this.
//
// The actual rendering is done by a Backend. NewNoop() returns a backend that
// does nothing. Other backends are in sub-packages or provided by the host.
package engine
