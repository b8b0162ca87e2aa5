// SPDX-License-Identifier: Unlicense OR MIT

// Package render runs one UI pass per redraw and translates its output
// into GPU draw submissions.
package render

import (
	"image"
	"image/color"
	"time"

	"gioui.org/io/event"
	"gioui.org/io/router"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"

	"github.com/PaxPlay/gio-glfw-gallery/gfx"
)

// Device is the GPU a renderer drives. Collect tessellates the frame's
// operation list and uploads texture atlas deltas and vertex data; the
// draw calls referencing them are issued between BeginFrame and
// EndFrame.
type Device interface {
	Collect(viewport image.Point, frame *op.Ops)
	BeginFrame()
	EndFrame()
	Release()
}

// UI declares the widget tree for one frame from current state.
type UI interface {
	Layout(gtx layout.Context) layout.Dimensions
}

// background is the fixed clear color behind the UI.
var background = color.RGBA{A: 0xff}

// Renderer owns the per-frame pass: input routing, UI layout,
// tessellation and draw submission. It is confined to the render
// thread.
type Renderer struct {
	device Device
	ui     UI
	queue  router.Router
	ops    op.Ops
}

func New(device Device, ui UI) *Renderer {
	return &Renderer{
		device: device,
		ui:     ui,
	}
}

// Frame renders one frame. The events gathered since the last frame are
// routed into the UI exactly once; re-running a frame does not replay
// them.
func (r *Renderer) Frame(frame gfx.Frame, metric unit.Metric, events []event.Event) error {
	r.queue.Add(events...)

	r.ops.Reset()
	gtx := layout.Context{
		Ops:         &r.ops,
		Metric:      metric,
		Constraints: layout.Exact(frame.Size),
		Queue:       &r.queue,
		Now:         time.Now(),
	}
	clearBackground(gtx.Ops, frame.Size)
	r.ui.Layout(gtx)

	// Texture and buffer uploads must complete before the draw calls
	// that reference them: Collect strictly precedes the frame pass.
	r.device.Collect(frame.Size, &r.ops)
	r.device.BeginFrame()
	r.queue.Frame(&r.ops)
	r.device.EndFrame()
	return nil
}

// Release frees the GPU resources held by the renderer.
func (r *Renderer) Release() {
	r.device.Release()
}

func clearBackground(ops *op.Ops, size image.Point) {
	stack := op.Push(ops)
	clip.Rect(image.Rectangle{Max: size}).Add(ops)
	paint.ColorOp{Color: background}.Add(ops)
	paint.PaintOp{}.Add(ops)
	stack.Pop()
}
