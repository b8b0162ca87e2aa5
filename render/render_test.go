// SPDX-License-Identifier: Unlicense OR MIT

package render

import (
	"image"
	"testing"
	"time"

	"gioui.org/f32"
	"gioui.org/io/event"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/unit"

	"github.com/PaxPlay/gio-glfw-gallery/gfx"
)

// recordingDevice records the GPU calls a frame issues.
type recordingDevice struct {
	calls    []string
	viewport image.Point
}

func (d *recordingDevice) Collect(viewport image.Point, frame *op.Ops) {
	d.viewport = viewport
	d.calls = append(d.calls, "collect")
}

func (d *recordingDevice) BeginFrame() {
	d.calls = append(d.calls, "begin")
}

func (d *recordingDevice) EndFrame() {
	d.calls = append(d.calls, "end")
}

func (d *recordingDevice) Release() {
	d.calls = append(d.calls, "release")
}

// pressCounterUI counts the pointer presses routed to it.
type pressCounterUI struct {
	presses int
}

func (u *pressCounterUI) Layout(gtx layout.Context) layout.Dimensions {
	for _, e := range gtx.Events(u) {
		if e, ok := e.(pointer.Event); ok && e.Type == pointer.Press {
			u.presses++
		}
	}
	size := gtx.Constraints.Max
	stack := op.Push(gtx.Ops)
	pointer.Rect(image.Rectangle{Max: size}).Add(gtx.Ops)
	pointer.InputOp{Tag: u, Types: pointer.Press | pointer.Release}.Add(gtx.Ops)
	stack.Pop()
	return layout.Dimensions{Size: size}
}

var testMetric = unit.Metric{PxPerDp: 1, PxPerSp: 1}

func testFrame() gfx.Frame {
	return gfx.Frame{Size: image.Pt(200, 100)}
}

func TestFrameDeviceOrder(t *testing.T) {
	dev := new(recordingDevice)
	r := New(dev, new(pressCounterUI))
	if err := r.Frame(testFrame(), testMetric, nil); err != nil {
		t.Fatal(err)
	}
	want := []string{"collect", "begin", "end"}
	if len(dev.calls) != len(want) {
		t.Fatalf("got calls %v, want %v", dev.calls, want)
	}
	for i := range want {
		if dev.calls[i] != want[i] {
			t.Fatalf("got calls %v, want %v", dev.calls, want)
		}
	}
	if dev.viewport != image.Pt(200, 100) {
		t.Errorf("collected viewport %v, want frame size (200,100)", dev.viewport)
	}
}

func TestFrameDeliversEventsOnce(t *testing.T) {
	dev := new(recordingDevice)
	ui := new(pressCounterUI)
	r := New(dev, ui)

	// First frame registers the input area.
	if err := r.Frame(testFrame(), testMetric, nil); err != nil {
		t.Fatal(err)
	}
	press := []event.Event{
		pointer.Event{
			Type:     pointer.Press,
			Source:   pointer.Mouse,
			Buttons:  pointer.ButtonLeft,
			Position: f32.Point{X: 50, Y: 50},
			Time:     time.Second,
		},
	}
	if err := r.Frame(testFrame(), testMetric, press); err != nil {
		t.Fatal(err)
	}
	if ui.presses != 1 {
		t.Fatalf("got %d presses after delivery, want 1", ui.presses)
	}
	// Later frames must not replay the press.
	for i := 0; i < 3; i++ {
		if err := r.Frame(testFrame(), testMetric, nil); err != nil {
			t.Fatal(err)
		}
	}
	if ui.presses != 1 {
		t.Errorf("got %d presses after empty frames, want 1", ui.presses)
	}
}

func TestRelease(t *testing.T) {
	dev := new(recordingDevice)
	r := New(dev, new(pressCounterUI))
	r.Release()
	if len(dev.calls) != 1 || dev.calls[0] != "release" {
		t.Errorf("got calls %v, want [release]", dev.calls)
	}
}
