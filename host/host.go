// SPDX-License-Identifier: Unlicense OR MIT

// Package host bridges OS window events to the graphics context and the
// frame renderer. It owns the GLFW window and the platform event loop.
package host

import (
	"errors"
	"fmt"
	"image"
	"log"
	"time"

	"gioui.org/f32"
	"gioui.org/io/event"
	"gioui.org/io/pointer"
	"gioui.org/unit"
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/PaxPlay/gio-glfw-gallery/gfx"
)

const (
	windowTitle   = "Cool Window"
	initialWidth  = 800
	initialHeight = 600
)

var errNotRunning = errors.New("host: not running")

// FrameHandler consumes the input gathered since the last frame and
// renders one frame against the acquired target.
type FrameHandler interface {
	Frame(frame gfx.Frame, metric unit.Metric, events []event.Event) error
}

// lifecycle is the host's two-state machine: window and GPU resources
// exist only in the running state, and no event is delivered before
// Start has succeeded.
type lifecycle uint8

const (
	stateUninitialized lifecycle = iota
	stateRunning
)

// Host owns the window handle for the process lifetime. It must be
// created and driven from the main thread, locked to its OS thread.
type Host struct {
	state lifecycle
	win   *glfw.Window
	ctx   *gfx.Context

	// Pending input events, drained once per frame.
	events  []event.Event
	buttons pointer.Buttons
	lastPos f32.Point
	start   time.Time
}

func New() *Host {
	return &Host{start: time.Now()}
}

// Start creates the window, makes its OpenGL context current and
// configures the surface. Initialization failures abort startup; there
// is nothing to recover to.
func (h *Host) Start() error {
	if h.state != stateUninitialized {
		return errors.New("host: already started")
	}
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("host: initializing GLFW: %w", err)
	}
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	// Gio assumes an sRGB backbuffer.
	glfw.WindowHint(glfw.SRGBCapable, glfw.True)

	win, err := glfw.CreateWindow(initialWidth, initialHeight, windowTitle, nil, nil)
	if err != nil {
		glfw.Terminate()
		return fmt.Errorf("host: creating window: %w", err)
	}
	win.MakeContextCurrent()
	if err := gl.Init(); err != nil {
		win.Destroy()
		glfw.Terminate()
		return fmt.Errorf("host: loading OpenGL: %w", err)
	}
	// Pace frames by the display refresh instead of spinning
	// redraw-after-redraw.
	glfw.SwapInterval(1)

	fbw, fbh := win.GetFramebufferSize()
	ctx, err := gfx.New(gfx.NewGLSurface(win), image.Pt(fbw, fbh))
	if err != nil {
		win.Destroy()
		glfw.Terminate()
		return err
	}

	h.win = win
	h.ctx = ctx
	h.state = stateRunning
	h.registerCallbacks()
	return nil
}

// Stop destroys the window and releases the platform resources.
func (h *Host) Stop() {
	if h.state != stateRunning {
		return
	}
	h.win.Destroy()
	glfw.Terminate()
	h.win = nil
	h.ctx = nil
	h.state = stateUninitialized
}

// Run drives the event loop until the window is closed or a frame fails
// with an unrecoverable error. Lost or outdated surfaces are
// reconfigured and the frame skipped; timeouts skip the frame.
func (h *Host) Run(handler FrameHandler) error {
	if h.state != stateRunning {
		return errNotRunning
	}
	return runLoop(
		h.win.ShouldClose,
		glfw.PollEvents,
		func() error { return h.frame(handler) },
		h.recoverSurface,
	)
}

func (h *Host) frame(handler FrameHandler) error {
	fbw, fbh := h.win.GetFramebufferSize()
	if minimized(image.Pt(fbw, fbh)) {
		// Nothing to render and no buffer swap to pace the loop.
		// Block until the next event instead of spinning.
		glfw.WaitEvents()
		return nil
	}
	frame, err := h.ctx.AcquireFrame()
	if err != nil {
		return err
	}
	if err := handler.Frame(frame, h.metric(), h.drainEvents()); err != nil {
		return err
	}
	return h.ctx.Present(frame)
}

func (h *Host) recoverSurface(err error) {
	log.Printf("host: skipping frame: %v", err)
	switch {
	case errors.Is(err, gfx.ErrAcquireTimeout):
		// The frame is simply skipped.
	case errors.Is(err, gfx.ErrSurfaceLost):
		// The dimensions are still valid; recreate the surface state.
		if rerr := h.ctx.Reconfigure(); rerr != nil {
			log.Printf("host: surface reconfiguration failed: %v", rerr)
		}
	default:
		fbw, fbh := h.win.GetFramebufferSize()
		if rerr := h.ctx.Resize(image.Pt(fbw, fbh)); rerr != nil {
			log.Printf("host: surface reconfiguration failed: %v", rerr)
		}
	}
}

// minimized reports whether a framebuffer size belongs to a minimized
// window.
func minimized(size image.Point) bool {
	return size.X <= 0 || size.Y <= 0
}

// metric reports the window's logical pixel scale.
func (h *Host) metric() unit.Metric {
	scale, _ := h.win.GetContentScale()
	if scale <= 0 {
		scale = 1
	}
	return unit.Metric{PxPerDp: scale, PxPerSp: scale}
}

// queueEvent buffers a translated input event for the next frame.
// Events delivered while uninitialized are rejected.
func (h *Host) queueEvent(e event.Event) {
	if h.state != stateRunning {
		return
	}
	h.events = append(h.events, e)
}

// drainEvents consumes the pending event queue. Each event is delivered
// to the renderer exactly once.
func (h *Host) drainEvents() []event.Event {
	evts := h.events
	h.events = nil
	return evts
}
