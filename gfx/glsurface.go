// SPDX-License-Identifier: Unlicense OR MIT

package gfx

import (
	"fmt"
	"image"

	"gioui.org/gpu"
	giogl "gioui.org/gpu/gl"
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// GL_CONTEXT_LOST from KHR_robustness; not among the 3.3 core constants.
const glContextLost = 0x0507

// GLSurface adapts a GLFW window's default framebuffer to the Surface
// interface. The window's OpenGL context must be current on the calling
// thread for the lifetime of the surface.
type GLSurface struct {
	win *glfw.Window
}

func NewGLSurface(win *glfw.Window) *GLSurface {
	return &GLSurface{win: win}
}

// Formats reports the backbuffer formats the context can present.
// OpenGL 3.3 core guarantees sRGB-capable framebuffers, so the gamma
// corrected format always comes first.
func (s *GLSurface) Formats() []Format {
	return []Format{FormatSRGBA8, FormatRGBA8}
}

func (s *GLSurface) Configure(size image.Point, format Format) error {
	gl.Viewport(0, 0, int32(size.X), int32(size.Y))
	if format.SRGB() {
		gl.Enable(gl.FRAMEBUFFER_SRGB)
	} else {
		gl.Disable(gl.FRAMEBUFFER_SRGB)
	}
	return classifyGL(gl.GetError())
}

func (s *GLSurface) Size() image.Point {
	w, h := s.win.GetFramebufferSize()
	return image.Point{X: w, Y: h}
}

func (s *GLSurface) Present() error {
	s.win.SwapBuffers()
	return classifyGL(gl.GetError())
}

// classifyGL maps a glGetError code onto the surface error taxonomy.
func classifyGL(code uint32) error {
	switch code {
	case gl.NO_ERROR:
		return nil
	case gl.OUT_OF_MEMORY:
		return ErrOutOfMemory
	case glContextLost:
		return ErrSurfaceLost
	default:
		return fmt.Errorf("gfx: OpenGL error 0x%04x", code)
	}
}

// NewGLDevice initializes Gio's OpenGL backend on the current context
// and returns the GPU it drives.
func NewGLDevice() (*gpu.GPU, error) {
	backend, err := giogl.NewBackend(new(glFuncs))
	if err != nil {
		return nil, fmt.Errorf("gfx: initializing OpenGL backend: %w", err)
	}
	device, err := gpu.New(backend)
	if err != nil {
		return nil, fmt.Errorf("gfx: initializing GPU: %w", err)
	}
	return device, nil
}
