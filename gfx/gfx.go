// SPDX-License-Identifier: Unlicense OR MIT

// Package gfx owns the presentable surface bound to the application
// window: its configuration, per-frame acquisition and presentation, and
// the classification of surface errors.
package gfx

import (
	"errors"
	"fmt"
	"image"
)

// Classified surface errors. A lost or outdated surface is recovered by
// reconfiguring it and retrying on the next frame; a timed out
// acquisition by skipping the frame. Running out of device memory is
// not recoverable.
var (
	ErrSurfaceLost     = errors.New("gfx: surface lost")
	ErrSurfaceOutdated = errors.New("gfx: surface outdated")
	ErrAcquireTimeout  = errors.New("gfx: frame acquisition timed out")
	ErrOutOfMemory     = errors.New("gfx: out of device memory")
)

// Recoverable reports whether the render loop can recover from err
// locally instead of terminating.
func Recoverable(err error) bool {
	return errors.Is(err, ErrSurfaceLost) ||
		errors.Is(err, ErrSurfaceOutdated) ||
		errors.Is(err, ErrAcquireTimeout)
}

// Format is a surface pixel format.
type Format uint8

const (
	FormatRGBA8 Format = iota
	FormatSRGBA8
)

// SRGB reports whether the format is gamma corrected.
func (f Format) SRGB() bool {
	return f == FormatSRGBA8
}

func (f Format) String() string {
	switch f {
	case FormatRGBA8:
		return "RGBA8"
	case FormatSRGBA8:
		return "SRGBA8"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// Surface is the presentable target owned by the platform layer.
type Surface interface {
	// Formats lists the supported pixel formats in the platform's
	// preference order. At least one format is always reported.
	Formats() []Format
	// Configure (re)creates the surface backing store. The dimensions
	// are physical pixels and always nonzero.
	Configure(size image.Point, format Format) error
	// Size reports the surface's current physical size.
	Size() image.Point
	// Present hands the rendered frame back to the compositor.
	Present() error
}

// Config is the current surface configuration, mutated in place by
// Resize.
type Config struct {
	Size   image.Point
	Format Format
}

// Frame is one acquired presentable image.
type Frame struct {
	Size image.Point
}

// Context owns a surface and keeps its configuration in sync with the
// window's physical size. All methods must be called from the thread
// the surface's GPU context is current on.
type Context struct {
	surface Surface
	config  Config
}

// New configures surface with its preferred pixel format at the given
// physical size.
func New(surface Surface, size image.Point) (*Context, error) {
	if size.X <= 0 || size.Y <= 0 {
		return nil, fmt.Errorf("gfx: invalid initial surface size %v", size)
	}
	c := &Context{
		surface: surface,
		config: Config{
			Size:   size,
			Format: selectFormat(surface.Formats()),
		},
	}
	if err := surface.Configure(size, c.config.Format); err != nil {
		return nil, fmt.Errorf("gfx: configuring surface: %w", err)
	}
	return c, nil
}

// selectFormat prefers a gamma corrected format, falling back to the
// first one reported.
func selectFormat(formats []Format) Format {
	for _, f := range formats {
		if f.SRGB() {
			return f
		}
	}
	return formats[0]
}

// Config returns the current surface configuration.
func (c *Context) Config() Config {
	return c.config
}

// Resize reconfigures the surface to new physical dimensions. Zero-area
// sizes, as reported for minimized windows, leave the configuration
// untouched.
func (c *Context) Resize(size image.Point) error {
	if size.X <= 0 || size.Y <= 0 {
		return nil
	}
	c.config.Size = size
	if err := c.surface.Configure(size, c.config.Format); err != nil {
		return fmt.Errorf("gfx: reconfiguring surface to %v: %w", size, err)
	}
	return nil
}

// Reconfigure re-applies the current configuration, recreating surface
// state after a loss.
func (c *Context) Reconfigure() error {
	return c.Resize(c.config.Size)
}

// AcquireFrame returns the next presentable frame. The surface must
// match the current configuration; a stale surface is reported as
// outdated for the caller to reconfigure and retry next tick.
func (c *Context) AcquireFrame() (Frame, error) {
	if sz := c.surface.Size(); sz != c.config.Size {
		return Frame{}, fmt.Errorf("gfx: surface is %v, configured for %v: %w", sz, c.config.Size, ErrSurfaceOutdated)
	}
	return Frame{Size: c.config.Size}, nil
}

// Present hands the frame back to the platform compositor.
func (c *Context) Present(Frame) error {
	return c.surface.Present()
}
