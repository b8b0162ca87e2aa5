// SPDX-License-Identifier: Unlicense OR MIT

package gfx

import (
	"errors"
	"fmt"
	"image"
	"testing"
)

type fakeSurface struct {
	formats []Format

	size   image.Point
	format Format

	configures   int
	configureErr error
	presents     int
	presentErr   error
}

func (s *fakeSurface) Formats() []Format {
	return s.formats
}

func (s *fakeSurface) Configure(size image.Point, format Format) error {
	s.configures++
	if s.configureErr != nil {
		return s.configureErr
	}
	s.size = size
	s.format = format
	return nil
}

func (s *fakeSurface) Size() image.Point {
	return s.size
}

func (s *fakeSurface) Present() error {
	s.presents++
	return s.presentErr
}

func newFakeSurface(formats ...Format) *fakeSurface {
	return &fakeSurface{formats: formats}
}

func TestNewConfiguresSurface(t *testing.T) {
	s := newFakeSurface(FormatRGBA8, FormatSRGBA8)
	c, err := New(s, image.Pt(800, 600))
	if err != nil {
		t.Fatal(err)
	}
	if s.configures != 1 {
		t.Errorf("got %d configurations, want 1", s.configures)
	}
	if got := c.Config().Size; got != image.Pt(800, 600) {
		t.Errorf("configured size %v, want (800,600)", got)
	}
}

func TestNewPrefersSRGB(t *testing.T) {
	s := newFakeSurface(FormatRGBA8, FormatSRGBA8)
	c, err := New(s, image.Pt(100, 100))
	if err != nil {
		t.Fatal(err)
	}
	if got := c.Config().Format; !got.SRGB() {
		t.Errorf("selected format %v, want an sRGB format", got)
	}
}

func TestNewFallsBackToFirstFormat(t *testing.T) {
	s := newFakeSurface(FormatRGBA8)
	c, err := New(s, image.Pt(100, 100))
	if err != nil {
		t.Fatal(err)
	}
	if got := c.Config().Format; got != FormatRGBA8 {
		t.Errorf("selected format %v, want RGBA8", got)
	}
}

func TestNewRejectsEmptySize(t *testing.T) {
	for _, size := range []image.Point{{}, {X: 800}, {Y: 600}, {X: -1, Y: 600}} {
		if _, err := New(newFakeSurface(FormatRGBA8), size); err == nil {
			t.Errorf("New with size %v: expected error", size)
		}
	}
}

func TestNewPropagatesConfigureError(t *testing.T) {
	s := newFakeSurface(FormatRGBA8)
	s.configureErr = ErrOutOfMemory
	if _, err := New(s, image.Pt(100, 100)); !errors.Is(err, ErrOutOfMemory) {
		t.Errorf("got %v, want ErrOutOfMemory", err)
	}
}

func TestResize(t *testing.T) {
	s := newFakeSurface(FormatSRGBA8)
	c, err := New(s, image.Pt(800, 600))
	if err != nil {
		t.Fatal(err)
	}
	if err := c.Resize(image.Pt(1024, 768)); err != nil {
		t.Fatal(err)
	}
	if got := c.Config().Size; got != image.Pt(1024, 768) {
		t.Errorf("configured size %v, want (1024,768)", got)
	}
	frame, err := c.AcquireFrame()
	if err != nil {
		t.Fatal(err)
	}
	if frame.Size != image.Pt(1024, 768) {
		t.Errorf("frame size %v does not match surface size", frame.Size)
	}
}

func TestResizeZeroAreaIsNoOp(t *testing.T) {
	s := newFakeSurface(FormatSRGBA8)
	c, err := New(s, image.Pt(800, 600))
	if err != nil {
		t.Fatal(err)
	}
	before := s.configures
	for _, size := range []image.Point{{}, {X: 800}, {Y: 600}} {
		if err := c.Resize(size); err != nil {
			t.Fatalf("Resize(%v): %v", size, err)
		}
	}
	if s.configures != before {
		t.Errorf("zero-area resize reconfigured the surface %d times", s.configures-before)
	}
	if got := c.Config().Size; got != image.Pt(800, 600) {
		t.Errorf("configuration changed to %v on zero-area resize", got)
	}
	// A later valid resize still works.
	if err := c.Resize(image.Pt(640, 480)); err != nil {
		t.Fatal(err)
	}
	if got := c.Config().Size; got != image.Pt(640, 480) {
		t.Errorf("configured size %v, want (640,480)", got)
	}
}

func TestAcquireFrameStaleSurface(t *testing.T) {
	s := newFakeSurface(FormatSRGBA8)
	c, err := New(s, image.Pt(800, 600))
	if err != nil {
		t.Fatal(err)
	}
	// The surface changed size behind the configuration's back.
	s.size = image.Pt(400, 300)
	if _, err := c.AcquireFrame(); !errors.Is(err, ErrSurfaceOutdated) {
		t.Errorf("got %v, want ErrSurfaceOutdated", err)
	}
	// Reconfiguring restores acquisition.
	if err := c.Resize(image.Pt(400, 300)); err != nil {
		t.Fatal(err)
	}
	frame, err := c.AcquireFrame()
	if err != nil {
		t.Fatal(err)
	}
	if frame.Size != image.Pt(400, 300) {
		t.Errorf("frame size %v, want (400,300)", frame.Size)
	}
}

func TestReconfigure(t *testing.T) {
	s := newFakeSurface(FormatSRGBA8)
	c, err := New(s, image.Pt(800, 600))
	if err != nil {
		t.Fatal(err)
	}
	before := s.configures
	if err := c.Reconfigure(); err != nil {
		t.Fatal(err)
	}
	if s.configures != before+1 {
		t.Errorf("got %d reconfigurations, want 1", s.configures-before)
	}
	if s.format != FormatSRGBA8 {
		t.Errorf("reconfigured with format %v, want SRGBA8", s.format)
	}
}

func TestPresent(t *testing.T) {
	s := newFakeSurface(FormatSRGBA8)
	c, err := New(s, image.Pt(800, 600))
	if err != nil {
		t.Fatal(err)
	}
	frame, err := c.AcquireFrame()
	if err != nil {
		t.Fatal(err)
	}
	if err := c.Present(frame); err != nil {
		t.Fatal(err)
	}
	if s.presents != 1 {
		t.Errorf("got %d presents, want 1", s.presents)
	}
	s.presentErr = ErrSurfaceLost
	if err := c.Present(frame); !errors.Is(err, ErrSurfaceLost) {
		t.Errorf("got %v, want ErrSurfaceLost", err)
	}
}

func TestRecoverable(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{ErrSurfaceLost, true},
		{ErrSurfaceOutdated, true},
		{ErrAcquireTimeout, true},
		{ErrOutOfMemory, false},
		{fmt.Errorf("resize: %w", ErrSurfaceOutdated), true},
		{fmt.Errorf("present: %w", ErrOutOfMemory), false},
		{errors.New("unclassified"), false},
		{nil, false},
	}
	for _, tc := range tests {
		if got := Recoverable(tc.err); got != tc.want {
			t.Errorf("Recoverable(%v) = %v, want %v", tc.err, got, tc.want)
		}
	}
}

func TestFormatString(t *testing.T) {
	if got := FormatSRGBA8.String(); got != "SRGBA8" {
		t.Errorf("got %q, want SRGBA8", got)
	}
	if got := FormatRGBA8.String(); got != "RGBA8" {
		t.Errorf("got %q, want RGBA8", got)
	}
}
