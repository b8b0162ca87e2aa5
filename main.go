// SPDX-License-Identifier: Unlicense OR MIT

// Command gio-glfw-gallery opens one window with an OpenGL surface and
// renders an immediate mode widget gallery into it until the window is
// closed.
package main

import (
	"log"
	"runtime"

	"gioui.org/font/gofont"
	"gioui.org/widget/material"

	"github.com/PaxPlay/gio-glfw-gallery/gallery"
	"github.com/PaxPlay/gio-glfw-gallery/gfx"
	"github.com/PaxPlay/gio-glfw-gallery/host"
	"github.com/PaxPlay/gio-glfw-gallery/render"
)

func main() {
	// GLFW requires the window and its context on the main thread.
	runtime.LockOSThread()

	h := host.New()
	if err := h.Start(); err != nil {
		log.Fatal(err)
	}
	defer h.Stop()

	device, err := gfx.NewGLDevice()
	if err != nil {
		log.Fatal(err)
	}

	th := material.NewTheme(gofont.Collection())
	r := render.New(device, gallery.New(th))
	defer r.Release()

	if err := h.Run(r); err != nil {
		log.Fatal(err)
	}
}
