// SPDX-License-Identifier: Unlicense OR MIT

package host

import (
	"image"
	"time"

	"gioui.org/f32"
	"gioui.org/io/key"
	"gioui.org/io/pointer"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// scrollPxPerStep is the pixel distance of one mouse wheel notch.
const scrollPxPerStep = 50

// registerCallbacks translates GLFW input and lifecycle events into the
// UI event vocabulary and buffers them for the next frame. Resizes are
// applied to the surface configuration synchronously, before any
// subsequent frame acquisition.
func (h *Host) registerCallbacks() {
	h.win.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		if h.state != stateRunning {
			return
		}
		if err := h.ctx.Resize(image.Pt(width, height)); err != nil {
			h.recoverSurface(err)
		}
	})
	h.win.SetCursorPosCallback(func(w *glfw.Window, xpos, ypos float64) {
		scale := h.pixelScale()
		h.lastPos = f32.Point{X: float32(xpos) * scale, Y: float32(ypos) * scale}
		h.queueEvent(pointer.Event{
			Type:     pointer.Move,
			Source:   pointer.Mouse,
			Position: h.lastPos,
			Buttons:  h.buttons,
			Time:     h.now(),
		})
	})
	h.win.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		var btn pointer.Buttons
		switch button {
		case glfw.MouseButton1:
			btn = pointer.ButtonLeft
		case glfw.MouseButton2:
			btn = pointer.ButtonRight
		case glfw.MouseButton3:
			btn = pointer.ButtonMiddle
		default:
			return
		}
		var typ pointer.Type
		switch action {
		case glfw.Press:
			typ = pointer.Press
			h.buttons |= btn
		case glfw.Release:
			typ = pointer.Release
			h.buttons &^= btn
		default:
			return
		}
		h.queueEvent(pointer.Event{
			Type:      typ,
			Source:    pointer.Mouse,
			Position:  h.lastPos,
			Buttons:   h.buttons,
			Modifiers: modifiers(mods),
			Time:      h.now(),
		})
	})
	h.win.SetScrollCallback(func(w *glfw.Window, xoff, yoff float64) {
		h.queueEvent(pointer.Event{
			Type:     pointer.Scroll,
			Source:   pointer.Mouse,
			Position: h.lastPos,
			Buttons:  h.buttons,
			Scroll:   f32.Point{X: float32(-xoff) * scrollPxPerStep, Y: float32(-yoff) * scrollPxPerStep},
			Time:     h.now(),
		})
	})
	h.win.SetKeyCallback(func(w *glfw.Window, k glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if action != glfw.Press && action != glfw.Repeat {
			return
		}
		name, ok := keyName(k)
		if !ok {
			return
		}
		h.queueEvent(key.Event{
			Name:      name,
			Modifiers: modifiers(mods),
		})
	})
	h.win.SetCharCallback(func(w *glfw.Window, r rune) {
		h.queueEvent(key.EditEvent{Text: string(r)})
	})
}

// pixelScale converts window coordinates to framebuffer pixels.
func (h *Host) pixelScale() float32 {
	ww, _ := h.win.GetSize()
	if ww == 0 {
		return 1
	}
	fbw, _ := h.win.GetFramebufferSize()
	return float32(fbw) / float32(ww)
}

func (h *Host) now() time.Duration {
	return time.Since(h.start)
}

func modifiers(mods glfw.ModifierKey) key.Modifiers {
	var m key.Modifiers
	if mods&glfw.ModControl != 0 {
		m |= key.ModCtrl
	}
	if mods&glfw.ModShift != 0 {
		m |= key.ModShift
	}
	if mods&glfw.ModAlt != 0 {
		m |= key.ModAlt
	}
	if mods&glfw.ModSuper != 0 {
		m |= key.ModSuper
	}
	return m
}

// keyName maps a GLFW key to the UI key vocabulary. Unmapped keys are
// dropped; text input arrives through the char callback instead.
func keyName(k glfw.Key) (string, bool) {
	switch {
	case k >= glfw.KeyA && k <= glfw.KeyZ:
		return string(rune('A' + (k - glfw.KeyA))), true
	case k >= glfw.Key0 && k <= glfw.Key9:
		return string(rune('0' + (k - glfw.Key0))), true
	}
	switch k {
	case glfw.KeyEnter, glfw.KeyKPEnter:
		return key.NameReturn, true
	case glfw.KeyEscape:
		return key.NameEscape, true
	case glfw.KeyBackspace:
		return key.NameDeleteBackward, true
	case glfw.KeyDelete:
		return key.NameDeleteForward, true
	case glfw.KeyTab:
		return key.NameTab, true
	case glfw.KeySpace:
		return "Space", true
	case glfw.KeyLeft:
		return key.NameLeftArrow, true
	case glfw.KeyRight:
		return key.NameRightArrow, true
	case glfw.KeyUp:
		return key.NameUpArrow, true
	case glfw.KeyDown:
		return key.NameDownArrow, true
	case glfw.KeyHome:
		return key.NameHome, true
	case glfw.KeyEnd:
		return key.NameEnd, true
	case glfw.KeyPageUp:
		return key.NamePageUp, true
	case glfw.KeyPageDown:
		return key.NamePageDown, true
	default:
		return "", false
	}
}
