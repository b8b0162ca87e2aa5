// SPDX-License-Identifier: Unlicense OR MIT

package gallery

import (
	"fmt"
	"image"
	"image/color"

	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"golang.org/x/image/colornames"
)

// paintRect fills a rectangle at the current origin.
func paintRect(ops *op.Ops, size image.Point, col color.RGBA) {
	stack := op.Push(ops)
	clip.Rect(image.Rectangle{Max: size}).Add(ops)
	paint.ColorOp{Color: col}.Add(ops)
	paint.PaintOp{}.Add(ops)
	stack.Pop()
}

// separator is a thin horizontal rule spanning the available width.
func separator(gtx C) D {
	size := image.Pt(gtx.Constraints.Max.X, gtx.Px(unit.Dp(1)))
	paintRect(gtx.Ops, size, borderColor)
	return D{Size: size}
}

// selectableLabel is a label with a highlighted background while
// selected.
func selectableLabel(gtx C, th *material.Theme, click *widget.Clickable, selected bool, txt string) D {
	return material.Clickable(gtx, click, func(gtx C) D {
		return layout.Stack{}.Layout(gtx,
			layout.Expanded(func(gtx C) D {
				if selected {
					paintRect(gtx.Ops, gtx.Constraints.Min, th.Color.Primary)
				}
				return D{Size: gtx.Constraints.Min}
			}),
			layout.Stacked(func(gtx C) D {
				return layout.UniformInset(unit.Dp(6)).Layout(gtx, func(gtx C) D {
					lbl := material.Body1(th, txt)
					if selected {
						lbl.Color = th.Color.InvText
					}
					return lbl.Layout(gtx)
				})
			}),
		)
	})
}

// hoverArea tracks whether the pointer is inside the widget it wraps.
type hoverArea struct {
	hovered bool
}

func (h *hoverArea) Hovered() bool {
	return h.hovered
}

func (h *hoverArea) Layout(gtx C, w layout.Widget) D {
	for _, e := range gtx.Events(h) {
		e, ok := e.(pointer.Event)
		if !ok {
			continue
		}
		switch e.Type {
		case pointer.Enter:
			h.hovered = true
		case pointer.Leave, pointer.Cancel:
			h.hovered = false
		}
	}
	dims := w(gtx)
	stack := op.Push(gtx.Ops)
	pointer.Rect(image.Rectangle{Max: dims.Size}).Add(gtx.Ops)
	pointer.InputOp{Tag: h, Types: pointer.Enter | pointer.Leave}.Add(gtx.Ops)
	stack.Pop()
	return dims
}

// dragValue adjusts a numeric value by horizontal pointer drags, one
// unit per pixel.
type dragValue struct {
	dragging bool
	lastX    float32
}

func (d *dragValue) layout(gtx C, th *material.Theme, value *float32) D {
	for _, e := range gtx.Events(d) {
		e, ok := e.(pointer.Event)
		if !ok {
			continue
		}
		switch e.Type {
		case pointer.Press:
			d.dragging = true
			d.lastX = e.Position.X
		case pointer.Drag:
			if !d.dragging {
				break
			}
			*value = clampScalar(*value + e.Position.X - d.lastX)
			d.lastX = e.Position.X
		case pointer.Release, pointer.Cancel:
			d.dragging = false
		}
	}
	border := widget.Border{Color: borderColor, CornerRadius: unit.Dp(4), Width: unit.Px(1)}
	dims := border.Layout(gtx, func(gtx C) D {
		return layout.UniformInset(unit.Dp(6)).Layout(gtx, func(gtx C) D {
			lbl := material.Body1(th, fmt.Sprintf("%.1f", *value))
			lbl.Color = th.Color.Primary
			return lbl.Layout(gtx)
		})
	})
	stack := op.Push(gtx.Ops)
	pointer.Rect(image.Rectangle{Max: dims.Size}).Add(gtx.Ops)
	pointer.InputOp{
		Tag:   d,
		Grab:  d.dragging,
		Types: pointer.Press | pointer.Drag | pointer.Release,
	}.Add(gtx.Ops)
	stack.Pop()
	return dims
}

// comboBox is a drop-down selector: a clickable current-value row that
// expands into the option list in place.
type comboBox struct {
	button   widget.Clickable
	options  [3]widget.Clickable
	expanded bool
	caret    *widget.Icon
}

func (c *comboBox) update(g *Gallery) {
	for c.button.Clicked() {
		c.expanded = !c.expanded
	}
	for i := range c.options {
		for c.options[i].Clicked() {
			g.Select(choices[i])
			c.expanded = false
		}
	}
}

func (c *comboBox) layout(gtx C, th *material.Theme, current Choice) D {
	children := []layout.FlexChild{
		layout.Rigid(func(gtx C) D {
			border := widget.Border{Color: borderColor, CornerRadius: unit.Dp(4), Width: unit.Px(1)}
			return border.Layout(gtx, func(gtx C) D {
				return material.Clickable(gtx, &c.button, func(gtx C) D {
					return layout.UniformInset(unit.Dp(6)).Layout(gtx, func(gtx C) D {
						return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
							layout.Rigid(material.Body1(th, current.Label()).Layout),
							layout.Rigid(func(gtx C) D {
								if c.caret == nil {
									return D{}
								}
								size := gtx.Px(unit.Dp(18))
								c.caret.Layout(gtx, unit.Px(float32(size)))
								return D{Size: image.Pt(size, size)}
							}),
						)
					})
				})
			})
		}),
	}
	if c.expanded {
		for i := range choices {
			i := i
			children = append(children, layout.Rigid(func(gtx C) D {
				return material.Clickable(gtx, &c.options[i], func(gtx C) D {
					return layout.UniformInset(unit.Dp(6)).Layout(gtx,
						material.Body1(th, choices[i].Label()).Layout)
				})
			}))
		}
	}
	return layout.Flex{Axis: layout.Vertical}.Layout(gtx, children...)
}

// colorPicker shows the current color as a swatch that expands into a
// fixed palette.
type colorPicker struct {
	toggle   widget.Clickable
	swatches []widget.Clickable
	palette  []color.RGBA
	expanded bool
}

func defaultPalette() []color.RGBA {
	return []color.RGBA{
		colornames.Lightblue,
		colornames.Steelblue,
		colornames.Seagreen,
		colornames.Goldenrod,
		colornames.Tomato,
		colornames.Orchid,
		colornames.Slategray,
		colornames.Black,
	}
}

func (p *colorPicker) update(g *Gallery) {
	for p.toggle.Clicked() {
		p.expanded = !p.expanded
	}
	for i := range p.swatches {
		for p.swatches[i].Clicked() {
			g.color = p.palette[i]
			p.expanded = false
		}
	}
}

func (p *colorPicker) layout(gtx C, th *material.Theme, current *color.RGBA) D {
	swatch := func(gtx C, col color.RGBA, click *widget.Clickable) D {
		return material.Clickable(gtx, click, func(gtx C) D {
			size := gtx.Px(unit.Dp(22))
			paintRect(gtx.Ops, image.Pt(size, size), col)
			return D{Size: image.Pt(size, size)}
		})
	}
	children := []layout.FlexChild{
		layout.Rigid(func(gtx C) D {
			border := widget.Border{Color: borderColor, Width: unit.Px(1)}
			return border.Layout(gtx, func(gtx C) D {
				return swatch(gtx, *current, &p.toggle)
			})
		}),
	}
	if p.expanded {
		for i := range p.palette {
			i := i
			children = append(children, layout.Rigid(func(gtx C) D {
				return layout.Inset{Left: unit.Dp(4)}.Layout(gtx, func(gtx C) D {
					return swatch(gtx, p.palette[i], &p.swatches[i])
				})
			}))
		}
	}
	return layout.Flex{Alignment: layout.Middle}.Layout(gtx, children...)
}

// collapsible hides its content behind a clickable header.
type collapsible struct {
	header widget.Clickable
	open   bool
}

func (c *collapsible) update() {
	for c.header.Clicked() {
		c.open = !c.open
	}
}

func (c *collapsible) layout(gtx C, th *material.Theme) D {
	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(func(gtx C) D {
			return material.Clickable(gtx, &c.header, func(gtx C) D {
				return layout.UniformInset(unit.Dp(6)).Layout(gtx, func(gtx C) D {
					lbl := material.Body1(th, "Click to see what is hidden!")
					lbl.Color = linkColor
					return lbl.Layout(gtx)
				})
			})
		}),
		layout.Rigid(func(gtx C) D {
			if !c.open {
				return D{}
			}
			return layout.UniformInset(unit.Dp(6)).Layout(gtx, func(gtx C) D {
				return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
					layout.Rigid(material.Body1(th, "It's a ").Layout),
					layout.Rigid(func(gtx C) D {
						return layout.Inset{Left: unit.Dp(4)}.Layout(gtx, func(gtx C) D {
							size := gtx.Px(unit.Dp(20))
							gtx.Constraints.Min = image.Pt(size, size)
							return material.Loader(th).Layout(gtx)
						})
					}),
				)
			})
		}),
	)
}
