// SPDX-License-Identifier: Unlicense OR MIT

// Package gallery is the demonstration payload: a fixed widget tree
// exercising one instance of each supported widget kind, redeclared
// every frame from plain display state.
package gallery

import (
	"fmt"
	"image"
	"image/color"
	"log"

	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"github.com/pkg/browser"
	"golang.org/x/exp/shiny/materialdesign/icons"
)

type (
	C = layout.Context
	D = layout.Dimensions
)

// Choice is the gallery's enumerated selection. Values compare by
// structural equality.
type Choice string

const (
	First  Choice = "first"
	Second Choice = "second"
	Third  Choice = "third"
)

var choices = [3]Choice{First, Second, Third}

// Label returns the display name of the choice.
func (c Choice) Label() string {
	switch c {
	case First:
		return "First"
	case Second:
		return "Second"
	case Third:
		return "Third"
	default:
		return string(c)
	}
}

const linkURL = "https://gioui.org"

var (
	panelColor  = color.RGBA{R: 0xfa, G: 0xfa, B: 0xfa, A: 0xff}
	borderColor = color.RGBA{R: 0xc0, G: 0xc4, B: 0xcc, A: 0xff}
	linkColor   = color.RGBA{R: 0x1a, G: 0x63, B: 0xc4, A: 0xff}
)

// Gallery holds the widget states persisted across frames.
type Gallery struct {
	th *material.Theme

	boolean widget.Bool
	choice  widget.Enum
	scalar  widget.Float
	editor  widget.Editor
	color   color.RGBA
	animate bool
	open    bool

	hello     widget.Clickable
	button    widget.Clickable
	link      widget.Clickable
	hyperlink widget.Clickable
	closeBtn  widget.Clickable
	reopen    widget.Clickable
	selects   [3]widget.Clickable

	combo   comboBox
	drag    dragValue
	picker  colorPicker
	section collapsible
	hover   hoverArea

	list layout.List

	linkIcon  *widget.Icon
	closeIcon *widget.Icon
}

func New(th *material.Theme) *Gallery {
	g := &Gallery{
		th:        th,
		color:     color.RGBA{R: 0xad, G: 0xd8, B: 0xe6, A: 0xff},
		open:      true,
		list:      layout.List{Axis: layout.Vertical},
		linkIcon:  loadIcon(icons.ActionOpenInNew),
		closeIcon: loadIcon(icons.NavigationClose),
	}
	g.choice.Value = string(First)
	g.scalar.Value = 42
	g.editor.SingleLine = true
	g.combo.caret = loadIcon(icons.NavigationArrowDropDown)
	g.picker.palette = defaultPalette()
	g.picker.swatches = make([]widget.Clickable, len(g.picker.palette))
	return g
}

func loadIcon(data []byte) *widget.Icon {
	ic, err := widget.NewIcon(data)
	if err != nil {
		return nil
	}
	return ic
}

// Selected returns the current selection.
func (g *Gallery) Selected() Choice {
	return Choice(g.choice.Value)
}

// Select makes c the one selected option.
func (g *Gallery) Select(c Choice) {
	g.choice.Value = string(c)
}

// IsSelected reports whether c is the selected option.
func (g *Gallery) IsSelected(c Choice) bool {
	return g.choice.Value == string(c)
}

// SetScalar sets the slider value, clamped to its [0, 360] range.
func (g *Gallery) SetScalar(v float32) {
	g.scalar.Value = clampScalar(v)
}

func (g *Gallery) Scalar() float32 {
	return g.scalar.Value
}

// Fraction is the progress bar fill, the scalar's position in its
// range.
func (g *Gallery) Fraction() float32 {
	return g.scalar.Value / 360
}

func (g *Gallery) Boolean() bool {
	return g.boolean.Value
}

// Animating reports whether the progress bar animates; true exactly
// while the pointer hovers it.
func (g *Gallery) Animating() bool {
	return g.animate
}

// Open reports whether the gallery card is shown.
func (g *Gallery) Open() bool {
	return g.open
}

func clampScalar(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 360 {
		return 360
	}
	return v
}

// update applies the interactions gathered since the last frame to the
// display state.
func (g *Gallery) update(gtx C) {
	for g.hello.Clicked() {
		log.Println("Button Clicked!")
	}
	for g.button.Clicked() {
		g.boolean.Value = !g.boolean.Value
	}
	for g.link.Clicked() {
		g.boolean.Value = !g.boolean.Value
	}
	for g.hyperlink.Clicked() {
		if err := browser.OpenURL(linkURL); err != nil {
			log.Printf("gallery: opening %s: %v", linkURL, err)
		}
	}
	for i := range g.selects {
		for g.selects[i].Clicked() {
			g.Select(choices[i])
		}
	}
	for g.closeBtn.Clicked() {
		g.open = false
	}
	for g.reopen.Clicked() {
		g.open = true
	}
	g.combo.update(g)
	g.picker.update(g)
	g.section.update()
	g.refresh()
	g.scalar.Value = clampScalar(g.scalar.Value)
}

// refresh derives display state that follows the pointer rather than
// discrete interactions.
func (g *Gallery) refresh() {
	g.animate = g.hover.Hovered()
}

// Layout declares the widget tree for this frame.
func (g *Gallery) Layout(gtx C) D {
	g.update(gtx)
	paintRect(gtx.Ops, gtx.Constraints.Max, panelColor)
	return layout.UniformInset(unit.Dp(16)).Layout(gtx, func(gtx C) D {
		return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
			layout.Rigid(g.layoutGreeting),
			layout.Rigid(func(gtx C) D {
				return D{Size: image.Pt(0, gtx.Px(unit.Dp(12)))}
			}),
			layout.Flexed(1, g.layoutCard),
		)
	})
}

func (g *Gallery) layoutGreeting(gtx C) D {
	return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
		layout.Rigid(material.H5(g.th, "Hello World").Layout),
		layout.Rigid(func(gtx C) D {
			return layout.Inset{Left: unit.Dp(16)}.Layout(gtx,
				material.Button(g.th, &g.hello, "Click Me!").Layout)
		}),
	)
}

func (g *Gallery) layoutCard(gtx C) D {
	if !g.open {
		return layout.Center.Layout(gtx,
			material.Button(g.th, &g.reopen, "Show Widget Gallery").Layout)
	}
	border := widget.Border{Color: borderColor, CornerRadius: unit.Dp(8), Width: unit.Px(1)}
	return border.Layout(gtx, func(gtx C) D {
		return layout.UniformInset(unit.Dp(12)).Layout(gtx, func(gtx C) D {
			return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
				layout.Rigid(g.layoutTitle),
				layout.Rigid(separator),
				layout.Flexed(1, g.layoutRows),
			)
		})
	})
}

func (g *Gallery) layoutTitle(gtx C) D {
	return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
		layout.Flexed(1, material.H6(g.th, "Widget Gallery").Layout),
		layout.Rigid(func(gtx C) D {
			if g.closeIcon == nil {
				return material.Button(g.th, &g.closeBtn, "Close").Layout(gtx)
			}
			btn := material.IconButton(g.th, &g.closeBtn, g.closeIcon)
			btn.Size = unit.Dp(20)
			btn.Inset = layout.UniformInset(unit.Dp(4))
			return btn.Layout(gtx)
		}),
	)
}

type row struct {
	name string
	w    layout.Widget
}

func (g *Gallery) layoutRows(gtx C) D {
	rows := []row{
		{"Label", material.Body1(g.th, "Welcome to the widget gallery!").Layout},
		{"Hyperlink", g.layoutHyperlink},
		{"TextEdit", g.layoutEditor},
		{"Button", material.Button(g.th, &g.button, "Click me!").Layout},
		{"Link", g.layoutLink},
		{"Checkbox", material.CheckBox(g.th, &g.boolean, "Checkbox").Layout},
		{"RadioButton", g.layoutRadio},
		{"SelectableLabel", g.layoutSelectable},
		{"ComboBox", func(gtx C) D { return g.combo.layout(gtx, g.th, g.Selected()) }},
		{"Slider", g.layoutSlider},
		{"DragValue", func(gtx C) D { return g.drag.layout(gtx, g.th, &g.scalar.Value) }},
		{"ProgressBar", g.layoutProgress},
		{"Color picker", func(gtx C) D { return g.picker.layout(gtx, g.th, &g.color) }},
		{"Separator", separator},
		{"CollapsingHeader", func(gtx C) D { return g.section.layout(gtx, g.th) }},
	}
	return g.list.Layout(gtx, len(rows), func(gtx C, i int) D {
		return layout.Inset{Top: unit.Dp(6), Bottom: unit.Dp(6)}.Layout(gtx, func(gtx C) D {
			return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
				layout.Rigid(rowLabel(g.th, rows[i].name)),
				layout.Flexed(1, rows[i].w),
			)
		})
	})
}

func rowLabel(th *material.Theme, name string) layout.Widget {
	return func(gtx C) D {
		width := gtx.Px(unit.Dp(140))
		gtx.Constraints.Min.X = width
		gtx.Constraints.Max.X = width
		lbl := material.Body2(th, name)
		lbl.Color = th.Color.Hint
		return lbl.Layout(gtx)
	}
}

func (g *Gallery) layoutHyperlink(gtx C) D {
	return material.Clickable(gtx, &g.hyperlink, func(gtx C) D {
		return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
			layout.Rigid(func(gtx C) D {
				if g.linkIcon == nil {
					return D{}
				}
				size := gtx.Px(unit.Dp(16))
				g.linkIcon.Layout(gtx, unit.Px(float32(size)))
				return D{Size: image.Pt(size, size)}
			}),
			layout.Rigid(func(gtx C) D {
				return layout.Inset{Left: unit.Dp(4)}.Layout(gtx, func(gtx C) D {
					lbl := material.Body1(g.th, "gioui.org")
					lbl.Color = linkColor
					return lbl.Layout(gtx)
				})
			}),
		)
	})
}

func (g *Gallery) layoutEditor(gtx C) D {
	border := widget.Border{Color: borderColor, CornerRadius: unit.Dp(4), Width: unit.Px(1)}
	return border.Layout(gtx, func(gtx C) D {
		return layout.UniformInset(unit.Dp(6)).Layout(gtx,
			material.Editor(g.th, &g.editor, "Write something here").Layout)
	})
}

func (g *Gallery) layoutLink(gtx C) D {
	return material.Clickable(gtx, &g.link, func(gtx C) D {
		return layout.UniformInset(unit.Dp(4)).Layout(gtx, func(gtx C) D {
			lbl := material.Body1(g.th, "Click me!")
			lbl.Color = linkColor
			return lbl.Layout(gtx)
		})
	})
}

func (g *Gallery) layoutRadio(gtx C) D {
	children := make([]layout.FlexChild, 0, len(choices))
	for _, c := range choices {
		c := c
		children = append(children, layout.Rigid(func(gtx C) D {
			return layout.Inset{Right: unit.Dp(8)}.Layout(gtx,
				material.RadioButton(g.th, &g.choice, string(c), c.Label()).Layout)
		}))
	}
	return layout.Flex{}.Layout(gtx, children...)
}

func (g *Gallery) layoutSelectable(gtx C) D {
	children := make([]layout.FlexChild, 0, len(choices))
	for i := range choices {
		i := i
		children = append(children, layout.Rigid(func(gtx C) D {
			return layout.Inset{Right: unit.Dp(8)}.Layout(gtx, func(gtx C) D {
				return selectableLabel(gtx, g.th, &g.selects[i], g.IsSelected(choices[i]), choices[i].Label())
			})
		}))
	}
	return layout.Flex{}.Layout(gtx, children...)
}

func (g *Gallery) layoutSlider(gtx C) D {
	return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
		layout.Flexed(1, material.Slider(g.th, &g.scalar, 0, 360).Layout),
		layout.Rigid(func(gtx C) D {
			return layout.Inset{Left: unit.Dp(8)}.Layout(gtx,
				material.Body1(g.th, fmt.Sprintf("%.0f°", g.scalar.Value)).Layout)
		}),
	)
}

func (g *Gallery) layoutProgress(gtx C) D {
	if g.animate {
		// Keep redrawing while the bar animates under the pointer.
		op.InvalidateOp{}.Add(gtx.Ops)
	}
	percent := int(g.Fraction()*100 + 0.5)
	return g.hover.Layout(gtx, func(gtx C) D {
		return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
			layout.Flexed(1, material.ProgressBar(g.th, percent).Layout),
			layout.Rigid(func(gtx C) D {
				return layout.Inset{Left: unit.Dp(8)}.Layout(gtx,
					material.Body2(g.th, fmt.Sprintf("%d%%", percent)).Layout)
			}),
		)
	})
}
