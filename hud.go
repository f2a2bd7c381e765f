package main

import (
	"fmt"
	"image"
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// HUD is the camera readout panel. While the cursor is over it the camera
// ignores pointer input.
type HUD struct {
	g     *Game
	ui    *ebitenui.UI
	panel *widget.Container

	scale  *widget.Text
	target *widget.Text
	phase  *widget.Text
	pos    *widget.Text
}

func NewHUD(g *Game) *HUD {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 180})
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255})
	btnHover := imageui.NewNineSliceColor(color.NRGBA{R: 0x44, G: 0x44, B: 0x44, A: 255})

	var face ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)
	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	btnTextColor := &widget.ButtonTextColor{Idle: white}

	label := func() *widget.Text {
		return widget.NewText(widget.TextOpts.Text("", &face, white))
	}
	h := &HUD{g: g, scale: label(), target: label(), phase: label(), pos: label()}

	button := func(text string, onClick func()) *widget.Button {
		return widget.NewButton(
			widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Hover: btnHover, Pressed: btnImg}),
			widget.ButtonOpts.Text(text, &face, btnTextColor),
			widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Stretch: true})),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				onClick()
			}),
		)
	}

	h.panel = widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(6),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 10, Bottom: 10, Left: 12, Right: 12}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(200, 0),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)
	h.panel.AddChild(h.scale)
	h.panel.AddChild(h.target)
	h.panel.AddChild(h.phase)
	h.panel.AddChild(h.pos)
	h.panel.AddChild(button("Reset zoom (R)", g.resetZoom))
	h.panel.AddChild(button("Copy pose (C)", g.copyPose))

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(h.panel)

	h.ui = &ebitenui.UI{Container: root}
	h.Refresh()
	return h
}

func (h *HUD) UI() *ebitenui.UI {
	return h.ui
}

// Hovered reports whether the window pixel (x, y) is over the panel.
func (h *HUD) Hovered(x, y int) bool {
	return image.Pt(x, y).In(h.panel.GetWidget().Rect)
}

func (h *HUD) Refresh() {
	st, proj, tr, ok := h.g.cameraView()
	if !ok {
		h.scale.Label = "no camera"
		return
	}
	h.scale.Label = fmt.Sprintf("scale  %.4f", proj.Scale)
	h.target.Label = fmt.Sprintf("target %.4f", st.TargetZoom)
	h.phase.Label = fmt.Sprintf("phase  %s", st.Phase)
	h.pos.Label = fmt.Sprintf("pos    %.1f, %.1f", tr.Translation.X, tr.Translation.Y)
}
