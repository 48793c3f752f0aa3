package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/hailam/boarddraw/internal/board"
	"github.com/hailam/boarddraw/internal/layout"
)

const (
	overlayPadding = 8
	overlayMargin  = 10
)

// Overlay is the F3 debug panel showing the current layout inputs.
type Overlay struct {
	visible bool
	lines   []string
}

// NewOverlay creates an overlay, initially shown if visible is set.
func NewOverlay(visible bool) *Overlay {
	return &Overlay{visible: visible}
}

// Toggle flips overlay visibility.
func (o *Overlay) Toggle() {
	o.visible = !o.visible
}

// Visible reports whether the overlay is drawn.
func (o *Overlay) Visible() bool {
	return o.visible
}

// Update rebuilds the overlay text for window w and the hovered cell.
func (o *Overlay) Update(w layout.Window, b *board.Board, hover *board.Cell) {
	if !o.visible {
		return
	}
	size := layout.CellSize(board.CellSizeFactor, w)
	o.lines = append(o.lines[:0],
		fmt.Sprintf("window %4.0fx%-4.0f", w.Width, w.Height),
		fmt.Sprintf("side   %4.0f", layout.Side(w)),
		fmt.Sprintf("cell   %6.2f", size.Width),
		fmt.Sprintf("cells  %d", b.Len()),
		fmt.Sprintf("fps    %5.1f", ebiten.ActualFPS()),
	)
	if hover != nil {
		o.lines = append(o.lines,
			fmt.Sprintf("hover  %v %v", hover.Coord, hover.Material),
			fmt.Sprintf("center %.1f,%.1f", hover.Center.X, hover.Center.Y),
		)
	}
}

// Draw draws the overlay in the top-left corner.
func (o *Overlay) Draw(screen *ebiten.Image, theme *Theme, scale float64) {
	if !o.visible || len(o.lines) == 0 {
		return
	}
	title := faceWithSize(boldFace, titleFontSize*scale)
	body := faceWithSize(monoFace, defaultFontSize*scale)
	if title == nil || body == nil {
		return
	}

	const heading = "Layout"
	lineHeight := body.Size * 1.4
	width, _ := MeasureText(heading, title)
	for _, l := range o.lines {
		if lw, _ := MeasureText(l, body); lw > width {
			width = lw
		}
	}
	pad := overlayPadding * scale
	x := overlayMargin * scale
	y := overlayMargin * scale
	height := title.Size*1.4 + lineHeight*float64(len(o.lines))

	vector.DrawFilledRect(screen, float32(x), float32(y), float32(width+2*pad), float32(height+2*pad), theme.OverlayBack, false)

	ty := y + pad
	o.drawLine(screen, heading, title, x+pad, ty, theme)
	ty += title.Size * 1.4
	for _, l := range o.lines {
		o.drawLine(screen, l, body, x+pad, ty, theme)
		ty += lineHeight
	}
}

func (o *Overlay) drawLine(screen *ebiten.Image, s string, face *text.GoTextFace, x, y float64, theme *Theme) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(theme.TextColor)
	text.Draw(screen, s, face, op)
}
