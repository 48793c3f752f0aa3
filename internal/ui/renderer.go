package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/hailam/boarddraw/internal/board"
	"github.com/hailam/boarddraw/internal/layout"
)

// Theme defines the colors not covered by the cell tiles.
type Theme struct {
	Background  color.RGBA
	HoverColor  color.RGBA
	OverlayBack color.RGBA
	TextColor   color.RGBA
}

// DefaultTheme returns the default color theme.
func DefaultTheme() *Theme {
	return &Theme{
		Background:  color.RGBA{0, 0, 0, 255},
		HoverColor:  color.RGBA{247, 247, 105, 90},
		OverlayBack: color.RGBA{40, 44, 52, 200},
		TextColor:   color.RGBA{220, 220, 220, 255},
	}
}

// tileSize is the resolution the material tiles are rasterized at.
const tileSize = 64

// Renderer handles all drawing operations.
type Renderer struct {
	tiles *TileSet
	theme *Theme
	scale float64 // HiDPI scale factor
}

// NewRenderer creates a new renderer.
func NewRenderer() (*Renderer, error) {
	ts, err := NewTileSet(tileSize)
	if err != nil {
		return nil, err
	}
	return &Renderer{
		tiles: ts,
		theme: DefaultTheme(),
		scale: 1.0,
	}, nil
}

// SetScale sets the HiDPI scale factor for rendering.
func (r *Renderer) SetScale(scale float64) {
	r.scale = scale
}

// DrawBoard draws every cell at its laid out position.
func (r *Renderer) DrawBoard(screen *ebiten.Image, b *board.Board, w layout.Window) {
	for i := range b.Cells {
		c := &b.Cells[i]
		r.tiles.DrawTile(screen, c.Material, layout.ToScreen(c.Center, c.Size, w), r.scale)
	}
}

// DrawHover draws a translucent highlight over cell c.
func (r *Renderer) DrawHover(screen *ebiten.Image, c *board.Cell, w layout.Window) {
	if c == nil {
		return
	}
	rect := layout.ToScreen(c.Center, c.Size, w)
	s := float32(r.scale)
	vector.DrawFilledRect(screen, float32(rect.X)*s, float32(rect.Y)*s, float32(rect.Width)*s, float32(rect.Height)*s, r.theme.HoverColor, false)
}

// CellAt returns the cell drawn under logical screen point (x, y), or nil.
func (r *Renderer) CellAt(b *board.Board, w layout.Window, x, y int) *board.Cell {
	fx, fy := float64(x), float64(y)
	for i := range b.Cells {
		c := &b.Cells[i]
		if layout.ToScreen(c.Center, c.Size, w).Contains(fx, fy) {
			return c
		}
	}
	return nil
}

// Theme returns the current theme.
func (r *Renderer) Theme() *Theme {
	return r.theme
}

// Tiles returns the material tile set.
func (r *Renderer) Tiles() *TileSet {
	return r.tiles
}
