package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hailam/boarddraw/internal/board"
	"github.com/hailam/boarddraw/internal/layout"
	"github.com/hailam/boarddraw/internal/tiles"
)

// TileSet holds one shared image per cell material.
type TileSet struct {
	images map[board.Material]*ebiten.Image
	size   int
}

// NewTileSet rasterizes both material tiles at size pixels.
func NewTileSet(size int) (*TileSet, error) {
	ts := &TileSet{
		images: make(map[board.Material]*ebiten.Image),
		size:   size,
	}
	for _, m := range []board.Material{board.Light, board.Dark} {
		img, err := tiles.Load(m, size)
		if err != nil {
			return nil, fmt.Errorf("load %v tile: %w", m, err)
		}
		ts.images[m] = ebiten.NewImageFromImage(img)
	}
	return ts, nil
}

// Get returns the image for material m.
func (ts *TileSet) Get(m board.Material) *ebiten.Image {
	return ts.images[m]
}

// DrawTile stretches the tile of material m over rect r, scaled by scale.
func (ts *TileSet) DrawTile(screen *ebiten.Image, m board.Material, r layout.Rect, scale float64) {
	img := ts.Get(m)
	if img == nil || ts.size == 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(r.Width*scale/float64(ts.size), r.Height*scale/float64(ts.size))
	op.GeoM.Translate(r.X*scale, r.Y*scale)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(img, op)
}
