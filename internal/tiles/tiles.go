// Package tiles rasterizes the embedded SVG cell tiles.
package tiles

import (
	"bytes"
	"embed"
	"fmt"
	"image"

	"github.com/hailam/boarddraw/internal/board"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

//go:embed assets/*.svg
var assets embed.FS

var files = map[board.Material]string{
	board.Light: "assets/light.svg",
	board.Dark:  "assets/dark.svg",
}

// Rasterize renders SVG data into a size x size RGBA image.
func Rasterize(data []byte, size int) (*image.RGBA, error) {
	if size <= 0 {
		return nil, fmt.Errorf("tiles: invalid size %d", size)
	}
	icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("tiles: parse svg: %w", err)
	}
	icon.SetTarget(0, 0, float64(size), float64(size))

	rgba := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, rgba, rgba.Bounds())
	raster := rasterx.NewDasher(size, size, scanner)
	icon.Draw(raster, 1.0)
	return rgba, nil
}

// Load rasterizes the tile of material m.
func Load(m board.Material, size int) (*image.RGBA, error) {
	path, ok := files[m]
	if !ok {
		return nil, fmt.Errorf("tiles: no asset for %v", m)
	}
	data, err := assets.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("tiles: read %s: %w", path, err)
	}
	img, err := Rasterize(data, size)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return img, nil
}
