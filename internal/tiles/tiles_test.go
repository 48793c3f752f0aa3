package tiles

import (
	"image/color"
	"testing"

	"github.com/hailam/boarddraw/internal/board"
)

func closeTo(a, b uint8) bool {
	d := int(a) - int(b)
	return d >= -2 && d <= 2
}

func TestLoad(t *testing.T) {
	tests := []struct {
		m    board.Material
		want color.RGBA
	}{
		{board.Light, color.RGBA{255, 255, 255, 255}},
		{board.Dark, color.RGBA{0x4d, 0x0d, 0x00, 255}},
	}
	for _, tt := range tests {
		img, err := Load(tt.m, 32)
		if err != nil {
			t.Fatalf("Load(%v) failed: %v", tt.m, err)
		}
		if b := img.Bounds(); b.Dx() != 32 || b.Dy() != 32 {
			t.Errorf("Load(%v) bounds %v", tt.m, b)
		}
		got := img.RGBAAt(16, 16)
		if !closeTo(got.R, tt.want.R) || !closeTo(got.G, tt.want.G) || !closeTo(got.B, tt.want.B) || !closeTo(got.A, tt.want.A) {
			t.Errorf("Load(%v) center pixel = %v, want %v", tt.m, got, tt.want)
		}
	}
}

func TestLoadUnknownMaterial(t *testing.T) {
	if _, err := Load(board.Material(9), 16); err == nil {
		t.Error("Expected error for unknown material")
	}
}

func TestRasterizeInvalidSize(t *testing.T) {
	data, err := assets.ReadFile(files[board.Light])
	if err != nil {
		t.Fatal(err)
	}
	for _, size := range []int{0, -4} {
		if _, err := Rasterize(data, size); err == nil {
			t.Errorf("Rasterize size %d: expected error", size)
		}
	}
}
