// Package ui draws the board with Ebitengine.
package ui

import (
	"bytes"
	"log"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
)

var (
	// Font faces for overlay text
	monoFace *text.GoTextFace
	boldFace *text.GoTextFace
)

const (
	defaultFontSize = 13.0
	titleFontSize   = 14.0
)

func init() {
	initFonts()
}

func initFonts() {
	monoSource, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		log.Printf("Failed to load mono font: %v", err)
		return
	}
	monoFace = &text.GoTextFace{
		Source: monoSource,
		Size:   defaultFontSize,
	}

	boldSource, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		log.Printf("Failed to load bold font: %v", err)
		return
	}
	boldFace = &text.GoTextFace{
		Source: boldSource,
		Size:   titleFontSize,
	}
}

// faceWithSize returns face resized to size, or nil if the font failed to load.
func faceWithSize(face *text.GoTextFace, size float64) *text.GoTextFace {
	if face == nil {
		return nil
	}
	return &text.GoTextFace{
		Source: face.Source,
		Size:   size,
	}
}

// MeasureText returns the width and height of the given text.
func MeasureText(s string, face *text.GoTextFace) (width, height float64) {
	if face == nil {
		return 0, 0
	}
	return text.Measure(s, face, 0)
}
