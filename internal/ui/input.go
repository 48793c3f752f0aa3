package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Key bindings
const (
	KeyExit    = ebiten.KeyEscape
	KeyOverlay = ebiten.KeyF3
)

// InputHandler manages mouse and keyboard input.
type InputHandler struct {
	mouseX, mouseY int // Logical coordinates (unscaled)
	exit           bool
	toggleOverlay  bool
}

// NewInputHandler creates a new input handler.
func NewInputHandler() *InputHandler {
	return &InputHandler{}
}

// Update updates the input state. Call this once per frame.
func (ih *InputHandler) Update() {
	// Get raw cursor position (in scaled space)
	rawX, rawY := ebiten.CursorPosition()

	// Convert to logical coordinates by dividing by scale
	scale := UIScale
	if scale < 1.0 {
		scale = 1.0
	}
	ih.mouseX = int(float64(rawX) / scale)
	ih.mouseY = int(float64(rawY) / scale)

	ih.exit = inpututil.IsKeyJustPressed(KeyExit)
	ih.toggleOverlay = inpututil.IsKeyJustPressed(KeyOverlay)
}

// MousePosition returns the current mouse position in logical coordinates.
func (ih *InputHandler) MousePosition() (int, int) {
	return ih.mouseX, ih.mouseY
}

// ExitRequested returns true if the exit key was just pressed.
func (ih *InputHandler) ExitRequested() bool {
	return ih.exit
}

// OverlayToggled returns true if the overlay key was just pressed.
func (ih *InputHandler) OverlayToggled() bool {
	return ih.toggleOverlay
}
