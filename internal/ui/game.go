package ui

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hailam/boarddraw/internal/board"
	"github.com/hailam/boarddraw/internal/layout"
	"github.com/hailam/boarddraw/internal/storage"
)

// Window parameters
const (
	WindowTitle     = "Spawn board"
	MinWindowWidth  = storage.DefaultWindowWidth
	MinWindowHeight = storage.DefaultWindowHeight
)

// UIScale is the global HiDPI scale factor for all UI drawing.
// Set by Game.Layout() and used by the input handler.
var UIScale float64 = 1.0

// Options configures a Game.
type Options struct {
	// Prefs enables loading and saving preferences.
	Prefs bool
	// PrefsDir overrides the platform data directory when set.
	PrefsDir string
	// Overlay shows the debug overlay at startup.
	Overlay bool
}

// Game implements ebiten.Game interface.
type Game struct {
	board   *board.Board
	window  layout.Window // Primary window, logical pixels
	tracker layout.Tracker
	hover   *board.Cell

	// Components
	renderer *Renderer
	input    *InputHandler
	overlay  *Overlay

	// Storage, nil unless enabled
	storage *storage.Storage
	prefs   *storage.Preferences

	// HiDPI scaling
	scale float64
}

// NewGame creates the board and everything needed to draw it.
func NewGame(opts Options) (*Game, error) {
	renderer, err := NewRenderer()
	if err != nil {
		return nil, err
	}

	g := &Game{
		board:    board.New(),
		renderer: renderer,
		input:    NewInputHandler(),
		prefs:    storage.DefaultPreferences(),
		scale:    1.0,
	}

	if opts.Prefs {
		g.openStorage(opts.PrefsDir)
		g.loadPreferences()
	}

	g.overlay = NewOverlay(opts.Overlay || g.prefs.Overlay)

	return g, nil
}

// openStorage opens the preferences database. Failure is not fatal.
func (g *Game) openStorage(dir string) {
	var err error
	if dir != "" {
		var dbDir string
		dbDir, err = storage.DatabaseDirIn(dir)
		if err == nil {
			g.storage, err = storage.Open(dbDir)
		}
	} else {
		g.storage, err = storage.NewStorage()
	}
	if err != nil {
		log.Printf("Warning: Failed to initialize storage: %v", err)
		g.storage = nil
	}
}

// loadPreferences loads preferences from storage.
func (g *Game) loadPreferences() {
	if g.storage == nil {
		return
	}

	prefs, err := g.storage.LoadPreferences()
	if err != nil {
		log.Printf("Warning: Failed to load preferences: %v", err)
		return
	}
	g.prefs = prefs

	first, err := g.storage.IsFirstLaunch()
	if err != nil {
		log.Printf("Warning: Failed to check first launch: %v", err)
		return
	}
	if first {
		log.Printf("Press F3 to toggle the layout overlay, Esc to quit")
		if err := g.storage.MarkFirstLaunchComplete(); err != nil {
			log.Printf("Warning: Failed to mark first launch: %v", err)
		}
	}
}

// savePreferences saves the current window state to storage.
func (g *Game) savePreferences() {
	if g.storage == nil {
		return
	}

	w, h := ebiten.WindowSize()
	if w > 0 && h > 0 {
		g.prefs.WindowWidth = w
		g.prefs.WindowHeight = h
	}
	g.prefs.Overlay = g.overlay.Visible()

	if err := g.storage.SavePreferences(g.prefs); err != nil {
		log.Printf("Warning: Failed to save preferences: %v", err)
	}
}

// WindowSize returns the size the window should open at.
func (g *Game) WindowSize() (int, int) {
	return g.prefs.WindowWidth, g.prefs.WindowHeight
}

// Update advances one frame. The board is laid out again whenever the
// window changed size since the previous frame.
func (g *Game) Update() error {
	g.input.Update()

	if g.input.ExitRequested() {
		return ebiten.Termination
	}
	if g.input.OverlayToggled() {
		g.overlay.Toggle()
	}

	if g.tracker.Changed(g.window) {
		if err := g.board.Resize(g.window); err != nil {
			return err
		}
	}

	mx, my := g.input.MousePosition()
	g.hover = g.renderer.CellAt(g.board, g.window, mx, my)
	g.overlay.Update(g.window, g.board, g.hover)

	return nil
}

// Draw draws the board and overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.SetScale(g.scale)

	screen.Fill(g.renderer.Theme().Background)
	g.renderer.DrawBoard(screen, g.board, g.window)
	if g.overlay.Visible() {
		g.renderer.DrawHover(screen, g.hover, g.window)
	}
	g.overlay.Draw(screen, g.renderer.Theme(), g.scale)
}

// Layout records the window size and returns the device-scaled screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	// Get and store device scale factor (2.0 on Retina, 1.0 on standard displays)
	g.scale = ebiten.Monitor().DeviceScaleFactor()
	if g.scale < 1.0 {
		g.scale = 1.0 // Ensure minimum scale of 1.0
	}

	// Update global scale for input
	UIScale = g.scale

	g.window = layout.Window{Width: float64(outsideWidth), Height: float64(outsideHeight)}
	return int(float64(outsideWidth) * g.scale), int(float64(outsideHeight) * g.scale)
}

// Board returns the board being drawn.
func (g *Game) Board() *board.Board {
	return g.board
}

// Close saves preferences and releases storage.
func (g *Game) Close() {
	g.savePreferences()
	if g.storage != nil {
		if err := g.storage.Close(); err != nil {
			log.Printf("Warning: Failed to close storage: %v", err)
		}
		g.storage = nil
	}
}
