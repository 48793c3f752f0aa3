// Boarddraw - draws an 8x8 board that follows the window size, built with Ebitengine
package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hailam/boarddraw/internal/ui"
)

var (
	prefs    = flag.Bool("prefs", false, "remember window size and overlay state between runs")
	prefsDir = flag.String("prefs-dir", "", "directory for the preferences database (implies -prefs)")
	overlay  = flag.Bool("overlay", false, "show the layout overlay at startup (toggle with F3)")
)

func main() {
	flag.Parse()

	game, err := ui.NewGame(ui.Options{
		Prefs:    *prefs || *prefsDir != "",
		PrefsDir: *prefsDir,
		Overlay:  *overlay,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	ebiten.SetWindowSize(game.WindowSize())
	ebiten.SetWindowSizeLimits(ui.MinWindowWidth, ui.MinWindowHeight, -1, -1)
	ebiten.SetWindowTitle(ui.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil {
		game.Close()
		log.Fatal(err)
	}
}
