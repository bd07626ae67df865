package main

import (
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/depeter/posterfx/assets/icon"
	"github.com/depeter/posterfx/internal/app"
	"github.com/depeter/posterfx/internal/config"
	"github.com/depeter/posterfx/internal/ui"
)

func main() {
	// Load config
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Write defaults on first run so there is something to edit
	if path, err := config.ConfigPath(); err == nil {
		if _, statErr := os.Stat(path); os.IsNotExist(statErr) {
			if err := cfg.Save(); err != nil {
				log.Printf("Failed to save default config: %v", err)
			}
		}
	}

	// Init fonts
	if err := ui.InitFonts(nil); err != nil {
		log.Fatalf("Failed to init fonts: %v", err)
	}

	game, err := app.NewGame(cfg)
	if err != nil {
		log.Fatalf("Failed to set up views: %v", err)
	}

	// Configure window
	ebiten.SetWindowSize(cfg.UI.Width, cfg.UI.Height)
	ebiten.SetWindowTitle("posterfx")
	ebiten.SetWindowIcon(icon.Generate())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(cfg.UI.Fullscreen)
	ebiten.SetScreenClearedEveryFrame(false)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
