package main

import (
	"log"

	"arenagrid/internal/config"
	"arenagrid/internal/game"
	"arenagrid/internal/graphics"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := config.MustLoadConfig("config.yaml")

	ebiten.SetWindowSize(cfg.GetScreenWidth(), cfg.GetScreenHeight())
	ebiten.SetWindowTitle(cfg.Display.WindowTitle)
	if cfg.Display.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	g, err := game.NewGame(cfg)
	if err != nil {
		log.Fatalf("Failed to create game: %v", err)
	}

	// Drop a marker billboard near the spawn so the sprite pass has
	// something to draw out of the box.
	textures := graphics.NewTextureCache()
	camX, camY := g.Camera().GetPosition()
	g.AddBillboard(&game.Billboard{
		X:           camX + 2,
		Y:           camY,
		WorldHeight: 0.5,
		Texture:     textures.Load("assets/sprites/marker.png"),
		Width:       64,
		Height:      64,
		Scale:       1.0,
		Visible:     true,
	})

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
