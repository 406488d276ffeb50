package world

import (
	"math/rand"
)

// GenerateDungeon fills the grid with a simple seeded room-and-corridor
// layout: everything starts solid, rooms are carved out, then sparse
// random corridors connect the space. The same seed always reproduces
// the same layout, which is what lets evicted chunks regenerate
// identically without persistence.
func (g *TileGrid) GenerateDungeon(seed int64) {
	rng := rand.New(rand.NewSource(seed))

	// Start with all walls.
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			g.SetTile(x, y, Tile{Wall: 1, Solid: true})
		}
	}

	// Carve rooms.
	numRooms := 5 + rng.Intn(10)
	for i := 0; i < numRooms; i++ {
		roomW := 5 + rng.Intn(8)
		roomH := 5 + rng.Intn(8)

		maxX := g.Width - roomW - 4
		maxY := g.Height - roomH - 4
		if maxX <= 0 || maxY <= 0 {
			continue // Grid too small for a room this size
		}
		roomX := 2 + rng.Intn(maxX)
		roomY := 2 + rng.Intn(maxY)

		for y := roomY; y < roomY+roomH && y < g.Height; y++ {
			for x := roomX; x < roomX+roomW && x < g.Width; x++ {
				g.SetTile(x, y, Tile{Floor: 1, Ceiling: 1})
			}
		}
	}

	// Sparse random corridors between rooms.
	for y := 1; y < g.Height-1; y++ {
		for x := 1; x < g.Width-1; x++ {
			if rng.Intn(100) < 2 {
				if tile, _ := g.TileAt(x, y); tile.Solid {
					g.SetTile(x, y, Tile{Floor: 1, Ceiling: 1})
				}
			}
		}
	}
}
