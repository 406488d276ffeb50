package world

import (
	"fmt"
	"math"
)

// Tile is a single cell of a TileGrid. Material ids index into the
// renderer's palette/texture tables; Solid is the stored collision flag.
// The effective solidity of a coordinate can differ from the stored flag
// while an open door overlaps it, see TileGrid.IsSolid.
type Tile struct {
	Wall    uint8
	Floor   uint8
	Ceiling uint8
	Solid   bool
}

// MaxDoors bounds the per-grid door list. Door creation beyond this
// limit fails softly rather than growing the list.
const MaxDoors = 32

// TileGrid is a dense row-major grid of tiles plus the doors that live
// on it. Coordinates outside [0,Width)x[0,Height) are treated as
// permanently solid.
type TileGrid struct {
	Width  int
	Height int

	tiles []Tile
	doors []Door

	doorRate float64
}

// NewTileGrid allocates a cleared grid. Zero or negative dimensions are
// rejected at creation time.
func NewTileGrid(width, height int) (*TileGrid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid grid dimensions: %dx%d", width, height)
	}

	return &TileGrid{
		Width:    width,
		Height:   height,
		tiles:    make([]Tile, width*height),
		doors:    make([]Door, 0, MaxDoors),
		doorRate: DefaultDoorRate,
	}, nil
}

// InBounds reports whether (x,y) is a valid tile coordinate.
func (g *TileGrid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// TileAt returns the tile at (x,y). Out-of-bounds coordinates report a
// zero tile and ok=false.
func (g *TileGrid) TileAt(x, y int) (Tile, bool) {
	if !g.InBounds(x, y) {
		return Tile{}, false
	}
	return g.tiles[y*g.Width+x], true
}

// SetTile stores a tile at (x,y). Out-of-bounds writes are ignored.
func (g *TileGrid) SetTile(x, y int, t Tile) {
	if !g.InBounds(x, y) {
		return
	}
	g.tiles[y*g.Width+x] = t
}

// IsSolid reports the effective solidity of (x,y): out-of-bounds is
// solid, an open door overrides the stored tile flag, otherwise the
// stored flag decides. The stored grid state is never mutated by door
// movement so the two remain independently serializable.
func (g *TileGrid) IsSolid(x, y int) bool {
	if !g.InBounds(x, y) {
		return true
	}

	if door := g.DoorAt(x, y); door != nil && door.IsOpen() {
		return false
	}

	return g.tiles[y*g.Width+x].Solid
}

// Clear resets every tile to the zero tile and removes all doors.
func (g *TileGrid) Clear() {
	for i := range g.tiles {
		g.tiles[i] = Tile{}
	}
	g.doors = g.doors[:0]
}

// SetDoorRate sets the open/close animation rate for doors created
// afterwards, in progress units per second.
func (g *TileGrid) SetDoorRate(rate float64) {
	if rate > 0 {
		g.doorRate = rate
	}
}

// DoorAt returns the door occupying tile (x,y), or nil.
func (g *TileGrid) DoorAt(x, y int) *Door {
	if !g.InBounds(x, y) {
		return nil
	}

	for i := range g.doors {
		if g.doors[i].TileX == x && g.doors[i].TileY == y {
			return &g.doors[i]
		}
	}
	return nil
}

// CreateDoorAt creates a closed door at tile (x,y). An existing door at
// that tile is returned as-is. Returns nil when the coordinate is out of
// bounds or the door list is full.
func (g *TileGrid) CreateDoorAt(x, y int) *Door {
	if !g.InBounds(x, y) {
		return nil
	}

	if existing := g.DoorAt(x, y); existing != nil {
		return existing
	}

	if len(g.doors) >= MaxDoors {
		return nil
	}

	// The door slice is allocated at full capacity up front, so this
	// append never reallocates and returned pointers stay valid.
	g.doors = append(g.doors, Door{
		TileX: x,
		TileY: y,
		State: DoorClosed,
		rate:  g.doorRate,
	})
	return &g.doors[len(g.doors)-1]
}

// DoorCount returns the number of doors on the grid.
func (g *TileGrid) DoorCount() int {
	return len(g.doors)
}

// UpdateDoors advances every door animation by dt seconds.
func (g *TileGrid) UpdateDoors(dt float64) {
	for i := range g.doors {
		g.doors[i].Update(dt)
	}
}

// TileAtWorld returns the tile under a continuous world position.
func (g *TileGrid) TileAtWorld(x, y float64) (Tile, bool) {
	return g.TileAt(int(math.Floor(x)), int(math.Floor(y)))
}
