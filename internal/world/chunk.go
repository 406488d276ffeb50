package world

import (
	"fmt"
	"log"
	"math"

	"arenagrid/internal/mathutil"
)

// Chunk is one fixed-size sub-grid of the streamed world.
type Chunk struct {
	Grid   *TileGrid
	ChunkX int
	ChunkY int
	Loaded bool
	Dirty  bool // Edited since generation; needs external persistence
}

// PersistFunc is called for a dirty chunk right before its tiles are
// freed. Actual persistence lives outside this core.
type PersistFunc func(*Chunk)

// ChunkStore presents the same solidity surface as a single TileGrid
// but backs it with a fixed-capacity table of chunks hashed by chunk
// coordinate. A slot collision evicts the occupant (last-writer-wins,
// no probing chain), which bounds memory at the cost of churn when
// access patterns alias a slot.
type ChunkStore struct {
	slots     []Chunk
	chunkSize int
	loaded    int

	seed     int64
	doorRate float64
	persist  PersistFunc
}

// NewChunkStore creates an empty store. chunkSize is the side length of
// each chunk in tiles, capacity the number of chunk slots.
func NewChunkStore(chunkSize, capacity int) (*ChunkStore, error) {
	if chunkSize <= 0 {
		return nil, fmt.Errorf("invalid chunk size: %d", chunkSize)
	}
	if capacity <= 0 {
		return nil, fmt.Errorf("invalid chunk capacity: %d", capacity)
	}

	return &ChunkStore{
		slots:     make([]Chunk, capacity),
		chunkSize: chunkSize,
		doorRate:  DefaultDoorRate,
	}, nil
}

// ChunkHash mixes a chunk coordinate pair into a single hash. The two
// distinct large odd multipliers keep adjacent coordinates from
// colliding trivially and make the hash order-sensitive.
func ChunkHash(chunkX, chunkY int) int {
	return chunkX*73856093 ^ chunkY*19349663
}

func (s *ChunkStore) slotIndex(chunkX, chunkY int) int {
	return int(uint(ChunkHash(chunkX, chunkY)) % uint(len(s.slots)))
}

// SetPersistFunc installs the hook invoked for dirty chunks before they
// are unloaded or evicted.
func (s *ChunkStore) SetPersistFunc(fn PersistFunc) {
	s.persist = fn
}

// SetSeed sets the world seed mixed into every chunk's generation
// seed. Changing it does not regenerate chunks already loaded.
func (s *ChunkStore) SetSeed(seed int64) {
	s.seed = seed
}

// SetDoorRate sets the door animation rate applied to grids of chunks
// loaded afterwards.
func (s *ChunkStore) SetDoorRate(rate float64) {
	if rate > 0 {
		s.doorRate = rate
	}
}

// ChunkSize returns the side length of a chunk in tiles.
func (s *ChunkStore) ChunkSize() int {
	return s.chunkSize
}

// LoadedCount returns the number of currently loaded chunks.
func (s *ChunkStore) LoadedCount() int {
	return s.loaded
}

// ChunkAt returns the loaded chunk with the given chunk coordinate, or
// nil when that coordinate is not resident.
func (s *ChunkStore) ChunkAt(chunkX, chunkY int) *Chunk {
	chunk := &s.slots[s.slotIndex(chunkX, chunkY)]
	if chunk.Loaded && chunk.ChunkX == chunkX && chunk.ChunkY == chunkY {
		return chunk
	}
	return nil
}

// Load makes the chunk at (chunkX, chunkY) resident, generating its
// tiles deterministically from the coordinate. A different chunk
// occupying the target slot is unloaded first.
func (s *ChunkStore) Load(chunkX, chunkY int) *Chunk {
	if chunk := s.ChunkAt(chunkX, chunkY); chunk != nil {
		return chunk
	}

	chunk := &s.slots[s.slotIndex(chunkX, chunkY)]
	if chunk.Loaded {
		s.Unload(chunk.ChunkX, chunk.ChunkY)
	}

	grid, err := NewTileGrid(s.chunkSize, s.chunkSize)
	if err != nil {
		log.Printf("Failed to create chunk (%d, %d): %v", chunkX, chunkY, err)
		return nil
	}
	grid.SetDoorRate(s.doorRate)
	grid.GenerateDungeon(s.seed ^ int64(ChunkHash(chunkX, chunkY)))

	chunk.Grid = grid
	chunk.ChunkX = chunkX
	chunk.ChunkY = chunkY
	chunk.Loaded = true
	chunk.Dirty = false
	s.loaded++
	return chunk
}

// Unload frees the chunk at (chunkX, chunkY), handing it to the persist
// hook first when dirty. Unloading a non-resident chunk is a no-op.
func (s *ChunkStore) Unload(chunkX, chunkY int) {
	chunk := s.ChunkAt(chunkX, chunkY)
	if chunk == nil {
		return
	}

	if chunk.Dirty && s.persist != nil {
		s.persist(chunk)
	}

	chunk.Grid = nil
	chunk.Loaded = false
	chunk.Dirty = false
	s.loaded--
}

// UnloadAll frees every resident chunk.
func (s *ChunkStore) UnloadAll() {
	for i := range s.slots {
		if s.slots[i].Loaded {
			s.Unload(s.slots[i].ChunkX, s.slots[i].ChunkY)
		}
	}
}

// UpdateStreaming loads every chunk within loadRadius (Euclidean, in
// chunk units) of the reference world position and unloads every
// resident chunk farther than unloadRadius. Callers keep unloadRadius
// above loadRadius to avoid reload thrashing at the boundary.
func (s *ChunkStore) UpdateStreaming(worldX, worldY, loadRadius, unloadRadius float64) {
	centerX := mathutil.FloorDiv(int(math.Floor(worldX)), s.chunkSize)
	centerY := mathutil.FloorDiv(int(math.Floor(worldY)), s.chunkSize)

	reach := int(math.Ceil(loadRadius))
	for cy := centerY - reach; cy <= centerY+reach; cy++ {
		for cx := centerX - reach; cx <= centerX+reach; cx++ {
			dx := float64(cx - centerX)
			dy := float64(cy - centerY)
			if math.Sqrt(dx*dx+dy*dy) <= loadRadius {
				s.Load(cx, cy)
			}
		}
	}

	for i := range s.slots {
		if !s.slots[i].Loaded {
			continue
		}
		dx := float64(s.slots[i].ChunkX - centerX)
		dy := float64(s.slots[i].ChunkY - centerY)
		if math.Sqrt(dx*dx+dy*dy) > unloadRadius {
			s.Unload(s.slots[i].ChunkX, s.slots[i].ChunkY)
		}
	}
}

// WorldToLocal splits a world tile coordinate into its chunk coordinate
// and the coordinate inside that chunk. The double-mod keeps local
// coordinates in [0, chunkSize) for negative world coordinates too.
func WorldToLocal(worldCoord, chunkSize int) (chunkCoord, localCoord int) {
	return mathutil.FloorDiv(worldCoord, chunkSize), mathutil.FloorMod(worldCoord, chunkSize)
}

// chunkFor resolves a world tile coordinate to its resident chunk and
// local coordinates, or nil when the owning chunk is not loaded.
func (s *ChunkStore) chunkFor(x, y int) (chunk *Chunk, localX, localY int) {
	chunkX, localX := WorldToLocal(x, s.chunkSize)
	chunkY, localY := WorldToLocal(y, s.chunkSize)
	return s.ChunkAt(chunkX, chunkY), localX, localY
}

// InBounds reports whether the chunk owning world tile (x,y) is loaded.
func (s *ChunkStore) InBounds(x, y int) bool {
	chunk, _, _ := s.chunkFor(x, y)
	return chunk != nil
}

// IsSolid reports the effective solidity of world tile (x,y). Tiles in
// unloaded chunks are solid.
func (s *ChunkStore) IsSolid(x, y int) bool {
	chunk, localX, localY := s.chunkFor(x, y)
	if chunk == nil {
		return true
	}
	return chunk.Grid.IsSolid(localX, localY)
}

// TileAt returns the tile at world tile (x,y); ok is false when the
// owning chunk is not loaded.
func (s *ChunkStore) TileAt(x, y int) (Tile, bool) {
	chunk, localX, localY := s.chunkFor(x, y)
	if chunk == nil {
		return Tile{}, false
	}
	return chunk.Grid.TileAt(localX, localY)
}

// SetTile writes a tile at world tile (x,y) and marks the owning chunk
// dirty. Writes into unloaded chunks are ignored.
func (s *ChunkStore) SetTile(x, y int, t Tile) {
	chunk, localX, localY := s.chunkFor(x, y)
	if chunk == nil {
		return
	}
	chunk.Grid.SetTile(localX, localY, t)
	chunk.Dirty = true
}

// DoorAt returns the door at world tile (x,y), or nil.
func (s *ChunkStore) DoorAt(x, y int) *Door {
	chunk, localX, localY := s.chunkFor(x, y)
	if chunk == nil {
		return nil
	}
	return chunk.Grid.DoorAt(localX, localY)
}

// CreateDoorAt creates a door at world tile (x,y) and marks the owning
// chunk dirty. Returns nil when the chunk is not loaded or its door
// list is full.
func (s *ChunkStore) CreateDoorAt(x, y int) *Door {
	chunk, localX, localY := s.chunkFor(x, y)
	if chunk == nil {
		return nil
	}
	door := chunk.Grid.CreateDoorAt(localX, localY)
	if door != nil {
		chunk.Dirty = true
	}
	return door
}

// UpdateDoors advances door animations on every loaded chunk.
func (s *ChunkStore) UpdateDoors(dt float64) {
	for i := range s.slots {
		if s.slots[i].Loaded {
			s.slots[i].Grid.UpdateDoors(dt)
		}
	}
}
