package game

import (
	"fmt"

	"arenagrid/internal/config"
	"arenagrid/internal/world"

	"github.com/hajimehoshi/ebiten/v2"
)

// Game wires the frame loop: input advances the camera through the
// collision resolver, doors and chunk streaming are updated, then the
// raycaster draws walls and billboards on top. Everything runs
// synchronously inside one update-then-render pass per tick.
type Game struct {
	cfg      *config.Config
	camera   *FirstPersonCamera
	chunks   *world.ChunkStore
	renderer *Raycaster
	input    *InputHandler

	billboards []*Billboard
}

// NewGame builds the engine around a streamed chunk world and places
// the camera on an open tile near the origin.
func NewGame(cfg *config.Config) (*Game, error) {
	chunks, err := world.NewChunkStore(cfg.GetChunkSize(), cfg.GetChunkCapacity())
	if err != nil {
		return nil, err
	}
	chunks.SetSeed(cfg.World.Seed)
	chunks.SetDoorRate(cfg.World.DoorOpenRate)

	// Make the spawn area resident before looking for an open tile.
	chunks.UpdateStreaming(0, 0, cfg.World.LoadRadius, cfg.World.UnloadRadius)

	spawnX, spawnY, ok := findSpawn(chunks)
	if !ok {
		return nil, fmt.Errorf("no open spawn tile in the starting chunk")
	}

	camera := NewFirstPersonCamera(spawnX, spawnY, cfg)
	renderer := NewRaycaster(cfg.GetScreenWidth(), cfg.GetScreenHeight(), NewRenderConfig(cfg))

	g := &Game{
		cfg:      cfg,
		camera:   camera,
		chunks:   chunks,
		renderer: renderer,
	}
	g.input = NewInputHandler(g)
	return g, nil
}

// findSpawn scans the starting chunk for the first open tile and
// returns its center.
func findSpawn(chunks *world.ChunkStore) (float64, float64, bool) {
	size := chunks.ChunkSize()
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if !chunks.IsSolid(x, y) {
				return float64(x) + 0.5, float64(y) + 0.5, true
			}
		}
	}
	return 0, 0, false
}

// Camera returns the player camera.
func (g *Game) Camera() *FirstPersonCamera {
	return g.camera
}

// World returns the streamed world surface.
func (g *Game) World() *world.ChunkStore {
	return g.chunks
}

// AddBillboard registers a billboard entity for per-frame rendering.
// The caller keeps ownership and may mutate it between frames.
func (g *Game) AddBillboard(b *Billboard) {
	g.billboards = append(g.billboards, b)
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	dt := 1.0 / float64(ebiten.TPS())

	g.input.HandleInput(dt)
	g.chunks.UpdateDoors(dt)
	g.chunks.UpdateStreaming(g.camera.X, g.camera.Y, g.cfg.World.LoadRadius, g.cfg.World.UnloadRadius)

	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.RenderFrame(screen, g.camera, g.chunks)
	g.renderer.RenderBillboards(screen, g.camera, g.billboards)
}

// Layout implements ebiten.Game.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.GetScreenWidth(), g.cfg.GetScreenHeight()
}
