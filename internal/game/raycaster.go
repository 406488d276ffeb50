package game

import (
	"image"
	"image/color"
	"math"

	"arenagrid/internal/config"
	"arenagrid/internal/mathutil"
	"arenagrid/internal/world"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/colornames"
)

// WorldSurface is the world query surface the renderer draws from.
// Both world.TileGrid and world.ChunkStore satisfy it.
type WorldSurface interface {
	IsSolid(tileX, tileY int) bool
	InBounds(tileX, tileY int) bool
	TileAt(tileX, tileY int) (world.Tile, bool)
}

// RaycastHit is the result of a single DDA raycast.
type RaycastHit struct {
	Hit      bool
	Distance float64 // Perpendicular distance to the wall (prevents fisheye)
	HitX     float64 // Exact hit point
	HitY     float64
	TileX    int
	TileY    int
	Side     int     // 0 = vertical grid line crossed, 1 = horizontal
	WallX    float64 // Position along the hit wall face, [0,1)
	WallType uint8
}

// CastRay marches a ray through the grid with the DDA algorithm and
// returns the nearest solid tile intersection. Leaving the backed
// region or exceeding maxDistance is a miss, not an error. The loop
// terminates because every step strictly increases one accumulated
// side distance toward maxDistance.
func CastRay(originX, originY, dirX, dirY float64, surface WorldSurface, maxDistance float64) RaycastHit {
	mapX := int(math.Floor(originX))
	mapY := int(math.Floor(originY))

	// Distance the ray travels to cross one grid line per axis. A zero
	// direction component never crosses its axis.
	deltaDistX := 1e30
	if dirX != 0 {
		deltaDistX = math.Abs(1 / dirX)
	}
	deltaDistY := 1e30
	if dirY != 0 {
		deltaDistY = math.Abs(1 / dirY)
	}

	var stepX, stepY int
	var sideDistX, sideDistY float64

	if dirX < 0 {
		stepX = -1
		sideDistX = (originX - float64(mapX)) * deltaDistX
	} else {
		stepX = 1
		sideDistX = (float64(mapX) + 1.0 - originX) * deltaDistX
	}

	if dirY < 0 {
		stepY = -1
		sideDistY = (originY - float64(mapY)) * deltaDistY
	} else {
		stepY = 1
		sideDistY = (float64(mapY) + 1.0 - originY) * deltaDistY
	}

	side := 0
	for {
		if sideDistX < sideDistY {
			if sideDistX > maxDistance {
				return RaycastHit{}
			}
			sideDistX += deltaDistX
			mapX += stepX
			side = 0
		} else {
			if sideDistY > maxDistance {
				return RaycastHit{}
			}
			sideDistY += deltaDistY
			mapY += stepY
			side = 1
		}

		if !surface.InBounds(mapX, mapY) {
			return RaycastHit{}
		}
		if surface.IsSolid(mapX, mapY) {
			break
		}
	}

	// Perpendicular distance: the accumulated side distance minus one
	// step delta on the axis that was last advanced.
	var perpDist float64
	if side == 0 {
		perpDist = sideDistX - deltaDistX
	} else {
		perpDist = sideDistY - deltaDistY
	}
	if perpDist > maxDistance {
		return RaycastHit{}
	}

	// Wall fraction: fractional part of the coordinate on the axis that
	// was not advanced, evaluated at the hit point.
	var wallX float64
	if side == 0 {
		wallX = originY + perpDist*dirY
	} else {
		wallX = originX + perpDist*dirX
	}
	wallX -= math.Floor(wallX)

	hit := RaycastHit{
		Hit:      true,
		Distance: perpDist,
		HitX:     originX + dirX*perpDist,
		HitY:     originY + dirY*perpDist,
		TileX:    mapX,
		TileY:    mapY,
		Side:     side,
		WallX:    wallX,
	}
	if tile, ok := surface.TileAt(mapX, mapY); ok {
		hit.WallType = tile.Wall
	}
	return hit
}

// MaxWallTextures bounds the per-material texture table.
const MaxWallTextures = 4

// RenderConfig is the renderer's shading and palette configuration.
// It is owned by the Raycaster instance rather than shared package
// state, so independent renderers do not couple through globals.
type RenderConfig struct {
	WallHeight    float64
	BrightnessMin float64
	SideShade     float64 // Multiplier applied to side==1 hits
	Ceiling       color.RGBA
	Floor         color.RGBA
	WallPalette   [MaxWallTextures]color.RGBA
}

// NewRenderConfig builds a RenderConfig from the yaml configuration,
// falling back to named defaults for colors the config omits.
func NewRenderConfig(cfg *config.Config) RenderConfig {
	rc := RenderConfig{
		WallHeight:    cfg.Graphics.WallHeight,
		BrightnessMin: cfg.Graphics.BrightnessMin,
		SideShade:     cfg.Graphics.SideShade,
		Ceiling:       rgbOrDefault(cfg.Graphics.Colors.Ceiling, colornames.Gray),
		Floor:         rgbOrDefault(cfg.Graphics.Colors.Floor, colornames.Dimgray),
	}
	if rc.WallHeight <= 0 {
		rc.WallHeight = 1.0
	}
	if rc.SideShade <= 0 {
		rc.SideShade = 0.6
	}

	for i := range rc.WallPalette {
		rc.WallPalette[i] = colornames.Darkgray
	}
	for id, rgb := range cfg.Graphics.Colors.WallPalette {
		if id >= 0 && id < MaxWallTextures {
			rc.WallPalette[id] = rgbOrDefault(rgb, colornames.Darkgray)
		}
	}
	return rc
}

func rgbOrDefault(rgb [3]int, fallback color.RGBA) color.RGBA {
	if rgb == [3]int{} {
		return fallback
	}
	return color.RGBA{uint8(rgb[0]), uint8(rgb[1]), uint8(rgb[2]), 255}
}

// Raycaster renders the first-person wall field one vertical strip per
// screen column and draws billboards on top of it.
type Raycaster struct {
	screenW int
	screenH int
	cfg     RenderConfig

	whiteImg   *ebiten.Image // 1x1 white image scaled into untextured strips
	ceilingImg *ebiten.Image // Cached flat fill for the top half
	floorImg   *ebiten.Image // Cached flat fill for the bottom half

	wallTextures [MaxWallTextures]*ebiten.Image
}

// NewRaycaster creates a renderer for the given viewport size.
func NewRaycaster(screenW, screenH int, cfg RenderConfig) *Raycaster {
	white := ebiten.NewImage(1, 1)
	white.Fill(color.White)

	ceiling := ebiten.NewImage(screenW, mathutil.IntMax(screenH/2, 1))
	ceiling.Fill(cfg.Ceiling)
	floor := ebiten.NewImage(screenW, mathutil.IntMax(screenH-screenH/2, 1))
	floor.Fill(cfg.Floor)

	return &Raycaster{
		screenW:    screenW,
		screenH:    screenH,
		cfg:        cfg,
		whiteImg:   white,
		ceilingImg: ceiling,
		floorImg:   floor,
	}
}

// SetWallTexture installs a texture for a wall material id. Ids outside
// the fixed table are ignored.
func (r *Raycaster) SetWallTexture(wallType uint8, img *ebiten.Image) {
	if int(wallType) < MaxWallTextures {
		r.wallTextures[wallType] = img
	}
}

// WallTexture returns the texture for a wall material id, or nil.
func (r *Raycaster) WallTexture(wallType uint8) *ebiten.Image {
	if int(wallType) < MaxWallTextures {
		return r.wallTextures[wallType]
	}
	return nil
}

// RenderFrame draws the complete wall field for one frame: flat
// ceiling and floor fills, then one shaded vertical strip per column.
// Columns whose ray misses keep the background fill.
func (r *Raycaster) RenderFrame(screen *ebiten.Image, cam *FirstPersonCamera, surface WorldSurface) {
	screen.DrawImage(r.ceilingImg, nil)

	floorOp := &ebiten.DrawImageOptions{}
	floorOp.GeoM.Translate(0, float64(r.screenH/2))
	screen.DrawImage(r.floorImg, floorOp)

	for x := 0; x < r.screenW; x++ {
		dirX, dirY := cam.RayDirection(x, r.screenW)
		hit := CastRay(cam.X, cam.Y, dirX, dirY, surface, cam.ViewDist)
		if !hit.Hit {
			continue
		}
		r.drawWallColumn(screen, x, hit, cam.ViewDist)
	}
}

// drawWallColumn draws one vertical wall strip. The projected height is
// inversely proportional to the perpendicular distance; ebiten clips
// the off-screen overhang of close walls.
func (r *Raycaster) drawWallColumn(screen *ebiten.Image, x int, hit RaycastHit, viewDist float64) {
	lineHeight := float64(r.screenH) / hit.Distance * r.cfg.WallHeight
	top := float64(r.screenH)/2 - lineHeight/2

	shade := mathutil.Clamp(1.0-hit.Distance/viewDist, r.cfg.BrightnessMin, 1.0)
	if hit.Side == 1 {
		shade *= r.cfg.SideShade
	}

	op := &ebiten.DrawImageOptions{}

	if tex := r.WallTexture(hit.WallType); tex != nil {
		bounds := tex.Bounds()
		texX := int(hit.WallX * float64(bounds.Dx()))
		texX = mathutil.IntMin(texX, bounds.Dx()-1)

		column := tex.SubImage(image.Rect(
			bounds.Min.X+texX, bounds.Min.Y,
			bounds.Min.X+texX+1, bounds.Max.Y,
		)).(*ebiten.Image)

		op.GeoM.Scale(1, lineHeight/float64(bounds.Dy()))
		op.GeoM.Translate(float64(x), top)
		op.ColorScale.Scale(float32(shade), float32(shade), float32(shade), 1)
		screen.DrawImage(column, op)
		return
	}

	base := r.cfg.WallPalette[int(hit.WallType)%MaxWallTextures]
	op.GeoM.Scale(1, lineHeight)
	op.GeoM.Translate(float64(x), top)
	op.ColorScale.Scale(
		float32(base.R)/255*float32(shade),
		float32(base.G)/255*float32(shade),
		float32(base.B)/255*float32(shade),
		1,
	)
	screen.DrawImage(r.whiteImg, op)
}
