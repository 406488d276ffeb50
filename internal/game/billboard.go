package game

import (
	"math"
	"sort"

	"arenagrid/internal/mathutil"

	"github.com/hajimehoshi/ebiten/v2"
)

// Billboard is a camera-facing sprite entity. Its lifecycle is owned by
// gameplay code; the renderer only reads it once per frame.
type Billboard struct {
	X, Y        float64 // World position in tile units
	WorldHeight float64 // Height above ground
	Texture     *ebiten.Image
	Width       int // Nominal sprite width in pixels
	Height      int // Nominal sprite height in pixels
	Scale       float64
	Visible     bool
}

// billboardProjection is the screen-space placement of one billboard.
type billboardProjection struct {
	screenX  float64
	screenY  float64
	size     float64 // Projected height in pixels before entity scale
	distance float64
}

// projectBillboard maps a world position to screen space using the same
// camera model as the wall raycast: the lateral offset along the right
// vector divided by the forward depth, scaled by the fov tangent. The
// vertical placement starts at screen center and rides up by an
// inverse-distance parallax term. Entities behind the camera or nearly
// on top of it are rejected.
func projectBillboard(cam *FirstPersonCamera, x, y, worldHeight float64, screenW, screenH int) (billboardProjection, bool) {
	dx := x - cam.X
	dy := y - cam.Y

	distance := math.Hypot(dx, dy)
	if distance < 0.01 {
		return billboardProjection{}, false
	}

	forward := dx*cam.GetForwardX() + dy*cam.GetForwardY()
	if forward <= 0 {
		return billboardProjection{}, false
	}

	lateral := dx*cam.GetRightX() + dy*cam.GetRightY()

	halfW := float64(screenW) / 2
	screenX := halfW + (lateral/forward)/math.Tan(cam.FOV/2)*halfW

	screenY := float64(screenH)/2 - (worldHeight/distance)*float64(screenH)/2

	return billboardProjection{
		screenX:  screenX,
		screenY:  screenY,
		size:     float64(screenH) * 0.5 / distance,
		distance: distance,
	}, true
}

type billboardDraw struct {
	entity *Billboard
	proj   billboardProjection
}

// sortBillboardDraws orders draws farthest first for the painter's
// algorithm.
func sortBillboardDraws(draws []billboardDraw) {
	sort.Slice(draws, func(i, j int) bool {
		return draws[i].proj.distance > draws[j].proj.distance
	})
}

// RenderBillboards projects all visible billboards and draws them
// back-to-front (painter's algorithm), so nearer sprites overwrite
// farther ones without a depth buffer. Call after RenderFrame.
func (r *Raycaster) RenderBillboards(screen *ebiten.Image, cam *FirstPersonCamera, entities []*Billboard) {
	draws := make([]billboardDraw, 0, len(entities))
	for _, e := range entities {
		if e == nil || !e.Visible || e.Texture == nil {
			continue
		}
		proj, ok := projectBillboard(cam, e.X, e.Y, e.WorldHeight, r.screenW, r.screenH)
		if !ok {
			continue
		}
		draws = append(draws, billboardDraw{entity: e, proj: proj})
	}

	if len(draws) == 0 {
		return
	}

	sortBillboardDraws(draws)

	for _, d := range draws {
		r.drawBillboard(screen, d, cam.ViewDist)
	}
}

func (r *Raycaster) drawBillboard(screen *ebiten.Image, d billboardDraw, viewDist float64) {
	e := d.entity

	spriteH := d.proj.size * e.Scale
	if spriteH <= 0 || e.Height <= 0 {
		return
	}
	spriteW := float64(e.Width) * spriteH / float64(e.Height)

	shade := mathutil.Clamp(1.0-d.proj.distance/viewDist, r.cfg.BrightnessMin, 1.0)

	bounds := e.Texture.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(spriteW/float64(bounds.Dx()), spriteH/float64(bounds.Dy()))
	op.GeoM.Translate(d.proj.screenX-spriteW/2, d.proj.screenY-spriteH)
	op.ColorScale.Scale(float32(shade), float32(shade), float32(shade), 1)
	screen.DrawImage(e.Texture, op)
}
