package collision

import (
	"math"
)

// SolidChecker is the solidity query surface collision tests run
// against. Both world.TileGrid and world.ChunkStore satisfy it.
type SolidChecker interface {
	// IsSolid reports the effective solidity of a tile coordinate.
	IsSolid(tileX, tileY int) bool
	// InBounds reports whether a tile coordinate is backed by real
	// tiles (inside the grid, or inside a loaded chunk).
	InBounds(tileX, tileY int) bool
}

// PointSolid floors a continuous position to tile coordinates and
// checks solidity there.
func PointSolid(c SolidChecker, x, y float64) bool {
	return c.IsSolid(int(math.Floor(x)), int(math.Floor(y)))
}

// CircleColliding approximates a circle-vs-grid test by sampling the
// center and the four corners of the circle's bounding square. A thin
// circle can clip exactly through a convex wall corner it was not
// sampled at; that is an accepted accuracy/cost trade-off, not a bug.
func CircleColliding(c SolidChecker, x, y, radius float64) bool {
	points := [5][2]float64{
		{x, y},
		{x - radius, y - radius},
		{x + radius, y - radius},
		{x - radius, y + radius},
		{x + radius, y + radius},
	}

	for _, p := range points {
		if PointSolid(c, p[0], p[1]) {
			return true
		}
	}
	return false
}

// MoveWithSlide resolves a movement request axis by axis: the X
// displacement is tested and committed first, then the Y displacement
// from the possibly-committed X. Moving diagonally into a wall keeps
// the component along the open axis, producing wall sliding.
func MoveWithSlide(c SolidChecker, fromX, fromY, toX, toY, radius float64) (float64, float64) {
	resultX, resultY := fromX, fromY

	if !CircleColliding(c, toX, fromY, radius) {
		resultX = toX
	}

	if !CircleColliding(c, resultX, toY, radius) {
		resultY = toY
	}

	return resultX, resultY
}

// ProbeHit is the result of an interaction probe.
type ProbeHit struct {
	Hit      bool
	Distance float64
	X, Y     float64 // Exact hit point
	TileX    int
	TileY    int
}

// probeStep is the sampling increment of Probe, in tiles.
const probeStep = 0.1

// Probe marches a short fixed-step ray from the origin and returns the
// first solid tile it samples. This is the "what is directly in front
// of me" query for doors and pickups, not the rendering raycast.
func Probe(c SolidChecker, originX, originY, dirX, dirY, maxDistance float64) ProbeHit {
	length := math.Hypot(dirX, dirY)
	if length == 0 {
		return ProbeHit{}
	}
	dirX /= length
	dirY /= length

	x, y := originX, originY
	for distance := 0.0; distance < maxDistance; distance += probeStep {
		tileX := int(math.Floor(x))
		tileY := int(math.Floor(y))

		if !c.InBounds(tileX, tileY) {
			break
		}

		if c.IsSolid(tileX, tileY) {
			return ProbeHit{
				Hit:      true,
				Distance: distance,
				X:        x,
				Y:        y,
				TileX:    tileX,
				TileY:    tileY,
			}
		}

		x += dirX * probeStep
		y += dirY * probeStep
	}

	return ProbeHit{}
}

// LineOfSight samples the segment between two points and reports
// whether no solid tile interrupts it.
func LineOfSight(c SolidChecker, x1, y1, x2, y2 float64) bool {
	const steps = 50
	dx := (x2 - x1) / steps
	dy := (y2 - y1) / steps

	for i := 0; i <= steps; i++ {
		checkX := x1 + dx*float64(i)
		checkY := y1 + dy*float64(i)

		if PointSolid(c, checkX, checkY) {
			return false
		}
	}
	return true
}
