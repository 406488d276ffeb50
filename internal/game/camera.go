package game

import (
	"math"

	"arenagrid/internal/config"
)

// FirstPersonCamera holds the viewer state used by both the raycaster
// and billboard projection. Position and distances are in tile units.
type FirstPersonCamera struct {
	X, Y     float64 // Position in world
	Angle    float64 // Viewing angle in radians, normalized to [0, 2*pi)
	FOV      float64 // Field of view in radians
	ViewDist float64 // Maximum view distance
}

// NewFirstPersonCamera creates a camera at the given position with the
// configured field of view and view distance.
func NewFirstPersonCamera(x, y float64, cfg *config.Config) *FirstPersonCamera {
	return &FirstPersonCamera{
		X:        x,
		Y:        y,
		Angle:    cfg.Camera.StartAngle,
		FOV:      cfg.GetCameraFOV(),
		ViewDist: cfg.GetViewDistance(),
	}
}

// GetForwardX returns the X component of the forward direction vector
func (c *FirstPersonCamera) GetForwardX() float64 {
	return math.Cos(c.Angle)
}

// GetForwardY returns the Y component of the forward direction vector
func (c *FirstPersonCamera) GetForwardY() float64 {
	return math.Sin(c.Angle)
}

// GetRightX returns the X component of the right direction vector
func (c *FirstPersonCamera) GetRightX() float64 {
	return math.Cos(c.Angle + math.Pi/2)
}

// GetRightY returns the Y component of the right direction vector
func (c *FirstPersonCamera) GetRightY() float64 {
	return math.Sin(c.Angle + math.Pi/2)
}

// GetPosition returns the camera's current position
func (c *FirstPersonCamera) GetPosition() (float64, float64) {
	return c.X, c.Y
}

// SetPosition sets the camera's position
func (c *FirstPersonCamera) SetPosition(x, y float64) {
	c.X = x
	c.Y = y
}

// MoveForward displaces the camera along its forward vector.
func (c *FirstPersonCamera) MoveForward(distance float64) {
	c.X += c.GetForwardX() * distance
	c.Y += c.GetForwardY() * distance
}

// MoveBackward displaces the camera against its forward vector.
func (c *FirstPersonCamera) MoveBackward(distance float64) {
	c.X -= c.GetForwardX() * distance
	c.Y -= c.GetForwardY() * distance
}

// StrafeLeft displaces the camera against its right vector.
func (c *FirstPersonCamera) StrafeLeft(distance float64) {
	c.X -= c.GetRightX() * distance
	c.Y -= c.GetRightY() * distance
}

// StrafeRight displaces the camera along its right vector.
func (c *FirstPersonCamera) StrafeRight(distance float64) {
	c.X += c.GetRightX() * distance
	c.Y += c.GetRightY() * distance
}

// Rotate adds to the facing angle, keeping it normalized to [0, 2*pi).
func (c *FirstPersonCamera) Rotate(delta float64) {
	c.Angle += delta
	for c.Angle < 0 {
		c.Angle += 2 * math.Pi
	}
	for c.Angle >= 2*math.Pi {
		c.Angle -= 2 * math.Pi
	}
}

// RayDirection maps a screen column to a normalized world-space ray
// direction: the forward vector offset along the right vector by
// (2*column/total - 1) * tan(fov/2). This yields the per-column
// divergence of a rectilinear projection rather than the fisheye of
// uniform angle steps.
func (c *FirstPersonCamera) RayDirection(column, totalColumns int) (float64, float64) {
	planeOffset := 2.0*float64(column)/float64(totalColumns) - 1.0
	spread := math.Tan(c.FOV / 2)

	dirX := c.GetForwardX() + c.GetRightX()*planeOffset*spread
	dirY := c.GetForwardY() + c.GetRightY()*planeOffset*spread

	length := math.Hypot(dirX, dirY)
	return dirX / length, dirY / length
}
