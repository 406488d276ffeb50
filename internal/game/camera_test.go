package game

import (
	"math"
	"testing"

	"arenagrid/internal/config"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Display.ScreenWidth = 800
	cfg.Display.ScreenHeight = 600
	cfg.Camera.FieldOfView = math.Pi / 2
	cfg.Camera.ViewDistance = 40.0
	return cfg
}

func TestCameraDirections(t *testing.T) {
	cam := NewFirstPersonCamera(5.0, 5.0, testConfig())

	t.Run("Facing East", func(t *testing.T) {
		cam.Angle = 0
		if math.Abs(cam.GetForwardX()-1.0) > 1e-9 || math.Abs(cam.GetForwardY()) > 1e-9 {
			t.Errorf("Forward should be (1,0), got (%.4f, %.4f)", cam.GetForwardX(), cam.GetForwardY())
		}
		if math.Abs(cam.GetRightX()) > 1e-9 || math.Abs(cam.GetRightY()-1.0) > 1e-9 {
			t.Errorf("Right should be (0,1), got (%.4f, %.4f)", cam.GetRightX(), cam.GetRightY())
		}
	})

	t.Run("Facing South", func(t *testing.T) {
		cam.Angle = math.Pi / 2
		if math.Abs(cam.GetForwardX()) > 1e-9 || math.Abs(cam.GetForwardY()-1.0) > 1e-9 {
			t.Errorf("Forward should be (0,1), got (%.4f, %.4f)", cam.GetForwardX(), cam.GetForwardY())
		}
	})
}

func TestCameraMovement(t *testing.T) {
	cam := NewFirstPersonCamera(5.0, 5.0, testConfig())
	cam.Angle = 0

	cam.MoveForward(2.0)
	if x, y := cam.GetPosition(); math.Abs(x-7.0) > 1e-9 || math.Abs(y-5.0) > 1e-9 {
		t.Errorf("Expected (7,5), got (%.4f, %.4f)", x, y)
	}

	cam.MoveBackward(1.0)
	if x, _ := cam.GetPosition(); math.Abs(x-6.0) > 1e-9 {
		t.Errorf("Expected x=6, got %.4f", x)
	}

	cam.StrafeRight(1.5)
	if _, y := cam.GetPosition(); math.Abs(y-6.5) > 1e-9 {
		t.Errorf("Expected y=6.5, got %.4f", y)
	}

	cam.StrafeLeft(1.5)
	if _, y := cam.GetPosition(); math.Abs(y-5.0) > 1e-9 {
		t.Errorf("Expected y=5, got %.4f", y)
	}
}

func TestCameraRotationNormalization(t *testing.T) {
	cam := NewFirstPersonCamera(0, 0, testConfig())

	t.Run("Wraps Past Full Turn", func(t *testing.T) {
		cam.Angle = 0
		cam.Rotate(2*math.Pi + 0.5)
		if math.Abs(cam.Angle-0.5) > 1e-9 {
			t.Errorf("Expected angle 0.5, got %.4f", cam.Angle)
		}
	})

	t.Run("Wraps Below Zero", func(t *testing.T) {
		cam.Angle = 0.25
		cam.Rotate(-1.0)
		want := 2*math.Pi - 0.75
		if math.Abs(cam.Angle-want) > 1e-9 {
			t.Errorf("Expected angle %.4f, got %.4f", want, cam.Angle)
		}
	})
}

func TestRayDirection(t *testing.T) {
	cam := NewFirstPersonCamera(0, 0, testConfig())
	cam.Angle = 0 // Forward (1,0), right (0,1), tan(fov/2)=1

	const columns = 800

	t.Run("Center Column Is Forward", func(t *testing.T) {
		dirX, dirY := cam.RayDirection(columns/2, columns)
		if math.Abs(dirX-1.0) > 1e-9 || math.Abs(dirY) > 1e-9 {
			t.Errorf("Center ray should be (1,0), got (%.4f, %.4f)", dirX, dirY)
		}
	})

	t.Run("Edge Column At Half FOV", func(t *testing.T) {
		dirX, dirY := cam.RayDirection(0, columns)
		angle := math.Atan2(dirY, dirX)
		if math.Abs(angle-(-math.Pi/4)) > 1e-6 {
			t.Errorf("Left edge ray should diverge by -fov/2, got %.4f", angle)
		}
	})

	t.Run("Directions Are Normalized", func(t *testing.T) {
		for _, col := range []int{0, 100, 400, 799} {
			dirX, dirY := cam.RayDirection(col, columns)
			if length := math.Hypot(dirX, dirY); math.Abs(length-1.0) > 1e-9 {
				t.Errorf("Column %d ray has length %.6f", col, length)
			}
		}
	})

	t.Run("Monotonic Sweep", func(t *testing.T) {
		prev := math.Inf(-1)
		for col := 0; col < columns; col += 50 {
			dirX, dirY := cam.RayDirection(col, columns)
			angle := math.Atan2(dirY, dirX)
			if angle <= prev {
				t.Fatalf("Ray angles should increase left to right, column %d went %.4f -> %.4f", col, prev, angle)
			}
			prev = angle
		}
	})
}
