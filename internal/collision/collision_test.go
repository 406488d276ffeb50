package collision

import (
	"math"
	"testing"
)

// mockGrid is a fixed 10x10 map. '#' is solid, '.' is open.
type mockGrid struct {
	rows []string
}

func (m *mockGrid) InBounds(tileX, tileY int) bool {
	return tileY >= 0 && tileY < len(m.rows) && tileX >= 0 && tileX < len(m.rows[tileY])
}

func (m *mockGrid) IsSolid(tileX, tileY int) bool {
	if !m.InBounds(tileX, tileY) {
		return true
	}
	return m.rows[tileY][tileX] == '#'
}

func borderedGrid() *mockGrid {
	return &mockGrid{rows: []string{
		"##########",
		"#........#",
		"#........#",
		"#........#",
		"#........#",
		"#####.####",
		"#........#",
		"#........#",
		"#........#",
		"##########",
	}}
}

func TestPointSolid(t *testing.T) {
	grid := borderedGrid()

	cases := []struct {
		name string
		x, y float64
		want bool
	}{
		{"Open Interior", 4.5, 2.5, false},
		{"Wall Tile", 0.5, 0.5, true},
		{"Fraction Floors Down", 0.99, 0.99, true},
		{"Tile Boundary", 1.0, 1.0, false},
		{"Negative Is Outside", -0.5, 2.5, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := PointSolid(grid, tc.x, tc.y); got != tc.want {
				t.Errorf("PointSolid(%.2f, %.2f) = %v, want %v", tc.x, tc.y, got, tc.want)
			}
		})
	}
}

func TestCircleColliding(t *testing.T) {
	grid := borderedGrid()

	t.Run("Clear Of Walls", func(t *testing.T) {
		if CircleColliding(grid, 4.5, 2.5, 0.25) {
			t.Error("Circle in open space should not collide")
		}
	})

	t.Run("Corner Sample Catches Wall", func(t *testing.T) {
		// Center at x=1.1 is open, but the left corners at x=0.85
		// reach into the border wall.
		if !CircleColliding(grid, 1.1, 2.5, 0.25) {
			t.Error("Corner samples should detect the adjacent wall")
		}
	})

	t.Run("Touching Distance Stays Clear", func(t *testing.T) {
		// Corners at x=1.05 stay inside column 1.
		if CircleColliding(grid, 1.3, 2.5, 0.25) {
			t.Error("Circle fully inside an open tile column should not collide")
		}
	})
}

func TestMoveWithSlide(t *testing.T) {
	grid := borderedGrid()

	t.Run("Free Movement Commits Fully", func(t *testing.T) {
		x, y := MoveWithSlide(grid, 3.5, 2.5, 4.0, 3.0, 0.25)
		if x != 4.0 || y != 3.0 {
			t.Errorf("Expected (4.0, 3.0), got (%.2f, %.2f)", x, y)
		}
	})

	t.Run("Diagonal Into Wall Slides Along It", func(t *testing.T) {
		// Moving down-right into the wall row at y=5: X commits, Y is
		// blocked because the lower corners would sample into row 5.
		x, y := MoveWithSlide(grid, 2.5, 4.4, 3.0, 4.9, 0.25)
		if x != 3.0 {
			t.Errorf("X component should slide to 3.0, got %.2f", x)
		}
		if y != 4.4 {
			t.Errorf("Y component should be blocked at 4.4, got %.2f", y)
		}
	})

	t.Run("Both Axes Blocked", func(t *testing.T) {
		// Pressed into the top-left inner corner.
		x, y := MoveWithSlide(grid, 1.3, 1.3, 0.9, 0.9, 0.25)
		if x != 1.3 || y != 1.3 {
			t.Errorf("Expected no movement, got (%.2f, %.2f)", x, y)
		}
	})

	t.Run("Gap In Wall Row Passes", func(t *testing.T) {
		// Column 5 of row 5 is open; a thin mover fits through.
		x, y := MoveWithSlide(grid, 5.5, 4.5, 5.5, 5.5, 0.2)
		if y != 5.5 {
			t.Errorf("Mover should pass through the gap, got y=%.2f", y)
		}
		if x != 5.5 {
			t.Errorf("X should be unchanged, got %.2f", x)
		}
	})
}

func TestProbe(t *testing.T) {
	grid := borderedGrid()

	t.Run("Hits Facing Wall", func(t *testing.T) {
		hit := Probe(grid, 5.5, 2.5, 1.0, 0.0, 10.0)
		if !hit.Hit {
			t.Fatal("Probe should hit the east wall")
		}
		if hit.TileX != 9 || hit.TileY != 2 {
			t.Errorf("Expected tile (9,2), got (%d,%d)", hit.TileX, hit.TileY)
		}
		if math.Abs(hit.Distance-3.5) > 0.15 {
			t.Errorf("Expected distance near 3.5, got %.2f", hit.Distance)
		}
	})

	t.Run("Range Limit Misses", func(t *testing.T) {
		hit := Probe(grid, 5.5, 2.5, 1.0, 0.0, 2.0)
		if hit.Hit {
			t.Errorf("Wall at 3.5 tiles should be out of a 2.0 tile reach, got hit at %.2f", hit.Distance)
		}
	})

	t.Run("Direction Is Normalized", func(t *testing.T) {
		hit := Probe(grid, 5.5, 2.5, 100.0, 0.0, 10.0)
		if !hit.Hit {
			t.Fatal("Scaled direction should behave like a unit direction")
		}
		if math.Abs(hit.Distance-3.5) > 0.15 {
			t.Errorf("Expected distance near 3.5, got %.2f", hit.Distance)
		}
	})

	t.Run("Zero Direction Misses", func(t *testing.T) {
		if hit := Probe(grid, 5.5, 2.5, 0.0, 0.0, 10.0); hit.Hit {
			t.Error("Zero direction should return a miss")
		}
	})
}

func TestLineOfSight(t *testing.T) {
	grid := borderedGrid()

	t.Run("Clear Within Room", func(t *testing.T) {
		if !LineOfSight(grid, 1.5, 1.5, 8.5, 4.5) {
			t.Error("Open room interior should have line of sight")
		}
	})

	t.Run("Wall Row Blocks", func(t *testing.T) {
		if LineOfSight(grid, 2.5, 2.5, 2.5, 7.5) {
			t.Error("Wall row should block vertical line of sight")
		}
	})

	t.Run("Through The Gap", func(t *testing.T) {
		if !LineOfSight(grid, 5.5, 2.5, 5.5, 7.5) {
			t.Error("Gap in the wall row should allow line of sight")
		}
	})
}
