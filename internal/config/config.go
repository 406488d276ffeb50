package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all engine configuration values loaded from config.yaml.
type Config struct {
	Display  DisplayConfig  `yaml:"display"`
	Camera   CameraConfig   `yaml:"camera"`
	Movement MovementConfig `yaml:"movement"`
	World    WorldConfig    `yaml:"world"`
	Graphics GraphicsConfig `yaml:"graphics"`
}

type DisplayConfig struct {
	ScreenWidth  int    `yaml:"screen_width"`
	ScreenHeight int    `yaml:"screen_height"`
	WindowTitle  string `yaml:"window_title"`
	Resizable    bool   `yaml:"resizable"`
}

type CameraConfig struct {
	FieldOfView  float64 `yaml:"field_of_view"` // Radians
	ViewDistance float64 `yaml:"view_distance"` // Tiles
	StartAngle   float64 `yaml:"start_angle"`   // Radians
}

type MovementConfig struct {
	MoveSpeed       float64 `yaml:"move_speed"`       // Tiles per second
	RotationSpeed   float64 `yaml:"rotation_speed"`   // Radians per second
	CollisionRadius float64 `yaml:"collision_radius"` // Tiles
	InteractReach   float64 `yaml:"interact_reach"`   // Tiles
}

type WorldConfig struct {
	ChunkSize     int     `yaml:"chunk_size"`
	ChunkCapacity int     `yaml:"chunk_capacity"`
	LoadRadius    float64 `yaml:"load_radius"`    // Chunks
	UnloadRadius  float64 `yaml:"unload_radius"`  // Chunks
	DoorOpenRate  float64 `yaml:"door_open_rate"` // Progress units per second
	Seed          int64   `yaml:"seed"`
}

type GraphicsConfig struct {
	WallHeight    float64      `yaml:"wall_height"`
	BrightnessMin float64      `yaml:"brightness_min"`
	SideShade     float64      `yaml:"side_shade"`
	Colors        ColorsConfig `yaml:"colors"`
}

type ColorsConfig struct {
	Ceiling     [3]int         `yaml:"ceiling"`
	Floor       [3]int         `yaml:"floor"`
	WallPalette map[int][3]int `yaml:"wall_palette"`
}

// LoadConfig loads the configuration from the given yaml file.
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// MustLoadConfig loads the configuration and panics on error.
func MustLoadConfig(filename string) *Config {
	config, err := LoadConfig(filename)
	if err != nil {
		panic("Failed to load config: " + err.Error())
	}
	return config
}

func (c *Config) validate() error {
	if c.Display.ScreenWidth <= 0 || c.Display.ScreenHeight <= 0 {
		return fmt.Errorf("invalid screen dimensions: %dx%d", c.Display.ScreenWidth, c.Display.ScreenHeight)
	}
	if c.World.ChunkSize <= 0 {
		return fmt.Errorf("invalid chunk size: %d", c.World.ChunkSize)
	}
	if c.World.ChunkCapacity <= 0 {
		return fmt.Errorf("invalid chunk capacity: %d", c.World.ChunkCapacity)
	}
	return nil
}

// Helper functions for easy access to commonly used values
func (c *Config) GetScreenWidth() int {
	return c.Display.ScreenWidth
}

func (c *Config) GetScreenHeight() int {
	return c.Display.ScreenHeight
}

func (c *Config) GetCameraFOV() float64 {
	return c.Camera.FieldOfView
}

func (c *Config) GetViewDistance() float64 {
	return c.Camera.ViewDistance
}

func (c *Config) GetMoveSpeed() float64 {
	return c.Movement.MoveSpeed
}

func (c *Config) GetRotSpeed() float64 {
	return c.Movement.RotationSpeed
}

func (c *Config) GetChunkSize() int {
	return c.World.ChunkSize
}

func (c *Config) GetChunkCapacity() int {
	return c.World.ChunkCapacity
}
