// Package config handles viewer configuration loading and management.
package config

import (
	"fmt"
	"time"
)

// Config holds all viewer settings.
type Config struct {
	Import   ImportConfig   `yaml:"import"`
	Playback PlaybackConfig `yaml:"playback"`
	Camera   CameraConfig   `yaml:"camera"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// ImportConfig holds glTF import settings.
type ImportConfig struct {
	FlipY            bool `yaml:"flip_y"`            // Mirror geometry across the XZ plane
	GenerateNormals  bool `yaml:"generate_normals"`  // Synthesize normals when a primitive has none
	GenerateTangents bool `yaml:"generate_tangents"` // Synthesize tangents when a primitive has UVs but no tangents
	SphereBounds     bool `yaml:"sphere_bounds"`     // Store node bounds as sphere-equivalent cubes
}

// PlaybackConfig holds animation playback settings.
type PlaybackConfig struct {
	Clip     string        `yaml:"clip"`     // Clip name, empty for the first clip
	Speed    float32       `yaml:"speed"`    // Playback speed multiplier
	FPS      int           `yaml:"fps"`      // Simulated frames per second
	Duration time.Duration `yaml:"duration"` // Length of a simulated run
}

// CameraConfig holds framing camera settings.
type CameraConfig struct {
	FovYDegrees float32 `yaml:"fov_y_degrees"`
	Aspect      float32 `yaml:"aspect"`
	NearPadding float32 `yaml:"near_padding"`
	FarPadding  float32 `yaml:"far_padding"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Import: ImportConfig{
			FlipY:            false,
			GenerateNormals:  true,
			GenerateTangents: true,
			SphereBounds:     true,
		},
		Playback: PlaybackConfig{
			Speed:    1,
			FPS:      30,
			Duration: 2 * time.Second,
		},
		Camera: CameraConfig{
			FovYDegrees: 45,
			Aspect:      16.0 / 9.0,
			NearPadding: 0.1,
			FarPadding:  0.1,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate reports the first setting that is out of range.
func (c *Config) Validate() error {
	switch {
	case c.Playback.Speed < 0:
		return fmt.Errorf("playback.speed must not be negative, got %g", c.Playback.Speed)
	case c.Playback.FPS <= 0:
		return fmt.Errorf("playback.fps must be positive, got %d", c.Playback.FPS)
	case c.Playback.Duration < 0:
		return fmt.Errorf("playback.duration must not be negative, got %v", c.Playback.Duration)
	case c.Camera.FovYDegrees <= 0 || c.Camera.FovYDegrees >= 180:
		return fmt.Errorf("camera.fov_y_degrees must be in (0, 180), got %g", c.Camera.FovYDegrees)
	case c.Camera.Aspect <= 0:
		return fmt.Errorf("camera.aspect must be positive, got %g", c.Camera.Aspect)
	}
	return nil
}

// FrameStep returns the simulated time between two playback frames.
func (c *Config) FrameStep() time.Duration {
	if c.Playback.FPS <= 0 {
		return 0
	}
	return time.Second / time.Duration(c.Playback.FPS)
}
