package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// File is the on-disk shape of a config overlay. Sections that are absent
// keep their current values.
type File struct {
	Window    *Config          `yaml:"window"`
	Player    *PlayerConfig    `yaml:"player"`
	Physics   *PhysicsConfig   `yaml:"physics"`
	Hazard    *HazardConfig    `yaml:"hazard"`
	SavePoint *SavePointConfig `yaml:"save_point"`
	Game      *GameConfig      `yaml:"game"`
	Camera    *CameraConfig    `yaml:"camera"`
}

// LoadFile overlays the YAML file at path on the current configuration.
func LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	return Apply(data)
}

// Apply overlays YAML-encoded configuration on the current values. Fields
// missing from a section keep their current value.
func Apply(data []byte) error {
	f := File{
		Window:    C,
		Player:    &Player,
		Physics:   &Physics,
		Hazard:    &Hazard,
		SavePoint: &SavePoint,
		Game:      &Game,
		Camera:    &Camera,
	}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	if Game.TPS <= 0 {
		return fmt.Errorf("game.tps must be positive, got %d", Game.TPS)
	}
	return nil
}

// TickSeconds is the fixed simulation step.
func TickSeconds() float64 {
	return 1 / float64(Game.TPS)
}
