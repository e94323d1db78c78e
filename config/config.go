package config

import "image/color"

// PlayerConfig contains all player-related configuration values.
// Speeds are in pixels per second, accelerations in pixels per second squared.
type PlayerConfig struct {
	// Movement
	MoveSpeed float64 `yaml:"move_speed"`
	JumpSpeed float64 `yaml:"jump_speed"`

	// Jump feel: extra gravity applied on top of base gravity
	FallMultiplier    float64 `yaml:"fall_multiplier"`
	LowJumpMultiplier float64 `yaml:"low_jump_multiplier"`

	// Dimensions
	CollisionWidth  float64 `yaml:"collision_width"`
	CollisionHeight float64 `yaml:"collision_height"`

	// Wall detection distance in front of the player
	WallCheckDistance float64 `yaml:"wall_check_distance"`
}

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
}

// HazardConfig contains hazard configuration values
type HazardConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	// Waypoint traversal
	Speed             float64 `yaml:"speed"`
	ReachEpsilon      float64 `yaml:"reach_epsilon"`
	DefaultPathOffset float64 `yaml:"default_path_offset"` // synthesized second waypoint, +X from origin

	// Seconds before a hazard that killed the player can fire again
	TriggerCooldown float64 `yaml:"trigger_cooldown"`
}

// SavePointConfig contains save point configuration values
type SavePointConfig struct {
	OneTimeUse     bool    `yaml:"one_time_use"`
	PulseSpeed     float64 `yaml:"pulse_speed"` // full pulse cycles per second
	PulseIntensity float64 `yaml:"pulse_intensity"`
	FlashDuration  float64 `yaml:"flash_duration"`

	InactiveColor color.RGBA `yaml:"-"`
	ActiveColor   color.RGBA `yaml:"-"`
	UsedColor     color.RGBA `yaml:"-"`
}

// GameConfig contains session-level configuration values
type GameConfig struct {
	TPS           int     `yaml:"tps"`
	RespawnDelay  float64 `yaml:"respawn_delay"` // seconds
	DefaultSpawnX float64 `yaml:"default_spawn_x"`
	DefaultSpawnY float64 `yaml:"default_spawn_y"`
	TileSize      int     `yaml:"tile_size"`
	AppName       string  `yaml:"app_name"`
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowSmoothing float64 `yaml:"follow_smoothing"` // How fast camera follows player (0.0-1.0)
}

// PauseConfig contains pause menu configuration values
type PauseConfig struct {
	MenuItemHeight    float64
	MenuItemGap       float64
	OverlayColor      color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	MenuOptions       []string
}

// HUDConfig contains HUD configuration values
type HUDConfig struct {
	Margin          float64
	TextColor       color.RGBA
	MessageDuration float64 // seconds a transient message stays on screen
}

// Config holds general game configuration
type Config struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Physics PhysicsConfig
var Hazard HazardConfig
var SavePoint SavePointConfig
var Game GameConfig
var Camera CameraConfig
var Pause PauseConfig
var HUD HUDConfig
var Debug DebugConfig

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	DrawHitboxes bool
}

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Gray         = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Cyan         = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	Blue         = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255} // Selected menu items
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}  // Unselected menu items
)

// Direction constants for player facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	Reset()
}

// Reset restores every configuration section to its built-in defaults.
func Reset() {
	C = &Config{
		Width:  640,
		Height: 360,
	}

	// One tile is 16px; the values below are the tuned unit values scaled by 16.
	Physics = PhysicsConfig{
		Gravity:      470.88, // 9.81 * gravity scale 3
		MaxFallSpeed: 640,
	}

	Player = PlayerConfig{
		MoveSpeed: 96,
		JumpSpeed: 192,

		FallMultiplier:    2.5,
		LowJumpMultiplier: 2,

		CollisionWidth:  11,
		CollisionHeight: 21,

		WallCheckDistance: 8,
	}

	Hazard = HazardConfig{
		Width:  16,
		Height: 16,

		Speed:             32,
		ReachEpsilon:      0.1,
		DefaultPathOffset: 80,

		TriggerCooldown: 0.5,
	}

	SavePoint = SavePointConfig{
		OneTimeUse:     false,
		PulseSpeed:     2,
		PulseIntensity: 0.3,
		FlashDuration:  0.4,

		InactiveColor: Gray,
		ActiveColor:   Yellow,
		UsedColor:     Green,
	}

	Game = GameConfig{
		TPS:          60,
		RespawnDelay: 1,
		TileSize:     16,
		AppName:      "iwanna",
	}

	Camera = CameraConfig{
		FollowSmoothing: 0.15,
	}

	Pause = PauseConfig{
		MenuItemHeight:    24,
		MenuItemGap:       8,
		OverlayColor:      BlackOverlay,
		TextColorNormal:   DarkBlue,
		TextColorSelected: LightBlue,
		MenuOptions:       []string{"RESUME", "RESTART", "QUIT"},
	}

	HUD = HUDConfig{
		Margin:          8,
		TextColor:       White,
		MessageDuration: 2,
	}

	Debug = DebugConfig{}
}
