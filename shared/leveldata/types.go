// Package leveldata provides the level record shared by the game and the
// level authoring tool. It has no dependencies on ebitengine, donburi, or
// resolv; pure data only.
package leveldata

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Default level settings for a freshly created level.
const (
	DefaultWidth      = 50
	DefaultHeight     = 30
	DefaultTileSize   = 16
	DefaultBackground = "#00ffff"
)

// Point is a world position in pixels.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Cell is a tile grid coordinate.
type Cell struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// TileType classifies a placed tile.
type TileType int

const (
	TileGround TileType = iota
	TileWall
	TilePlatform
	TileDecoration
)

var tileTypeNames = []string{"Ground", "Wall", "Platform", "Decoration"}

func (t TileType) String() string {
	if t < 0 || int(t) >= len(tileTypeNames) {
		return fmt.Sprintf("TileType(%d)", int(t))
	}
	return tileTypeNames[t]
}

// Solid reports whether the tile blocks movement.
func (t TileType) Solid() bool {
	return t != TileDecoration
}

// ParseTileType parses a tile type name, case-insensitively.
func ParseTileType(s string) (TileType, error) {
	for i, name := range tileTypeNames {
		if strings.EqualFold(name, s) {
			return TileType(i), nil
		}
	}
	return TileGround, fmt.Errorf("unknown tile type %q", s)
}

func (t TileType) MarshalYAML() (interface{}, error) {
	return t.String(), nil
}

func (t *TileType) UnmarshalYAML(node *yaml.Node) error {
	parsed, err := ParseTileType(node.Value)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// HazardType classifies a placed hazard.
type HazardType int

const (
	HazardSpikeUp HazardType = iota
	HazardSpikeDown
	HazardSpikeLeft
	HazardSpikeRight
	HazardSaw
	HazardCrusher
	HazardLaser
	HazardMovingPlatform
)

var hazardTypeNames = []string{
	"SpikeUp", "SpikeDown", "SpikeLeft", "SpikeRight",
	"Saw", "Crusher", "Laser", "MovingPlatform",
}

func (h HazardType) String() string {
	if h < 0 || int(h) >= len(hazardTypeNames) {
		return fmt.Sprintf("HazardType(%d)", int(h))
	}
	return hazardTypeNames[h]
}

// ParseHazardType parses a hazard type name, case-insensitively. "Spike" is
// accepted as an alias for SpikeUp.
func ParseHazardType(s string) (HazardType, error) {
	if strings.EqualFold(s, "Spike") {
		return HazardSpikeUp, nil
	}
	for i, name := range hazardTypeNames {
		if strings.EqualFold(name, s) {
			return HazardType(i), nil
		}
	}
	return HazardSpikeUp, fmt.Errorf("unknown hazard type %q", s)
}

func (h HazardType) MarshalYAML() (interface{}, error) {
	return h.String(), nil
}

func (h *HazardType) UnmarshalYAML(node *yaml.Node) error {
	parsed, err := ParseHazardType(node.Value)
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}

// TilePlacement is one tile entry. Several entries may share a cell.
type TilePlacement struct {
	Cell Cell     `yaml:"cell"`
	Tile string   `yaml:"tile"`
	Type TileType `yaml:"type"`
}

// HazardPlacement is one hazard entry. Moving hazards travel between
// Waypoints; an empty list on a moving hazard gets a default path at load.
type HazardPlacement struct {
	Position  Point      `yaml:"position"`
	Type      HazardType `yaml:"type"`
	Rotation  float64    `yaml:"rotation,omitempty"` // degrees
	Moving    bool       `yaml:"moving,omitempty"`
	Waypoints []Point    `yaml:"waypoints,omitempty"`
	PingPong  bool       `yaml:"ping_pong,omitempty"`
	Speed     float64    `yaml:"speed,omitempty"` // 0 = configured default
	Disabled  bool       `yaml:"disabled,omitempty"`
}

// SavePointPlacement is one save point entry.
type SavePointPlacement struct {
	Position   Point `yaml:"position"`
	Active     bool  `yaml:"active"`
	OneTimeUse bool  `yaml:"one_time_use,omitempty"`
}

// Level is the complete authored description of a level.
type Level struct {
	ID          string `yaml:"id,omitempty"`
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`

	// Size in cells
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	TileSize int `yaml:"tile_size"`

	Spawn      Point  `yaml:"spawn"`
	Background string `yaml:"background,omitempty"` // hex colour, e.g. "#00ffff"

	Tiles      []TilePlacement      `yaml:"tiles"`
	Hazards    []HazardPlacement    `yaml:"hazards"`
	SavePoints []SavePointPlacement `yaml:"save_points"`
}

// PixelWidth returns the level width in pixels.
func (l *Level) PixelWidth() int {
	return l.Width * l.tileSize()
}

// PixelHeight returns the level height in pixels.
func (l *Level) PixelHeight() int {
	return l.Height * l.tileSize()
}

// CellAt converts a world position to the cell that contains it.
func (l *Level) CellAt(p Point) Cell {
	ts := float64(l.tileSize())
	return Cell{X: floorDiv(p.X, ts), Y: floorDiv(p.Y, ts)}
}

// CellOrigin returns the world position of a cell's top-left corner.
func (l *Level) CellOrigin(c Cell) Point {
	ts := float64(l.tileSize())
	return Point{X: float64(c.X) * ts, Y: float64(c.Y) * ts}
}

func (l *Level) tileSize() int {
	if l.TileSize <= 0 {
		return DefaultTileSize
	}
	return l.TileSize
}

func floorDiv(v, size float64) int {
	q := int(v / size)
	if v < 0 && float64(q)*size != v {
		q--
	}
	return q
}
