package leveldata

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// TMX layer and object group names understood by LoadTMX.
const (
	TileLayerName        = "tiles"
	SpawnGroupName       = "PlayerSpawn"
	HazardGroupName      = "Hazards"
	SavePointGroupName   = "SavePoints"
	WaypointsGroupName   = "Waypoints"
	tileTypeProperty     = "type"
	hazardTypeProperty   = "hazardType"
	hazardPathProperty   = "path"
	hazardSpeedProperty  = "speed"
	hazardPingPongProp   = "pingPong"
	hazardMovingProperty = "moving"
	hazardDisabledProp   = "disabled"
	savePointDisabled    = "disabled"
	savePointOneTimeUse  = "oneTimeUse"
)

// LoadTMX parses a Tiled map into a Level. It takes an fs.FS so callers can
// pass embed.FS (game) or os.DirFS (level tool).
func LoadTMX(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	lvl := &Level{
		Name:       strings.TrimSuffix(path.Base(tmxPath), path.Ext(tmxPath)),
		Width:      levelMap.Width,
		Height:     levelMap.Height,
		TileSize:   levelMap.TileWidth,
		Background: DefaultBackground,
	}

	for _, layer := range levelMap.Layers {
		if layer.Name != TileLayerName {
			continue
		}
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile.IsNil() || tile.Tileset == nil {
					continue
				}

				tileType := TileGround
				if tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID); err == nil {
					if name := tilesetTile.Properties.GetString(tileTypeProperty); name != "" {
						if parsed, perr := ParseTileType(name); perr == nil {
							tileType = parsed
						}
					}
				}

				lvl.AddTile(Cell{X: x, Y: y}, fmt.Sprintf("%s:%d", tile.Tileset.Name, tile.ID), tileType)
			}
		}
		break
	}

	// Waypoint paths first so hazards can reference them by name.
	paths := map[string][]Point{}
	for _, og := range levelMap.ObjectGroups {
		if og.Name != WaypointsGroupName {
			continue
		}
		for _, o := range og.Objects {
			if len(o.PolyLines) == 0 || o.PolyLines[0].Points == nil {
				continue
			}
			pts := make([]Point, 0, len(*o.PolyLines[0].Points))
			for _, p := range *o.PolyLines[0].Points {
				pts = append(pts, Point{X: o.X + p.X, Y: o.Y + p.Y})
			}
			paths[o.Name] = pts
		}
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case SpawnGroupName:
			if len(og.Objects) > 0 {
				o := og.Objects[0]
				lvl.SetSpawn(Point{X: o.X, Y: o.Y})
			}
		case HazardGroupName:
			for _, o := range og.Objects {
				h, err := hazardFromObject(o, paths)
				if err != nil {
					return nil, fmt.Errorf("%s: object %d: %w", tmxPath, o.ID, err)
				}
				lvl.Hazards = append(lvl.Hazards, h)
			}
		case SavePointGroupName:
			for _, o := range og.Objects {
				lvl.SavePoints = append(lvl.SavePoints, SavePointPlacement{
					Position:   Point{X: o.X, Y: o.Y},
					Active:     !o.Properties.GetBool(savePointDisabled),
					OneTimeUse: o.Properties.GetBool(savePointOneTimeUse),
				})
			}
		}
	}

	return lvl, nil
}

func hazardFromObject(o *tiled.Object, paths map[string][]Point) (HazardPlacement, error) {
	// Check Class first (Tiled 1.9+), fall back to Type for older maps
	typeName := o.Class
	if typeName == "" {
		typeName = o.Type //nolint:staticcheck // Type is deprecated but needed for older Tiled maps
	}
	if typeName == "" {
		typeName = o.Properties.GetString(hazardTypeProperty)
	}
	hazardType, err := ParseHazardType(typeName)
	if err != nil {
		return HazardPlacement{}, err
	}

	h := HazardPlacement{
		Position: Point{X: o.X, Y: o.Y},
		Type:     hazardType,
		Rotation: o.Rotation,
		Moving:   o.Properties.GetBool(hazardMovingProperty) || hazardType == HazardMovingPlatform,
		PingPong: o.Properties.GetBool(hazardPingPongProp),
		Speed:    o.Properties.GetFloat(hazardSpeedProperty),
		Disabled: o.Properties.GetBool(hazardDisabledProp),
	}
	if name := o.Properties.GetString(hazardPathProperty); name != "" {
		pts, ok := paths[name]
		if !ok {
			return HazardPlacement{}, fmt.Errorf("unknown waypoint path %q", name)
		}
		h.Waypoints = append([]Point(nil), pts...)
		h.Moving = true
	}
	return h, nil
}

// LoadAll discovers all level files (.yaml, .yml, .tmx) in dir within fsys,
// loads each, and returns a map keyed by stem name plus a sorted list of names.
func LoadAll(fsys fs.FS, dir string) (map[string]*Level, []string, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, nil, fmt.Errorf("read %s: %w", dir, err)
	}

	levels := make(map[string]*Level)
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !IsLevelFile(entry.Name()) {
			continue
		}
		p := path.Join(dir, entry.Name())
		lvl, err := LoadFS(fsys, p)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", p, err)
		}
		stem := strings.TrimSuffix(entry.Name(), path.Ext(entry.Name()))
		levels[stem] = lvl
		names = append(names, stem)
	}
	if len(names) == 0 {
		return nil, nil, fmt.Errorf("no level files found in %s", dir)
	}

	sort.Strings(names)
	return levels, names, nil
}
