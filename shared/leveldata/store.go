package leveldata

// New returns an empty level with default size, tile size and background.
func New(name string) *Level {
	l := &Level{Name: name}
	l.InitializeEmpty()
	return l
}

// InitializeEmpty resets the level to an empty default-sized grid. The name,
// id and description are kept.
func (l *Level) InitializeEmpty() {
	l.Width = DefaultWidth
	l.Height = DefaultHeight
	l.TileSize = DefaultTileSize
	l.Background = DefaultBackground
	l.Spawn = Point{}
	l.Tiles = []TilePlacement{}
	l.Hazards = []HazardPlacement{}
	l.SavePoints = []SavePointPlacement{}
}

// AddTile appends a tile at cell. Existing entries at the same cell are kept.
func (l *Level) AddTile(cell Cell, tile string, tileType TileType) {
	l.Tiles = append(l.Tiles, TilePlacement{Cell: cell, Tile: tile, Type: tileType})
}

// RemoveTile removes every tile at cell and returns how many were removed.
func (l *Level) RemoveTile(cell Cell) int {
	kept := l.Tiles[:0]
	removed := 0
	for _, t := range l.Tiles {
		if t.Cell == cell {
			removed++
			continue
		}
		kept = append(kept, t)
	}
	l.Tiles = kept
	return removed
}

// TileAt returns the first tile placed at cell, in insertion order.
func (l *Level) TileAt(cell Cell) (TilePlacement, bool) {
	for _, t := range l.Tiles {
		if t.Cell == cell {
			return t, true
		}
	}
	return TilePlacement{}, false
}

// AddHazard appends a stationary hazard.
func (l *Level) AddHazard(pos Point, hazardType HazardType, rotation float64) *HazardPlacement {
	l.Hazards = append(l.Hazards, HazardPlacement{
		Position: pos,
		Type:     hazardType,
		Rotation: rotation,
		Moving:   hazardType == HazardMovingPlatform,
	})
	return &l.Hazards[len(l.Hazards)-1]
}

// AddSavePoint appends a save point. New save points are active.
func (l *Level) AddSavePoint(pos Point) *SavePointPlacement {
	l.SavePoints = append(l.SavePoints, SavePointPlacement{Position: pos, Active: true})
	return &l.SavePoints[len(l.SavePoints)-1]
}

// SetSpawn sets the player spawn point.
func (l *Level) SetSpawn(pos Point) {
	l.Spawn = pos
}

// IsValidPosition reports whether cell lies inside the level grid. The check
// is advisory; placement outside the grid is still accepted.
func (l *Level) IsValidPosition(cell Cell) bool {
	return cell.X >= 0 && cell.X < l.Width && cell.Y >= 0 && cell.Y < l.Height
}

// Clear removes every placement and resets the spawn point.
func (l *Level) Clear() {
	l.Tiles = []TilePlacement{}
	l.Hazards = []HazardPlacement{}
	l.SavePoints = []SavePointPlacement{}
	l.Spawn = Point{}
}
