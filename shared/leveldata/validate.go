package leveldata

import "fmt"

// IssueKind identifies a class of level problem.
type IssueKind string

const (
	IssueEmptyName     IssueKind = "empty_name"
	IssueNoTiles       IssueKind = "no_tiles"
	IssueNoSavePoints  IssueKind = "no_save_points"
	IssueOutOfBounds   IssueKind = "out_of_bounds"
	IssueDuplicateTile IssueKind = "duplicate_tile"
	IssueSpawnOutside  IssueKind = "spawn_out_of_bounds"
)

// Issue is one advisory finding from Validate.
type Issue struct {
	Kind    IssueKind
	Message string
}

func (i Issue) String() string {
	return string(i.Kind) + ": " + i.Message
}

// Validate reports problems with the level. Issues are advisory: loading and
// editing never depend on the result.
func (l *Level) Validate() []Issue {
	var issues []Issue
	add := func(kind IssueKind, format string, args ...any) {
		issues = append(issues, Issue{Kind: kind, Message: fmt.Sprintf(format, args...)})
	}

	if l.Name == "" {
		add(IssueEmptyName, "level name is empty")
	}
	if len(l.Tiles) == 0 {
		add(IssueNoTiles, "level has no tiles")
	}
	if len(l.SavePoints) == 0 {
		add(IssueNoSavePoints, "level has no save points")
	}

	seen := make(map[Cell]bool, len(l.Tiles))
	reported := make(map[Cell]bool)
	for i, t := range l.Tiles {
		if !l.IsValidPosition(t.Cell) {
			add(IssueOutOfBounds, "tile %d at (%d,%d) is outside the %dx%d grid", i, t.Cell.X, t.Cell.Y, l.Width, l.Height)
		}
		if seen[t.Cell] && !reported[t.Cell] {
			add(IssueDuplicateTile, "several tiles at (%d,%d); the first one wins", t.Cell.X, t.Cell.Y)
			reported[t.Cell] = true
		}
		seen[t.Cell] = true
	}

	for i, h := range l.Hazards {
		if c := l.CellAt(h.Position); !l.IsValidPosition(c) {
			add(IssueOutOfBounds, "hazard %d (%s) at (%g,%g) is outside the level", i, h.Type, h.Position.X, h.Position.Y)
		}
	}
	for i, sp := range l.SavePoints {
		if c := l.CellAt(sp.Position); !l.IsValidPosition(c) {
			add(IssueOutOfBounds, "save point %d at (%g,%g) is outside the level", i, sp.Position.X, sp.Position.Y)
		}
	}
	if c := l.CellAt(l.Spawn); !l.IsValidPosition(c) {
		add(IssueSpawnOutside, "spawn (%g,%g) is outside the level", l.Spawn.X, l.Spawn.Y)
	}

	return issues
}
