// Package assets embeds the bundled levels.
package assets

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/automoto/iwanna/shared/leveldata"
)

//go:embed levels
var assetFS embed.FS

const levelsDir = "levels"

// Levels returns the bundled level files.
func Levels() fs.FS {
	sub, err := fs.Sub(assetFS, levelsDir)
	if err != nil {
		panic(fmt.Sprintf("levels directory missing from embedded assets: %v", err))
	}
	return sub
}

// MustLoadLevels loads every bundled level, ordered by file name.
func MustLoadLevels() ([]*leveldata.Level, []string) {
	byName, names, err := leveldata.LoadAll(Levels(), ".")
	if err != nil {
		panic(err)
	}

	levels := make([]*leveldata.Level, 0, len(names))
	for _, name := range names {
		levels = append(levels, byName[name])
	}
	return levels, names
}
