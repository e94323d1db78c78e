// Package scenes holds the top-level screens the game switches between.
package scenes

import "github.com/automoto/iwanna/shared/leveldata"

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
	Quit()
}

// Catalog is the ordered list of playable levels.
type Catalog struct {
	Levels []*leveldata.Level
}

// Find returns the index of the level with the given name.
func (c *Catalog) Find(name string) (int, bool) {
	for i, lvl := range c.Levels {
		if lvl.Name == name {
			return i, true
		}
	}
	return 0, false
}
