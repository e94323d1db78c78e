package leveldata

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Decode reads a YAML level. Missing size fields fall back to the defaults.
func Decode(r io.Reader) (*Level, error) {
	var lvl Level
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&lvl); err != nil {
		return nil, fmt.Errorf("decode level: %w", err)
	}
	if lvl.Width <= 0 {
		lvl.Width = DefaultWidth
	}
	if lvl.Height <= 0 {
		lvl.Height = DefaultHeight
	}
	if lvl.TileSize <= 0 {
		lvl.TileSize = DefaultTileSize
	}
	if lvl.Background == "" {
		lvl.Background = DefaultBackground
	}
	return &lvl, nil
}

// Encode writes the level as YAML.
func Encode(w io.Writer, lvl *Level) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(lvl); err != nil {
		return fmt.Errorf("encode level %q: %w", lvl.Name, err)
	}
	return enc.Close()
}

// Load reads a YAML level from disk.
func Load(filename string) (*Level, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("read level %s: %w", filename, err)
	}
	lvl, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return lvl, nil
}

// Save writes a YAML level to disk, replacing any existing file.
func Save(filename string, lvl *Level) error {
	var buf bytes.Buffer
	if err := Encode(&buf, lvl); err != nil {
		return err
	}
	if err := os.WriteFile(filename, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write level %s: %w", filename, err)
	}
	return nil
}

// IsLevelFile reports whether name has a level file extension.
func IsLevelFile(name string) bool {
	switch strings.ToLower(path.Ext(name)) {
	case ".yaml", ".yml", ".tmx":
		return true
	}
	return false
}

// LoadFS loads a level from fsys, choosing the format by extension.
func LoadFS(fsys fs.FS, name string) (*Level, error) {
	switch strings.ToLower(path.Ext(name)) {
	case ".tmx":
		return LoadTMX(fsys, name)
	case ".yaml", ".yml":
		f, err := fsys.Open(name)
		if err != nil {
			return nil, fmt.Errorf("open level %s: %w", name, err)
		}
		defer f.Close()
		lvl, err := Decode(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		return lvl, nil
	default:
		return nil, fmt.Errorf("unsupported level file %s", name)
	}
}

// LoadFile loads a level from disk, choosing the format by extension.
func LoadFile(filename string) (*Level, error) {
	dir, base := filepath.Split(filename)
	return LoadFS(os.DirFS(filepath.Clean(dir)), base)
}
