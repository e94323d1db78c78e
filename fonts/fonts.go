// Package fonts keeps the font faces the client draws text with.
package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	Regular FontName = "regular"
	Bold    FontName = "bold"
	Title   FontName = "title"
	Small   FontName = "small"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

var (
	fonts = map[FontName]font.Face{}
)

// LoadDefaults registers every face from the bundled Go Regular font.
func LoadDefaults() error {
	for name, size := range map[FontName]float64{
		Regular: 10,
		Bold:    20,
		Title:   32,
		Small:   8,
	} {
		if err := LoadFontWithSize(name, goregular.TTF, size); err != nil {
			return err
		}
	}
	return nil
}

func LoadFont(name FontName, ttf []byte) error {
	return LoadFontWithSize(name, ttf, 10)
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) error {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("parse font %s: %w", name, err)
	}
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
	return nil
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
