package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

type FontName string

const (
	Menu      FontName = "menu"
	MenuTitle FontName = "menu-title"
	Small     FontName = "small"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

var (
	fonts = map[FontName]font.Face{}
)

// LoadDefaults registers the built-in mono font under all names. A font
// shipped with the game data can replace them with LoadFontWithSize.
func LoadDefaults() error {
	for name, size := range map[FontName]float64{Menu: 8, MenuTitle: 10, Small: 6} {
		if err := LoadFontWithSize(name, gomono.TTF, size); err != nil {
			return err
		}
	}
	return nil
}

func LoadFont(name FontName, ttf []byte) error {
	return LoadFontWithSize(name, ttf, 8)
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
		if err := LoadDefaults(); err == nil {
			if f, ok = fonts[name]; ok {
				return f
			}
		}
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
