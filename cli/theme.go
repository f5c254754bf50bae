package cli

import (
	"fmt"

	"github.com/fatih/color"
)

// Profile selects the glyph set used for disks and cells.
type Profile string

const (
	ProfileSymbols Profile = "symbols"
	ProfileASCII   Profile = "ascii"
)

// Glyphs are the four cell markers of the board.
type Glyphs struct {
	Dark  rune
	Light rune
	Empty rune
	Legal rune
}

var profiles = map[Profile]Glyphs{
	ProfileSymbols: {Dark: '●', Light: '○', Empty: '∙', Legal: '*'},
	ProfileASCII:   {Dark: 'X', Light: 'O', Empty: '-', Legal: ' '},
}

func GlyphsFor(p Profile) (Glyphs, error) {
	g, ok := profiles[p]
	if !ok {
		return Glyphs{}, fmt.Errorf("invalid profile: %s (use: symbols, ascii)", p)
	}
	return g, nil
}

type ColorTheme string

const (
	ThemeOff   ColorTheme = "off"
	ThemeGreen ColorTheme = "green"
	ThemeGray  ColorTheme = "gray"
)

type themeColors struct {
	boardBg []color.Attribute
	dark    []color.Attribute
	light   []color.Attribute
	legal   []color.Attribute
	empty   []color.Attribute
	label   []color.Attribute
}

var themes = map[ColorTheme]themeColors{
	ThemeOff: {},
	ThemeGreen: {
		boardBg: []color.Attribute{color.BgGreen},
		dark:    []color.Attribute{color.FgBlack, color.Bold},
		light:   []color.Attribute{color.FgHiWhite, color.Bold},
		legal:   []color.Attribute{color.FgYellow},
		empty:   []color.Attribute{color.FgHiGreen},
		label:   []color.Attribute{color.FgCyan},
	},
	ThemeGray: {
		boardBg: []color.Attribute{color.BgHiBlack},
		dark:    []color.Attribute{color.FgBlack, color.Bold},
		light:   []color.Attribute{color.FgHiWhite, color.Bold},
		legal:   []color.Attribute{color.FgYellow},
		empty:   []color.Attribute{color.FgWhite},
		label:   []color.Attribute{color.FgCyan},
	},
}

// paint colours s with fg, on the board background when onBoard is set.
// Themes without colours return s untouched.
func (t themeColors) paint(s string, fg []color.Attribute, onBoard bool) string {
	attrs := append([]color.Attribute(nil), fg...)
	if onBoard {
		attrs = append(attrs, t.boardBg...)
	}
	if len(attrs) == 0 {
		return s
	}
	c := color.New(attrs...)
	c.EnableColor()
	return c.Sprint(s)
}
