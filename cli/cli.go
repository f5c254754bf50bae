// Package cli is the terminal side of the game: it reads and interprets the player's
// input, draws the board and prints menus and status messages. It never changes the game;
// the board, turn and legality all come from a core.Turn.
package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/gothello/gothello/core"
)

type CLI struct {
	input  LineReader
	output io.Writer
	glyphs Glyphs
	theme  ColorTheme
}

func New(input LineReader, output io.Writer) *CLI {
	return &CLI{
		input:  input,
		output: output,
		glyphs: profiles[ProfileSymbols],
		theme:  ThemeOff,
	}
}

func (c *CLI) SetProfile(p Profile) error {
	g, err := GlyphsFor(p)
	if err != nil {
		return err
	}
	c.glyphs = g
	return nil
}

func (c *CLI) SetTheme(theme ColorTheme) error {
	if _, ok := themes[theme]; !ok {
		return fmt.Errorf("invalid theme: %s (use: off, green, gray)", theme)
	}
	c.theme = theme
	return nil
}

func (c *CLI) Glyphs() Glyphs {
	return c.glyphs
}

func (c *CLI) ShowMessage(msg string) {
	fmt.Fprintln(c.output, msg)
}

// Normalize trims surrounding whitespace and lower-cases the input.
func Normalize(input string) string {
	return strings.ToLower(strings.TrimSpace(input))
}

// readInput blocks for the next normalized line. A failing input stream is fatal to the
// session, so the error always wraps core.ErrInputClosed.
func (c *CLI) readInput(prompt string) (string, error) {
	line, err := c.input.ReadLine(prompt)
	if err != nil {
		return "", fmt.Errorf("%w: %w", core.ErrInputClosed, err)
	}
	return Normalize(line), nil
}

// sideTag is the glyph and padded name that starts per-side prompts and messages.
func (c *CLI) sideTag(side core.Side) string {
	if side == core.Dark {
		return c.disk(core.Dark) + " Dark "
	}
	return c.disk(core.Light) + " Light"
}

func (c *CLI) disk(side core.Side) string {
	t := themes[c.theme]
	if side == core.Dark {
		return t.paint(string(c.glyphs.Dark), t.dark, false)
	}
	return t.paint(string(c.glyphs.Light), t.light, false)
}
