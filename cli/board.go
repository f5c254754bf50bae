package cli

import (
	"fmt"
	"strings"

	"github.com/gothello/gothello/core"
)

// RenderBoard draws the board with labels on all four sides, followed by the score line
// and, once the game is over, the result. Empty cells the side to move can play on get
// the legal-move marker; a finished game shows none.
func (c *CLI) RenderBoard(t core.Turn) (string, error) {
	theme := themes[c.theme]
	state := t.State()
	_, inTurn := state.Side()

	var sb strings.Builder
	files := theme.paint("A B C D E F G H", theme.label, false)
	sb.WriteString(fmt.Sprintf("\n\t   %s\n", files))

	for row := 0; row < core.BoardSize; row++ {
		rank := theme.paint(fmt.Sprintf("%d", row+1), theme.label, false)
		sb.WriteString(fmt.Sprintf("\t%s  ", rank))

		for col := 0; col < core.BoardSize; col++ {
			coord, err := core.NewCoord(row, col)
			if err != nil {
				return "", err
			}
			cell, err := t.Cell(coord)
			if err != nil {
				return "", fmt.Errorf("reading cell %s: %w", coord, err)
			}

			var glyph rune
			var fg = theme.empty
			if side, ok := cell.Side(); ok {
				if side == core.Dark {
					glyph, fg = c.glyphs.Dark, theme.dark
				} else {
					glyph, fg = c.glyphs.Light, theme.light
				}
			} else if inTurn && Legal(t, coord) {
				glyph, fg = c.glyphs.Legal, theme.legal
			} else {
				glyph = c.glyphs.Empty
			}
			sb.WriteString(theme.paint(string(glyph)+" ", fg, true))
		}

		sb.WriteString(fmt.Sprintf(" %s\n", rank))
	}
	sb.WriteString(fmt.Sprintf("\t   %s\n\n", files))

	dark, light := t.Score()
	var arrow string
	switch side, ok := state.Side(); {
	case !ok:
		arrow = "   "
	case side == core.Dark:
		arrow = "<<<"
	default:
		arrow = ">>>"
	}
	sb.WriteString(fmt.Sprintf("\t    %2d %s %s %s %-2d\n\n",
		dark, c.disk(core.Dark), arrow, c.disk(core.Light), light))

	if !inTurn {
		sb.WriteString(c.result(dark, light))
		sb.WriteString("\n")
	}

	return sb.String(), nil
}

// result declares the winner by strict comparison of the disk counts.
func (c *CLI) result(dark, light int) string {
	switch {
	case dark > light:
		return fmt.Sprintf("\t%s Dark wins!", c.disk(core.Dark))
	case dark < light:
		return fmt.Sprintf("\t%s Light wins!", c.disk(core.Light))
	default:
		return "\tTie!"
	}
}

func (c *CLI) DisplayBoard(t core.Turn) error {
	board, err := c.RenderBoard(t)
	if err != nil {
		return err
	}
	fmt.Fprint(c.output, board)
	return nil
}
