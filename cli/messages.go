package cli

import (
	"fmt"

	"github.com/gothello/gothello/core"
)

// ShowMove confirms a move, e.g. "● Dark  moves: c4".
func (c *CLI) ShowMove(side core.Side, coord core.Coord) {
	c.ShowMessage(fmt.Sprintf("\t%s moves: %s", c.sideTag(side), coord))
}

// ShowQuitting prints the last message before leaving. A side that quits mid-game is
// called out; quitting from the menu (game over state) just says goodbye.
func (c *CLI) ShowQuitting(state core.State) {
	side, ok := state.Side()
	switch {
	case !ok:
		c.ShowMessage("\n\tGoodbye!")
	case side == core.Dark:
		c.ShowMessage("\tDark is running away, the coward!")
	default:
		c.ShowMessage("\tLight is running away, the coward!")
	}
}

func (c *CLI) ShowNoUndo(side core.Side) {
	c.ShowMessage(fmt.Sprintf("\tThere is no move %s can undo.", side))
}
