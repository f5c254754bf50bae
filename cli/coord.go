package cli

import (
	"github.com/gothello/gothello/core"
)

// ParseCoord reads a cell from text such as "c4", "4C" or "move to e 6".
// Every character is scanned: a digit 1-8 sets the row, a letter a-h sets the column,
// and a later character of either kind overrides an earlier one. Both must be present.
func ParseCoord(input string) (core.Coord, bool) {
	row, col := -1, -1
	for _, ch := range Normalize(input) {
		switch {
		case ch >= '1' && ch <= '8':
			row = int(ch - '1')
		case ch >= 'a' && ch <= 'h':
			col = int(ch - 'a')
		}
	}

	if row < 0 || col < 0 {
		return core.Coord{}, false
	}
	coord, err := core.NewCoord(row, col)
	if err != nil {
		return core.Coord{}, false
	}
	return coord, true
}

// Legal asks the game authority whether c is a legal move for the side to move.
func Legal(t core.Turn, c core.Coord) bool {
	return t.CheckMove(c) == nil
}
