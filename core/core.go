package core

import "fmt"

const BoardSize = 8

type Side int

const (
	Dark Side = iota
	Light
)

func (s Side) String() string {
	if s == Light {
		return "Light"
	}
	return "Dark"
}

func (s Side) Opposite() Side {
	if s == Dark {
		return Light
	}
	return Dark
}

// State is either the turn of a side or the end of the game.
// The zero value is Dark's turn.
type State struct {
	side Side
	over bool
}

// GameOver is the state of a game in which neither side can move.
var GameOver = State{over: true}

func InTurn(side Side) State {
	return State{side: side}
}

// Side returns the side to move, or false once the game is over.
func (s State) Side() (Side, bool) {
	if s.over {
		return Dark, false
	}
	return s.side, true
}

func (s State) Over() bool {
	return s.over
}

func (s State) String() string {
	if s.over {
		return "Game over"
	}
	return s.side.String() + " to move"
}

// Coord is a board cell, zero-indexed from the top-left corner.
type Coord struct {
	row int
	col int
}

func NewCoord(row, col int) (Coord, error) {
	if row < 0 || row >= BoardSize || col < 0 || col >= BoardSize {
		return Coord{}, fmt.Errorf("%w: row %d, col %d", ErrOutOfRange, row, col)
	}
	return Coord{row: row, col: col}, nil
}

func (c Coord) Row() int {
	return c.row
}

func (c Coord) Col() int {
	return c.col
}

// String returns the coordinate as the player types it, e.g. "c4".
func (c Coord) String() string {
	return fmt.Sprintf("%c%d", 'a'+c.col, c.row+1)
}

// Cell is the content of a board square.
type Cell struct {
	side     Side
	occupied bool
}

var EmptyCell = Cell{}

func Occupied(side Side) Cell {
	return Cell{side: side, occupied: true}
}

// Side returns the owner of the disk on the cell, or false for an empty cell.
func (c Cell) Side() (Side, bool) {
	return c.side, c.occupied
}

func (c Cell) Empty() bool {
	return !c.occupied
}
