package testutil

import (
	"fmt"
	"io"

	"github.com/gothello/gothello/core"
)

// Types with unexported fields that AssertEqual compares.
var allowed = []interface{}{core.Coord{}, core.State{}, core.Cell{}}

// Coord builds a coordinate from its typed form ("c4") and panics on bad input.
func Coord(s string) core.Coord {
	if len(s) != 2 {
		panic(fmt.Sprintf("testutil: bad coordinate %q", s))
	}
	c, err := core.NewCoord(int(s[1]-'1'), int(s[0]-'a'))
	if err != nil {
		panic(err)
	}
	return c
}

type snapshot struct {
	cells map[core.Coord]core.Side
	legal map[core.Coord]bool
	state core.State
}

// Game is a scripted game authority. It knows nothing about the rules: the test sets
// the disks, the legal cells and the state, and MakeMove just places a disk and passes
// the turn.
type Game struct {
	Cells map[core.Coord]core.Side
	Legal map[core.Coord]bool
	Turn  core.State

	// AfterMove, when set, replaces the default turn passing after a move.
	AfterMove func(g *Game, c core.Coord)

	// ScoreOverride, when set, is returned by Score instead of counting disks.
	ScoreOverride *[2]int

	Checks  int
	Moves   []core.Coord
	history []snapshot
}

func NewGame(state core.State) *Game {
	return &Game{
		Cells: make(map[core.Coord]core.Side),
		Legal: make(map[core.Coord]bool),
		Turn:  state,
	}
}

// StartingGame returns the usual opening position with Dark to move.
func StartingGame() *Game {
	g := NewGame(core.InTurn(core.Dark))
	g.Cells[Coord("d4")] = core.Light
	g.Cells[Coord("e5")] = core.Light
	g.Cells[Coord("e4")] = core.Dark
	g.Cells[Coord("d5")] = core.Dark
	for _, c := range []string{"d3", "c4", "f5", "e6"} {
		g.Legal[Coord(c)] = true
	}
	return g
}

func (g *Game) State() core.State {
	return g.Turn
}

func (g *Game) Score() (int, int) {
	if g.ScoreOverride != nil {
		return g.ScoreOverride[0], g.ScoreOverride[1]
	}
	var dark, light int
	for _, side := range g.Cells {
		if side == core.Dark {
			dark++
		} else {
			light++
		}
	}
	return dark, light
}

func (g *Game) Cell(c core.Coord) (core.Cell, error) {
	if side, ok := g.Cells[c]; ok {
		return core.Occupied(side), nil
	}
	return core.EmptyCell, nil
}

func (g *Game) CheckMove(c core.Coord) error {
	g.Checks++
	if _, ok := g.Turn.Side(); !ok {
		return core.ErrGameOver
	}
	if !g.Legal[c] {
		return fmt.Errorf("%w: %s", core.ErrIllegalMove, c)
	}
	return nil
}

func (g *Game) MakeMove(c core.Coord) error {
	if err := g.CheckMove(c); err != nil {
		return err
	}
	side, _ := g.Turn.Side()
	g.history = append(g.history, g.snapshot())
	g.Moves = append(g.Moves, c)
	g.Cells[c] = side
	if g.AfterMove != nil {
		g.AfterMove(g, c)
		return nil
	}
	delete(g.Legal, c)
	g.Turn = core.InTurn(side.Opposite())
	return nil
}

func (g *Game) Undo(side core.Side) error {
	for i := len(g.history) - 1; i >= 0; i-- {
		if s, ok := g.history[i].state.Side(); ok && s == side {
			g.restore(g.history[i])
			g.history = g.history[:i]
			return nil
		}
	}
	return core.ErrNothingToUndo
}

func (g *Game) snapshot() snapshot {
	s := snapshot{
		cells: make(map[core.Coord]core.Side, len(g.Cells)),
		legal: make(map[core.Coord]bool, len(g.Legal)),
		state: g.Turn,
	}
	for k, v := range g.Cells {
		s.cells[k] = v
	}
	for k, v := range g.Legal {
		s.legal[k] = v
	}
	return s
}

func (g *Game) restore(s snapshot) {
	g.Cells = s.cells
	g.Legal = s.legal
	g.Turn = s.state
}

// AI plays a fixed list of moves.
type AI struct {
	Moves []core.Coord
	Err   error
}

func (a *AI) Move(core.Turn) (core.Coord, error) {
	if a.Err != nil {
		return core.Coord{}, a.Err
	}
	if len(a.Moves) == 0 {
		return core.Coord{}, fmt.Errorf("testutil: AI has no moves left")
	}
	c := a.Moves[0]
	a.Moves = a.Moves[1:]
	return c, nil
}

// Engine hands out prepared games and AIs.
type Engine struct {
	Games []*Game
	AIs   map[core.Level]*AI
	Err   error

	Started int
}

func (e *Engine) NewGame() core.Game {
	g := e.Games[e.Started]
	e.Started++
	return g
}

func (e *Engine) AI(level core.Level) (core.AI, error) {
	if e.Err != nil {
		return nil, e.Err
	}
	ai, ok := e.AIs[level]
	if !ok {
		return nil, fmt.Errorf("testutil: no AI for level %s", level)
	}
	return ai, nil
}

// Reader replays input lines and records every prompt it was given.
// Once the lines run out it returns io.EOF.
type Reader struct {
	Lines   []string
	Prompts []string
}

func NewReader(lines ...string) *Reader {
	return &Reader{Lines: lines}
}

func (r *Reader) ReadLine(prompt string) (string, error) {
	r.Prompts = append(r.Prompts, prompt)
	if len(r.Lines) == 0 {
		return "", io.EOF
	}
	line := r.Lines[0]
	r.Lines = r.Lines[1:]
	return line, nil
}
