package core

import "fmt"

// Turn is the read side of the game authority: current board, whose turn, scores and
// move legality. Implementations live outside this module.
type Turn interface {
	State() State
	Score() (dark, light int)
	Cell(c Coord) (Cell, error)
	// CheckMove returns nil when c is a legal move for the side to move.
	CheckMove(c Coord) error
}

// Game is a Turn that can be played and rewound.
type Game interface {
	Turn
	MakeMove(c Coord) error
	// Undo rewinds to the last position where side was to move.
	// It returns ErrNothingToUndo when there is none.
	Undo(side Side) error
}

type AI interface {
	Move(t Turn) (Coord, error)
}

// Engine supplies games and AI opponents to the console.
type Engine interface {
	NewGame() Game
	AI(level Level) (AI, error)
}

type Level int

const (
	Weak Level = iota + 1
	Medium
	Strong
)

func (l Level) String() string {
	switch l {
	case Weak:
		return "Weak"
	case Medium:
		return "Medium"
	case Strong:
		return "Strong"
	default:
		return "-"
	}
}

type PlayerType int

const (
	PlayerHuman PlayerType = iota + 1
	PlayerComputer
)

// Player is the configuration of one side of a match.
type Player struct {
	Type  PlayerType
	Level Level // Only for computer
}

func (p Player) String() string {
	if p.Type == PlayerComputer {
		return p.Level.String() + " AI"
	}
	return "Human"
}

// PlayerFor maps a player-selection command to the player it selects.
func PlayerFor(cmd UserCommand) (Player, error) {
	switch cmd {
	case CmdHumanPlayer:
		return Player{Type: PlayerHuman}, nil
	case CmdAiWeak:
		return Player{Type: PlayerComputer, Level: Weak}, nil
	case CmdAiMedium:
		return Player{Type: PlayerComputer, Level: Medium}, nil
	case CmdAiStrong:
		return Player{Type: PlayerComputer, Level: Strong}, nil
	default:
		return Player{}, fmt.Errorf("%s does not select a player", cmd)
	}
}
