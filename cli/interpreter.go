package cli

import (
	"github.com/gothello/gothello/core"
)

const (
	menuPrompt    = "\tInsert input: "
	invalidPrompt = "\tInvalid command! Try again: "
	illegalPrompt = "\tIllegal move, try again: "
)

// InterpretMainMenu maps a main menu line to its command.
func InterpretMainMenu(input string) (core.UserCommand, bool) {
	switch Normalize(input) {
	case "n", "new game":
		return core.CmdNewGame, true
	case "h", "help":
		return core.CmdHelp, true
	case "c", "credits":
		return core.CmdCredits, true
	case "q", "quit", "exit":
		return core.CmdQuit, true
	default:
		return core.CmdNone, false
	}
}

// InterpretPlayer maps a player selection line to its command.
func InterpretPlayer(input string) (core.UserCommand, bool) {
	switch Normalize(input) {
	case "h", "human", "player", "human player":
		return core.CmdHumanPlayer, true
	case "w", "weak", "weak ai":
		return core.CmdAiWeak, true
	case "m", "medium", "medium ai":
		return core.CmdAiMedium, true
	case "s", "strong", "strong ai":
		return core.CmdAiStrong, true
	case "q", "quit", "exit":
		return core.CmdQuit, true
	default:
		return core.CmdNone, false
	}
}

// InterpretAction maps an in-game line to a player action. Anything that is not a
// command is read as a coordinate; its legality is not checked here.
func InterpretAction(input string) (core.PlayerAction, bool) {
	input = Normalize(input)
	switch input {
	case "h", "help":
		return core.HelpAction(), true
	case "u", "undo":
		return core.UndoAction(), true
	case "q", "quit":
		return core.QuitAction(), true
	}

	coord, ok := ParseCoord(input)
	if !ok {
		return core.PlayerAction{}, false
	}
	return core.MoveAction(coord), true
}

// MainMenuCommand prompts until the user enters a main menu command.
func (c *CLI) MainMenuCommand() (core.UserCommand, error) {
	prompt := menuPrompt
	for {
		input, err := c.readInput(prompt)
		if err != nil {
			return core.CmdNone, err
		}
		if cmd, ok := InterpretMainMenu(input); ok {
			return cmd, nil
		}
		prompt = invalidPrompt
	}
}

// ChoosePlayer prompts until the user picks a player for side, or quits.
func (c *CLI) ChoosePlayer(side core.Side) (core.UserCommand, error) {
	prompt := "\t" + c.sideTag(side) + " player: "
	for {
		input, err := c.readInput(prompt)
		if err != nil {
			return core.CmdNone, err
		}
		if cmd, ok := InterpretPlayer(input); ok {
			return cmd, nil
		}
		prompt = invalidPrompt
	}
}

// HumanMove prompts the side to move until it enters a command or a legal move.
// Malformed and illegal coordinates get the same retry prompt.
func (c *CLI) HumanMove(t core.Turn) (core.PlayerAction, error) {
	side, ok := t.State().Side()
	if !ok {
		return core.PlayerAction{}, core.ErrGameOver
	}

	prompt := "\t" + c.sideTag(side) + " moves: "
	for {
		input, err := c.readInput(prompt)
		if err != nil {
			return core.PlayerAction{}, err
		}
		action, ok := InterpretAction(input)
		if ok && (action.Kind != core.ActionMove || Legal(t, action.Coord)) {
			return action, nil
		}
		prompt = illegalPrompt
	}
}
