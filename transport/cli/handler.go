package cli

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/gothello/gothello/cli"
	"github.com/gothello/gothello/core"
)

type CLIHandler struct {
	engine  core.Engine
	view    *cli.CLI
	version string
}

func New(engine core.Engine, view *cli.CLI, version string) *CLIHandler {
	return &CLIHandler{
		engine:  engine,
		view:    view,
		version: version,
	}
}

// Run is the main menu loop. It returns nil when the user quits and an error when the
// input fails or a collaborator misbehaves; both end the session.
func (h *CLIHandler) Run() error {
	h.view.ShowIntro(h.version)

	for {
		h.view.ShowMainMenu()

		cmd, err := h.view.MainMenuCommand()
		if err != nil {
			return err
		}
		logrus.WithField("command", cmd).Debug("main menu")

		more, err := h.ProcessCommand(cmd)
		if err != nil || !more {
			return err
		}
	}
}

// ProcessCommand handles a main menu command - returns false to exit
func (h *CLIHandler) ProcessCommand(cmd core.UserCommand) (bool, error) {
	switch cmd {
	case core.CmdQuit:
		h.view.ShowQuitting(core.GameOver)
		return false, nil

	case core.CmdNewGame:
		players, ok, err := h.choosePlayers()
		if err != nil || !ok {
			return true, err
		}
		h.view.ShowCommandsInfo()
		return true, h.playMatch(players)

	case core.CmdHelp:
		h.view.ShowHelp()

	case core.CmdCredits:
		h.view.ShowCredits(h.version)
	}

	return true, nil
}

// choosePlayers asks for the Dark then the Light player. It reports false when the
// user quits the selection.
func (h *CLIHandler) choosePlayers() ([2]core.Player, bool, error) {
	var players [2]core.Player
	h.view.ShowPlayerMenu()

	for _, side := range []core.Side{core.Dark, core.Light} {
		cmd, err := h.view.ChoosePlayer(side)
		if err != nil {
			return players, false, err
		}
		if cmd == core.CmdQuit {
			return players, false, nil
		}

		player, err := core.PlayerFor(cmd)
		if err != nil {
			return players, false, err
		}
		players[side] = player
	}
	return players, true, nil
}

type match struct {
	game    core.Game
	players [2]core.Player
	ais     [2]core.AI
	log     *logrus.Entry
}

func (h *CLIHandler) playMatch(players [2]core.Player) error {
	m := &match{
		players: players,
		log:     logrus.WithField("match", uuid.New().String()),
	}

	for _, side := range []core.Side{core.Dark, core.Light} {
		if players[side].Type != core.PlayerComputer {
			continue
		}
		ai, err := h.engine.AI(players[side].Level)
		if err != nil {
			return fmt.Errorf("could not start the %s AI: %w", players[side].Level, err)
		}
		m.ais[side] = ai
	}

	m.game = h.engine.NewGame()
	m.log.WithFields(logrus.Fields{
		"dark":  players[core.Dark],
		"light": players[core.Light],
	}).Debug("match started")

	if err := h.view.DisplayBoard(m.game); err != nil {
		return err
	}

	for {
		state := m.game.State()
		side, ok := state.Side()
		if !ok {
			dark, light := m.game.Score()
			m.log.WithFields(logrus.Fields{"dark": dark, "light": light}).Debug("match finished")
			return nil
		}

		if m.players[side].Type == core.PlayerComputer {
			coord, err := m.ais[side].Move(m.game)
			if err != nil {
				return fmt.Errorf("%s AI: %w", side, err)
			}
			if err := h.makeMove(m, side, coord); err != nil {
				return err
			}
			continue
		}

		action, err := h.view.HumanMove(m.game)
		if err != nil {
			return err
		}

		switch action.Kind {
		case core.ActionMove:
			if err := h.makeMove(m, side, action.Coord); err != nil {
				return err
			}

		case core.ActionUndo:
			if err := m.game.Undo(side); err != nil {
				if errors.Is(err, core.ErrNothingToUndo) {
					h.view.ShowNoUndo(side)
					continue
				}
				return fmt.Errorf("undo: %w", err)
			}
			m.log.WithField("side", side).Debug("move undone")
			if err := h.view.DisplayBoard(m.game); err != nil {
				return err
			}

		case core.ActionOther:
			if action.Other == core.OtherQuit {
				m.log.WithField("side", side).Debug("match abandoned")
				h.view.ShowQuitting(state)
				return nil
			}
			h.view.ShowHelp()
			if err := h.view.DisplayBoard(m.game); err != nil {
				return err
			}
		}
	}
}

func (h *CLIHandler) makeMove(m *match, side core.Side, coord core.Coord) error {
	if err := m.game.MakeMove(coord); err != nil {
		return fmt.Errorf("%s move %s: %w", side, coord, err)
	}
	m.log.WithFields(logrus.Fields{"side": side, "coord": coord}).Debug("move")

	h.view.ShowMove(side, coord)
	return h.view.DisplayBoard(m.game)
}
