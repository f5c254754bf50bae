package cli

import (
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
)

var mainMenu = heredoc.Doc(`
	-------------------------
	------- MAIN MENU -------
	-------------------------
	n - New match
	h - Help
	c - Credits
	q - Quit Gothello
	-------------------------`)

var playerMenu = heredoc.Doc(`
	-------------------------
	---- CHOOSE A PLAYER ----
	-------------------------
	h - Human Player
	w - Weak   AI
	m - Medium AI
	s - Strong AI
	q - Quit match
	-------------------------`)

var commandsInfo = heredoc.Doc(`
	Starting new game...
	Type a cell's coordinates to place your disk there.
	Example: "c4" (or "C4", "4c", "4C", etc...).
	Type 'help' or 'h' to display a help message.
	Type 'undo' or 'u' to undo the last move.
	Type 'quit' or 'q' to abandon the game.`)

var reversiHelp = heredoc.Doc(`
	-------------------------
	-------- REVERSI --------
	-------------------------
	Reversi is played by two players on an 8x8 board. Each of the 64 disks is black on one side and white on the other. One player is Dark and plays the black side, the other is Light and plays the white side. The game starts with four disks in the centre of the board, two for each side, and Dark moves first.

	On their turn a player places a disk of their colour on a free square. Every straight line (horizontal, vertical or diagonal) of opposing disks enclosed between the new disk and another disk of the mover's colour is flipped. A move must flip at least one disk, otherwise it is not legal.

	Turns alternate. A player with no legal move passes, so the other player may move several times in a row. The game ends when neither player can move, usually once the board is full after 60 moves, sometimes earlier with empty squares left.

	The player with more disks of their colour at the end wins. Equal counts are a tie.
	-------------------------`)

var consoleHelp = heredoc.Doc(`
	-------------------------
	------- GOTHELLO --------
	-------------------------
	First choose who plays Dark and who plays Light: a human or an AI of weak, medium or strong level. Two humans can play each other on the same terminal, a human can challenge an AI, or two AIs can play while you watch.

	A human player moves by typing the coordinates of a square, a letter and a number in any order and any case: 'c4', 'C4', '4c' and '4C' all mean the same square. Legal moves are marked on the board.

	On your turn you can also type 'undo' (or 'u') to take back your last move as many times as you like, 'help' (or 'h') to read this again, and 'quit' (or 'q') to leave the match.
	-------------------------`)

const introFormat = `
	-------------------------
	------- GOTHELLO --------
	-------------------------
	  a simple Reversi game
	     written in Go
	        v. %s`

const creditsFormat = `
	-------------------------
	-------- CREDITS --------
	-------------------------
	Gothello v. %s
	by the Gothello authors
	Released under the MIT license
	-------------------------`

// tabbed indents every non-empty line of text by one tab.
func tabbed(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = "\t" + line
		}
	}
	return strings.Join(lines, "\n")
}

// section prints text after two blank lines, the way every menu and notice opens.
func (c *CLI) section(text string) {
	c.ShowMessage("\n\n" + tabbed(text))
}

func (c *CLI) ShowIntro(version string) {
	c.section(heredoc.Docf(introFormat, version))
}

func (c *CLI) ShowMainMenu() {
	c.section(mainMenu)
}

func (c *CLI) ShowPlayerMenu() {
	c.section(playerMenu)
}

func (c *CLI) ShowCommandsInfo() {
	c.section(commandsInfo)
}

func (c *CLI) ShowHelp() {
	c.section(reversiHelp)
	c.section(consoleHelp)
}

func (c *CLI) ShowCredits(version string) {
	c.section(heredoc.Docf(creditsFormat, version))
}
