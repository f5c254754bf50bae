package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"

	"github.com/gothello/gothello/cli"
	"github.com/gothello/gothello/core"
	"github.com/gothello/gothello/internal/testutil"
)

func newHandler(engine *testutil.Engine, lines ...string) (*CLIHandler, *bytes.Buffer) {
	var out bytes.Buffer
	view := cli.New(testutil.NewReader(lines...), &out)
	return New(engine, view, "1.0.0"), &out
}

func TestRun_QuitFromMenu(t *testing.T) {
	h, out := newHandler(&testutil.Engine{}, "q")

	testutil.AssertNoError(t, h.Run())

	got := out.String()
	testutil.AssertContains(t, got, "v. 1.0.0")
	testutil.AssertContains(t, got, "MAIN MENU")
	if !strings.HasSuffix(got, "\n\tGoodbye!\n") {
		t.Errorf("output does not end with the goodbye: %q", got)
	}
}

func TestRun_MenuCommands(t *testing.T) {
	h, out := newHandler(&testutil.Engine{}, "play", "help", "C", "exit")

	testutil.AssertNoError(t, h.Run())

	got := out.String()
	testutil.AssertContains(t, got, "-------- REVERSI --------")
	testutil.AssertContains(t, got, "\tGothello v. 1.0.0\n")
	if n := strings.Count(got, "MAIN MENU"); n != 3 {
		t.Errorf("main menu shown %d times; want 3", n)
	}
}

func TestRun_QuitPlayerSelection(t *testing.T) {
	engine := &testutil.Engine{}
	h, out := newHandler(engine, "n", "human", "q", "q")

	testutil.AssertNoError(t, h.Run())

	if engine.Started != 0 {
		t.Errorf("a game was started after quitting the player selection")
	}
	testutil.AssertContains(t, out.String(), "CHOOSE A PLAYER")
	testutil.AssertNotContains(t, out.String(), "running away")
}

func TestRun_HumanMatch(t *testing.T) {
	g := testutil.StartingGame()
	engine := &testutil.Engine{Games: []*testutil.Game{g}}
	h, out := newHandler(engine,
		"n", "h", "h",
		"4c",   // Dark moves
		"u",    // Light has nothing to undo
		"a1",   // illegal, reprompted
		"q",    // Light quits
		"quit", // leave the menu
	)

	testutil.AssertNoError(t, h.Run())

	testutil.AssertEqual(t, g.Moves, []core.Coord{testutil.Coord("c4")})
	got := out.String()
	testutil.AssertContains(t, got, "\tStarting new game...\n")
	testutil.AssertContains(t, got, "\t● Dark  moves: c4\n")
	testutil.AssertContains(t, got, "\tThere is no move Light can undo.\n")
	testutil.AssertContains(t, got, "\tLight is running away, the coward!\n")
	testutil.AssertContains(t, got, "\t     3 ● >>> ○ 2 \n")
}

func TestRun_UndoRestoresPosition(t *testing.T) {
	g := testutil.StartingGame()
	engine := &testutil.Engine{Games: []*testutil.Game{g}}
	h, out := newHandler(engine, "n", "h", "h", "c4", "d3", "undo", "q", "q")

	testutil.AssertNoError(t, h.Run())

	if _, ok := g.Cells[testutil.Coord("c4")]; ok {
		t.Error("c4 still occupied after undo")
	}
	if _, ok := g.Cells[testutil.Coord("d3")]; ok {
		t.Error("d3 still occupied after undo")
	}
	testutil.AssertEqual(t, g.Turn, core.InTurn(core.Dark))
	testutil.AssertContains(t, out.String(), "\tDark is running away, the coward!\n")
	testutil.AssertNotContains(t, out.String(), "There is no move")
}

func TestRun_HelpDuringMatch(t *testing.T) {
	g := testutil.StartingGame()
	engine := &testutil.Engine{Games: []*testutil.Game{g}}
	h, out := newHandler(engine, "n", "h", "h", "help", "q", "q")

	testutil.AssertNoError(t, h.Run())

	got := out.String()
	helpAt := strings.Index(got, "-------- REVERSI --------")
	if helpAt < 0 {
		t.Fatal("help not shown")
	}
	if !strings.Contains(got[helpAt:], "\t   A B C D E F G H\n") {
		t.Error("board not redrawn after help")
	}
}

func TestRun_AIMatchToTheEnd(t *testing.T) {
	g := testutil.StartingGame()
	g.AfterMove = func(g *testutil.Game, c core.Coord) {
		delete(g.Legal, c)
		if len(g.Moves) == 2 {
			g.Turn = core.GameOver
			return
		}
		side, _ := g.Turn.Side()
		g.Turn = core.InTurn(side.Opposite())
	}
	ai := &testutil.AI{Moves: []core.Coord{testutil.Coord("d3")}}
	engine := &testutil.Engine{
		Games: []*testutil.Game{g},
		AIs:   map[core.Level]*testutil.AI{core.Strong: ai},
	}
	h, out := newHandler(engine, "n", "human", "strong ai", "c4", "q")

	testutil.AssertNoError(t, h.Run())

	testutil.AssertEqual(t, g.Moves, []core.Coord{testutil.Coord("c4"), testutil.Coord("d3")})
	got := out.String()
	testutil.AssertContains(t, got, "\t○ Light moves: d3\n")
	testutil.AssertContains(t, got, "\t     3 ●     ○ 3 \n")
	testutil.AssertContains(t, got, "\tTie!\n")
	if n := strings.Count(got, "MAIN MENU"); n != 2 {
		t.Errorf("main menu shown %d times; want 2", n)
	}
}

func TestRun_Failures(t *testing.T) {
	t.Run("input closed at menu", func(t *testing.T) {
		h, _ := newHandler(&testutil.Engine{})
		testutil.AssertErrorIs(t, h.Run(), core.ErrInputClosed)
	})

	t.Run("input closed mid-match", func(t *testing.T) {
		engine := &testutil.Engine{Games: []*testutil.Game{testutil.StartingGame()}}
		h, _ := newHandler(engine, "n", "h", "h", "c4")
		testutil.AssertErrorIs(t, h.Run(), core.ErrInputClosed)
	})

	t.Run("engine has no AI", func(t *testing.T) {
		boom := errors.New("no engine")
		engine := &testutil.Engine{Err: boom}
		h, _ := newHandler(engine, "n", "w", "h")
		testutil.AssertErrorIs(t, h.Run(), boom)
		if engine.Started != 0 {
			t.Error("game started without its AI")
		}
	})

	t.Run("AI fails", func(t *testing.T) {
		boom := errors.New("search crashed")
		engine := &testutil.Engine{
			Games: []*testutil.Game{testutil.StartingGame()},
			AIs:   map[core.Level]*testutil.AI{core.Medium: {Err: boom}},
		}
		h, _ := newHandler(engine, "n", "m", "h")
		err := h.Run()
		testutil.AssertErrorIs(t, err, boom)
		testutil.AssertContains(t, err.Error(), "Dark AI")
	})

	t.Run("AI plays an illegal move", func(t *testing.T) {
		engine := &testutil.Engine{
			Games: []*testutil.Game{testutil.StartingGame()},
			AIs:   map[core.Level]*testutil.AI{core.Weak: {Moves: []core.Coord{testutil.Coord("a1")}}},
		}
		h, _ := newHandler(engine, "n", "w", "h")
		testutil.AssertErrorIs(t, h.Run(), core.ErrIllegalMove)
	})
}

func TestRun_LogsMatch(t *testing.T) {
	hook := logtest.NewGlobal()
	level := logrus.GetLevel()
	logrus.SetLevel(logrus.DebugLevel)
	t.Cleanup(func() {
		logrus.SetLevel(level)
		logrus.StandardLogger().ReplaceHooks(make(logrus.LevelHooks))
	})

	engine := &testutil.Engine{Games: []*testutil.Game{testutil.StartingGame()}}
	h, _ := newHandler(engine, "n", "h", "h", "c4", "q", "q")
	testutil.AssertNoError(t, h.Run())

	var matchID interface{}
	var messages []string
	for _, e := range hook.AllEntries() {
		messages = append(messages, e.Message)
		if e.Message == "match started" {
			matchID = e.Data["match"]
		}
		if e.Message == "move" {
			if e.Data["match"] != matchID {
				t.Errorf("move logged under match %v; want %v", e.Data["match"], matchID)
			}
			testutil.AssertEqual(t, e.Data["coord"], interface{}(testutil.Coord("c4")))
		}
	}
	if matchID == nil || matchID == "" {
		t.Fatal("match started entry has no match id")
	}
	for _, want := range []string{"match started", "move", "match abandoned"} {
		testutil.AssertContains(t, strings.Join(messages, "|"), want)
	}
}
