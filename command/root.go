// Package command is the entry point of the console: flags, configuration and logging
// around the game-flow handler. A host program supplies the rules engine:
//
//	func main() {
//		command.Main(myengine.New())
//	}
package command

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/gothello/gothello/cli"
	"github.com/gothello/gothello/config"
	"github.com/gothello/gothello/core"
	clitransport "github.com/gothello/gothello/transport/cli"
)

const Version = "0.1.0"

// Main runs the console on the process arguments and exits when it ends.
// Any error, including a closed or broken input stream, is fatal.
func Main(engine core.Engine) {
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		PadLevelText:     true,
	})
	logrus.SetLevel(logrus.InfoLevel)

	root := Root(engine)
	root.SetArgs(os.Args[1:])
	if err := root.Execute(); err != nil {
		logrus.Fatal(err)
	}
}

func Root(engine core.Engine) *cobra.Command {
	var cfg *config.Config

	root := &cobra.Command{
		Use:   "gothello",
		Short: "Play Reversi in the terminal",
		Args:  cobra.NoArgs,

		SilenceErrors: true,
		SilenceUsage:  true,

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if cfg, err = loadConfig(cmd); err != nil {
				return err
			}

			level, err := logrus.ParseLevel(cfg.LogLevel)
			if err != nil {
				return err
			}
			// If --trace flag is provided, set logging level to Trace.
			if cmd.Flag("trace").Changed {
				level = logrus.TraceLevel
			}
			logrus.SetLevel(level)
			return nil
		},

		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, engine, cfg)
		},
	}

	root.PersistentFlags().StringP("config", "c", "", "Read settings from this file")
	root.PersistentFlags().StringP("profile", "p", "", "Glyph profile (symbols|ascii)")
	root.PersistentFlags().String("theme", "", "Colour theme (off|green|gray)")
	root.PersistentFlags().Bool("no-history", false, "Do not keep an input history")
	root.PersistentFlags().BoolP("trace", "t", false, "Show Trace Information")

	root.Version = Version
	root.SetVersionTemplate("gothello v{{.Version}}\n")

	return root
}

// loadConfig layers the flags over the config file and validates the result.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	flags := cmd.Flags()

	path, _ := flags.GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	if flags.Changed("profile") {
		cfg.Profile, _ = flags.GetString("profile")
	}
	if flags.Changed("theme") {
		cfg.Theme, _ = flags.GetString("theme")
	}
	if noHistory, _ := flags.GetBool("no-history"); noHistory {
		cfg.History = false
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logrus.WithFields(logrus.Fields{
		"profile": cfg.Profile,
		"theme":   cfg.Theme,
		"history": cfg.History,
	}).Debug("configuration loaded")
	return cfg, nil
}

func run(cmd *cobra.Command, engine core.Engine, cfg *config.Config) error {
	out := cmd.OutOrStdout()

	reader, err := newReader(cmd.InOrStdin(), out, cfg)
	if err != nil {
		return err
	}
	if c, ok := reader.(io.Closer); ok {
		defer c.Close()
	}

	view := cli.New(reader, out)
	if err := view.SetProfile(cli.Profile(cfg.Profile)); err != nil {
		return err
	}
	theme := cli.ColorTheme(cfg.Theme)
	if !isTerminal(out) || os.Getenv("NO_COLOR") != "" {
		theme = cli.ThemeOff
	}
	if err := view.SetTheme(theme); err != nil {
		return err
	}

	return clitransport.New(engine, view, Version).Run()
}

// newReader uses line editing when both ends are a terminal and plain line scanning
// otherwise.
func newReader(in io.Reader, out io.Writer, cfg *config.Config) (cli.LineReader, error) {
	if !isTerminal(in) || !isTerminal(out) {
		return cli.NewStreamReader(in, out), nil
	}

	history, err := cfg.HistoryFile()
	if err != nil {
		logrus.WithError(err).Warn("input history disabled")
		history = ""
	}
	r, err := cli.NewTerminalReader(history)
	if err != nil {
		return nil, fmt.Errorf("opening terminal: %w", err)
	}
	return r, nil
}

func isTerminal(v interface{}) bool {
	f, ok := v.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
