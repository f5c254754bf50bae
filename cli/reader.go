package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
)

// LineReader shows a prompt and blocks until the user enters a line.
type LineReader interface {
	ReadLine(prompt string) (string, error)
}

type flusher interface {
	Flush() error
}

// StreamReader reads lines from any io.Reader, writing prompts to out.
// Lines have no length limit; a final line without a newline is still returned.
type StreamReader struct {
	in  *bufio.Reader
	out io.Writer
}

func NewStreamReader(in io.Reader, out io.Writer) *StreamReader {
	return &StreamReader{
		in:  bufio.NewReader(in),
		out: out,
	}
}

func (r *StreamReader) ReadLine(prompt string) (string, error) {
	fmt.Fprint(r.out, prompt)
	if f, ok := r.out.(flusher); ok {
		if err := f.Flush(); err != nil {
			return "", err
		}
	}

	line, err := r.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// TerminalReader reads lines with line editing and history.
type TerminalReader struct {
	rl *readline.Instance
}

// NewTerminalReader opens a readline session on the process terminal.
// An empty historyFile disables history.
func NewTerminalReader(historyFile string) (*TerminalReader, error) {
	rl, err := readline.NewEx(terminalConfig(historyFile))
	if err != nil {
		return nil, err
	}
	return &TerminalReader{rl: rl}, nil
}

// terminalConfig leaves EOFPrompt empty: end of input is a failure, not a quit.
func terminalConfig(historyFile string) *readline.Config {
	return &readline.Config{
		HistoryFile:     historyFile,
		InterruptPrompt: "^C",
	}
}

func (r *TerminalReader) ReadLine(prompt string) (string, error) {
	// readline measures the prompt width itself and counts a tab as one column
	r.rl.SetPrompt(strings.ReplaceAll(prompt, "\t", "        "))

	line, err := r.rl.Readline()
	if errors.Is(err, readline.ErrInterrupt) {
		return "", fmt.Errorf("interrupted: %w", io.EOF)
	}
	return line, err
}

func (r *TerminalReader) Close() error {
	return r.rl.Close()
}
