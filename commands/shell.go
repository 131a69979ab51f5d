// Package commands implements the interactive group shell and its builtins.
package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"unicode"

	"github.com/abiosoft/readline"
	"github.com/anmitsu/go-shlex"

	"github.com/josephlewis42/groupshell/core/group"
)

const (
	DefaultPrompt   = "> "
	InterruptNotice = "SIGINT received, terminating program..."
)

// LineReader reads one line of input per call, readline.Instance satisfies
// it.
type LineReader interface {
	SetPrompt(prompt string)
	Readline() (string, error)
}

var _ LineReader = (*readline.Instance)(nil)

type Shell struct {
	Manager *group.Manager
	Stdout  io.Writer
	Stderr  io.Writer

	// Prompt is shown before each line, DefaultPrompt if empty.
	Prompt string
	// Banner is printed once when the interactive loop starts.
	Banner string
	// Color enables colored error messages.
	Color bool
	// Context is passed to group runs, context.Background() if nil.
	Context context.Context

	lastRet int

	// Set to true to quit the shell
	Quit bool
}

// NewShell creates a shell driving manager. The manager reports to the same
// writers as the shell.
func NewShell(manager *group.Manager, stdout, stderr io.Writer) *Shell {
	manager.Stdout = stdout
	manager.Stderr = stderr

	return &Shell{
		Manager: manager,
		Stdout:  stdout,
		Stderr:  stderr,
		Prompt:  DefaultPrompt,
	}
}

func (s *Shell) context() context.Context {
	if s.Context == nil {
		return context.Background()
	}
	return s.Context
}

// Errorf writes a line to stderr, colored if enabled.
func (s *Shell) Errorf(format string, a ...interface{}) {
	msg := fmt.Sprintf(format, a...)
	if s.Color {
		msg = ColorBoldRed.Sprint(msg)
	}
	fmt.Fprintln(s.Stderr, msg)
}

// LastStatus returns the exit status of the last builtin.
func (s *Shell) LastStatus() int {
	return s.lastRet
}

// RunInteractive reads and executes lines until exit, end of input or an
// interrupt.
func (s *Shell) RunInteractive(rl LineReader) int {
	if s.Banner != "" {
		fmt.Fprintln(s.Stdout, s.Banner)
	}

	prompt := s.Prompt
	if prompt == "" {
		prompt = DefaultPrompt
	}

	for !s.Quit {
		rl.SetPrompt(prompt)
		line, err := rl.Readline()

		switch {
		case errors.Is(err, io.EOF):
			return 0 // Input closed, quit.

		case errors.Is(err, readline.ErrInterrupt):
			// Workers are left to the reaper, matching the signal path.
			fmt.Fprintln(s.Stdout, InterruptNotice)
			return 0

		case err != nil:
			slog.Error("readline failed", "err", err)
			continue

		case len(line) == 0:
			continue // empty line

		default:
			s.RunCommand(line)
		}
	}
	return 0
}

// whitespaceTokenizer splits on whitespace only. Quotes and backslashes are
// ordinary characters, so "it's" is one token and "a b" is two.
type whitespaceTokenizer struct{}

var _ shlex.Tokenizer = whitespaceTokenizer{}

func (whitespaceTokenizer) IsWord(r rune) bool { return !unicode.IsSpace(r) }
func (whitespaceTokenizer) IsWhitespace(r rune) bool { return unicode.IsSpace(r) }
func (whitespaceTokenizer) IsQuote(rune) bool { return false }
func (whitespaceTokenizer) IsEscape(rune) bool { return false }
func (whitespaceTokenizer) IsEscapedQuote(rune) bool { return false }

// splitLine breaks a command line into words.
func splitLine(line string) ([]string, error) {
	l := shlex.NewLexerString(line, true, true)
	l.SetTokenizer(whitespaceTokenizer{})
	return l.Split()
}

// RunCommand tokenizes and dispatches a single line.
func (s *Shell) RunCommand(line string) int {
	tokens, err := splitLine(line)
	if err != nil {
		s.Errorf("syntax error: %v", err)
		s.lastRet = 2
		return s.lastRet
	}

	if len(tokens) == 0 {
		return s.lastRet
	}

	builtin, ok := AllBuiltins[tokens[0]]
	if !ok {
		s.Errorf("Unknown command: %s", tokens[0])
		s.lastRet = 127
		return s.lastRet
	}

	s.lastRet = builtin.Main(s, tokens)
	return s.lastRet
}
