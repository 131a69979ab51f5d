package commands

import (
	"fmt"

	"github.com/fatih/color"
)

// AllBuiltins holds every verb the shell understands.
var AllBuiltins = make(map[string]ShellBuiltin)

type ShellBuiltin interface {
	Main(s *Shell, args []string) int
}

type ShellBuiltinFunc func(s *Shell, args []string) int

func (f ShellBuiltinFunc) Main(s *Shell, args []string) int {
	return f(s, args)
}

var _ ShellBuiltin = (ShellBuiltinFunc)(nil)

// addBuiltin registers a verb, panicking on duplicates.
func addBuiltin(name string, cmd ShellBuiltinFunc) {
	if _, ok := AllBuiltins[name]; ok {
		panic(fmt.Sprintf("duplicate builtin %q", name))
	}
	AllBuiltins[name] = cmd
}

// SimpleCommand checks a builtin's arity before running it. Tokens are
// positional only; a leading dash is part of the argument.
type SimpleCommand struct {
	// Use holds a one line usage string
	Use string
	// NArgs is the number of positional arguments required after the verb,
	// a negative value accepts any number.
	NArgs int
}

// PrintUsage writes the one line usage message to the shell's stderr.
func (c *SimpleCommand) PrintUsage(s *Shell) {
	s.Errorf("Usage: %s", c.Use)
}

// Run the command, if the arity check succeeds call the callback with the
// arguments following the verb.
func (c *SimpleCommand) Run(s *Shell, args []string, callback func(args []string) int) int {
	rest := args[1:]
	if c.NArgs >= 0 && len(rest) != c.NArgs {
		c.PrintUsage(s)
		return 2
	}

	return callback(rest)
}

var ColorBoldRed = color.New(color.FgRed, color.Bold)
