package commands

import (
	"github.com/josephlewis42/groupshell/core/function"
)

// New adds a component to the group. The component is named after its
// function tag, so adding the same tag again replaces it.
func New(s *Shell, args []string) int {
	cmd := &SimpleCommand{
		Use:   "new <component> <arg>",
		NArgs: 2,
	}

	return cmd.Run(s, args, func(rest []string) int {
		arg, err := function.ParseArg(rest[1])
		if err != nil {
			cmd.PrintUsage(s)
			return 2
		}

		fn, err := function.Parse(rest[0])
		if err != nil {
			s.Errorf("Unknown component: %s", rest[0])
			return 1
		}

		s.Manager.AddComponent(fn.Tag(), fn, arg)
		return 0
	})
}

var _ ShellBuiltinFunc = New

func init() {
	addBuiltin("new", New)
}
