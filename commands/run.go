package commands

// Run executes every component of the group.
func Run(s *Shell, args []string) int {
	cmd := &SimpleCommand{
		Use:   "run",
		NArgs: -1,
	}

	return cmd.Run(s, args, func([]string) int {
		if err := s.Manager.Run(s.context()); err != nil {
			s.Errorf("%s: %v", args[0], err)
			return 1
		}
		return 0
	})
}

var _ ShellBuiltinFunc = Run

func init() {
	addBuiltin("run", Run)
}
