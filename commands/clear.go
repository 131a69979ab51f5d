package commands

// Clear kills the group's workers and forgets the group.
func Clear(s *Shell, args []string) int {
	cmd := &SimpleCommand{
		Use:   "clear",
		NArgs: -1,
	}

	return cmd.Run(s, args, func([]string) int {
		if err := s.Manager.Clear(); err != nil {
			s.Errorf("%s: %v", args[0], err)
			return 1
		}
		return 0
	})
}

var _ ShellBuiltinFunc = Clear

func init() {
	addBuiltin("clear", Clear)
}
