package commands

// Group creates the active group.
func Group(s *Shell, args []string) int {
	cmd := &SimpleCommand{
		Use:   "group <name>",
		NArgs: 1,
	}

	return cmd.Run(s, args, func(rest []string) int {
		if err := s.Manager.CreateGroup(rest[0]); err != nil {
			s.Errorf("%s: %v", args[0], err)
			return 1
		}
		return 0
	})
}

var _ ShellBuiltinFunc = Group

func init() {
	addBuiltin("group", Group)
}
