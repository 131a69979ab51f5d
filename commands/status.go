package commands

// Status lists launched components and their PIDs.
func Status(s *Shell, args []string) int {
	cmd := &SimpleCommand{
		Use:   "status",
		NArgs: -1,
	}

	return cmd.Run(s, args, func([]string) int {
		s.Manager.Status()
		return 0
	})
}

var _ ShellBuiltinFunc = Status

func init() {
	addBuiltin("status", Status)
}
