package commands

// Summary shows the results of completed components.
func Summary(s *Shell, args []string) int {
	cmd := &SimpleCommand{
		Use:   "summary",
		NArgs: -1,
	}

	return cmd.Run(s, args, func([]string) int {
		s.Manager.Summary()
		return 0
	})
}

var _ ShellBuiltinFunc = Summary

func init() {
	addBuiltin("summary", Summary)
}
