package commands

// Exit quits the shell, any arguments are ignored.
func Exit(s *Shell, args []string) int {
	s.Quit = true
	return 0
}

var _ ShellBuiltinFunc = Exit

func init() {
	addBuiltin("exit", Exit)
}
