package commands

import (
	"fmt"
)

const helpText = `Available commands:
  group <name>         - Create a new task group.
  new <component> <arg> - Add a component to the group.
  run                  - Run all components.
  status               - Check component statuses.
  summary              - Show results.
  clear                - Clear the group.
  exit                 - Exit the program.`

// Help prints the command list.
func Help(s *Shell, args []string) int {
	fmt.Fprintln(s.Stdout, helpText)
	return 0
}

var _ ShellBuiltinFunc = Help

func init() {
	addBuiltin("help", Help)
}
