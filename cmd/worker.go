package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/josephlewis42/groupshell/core/worker"
)

// workerCmd is the child half of a component run, started by the shell with
// the result pipe on descriptor 3.
var workerCmd = &cobra.Command{
	Use:    worker.Subcommand + " <function> <arg>",
	Short:  "Evaluate one component and write the result to descriptor 3.",
	Hidden: true,
	// Negative arguments would otherwise be parsed as flags.
	DisableFlagParsing: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if code := worker.Main(args, cmd.ErrOrStderr()); code != 0 {
			os.Exit(code)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(workerCmd)
}
