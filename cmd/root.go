package cmd

import (
	"log/slog"
	"time"

	"github.com/abiosoft/readline"
	"github.com/fatih/color"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/josephlewis42/groupshell/commands"
	"github.com/josephlewis42/groupshell/core/config"
	"github.com/josephlewis42/groupshell/core/group"
	"github.com/josephlewis42/groupshell/core/worker"
)

var cfg *config.Configuration

// rootCmd runs the interactive shell.
var rootCmd = &cobra.Command{
	Use:   "groupshell",
	Short: "Run groups of components in isolated worker processes",
	Long: `An interactive shell for building a group of components, each bound to a
numeric function and an integer argument, and running every component in its
own worker process.`,
	Args:              cobra.NoArgs,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE: func(cmd *cobra.Command, args []string) error {
		color.NoColor = !cfg.Colorize(!color.NoColor)

		spawner, err := worker.NewSpawner()
		if err != nil {
			return err
		}

		rl, err := readline.NewEx(&readline.Config{
			Prompt: cfg.Prompt,
			Stdin:  readline.NewCancelableStdin(cmd.InOrStdin()),
			Stdout: cmd.OutOrStdout(),
			Stderr: cmd.ErrOrStderr(),
		})
		if err != nil {
			return err
		}
		defer rl.Close()
		spawner.Stderr = rl.Stderr()

		shell := commands.NewShell(group.NewManager(spawner, nil, nil), rl.Stdout(), rl.Stderr())
		shell.Prompt = cfg.Prompt
		shell.Banner = cfg.Banner
		shell.Color = !color.NoColor
		shell.Context = cmd.Context()

		// Interrupts outside of line editing, e.g. during run, end the process.
		interrupts := &commands.InterruptHandler{Out: rl.Stdout()}
		interrupts.Start()
		defer interrupts.Stop()

		shell.RunInteractive(rl)
		return nil
	},
}

func setup(cmd *cobra.Command, args []string) error {
	cfg = config.Default()

	slog.SetDefault(slog.New(tint.NewHandler(cmd.ErrOrStderr(), &tint.Options{
		Level:      cfg.Level(),
		TimeFormat: time.Kitchen,
	})))
	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
