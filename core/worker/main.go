package worker

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/multierr"

	"github.com/josephlewis42/groupshell/core/function"
)

// Main is the worker process entrypoint. args holds the function tag and the
// decimal argument. It returns the process exit code.
func Main(args []string, stderr io.Writer) int {
	if len(args) != 2 {
		fmt.Fprintf(stderr, "usage: %s <function> <arg>\n", Subcommand)
		return 2
	}

	fn, err := function.Parse(args[0])
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", Subcommand, err)
		return 2
	}
	arg, err := function.ParseArg(args[1])
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", Subcommand, err)
		return 2
	}

	out := os.NewFile(resultFD, "result")
	if out == nil {
		fmt.Fprintf(stderr, "%s: no result descriptor\n", Subcommand)
		return 1
	}

	if err := Serve(out, fn, arg); err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", Subcommand, err)
		return 1
	}
	return 0
}

// Serve evaluates fn(arg), writes the result to w and closes it.
func Serve(w io.WriteCloser, fn function.Function, arg int32) error {
	err := WriteResult(w, fn.Evaluate(arg))
	return multierr.Append(err, w.Close())
}
