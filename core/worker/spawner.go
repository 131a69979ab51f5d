// Package worker runs each component computation in its own process.
//
// The parent re-executes its own binary with the hidden worker subcommand and
// hands it the write end of a pipe as file descriptor 3. The worker evaluates
// one function, writes one result record and exits.
package worker

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strconv"

	"github.com/josephlewis42/groupshell/core/function"
)

// Subcommand is the argument that switches the binary into worker mode.
const Subcommand = "worker"

// resultFD is the descriptor the result pipe lands on in the worker, the
// first entry of exec.Cmd.ExtraFiles.
const resultFD = 3

// Spawner starts worker processes.
type Spawner struct {
	// Path of the executable serving the worker subcommand.
	Path string
	// Args are placed between Path and the worker arguments.
	Args []string
	// Stderr receives the worker's stderr, nil discards it.
	Stderr io.Writer
	// Logger receives lifecycle diagnostics, nil uses slog.Default().
	Logger *slog.Logger
}

// NewSpawner returns a Spawner that re-executes the running binary.
func NewSpawner() (*Spawner, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, err
	}

	return &Spawner{
		Path:   exe,
		Args:   []string{Subcommand},
		Stderr: os.Stderr,
	}, nil
}

func (s *Spawner) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.Default()
	}
	return s.Logger
}

// Spawn starts a worker computing fn(arg). The returned worker is reaped in
// the background; call Result to collect its value.
func (s *Spawner) Spawn(ctx context.Context, fn function.Function, arg int32) (*Worker, error) {
	r, w, err := os.Pipe()
	if err != nil {
		return nil, fmt.Errorf("pipe: %w", err)
	}

	argv := append(append([]string{}, s.Args...), fn.Tag(), strconv.Itoa(int(arg)))
	cmd := exec.CommandContext(ctx, s.Path, argv...)
	cmd.Stderr = s.Stderr
	cmd.ExtraFiles = []*os.File{w}

	if err := cmd.Start(); err != nil {
		r.Close()
		w.Close()
		return nil, fmt.Errorf("spawn: %w", err)
	}

	// The worker holds the only write end now, so its exit unblocks Result.
	w.Close()

	wk := &Worker{
		Function: fn,
		Arg:      arg,
		cmd:      cmd,
		result:   r,
		done:     make(chan struct{}),
		logger:   s.logger(),
	}
	wk.logger.Debug("worker started", "function", fn.Tag(), "arg", arg, "pid", wk.PID())

	go wk.reap()

	return wk, nil
}

// Worker is a started worker process.
type Worker struct {
	Function function.Function
	Arg      int32

	cmd    *exec.Cmd
	result *os.File
	logger *slog.Logger

	done    chan struct{}
	waitErr error
}

// PID returns the worker's process ID. It stays valid for display after the
// process has been reaped.
func (wk *Worker) PID() int {
	return wk.cmd.Process.Pid
}

// Result blocks until the worker writes its result or exits.
func (wk *Worker) Result() (float64, error) {
	defer wk.result.Close()
	return ReadResult(wk.result)
}

// Kill sends SIGKILL to the worker if it is still running.
func (wk *Worker) Kill() error {
	err := wk.cmd.Process.Kill()
	if errors.Is(err, os.ErrProcessDone) {
		return nil
	}
	return err
}

// Wait blocks until the worker has been reaped and returns its exit error.
func (wk *Worker) Wait() error {
	<-wk.done
	return wk.waitErr
}

func (wk *Worker) reap() {
	defer close(wk.done)

	wk.waitErr = wk.cmd.Wait()
	wk.logger.Debug("worker reaped", "function", wk.Function.Tag(), "pid", wk.PID(), "err", wk.waitErr)
}
