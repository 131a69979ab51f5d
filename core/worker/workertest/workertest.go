// Package workertest lets a test binary act as its own worker executable.
package workertest

import (
	"io"
	"os"
	"testing"
	"time"

	"github.com/josephlewis42/groupshell/core/worker"
)

// sleepySubcommand starts a worker that waits before serving, long enough
// for a test to kill it while it is still running.
const sleepySubcommand = "sleepy-" + worker.Subcommand

// Main is a TestMain body: when the binary was started as a worker it serves
// the request and exits, otherwise it runs the tests.
func Main(m *testing.M) {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case worker.Subcommand:
			os.Exit(worker.Main(os.Args[2:], os.Stderr))
		case sleepySubcommand:
			time.Sleep(time.Minute)
			os.Exit(worker.Main(os.Args[2:], os.Stderr))
		}
	}

	os.Exit(m.Run())
}

// Spawner returns a spawner re-executing the current test binary. Worker
// stderr is discarded.
func Spawner(t testing.TB) *worker.Spawner {
	t.Helper()

	s, err := worker.NewSpawner()
	if err != nil {
		t.Fatal(err)
	}
	s.Stderr = io.Discard
	return s
}

// SleepySpawner is like Spawner, but its workers sleep for a minute before
// writing their result.
func SleepySpawner(t testing.TB) *worker.Spawner {
	t.Helper()

	s := Spawner(t)
	s.Args = []string{sleepySubcommand}
	return s
}
