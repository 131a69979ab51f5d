// Package group manages the single active group of components and runs each
// component in its own worker process.
package group

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strconv"

	"go.uber.org/multierr"

	"github.com/josephlewis42/groupshell/core/function"
	"github.com/josephlewis42/groupshell/core/worker"
)

var (
	// ErrGroupExists is returned when creating a group while one is active.
	ErrGroupExists = errors.New("already exists")
	// ErrNoGroup is returned when running without an active group.
	ErrNoGroup = errors.New("please create a group first")
)

// Spawner starts one worker per computation.
type Spawner interface {
	Spawn(ctx context.Context, fn function.Function, arg int32) (*worker.Worker, error)
}

var _ Spawner = (*worker.Spawner)(nil)

// Manager owns the active group and its store.
type Manager struct {
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	spawner Spawner
	store   *Store
	name    string
}

// NewManager creates a manager with no active group.
func NewManager(spawner Spawner, stdout, stderr io.Writer) *Manager {
	return &Manager{
		Stdout:  stdout,
		Stderr:  stderr,
		spawner: spawner,
		store:   NewStore(),
	}
}

func (m *Manager) logger() *slog.Logger {
	if m.Logger == nil {
		return slog.Default()
	}
	return m.Logger
}

// GroupName returns the active group's name, empty if there is none.
func (m *Manager) GroupName() string {
	return m.name
}

// Store exposes the component store.
func (m *Manager) Store() *Store {
	return m.store
}

// CreateGroup activates a group. Only one group may exist; it can't be
// replaced or renamed until Clear.
func (m *Manager) CreateGroup(name string) error {
	if m.name != "" {
		return fmt.Errorf("%q %w", m.name, ErrGroupExists)
	}

	m.name = name
	fmt.Fprintf(m.Stdout, "Group %q created.\n", name)
	return nil
}

// AddComponent stores a component, overwriting one with the same name.
// Components may be staged before a group exists.
func (m *Manager) AddComponent(name string, fn function.Function, arg int32) {
	m.store.Put(Component{Name: name, Function: fn, Arg: arg})
	fmt.Fprintf(m.Stdout, "Component %q added to the group.\n", name)
}

// Run executes every component in name order. Each one gets a fresh worker
// whose result is read before the next is launched. Failures are reported
// per component and don't stop the loop.
func (m *Manager) Run(ctx context.Context) error {
	if m.name == "" {
		return ErrNoGroup
	}

	fmt.Fprintf(m.Stdout, "Running group %q...\n", m.name)
	for _, c := range m.store.Components() {
		wk, err := m.spawner.Spawn(ctx, c.Function, c.Arg)
		if err != nil {
			fmt.Fprintf(m.Stderr, "%s: %v\n", c.Name, err)
			continue
		}
		m.store.SetRecord(c.Name, wk)

		v, err := wk.Result()
		if err != nil {
			fmt.Fprintf(m.Stderr, "%s: %v\n", c.Name, err)
			continue
		}
		m.store.SetResult(c.Name, v)
		fmt.Fprintf(m.Stdout, "Component %q completed.\n", c.Name)
	}
	fmt.Fprintln(m.Stdout, "Execution completed.")
	return nil
}

// Status lists every launched component as running with its PID.
//
// Liveness isn't checked: a worker that has exited and been reaped is still
// shown as running.
func (m *Manager) Status() {
	fmt.Fprintln(m.Stdout, "Component status:")
	for _, rec := range m.store.Records() {
		fmt.Fprintf(m.Stdout, "Component %q: running (PID: %d)\n", rec.Name, rec.Worker.PID())
	}
}

// Summary lists the result of every completed component.
func (m *Manager) Summary() {
	fmt.Fprintln(m.Stdout, "Component results:")
	for _, res := range m.store.Results() {
		fmt.Fprintf(m.Stdout, "Component %q result: %s\n", res.Name, FormatResult(res.Value))
	}
}

// Clear kills every recorded worker that is still alive, then discards the
// group and everything in the store. The store is reset even if a kill fails.
func (m *Manager) Clear() error {
	var err error
	for _, rec := range m.store.Records() {
		if killErr := rec.Worker.Kill(); killErr != nil {
			err = multierr.Append(err, fmt.Errorf("kill %s (PID %d): %w", rec.Name, rec.Worker.PID(), killErr))
		}
	}
	if err != nil {
		m.logger().Warn("failed to kill workers", "group", m.name, "err", err)
	}

	m.store.Reset()
	m.name = ""
	fmt.Fprintln(m.Stdout, "Group cleared.")
	return err
}

// FormatResult renders v with six significant digits in the shorter of fixed
// or exponent form, e.g. 24, 1.41421, 1.5e+06, nan. A NaN keeps its sign bit,
// so the square root of a negative number prints as -nan on amd64.
func FormatResult(v float64) string {
	switch {
	case math.IsNaN(v) && math.Signbit(v):
		return "-nan"
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	return strconv.FormatFloat(v, 'g', 6, 64)
}
