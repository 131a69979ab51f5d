package group

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/josephlewis42/groupshell/core/function"
	"github.com/josephlewis42/groupshell/core/worker"
	"github.com/josephlewis42/groupshell/core/worker/workertest"
)

func TestMain(m *testing.M) {
	workertest.Main(m)
}

type testManager struct {
	*Manager
	stdout *bytes.Buffer
	stderr *bytes.Buffer
}

func newTestManager(t *testing.T, spawner Spawner) *testManager {
	t.Helper()
	if spawner == nil {
		spawner = workertest.Spawner(t)
	}

	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	return &testManager{
		Manager: NewManager(spawner, stdout, stderr),
		stdout:  stdout,
		stderr:  stderr,
	}
}

func (tm *testManager) results() map[string]float64 {
	out := make(map[string]float64)
	for _, r := range tm.Store().Results() {
		out[r.Name] = r.Value
	}
	return out
}

// failingSpawner refuses to start workers for one function.
type failingSpawner struct {
	Spawner
	fail function.Function
}

func (f *failingSpawner) Spawn(ctx context.Context, fn function.Function, arg int32) (*worker.Worker, error) {
	if fn == f.fail {
		return nil, fmt.Errorf("spawn: refusing %s", fn)
	}
	return f.Spawner.Spawn(ctx, fn, arg)
}

func TestCreateGroup(t *testing.T) {
	tm := newTestManager(t, nil)

	require.NoError(t, tm.CreateGroup("a"))
	assert.Equal(t, "a", tm.GroupName())
	assert.Equal(t, "Group \"a\" created.\n", tm.stdout.String())

	err := tm.CreateGroup("b")
	assert.True(t, errors.Is(err, ErrGroupExists))
	assert.Equal(t, `"a" already exists`, err.Error())
	assert.Equal(t, "a", tm.GroupName())
}

func TestAddComponentOverwrites(t *testing.T) {
	tm := newTestManager(t, nil)

	tm.AddComponent("g", function.G, 4)
	tm.AddComponent("g", function.G, 7)

	comps := tm.Store().Components()
	require.Len(t, comps, 1)
	assert.Equal(t, Component{Name: "g", Function: function.G, Arg: 7}, comps[0])
}

func TestRunWithoutGroup(t *testing.T) {
	tm := newTestManager(t, nil)
	tm.AddComponent("g", function.G, 4)
	tm.stdout.Reset()

	err := tm.Run(context.Background())
	assert.True(t, errors.Is(err, ErrNoGroup))
	assert.Contains(t, err.Error(), "create a group first")

	assert.Empty(t, tm.stdout.String())
	assert.Empty(t, tm.Store().Records())
	assert.Empty(t, tm.Store().Results())
}

func TestRun(t *testing.T) {
	tm := newTestManager(t, nil)
	require.NoError(t, tm.CreateGroup("demo"))
	tm.AddComponent("g", function.G, 4)
	tm.AddComponent("f", function.F, 2)
	tm.stdout.Reset()

	require.NoError(t, tm.Run(context.Background()))

	assert.Equal(t, map[string]float64{"g": 24, "f": 8}, tm.results())
	assert.Equal(t, "Running group \"demo\"...\n"+
		"Component \"f\" completed.\n"+
		"Component \"g\" completed.\n"+
		"Execution completed.\n", tm.stdout.String())
	assert.Empty(t, tm.stderr.String())
}

func TestRunContinuesAfterSpawnFailure(t *testing.T) {
	tm := newTestManager(t, &failingSpawner{Spawner: workertest.Spawner(t), fail: function.F})
	require.NoError(t, tm.CreateGroup("demo"))
	tm.AddComponent("f", function.F, 2)
	tm.AddComponent("g", function.G, 4)

	require.NoError(t, tm.Run(context.Background()))

	assert.Equal(t, map[string]float64{"g": 24}, tm.results())
	assert.Equal(t, "f: spawn: refusing f\n", tm.stderr.String())

	records := tm.Store().Records()
	require.Len(t, records, 1)
	assert.Equal(t, "g", records[0].Name)
	assert.Contains(t, tm.stdout.String(), "Execution completed.")
}

func TestRunReadFailureLeavesResultUnset(t *testing.T) {
	spawner := workertest.Spawner(t)
	// The worker rejects the extra argument and exits without a result.
	spawner.Args = append(spawner.Args, "extra")

	tm := newTestManager(t, spawner)
	require.NoError(t, tm.CreateGroup("demo"))
	tm.AddComponent("g", function.G, 4)

	require.NoError(t, tm.Run(context.Background()))

	assert.Empty(t, tm.results())
	assert.Len(t, tm.Store().Records(), 1)
	assert.Contains(t, tm.stderr.String(), "g: read: EOF")
	assert.NotContains(t, tm.stdout.String(), `Component "g" completed.`)
}

func TestStatusDoesNotCheckLiveness(t *testing.T) {
	tm := newTestManager(t, nil)
	require.NoError(t, tm.CreateGroup("demo"))
	tm.AddComponent("g", function.G, 4)
	tm.AddComponent("h", function.H, 9)
	require.NoError(t, tm.Run(context.Background()))

	records := tm.Store().Records()
	require.Len(t, records, 2)
	for _, rec := range records {
		// Reaped workers are still reported.
		require.NoError(t, rec.Worker.Wait())
	}

	tm.stdout.Reset()
	tm.Status()
	assert.Equal(t, fmt.Sprintf("Component status:\n"+
		"Component \"g\": running (PID: %d)\n"+
		"Component \"h\": running (PID: %d)\n",
		records[0].Worker.PID(), records[1].Worker.PID()), tm.stdout.String())
}

func TestSummary(t *testing.T) {
	tm := newTestManager(t, nil)
	require.NoError(t, tm.CreateGroup("demo"))
	tm.AddComponent("h", function.H, 2)
	tm.AddComponent("g", function.G, 4)
	require.NoError(t, tm.Run(context.Background()))

	tm.stdout.Reset()
	tm.Summary()
	assert.Equal(t, "Component results:\n"+
		"Component \"g\" result: 24\n"+
		"Component \"h\" result: 1.41421\n", tm.stdout.String())
}

func TestClear(t *testing.T) {
	tm := newTestManager(t, nil)
	require.NoError(t, tm.CreateGroup("demo"))
	tm.AddComponent("g", function.G, 4)
	require.NoError(t, tm.Run(context.Background()))

	require.NoError(t, tm.Clear())

	assert.Empty(t, tm.GroupName())
	assert.Empty(t, tm.Store().Components())
	assert.Empty(t, tm.Store().Records())
	assert.Empty(t, tm.Store().Results())
	assert.Contains(t, tm.stdout.String(), "Group cleared.\n")

	assert.True(t, errors.Is(tm.Run(context.Background()), ErrNoGroup))

	// A new group can be created after clearing.
	assert.NoError(t, tm.CreateGroup("next"))
}

func TestClearKillsRunningWorkers(t *testing.T) {
	tm := newTestManager(t, nil)
	require.NoError(t, tm.CreateGroup("demo"))
	tm.AddComponent("g", function.G, 4)

	// Run blocks on each result, so stand in for a worker that is mid run.
	wk, err := workertest.SleepySpawner(t).Spawn(context.Background(), function.G, 4)
	require.NoError(t, err)
	tm.Store().SetRecord("g", wk)

	require.NoError(t, tm.Clear())

	var exitErr *exec.ExitError
	require.True(t, errors.As(wk.Wait(), &exitErr), "worker should exit with an error")
	assert.False(t, exitErr.Exited(), "worker should be terminated by a signal")
	assert.Empty(t, tm.Store().Records())

	_, err = wk.Result()
	assert.True(t, errors.Is(err, io.EOF), "got %v", err)
}

func TestFormatResult(t *testing.T) {
	cases := []struct {
		in       float64
		expected string
	}{
		{24, "24"},
		{8, "8"},
		{13.5, "13.5"},
		{math.Sqrt(2), "1.41421"},
		{1.5e6, "1.5e+06"},
		{-27, "-27"},
		{0, "0"},
		{math.NaN(), "nan"},
		{math.Copysign(math.NaN(), -1), "-nan"},
		{math.Inf(1), "inf"},
	}

	for _, tc := range cases {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, FormatResult(tc.in))
		})
	}
}
