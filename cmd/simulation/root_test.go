package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	golog "github.com/tochemey/goakt/v3/log"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return executeContext(t, context.Background(), args...)
}

func executeContext(t *testing.T, ctx context.Context, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--log-level=error"}, args...))
	err := cmd.ExecuteContext(ctx)
	return out.String(), err
}

func TestBenchCommand(t *testing.T) {
	out, err := execute(t, "bench", "--boids", "50", "--ticks", "5", "--index", "grid")
	require.NoError(t, err)
	assert.Contains(t, out, "grid index, 50 boids, 5 ticks")
}

func TestRunCommand(t *testing.T) {
	out, err := execute(t, "run",
		"--config", "../../configs/default.json",
		"--boids", "40",
		"--seed", "7",
		"--ticks", "10",
		"--rate", "0",
		"--knob", "viewRadius=150",
		"--knob", "centerEnabled=false",
		"--scramble-every", "4",
		"--show-panel")
	require.NoError(t, err)
	assert.Contains(t, out, "viewRadius = 150.000")
	assert.Contains(t, out, "10 ticks, 40 boids")
}

func TestRunCommand_Interrupted(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	time.AfterFunc(300*time.Millisecond, cancel)

	out, err := executeContext(t, ctx, "run", "--boids", "20", "--seed", "3", "--ticks", "0", "--rate", "50")
	require.NoError(t, err, "an interrupted run still reports its final state")
	assert.Contains(t, out, "20 boids")
}

func TestActorLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want golog.Level
	}{
		{"debug", golog.DebugLevel},
		{"info", golog.InfoLevel},
		{"WARN", golog.WarningLevel},
		{"error", golog.ErrorLevel},
		{"", golog.InfoLevel},
		{"verbose", golog.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, actorLogLevel(tt.in))
		})
	}
}

func TestRunCommand_BadKnob(t *testing.T) {
	_, err := execute(t, "run", "--boids", "5", "--ticks", "1", "--rate", "0", "--knob", "gravity=1")
	assert.Error(t, err)
}

func TestLoadConfig_Errors(t *testing.T) {
	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"numBoids": -4}`), 0o644))
	_, err := execute(t, "bench", "--config", bad)
	assert.Error(t, err)

	_, err = execute(t, "bench", "--index", "kdtree")
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "--version")
	require.NoError(t, err)
	assert.Equal(t, Version+"\n", out)
}
