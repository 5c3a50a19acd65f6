package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/tada/internal/model"
)

// The ui theme is package state, so these tests don't run in parallel.

type result struct {
	code   int
	stdout string
	stderr string
}

func run(t *testing.T, file string, args ...string) result {
	t.Helper()
	var out, errw bytes.Buffer
	full := append([]string{"--file", file, "--theme", "mono", "--no-color"}, args...)
	code := Run(full, Options{Out: &out, Err: &errw})
	return result{code: code, stdout: out.String(), stderr: errw.String()}
}

func readSnapshot(t *testing.T, file string) model.Snapshot {
	t.Helper()
	b, err := os.ReadFile(file)
	require.NoError(t, err)
	var snap model.Snapshot
	require.NoError(t, json.Unmarshal(b, &snap))
	return snap
}

func TestRun_NoArgs(t *testing.T) {
	var out bytes.Buffer
	code := Run(nil, Options{Out: &out, Err: &out})
	assert.Equal(t, 2, code)
	assert.Contains(t, out.String(), "Usage:")
}

func TestRun_UnknownCommand(t *testing.T) {
	file := filepath.Join(t.TempDir(), "todo.json")

	r := run(t, file, "frobnicate")
	assert.Equal(t, 2, r.code)
	assert.Contains(t, r.stderr, `unknown command "frobnicate" for "todo"`)

	r = run(t, file, "frobnicate", "--no-such-flag")
	assert.Equal(t, 2, r.code)
}

func TestRun_FlagsWithoutCommand(t *testing.T) {
	r := run(t, filepath.Join(t.TempDir(), "todo.json"))
	assert.Equal(t, 2, r.code)
	assert.Contains(t, r.stdout, "Usage:")
	assert.Contains(t, r.stderr, "missing subcommand")
}

func TestRun_Usage(t *testing.T) {
	file := filepath.Join(t.TempDir(), "todo.json")

	r := run(t, file, "new")
	assert.Equal(t, 2, r.code)
	assert.Contains(t, r.stderr, "usage: todo new")

	r = run(t, file, "skip", "extra")
	assert.Equal(t, 2, r.code)

	r = run(t, file, "skip", "--bogus")
	assert.Equal(t, 2, r.code)

	r = run(t, file, "--theme", "solarized", "show")
	assert.Equal(t, 2, r.code)
	assert.Contains(t, r.stderr, "theme")
}

func TestRun_NoTodo(t *testing.T) {
	r := run(t, filepath.Join(t.TempDir(), "todo.json"), "skip")
	assert.Equal(t, 1, r.code)
	assert.Contains(t, r.stderr, "no todo saved")
	assert.Contains(t, r.stderr, "todo new")
}

func TestRun_SkipCompleteSkip(t *testing.T) {
	file := filepath.Join(t.TempDir(), "todo.json")

	r := run(t, file, "new", "Take", "logan", "for", "a", "walk")
	require.Equal(t, 0, r.code, r.stderr)
	assert.Equal(t, model.Snapshot{Title: "Take logan for a walk", Status: model.StatusPending}, readSnapshot(t, file))

	r = run(t, file, "skip")
	require.Equal(t, 0, r.code, r.stderr)
	assert.Contains(t, r.stdout, "✔ skipped")
	assert.Equal(t, model.StatusSkipped, readSnapshot(t, file).Status)

	r = run(t, file, "complete")
	require.Equal(t, 0, r.code, r.stderr)
	assert.Equal(t, model.StatusCompleted, readSnapshot(t, file).Status)

	r = run(t, file, "skip")
	assert.Equal(t, 1, r.code)
	assert.Contains(t, r.stderr, "✖ Cannot skip a completed todo")
	assert.Equal(t, model.StatusCompleted, readSnapshot(t, file).Status)
}

func TestRun_DeletedRejectsTransitions(t *testing.T) {
	file := filepath.Join(t.TempDir(), "todo.json")

	require.Equal(t, 0, run(t, file, "new", "Delete todo").code)
	require.Equal(t, 0, run(t, file, "delete").code)
	require.Equal(t, 0, run(t, file, "delete").code)

	r := run(t, file, "complete")
	assert.Equal(t, 1, r.code)
	assert.Contains(t, r.stderr, "Cannot complete a deleted todo")

	r = run(t, file, "skip")
	assert.Equal(t, 1, r.code)
	assert.Contains(t, r.stderr, "Cannot skip a deleted todo")

	assert.Equal(t, model.Snapshot{Title: "Delete todo", Status: model.StatusPending, Deleted: true}, readSnapshot(t, file))
}

func TestRun_NewRefusesOverwrite(t *testing.T) {
	file := filepath.Join(t.TempDir(), "todo.json")

	require.Equal(t, 0, run(t, file, "new", "first").code)
	r := run(t, file, "new", "second")
	assert.Equal(t, 1, r.code)
	assert.Contains(t, r.stderr, "--force")
	assert.Equal(t, "first", readSnapshot(t, file).Title)

	require.Equal(t, 0, run(t, file, "new", "--force", "second").code)
	assert.Equal(t, "second", readSnapshot(t, file).Title)
}

func TestRun_Show(t *testing.T) {
	file := filepath.Join(t.TempDir(), "todo.json")
	require.Equal(t, 0, run(t, file, "new", "Take logan for a walk").code)
	require.Equal(t, 0, run(t, file, "complete").code)

	r := run(t, file, "show")
	require.Equal(t, 0, r.code, r.stderr)
	assert.Contains(t, r.stdout, "| Take logan for a walk ")
	assert.Contains(t, r.stdout, "[x] completed")

	r = run(t, file, "show", "--json")
	require.Equal(t, 0, r.code, r.stderr)
	assert.JSONEq(t, `{"title":"Take logan for a walk","status":"completed","deleted":false}`, r.stdout)
}

func TestRun_DebugLogging(t *testing.T) {
	file := filepath.Join(t.TempDir(), "todo.json")
	require.Equal(t, 0, run(t, file, "new", "x").code)

	r := run(t, file, "--log-level", "debug", "skip")
	require.Equal(t, 0, r.code, r.stderr)
	assert.Contains(t, r.stderr, "todo skipped")
}
