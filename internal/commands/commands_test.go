package commands

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	dbPath     string
	configPath string
}

func newTestEnv(t *testing.T) testEnv {
	t.Helper()

	dir := t.TempDir()
	return testEnv{
		dbPath:     filepath.Join(dir, "todolist.db"),
		configPath: filepath.Join(dir, "config.yaml"),
	}
}

// run executes one CLI invocation against the env's database and returns stdout
func (e testEnv) run(t *testing.T, args ...string) string {
	t.Helper()

	var out, errOut bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--db", e.dbPath, "--config", e.configPath}, args...))

	require.NoError(t, cmd.Execute(), errOut.String())
	return out.String()
}

type listOutput struct {
	Totals struct {
		Total     int `json:"total"`
		Completed int `json:"completed"`
		Remaining int `json:"remaining"`
	} `json:"totals"`
	Categories []string `json:"categories"`
	Todos      []struct {
		ID        string `json:"id"`
		Text      string `json:"text"`
		Completed bool   `json:"completed"`
		Priority  string `json:"priority"`
		Category  string `json:"category"`
	} `json:"todos"`
}

func (e testEnv) list(t *testing.T, args ...string) listOutput {
	t.Helper()

	var result listOutput
	raw := e.run(t, append([]string{"ls", "--json"}, args...)...)
	require.NoError(t, json.Unmarshal([]byte(raw), &result), raw)
	return result
}

func TestAddListToggleDelete(t *testing.T) {
	env := newTestEnv(t)

	out := env.run(t, "add", "Buy milk @Errands +high")
	assert.Contains(t, out, "Created task")

	result := env.list(t)
	require.Len(t, result.Todos, 1)
	todo := result.Todos[0]
	assert.Equal(t, "Buy milk", todo.Text)
	assert.Equal(t, "high", todo.Priority)
	assert.Equal(t, "Errands", todo.Category)
	assert.Equal(t, 1, result.Totals.Remaining)

	out = env.run(t, "done", todo.ID[:8])
	assert.Contains(t, out, "as done")
	result = env.list(t)
	assert.Equal(t, 1, result.Totals.Completed)
	assert.Equal(t, 0, result.Totals.Remaining)

	env.run(t, "rm", todo.ID)
	result = env.list(t)
	assert.Empty(t, result.Todos)
	assert.Equal(t, 0, result.Totals.Total)
}

func TestAddBlankIsNoop(t *testing.T) {
	env := newTestEnv(t)

	out := env.run(t, "add", "   ")
	assert.Contains(t, out, "Nothing added")
	assert.Empty(t, env.list(t).Todos)
}

func TestAddFlagsOverrideQuickSyntax(t *testing.T) {
	env := newTestEnv(t)

	env.run(t, "add", "Report +low @Home", "--priority", "high", "--category", "Work")

	todo := env.list(t).Todos[0]
	assert.Equal(t, "high", todo.Priority)
	assert.Equal(t, "Work", todo.Category)
}

func TestAddPriorityFlagKeepsPlusTokensInText(t *testing.T) {
	tests := []struct {
		name string
		args []string
		text string
	}{
		{name: "valid token", args: []string{"Call", "+1", "555"}, text: "Call +1 555"},
		{name: "invalid token", args: []string{"Fix", "C", "+bug"}, text: "Fix C +bug"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)

			out := env.run(t, append([]string{"add", "--priority", "high"}, tt.args...)...)
			assert.Contains(t, out, "Created task")
			assert.NotContains(t, out, "Found issues")

			result := env.list(t)
			require.Len(t, result.Todos, 1)
			assert.Equal(t, tt.text, result.Todos[0].Text)
			assert.Equal(t, "high", result.Todos[0].Priority)
		})
	}
}

func TestAddInvalidQuickPriorityWithoutFlag(t *testing.T) {
	env := newTestEnv(t)

	out := env.run(t, "add", "Fix C +bug")
	assert.Contains(t, out, "Invalid priority 'bug'")
	assert.Empty(t, env.list(t).Todos)
}

func TestListSortAndFilter(t *testing.T) {
	env := newTestEnv(t)
	env.run(t, "add", "a", "--priority", "low", "-c", "X")
	env.run(t, "add", "b", "--priority", "high", "-c", "X")
	env.run(t, "add", "c", "--priority", "medium", "-c", "X")

	result := env.list(t, "--sort", "priority")
	require.Len(t, result.Todos, 3)
	assert.Equal(t, []string{"b", "c", "a"}, []string{result.Todos[0].Text, result.Todos[1].Text, result.Todos[2].Text})

	env.run(t, "done", result.Todos[0].ID)

	active := env.list(t, "--filter", "active", "--sort", "priority")
	assert.Len(t, active.Todos, 2)
	assert.Equal(t, 3, active.Totals.Total)

	completed := env.list(t, "--filter", "completed")
	require.Len(t, completed.Todos, 1)
	assert.Equal(t, "b", completed.Todos[0].Text)

	out := env.run(t, "ls", "--filter", "bogus")
	assert.Contains(t, out, "invalid filter")
}

func TestEdit(t *testing.T) {
	env := newTestEnv(t)
	env.run(t, "add", "original")
	id := env.list(t).Todos[0].ID

	out := env.run(t, "edit", id, "   ")
	assert.Contains(t, out, "Nothing changed")
	assert.Equal(t, "original", env.list(t).Todos[0].Text)

	env.run(t, "edit", id, "  new  ")
	assert.Equal(t, "new", env.list(t).Todos[0].Text)
}

func TestUnknownID(t *testing.T) {
	env := newTestEnv(t)

	out := env.run(t, "done", "nope")
	assert.Contains(t, out, "todo not found")

	out = env.run(t, "rm", "nope")
	assert.Contains(t, out, "todo not found")
}

func TestStatsAndTable(t *testing.T) {
	env := newTestEnv(t)
	env.run(t, "add", "one @Work")
	env.run(t, "add", "two @Home")

	out := env.run(t, "stats")
	assert.Contains(t, out, "Total:     2")
	assert.Contains(t, out, "Remaining: 2")
	assert.Contains(t, out, "Work")
	assert.Contains(t, out, "Home")

	out = env.run(t, "ls")
	assert.Contains(t, out, "PRIORITY")
	assert.Contains(t, out, "one")

	env.run(t, "add", "a task description that is far too long for the table column")
	out = env.run(t, "ls", "--sort", "date")
	assert.Contains(t, out, "a task description that is far too ...")

	empty := newTestEnv(t)
	assert.Contains(t, empty.run(t, "ls"), "No tasks yet")
}

func TestReset(t *testing.T) {
	env := newTestEnv(t)
	env.run(t, "add", "one")
	env.run(t, "add", "two")

	out := env.run(t, "reset")
	assert.Contains(t, out, "--yes")
	assert.Len(t, env.list(t).Todos, 2)

	out = env.run(t, "reset", "--yes")
	assert.Contains(t, out, "Removed 2 task(s)")
	assert.Empty(t, env.list(t).Todos)

	env.run(t, "add", "three")
	assert.Len(t, env.list(t).Todos, 1)
}

func TestVersion(t *testing.T) {
	SetVersion("1.2.3", "abc", "today")
	t.Cleanup(func() { SetVersion("dev", "none", "unknown") })

	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "todolist 1.2.3")
}
