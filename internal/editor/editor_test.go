package editor

import (
	"context"
	"testing"

	"rofipaste/internal/errors"
	"rofipaste/internal/process"

	"github.com/kballard/go-shellquote"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRunner struct {
	calls  []process.Command
	result process.Result
	err    error
}

func (f *fakeRunner) Run(_ context.Context, cmd process.Command) (process.Result, error) {
	f.calls = append(f.calls, cmd)
	return f.result, f.err
}

func newEditor(t *testing.T, r process.Runner, command string) *Editor {
	t.Helper()
	e, err := New(r, command)
	require.NoError(t, err)
	return e
}

func TestCommand(t *testing.T) {
	path := "/home/u/.config/rofipaste/config.yaml"

	tests := []struct {
		name    string
		command string
		want    process.Command
	}{
		{"none", "none", process.Command{Name: "xdg-open", Args: []string{path}}},
		{"empty", "  ", process.Command{Name: "xdg-open", Args: []string{path}}},
		{"plain", "subl", process.Command{Name: "subl", Args: []string{path}, Interactive: true}},
		{"with flags", "code --wait", process.Command{Name: "code", Args: []string{"--wait", path}, Interactive: true}},
		{"quoted flag", `emacsclient -a "" -c`, process.Command{
			Name:        "emacsclient",
			Args:        []string{"-a", "", "-c", path},
			Interactive: true,
		}},
		{"placeholder word", "gvim --remote $FILE -f", process.Command{
			Name:        "gvim",
			Args:        []string{"--remote", path, "-f"},
			Interactive: true,
		}},
		{"placeholder in terminal command", "termite -e 'nvim $FILE'", process.Command{
			Name:        "termite",
			Args:        []string{"-e", "nvim " + path},
			Interactive: true,
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, newEditor(t, nil, tt.command).Command(path))
		})
	}
}

func TestCommandKeepsPathWhole(t *testing.T) {
	paths := []string{
		"/p/my paste.txt",
		"/p/a;touch pwned;b",
		"/p/$(reboot).txt",
		"/p/it's here.md",
	}
	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			cmd := newEditor(t, nil, `printf [%s] $FILE`).Command(path)
			assert.Equal(t, "printf", cmd.Name)
			assert.Equal(t, []string{"[%s]", path}, cmd.Args)

			cmd = newEditor(t, nil, "termite -e 'nvim $FILE'").Command(path)
			assert.Equal(t, "termite", cmd.Name)
			require.Len(t, cmd.Args, 2)
			inner, err := shellquote.Split(cmd.Args[1])
			require.NoError(t, err)
			assert.Equal(t, []string{"nvim", path}, inner)

			cmd = newEditor(t, nil, "vim").Command(path)
			assert.Equal(t, []string{path}, cmd.Args)
		})
	}
}

func TestNewRejectsUnbalancedQuotes(t *testing.T) {
	_, err := New(nil, "termite -e 'nvim $FILE")
	require.Error(t, err)
	assert.True(t, errors.IsInvalidConfig(err))
}

func TestOpen(t *testing.T) {
	r := &fakeRunner{}
	require.NoError(t, newEditor(t, r, "vim").Open(context.Background(), "/tmp/a.txt"))
	require.Len(t, r.calls, 1)
	assert.Equal(t, "vim", r.calls[0].Name)
}

func TestOpenFailures(t *testing.T) {
	r := &fakeRunner{result: process.Result{ExitCode: 1, Stderr: "E325"}}
	err := newEditor(t, r, "vim").Open(context.Background(), "/tmp/a.txt")
	require.Error(t, err)
	assert.True(t, errors.IsEnvironment(err))

	r = &fakeRunner{err: errors.NewEnvironmentError("program not found", "nope", errors.ToolUnavailable, nil)}
	err = newEditor(t, r, "nope").Open(context.Background(), "/tmp/a.txt")
	assert.ErrorIs(t, err, errors.ErrToolUnavailable)
}
