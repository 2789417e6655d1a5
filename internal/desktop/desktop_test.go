package desktop

import (
	"context"
	"testing"

	"rofipaste/internal/deliver"
	"rofipaste/internal/errors"
	"rofipaste/internal/process"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scriptedRunner struct {
	calls   []process.Command
	results map[string]process.Result
}

func (r *scriptedRunner) Run(_ context.Context, cmd process.Command) (process.Result, error) {
	r.calls = append(r.calls, cmd)
	return r.results[cmd.String()], nil
}

var (
	_ deliver.Clipboard = (*XselClipboard)(nil)
	_ deliver.Clipboard = (*SystemClipboard)(nil)
	_ deliver.Keyboard  = (*Xdotool)(nil)
)

func TestXdotoolActiveWindow(t *testing.T) {
	r := &scriptedRunner{results: map[string]process.Result{
		"xdotool getactivewindow": {Stdout: "65011715\n"},
	}}

	id, err := NewXdotool(r).ActiveWindow(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "65011715", id)
}

func TestXdotoolActiveWindowFailure(t *testing.T) {
	r := &scriptedRunner{results: map[string]process.Result{
		"xdotool getactivewindow": {ExitCode: 1, Stderr: "XGetWindowProperty failed"},
	}}

	_, err := NewXdotool(r).ActiveWindow(context.Background())
	require.Error(t, err)
	assert.True(t, errors.IsEnvironment(err))
}

func TestXdotoolTypeAndKeys(t *testing.T) {
	r := &scriptedRunner{}
	x := NewXdotool(r)

	require.NoError(t, x.Type(context.Background(), "42", "-rf text"))
	require.NoError(t, x.SendKeys(context.Background(), "42", deliver.PasteKey))
	require.NoError(t, x.SendKeys(context.Background(), "", deliver.PasteKey))

	require.Len(t, r.calls, 3)
	assert.Equal(t, []string{"type", "--window", "42", "--", "-rf text"}, r.calls[0].Args)
	assert.Equal(t, []string{"windowfocus", "--sync", "42", "key", "--clearmodifiers", "shift+Insert"}, r.calls[1].Args)
	assert.Equal(t, []string{"key", "--clearmodifiers", "shift+Insert"}, r.calls[2].Args)
}

func TestXselClipboard(t *testing.T) {
	r := &scriptedRunner{results: map[string]process.Result{
		"xsel -o -b": {Stdout: "from clipboard"},
		"xsel -o -p": {Stdout: "from primary"},
	}}
	c := NewXselClipboard(r)
	ctx := context.Background()

	text, err := c.Clipboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, "from clipboard", text)

	text, err = c.Primary(ctx)
	require.NoError(t, err)
	assert.Equal(t, "from primary", text)

	require.NoError(t, c.SetClipboard(ctx, "a"))
	require.NoError(t, c.SetPrimary(ctx, "b"))

	assert.Equal(t, process.Command{Name: "xsel", Args: []string{"-i", "-b"}, Stdin: "a"}, r.calls[2])
	assert.Equal(t, process.Command{Name: "xsel", Args: []string{"-i", "-p"}, Stdin: "b"}, r.calls[3])
}

func TestXselFailureIsEnvironmentError(t *testing.T) {
	r := &scriptedRunner{results: map[string]process.Result{
		"xsel -i -b": {ExitCode: 1, Stderr: "Can't open display"},
	}}

	err := NewXselClipboard(r).SetClipboard(context.Background(), "x")
	require.Error(t, err)

	var envErr *errors.EnvironmentError
	require.True(t, errors.As(err, &envErr))
	assert.Equal(t, "xsel", envErr.Tool())
}
