// Package desktop talks to the X11 desktop: the focused window, synthetic
// keystrokes and the clipboard selections.
package desktop

import (
	"context"
	"strings"

	"rofipaste/internal/errors"
	"rofipaste/internal/process"
)

const xdotool = "xdotool"

// Xdotool finds the active window and types into it
type Xdotool struct {
	runner process.Runner
}

// NewXdotool creates an xdotool backend
func NewXdotool(runner process.Runner) *Xdotool {
	return &Xdotool{runner: runner}
}

func (x *Xdotool) run(ctx context.Context, args ...string) (string, error) {
	cmd := process.Command{Name: xdotool, Args: args}
	res, err := x.runner.Run(ctx, cmd)
	if err != nil {
		return "", err
	}
	if err := process.Check(cmd, res); err != nil {
		return "", err
	}
	return res.Stdout, nil
}

// ActiveWindow returns the id of the focused window
func (x *Xdotool) ActiveWindow(ctx context.Context) (string, error) {
	out, err := x.run(ctx, "getactivewindow")
	if err != nil {
		return "", err
	}
	id := strings.TrimSpace(out)
	if id == "" {
		return "", errors.NewEnvironmentError("no active window", xdotool, errors.ToolFailed, nil)
	}
	return id, nil
}

// Type sends text to the window as keystrokes
func (x *Xdotool) Type(ctx context.Context, windowID, text string) error {
	args := []string{"type"}
	if windowID != "" {
		args = append(args, "--window", windowID)
	}
	_, err := x.run(ctx, append(args, "--", text)...)
	return err
}

// SendKeys focuses the window and presses combo with modifiers released
func (x *Xdotool) SendKeys(ctx context.Context, windowID, combo string) error {
	var args []string
	if windowID != "" {
		args = append(args, "windowfocus", "--sync", windowID)
	}
	_, err := x.run(ctx, append(args, "key", "--clearmodifiers", combo)...)
	return err
}
