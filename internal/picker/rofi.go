package picker

import (
	"context"
	"strings"

	"rofipaste/internal/errors"
	"rofipaste/internal/process"
	"rofipaste/pkg/types"

	"github.com/kballard/go-shellquote"
)

const rofi = "rofi"

// rofi exits with 9+N for kb-custom-N
var customKeys = []string{
	"-kb-custom-11", "Alt+c", // copy only
	"-kb-custom-12", "Alt+t", // type only
	"-kb-custom-13", "Alt+p", // copy, paste, restore
	"-kb-custom-14", "Alt+e", // edit entry
}

// Rofi runs rofi in dmenu mode
type Rofi struct {
	runner process.Runner
	args   []string
}

// NewRofi creates a rofi picker. extraArgs is split with shell quoting rules
// and passed after the built-in arguments.
func NewRofi(runner process.Runner, extraArgs string) (*Rofi, error) {
	args, err := shellquote.Split(extraArgs)
	if err != nil {
		return nil, errors.NewConfigError("invalid rofi arguments", extraArgs, errors.InvalidConfig, err)
	}
	return &Rofi{runner: runner, args: args}, nil
}

// Pick shows req.Lines and returns rofi's exit code and output
func (r *Rofi) Pick(ctx context.Context, req Request) (types.PickerResult, error) {
	args := []string{"-dmenu", "-i", "-p", req.Prompt}
	args = append(args, customKeys...)
	if req.Message != "" {
		args = append(args, "-mesg", req.Message)
	}
	args = append(args, r.args...)

	res, err := r.runner.Run(ctx, process.Command{
		Name:  rofi,
		Args:  args,
		Stdin: strings.Join(req.Lines, "\n"),
	})
	if err != nil {
		return types.PickerResult{}, err
	}
	return types.PickerResult{ExitCode: res.ExitCode, Output: res.Stdout}, nil
}

// Message shows text in a rofi error dialog
func (r *Rofi) Message(ctx context.Context, text string) error {
	cmd := process.Command{Name: rofi, Args: append([]string{"-e", text}, r.args...)}
	res, err := r.runner.Run(ctx, cmd)
	if err != nil {
		return err
	}
	return process.Check(cmd, res)
}
