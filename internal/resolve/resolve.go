// Package resolve turns a paste file into the text that gets delivered.
package resolve

import (
	"context"
	"os"
	"strings"
	"unicode"

	"rofipaste/internal/errors"
	"rofipaste/internal/log"
	"rofipaste/internal/process"
)

const shebang = "#!"

// Resolver reads pastes and runs executable ones
type Resolver struct {
	runner process.Runner
}

// New creates a resolver that starts interpreters through runner
func New(runner process.Runner) *Resolver {
	return &Resolver{runner: runner}
}

// Resolve returns the deliverable text of the paste at path with trailing
// whitespace removed. A paste starting with "#!" is run by the interpreter
// named on its first line, with the path as last argument, and its standard
// output is used instead of the file content.
func (r *Resolver) Resolve(ctx context.Context, path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.NewFileError("paste not found", path, errors.FileNotFound, err)
		}
		return "", errors.NewFileError("cannot read paste", path, errors.FileAccessDenied, err)
	}

	content := string(data)
	if !strings.HasPrefix(content, shebang) {
		return trim(content), nil
	}

	cmd, err := interpreterCommand(content, path)
	if err != nil {
		return "", err
	}

	log.LogWithFields(log.F("path", path), log.F("interpreter", cmd.Name)).Debug("Running executable paste")
	res, err := r.runner.Run(ctx, cmd)
	if err != nil {
		return "", errors.NewExecutionError("cannot start interpreter", path, "", err)
	}
	if res.ExitCode != 0 {
		return "", errors.NewExecutionError("paste script failed", path, strings.TrimSpace(res.Stderr),
			errors.Newf("%s exited with status %d", cmd.Name, res.ExitCode))
	}
	return trim(res.Stdout), nil
}

func interpreterCommand(content, path string) (process.Command, error) {
	line, _, _ := strings.Cut(content, "\n")
	fields := strings.Fields(strings.TrimPrefix(line, shebang))
	if len(fields) == 0 {
		return process.Command{}, errors.NewExecutionError("shebang names no interpreter", path, "", nil)
	}
	args := append([]string{}, fields[1:]...)
	return process.Command{Name: fields[0], Args: append(args, path)}, nil
}

func trim(s string) string {
	return strings.TrimRightFunc(s, unicode.IsSpace)
}
