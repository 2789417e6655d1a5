// Package process runs the external programs rofipaste talks to: the picker,
// the clipboard and keystroke tools, paste interpreters and the editor.
package process

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"rofipaste/internal/errors"
	"rofipaste/internal/log"
)

// Command describes one program invocation
type Command struct {
	Name  string
	Args  []string
	Stdin string
	// Interactive commands inherit the terminal instead of being captured
	Interactive bool
}

func (c Command) String() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

// Result is what a finished program left behind
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Runner starts programs. A program that ran and exited non-zero is not an
// error: its code is in the Result. Errors mean it could not be started.
type Runner interface {
	Run(ctx context.Context, cmd Command) (Result, error)
}

// ExecRunner runs programs with os/exec
type ExecRunner struct{}

// NewExecRunner returns a runner backed by the operating system
func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

// Run starts cmd and waits for it
func (r *ExecRunner) Run(ctx context.Context, cmd Command) (Result, error) {
	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...)

	var stdout, stderr bytes.Buffer
	if cmd.Interactive {
		c.Stdin = os.Stdin
		c.Stdout = os.Stdout
		c.Stderr = os.Stderr
	} else {
		if cmd.Stdin != "" {
			c.Stdin = strings.NewReader(cmd.Stdin)
		}
		c.Stdout = &stdout
		c.Stderr = io.MultiWriter(&stderr, debugWriter{name: cmd.Name})
	}

	log.Debugf("Running %s", cmd)
	err := c.Run()
	res := Result{Stdout: stdout.String(), Stderr: stderr.String()}

	var exitErr *exec.ExitError
	switch {
	case err == nil:
		return res, nil
	case errors.As(err, &exitErr):
		res.ExitCode = exitErr.ExitCode()
		return res, nil
	case errors.Is(err, exec.ErrNotFound):
		return res, errors.NewEnvironmentError("program not found", cmd.Name, errors.ToolUnavailable, err)
	default:
		return res, errors.NewEnvironmentError("cannot run program", cmd.Name, errors.ToolFailed, err)
	}
}

// Check turns a non-zero exit into an environment error naming the tool
func Check(cmd Command, res Result) error {
	if res.ExitCode == 0 {
		return nil
	}
	msg := strings.TrimSpace(res.Stderr)
	if msg == "" {
		msg = fmt.Sprintf("exit status %d", res.ExitCode)
	}
	return errors.NewEnvironmentError("external tool failed", cmd.Name, errors.ToolFailed, errors.New(msg))
}

// Available reports whether name can be found on PATH
func Available(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

type debugWriter struct {
	name string
}

func (w debugWriter) Write(p []byte) (int, error) {
	log.Debugf("%s: %s", w.name, strings.TrimRight(string(p), "\n"))
	return len(p), nil
}
