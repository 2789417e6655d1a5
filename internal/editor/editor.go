// Package editor opens config and paste files in the user's editor.
package editor

import (
	"context"
	"strings"

	"rofipaste/internal/errors"
	"rofipaste/internal/log"
	"rofipaste/internal/process"

	"github.com/kballard/go-shellquote"
)

const (
	// None hands files to the desktop's default application
	None = "none"
	// Placeholder is replaced by the file path in editor commands
	Placeholder = "$FILE"

	opener = "xdg-open"
)

// Editor runs the configured editor command
type Editor struct {
	runner process.Runner
	words  []string
}

// New creates an editor from a command line such as "code --wait",
// "termite -e 'nvim $FILE'" or "none". The line is split with shell quoting
// rules but never run through a shell.
func New(runner process.Runner, command string) (*Editor, error) {
	command = strings.TrimSpace(command)
	e := &Editor{runner: runner}
	if command == "" || command == None {
		return e, nil
	}
	words, err := shellquote.Split(command)
	if err != nil {
		return nil, errors.NewConfigError("invalid editor command", command, errors.InvalidConfig, err)
	}
	e.words = words
	return e, nil
}

// Command returns the invocation that opens path. A word that is exactly
// the placeholder becomes the path itself. A word embedding it, like the
// command string handed to a terminal, gets the path shell-quoted.
func (e *Editor) Command(path string) process.Command {
	if len(e.words) == 0 {
		return process.Command{Name: opener, Args: []string{path}}
	}

	var (
		args     []string
		replaced bool
	)
	for _, w := range e.words[1:] {
		switch {
		case w == Placeholder:
			w = path
			replaced = true
		case strings.Contains(w, Placeholder):
			w = strings.ReplaceAll(w, Placeholder, shellquote.Join(path))
			replaced = true
		}
		args = append(args, w)
	}
	if !replaced {
		args = append(args, path)
	}
	return process.Command{Name: e.words[0], Args: args, Interactive: true}
}

// Open edits path and waits for the editor to return
func (e *Editor) Open(ctx context.Context, path string) error {
	cmd := e.Command(path)
	log.LogWithFields(log.F("path", path), log.F("editor", cmd.Name)).Info("Opening editor")

	res, err := e.runner.Run(ctx, cmd)
	if err != nil {
		return errors.Wrapf(err, "cannot open %s", path)
	}
	return process.Check(cmd, res)
}
