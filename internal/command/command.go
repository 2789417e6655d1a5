// Package command runs the slash commands typed into the picker.
package command

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"rofipaste/internal/errors"
	"rofipaste/internal/log"
)

// Handler runs one verb with the words that followed it
type Handler func(ctx context.Context, args []string) error

type verb struct {
	summary string
	run     Handler
}

// Interpreter maps verbs to handlers
type Interpreter struct {
	prefix string
	verbs  map[string]verb
}

// New creates an interpreter for lines starting with prefix
func New(prefix string) *Interpreter {
	return &Interpreter{prefix: prefix, verbs: map[string]verb{}}
}

// NewDefault creates the interpreter with the built-in verbs: config opens
// the config file and help shows the list of verbs through show.
func NewDefault(prefix string, openConfig func(context.Context) error, show func(context.Context, string) error) *Interpreter {
	i := New(prefix)
	i.Register("config", "open the config file in your editor", func(ctx context.Context, _ []string) error {
		return openConfig(ctx)
	})
	i.Register("help", "show this help", func(ctx context.Context, _ []string) error {
		return show(ctx, i.Help())
	})
	return i
}

// Register adds a verb. Registering a verb again replaces it.
func (i *Interpreter) Register(name, summary string, h Handler) {
	i.verbs[name] = verb{summary: summary, run: h}
}

// Matches reports whether line is a command
func (i *Interpreter) Matches(line string) bool {
	return strings.HasPrefix(line, i.prefix)
}

// Interpret strips the prefix, splits the rest on whitespace and runs the
// verb named by the first word
func (i *Interpreter) Interpret(ctx context.Context, line string) error {
	fields := strings.Fields(strings.TrimPrefix(line, i.prefix))
	if len(fields) == 0 {
		return errors.NewCommandError("empty command", "", errors.EmptyCommand, nil)
	}

	name, args := fields[0], fields[1:]
	v, ok := i.verbs[name]
	if !ok {
		return errors.NewCommandError(
			fmt.Sprintf("unknown command (try %shelp)", i.prefix), name, errors.UnknownCommand, nil)
	}

	log.LogWithFields(log.F("verb", name), log.F("args", args)).Debug("Running command")
	return v.run(ctx, args)
}

// Help lists the registered verbs
func (i *Interpreter) Help() string {
	names := make([]string, 0, len(i.verbs))
	for name := range i.verbs {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString("Available commands:")
	for _, name := range names {
		fmt.Fprintf(&b, "\n  %s%-8s %s", i.prefix, name, i.verbs[name].summary)
	}
	return b.String()
}
