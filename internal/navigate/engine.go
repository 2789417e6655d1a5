// Package navigate runs a launcher session: it walks the pastes tree through
// the picker until the user delivers a paste, edits a file, runs a command
// or gives up.
package navigate

import (
	"context"
	"strconv"

	"rofipaste/internal/errors"
	"rofipaste/internal/listing"
	"rofipaste/internal/log"
	"rofipaste/internal/picker"
	"rofipaste/pkg/types"
)

// Resolver turns a paste file into deliverable text
type Resolver interface {
	Resolve(ctx context.Context, path string) (string, error)
}

// Deliverer puts text into a window or onto the clipboard
type Deliverer interface {
	Deliver(ctx context.Context, text string, action types.DeliveryAction, windowID string) error
}

// Editor opens a file for editing
type Editor interface {
	Open(ctx context.Context, path string) error
}

// Commands runs lines typed with the command prefix
type Commands interface {
	Matches(line string) bool
	Interpret(ctx context.Context, line string) error
}

// Options holds the per-session settings
type Options struct {
	Base          string // pastes root
	ConfigPath    string // opened by the edit-config row
	Prompt        string
	Message       string
	DefaultAction types.DeliveryAction // used on a plain confirm
	WindowID      string               // window focused before the picker opened
}

// Engine is the navigation state machine
type Engine struct {
	lister    *listing.Lister
	picker    picker.Picker
	resolver  Resolver
	deliverer Deliverer
	editor    Editor
	commands  Commands
	opts      Options
	state     types.FolderState
}

// New creates an engine positioned at the pastes root
func New(lister *listing.Lister, p picker.Picker, resolver Resolver, deliverer Deliverer,
	editor Editor, commands Commands, opts Options) *Engine {
	return &Engine{
		lister:    lister,
		picker:    p,
		resolver:  resolver,
		deliverer: deliverer,
		editor:    editor,
		commands:  commands,
		opts:      opts,
		state:     types.NewFolderState(opts.Base),
	}
}

// State returns the navigation cursor
func (e *Engine) State() types.FolderState {
	return e.state
}

// Run shows listings until the session ends. Execution errors are shown to
// the user and browsing resumes; every other error ends the session.
func (e *Engine) Run(ctx context.Context) (types.Outcome, error) {
	for {
		entries, err := e.lister.List(e.state.Current)
		if err != nil {
			return types.OutcomeCancelled, err
		}
		if !e.state.AtRoot() {
			entries = append([]types.Entry{e.lister.GoUpEntry()}, entries...)
		}

		res, err := e.picker.Pick(ctx, picker.Request{
			Prompt:  e.opts.Prompt,
			Lines:   listing.RenderAll(entries),
			Message: e.opts.Message,
		})
		if err != nil {
			return types.OutcomeCancelled, err
		}

		outcome, done, err := e.Interpret(ctx, res)
		if err != nil {
			if errors.IsFatal(err) {
				return outcome, err
			}
			log.LogError(err, "Paste could not be resolved")
			if msgErr := e.picker.Message(ctx, err.Error()); msgErr != nil {
				log.LogError(msgErr, "Cannot show error message")
			}
			continue
		}
		if done {
			return outcome, nil
		}
	}
}

// Interpret applies one picker result. done is false when the session goes
// on browsing, after a folder change.
func (e *Engine) Interpret(ctx context.Context, res types.PickerResult) (outcome types.Outcome, done bool, err error) {
	if res.Cancelled() {
		return types.OutcomeCancelled, true, nil
	}

	line := res.FirstLine()
	if e.commands != nil && line != "" && e.commands.Matches(line) {
		return types.OutcomeCommand, true, e.commands.Interpret(ctx, line)
	}

	icon, label, err := listing.ParseLine(line)
	if err != nil {
		return types.OutcomeCancelled, true, err
	}
	kind, ok := e.lister.Icons().Kind(icon)
	if !ok {
		return types.OutcomeCancelled, true, errors.NewNavigationError("unknown entry icon", string(icon), errors.UnknownIcon, nil)
	}

	switch kind {
	case types.KindFolder:
		if err := e.state.Descend(label); err != nil {
			return types.OutcomeCancelled, true, errors.NewNavigationError("cannot enter folder", label, errors.OutsideBase, err)
		}
		log.Debugf("Entered %s", e.state.Current)
		return types.OutcomeCancelled, false, nil

	case types.KindGoUp:
		e.state.Ascend()
		log.Debugf("Back to %s", e.state.Current)
		return types.OutcomeCancelled, false, nil

	case types.KindEditConfig:
		return types.OutcomeEdited, true, e.editor.Open(ctx, e.opts.ConfigPath)
	}

	return e.paste(ctx, res, icon, label)
}

func (e *Engine) paste(ctx context.Context, res types.PickerResult, icon types.Icon, label string) (types.Outcome, bool, error) {
	name, err := e.lister.FileName(icon, label)
	if err != nil {
		return types.OutcomeCancelled, true, err
	}
	path, err := e.state.Path(name)
	if err != nil {
		return types.OutcomeCancelled, true, errors.NewNavigationError("invalid paste name", name, errors.OutsideBase, err)
	}

	if n, ok := res.Recent(); ok {
		log.LogWithFields(log.F("slot", n), log.F("path", path)).Info("Recent items are not available yet")
		return types.OutcomeRecent, true, nil
	}

	var action types.DeliveryAction
	switch forced, ok := res.ForcedAction(); {
	case res.ExitCode == types.ExitEditEntry:
		return types.OutcomeEdited, true, e.editor.Open(ctx, path)
	case res.ExitCode == types.ExitConfirm:
		action = e.opts.DefaultAction
	case ok:
		action = forced
	default:
		return types.OutcomeCancelled, true, errors.NewNavigationError(
			"unexpected picker exit code", strconv.Itoa(res.ExitCode), errors.UnexpectedExitCode, nil)
	}

	text, err := e.resolver.Resolve(ctx, path)
	if err != nil {
		return types.OutcomeCancelled, errors.IsFatal(err), err
	}

	log.LogWithFields(log.F("path", path), log.F("action", action.String())).Info("Delivering paste")
	if err := e.deliverer.Deliver(ctx, text, action, e.opts.WindowID); err != nil {
		return types.OutcomeCancelled, true, err
	}
	return types.OutcomeDelivered, true, nil
}
