package main

import (
	"context"
	"fmt"
	"time"

	"rofipaste/internal/command"
	"rofipaste/internal/config"
	"rofipaste/internal/deliver"
	"rofipaste/internal/desktop"
	"rofipaste/internal/editor"
	"rofipaste/internal/errors"
	"rofipaste/internal/icons"
	"rofipaste/internal/listing"
	"rofipaste/internal/log"
	"rofipaste/internal/navigate"
	"rofipaste/internal/picker"
	"rofipaste/internal/process"
	"rofipaste/internal/resolve"
	"rofipaste/pkg/types"
)

// helpMessage is shown under the picker prompt
const helpMessage = "Type %shelp for available commands"

// app holds the components of one run
type app struct {
	cfg        *config.Config
	configPath string

	picker     picker.Picker
	xdotool    *desktop.Xdotool
	editor     *editor.Editor
	resolver   *resolve.Resolver
	dispatcher *deliver.Dispatcher
	lister     *listing.Lister
	commands   *command.Interpreter
}

func newApp(cfg *config.Config, configPath string, runner process.Runner) (*app, error) {
	a := &app{
		cfg:        cfg,
		configPath: configPath,
		xdotool:    desktop.NewXdotool(runner),
		resolver:   resolve.New(runner),
	}

	var err error
	if a.editor, err = editor.New(runner, cfg.Settings.Editor); err != nil {
		return nil, err
	}

	switch cfg.Settings.Picker {
	case config.PickerTUI:
		a.picker = picker.NewTUI()
	default:
		rofi, err := picker.NewRofi(runner, cfg.Settings.RofiArgs)
		if err != nil {
			return nil, err
		}
		a.picker = rofi
	}

	var clip deliver.Clipboard
	switch cfg.Settings.Clipboard {
	case config.ClipboardSystem:
		sys, err := desktop.NewSystemClipboard()
		if err != nil {
			return nil, err
		}
		clip = sys
	default:
		clip = desktop.NewXselClipboard(runner)
	}
	a.dispatcher = deliver.New(clip, a.xdotool,
		deliver.WithSettleDelay(time.Duration(cfg.Settings.SettleDelayMs)*time.Millisecond))

	table, err := icons.New(cfg.Icons)
	if err != nil {
		return nil, errors.NewConfigError("invalid icons", "icons", errors.InvalidConfig, err)
	}
	a.lister, err = listing.New(table, cfg.Ignore)
	if err != nil {
		return nil, err
	}

	a.commands = command.NewDefault(cfg.Commands.Prefix, a.openConfig, a.picker.Message)
	return a, nil
}

func (a *app) openConfig(ctx context.Context) error {
	if _, err := config.EnsureConfigFile(a.configPath); err != nil {
		return err
	}
	return a.editor.Open(ctx, a.configPath)
}

// session runs the launcher until it ends
func (a *app) session(ctx context.Context) (types.Outcome, error) {
	// Ask before the picker takes the focus
	windowID, err := a.xdotool.ActiveWindow(ctx)
	if err != nil {
		log.LogWithError(err).Warn("Cannot find the active window, typing and pasting go to the focused one")
	}

	base, err := a.cfg.PastesDir()
	if err != nil {
		return types.OutcomeCancelled, err
	}
	if err := config.EnsurePastesDir(base); err != nil {
		return types.OutcomeCancelled, err
	}

	engine := navigate.New(a.lister, a.picker, a.resolver, a.dispatcher, a.editor, a.commands, navigate.Options{
		Base:          base,
		ConfigPath:    a.configPath,
		Prompt:        a.cfg.Settings.Prompt,
		Message:       formatHelp(a.cfg.Commands.Prefix),
		DefaultAction: a.cfg.Action(),
		WindowID:      windowID,
	})

	outcome, err := engine.Run(ctx)
	if err != nil {
		a.showError(ctx, err)
		return outcome, err
	}
	log.LogWithFields(log.F("outcome", outcome.String())).Debug("Session finished")
	return outcome, nil
}

// showError reports err through the picker so it is seen without a terminal
func (a *app) showError(ctx context.Context, err error) {
	log.LogError(err, "Session failed")
	if msgErr := a.picker.Message(ctx, err.Error()); msgErr != nil {
		log.LogError(msgErr, "Cannot show error message")
	}
}

func formatHelp(prefix string) string {
	return fmt.Sprintf(helpMessage, prefix)
}
