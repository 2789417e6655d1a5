package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"rofipaste/cmd/rofipaste/cli"
	"rofipaste/internal/config"
	"rofipaste/internal/errors"
	"rofipaste/internal/picker"
	"rofipaste/internal/watch"
	"rofipaste/pkg/types"
)

func newEditConfigCmd(opts *rootOptions, e env) *cobra.Command {
	var wait bool

	cmd := &cobra.Command{
		Use:   "edit-config",
		Short: "Open the config file in your editor",
		Long: `Open the config file in your editor. With --wait the command stays until the
file is saved and then checks that it still loads.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := opts.app(cmd, e)
			if err != nil {
				return err
			}
			if !wait {
				return a.openConfig(cmd.Context())
			}

			if _, err := waitForSave(cmd.Context(), a.configPath, func() error {
				return a.openConfig(cmd.Context())
			}); err != nil {
				return err
			}
			if _, err := config.LoadConfigFile(a.configPath); err != nil {
				cli.PrintError("Something is wrong with your file: %v", err)
				return errors.NewConfigError("saved config is invalid", a.configPath, errors.InvalidConfig, err)
			}
			cli.PrintSuccess("Changes saved")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&wait, "wait", "w", false, "wait for the file to be saved and validate it")
	return cmd
}

func newEditEntryCmd(opts *rootOptions, e env) *cobra.Command {
	var wait bool

	cmd := &cobra.Command{
		Use:   "edit-entry [name]",
		Short: "Create or edit a paste",
		Long: `Open a paste in your editor, creating it (and its folders) first if needed.
The name is relative to the pastes folder, for example "git/log.sh". Without a
name it is asked for in the picker.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.app(cmd, e)
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			name := ""
			if len(args) == 1 {
				name = args[0]
			} else {
				res, err := a.picker.Pick(ctx, picker.Request{Prompt: "New paste name"})
				if err != nil {
					return err
				}
				if res.Cancelled() {
					return nil
				}
				name = strings.TrimSpace(res.FirstLine())
			}

			base, err := a.cfg.PastesDir()
			if err != nil {
				return err
			}
			path, err := createEntry(base, name)
			if err != nil {
				a.showError(ctx, err)
				return err
			}

			if !wait {
				return a.editor.Open(ctx, path)
			}
			if _, err := waitForSave(ctx, path, func() error { return a.editor.Open(ctx, path) }); err != nil {
				return err
			}
			cli.PrintSuccess("Saved %s", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&wait, "wait", "w", false, "wait for the file to be saved")
	return cmd
}

// createEntry makes sure the paste name exists below base and returns its path
func createEntry(base, name string) (string, error) {
	if name == "" {
		return "", errors.NewNavigationError("empty paste name", "", errors.MalformedSelection, nil)
	}
	path := filepath.Join(base, filepath.FromSlash(name))
	if filepath.IsAbs(name) || path == filepath.Clean(base) || !types.Within(base, path) {
		return "", errors.NewNavigationError("paste must be inside the pastes folder", name, errors.OutsideBase, nil)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", errors.NewFileError("cannot create folder", filepath.Dir(path), errors.FileAccessDenied, err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return "", errors.NewFileError("cannot create paste", path, errors.FileAccessDenied, err)
	}
	return path, f.Close()
}

// waitForSave opens the file through open and returns once it is written
func waitForSave(ctx context.Context, path string, open func() error) (watch.FileModification, error) {
	cli.PrintInfo("Waiting for %s to be saved (Ctrl+C to stop)", path)
	return watch.WaitForWrite(ctx, path, open)
}
