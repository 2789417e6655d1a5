package main

import (
	"strings"

	"github.com/spf13/cobra"

	"rofipaste/cmd/rofipaste/cli"
	"rofipaste/internal/config"
	"rofipaste/internal/editor"
	"rofipaste/internal/icons"
	"rofipaste/internal/listing"
	"rofipaste/internal/process"
)

func newConfigCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the configuration",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the config file and pastes folder locations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, path, err := opts.load(cmd.Flags())
			if err != nil {
				return err
			}
			pastes, err := cfg.PastesDir()
			if err != nil {
				return err
			}
			cli.PrintKeyValue("config", path)
			cli.PrintKeyValue("pastes", pastes)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "check",
		Short: "Load the config file and report problems",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, path, err := opts.loadExisting(cmd.Flags())
			if err != nil {
				cli.PrintError("%v", err)
				return err
			}
			table, err := icons.New(cfg.Icons)
			if err != nil {
				cli.PrintError("icons: %v", err)
				return err
			}
			if _, err := listing.New(table, cfg.Ignore); err != nil {
				cli.PrintError("%v", err)
				return err
			}

			cli.PrintSuccess("%s is valid", path)
			cli.PrintKeyValue("default action", cfg.Action())
			cli.PrintKeyValue("picker", cfg.Settings.Picker)
			cli.PrintKeyValue("clipboard", cfg.Settings.Clipboard)
			cli.PrintKeyValue("editor", cfg.Settings.Editor)
			cli.PrintKeyValue("known extensions", len(cfg.Icons.Extensions))

			for _, tool := range requiredTools(cfg) {
				if process.Available(tool) {
					cli.PrintKeyValue(tool, "found")
				} else {
					cli.PrintKeyValue(tool, "missing")
				}
			}
			return nil
		},
	})

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file",
		Long: `Write the commented default config file. With --force any existing file is
replaced by one holding every default value.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := opts.configPath()
			if err != nil {
				return err
			}
			if force {
				if err := config.SaveConfig(config.New(), path); err != nil {
					return err
				}
				cli.PrintSuccess("Wrote defaults to %s", path)
				return nil
			}
			created, err := config.EnsureConfigFile(path)
			if err != nil {
				return err
			}
			if created {
				cli.PrintSuccess("Created %s", path)
			} else {
				cli.PrintInfo("%s already exists (use --force to overwrite)", path)
			}
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")
	cmd.AddCommand(initCmd)

	return cmd
}

// requiredTools lists the programs a session with cfg shells out to
func requiredTools(cfg *config.Config) []string {
	tools := []string{"xdotool"}
	if cfg.Settings.Picker == config.PickerRofi {
		tools = append(tools, "rofi")
	}
	if cfg.Settings.Clipboard == config.ClipboardXsel {
		tools = append(tools, "xsel")
	}
	if e := strings.TrimSpace(cfg.Settings.Editor); e == "" || e == editor.None {
		tools = append(tools, "xdg-open")
	}
	return tools
}
