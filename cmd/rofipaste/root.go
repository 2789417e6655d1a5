package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"rofipaste/cmd/rofipaste/cli"
	"rofipaste/internal/config"
	"rofipaste/internal/errors"
	"rofipaste/internal/log"
	"rofipaste/internal/process"
)

var version = "dev"

// env is what the commands take from the outside world
type env struct {
	runner process.Runner
}

// rootOptions holds the flags shared by every command. Flags override the
// config file only when given.
type rootOptions struct {
	cfgFile             string
	insertWithClipboard bool
	copyOnly            bool
	files               string
	prompt              string
	rofiArgs            string
	editor              string
	picker              string
	debug               bool
	editConfig          bool
}

func newRootCmd(e env) *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "rofipaste",
		Short: "Paste snippets into the active window",
		Long: `rofipaste shows the pastes folder in rofi. Pick a file to type it into the
window you were in, copy it, or paste it through the clipboard. Files starting
with a shebang are run and their output is pasted instead.

Keys in the picker:
  Enter   default action      Alt+c  copy only
  Alt+t   type                Alt+p  paste through the clipboard
  Alt+e   edit the paste`,
		Version:      version,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := opts.app(cmd, e)
			if err != nil {
				return err
			}
			if opts.editConfig {
				return a.openConfig(cmd.Context())
			}
			_, err = a.session(cmd.Context())
			return err
		},
	}

	helpTemplate := cli.Logo() + "\n\n" + rootCmd.HelpTemplate()
	rootCmd.SetHelpTemplate(helpTemplate)

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&opts.cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/rofipaste/config.yaml)")
	pf.BoolVarP(&opts.insertWithClipboard, "insert-with-clipboard", "p", false, "paste through the clipboard instead of typing")
	pf.BoolVarP(&opts.copyOnly, "copy-only", "c", false, "only copy the paste to the clipboard")
	pf.StringVarP(&opts.files, "files", "f", "", "pastes folder")
	pf.StringVarP(&opts.prompt, "prompt", "r", "", "picker prompt")
	pf.StringVar(&opts.rofiArgs, "rofi-args", "", "extra arguments for rofi")
	pf.StringVarP(&opts.editor, "editor", "e", "", `editor command ("none" uses xdg-open)`)
	pf.StringVar(&opts.picker, "picker", "", "picker backend: rofi or tui")
	pf.BoolVar(&opts.debug, "debug", false, "enable debug logging")
	rootCmd.Flags().BoolVar(&opts.editConfig, "edit-config", false, "open the config file in the editor and exit")

	rootCmd.AddCommand(newEditConfigCmd(opts, e))
	rootCmd.AddCommand(newEditEntryCmd(opts, e))
	rootCmd.AddCommand(newConfigCmd(opts))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// load reads the config file, creating it on first run, and applies the
// flags on top
func (o *rootOptions) load(flags *pflag.FlagSet) (*config.Config, string, error) {
	return o.read(flags, true)
}

// loadExisting is load for a config file that must already exist
func (o *rootOptions) loadExisting(flags *pflag.FlagSet) (*config.Config, string, error) {
	return o.read(flags, false)
}

func (o *rootOptions) configPath() (string, error) {
	if o.cfgFile != "" {
		return o.cfgFile, nil
	}
	path, err := config.DefaultConfigPath()
	if err != nil {
		return "", errors.NewConfigError("cannot locate config file", "config", errors.ConfigNotFound, err)
	}
	return path, nil
}

func (o *rootOptions) read(flags *pflag.FlagSet, bootstrap bool) (*config.Config, string, error) {
	path, err := o.configPath()
	if err != nil {
		return nil, "", err
	}

	if bootstrap {
		created, err := config.EnsureConfigFile(path)
		if err != nil {
			return nil, "", errors.NewConfigError("cannot create config file", path, errors.ConfigNotFound, err)
		}
		if created {
			log.Info("Created default config file at %s", path)
		}
	} else if _, err := os.Stat(path); err != nil {
		return nil, "", errors.NewConfigError("config file not found", path, errors.ConfigNotFound, err)
	}

	cfg, err := config.LoadConfigFile(path)
	if err != nil {
		return nil, "", errors.NewConfigError("cannot load config file", path, errors.InvalidConfig, err)
	}

	o.apply(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return nil, "", errors.NewConfigError("invalid command line", "flags", errors.InvalidConfig, err)
	}

	log.SetDebug(cfg.Settings.Debug)
	if cfg.Settings.LogFile != "" {
		log.Configure(log.WithFile(cfg.Settings.LogFile))
	}
	return cfg, path, nil
}

func (o *rootOptions) apply(flags *pflag.FlagSet, cfg *config.Config) {
	if flags.Changed("insert-with-clipboard") {
		cfg.Settings.InsertWithClipboard = o.insertWithClipboard
	}
	if flags.Changed("copy-only") {
		cfg.Settings.CopyOnly = o.copyOnly
	}
	if flags.Changed("files") {
		cfg.Settings.Files = o.files
	}
	if flags.Changed("prompt") {
		cfg.Settings.Prompt = o.prompt
	}
	if flags.Changed("rofi-args") {
		cfg.Settings.RofiArgs = o.rofiArgs
	}
	if flags.Changed("editor") {
		cfg.Settings.Editor = o.editor
	}
	if flags.Changed("picker") {
		cfg.Settings.Picker = o.picker
	}
	if flags.Changed("debug") {
		cfg.Settings.Debug = o.debug
	}
}

func (o *rootOptions) app(cmd *cobra.Command, e env) (*app, error) {
	cfg, path, err := o.load(cmd.Flags())
	if err != nil {
		return nil, err
	}
	return newApp(cfg, path, e.runner)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("rofipaste %s\n", version)
		},
	}
}
