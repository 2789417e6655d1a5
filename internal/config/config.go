package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"

	"rofipaste/pkg/types"

	"github.com/kballard/go-shellquote"
	"gopkg.in/yaml.v3"
)

const (
	// AppName names the config and data directories
	AppName = "rofipaste"
	// ConfigFileName is the config file inside the config directory
	ConfigFileName = "config.yaml"
	// DefaultPastesFolder is the pastes folder name under the data directory
	DefaultPastesFolder = "pastes_folder"
)

// Picker backends
const (
	PickerRofi = "rofi"
	PickerTUI  = "tui"
)

// Clipboard backends
const (
	ClipboardXsel   = "xsel"
	ClipboardSystem = "system"
)

// IconSettings maps file extensions and the synthetic rows to icons
type IconSettings struct {
	Folder     string            `yaml:"folder"`      // Subfolder rows
	GoUp       string            `yaml:"go_up"`       // ".." row
	EditConfig string            `yaml:"edit_config"` // Config row
	Default    string            `yaml:"default"`     // Files with an unknown or no extension
	Extensions map[string]string `yaml:"extensions"`  // Extension (without dot) to icon
}

// Config represents the application configuration structure.
type Config struct {
	Settings struct {
		InsertWithClipboard bool   `yaml:"insert_with_clipboard"` // Paste through the clipboard instead of typing
		CopyOnly            bool   `yaml:"copy_only"`             // Only copy to the clipboard
		Files               string `yaml:"files"`                 // Pastes folder, relative to the data dir unless absolute
		Prompt              string `yaml:"prompt"`                // Picker prompt
		RofiArgs            string `yaml:"rofi_args"`             // Extra rofi arguments, split with shell quoting
		Editor              string `yaml:"editor"`                // Editor command, "none" for xdg-open
		Picker              string `yaml:"picker"`                // rofi or tui
		Clipboard           string `yaml:"clipboard"`             // xsel or system
		SettleDelayMs       int    `yaml:"settle_delay_ms"`       // Wait after the paste key before restoring
		LogFile             string `yaml:"log_file"`              // Optional log file
		Debug               bool   `yaml:"debug"`
	} `yaml:"settings"`
	Icons    IconSettings `yaml:"icons"`
	Ignore   []string     `yaml:"ignore"` // Glob patterns hidden from listings
	Commands struct {
		Prefix string `yaml:"prefix"` // First character marking a command line
	} `yaml:"commands"`
}

// DefaultConfigPath returns $XDG_CONFIG_HOME/rofipaste/config.yaml,
// falling back to ~/.config.
func DefaultConfigPath() (string, error) {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, AppName, ConfigFileName), nil
}

// DataDir returns $XDG_DATA_HOME/rofipaste, falling back to ~/.local/share.
func DataDir() (string, error) {
	dir := os.Getenv("XDG_DATA_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dir = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dir, AppName), nil
}

// LoadConfigFile loads configuration from a specific file path.
// If the file doesn't exist, returns default configuration.
// Keys present in the file override defaults, including explicit zero values.
func LoadConfigFile(path string) (*Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// defaultConfig returns the default configuration.
func defaultConfig() *Config {
	cfg := &Config{}

	cfg.Settings.InsertWithClipboard = false
	cfg.Settings.CopyOnly = false
	cfg.Settings.Files = DefaultPastesFolder
	cfg.Settings.Prompt = "Rofipaste ❤ "
	cfg.Settings.RofiArgs = ""
	cfg.Settings.Editor = "none"
	cfg.Settings.Picker = PickerRofi
	cfg.Settings.Clipboard = ClipboardXsel
	cfg.Settings.SettleDelayMs = 50

	cfg.Icons = DefaultIcons()
	cfg.Ignore = []string{".*", "*~", "*.swp"}
	cfg.Commands.Prefix = "/"

	return cfg
}

// DefaultIcons returns the built-in icon table (Nerd Font glyphs)
func DefaultIcons() IconSettings {
	return IconSettings{
		Folder:     "\uf07b",
		GoUp:       "\uf0e2",
		EditConfig: "\uf013",
		Default:    "\uf15c",
		Extensions: map[string]string{
			"sh":   "\uf489",
			"bash": "\ue795",
			"py":   "\ue73c",
			"js":   "\ue74e",
			"ts":   "\ue628",
			"html": "\ue736",
			"xml":  "\uf121",
			"md":   "\ue609",
			"css":  "\ue749",
			"scss": "\ue603",
			"json": "\ue60b",
			"yaml": "\ue6a8",
			"c":    "\ue61e",
			"cpp":  "\ue61d",
			"go":   "\ue626",
			"rs":   "\ue7a8",
			"java": "\ue738",
			"sql":  "\uf1c0",
			"txt":  "\uf0f6",
		},
	}
}

// SaveConfig saves the configuration to the specified file.
// It creates parent directories if they don't exist.
func SaveConfig(cfg *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("nil config")
	}

	validPickers := map[string]bool{PickerRofi: true, PickerTUI: true}
	if !validPickers[c.Settings.Picker] {
		return fmt.Errorf("invalid picker setting: %s", c.Settings.Picker)
	}

	validClipboards := map[string]bool{ClipboardXsel: true, ClipboardSystem: true}
	if !validClipboards[c.Settings.Clipboard] {
		return fmt.Errorf("invalid clipboard setting: %s", c.Settings.Clipboard)
	}

	if c.Settings.SettleDelayMs < 0 {
		return fmt.Errorf("settle delay must be >= 0 milliseconds")
	}

	if _, err := shellquote.Split(c.Settings.RofiArgs); err != nil {
		return fmt.Errorf("rofi_args: %w", err)
	}
	if _, err := shellquote.Split(c.Settings.Editor); err != nil {
		return fmt.Errorf("editor: %w", err)
	}

	if strings.TrimSpace(c.Settings.Files) == "" {
		return fmt.Errorf("pastes folder (files) is required")
	}

	if utf8.RuneCountInString(c.Commands.Prefix) != 1 || unicode.IsSpace([]rune(c.Commands.Prefix)[0]) {
		return fmt.Errorf("command prefix must be a single non-space character, got %q", c.Commands.Prefix)
	}

	named := map[string]string{
		"folder":      c.Icons.Folder,
		"go_up":       c.Icons.GoUp,
		"edit_config": c.Icons.EditConfig,
		"default":     c.Icons.Default,
	}
	for name, icon := range named {
		if err := validateIcon(icon, c.Commands.Prefix); err != nil {
			return fmt.Errorf("icon %s: %w", name, err)
		}
	}
	for ext, icon := range c.Icons.Extensions {
		if ext == "" || strings.HasPrefix(ext, ".") {
			return fmt.Errorf("icon extension %q must be non-empty and given without a leading dot", ext)
		}
		if err := validateIcon(icon, c.Commands.Prefix); err != nil {
			return fmt.Errorf("icon for extension %s: %w", ext, err)
		}
	}

	return nil
}

func validateIcon(icon, prefix string) error {
	if icon == "" {
		return fmt.Errorf("icon is empty")
	}
	// A line starting with the prefix is read as a command, never an entry
	if strings.HasPrefix(icon, prefix) {
		return fmt.Errorf("icon %q starts with the command prefix", icon)
	}
	if strings.IndexFunc(icon, unicode.IsSpace) >= 0 {
		return fmt.Errorf("icon %q contains whitespace", icon)
	}
	return nil
}

// Action returns the statically configured delivery action. Copy-only wins
// over insert-with-clipboard; with neither set the text is typed.
func (c *Config) Action() types.DeliveryAction {
	switch {
	case c.Settings.CopyOnly:
		return types.CopyOnly
	case c.Settings.InsertWithClipboard:
		return types.CopyThenPasteThenRestore
	}
	return types.TypeOnly
}

// PastesDir resolves the pastes folder. Relative values live under the data
// directory; "~/" expands to the home directory. The result carries no
// trailing separator.
func (c *Config) PastesDir() (string, error) {
	files := c.Settings.Files
	if strings.HasPrefix(files, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		files = filepath.Join(home, files[2:])
	}
	if filepath.IsAbs(files) {
		return filepath.Clean(files), nil
	}
	dataDir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, files), nil
}

// New creates a new configuration instance with default values.
func New() *Config {
	return defaultConfig()
}
