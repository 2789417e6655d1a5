package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// defaultConfigTemplate is written on first run. Every key is commented out
// so the built-in defaults stay in charge until the user opts in.
const defaultConfigTemplate = `##################################
##     Default config file      ##
## Uncomment the lines you want ##
##################################

settings:
  ## Paste through the clipboard instead of typing (recommended on Wayland
  ## and for non-qwerty layouts)
  # insert_with_clipboard: true          # Default: false

  ## Just copy the paste content
  # copy_only: true                      # Default: false

  ## Folder holding your pastes (relative paths live under ~/.local/share/rofipaste)
  # files: "/home/<my username>/my pastes"   # Default: pastes_folder

  ## Picker prompt
  # prompt: "This is my custom prompt"   # Default: "Rofipaste ❤ "

  ## Extra arguments handed to rofi
  # rofi_args: "-theme gruvbox-dark"     # Default: ""

  ## Your favorite editor ($FILE is replaced by the path, otherwise it is appended)
  # editor: "subl"
  # editor: "code --wait"
  # editor: "termite -e 'nvim $FILE'"

  ## Picker backend: rofi or tui (terminal)
  # picker: rofi

  ## Clipboard backend: xsel or system
  # clipboard: xsel

## Names hidden from listings (glob patterns)
# ignore: [".*", "*~", "*.swp"]

## Icons shown in front of each entry
# icons:
#   folder: "[dir]"
#   extensions:
#     py: "[py]"
`

// EnsureConfigFile writes the commented default config to path unless a
// file already exists there. It reports whether a file was created.
func EnsureConfigFile(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("error accessing config file: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return false, fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(defaultConfigTemplate), 0644); err != nil {
		return false, fmt.Errorf("failed to write config file: %w", err)
	}
	return true, nil
}

// EnsurePastesDir creates the pastes folder if it is missing
func EnsurePastesDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create pastes folder: %w", err)
	}
	return nil
}
