package desktop

import (
	"context"
	"sync"

	"rofipaste/internal/errors"

	"github.com/atotto/clipboard"
)

const systemTool = "clipboard"

// SystemClipboard uses whatever clipboard helper the system offers
// (xclip, xsel, wl-clipboard) through atotto/clipboard
type SystemClipboard struct {
	// The library selects the primary selection through a package variable
	mu sync.Mutex
}

// NewSystemClipboard returns the library backed clipboard, or an error when
// no helper program is installed
func NewSystemClipboard() (*SystemClipboard, error) {
	if clipboard.Unsupported {
		return nil, errors.NewEnvironmentError("no clipboard helper found (install xsel, xclip or wl-clipboard)",
			systemTool, errors.ToolUnavailable, nil)
	}
	return &SystemClipboard{}, nil
}

func (c *SystemClipboard) read(primary bool) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	restore := usePrimary(primary)
	defer restore()

	text, err := clipboard.ReadAll()
	if err != nil {
		return "", errors.NewEnvironmentError("cannot read selection", systemTool, errors.ToolFailed, err)
	}
	return text, nil
}

func (c *SystemClipboard) write(primary bool, text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	restore := usePrimary(primary)
	defer restore()

	if err := clipboard.WriteAll(text); err != nil {
		return errors.NewEnvironmentError("cannot write selection", systemTool, errors.ToolFailed, err)
	}
	return nil
}

func (c *SystemClipboard) Clipboard(context.Context) (string, error) { return c.read(false) }
func (c *SystemClipboard) Primary(context.Context) (string, error)   { return c.read(true) }

func (c *SystemClipboard) SetClipboard(_ context.Context, text string) error {
	return c.write(false, text)
}

func (c *SystemClipboard) SetPrimary(_ context.Context, text string) error {
	return c.write(true, text)
}
