package desktop

import (
	"context"

	"rofipaste/internal/process"
)

const xsel = "xsel"

// Selection flags understood by xsel
const (
	selClipboard = "-b"
	selPrimary   = "-p"
)

// XselClipboard reads and writes selections through xsel
type XselClipboard struct {
	runner process.Runner
}

// NewXselClipboard creates an xsel backend
func NewXselClipboard(runner process.Runner) *XselClipboard {
	return &XselClipboard{runner: runner}
}

func (c *XselClipboard) read(ctx context.Context, selection string) (string, error) {
	cmd := process.Command{Name: xsel, Args: []string{"-o", selection}}
	res, err := c.runner.Run(ctx, cmd)
	if err != nil {
		return "", err
	}
	if err := process.Check(cmd, res); err != nil {
		return "", err
	}
	return res.Stdout, nil
}

func (c *XselClipboard) write(ctx context.Context, selection, text string) error {
	cmd := process.Command{Name: xsel, Args: []string{"-i", selection}, Stdin: text}
	res, err := c.runner.Run(ctx, cmd)
	if err != nil {
		return err
	}
	return process.Check(cmd, res)
}

func (c *XselClipboard) Clipboard(ctx context.Context) (string, error) {
	return c.read(ctx, selClipboard)
}

func (c *XselClipboard) Primary(ctx context.Context) (string, error) {
	return c.read(ctx, selPrimary)
}

func (c *XselClipboard) SetClipboard(ctx context.Context, text string) error {
	return c.write(ctx, selClipboard, text)
}

func (c *XselClipboard) SetPrimary(ctx context.Context, text string) error {
	return c.write(ctx, selPrimary, text)
}
