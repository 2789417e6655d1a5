// Package deliver puts resolved paste text into the active window or onto
// the clipboard.
package deliver

import (
	"context"
	"time"

	"rofipaste/internal/errors"
	"rofipaste/internal/log"
	"rofipaste/pkg/types"
)

// PasteKey is the key combination that pastes the primary selection
const PasteKey = "shift+Insert"

// Clipboard reads and writes the clipboard and the primary selection
type Clipboard interface {
	Clipboard(ctx context.Context) (string, error)
	Primary(ctx context.Context) (string, error)
	SetClipboard(ctx context.Context, text string) error
	SetPrimary(ctx context.Context, text string) error
}

// Keyboard synthesizes input for a window
type Keyboard interface {
	Type(ctx context.Context, windowID, text string) error
	SendKeys(ctx context.Context, windowID, combo string) error
}

// Dispatcher runs one delivery action per call
type Dispatcher struct {
	clipboard Clipboard
	keyboard  Keyboard
	settle    time.Duration
	sleep     func(time.Duration)
}

// Option configures a Dispatcher
type Option func(*Dispatcher)

// WithSettleDelay sets how long a pasted selection stays in place before
// the previous one is restored
func WithSettleDelay(d time.Duration) Option {
	return func(dp *Dispatcher) { dp.settle = d }
}

// WithSleep replaces time.Sleep
func WithSleep(sleep func(time.Duration)) Option {
	return func(dp *Dispatcher) { dp.sleep = sleep }
}

// New creates a dispatcher
func New(clipboard Clipboard, keyboard Keyboard, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		clipboard: clipboard,
		keyboard:  keyboard,
		settle:    50 * time.Millisecond,
		sleep:     time.Sleep,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Deliver sends text to windowID using action
func (d *Dispatcher) Deliver(ctx context.Context, text string, action types.DeliveryAction, windowID string) error {
	log.LogWithFields(log.F("action", action.String()), log.F("window", windowID), log.F("bytes", len(text))).Debug("Delivering paste")

	switch action {
	case types.CopyOnly:
		return d.clipboard.SetClipboard(ctx, text)
	case types.TypeOnly:
		return d.keyboard.Type(ctx, windowID, text)
	case types.CopyThenPasteThenRestore:
		return d.copyPasteRestore(ctx, text, windowID)
	}
	return errors.Newf("unsupported delivery action %s", action)
}

func (d *Dispatcher) copyPasteRestore(ctx context.Context, text, windowID string) error {
	snapshot := d.snapshot(ctx)

	var errs []error
	if err := d.clipboard.SetClipboard(ctx, text); err != nil {
		errs = append(errs, err)
	}
	if err := d.clipboard.SetPrimary(ctx, text); err != nil {
		errs = append(errs, err)
	}
	if len(errs) == 0 {
		if err := d.keyboard.SendKeys(ctx, windowID, PasteKey); err != nil {
			errs = append(errs, err)
		} else {
			d.sleep(d.settle)
		}
	}

	// Restore runs whatever happened above
	if err := d.clipboard.SetClipboard(ctx, snapshot.Clipboard); err != nil {
		errs = append(errs, errors.Wrap(err, "restoring clipboard"))
	}
	if err := d.clipboard.SetPrimary(ctx, snapshot.Primary); err != nil {
		errs = append(errs, errors.Wrap(err, "restoring primary selection"))
	}
	return errors.Join(errs...)
}

// snapshot reads both selections. An unreadable selection counts as empty.
func (d *Dispatcher) snapshot(ctx context.Context) types.ClipboardSnapshot {
	var snap types.ClipboardSnapshot
	var err error
	if snap.Clipboard, err = d.clipboard.Clipboard(ctx); err != nil {
		log.LogWithError(err).Warn("Cannot read clipboard, it will be cleared after pasting")
		snap.Clipboard = ""
	}
	if snap.Primary, err = d.clipboard.Primary(ctx); err != nil {
		log.LogWithError(err).Warn("Cannot read primary selection, it will be cleared after pasting")
		snap.Primary = ""
	}
	return snap
}
