package types

import "strings"

// Picker exit codes. The custom codes follow rofi's kb-custom-N numbering
// (kb-custom-N exits with 9+N).
const (
	ExitConfirm     = 0
	ExitCancel      = 1
	ExitRecentFirst = 10
	ExitRecentLast  = 19
	ExitCopyOnly    = 20
	ExitTypeOnly    = 21
	ExitCopyPaste   = 22
	ExitEditEntry   = 23
)

// PickerResult is what one picker invocation returned
type PickerResult struct {
	ExitCode int
	Output   string
}

// Cancelled reports whether the user dismissed the picker
func (r PickerResult) Cancelled() bool {
	return r.ExitCode == ExitCancel
}

// Recent reports whether the exit code is one of the recent-item shortcuts
// and which one (1-based)
func (r PickerResult) Recent() (int, bool) {
	if r.ExitCode >= ExitRecentFirst && r.ExitCode <= ExitRecentLast {
		return r.ExitCode - ExitRecentFirst + 1, true
	}
	return 0, false
}

// ForcedAction returns the delivery action a direct-action key selected
func (r PickerResult) ForcedAction() (DeliveryAction, bool) {
	switch r.ExitCode {
	case ExitCopyOnly:
		return CopyOnly, true
	case ExitTypeOnly:
		return TypeOnly, true
	case ExitCopyPaste:
		return CopyThenPasteThenRestore, true
	}
	return TypeOnly, false
}

// FirstLine is the selected row. Multi-select pickers print one row per
// line; only the first one is acted on.
func (r PickerResult) FirstLine() string {
	line, _, _ := strings.Cut(r.Output, "\n")
	return strings.TrimSuffix(line, "\r")
}
