package types

import "fmt"

// DeliveryAction is how resolved paste text reaches the active window
type DeliveryAction int

const (
	// TypeOnly sends the text as synthetic keystrokes
	TypeOnly DeliveryAction = iota
	// CopyOnly places the text on the clipboard and stops there
	CopyOnly
	// CopyThenPasteThenRestore pastes through the clipboard and puts the
	// previous clipboard and primary selection back afterwards
	CopyThenPasteThenRestore
)

func (a DeliveryAction) String() string {
	switch a {
	case TypeOnly:
		return "type"
	case CopyOnly:
		return "copy"
	case CopyThenPasteThenRestore:
		return "paste"
	}
	return fmt.Sprintf("DeliveryAction(%d)", int(a))
}

// ClipboardSnapshot holds the selections a copy-then-paste delivery
// overwrites, so they can be written back once the paste is consumed.
type ClipboardSnapshot struct {
	Primary   string
	Clipboard string
}
