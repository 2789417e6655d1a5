package types

// Outcome is how a launcher session ended
type Outcome int

const (
	// OutcomeCancelled means the user dismissed the picker
	OutcomeCancelled Outcome = iota
	// OutcomeDelivered means a paste reached the active window or clipboard
	OutcomeDelivered
	// OutcomeEdited means a paste or the config file was opened in the editor
	OutcomeEdited
	// OutcomeCommand means a slash command ran
	OutcomeCommand
	// OutcomeRecent means a recent-item shortcut was pressed; those are
	// reserved and do nothing yet
	OutcomeRecent
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCancelled:
		return "cancelled"
	case OutcomeDelivered:
		return "delivered"
	case OutcomeEdited:
		return "edited"
	case OutcomeCommand:
		return "command"
	case OutcomeRecent:
		return "recent"
	}
	return "unknown"
}
