// Package picker shows a list of rows and reports which one the user chose
// together with the exit code of the key they chose it with.
package picker

import (
	"context"

	"rofipaste/pkg/types"
)

// Request is one listing handed to a picker
type Request struct {
	Prompt  string
	Lines   []string
	Message string // help line shown under the prompt
}

// Picker is the interactive selector. Pick blocks until the user chooses or
// cancels. Message shows text the user has to dismiss.
type Picker interface {
	Pick(ctx context.Context, req Request) (types.PickerResult, error)
	Message(ctx context.Context, text string) error
}
