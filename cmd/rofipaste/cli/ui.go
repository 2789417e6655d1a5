// Package cli holds the terminal output helpers of the rofipaste commands.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#00FF00"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#81A1C1"))
	headerStyle  = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#4F4FB7")).
			Padding(0, 1)
)

// Output is where the helpers write
var Output io.Writer = os.Stdout

// Logo is the banner printed above the command help
func Logo() string {
	return headerStyle.Render("rofipaste ❤") + "\n" +
		infoStyle.Render("Browse your pastes, pick one, paste it.")
}

// PrintSuccess prints a success message
func PrintSuccess(format string, args ...interface{}) {
	fmt.Fprintln(Output, successStyle.Render("✓ "+fmt.Sprintf(format, args...)))
}

// PrintError prints an error message
func PrintError(format string, args ...interface{}) {
	fmt.Fprintln(Output, errorStyle.Render("✗ "+fmt.Sprintf(format, args...)))
}

// PrintInfo prints an informational message
func PrintInfo(format string, args ...interface{}) {
	fmt.Fprintln(Output, infoStyle.Render(fmt.Sprintf(format, args...)))
}

// PrintKeyValue prints an aligned setting line
func PrintKeyValue(key string, value interface{}) {
	fmt.Fprintf(Output, "  %-22s %v\n", key+":", value)
}
