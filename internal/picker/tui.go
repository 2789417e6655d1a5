package picker

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lithammer/fuzzysearch/fuzzy"

	"rofipaste/internal/errors"
	"rofipaste/pkg/types"
)

const maxRows = 15

// TUI is a terminal picker honouring rofi's exit codes
type TUI struct {
	input  io.Reader
	output io.Writer
}

// NewTUI creates a terminal picker drawing on stderr
func NewTUI() *TUI {
	return &TUI{input: os.Stdin, output: os.Stderr}
}

// Pick runs the picker until the user chooses or cancels
func (t *TUI) Pick(ctx context.Context, req Request) (types.PickerResult, error) {
	final, err := t.run(ctx, newModel(req))
	if err != nil {
		return types.PickerResult{}, err
	}
	return final.(model).result, nil
}

// Message shows text until a key is pressed
func (t *TUI) Message(ctx context.Context, text string) error {
	_, err := t.run(ctx, messageModel{text: text})
	return err
}

func (t *TUI) run(ctx context.Context, m tea.Model) (tea.Model, error) {
	p := tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithInput(t.input),
		tea.WithOutput(t.output),
	)
	final, err := p.Run()
	if err != nil {
		return nil, errors.NewEnvironmentError("terminal picker failed", "tui", errors.ToolFailed, err)
	}
	return final, nil
}

type model struct {
	lines   []string
	visible []string
	cursor  int
	message string
	input   textinput.Model
	keys    keyMap
	result  types.PickerResult
}

func newModel(req Request) model {
	ti := textinput.New()
	ti.Prompt = promptStyle.Render(strings.TrimSpace(req.Prompt)) + " "
	ti.Focus()

	return model{
		lines:   req.Lines,
		visible: req.Lines,
		message: req.Message,
		input:   ti,
		keys:    defaultKeyMap(),
		result:  types.PickerResult{ExitCode: types.ExitCancel},
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(keyMsg, m.keys.Cancel):
		m.result = types.PickerResult{ExitCode: types.ExitCancel}
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Confirm):
		return m.choose(types.ExitConfirm)
	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case key.Matches(keyMsg, m.keys.Down):
		if m.cursor < len(m.visible)-1 {
			m.cursor++
		}
		return m, nil
	}

	for _, a := range m.keys.actions() {
		if key.Matches(keyMsg, a.binding) {
			return m.choose(a.code)
		}
	}
	for i, b := range m.keys.Recent {
		if key.Matches(keyMsg, b) {
			return m.choose(types.ExitRecentFirst + i)
		}
	}

	var cmd tea.Cmd
	before := m.input.Value()
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.filter()
	}
	return m, cmd
}

// choose ends the session with the highlighted row. With nothing matching,
// the typed text is returned as is, the way rofi does, so commands work.
func (m model) choose(code int) (tea.Model, tea.Cmd) {
	out := m.input.Value()
	if len(m.visible) > 0 {
		out = m.visible[m.cursor]
	}
	m.result = types.PickerResult{ExitCode: code, Output: out + "\n"}
	return m, tea.Quit
}

func (m *model) filter() {
	query := m.input.Value()
	m.cursor = 0
	if query == "" {
		m.visible = m.lines
		return
	}

	ranks := fuzzy.RankFindFold(query, m.lines)
	sort.SliceStable(ranks, func(i, j int) bool {
		if ranks[i].Distance != ranks[j].Distance {
			return ranks[i].Distance < ranks[j].Distance
		}
		return ranks[i].OriginalIndex < ranks[j].OriginalIndex
	})

	m.visible = make([]string, len(ranks))
	for i, r := range ranks {
		m.visible[i] = r.Target
	}
}

func (m model) View() string {
	var b strings.Builder
	b.WriteString(m.input.View())
	b.WriteString("\n")
	if m.message != "" {
		b.WriteString(messageStyle.Render(m.message))
		b.WriteString("\n")
	}

	start := 0
	if m.cursor >= maxRows {
		start = m.cursor - maxRows + 1
	}
	end := min(start+maxRows, len(m.visible))
	for i := start; i < end; i++ {
		if i == m.cursor {
			b.WriteString(selectedRowStyle.Render(m.visible[i]))
		} else {
			b.WriteString(rowStyle.Render(m.visible[i]))
		}
		b.WriteString("\n")
	}

	help := make([]string, 0, len(m.keys.helpLine()))
	for _, k := range m.keys.helpLine() {
		help = append(help, fmt.Sprintf("%s %s", k.Help().Key, k.Help().Desc))
	}
	b.WriteString(messageStyle.Render(strings.Join(help, " • ")))
	return b.String()
}

type messageModel struct {
	text string
}

func (m messageModel) Init() tea.Cmd { return nil }

func (m messageModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); ok {
		return m, tea.Quit
	}
	return m, nil
}

func (m messageModel) View() string {
	return dialogStyle.Render(m.text) + "\n" + messageStyle.Render("press any key")
}
