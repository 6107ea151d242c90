package ui

import (
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/faizmokh/restoran/internal/restaurant"
)

// The counter and instructions flag are fixed display values; entry changes never reach them.
const (
	counterCount         = 0
	instructionsComplete = true
)

type focusTarget uint8

const (
	focusInput focusTarget = iota
	focusButton
)

func (f focusTarget) String() string {
	if f == focusButton {
		return "button"
	}
	return "input"
}

// InputChangedMsg replaces the pending input, as if the user had edited the field.
type InputChangedMsg struct {
	Text string
}

// SubmitMsg appends an entry built from the pending input.
type SubmitMsg struct{}

// Model is the list editor. It owns the EditorState snapshot and every
// operation returns an updated copy.
type Model struct {
	state restaurant.EditorState
	input textinput.Model
	focus focusTarget
	keys  keyMap
	help  help.Model
}

// NewModel seeds the editor with the default restaurants and focuses the input field.
func NewModel() Model {
	ti := textinput.New()
	ti.Placeholder = "Restaurant name"
	ti.Prompt = "> "
	ti.Width = 40
	ti.Focus()

	h := help.New()
	h.Styles.ShortDesc = Styles.Hint

	return Model{
		state: restaurant.NewEditorState(),
		input: ti,
		focus: focusInput,
		keys:  newKeyMap(),
		help:  h,
	}
}

// State returns the current snapshot.
func (m Model) State() restaurant.EditorState {
	return m.state
}

// InputChanged replaces the pending input with text.
func (m Model) InputChanged(text string) Model {
	m.state = m.state.WithInput(text)
	if m.input.Value() != text {
		m.input.SetValue(text)
	}
	return m
}

// Submit appends a new entry from the pending input. The field keeps its text.
func (m Model) Submit() Model {
	m.state = m.state.Submit()
	added := m.state.Entries[len(m.state.Entries)-1]
	log.Printf("submit: id=%d name=%q entries=%d", added.ID, added.Name, len(m.state.Entries))
	return m
}

// Init starts the cursor blinking.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update applies messages to the editor.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	case InputChangedMsg:
		return m.InputChanged(msg.Text), nil
	case SubmitMsg:
		return m.Submit(), nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Submit):
		return m.Submit(), nil
	case key.Matches(msg, m.keys.NextFocus), key.Matches(msg, m.keys.PrevFocus):
		return m.toggleFocus()
	}

	if m.focus != focusInput {
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if value := m.input.Value(); value != m.state.PendingInput {
		m = m.InputChanged(value)
	}
	return m, cmd
}

// Only two controls exist, so forward and backward focus moves coincide.
func (m Model) toggleFocus() (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.focus == focusInput {
		m.input.Blur()
		m.focus = focusButton
	} else {
		cmd = m.input.Focus()
		m.focus = focusInput
	}
	log.Printf("focus: %s", m.focus)
	return m, cmd
}

// View renders the frame.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(Styles.Title.Render("Restaurants"))
	b.WriteString("\n\n")
	b.WriteString(CounterView(CounterProps{Count: counterCount}))
	b.WriteByte('\n')
	b.WriteString(FlagView(FlagProps{Complete: instructionsComplete}))
	b.WriteString("\n\n")

	rows := make([]string, 0, len(m.state.Entries))
	for _, entry := range m.state.Entries {
		props, err := NewEntryProps(entry.ID, entry.Name, entry.Rating)
		if err != nil {
			rows = append(rows, Styles.Details.Render(err.Error()))
			continue
		}
		rows = append(rows, EntryView(props))
	}
	b.WriteString(Styles.Box.Render(strings.Join(rows, "\n")))
	b.WriteString("\n\n")

	b.WriteString(m.input.View())
	b.WriteString("  ")
	b.WriteString(m.buttonView())
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteByte('\n')

	return b.String()
}

func (m Model) buttonView() string {
	if m.focus == focusButton {
		return Styles.Focused.Render("[ Submit ]")
	}
	return Styles.Button.Render("[ Submit ]")
}
