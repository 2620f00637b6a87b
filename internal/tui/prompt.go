package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type promptKeyMap struct {
	Confirm key.Binding
	Cancel  key.Binding
}

func newPromptKeyMap() promptKeyMap {
	return promptKeyMap{
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "to confirm"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "to cancel"),
		),
	}
}

func (k promptKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Confirm, k.Cancel}
}

func (k promptKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Confirm, k.Cancel}}
}

// promptModel is a one-line inline text prompt.
type promptModel struct {
	label string
	input textinput.Model
	keys  promptKeyMap

	done      bool
	cancelled bool
}

func newPromptModel(label, placeholder string) promptModel {
	inp := textinput.New()
	inp.Placeholder = placeholder
	inp.Prompt = "> "
	inp.Focus()
	return promptModel{
		label: label,
		input: inp,
		keys:  newPromptKeyMap(),
	}
}

func (m promptModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.String() {
		case "enter":
			m.done = true
			return m, tea.Quit
		case "esc", "ctrl+c":
			m.cancelled = true
			m.done = true
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m promptModel) View() string {
	if m.done {
		return ""
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.label))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(renderHelp(m.keys.ShortHelp()))
	b.WriteString("\n")
	return b.String()
}

// RunPrompt asks for one line of input below the shell prompt. The
// returned value is trimmed of surrounding whitespace; ok is false
// when the user cancelled. Rendering goes to stderr like the selector.
func RunPrompt(label, placeholder string) (string, bool, error) {
	p := tea.NewProgram(newPromptModel(label, placeholder), tea.WithOutput(os.Stderr))
	out, err := p.Run()
	if err != nil {
		return "", false, err
	}
	final, ok := out.(promptModel)
	if !ok {
		return "", false, fmt.Errorf("unexpected prompt model %T", out)
	}
	if final.cancelled || !final.done {
		return "", false, nil
	}
	return strings.TrimSpace(final.input.Value()), true, nil
}
