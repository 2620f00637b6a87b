package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/stephenstubbs/pulumi-profile-selector/internal/picker"
	"github.com/stephenstubbs/pulumi-profile-selector/internal/profile"
)

type selectorKeyMap struct {
	Move   key.Binding
	Select key.Binding
	Cancel key.Binding
	Filter key.Binding
}

func newSelectorKeyMap() selectorKeyMap {
	return selectorKeyMap{
		Move: key.NewBinding(
			key.WithKeys("up", "down", "ctrl+p", "ctrl+n"),
			key.WithHelp("↑↓", "to move"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "to select"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "to cancel"),
		),
		// No trigger key, any printable rune feeds the filter.
		Filter: key.NewBinding(
			key.WithHelp("type", "to filter"),
		),
	}
}

func (k selectorKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Move, k.Select, k.Cancel, k.Filter}
}

func (k selectorKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Move, k.Select, k.Cancel, k.Filter}}
}

// selectorModel renders a Picker inline, below the shell prompt. The
// program never enters the alt screen so that cancelling leaves the
// terminal exactly as it was.
type selectorModel struct {
	picker   *picker.Picker
	keys     selectorKeyMap
	pageSize int
	topIndex int
	height   int

	done      bool
	cancelled bool
	selected  profile.Record
}

func newSelectorModel(records []profile.Record, pageSize int) selectorModel {
	if pageSize < 1 {
		pageSize = 1
	}
	return selectorModel{
		picker:   picker.New(records),
		keys:     newSelectorKeyMap(),
		pageSize: pageSize,
	}
}

func (m selectorModel) Init() tea.Cmd {
	return nil
}

func (m selectorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height
		m.ensureCursorVisible()
		return m, nil

	case tea.KeyMsg:
		res := m.picker.HandleKey(msg.String())
		switch res.Action {
		case picker.ActionCancelled:
			m.cancelled = true
			m.done = true
			return m, tea.Quit
		case picker.ActionSelected:
			m.selected = res.Record
			m.done = true
			return m, tea.Quit
		}
		m.ensureCursorVisible()
		return m, nil
	}
	return m, nil
}

// visibleRows caps the window at pageSize, shrinking further when the
// terminal is too short for the page plus the four chrome lines.
func (m selectorModel) visibleRows() int {
	rows := m.pageSize
	if m.height > 0 {
		if avail := m.height - 4; avail < rows {
			rows = avail
		}
	}
	if rows < 1 {
		rows = 1
	}
	return rows
}

func (m *selectorModel) ensureCursorVisible() {
	visible := m.visibleRows()
	maxTop := m.picker.MatchCount() - visible
	if maxTop < 0 {
		maxTop = 0
	}
	if m.topIndex > maxTop {
		m.topIndex = maxTop
	}
	cursor := m.picker.Cursor()
	if cursor < m.topIndex {
		m.topIndex = cursor
	}
	if cursor >= m.topIndex+visible {
		m.topIndex = cursor - visible + 1
	}
}

func (m selectorModel) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Select Pulumi Profile:"))
	b.WriteString("\n")

	b.WriteString(infoLabelStyle.Render("Filter: "))
	if q := m.picker.Query(); q != "" {
		b.WriteString(queryStyle.Render(q))
	} else {
		b.WriteString(hintStyle.Render("(type to filter)"))
	}
	b.WriteString("\n")

	filtered := m.picker.Filtered()
	if len(filtered) == 0 {
		b.WriteString(hintStyle.Render("(no matching profiles)"))
		b.WriteString("\n")
	} else {
		end := m.topIndex + m.visibleRows()
		if end > len(filtered) {
			end = len(filtered)
		}
		for i := m.topIndex; i < end; i++ {
			rec := filtered[i]
			if i == m.picker.Cursor() {
				b.WriteString(cursorRowStyle.Render("> " + rec.String()))
			} else {
				b.WriteString("  ")
				b.WriteString(rowStyle.Render(rec.Name))
				b.WriteString(backendStyle.Render(" -> " + rec.Backend))
			}
			b.WriteString("\n")
		}
	}

	b.WriteString(counterStyle.Render(fmt.Sprintf("%d/%d profiles", m.picker.MatchCount(), m.picker.TotalCount())))
	b.WriteString("\n")
	b.WriteString(renderHelp(m.keys.ShortHelp()))
	b.WriteString("\n")
	return b.String()
}

func renderHelp(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, boldKey(h.Key)+" "+h.Desc)
	}
	return strings.Join(parts, "  ")
}

func boldKey(text string) string {
	return "\x1b[1m" + text + "\x1b[22m"
}

// RunSelector shows the inline profile selector and blocks until the
// user picks a profile or cancels. ok is false on cancellation. The
// UI is drawn on stderr so stdout stays clean for shell commands.
func RunSelector(records []profile.Record, pageSize int) (profile.Record, bool, error) {
	p := tea.NewProgram(newSelectorModel(records, pageSize), tea.WithOutput(os.Stderr))
	out, err := p.Run()
	if err != nil {
		return profile.Record{}, false, err
	}
	final, ok := out.(selectorModel)
	if !ok {
		return profile.Record{}, false, fmt.Errorf("unexpected selector model %T", out)
	}
	if final.cancelled || !final.done {
		return profile.Record{}, false, nil
	}
	return final.selected, true, nil
}
