package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func promptApply(t *testing.T, m promptModel, msg tea.Msg) promptModel {
	t.Helper()
	out, _ := m.Update(msg)
	next, ok := out.(promptModel)
	if !ok {
		t.Fatalf("Update returned %T, want promptModel", out)
	}
	return next
}

func promptType(t *testing.T, m promptModel, text string) promptModel {
	t.Helper()
	for _, r := range text {
		m = promptApply(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func TestPromptTypeAndConfirm(t *testing.T) {
	m := newPromptModel("Profile name:", "Enter a unique name for this profile")
	m = promptType(t, m, "dev")
	m = promptApply(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if !m.done || m.cancelled {
		t.Fatalf("done=%v cancelled=%v, want done and not cancelled", m.done, m.cancelled)
	}
	if got := m.input.Value(); got != "dev" {
		t.Errorf("input value = %q, want dev", got)
	}
}

func TestPromptEscCancels(t *testing.T) {
	m := newPromptModel("Backend URL:", "")
	m = promptType(t, m, "s3://")
	m = promptApply(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	if !m.done || !m.cancelled {
		t.Fatalf("done=%v cancelled=%v, want both true", m.done, m.cancelled)
	}
	if got := m.View(); got != "" {
		t.Errorf("View after cancel = %q, want empty", got)
	}
}

func TestPromptViewShowsLabelAndHelp(t *testing.T) {
	m := newPromptModel("Profile name:", "Enter a unique name for this profile")
	view := m.View()

	if !strings.Contains(view, "Profile name:") {
		t.Errorf("view missing label:\n%s", view)
	}
	if !strings.Contains(view, "> ") {
		t.Errorf("view missing input prompt:\n%s", view)
	}
	for _, want := range []string{"to confirm", "to cancel"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing help %q:\n%s", want, view)
		}
	}
}
