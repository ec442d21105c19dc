package studio

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ConfirmModal is a generic confirmation modal. Enter or y confirms; Esc cancels.
type ConfirmModal struct {
	Title      string
	Label      string
	Details    string // Optional warning details
	OnConfirm  func() tea.Msg
	boxStyle   lipgloss.Style
	titleStyle lipgloss.Style
}

// Ensure ConfirmModal implements View.
var _ View = (*ConfirmModal)(nil)

// NewConfirmModal creates a generic confirmation modal.
func NewConfirmModal(title, label string, onConfirm func() tea.Msg) *ConfirmModal {
	return &ConfirmModal{
		Title:      title,
		Label:      label,
		OnConfirm:  onConfirm,
		boxStyle:   Styles.BoxDanger,
		titleStyle: Styles.TitleWarning,
	}
}

// NewDeleteModelConfirmModal creates the confirmation shown before a model is
// deleted. No delete request is issued until the user confirms here.
func NewDeleteModelConfirmModal(id, name string) *ConfirmModal {
	label := name
	if label == "" {
		label = id
	}
	m := NewConfirmModal(
		"Delete model?",
		fmt.Sprintf("Model: %s", label),
		func() tea.Msg { return DeleteModelMsg{ID: id} },
	)
	m.Details = "The saved model and its asset are removed from the service"
	return m
}

// Init implements View.
func (m *ConfirmModal) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (m *ConfirmModal) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, func() tea.Msg { return DismissModalMsg{} }
		case "enter", "y":
			if m.OnConfirm != nil {
				return m, m.OnConfirm
			}
		}
	}
	return m, nil
}

// View implements View.
func (m *ConfirmModal) View() string {
	content := m.titleStyle.Render(m.Title) + "\n\n"
	content += Styles.Label.Render(m.Label)
	if m.Details != "" {
		content += "\n" + Styles.Details.Render(m.Details)
	}
	content += "\n\n" + Styles.Hint.Render("y/Enter: confirm  Esc: cancel")
	return m.boxStyle.Render(content)
}
