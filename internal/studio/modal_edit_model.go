package studio

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// EditModelModal edits the display fields of one saved model: name and
// description. Tab switches fields; Enter submits; Esc cancels.
type EditModelModal struct {
	ID          string
	name        textinput.Model
	description textinput.Model
	focusDesc   bool
}

// Ensure EditModelModal implements View.
var _ View = (*EditModelModal)(nil)

// NewEditModelModal creates the edit form prefilled with the current values.
func NewEditModelModal(id, name, description string) *EditModelModal {
	ni := textinput.New()
	ni.Placeholder = "name"
	ni.CharLimit = 80
	ni.Width = 40
	ni.SetValue(name)
	ni.Focus()

	di := textinput.New()
	di.Placeholder = "description"
	di.CharLimit = 200
	di.Width = 40
	di.SetValue(description)

	return &EditModelModal{ID: id, name: ni, description: di}
}

// Init implements View.
func (m *EditModelModal) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements View.
func (m *EditModelModal) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, func() tea.Msg { return DismissModalMsg{} }
		case "tab", "shift+tab":
			m.focusDesc = !m.focusDesc
			if m.focusDesc {
				m.name.Blur()
				return m, m.description.Focus()
			}
			m.description.Blur()
			return m, m.name.Focus()
		case "enter":
			id := m.ID
			name := strings.TrimSpace(m.name.Value())
			desc := strings.TrimSpace(m.description.Value())
			return m, func() tea.Msg {
				return EditSubmittedMsg{ID: id, Name: name, Description: desc}
			}
		}
	}
	var cmd tea.Cmd
	if m.focusDesc {
		m.description, cmd = m.description.Update(msg)
	} else {
		m.name, cmd = m.name.Update(msg)
	}
	return m, cmd
}

// View implements View.
func (m *EditModelModal) View() string {
	content := Styles.Title.Render("Edit model") + "\n\n"
	content += Styles.Muted.Render("name") + "\n" + m.name.View() + "\n\n"
	content += Styles.Muted.Render("description") + "\n" + m.description.View() + "\n\n"
	content += Styles.Hint.Render("Tab: switch field  Enter: save  Esc: cancel")
	return Styles.Box.Render(content)
}
