package studio

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/filepicker"
	tea "github.com/charmbracelet/bubbletea"

	"turntable/internal/multiview"
)

// SlotPickerModal picks one photograph for a viewpoint slot. Only image
// files are selectable.
type SlotPickerModal struct {
	Viewpoint multiview.Viewpoint
	picker    filepicker.Model
	errText   string
}

// Ensure SlotPickerModal implements View.
var _ View = (*SlotPickerModal)(nil)

// NewSlotPickerModal creates a picker rooted in the user's home directory.
func NewSlotPickerModal(vp multiview.Viewpoint) *SlotPickerModal {
	fp := filepicker.New()
	fp.AllowedTypes = multiview.ImageExtensions()
	if home, err := os.UserHomeDir(); err == nil {
		fp.CurrentDirectory = home
	}
	fp.Height = 14
	return &SlotPickerModal{Viewpoint: vp, picker: fp}
}

// Init implements View.
func (m *SlotPickerModal) Init() tea.Cmd {
	return m.picker.Init()
}

// Update implements View.
func (m *SlotPickerModal) Update(msg tea.Msg) (View, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "esc" {
		return m, func() tea.Msg { return DismissModalMsg{} }
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)

	if ok, path := m.picker.DidSelectFile(msg); ok {
		vp := m.Viewpoint
		return m, func() tea.Msg { return SlotImageChosenMsg{Viewpoint: vp, Path: path} }
	}
	if ok, path := m.picker.DidSelectDisabledFile(msg); ok {
		m.errText = fmt.Sprintf("%s is not an image", path)
	}
	return m, cmd
}

// View implements View.
func (m *SlotPickerModal) View() string {
	content := Styles.Title.Render(fmt.Sprintf("Pick %s view", m.Viewpoint)) + "\n\n"
	content += m.picker.View() + "\n"
	if m.errText != "" {
		content += Styles.Error.Render(m.errText) + "\n"
	}
	content += Styles.Hint.Render("Enter: select  Esc: cancel")
	return Styles.BoxCompact.Render(content)
}
