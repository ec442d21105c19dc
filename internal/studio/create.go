package studio

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"turntable/internal/api"
	"turntable/internal/multiview"
)

// slotKeys maps the direct keys of the Create tab to viewpoint slots.
// Lowercase picks an image, uppercase empties the slot.
var slotKeys = map[string]multiview.Viewpoint{
	"f": multiview.Front,
	"b": multiview.Back,
	"l": multiview.Left,
	"r": multiview.Right,
}

// CreateView is the Create tab: four viewpoint slots, an optional model
// name, and the conversion trigger. Slot and job state live on the app;
// this view owns only its widgets.
type CreateView struct {
	Slots     *multiview.Slots
	NameInput textinput.Model

	Busy     bool // conversion in flight; resubmission disabled
	Progress string
	ErrText  string
	Result   *api.ConversionResult

	spinner spinner.Model
	width   int
}

// Ensure CreateView implements View.
var _ View = (*CreateView)(nil)

// NewCreateView creates the Create tab bound to the shared slot store.
func NewCreateView(slots *multiview.Slots) *CreateView {
	ti := textinput.New()
	ti.Placeholder = "model name (optional)"
	ti.CharLimit = 80
	ti.Width = 40

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccent))

	return &CreateView{
		Slots:     slots,
		NameInput: ti,
		spinner:   s,
	}
}

// NameFocused reports whether keys should go to the name input.
func (c *CreateView) NameFocused() bool {
	return c.NameInput.Focused()
}

// SetBusy toggles the in-flight state and returns the spinner tick command
// when work starts.
func (c *CreateView) SetBusy(busy bool) tea.Cmd {
	c.Busy = busy
	if busy {
		return c.spinner.Tick
	}
	return nil
}

// Init implements View.
func (c *CreateView) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (c *CreateView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		c.width = msg.Width
		return c, nil
	case spinner.TickMsg:
		if c.Busy {
			var cmd tea.Cmd
			c.spinner, cmd = c.spinner.Update(msg)
			return c, cmd
		}
		return c, nil
	case tea.KeyMsg:
		if c.NameInput.Focused() {
			switch msg.String() {
			case "esc", "enter":
				c.NameInput.Blur()
				return c, nil
			}
			var cmd tea.Cmd
			c.NameInput, cmd = c.NameInput.Update(msg)
			return c, cmd
		}

		s := msg.String()
		if vp, ok := slotKeys[s]; ok {
			return c, func() tea.Msg { return ShowSlotPickerMsg{Viewpoint: vp} }
		}
		if vp, ok := slotKeys[strings.ToLower(s)]; ok && s != strings.ToLower(s) {
			return c, func() tea.Msg { return RemoveSlotMsg{Viewpoint: vp} }
		}
		switch s {
		case "n":
			return c, c.NameInput.Focus()
		case "ctrl+x":
			return c, func() tea.Msg { return ClearSlotsMsg{} }
		case "enter":
			if !c.Busy {
				return c, func() tea.Msg { return SubmitConversionMsg{} }
			}
			return c, nil
		}
	}
	return c, nil
}

// View implements View.
func (c *CreateView) View() string {
	var b strings.Builder
	b.WriteString(Styles.Title.Render("New conversion") + "\n\n")

	for _, vp := range multiview.Viewpoints() {
		label := fmt.Sprintf("%-6s", string(vp))
		img := c.Slots.Get(vp)
		line := "  " + Styles.Normal.Render(label)
		if img != nil {
			line += Styles.Status.Render(img.Name)
		} else if vp == multiview.Front {
			line += Styles.Empty.Render("empty (required)")
		} else {
			line += Styles.Empty.Render("empty")
		}
		b.WriteString(line + "\n")
	}

	b.WriteString("\n  " + Styles.Muted.Render("name  ") + c.NameInput.View() + "\n\n")

	switch {
	case c.Busy:
		b.WriteString("  " + c.spinner.View() + " " + Styles.Status.Render(c.Progress) + "\n")
	case c.ErrText != "":
		b.WriteString("  " + Styles.Error.Render(c.ErrText) + "\n")
	case c.Result != nil:
		b.WriteString("  " + Styles.Status.Render("Conversion complete") + "\n")
		b.WriteString("  " + Styles.Normal.Render(c.Result.ModelURL) + "\n")
	}

	b.WriteString("\n" + Styles.Hint.Render(
		"f/b/l/r: pick view  F/B/L/R: remove  n: name  Enter: convert  ctrl+x: clear") + "\n")
	return b.String()
}
