package studio

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"turntable/internal/api"
)

// galleryItem implements list.Item for a saved model.
type galleryItem struct {
	model api.SavedModel
}

func (g galleryItem) FilterValue() string { return g.model.Name }
func (g galleryItem) Title() string {
	name := g.model.Name
	if name == "" {
		name = g.model.ID
	}
	return fmt.Sprintf("%s  %s", name, g.model.CreatedAt.Format("2006-01-02 15:04"))
}
func (g galleryItem) Description() string { return g.model.Description }

// GalleryView lists the saved models and shows details for the selection.
type GalleryView struct {
	list    list.Model
	Models  []api.SavedModel
	spinner spinner.Model
	loading bool

	// Selected is the id of the app-level selection (may differ from the
	// list cursor until the user presses enter).
	Selected string
	// PreviewText is the renderer output (or its fallback) for the
	// selected asset.
	PreviewText string
}

// Ensure GalleryView implements View.
var _ View = (*GalleryView)(nil)

// NewGalleryView creates an empty gallery. Models arrive via ModelsLoadedMsg.
func NewGalleryView() *GalleryView {
	// Descriptions live in the detail panel; rows stay compact.
	l := list.New(nil, NewCompactListDelegate(), 0, 0)
	l.Title = "Saved models"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()
	l.Styles.Title = Styles.Title

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccent))

	return &GalleryView{list: l, spinner: s}
}

// SetModels replaces the gallery snapshot, keeping the cursor in range.
func (g *GalleryView) SetModels(models []api.SavedModel) {
	g.Models = models
	items := make([]list.Item, len(models))
	for i, m := range models {
		items[i] = galleryItem{model: m}
	}
	idx := g.list.Index()
	g.list.SetItems(items)
	if idx >= len(items) && len(items) > 0 {
		g.list.Select(len(items) - 1)
	}
}

// CursorModel returns the model under the list cursor, or nil.
func (g *GalleryView) CursorModel() *api.SavedModel {
	idx := g.list.Index()
	if idx < 0 || idx >= len(g.Models) {
		return nil
	}
	return &g.Models[idx]
}

// SelectedModel returns the app-selected model, or nil.
func (g *GalleryView) SelectedModel() *api.SavedModel {
	for i := range g.Models {
		if g.Models[i].ID == g.Selected {
			return &g.Models[i]
		}
	}
	return nil
}

// SetLoading toggles the refresh spinner.
func (g *GalleryView) SetLoading(loading bool) tea.Cmd {
	g.loading = loading
	if loading {
		return g.spinner.Tick
	}
	return nil
}

// Init implements View.
func (g *GalleryView) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (g *GalleryView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		g.list.SetWidth(msg.Width / 2)
		g.list.SetHeight(msg.Height - 8)
		return g, nil
	case spinner.TickMsg:
		if g.loading {
			var cmd tea.Cmd
			g.spinner, cmd = g.spinner.Update(msg)
			return g, cmd
		}
		return g, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			if m := g.CursorModel(); m != nil {
				id := m.ID
				return g, func() tea.Msg { return SelectModelMsg{ID: id} }
			}
			return g, nil
		case "e":
			return g, func() tea.Msg { return ShowEditModelMsg{} }
		case "d":
			return g, func() tea.Msg { return ShowDeleteModelMsg{} }
		case "r":
			return g, func() tea.Msg { return RefreshGalleryMsg{} }
		case "o":
			return g, func() tea.Msg { return OpenViewerMsg{} }
		case "s":
			return g, func() tea.Msg { return DownloadAssetMsg{} }
		}
	}

	var cmd tea.Cmd
	g.list, cmd = g.list.Update(msg)
	return g, cmd
}

// View implements View.
func (g *GalleryView) View() string {
	if g.list.Width() == 0 {
		g.list.SetWidth(50)
	}
	if g.list.Height() == 0 {
		g.list.SetHeight(16)
	}

	var b strings.Builder
	title := fmt.Sprintf("Saved models (%d)", len(g.Models))
	if g.loading {
		title += " " + g.spinner.View()
	}
	b.WriteString(Styles.Title.Render(title) + "\n\n")

	if len(g.Models) == 0 {
		b.WriteString(Styles.Empty.Render("nothing here yet — convert something") + "\n")
	} else {
		b.WriteString(g.list.View() + "\n")
	}

	if m := g.SelectedModel(); m != nil {
		b.WriteString("\n" + g.detailPanel(m))
	}

	b.WriteString("\n" + Styles.Hint.Render(
		"Enter: select  e: edit  d: delete  o: open viewer  s: save  r: refresh") + "\n")
	return b.String()
}

func (g *GalleryView) detailPanel(m *api.SavedModel) string {
	var b strings.Builder
	name := m.Name
	if name == "" {
		name = m.ID
	}
	b.WriteString(Styles.Selected.Render(name) + "\n")
	if m.Description != "" {
		b.WriteString(Styles.Normal.Render(m.Description) + "\n")
	}
	b.WriteString(Styles.Muted.Render("job "+m.JobID) + "\n")
	if g.PreviewText != "" {
		b.WriteString(g.PreviewText + "\n")
	}
	return Styles.BoxCompact.Render(strings.TrimRight(b.String(), "\n"))
}
