package studio

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"turntable/internal/api"
	"turntable/internal/convert"
	"turntable/internal/multiview"
	"turntable/internal/viewer"
)

// AppModel is the root model: two tabs (Create and Gallery), a shared slot
// store, the conversion orchestrator, and an overlay stack for modals. All
// state transitions happen in Update handlers; commands do the network work
// and report back as messages.
type AppModel struct {
	Tab        Tab
	Create     *CreateView
	Gallery    *GalleryView
	Overlays   OverlayStack
	KeyHandler *KeyHandler

	Status        string
	StatusIsError bool

	Slots        *multiview.Slots
	Result       *api.ConversionResult
	Client       *api.Client
	Orchestrator *convert.Orchestrator
	Launcher     *viewer.Launcher
	DownloadDir  string
	Log          zerolog.Logger

	width  int
	height int
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root application model.
func NewAppModel(client *api.Client, launcher *viewer.Launcher, downloadDir string, log zerolog.Logger) *AppModel {
	slots := multiview.NewSlots()

	reg := NewKeybindRegistry()
	a := &AppModel{
		Tab:          TabCreate,
		Create:       NewCreateView(slots),
		Gallery:      NewGalleryView(),
		Slots:        slots,
		Client:       client,
		Orchestrator: convert.NewOrchestrator(client, log),
		Launcher:     launcher,
		DownloadDir:  downloadDir,
		Log:          log,
	}

	reg.BindWithDesc("SPC q", tea.Quit, "Quit")
	reg.BindWithDesc("ctrl+c", tea.Quit, "")
	reg.BindWithDesc("SPC c", switchTabCmd(TabCreate), "Create tab")
	reg.BindWithDesc("SPC g", switchTabCmd(TabGallery), "Gallery tab")
	reg.BindWithDescForTab("SPC r", func() tea.Msg { return RefreshGalleryMsg{} },
		"Refresh gallery", []Tab{TabGallery})
	a.KeyHandler = NewKeyHandler(reg)
	return a
}

func switchTabCmd(t Tab) tea.Cmd {
	return func() tea.Msg { return SwitchTabMsg{Tab: t} }
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return tea.Batch(
		a.currentView().Init(),
		a.Gallery.SetLoading(true),
		loadModelsCmd(a.Client),
	)
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// The orchestrator mutates its progress text on its own goroutine;
	// mirror it into the view on every pass.
	if a.Create.Busy {
		a.Create.Progress = a.Orchestrator.Progress()
	}

	switch msg := msg.(type) {
	case SwitchTabMsg:
		a.Tab = msg.Tab
		return a, a.currentView().Init()

	case ShowSlotPickerMsg:
		return a.handleShowSlotPicker(msg)
	case SlotImageChosenMsg:
		return a.handleSlotImageChosen(msg)
	case SlotLoadedMsg:
		return a.handleSlotLoaded(msg)
	case RemoveSlotMsg:
		a.Slots.Remove(msg.Viewpoint)
		return a, nil
	case ClearSlotsMsg:
		return a.handleClearSlots()
	case SubmitConversionMsg:
		return a.handleSubmitConversion()
	case ConversionFinishedMsg:
		return a.handleConversionFinished(msg)

	case ModelsLoadedMsg:
		return a.handleModelsLoaded(msg)
	case RefreshGalleryMsg:
		return a, tea.Batch(a.Gallery.SetLoading(true), loadModelsCmd(a.Client))
	case SelectModelMsg:
		return a.handleSelectModel(msg)
	case ShowEditModelMsg:
		return a.handleShowEditModel()
	case EditSubmittedMsg:
		return a.handleEditSubmitted(msg)
	case ModelUpdatedMsg:
		return a.handleModelUpdated(msg)
	case ShowDeleteModelMsg:
		return a.handleShowDeleteModel()
	case DeleteModelMsg:
		return a.handleDeleteModel(msg)
	case ModelDeletedMsg:
		return a.handleModelDeleted(msg)
	case OpenViewerMsg:
		return a.handleOpenViewer()
	case ViewerOpenedMsg:
		return a.handleViewerOpened(msg)
	case DownloadAssetMsg:
		return a.handleDownloadAsset()
	case AssetDownloadedMsg:
		return a.handleAssetDownloaded(msg)

	case DismissModalMsg:
		a.Overlays.Pop()
		return a, nil

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		// Both tabs need dimensions regardless of which is active.
		a.Create.Update(msg)
		a.Gallery.Update(msg)
		if cmd, ok := a.Overlays.UpdateTop(msg); ok {
			return a, cmd
		}
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	// Non-key messages (spinner ticks, blink) go to both tabs and the top
	// overlay so background spinners keep moving.
	_, createCmd := a.Create.Update(msg)
	_, galleryCmd := a.Gallery.Update(msg)
	overlayCmd, _ := a.Overlays.UpdateTop(msg)
	return a, tea.Batch(createCmd, galleryCmd, overlayCmd)
}

func (a *appModelAdapter) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Modals swallow all keys; Esc (or the overlay's dismiss key) closes.
	if top, ok := a.Overlays.Peek(); ok {
		if top.IsDismissKey(msg.String()) {
			a.Overlays.Pop()
			return a, nil
		}
		cmd, _ := a.Overlays.UpdateTop(msg)
		return a, cmd
	}

	// Free-text entry gets the raw keys, leader key included.
	if a.Tab == TabCreate && a.Create.NameFocused() {
		v, cmd := a.Create.Update(msg)
		if c, ok := v.(*CreateView); ok {
			a.Create = c
		}
		return a, cmd
	}

	if a.KeyHandler != nil {
		if consumed, keyCmd := a.KeyHandler.Handle(msg); consumed {
			return a, keyCmd
		}
	}

	if msg.String() == "tab" {
		if a.Tab == TabCreate {
			return a, switchTabCmd(TabGallery)
		}
		return a, switchTabCmd(TabCreate)
	}

	v, cmd := a.currentView().Update(msg)
	a.setCurrentView(v)
	return a, cmd
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	base := a.renderTabBar() + "\n" + a.currentView().View()
	base += "\n" + formatAssetLine(displayAssetURL(a.Result, a.Gallery.SelectedModel()))
	if a.Status != "" {
		if a.StatusIsError {
			base += "\n" + Styles.Error.Render(a.Status)
		} else {
			base += "\n" + Styles.Status.Render(a.Status)
		}
	}
	if a.KeyHandler != nil && a.KeyHandler.LeaderWaiting {
		base += "\n" + RenderKeybindHelp(a.KeyHandler, a.Tab)
	}
	if top, ok := a.Overlays.Peek(); ok {
		modal := top.View.View()
		if a.width > 0 && a.height > 0 {
			return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, modal)
		}
		return base + "\n" + modal
	}
	return base
}

func (a *appModelAdapter) renderTabBar() string {
	render := func(t Tab) string {
		label := " " + t.String() + " "
		if t == a.Tab {
			return Styles.TabActive.Render(label)
		}
		return Styles.TabInactive.Render(label)
	}
	bar := render(TabCreate) + Styles.Muted.Render("│") + render(TabGallery)
	return bar + "  " + Styles.Hint.Render("Tab: switch  SPC: commands")
}

func (a *appModelAdapter) currentView() View {
	if a.Tab == TabGallery {
		return a.Gallery
	}
	return a.Create
}

func (a *appModelAdapter) setCurrentView(v View) {
	switch a.Tab {
	case TabCreate:
		if c, ok := v.(*CreateView); ok {
			a.Create = c
		}
	case TabGallery:
		if g, ok := v.(*GalleryView); ok {
			a.Gallery = g
		}
	}
}

func (a *appModelAdapter) setStatus(msg string, isErr bool) {
	a.Status = msg
	a.StatusIsError = isErr
}
