package studio

import (
	tea "github.com/charmbracelet/bubbletea"

	"turntable/internal/viewer"
)

// Gallery-tab message handlers: listing, selection, edit, delete, and the
// viewer/download actions on the displayed asset.

func (a *appModelAdapter) handleModelsLoaded(msg ModelsLoadedMsg) (tea.Model, tea.Cmd) {
	a.Gallery.SetLoading(false)
	if msg.Err != nil {
		// Keep the previous snapshot on read failure.
		a.Log.Error().Err(msg.Err).Msg("loading models failed")
		return a, nil
	}
	a.Gallery.SetModels(msg.Models)
	return a, nil
}

func (a *appModelAdapter) handleSelectModel(msg SelectModelMsg) (tea.Model, tea.Cmd) {
	a.Gallery.Selected = msg.ID
	// A new selection supersedes any conversion result on display.
	a.Result = nil
	a.Create.Result = nil
	a.refreshPreview()
	return a, nil
}

func (a *appModelAdapter) handleShowEditModel() (tea.Model, tea.Cmd) {
	model := a.Gallery.CursorModel()
	if model == nil {
		return a, nil
	}
	modal := NewEditModelModal(model.ID, model.Name, model.Description)
	a.Overlays.Push(Overlay{View: modal, Dismiss: "esc"})
	return a, modal.Init()
}

func (a *appModelAdapter) handleEditSubmitted(msg EditSubmittedMsg) (tea.Model, tea.Cmd) {
	// Edit mode ends now; the save outcome arrives later as ModelUpdatedMsg.
	a.Overlays.Pop()
	return a, updateModelCmd(a.Client, msg.ID, msg.Name, msg.Description)
}

func (a *appModelAdapter) handleModelUpdated(msg ModelUpdatedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		a.setStatus("update failed: "+msg.Err.Error(), true)
	} else {
		a.setStatus("model updated", false)
	}
	return a, tea.Batch(a.Gallery.SetLoading(true), loadModelsCmd(a.Client))
}

func (a *appModelAdapter) handleShowDeleteModel() (tea.Model, tea.Cmd) {
	model := a.Gallery.CursorModel()
	if model == nil {
		return a, nil
	}
	modal := NewDeleteModelConfirmModal(model.ID, model.Name)
	a.Overlays.Push(Overlay{View: modal, Dismiss: "esc"})
	return a, modal.Init()
}

func (a *appModelAdapter) handleDeleteModel(msg DeleteModelMsg) (tea.Model, tea.Cmd) {
	a.Overlays.Pop()
	return a, deleteModelCmd(a.Client, msg.ID)
}

func (a *appModelAdapter) handleModelDeleted(msg ModelDeletedMsg) (tea.Model, tea.Cmd) {
	if msg.ID == a.Gallery.Selected {
		a.Gallery.Selected = ""
		a.Gallery.PreviewText = ""
	}
	if msg.Err != nil {
		a.setStatus("delete failed: "+msg.Err.Error(), true)
	} else {
		a.setStatus("model deleted", false)
	}
	return a, tea.Batch(a.Gallery.SetLoading(true), loadModelsCmd(a.Client))
}

func (a *appModelAdapter) handleOpenViewer() (tea.Model, tea.Cmd) {
	addr := displayAssetURL(a.Result, a.Gallery.SelectedModel())
	if addr == "" {
		a.setStatus("nothing to view yet", true)
		return a, nil
	}
	a.setStatus("opening viewer...", false)
	return a, openViewerCmd(a.Client, a.Launcher, addr)
}

func (a *appModelAdapter) handleViewerOpened(msg ViewerOpenedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		a.Log.Error().Err(msg.Err).Msg("viewer failed")
		a.setStatus(viewer.Fallback, true)
		return a, nil
	}
	a.setStatus("viewer closed", false)
	return a, nil
}

func (a *appModelAdapter) handleDownloadAsset() (tea.Model, tea.Cmd) {
	addr := displayAssetURL(a.Result, a.Gallery.SelectedModel())
	if addr == "" {
		a.setStatus("nothing to download yet", true)
		return a, nil
	}
	a.setStatus("downloading...", false)
	return a, downloadAssetCmd(a.Client, a.DownloadDir, addr)
}

func (a *appModelAdapter) handleAssetDownloaded(msg AssetDownloadedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		a.setStatus("download failed: "+msg.Err.Error(), true)
		return a, nil
	}
	a.setStatus("saved to "+msg.Path, false)
	return a, nil
}

// refreshPreview recomputes the gallery detail preview for the current
// selection. Rendering goes through viewer.Preview so a bad asset never
// takes the whole screen down.
func (a *appModelAdapter) refreshPreview() {
	model := a.Gallery.SelectedModel()
	if model == nil {
		a.Gallery.PreviewText = ""
		return
	}
	a.Gallery.PreviewText = viewer.Preview(func() (string, error) {
		return scenePreview(a.Client, model)
	}, viewer.Fallback)
}
