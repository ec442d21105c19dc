package studio

import (
	"turntable/internal/api"
	"turntable/internal/multiview"
)

// SwitchTabMsg activates the given tab.
type SwitchTabMsg struct {
	Tab Tab
}

// ShowSlotPickerMsg opens the file picker modal for one viewpoint slot.
type ShowSlotPickerMsg struct {
	Viewpoint multiview.Viewpoint
}

// SlotImageChosenMsg is sent when the user picks a file for a slot.
type SlotImageChosenMsg struct {
	Viewpoint multiview.Viewpoint
	Path      string
}

// SlotLoadedMsg carries the loaded image payload (or the load failure).
type SlotLoadedMsg struct {
	Viewpoint multiview.Viewpoint
	Image     *multiview.Image
	Err       error
}

// RemoveSlotMsg empties one viewpoint slot.
type RemoveSlotMsg struct {
	Viewpoint multiview.Viewpoint
}

// ClearSlotsMsg resets all slots plus any conversion result/error.
type ClearSlotsMsg struct{}

// SubmitConversionMsg triggers a conversion of the current slots.
type SubmitConversionMsg struct{}

// ConversionFinishedMsg delivers the outcome of a conversion attempt.
type ConversionFinishedMsg struct {
	Result *api.ConversionResult
	Err    error
}

// ModelsLoadedMsg delivers a gallery refresh. On error the previous snapshot
// is kept; list failures are never surfaced to the user.
type ModelsLoadedMsg struct {
	Models []api.SavedModel
	Err    error
}

// RefreshGalleryMsg triggers a fresh list request.
type RefreshGalleryMsg struct{}

// SelectModelMsg marks a gallery model as the selected one.
type SelectModelMsg struct {
	ID string
}

// ShowEditModelMsg opens the edit modal for the selected model.
type ShowEditModelMsg struct{}

// EditSubmittedMsg is sent when the user confirms the edit form. Edit mode
// exits as soon as this is handled, before the request outcome is known.
type EditSubmittedMsg struct {
	ID          string
	Name        string
	Description string
}

// ModelUpdatedMsg delivers the outcome of an update request.
type ModelUpdatedMsg struct {
	ID  string
	Err error
}

// ShowDeleteModelMsg opens the delete confirmation for the selected model.
type ShowDeleteModelMsg struct{}

// DeleteModelMsg is sent when the user confirms deletion.
type DeleteModelMsg struct {
	ID string
}

// ModelDeletedMsg delivers the outcome of a delete request.
type ModelDeletedMsg struct {
	ID  string
	Err error
}

// OpenViewerMsg opens the currently displayed asset in the external viewer.
type OpenViewerMsg struct{}

// ViewerOpenedMsg reports whether the external viewer could be started.
type ViewerOpenedMsg struct {
	Err error
}

// DownloadAssetMsg saves the currently displayed asset to the download dir.
type DownloadAssetMsg struct{}

// AssetDownloadedMsg reports where the asset was written.
type AssetDownloadedMsg struct {
	Path string
	Err  error
}

// DismissModalMsg is sent when the user cancels a modal (Esc).
type DismissModalMsg struct{}
