package studio

import (
	tea "github.com/charmbracelet/bubbletea"

	"turntable/internal/convert"
)

// Create-tab message handlers: slot picking, slot loading, and the
// conversion lifecycle.

func (a *appModelAdapter) handleShowSlotPicker(msg ShowSlotPickerMsg) (tea.Model, tea.Cmd) {
	modal := NewSlotPickerModal(msg.Viewpoint)
	a.Overlays.Push(Overlay{View: modal, Dismiss: "esc"})
	return a, modal.Init()
}

func (a *appModelAdapter) handleSlotImageChosen(msg SlotImageChosenMsg) (tea.Model, tea.Cmd) {
	a.Overlays.Pop()
	return a, loadSlotImageCmd(msg.Viewpoint, msg.Path)
}

func (a *appModelAdapter) handleSlotLoaded(msg SlotLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		a.setStatus(msg.Err.Error(), true)
		return a, nil
	}
	a.Slots.Set(msg.Viewpoint, msg.Image)
	a.setStatus(string(msg.Viewpoint)+" view set", false)
	return a, nil
}

func (a *appModelAdapter) handleClearSlots() (tea.Model, tea.Cmd) {
	a.Slots.ClearAll()
	a.Result = nil
	a.Create.Result = nil
	a.Create.ErrText = ""
	return a, nil
}

func (a *appModelAdapter) handleSubmitConversion() (tea.Model, tea.Cmd) {
	if a.Create.Busy || a.Orchestrator.InFlight() {
		a.setStatus("a conversion is already running", true)
		return a, nil
	}
	if !a.Slots.HasFront() {
		a.Create.ErrText = "front view is required"
		return a, nil
	}
	a.Create.ErrText = ""
	a.setStatus("", false)
	name := a.Create.NameInput.Value()
	// Snapshot here, on the UI goroutine: the user can keep editing slots
	// while the submit command reads its copy.
	return a, tea.Batch(
		a.Create.SetBusy(true),
		submitConversionCmd(a.Orchestrator, a.Slots.Snapshot(), name),
	)
}

func (a *appModelAdapter) handleConversionFinished(msg ConversionFinishedMsg) (tea.Model, tea.Cmd) {
	busyCmd := a.Create.SetBusy(false)
	if msg.Err != nil {
		if msg.Err == convert.ErrFrontRequired {
			a.Create.ErrText = "front view is required"
		} else {
			a.Create.ErrText = msg.Err.Error()
		}
		a.Log.Error().Err(msg.Err).Msg("conversion failed")
		return a, busyCmd
	}
	a.Result = msg.Result
	a.Create.Result = msg.Result
	a.setStatus("conversion complete", false)
	// Exactly one gallery refresh per successful conversion.
	return a, tea.Batch(busyCmd, a.Gallery.SetLoading(true), loadModelsCmd(a.Client))
}
