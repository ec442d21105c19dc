package studio

import (
	"context"
	"os"
	"path"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"turntable/internal/api"
	"turntable/internal/convert"
	"turntable/internal/multiview"
	"turntable/internal/viewer"
)

// loadModelsCmd returns a command that fetches the gallery snapshot.
func loadModelsCmd(client *api.Client) tea.Cmd {
	return func() tea.Msg {
		models, err := client.List(context.Background())
		return ModelsLoadedMsg{Models: models, Err: err}
	}
}

// loadSlotImageCmd reads a picked file off the UI goroutine.
func loadSlotImageCmd(vp multiview.Viewpoint, filePath string) tea.Cmd {
	return func() tea.Msg {
		img, err := multiview.LoadImage(filePath)
		return SlotLoadedMsg{Viewpoint: vp, Image: img, Err: err}
	}
}

// submitConversionCmd runs one conversion attempt. The orchestrator tracks
// the job state; the view polls its progress text while this runs. Pass a
// slot snapshot, not the live store: this runs off the UI goroutine.
func submitConversionCmd(orch *convert.Orchestrator, slots *multiview.Slots, name string) tea.Cmd {
	return func() tea.Msg {
		result, err := orch.Submit(context.Background(), slots, name)
		return ConversionFinishedMsg{Result: result, Err: err}
	}
}

// updateModelCmd issues one update round-trip.
func updateModelCmd(client *api.Client, id, name, description string) tea.Cmd {
	return func() tea.Msg {
		err := client.Update(context.Background(), id, name, description)
		return ModelUpdatedMsg{ID: id, Err: err}
	}
}

// deleteModelCmd issues one delete round-trip.
func deleteModelCmd(client *api.Client, id string) tea.Cmd {
	return func() tea.Msg {
		err := client.Delete(context.Background(), id)
		return ModelDeletedMsg{ID: id, Err: err}
	}
}

// openViewerCmd downloads the asset to a temp file and hands it to the
// external viewer.
func openViewerCmd(client *api.Client, launcher *viewer.Launcher, rawURL string) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		tmp, err := os.CreateTemp("", "turntable-*"+assetExt(rawURL))
		if err != nil {
			return ViewerOpenedMsg{Err: err}
		}
		if err := client.DownloadAsset(ctx, rawURL, tmp); err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
			return ViewerOpenedMsg{Err: err}
		}
		if err := tmp.Close(); err != nil {
			return ViewerOpenedMsg{Err: err}
		}
		return ViewerOpenedMsg{Err: launcher.Open(ctx, tmp.Name())}
	}
}

// downloadAssetCmd saves the asset under dir, named after the asset path.
func downloadAssetCmd(client *api.Client, dir, rawURL string) tea.Cmd {
	return func() tea.Msg {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return AssetDownloadedMsg{Err: err}
		}
		dest := filepath.Join(dir, assetFileName(rawURL))
		f, err := os.Create(dest)
		if err != nil {
			return AssetDownloadedMsg{Err: err}
		}
		if err := client.DownloadAsset(context.Background(), rawURL, f); err != nil {
			f.Close()
			os.Remove(dest)
			return AssetDownloadedMsg{Err: err}
		}
		if err := f.Close(); err != nil {
			return AssetDownloadedMsg{Err: err}
		}
		return AssetDownloadedMsg{Path: dest}
	}
}

// assetFileName derives a local file name from an asset address.
func assetFileName(rawURL string) string {
	trimmed := rawURL
	if i := strings.IndexAny(trimmed, "?#"); i >= 0 {
		trimmed = trimmed[:i]
	}
	name := path.Base(trimmed)
	if name == "" || name == "." || name == "/" {
		name = "model.glb"
	}
	if path.Ext(name) == "" {
		name += ".glb"
	}
	return name
}

// assetExt returns the asset's file extension, defaulting to .glb.
func assetExt(rawURL string) string {
	if ext := path.Ext(assetFileName(rawURL)); ext != "" {
		return ext
	}
	return ".glb"
}

// formatAssetLine renders the "currently displayed asset" line shared by
// both tabs.
func formatAssetLine(addr string) string {
	if addr == "" {
		return Styles.Empty.Render("no asset to display")
	}
	return Styles.Status.Render("asset: ") + Styles.Normal.Render(addr)
}
