package studio

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"turntable/internal/api"
	"turntable/internal/multiview"
	"turntable/internal/viewer"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// drain executes a command tree and returns every message it produced.
func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, drain(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

func newTestApp(baseURL string) (*AppModel, *appModelAdapter) {
	client := api.New(baseURL)
	a := NewAppModel(client, &viewer.Launcher{Log: zerolog.Nop()}, "", zerolog.Nop())
	return a, &appModelAdapter{AppModel: a}
}

func modelListServer(t *testing.T, models []api.SavedModel, hits *int) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet && r.URL.Path == "/api/models" {
			if hits != nil {
				*hits++
			}
			json.NewEncoder(w).Encode(map[string]any{"models": models})
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestTabKeyTogglesTabs(t *testing.T) {
	a, adapter := newTestApp("http://localhost:0")

	_, cmd := adapter.Update(keyMsg("tab"))
	require.NotNil(t, cmd)
	for _, msg := range drain(cmd) {
		adapter.Update(msg)
	}
	assert.Equal(t, TabGallery, a.Tab)

	_, cmd = adapter.Update(keyMsg("tab"))
	for _, msg := range drain(cmd) {
		adapter.Update(msg)
	}
	assert.Equal(t, TabCreate, a.Tab)
}

func TestLeaderKeySwitchesToGallery(t *testing.T) {
	a, adapter := newTestApp("http://localhost:0")

	adapter.Update(keyMsg(" "))
	require.True(t, a.KeyHandler.LeaderWaiting)
	_, cmd := adapter.Update(keyMsg("g"))
	require.NotNil(t, cmd)
	for _, msg := range drain(cmd) {
		adapter.Update(msg)
	}
	assert.Equal(t, TabGallery, a.Tab)
}

func TestSubmitRequiresFrontView(t *testing.T) {
	a, adapter := newTestApp("http://localhost:0")

	_, cmd := adapter.Update(SubmitConversionMsg{})
	assert.Nil(t, cmd)
	assert.Contains(t, a.Create.ErrText, "front")
	assert.False(t, a.Create.Busy)
}

func TestSubmitRejectedWhileBusy(t *testing.T) {
	a, adapter := newTestApp("http://localhost:0")
	a.Create.Busy = true

	_, cmd := adapter.Update(SubmitConversionMsg{})
	assert.Nil(t, cmd)
	assert.True(t, a.StatusIsError)
}

func TestSubmitUsesSlotSnapshot(t *testing.T) {
	var fields []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/convert-multiview" {
			json.NewEncoder(w).Encode(map[string]any{"models": []api.SavedModel{}})
			return
		}
		require.NoError(t, r.ParseMultipartForm(32<<20))
		for field := range r.MultipartForm.File {
			fields = append(fields, field)
		}
		json.NewEncoder(w).Encode(api.ConversionResult{JobID: "j1", ModelURL: "/files/j1.glb"})
	}))
	t.Cleanup(srv.Close)

	a, adapter := newTestApp(srv.URL)
	a.Slots.Set(multiview.Front, &multiview.Image{Name: "f.png", MIME: "image/png", Data: []byte{1}})

	_, cmd := adapter.Update(SubmitConversionMsg{})
	require.NotNil(t, cmd)

	// Slot edits after dispatch must not touch the submission payload.
	a.Slots.ClearAll()

	for _, msg := range drain(cmd) {
		adapter.Update(msg)
	}
	assert.Equal(t, []string{"front"}, fields)
	assert.Empty(t, a.Create.ErrText)
}

func TestConversionSuccessRefreshesGalleryOnce(t *testing.T) {
	hits := 0
	srv := modelListServer(t, []api.SavedModel{{ID: "m1", Name: "chair"}}, &hits)
	a, adapter := newTestApp(srv.URL)

	result := &api.ConversionResult{JobID: "j1", ModelID: "m1", ModelURL: "https://cdn.example.com/m1.glb"}
	_, cmd := adapter.Update(ConversionFinishedMsg{Result: result})

	loads := 0
	for _, msg := range drain(cmd) {
		if _, ok := msg.(ModelsLoadedMsg); ok {
			loads++
		}
		adapter.Update(msg)
	}
	assert.Equal(t, 1, loads)
	assert.Equal(t, 1, hits)
	assert.False(t, a.Create.Busy)
	require.NotNil(t, a.Result)
	assert.Equal(t, "j1", a.Result.JobID)
	assert.Len(t, a.Gallery.Models, 1)
}

func TestConversionFailureShowsDetailWithoutRefresh(t *testing.T) {
	a, adapter := newTestApp("http://localhost:0")

	_, cmd := adapter.Update(ConversionFinishedMsg{
		Err: &api.RemoteError{Status: 402, Detail: "quota exceeded"},
	})
	assert.Equal(t, "quota exceeded", a.Create.ErrText)
	assert.Nil(t, a.Result)
	for _, msg := range drain(cmd) {
		_, isLoad := msg.(ModelsLoadedMsg)
		assert.False(t, isLoad, "failed conversion must not refresh the gallery")
	}
}

func TestGalleryReadFailureKeepsSnapshot(t *testing.T) {
	a, adapter := newTestApp("http://localhost:0")
	adapter.Update(ModelsLoadedMsg{Models: []api.SavedModel{{ID: "m1", Name: "chair"}}})
	require.Len(t, a.Gallery.Models, 1)

	adapter.Update(ModelsLoadedMsg{Err: errors.New("connection refused")})
	assert.Len(t, a.Gallery.Models, 1, "previous snapshot must survive a failed read")
	assert.False(t, a.StatusIsError, "gallery read failures stay silent")
}

func TestDeleteSelectedModelClearsSelection(t *testing.T) {
	a, adapter := newTestApp("http://localhost:0")
	adapter.Update(ModelsLoadedMsg{Models: []api.SavedModel{
		{ID: "m1", Name: "chair"},
		{ID: "m2", Name: "lamp"},
	}})
	a.Gallery.Selected = "m1"
	a.Gallery.PreviewText = "asset: x"

	adapter.Update(ModelDeletedMsg{ID: "m2"})
	assert.Equal(t, "m1", a.Gallery.Selected, "deleting another model keeps the selection")

	adapter.Update(ModelDeletedMsg{ID: "m1"})
	assert.Empty(t, a.Gallery.Selected)
	assert.Empty(t, a.Gallery.PreviewText)
}

func TestEditExitsBeforeSaveOutcome(t *testing.T) {
	a, adapter := newTestApp("http://localhost:0")
	adapter.Update(ModelsLoadedMsg{Models: []api.SavedModel{{ID: "m1", Name: "chair"}}})

	adapter.Update(ShowEditModelMsg{})
	require.Equal(t, 1, a.Overlays.Len())
	top, _ := a.Overlays.Peek()
	_, ok := top.View.(*EditModelModal)
	require.True(t, ok)

	adapter.Update(EditSubmittedMsg{ID: "m1", Name: "stool", Description: "low"})
	assert.Equal(t, 0, a.Overlays.Len(), "edit mode ends as soon as the form is submitted")

	adapter.Update(ModelUpdatedMsg{ID: "m1", Err: errors.New("boom")})
	assert.Equal(t, 0, a.Overlays.Len())
	assert.True(t, a.StatusIsError)
}

func TestDeleteConfirmationFlow(t *testing.T) {
	a, adapter := newTestApp("http://localhost:0")
	adapter.Update(ModelsLoadedMsg{Models: []api.SavedModel{{ID: "m1", Name: "chair"}}})

	adapter.Update(ShowDeleteModelMsg{})
	require.Equal(t, 1, a.Overlays.Len())

	// Esc backs out without deleting.
	adapter.Update(keyMsg("esc"))
	assert.Equal(t, 0, a.Overlays.Len())
}

func TestSelectingModelSupersedesConversionResult(t *testing.T) {
	a, adapter := newTestApp("http://localhost:0")
	a.Result = &api.ConversionResult{ModelURL: "https://cdn.example.com/fresh.glb"}
	adapter.Update(ModelsLoadedMsg{Models: []api.SavedModel{
		{ID: "m1", Name: "chair", ModelURL: "https://cdn.example.com/chair.glb"},
	}})

	adapter.Update(SelectModelMsg{ID: "m1"})
	assert.Nil(t, a.Result)
	assert.Equal(t, "https://cdn.example.com/chair.glb",
		displayAssetURL(a.Result, a.Gallery.SelectedModel()))
}

func TestViewerFailureShowsFallbackText(t *testing.T) {
	a, adapter := newTestApp("http://localhost:0")

	adapter.Update(ViewerOpenedMsg{Err: errors.New("exec: not found")})
	assert.Equal(t, viewer.Fallback, a.Status)
	assert.True(t, a.StatusIsError)
}

func TestOpenViewerWithNoAsset(t *testing.T) {
	a, adapter := newTestApp("http://localhost:0")

	_, cmd := adapter.Update(OpenViewerMsg{})
	assert.Nil(t, cmd)
	assert.True(t, a.StatusIsError)
}

func TestModalSwallowsViewKeys(t *testing.T) {
	a, adapter := newTestApp("http://localhost:0")
	adapter.Update(ModelsLoadedMsg{Models: []api.SavedModel{{ID: "m1", Name: "chair"}}})
	a.Tab = TabGallery
	adapter.Update(ShowDeleteModelMsg{})
	require.Equal(t, 1, a.Overlays.Len())

	// "d" would open another confirm if it reached the gallery.
	adapter.Update(keyMsg("d"))
	assert.Equal(t, 1, a.Overlays.Len())
}
