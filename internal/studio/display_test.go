package studio

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"turntable/internal/api"
	"turntable/internal/viewer"
)

func TestDisplayAssetURL(t *testing.T) {
	result := &api.ConversionResult{ModelURL: "https://cdn.example.com/new.glb"}
	selected := &api.SavedModel{ModelURL: "https://cdn.example.com/old.glb"}

	assert.Equal(t, "https://cdn.example.com/new.glb", displayAssetURL(result, selected),
		"a fresh conversion result wins over the selection")
	assert.Equal(t, "https://cdn.example.com/old.glb", displayAssetURL(nil, selected))
	assert.Equal(t, "", displayAssetURL(nil, nil))
	assert.Equal(t, "https://cdn.example.com/old.glb",
		displayAssetURL(&api.ConversionResult{}, selected),
		"a result without an asset falls through to the selection")
}

func TestScenePreviewThroughBoundary(t *testing.T) {
	client := api.New("http://localhost:8080")

	model := &api.SavedModel{
		ModelURL:     "https://cdn.example.com/chair.glb",
		ThumbnailURL: "/thumbs/chair.png",
	}
	out := viewer.Preview(func() (string, error) {
		return scenePreview(client, model)
	}, viewer.Fallback)
	assert.Contains(t, out, "proxy-glb", "remote asset addresses go through the proxy")
	assert.Contains(t, out, "/thumbs/chair.png")

	out = viewer.Preview(func() (string, error) {
		return scenePreview(client, &api.SavedModel{})
	}, viewer.Fallback)
	assert.Equal(t, viewer.Fallback, out, "a model without an asset renders the fallback")
}
