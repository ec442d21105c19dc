package studio

import (
	"errors"
	"fmt"

	"turntable/internal/api"
)

// displayAssetURL derives the asset address to show: the active conversion
// result wins, then the selected gallery model, then nothing. Recomputed on
// every render and never stored, so it cannot drift from its sources.
func displayAssetURL(result *api.ConversionResult, selected *api.SavedModel) string {
	if result != nil && result.ModelURL != "" {
		return result.ModelURL
	}
	if selected != nil {
		return selected.ModelURL
	}
	return ""
}

var errNoAsset = errors.New("model has no asset")

// scenePreview builds the gallery detail preview for one saved model. It is
// meant to run inside viewer.Preview, which turns errors and panics into the
// fallback text.
func scenePreview(client *api.Client, model *api.SavedModel) (string, error) {
	if model == nil || model.ModelURL == "" {
		return "", errNoAsset
	}
	out := fmt.Sprintf("asset: %s", client.ResolveAssetURL(model.ModelURL))
	if model.ThumbnailURL != "" {
		out += fmt.Sprintf("\nthumbnail: %s", client.ResolveAssetURL(model.ThumbnailURL))
	}
	return out, nil
}
