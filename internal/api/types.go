package api

import "time"

// SavedModel is a persisted conversion owned by the backing service.
type SavedModel struct {
	ID           string            `json:"id"`
	JobID        string            `json:"job_id"`
	Name         string            `json:"name"`
	Description  string            `json:"description,omitempty"`
	ModelURL     string            `json:"model_url"`
	ThumbnailURL string            `json:"thumbnail_url,omitempty"`
	Views        map[string]string `json:"views,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
}

// ConversionResult is the convert endpoint's success payload. Immutable once
// received. ModelID is set when the service also saved the model; the record
// shows up in the gallery after the next refresh.
type ConversionResult struct {
	JobID        string `json:"job_id"`
	ModelID      string `json:"model_id,omitempty"`
	ModelURL     string `json:"model_url"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
}

type listModelsResponse struct {
	Models []SavedModel `json:"models"`
}

type updateModelRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type errorResponse struct {
	Detail string `json:"detail"`
}
