// Package api is the client for the model registry and conversion service.
// Every operation is a single request/response round-trip; callers decide
// what to do with failures (the gallery read path swallows them, the
// conversion path surfaces them).
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// Client talks to the backing service. Zero-value is not usable; use New.
type Client struct {
	baseURL string
	http    *http.Client
	log     zerolog.Logger
	tracer  oteltrace.Tracer
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithLogger attaches a logger for request failures.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) { c.log = log }
}

// WithTracer enables a span per operation.
func WithTracer(t oteltrace.Tracer) Option {
	return func(c *Client) { c.tracer = t }
}

// DefaultHTTPClient builds the standard client with an overall timeout.
// Conversions can run for minutes, so pick the timeout accordingly.
func DefaultHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

// New creates a client for the service at baseURL (no trailing slash needed).
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 120 * time.Second},
		log:     zerolog.Nop(),
		tracer:  noop.NewTracerProvider().Tracer("api"),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// BaseURL returns the configured service base URL.
func (c *Client) BaseURL() string { return c.baseURL }

// List fetches all saved models in service order. No local re-sorting.
func (c *Client) List(ctx context.Context) ([]SavedModel, error) {
	ctx, span := c.tracer.Start(ctx, "api.List")
	defer span.End()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/models", nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error().Err(err).Msg("list models failed")
		return nil, fmt.Errorf("list models: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		re := remoteErrorFrom(resp)
		c.log.Error().Int("status", re.Status).Msg("list models rejected")
		return nil, re
	}

	var lr listModelsResponse
	if err := json.NewDecoder(resp.Body).Decode(&lr); err != nil {
		return nil, fmt.Errorf("decode models: %w", err)
	}
	return lr.Models, nil
}

// Update replaces the display name and description of one model.
func (c *Client) Update(ctx context.Context, id, name, description string) error {
	ctx, span := c.tracer.Start(ctx, "api.Update",
		oteltrace.WithAttributes(attribute.String("model.id", id)))
	defer span.End()

	payload, err := json.Marshal(updateModelRequest{Name: name, Description: description})
	if err != nil {
		return fmt.Errorf("encode update: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut,
		c.baseURL+"/api/models/"+id, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error().Err(err).Str("model_id", id).Msg("update model failed")
		return fmt.Errorf("update model: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		re := remoteErrorFrom(resp)
		c.log.Error().Int("status", re.Status).Str("model_id", id).Msg("update model rejected")
		return re
	}
	return nil
}

// Delete removes one model. Confirmation is the caller's responsibility.
func (c *Client) Delete(ctx context.Context, id string) error {
	ctx, span := c.tracer.Start(ctx, "api.Delete",
		oteltrace.WithAttributes(attribute.String("model.id", id)))
	defer span.End()

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+"/api/models/"+id, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error().Err(err).Str("model_id", id).Msg("delete model failed")
		return fmt.Errorf("delete model: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		re := remoteErrorFrom(resp)
		c.log.Error().Int("status", re.Status).Str("model_id", id).Msg("delete model rejected")
		return re
	}
	return nil
}

// Convert POSTs a prepared multipart body to the conversion endpoint.
// contentType must be the multipart writer's FormDataContentType.
func (c *Client) Convert(ctx context.Context, body io.Reader, contentType string) (*ConversionResult, error) {
	ctx, span := c.tracer.Start(ctx, "api.Convert")
	defer span.End()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/api/convert-multiview", body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error().Err(err).Msg("convert request failed")
		return nil, fmt.Errorf("convert: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		re := remoteErrorFrom(resp)
		c.log.Error().Int("status", re.Status).Str("detail", re.Detail).Msg("convert rejected")
		return nil, re
	}

	var result ConversionResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode conversion result: %w", err)
	}
	return &result, nil
}

// DownloadAsset streams the binary asset at rawURL to w, routing remote URLs
// through the same-origin proxy.
func (c *Client) DownloadAsset(ctx context.Context, rawURL string, w io.Writer) error {
	ctx, span := c.tracer.Start(ctx, "api.DownloadAsset")
	defer span.End()

	addr := c.absoluteAssetURL(c.ResolveAssetURL(rawURL))
	if addr == "" {
		return fmt.Errorf("no asset address")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error().Err(err).Str("url", addr).Msg("asset download failed")
		return fmt.Errorf("download asset: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return remoteErrorFrom(resp)
	}

	if _, err := io.Copy(w, resp.Body); err != nil {
		return fmt.Errorf("write asset: %w", err)
	}
	return nil
}
