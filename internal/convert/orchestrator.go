// Package convert runs the upload/conversion lifecycle: validate the view
// slots, assemble the multipart payload, issue one request, and track the
// job state while the service works.
package convert

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"sync"

	"github.com/rs/zerolog"

	"turntable/internal/api"
	"turntable/internal/multiview"
)

// ErrFrontRequired blocks submission before any network call is made.
var ErrFrontRequired = errors.New("front view required")

// State is the lifecycle of one conversion attempt.
type State int

const (
	StateIdle State = iota
	StateSubmitting
	StateAwaitingRemote
	StateCompleted
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateSubmitting:
		return "Submitting"
	case StateAwaitingRemote:
		return "AwaitingRemote"
	case StateCompleted:
		return "Completed"
	case StateFailed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// Converter is the slice of the api client the orchestrator needs.
type Converter interface {
	Convert(ctx context.Context, body io.Reader, contentType string) (*api.ConversionResult, error)
}

// Orchestrator coordinates at most one conversion at a time. Submit runs on
// a background goroutine (a tea.Cmd) while the UI reads state, so all fields
// are mutex-guarded.
type Orchestrator struct {
	client Converter
	log    zerolog.Logger

	mu       sync.Mutex
	state    State
	progress string
	errText  string
}

// NewOrchestrator creates an idle orchestrator.
func NewOrchestrator(client Converter, log zerolog.Logger) *Orchestrator {
	return &Orchestrator{client: client, log: log, state: StateIdle}
}

// State returns the current job state.
func (o *Orchestrator) State() State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

// InFlight reports whether a submission is currently running. The UI must
// not trigger another submission while this is true.
func (o *Orchestrator) InFlight() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state == StateSubmitting || o.state == StateAwaitingRemote
}

// Progress returns the progress text, e.g. "Processing 3 view(s)..." while
// the service is working, and "" otherwise.
func (o *Orchestrator) Progress() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.progress
}

// ErrText returns the last failure message, cleared on the next submission.
func (o *Orchestrator) ErrText() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.errText
}

// Submit converts the given slots. The front view is required; the other
// three are optional. Exactly one request is issued per call and no retry is
// attempted. A second call while one is in flight is rejected. When calling
// from another goroutine, pass a Snapshot so the store can keep changing
// underneath.
func (o *Orchestrator) Submit(ctx context.Context, slots *multiview.Slots, name string) (*api.ConversionResult, error) {
	if !slots.HasFront() {
		return nil, ErrFrontRequired
	}

	o.mu.Lock()
	if o.state == StateSubmitting || o.state == StateAwaitingRemote {
		o.mu.Unlock()
		return nil, errors.New("a conversion is already in flight")
	}
	o.state = StateSubmitting
	o.errText = ""
	views := slots.Count()
	o.mu.Unlock()

	body, contentType, err := buildPayload(slots, name)
	if err != nil {
		o.fail(fmt.Sprintf("prepare upload: %v", err))
		return nil, err
	}

	o.mu.Lock()
	o.state = StateAwaitingRemote
	o.progress = fmt.Sprintf("Processing %d view(s)...", views)
	o.mu.Unlock()

	result, err := o.client.Convert(ctx, body, contentType)
	if err != nil {
		msg := api.GenericConvertError
		var re *api.RemoteError
		if errors.As(err, &re) && re.Detail != "" {
			msg = re.Detail
		} else if err.Error() != "" {
			msg = err.Error()
		}
		o.log.Error().Err(err).Int("views", views).Msg("conversion failed")
		o.fail(msg)
		return nil, err
	}

	o.mu.Lock()
	o.state = StateCompleted
	o.progress = ""
	o.mu.Unlock()
	o.log.Info().Str("job_id", result.JobID).Int("views", views).Msg("conversion completed")
	return result, nil
}

func (o *Orchestrator) fail(msg string) {
	o.mu.Lock()
	o.state = StateFailed
	o.progress = ""
	o.errText = msg
	o.mu.Unlock()
}

// buildPayload assembles the multipart form: one file field per non-empty
// slot, named after its viewpoint, plus an optional name field.
func buildPayload(slots *multiview.Slots, name string) (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for _, vp := range multiview.Viewpoints() {
		img := slots.Get(vp)
		if img == nil {
			continue
		}
		hdr := make(textproto.MIMEHeader)
		hdr.Set("Content-Disposition",
			fmt.Sprintf(`form-data; name=%q; filename=%q`, string(vp), img.Name))
		if img.MIME != "" {
			hdr.Set("Content-Type", img.MIME)
		}
		part, err := w.CreatePart(hdr)
		if err != nil {
			return nil, "", fmt.Errorf("create part %s: %w", vp, err)
		}
		if _, err := part.Write(img.Data); err != nil {
			return nil, "", fmt.Errorf("write part %s: %w", vp, err)
		}
	}
	if name != "" {
		if err := w.WriteField("name", name); err != nil {
			return nil, "", fmt.Errorf("write name field: %w", err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("finish payload: %w", err)
	}
	return &buf, w.FormDataContentType(), nil
}
