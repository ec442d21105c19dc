// Package logging configures the app-wide zerolog logger. The terminal is
// owned by Bubble Tea, so log output goes to a file (or nowhere).
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New returns a logger writing to path, creating/appending the file as needed.
// An empty path discards all output. The returned closer is never nil; callers
// may defer Close unconditionally.
func New(environment, path string) (zerolog.Logger, io.Closer) {
	var (
		out    io.Writer = io.Discard
		closer io.Closer = nopCloser{}
	)
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err == nil {
			out = zerolog.ConsoleWriter{
				Out:        f,
				TimeFormat: time.RFC3339,
				NoColor:    true,
			}
			closer = f
		}
	}

	logger := zerolog.New(out).With().
		Timestamp().
		Str("env", environment).
		Logger()

	if environment != "production" {
		logger = logger.Level(zerolog.DebugLevel)
	} else {
		logger = logger.Level(zerolog.InfoLevel)
	}

	return logger, closer
}
