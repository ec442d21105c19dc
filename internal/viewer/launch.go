package viewer

import (
	"context"
	"errors"
	"io"
	"os/exec"

	"github.com/creack/pty"
	"github.com/rs/zerolog"
)

// ErrNoViewer means no external viewer command is configured.
var ErrNoViewer = errors.New("no viewer command configured")

// Launcher starts the configured external viewer on a local asset file.
// Inside tmux the viewer gets its own pane; otherwise it runs in a detached
// PTY (viewer commands typically open their own window).
type Launcher struct {
	Command string
	Args    []string
	Log     zerolog.Logger
}

// Open launches the viewer on path. The call returns once the process is
// started; the viewer owns its own lifetime.
func (l *Launcher) Open(ctx context.Context, path string) error {
	if l.Command == "" {
		return ErrNoViewer
	}

	args := append(append([]string{}, l.Args...), path)

	if insideTmux() {
		paneID, err := splitPane(l.Command, args...)
		if err != nil {
			return err
		}
		l.Log.Debug().Str("pane", paneID).Str("asset", path).Msg("viewer opened in tmux pane")
		return nil
	}

	cmd := exec.CommandContext(ctx, l.Command, args...)
	f, err := pty.Start(cmd)
	if err != nil {
		return err
	}
	go func() {
		// Drain so the viewer never blocks on a full PTY buffer.
		_, _ = io.Copy(io.Discard, f)
		_ = f.Close()
		if err := cmd.Wait(); err != nil {
			l.Log.Debug().Err(err).Str("asset", path).Msg("viewer exited with error")
		}
	}()
	l.Log.Debug().Str("asset", path).Msg("viewer started")
	return nil
}
