package viewer

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// insideTmux reports whether we are running inside a tmux session.
func insideTmux() bool {
	return os.Getenv("TMUX") != ""
}

// splitPane opens a new tmux pane running the given command and returns the
// pane ID (e.g. %4). The pane closes when the command exits.
func splitPane(command string, args ...string) (string, error) {
	tmuxArgs := append([]string{"split-window", "-h", "-P", "-F", "#{pane_id}", command}, args...)
	cmd := exec.Command("tmux", tmuxArgs...)
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("tmux split-window: %w: %s", err, strings.TrimSpace(out.String()))
	}
	return strings.TrimSpace(out.String()), nil
}
