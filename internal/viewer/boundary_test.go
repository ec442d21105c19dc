package viewer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPreview_PassesThroughRenderOutput(t *testing.T) {
	out := Preview(func() (string, error) {
		return "scene: 1 mesh, 2 materials", nil
	}, Fallback)
	assert.Equal(t, "scene: 1 mesh, 2 materials", out)
}

func TestPreview_ErrorBecomesFallback(t *testing.T) {
	out := Preview(func() (string, error) {
		return "", errors.New("bad glb header")
	}, Fallback)
	assert.Equal(t, Fallback, out)
}

func TestPreview_PanicBecomesFallback(t *testing.T) {
	out := Preview(func() (string, error) {
		panic("renderer exploded")
	}, Fallback)
	assert.Equal(t, Fallback, out)
}
