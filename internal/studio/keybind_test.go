package studio

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sentinelMsg struct{ name string }

func sentinel(name string) tea.Cmd {
	return func() tea.Msg { return sentinelMsg{name: name} }
}

func TestKeyHandlerLeaderSequence(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.BindWithDesc("SPC g", sentinel("gallery"), "Gallery tab")
	h := NewKeyHandler(reg)

	consumed, cmd := h.Handle(keyMsg(" "))
	require.True(t, consumed)
	assert.Nil(t, cmd)
	assert.True(t, h.LeaderWaiting)

	consumed, cmd = h.Handle(keyMsg("g"))
	require.True(t, consumed)
	require.NotNil(t, cmd)
	assert.Equal(t, sentinelMsg{name: "gallery"}, cmd())
	assert.False(t, h.LeaderWaiting)
}

func TestKeyHandlerEscCancelsLeader(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.BindWithDesc("SPC q", sentinel("quit"), "Quit")
	h := NewKeyHandler(reg)

	h.Handle(keyMsg(" "))
	require.True(t, h.LeaderWaiting)

	consumed, cmd := h.Handle(keyMsg("esc"))
	assert.True(t, consumed)
	assert.Nil(t, cmd)
	assert.False(t, h.LeaderWaiting)
}

func TestKeyHandlerUnboundKeyPassesThrough(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.BindWithDesc("SPC g", sentinel("gallery"), "")
	h := NewKeyHandler(reg)

	consumed, cmd := h.Handle(keyMsg("j"))
	assert.False(t, consumed)
	assert.Nil(t, cmd)
}

func TestKeyHandlerUnknownLeaderKeyConsumed(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.BindWithDesc("SPC g", sentinel("gallery"), "")
	h := NewKeyHandler(reg)

	h.Handle(keyMsg(" "))
	consumed, cmd := h.Handle(keyMsg("z"))
	assert.True(t, consumed, "stray keys after the leader never reach views")
	assert.Nil(t, cmd)
	assert.False(t, h.LeaderWaiting)
}

func TestLeaderHintsFilterByTab(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.BindWithDesc("SPC c", sentinel("create"), "Create tab")
	reg.BindWithDescForTab("SPC r", sentinel("refresh"), "Refresh gallery", []Tab{TabGallery})

	hints := reg.LeaderHints("", TabCreate)
	assert.Contains(t, hints, "c")
	assert.NotContains(t, hints, "r")

	hints = reg.LeaderHints("", TabGallery)
	assert.Contains(t, hints, "r")
}
