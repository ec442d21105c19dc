package studio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"turntable/internal/multiview"
)

func TestCreateViewSlotKeys(t *testing.T) {
	c := NewCreateView(multiview.NewSlots())

	_, cmd := c.Update(keyMsg("f"))
	require.NotNil(t, cmd)
	assert.Equal(t, ShowSlotPickerMsg{Viewpoint: multiview.Front}, cmd())

	_, cmd = c.Update(keyMsg("L"))
	require.NotNil(t, cmd)
	assert.Equal(t, RemoveSlotMsg{Viewpoint: multiview.Left}, cmd())
}

func TestCreateViewNameInputCapturesKeys(t *testing.T) {
	c := NewCreateView(multiview.NewSlots())

	c.Update(keyMsg("n"))
	require.True(t, c.NameFocused())

	// Slot keys type into the name while focused instead of opening pickers.
	c.Update(keyMsg("f"))
	assert.Equal(t, "f", c.NameInput.Value())

	c.Update(keyMsg("enter"))
	assert.False(t, c.NameFocused())
}

func TestCreateViewEnterSubmitsUnlessBusy(t *testing.T) {
	c := NewCreateView(multiview.NewSlots())

	_, cmd := c.Update(keyMsg("enter"))
	require.NotNil(t, cmd)
	assert.Equal(t, SubmitConversionMsg{}, cmd())

	c.Busy = true
	_, cmd = c.Update(keyMsg("enter"))
	assert.Nil(t, cmd)
}
