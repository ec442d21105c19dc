package studio

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompactListDelegate(t *testing.T) {
	d := NewCompactListDelegate()
	assert.Equal(t, 0, d.Spacing())
	assert.False(t, d.ShowDescription)
}
