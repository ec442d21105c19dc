package multiview

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSlots_AllViewpointsPresent(t *testing.T) {
	s := NewSlots()
	assert.Equal(t, 0, s.Count())
	for _, vp := range Viewpoints() {
		assert.Nil(t, s.Get(vp))
	}
}

func TestSet_ReplacesExactlyOneSlot(t *testing.T) {
	s := NewSlots()
	s.Set(Back, &Image{Name: "back.png", MIME: "image/png", Data: []byte{1}})

	assert.Equal(t, 1, s.Count())
	assert.NotNil(t, s.Get(Back))
	assert.Nil(t, s.Get(Front))
	assert.Nil(t, s.Get(Left))
	assert.Nil(t, s.Get(Right))

	// Replacing keeps others untouched.
	s.Set(Back, &Image{Name: "other.png", MIME: "image/png", Data: []byte{2}})
	assert.Equal(t, 1, s.Count())
	assert.Equal(t, "other.png", s.Get(Back).Name)
}

func TestSet_UnknownViewpointIgnored(t *testing.T) {
	s := NewSlots()
	s.Set(Viewpoint("top"), &Image{Name: "top.png"})
	assert.Equal(t, 0, s.Count())
}

func TestClearAll(t *testing.T) {
	s := NewSlots()
	for _, vp := range Viewpoints() {
		s.Set(vp, &Image{Name: string(vp) + ".png", Data: []byte{1}})
	}
	require.Equal(t, 4, s.Count())

	s.ClearAll()
	assert.Equal(t, 0, s.Count())
	assert.False(t, s.HasFront())
}

func TestRemove(t *testing.T) {
	s := NewSlots()
	s.Set(Front, &Image{Name: "f.jpg", Data: []byte{1}})
	require.True(t, s.HasFront())

	s.Remove(Front)
	assert.False(t, s.HasFront())
}

func TestSnapshot_IndependentOfOriginal(t *testing.T) {
	s := NewSlots()
	s.Set(Front, &Image{Name: "f.jpg", Data: []byte{1}})

	snap := s.Snapshot()
	require.True(t, snap.HasFront())

	// Mutating the original never reaches the copy, and vice versa.
	s.Remove(Front)
	s.Set(Back, &Image{Name: "b.jpg", Data: []byte{2}})
	assert.True(t, snap.HasFront())
	assert.Equal(t, 1, snap.Count())

	snap.ClearAll()
	assert.NotNil(t, s.Get(Back))
}

func TestLoadImage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "chair.jpg")
	require.NoError(t, os.WriteFile(path, []byte("jpegdata"), 0o644))

	img, err := LoadImage(path)
	require.NoError(t, err)
	assert.Equal(t, "chair.jpg", img.Name)
	assert.Equal(t, "image/jpeg", img.MIME)
	assert.Equal(t, []byte("jpegdata"), img.Data)
}

func TestLoadImage_RejectsNonImage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0o644))

	_, err := LoadImage(path)
	require.Error(t, err)
}

func TestLoadImage_RejectsEmptyFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "blank.png")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	_, err := LoadImage(path)
	require.Error(t, err)
}
