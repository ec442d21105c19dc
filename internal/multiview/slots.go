// Package multiview holds the four-viewpoint photo selection that feeds a
// conversion. Pure state; file loading is the only I/O and lives in
// LoadImage.
package multiview

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Viewpoint is one of the four labeled photo slots.
type Viewpoint string

const (
	Front Viewpoint = "front"
	Back  Viewpoint = "back"
	Left  Viewpoint = "left"
	Right Viewpoint = "right"
)

// Viewpoints returns all four viewpoints in canonical order.
func Viewpoints() []Viewpoint {
	return []Viewpoint{Front, Back, Left, Right}
}

// Image is one selected photograph.
type Image struct {
	Name string // original file name, used as the multipart file name
	MIME string
	Data []byte
}

// Slots maps each viewpoint to an optional image. All four keys exist at all
// times; an empty slot holds nil.
type Slots struct {
	images map[Viewpoint]*Image
}

// NewSlots returns a store with all four slots empty.
func NewSlots() *Slots {
	s := &Slots{images: make(map[Viewpoint]*Image, 4)}
	for _, vp := range Viewpoints() {
		s.images[vp] = nil
	}
	return s
}

// Set replaces exactly one slot, leaving the others untouched.
func (s *Slots) Set(vp Viewpoint, img *Image) {
	if _, ok := s.images[vp]; !ok {
		return
	}
	s.images[vp] = img
}

// Remove empties one slot.
func (s *Slots) Remove(vp Viewpoint) {
	s.Set(vp, nil)
}

// ClearAll resets all four slots to empty.
func (s *Slots) ClearAll() {
	for _, vp := range Viewpoints() {
		s.images[vp] = nil
	}
}

// Get returns the image in a slot, or nil.
func (s *Slots) Get(vp Viewpoint) *Image {
	return s.images[vp]
}

// Count returns the number of non-empty slots.
func (s *Slots) Count() int {
	n := 0
	for _, img := range s.images {
		if img != nil {
			n++
		}
	}
	return n
}

// HasFront reports whether the required front slot is filled.
func (s *Slots) HasFront() bool {
	return s.images[Front] != nil
}

// Snapshot returns an independent copy of the current selection. Images are
// shared (they are never mutated after load), the map is not, so the copy
// stays stable while the original keeps changing on another goroutine.
func (s *Slots) Snapshot() *Slots {
	c := &Slots{images: make(map[Viewpoint]*Image, 4)}
	for _, vp := range Viewpoints() {
		c.images[vp] = s.images[vp]
	}
	return c
}

// imageMIMEByExt maps accepted photo extensions to their MIME type.
var imageMIMEByExt = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
}

// ImageExtensions returns the accepted file extensions, for file pickers.
func ImageExtensions() []string {
	return []string{".jpg", ".jpeg", ".png", ".webp"}
}

// LoadImage reads a photo from disk. Non-image extensions and empty files
// are rejected before any slot is touched.
func LoadImage(path string) (*Image, error) {
	ext := strings.ToLower(filepath.Ext(path))
	mime, ok := imageMIMEByExt[ext]
	if !ok {
		return nil, fmt.Errorf("%s is not a supported image type", filepath.Base(path))
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%s is empty", filepath.Base(path))
	}
	return &Image{
		Name: filepath.Base(path),
		MIME: mime,
		Data: data,
	}, nil
}
