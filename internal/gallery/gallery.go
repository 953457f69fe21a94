// Package gallery is the image gallery and full-screen modal of the product
// detail view.
package gallery

import (
	"errors"
	"slices"
	"time"
)

// DefaultDoubleTapWindow is the longest gap between two taps that still
// counts as a double tap.
const DefaultDoubleTapWindow = 300 * time.Millisecond

var (
	ErrEmptyGallery    = errors.New("gallery has no images")
	ErrIndexOutOfRange = errors.New("image index out of range")
)

type Gallery struct {
	Images    []string  `json:"images"`
	Selected  int       `json:"selected"` // inline selection
	Index     int       `json:"index"`    // modal position
	ModalOpen bool      `json:"modal_open"`
	Zoomed    bool      `json:"zoomed"`
	LastTap   time.Time `json:"last_tap,omitempty"`
}

func New(images []string) (*Gallery, error) {
	if len(images) == 0 {
		return nil, ErrEmptyGallery
	}
	return &Gallery{Images: slices.Clone(images)}, nil
}

func (g *Gallery) Len() int {
	return len(g.Images)
}

func (g *Gallery) valid(i int) bool {
	return i >= 0 && i < len(g.Images)
}

// Select changes the inline image.
func (g *Gallery) Select(i int) error {
	if !g.valid(i) {
		return ErrIndexOutOfRange
	}
	g.Selected = i
	return nil
}

func (g *Gallery) SelectedImage() string {
	if !g.valid(g.Selected) {
		return ""
	}
	return g.Images[g.Selected]
}

// Open shows the modal starting at the inline selection.
func (g *Gallery) Open() {
	g.Index = g.Selected
	g.ModalOpen = true
}

func (g *Gallery) OpenAt(i int) error {
	if !g.valid(i) {
		return ErrIndexOutOfRange
	}
	g.Index = i
	g.ModalOpen = true
	return nil
}

// Close hides the modal. Zoom survives unless resetZoom is set.
func (g *Gallery) Close(resetZoom bool) {
	g.ModalOpen = false
	g.LastTap = time.Time{}
	if resetZoom {
		g.Zoomed = false
	}
}

func (g *Gallery) Next() {
	if len(g.Images) == 0 {
		return
	}
	g.Index = (g.Index + 1) % len(g.Images)
}

func (g *Gallery) Prev() {
	if len(g.Images) == 0 {
		return
	}
	g.Index = (g.Index - 1 + len(g.Images)) % len(g.Images)
}

func (g *Gallery) Current() string {
	if !g.valid(g.Index) {
		return ""
	}
	return g.Images[g.Index]
}

// Tap registers a tap at the given time and toggles zoom when it follows the
// previous tap within window. It reports whether zoom was toggled.
func (g *Gallery) Tap(at time.Time, window time.Duration) bool {
	if !g.LastTap.IsZero() && at.Sub(g.LastTap) < window && !at.Before(g.LastTap) {
		g.Zoomed = !g.Zoomed
		g.LastTap = time.Time{}
		return true
	}
	g.LastTap = at
	return false
}

func (g *Gallery) Clone() *Gallery {
	if g == nil {
		return nil
	}
	c := *g
	c.Images = slices.Clone(g.Images)
	return &c
}
