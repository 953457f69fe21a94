package gallery

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGallery(t *testing.T, n int) *Gallery {
	images := make([]string, n)
	for i := range images {
		images[i] = string(rune('a' + i))
	}
	g, err := New(images)
	require.NoError(t, err)
	return g
}

func TestNew_Empty(t *testing.T) {
	_, err := New(nil)
	assert.ErrorIs(t, err, ErrEmptyGallery)
}

func TestWraparound(t *testing.T) {
	for n := 1; n <= 5; n++ {
		g := newGallery(t, n)

		g.Prev()
		assert.Equal(t, n-1, g.Index, "prev from 0 with %d images", n)

		g.Next()
		assert.Equal(t, 0, g.Index, "next from last with %d images", n)
	}
}

func TestNextPrev_Sequence(t *testing.T) {
	g := newGallery(t, 3)

	g.Next()
	g.Next()
	assert.Equal(t, "c", g.Current())
	g.Next()
	assert.Equal(t, "a", g.Current())
	g.Prev()
	assert.Equal(t, "c", g.Current())
}

func TestOpen_SeedsFromInlineSelection(t *testing.T) {
	g := newGallery(t, 3)

	require.NoError(t, g.Select(2))
	g.Open()
	assert.True(t, g.ModalOpen)
	assert.Equal(t, 2, g.Index)
	assert.Equal(t, "c", g.Current())
}

func TestSelect_OutOfRange(t *testing.T) {
	g := newGallery(t, 2)

	assert.ErrorIs(t, g.Select(2), ErrIndexOutOfRange)
	assert.ErrorIs(t, g.Select(-1), ErrIndexOutOfRange)
	assert.ErrorIs(t, g.OpenAt(5), ErrIndexOutOfRange)
	assert.False(t, g.ModalOpen)
	assert.Equal(t, "a", g.SelectedImage())
}

func TestTap_DoubleTapTogglesZoom(t *testing.T) {
	g := newGallery(t, 1)
	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	assert.False(t, g.Tap(start, DefaultDoubleTapWindow))
	assert.True(t, g.Tap(start.Add(200*time.Millisecond), DefaultDoubleTapWindow))
	assert.True(t, g.Zoomed)

	// a third tap starts a new pair
	assert.False(t, g.Tap(start.Add(350*time.Millisecond), DefaultDoubleTapWindow))
	assert.True(t, g.Tap(start.Add(400*time.Millisecond), DefaultDoubleTapWindow))
	assert.False(t, g.Zoomed)
}

func TestTap_SlowTapsDoNotZoom(t *testing.T) {
	g := newGallery(t, 1)
	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	g.Tap(start, DefaultDoubleTapWindow)
	assert.False(t, g.Tap(start.Add(300*time.Millisecond), DefaultDoubleTapWindow))
	assert.False(t, g.Tap(start.Add(700*time.Millisecond), DefaultDoubleTapWindow))
	assert.False(t, g.Zoomed)
}

func TestClose_ZoomPolicy(t *testing.T) {
	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	keep := newGallery(t, 2)
	keep.Open()
	keep.Tap(start, DefaultDoubleTapWindow)
	keep.Tap(start.Add(time.Millisecond), DefaultDoubleTapWindow)
	keep.Close(false)
	assert.False(t, keep.ModalOpen)
	assert.True(t, keep.Zoomed)

	reset := newGallery(t, 2)
	reset.Open()
	reset.Tap(start, DefaultDoubleTapWindow)
	reset.Tap(start.Add(time.Millisecond), DefaultDoubleTapWindow)
	reset.Close(true)
	assert.False(t, reset.Zoomed)
}

func TestClone(t *testing.T) {
	g := newGallery(t, 2)
	c := g.Clone()
	c.Images[0] = "changed"
	c.Next()

	assert.Equal(t, "a", g.Images[0])
	assert.Equal(t, 0, g.Index)

	var nilGallery *Gallery
	assert.Nil(t, nilGallery.Clone())
}
