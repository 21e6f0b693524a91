package components

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/storybox/internal/story"
)

func TestCarouselView(t *testing.T) {
	t.Parallel()

	images := []story.Image{
		{MIMEType: "image/jpeg", Data: make([]byte, 2048)},
		{MIMEType: "image/png", Data: make([]byte, 10)},
		{MIMEType: "image/jpeg", Data: make([]byte, 10)},
		{MIMEType: "image/jpeg", Data: make([]byte, 10)},
	}

	t.Run("shows position and metadata", func(t *testing.T) {
		t.Parallel()

		view := NewCarousel(DarkPalette()).View(images, 0)
		require.Contains(t, view, "Illustration 1/4")
		require.Contains(t, view, "image/jpeg")
		require.Contains(t, view, "2.0 kB")
		require.Contains(t, view, "●")
		require.Contains(t, view, "○")
	})

	t.Run("follows the index", func(t *testing.T) {
		t.Parallel()

		view := NewCarousel(LightPalette()).View(images, 1)
		require.Contains(t, view, "Illustration 2/4")
		require.Contains(t, view, "image/png")
	})

	t.Run("out of range renders empty state", func(t *testing.T) {
		t.Parallel()

		c := NewCarousel(DarkPalette())
		require.Contains(t, c.View(nil, 0), "No illustrations")
		require.Contains(t, c.View(images, 4), "No illustrations")
	})
}

func TestPalettesDiffer(t *testing.T) {
	t.Parallel()

	dark, light := DarkPalette(), LightPalette()
	require.Equal(t, "dark", dark.Name)
	require.Equal(t, "light", light.Name)
	require.NotEqual(t, dark.Surface.Base, light.Surface.Base)

	c := NewCarousel(dark).WithPalette(light)
	require.Equal(t, light, c.palette)
}
