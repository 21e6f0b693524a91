package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/alexisbeaulieu97/storybox/internal/story"
)

const carouselWidth = 30

// Carousel renders the illustration panel for a result.
type Carousel struct {
	palette Palette
}

// NewCarousel creates a carousel view using p.
func NewCarousel(p Palette) Carousel {
	return Carousel{palette: p}
}

// WithPalette returns a copy rendering with p.
func (c Carousel) WithPalette(p Palette) Carousel {
	c.palette = p
	return c
}

// View renders the illustration at index with its position, format, size and
// a dot indicator per image.
func (c Carousel) View(images []story.Image, index int) string {
	frame := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(c.palette.Primary.Base).
		Padding(1, 2).
		Width(carouselWidth).
		Align(lipgloss.Center)

	if len(images) == 0 || index < 0 || index >= len(images) {
		muted := lipgloss.NewStyle().Foreground(c.palette.Neutral.Muted).Italic(true)
		return frame.Render(muted.Render("No illustrations"))
	}

	img := images[index]
	title := lipgloss.NewStyle().Bold(true).Foreground(c.palette.Primary.Contrast).
		Render(fmt.Sprintf("Illustration %d/%d", index+1, len(images)))
	meta := lipgloss.NewStyle().Foreground(c.palette.Neutral.Muted).
		Render(fmt.Sprintf("%s · %s", img.MIMEType, humanize.Bytes(uint64(img.Size()))))

	return frame.Render(lipgloss.JoinVertical(lipgloss.Center,
		title,
		"",
		c.canvas(),
		"",
		meta,
		c.dots(len(images), index),
	))
}

// canvas draws a 3:4 placeholder where the illustration sits.
func (c Carousel) canvas() string {
	const w, h = 12, 8
	row := strings.Repeat("░", w)
	rows := make([]string, h)
	for i := range rows {
		rows[i] = row
	}
	return lipgloss.NewStyle().Foreground(c.palette.Primary.Muted).Render(strings.Join(rows, "\n"))
}

func (c Carousel) dots(n, active int) string {
	on := lipgloss.NewStyle().Foreground(c.palette.Primary.Base)
	off := lipgloss.NewStyle().Foreground(c.palette.Neutral.Muted)
	parts := make([]string, n)
	for i := range parts {
		if i == active {
			parts[i] = on.Render("●")
		} else {
			parts[i] = off.Render("○")
		}
	}
	return strings.Join(parts, " ")
}
