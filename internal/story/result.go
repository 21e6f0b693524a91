package story

import (
	"encoding/base64"
	"strings"
)

// Image is a self-contained illustration: raw bytes tagged with a MIME type.
type Image struct {
	MIMEType string
	Data     []byte
}

// DataURI returns the image as an inline base64 data URI.
func (i Image) DataURI() string {
	return "data:" + i.MIMEType + ";base64," + base64.StdEncoding.EncodeToString(i.Data)
}

// Size returns the payload length in bytes.
func (i Image) Size() int {
	return len(i.Data)
}

// Extension returns a file extension matching the MIME type.
func (i Image) Extension() string {
	switch i.MIMEType {
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	case "image/gif":
		return ".gif"
	default:
		return ".jpg"
	}
}

// Result is the joint outcome of a successful generation. It always holds a
// non-empty story and at least one image.
type Result struct {
	story  string
	images []Image
}

// NewResult validates and freezes a generation outcome.
func NewResult(text string, images []Image) (Result, error) {
	if strings.TrimSpace(text) == "" {
		return Result{}, ErrNoStory
	}
	if len(images) == 0 {
		return Result{}, ErrNoImages
	}
	frozen := make([]Image, len(images))
	for i, img := range images {
		frozen[i] = Image{MIMEType: img.MIMEType, Data: append([]byte(nil), img.Data...)}
	}
	return Result{story: text, images: frozen}, nil
}

// Story returns the generated story text.
func (r Result) Story() string {
	return r.story
}

// ImageCount returns the number of illustrations.
func (r Result) ImageCount() int {
	return len(r.images)
}

// Image returns a copy of the illustration at index i.
func (r Result) Image(i int) (Image, bool) {
	if i < 0 || i >= len(r.images) {
		return Image{}, false
	}
	img := r.images[i]
	return Image{MIMEType: img.MIMEType, Data: append([]byte(nil), img.Data...)}, true
}

// Images returns copies of all illustrations in order.
func (r Result) Images() []Image {
	out := make([]Image, len(r.images))
	for i := range r.images {
		out[i], _ = r.Image(i)
	}
	return out
}

// IsZero reports whether r was never populated by NewResult.
func (r Result) IsZero() bool {
	return r.story == "" && len(r.images) == 0
}
