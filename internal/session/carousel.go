package session

// Carousel is a wrapping cursor over n items.
type Carousel struct {
	index int
	n     int
}

// NewCarousel returns a cursor at index 0 over n items.
func NewCarousel(n int) Carousel {
	if n < 0 {
		n = 0
	}
	return Carousel{n: n}
}

// Next advances the cursor, wrapping from the last item to the first.
func (c Carousel) Next() Carousel {
	if c.n == 0 {
		return c
	}
	c.index = (c.index + 1) % c.n
	return c
}

// Previous moves the cursor back, wrapping from the first item to the last.
func (c Carousel) Previous() Carousel {
	if c.n == 0 {
		return c
	}
	c.index = (c.index - 1 + c.n) % c.n
	return c
}

// Select jumps to i. Out-of-range indexes are rejected.
func (c Carousel) Select(i int) (Carousel, bool) {
	if i < 0 || i >= c.n {
		return c, false
	}
	c.index = i
	return c, true
}

// Index returns the current position.
func (c Carousel) Index() int {
	return c.index
}

// Len returns the number of items.
func (c Carousel) Len() int {
	return c.n
}
