package dom

import "fmt"

// Size is a rendered size reading in host units (pixels, cells, ...),
// taken at the instant of measurement.
type Size struct {
	Width  int
	Height int
}

// Equal reports whether both components match exactly. There is no
// tolerance: a one-unit difference is a change.
func (s Size) Equal(other Size) bool {
	return s.Width == other.Width && s.Height == other.Height
}

// String returns the size as "WxH".
func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}
