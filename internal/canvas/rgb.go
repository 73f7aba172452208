package canvas

import (
	"fmt"
	"strings"
)

// RGB represents a cell color as three 8-bit channels, no alpha.
// Channels are in [0, 255] inclusive, always in r,g,b order.
type RGB struct {
	R, G, B uint8
}

// String returns the canonical textual form, e.g. "rgb(240, 240, 240)".
func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// Hex returns the color as a "#rrggbb" string.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseRGB recovers an RGB triple from a textual color representation.
// It accepts any string embedding three decimal numbers in channel order,
// such as "rgb(10, 20, 30)" or "10 20 30". Returns false for malformed
// input: fewer or more than three numbers, or a channel outside [0, 255].
func ParseRGB(s string) (RGB, bool) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r < '0' || r > '9'
	})
	if len(fields) != 3 {
		return RGB{}, false
	}

	var channels [3]uint8
	for i, f := range fields {
		v := 0
		for _, d := range f {
			v = v*10 + int(d-'0')
			if v > 255 {
				return RGB{}, false
			}
		}
		channels[i] = uint8(v)
	}

	return RGB{R: channels[0], G: channels[1], B: channels[2]}, true
}
