package colorimetry

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Color converts the tristimulus value to a display color. The value
// is read on the pipeline's Y = 100 white scale, mapped through the
// sRGB transfer with D65 primaries, and clamped into gamut. Intended
// for visualization only; the index computation never consults display
// colors.
func (c XYZ) Color() color.Color {
	return colorful.Xyz(c.X/100, c.Y/100, c.Z/100).Clamped()
}

// Hex returns the clamped sRGB color as a "#rrggbb" string.
func (c XYZ) Hex() string {
	return colorful.Xyz(c.X/100, c.Y/100, c.Z/100).Clamped().Hex()
}
