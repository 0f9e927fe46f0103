package colorimetry

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Swatch sheet layout in pixels.
const (
	swatchSize  = 64
	swatchLabel = 16
	swatchCols  = 7
)

// SwatchSheet renders the 14 test color samples as they appear under
// the given light source, each labelled with its sample number. The
// source is rescaled to illuminance 100, the same normalization the
// index computation uses, so sheets of different sources compare at
// equal brightness. A source with no measurable power is reported as
// ErrBadSpectrum.
func SwatchSheet(light Illuminant) (image.Image, error) {
	obs := CIE1931()
	norm, err := light.SetIlluminance(obs, 100)
	if err != nil {
		return nil, err
	}
	tcs := tcsColorants()

	rows := (NumTCS + swatchCols - 1) / swatchCols
	img := image.NewRGBA(image.Rect(0, 0, swatchCols*swatchSize, rows*(swatchSize+swatchLabel)))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.Black),
		Face: basicfont.Face7x13,
	}
	for i := range tcs {
		x := (i % swatchCols) * swatchSize
		y := (i / swatchCols) * (swatchSize + swatchLabel)
		cell := image.Rect(x, y, x+swatchSize, y+swatchSize)
		draw.Draw(img, cell, image.NewUniform(obs.XYZ(norm, &tcs[i]).Color()), image.Point{}, draw.Src)
		d.Dot = fixed.P(x+4, y+swatchSize+swatchLabel-4)
		d.DrawString(fmt.Sprintf("TCS %d", i+1))
	}
	return img, nil
}
