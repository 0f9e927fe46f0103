package colorimetry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestXY(t *testing.T) {
	c := XYZ{X: 95.047, Y: 100, Z: 108.883}
	x, y, err := c.XY()
	require.NoError(t, err)
	assert.InDelta(t, 0.3127, x, 1e-4)
	assert.InDelta(t, 0.3290, y, 1e-4)

	_, _, err = XYZ{}.XY()
	assert.ErrorIs(t, err, ErrDegenerate)
}

func TestUV60(t *testing.T) {
	// Equal tristimulus values: u = 4/19, v = 6/19.
	c := XYZ{X: 100, Y: 100, Z: 100}
	u, v, err := c.UV60()
	require.NoError(t, err)
	assert.InDelta(t, 4.0/19.0, u, 1e-12)
	assert.InDelta(t, 6.0/19.0, v, 1e-12)
}

func TestUV60Degenerate(t *testing.T) {
	tests := []struct {
		name string
		c    XYZ
	}{
		{"black", XYZ{}},
		{"negative denominator", XYZ{X: 1, Y: -1, Z: 1}},
		{"zero luminance", XYZ{X: 1, Y: 0, Z: 3}},
		{"nan", XYZ{X: math.NaN(), Y: 1, Z: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := tt.c.UV60()
			assert.ErrorIs(t, err, ErrDegenerate)
		})
	}
}

func TestXYZFromUV60RoundTrip(t *testing.T) {
	tests := []XYZ{
		{X: 100, Y: 100, Z: 100},
		{X: 95.047, Y: 100, Z: 108.883},
		{X: 109.85, Y: 100, Z: 35.58},
		{X: 12.3, Y: 45.6, Z: 78.9},
	}
	for _, want := range tests {
		u, v, err := want.UV60()
		require.NoError(t, err)
		got, err := XYZFromUV60(u, v, want.Y)
		require.NoError(t, err)
		assert.InDelta(t, want.X, got.X, 1e-9)
		assert.InDelta(t, want.Y, got.Y, 1e-9)
		assert.InDelta(t, want.Z, got.Z, 1e-9)
	}
}

func TestXYZFromUV60Degenerate(t *testing.T) {
	_, err := XYZFromUV60(0.2, 0, 50)
	assert.ErrorIs(t, err, ErrDegenerate)

	_, err = XYZFromUV60(math.NaN(), 0.3, 50)
	assert.ErrorIs(t, err, ErrDegenerate)
}

func TestUVW64(t *testing.T) {
	white := XYZ{X: 95, Y: 100, Z: 109}

	// The white point itself has zero chroma and W* = 25·100^⅓ − 17.
	uStar, vStar, wStar, err := white.UVW64(white)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, uStar, 1e-9)
	assert.InDelta(t, 0.0, vStar, 1e-9)
	assert.InDelta(t, 25*math.Cbrt(100)-17, wStar, 1e-9)

	// A darker neutral sample keeps zero chroma, W* tracks Y.
	gray := XYZ{X: 95 * 0.2, Y: 100 * 0.2, Z: 109 * 0.2}
	uStar, vStar, wStar, err = gray.UVW64(white)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, uStar, 1e-9)
	assert.InDelta(t, 0.0, vStar, 1e-9)
	assert.InDelta(t, 25*math.Cbrt(20)-17, wStar, 1e-9)

	// Chroma scales with lightness, so a brighter sample of the same
	// chromaticity shift has larger U*.
	shifted := XYZ{X: 110, Y: 100, Z: 100}
	u1, _, _, err := shifted.UVW64(white)
	require.NoError(t, err)
	dim := XYZ{X: 110 * 0.3, Y: 100 * 0.3, Z: 100 * 0.3}
	u2, _, _, err := dim.UVW64(white)
	require.NoError(t, err)
	assert.Greater(t, math.Abs(u1), math.Abs(u2))
}

func TestUVW64DegenerateWhite(t *testing.T) {
	_, _, _, err := XYZ{X: 100, Y: 100, Z: 100}.UVW64(XYZ{})
	assert.ErrorIs(t, err, ErrDegenerate)
}
