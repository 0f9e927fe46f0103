package colorimetry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// flatIlluminant returns an equal-energy illuminant with the given power
// at every wavelength of the working grid.
func flatIlluminant(t *testing.T, power float64) Illuminant {
	t.Helper()
	var vals [NumWavelengths]float64
	for i := range vals {
		vals[i] = power
	}
	s, err := SpectrumOf(vals)
	require.NoError(t, err)
	return NewIlluminant(s)
}

func TestCIE1931Functions(t *testing.T) {
	obs := CIE1931()
	assert.Equal(t, "CIE 1931 2 degree standard observer", obs.String())

	// The luminosity function peaks at 555 nm with value 1.
	assert.InDelta(t, 1.0, obs.ybar.At(555), 1e-12)
	max := 0.0
	for nm := WavelengthMin; nm <= WavelengthMax; nm++ {
		if y := obs.ybar.At(nm); y > max {
			max = y
		}
	}
	assert.InDelta(t, 1.0, max, 1e-12)

	// Same instance on every call.
	assert.Same(t, obs, CIE1931())
}

func TestEqualEnergyChromaticity(t *testing.T) {
	light := flatIlluminant(t, 1)
	c := CIE1931().XYZ(light, nil)
	x, y, err := c.XY()
	require.NoError(t, err)
	assert.InDelta(t, 1.0/3.0, x, 1e-3)
	assert.InDelta(t, 1.0/3.0, y, 1e-3)
}

func TestIlluminanceLinearity(t *testing.T) {
	obs := CIE1931()
	light := flatIlluminant(t, 1)
	lux := obs.Illuminance(light)
	assert.Greater(t, lux, 0.0)

	double := NewIlluminant(light.Spectrum().Scale(2))
	assert.InDelta(t, 2*lux, obs.Illuminance(double), 1e-9*lux)
}

func TestXYZMatchesIlluminance(t *testing.T) {
	// The Y tristimulus of an illuminant is its illuminance.
	obs := CIE1931()
	light := A()
	c := obs.XYZ(light, nil)
	assert.InDelta(t, obs.Illuminance(light), c.Y, 1e-9)
}

func TestXYZWithUnitSample(t *testing.T) {
	// A perfect reflector is the same as no sample at all.
	var vals [NumWavelengths]float64
	for i := range vals {
		vals[i] = 1
	}
	s, err := SpectrumOf(vals)
	require.NoError(t, err)
	white := NewColorant(s)

	obs := CIE1931()
	light := D65()
	direct := obs.XYZ(light, nil)
	reflected := obs.XYZ(light, &white)
	assert.InDelta(t, direct.X, reflected.X, 1e-9)
	assert.InDelta(t, direct.Y, reflected.Y, 1e-9)
	assert.InDelta(t, direct.Z, reflected.Z, 1e-9)
}

func TestSetIlluminance(t *testing.T) {
	obs := CIE1931()

	light, err := Planckian(3000).SetIlluminance(obs, 100)
	require.NoError(t, err)
	assert.InDelta(t, 100.0, obs.Illuminance(light), 1e-9)

	c := obs.XYZ(light, nil)
	assert.InDelta(t, 100.0, c.Y, 1e-9)

	// Rescaling preserves chromaticity.
	x0, y0, err := obs.XYZ(Planckian(3000), nil).XY()
	require.NoError(t, err)
	x1, y1, err := c.XY()
	require.NoError(t, err)
	assert.InDelta(t, x0, x1, 1e-12)
	assert.InDelta(t, y0, y1, 1e-12)
}

func TestSetIlluminanceRejectsBadInput(t *testing.T) {
	obs := CIE1931()

	_, err := D65().SetIlluminance(obs, 0)
	assert.ErrorIs(t, err, ErrBadSpectrum)

	_, err = D65().SetIlluminance(obs, -10)
	assert.ErrorIs(t, err, ErrBadSpectrum)

	// A dark spectrum cannot be normalized.
	dark := NewIlluminant(Spectrum{})
	_, err = dark.SetIlluminance(obs, 100)
	assert.ErrorIs(t, err, ErrBadSpectrum)
}
