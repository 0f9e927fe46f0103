package colorimetry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResampleIdentity(t *testing.T) {
	// A source already on the working grid must come through unchanged.
	wl := make([]float64, NumWavelengths)
	vals := make([]float64, NumWavelengths)
	for i := range wl {
		wl[i] = WavelengthMin + float64(i)*WavelengthStep
		vals[i] = float64(i) * 0.01
	}
	s, err := Resample(wl, vals)
	require.NoError(t, err)
	got := s.Values()
	for i := range got {
		assert.InDelta(t, vals[i], got[i], 1e-12, "index %d", i)
	}
}

func TestResampleInterpolation(t *testing.T) {
	s, err := Resample([]float64{400, 500, 600}, []float64{0, 1, 0})
	require.NoError(t, err)

	tests := []struct {
		nm   float64
		want float64
	}{
		{400, 0},
		{450, 0.5},
		{500, 1},
		{550, 0.5},
		{600, 0},
		{625, 0}, // endpoint hold
		{380, 0}, // endpoint hold
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, s.At(tt.nm), 1e-12, "at %g nm", tt.nm)
	}
}

func TestResampleEndpointHold(t *testing.T) {
	s, err := Resample([]float64{500, 600}, []float64{2, 4})
	require.NoError(t, err)
	assert.InDelta(t, 2.0, s.At(380), 1e-12)
	assert.InDelta(t, 2.0, s.At(500), 1e-12)
	assert.InDelta(t, 4.0, s.At(600), 1e-12)
	assert.InDelta(t, 4.0, s.At(780), 1e-12)
}

func TestResampleRejectsMalformedInput(t *testing.T) {
	nan := math.NaN()

	tests := []struct {
		name string
		wl   []float64
		vals []float64
	}{
		{"length mismatch", []float64{400, 500}, []float64{1}},
		{"single point", []float64{500}, []float64{1}},
		{"empty", nil, nil},
		{"non-increasing", []float64{400, 400, 500}, []float64{1, 2, 3}},
		{"decreasing", []float64{500, 400}, []float64{1, 2}},
		{"nan value", []float64{400, 500}, []float64{1, nan}},
		{"nan wavelength", []float64{400, nan}, []float64{1, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resample(tt.wl, tt.vals)
			assert.ErrorIs(t, err, ErrBadSpectrum)
		})
	}
}

func TestSpectrumOf(t *testing.T) {
	var vals [NumWavelengths]float64
	for i := range vals {
		vals[i] = 1
	}
	s, err := SpectrumOf(vals)
	require.NoError(t, err)
	assert.Equal(t, 1.0, s.At(550))

	vals[200] = math.Inf(1)
	_, err = SpectrumOf(vals)
	assert.ErrorIs(t, err, ErrBadSpectrum)
}

func TestSpectrumAtOutsideGrid(t *testing.T) {
	var vals [NumWavelengths]float64
	for i := range vals {
		vals[i] = 5
	}
	s, err := SpectrumOf(vals)
	require.NoError(t, err)
	assert.Equal(t, 0.0, s.At(379.9))
	assert.Equal(t, 0.0, s.At(780.1))
	assert.Equal(t, 5.0, s.At(WavelengthMin))
	assert.Equal(t, 5.0, s.At(WavelengthMax))
}

func TestSpectrumArithmetic(t *testing.T) {
	a, err := Resample([]float64{380, 780}, []float64{1, 1})
	require.NoError(t, err)
	b, err := Resample([]float64{380, 780}, []float64{2, 2})
	require.NoError(t, err)

	sum := a.Add(b)
	assert.InDelta(t, 3.0, sum.At(550), 1e-12)

	scaled := sum.Scale(0.5)
	assert.InDelta(t, 1.5, scaled.At(550), 1e-12)

	// The receiver is untouched.
	assert.InDelta(t, 1.0, a.At(550), 1e-12)
	assert.InDelta(t, 3.0, sum.At(550), 1e-12)
}
