package colorimetry

import (
	"fmt"
	"math"
)

// The working wavelength grid shared by every spectral quantity in this
// package: 380 nm to 780 nm inclusive in 1 nm steps, 401 samples.
// All embedded datasets and all measured input are resampled onto it.
const (
	WavelengthMin  = 380.0
	WavelengthMax  = 780.0
	WavelengthStep = 1.0
	NumWavelengths = 401
)

// Spectrum is a function of wavelength sampled on the working grid.
// It carries no interpretation of its own; Colorant reads it as a
// reflectance factor and Illuminant as a spectral power distribution.
//
// Spectrum is an immutable value type: arithmetic methods return new
// values and never modify the receiver.
type Spectrum struct {
	v [NumWavelengths]float64
}

// SpectrumOf constructs a Spectrum directly from samples already on the
// working grid. All values must be finite.
func SpectrumOf(values [NumWavelengths]float64) (Spectrum, error) {
	for i, x := range values {
		if !isFinite(x) {
			return Spectrum{}, fmt.Errorf("%w: non-finite value %v at %g nm",
				ErrBadSpectrum, x, WavelengthMin+float64(i)*WavelengthStep)
		}
	}
	return Spectrum{v: values}, nil
}

// Resample linearly interpolates a source dataset onto the working grid.
// The source grid must be strictly increasing with at least two points,
// values must be finite, and wavelengths and values must have equal
// length. Outside the source range the nearest endpoint value is held,
// the usual treatment for truncated standard datasets.
func Resample(wavelengths, values []float64) (Spectrum, error) {
	if len(wavelengths) != len(values) {
		return Spectrum{}, fmt.Errorf("%w: %d wavelengths but %d values",
			ErrBadSpectrum, len(wavelengths), len(values))
	}
	if len(wavelengths) < 2 {
		return Spectrum{}, fmt.Errorf("%w: need at least 2 points, got %d",
			ErrBadSpectrum, len(wavelengths))
	}
	for i := range wavelengths {
		if !isFinite(wavelengths[i]) || !isFinite(values[i]) {
			return Spectrum{}, fmt.Errorf("%w: non-finite sample (%v nm, %v)",
				ErrBadSpectrum, wavelengths[i], values[i])
		}
		if i > 0 && wavelengths[i] <= wavelengths[i-1] {
			return Spectrum{}, fmt.Errorf("%w: wavelengths not strictly increasing at %v nm",
				ErrBadSpectrum, wavelengths[i])
		}
	}

	var s Spectrum
	seg := 0
	for i := range s.v {
		nm := WavelengthMin + float64(i)*WavelengthStep
		switch {
		case nm <= wavelengths[0]:
			s.v[i] = values[0]
		case nm >= wavelengths[len(wavelengths)-1]:
			s.v[i] = values[len(values)-1]
		default:
			for wavelengths[seg+1] < nm {
				seg++
			}
			t := (nm - wavelengths[seg]) / (wavelengths[seg+1] - wavelengths[seg])
			s.v[i] = values[seg] + t*(values[seg+1]-values[seg])
		}
	}
	return s, nil
}

// At returns the value at the given wavelength in nanometers, linearly
// interpolated between grid samples. Wavelengths outside the working
// grid return 0.
func (s Spectrum) At(nm float64) float64 {
	if nm < WavelengthMin || nm > WavelengthMax {
		return 0
	}
	pos := (nm - WavelengthMin) / WavelengthStep
	i := int(pos)
	if i >= NumWavelengths-1 {
		return s.v[NumWavelengths-1]
	}
	t := pos - float64(i)
	return s.v[i] + t*(s.v[i+1]-s.v[i])
}

// Values returns a copy of the samples on the working grid.
func (s Spectrum) Values() [NumWavelengths]float64 {
	return s.v
}

// Scale returns the spectrum multiplied by a scalar.
func (s Spectrum) Scale(k float64) Spectrum {
	var out Spectrum
	for i := range s.v {
		out.v[i] = s.v[i] * k
	}
	return out
}

// Add returns the samplewise sum of two spectra.
func (s Spectrum) Add(o Spectrum) Spectrum {
	var out Spectrum
	for i := range s.v {
		out.v[i] = s.v[i] + o.v[i]
	}
	return out
}

// mustResample builds a Spectrum from a uniformly spaced source table.
// Used only for the embedded standard datasets, which are known good.
func mustResample(start, step float64, values []float64) Spectrum {
	wl := make([]float64, len(values))
	for i := range wl {
		wl[i] = start + float64(i)*step
	}
	s, err := Resample(wl, values)
	if err != nil {
		panic(err)
	}
	return s
}

// isFinite returns true if x is neither infinite nor NaN.
func isFinite(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}
