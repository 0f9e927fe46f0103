package colorimetry

// Colorant is a Spectrum interpreted as a spectral reflectance or
// transmittance factor. Values are nominally in [0, 1] but this is not
// enforced; fluorescent whitening agents can push real samples above 1.
type Colorant struct {
	s Spectrum
}

// NewColorant wraps a spectrum as a reflectance factor.
func NewColorant(s Spectrum) Colorant {
	return Colorant{s: s}
}

// Spectrum returns the underlying reflectance spectrum.
func (c Colorant) Spectrum() Spectrum {
	return c.s
}
