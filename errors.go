package colorimetry

import "errors"

// The error values below form the closed set of failure kinds this
// library reports. Callers match them with errors.Is; wrapped variants
// carry extra context (temperatures, wavelengths) in their message.
var (
	// ErrCCTOutOfRange indicates the correlated color temperature lies
	// outside the searchable range of the Planckian locus table
	// (1000 K to 1,000,000 K).
	ErrCCTOutOfRange = errors.New("colorimetry: correlated color temperature out of range")

	// ErrCCTNotMeaningful indicates the chromaticity is too far from the
	// Planckian locus for a correlated color temperature to be meaningful
	// (distance above 0.05 in CIE 1960 (u,v)).
	ErrCCTNotMeaningful = errors.New("colorimetry: chromaticity too far from Planckian locus")

	// ErrDaylightRange indicates a requested CIE daylight illuminant
	// temperature outside the model's validity range of 4000 K to 25000 K.
	ErrDaylightRange = errors.New("colorimetry: daylight temperature outside 4000-25000 K")

	// ErrDegenerate indicates a singular colorimetric configuration, such
	// as a chromaticity with a zero or negative v component, where a
	// transform would otherwise divide by zero.
	ErrDegenerate = errors.New("colorimetry: degenerate chromaticity")

	// ErrBadSpectrum indicates malformed spectral input: non-finite
	// values, a non-increasing wavelength grid, or a spectrum with no
	// measurable power where power is required.
	ErrBadSpectrum = errors.New("colorimetry: malformed spectrum")
)
