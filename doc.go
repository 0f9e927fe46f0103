// Package colorimetry computes the CIE color rendering index from
// spectral power distributions.
//
// # Overview
//
// colorimetry is a pure Go implementation of the CIE 13.3 color
// rendering method: given the spectrum of a light source it scores how
// faithfully the source renders 14 standardized test color samples
// against a reference illuminant of matching color temperature. The
// collaborating pieces the method needs are included: spectral
// resampling, the CIE 1931 standard observer, Planckian and daylight
// illuminant models, and correlated color temperature estimation.
//
// # Quick Start
//
//	import "github.com/photolux/colorimetry"
//
//	// Score a measured lamp spectrum (wavelengths in nm).
//	spd, err := colorimetry.Resample(wavelengths, power)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	cri, err := colorimetry.ComputeCRI(colorimetry.NewIlluminant(spd))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cri)         // CRI[98.2 97.5 ...]
//	fmt.Println(cri.At(9))   // the hard red sample
//
// # Architecture
//
// Everything works on a fixed grid of 380-780 nm in 1 nm steps:
//   - Spectrum, Colorant, Illuminant: spectral data and its two
//     interpretations (reflectance, power)
//   - Observer: spectra to tristimulus values, illuminance, and
//     correlated color temperature
//   - XYZ: chromaticity coordinate systems (1931 xy, 1960 uv,
//     1964 U*V*W*)
//   - ComputeCRI / ComputeCRIBatch: the index pipeline
//
// # Errors
//
// All failure kinds are sentinel errors (ErrCCTOutOfRange,
// ErrCCTNotMeaningful, ErrDaylightRange, ErrDegenerate,
// ErrBadSpectrum) matched with errors.Is. A failed computation returns
// no partial result and never encodes failure as NaN.
//
// # Logging
//
// The package is silent by default. SetLogger enables debug-level
// diagnostics of the pipeline (estimated color temperature, reference
// branch selection).
package colorimetry

// Version information
const (
	// Version is the current version of the library
	Version = "0.2.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 2

	// VersionPatch is the patch version
	VersionPatch = 0
)
