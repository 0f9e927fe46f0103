package colorimetry

import (
	"fmt"
	"log/slog"
	"math"
	"strings"
)

// Color rendering index per CIE 13.3: a score per test color sample
// for how faithfully a light source renders it compared to a reference
// illuminant of matching correlated color temperature.

// CRI holds the 14 per-sample rendering indices of one light source,
// in standard sample order. 100 means the sample appears exactly as it
// would under the reference illuminant; values are unbounded below and
// a poorly rendered sample legitimately scores negative. The general
// index Ra is deliberately not computed here; callers wanting it
// average the first eight samples.
type CRI struct {
	ri [NumTCS]float64
}

// Samples returns a copy of the 14 Ri values, index-aligned with the
// test color sample order (sample 1 at index 0).
func (c CRI) Samples() [NumTCS]float64 {
	return c.ri
}

// At returns the rendering index of test color sample n, numbered
// 1 through NumTCS as in the standard.
func (c CRI) At(n int) float64 {
	return c.ri[n-1]
}

// String formats the indices to one decimal in sample order.
func (c CRI) String() string {
	var b strings.Builder
	b.WriteString("CRI[")
	for i, r := range c.ri {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%.1f", r)
	}
	b.WriteByte(']')
	return b.String()
}

// cd is the pair of chromatic adaptation coefficients derived from a
// CIE 1960 chromaticity. It has no meaning of its own; it exists only
// as an intermediate of the von Kries transform.
type cd struct {
	c, d float64
}

// adaptCoeff derives the adaptation coefficients of a chromaticity:
//
//	c = (4 - u - 10v)/v
//	d = (1.708v - 1.481u + 0.404)/v
//
// Callers guarantee v > 0; every chromaticity reaching this point has
// passed through UV60.
func adaptCoeff(u, v float64) cd {
	return cd{
		c: (4 - u - 10*v) / v,
		d: (1.708*v - 1.481*u + 0.404) / v,
	}
}

// vonKries maps a sample chromaticity seen under the test illuminant
// to the chromaticity it would have under the reference illuminant:
//
//	den = 16.518 + 1.481 (cr/ct) ci - (dr/dt) di
//	u'  = (10.872 + 0.404 (cr/ct) ci - 4 (dr/dt) di) / den
//	v'  = 5.520 / den
//
// with (ct, dt) and (cr, dr) the coefficient pairs of the test and
// reference white points and (ci, di) the sample's. For white points
// near the Planckian locus the divisors cannot vanish; a degenerate
// configuration is still reported as an error rather than let NaN
// propagate into the result.
func vonKries(test, ref, sample cd) (u, v float64, err error) {
	if test.c == 0 || test.d == 0 {
		return 0, 0, fmt.Errorf("%w: test white coefficients (%v, %v)",
			ErrDegenerate, test.c, test.d)
	}
	cRatio := ref.c / test.c
	dRatio := ref.d / test.d
	den := 16.518 + 1.481*cRatio*sample.c - dRatio*sample.d
	if !isFinite(den) || den == 0 {
		return 0, 0, fmt.Errorf("%w: adaptation denominator %v", ErrDegenerate, den)
	}
	u = (10.872 + 0.404*cRatio*sample.c - 4*dRatio*sample.d) / den
	v = 5.520 / den
	return u, v, nil
}

// referenceBranchCCT is the correlated color temperature at and below
// which the reference illuminant is a Planckian radiator; above it the
// daylight model is used.
const referenceBranchCCT = 5000.0

// referenceIlluminant synthesizes the reference illuminant for a test
// source of the given correlated color temperature.
func referenceIlluminant(cct float64) (Illuminant, error) {
	if cct <= referenceBranchCCT {
		return Planckian(cct), nil
	}
	return Daylight(cct)
}

// ComputeCRI computes the 14 color rendering indices of a light
// source:
//
//  1. rescale the source to illuminance 100 and take its tristimulus
//     value and those of the 14 test color samples under it;
//  2. estimate the source's correlated color temperature;
//  3. synthesize the reference illuminant for that temperature, also
//     at illuminance 100, and take the same tristimulus values under it;
//  4. per sample, adapt the test chromaticity to the reference white
//     with the von Kries transform, convert both arms to CIE 1964
//     (U*, V*, W*) relative to the reference white, and score
//     Ri = 100 - 4.6 dE from the Euclidean distance.
//
// Any stage failure aborts the computation and propagates the stage's
// error: ErrCCTOutOfRange or ErrCCTNotMeaningful when no stable color
// temperature exists, ErrDaylightRange when the reference temperature
// exceeds the daylight model's validity, ErrDegenerate on a singular
// chromaticity. There is no partial result and no NaN output.
//
// ComputeCRI is pure apart from reading the shared sample dataset and
// is safe for concurrent use.
func ComputeCRI(light Illuminant) (CRI, error) {
	obs := CIE1931()
	test, err := light.SetIlluminance(obs, 100)
	if err != nil {
		return CRI{}, err
	}
	tcs := tcsColorants()

	xyzTest := obs.XYZ(test, nil)
	var xyzTestSamples [NumTCS]XYZ
	for i := range tcs {
		xyzTestSamples[i] = obs.XYZ(test, &tcs[i])
	}

	cct, err := obs.CCT(xyzTest)
	if err != nil {
		return CRI{}, err
	}
	ref, err := referenceIlluminant(cct)
	if err != nil {
		return CRI{}, err
	}
	ref, err = ref.SetIlluminance(obs, 100)
	if err != nil {
		return CRI{}, err
	}
	branch := "daylight"
	if cct <= referenceBranchCCT {
		branch = "planckian"
	}
	Logger().Debug("colorimetry: reference illuminant selected",
		slog.Float64("cct", cct), slog.String("reference", branch))

	xyzRef := obs.XYZ(ref, nil)
	var xyzRefSamples [NumTCS]XYZ
	for i := range tcs {
		xyzRefSamples[i] = obs.XYZ(ref, &tcs[i])
	}

	ut, vt, err := xyzTest.UV60()
	if err != nil {
		return CRI{}, err
	}
	ur, vr, err := xyzRef.UV60()
	if err != nil {
		return CRI{}, err
	}
	cdTest := adaptCoeff(ut, vt)
	cdRef := adaptCoeff(ur, vr)

	var out CRI
	for i := range out.ri {
		ui, vi, err := xyzTestSamples[i].UV60()
		if err != nil {
			return CRI{}, err
		}
		ua, va, err := vonKries(cdTest, cdRef, adaptCoeff(ui, vi))
		if err != nil {
			return CRI{}, err
		}
		adapted, err := XYZFromUV60(ua, va, xyzTestSamples[i].Y)
		if err != nil {
			return CRI{}, err
		}
		au, av, aw, err := adapted.UVW64(xyzRef)
		if err != nil {
			return CRI{}, err
		}
		ru, rv, rw, err := xyzRefSamples[i].UVW64(xyzRef)
		if err != nil {
			return CRI{}, err
		}
		de := math.Sqrt((au-ru)*(au-ru) + (av-rv)*(av-rv) + (aw-rw)*(aw-rw))
		out.ri[i] = 100 - 4.6*de
	}
	return out, nil
}
