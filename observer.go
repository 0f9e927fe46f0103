package colorimetry

import "sync"

// LuminousEfficacy is the maximum spectral luminous efficacy in lumen
// per watt (683 lm/W), the constant that scales the Y integral of a
// spectral power distribution to photometric units.
const LuminousEfficacy = 683.0

// Observer is a colorimetric standard observer: three color matching
// functions resampled onto the working grid. It converts spectral data
// into tristimulus values and estimates correlated color temperature.
//
// An Observer is immutable after construction and safe for concurrent
// use. Obtain the standard observer through CIE1931; the zero value is
// not usable.
type Observer struct {
	name             string
	xbar, ybar, zbar Spectrum

	locusOnce sync.Once
	locus     []locusPoint
}

var cie1931 = sync.OnceValue(func() *Observer {
	return &Observer{
		name: "CIE 1931 2 degree standard observer",
		xbar: mustResample(cmfMin, cmfStep, cie1931X5),
		ybar: mustResample(cmfMin, cmfStep, cie1931Y5),
		zbar: mustResample(cmfMin, cmfStep, cie1931Z5),
	}
})

// CIE1931 returns the CIE 1931 2 degree standard observer. It is built
// at most once per process from the embedded 5 nm tabulation and shared
// between all callers.
func CIE1931() *Observer {
	return cie1931()
}

// String returns the observer's name.
func (o *Observer) String() string {
	return o.name
}

// XYZ computes the tristimulus value of an illuminant, optionally
// filtered by a reflective sample:
//
//	X = K * sum S(w) * r(w) * xbar(w) * dw
//
// and likewise for Y and Z, with K the luminous efficacy, S the
// illuminant power, and r the sample reflectance (1 everywhere when
// sample is nil). With the illuminant scaled to illuminance 100, the
// Y of the illuminant itself is exactly 100.
func (o *Observer) XYZ(light Illuminant, sample *Colorant) XYZ {
	var x, y, z float64
	s := &light.s
	if sample != nil {
		r := &sample.s
		for i := range s.v {
			p := s.v[i] * r.v[i]
			x += p * o.xbar.v[i]
			y += p * o.ybar.v[i]
			z += p * o.zbar.v[i]
		}
	} else {
		for i := range s.v {
			x += s.v[i] * o.xbar.v[i]
			y += s.v[i] * o.ybar.v[i]
			z += s.v[i] * o.zbar.v[i]
		}
	}
	k := LuminousEfficacy * WavelengthStep
	return XYZ{X: k * x, Y: k * y, Z: k * z}
}

// Illuminance returns the photometric illuminance of the light in lux,
// K * sum S(w) * ybar(w) * dw.
func (o *Observer) Illuminance(light Illuminant) float64 {
	var y float64
	for i := range light.s.v {
		y += light.s.v[i] * o.ybar.v[i]
	}
	return y * LuminousEfficacy * WavelengthStep
}
