package colorimetry

import (
	"fmt"
	"math"
	"sync"
)

// Illuminant is a Spectrum interpreted as a spectral power
// distribution. Construct one from a measurement with NewIlluminant,
// or synthesize one from a temperature with Planckian or Daylight.
//
// Illuminant is an immutable value type; SetIlluminance returns a
// rescaled copy.
type Illuminant struct {
	s Spectrum
}

// NewIlluminant wraps a measured spectrum as a power distribution.
func NewIlluminant(s Spectrum) Illuminant {
	return Illuminant{s: s}
}

// Spectrum returns the underlying power spectrum.
func (l Illuminant) Spectrum() Spectrum {
	return l.s
}

// SetIlluminance returns a copy of the illuminant rescaled so that its
// illuminance under the observer equals lux. An illuminant with
// non-positive illuminance cannot be rescaled and is reported as
// ErrBadSpectrum, as is a non-positive target.
func (l Illuminant) SetIlluminance(obs *Observer, lux float64) (Illuminant, error) {
	if !isFinite(lux) || lux <= 0 {
		return Illuminant{}, fmt.Errorf("%w: target illuminance %v", ErrBadSpectrum, lux)
	}
	cur := obs.Illuminance(l)
	if !isFinite(cur) || cur <= 0 {
		return Illuminant{}, fmt.Errorf("%w: illuminance %v, nothing to rescale", ErrBadSpectrum, cur)
	}
	return Illuminant{s: l.s.Scale(lux / cur)}, nil
}

// First and second radiation constants for Planck's law, in W m^2 and
// m K. The 1.4388e-2 value of c2 is the one fixed by the ITS-90
// temperature scale and used by current CIE practice.
const (
	planckC1 = 3.741771e-16
	planckC2 = 1.4388e-2
)

// Planckian returns the relative spectral power distribution of a
// blackbody radiator at the given temperature in kelvin:
//
//	S(w) = c1 w^-5 / (exp(c2/(w T)) - 1)
//
// The absolute scale is arbitrary until SetIlluminance. A non-positive
// or non-finite temperature yields a zero spectrum, which fails at the
// first photometric operation.
func Planckian(cct float64) Illuminant {
	if !isFinite(cct) || cct <= 0 {
		return Illuminant{}
	}
	var s Spectrum
	for i := range s.v {
		w := (WavelengthMin + float64(i)*WavelengthStep) * 1e-9
		s.v[i] = planckC1 / (w * w * w * w * w * (math.Exp(planckC2/(w*cct)) - 1))
	}
	return Illuminant{s: s}
}

// Daylight returns the CIE daylight-model illuminant for a correlated
// color temperature between 4000 K and 25000 K: the chromaticity
// (xD, yD) from the model polynomials, then S = S0 + M1 S1 + M2 S2
// over the characteristic vectors. Temperatures outside the model's
// validity range are reported as ErrDaylightRange, never clamped.
func Daylight(cct float64) (Illuminant, error) {
	if !(cct >= 4000 && cct <= 25000) {
		return Illuminant{}, fmt.Errorf("%w: %v K", ErrDaylightRange, cct)
	}
	var xd float64
	if cct <= 7000 {
		xd = ((-4.6070e9/cct+2.9678e6)/cct+0.09911e3)/cct + 0.244063
	} else {
		xd = ((-2.0064e9/cct+1.9018e6)/cct+0.24748e3)/cct + 0.237040
	}
	yd := (-3.000*xd+2.870)*xd - 0.275
	m := 0.0241 + 0.2562*xd - 0.7341*yd
	m1 := (-1.3515 - 1.7703*xd + 5.9114*yd) / m
	m2 := (0.0300 - 31.4424*xd + 30.0717*yd) / m

	vals := make([]float64, len(daylightS0))
	for i := range vals {
		vals[i] = daylightS0[i] + m1*daylightS1[i] + m2*daylightS2[i]
	}
	return Illuminant{s: mustResample(daylightMin, daylightStep, vals)}, nil
}

// The D-series nominal temperatures are corrected by the ratio of the
// current to the original value of c2, per CIE 15.
const daylightTScale = 1.4388 / 1.4380

var (
	illumA = sync.OnceValue(func() Illuminant {
		// Exact formula from CIE 15 with the legacy constants
		// (c2 = 1.435e7 nm K, T = 2848 K), normalized to 100 at 560 nm.
		const c2, t = 1.435e7, 2848.0
		num := math.Exp(c2/(t*560)) - 1
		var s Spectrum
		for i := range s.v {
			w := WavelengthMin + float64(i)*WavelengthStep
			s.v[i] = 100 * math.Pow(560/w, 5) * num / (math.Exp(c2/(t*w)) - 1)
		}
		return Illuminant{s: s}
	})
	illumD50 = sync.OnceValue(func() Illuminant {
		d, err := Daylight(5000 * daylightTScale)
		if err != nil {
			panic(err)
		}
		return d
	})
	illumD65 = sync.OnceValue(func() Illuminant {
		d, err := Daylight(6500 * daylightTScale)
		if err != nil {
			panic(err)
		}
		return d
	})
)

// A returns standard illuminant A, incandescent tungsten light at a
// correlated color temperature near 2856 K. Built once and shared.
func A() Illuminant {
	return illumA()
}

// D50 returns standard illuminant D50, horizon daylight. Built once
// and shared.
func D50() Illuminant {
	return illumD50()
}

// D65 returns standard illuminant D65, average daylight. Built once
// and shared.
func D65() Illuminant {
	return illumD65()
}
