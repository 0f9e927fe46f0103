package colorimetry

import (
	"fmt"
	"log/slog"
	"math"
)

// Correlated color temperature: the temperature of the Planckian
// radiator whose CIE 1960 chromaticity is closest, in Euclidean (u, v)
// distance, to that of the stimulus.
//
// The search works in mired (1e6/T), which spaces the locus nearly
// uniformly in chromaticity: a table scan brackets the nearest locus
// entry, then a golden-section search refines the continuous minimum.
const (
	locusMiredMin  = 1.0    // 1,000,000 K
	locusMiredMax  = 1000.0 // 1000 K
	locusMiredStep = 1.0

	// maxLocusDistance is the largest (u, v) distance from the Planckian
	// locus for which a correlated color temperature is still considered
	// meaningful.
	maxLocusDistance = 0.05
)

type locusPoint struct {
	u, v float64
}

// planckLocus returns the observer's Planckian locus table, built on
// first use and immutable afterwards.
func (o *Observer) planckLocus() []locusPoint {
	o.locusOnce.Do(func() {
		n := int((locusMiredMax-locusMiredMin)/locusMiredStep) + 1
		pts := make([]locusPoint, n)
		for i := range pts {
			mired := locusMiredMin + float64(i)*locusMiredStep
			u, v, err := o.XYZ(Planckian(1e6/mired), nil).UV60()
			if err != nil {
				// A blackbody chromaticity is never degenerate.
				panic(err)
			}
			pts[i] = locusPoint{u: u, v: v}
		}
		o.locus = pts
		Logger().Debug("colorimetry: planckian locus table built",
			slog.Int("entries", n))
	})
	return o.locus
}

// CCT returns the correlated color temperature of a stimulus in
// kelvin. It fails with ErrCCTOutOfRange when the nearest locus entry
// lies at either end of the searchable range (1000 K to 1,000,000 K),
// and with ErrCCTNotMeaningful when the chromaticity is further than
// maxLocusDistance from the locus. It never returns NaN.
func (o *Observer) CCT(c XYZ) (float64, error) {
	u, v, err := c.UV60()
	if err != nil {
		return 0, err
	}

	locus := o.planckLocus()
	best, bestDist := 0, math.MaxFloat64
	for i, p := range locus {
		d := (p.u-u)*(p.u-u) + (p.v-v)*(p.v-v)
		if d < bestDist {
			best, bestDist = i, d
		}
	}
	if best == 0 || best == len(locus)-1 {
		return 0, fmt.Errorf("%w: nearest locus entry at %g K",
			ErrCCTOutOfRange, 1e6/(locusMiredMin+float64(best)*locusMiredStep))
	}

	dist := func(mired float64) float64 {
		lu, lv, err := o.XYZ(Planckian(1e6/mired), nil).UV60()
		if err != nil {
			return math.MaxFloat64
		}
		du, dv := lu-u, lv-v
		return du*du + dv*dv
	}
	m0 := locusMiredMin + float64(best)*locusMiredStep
	mired := minimizeGolden(dist, m0-locusMiredStep, m0+locusMiredStep, 1e-4)

	if duv := math.Sqrt(dist(mired)); duv > maxLocusDistance {
		return 0, fmt.Errorf("%w: distance %.4f at %.0f K",
			ErrCCTNotMeaningful, duv, 1e6/mired)
	}
	return 1e6 / mired, nil
}
