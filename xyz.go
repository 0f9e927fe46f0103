package colorimetry

import (
	"fmt"
	"math"
)

// XYZ is a tristimulus value: the three-component response of a
// standard observer to a spectrum. Throughout this package XYZ values
// are on the photometric scale where an illuminant normalized to
// illuminance 100 has Y = 100.
type XYZ struct {
	X, Y, Z float64
}

// XY returns the CIE 1931 (x, y) chromaticity:
//
//	x = X/(X+Y+Z), y = Y/(X+Y+Z)
//
// A non-positive or non-finite denominator is reported as ErrDegenerate.
func (c XYZ) XY() (x, y float64, err error) {
	den := c.X + c.Y + c.Z
	if !isFinite(den) || den <= 0 {
		return 0, 0, fmt.Errorf("%w: X+Y+Z = %v", ErrDegenerate, den)
	}
	return c.X / den, c.Y / den, nil
}

// UV60 returns the CIE 1960 UCS chromaticity:
//
//	u = 4X/(X+15Y+3Z), v = 6Y/(X+15Y+3Z)
//
// The downstream adaptation formulas divide by v, so UV60 also rejects
// a non-positive v (a stimulus with no luminance). Both conditions are
// reported as ErrDegenerate.
func (c XYZ) UV60() (u, v float64, err error) {
	den := c.X + 15*c.Y + 3*c.Z
	if !isFinite(den) || den <= 0 {
		return 0, 0, fmt.Errorf("%w: X+15Y+3Z = %v", ErrDegenerate, den)
	}
	u = 4 * c.X / den
	v = 6 * c.Y / den
	if v <= 0 {
		return 0, 0, fmt.Errorf("%w: v = %v", ErrDegenerate, v)
	}
	return u, v, nil
}

// UVW64 returns the CIE 1964 (U*, V*, W*) uniform coordinates of the
// color relative to a reference white:
//
//	W* = 25 Y^(1/3) - 17
//	U* = 13 W* (u - un)
//	V* = 13 W* (v - vn)
//
// with Y the color's luminance factor on the 0-100 scale and (un, vn)
// the 1960 chromaticity of the white. Euclidean distance in these
// coordinates approximates perceived color difference.
func (c XYZ) UVW64(white XYZ) (uStar, vStar, wStar float64, err error) {
	u, v, err := c.UV60()
	if err != nil {
		return 0, 0, 0, err
	}
	un, vn, err := white.UV60()
	if err != nil {
		return 0, 0, 0, err
	}
	wStar = 25*math.Cbrt(c.Y) - 17
	uStar = 13 * wStar * (u - un)
	vStar = 13 * wStar * (v - vn)
	return uStar, vStar, wStar, nil
}

// XYZFromUV60 reconstructs a tristimulus value from a CIE 1960
// chromaticity and a luminance factor:
//
//	D = 6Y/v, X = uD/4, Z = (D - X - 15Y)/3
//
// A non-positive or non-finite v is reported as ErrDegenerate.
func XYZFromUV60(u, v, y float64) (XYZ, error) {
	if !isFinite(u) || !isFinite(v) || !isFinite(y) || v <= 0 {
		return XYZ{}, fmt.Errorf("%w: (u, v, Y) = (%v, %v, %v)", ErrDegenerate, u, v, y)
	}
	d := 6 * y / v
	x := u * d / 4
	return XYZ{X: x, Y: y, Z: (d - x - 15*y) / 3}, nil
}
