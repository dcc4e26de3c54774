// Package seasonal evaluates the scale heights used to transfer zenith
// tropospheric delays between stations at different heights.
//
// Scale heights are in meters. The total and wet delay scale heights follow
// annual and semi-annual harmonic series fitted to regional CORS data; the
// hydrostatic scale height is constant.
package seasonal

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// DaysPerYear normalises a day of year to a fraction of a year.
const DaysPerYear = 365.25

const (
	// HydrostaticScaleHeight applies in both modes; ZHD has no seasonal term.
	HydrostaticScaleHeight = 8431.2

	// Annual mean scale heights used when the seasonal model is disabled.
	AnnualTotalScaleHeight = 7228.8
	AnnualWetScaleHeight   = 3254.1
)

// TotalDelayCoefficients multiply [cos(2πt), sin(2πt), 1].
var TotalDelayCoefficients = [3]float64{336.744129380450, 40.0468935232165, 7222.97084384999}

// WetDelayCoefficients multiply [cos(2πt), cos(4πt), sin(2πt), cos(4πt), 1].
// The second and fourth terms share the cos(4πt) harmonic; the series is kept
// in that published form.
var WetDelayCoefficients = [5]float64{
	-16.7865051683731,
	36218.6610049341,
	-130.895834349628,
	-36297.5776200211,
	3253.60038161059,
}

// ScaleHeights are the per-component exponential scale heights in meters.
type ScaleHeights struct {
	ZHD float64 `json:"zhd"`
	ZWD float64 `json:"zwd"`
	ZTD float64 `json:"ztd"`
}

// Phase converts a day of year to the dimensionless time t = doy / 365.25.
func Phase(dayOfYear float64) float64 {
	return dayOfYear / DaysPerYear
}

// TotalDelayScaleHeight evaluates a0·cos(2πt) + a1·sin(2πt) + a2.
func TotalDelayScaleHeight(t float64) float64 {
	w := 2 * math.Pi * t
	basis := []float64{math.Cos(w), math.Sin(w), 1}
	return floats.Dot(TotalDelayCoefficients[:], basis)
}

// WetDelayScaleHeight evaluates
// a0·cos(2πt) + a1·cos(4πt) + a2·sin(2πt) + a3·cos(4πt) + a4.
func WetDelayScaleHeight(t float64) float64 {
	w := 2 * math.Pi * t
	cos2w := math.Cos(2 * w)
	basis := []float64{math.Cos(w), cos2w, math.Sin(w), cos2w, 1}
	return floats.Dot(WetDelayCoefficients[:], basis)
}

// Annual returns the fixed annual mean scale heights.
func Annual() ScaleHeights {
	return ScaleHeights{
		ZHD: HydrostaticScaleHeight,
		ZWD: AnnualWetScaleHeight,
		ZTD: AnnualTotalScaleHeight,
	}
}

// Seasonal returns the scale heights for the given day of year.
func Seasonal(dayOfYear float64) ScaleHeights {
	t := Phase(dayOfYear)
	return ScaleHeights{
		ZHD: HydrostaticScaleHeight,
		ZWD: WetDelayScaleHeight(t),
		ZTD: TotalDelayScaleHeight(t),
	}
}

// Select picks Seasonal(dayOfYear) or Annual() depending on useSeasonalModel.
func Select(dayOfYear float64, useSeasonalModel bool) ScaleHeights {
	if useSeasonalModel {
		return Seasonal(dayOfYear)
	}
	return Annual()
}
