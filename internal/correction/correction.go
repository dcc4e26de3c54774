// Package correction transfers zenith tropospheric delays measured at a
// reference station to a user station at a different height.
package correction

import (
	"fmt"
	"math"

	"github.com/bbernstein/gthc/internal/models"
	"github.com/bbernstein/gthc/internal/region"
	"github.com/bbernstein/gthc/internal/seasonal"
)

const (
	MinDayOfYear = 1
	MaxDayOfYear = 366
)

// Correct returns the user station delays for the given base station delays.
//
// The day of year is checked first, then both stations are checked against
// the model region. Nothing is computed unless all checks pass.
func Correct(
	base models.DelayTriple,
	baseCoord, userCoord models.StationCoordinate,
	dayOfYear float64,
	useSeasonalModel bool,
) (models.DelayTriple, error) {
	if err := validate(baseCoord, userCoord, dayOfYear, region.HongKong); err != nil {
		return models.DelayTriple{}, err
	}
	return apply(base, userCoord.Height-baseCoord.Height, seasonal.Select(dayOfYear, useSeasonalModel)), nil
}

// CorrectVectors is Correct over vector inputs: baseTrop is [ZHD, ZWD, ZTD] in
// mm, baseCoord and userCoord are [lat, lon, height]. The element count of
// every vector is checked before anything else. The result is [ZHD, ZWD, ZTD].
func CorrectVectors(baseTrop, baseCoord, userCoord []float64, dayOfYear float64, useSeasonalModel bool) ([]float64, error) {
	base, baseStation, userStation, err := fromVectors(baseTrop, baseCoord, userCoord)
	if err != nil {
		return nil, err
	}

	user, err := Correct(base, baseStation, userStation, dayOfYear, useSeasonalModel)
	if err != nil {
		return nil, err
	}
	return user.Slice(), nil
}

// Scale moves a single delay component across a height difference (user
// minus base, meters) with the given scale height:
//
//	value_user = value_base / exp(-Δh/β) = value_base · exp(Δh/β)
func Scale(value, heightDiff, beta float64) float64 {
	return value * math.Exp(heightDiff/beta)
}

// ValidateDayOfYear checks 1 <= dayOfYear <= 366. NaN is rejected.
func ValidateDayOfYear(dayOfYear float64) error {
	if !(dayOfYear >= MinDayOfYear && dayOfYear <= MaxDayOfYear) {
		return NewInvalidArgumentError(
			fmt.Sprintf("day of year must be between %d and %d, got %v", MinDayOfYear, MaxDayOfYear, dayOfYear), nil)
	}
	return nil
}

const shapeMessage = "all input vectors must have exactly 3 elements"

func fromVectors(baseTrop, baseCoord, userCoord []float64) (base models.DelayTriple, baseStation, userStation models.StationCoordinate, err error) {
	if base, err = models.DelayTripleFromSlice(baseTrop); err != nil {
		return base, baseStation, userStation, NewInvalidArgumentError(shapeMessage, err)
	}
	if baseStation, err = models.StationCoordinateFromSlice(baseCoord); err != nil {
		return base, baseStation, userStation, NewInvalidArgumentError(shapeMessage, err)
	}
	if userStation, err = models.StationCoordinateFromSlice(userCoord); err != nil {
		return base, baseStation, userStation, NewInvalidArgumentError(shapeMessage, err)
	}
	return base, baseStation, userStation, nil
}

func validate(baseCoord, userCoord models.StationCoordinate, dayOfYear float64, box region.BoundingBox) error {
	if err := ValidateDayOfYear(dayOfYear); err != nil {
		return err
	}
	if !box.Contains(baseCoord.Latitude, baseCoord.Longitude) || !box.Contains(userCoord.Latitude, userCoord.Longitude) {
		return NewOutOfDomainError(box)
	}
	return nil
}

func apply(base models.DelayTriple, heightDiff float64, beta seasonal.ScaleHeights) models.DelayTriple {
	return models.DelayTriple{
		ZHD: Scale(base.ZHD, heightDiff, beta.ZHD),
		ZWD: Scale(base.ZWD, heightDiff, beta.ZWD),
		ZTD: Scale(base.ZTD, heightDiff, beta.ZTD),
	}
}
