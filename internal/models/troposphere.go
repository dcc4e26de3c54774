package models

import "fmt"

// DelayTriple holds the zenith tropospheric delays of a station, in millimeters.
// ZTD is nominally ZHD + ZWD but the three components are carried independently.
type DelayTriple struct {
	ZHD float64 `json:"zhd"`
	ZWD float64 `json:"zwd"`
	ZTD float64 `json:"ztd"`
}

// StationCoordinate is a station position: latitude and longitude in degrees,
// height in meters.
type StationCoordinate struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
	Height    float64 `json:"height"`
}

// VectorLength is the number of components in every vector form input.
const VectorLength = 3

// VectorLengthError is returned when a vector form input does not have exactly
// VectorLength elements.
type VectorLengthError struct {
	Name   string
	Length int
}

func (e *VectorLengthError) Error() string {
	return fmt.Sprintf("%s must have exactly %d elements, got %d", e.Name, VectorLength, e.Length)
}

// DelayTripleFromSlice builds a DelayTriple from [ZHD, ZWD, ZTD].
func DelayTripleFromSlice(v []float64) (DelayTriple, error) {
	if len(v) != VectorLength {
		return DelayTriple{}, &VectorLengthError{Name: "delay vector", Length: len(v)}
	}
	return DelayTriple{ZHD: v[0], ZWD: v[1], ZTD: v[2]}, nil
}

// StationCoordinateFromSlice builds a StationCoordinate from [lat, lon, height].
func StationCoordinateFromSlice(v []float64) (StationCoordinate, error) {
	if len(v) != VectorLength {
		return StationCoordinate{}, &VectorLengthError{Name: "coordinate vector", Length: len(v)}
	}
	return StationCoordinate{Latitude: v[0], Longitude: v[1], Height: v[2]}, nil
}

// Slice returns the delays as [ZHD, ZWD, ZTD].
func (d DelayTriple) Slice() []float64 {
	return []float64{d.ZHD, d.ZWD, d.ZTD}
}

// Slice returns the coordinate as [lat, lon, height].
func (c StationCoordinate) Slice() []float64 {
	return []float64{c.Latitude, c.Longitude, c.Height}
}
