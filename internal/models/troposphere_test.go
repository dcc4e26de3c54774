package models

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDelayTripleFromSlice(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   []float64
		want    DelayTriple
		wantErr bool
	}{
		{name: "three elements", input: []float64{2200, 150, 2350}, want: DelayTriple{ZHD: 2200, ZWD: 150, ZTD: 2350}},
		{name: "nil", input: nil, wantErr: true},
		{name: "two elements", input: []float64{2200, 150}, wantErr: true},
		{name: "four elements", input: []float64{2200, 150, 2350, 1}, wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := DelayTripleFromSlice(tt.input)
			if tt.wantErr {
				var lenErr *VectorLengthError
				require.True(t, errors.As(err, &lenErr))
				assert.Equal(t, len(tt.input), lenErr.Length)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.input, got.Slice())
		})
	}
}

func TestStationCoordinateFromSlice(t *testing.T) {
	coord, err := StationCoordinateFromSlice([]float64{22.3, 114.2, 50})
	require.NoError(t, err)
	assert.Equal(t, StationCoordinate{Latitude: 22.3, Longitude: 114.2, Height: 50}, coord)
	assert.Equal(t, []float64{22.3, 114.2, 50}, coord.Slice())

	_, err = StationCoordinateFromSlice([]float64{22.3, 114.2, 50, 0})
	require.Error(t, err)
	assert.Equal(t, "coordinate vector must have exactly 3 elements, got 4", err.Error())
}

func TestStationCoordinateJSON(t *testing.T) {
	var coord StationCoordinate
	err := json.Unmarshal([]byte(`{"lat":22.35,"lon":114.15,"height":200}`), &coord)
	require.NoError(t, err)
	assert.Equal(t, StationCoordinate{Latitude: 22.35, Longitude: 114.15, Height: 200}, coord)
}
