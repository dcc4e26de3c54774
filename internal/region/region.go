package region

import "fmt"

// BoundingBox is a closed latitude/longitude rectangle in degrees.
type BoundingBox struct {
	MinLat float64 `json:"minLat"`
	MaxLat float64 `json:"maxLat"`
	MinLon float64 `json:"minLon"`
	MaxLon float64 `json:"maxLon"`
}

// HongKong is the region the height correction coefficients were fitted for.
var HongKong = BoundingBox{
	MinLat: 22.1,
	MaxLat: 22.6,
	MinLon: 113.8,
	MaxLon: 114.5,
}

// Contains reports whether (lat, lon) lies inside the box, edges included.
// NaN never matches.
func (b BoundingBox) Contains(lat, lon float64) bool {
	return lat >= b.MinLat && lat <= b.MaxLat &&
		lon >= b.MinLon && lon <= b.MaxLon
}

func (b BoundingBox) String() string {
	return fmt.Sprintf("Lat: %g-%g, Lon: %g-%g", b.MinLat, b.MaxLat, b.MinLon, b.MaxLon)
}

// IsInRegion reports whether (lat, lon) lies inside the HongKong box.
func IsInRegion(lat, lon float64) bool {
	return HongKong.Contains(lat, lon)
}
