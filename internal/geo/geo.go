// Package geo provides great-circle distance and bounding-box helpers used by
// the proximity search pre-filters. Points follow the GeoJSON convention of
// [longitude, latitude].
package geo

import (
	"math"

	"github.com/paulmach/orb"
)

// EarthRadiusKm is the mean earth radius used by the haversine formula.
const EarthRadiusKm = 6371.0

// Distance returns the great-circle distance between two points in
// kilometers, computed with the haversine formula and rounded to two
// decimal places.
func Distance(a, b orb.Point) float64 {
	dLat := toRadians(b.Lat() - a.Lat())
	dLon := toRadians(b.Lon() - a.Lon())

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(a.Lat()))*math.Cos(toRadians(b.Lat()))*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return math.Round(EarthRadiusKm*c*100) / 100
}

// BoundingBox returns an approximate square envelope of radiusKm around
// center, for coarse pre-filtering before a precise radius check. The
// repository layer runs proximity queries natively in PostGIS, so the box
// is an advisory helper for callers without access to the store. The
// longitude delta is widened by cos(latitude) to compensate for meridian
// convergence. The box degenerates near the poles (cos -> 0); callers must
// not rely on it beyond about +-89 degrees latitude.
func BoundingBox(center orb.Point, radiusKm float64) orb.Bound {
	latDelta := (radiusKm / EarthRadiusKm) * (180 / math.Pi)
	lngDelta := latDelta / math.Cos(toRadians(center.Lat()))

	return orb.Bound{
		Min: orb.Point{center.Lon() - lngDelta, center.Lat() - latDelta},
		Max: orb.Point{center.Lon() + lngDelta, center.Lat() + latDelta},
	}
}

func toRadians(degrees float64) float64 {
	return degrees * (math.Pi / 180)
}
