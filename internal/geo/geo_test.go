package geo

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
)

var (
	lagos = orb.Point{3.3792, 6.5244}
	abuja = orb.Point{7.4951, 9.0579}
	kano  = orb.Point{8.5920, 12.0022}
)

func TestDistance_KnownPairs(t *testing.T) {
	// Reference distances precomputed with the haversine formula, R=6371 km.
	assert.InDelta(t, 533.80, Distance(lagos, abuja), 1.0)
	assert.InDelta(t, 348.66, Distance(abuja, kano), 1.0)
}

func TestDistance_ZeroForSamePoint(t *testing.T) {
	assert.Equal(t, 0.0, Distance(lagos, lagos))
}

func TestDistance_Symmetric(t *testing.T) {
	assert.Equal(t, Distance(lagos, abuja), Distance(abuja, lagos))
}

func TestDistance_RoundedToTwoDecimals(t *testing.T) {
	d := Distance(lagos, abuja)
	assert.Equal(t, math.Round(d*100)/100, d)
}

func TestBoundingBox_ContainsCenter(t *testing.T) {
	bound := BoundingBox(lagos, 25)
	assert.True(t, bound.Contains(lagos))
}

func TestBoundingBox_CoversRadius(t *testing.T) {
	// Every point at geodesic distance <= radius must fall inside the box;
	// probe the four cardinal edge midpoints.
	const radiusKm = 10.0
	bound := BoundingBox(abuja, radiusKm)

	latDelta := (radiusKm / EarthRadiusKm) * (180 / math.Pi)
	north := orb.Point{abuja.Lon(), abuja.Lat() + latDelta*0.99}
	south := orb.Point{abuja.Lon(), abuja.Lat() - latDelta*0.99}

	assert.True(t, bound.Contains(north))
	assert.True(t, bound.Contains(south))
	assert.LessOrEqual(t, Distance(abuja, north), radiusKm)
	assert.LessOrEqual(t, Distance(abuja, south), radiusKm)
}

func TestBoundingBox_WidensWithLatitude(t *testing.T) {
	// At higher latitude a degree of longitude spans fewer kilometers, so the
	// longitude extent of the box must grow.
	nearEquator := BoundingBox(orb.Point{3.0, 1.0}, 10)
	farNorth := BoundingBox(orb.Point{3.0, 60.0}, 10)

	equatorSpan := nearEquator.Max.Lon() - nearEquator.Min.Lon()
	northSpan := farNorth.Max.Lon() - farNorth.Min.Lon()

	assert.Greater(t, northSpan, equatorSpan)
}
