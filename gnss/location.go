// Package gnss holds the decoded GNSS data types shared by the conformance
// checks: location reports, presence flags, and the constellation
// enumerations of both HAL schema revisions.
package gnss

import (
	"github.com/golang/geo/r3"
	geo "github.com/kellydunn/golang-geo"
)

// LocationFlags marks which optional fields of a Location the receiver
// populated. The bit values match the HAL wire enum.
type LocationFlags uint32

const (
	// HasLatLong is set when latitude and longitude are populated.
	HasLatLong LocationFlags = 1 << iota
	// HasAltitude is set when altitude is populated.
	HasAltitude
	// HasSpeed is set when ground speed is populated.
	HasSpeed
	// HasBearing is set when bearing is populated.
	HasBearing
	// HasHorizontalAccuracy is set when the horizontal accuracy estimate is populated.
	HasHorizontalAccuracy
	// HasVerticalAccuracy is set when the vertical accuracy estimate is populated.
	HasVerticalAccuracy
	// HasSpeedAccuracy is set when the speed accuracy estimate is populated.
	HasSpeedAccuracy
	// HasBearingAccuracy is set when the bearing accuracy estimate is populated.
	HasBearingAccuracy
)

// Has reports whether every flag in f is set.
func (lf LocationFlags) Has(f LocationFlags) bool {
	return lf&f == f
}

// Location is a single decoded location report from the receiver under test.
// Fields other than latitude, longitude, and altitude are only meaningful
// when the matching presence flag is set.
type Location struct {
	Flags                     LocationFlags
	LatitudeDegrees           float64
	LongitudeDegrees          float64
	AltitudeMeters            float64
	SpeedMetersPerSec         float64
	BearingDegrees            float64
	HorizontalAccuracyMeters  float64
	VerticalAccuracyMeters    float64
	SpeedAccuracyMetersPerSec float64
	BearingAccuracyDegrees    float64
	// TimestampMillis is the fix time in milliseconds since the Unix epoch.
	TimestampMillis int64
}

// Point returns the reported position as a geo point.
func (l *Location) Point() *geo.Point {
	return geo.NewPoint(l.LatitudeDegrees, l.LongitudeDegrees)
}

// LinearVelocity returns the reported ground speed as a velocity vector with
// Y forward, matching the movement sensor convention.
func (l *Location) LinearVelocity() r3.Vector {
	return r3.Vector{Y: l.SpeedMetersPerSec}
}
