// Package vts implements the conformance checks run against a GNSS HAL:
// field-presence and numeric-range validation of location reports, plus the
// device-class probe the suites use to pick their expectations.
package vts

import (
	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"go.viam.com/gnssvts/gnss"
)

// Fixes must be timestamped after 2017 (47 years of milliseconds since the
// Unix epoch); anything earlier means the receiver never got time from the
// constellation.
const minTimestampMillis = int64(1.48e12)

// A Recorder collects conformance failures. *testing.T satisfies it. Every
// violated rule is reported and checking continues, so a single run surfaces
// all violations rather than just the first.
type Recorder interface {
	Errorf(format string, args ...interface{})
}

// CheckLocation verifies presence flags and numeric ranges on a location
// report. checkSpeed is set when the fix was taken with the rig in a known
// stationary state; checkMoreAccuracies when the hardware is recent enough to
// report the extra accuracy estimates.
func CheckLocation(rec Recorder, loc gnss.Location, checkSpeed, checkMoreAccuracies bool) {
	if !loc.Flags.Has(gnss.HasLatLong) {
		rec.Errorf("location flags %#x missing lat/long", uint32(loc.Flags))
	}
	if !loc.Flags.Has(gnss.HasAltitude) {
		rec.Errorf("location flags %#x missing altitude", uint32(loc.Flags))
	}
	if checkSpeed && !loc.Flags.Has(gnss.HasSpeed) {
		rec.Errorf("location flags %#x missing speed", uint32(loc.Flags))
	}
	if !loc.Flags.Has(gnss.HasHorizontalAccuracy) {
		rec.Errorf("location flags %#x missing horizontal accuracy", uint32(loc.Flags))
	}
	// The extra uncertainty estimates must be provided, at least when paired
	// with modern hardware (2017+).
	if checkMoreAccuracies {
		if !loc.Flags.Has(gnss.HasVerticalAccuracy) {
			rec.Errorf("location flags %#x missing vertical accuracy", uint32(loc.Flags))
		}
		if checkSpeed {
			if !loc.Flags.Has(gnss.HasSpeedAccuracy) {
				rec.Errorf("location flags %#x missing speed accuracy", uint32(loc.Flags))
			}
			if loc.Flags.Has(gnss.HasBearing) && !loc.Flags.Has(gnss.HasBearingAccuracy) {
				rec.Errorf("location flags %#x missing bearing accuracy", uint32(loc.Flags))
			}
		}
	}

	if loc.LatitudeDegrees < -90.0 || loc.LatitudeDegrees > 90.0 {
		rec.Errorf("latitude %f out of range [-90, 90]", loc.LatitudeDegrees)
	}
	if loc.LongitudeDegrees < -180.0 || loc.LongitudeDegrees > 180.0 {
		rec.Errorf("longitude %f out of range [-180, 180]", loc.LongitudeDegrees)
	}
	if loc.AltitudeMeters < -1000.0 || loc.AltitudeMeters > 30000.0 {
		rec.Errorf("altitude %f out of range [-1000, 30000]", loc.AltitudeMeters)
	}
	if checkSpeed {
		// The conformance rig is stationary.
		if loc.SpeedMetersPerSec < 0.0 || loc.SpeedMetersPerSec > 5.0 {
			rec.Errorf("speed %f out of range [0, 5]", loc.SpeedMetersPerSec)
		}
		// Non-zero speeds must be reported with an associated bearing.
		if loc.SpeedMetersPerSec > 0.0 && !loc.Flags.Has(gnss.HasBearing) {
			rec.Errorf("speed %f reported without a bearing", loc.SpeedMetersPerSec)
		}
	}

	// Tolerate some especially high accuracy estimates, in case of a first
	// fix with especially poor geometry (happens occasionally).
	if loc.HorizontalAccuracyMeters <= 0.0 || loc.HorizontalAccuracyMeters > 250.0 {
		rec.Errorf("horizontal accuracy %f out of range (0, 250]", loc.HorizontalAccuracyMeters)
	}

	// Some devices report bearing as -180 to +180, others as 0 to 360. Both
	// are okay and understandable.
	if loc.Flags.Has(gnss.HasBearing) {
		if loc.BearingDegrees < -180.0 || loc.BearingDegrees > 360.0 {
			rec.Errorf("bearing %f out of range [-180, 360]", loc.BearingDegrees)
		}
	}
	if loc.Flags.Has(gnss.HasVerticalAccuracy) {
		if loc.VerticalAccuracyMeters <= 0.0 || loc.VerticalAccuracyMeters > 500.0 {
			rec.Errorf("vertical accuracy %f out of range (0, 500]", loc.VerticalAccuracyMeters)
		}
	}
	if loc.Flags.Has(gnss.HasSpeedAccuracy) {
		if loc.SpeedAccuracyMetersPerSec <= 0.0 || loc.SpeedAccuracyMetersPerSec > 50.0 {
			rec.Errorf("speed accuracy %f out of range (0, 50]", loc.SpeedAccuracyMetersPerSec)
		}
	}
	if loc.Flags.Has(gnss.HasBearingAccuracy) {
		if loc.BearingAccuracyDegrees <= 0.0 || loc.BearingAccuracyDegrees > 360.0 {
			rec.Errorf("bearing accuracy %f out of range (0, 360]", loc.BearingAccuracyDegrees)
		}
	}

	if loc.TimestampMillis <= minTimestampMillis {
		rec.Errorf("timestamp %d predates 2017", loc.TimestampMillis)
	}
}

// ValidateLocation runs the same checks as CheckLocation and returns the
// violations combined into a single error, nil when the report is clean.
func ValidateLocation(loc gnss.Location, checkSpeed, checkMoreAccuracies bool) error {
	var rec errorRecorder
	CheckLocation(&rec, loc, checkSpeed, checkMoreAccuracies)
	return rec.err
}

type errorRecorder struct {
	err error
}

func (r *errorRecorder) Errorf(format string, args ...interface{}) {
	r.err = multierr.Append(r.err, errors.Errorf(format, args...))
}
