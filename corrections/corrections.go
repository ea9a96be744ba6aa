// Package corrections defines the measurement-correction records exchanged
// with the HAL across both schema revisions, plus the fixed fixtures the
// conformance suites feed to the correction APIs.
package corrections

import "go.viam.com/gnssvts/gnss"

// SingleSatCorrectionFlags marks which optional fields of a
// SingleSatCorrection are populated.
type SingleSatCorrectionFlags uint16

const (
	// HasSatIsLOSProbability is set when the line-of-sight probability is populated.
	HasSatIsLOSProbability SingleSatCorrectionFlags = 1 << iota
	// HasExcessPathLength is set when the excess path length is populated.
	HasExcessPathLength
	// HasExcessPathLengthUncertainty is set when the excess path length uncertainty is populated.
	HasExcessPathLengthUncertainty
	// HasReflectingPlane is set when a reflecting plane is attached.
	HasReflectingPlane
)

// Has reports whether every flag in f is set.
func (sf SingleSatCorrectionFlags) Has(f SingleSatCorrectionFlags) bool {
	return sf&f == f
}

// ReflectingPlane models the surface assumed to have reflected a multipath
// signal.
type ReflectingPlane struct {
	LatitudeDegrees  float64
	LongitudeDegrees float64
	AltitudeMeters   float64
	AzimuthDegrees   float64
}

// SingleSatCorrection carries the correction estimates for one satellite
// signal.
type SingleSatCorrection struct {
	Flags              SingleSatCorrectionFlags
	Constellation      gnss.ConstellationType
	SVID               int32
	CarrierFrequencyHz float64
	// ProbSatIsLOS is the probability the signal arrived on a direct path.
	ProbSatIsLOS                      float64
	ExcessPathLengthMeters            float64
	ExcessPathLengthUncertaintyMeters float64
	// ReflectingPlane is nil unless HasReflectingPlane is set.
	ReflectingPlane *ReflectingPlane
}

// MeasurementCorrections aggregates per-satellite corrections around the
// position they were computed for.
type MeasurementCorrections struct {
	LatitudeDegrees                     float64
	LongitudeDegrees                    float64
	AltitudeMeters                      float64
	HorizontalPositionUncertaintyMeters float64
	VerticalPositionUncertaintyMeters   float64
	TOAGPSNanosecondsOfWeek             uint64
	SatCorrections                      []SingleSatCorrection
}
