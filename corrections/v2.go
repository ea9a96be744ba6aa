package corrections

import "go.viam.com/gnssvts/gnss"

// SingleSatCorrectionV2 wraps the original correction record for the second
// schema revision, which widens the constellation enumeration.
type SingleSatCorrectionV2 struct {
	V1 SingleSatCorrection
	// Constellation supersedes V1.Constellation, which is reset to
	// ConstellationUnknown so only one layer names the constellation.
	Constellation gnss.ConstellationTypeV2
}

// MeasurementCorrectionsV2 wraps the original aggregate and adds the
// environment bearing estimate.
type MeasurementCorrectionsV2 struct {
	V1 MeasurementCorrections
	// HasEnvironmentBearing is set when the environment bearing fields below
	// are populated.
	HasEnvironmentBearing                bool
	EnvironmentBearingDegrees            float64
	EnvironmentBearingUncertaintyDegrees float64
	SatCorrections                       []SingleSatCorrectionV2
}
