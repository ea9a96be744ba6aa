package corrections

import "go.viam.com/gnssvts/gnss"

// MockCorrections returns the fixed correction set the conformance suites
// inject into the original measurement-correction API: two GPS satellites,
// the first with a reflecting plane attached. Repeated calls return deeply
// equal records.
func MockCorrections() MeasurementCorrections {
	sat1 := SingleSatCorrection{
		Flags: HasSatIsLOSProbability | HasExcessPathLength |
			HasExcessPathLengthUncertainty | HasReflectingPlane,
		Constellation:                     gnss.ConstellationGPS,
		SVID:                              12,
		CarrierFrequencyHz:                1.59975e9,
		ProbSatIsLOS:                      0.50001,
		ExcessPathLengthMeters:            137.4802,
		ExcessPathLengthUncertaintyMeters: 25.5,
		ReflectingPlane: &ReflectingPlane{
			LatitudeDegrees:  37.4220039,
			LongitudeDegrees: -122.0840991,
			AltitudeMeters:   250.35,
			AzimuthDegrees:   203.0,
		},
	}
	sat2 := SingleSatCorrection{
		Flags: HasSatIsLOSProbability | HasExcessPathLength |
			HasExcessPathLengthUncertainty,
		Constellation:                     gnss.ConstellationGPS,
		SVID:                              9,
		CarrierFrequencyHz:                1.59975e9,
		ProbSatIsLOS:                      0.873,
		ExcessPathLengthMeters:            26.294,
		ExcessPathLengthUncertaintyMeters: 10.0,
	}

	return MeasurementCorrections{
		LatitudeDegrees:                     37.4219999,
		LongitudeDegrees:                    -122.0840575,
		AltitudeMeters:                      30.60062531,
		HorizontalPositionUncertaintyMeters: 9.23542,
		VerticalPositionUncertaintyMeters:   15.02341,
		TOAGPSNanosecondsOfWeek:             2935633453,
		SatCorrections:                      []SingleSatCorrection{sat1, sat2},
	}
}

// MockCorrectionsV2 derives the second-revision fixture from the original
// set. The outer per-satellite records carry IRNSS while every wrapped v1
// correction is reset to ConstellationUnknown, so the two schema layers never
// disagree about the constellation.
func MockCorrectionsV2() MeasurementCorrectionsV2 {
	v1 := MockCorrections()

	sats := make([]SingleSatCorrectionV2, len(v1.SatCorrections))
	for i := range v1.SatCorrections {
		v1.SatCorrections[i].Constellation = gnss.ConstellationUnknown
		wrapped := v1.SatCorrections[i]
		if wrapped.ReflectingPlane != nil {
			// Copy the plane so the wrapper and the aggregate stay
			// independent records.
			plane := *wrapped.ReflectingPlane
			wrapped.ReflectingPlane = &plane
		}
		sats[i] = SingleSatCorrectionV2{
			V1:            wrapped,
			Constellation: gnss.ConstellationV2IRNSS,
		}
	}

	return MeasurementCorrectionsV2{
		V1:                                   v1,
		HasEnvironmentBearing:                true,
		EnvironmentBearingDegrees:            45.0,
		EnvironmentBearingUncertaintyDegrees: 4.0,
		SatCorrections:                       sats,
	}
}
