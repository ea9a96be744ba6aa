package gnss

import (
	"strings"
	"time"

	"github.com/adrianmo/go-nmea"
	"github.com/pkg/errors"
)

const (
	metersPerSecPerKnot = 0.51444444444

	// Nominal user-equivalent range error used to turn a DOP value into a
	// meter-level accuracy estimate.
	uereMeters = 5.0
)

// NMEAAccumulator folds a stream of NMEA sentences into a Location, setting
// presence flags as fields arrive. GGA supplies position and altitude, RMC
// supplies speed, bearing, and the fix timestamp, and GSA supplies the DOP
// values behind the accuracy estimates. It is not safe for concurrent use.
type NMEAAccumulator struct {
	loc Location
}

// ParseAndUpdate folds one sentence into the accumulated location. Sentence
// types with no field mapping are ignored.
func (a *NMEAAccumulator) ParseAndUpdate(line string) error {
	s, err := nmea.Parse(strings.TrimSpace(line))
	if err != nil {
		return errors.Wrap(err, "can't parse nmea sentence")
	}

	switch s.DataType() {
	case nmea.TypeGGA:
		gga := s.(nmea.GGA)
		if gga.FixQuality == nmea.Invalid {
			return nil
		}
		a.loc.LatitudeDegrees = gga.Latitude
		a.loc.LongitudeDegrees = gga.Longitude
		a.loc.AltitudeMeters = gga.Altitude
		a.loc.Flags |= HasLatLong | HasAltitude
		if gga.HDOP > 0 {
			a.loc.HorizontalAccuracyMeters = gga.HDOP * uereMeters
			a.loc.Flags |= HasHorizontalAccuracy
		}
	case nmea.TypeRMC:
		rmc := s.(nmea.RMC)
		if rmc.Validity != nmea.ValidRMC {
			return nil
		}
		a.loc.SpeedMetersPerSec = rmc.Speed * metersPerSecPerKnot
		a.loc.Flags |= HasSpeed
		if rmc.Speed > 0 {
			a.loc.BearingDegrees = rmc.Course
			a.loc.Flags |= HasBearing
		}
		if rmc.Date.Valid && rmc.Time.Valid {
			a.loc.TimestampMillis = fixTime(rmc.Date, rmc.Time).UnixMilli()
		}
	case nmea.TypeGSA:
		gsa := s.(nmea.GSA)
		if gsa.VDOP > 0 {
			a.loc.VerticalAccuracyMeters = gsa.VDOP * uereMeters
			a.loc.Flags |= HasVerticalAccuracy
		}
	}
	return nil
}

// Location returns a copy of the accumulated location.
func (a *NMEAAccumulator) Location() Location {
	return a.loc
}

func fixTime(d nmea.Date, t nmea.Time) time.Time {
	return time.Date(2000+int(d.YY), time.Month(d.MM), int(d.DD),
		int(t.Hour), int(t.Minute), int(t.Second),
		int(t.Millisecond)*int(time.Millisecond), time.UTC)
}
