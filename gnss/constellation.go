package gnss

// ConstellationType identifies a satellite constellation in the original
// correction schema.
type ConstellationType int32

const (
	// ConstellationUnknown is an unidentified constellation.
	ConstellationUnknown ConstellationType = iota
	// ConstellationGPS is the US GPS constellation.
	ConstellationGPS
	// ConstellationSBAS covers satellite-based augmentation systems.
	ConstellationSBAS
	// ConstellationGLONASS is the Russian GLONASS constellation.
	ConstellationGLONASS
	// ConstellationQZSS is the Japanese QZSS constellation.
	ConstellationQZSS
	// ConstellationBeidou is the Chinese BeiDou constellation.
	ConstellationBeidou
	// ConstellationGalileo is the European Galileo constellation.
	ConstellationGalileo
)

// ConstellationTypeV2 is the widened enumeration used by the second schema
// revision. It is a superset of ConstellationType.
type ConstellationTypeV2 int32

const (
	// ConstellationV2Unknown is an unidentified constellation.
	ConstellationV2Unknown ConstellationTypeV2 = iota
	// ConstellationV2GPS is the US GPS constellation.
	ConstellationV2GPS
	// ConstellationV2SBAS covers satellite-based augmentation systems.
	ConstellationV2SBAS
	// ConstellationV2GLONASS is the Russian GLONASS constellation.
	ConstellationV2GLONASS
	// ConstellationV2QZSS is the Japanese QZSS constellation.
	ConstellationV2QZSS
	// ConstellationV2Beidou is the Chinese BeiDou constellation.
	ConstellationV2Beidou
	// ConstellationV2Galileo is the European Galileo constellation.
	ConstellationV2Galileo
	// ConstellationV2IRNSS is the Indian IRNSS/NavIC constellation, which has
	// no equivalent in the original enumeration.
	ConstellationV2IRNSS
)

// ToLegacy maps a widened constellation identifier onto the original
// enumeration. Constellations with no legacy equivalent map to
// ConstellationUnknown; the mapping is total and unmapped input is a normal
// case, not an error.
func ToLegacy(c ConstellationTypeV2) ConstellationType {
	switch c {
	case ConstellationV2GPS:
		return ConstellationGPS
	case ConstellationV2SBAS:
		return ConstellationSBAS
	case ConstellationV2GLONASS:
		return ConstellationGLONASS
	case ConstellationV2QZSS:
		return ConstellationQZSS
	case ConstellationV2Beidou:
		return ConstellationBeidou
	case ConstellationV2Galileo:
		return ConstellationGalileo
	default:
		return ConstellationUnknown
	}
}

func (c ConstellationType) String() string {
	switch c {
	case ConstellationGPS:
		return "GPS"
	case ConstellationSBAS:
		return "SBAS"
	case ConstellationGLONASS:
		return "GLONASS"
	case ConstellationQZSS:
		return "QZSS"
	case ConstellationBeidou:
		return "BeiDou"
	case ConstellationGalileo:
		return "Galileo"
	default:
		return "unknown"
	}
}

func (c ConstellationTypeV2) String() string {
	if c == ConstellationV2IRNSS {
		return "IRNSS"
	}
	return ToLegacy(c).String()
}
