package gnss

import (
	"testing"

	"go.viam.com/test"
)

func TestToLegacy(t *testing.T) {
	expected := map[ConstellationTypeV2]ConstellationType{
		ConstellationV2Unknown: ConstellationUnknown,
		ConstellationV2GPS:     ConstellationGPS,
		ConstellationV2SBAS:    ConstellationSBAS,
		ConstellationV2GLONASS: ConstellationGLONASS,
		ConstellationV2QZSS:    ConstellationQZSS,
		ConstellationV2Beidou:  ConstellationBeidou,
		ConstellationV2Galileo: ConstellationGalileo,
		// IRNSS has no legacy equivalent.
		ConstellationV2IRNSS: ConstellationUnknown,
	}
	for v2, want := range expected {
		test.That(t, ToLegacy(v2), test.ShouldEqual, want)
	}

	// Values from future enum revisions still map somewhere.
	test.That(t, ToLegacy(ConstellationTypeV2(42)), test.ShouldEqual, ConstellationUnknown)
	test.That(t, ToLegacy(ConstellationTypeV2(-1)), test.ShouldEqual, ConstellationUnknown)
}

func TestConstellationStrings(t *testing.T) {
	test.That(t, ConstellationGPS.String(), test.ShouldEqual, "GPS")
	test.That(t, ConstellationGalileo.String(), test.ShouldEqual, "Galileo")
	test.That(t, ConstellationUnknown.String(), test.ShouldEqual, "unknown")
	test.That(t, ConstellationV2IRNSS.String(), test.ShouldEqual, "IRNSS")
	test.That(t, ConstellationV2Beidou.String(), test.ShouldEqual, "BeiDou")
	test.That(t, ConstellationTypeV2(42).String(), test.ShouldEqual, "unknown")
}
