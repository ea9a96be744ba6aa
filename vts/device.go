package vts

import "os"

// hardwareTypeVar mirrors the ro.hardware.type system property; outside the
// device it is surfaced to the suite through the environment.
const hardwareTypeVar = "RO_HARDWARE_TYPE"

// IsAutomotiveDevice reports whether the device under test self-identifies as
// automotive. A missing or empty property is a normal case, never an error.
func IsAutomotiveDevice() bool {
	return os.Getenv(hardwareTypeVar) == "automotive"
}
