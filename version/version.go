// Package version reports the swe-go library version.
package version

import "fmt"

// Library version components.
const (
	Major = 1
	Minor = 0
	Patch = 0
)

// Number is the combined numeric version, (major * 1,000,000) +
// (minor * 1,000) + patch. Useful for numeric comparisons.
const Number = Major*1_000_000 + Minor*1_000 + Patch

// String returns the version as "major.minor.patch".
func String() string {
	return fmt.Sprintf("%d.%d.%d", Major, Minor, Patch)
}

// Parts returns the major, minor, and patch components.
func Parts() (major, minor, patch int) {
	return Major, Minor, Patch
}

// Check reports whether the given components exactly match the library
// version. It helps catch a mismatch between the version an application
// was written against and the library it is built with.
func Check(major, minor, patch int) bool {
	return major == Major && minor == Minor && patch == Patch
}
