package version

// version is overridden at build time via
// -ldflags "-X github.com/meqash/RfPy/internal/version.version=v0.9.0".
var version = "dev"

// String returns the build version.
func String() string {
	return version
}
