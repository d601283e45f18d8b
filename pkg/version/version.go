package version

// version is overridden at build time with -ldflags "-X vending/pkg/version.version=...".
var version = "dev"

// Version reports the build version.
func Version() string {
	return version
}
