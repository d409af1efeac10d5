// internal/version/version.go
package version

// Version is the program version. It can be overridden at build time with
// -ldflags "-X fastats/internal/version.Version=...".
var Version = "1.0.0"
