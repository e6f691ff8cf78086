// Package version holds the CLI version string.
package version

// Version is the semantic version of the draft CLI. Release tooling
// overrides it at build time via -ldflags.
var Version = "0.1.0"
