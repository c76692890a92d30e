// Package version holds the release string printed by every tool.
package version

// Version is overridden at build time with -ldflags "-X resmap/internal/version.Version=...".
var Version = "0.3.0"
