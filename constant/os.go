// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

// GOOS values with a known URL opener.
const (
	Windows = "windows"
	Darwin  = "darwin"
	Linux   = "linux"
	Android = "android"
	FreeBSD = "freebsd"
	OpenBSD = "openbsd"
	NetBSD  = "netbsd"
)
