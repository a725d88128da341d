// Package pdfscope provides the version information for pdfscope.
package pdfscope

// Version is the current version of pdfscope.
const Version = "0.1.0"

// GetVersion returns the current version string.
func GetVersion() string {
	return Version
}
