// Package datablock loads D&B Data Blocks JSON documents into a relational
// database and provides read access to the loaded companies.
package datablock

var (
	// Version of the datablock app. It is set by ldflags at build time.
	Version = "v0.1.0"

	// Build timestamp. It is set by ldflags at build time.
	Build = "n/a"
)
