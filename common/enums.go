// Package common holds enums shared by configuration, command line and the
// conversion packages.
package common

import "strings"

//go:generate go tool go-enum --marshal --names --values

// Syntax of theme variable declarations in a source.
// ENUM(auto, css, scss)
type SourceFormat int

// DetectSourceFormat resolves format from source identifier (file path or URL)
// extension. Returns SourceFormatAuto when extension is not recognized.
func DetectSourceFormat(source string) SourceFormat {
	// URLs may carry query or fragment
	if i := strings.IndexAny(source, "?#"); i >= 0 && strings.Contains(source, "://") {
		source = source[:i]
	}
	source = strings.ToLower(source)
	switch {
	case strings.HasSuffix(source, ".scss"):
		return SourceFormatScss
	case strings.HasSuffix(source, ".css"):
		return SourceFormatCss
	default:
		return SourceFormatAuto
	}
}

// Strategy for producing dark mode color variants.
// ENUM(auto, manual, none)
type DarkModeStrategy int

// Generates reports whether dark values should be computed from light ones.
func (d DarkModeStrategy) Generates() bool {
	return d == DarkModeStrategyAuto
}
