// Package tokens maps theme variables onto the semantic design token schema:
// colors, typography, spacing, corner radius and border width.
package tokens

import (
	"slices"

	"tokconv/common"
)

// Optional string fields are empty when absent.
type (
	ColorToken struct {
		Key       string `json:"key"`
		Value     string `json:"value"`
		DarkValue string `json:"darkValue,omitempty"`
		Purpose   string `json:"purpose,omitempty"`
	}

	TypographyToken struct {
		Key     string `json:"key"`
		Value   string `json:"value"`
		Unit    string `json:"unit,omitempty"`
		Purpose string `json:"purpose,omitempty"`
	}

	NumericToken struct {
		Key     string  `json:"key"`
		Value   float64 `json:"value"`
		Unit    string  `json:"unit"`
		Purpose string  `json:"purpose,omitempty"`
	}
)

// Set is complete token catalog of a theme. Maps are keyed by token key, later
// assignment to the same key replaces earlier token.
type Set struct {
	Colors       map[string]ColorToken      `json:"colors"`
	Typography   map[string]TypographyToken `json:"typography"`
	Spacing      map[string]NumericToken    `json:"spacing"`
	BorderRadius map[string]NumericToken    `json:"borderRadius"`
	BorderWidth  map[string]NumericToken    `json:"borderWidth"`
}

func NewSet() *Set {
	return &Set{
		Colors:       make(map[string]ColorToken),
		Typography:   make(map[string]TypographyToken),
		Spacing:      make(map[string]NumericToken),
		BorderRadius: make(map[string]NumericToken),
		BorderWidth:  make(map[string]NumericToken),
	}
}

// Len returns total number of tokens.
func (s *Set) Len() int {
	return len(s.Colors) + len(s.Typography) + len(s.Spacing) + len(s.BorderRadius) + len(s.BorderWidth)
}

// Keys returns all token keys in sorted order.
func (s *Set) Keys() []string {
	keys := make([]string, 0, s.Len())
	for k := range s.Colors {
		keys = append(keys, k)
	}
	for k := range s.Typography {
		keys = append(keys, k)
	}
	for _, m := range []map[string]NumericToken{s.Spacing, s.BorderRadius, s.BorderWidth} {
		for k := range m {
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)
	return keys
}

// SortedKeys returns keys of a token map in sorted order.
func SortedKeys[T any](m map[string]T) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Options controls mapping and rendering.
type Options struct {
	DarkMode        common.DarkModeStrategy
	IncludeComments bool
	// Namespace is a label for generated documents, not validated.
	Namespace string
}

// DefaultNamespace is used when no namespace is configured.
const DefaultNamespace = "FlagstoneUI.Resources"

func DefaultOptions() Options {
	return Options{
		DarkMode:        common.DarkModeStrategyAuto,
		IncludeComments: true,
		Namespace:       DefaultNamespace,
	}
}
