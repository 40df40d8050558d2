package variables

import (
	"strings"
)

// Category of theme variable, decided by its name.
type Category int

const (
	CategoryColor Category = iota
	CategoryTypography
	CategorySpacing
	CategoryBorder
	CategoryOther
)

var categoryNames = [...]string{"Color", "Typography", "Spacing", "Border", "Other"}

func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return "Unknown"
	}
	return categoryNames[c]
}

// Categories lists all categories in classification priority order.
func Categories() []Category {
	return []Category{CategoryColor, CategoryTypography, CategorySpacing, CategoryBorder, CategoryOther}
}

// Keyword lists are matched as case-insensitive substrings of normalized name.
var (
	colorKeywords = []string{
		"primary", "secondary", "success", "danger", "warning", "info", "light", "dark",
		"color", "bg", "background", "border-color", "text",
	}
	// names starting with one of these are palette colors (gray-100, blue, ...)
	paletteColors = []string{
		"white", "black", "gray", "grey", "red", "blue", "green",
		"yellow", "orange", "purple", "pink", "cyan", "teal", "indigo", "brown",
	}
	typographyKeywords = []string{"font", "text", "line-height", "letter-spacing"}
	spacingKeywords    = []string{"spacer", "margin", "padding", "gap"}
	borderKeywords     = []string{"border-radius", "border-width", "rounded"}
)

func containsAny(name string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(name, k) {
			return true
		}
	}
	return false
}

func hasAnyPrefix(name string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(name, p) {
			return true
		}
	}
	return false
}

// Categorize classifies variable name. Categories are tested in fixed order
// Color, Typography, Spacing, Border and the first match wins, so
// "link-hover-color" is a color and "font-weight-light" is a color too.
func Categorize(name string) Category {
	name = NormalizeName(name)
	switch {
	case containsAny(name, colorKeywords) || hasAnyPrefix(name, paletteColors):
		return CategoryColor
	case containsAny(name, typographyKeywords):
		return CategoryTypography
	case containsAny(name, spacingKeywords):
		return CategorySpacing
	case containsAny(name, borderKeywords):
		return CategoryBorder
	default:
		return CategoryOther
	}
}

// NormalizeName converts variable name from any supported syntax to the form
// used as Set key: lowercase with "--bs-", "--" or "$" prefix removed.
func NormalizeName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.TrimPrefix(name, "$")
	if n, ok := strings.CutPrefix(name, "--bs-"); ok {
		return n
	}
	return strings.TrimPrefix(name, "--")
}

// Set is the result of parsing: resolved variable values partitioned by
// category. Keys are normalized names.
type Set struct {
	Colors     map[string]string
	Typography map[string]string
	Spacing    map[string]string
	Borders    map[string]string
	Other      map[string]string
	// Warnings collected while resolving references.
	Warnings []string
}

func NewSet() *Set {
	return &Set{
		Colors:     make(map[string]string),
		Typography: make(map[string]string),
		Spacing:    make(map[string]string),
		Borders:    make(map[string]string),
		Other:      make(map[string]string),
	}
}

// Category returns map holding variables of requested category.
func (s *Set) Category(c Category) map[string]string {
	switch c {
	case CategoryColor:
		return s.Colors
	case CategoryTypography:
		return s.Typography
	case CategorySpacing:
		return s.Spacing
	case CategoryBorder:
		return s.Borders
	default:
		return s.Other
	}
}

// Add puts value under normalized name into category decided by name.
func (s *Set) Add(name, value string) Category {
	c := Categorize(name)
	s.Category(c)[NormalizeName(name)] = value
	return c
}

// Len returns total number of variables.
func (s *Set) Len() int {
	return len(s.Colors) + len(s.Typography) + len(s.Spacing) + len(s.Borders) + len(s.Other)
}

// Lookup finds variable by name in any category.
func (s *Set) Lookup(name string) (string, bool) {
	v, ok := s.Category(Categorize(name))[NormalizeName(name)]
	return v, ok
}
