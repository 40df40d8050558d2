// Package variables extracts theme variables from CSS custom properties and
// SCSS variable declarations, merges several sources, resolves references
// between variables and sorts result into categories.
package variables

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"go.uber.org/zap"

	"tokconv/common"
)

var (
	cssDeclaration  = regexp.MustCompile(`(--[a-zA-Z0-9\-_]+)\s*:\s*([^;]+);`)
	scssDeclaration = regexp.MustCompile(`\$([a-zA-Z0-9\-_]+)\s*:\s*([^;]+);`)
)

// Source is theme text to be parsed. Name is file path or URL, it is used for
// format detection and in messages.
type Source struct {
	Name    string
	Content string
	Format  common.SourceFormat
}

// Declaration is a single extracted variable, name is lowercased.
type Declaration struct {
	Name  string
	Value string
}

// DetectFormat resolves format from source name extension, then from content:
// any SCSS variable declaration makes it scss. Defaults to css.
func DetectFormat(content, source string) common.SourceFormat {
	if f := common.DetectSourceFormat(source); f != common.SourceFormatAuto {
		return f
	}
	if scssDeclaration.MatchString(content) {
		return common.SourceFormatScss
	}
	return common.SourceFormatCss
}

// Extract scans content for variable declarations of given format. SCSS
// names are converted to "--bs-name" form, "!default" flags are dropped.
// Declarations without closing semicolon are not recognized.
func Extract(content string, format common.SourceFormat) ([]Declaration, error) {
	var re *regexp.Regexp
	switch format {
	case common.SourceFormatCss:
		re = cssDeclaration
	case common.SourceFormatScss:
		re = scssDeclaration
	default:
		return nil, fmt.Errorf("format %s: %w", format, ErrUnsupportedFormat)
	}

	matches := re.FindAllStringSubmatch(content, -1)
	decls := make([]Declaration, 0, len(matches))
	for _, m := range matches {
		name := strings.TrimSpace(m[1])
		if format == common.SourceFormatScss {
			name = "--bs-" + name
		}
		value := strings.TrimRight(strings.TrimSpace(m[2]), ";")
		value = strings.TrimSpace(strings.ReplaceAll(value, "!default", ""))
		decls = append(decls, Declaration{Name: strings.ToLower(name), Value: value})
	}
	return decls, nil
}

// Parser turns sources into categorized variable sets.
type Parser struct {
	log *zap.Logger
}

func NewParser(log *zap.Logger) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	return &Parser{log: log.Named("variables")}
}

// ParseContent parses a single source. Format auto means detection by
// source name and content.
func (p *Parser) ParseContent(content string, format common.SourceFormat, source string) (*Set, error) {
	return p.Parse(Source{Name: source, Content: content, Format: format})
}

// Parse merges sources in the given order, so a variable declared by a later
// source overrides the same variable from an earlier one. References are
// resolved after all sources are collected.
func (p *Parser) Parse(sources ...Source) (*Set, error) {
	reg := NewRegistry()
	for _, src := range sources {
		if err := p.collect(reg, src); err != nil {
			return nil, err
		}
	}
	p.log.Debug("Collected variables", zap.Int("sources", len(sources)), zap.Int("count", reg.Len()))

	set := NewSet()
	warn := func(msg string) {
		if slices.Contains(set.Warnings, msg) {
			return
		}
		set.Warnings = append(set.Warnings, msg)
		p.log.Warn("Unable to resolve reference", zap.String("details", msg))
	}
	for _, name := range reg.Names() {
		value, _ := reg.ResolveVariable(name, warn)
		c := set.Add(name, value)
		p.log.Debug("Variable discovered", zap.Stringer("category", c), zap.String("name", NormalizeName(name)), zap.String("value", value))
	}

	p.log.Info("Parsing complete",
		zap.Int("colors", len(set.Colors)),
		zap.Int("typography", len(set.Typography)),
		zap.Int("spacing", len(set.Spacing)),
		zap.Int("borders", len(set.Borders)),
		zap.Int("other", len(set.Other)),
		zap.Int("warnings", len(set.Warnings)))
	return set, nil
}

func (p *Parser) collect(reg *Registry, src Source) error {
	format := src.Format
	if !format.IsValid() {
		return fmt.Errorf("source %q: format %s: %w", src.Name, format, ErrUnsupportedFormat)
	}
	if format == common.SourceFormatAuto {
		format = DetectFormat(src.Content, src.Name)
	}

	decls, err := Extract(src.Content, format)
	if err != nil {
		return fmt.Errorf("source %q: %w", src.Name, err)
	}
	for _, d := range decls {
		reg.Set(d.Name, d.Value)
	}
	p.log.Debug("Source collected", zap.String("source", src.Name), zap.Stringer("format", format), zap.Int("declarations", len(decls)))
	return nil
}
