// Package convert drives the whole pipeline: it loads theme sources, extracts
// and maps variables and renders XAML documents.
package convert

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"tokconv/common"
	"tokconv/config"
	"tokconv/source"
	"tokconv/tokens"
	"tokconv/variables"
	"tokconv/xaml"
)

// DefaultThemeName is used when theme name cannot be derived from sources.
const DefaultThemeName = "Bootstrap"

// ErrNoInput is returned when conversion is requested without sources.
var ErrNoInput = errors.New("no input source has been specified")

// Options controls single conversion.
type Options struct {
	Format common.SourceFormat
	Tokens tokens.Options
	// ThemeName labels theme document, derived from sources when empty.
	ThemeName string
}

// OptionsFromConfig returns conversion options set by configuration.
func OptionsFromConfig(cfg *config.ConversionConfig) Options {
	return Options{
		Format: cfg.Format,
		Tokens: tokens.Options{
			DarkMode:        cfg.DarkMode,
			IncludeComments: cfg.IncludeComments,
			Namespace:       cfg.Namespace,
		},
		ThemeName: cfg.ThemeName,
	}
}

// Result holds everything produced by conversion.
type Result struct {
	Sources   []string
	ThemeName string
	Variables *variables.Set
	Tokens    *tokens.Set
	Documents xaml.Documents
}

// Summary is a token count per category.
type Summary struct {
	ColorTokens        int `json:"colorTokens"`
	TypographyTokens   int `json:"typographyTokens"`
	SpacingTokens      int `json:"spacingTokens"`
	BorderRadiusTokens int `json:"borderRadiusTokens"`
	BorderWidthTokens  int `json:"borderWidthTokens"`
}

func Summarize(set *tokens.Set) Summary {
	return Summary{
		ColorTokens:        len(set.Colors),
		TypographyTokens:   len(set.Typography),
		SpacingTokens:      len(set.Spacing),
		BorderRadiusTokens: len(set.BorderRadius),
		BorderWidthTokens:  len(set.BorderWidth),
	}
}

func (s Summary) Total() int {
	return s.ColorTokens + s.TypographyTokens + s.SpacingTokens + s.BorderRadiusTokens + s.BorderWidthTokens
}

// ThemeName derives theme name from first source: its file name without
// extension. URLs get default name.
func ThemeName(sources []string) string {
	if len(sources) == 0 || source.IsURL(sources[0]) {
		return DefaultThemeName
	}
	base := filepath.Base(sources[0])
	name := strings.TrimSpace(strings.TrimSuffix(base, filepath.Ext(base)))
	if len(name) == 0 || name == "." || name == string(filepath.Separator) {
		return DefaultThemeName
	}
	return name
}

// Converter runs pipeline stages. It keeps no per-conversion state and can be
// used concurrently, loader cache is shared.
type Converter struct {
	loader *source.Loader
	parser *variables.Parser
	mapper *tokens.Mapper
	log    *zap.Logger
}

func NewConverter(loader *source.Loader, log *zap.Logger) *Converter {
	if log == nil {
		log = zap.NewNop()
	}
	return &Converter{
		loader: loader,
		parser: variables.NewParser(log),
		mapper: tokens.NewMapper(log),
		log:    log.Named("convert"),
	}
}

// Parse expands inputs, loads sources and extracts variables. It returns
// actual list of sources in merge order.
func (c *Converter) Parse(ctx context.Context, inputs []string, format common.SourceFormat) ([]string, *variables.Set, error) {
	if len(inputs) == 0 {
		return nil, nil, ErrNoInput
	}
	names, err := source.Expand(inputs)
	if err != nil {
		return nil, nil, err
	}
	srcs, err := c.loader.LoadAll(ctx, names, format)
	if err != nil {
		return nil, nil, err
	}
	vars, err := c.parser.Parse(srcs...)
	if err != nil {
		return nil, nil, err
	}
	return names, vars, nil
}

// Convert runs complete pipeline without touching output location.
func (c *Converter) Convert(ctx context.Context, inputs []string, opts Options) (*Result, error) {
	names, vars, err := c.Parse(ctx, inputs, opts.Format)
	if err != nil {
		return nil, err
	}

	set := c.mapper.Map(vars, opts.Tokens)

	theme := opts.ThemeName
	if len(theme) == 0 {
		theme = ThemeName(names)
	}
	docs, err := xaml.Generate(set, theme, opts.Tokens)
	if err != nil {
		return nil, fmt.Errorf("unable to generate documents: %w", err)
	}

	c.log.Debug("Conversion complete", zap.Strings("sources", names), zap.String("theme", theme), zap.Int("tokens", set.Len()))
	return &Result{
		Sources:   names,
		ThemeName: theme,
		Variables: vars,
		Tokens:    set,
		Documents: docs,
	}, nil
}
