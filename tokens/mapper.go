package tokens

import (
	"math"
	"slices"
	"strings"

	"go.uber.org/zap"

	"tokconv/css"
	"tokconv/variables"
)

// radiusTolerance is maximum difference in pixels for two radius values to be
// considered the same.
const radiusTolerance = 0.1

// Mapper converts categorized variables into tokens. Mapping is total: values
// which cannot be interpreted become zero, unknown variables are ignored.
type Mapper struct {
	log *zap.Logger
}

func NewMapper(log *zap.Logger) *Mapper {
	if log == nil {
		log = zap.NewNop()
	}
	return &Mapper{log: log.Named("tokens")}
}

// Map is a shortcut for mapping without logging.
func Map(vars *variables.Set, opts Options) *Set {
	return NewMapper(nil).Map(vars, opts)
}

// Map produces token set. Same input always yields same output.
func (m *Mapper) Map(vars *variables.Set, opts Options) *Set {
	set := NewSet()

	m.mapColors(vars.Colors, set, opts)
	m.mapTypography(vars.Typography, set)
	m.mapSpacing(vars.Spacing, set)
	m.mapBorders(vars.Borders, set)

	m.log.Info("Mapping complete",
		zap.Int("colors", len(set.Colors)),
		zap.Int("typography", len(set.Typography)),
		zap.Int("spacing", len(set.Spacing)),
		zap.Int("radius", len(set.BorderRadius)),
		zap.Int("width", len(set.BorderWidth)),
		zap.Stringer("dark", opts.DarkMode))
	return set
}

func (m *Mapper) mapColors(colors map[string]string, set *Set, opts Options) {
	for _, rule := range colorTable {
		raw, ok := colors[rule.name]
		if !ok {
			continue
		}
		t := ColorToken{Key: rule.key, Value: NormalizeColor(raw), Purpose: rule.purpose}
		if opts.DarkMode.Generates() {
			t.DarkValue = DarkVariant(t.Value)
		}
		set.Colors[t.Key] = t
		m.log.Debug("Color mapped", zap.String("from", rule.name), zap.String("key", t.Key), zap.String("value", t.Value), zap.String("dark", t.DarkValue))
	}
}

// FontFamily picks first font of the stack and maps system font aliases.
func FontFamily(stack string) string {
	fonts := css.FontStack(stack)
	if len(fonts) == 0 {
		return strings.TrimSpace(stack)
	}
	if alias, ok := fontAliases[fonts[0]]; ok {
		return alias
	}
	return fonts[0]
}

func (m *Mapper) mapTypography(typo map[string]string, set *Set) {
	add := func(t TypographyToken) {
		set.Typography[t.Key] = t
		m.log.Debug("Typography mapped", zap.String("key", t.Key), zap.String("value", t.Value))
	}

	if raw, ok := typo["font-family-base"]; ok {
		add(TypographyToken{Key: "FontFamily.Default", Value: FontFamily(raw), Purpose: "Default font family"})
	} else if raw, ok := typo["headings-font-family"]; ok {
		add(TypographyToken{Key: "FontFamily.Default", Value: FontFamily(raw), Purpose: "Default font family (from headings)"})
	}
	if raw, ok := typo["font-family-monospace"]; ok {
		add(TypographyToken{Key: "FontFamily.Monospace", Value: FontFamily(raw), Purpose: "Monospace font family"})
	}
	if raw, ok := typo["font-size-base"]; ok {
		add(TypographyToken{Key: "FontSize.Body", Value: css.FormatNumber(css.ToPixels(raw)), Unit: "px", Purpose: "Base body font size"})
	}
	if raw, ok := typo["line-height-base"]; ok {
		add(TypographyToken{Key: "LineHeight.Default", Value: raw, Purpose: "Default line height"})
	}
}

func pixels(key string, value float64, purpose string) NumericToken {
	return NumericToken{Key: key, Value: value, Unit: "px", Purpose: purpose}
}

func (m *Mapper) mapSpacing(spacing map[string]string, set *Set) {
	raw, ok := spacing["spacer"]
	if !ok {
		return
	}
	base := css.ToPixels(raw)
	for _, step := range spacingScale {
		set.Spacing[step.key] = pixels(step.key, base*step.factor, step.purpose)
	}
	m.log.Debug("Spacing scale mapped", zap.Float64("base", base))
}

func (m *Mapper) mapBorders(borders map[string]string, set *Set) {
	for _, tier := range radiusTiers {
		if raw, ok := borders[tier.button]; ok {
			set.BorderRadius[tier.key] = pixels(tier.key, css.ToPixels(raw), tier.fromBtn)
		} else if raw, ok := borders[tier.generic]; ok {
			set.BorderRadius[tier.key] = pixels(tier.key, css.ToPixels(raw), tier.fromBase)
		}
	}

	// remaining radius variables with distinct values
	names := make([]string, 0, len(borders))
	for name := range borders {
		if strings.Contains(name, "border-radius") {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	for _, name := range names {
		px := css.ToPixels(borders[name])
		if hasRadius(set, px) {
			continue
		}
		key := radiusKey(name)
		set.BorderRadius[key] = pixels(key, px, "Corner radius from "+name)
		m.log.Debug("Additional radius mapped", zap.String("from", name), zap.String("key", key), zap.Float64("value", px))
	}

	if raw, ok := borders["border-width"]; ok {
		set.BorderWidth["BorderWidth.Default"] = pixels("BorderWidth.Default", css.ToPixels(raw), "Default border width")
	}
}

func hasRadius(set *Set, px float64) bool {
	for _, t := range set.BorderRadius {
		if math.Abs(t.Value-px) < radiusTolerance {
			return true
		}
	}
	return false
}
