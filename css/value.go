// Package css interprets single CSS property values: numbers with units,
// identifiers, colors and font stacks. Values are lexed with tdewolff CSS
// lexer, so quoting, escapes and signs follow CSS rules.
package css

import (
	"strconv"
	"strings"
	"unicode"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// BaseFontSize is the number of pixels in one rem (and em, since no element
// context is available).
const BaseFontSize = 16.0

// Value is a parsed CSS property value.
type Value struct {
	Raw     string  // Original value string, trimmed (e.g., "1.5rem", "#0d6efd")
	Value   float64 // Numeric value if applicable
	Unit    string  // Unit if applicable: "px", "rem", "em", "%", ...
	Keyword string  // Identifier, string, color or anything which is not a single number
}

// IsNumeric returns true if the value is a single number, with or without
// unit. This includes explicit zero values like "0" or "0px".
func (v Value) IsNumeric() bool {
	if v.Unit != "" {
		return true
	}
	if v.Keyword != "" || v.Raw == "" {
		return false
	}
	first := rune(v.Raw[0])
	return unicode.IsDigit(first) || first == '.' || first == '-' || first == '+'
}

// IsKeyword returns true if the value has no numeric component.
func (v Value) IsKeyword() bool {
	return v.Keyword != "" && v.Unit == ""
}

// tokenize returns all non-whitespace tokens of the value. Comments are
// dropped. Whitespace separating tokens is reported by the second slice:
// spaced[i] is true when whitespace precedes token i.
func tokenize(raw string) (tokens []css.Token, spaced []bool) {
	l := css.NewLexer(parse.NewInputString(raw))
	space := false
	for {
		tt, data := l.Next()
		switch tt {
		case css.ErrorToken:
			return tokens, spaced
		case css.WhitespaceToken, css.CommentToken:
			space = true
			continue
		}
		// lexer reuses its buffer
		tokens = append(tokens, css.Token{TokenType: tt, Data: append([]byte(nil), data...)})
		spaced = append(spaced, space && len(tokens) > 1)
		space = false
	}
}

// spacedUnits are units accepted when separated from number by whitespace.
var spacedUnits = map[string]bool{"px": true, "rem": true, "em": true}

// ParseValue interprets raw CSS value. Number separated from a length unit by
// whitespace ("16 px") is read as single dimension. Anything else other than
// a single token is kept as keyword with the raw text.
func ParseValue(raw string) Value {
	raw = strings.TrimSpace(raw)
	val := Value{Raw: raw}

	tokens, spaced := tokenize(raw)
	if len(tokens) == 2 && spaced[1] && tokens[0].TokenType == css.NumberToken && tokens[1].TokenType == css.IdentToken {
		if unit := strings.ToLower(string(tokens[1].Data)); spacedUnits[unit] {
			val.Value, _ = strconv.ParseFloat(string(tokens[0].Data), 64)
			val.Unit = unit
			return val
		}
	}
	if len(tokens) != 1 {
		val.Keyword = raw
		return val
	}

	t := tokens[0]
	switch t.TokenType {
	case css.DimensionToken:
		val.Value, val.Unit = parseDimension(string(t.Data))
	case css.PercentageToken:
		val.Value, _ = strconv.ParseFloat(strings.TrimSuffix(string(t.Data), "%"), 64)
		val.Unit = "%"
	case css.NumberToken:
		val.Value, _ = strconv.ParseFloat(string(t.Data), 64)
	case css.IdentToken:
		val.Keyword = strings.ToLower(string(t.Data))
	case css.StringToken:
		val.Keyword = unquote(string(t.Data))
	default:
		// hash colors, functions, delimiters
		val.Keyword = raw
	}
	return val
}

// parseDimension extracts numeric value and unit from dimension token.
func parseDimension(s string) (float64, string) {
	numEnd := 0
	for i, r := range s {
		if unicode.IsDigit(r) || r == '.' || ((r == '-' || r == '+') && i == 0) {
			numEnd = i + 1
			continue
		}
		// exponent
		if (r == 'e' || r == 'E') && i+1 < len(s) && (unicode.IsDigit(rune(s[i+1])) ||
			((s[i+1] == '-' || s[i+1] == '+') && i+2 < len(s) && unicode.IsDigit(rune(s[i+2])))) {
			numEnd = i + 1
			continue
		}
		break
	}
	if numEnd == 0 {
		return 0, ""
	}
	num, _ := strconv.ParseFloat(s[:numEnd], 64)
	return num, strings.ToLower(s[numEnd:])
}

// ToPixels converts a length to pixels: px as is, rem and em relative to
// BaseFontSize, unitless numbers as pixels. Everything else, including
// malformed input, is 0.
func ToPixels(raw string) float64 {
	v := ParseValue(raw)
	if !v.IsNumeric() {
		return 0
	}
	switch v.Unit {
	case "px", "":
		return v.Value
	case "rem", "em":
		return v.Value * BaseFontSize
	default:
		return 0
	}
}

// FormatNumber renders number in shortest invariant decimal form: 16, 1.5,
// 0.25.
func FormatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// FontStack splits font-family value into individual family names with quotes
// removed. Unquoted multi-word names are joined with a single space.
func FontStack(raw string) []string {
	tokens, spaced := tokenize(raw)

	var (
		families []string
		current  strings.Builder
	)
	flush := func() {
		if current.Len() > 0 {
			families = append(families, current.String())
			current.Reset()
		}
	}
	for i, t := range tokens {
		if t.TokenType == css.CommaToken {
			flush()
			continue
		}
		if spaced[i] && current.Len() > 0 {
			current.WriteByte(' ')
		}
		if t.TokenType == css.StringToken {
			current.WriteString(unquote(string(t.Data)))
			continue
		}
		current.Write(t.Data)
	}
	flush()
	return families
}

func unquote(s string) string {
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	return s
}
