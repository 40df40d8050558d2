package tokens

import (
	"fmt"
	"strconv"
	"strings"
)

// NormalizeColor upper-cases hex colors. Color functions and named colors are
// returned as is.
func NormalizeColor(value string) string {
	value = strings.TrimSpace(value)
	if strings.HasPrefix(value, "#") {
		return strings.ToUpper(value)
	}
	return value
}

// parseHex decodes "#RRGGBB". Any other form is rejected.
func parseHex(color string) (r, g, b int, ok bool) {
	if len(color) != 7 || color[0] != '#' {
		return 0, 0, 0, false
	}
	var ch [3]int
	for i := range ch {
		v, err := strconv.ParseUint(color[1+2*i:3+2*i], 16, 8)
		if err != nil {
			return 0, 0, 0, false
		}
		ch[i] = int(v)
	}
	return ch[0], ch[1], ch[2], true
}

// Brightness returns perceived brightness (0..255) of "#RRGGBB" color.
func Brightness(color string) (int, bool) {
	r, g, b, ok := parseHex(color)
	if !ok {
		return 0, false
	}
	return (r*299 + g*587 + b*114) / 1000, true
}

// DarkVariant derives dark mode color from "#RRGGBB": bright colors are
// darkened, dark colors lightened. Returns empty string for anything else.
func DarkVariant(color string) string {
	r, g, b, ok := parseHex(color)
	if !ok {
		return ""
	}
	factor := 1.3
	if (r*299+g*587+b*114)/1000 > 128 {
		factor = 0.7
	}
	scale := func(c int) int {
		return min(max(int(float64(c)*factor), 0), 255)
	}
	return fmt.Sprintf("#%02X%02X%02X", scale(r), scale(g), scale(b))
}
