package tokens

import "strings"

type colorRule struct {
	name    string
	key     string
	purpose string
}

// colorTable lists the only color variables which produce tokens.
var colorTable = []colorRule{
	{"primary", "Color.Primary", "Primary brand color"},
	{"secondary", "Color.Secondary", "Secondary brand color"},
	{"success", "Color.Success", "Success state color"},
	{"danger", "Color.Error", "Error/danger state color"},
	{"warning", "Color.Warning", "Warning state color"},
	{"info", "Color.Info", "Info state color"},
	{"light", "Color.Surface", "Light surface color"},
	{"dark", "Color.SurfaceVariant.Dark", "Dark surface variant"},
	{"body-bg", "Color.Background", "Body background color"},
	{"body-color", "Color.OnBackground", "Body text color"},
	{"border-color", "Color.Outline", "Border color"},
}

// fontAliases maps platform font stack entries onto native system font.
var fontAliases = map[string]string{
	"-apple-system":      "System",
	"system-ui":          "System",
	"BlinkMacSystemFont": "System",
}

type scaleStep struct {
	key     string
	factor  float64
	purpose string
}

// spacingScale is derived from single spacer value.
var spacingScale = []scaleStep{
	{"Spacing.ExtraSmall", 0.25, "Extra small spacing"},
	{"Spacing.Small", 0.5, "Small spacing"},
	{"Spacing.Medium", 1, "Medium spacing (base)"},
	{"Spacing.Large", 1.5, "Large spacing"},
	{"Spacing.ExtraLarge", 3, "Extra large spacing"},
}

type radiusTier struct {
	key      string
	button   string
	generic  string
	fromBtn  string
	fromBase string
}

// radiusTiers prefer button radius over generic one.
var radiusTiers = []radiusTier{
	{"Radius.Medium", "btn-border-radius", "border-radius", "Medium corner radius (from button)", "Medium corner radius"},
	{"Radius.Small", "btn-border-radius-sm", "border-radius-sm", "Small corner radius (from button)", "Small corner radius"},
	{"Radius.Large", "btn-border-radius-lg", "border-radius-lg", "Large corner radius (from button)", "Large corner radius"},
}

type radiusKeyRule struct {
	all []string
	key string
}

// radiusKeyRules derive token key for additional radius variables, first rule
// with all fragments present in variable name wins.
var radiusKeyRules = []radiusKeyRule{
	{[]string{"breadcrumb"}, "Radius.Breadcrumb"},
	{[]string{"card"}, "Radius.Card"},
	{[]string{"btn", "sm"}, "Radius.ButtonSmall"},
	{[]string{"btn", "lg"}, "Radius.ButtonLarge"},
	{[]string{"btn"}, "Radius.Button"},
	{[]string{"sm"}, "Radius.Small"},
	{[]string{"lg"}, "Radius.Large"},
}

const defaultRadiusKey = "Radius.Default"

func radiusKey(name string) string {
	name = strings.ToLower(name)
next:
	for _, r := range radiusKeyRules {
		for _, frag := range r.all {
			if !strings.Contains(name, frag) {
				continue next
			}
		}
		return r.key
	}
	return defaultRadiusKey
}
