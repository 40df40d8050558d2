package convert

import (
	"fmt"
	"strconv"
	"strings"

	"tokconv/tokens"
	"tokconv/variables"
)

// DumpFileName is the name under which conversion dump is stored in debug
// report.
const DumpFileName = "conversion.txt"

type treeWriter struct {
	w *strings.Builder
}

func newTreeWriter() *treeWriter {
	return &treeWriter{w: &strings.Builder{}}
}

func (tw treeWriter) String() string {
	return tw.w.String()
}

func (tw treeWriter) line(depth int, format string, args ...any) {
	for range depth {
		tw.w.WriteString("  ")
	}
	fmt.Fprintf(tw.w, format, args...)
	tw.w.WriteByte('\n')
}

func (tw treeWriter) text(depth int, label, value string) {
	for range depth {
		tw.w.WriteString("  ")
	}
	tw.w.WriteString(label)
	tw.w.WriteString(": ")
	if len(value) > 0 {
		value = strconv.Quote(value)
	}
	tw.w.WriteString(value)
	tw.w.WriteByte('\n')
}

// Dump renders conversion result as indented tree: sources, resolved
// variables by category, produced tokens and warnings. Entries are sorted so
// dumps of the same input compare equal.
func Dump(res *Result) string {
	tw := newTreeWriter()

	tw.text(0, "theme", res.ThemeName)
	tw.line(0, "sources (%d)", len(res.Sources))
	for _, s := range res.Sources {
		tw.line(1, "%s", s)
	}

	if vars := res.Variables; vars != nil {
		tw.line(0, "variables (%d)", vars.Len())
		for _, c := range variables.Categories() {
			m := vars.Category(c)
			tw.line(1, "%s (%d)", c, len(m))
			for _, name := range tokens.SortedKeys(m) {
				tw.text(2, name, m[name])
			}
		}
	}

	if set := res.Tokens; set != nil {
		tw.line(0, "tokens (%d)", set.Len())
		tw.line(1, "color (%d)", len(set.Colors))
		for _, key := range tokens.SortedKeys(set.Colors) {
			tok := set.Colors[key]
			tw.text(2, key, tok.Value)
			if len(tok.DarkValue) > 0 {
				tw.text(3, "dark", tok.DarkValue)
			}
		}
		tw.line(1, "typography (%d)", len(set.Typography))
		for _, key := range tokens.SortedKeys(set.Typography) {
			tok := set.Typography[key]
			tw.text(2, key, tok.Value+tok.Unit)
		}
		numeric := func(label string, m map[string]tokens.NumericToken) {
			tw.line(1, "%s (%d)", label, len(m))
			for _, key := range tokens.SortedKeys(m) {
				tok := m[key]
				tw.text(2, key, strconv.FormatFloat(tok.Value, 'f', -1, 64)+tok.Unit)
			}
		}
		numeric("spacing", set.Spacing)
		numeric("border radius", set.BorderRadius)
		numeric("border width", set.BorderWidth)
	}

	if res.Variables != nil && len(res.Variables.Warnings) > 0 {
		tw.line(0, "warnings (%d)", len(res.Variables.Warnings))
		for _, w := range res.Variables.Warnings {
			tw.line(1, "%s", w)
		}
	}
	return tw.String()
}
