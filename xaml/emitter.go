// Package xaml renders token sets as .NET MAUI resource dictionaries.
package xaml

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"

	"tokconv/css"
	"tokconv/tokens"
)

const (
	MauiNamespace = "http://schemas.microsoft.com/dotnet/2021/maui"
	XamlNamespace = "http://schemas.microsoft.com/winfx/2009/xaml"

	TokensFileName = "Tokens.xaml"
	ThemeFileName  = "Theme.xaml"

	indentSpaces = 4
)

// Documents holds rendered XAML text.
type Documents struct {
	Tokens string
	Theme  string
}

// Generate renders both documents.
func Generate(set *tokens.Set, themeName string, opts tokens.Options) (Documents, error) {
	var (
		docs Documents
		err  error
	)
	if docs.Tokens, err = GenerateTokens(set, opts); err != nil {
		return Documents{}, err
	}
	if docs.Theme, err = GenerateTheme(themeName, opts); err != nil {
		return Documents{}, err
	}
	return docs, nil
}

func newDictionary(opts tokens.Options) (*etree.Document, *etree.Element) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("ResourceDictionary")
	root.CreateAttr("xmlns", MauiNamespace)
	root.CreateAttr("xmlns:x", XamlNamespace)
	if opts.IncludeComments && len(opts.Namespace) > 0 {
		comment(root, "Namespace: "+opts.Namespace)
	}
	return doc, root
}

// comment adds comment padded with spaces. "--" is not allowed inside XML
// comments and is broken up.
func comment(parent *etree.Element, text string) {
	for strings.Contains(text, "--") {
		text = strings.ReplaceAll(text, "--", "- -")
	}
	parent.CreateComment(" " + text + " ")
}

func render(doc *etree.Document) (string, error) {
	doc.IndentWithSettings(&etree.IndentSettings{
		Spaces:                     indentSpaces,
		SuppressTrailingWhitespace: true,
	})
	var b strings.Builder
	if _, err := doc.WriteTo(&b); err != nil {
		return "", fmt.Errorf("unable to serialize document: %w", err)
	}
	out := b.String()
	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	return out, nil
}

// GenerateTokens renders primary document: one section per non-empty token
// category, tokens ordered by key.
func GenerateTokens(set *tokens.Set, opts tokens.Options) (string, error) {
	doc, root := newDictionary(opts)

	purpose := func(key, text string) {
		if opts.IncludeComments && len(strings.TrimSpace(text)) > 0 {
			comment(root, key+": "+text)
		}
	}

	if len(set.Colors) > 0 {
		comment(root, "===== Color Tokens =====")
		for _, key := range tokens.SortedKeys(set.Colors) {
			t := set.Colors[key]
			purpose(t.Key, t.Purpose)
			el := root.CreateElement("Color")
			el.CreateAttr("x:Key", t.Key)
			el.SetText(t.Value)
			if opts.IncludeComments && len(strings.TrimSpace(t.DarkValue)) > 0 {
				comment(root, "Dark mode: "+t.DarkValue)
			}
		}
	}

	if len(set.Typography) > 0 {
		comment(root, "===== Typography Tokens =====")
		for _, key := range tokens.SortedKeys(set.Typography) {
			t := set.Typography[key]
			purpose(t.Key, t.Purpose)
			el := root.CreateElement(typographyElement(t.Key))
			el.CreateAttr("x:Key", t.Key)
			el.SetText(t.Value)
		}
	}

	numeric := func(title string, m map[string]tokens.NumericToken) {
		if len(m) == 0 {
			return
		}
		comment(root, "===== "+title+" Tokens =====")
		for _, key := range tokens.SortedKeys(m) {
			t := m[key]
			purpose(t.Key, t.Purpose)
			el := root.CreateElement("x:Double")
			el.CreateAttr("x:Key", t.Key)
			el.SetText(css.FormatNumber(t.Value))
		}
	}
	numeric("Spacing", set.Spacing)
	numeric("Corner Radius", set.BorderRadius)
	numeric("Border Width", set.BorderWidth)

	return render(doc)
}

// typographyElement decides element type by key: sizes and line heights are
// numbers, everything else (font families) is text.
func typographyElement(key string) string {
	if strings.Contains(key, "FontSize") || strings.Contains(key, "LineHeight") {
		return "x:Double"
	}
	return "x:String"
}

// GenerateTheme renders companion document which merges tokens document.
func GenerateTheme(themeName string, opts tokens.Options) (string, error) {
	doc, root := newDictionary(opts)

	comment(root, themeName+" Theme - Generated from Bootstrap")
	comment(root, "This theme imports tokens and provides base styles for controls")

	merged := root.CreateElement("ResourceDictionary.MergedDictionaries")
	merged.CreateElement("ResourceDictionary").CreateAttr("Source", TokensFileName)

	comment(root, "Base control styles can be added here")

	return render(doc)
}
