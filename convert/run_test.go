package convert

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"tokconv/common"
	"tokconv/config"
	"tokconv/source"
	"tokconv/state"
	"tokconv/variables"
	"tokconv/xaml"
)

// setupTestEnv creates a test environment with proper context and logger
func setupTestEnv(t *testing.T) (context.Context, *state.LocalEnv) {
	logger := zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1)))
	cfg, err := config.LoadConfiguration("")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	ctx := state.ContextWithEnv(context.Background())
	env := state.EnvFromContext(ctx)
	env.Log = logger
	env.Cfg = cfg
	env.Out = new(bytes.Buffer)
	return ctx, env
}

func newTestConverter(t *testing.T, env *state.LocalEnv) *Converter {
	t.Helper()
	loader, err := source.NewLoader(&env.Cfg.Source, nil, env.Log)
	if err != nil {
		t.Fatalf("NewLoader() error = %v", err)
	}
	return NewConverter(loader, env.Log)
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestConvert_Fixtures(t *testing.T) {
	tests := []struct {
		fixture   string
		theme     string
		variables int
		tokens    Summary
		contains  []string
	}{
		{
			fixture:   "bootstrap-default.css",
			theme:     "bootstrap-default",
			variables: 26,
			tokens:    Summary{ColorTokens: 11, TypographyTokens: 4, SpacingTokens: 5, BorderRadiusTokens: 4, BorderWidthTokens: 1},
			contains: []string{
				`<Color x:Key="Color.Primary">#0D6EFD</Color>`,
				`<!-- Dark mode: #108FFF -->`,
				`<x:String x:Key="FontFamily.Default">System</x:String>`,
				`<x:String x:Key="FontFamily.Monospace">SFMono-Regular</x:String>`,
				`<x:Double x:Key="FontSize.Body">16</x:Double>`,
				`<x:Double x:Key="Spacing.Medium">16</x:Double>`,
				`<x:Double x:Key="Spacing.ExtraLarge">48</x:Double>`,
				`<x:Double x:Key="Radius.Medium">6</x:Double>`,
				`<x:Double x:Key="Radius.Default">16</x:Double>`,
				`<x:Double x:Key="BorderWidth.Default">1</x:Double>`,
			},
		},
		{
			fixture:   "bootswatch-darkly.scss",
			theme:     "bootswatch-darkly",
			variables: 35,
			tokens:    Summary{ColorTokens: 10, TypographyTokens: 3, SpacingTokens: 5, BorderRadiusTokens: 4},
			contains: []string{
				`<Color x:Key="Color.Primary">#375A7F</Color>`,
				`<!-- Dark mode: #4775A5 -->`,
				`<Color x:Key="Color.Background">#222</Color>`,
				`<x:String x:Key="FontFamily.Default">Lato</x:String>`,
				`<x:Double x:Key="FontSize.Body">15</x:Double>`,
				`<!-- Radius.Medium: Medium corner radius (from button) -->`,
				`<x:Double x:Key="Radius.Breadcrumb">8</x:Double>`,
			},
		},
		{
			fixture:   "custom-minimal.scss",
			theme:     "custom-minimal",
			variables: 4,
			tokens:    Summary{ColorTokens: 2, TypographyTokens: 1, SpacingTokens: 5},
			contains: []string{
				`<Color x:Key="Color.Primary">#FF6B6B</Color>`,
				`<Color x:Key="Color.Secondary">#4ECDC4</Color>`,
				`<x:String x:Key="FontFamily.Default">Inter</x:String>`,
				`<x:Double x:Key="Spacing.Medium">20</x:Double>`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.fixture, func(t *testing.T) {
			ctx, env := setupTestEnv(t)
			conv := newTestConverter(t, env)

			res, err := conv.Convert(ctx, []string{filepath.Join("testdata", tt.fixture)}, OptionsFromConfig(&env.Cfg.Conversion))
			if err != nil {
				t.Fatalf("Convert() error = %v", err)
			}
			if res.ThemeName != tt.theme {
				t.Errorf("ThemeName = %q, want %q", res.ThemeName, tt.theme)
			}
			if got := res.Variables.Len(); got != tt.variables {
				t.Errorf("variables = %d, want %d", got, tt.variables)
			}
			if got := Summarize(res.Tokens); got != tt.tokens {
				t.Errorf("tokens = %+v, want %+v", got, tt.tokens)
			}
			if len(res.Variables.Warnings) != 0 {
				t.Errorf("unexpected warnings: %v", res.Variables.Warnings)
			}
			for _, s := range tt.contains {
				if !strings.Contains(res.Documents.Tokens, s) {
					t.Errorf("tokens document does not contain %q", s)
				}
			}
			if !strings.Contains(res.Documents.Theme, "<!-- "+tt.theme+" Theme - Generated from Bootstrap -->") {
				t.Errorf("theme document does not name theme:\n%s", res.Documents.Theme)
			}
		})
	}
}

func TestConvert_Options(t *testing.T) {
	ctx, env := setupTestEnv(t)
	conv := newTestConverter(t, env)

	opts := OptionsFromConfig(&env.Cfg.Conversion)
	opts.Tokens.DarkMode = common.DarkModeStrategyNone
	opts.Tokens.IncludeComments = false
	opts.Tokens.Namespace = "My.Theme"
	opts.ThemeName = "Corporate"

	res, err := conv.Convert(ctx, []string{"testdata/bootstrap-default.css"}, opts)
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	for _, tok := range res.Tokens.Colors {
		if len(tok.DarkValue) != 0 {
			t.Errorf("%s has dark value %q with dark mode disabled", tok.Key, tok.DarkValue)
		}
	}
	if strings.Contains(res.Documents.Tokens, "Primary brand color") {
		t.Error("purpose comments must be omitted")
	}
	if strings.Contains(res.Documents.Tokens, "Namespace:") {
		t.Error("namespace comment must be omitted without comments")
	}
	if !strings.Contains(res.Documents.Theme, "Corporate Theme") {
		t.Errorf("explicit theme name ignored:\n%s", res.Documents.Theme)
	}
}

func TestConvert_Idempotent(t *testing.T) {
	ctx, env := setupTestEnv(t)
	conv := newTestConverter(t, env)
	opts := OptionsFromConfig(&env.Cfg.Conversion)

	first, err := conv.Convert(ctx, []string{"testdata/bootswatch-darkly.scss"}, opts)
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	second, err := conv.Convert(ctx, []string{"testdata/bootswatch-darkly.scss"}, opts)
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if first.Documents != second.Documents {
		t.Error("repeated conversion produced different documents")
	}
}

func TestConvert_OverridePrecedence(t *testing.T) {
	ctx, env := setupTestEnv(t)
	conv := newTestConverter(t, env)
	dir := t.TempDir()
	a := writeFile(t, dir, "a.scss", "$primary: #111111;\n$spacer: 1rem;\n")
	b := writeFile(t, dir, "b.scss", "$primary: #222222;\n")

	for _, tt := range []struct {
		inputs []string
		want   string
	}{
		{[]string{a, b}, "#222222"},
		{[]string{b, a}, "#111111"},
		// repeated source is merged again at its last position
		{[]string{a, b, a}, "#111111"},
		{[]string{b, a, b}, "#222222"},
	} {
		res, err := conv.Convert(ctx, tt.inputs, OptionsFromConfig(&env.Cfg.Conversion))
		if err != nil {
			t.Fatalf("Convert() error = %v", err)
		}
		if got := res.Tokens.Colors["Color.Primary"].Value; got != tt.want {
			t.Errorf("Convert(%v) primary = %s, want %s", tt.inputs, got, tt.want)
		}
		if len(res.Tokens.Spacing) != 5 {
			t.Errorf("spacing from first source lost: %v", res.Tokens.Spacing)
		}
		if res.ThemeName != strings.TrimSuffix(filepath.Base(tt.inputs[0]), ".scss") {
			t.Errorf("ThemeName = %q", res.ThemeName)
		}
		if !slices.Equal(res.Sources, tt.inputs) {
			t.Errorf("Sources = %v, want %v", res.Sources, tt.inputs)
		}
	}
}

func TestConvert_Glob(t *testing.T) {
	ctx, env := setupTestEnv(t)
	conv := newTestConverter(t, env)
	dir := t.TempDir()
	writeFile(t, dir, "theme10.scss", "$primary: #000010;\n")
	writeFile(t, dir, "theme2.scss", "$primary: #000002;\n")
	writeFile(t, dir, "notes.txt", "$primary: #FFFFFF;\n")

	res, err := conv.Convert(ctx, []string{filepath.Join(dir, "*.scss")}, OptionsFromConfig(&env.Cfg.Conversion))
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	want := []string{filepath.Join(dir, "theme2.scss"), filepath.Join(dir, "theme10.scss")}
	if !slices.Equal(res.Sources, want) {
		t.Errorf("Sources = %v, want %v", res.Sources, want)
	}
	// natural order: theme10 is merged last
	if got := res.Tokens.Colors["Color.Primary"].Value; got != "#000010" {
		t.Errorf("primary = %s, want #000010", got)
	}
}

func TestConvert_UnresolvedReference(t *testing.T) {
	ctx, env := setupTestEnv(t)
	conv := newTestConverter(t, env)
	path := writeFile(t, t.TempDir(), "broken.scss", "$primary: $brand-main;\n")

	res, err := conv.Convert(ctx, []string{path}, OptionsFromConfig(&env.Cfg.Conversion))
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if got := res.Tokens.Colors["Color.Primary"].Value; got != "$brand-main" {
		t.Errorf("primary = %q, want literal reference", got)
	}
	if got := res.Tokens.Colors["Color.Primary"].DarkValue; got != "" {
		t.Errorf("dark value = %q, want none", got)
	}
	if len(res.Variables.Warnings) != 1 {
		t.Errorf("warnings = %v, want exactly one", res.Variables.Warnings)
	}
}

func TestConvert_Errors(t *testing.T) {
	ctx, env := setupTestEnv(t)
	conv := newTestConverter(t, env)
	opts := OptionsFromConfig(&env.Cfg.Conversion)

	if _, err := conv.Convert(ctx, nil, opts); !errors.Is(err, ErrNoInput) {
		t.Errorf("expected ErrNoInput, got %v", err)
	}

	missing := filepath.Join(t.TempDir(), "missing.css")
	_, err := conv.Convert(ctx, []string{missing}, opts)
	if !errors.Is(err, variables.ErrSourceNotFound) {
		t.Errorf("expected ErrSourceNotFound, got %v", err)
	}
	if err != nil && !strings.Contains(err.Error(), missing) {
		t.Errorf("error does not name source: %v", err)
	}

	opts.Format = common.SourceFormat(42)
	if _, err := conv.Convert(ctx, []string{"testdata/custom-minimal.scss"}, opts); !errors.Is(err, variables.ErrUnsupportedFormat) {
		t.Errorf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestConvert_Archive(t *testing.T) {
	arc := filepath.Join(t.TempDir(), "bootswatch-5.3.3.zip")
	f, err := os.Create(arc)
	if err != nil {
		t.Fatal(err)
	}
	zw := zip.NewWriter(f)
	for name, content := range map[string]string{
		"dist/darkly/_variables.scss": "$primary: #375a7f;\n$spacer: 1rem;\n",
		"dist/darkly/_overrides.scss": "$primary: #123456;\n",
		"dist/darkly/README.md":       "Darkly",
	} {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := io.WriteString(w, content); err != nil {
			t.Fatal(err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	ctx, env := setupTestEnv(t)
	conv := newTestConverter(t, env)
	opts := OptionsFromConfig(&env.Cfg.Conversion)

	// directory inside archive, entries in natural order: overrides first
	res, err := conv.Convert(ctx, []string{filepath.Join(arc, "dist", "darkly")}, opts)
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if len(res.Sources) != 2 {
		t.Errorf("Sources = %q, want 2 stylesheets", res.Sources)
	}
	if got := res.Tokens.Colors["Color.Primary"].Value; got != "#375A7F" {
		t.Errorf("Color.Primary = %q, want #375A7F", got)
	}
	if res.ThemeName != "_overrides" {
		t.Errorf("ThemeName = %q", res.ThemeName)
	}

	// single entry
	res, err = conv.Convert(ctx, []string{filepath.Join(arc, "dist", "darkly", "_overrides.scss")}, opts)
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if got := res.Tokens.Colors["Color.Primary"].Value; got != "#123456" {
		t.Errorf("Color.Primary = %q, want #123456", got)
	}
}

func TestConvert_URL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/bootstrap.min.css" {
			http.NotFound(w, r)
			return
		}
		_, _ = io.WriteString(w, ":root{--bs-primary:#6f42c1;--bs-spacer:0.5rem}")
	}))
	defer srv.Close()

	ctx, env := setupTestEnv(t)
	conv := newTestConverter(t, env)
	opts := OptionsFromConfig(&env.Cfg.Conversion)

	res, err := conv.Convert(ctx, []string{srv.URL + "/bootstrap.min.css"}, opts)
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if res.ThemeName != DefaultThemeName {
		t.Errorf("ThemeName = %q, want %q", res.ThemeName, DefaultThemeName)
	}
	// last declaration has no semicolon and is skipped
	if len(res.Tokens.Spacing) != 0 {
		t.Errorf("unterminated declaration extracted: %v", res.Tokens.Spacing)
	}
	if got := res.Tokens.Colors["Color.Primary"].Value; got != "#6F42C1" {
		t.Errorf("primary = %s", got)
	}

	if _, err := conv.Convert(ctx, []string{srv.URL + "/missing.css"}, opts); !errors.Is(err, variables.ErrSourceNotFound) {
		t.Errorf("expected ErrSourceNotFound for 404, got %v", err)
	}
}

func TestThemeName(t *testing.T) {
	tests := []struct {
		sources []string
		want    string
	}{
		{nil, DefaultThemeName},
		{[]string{"themes/darkly.scss"}, "darkly"},
		{[]string{"themes/bootstrap.min.css", "other.scss"}, "bootstrap.min"},
		{[]string{"https://cdn.example.com/bootstrap.css", "local.scss"}, DefaultThemeName},
		{[]string{"noext"}, "noext"},
		{[]string{".scss"}, DefaultThemeName},
	}
	for _, tt := range tests {
		if got := ThemeName(tt.sources); got != tt.want {
			t.Errorf("ThemeName(%v) = %q, want %q", tt.sources, got, tt.want)
		}
	}
}

func TestProcess_WritesFilesAndReport(t *testing.T) {
	ctx, env := setupTestEnv(t)
	conv := newTestConverter(t, env)
	dst := filepath.Join(t.TempDir(), "out")

	env.Cfg.Reporting.Destination = filepath.Join(t.TempDir(), "report.zip")
	rpt, err := env.Cfg.Reporting.Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}

	opts := OptionsFromConfig(&env.Cfg.Conversion)
	if err := process(ctx, conv, []string{"testdata/custom-minimal.scss"}, dst, opts, false, rpt, env.Log); err != nil {
		t.Fatalf("process() error = %v", err)
	}
	// second run without overwrite must not touch existing files
	err = process(ctx, conv, []string{"testdata/custom-minimal.scss"}, dst, opts, false, rpt, env.Log)
	if !errors.Is(err, xaml.ErrOutputExists) {
		t.Errorf("expected ErrOutputExists, got %v", err)
	}
	if err := process(ctx, conv, []string{"testdata/custom-minimal.scss"}, dst, opts, true, rpt, env.Log); err != nil {
		t.Fatalf("process() with overwrite error = %v", err)
	}

	for _, name := range []string{xaml.TokensFileName, xaml.ThemeFileName} {
		if _, err := os.Stat(filepath.Join(dst, name)); err != nil {
			t.Errorf("%s was not written: %v", name, err)
		}
	}

	if err := rpt.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	zr, err := zip.OpenReader(env.Cfg.Reporting.Destination)
	if err != nil {
		t.Fatalf("open report: %v", err)
	}
	defer zr.Close()

	var tokensEntries int
	for _, f := range zr.File {
		if strings.HasPrefix(f.Name, "output/custom-minimal/"+xaml.TokensFileName) {
			tokensEntries++
		}
	}
	if tokensEntries != 2 {
		t.Errorf("expected both successful runs in report, got %d entries", tokensEntries)
	}
}

func TestProcess_CancelledContext(t *testing.T) {
	ctx, env := setupTestEnv(t)
	conv := newTestConverter(t, env)
	cancelCtx, cancel := context.WithCancel(ctx)
	cancel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "--bs-primary: #000000;")
	}))
	defer srv.Close()

	err := process(cancelCtx, conv, []string{srv.URL + "/theme.css"}, t.TempDir(), OptionsFromConfig(&env.Cfg.Conversion), true, nil, env.Log)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

// runCommand executes action the same way cli does.
func runCommand(ctx context.Context, t *testing.T, name string, action cli.ActionFunc, flags []cli.Flag, args ...string) error {
	t.Helper()
	cmd := &cli.Command{Name: name, Flags: flags, Action: action}
	return cmd.Run(ctx, append([]string{name}, args...))
}

func TestRun(t *testing.T) {
	ctx, env := setupTestEnv(t)
	dst := t.TempDir()

	err := runCommand(ctx, t, "convert", Run, ConvertFlags(),
		"--output", dst, "--dark-mode", "none", "--theme-name", "Darkly", "--namespace", "Corp.UI",
		"testdata/bootswatch-darkly.scss")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dst, xaml.TokensFileName))
	if err != nil {
		t.Fatalf("read tokens: %v", err)
	}
	tokensDoc := string(data)
	if strings.Contains(tokensDoc, "Dark mode:") {
		t.Error("--dark-mode none ignored")
	}
	if !strings.Contains(tokensDoc, "<!-- Namespace: Corp.UI -->") {
		t.Error("--namespace ignored")
	}
	data, err = os.ReadFile(filepath.Join(dst, xaml.ThemeFileName))
	if err != nil {
		t.Fatalf("read theme: %v", err)
	}
	if !strings.Contains(string(data), "Darkly Theme") {
		t.Error("--theme-name ignored")
	}

	// existing output without --overwrite
	err = runCommand(ctx, t, "convert", Run, ConvertFlags(), "--output", dst, "testdata/bootswatch-darkly.scss")
	if !errors.Is(err, xaml.ErrOutputExists) {
		t.Errorf("expected ErrOutputExists, got %v", err)
	}
	if err := runCommand(ctx, t, "convert", Run, ConvertFlags(), "--output", dst, "--overwrite", "testdata/bootswatch-darkly.scss"); err != nil {
		t.Errorf("Run() with --overwrite error = %v", err)
	}
	if !env.Overwrite {
		t.Error("overwrite not recorded in environment")
	}
}

func TestRun_BadArguments(t *testing.T) {
	ctx, _ := setupTestEnv(t)

	if err := runCommand(ctx, t, "convert", Run, ConvertFlags()); !errors.Is(err, ErrNoInput) {
		t.Errorf("expected ErrNoInput, got %v", err)
	}
	err := runCommand(ctx, t, "convert", Run, ConvertFlags(), "--format", "less", "testdata/custom-minimal.scss")
	if !errors.Is(err, common.ErrInvalidSourceFormat) {
		t.Errorf("expected ErrInvalidSourceFormat, got %v", err)
	}
	err = runCommand(ctx, t, "convert", Run, ConvertFlags(), "--dark-mode", "sometimes", "testdata/custom-minimal.scss")
	if !errors.Is(err, common.ErrInvalidDarkModeStrategy) {
		t.Errorf("expected ErrInvalidDarkModeStrategy, got %v", err)
	}
}
