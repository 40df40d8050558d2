package convert

import (
	"path/filepath"
	"strings"
	"testing"

	"tokconv/variables"
)

func TestDump(t *testing.T) {
	ctx, env := setupTestEnv(t)
	conv := newTestConverter(t, env)

	res, err := conv.Convert(ctx, []string{filepath.Join("testdata", "custom-minimal.scss")}, OptionsFromConfig(&env.Cfg.Conversion))
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}

	out := Dump(res)
	for _, want := range []string{
		"theme: \"custom-minimal\"\n",
		"sources (1)\n  testdata/custom-minimal.scss\n",
		"variables (4)\n  Color (2)\n",
		"tokens (8)\n  color (2)\n",
		"    Color.Primary: \"#FF6B6B\"\n      dark: ",
		"    Spacing.Medium: \"20px\"\n",
		"  border width (0)\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("dump does not contain %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "warnings") {
		t.Errorf("unexpected warnings section:\n%s", out)
	}

	if Dump(res) != out {
		t.Error("dump is not stable")
	}
}

func TestDump_Partial(t *testing.T) {
	res := &Result{
		ThemeName: "Bootstrap",
		Variables: &variables.Set{Warnings: []string{"unresolved reference $brand"}},
	}
	out := Dump(res)
	if strings.Contains(out, "tokens (") {
		t.Errorf("tokens section without tokens:\n%s", out)
	}
	if !strings.HasSuffix(out, "warnings (1)\n  unresolved reference $brand\n") {
		t.Errorf("unexpected dump:\n%s", out)
	}
}

func TestTreeWriter(t *testing.T) {
	tw := newTreeWriter()
	tw.line(0, "root %d", 1)
	tw.line(2, "nested")
	tw.text(1, "empty", "")
	tw.text(1, "quoted", "a\"b")
	want := "root 1\n    nested\n  empty: \n  quoted: \"a\\\"b\"\n"
	if got := tw.String(); got != want {
		t.Errorf("treeWriter = %q, want %q", got, want)
	}
}
