package convert

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/maruel/natural"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"tokconv/common"
	"tokconv/source"
	"tokconv/state"
	"tokconv/tokens"
	"tokconv/variables"
)

// maxValueWidth limits variable value in listing.
const maxValueWidth = 50

// InfoReport describes theme sources without converting them.
type InfoReport struct {
	Sources   []string
	Variables *variables.Set
	Tokens    *tokens.Set
	// Limit is number of variables listed per category, negative means no
	// listing and zero means everything.
	Limit int
}

// Info is info command action.
func Info(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("info")

	opts := OptionsFromConfig(&env.Cfg.Conversion)
	if cmd.IsSet("format") {
		f, err := common.ParseSourceFormat(cmd.String("format"))
		if err != nil {
			return fmt.Errorf("bad --format value: %w", err)
		}
		opts.Format = f
	}

	loader, err := source.NewLoader(&env.Cfg.Source, nil, env.Log)
	if err != nil {
		return err
	}
	conv := NewConverter(loader, env.Log)

	names, vars, err := conv.Parse(ctx, cmd.Args().Slice(), opts.Format)
	if err != nil {
		return err
	}
	log.Debug("Sources analyzed", zap.Strings("sources", names))

	rep := InfoReport{
		Sources:   names,
		Variables: vars,
		Tokens:    conv.mapper.Map(vars, opts.Tokens),
		Limit:     -1,
	}
	if cmd.Bool("list") {
		rep.Limit = max(int(cmd.Int("limit")), 0)
	}
	return WriteInfo(env.Out, rep)
}

func newTable() table.Writer {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.SeparateRows = false
	tbl.Style().Options.DrawBorder = false
	return tbl
}

// WriteInfo renders report as text tables.
func WriteInfo(w io.Writer, rep InfoReport) error {
	var b strings.Builder

	fmt.Fprintf(&b, "Sources: %s\n\n", strings.Join(rep.Sources, ", "))

	vt := newTable()
	vt.SetTitle("Variables")
	vt.AppendHeader(table.Row{"Category", "Count"})
	for _, c := range variables.Categories() {
		vt.AppendRow(table.Row{c.String(), len(rep.Variables.Category(c))})
	}
	vt.AppendFooter(table.Row{"Total", rep.Variables.Len()})
	b.WriteString(vt.Render())
	b.WriteString("\n\n")

	sum := Summarize(rep.Tokens)
	tt := newTable()
	tt.SetTitle("Tokens")
	tt.AppendHeader(table.Row{"Category", "Count"})
	tt.AppendRows([]table.Row{
		{"Color", sum.ColorTokens},
		{"Typography", sum.TypographyTokens},
		{"Spacing", sum.SpacingTokens},
		{"Corner Radius", sum.BorderRadiusTokens},
		{"Border Width", sum.BorderWidthTokens},
	})
	tt.AppendFooter(table.Row{"Total", sum.Total()})
	b.WriteString(tt.Render())
	b.WriteString("\n")

	if rep.Limit >= 0 {
		b.WriteString("\n")
		b.WriteString(listing(rep.Variables, rep.Limit))
		b.WriteString("\n")
	}

	if len(rep.Variables.Warnings) > 0 {
		b.WriteString("\nWarnings:\n")
		for _, warn := range rep.Variables.Warnings {
			fmt.Fprintf(&b, "  %s\n", warn)
		}
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("unable to write report: %w", err)
	}
	return nil
}

// listing renders variables of every category in natural name order.
func listing(vars *variables.Set, limit int) string {
	tbl := newTable()
	tbl.SetTitle("Variable Listing")
	tbl.AppendHeader(table.Row{"Category", "Name", "Value"})

	for _, c := range variables.Categories() {
		m := vars.Category(c)
		if len(m) == 0 {
			tbl.AppendRow(table.Row{c.String(), "(none)", ""})
			continue
		}
		names := make([]string, 0, len(m))
		for name := range m {
			names = append(names, name)
		}
		slices.SortFunc(names, func(a, b string) int {
			switch {
			case a == b:
				return 0
			case natural.Less(a, b):
				return -1
			default:
				return 1
			}
		})

		shown := names
		if limit > 0 && len(names) > limit {
			shown = names[:limit]
		}
		for _, name := range shown {
			tbl.AppendRow(table.Row{c.String(), name, truncate(m[name], maxValueWidth)})
		}
		if rest := len(names) - len(shown); rest > 0 {
			tbl.AppendRow(table.Row{c.String(), fmt.Sprintf("... and %d more", rest), ""})
		}
	}
	return tbl.Render()
}

func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	return string(r[:width-3]) + "..."
}
