package convert

import (
	"strings"

	cli "github.com/urfave/cli/v3"

	"tokconv/common"
)

// ConvertFlags returns flags of convert command. Flags override configuration
// only when set explicitly.
func ConvertFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "write Tokens.xaml and Theme.xaml to `DIRECTORY` (default: current directory)"},
		&cli.StringFlag{Name: "format", Aliases: []string{"f"},
			Usage: "source `FORMAT` (supported: " + strings.Join(common.SourceFormatNames(), ", ") + ")"},
		&cli.StringFlag{Name: "dark-mode", Aliases: []string{"dm"},
			Usage: "dark mode `STRATEGY` (supported: " + strings.Join(common.DarkModeStrategyNames(), ", ") + ")"},
		&cli.StringFlag{Name: "namespace", Aliases: []string{"ns"}, Usage: "label generated documents with `NAMESPACE`"},
		&cli.BoolFlag{Name: "comments", Usage: "include purpose and dark mode comments"},
		&cli.StringFlag{Name: "theme-name", Aliases: []string{"t"}, Usage: "theme `NAME` (default: derived from first source)"},
		&cli.BoolFlag{Name: "overwrite", Aliases: []string{"ow"}, Usage: "overwrite existing output files"},
		&cli.BoolFlag{Name: "watch", Aliases: []string{"w"}, Usage: "keep running and regenerate output when local sources change"},
	}
}

// InfoFlags returns flags of info command.
func InfoFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "format", Aliases: []string{"f"},
			Usage: "source `FORMAT` (supported: " + strings.Join(common.SourceFormatNames(), ", ") + ")"},
		&cli.BoolFlag{Name: "list", Aliases: []string{"l"}, Usage: "list variables of every category"},
		&cli.IntFlag{Name: "limit", Value: 10, Usage: "list at most `N` variables per category, 0 lists everything"},
	}
}
