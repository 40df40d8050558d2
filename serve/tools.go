package serve

import (
	"github.com/mark3labs/mcp-go/mcp"

	"tokconv/common"
)

func convertTool() mcp.Tool {
	return mcp.NewTool("convert",
		mcp.WithDescription("Converts Bootstrap CSS/SCSS theme sources into .NET MAUI XAML resource dictionaries (Tokens.xaml and Theme.xaml)"),
		mcp.WithArray("inputs",
			mcp.Required(),
			mcp.Description("Paths, glob patterns or http(s) URLs of theme sources, later sources override earlier ones"),
			mcp.WithStringItems(),
		),
		mcp.WithString("format",
			mcp.Description("Source format, auto detects by extension and content"),
			mcp.Enum(common.SourceFormatNames()...),
		),
		mcp.WithString("darkMode",
			mcp.Description("Dark mode strategy, auto derives dark variants of colors"),
			mcp.Enum(common.DarkModeStrategyNames()...),
		),
		mcp.WithString("namespace", mcp.Description("Label for generated documents")),
		mcp.WithBoolean("includeComments", mcp.Description("Include purpose and dark mode comments")),
		mcp.WithString("themeName", mcp.Description("Theme name, derived from first source when absent")),
	)
}

func infoTool() mcp.Tool {
	return mcp.NewTool("info",
		mcp.WithDescription("Reports number of theme variables per category without converting"),
		mcp.WithString("input",
			mcp.Required(),
			mcp.Description("Path, glob pattern or http(s) URL of theme source"),
		),
		mcp.WithString("format",
			mcp.Description("Source format, auto detects by extension and content"),
			mcp.Enum(common.SourceFormatNames()...),
		),
	)
}
