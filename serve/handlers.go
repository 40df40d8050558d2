package serve

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"tokconv/common"
	"tokconv/convert"
)

type convertOutput struct {
	ThemeName  string          `json:"themeName"`
	Sources    []string        `json:"sources"`
	TokensXaml string          `json:"tokensXaml"`
	ThemeXaml  string          `json:"themeXaml"`
	Summary    convert.Summary `json:"summary"`
	Warnings   []string        `json:"warnings,omitempty"`
}

type variablesSummary struct {
	Colors     int `json:"colors"`
	Typography int `json:"typography"`
	Spacing    int `json:"spacing"`
	Borders    int `json:"borders"`
	Other      int `json:"other"`
	Total      int `json:"total"`
}

type infoOutput struct {
	Input     string           `json:"input"`
	Format    string           `json:"format"`
	Sources   []string         `json:"sources"`
	Variables variablesSummary `json:"variables"`
	Warnings  []string         `json:"warnings,omitempty"`
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("unable to encode result: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}

func (s *Server) handleConvert(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	inputs, err := req.RequireStringSlice("inputs")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if len(inputs) == 0 {
		return mcp.NewToolResultError(convert.ErrNoInput.Error()), nil
	}

	opts := s.defaults
	if opts.Format, err = common.ParseSourceFormat(req.GetString("format", opts.Format.String())); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if opts.Tokens.DarkMode, err = common.ParseDarkModeStrategy(req.GetString("darkMode", opts.Tokens.DarkMode.String())); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	opts.Tokens.Namespace = req.GetString("namespace", opts.Tokens.Namespace)
	opts.Tokens.IncludeComments = req.GetBool("includeComments", opts.Tokens.IncludeComments)
	opts.ThemeName = req.GetString("themeName", opts.ThemeName)

	res, err := s.conv.Convert(ctx, inputs, opts)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(convertOutput{
		ThemeName:  res.ThemeName,
		Sources:    res.Sources,
		TokensXaml: res.Documents.Tokens,
		ThemeXaml:  res.Documents.Theme,
		Summary:    convert.Summarize(res.Tokens),
		Warnings:   res.Variables.Warnings,
	})
}

func (s *Server) handleInfo(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := req.RequireString("input")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	format, err := common.ParseSourceFormat(req.GetString("format", s.defaults.Format.String()))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	names, vars, err := s.conv.Parse(ctx, []string{input}, format)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(infoOutput{
		Input:   input,
		Format:  format.String(),
		Sources: names,
		Variables: variablesSummary{
			Colors:     len(vars.Colors),
			Typography: len(vars.Typography),
			Spacing:    len(vars.Spacing),
			Borders:    len(vars.Borders),
			Other:      len(vars.Other),
			Total:      vars.Len(),
		},
		Warnings: vars.Warnings,
	})
}
