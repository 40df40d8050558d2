// Package serve exposes theme conversion to AI agents as Model Context
// Protocol tools over stdio.
package serve

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/mark3labs/mcp-go/server"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"tokconv/convert"
	"tokconv/misc"
	"tokconv/source"
	"tokconv/state"
)

// Server implements MCP server with convert and info tools.
type Server struct {
	mcpServer *server.MCPServer
	conv      *convert.Converter
	defaults  convert.Options
	log       *zap.Logger
}

// NewServer creates server. Defaults are used for arguments tool call does
// not specify.
func NewServer(conv *convert.Converter, defaults convert.Options, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Server{conv: conv, defaults: defaults, log: log.Named("serve")}

	s.mcpServer = server.NewMCPServer(
		misc.GetAppName(),
		misc.GetVersion(),
		server.WithToolCapabilities(false),
		server.WithRecovery(),
		server.WithToolHandlerMiddleware(s.loggingMiddleware()),
	)

	s.mcpServer.AddTools(
		server.ServerTool{Tool: convertTool(), Handler: s.handleConvert},
		server.ServerTool{Tool: infoTool(), Handler: s.handleInfo},
	)
	return s
}

// Serve processes requests from in until it is exhausted or context is
// canceled.
func (s *Server) Serve(ctx context.Context, in io.Reader, out io.Writer) error {
	stdio := server.NewStdioServer(s.mcpServer)
	stdio.SetErrorLogger(zap.NewStdLog(s.log))

	err := stdio.Listen(ctx, in, out)
	if errors.Is(err, context.Canceled) || errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// Run is serve command action. Standard output belongs to protocol, logs
// must go elsewhere.
func Run(ctx context.Context, _ *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)

	loader, err := source.NewLoader(&env.Cfg.Source, nil, env.Log)
	if err != nil {
		return err
	}
	s := NewServer(convert.NewConverter(loader, env.Log), convert.OptionsFromConfig(&env.Cfg.Conversion), env.Log)

	s.log.Info("MCP server listening on stdio", zap.String("version", misc.GetVersion()))
	defer s.log.Info("MCP server stopped", zap.Duration("uptime", env.Uptime()))

	return s.Serve(ctx, os.Stdin, os.Stdout)
}
