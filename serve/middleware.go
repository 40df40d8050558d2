package serve

import (
	"context"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"
)

// loggingMiddleware records every tool call.
func (s *Server) loggingMiddleware() server.ToolHandlerMiddleware {
	return func(next server.ToolHandlerFunc) server.ToolHandlerFunc {
		return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			start := time.Now()
			result, err := next(ctx, req)

			fields := []zap.Field{
				zap.String("tool", req.Params.Name),
				zap.Any("arguments", req.GetArguments()),
				zap.Duration("elapsed", time.Since(start)),
			}
			switch {
			case err != nil:
				s.log.Error("Tool call failed", append(fields, zap.Error(err))...)
			case result != nil && result.IsError:
				s.log.Warn("Tool call rejected", append(fields, zap.String("details", resultText(result)))...)
			default:
				s.log.Debug("Tool call completed", fields...)
			}
			return result, err
		}
	}
}

func resultText(result *mcp.CallToolResult) string {
	for _, c := range result.Content {
		if text, ok := c.(mcp.TextContent); ok {
			return text.Text
		}
	}
	return ""
}
