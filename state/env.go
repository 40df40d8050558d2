// Package state carries tokconv run environment (configuration, logger,
// debug report, output stream) through command actions in context.
package state

import (
	"context"
	"io"
	"time"

	"go.uber.org/zap"

	"tokconv/config"
)

type envKey struct{}

// LocalEnv is prepared by the Before hook of the application and shared by
// convert, info, serve and dumpconfig actions. Until configuration is loaded
// logger discards everything and Rpt is nil.
type LocalEnv struct {
	// Cfg is the active configuration: embedded defaults with user file on top.
	Cfg *config.Config
	// Rpt collects debug report entries when --debug is given, nil otherwise.
	Rpt *config.Report
	Log *zap.Logger
	// Out receives command results (info tables, dumped configuration). Logs
	// never go there, serve keeps protocol on stdout and logs on stderr.
	Out io.Writer

	// Overwrite allows convert to replace existing Tokens.xaml and Theme.xaml.
	// Watch mode reruns always replace their own output.
	Overwrite bool

	start         time.Time
	restoreStdLog func()
}

// EnvFromContext returns environment stored by ContextWithEnv. Actions run
// only under the application, so missing environment is a programming error.
func EnvFromContext(ctx context.Context) *LocalEnv {
	if env, ok := ctx.Value(envKey{}).(*LocalEnv); ok {
		return env
	}
	// this should never happen
	panic("localenv not found in context")
}

// ContextWithEnv attaches fresh environment with discarding logger and stdout
// as result stream.
func ContextWithEnv(ctx context.Context) context.Context {
	return context.WithValue(ctx, envKey{}, newLocalEnv())
}

// Uptime reports time since environment was created, logged when program or
// MCP server stops.
func (e *LocalEnv) Uptime() time.Duration {
	return time.Since(e.start)
}

// RedirectStdLog sends output of standard library logger (used by some
// dependencies) to our logger at info level.
func (e *LocalEnv) RedirectStdLog() {
	if e.Log == nil {
		return
	}
	e.restoreStdLog = zap.RedirectStdLog(e.Log)
}

// RestoreStdLog flushes logger and undoes RedirectStdLog.
func (e *LocalEnv) RestoreStdLog() {
	if e.Log != nil {
		_ = e.Log.Sync()
	}
	if e.restoreStdLog != nil {
		e.restoreStdLog()
	}
}
