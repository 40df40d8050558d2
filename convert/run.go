package convert

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"tokconv/common"
	"tokconv/config"
	"tokconv/source"
	"tokconv/state"
	"tokconv/xaml"
)

// Run is convert command action.
func Run(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("convert")

	inputs := cmd.Args().Slice()
	if len(inputs) == 0 {
		return ErrNoInput
	}

	opts, err := optionsFromCommand(cmd, &env.Cfg.Conversion)
	if err != nil {
		return err
	}

	dst := cmd.String("output")
	if len(dst) == 0 {
		if dst, err = os.Getwd(); err != nil {
			return fmt.Errorf("unable to get working directory: %w", err)
		}
	}
	if dst, err = filepath.Abs(dst); err != nil {
		return err
	}

	env.Overwrite = cmd.Bool("overwrite")

	loader, err := source.NewLoader(&env.Cfg.Source, nil, env.Log)
	if err != nil {
		return err
	}
	conv := NewConverter(loader, env.Log)

	log.Info("Processing starting",
		zap.Strings("sources", inputs),
		zap.String("destination", dst),
		zap.Stringer("format", opts.Format),
		zap.Stringer("dark mode", opts.Tokens.DarkMode))

	if !cmd.Bool("watch") {
		return process(ctx, conv, inputs, dst, opts, env.Overwrite, env.Rpt, log)
	}
	return watch(ctx, conv, inputs, dst, opts, env, log)
}

// optionsFromCommand starts with configured options and replaces them with
// values explicitly set on command line.
func optionsFromCommand(cmd *cli.Command, cfg *config.ConversionConfig) (Options, error) {
	opts := OptionsFromConfig(cfg)

	if cmd.IsSet("format") {
		f, err := common.ParseSourceFormat(cmd.String("format"))
		if err != nil {
			return Options{}, fmt.Errorf("bad --format value: %w", err)
		}
		opts.Format = f
	}
	if cmd.IsSet("dark-mode") {
		dm, err := common.ParseDarkModeStrategy(cmd.String("dark-mode"))
		if err != nil {
			return Options{}, fmt.Errorf("bad --dark-mode value: %w", err)
		}
		opts.Tokens.DarkMode = dm
	}
	if cmd.IsSet("namespace") {
		opts.Tokens.Namespace = cmd.String("namespace")
	}
	if cmd.IsSet("comments") {
		opts.Tokens.IncludeComments = cmd.Bool("comments")
	}
	if cmd.IsSet("theme-name") {
		opts.ThemeName = cmd.String("theme-name")
	}
	return opts, nil
}

// process converts sources once and writes documents to dst.
func process(ctx context.Context, conv *Converter, inputs []string, dst string, opts Options, overwrite bool, rpt *config.Report, log *zap.Logger) error {
	defer func(start time.Time) {
		log.Debug("Processing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	res, err := conv.Convert(ctx, inputs, opts)
	if err != nil {
		return err
	}
	if err := xaml.WriteFiles(dst, res.Documents, overwrite); err != nil {
		return fmt.Errorf("unable to write output: %w", err)
	}
	storeResult(rpt, res)

	sum := Summarize(res.Tokens)
	log.Info("Theme generated",
		zap.String("theme", res.ThemeName),
		zap.String("destination", dst),
		zap.Int("variables", res.Variables.Len()),
		zap.Int("tokens", sum.Total()),
		zap.Int("colors", sum.ColorTokens),
		zap.Int("typography", sum.TypographyTokens),
		zap.Int("spacing", sum.SpacingTokens),
		zap.Int("radius", sum.BorderRadiusTokens),
		zap.Int("border width", sum.BorderWidthTokens),
		zap.Int("warnings", len(res.Variables.Warnings)))
	return nil
}

// storeResult puts generated documents into debug report.
func storeResult(rpt *config.Report, res *Result) {
	if rpt == nil {
		return
	}
	dir := path.Join("output", config.CleanFileName(res.ThemeName))
	rpt.StoreData(path.Join(dir, xaml.TokensFileName), []byte(res.Documents.Tokens))
	rpt.StoreData(path.Join(dir, xaml.ThemeFileName), []byte(res.Documents.Theme))
	rpt.StoreData(path.Join(dir, DumpFileName), []byte(Dump(res)))
}

// watch converts sources and keeps converting them on every change until
// context is canceled. Failures after first conversion are only logged.
func watch(ctx context.Context, conv *Converter, inputs []string, dst string, opts Options, env *state.LocalEnv, log *zap.Logger) error {
	names, err := source.Expand(inputs)
	if err != nil {
		return err
	}

	w, err := NewWatcher(names, env.Cfg.Watch.Debounce, func() {
		// we are replacing our own output from now on
		if err := process(ctx, conv, names, dst, opts, true, env.Rpt, log); err != nil {
			log.Error("Conversion failed", zap.Error(err))
		}
	}, env.Log)
	if err != nil {
		return err
	}

	if err := process(ctx, conv, names, dst, opts, env.Overwrite, env.Rpt, log); err != nil {
		w.Close()
		return err
	}

	log.Info("Watching sources for changes, interrupt to stop", zap.Duration("debounce", env.Cfg.Watch.Debounce))
	return w.Run(ctx)
}
