// Package source reads theme sources from local files and remote URLs.
package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"tokconv/archive"
	"tokconv/common"
	"tokconv/config"
	"tokconv/misc"
	"tokconv/variables"
)

// maxRemoteSize limits body of a remote source. Larger body fails the load.
// Largest Bootstrap builds are well below that.
const maxRemoteSize = 16 << 20

// IsURL reports whether source name is http or https URL.
func IsURL(name string) bool {
	u, err := url.Parse(name)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// Loader reads sources. Fetched remote content is kept in LRU cache, so
// repeated conversions (watch mode, server) do not hit network again. Loader
// is safe for concurrent use.
type Loader struct {
	client      *http.Client
	cache       *lru.Cache[string, string]
	timeout     time.Duration
	concurrency int
	auth        string
	log         *zap.Logger
}

// NewLoader creates loader configured by cfg. Client may be nil, then
// http.DefaultClient is used.
func NewLoader(cfg *config.SourceConfig, client *http.Client, log *zap.Logger) (*Loader, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if client == nil {
		client = http.DefaultClient
	}
	log = log.Named("source")

	cache, err := lru.NewWithEvict(max(cfg.CacheSize, 1), func(key string, _ string) {
		log.Debug("Remote source evicted from cache", zap.String("url", key))
	})
	if err != nil {
		return nil, fmt.Errorf("unable to create source cache: %w", err)
	}

	return &Loader{
		client:      client,
		cache:       cache,
		timeout:     cfg.Timeout,
		concurrency: max(cfg.Concurrency, 1),
		auth:        string(cfg.Authorization),
		log:         log,
	}, nil
}

// Load reads single source with requested format.
func (l *Loader) Load(ctx context.Context, name string, format common.SourceFormat) (variables.Source, error) {
	var (
		content string
		err     error
	)
	if IsURL(name) {
		content, err = l.fetch(ctx, name)
	} else {
		content, err = l.read(name)
	}
	if err != nil {
		return variables.Source{}, err
	}
	return variables.Source{Name: name, Content: content, Format: format}, nil
}

// LoadAll reads sources concurrently. Result preserves order of names, so
// merge precedence does not depend on completion order. First error cancels
// remaining loads.
func (l *Loader) LoadAll(ctx context.Context, names []string, format common.SourceFormat) ([]variables.Source, error) {
	sources := make([]variables.Source, len(names))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(l.concurrency)
	for i, name := range names {
		g.Go(func() error {
			src, err := l.Load(ctx, name, format)
			if err != nil {
				return err
			}
			sources[i] = src
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return sources, nil
}

func (l *Loader) read(name string) (string, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		arc, inner, ok := archive.Split(name)
		if !ok || len(inner) == 0 {
			return "", fmt.Errorf("source %q: %w: %w", name, variables.ErrSourceNotFound, err)
		}
		if data, err = archive.ReadFile(arc, inner); err != nil {
			return "", fmt.Errorf("source %q: %w: %w", name, variables.ErrSourceNotFound, err)
		}
	}
	l.log.Debug("Source read", zap.String("file", name), zap.Int("bytes", len(data)))
	return string(data), nil
}

func (l *Loader) fetch(ctx context.Context, name string) (string, error) {
	if content, ok := l.cache.Get(name); ok {
		l.log.Debug("Remote source served from cache", zap.String("url", name))
		return content, nil
	}

	if l.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, name, nil)
	if err != nil {
		return "", fmt.Errorf("source %q: %w: %w", name, variables.ErrSourceNotFound, err)
	}
	req.Header.Set("User-Agent", misc.GetAppName()+"/"+misc.GetVersion())
	if len(l.auth) > 0 {
		req.Header.Set("Authorization", l.auth)
	}

	start := time.Now()
	resp, err := l.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("source %q: %w: %w", name, variables.ErrSourceNotFound, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("source %q: %w: unexpected status %s", name, variables.ErrSourceNotFound, resp.Status)
	}

	var b strings.Builder
	n, err := io.Copy(&b, io.LimitReader(resp.Body, maxRemoteSize+1))
	if err != nil {
		return "", fmt.Errorf("source %q: %w: %w", name, variables.ErrSourceNotFound, err)
	}
	if n > maxRemoteSize {
		return "", fmt.Errorf("source %q: %w: body is larger than %d bytes", name, variables.ErrSourceNotFound, maxRemoteSize)
	}
	content := b.String()

	l.cache.Add(name, content)
	l.log.Debug("Remote source fetched",
		zap.String("url", name),
		zap.Int("bytes", len(content)),
		zap.Duration("elapsed", time.Since(start)))
	return content, nil
}
