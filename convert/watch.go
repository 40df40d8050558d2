package convert

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"tokconv/archive"
	"tokconv/source"
)

// Watcher calls rerun when any of local sources changes. Bursts of events
// (editors often write file several times on save) are collapsed: rerun
// happens once debounce interval passes without new events. Reruns never
// overlap.
type Watcher struct {
	watcher  *fsnotify.Watcher
	files    map[string]bool
	debounce time.Duration
	rerun    func()
	log      *zap.Logger

	pending chan struct{}
	mu      sync.Mutex
	timer   *time.Timer
}

// NewWatcher starts watching directories of local sources. URLs are ignored,
// sources inside zip archive are watched through archive file. At least one
// local source is required.
func NewWatcher(sources []string, debounce time.Duration, rerun func(), log *zap.Logger) (*Watcher, error) {
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("watch")

	files := make(map[string]bool)
	dirs := make(map[string]bool)
	for _, name := range sources {
		if source.IsURL(name) {
			log.Debug("Remote source is not watched", zap.String("url", name))
			continue
		}
		if arc, _, ok := archive.Split(name); ok {
			// changes inside archive show up as archive writes
			name = arc
		}
		abs, err := filepath.Abs(name)
		if err != nil {
			return nil, fmt.Errorf("unable to watch %s: %w", name, err)
		}
		files[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	if len(files) == 0 {
		return nil, errors.New("no local sources to watch")
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	// directories survive editors replacing files by rename
	for dir := range dirs {
		if err := fw.Add(dir); err != nil {
			fw.Close()
			return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}

	return &Watcher{
		watcher:  fw,
		files:    files,
		debounce: debounce,
		rerun:    rerun,
		log:      log,
		pending:  make(chan struct{}, 1),
	}, nil
}

// Run processes events until context is canceled. Watcher is closed when Run
// returns.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.Close()

	for {
		select {
		case <-ctx.Done():
			return nil

		case <-w.pending:
			w.rerun()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			w.handleEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.log.Warn("File watcher error", zap.Error(err))
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	name, err := filepath.Abs(event.Name)
	if err != nil || !w.files[name] {
		return
	}
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return
	}
	w.log.Debug("Source changed", zap.Stringer("op", event.Op), zap.String("file", name))
	w.schedule()
}

// schedule (re)starts debounce timer.
func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, func() {
		select {
		case w.pending <- struct{}{}:
		default:
		}
	})
}

// Close stops watching. Pending rerun is dropped.
func (w *Watcher) Close() {
	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()

	if err := w.watcher.Close(); err != nil {
		w.log.Debug("Unable to close file watcher", zap.Error(err))
	}
}
