package compiler

import (
	"context"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long the watcher waits for further changes.
const DefaultDebounce = 500 * time.Millisecond

// DefaultWatchExtensions are the file extensions that trigger a rebuild.
var DefaultWatchExtensions = []string{".nt", ".nq", ".xsd"}

// BuildFunc recompiles the ontology after a change.
type BuildFunc func(ctx context.Context) error

// WatchConfig configures a Watcher.
type WatchConfig struct {
	// Paths are directories or files to watch. Directories are watched
	// recursively.
	Paths []string
	// Extensions are the file extensions that trigger a rebuild.
	Extensions []string
	// Debounce is how long the files must stay quiet before rebuilding.
	// Every relevant change restarts the wait.
	Debounce time.Duration
}

// Watcher reruns a build whenever watched ontology files change.
type Watcher struct {
	config     WatchConfig
	watcher    *fsnotify.Watcher
	build      BuildFunc
	logger     *slog.Logger
	extensions map[string]bool

	pendingMu sync.Mutex
	pending   map[string]fsnotify.Op

	builds   atomic.Int64
	failures atomic.Int64
}

// NewWatcher creates a watcher that calls build after changes settle.
func NewWatcher(config WatchConfig, build BuildFunc, logger *slog.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	if config.Debounce <= 0 {
		config.Debounce = DefaultDebounce
	}
	if len(config.Extensions) == 0 {
		config.Extensions = DefaultWatchExtensions
	}

	extensions := make(map[string]bool, len(config.Extensions))
	for _, ext := range config.Extensions {
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		extensions[strings.ToLower(ext)] = true
	}

	return &Watcher{
		config:     config,
		watcher:    fsw,
		build:      build,
		logger:     logger,
		extensions: extensions,
		pending:    make(map[string]fsnotify.Op),
	}, nil
}

// Run watches until ctx is cancelled or the underlying watcher fails.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.watcher.Close()

	for _, p := range w.config.Paths {
		if err := w.add(p); err != nil {
			return err
		}
	}

	w.logger.Info("Ontology watcher started",
		slog.Any("paths", w.config.Paths),
		slog.Duration("debounce", w.config.Debounce))

	return w.loop(ctx, w.watcher.Events, w.watcher.Errors)
}

// loop rebuilds once no relevant event has arrived for Debounce.
func (w *Watcher) loop(ctx context.Context, events <-chan fsnotify.Event, errs <-chan error) error {
	settle := time.NewTimer(w.config.Debounce)
	settle.Stop()
	defer settle.Stop()
	var settled <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-events:
			if !ok {
				return nil
			}
			if w.handle(event) {
				settle.Reset(w.config.Debounce)
				settled = settle.C
			}

		case err, ok := <-errs:
			if !ok {
				return nil
			}
			w.logger.Error("Watcher error", slog.String("error", err.Error()))

		case <-settled:
			settled = nil
			w.flush(ctx)
		}
	}
}

// Builds returns the number of rebuilds attempted.
func (w *Watcher) Builds() int64 {
	return w.builds.Load()
}

// Failures returns the number of rebuilds that returned an error.
func (w *Watcher) Failures() int64 {
	return w.failures.Load()
}

func (w *Watcher) add(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			if path == root {
				// A single file is watched through its directory.
				return w.watcher.Add(filepath.Dir(path))
			}
			return nil
		}
		base := filepath.Base(path)
		if strings.HasPrefix(base, ".") && path != root && base != "." {
			return filepath.SkipDir
		}
		if err := w.watcher.Add(path); err != nil {
			w.logger.Warn("Failed to watch directory",
				slog.String("path", path),
				slog.String("error", err.Error()))
		}
		return nil
	})
}

// handle records a change and reports whether it should trigger a rebuild.
func (w *Watcher) handle(event fsnotify.Event) bool {
	if !w.extensions[strings.ToLower(filepath.Ext(event.Name))] {
		if event.Has(fsnotify.Create) {
			// New subdirectories are picked up on creation.
			_ = w.add(event.Name)
		}
		return false
	}

	w.pendingMu.Lock()
	w.pending[event.Name] |= event.Op
	w.pendingMu.Unlock()

	w.logger.Debug("Ontology change detected",
		slog.String("path", event.Name),
		slog.String("op", event.Op.String()))
	return true
}

func (w *Watcher) flush(ctx context.Context) {
	w.pendingMu.Lock()
	if len(w.pending) == 0 {
		w.pendingMu.Unlock()
		return
	}
	changed := len(w.pending)
	w.pending = make(map[string]fsnotify.Op)
	w.pendingMu.Unlock()

	w.builds.Add(1)
	start := time.Now()
	if err := w.build(ctx); err != nil {
		w.failures.Add(1)
		w.logger.Error("Rebuild failed",
			slog.Int("changed", changed),
			slog.String("error", err.Error()))
		return
	}
	w.logger.Info("Rebuilt schema",
		slog.Int("changed", changed),
		slog.Duration("took", time.Since(start)))
}
