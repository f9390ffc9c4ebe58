package ingest

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher ingests recordings dropped into a directory. Files are debounced
// so an ingest only starts once the file has stopped growing.
type Watcher struct {
	pipeline *Pipeline
	dir      string
	ownerID  int64
	debounce time.Duration
	logger   *slog.Logger

	watcher *fsnotify.Watcher
	timers  map[string]*time.Timer
	mu      sync.Mutex
	stopCh  chan struct{}
	wg      sync.WaitGroup
}

// NewWatcher creates a Watcher over dir. Ingested lectures are owned by
// ownerID.
func NewWatcher(pipeline *Pipeline, dir string, ownerID int64) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		pipeline: pipeline,
		dir:      dir,
		ownerID:  ownerID,
		debounce: 2 * time.Second,
		logger:   slog.Default(),
		watcher:  fsw,
		timers:   make(map[string]*time.Timer),
		stopCh:   make(chan struct{}),
	}, nil
}

// Start begins watching. It returns immediately; events are handled on a
// background goroutine until Stop.
func (w *Watcher) Start(ctx context.Context) error {
	if err := w.watcher.Add(w.dir); err != nil {
		return err
	}
	w.logger.Info("watching for dropped recordings", "dir", w.dir)

	w.wg.Add(1)
	go w.loop(ctx)
	return nil
}

// Stop shuts the watcher down and waits for in-flight handlers.
func (w *Watcher) Stop() {
	close(w.stopCh)
	_ = w.watcher.Close()
	w.wg.Wait()

	w.mu.Lock()
	for _, timer := range w.timers {
		timer.Stop()
	}
	w.mu.Unlock()
}

func (w *Watcher) loop(ctx context.Context) {
	defer w.wg.Done()
	for {
		select {
		case <-w.stopCh:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Create|fsnotify.Write) == 0 {
				continue
			}
			if !ValidExtension(event.Name) {
				continue
			}
			w.schedule(ctx, event.Name)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watch error", "error", err)
		}
	}
}

// schedule (re)arms the debounce timer for a path. Every write restarts the
// countdown, so ingestion fires once the file settles.
func (w *Watcher) schedule(ctx context.Context, path string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if timer, ok := w.timers[path]; ok {
		timer.Stop()
	}
	w.timers[path] = time.AfterFunc(w.debounce, func() {
		w.mu.Lock()
		delete(w.timers, path)
		w.mu.Unlock()

		select {
		case <-w.stopCh:
			return
		default:
		}

		if _, err := w.pipeline.IngestFile(ctx, path, w.ownerID); err != nil {
			w.logger.Error("failed to ingest dropped recording", "path", path, "error", err)
			return
		}
		w.logger.Info("ingested dropped recording", "path", path)
	})
}
