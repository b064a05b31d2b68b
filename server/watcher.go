package server

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
)

const DfltDebounceDelay = 300 * time.Millisecond

// Watcher reloads a Store when its vocabulary file changes. Bursts of
// events (editors often write, rename and chmod in one save) collapse into
// a single reload.
type Watcher struct {
	store    *Store
	metrics  *Metrics
	debounce time.Duration
	fsw      *fsnotify.Watcher
	reloaded chan error
}

// NewWatcher watches the directory containing the store's file, since
// atomic saves replace the file and drop a watch placed on it directly.
func NewWatcher(store *Store, metrics *Metrics, debounce time.Duration) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(store.Path())); err != nil {
		fsw.Close()
		return nil, err
	}
	if debounce <= 0 {
		debounce = DfltDebounceDelay
	}
	return &Watcher{
		store:    store,
		metrics:  metrics,
		debounce: debounce,
		fsw:      fsw,
		reloaded: make(chan error, 1),
	}, nil
}

// Reloaded delivers the result of each reload attempt. Results are dropped
// when nobody reads them.
func (w *Watcher) Reloaded() <-chan error {
	return w.reloaded
}

// Run processes events until ctx is done. It closes the underlying
// fsnotify watcher on return.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.fsw.Close()

	target := filepath.Clean(w.store.Path())
	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			log.Debug().Str("path", event.Name).Str("op", event.Op.String()).Msg("vocabulary change detected")
			timer.Reset(w.debounce)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			log.Error().Err(err).Msg("vocabulary watcher error")

		case <-timer.C:
			w.reload()
		}
	}
}

func (w *Watcher) reload() {
	err := w.store.Reload()
	if err != nil {
		log.Error().Err(err).Str("path", w.store.Path()).Msg("vocabulary reload failed, keeping previous version")
	}
	if w.metrics != nil {
		w.metrics.Reloaded(err)
	}
	select {
	case w.reloaded <- err:
	default:
	}
}
