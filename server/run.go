package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"
	"github.com/spektr-org/sentencer/config"
	"golang.org/x/sync/errgroup"
)

// Run serves the API until ctx is done, then shuts down within the
// configured timeout. With watchVocabulary set the store is reloaded on
// file changes.
func Run(ctx context.Context, conf *config.Conf, store *Store) error {
	metrics := NewMetrics()
	srv := &http.Server{
		Handler:      NewEngine(NewActions(store, metrics)),
		Addr:         conf.Addr(),
		WriteTimeout: conf.WriteTimeout(),
		ReadTimeout:  conf.ReadTimeout(),
	}

	g, gctx := errgroup.WithContext(ctx)

	if conf.WatchVocabulary {
		watcher, err := NewWatcher(store, metrics, DfltDebounceDelay)
		if err != nil {
			return err
		}
		g.Go(func() error {
			return watcher.Run(gctx)
		})
		log.Info().Str("path", store.Path()).Msg("watching vocabulary for changes")
	}

	g.Go(func() error {
		log.Info().Msgf("starting to listen at %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), conf.ShutdownTimeout())
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Warn().Err(err).Msg("shutdown timed out")
			return err
		}
		log.Info().Msg("graceful shutdown completed")
		return nil
	})

	return g.Wait()
}
