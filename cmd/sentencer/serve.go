package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spektr-org/sentencer/config"
	"github.com/spektr-org/sentencer/logging"
	"github.com/spektr-org/sentencer/server"
	"github.com/spf13/cobra"
)

func serveCmd(g *globalOpts) *cobra.Command {
	var confPath string
	var opts config.CmdOptions

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.VocabularyPath = g.vocabPath
			if cmd.Flags().Changed("log-level") {
				opts.LogLevel = g.logLevel
			}
			conf, err := config.Resolve(confPath, opts)
			if err != nil {
				return err
			}
			closer, err := logging.Setup(conf.Logging.Path, conf.Logging.Level)
			if err != nil {
				return err
			}
			defer closer.Close()
			log.Info().Msgf("using logging level '%s'", conf.Logging.Level)

			store, err := server.NewStore(conf.VocabularyPath)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return server.Run(ctx, conf, store)
		},
	}

	cmd.Flags().StringVarP(&confPath, "config", "c", "", "YAML config file")
	cmd.Flags().StringVar(&opts.ListenAddress, "host", "", "Listen address (overrides config)")
	cmd.Flags().IntVarP(&opts.ListenPort, "port", "p", 0, "Listen port (overrides config)")
	cmd.Flags().BoolVar(&opts.WatchVocabulary, "watch", false, "Reload the vocabulary file when it changes")
	cmd.Flags().StringVar(&opts.LogPath, "log-file", "", "Log to this file instead of stderr")
	return cmd
}
