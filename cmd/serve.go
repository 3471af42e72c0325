package cmd

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"ytagent/internal/config"
	"ytagent/server"
	"ytagent/youtube"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API and search page",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		level, err := cfg.SlogLevel()
		if err != nil {
			return err
		}
		log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
		slog.SetDefault(log)

		searcher, err := youtube.NewAPISearcher(cmd.Context(), cfg.APIKey)
		if err != nil {
			return err
		}
		// Channel listing survives quota exhaustion via the keyless feed.
		searcher.SetFallback(youtube.NewFeedLister())

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		srv := server.New(cfg, searcher, searcher, log)
		return srv.Run(ctx)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
