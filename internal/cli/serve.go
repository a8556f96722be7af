package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/TemirB/cocktail-shop/internal/httpapi"
	"github.com/TemirB/cocktail-shop/internal/pkg/circuit"
	"github.com/TemirB/cocktail-shop/internal/statusfeed"
)

func newServeCmd(get func() *app) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the shop as a JSON API on localhost",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a := get()
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if addr == "" {
				addr = a.cfg.HTTPAddr
			}

			a.cache.Warm(ctx, a.api)

			if len(a.cfg.Kafka.Brokers) > 0 {
				if err := statusfeed.EnsureTopic(ctx, a.cfg.Kafka, a.logger); err != nil {
					a.logger.Warn("Can't ensure status topic", zap.Error(err))
				}
				reader := statusfeed.NewReader(a.cfg.Kafka)
				defer reader.Close()

				handler := statusfeed.NewHandler(a.orders, circuit.New(a.cfg.Breaker), a.cfg.Retry, a.logger, a.metrics)
				go statusfeed.NewConsumer(handler, reader, a.logger).Start(ctx)
			}

			server := httpapi.New(a.shop, a.breaker, a.logger, a.metrics)
			err := server.ListenAndServe(ctx, addr)

			t := a.metrics.Totals()
			a.logger.Info("Stopped",
				zap.Int("cache_hits", t.CacheHits),
				zap.Int("cache_misses", t.CacheMisses),
				zap.Int("cache_expired", t.CacheExpired),
			)
			return err
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default HTTP_ADDR)")
	return cmd
}
