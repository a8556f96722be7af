// Package cli is the cocktails command line: a thin cobra layer over the shop.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/TemirB/cocktail-shop/internal/config"
	"github.com/TemirB/cocktail-shop/internal/observability"
)

type options struct {
	debug   bool
	asJSON  bool
	backend string
}

// Execute runs the root command with os.Args and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd(config.FromEnv).ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// NewRootCmd builds the command tree. loadConfig is called once before any
// subcommand runs.
func NewRootCmd(loadConfig func() (config.Config, error)) *cobra.Command {
	opts := &options{}
	var a *app

	root := &cobra.Command{
		Use:           "cocktails",
		Short:         "Browse cocktails, keep a cart and place orders",
		Long:          `cocktails is a local cocktail shop backed by TheCocktailDB. Looked up cocktails are cached for a day, the cart and order history live in a key-value store (file, Redis or Postgres).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if opts.backend != "" {
				cfg.KV.Backend = opts.backend
			}
			logger, err := newLogger(opts.debug || cfg.Debug)
			if err != nil {
				return err
			}
			a, err = build(cmd.Context(), cfg, logger, observability.NewInmem(256))
			if err != nil {
				_ = logger.Sync()
				return err
			}
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if a != nil {
				a.Close()
			}
		},
	}

	root.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Verbose logging to stderr")
	root.PersistentFlags().BoolVar(&opts.asJSON, "json", false, "Print results as JSON")
	root.PersistentFlags().StringVar(&opts.backend, "backend", "", "Key-value backend: memory, file, redis or postgres (overrides KV_BACKEND)")

	get := func() *app { return a }
	root.AddCommand(
		newServeCmd(get),
		newShowCmd(get, opts),
		newSearchCmd(get, opts),
		newRandomCmd(get, opts),
		newListCmd(get, opts),
		newRecentCmd(get, opts),
		newRecommendCmd(get, opts),
		newFavoritesCmd(get, opts),
		newCartCmd(get, opts),
		newCheckoutCmd(get, opts),
		newOrdersCmd(get, opts),
		newCacheCmd(get, opts),
		newLoginCmd(get, opts),
		newLogoutCmd(get),
		newWhoamiCmd(get, opts),
	)
	return root
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
