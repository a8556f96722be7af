package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newCacheCmd(get func() *app, opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Show cache statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			st := get().shop.CacheStats(cmd.Context())
			if opts.asJSON {
				return printJSON(cmd.OutOrStdout(), st)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d cocktail(s) cached\n", st.Count)
			if len(st.Recent) > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "recently viewed: %s\n", strings.Join(st.Recent, ", "))
			}
			return nil
		},
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Drop every cached cocktail and the recently viewed list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			get().shop.ClearCache(cmd.Context())
			fmt.Fprintln(cmd.OutOrStdout(), "Cache cleared.")
			return nil
		},
	})
	return cmd
}
