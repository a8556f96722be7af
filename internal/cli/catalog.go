package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/TemirB/cocktail-shop/internal/domain"
)

func newShowCmd(get func() *app, opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one cocktail, from the cache when it is fresh",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, st, err := get().shop.CocktailWithStats(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if opts.asJSON {
				return printJSON(cmd.OutOrStdout(), c)
			}
			printCocktail(cmd.OutOrStdout(), *c)
			fmt.Fprintf(cmd.ErrOrStderr(), "source=%s cache=%.2fms api=%.2fms\n", st.Source, st.CacheMs, st.APIMs)
			return nil
		},
	}
}

func newSearchCmd(get func() *app, opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "search <name>",
		Short: "Search cocktails by name",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			found, err := get().shop.Search(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			return printList(cmd, opts, found)
		},
	}
}

func newRandomCmd(get func() *app, opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "random",
		Short: "Show a random cocktail",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := get().catalog.Random(cmd.Context())
			if err != nil {
				return err
			}
			if opts.asJSON {
				return printJSON(cmd.OutOrStdout(), c)
			}
			printCocktail(cmd.OutOrStdout(), *c)
			return nil
		},
	}
}

// newListCmd browses the catalog: the filter values themselves, or the
// cocktails matching one of them.
func newListCmd(get func() *app, opts *options) *cobra.Command {
	var category, ingredient, alcoholic string

	cmd := &cobra.Command{
		Use:       "list [categories|ingredients|glasses|alcoholic]",
		Short:     "List filter values, or cocktails matching a filter",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"categories", "ingredients", "glasses", "alcoholic"},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			repo := get().catalog

			var (
				found []domain.Cocktail
				err   error
			)
			switch {
			case category != "":
				found, err = repo.ByCategory(ctx, category)
			case ingredient != "":
				found, err = repo.ByIngredient(ctx, ingredient)
			case alcoholic != "":
				found, err = repo.ByAlcoholic(ctx, alcoholic)
			default:
				kind := "categories"
				if len(args) == 1 {
					kind = args[0]
				}
				return listValues(cmd, opts, get(), kind)
			}
			if err != nil {
				return err
			}
			return printList(cmd, opts, found)
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "Cocktails in this category")
	cmd.Flags().StringVar(&ingredient, "ingredient", "", "Cocktails with this ingredient")
	cmd.Flags().StringVar(&alcoholic, "alcoholic", "", "Cocktails with this alcoholic flag")
	cmd.MarkFlagsMutuallyExclusive("category", "ingredient", "alcoholic")
	return cmd
}

func listValues(cmd *cobra.Command, opts *options, a *app, kind string) error {
	ctx := cmd.Context()
	var (
		values []string
		err    error
	)
	switch kind {
	case "categories":
		values, err = a.catalog.Categories(ctx)
	case "ingredients":
		values, err = a.catalog.Ingredients(ctx)
	case "glasses":
		values, err = a.catalog.Glasses(ctx)
	case "alcoholic":
		values, err = a.api.AlcoholicFilters(ctx)
	default:
		return fmt.Errorf("unknown list %q", kind)
	}
	if err != nil {
		return err
	}
	if opts.asJSON {
		return printJSON(cmd.OutOrStdout(), values)
	}
	for _, v := range values {
		fmt.Fprintln(cmd.OutOrStdout(), v)
	}
	return nil
}

func newRecentCmd(get func() *app, opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "recent",
		Short: "Recently viewed cocktails, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printList(cmd, opts, get().shop.RecentlyViewed(cmd.Context()))
		},
	}
}

func newRecommendCmd(get func() *app, opts *options) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "recommend <id>",
		Short: "Suggest cocktails similar to the given one",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			found, err := get().shop.Recommendations(cmd.Context(), args[0], limit)
			if err != nil {
				return err
			}
			return printList(cmd, opts, found)
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 3, "How many suggestions")
	return cmd
}

func newFavoritesCmd(get func() *app, opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "favorites",
		Short: "List favorite cocktails",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printList(cmd, opts, get().shop.Favorites(cmd.Context()))
		},
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "toggle <id>",
		Short: "Add the cocktail to favorites, or remove it when it is there",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			on, err := get().shop.ToggleFavorite(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if on {
				fmt.Fprintf(cmd.OutOrStdout(), "Added %s to favorites.\n", args[0])
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Removed %s from favorites.\n", args[0])
			}
			return nil
		},
	})
	return cmd
}

func printList(cmd *cobra.Command, opts *options, list []domain.Cocktail) error {
	if opts.asJSON {
		return printJSON(cmd.OutOrStdout(), list)
	}
	printCocktails(cmd.OutOrStdout(), list)
	return nil
}
