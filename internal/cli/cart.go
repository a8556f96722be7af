package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/TemirB/cocktail-shop/internal/application/service"
)

func newCartCmd(get func() *app, opts *options) *cobra.Command {
	show := func(cmd *cobra.Command, v service.CartView) error {
		if opts.asJSON {
			return printJSON(cmd.OutOrStdout(), v)
		}
		printCart(cmd.OutOrStdout(), v)
		return nil
	}

	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Show the cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return show(cmd, get().shop.Cart(cmd.Context()))
		},
	}

	var qty int
	add := &cobra.Command{
		Use:   "add <id>",
		Short: "Put a cocktail in the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := get().shop.AddToCart(cmd.Context(), args[0], qty)
			if err != nil {
				return err
			}
			return show(cmd, v)
		},
	}
	add.Flags().IntVarP(&qty, "quantity", "q", 1, "How many")

	set := &cobra.Command{
		Use:   "set <id> <quantity>",
		Short: "Change the quantity of a cart line; zero removes it",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("quantity %q is not a number", args[1])
			}
			return show(cmd, get().shop.SetCartQuantity(cmd.Context(), args[0], n))
		},
	}

	remove := &cobra.Command{
		Use:     "remove <id>",
		Aliases: []string{"rm"},
		Short:   "Drop a cocktail from the cart",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return show(cmd, get().shop.RemoveFromCart(cmd.Context(), args[0]))
		},
	}

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Empty the cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			get().shop.ClearCart(cmd.Context())
			fmt.Fprintln(cmd.OutOrStdout(), "Cart cleared.")
			return nil
		},
	}

	cmd.AddCommand(add, set, remove, clearCmd)
	return cmd
}

func newCheckoutCmd(get func() *app, opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "checkout",
		Short: "Place an order for everything in the cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			order, err := get().shop.Checkout(cmd.Context())
			if err != nil {
				return err
			}
			if opts.asJSON {
				return printJSON(cmd.OutOrStdout(), order)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Order placed.")
			printOrder(cmd.OutOrStdout(), order)
			return nil
		},
	}
}
