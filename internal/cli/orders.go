package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/TemirB/cocktail-shop/internal/domain"
	"github.com/TemirB/cocktail-shop/internal/statusfeed"
)

func newOrdersCmd(get func() *app, opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orders",
		Short: "Order history, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			history := get().shop.Orders()
			if opts.asJSON {
				return printJSON(cmd.OutOrStdout(), history)
			}
			if len(history) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No orders yet.")
				return nil
			}
			for _, o := range history {
				printOrder(cmd.OutOrStdout(), o)
			}
			return nil
		},
	}

	show := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := get().shop.Order(args[0])
			if err != nil {
				return err
			}
			if opts.asJSON {
				return printJSON(cmd.OutOrStdout(), o)
			}
			printOrder(cmd.OutOrStdout(), o)
			return nil
		},
	}

	cancel := &cobra.Command{
		Use:   "cancel <id>",
		Short: "Cancel a pending or processing order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := get().shop.CancelOrder(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if opts.asJSON {
				return printJSON(cmd.OutOrStdout(), o)
			}
			printOrder(cmd.OutOrStdout(), o)
			return nil
		},
	}

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Remove an order from the history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := get().orders.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s.\n", args[0])
			return nil
		},
	}

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Forget the whole order history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := get().orders.ClearHistory(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Order history cleared.")
			return nil
		},
	}

	status := &cobra.Command{
		Use:   "set-status <id> <status>",
		Short: "Set an order status; with KAFKA_BROKERS it is published to the status feed instead",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := get()
			st := domain.OrderStatus(args[1])
			if !st.Valid() {
				return fmt.Errorf("%q: %w", args[1], domain.ErrInvalidStatus)
			}
			if len(a.cfg.Kafka.Brokers) == 0 {
				if err := a.orders.UpdateStatus(cmd.Context(), args[0], st); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s is now %s.\n", args[0], st)
				return nil
			}
			pub := statusfeed.NewPublisher(a.cfg.Kafka)
			defer pub.Close()
			if err := pub.Publish(cmd.Context(), statusfeed.Update{OrderID: args[0], Status: st}); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Published %s -> %s to %s.\n", args[0], st, a.cfg.Kafka.Topic)
			return nil
		},
	}

	cmd.AddCommand(show, cancel, del, clearCmd, status)
	return cmd
}
