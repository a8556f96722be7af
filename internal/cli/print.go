package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/TemirB/cocktail-shop/internal/application/service"
	"github.com/TemirB/cocktail-shop/internal/domain"
)

func printCocktail(w io.Writer, c domain.Cocktail) {
	fmt.Fprintf(w, "%s (#%s)\n", c.Name, c.ID)
	var kind []string
	for _, s := range []string{c.Category, c.Glass, c.Alcoholic} {
		if s != "" {
			kind = append(kind, s)
		}
	}
	if len(kind) > 0 {
		fmt.Fprintf(w, "  %s\n", strings.Join(kind, " | "))
	}
	fmt.Fprintf(w, "  $%.2f  stock %d  rating %.1f\n", c.Price, c.Stock, c.Rating)
	if len(c.Ingredients) > 0 {
		parts := make([]string, 0, len(c.Ingredients))
		for _, in := range c.Ingredients {
			parts = append(parts, strings.TrimSpace(in.Measure+" "+in.Name))
		}
		fmt.Fprintf(w, "  %s\n", strings.Join(parts, ", "))
	}
	if c.Instructions != "" {
		fmt.Fprintf(w, "  %s\n", c.Instructions)
	}
}

func printCocktails(w io.Writer, list []domain.Cocktail) {
	if len(list) == 0 {
		fmt.Fprintln(w, "Nothing found.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, c := range list {
		fmt.Fprintf(tw, "%s\t%s\t%s\t$%.2f\n", c.ID, c.Name, c.Category, c.Price)
	}
	_ = tw.Flush()
}

func printCart(w io.Writer, v service.CartView) {
	if len(v.Items) == 0 {
		fmt.Fprintln(w, "Cart is empty.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, it := range v.Items {
		fmt.Fprintf(tw, "%s\t%s\tx%d\t$%s\n", it.Cocktail.ID, it.Cocktail.Name, it.Quantity, it.Subtotal().StringFixed(2))
	}
	_ = tw.Flush()
	fmt.Fprintf(w, "%d item(s), total $%s\n", v.Count, v.Total.StringFixed(2))
}

func printOrder(w io.Writer, o domain.Order) {
	fmt.Fprintf(w, "%s  %s  %s  $%s\n", o.ID, o.Date.Local().Format("2006-01-02 15:04"), o.Status, o.Total.StringFixed(2))
	for _, it := range o.Items {
		fmt.Fprintf(w, "  %s x%d  $%.2f\n", it.Name, it.Quantity, it.Price)
	}
}
