package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	StatusPending    OrderStatus = "Pending"
	StatusProcessing OrderStatus = "Processing"
	StatusShipped    OrderStatus = "Shipped"
	StatusDelivered  OrderStatus = "Delivered"
	StatusCancelled  OrderStatus = "Cancelled"
)

// Valid reports whether s is one of the known statuses.
func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// Cancellable reports whether an order in this status may still be cancelled.
func (s OrderStatus) Cancellable() bool {
	return s == StatusPending || s == StatusProcessing
}

// OrderItem is a snapshot taken at placement time. It never follows later
// changes of the cocktail it was created from.
type OrderItem struct {
	CocktailID string  `json:"cocktail_id"`
	Name       string  `json:"name"`
	Quantity   int     `json:"quantity"`
	Price      float64 `json:"price"`
}

type Order struct {
	ID     string          `json:"id"`
	Date   time.Time       `json:"date"`
	Items  []OrderItem     `json:"items"`
	Total  decimal.Decimal `json:"total"`
	Status OrderStatus     `json:"status"`
}

// SnapshotItems copies name, quantity and price out of cart items.
func SnapshotItems(items []CartItem) []OrderItem {
	out := make([]OrderItem, 0, len(items))
	for _, it := range items {
		out = append(out, OrderItem{
			CocktailID: it.Cocktail.ID,
			Name:       it.Cocktail.Name,
			Quantity:   it.Quantity,
			Price:      it.Cocktail.Price,
		})
	}
	return out
}
