package events

import (
	"time"
)

// ProductCreatedEvent is published after a catalog insert.
type ProductCreatedEvent struct {
	EventID   string    `json:"event_id"`
	Tenant    string    `json:"tenant,omitempty"`
	ProductID string    `json:"product_id"`
	SellerID  string    `json:"seller_id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Timestamp time.Time `json:"timestamp"`
}

// StockUpdatedEvent is published after a stock amount is set.
type StockUpdatedEvent struct {
	EventID     string    `json:"event_id"`
	Tenant      string    `json:"tenant,omitempty"`
	ProductID   string    `json:"product_id"`
	StockAmount int       `json:"stock_amount"`
	Timestamp   time.Time `json:"timestamp"`
}
