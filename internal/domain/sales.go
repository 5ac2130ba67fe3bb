package domain

import "time"

// SalesRecord is one append-only sales log entry. Audit trail only.
type SalesRecord struct {
	ID         int64     `json:"id"`
	PlayerID   string    `json:"player_id"`
	ItemName   string    `json:"item_name"`
	Quantity   int       `json:"quantity"`
	PriceTotal int       `json:"price_total"`
	SoldAt     time.Time `json:"sold_at"`
}

// Yield is what a harvest or product collection returns.
type Yield struct {
	Item     string `json:"item"`
	Quantity int    `json:"quantity"`
	Exp      int    `json:"exp"`
}
