package domain

// InventoryItem is one stack of items in a player's inventory. Quantity is
// always positive; a stack that reaches zero is deleted. At most one record
// exists per (player, name, category) and additions merge quantities.
type InventoryItem struct {
	ID       int64        `json:"id"`
	PlayerID string       `json:"player_id"`
	Name     string       `json:"name"`
	Quantity int          `json:"quantity"`
	Category ItemCategory `json:"category"`
}
