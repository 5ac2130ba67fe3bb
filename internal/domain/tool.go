package domain

// Tool is one of the player's tools. Exactly one record exists per kind
// per player, created at player creation.
type Tool struct {
	ID         int64  `json:"id"`
	PlayerID   string `json:"player_id"`
	Kind       string `json:"kind"`
	Durability int    `json:"durability"`
	Level      int    `json:"level"`
}

// WearCost is the durability consumed by one use. Higher levels wear
// slower, never below one point per use.
func (t Tool) WearCost() int {
	cost := 3 - (t.Level - 1)
	if cost < 1 {
		cost = 1
	}
	return cost
}

// ToolPatch lists the tool fields use/upgrade may update.
type ToolPatch struct {
	Durability *int
	Level      *int
}
