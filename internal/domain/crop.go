package domain

import "time"

// Crop is a planted crop occupying one farm tile.
type Crop struct {
	ID          int64     `json:"id"`
	PlayerID    string    `json:"player_id"`
	Kind        string    `json:"kind"`
	X           int       `json:"x"`
	Y           int       `json:"y"`
	GrowthStage int       `json:"growth_stage"`
	IsWatered   bool      `json:"is_watered"`
	PlantedAt   time.Time `json:"planted_at"`
}

// Position returns the crop's tile position.
func (c *Crop) Position() TilePosition {
	return TilePosition{X: c.X, Y: c.Y}
}

// CropPatch lists the crop fields the lifecycle may update.
type CropPatch struct {
	GrowthStage *int
	IsWatered   *bool
}
