package domain

// TilePosition is an integer coordinate on the farm grid.
type TilePosition struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// InBounds reports whether the position lies on the farm grid.
func (p TilePosition) InBounds() bool {
	return p.X >= 0 && p.X < FarmWidth && p.Y >= 0 && p.Y < FarmHeight
}

// TileState is the occupancy state of a ground tile.
type TileState int

const (
	TileEmpty TileState = iota
	TileTilled
	TileOccupied
)

// String returns the wire name of the tile state.
func (s TileState) String() string {
	switch s {
	case TileTilled:
		return "tilled"
	case TileOccupied:
		return "occupied"
	default:
		return "empty"
	}
}

// GroundTile is one cell of the farm grid. CropID is only meaningful when
// State is TileOccupied; it is a cached index, the crop record is the
// source of truth.
type GroundTile struct {
	State   TileState `json:"state"`
	Watered bool      `json:"watered"`
	CropID  int64     `json:"crop_id,omitempty"`
}

// TilledTile is the persisted shape of one tilled, unplanted tile.
type TilledTile struct {
	X       int  `json:"x"`
	Y       int  `json:"y"`
	Watered bool `json:"watered"`
}
