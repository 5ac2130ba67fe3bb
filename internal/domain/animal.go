package domain

import "time"

// Animal is a farm animal owned by a player. Animals are never deleted in
// normal play.
type Animal struct {
	ID          int64     `json:"id"`
	PlayerID    string    `json:"player_id"`
	Kind        string    `json:"kind"`
	Name        string    `json:"name"`
	Age         int       `json:"age"`
	IsFed       bool      `json:"is_fed"`
	ProduceTime time.Time `json:"produce_time"`
	X           int       `json:"x"`
	Y           int       `json:"y"`
}

// Position returns the animal's tile position.
func (a *Animal) Position() TilePosition {
	return TilePosition{X: a.X, Y: a.Y}
}

// AnimalPatch lists the animal fields the lifecycle may update.
type AnimalPatch struct {
	Age         *int
	IsFed       *bool
	ProduceTime *time.Time
	X           *int
	Y           *int
}
