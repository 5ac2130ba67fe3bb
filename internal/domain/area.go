package domain

// AreaKind names a zone overlay purpose.
type AreaKind string

const (
	AreaPlanting AreaKind = "planting"
	AreaBreeding AreaKind = "breeding"
	AreaHousing  AreaKind = "housing"
	AreaGeneral  AreaKind = "general"
)

// Area is a rectangular zone overlay on the farm grid. Areas are advisory:
// overlaps are allowed, and action legality is "point inside at least one
// area of the required kind".
type Area struct {
	ID       int64    `json:"id"`
	PlayerID string   `json:"player_id"`
	Kind     AreaKind `json:"kind"`
	X        int      `json:"x"`
	Y        int      `json:"y"`
	Width    int      `json:"width"`
	Height   int      `json:"height"`
}

// Contains reports whether the tile coordinate lies inside the area.
func (a Area) Contains(x, y int) bool {
	return x >= a.X && x < a.X+a.Width && y >= a.Y && y < a.Y+a.Height
}
