package farm

import (
	"fmt"

	"github.com/mossvale/farmstead/internal/domain"
)

// DefaultAreas returns the starting zone layout for a new farm.
func DefaultAreas(playerID string) []domain.Area {
	return []domain.Area{
		{PlayerID: playerID, Kind: domain.AreaPlanting, X: 9, Y: 1, Width: 6, Height: 5},
		{PlayerID: playerID, Kind: domain.AreaBreeding, X: 9, Y: 7, Width: 6, Height: 4},
		{PlayerID: playerID, Kind: domain.AreaHousing, X: 0, Y: 7, Width: 4, Height: 4},
	}
}

// Zone returns the area of the given kind, or nil when the farm has none.
func Zone(areas []domain.Area, kind domain.AreaKind) *domain.Area {
	for i := range areas {
		if areas[i].Kind == kind {
			return &areas[i]
		}
	}
	return nil
}

// CheckZone verifies the position lies inside at least one area of the
// given kind.
func CheckZone(areas []domain.Area, kind domain.AreaKind, x, y int) error {
	for _, a := range areas {
		if a.Kind == kind && a.Contains(x, y) {
			return nil
		}
	}
	return fmt.Errorf("%w: (%d,%d) not in %s area", domain.ErrInvalidZone, x, y, kind)
}
