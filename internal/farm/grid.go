// Package farm models the field grid and zoned areas, and implements the
// tilling operation.
package farm

import (
	"encoding/json"
	"fmt"

	"github.com/mossvale/farmstead/internal/domain"
)

// Grid is the in-memory view of one player's field, rebuilt on demand
// from the persisted tilled set and crop rows.
type Grid struct {
	tiles [domain.FarmHeight][domain.FarmWidth]domain.GroundTile
}

// BuildGrid assembles a grid from persisted state. Crops win over bare
// tilled tiles when both claim a position.
func BuildGrid(tilled []domain.TilledTile, crops []domain.Crop) *Grid {
	g := &Grid{}
	for _, t := range tilled {
		if !(domain.TilePosition{X: t.X, Y: t.Y}).InBounds() {
			continue
		}
		g.tiles[t.Y][t.X] = domain.GroundTile{State: domain.TileTilled, Watered: t.Watered}
	}
	for _, c := range crops {
		if !(domain.TilePosition{X: c.X, Y: c.Y}).InBounds() {
			continue
		}
		g.tiles[c.Y][c.X] = domain.GroundTile{State: domain.TileOccupied, Watered: c.IsWatered, CropID: c.ID}
	}
	return g
}

// At returns the tile at the given position.
func (g *Grid) At(x, y int) (domain.GroundTile, error) {
	if !(domain.TilePosition{X: x, Y: y}).InBounds() {
		return domain.GroundTile{}, fmt.Errorf("%w: (%d,%d)", domain.ErrOutOfBounds, x, y)
	}
	return g.tiles[y][x], nil
}

// SetTilled marks a tile as tilled and dry.
func (g *Grid) SetTilled(x, y int) {
	g.tiles[y][x] = domain.GroundTile{State: domain.TileTilled}
}

// SetOccupied marks a tile as holding the given crop.
func (g *Grid) SetOccupied(x, y int, cropID int64, watered bool) {
	g.tiles[y][x] = domain.GroundTile{State: domain.TileOccupied, Watered: watered, CropID: cropID}
}

// SetEmpty clears a tile back to untouched ground.
func (g *Grid) SetEmpty(x, y int) {
	g.tiles[y][x] = domain.GroundTile{}
}

// MarshalJSON encodes the grid as rows of tiles, row-major.
func (g *Grid) MarshalJSON() ([]byte, error) {
	rows := make([][]domain.GroundTile, domain.FarmHeight)
	for y := 0; y < domain.FarmHeight; y++ {
		rows[y] = g.tiles[y][:]
	}
	return json.Marshal(rows)
}

// TilledTiles returns the bare tilled tiles, row-major. Occupied tiles
// are excluded: their state lives on the crop.
func (g *Grid) TilledTiles() []domain.TilledTile {
	tiles := []domain.TilledTile{}
	for y := 0; y < domain.FarmHeight; y++ {
		for x := 0; x < domain.FarmWidth; x++ {
			if g.tiles[y][x].State == domain.TileTilled {
				tiles = append(tiles, domain.TilledTile{X: x, Y: y, Watered: g.tiles[y][x].Watered})
			}
		}
	}
	return tiles
}
