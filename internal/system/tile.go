// internal/system/tile.go
package system

import (
	"log"

	"go-hex-defense/internal/entity"
	"go-hex-defense/internal/event"
	"go-hex-defense/pkg/hexmap"
)

// TileSystem меняет рельеф и курсор.
type TileSystem struct {
	world     *entity.World
	intents   *event.Queue
	cursor    hexmap.Hex
	hasCursor bool
}

func NewTileSystem(world *entity.World, intents *event.Queue) *TileSystem {
	return &TileSystem{world: world, intents: intents}
}

// Toggle flips Plain and Mountain on hex. A recalculation is requested when
// the tile was on a path or became Plain, since a shorter route may open.
func (s *TileSystem) Toggle(hex hexmap.Hex) bool {
	tile, ok := s.world.HexMap.Resolve(hex)
	if !ok {
		log.Printf("Toggle outside the grid at %v, ignoring", hex)
		return false
	}
	tile.Type = tile.Type.Toggled()
	log.Printf("Toggling tile at %v to %s", hex, tile.Type)
	if tile.OnPath || tile.Type == hexmap.Plain {
		s.intents.Push(event.RecalculateEnemyPaths)
	}
	return true
}

// SetCursor moves the cursor flag to hex. An off-board hex clears it.
func (s *TileSystem) SetCursor(hex hexmap.Hex) {
	if s.hasCursor && s.cursor == hex {
		return
	}
	if s.hasCursor {
		if tile, ok := s.world.HexMap.Resolve(s.cursor); ok {
			tile.IsCursor = false
		}
	}
	tile, ok := s.world.HexMap.Resolve(hex)
	s.hasCursor = ok
	if !ok {
		return
	}
	tile.IsCursor = true
	s.cursor = hex
}

// Cursor returns the hovered hex.
func (s *TileSystem) Cursor() (hexmap.Hex, bool) {
	return s.cursor, s.hasCursor
}

// ResetCursor forgets the cursor after the board was replaced.
func (s *TileSystem) ResetCursor() {
	s.hasCursor = false
}
