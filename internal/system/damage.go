// internal/system/damage.go
package system

import (
	"log"

	"go-hex-defense/internal/component"
	"go-hex-defense/internal/entity"
	"go-hex-defense/internal/event"
	"go-hex-defense/internal/types"
	"go-hex-defense/pkg/hexmap"
)

// DamageSystem поддерживает оверлей урона башен на тайлах пути.
// Tile.Damage is non-zero only on on-path tiles covered by at least one tower.
type DamageSystem struct {
	world *entity.World
}

func NewDamageSystem(world *entity.World, eventDispatcher *event.Dispatcher) *DamageSystem {
	s := &DamageSystem{world: world}
	eventDispatcher.Subscribe(event.TowerPlaced, s)
	return s
}

func (s *DamageSystem) OnEvent(e event.Event) {
	if e.Type != event.TowerPlaced {
		return
	}
	id, ok := e.Data.(types.EntityID)
	if !ok {
		log.Printf("ERROR: %s without tower id", e.Type)
		return
	}
	tower, ok := s.world.Towers[id]
	if !ok {
		log.Printf("ERROR: placed tower %d not found", id)
		return
	}
	s.AddTower(tower)
}

// AddTower adds the contribution of one tower to the on-path tiles in range.
func (s *DamageSystem) AddTower(tower *component.Tower) {
	for _, hex := range s.world.HexMap.GetHexesInRange(tower.Hex, tower.Range) {
		tile, _ := s.world.HexMap.Resolve(hex)
		if tile.OnPath {
			tile.Damage += tower.Damage
		}
	}
}

// Refresh rebuilds the overlay from every live tower.
func (s *DamageSystem) Refresh() {
	for _, hex := range s.world.HexMap.Hexes() {
		tile, _ := s.world.HexMap.Resolve(hex)
		s.ClearTile(tile)
	}
	for _, id := range s.world.SortedTowerIDs() {
		s.AddTower(s.world.Towers[id])
	}
}

// ClearTile drops the overlay of a tile that left the path.
func (s *DamageSystem) ClearTile(tile *hexmap.Tile) {
	tile.Damage = 0
}
