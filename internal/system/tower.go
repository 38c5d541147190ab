// internal/system/tower.go
package system

import (
	"errors"
	"fmt"
	"log"

	"go-hex-defense/internal/component"
	"go-hex-defense/internal/config"
	"go-hex-defense/internal/entity"
	"go-hex-defense/internal/event"
	"go-hex-defense/internal/types"
	"go-hex-defense/pkg/hexmap"
)

var (
	ErrOutsideGrid        = errors.New("tile outside the grid")
	ErrTileOccupied       = errors.New("tile already has a tower")
	ErrTileOnPath         = errors.New("tile is on an enemy path")
	ErrTileIsGoal         = errors.New("tile is the goal")
	ErrTileIsSpawn        = errors.New("tile is a spawn")
	ErrInsufficientBudget = errors.New("insufficient budget")
)

// TowerSystem — проверка и постройка башен
type TowerSystem struct {
	world           *entity.World
	economy         *EconomySystem
	eventDispatcher *event.Dispatcher
	towerTypes      config.TowerTypes
}

func NewTowerSystem(world *entity.World, economy *EconomySystem, eventDispatcher *event.Dispatcher, towerTypes config.TowerTypes) *TowerSystem {
	return &TowerSystem{
		world:           world,
		economy:         economy,
		eventDispatcher: eventDispatcher,
		towerTypes:      towerTypes,
	}
}

// Place builds a tower of towerType on hex. Rejections never touch the
// budget.
func (s *TowerSystem) Place(towerType component.TowerType, hex hexmap.Hex) (types.EntityID, error) {
	tile, ok := s.world.HexMap.Resolve(hex)
	if !ok {
		return 0, fmt.Errorf("%v: %w", hex, ErrOutsideGrid)
	}
	switch {
	case tile.IsGoal:
		return 0, fmt.Errorf("%v: %w", hex, ErrTileIsGoal)
	case tile.IsSpawn:
		return 0, fmt.Errorf("%v: %w", hex, ErrTileIsSpawn)
	case tile.HasTower:
		return 0, fmt.Errorf("%v: %w", hex, ErrTileOccupied)
	case tile.OnPath:
		return 0, fmt.Errorf("%v: %w", hex, ErrTileOnPath)
	}

	stats := component.StatsFor(s.towerTypes, towerType)
	if !s.economy.Spend(stats.Cost) {
		return 0, fmt.Errorf("%w: %s costs %d, budget %d", ErrInsufficientBudget, towerType, stats.Cost, s.world.Economy.Budget)
	}

	id := s.world.AddTower(component.Tower{
		Type:   towerType,
		Cost:   stats.Cost,
		Hex:    hex,
		Range:  stats.Range,
		Damage: stats.Damage,
	})
	log.Printf("Placed %s tower at %v for %d (budget %d)", towerType, hex, stats.Cost, s.world.Economy.Budget)
	s.eventDispatcher.Dispatch(event.Event{Type: event.TowerPlaced, Data: id})
	return id, nil
}
