// internal/system/path.go
package system

import (
	"log"

	"go-hex-defense/internal/config"
	"go-hex-defense/internal/entity"
	"go-hex-defense/internal/event"
	"go-hex-defense/pkg/hexmap"
)

// PathsChange is the payload of PathsRecalculated: the path set before the
// recalculation.
type PathsChange struct {
	Old map[int][]hexmap.Hex
}

// PathSystem пересчитывает маршруты от всех точек спавна к цели.
type PathSystem struct {
	world           *entity.World
	damage          *DamageSystem
	intents         *event.Queue
	eventDispatcher *event.Dispatcher
	cfg             config.Config
}

func NewPathSystem(world *entity.World, damage *DamageSystem, intents *event.Queue, eventDispatcher *event.Dispatcher, cfg config.Config) *PathSystem {
	return &PathSystem{
		world:           world,
		damage:          damage,
		intents:         intents,
		eventDispatcher: eventDispatcher,
		cfg:             cfg,
	}
}

// cost: Plain is free, Mountain and towers cost the penalty.
func (s *PathSystem) cost(penalty int) hexmap.CostFunc {
	hm := s.world.HexMap
	return func(hex hexmap.Hex) (int, bool) {
		tile, ok := hm.Resolve(hex)
		if !ok {
			return 0, false
		}
		if tile.Type == hexmap.Mountain || tile.HasTower {
			return penalty, true
		}
		return 0, true
	}
}

// Recalculate replaces the whole path set, reassigns OnPath, evicts towers
// standing on the new routes and asks for an overlay refresh.
func (s *PathSystem) Recalculate() {
	hm := s.world.HexMap
	cost := s.cost(s.cfg.Penalty(hm.Len()))

	paths := make(map[int][]hexmap.Hex, len(hm.Spawns))
	onPath := make(map[hexmap.Hex]bool)
	for i, spawn := range hm.Spawns {
		path, complete := hexmap.AStar(spawn, hm.Goal, hm, cost)
		if !complete {
			log.Printf("WARN: no route from spawn %d at %v to the goal", i, spawn)
			continue
		}
		paths[i] = path
		for _, hex := range path {
			onPath[hex] = true
		}
	}

	for _, hex := range hm.Hexes() {
		tile, _ := hm.Resolve(hex)
		if tile.OnPath && !onPath[hex] {
			tile.OnPath = false
			s.damage.ClearTile(tile)
		}
	}
	for hex := range onPath {
		tile, ok := hm.Resolve(hex)
		if !ok {
			log.Printf("ERROR: path hex %v is not on the grid", hex)
			continue
		}
		tile.OnPath = true
		if id, ok := s.world.TowerAt(hex); ok {
			s.world.MarkForDeath(id)
		}
	}

	culled := s.world.Cull()
	for _, tower := range culled.Towers {
		log.Printf("Tower at %v destroyed: the path now crosses it", tower.Hex)
		s.eventDispatcher.Dispatch(event.Event{Type: event.TowerRemoved, Data: tower})
	}

	old := s.world.Paths
	s.world.Paths = paths
	log.Printf("Recalculated paths: %d routes, %d path tiles", len(paths), len(onPath))

	s.intents.Push(event.RefreshTowerDamage)
	s.eventDispatcher.Dispatch(event.Event{Type: event.PathsRecalculated, Data: PathsChange{Old: old}})
}
