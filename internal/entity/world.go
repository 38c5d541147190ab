// internal/entity/world.go
package entity

import (
	"sort"

	"go-hex-defense/internal/component"
	"go-hex-defense/internal/types"
	"go-hex-defense/pkg/hexmap"
)

// World — всё изменяемое состояние одной партии.
// Entities are never removed while a system iterates over them: systems call
// MarkForDeath and the owner of the tick calls Cull afterwards.
type World struct {
	HexMap  *hexmap.HexMap
	Paths   map[int][]hexmap.Hex // spawn index -> spawn..goal
	Towers  map[types.EntityID]*component.Tower
	Enemies map[types.EntityID]*component.Enemy
	Economy component.Economy
	Timers  component.Timers
	NextID  types.EntityID

	towerAt map[hexmap.Hex]types.EntityID
	dying   map[types.EntityID]struct{}
}

// Culled lists what a Cull call removed.
type Culled struct {
	Towers  []component.Tower
	Enemies int
}

func NewWorld(hm *hexmap.HexMap, budget int, timers component.Timers) *World {
	w := &World{}
	w.Reset(hm, budget, timers)
	return w
}

// Reset discards everything and starts over on a fresh board.
func (w *World) Reset(hm *hexmap.HexMap, budget int, timers component.Timers) {
	w.HexMap = hm
	w.Paths = make(map[int][]hexmap.Hex)
	w.Towers = make(map[types.EntityID]*component.Tower)
	w.Enemies = make(map[types.EntityID]*component.Enemy)
	w.Economy = component.Economy{Budget: budget}
	w.Timers = timers
	w.NextID = 1
	w.towerAt = make(map[hexmap.Hex]types.EntityID)
	w.dying = make(map[types.EntityID]struct{})
}

func (w *World) NewEntity() types.EntityID {
	id := w.NextID
	w.NextID++
	return id
}

// AddTower registers a tower and flags its tile. The caller has already
// checked that the tile is free.
func (w *World) AddTower(t component.Tower) types.EntityID {
	id := w.NewEntity()
	w.Towers[id] = &t
	w.towerAt[t.Hex] = id
	if tile, ok := w.HexMap.Resolve(t.Hex); ok {
		tile.HasTower = true
	}
	return id
}

// TowerAt returns the tower standing on hex.
func (w *World) TowerAt(hex hexmap.Hex) (types.EntityID, bool) {
	id, ok := w.towerAt[hex]
	return id, ok
}

func (w *World) AddEnemy(e component.Enemy) types.EntityID {
	id := w.NewEntity()
	w.Enemies[id] = &e
	return id
}

// MarkForDeath schedules an entity for removal on the next Cull.
func (w *World) MarkForDeath(id types.EntityID) {
	w.dying[id] = struct{}{}
}

// IsDying reports whether id is already scheduled for removal.
func (w *World) IsDying(id types.EntityID) bool {
	_, ok := w.dying[id]
	return ok
}

// Cull removes every entity marked for death. Tower tiles lose HasTower.
func (w *World) Cull() Culled {
	var res Culled
	if len(w.dying) == 0 {
		return res
	}
	ids := make([]types.EntityID, 0, len(w.dying))
	for id := range w.dying {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		if tower, ok := w.Towers[id]; ok {
			if tile, ok := w.HexMap.Resolve(tower.Hex); ok {
				tile.HasTower = false
			}
			delete(w.towerAt, tower.Hex)
			delete(w.Towers, id)
			res.Towers = append(res.Towers, *tower)
			continue
		}
		if _, ok := w.Enemies[id]; ok {
			delete(w.Enemies, id)
			res.Enemies++
		}
	}
	w.dying = make(map[types.EntityID]struct{})
	return res
}

// SortedTowerIDs returns tower ids in creation order.
func (w *World) SortedTowerIDs() []types.EntityID {
	ids := make([]types.EntityID, 0, len(w.Towers))
	for id := range w.Towers {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// SortedEnemyIDs returns enemy ids in creation order.
func (w *World) SortedEnemyIDs() []types.EntityID {
	ids := make([]types.EntityID, 0, len(w.Enemies))
	for id := range w.Enemies {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Overlay returns the current damage overlay as plain data.
func (w *World) Overlay() map[hexmap.Hex]int {
	overlay := make(map[hexmap.Hex]int)
	for _, hex := range w.HexMap.Hexes() {
		tile, _ := w.HexMap.Resolve(hex)
		if tile.Damage > 0 {
			overlay[hex] = tile.Damage
		}
	}
	return overlay
}

// PathHexes returns every hex flagged OnPath.
func (w *World) PathHexes() []hexmap.Hex {
	var hexes []hexmap.Hex
	for _, hex := range w.HexMap.Hexes() {
		tile, _ := w.HexMap.Resolve(hex)
		if tile.OnPath {
			hexes = append(hexes, hex)
		}
	}
	return hexes
}
