// internal/system/enemy.go
package system

import (
	"log"

	"go-hex-defense/internal/component"
	"go-hex-defense/internal/config"
	"go-hex-defense/internal/entity"
	"go-hex-defense/internal/event"
	"go-hex-defense/internal/types"
	"go-hex-defense/pkg/hexmap"
	"go-hex-defense/pkg/utils"
)

// Random is what the spawner needs from the PRNG.
type Random interface {
	IntRange(min, max int) int
	Choose(options []int) (int, bool)
}

// EnemySystem спавнит врагов, двигает их по путям и наносит урон оверлея.
type EnemySystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
	rng             Random
	cfg             config.EnemyConfig
}

func NewEnemySystem(world *entity.World, eventDispatcher *event.Dispatcher, rng Random, cfg config.EnemyConfig) *EnemySystem {
	s := &EnemySystem{
		world:           world,
		eventDispatcher: eventDispatcher,
		rng:             rng,
		cfg:             cfg,
	}
	eventDispatcher.Subscribe(event.PathsRecalculated, s)
	return s
}

func (s *EnemySystem) OnEvent(e event.Event) {
	if e.Type != event.PathsRecalculated {
		return
	}
	change, _ := e.Data.(PathsChange)
	s.Reanchor(change.Old)
}

// SpeedFor maps health to a speed fraction: the toughest enemy is the
// slowest, never below MinSpeedFraction.
func SpeedFor(health int, cfg config.EnemyConfig) float64 {
	if cfg.MaxHealth <= cfg.MinHealth {
		return 1
	}
	t := float64(health-cfg.MinHealth) / float64(cfg.MaxHealth-cfg.MinHealth)
	return utils.Clamp(1-t, cfg.MinSpeedFraction, 1)
}

// Spawn creates one enemy at the start of a random usable route.
func (s *EnemySystem) Spawn() (types.EntityID, bool) {
	var usable []int
	for i := range s.world.HexMap.Spawns {
		if len(s.world.Paths[i]) > 1 {
			usable = append(usable, i)
		}
	}
	spawn, ok := s.rng.Choose(usable)
	if !ok {
		return 0, false
	}

	path := s.world.Paths[spawn]
	health := s.rng.IntRange(s.cfg.MinHealth, s.cfg.MaxHealth)
	x, y := s.world.HexMap.WorldPos(path[0])
	id := s.world.AddEnemy(component.Enemy{
		Health:    health,
		MaxHealth: health,
		Value:     health,
		Spawn:     spawn,
		Speed:     SpeedFor(health, s.cfg),
		X:         x,
		Y:         y,
	})
	return id, true
}

// Move advances every enemy along its route. Stranded enemies are destroyed
// without credit; enemies reaching the goal count as a breach.
func (s *EnemySystem) Move(deltaTime float64) {
	hm := s.world.HexMap
	for _, id := range s.world.SortedEnemyIDs() {
		enemy := s.world.Enemies[id]
		path := s.world.Paths[enemy.Spawn]

		hex := hm.HexAt(enemy.X, enemy.Y)
		tile, ok := hm.Resolve(hex)
		if enemy.Stranded || !ok || len(path) < 2 || (!tile.OnPath && !tile.IsGoal) {
			log.Printf("Enemy %d stranded at %v, removing", id, hex)
			s.world.MarkForDeath(id)
			continue
		}

		last := len(path) - 1
		if enemy.Index < last {
			enemy.Lerp += enemy.Speed * s.cfg.BaseSpeed * deltaTime
			for enemy.Lerp >= 1 && enemy.Index < last {
				enemy.Lerp -= 1
				enemy.Index++
			}
		}

		if enemy.Index >= last {
			enemy.Index = last
			enemy.Lerp = 0
			enemy.X, enemy.Y = hm.WorldPos(path[last])
			s.world.MarkForDeath(id)
			s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyBreached, Data: *enemy})
			continue
		}

		fx, fy := hm.WorldPos(path[enemy.Index])
		tx, ty := hm.WorldPos(path[enemy.Index+1])
		enemy.X = utils.Lerp(fx, tx, enemy.Lerp)
		enemy.Y = utils.Lerp(fy, ty, enemy.Lerp)
	}
	s.world.Cull()
}

// ApplyDamage subtracts the overlay under every enemy from its health.
func (s *EnemySystem) ApplyDamage() {
	hm := s.world.HexMap
	for _, id := range s.world.SortedEnemyIDs() {
		if s.world.IsDying(id) {
			continue
		}
		enemy := s.world.Enemies[id]
		tile, ok := hm.Resolve(hm.HexAt(enemy.X, enemy.Y))
		if !ok || tile.Damage == 0 {
			continue
		}
		enemy.Health = utils.SaturatingSub(enemy.Health, tile.Damage)
		if enemy.Health == 0 {
			s.world.MarkForDeath(id)
			s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyKilled, Data: *enemy})
		}
	}
	s.world.Cull()
}

// Reanchor moves enemies onto the recalculated routes. An enemy keeps its
// progress when its current segment survived; otherwise it snaps to its
// current hex if that hex is on its route, and is stranded if not.
func (s *EnemySystem) Reanchor(old map[int][]hexmap.Hex) {
	hm := s.world.HexMap
	for _, id := range s.world.SortedEnemyIDs() {
		enemy := s.world.Enemies[id]
		path := s.world.Paths[enemy.Spawn]
		if len(path) == 0 {
			enemy.Stranded = true
			continue
		}

		if prev := old[enemy.Spawn]; enemy.Index+1 < len(prev) {
			from, to := prev[enemy.Index], prev[enemy.Index+1]
			if j := segmentIndex(path, from, to); j >= 0 {
				enemy.Index = j
				continue
			}
		}

		hex := hm.HexAt(enemy.X, enemy.Y)
		j := indexOf(path, hex)
		if j < 0 {
			enemy.Stranded = true
			continue
		}
		enemy.Index = j
		enemy.Lerp = 0
		enemy.X, enemy.Y = hm.WorldPos(hex)
	}
}

func indexOf(path []hexmap.Hex, hex hexmap.Hex) int {
	for i, h := range path {
		if h == hex {
			return i
		}
	}
	return -1
}

func segmentIndex(path []hexmap.Hex, from, to hexmap.Hex) int {
	for i := 0; i+1 < len(path); i++ {
		if path[i] == from && path[i+1] == to {
			return i
		}
	}
	return -1
}
