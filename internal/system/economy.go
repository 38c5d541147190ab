// internal/system/economy.go
package system

import (
	"log"

	"go-hex-defense/internal/component"
	"go-hex-defense/internal/config"
	"go-hex-defense/internal/entity"
	"go-hex-defense/internal/event"
	"go-hex-defense/pkg/utils"
)

// TickResult — какие таймеры сработали за тик
type TickResult struct {
	Spawn     bool
	Damage    bool
	MatchOver bool
}

// EconomySystem владеет бюджетом, счётом и таймерами матча.
type EconomySystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
}

func NewEconomySystem(world *entity.World, eventDispatcher *event.Dispatcher) *EconomySystem {
	s := &EconomySystem{
		world:           world,
		eventDispatcher: eventDispatcher,
	}
	eventDispatcher.Subscribe(event.EnemyKilled, s)
	eventDispatcher.Subscribe(event.EnemyBreached, s)
	return s
}

// NewTimers builds a fresh set of match timers from cfg.
func NewTimers(cfg config.Config) component.Timers {
	return component.Timers{
		EnemySpawn:  component.NewTimer(cfg.Enemy.SpawnRate, true),
		TowerDamage: component.NewTimer(cfg.Tower.DamageRate, true),
		Match:       component.NewTimer(cfg.GameLength, false),
		GameOver:    component.NewTimer(cfg.GameOverLinger, false),
	}
}

func (s *EconomySystem) OnEvent(e event.Event) {
	enemy, ok := e.Data.(component.Enemy)
	if !ok {
		log.Printf("ERROR: %s without enemy data", e.Type)
		return
	}
	switch e.Type {
	case event.EnemyKilled:
		s.Credit(enemy.Value)
		s.world.Economy.Score.Player++
		log.Printf("Enemy died, earned %d (budget %d)", enemy.Value, s.world.Economy.Budget)
	case event.EnemyBreached:
		s.world.Economy.Score.Enemy++
		log.Printf("Enemy reached the goal (enemy score %d)", s.world.Economy.Score.Enemy)
	}
}

// Spend debits cost if the budget covers it.
func (s *EconomySystem) Spend(cost int) bool {
	if cost > s.world.Economy.Budget {
		return false
	}
	s.world.Economy.Budget = utils.SaturatingSub(s.world.Economy.Budget, cost)
	return true
}

func (s *EconomySystem) Credit(value int) {
	s.world.Economy.Budget = utils.SaturatingAdd(s.world.Economy.Budget, value)
}

// Tick advances the in-game timers.
func (s *EconomySystem) Tick(deltaTime float64) TickResult {
	timers := &s.world.Timers
	return TickResult{
		Spawn:     timers.EnemySpawn.Tick(deltaTime),
		Damage:    timers.TowerDamage.Tick(deltaTime),
		MatchOver: timers.Match.Tick(deltaTime),
	}
}

// TickLinger advances the game-over countdown and reports its expiry.
func (s *EconomySystem) TickLinger(deltaTime float64) bool {
	return s.world.Timers.GameOver.Tick(deltaTime)
}
