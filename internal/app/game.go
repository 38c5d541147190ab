// internal/app/game.go
package app

import (
	"log"

	"go-hex-defense/internal/command"
	"go-hex-defense/internal/component"
	"go-hex-defense/internal/config"
	"go-hex-defense/internal/entity"
	"go-hex-defense/internal/event"
	"go-hex-defense/internal/system"
	"go-hex-defense/internal/utils"
	"go-hex-defense/pkg/hexmap"
)

// Outcome reports phase-relevant results of one tick.
type Outcome struct {
	Restart   bool
	MatchOver bool
}

// Game holds the simulation state and runs its tick.
type Game struct {
	Config          config.Config
	World           *entity.World
	EventDispatcher *event.Dispatcher
	Intents         *event.Queue
	Rng             *utils.PRNGService
	Inbound         *command.Inbound
	Commands        *command.Dispatcher

	EconomySystem *system.EconomySystem
	DamageSystem  *system.DamageSystem
	PathSystem    *system.PathSystem
	TileSystem    *system.TileSystem
	TowerSystem   *system.TowerSystem
	EnemySystem   *system.EnemySystem

	gameTime float64
	built    bool
}

// NewGame wires the systems around one World. The board is created by Build.
func NewGame(cfg config.Config, inbound *command.Inbound, rng *utils.PRNGService) *Game {
	world := entity.NewWorld(nil, cfg.StartingBudget, system.NewTimers(cfg))
	eventDispatcher := event.NewDispatcher()
	intents := event.NewQueue()

	g := &Game{
		Config:          cfg,
		World:           world,
		EventDispatcher: eventDispatcher,
		Intents:         intents,
		Rng:             rng,
		Inbound:         inbound,
	}
	g.EconomySystem = system.NewEconomySystem(world, eventDispatcher)
	g.DamageSystem = system.NewDamageSystem(world, eventDispatcher)
	g.PathSystem = system.NewPathSystem(world, g.DamageSystem, intents, eventDispatcher, cfg)
	g.TileSystem = system.NewTileSystem(world, intents)
	g.TowerSystem = system.NewTowerSystem(world, g.EconomySystem, eventDispatcher, cfg.Tower.Types)
	g.EnemySystem = system.NewEnemySystem(world, eventDispatcher, rng, cfg.Enemy)
	g.Commands = command.NewDispatcher(inbound, g)
	return g
}

// Build discards the current board and generates a new one.
func (g *Game) Build() {
	cfg := g.Config
	hm := hexmap.NewHexMap(cfg.MapRadius, cfg.HexSize, cfg.MountainRatio, g.Rng)
	g.World.Reset(hm, cfg.StartingBudget, system.NewTimers(cfg))
	g.Intents.Clear()
	g.TileSystem.ResetCursor()
	g.gameTime = 0
	g.built = true

	g.Intents.Push(event.RecalculateEnemyPaths)
	g.resolveIntents()
	log.Printf("Board built: radius %d, %d tiles, budget %d", hm.Radius, hm.Len(), cfg.StartingBudget)
}

// Built reports whether a board exists.
func (g *Game) Built() bool {
	return g.built
}

// resolveIntents runs path recalculation strictly before the overlay refresh.
func (g *Game) resolveIntents() {
	if g.Intents.Take(event.RecalculateEnemyPaths) {
		g.PathSystem.Recalculate()
	}
	if g.Intents.Take(event.RefreshTowerDamage) {
		g.DamageSystem.Refresh()
	}
}

// Update advances the simulation by one tick.
func (g *Game) Update(deltaTime float64) Outcome {
	if !g.built {
		return Outcome{}
	}
	if _, restart := g.Commands.Dispatch(); restart {
		return Outcome{Restart: true}
	}
	g.resolveIntents()

	g.gameTime += deltaTime
	ticks := g.EconomySystem.Tick(deltaTime)
	if ticks.Spawn {
		g.EnemySystem.Spawn()
	}
	g.EnemySystem.Move(deltaTime)
	if ticks.Damage {
		g.EnemySystem.ApplyDamage()
	}
	return Outcome{MatchOver: ticks.MatchOver}
}

// UpdateGameOver runs the linger countdown while the match is over.
func (g *Game) UpdateGameOver(deltaTime float64) bool {
	return g.EconomySystem.TickLinger(deltaTime)
}

// GameTime returns seconds of simulated play on the current board.
func (g *Game) GameTime() float64 {
	return g.gameTime
}

// SetCursor marks the hovered tile.
func (g *Game) SetCursor(hex hexmap.Hex) {
	if g.built {
		g.TileSystem.SetCursor(hex)
	}
}

// TileAt returns a copy of the tile record at hex.
func (g *Game) TileAt(hex hexmap.Hex) (hexmap.Tile, bool) {
	if !g.built {
		return hexmap.Tile{}, false
	}
	tile, ok := g.World.HexMap.Resolve(hex)
	if !ok {
		return hexmap.Tile{}, false
	}
	return *tile, true
}

// ExportConfig writes the live config to path.
func (g *Game) ExportConfig(path string) error {
	return config.Export(path, g.Config)
}

// Economy returns a copy of budget and score.
func (g *Game) Economy() component.Economy {
	return g.World.Economy
}
