package system

import (
	"testing"

	"go-hex-defense/internal/component"
	"go-hex-defense/internal/config"
	"go-hex-defense/internal/event"
	"go-hex-defense/internal/types"
	"go-hex-defense/pkg/hexmap"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var straightPath = []hexmap.Hex{{Q: 3, R: 0}, {Q: 2, R: 0}, {Q: 1, R: 0}, {Q: 0, R: 0}}

func addEnemyAt(f *fixture, index int, lerp float64, health int) types.EntityID {
	path := f.world.Paths[0]
	fx, fy := f.world.HexMap.WorldPos(path[index])
	x, y := fx, fy
	if index+1 < len(path) {
		tx, ty := f.world.HexMap.WorldPos(path[index+1])
		x, y = fx+(tx-fx)*lerp, fy+(ty-fy)*lerp
	}
	return f.world.AddEnemy(component.Enemy{
		Health: health, MaxHealth: health, Value: health,
		Index: index, Lerp: lerp, Speed: 1, X: x, Y: y,
	})
}

func TestSpeedFor(t *testing.T) {
	cfg := config.Default().Enemy
	assert.Equal(t, 1.0, SpeedFor(cfg.MinHealth, cfg))
	assert.InDelta(t, 0.5, SpeedFor(15, cfg), 1e-9)
	assert.Equal(t, cfg.MinSpeedFraction, SpeedFor(cfg.MaxHealth, cfg))

	cfg.MaxHealth = cfg.MinHealth
	assert.Equal(t, 1.0, SpeedFor(cfg.MinHealth, cfg))
}

func TestSpawnNeedsARoute(t *testing.T) {
	f := newFixture(t, 3, 0)
	_, ok := f.enemies.Spawn()
	assert.False(t, ok)
	assert.Empty(t, f.world.Enemies)
}

func TestSpawnAtRouteStart(t *testing.T) {
	f := newFixture(t, 3, 0)
	f.layPath(t, straightPath)

	for i := 0; i < 20; i++ {
		id, ok := f.enemies.Spawn()
		require.True(t, ok)
		e := f.world.Enemies[id]
		assert.Equal(t, 0, e.Spawn)
		assert.Equal(t, 0, e.Index)
		assert.Zero(t, e.Lerp)
		assert.GreaterOrEqual(t, e.Health, f.cfg.Enemy.MinHealth)
		assert.LessOrEqual(t, e.Health, f.cfg.Enemy.MaxHealth)
		assert.Equal(t, e.Health, e.Value)
		assert.Equal(t, e.Health, e.MaxHealth)
		assert.Equal(t, SpeedFor(e.Health, f.cfg.Enemy), e.Speed)
		assert.Equal(t, straightPath[0], f.world.HexMap.HexAt(e.X, e.Y))
	}
}

func TestSpawnOnRealRoutes(t *testing.T) {
	f := newFixture(t, 3, 0)
	f.paths.Recalculate()
	for i := 0; i < 30; i++ {
		id, ok := f.enemies.Spawn()
		require.True(t, ok)
		e := f.world.Enemies[id]
		assert.Equal(t, f.world.HexMap.Spawns[e.Spawn], f.world.HexMap.HexAt(e.X, e.Y))
	}
}

func TestMoveAndBreach(t *testing.T) {
	f := newFixture(t, 3, 0)
	f.layPath(t, straightPath)
	id := addEnemyAt(f, 0, 0, 5)
	budget := f.world.Economy.Budget

	// base speed 1.5 hex/s
	f.enemies.Move(0.5)
	e := f.world.Enemies[id]
	assert.Equal(t, 0, e.Index)
	assert.InDelta(t, 0.75, e.Lerp, 1e-9)

	f.enemies.Move(0.5)
	assert.Equal(t, 1, e.Index)
	assert.InDelta(t, 0.5, e.Lerp, 1e-9)
	fx, fy := f.world.HexMap.WorldPos(straightPath[1])
	tx, ty := f.world.HexMap.WorldPos(straightPath[2])
	assert.InDelta(t, (fx+tx)/2, e.X, 1e-9)
	assert.InDelta(t, (fy+ty)/2, e.Y, 1e-9)

	f.enemies.Move(1.0)
	assert.NotContains(t, f.world.Enemies, id)
	assert.Equal(t, 1, f.log.count(event.EnemyBreached))
	assert.Equal(t, component.ScoreBoard{Enemy: 1}, f.world.Economy.Score)
	assert.Equal(t, budget, f.world.Economy.Budget)

	f.enemies.Move(1.0)
	f.enemies.ApplyDamage()
	assert.Equal(t, 1, f.world.Economy.Score.Enemy, "breach counted once")
	assert.Zero(t, f.log.count(event.EnemyKilled))
}

func TestMoveDestroysStrandedEnemies(t *testing.T) {
	f := newFixture(t, 3, 0)
	f.layPath(t, straightPath)
	offPath := addEnemyAt(f, 1, 0, 5)
	flagged := addEnemyAt(f, 2, 0, 5)
	kept := addEnemyAt(f, 0, 0, 5)
	f.tile(t, straightPath[1]).OnPath = false
	f.world.Enemies[flagged].Stranded = true

	f.enemies.Move(0.1)
	assert.NotContains(t, f.world.Enemies, offPath)
	assert.NotContains(t, f.world.Enemies, flagged)
	assert.Contains(t, f.world.Enemies, kept)
	assert.Equal(t, component.ScoreBoard{}, f.world.Economy.Score)
	assert.Equal(t, f.cfg.StartingBudget, f.world.Economy.Budget)
}

func TestApplyDamageKillsOnce(t *testing.T) {
	f := newFixture(t, 3, 0)
	f.layPath(t, straightPath)
	f.tile(t, straightPath[1]).Damage = 3
	id := addEnemyAt(f, 1, 0, 5)
	untouched := addEnemyAt(f, 0, 0, 5)
	f.world.Economy.Budget = 0

	f.enemies.ApplyDamage()
	assert.Equal(t, 2, f.world.Enemies[id].Health)
	assert.Equal(t, 5, f.world.Enemies[untouched].Health)

	f.enemies.ApplyDamage()
	assert.NotContains(t, f.world.Enemies, id)
	assert.Equal(t, 5, f.world.Economy.Budget)
	assert.Equal(t, component.ScoreBoard{Player: 1}, f.world.Economy.Score)

	f.enemies.ApplyDamage()
	assert.Equal(t, 1, f.log.count(event.EnemyKilled))
	assert.Equal(t, 1, f.world.Economy.Score.Player)
}

func TestReanchorKeepsSurvivingSegment(t *testing.T) {
	f := newFixture(t, 3, 0)
	f.layPath(t, straightPath)
	id := addEnemyAt(f, 1, 0.5, 5)
	x, y := f.world.Enemies[id].X, f.world.Enemies[id].Y

	old := f.world.Paths
	f.layPath(t, []hexmap.Hex{{Q: 3, R: -2}, {Q: 3, R: -1}, {Q: 2, R: 0}, {Q: 1, R: 0}, {Q: 0, R: 0}})
	f.enemies.Reanchor(old)

	e := f.world.Enemies[id]
	assert.Equal(t, 2, e.Index)
	assert.InDelta(t, 0.5, e.Lerp, 1e-9)
	assert.Equal(t, x, e.X)
	assert.Equal(t, y, e.Y)
	assert.False(t, e.Stranded)
}

func TestReanchorSnapsToCurrentHex(t *testing.T) {
	f := newFixture(t, 3, 0)
	f.layPath(t, straightPath)
	id := addEnemyAt(f, 1, 0.2, 5)

	old := f.world.Paths
	f.layPath(t, []hexmap.Hex{{Q: 3, R: -1}, {Q: 2, R: 0}, {Q: 1, R: 1}, {Q: 0, R: 1}, {Q: 0, R: 0}})
	f.enemies.Reanchor(old)

	e := f.world.Enemies[id]
	assert.Equal(t, 1, e.Index)
	assert.Zero(t, e.Lerp)
	cx, cy := f.world.HexMap.WorldPos(hexmap.Hex{Q: 2, R: 0})
	assert.Equal(t, cx, e.X)
	assert.Equal(t, cy, e.Y)

	f.enemies.Move(0.1)
	assert.Contains(t, f.world.Enemies, id)
}

func TestReanchorStrandsEnemiesOffRoute(t *testing.T) {
	f := newFixture(t, 3, 0)
	f.layPath(t, straightPath)
	id := addEnemyAt(f, 1, 0, 5)

	old := f.world.Paths
	f.layPath(t, []hexmap.Hex{{Q: 0, R: 3}, {Q: 0, R: 2}, {Q: 0, R: 1}, {Q: 0, R: 0}})
	f.events.Dispatch(event.Event{Type: event.PathsRecalculated, Data: PathsChange{Old: old}})
	assert.True(t, f.world.Enemies[id].Stranded)

	f.enemies.Move(0.1)
	assert.Empty(t, f.world.Enemies)
	assert.Equal(t, component.ScoreBoard{}, f.world.Economy.Score)
}
