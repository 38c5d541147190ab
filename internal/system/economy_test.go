package system

import (
	"math"
	"testing"

	"go-hex-defense/internal/component"
	"go-hex-defense/internal/event"

	"github.com/stretchr/testify/assert"
)

func TestSpendNeverGoesNegative(t *testing.T) {
	f := newFixture(t, 2, 0)
	f.world.Economy.Budget = 10

	assert.False(t, f.economy.Spend(11))
	assert.Equal(t, 10, f.world.Economy.Budget)
	assert.True(t, f.economy.Spend(10))
	assert.Zero(t, f.world.Economy.Budget)
	assert.False(t, f.economy.Spend(1))
	assert.Zero(t, f.world.Economy.Budget)
}

func TestCreditSaturates(t *testing.T) {
	f := newFixture(t, 2, 0)
	f.world.Economy.Budget = math.MaxInt - 1
	f.economy.Credit(5)
	assert.Equal(t, math.MaxInt, f.world.Economy.Budget)

	f.world.Economy.Budget = 3
	f.economy.Credit(-7)
	assert.Equal(t, 3, f.world.Economy.Budget, "credit never decreases the budget")
}

func TestEnemyOutcomesUpdateScore(t *testing.T) {
	f := newFixture(t, 2, 0)
	f.world.Economy.Budget = 0

	f.events.Dispatch(event.Event{Type: event.EnemyKilled, Data: component.Enemy{Value: 12}})
	assert.Equal(t, 12, f.world.Economy.Budget)
	assert.Equal(t, component.ScoreBoard{Player: 1}, f.world.Economy.Score)

	f.events.Dispatch(event.Event{Type: event.EnemyBreached, Data: component.Enemy{Value: 7}})
	assert.Equal(t, 12, f.world.Economy.Budget, "breach earns nothing")
	assert.Equal(t, component.ScoreBoard{Player: 1, Enemy: 1}, f.world.Economy.Score)

	f.events.Dispatch(event.Event{Type: event.EnemyKilled, Data: "junk"})
	assert.Equal(t, component.ScoreBoard{Player: 1, Enemy: 1}, f.world.Economy.Score)
}

func TestTickTimers(t *testing.T) {
	f := newFixture(t, 2, 0)
	// spawn 1.5s, damage 0.5s, match 120s
	res := f.economy.Tick(0.4)
	assert.Equal(t, TickResult{}, res)

	res = f.economy.Tick(0.2)
	assert.Equal(t, TickResult{Damage: true}, res)

	res = f.economy.Tick(1.0)
	assert.Equal(t, TickResult{Spawn: true, Damage: true}, res)

	res = f.economy.Tick(200)
	assert.True(t, res.MatchOver)
	assert.False(t, f.economy.Tick(1).MatchOver, "match timer fires once")

	assert.False(t, f.economy.TickLinger(4))
	assert.True(t, f.economy.TickLinger(1))
	assert.False(t, f.economy.TickLinger(1))
}

func TestTimer(t *testing.T) {
	timer := component.NewTimer(1, true)
	assert.False(t, timer.Tick(0.5))
	assert.InDelta(t, 0.5, timer.Percent(), 1e-9)
	assert.True(t, timer.Tick(0.75))
	assert.InDelta(t, 0.25, timer.Elapsed, 1e-9)
	assert.True(t, timer.Tick(2.0), "several periods in one tick fire once")
	assert.False(t, timer.Finished())

	once := component.NewTimer(2, false)
	assert.False(t, once.Tick(1))
	assert.InDelta(t, 1, once.Remaining(), 1e-9)
	assert.True(t, once.Tick(1))
	assert.True(t, once.Finished())
	assert.Equal(t, 1.0, once.Percent())
	once.Reset()
	assert.False(t, once.Finished())

	var zero component.Timer
	assert.False(t, zero.Tick(10))
}
