package system

import (
	"testing"

	"go-hex-defense/internal/config"
	"go-hex-defense/internal/entity"
	"go-hex-defense/internal/event"
	prng "go-hex-defense/internal/utils"
	"go-hex-defense/pkg/hexmap"
)

type fixture struct {
	cfg     config.Config
	world   *entity.World
	intents *event.Queue
	events  *event.Dispatcher
	economy *EconomySystem
	damage  *DamageSystem
	paths   *PathSystem
	tiles   *TileSystem
	towers  *TowerSystem
	enemies *EnemySystem
	log     *eventLog
}

type eventLog struct {
	events []event.Event
}

func (l *eventLog) OnEvent(e event.Event) {
	l.events = append(l.events, e)
}

func (l *eventLog) count(t event.EventType) int {
	n := 0
	for _, e := range l.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func newFixture(t *testing.T, radius int, mountainRatio float64) *fixture {
	t.Helper()
	cfg := config.Default()
	cfg.MapRadius = radius
	cfg.MountainRatio = mountainRatio
	rng := prng.NewPRNGService(1)

	hm := hexmap.NewHexMap(radius, cfg.HexSize, mountainRatio, rng)
	f := &fixture{
		cfg:     cfg,
		world:   entity.NewWorld(hm, cfg.StartingBudget, NewTimers(cfg)),
		intents: event.NewQueue(),
		events:  event.NewDispatcher(),
		log:     &eventLog{},
	}
	for _, et := range []event.EventType{event.TowerPlaced, event.TowerRemoved, event.EnemyKilled, event.EnemyBreached, event.PathsRecalculated} {
		f.events.Subscribe(et, f.log)
	}
	f.economy = NewEconomySystem(f.world, f.events)
	f.damage = NewDamageSystem(f.world, f.events)
	f.paths = NewPathSystem(f.world, f.damage, f.intents, f.events, cfg)
	f.tiles = NewTileSystem(f.world, f.intents)
	f.towers = NewTowerSystem(f.world, f.economy, f.events, cfg.Tower.Types)
	f.enemies = NewEnemySystem(f.world, f.events, rng, cfg.Enemy)
	return f
}

// settle runs pending intents the way a tick does.
func (f *fixture) settle() {
	if f.intents.Take(event.RecalculateEnemyPaths) {
		f.paths.Recalculate()
	}
	if f.intents.Take(event.RefreshTowerDamage) {
		f.damage.Refresh()
	}
}

func (f *fixture) tile(t *testing.T, hex hexmap.Hex) *hexmap.Tile {
	t.Helper()
	tile, ok := f.world.HexMap.Resolve(hex)
	if !ok {
		t.Fatalf("hex %v is not on the board", hex)
	}
	return tile
}

// layPath installs a single hand-made route for spawn 0.
func (f *fixture) layPath(t *testing.T, path []hexmap.Hex) {
	t.Helper()
	for _, hex := range f.world.HexMap.Hexes() {
		f.tile(t, hex).OnPath = false
	}
	for _, hex := range path {
		f.tile(t, hex).OnPath = true
	}
	f.world.Paths = map[int][]hexmap.Hex{0: path}
}

// expectedOverlay recomputes the overlay from its definition.
func (f *fixture) expectedOverlay() map[hexmap.Hex]int {
	want := make(map[hexmap.Hex]int)
	for _, hex := range f.world.HexMap.Hexes() {
		tile, _ := f.world.HexMap.Resolve(hex)
		if !tile.OnPath {
			continue
		}
		sum := 0
		for _, tower := range f.world.Towers {
			if tower.Hex.Distance(hex) <= tower.Range {
				sum += tower.Damage
			}
		}
		if sum > 0 {
			want[hex] = sum
		}
	}
	return want
}
