// internal/app/snapshot.go
package app

import (
	"go-hex-defense/internal/component"
	"go-hex-defense/pkg/hexmap"
)

// TileView is a read-only copy of one tile.
type TileView struct {
	Hex hexmap.Hex
	hexmap.Tile
}

type TowerView struct {
	Hex   hexmap.Hex
	Type  component.TowerType
	Scale float64
	Range int
}

type EnemyView struct {
	X, Y      float64
	Health    int
	MaxHealth int
}

// Snapshot — данные для отрисовки, без ссылок на состояние симуляции
type Snapshot struct {
	Radius         int
	HexSize        float64
	Tiles          []TileView
	Towers         []TowerView
	Enemies        []EnemyView
	Budget         int
	Score          component.ScoreBoard
	MatchProgress  float64
	MatchRemaining float64
	GameTime       float64
}

// Snapshot copies everything a viewer needs.
func (g *Game) Snapshot() Snapshot {
	if !g.built {
		return Snapshot{}
	}
	w := g.World
	hm := w.HexMap
	snap := Snapshot{
		Radius:         hm.Radius,
		HexSize:        hm.HexSize,
		Tiles:          make([]TileView, 0, hm.Len()),
		Towers:         make([]TowerView, 0, len(w.Towers)),
		Enemies:        make([]EnemyView, 0, len(w.Enemies)),
		Budget:         w.Economy.Budget,
		Score:          w.Economy.Score,
		MatchProgress:  w.Timers.Match.Percent(),
		MatchRemaining: w.Timers.Match.Remaining(),
		GameTime:       g.gameTime,
	}
	for _, hex := range hm.Hexes() {
		tile, _ := hm.Resolve(hex)
		snap.Tiles = append(snap.Tiles, TileView{Hex: hex, Tile: *tile})
	}
	for _, id := range w.SortedTowerIDs() {
		t := w.Towers[id]
		stats := component.StatsFor(g.Config.Tower.Types, t.Type)
		snap.Towers = append(snap.Towers, TowerView{Hex: t.Hex, Type: t.Type, Scale: stats.Scale, Range: t.Range})
	}
	for _, id := range w.SortedEnemyIDs() {
		e := w.Enemies[id]
		snap.Enemies = append(snap.Enemies, EnemyView{X: e.X, Y: e.Y, Health: e.Health, MaxHealth: e.MaxHealth})
	}
	return snap
}
