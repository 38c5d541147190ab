// internal/config/config.go
package config

import "image/color"

// Параметры окна просмотрщика
const (
	ScreenWidth      = 1200
	ScreenHeight     = 900
	MaxDeltaTime     = 0.06
	ClickCooldown    = 300
	IndicatorOffsetX = 30
	IndicatorRadius  = 10.0
	PauseButtonSize  = 12.0
	TimerBarHeight   = 6
	InfoPanelHeight  = 90
	EnemyRadiusScale = 0.35
	MinZoom          = 0.25
	MaxZoom          = 8.0
	TextOffsetY      = 4
	ExportPath       = "config.json"
)

var (
	BackgroundColor   = color.RGBA{20, 20, 30, 255}
	PlainColor        = color.RGBA{70, 100, 120, 220}
	MountainColor     = color.RGBA{120, 110, 100, 230}
	GoalColor         = color.RGBA{255, 0, 0, 255}
	SpawnColor        = color.RGBA{0, 255, 0, 255}
	PathColor         = color.RGBA{194, 178, 128, 255}
	CursorColor       = color.RGBA{255, 255, 255, 255}
	TextLightColor    = color.RGBA{240, 240, 240, 255}
	TextDarkColor     = color.RGBA{20, 20, 30, 255}
	EnemyColor        = color.RGBA{0, 0, 0, 255}
	TowerStrokeColor  = color.RGBA{255, 255, 255, 255}
	InGameColor       = color.RGBA{70, 130, 180, 220}
	PauseColor        = color.RGBA{194, 178, 128, 255}
	GameOverColor     = color.RGBA{220, 60, 60, 220}
	TimerBarColor     = color.RGBA{220, 60, 60, 220}
	DamageLowColor    = color.RGBA{255, 215, 0, 255}
	DamageMediumColor = color.RGBA{255, 140, 0, 255}
	DamageHighColor   = color.RGBA{220, 20, 60, 255}
	StrokeWidth       = 1.5
	TowerColors       = []color.RGBA{
		{50, 255, 50, 255},  // Small
		{50, 100, 255, 255}, // Medium
		{180, 50, 230, 255}, // Large
	}
)

// TowerTypeConfig — параметры одного типа башни
type TowerTypeConfig struct {
	Cost   int     `json:"cost"`
	Scale  float64 `json:"scale"`
	Range  int     `json:"range"`
	Damage int     `json:"damage"`
}

// TowerTypes — параметры всех типов башен
type TowerTypes struct {
	Small  TowerTypeConfig `json:"small"`
	Medium TowerTypeConfig `json:"medium"`
	Large  TowerTypeConfig `json:"large"`
}

// TowerConfig describes tower damage ticking and the per-type table.
type TowerConfig struct {
	DamageRate  float64    `json:"damage_rate"`
	DamageAlpha float64    `json:"damage_alpha"`
	Types       TowerTypes `json:"types"`
}

// EnemyConfig describes enemy spawning and movement.
type EnemyConfig struct {
	SpawnRate        float64 `json:"spawn_rate"`
	BaseSpeed        float64 `json:"base_speed"`
	MinHealth        int     `json:"min_health"`
	MaxHealth        int     `json:"max_health"`
	MinSpeedFraction float64 `json:"min_speed_fraction"`
}

// Config — все настраиваемые параметры симуляции
type Config struct {
	MapRadius        int         `json:"map_radius"`
	HexSize          float64     `json:"hex_size"`
	Seed             *int64      `json:"seed"`
	ZoomSpeed        float64     `json:"zoom_speed"`
	StartingBudget   int         `json:"starting_budget"`
	MountainRatio    float64     `json:"mountain_ratio"`
	PathPenalty      int         `json:"path_penalty"`
	CommandQueueSize int         `json:"command_queue_size"`
	Tower            TowerConfig `json:"tower"`
	Enemy            EnemyConfig `json:"enemy"`
	GameLength       float64     `json:"game_length"`
	GameOverLinger   float64     `json:"game_over_linger"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		MapRadius:        20,
		HexSize:          10,
		ZoomSpeed:        2,
		StartingBudget:   20,
		MountainRatio:    0.25,
		PathPenalty:      1000,
		CommandQueueSize: 64,
		Tower: TowerConfig{
			DamageRate:  0.5,
			DamageAlpha: 0.7,
			Types: TowerTypes{
				Small:  TowerTypeConfig{Cost: 5, Scale: 0.6, Range: 1, Damage: 1},
				Medium: TowerTypeConfig{Cost: 10, Scale: 0.8, Range: 2, Damage: 2},
				Large:  TowerTypeConfig{Cost: 15, Scale: 1.0, Range: 3, Damage: 3},
			},
		},
		Enemy: EnemyConfig{
			SpawnRate:        1.5,
			BaseSpeed:        1.5,
			MinHealth:        5,
			MaxHealth:        25,
			MinSpeedFraction: 0.1,
		},
		GameLength:     120,
		GameOverLinger: 5,
	}
}

// Penalty is the path cost of a mountain or tower tile: never below the
// number of tiles on the board, so crossing one always costs more than any
// detour.
func (c Config) Penalty(tileCount int) int {
	if c.PathPenalty > tileCount {
		return c.PathPenalty
	}
	return tileCount
}
