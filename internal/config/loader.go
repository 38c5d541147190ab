// internal/config/loader.go
package config

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
)

// Load reads a JSON config file. Missing fields keep their default values,
// invalid ones are reset by Normalize.
func Load(path string) (Config, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := json.Unmarshal(file, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.Normalize()

	log.Printf("Loaded config from %s (radius %d)", path, cfg.MapRadius)
	return cfg, nil
}

// LoadOrDefault is Load that falls back to Default with a warning.
func LoadOrDefault(path string) Config {
	if path == "" {
		return Default()
	}
	cfg, err := Load(path)
	if err != nil {
		log.Printf("WARN: %v, using default config", err)
		return Default()
	}
	return cfg
}

// Export writes cfg as indented JSON.
func Export(path string, cfg Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	log.Printf("Exported config to %s", path)
	return nil
}

// Normalize заменяет некорректные значения значениями по умолчанию.
func (c *Config) Normalize() {
	def := Default()
	warn := func(field string) {
		log.Printf("WARN: invalid %s in config, using default", field)
	}

	if c.MapRadius < 1 {
		warn("map_radius")
		c.MapRadius = def.MapRadius
	}
	if c.HexSize <= 0 {
		warn("hex_size")
		c.HexSize = def.HexSize
	}
	if c.ZoomSpeed <= 0 {
		warn("zoom_speed")
		c.ZoomSpeed = def.ZoomSpeed
	}
	if c.StartingBudget < 0 {
		warn("starting_budget")
		c.StartingBudget = def.StartingBudget
	}
	if c.MountainRatio < 0 || c.MountainRatio > 1 {
		warn("mountain_ratio")
		c.MountainRatio = def.MountainRatio
	}
	if c.PathPenalty < 1 {
		warn("path_penalty")
		c.PathPenalty = def.PathPenalty
	}
	if c.CommandQueueSize < 1 {
		warn("command_queue_size")
		c.CommandQueueSize = def.CommandQueueSize
	}

	if c.Tower.DamageRate <= 0 {
		warn("tower.damage_rate")
		c.Tower.DamageRate = def.Tower.DamageRate
	}
	if c.Tower.DamageAlpha < 0 || c.Tower.DamageAlpha > 1 {
		warn("tower.damage_alpha")
		c.Tower.DamageAlpha = def.Tower.DamageAlpha
	}
	normalizeTowerType(&c.Tower.Types.Small, def.Tower.Types.Small, "small", warn)
	normalizeTowerType(&c.Tower.Types.Medium, def.Tower.Types.Medium, "medium", warn)
	normalizeTowerType(&c.Tower.Types.Large, def.Tower.Types.Large, "large", warn)

	if c.Enemy.SpawnRate <= 0 {
		warn("enemy.spawn_rate")
		c.Enemy.SpawnRate = def.Enemy.SpawnRate
	}
	if c.Enemy.BaseSpeed <= 0 {
		warn("enemy.base_speed")
		c.Enemy.BaseSpeed = def.Enemy.BaseSpeed
	}
	if c.Enemy.MinHealth < 1 || c.Enemy.MaxHealth < c.Enemy.MinHealth {
		warn("enemy health range")
		c.Enemy.MinHealth = def.Enemy.MinHealth
		c.Enemy.MaxHealth = def.Enemy.MaxHealth
	}
	if c.Enemy.MinSpeedFraction <= 0 || c.Enemy.MinSpeedFraction > 1 {
		warn("enemy.min_speed_fraction")
		c.Enemy.MinSpeedFraction = def.Enemy.MinSpeedFraction
	}

	if c.GameLength <= 0 {
		warn("game_length")
		c.GameLength = def.GameLength
	}
	if c.GameOverLinger <= 0 {
		warn("game_over_linger")
		c.GameOverLinger = def.GameOverLinger
	}
}

func normalizeTowerType(t *TowerTypeConfig, def TowerTypeConfig, name string, warn func(string)) {
	if t.Cost < 0 {
		warn("tower.types." + name + ".cost")
		t.Cost = def.Cost
	}
	if t.Scale <= 0 {
		warn("tower.types." + name + ".scale")
		t.Scale = def.Scale
	}
	if t.Range < 0 {
		warn("tower.types." + name + ".range")
		t.Range = def.Range
	}
	if t.Damage < 0 {
		warn("tower.types." + name + ".damage")
		t.Damage = def.Damage
	}
}
