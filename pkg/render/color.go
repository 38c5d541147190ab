// pkg/render/color.go
package render

import (
	"image/color"

	"go-hex-defense/internal/config"
	"go-hex-defense/pkg/hexmap"
)

// MapColors holds all the color definitions needed to render the board.
type MapColors struct {
	BackgroundColor color.RGBA
	PlainColor      color.RGBA
	MountainColor   color.RGBA
	GoalColor       color.RGBA
	SpawnColor      color.RGBA
	PathColor       color.RGBA
	CursorColor     color.RGBA
	TextDarkColor   color.RGBA
	TextLightColor  color.RGBA
	DamageColors    [3]color.RGBA // low, medium, high
	DamageAlpha     float64
	StrokeWidth     float32
}

// DefaultMapColors собирает палитру из пакета config.
func DefaultMapColors(damageAlpha float64) MapColors {
	return MapColors{
		BackgroundColor: config.BackgroundColor,
		PlainColor:      config.PlainColor,
		MountainColor:   config.MountainColor,
		GoalColor:       config.GoalColor,
		SpawnColor:      config.SpawnColor,
		PathColor:       config.PathColor,
		CursorColor:     config.CursorColor,
		TextDarkColor:   config.TextDarkColor,
		TextLightColor:  config.TextLightColor,
		DamageColors:    [3]color.RGBA{config.DamageLowColor, config.DamageMediumColor, config.DamageHighColor},
		DamageAlpha:     damageAlpha,
		StrokeWidth:     float32(config.StrokeWidth),
	}
}

// DamageLevel is the display bucket of an overlay value.
type DamageLevel int

const (
	DamageLow DamageLevel = iota
	DamageMedium
	DamageHigh
)

// DamageLevelOf buckets an overlay value: 0..3 low, 4..7 medium, 8+ high.
func DamageLevelOf(damage int) DamageLevel {
	switch {
	case damage <= 3:
		return DamageLow
	case damage <= 7:
		return DamageMedium
	}
	return DamageHigh
}

// TileColor returns the fill of a tile, with the damage overlay blended in.
func (c MapColors) TileColor(tile hexmap.Tile) color.RGBA {
	switch {
	case tile.IsGoal:
		return c.GoalColor
	case tile.IsSpawn:
		return c.SpawnColor
	case tile.Type == hexmap.Mountain:
		return c.MountainColor
	case tile.OnPath && tile.Damage > 0:
		return BlendColor(c.PathColor, c.DamageColors[DamageLevelOf(tile.Damage)], c.DamageAlpha)
	case tile.OnPath:
		return c.PathColor
	}
	return c.PlainColor
}

// TextColorFor picks a readable label color for the given fill.
func (c MapColors) TextColorFor(fill color.RGBA) color.RGBA {
	if (int(fill.R)+int(fill.G)+int(fill.B))/3 > 128 {
		return c.TextDarkColor
	}
	return c.TextLightColor
}

// BlendColor mixes top over base with opacity alpha.
func BlendColor(base, top color.RGBA, alpha float64) color.RGBA {
	mix := func(a, b uint8) uint8 {
		return uint8(float64(a)*(1-alpha) + float64(b)*alpha + 0.5)
	}
	return color.RGBA{
		R: mix(base.R, top.R),
		G: mix(base.G, top.G),
		B: mix(base.B, top.B),
		A: base.A,
	}
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}
