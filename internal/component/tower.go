// component/tower.go
package component

import (
	"fmt"

	"go-hex-defense/internal/config"
	"go-hex-defense/pkg/hexmap"
)

// TowerType — тип башни
type TowerType int

const (
	Small TowerType = iota
	Medium
	Large
)

// TowerTypes lists every tower type in selection order.
var TowerTypes = []TowerType{Small, Medium, Large}

func (t TowerType) String() string {
	switch t {
	case Small:
		return "Small"
	case Medium:
		return "Medium"
	case Large:
		return "Large"
	}
	return fmt.Sprintf("TowerType(%d)", int(t))
}

// Letter is the command token of the type.
func (t TowerType) Letter() string {
	switch t {
	case Small:
		return "s"
	case Medium:
		return "m"
	case Large:
		return "l"
	}
	return "?"
}

// ParseTowerType maps a command letter to a tower type.
func ParseTowerType(letter string) (TowerType, bool) {
	switch letter {
	case "s":
		return Small, true
	case "m":
		return Medium, true
	case "l":
		return Large, true
	}
	return 0, false
}

// TowerStats — параметры типа башни
type TowerStats struct {
	Cost   int
	Scale  float64
	Range  int
	Damage int
}

type Tower struct {
	Type   TowerType
	Cost   int        // Сколько заплатили при постройке
	Hex    hexmap.Hex // Гекс, на котором стоит башня
	Range  int
	Damage int
}

// StatsFor returns the configured parameters of a tower type.
func StatsFor(types config.TowerTypes, t TowerType) TowerStats {
	var c config.TowerTypeConfig
	switch t {
	case Medium:
		c = types.Medium
	case Large:
		c = types.Large
	default:
		c = types.Small
	}
	return TowerStats{Cost: c.Cost, Scale: c.Scale, Range: c.Range, Damage: c.Damage}
}
