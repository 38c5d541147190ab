// internal/app/tower_management.go
package app

import (
	"log"

	"go-hex-defense/internal/component"
	"go-hex-defense/pkg/hexmap"
)

// ToggleTile handles a toggle command.
func (g *Game) ToggleTile(hex hexmap.Hex) {
	g.TileSystem.Toggle(hex)
}

// PlaceTower handles a tower command. Rejections are logged and dropped.
func (g *Game) PlaceTower(towerType component.TowerType, hex hexmap.Hex) {
	if _, err := g.TowerSystem.Place(towerType, hex); err != nil {
		log.Printf("Tower rejected: %v", err)
	}
}

// Restart handles a reset command. The phase change is up to the caller of
// Update.
func (g *Game) Restart() {
	log.Println("Restart requested")
}
