// internal/ui/info_panel.go
package ui

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-hex-defense/internal/component"
	"go-hex-defense/internal/config"
	"go-hex-defense/pkg/hexmap"
)

const (
	panelMargin    = 5
	animationSpeed = 10.0
	lineHeight     = 18
	columnSpacing  = 260
)

// InfoView is what the panel shows for one frame.
type InfoView struct {
	Hex       hexmap.Hex
	Tile      hexmap.Tile
	Hovering  bool
	Budget    int
	Score     component.ScoreBoard
	Selected  component.TowerType
	Phase     component.Phase
	Remaining float64
}

// StatusLine is the always visible economy summary.
func StatusLine(v InfoView) string {
	return fmt.Sprintf("Budget: %d   Score: %d / %d   Tower: %s   %s   %.0fs",
		v.Budget, v.Score.Player, v.Score.Enemy, v.Selected, v.Phase, math.Ceil(v.Remaining))
}

// TileLines describes the hovered tile.
func TileLines(v InfoView) []string {
	t := v.Tile
	kind := t.Type.String()
	switch {
	case t.IsGoal:
		kind = "Goal"
	case t.IsSpawn:
		kind = "Spawn"
	}
	lines := []string{
		fmt.Sprintf("Tile %d,%d: %s", v.Hex.Q, v.Hex.R, kind),
		fmt.Sprintf("On path: %t", t.OnPath),
		fmt.Sprintf("Damage: %d", t.Damage),
	}
	if t.HasTower {
		lines = append(lines, "Tower: yes")
	}
	return lines
}

// InfoPanel выезжает снизу, пока курсор над гексом.
type InfoPanel struct {
	fontFace font.Face
	height   int
	currentY float64
	targetY  float64
}

func NewInfoPanel(face font.Face, height int) *InfoPanel {
	return &InfoPanel{
		fontFace: face,
		height:   height,
		currentY: config.ScreenHeight,
		targetY:  config.ScreenHeight,
	}
}

func (p *InfoPanel) Update(hovering bool) {
	p.targetY = config.ScreenHeight
	if hovering {
		p.targetY = float64(config.ScreenHeight - p.height)
	}
	diff := p.targetY - p.currentY
	switch {
	case math.Abs(diff) < animationSpeed:
		p.currentY = p.targetY
	case diff > 0:
		p.currentY += animationSpeed
	default:
		p.currentY -= animationSpeed
	}
}

// Visible reports whether any part of the panel is on screen.
func (p *InfoPanel) Visible() bool {
	return p.currentY < config.ScreenHeight
}

func (p *InfoPanel) Draw(screen *ebiten.Image, v InfoView) {
	text.Draw(screen, StatusLine(v), p.fontFace, panelMargin*2, config.TimerBarHeight+lineHeight, config.TextLightColor)

	if !p.Visible() {
		return
	}
	rect := image.Rect(
		panelMargin,
		int(p.currentY)+panelMargin,
		config.ScreenWidth-panelMargin,
		int(p.currentY)+p.height-panelMargin,
	)
	bgColor := color.RGBA{R: 25, G: 35, B: 45, A: 230}
	vector.DrawFilledRect(screen, float32(rect.Min.X), float32(rect.Min.Y), float32(rect.Dx()), float32(rect.Dy()), bgColor, true)
	vector.StrokeRect(screen, float32(rect.Min.X), float32(rect.Min.Y), float32(rect.Dx()), float32(rect.Dy()), 2, config.InGameColor, true)

	if !v.Hovering {
		return
	}
	x := rect.Min.X + 15
	y := rect.Min.Y + lineHeight
	for i, line := range TileLines(v) {
		col := x + (i/3)*columnSpacing
		row := y + (i%3)*lineHeight
		text.Draw(screen, line, p.fontFace, col, row, config.TextLightColor)
	}
}
