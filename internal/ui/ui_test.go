package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-hex-defense/internal/component"
	"go-hex-defense/internal/config"
	"go-hex-defense/pkg/hexmap"
)

func TestPhaseColor(t *testing.T) {
	assert.Equal(t, config.InGameColor, PhaseColor(component.InGame))
	assert.Equal(t, config.PauseColor, PhaseColor(component.Pause))
	assert.Equal(t, config.GameOverColor, PhaseColor(component.GameOver))
}

func TestClickTargets(t *testing.T) {
	ind := NewStateIndicator(30, 30, 10)
	assert.True(t, ind.IsClicked(35, 35))
	assert.False(t, ind.IsClicked(45, 30))

	btn := NewPauseButton(100, 30, 12, config.PauseColor, config.InGameColor)
	assert.True(t, btn.IsClicked(110, 30))
	assert.False(t, btn.IsClicked(130, 30))
}

func TestTimerBarFilledWidth(t *testing.T) {
	bar := NewTimerBar(200, 6, config.TimerBarColor)
	assert.Equal(t, float32(0), bar.FilledWidth(-1))
	assert.Equal(t, float32(50), bar.FilledWidth(0.25))
	assert.Equal(t, float32(200), bar.FilledWidth(3))
}

func TestTileLines(t *testing.T) {
	v := InfoView{
		Hex:  hexmap.Hex{Q: 2, R: -1},
		Tile: hexmap.Tile{OnPath: true, Damage: 4, HasTower: false},
	}
	assert.Equal(t, []string{"Tile 2,-1: Plain", "On path: true", "Damage: 4"}, TileLines(v))

	v.Tile = hexmap.Tile{IsGoal: true}
	assert.Equal(t, "Tile 2,-1: Goal", TileLines(v)[0])

	v.Tile = hexmap.Tile{Type: hexmap.Mountain, HasTower: true}
	lines := TileLines(v)
	assert.Equal(t, "Tile 2,-1: Mountain", lines[0])
	assert.Equal(t, "Tower: yes", lines[3])
}

func TestStatusLine(t *testing.T) {
	v := InfoView{
		Budget:    12,
		Score:     component.ScoreBoard{Player: 30, Enemy: 5},
		Selected:  component.Medium,
		Phase:     component.InGame,
		Remaining: 41.2,
	}
	assert.Equal(t, "Budget: 12   Score: 30 / 5   Tower: Medium   InGame   42s", StatusLine(v))
}

func TestInfoPanelSlides(t *testing.T) {
	p := NewInfoPanel(nil, config.InfoPanelHeight)
	assert.False(t, p.Visible())
	p.Update(true)
	assert.True(t, p.Visible())
	for i := 0; i < 100; i++ {
		p.Update(false)
	}
	assert.False(t, p.Visible())
}
