// internal/ui/timer_bar.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// TimerBar — полоса «время до конца матча» вдоль верхнего края экрана.
type TimerBar struct {
	Width  float32
	Height float32
	Color  color.RGBA
}

func NewTimerBar(width, height float32, c color.RGBA) *TimerBar {
	return &TimerBar{Width: width, Height: height, Color: c}
}

// FilledWidth is the bar length for a match progress in [0, 1].
func (b *TimerBar) FilledWidth(progress float64) float32 {
	if progress < 0 {
		progress = 0
	}
	if progress > 1 {
		progress = 1
	}
	return b.Width * float32(progress)
}

func (b *TimerBar) Draw(screen *ebiten.Image, progress float64) {
	w := b.FilledWidth(progress)
	if w <= 0 {
		return
	}
	vector.DrawFilledRect(screen, 0, 0, w, b.Height, b.Color, false)
}
