package render

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	game "go-hex-defense/internal/app"
	"go-hex-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Подписи координат рисуются только на достаточно крупных гексах.
const minLabelHexSize = 22

type HexRenderer struct {
	Camera   *Camera
	colors   MapColors
	fillImg  *ebiten.Image
	fillVs   []ebiten.Vertex
	fillIs   []uint16
	strokeVs []ebiten.Vertex
	strokeIs []uint16
	fontFace font.Face
}

func NewHexRenderer(colors MapColors, camera *Camera) *HexRenderer {
	fillImg := ebiten.NewImage(1, 1)
	fillImg.Fill(color.White)

	return &HexRenderer{
		Camera:   camera,
		colors:   colors,
		fillImg:  fillImg,
		fillVs:   make([]ebiten.Vertex, 0, 18),
		fillIs:   make([]uint16, 0, 18),
		strokeVs: make([]ebiten.Vertex, 0, 36),
		strokeIs: make([]uint16, 0, 36),
		fontFace: basicfont.Face7x13,
	}
}

// Draw renders one snapshot: tiles, overlay, towers, enemies.
func (r *HexRenderer) Draw(screen *ebiten.Image, snap game.Snapshot) {
	screen.Fill(r.colors.BackgroundColor)
	if len(snap.Tiles) == 0 {
		return
	}
	size := snap.HexSize * r.Camera.Zoom

	var cursor *game.TileView
	for i := range snap.Tiles {
		tv := &snap.Tiles[i]
		x, y := r.Camera.ToScreen(tv.Hex.ToPixel(snap.HexSize))
		fill := r.colors.TileColor(tv.Tile)
		r.drawHexFill(screen, x, y, size, fill)
		r.drawHexOutline(screen, x, y, size, lighten(fill), r.colors.StrokeWidth)
		if size >= minLabelHexSize && !tv.HasTower {
			r.drawCentered(screen, fmt.Sprintf("%d,%d", tv.Hex.Q, tv.Hex.R), x, y, r.colors.TextColorFor(fill))
		}
		if tv.IsCursor {
			cursor = tv
		}
	}

	for _, t := range snap.Towers {
		x, y := r.Camera.ToScreen(t.Hex.ToPixel(snap.HexSize))
		c := towerColor(int(t.Type))
		r.drawHexFill(screen, x, y, size*t.Scale, c)
		r.drawHexOutline(screen, x, y, size*t.Scale, config.TowerStrokeColor, r.colors.StrokeWidth)
		r.drawCentered(screen, strings.ToUpper(t.Type.Letter()), x, y, r.colors.TextColorFor(c))
	}

	radius := float32(size * config.EnemyRadiusScale)
	for _, e := range snap.Enemies {
		x, y := r.Camera.ToScreen(e.X, e.Y)
		vector.DrawFilledCircle(screen, float32(x), float32(y), radius, config.EnemyColor, true)
		if e.MaxHealth > 0 && e.Health < e.MaxHealth {
			r.drawHealthBar(screen, x, y, float64(radius), float64(e.Health)/float64(e.MaxHealth))
		}
	}

	if cursor != nil {
		x, y := r.Camera.ToScreen(cursor.Hex.ToPixel(snap.HexSize))
		r.drawHexOutline(screen, x, y, size, r.colors.CursorColor, r.colors.StrokeWidth*2)
	}
}

func hexPath(x, y, size float64) vector.Path {
	path := vector.Path{}
	for i := 0; i < 6; i++ {
		angle := math.Pi/3*float64(i) + math.Pi/6
		px := x + size*math.Cos(angle)
		py := y + size*math.Sin(angle)
		if i == 0 {
			path.MoveTo(float32(px), float32(py))
		} else {
			path.LineTo(float32(px), float32(py))
		}
	}
	path.Close()
	return path
}

func (r *HexRenderer) drawHexFill(target *ebiten.Image, x, y, size float64, fill color.RGBA) {
	path := hexPath(x, y, size)
	r.fillVs, r.fillIs = path.AppendVerticesAndIndicesForFilling(r.fillVs[:0], r.fillIs[:0])
	paintVertices(r.fillVs, fill)
	target.DrawTriangles(r.fillVs, r.fillIs, r.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

func (r *HexRenderer) drawHexOutline(target *ebiten.Image, x, y, size float64, stroke color.RGBA, width float32) {
	path := hexPath(x, y, size)
	r.strokeVs, r.strokeIs = path.AppendVerticesAndIndicesForStroke(r.strokeVs[:0], r.strokeIs[:0], &vector.StrokeOptions{
		Width: width,
	})
	paintVertices(r.strokeVs, stroke)
	target.DrawTriangles(r.strokeVs, r.strokeIs, r.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

func (r *HexRenderer) drawHealthBar(target *ebiten.Image, x, y, radius, frac float64) {
	w := radius * 2
	top := y - radius - 4
	vector.DrawFilledRect(target, float32(x-radius), float32(top), float32(w), 2, DarkenColor(config.DamageHighColor), false)
	vector.DrawFilledRect(target, float32(x-radius), float32(top), float32(w*frac), 2, config.DamageHighColor, false)
}

func (r *HexRenderer) drawCentered(target *ebiten.Image, label string, x, y float64, c color.RGBA) {
	bounds := text.BoundString(r.fontFace, label)
	w := bounds.Max.X - bounds.Min.X
	h := bounds.Max.Y - bounds.Min.Y
	text.Draw(target, label, r.fontFace, int(x)-w/2, int(y)+h/2, c)
}

func paintVertices(vs []ebiten.Vertex, c color.RGBA) {
	for i := range vs {
		vs[i].ColorR = float32(c.R) / 255
		vs[i].ColorG = float32(c.G) / 255
		vs[i].ColorB = float32(c.B) / 255
		vs[i].ColorA = float32(c.A) / 255
	}
}

func towerColor(i int) color.RGBA {
	if i < 0 || i >= len(config.TowerColors) {
		return config.TowerStrokeColor
	}
	return config.TowerColors[i]
}

func lighten(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(min(255, int(c.R)+40)),
		G: uint8(min(255, int(c.G)+40)),
		B: uint8(min(255, int(c.B)+40)),
		A: 255,
	}
}
