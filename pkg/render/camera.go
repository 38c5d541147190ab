// pkg/render/camera.go
package render

import (
	"go-hex-defense/internal/utils"
	"go-hex-defense/pkg/hexmap"
)

// Camera maps world coordinates (origin hex at 0,0) to screen pixels.
type Camera struct {
	Zoom         float64
	OffsetX      float64
	OffsetY      float64
	ScreenWidth  int
	ScreenHeight int
	MinZoom      float64
	MaxZoom      float64
}

func NewCamera(screenWidth, screenHeight int, minZoom, maxZoom float64) *Camera {
	return &Camera{
		Zoom:         1,
		ScreenWidth:  screenWidth,
		ScreenHeight: screenHeight,
		MinZoom:      minZoom,
		MaxZoom:      maxZoom,
	}
}

// ToScreen переводит мировые координаты в экранные.
func (c *Camera) ToScreen(x, y float64) (float64, float64) {
	return x*c.Zoom + float64(c.ScreenWidth)/2 + c.OffsetX,
		y*c.Zoom + float64(c.ScreenHeight)/2 + c.OffsetY
}

// ToWorld is the inverse of ToScreen.
func (c *Camera) ToWorld(sx, sy float64) (float64, float64) {
	return (sx - float64(c.ScreenWidth)/2 - c.OffsetX) / c.Zoom,
		(sy - float64(c.ScreenHeight)/2 - c.OffsetY) / c.Zoom
}

// HexAt returns the hex under a screen position.
func (c *Camera) HexAt(sx, sy, hexSize float64) hexmap.Hex {
	x, y := c.ToWorld(sx, sy)
	return hexmap.PixelToHex(x, y, hexSize)
}

// ZoomBy applies a mouse wheel step, keeping the world point under the
// cursor fixed on screen.
func (c *Camera) ZoomBy(wheel, speed, sx, sy float64) {
	if wheel == 0 {
		return
	}
	wx, wy := c.ToWorld(sx, sy)
	c.Zoom = utils.ClampZoom(c.Zoom, wheel, speed, c.MinZoom, c.MaxZoom)
	nx, ny := c.ToScreen(wx, wy)
	c.OffsetX += sx - nx
	c.OffsetY += sy - ny
}

// Pan shifts the view by a screen-space delta.
func (c *Camera) Pan(dx, dy float64) {
	c.OffsetX += dx
	c.OffsetY += dy
}

// FitRadius picks the zoom at which a board of the given radius fills the
// shorter screen side.
func (c *Camera) FitRadius(radius int, hexSize float64) {
	extent := hexSize * (1.5*float64(radius) + 1) * 2
	short := float64(c.ScreenWidth)
	if h := float64(c.ScreenHeight); h < short {
		short = h
	}
	zoom := short / extent
	if zoom < c.MinZoom {
		zoom = c.MinZoom
	}
	if zoom > c.MaxZoom {
		zoom = c.MaxZoom
	}
	c.Zoom = zoom
	c.OffsetX, c.OffsetY = 0, 0
}
