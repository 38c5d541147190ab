// pkg/hexmap/hex.go
package hexmap

import (
	"go-hex-defense/pkg/utils"
)

// Hex представляет гекс в осевых координатах (Q, R)
type Hex struct {
	Q, R int
}

// Origin is the centre of every board. The goal always lives here.
var Origin = Hex{}

// Directions lists the six neighbour offsets in rotational order, starting
// from East. Ring walking depends on this order.
var Directions = [6]Hex{
	{Q: 1, R: 0}, {Q: 1, R: -1}, {Q: 0, R: -1},
	{Q: -1, R: 0}, {Q: -1, R: 1}, {Q: 0, R: 1},
}

// ToPixel конвертирует гекс в пиксельные координаты (pointy top ориентация).
// The origin hex maps to (0, 0); screen offsets are the renderer's business.
func (h Hex) ToPixel(hexSize float64) (x, y float64) {
	x = hexSize * (Sqrt3*float64(h.Q) + Sqrt3/2*float64(h.R))
	y = hexSize * (3.0 / 2.0 * float64(h.R))
	return
}

// PixelToHex конвертирует пиксельные координаты в гекс
func PixelToHex(x, y, hexSize float64) Hex {
	q := (Sqrt3/3*x - 1.0/3*y) / hexSize
	r := (2.0 / 3 * y) / hexSize
	return axialRound(q, r)
}

// Neighbor returns the adjacent hex in the given direction (0..5).
func (h Hex) Neighbor(direction int) Hex {
	return h.Add(Directions[((direction%6)+6)%6])
}

// AllPossibleNeighbors возвращает всех возможных соседей гекса
func (h Hex) AllPossibleNeighbors() []Hex {
	neighbors := make([]Hex, 0, 6)
	for _, d := range Directions {
		neighbors = append(neighbors, h.Add(d))
	}
	return neighbors
}

// Add возвращает сумму двух гексов
func (h Hex) Add(other Hex) Hex {
	return Hex{
		Q: h.Q + other.Q,
		R: h.R + other.R,
	}
}

// Subtract возвращает разность двух гексов
func (h Hex) Subtract(other Hex) Hex {
	return Hex{
		Q: h.Q - other.Q,
		R: h.R - other.R,
	}
}

// Scale multiplies a hex vector by a scalar.
func (h Hex) Scale(factor int) Hex {
	return Hex{h.Q * factor, h.R * factor}
}

// Distance вычисляет расстояние между гексами
func (h Hex) Distance(to Hex) int {
	dq := h.Q - to.Q
	dr := h.R - to.R
	return (utils.Abs(dq) + utils.Abs(dr) + utils.Abs(dq+dr)) / 2
}

// Ring returns the hexes at exactly radius steps from center. The walk starts
// at center + Directions[4]*radius and turns through directions 0..5, so the
// hexes of edge i are ring[i*radius : (i+1)*radius].
func Ring(center Hex, radius int) []Hex {
	if radius <= 0 {
		return []Hex{center}
	}
	results := make([]Hex, 0, 6*radius)
	hex := center.Add(Directions[4].Scale(radius))
	for i := 0; i < 6; i++ {
		for j := 0; j < radius; j++ {
			results = append(results, hex)
			hex = hex.Neighbor(i)
		}
	}
	return results
}

// Spiral returns center followed by rings 1..radius.
func Spiral(center Hex, radius int) []Hex {
	results := []Hex{center}
	for k := 1; k <= radius; k++ {
		results = append(results, Ring(center, k)...)
	}
	return results
}

// SpiralLen is the number of hexes in a spiral of the given radius.
func SpiralLen(radius int) int {
	if radius < 0 {
		return 0
	}
	return 1 + 3*radius*(radius+1)
}
