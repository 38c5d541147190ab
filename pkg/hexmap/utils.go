// pkg/hexmap/utils.go
package hexmap

import "math"

// Sqrt3 — √3, шаг сетки в pointy-top раскладке
const Sqrt3 = 1.7320508075688772

// axialRound rounds fractional axial coordinates to the nearest hex. The cube
// component with the largest rounding error is rebuilt from the other two.
func axialRound(q, r float64) Hex {
	s := -q - r
	rq, rr, rs := math.Round(q), math.Round(r), math.Round(s)
	dq, dr, ds := math.Abs(rq-q), math.Abs(rr-r), math.Abs(rs-s)
	switch {
	case dq > dr && dq > ds:
		rq = -rr - rs
	case dr >= ds:
		rr = -rq - rs
	}
	return Hex{Q: int(rq), R: int(rr)}
}
