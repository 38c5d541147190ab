// internal/utils/math.go
package utils

import "math"

// ClampZoom ограничивает масштаб, шаг колеса применяется в логарифмической шкале.
func ClampZoom(zoom, wheel, speed, minZoom, maxZoom float64) float64 {
	z := math.Log(zoom) + wheel*speed*0.1
	z = math.Max(math.Log(minZoom), math.Min(math.Log(maxZoom), z))
	return math.Exp(z)
}
