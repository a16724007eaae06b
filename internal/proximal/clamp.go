package proximal

import "github.com/golang/geo/r1"

// Clamp returns v limited to [lo, hi]. lo must not exceed hi.
func Clamp(v, lo, hi float64) float64 {
	return r1.Interval{Lo: lo, Hi: hi}.ClampPoint(v)
}

// ClampPair clamps v0 and v1 independently into [lo, hi].
func ClampPair(v0, v1, lo, hi float64) (float64, float64) {
	iv := r1.Interval{Lo: lo, Hi: hi}
	return iv.ClampPoint(v0), iv.ClampPoint(v1)
}
