package problemgen

import (
	"math"
	"strconv"
)

// Round2 leaves integers untouched and rounds everything else to 2 decimals.
func Round2(x float64) float64 {
	if isInteger(x) {
		return x
	}
	r := math.Round(x*100) / 100
	if r == 0 {
		return 0 // drop negative zero
	}
	return r
}

// FormatNumber renders x after Round2: "81", "0.5", "-3.25".
func FormatNumber(x float64) string {
	return strconv.FormatFloat(Round2(x), 'f', -1, 64)
}

func isInteger(x float64) bool {
	return !math.IsInf(x, 0) && x == math.Trunc(x)
}

// randInt returns a uniform integer in [lo, hi].
func randInt(r Rand, lo, hi int) int {
	return lo + r.IntN(hi-lo+1)
}

// pick returns a uniform element of items.
func pick[T any](r Rand, items []T) T {
	return items[r.IntN(len(items))]
}
