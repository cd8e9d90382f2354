package layout

import "math"

// undefined marks an unknown length. NaN propagates through arithmetic,
// so sums involving an unknown length stay unknown.
var undefined = math.NaN()

func isDefined(v float64) bool {
	return !math.IsNaN(v)
}

// orElse returns v, or fallback when v is undefined.
func orElse(v, fallback float64) float64 {
	if isDefined(v) {
		return v
	}
	return fallback
}

// maybeMin returns min(v, limit), ignoring an undefined limit.
// An undefined v stays undefined.
func maybeMin(v, limit float64) float64 {
	if !isDefined(v) || !isDefined(limit) {
		return v
	}
	return math.Min(v, limit)
}

// maybeMax returns max(v, limit), ignoring an undefined limit.
func maybeMax(v, limit float64) float64 {
	if !isDefined(v) || !isDefined(limit) {
		return v
	}
	return math.Max(v, limit)
}

// maybeClamp clamps v into [lo, hi]. If lo > hi, lo wins (matches CSS).
func maybeClamp(v, lo, hi float64) float64 {
	return maybeMax(maybeMin(v, hi), lo)
}

// maybeSub subtracts an optional amount from v.
func maybeSub(v, amount float64) float64 {
	if !isDefined(amount) {
		return v
	}
	return v - amount
}

// maybeAdd adds an optional amount to v.
func maybeAdd(v, amount float64) float64 {
	if !isDefined(amount) {
		return v
	}
	return v + amount
}

// sameLength compares two optional lengths; undefined equals undefined.
func sameLength(a, b float64) bool {
	if !isDefined(a) || !isDefined(b) {
		return !isDefined(a) && !isDefined(b)
	}
	return a == b
}

// clamp restricts v to the range [minVal, maxVal].
// If minVal > maxVal, minVal wins (matches CSS behavior).
func clamp(v, minVal, maxVal float64) float64 {
	if v < minVal {
		return minVal
	}
	if maxVal >= minVal && v > maxVal {
		return maxVal
	}
	return v
}
