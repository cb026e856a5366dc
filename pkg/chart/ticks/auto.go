package ticks

import "math"

// MaxTarget caps the requested tick count. Targets come from dividing a pixel
// span by a label size, which explodes when a label measures zero.
const MaxTarget = 1024

// mantissas are the accepted leading factors of a step, ascending.
var mantissas = [...]float64{1, 2, 2.5, 5}

// Auto holds the result of [Generate].
type Auto struct {
	// Values are the tick values in strictly ascending order.
	Values []float64
	// Decimals is the number of fraction digits needed to print every value
	// without redundant trailing zeros.
	Decimals int
	// Step is the distance between consecutive values.
	Step float64
}

// Len returns the number of generated values.
func (a *Auto) Len() int { return len(a.Values) }

// Reset empties the buffer while keeping its capacity.
func (a *Auto) Reset() {
	a.Values = a.Values[:0]
	a.Decimals = 0
	a.Step = 0
}

// Generate fills dst with evenly spaced nice values covering [start, end]:
// the first value is <= start and the last is >= end. target is the desired
// number of intervals; it is clamped to [1, MaxTarget].
//
// A range with start >= end, or with non-finite bounds, produces no values.
func Generate(start, end float64, target int, dst *Auto) {
	dst.Reset()
	span := end - start
	if !(span > 0) || math.IsInf(span, 0) {
		return
	}
	target = min(max(target, 1), MaxTarget)

	step, decimals := niceStep(span / float64(target))
	if !(step > 0) || math.IsInf(step, 0) {
		return
	}

	// Below the float spacing of the bounds, consecutive ticks would collide.
	if step <= ulp(max(math.Abs(start), math.Abs(end))) {
		return
	}

	first := math.Floor(start / step)
	last := math.Ceil(end / step)
	// Division can round onto an integer from the wrong side.
	if first*step > start {
		first--
	}
	if last*step < end {
		last++
	}
	n := int(last-first) + 1
	if n < 2 || n > 4*MaxTarget {
		return
	}

	if cap(dst.Values) < n {
		dst.Values = make([]float64, n)
	}
	dst.Values = dst.Values[:n]
	for i := range dst.Values {
		v := (first + float64(i)) * step
		if v == 0 {
			v = 0 // drop negative zero
		}
		dst.Values[i] = v
	}
	dst.Decimals = decimals
	dst.Step = step
}

// niceStep returns the smallest step m·10^e >= raw with m in mantissas, and
// the number of decimals that step needs.
func niceStep(raw float64) (float64, int) {
	exp := int(math.Floor(math.Log10(raw)))
	mag := math.Pow10(exp)
	// Guard against Log10 rounding putting raw just below 10^exp.
	if raw/mag < 1 {
		exp--
		mag = math.Pow10(exp)
	}
	for _, m := range mantissas {
		if step := m * mag; step >= raw*(1-1e-12) {
			return step, decimalsFor(m, exp)
		}
	}
	return 10 * mag, decimalsFor(1, exp+1)
}

// ulp returns the spacing between x and the next larger float64.
func ulp(x float64) float64 { return math.Nextafter(x, math.Inf(1)) - x }

func decimalsFor(mantissa float64, exp int) int {
	d := -exp
	if mantissa == 2.5 {
		d++
	}
	return max(d, 0)
}
