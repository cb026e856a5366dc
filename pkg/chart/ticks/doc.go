// Package ticks generates "nice" tick values for an arbitrary numeric range.
//
// [Generate] picks a step of the form m·10^e with m in {1, 2, 2.5, 5} so that
// roughly the requested number of ticks covers the range, then writes the
// ticks into a caller-owned [Auto] buffer. The buffer is reused across calls
// and only reallocated when it is too small, which keeps interactive pan and
// zoom free of per-frame allocations.
//
//	var buf ticks.Auto
//	ticks.Generate(0, 100, 5, &buf)
//	// buf.Values == [0 20 40 60 80 100], buf.Decimals == 0
package ticks
