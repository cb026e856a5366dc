package axis

import (
	"strconv"
	"unicode/utf8"
)

// LabelBufferSize is the size of the buffer labels are formatted into.
const LabelBufferSize = 32

// Formatter writes tick labels right-aligned into buf and returns the number
// of bytes used; the label is buf[len(buf)-n:]. Implementations must not
// retain buf.
type Formatter interface {
	// FormatAuto formats a generated tick. decimals is the precision the tick
	// generator reports for the current step.
	FormatAuto(buf []byte, value float64, decimals int) int
	// FormatValue formats an explicit tick.
	FormatValue(buf []byte, v Value) int
}

var defaultFormatter Formatter = SimpleFormatter{DecimalDigits: -1}

// SimpleFormatter prints numbers in fixed-point notation with optional text
// around them.
type SimpleFormatter struct {
	// DecimalDigits fixes the number of fraction digits. Negative means use
	// the generator's hint for auto ticks and zero for explicit ticks.
	DecimalDigits int
	// Prepended and Appended surround the number, e.g. "$" or " ms".
	Prepended, Appended string
	// DecimalSeparator replaces '.', zero keeps '.'.
	DecimalSeparator byte
}

// FormatAuto implements Formatter.
func (f SimpleFormatter) FormatAuto(buf []byte, value float64, decimals int) int {
	return f.format(buf, value, f.digits(decimals))
}

// FormatValue implements Formatter. An explicit label is copied verbatim.
func (f SimpleFormatter) FormatValue(buf []byte, v Value) int {
	if v.Label != "" {
		return rightAlign(buf, []byte(v.Label))
	}
	return f.format(buf, v.Value, f.digits(0))
}

func (f SimpleFormatter) digits(fallback int) int {
	if f.DecimalDigits < 0 {
		return fallback
	}
	return f.DecimalDigits
}

func (f SimpleFormatter) format(buf []byte, value float64, digits int) int {
	var scratch [2 * LabelBufferSize]byte
	out := append(scratch[:0], f.Prepended...)
	start := len(out)
	out = strconv.AppendFloat(out, value, 'f', digits, 64)
	if f.DecimalSeparator != 0 && f.DecimalSeparator != '.' {
		for i := start; i < len(out); i++ {
			if out[i] == '.' {
				out[i] = f.DecimalSeparator
			}
		}
	}
	if isNegativeZero(out[start:]) {
		out = append(out[:start], out[start+1:]...)
	}
	out = append(out, f.Appended...)
	return rightAlign(buf, out)
}

// isNegativeZero reports whether s is "-0", "-0.00" or similar, which
// rounding tiny negative values produces.
func isNegativeZero(s []byte) bool {
	if len(s) < 2 || s[0] != '-' {
		return false
	}
	for _, c := range s[1:] {
		if c >= '1' && c <= '9' {
			return false
		}
	}
	return true
}

// rightAlign copies src to the end of buf. When src does not fit, its
// trailing len(buf) bytes are kept, minus any partial rune at the cut.
func rightAlign(buf, src []byte) int {
	if len(src) > len(buf) {
		src = src[len(src)-len(buf):]
		for len(src) > 0 && !utf8.RuneStart(src[0]) {
			src = src[1:]
		}
	}
	return copy(buf[len(buf)-len(src):], src)
}

// Label formats an explicit tick into a new string. It is a
// convenience for callers outside the draw loop.
func Label(f Formatter, v Value) string {
	var buf [LabelBufferSize]byte
	n := f.FormatValue(buf[:], v)
	return string(buf[LabelBufferSize-n:])
}

// AutoLabel formats a generated tick into a new string.
func AutoLabel(f Formatter, value float64, decimals int) string {
	var buf [LabelBufferSize]byte
	n := f.FormatAuto(buf[:], value, decimals)
	return string(buf[LabelBufferSize-n:])
}
