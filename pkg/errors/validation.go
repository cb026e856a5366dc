package errors

import (
	"math"
	"strings"
	"unicode"
)

// ValidateViewport checks that a data-space range is finite and non-empty on
// both axes: left < right and bottom < top.
func ValidateViewport(name string, left, top, right, bottom float64) error {
	for _, v := range []float64{left, top, right, bottom} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return New(ErrCodeInvalidViewport, "%s viewport has non-finite bounds", name)
		}
	}
	if left >= right {
		return New(ErrCodeInvalidViewport, "%s viewport: left (%g) must be less than right (%g)", name, left, right)
	}
	if bottom >= top {
		return New(ErrCodeInvalidViewport, "%s viewport: bottom (%g) must be less than top (%g)", name, bottom, top)
	}
	return nil
}

// ValidateFormat checks that format is one of the supported output formats.
func ValidateFormat(format string, supported []string) error {
	for _, s := range supported {
		if format == s {
			return nil
		}
	}
	return New(ErrCodeInvalidFormat, "invalid format: %s (must be one of %s)", format, strings.Join(supported, ", "))
}

// ValidateColor checks that s looks like a "#rrggbb" hex color.
// Empty strings are accepted and mean "use the default".
func ValidateColor(s string) error {
	if s == "" {
		return nil
	}
	if len(s) != 7 || s[0] != '#' {
		return New(ErrCodeInvalidColor, "color must be #rrggbb, got %q", s)
	}
	for _, r := range s[1:] {
		if !unicode.Is(unicode.ASCII_Hex_Digit, r) {
			return New(ErrCodeInvalidColor, "color must be #rrggbb, got %q", s)
		}
	}
	return nil
}

// ValidatePath validates an output or input file path.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}
	return nil
}
