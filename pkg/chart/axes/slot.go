package axes

import (
	"strings"

	"github.com/matzehuels/chartaxes/pkg/chart/axis"
	"github.com/matzehuels/chartaxes/pkg/errors"
)

// Slot is one of the four axis positions.
type Slot int

const (
	Top Slot = iota
	Left
	Right
	Bottom

	slotCount = 4
)

var slotNames = [slotCount]string{"top", "left", "right", "bottom"}

// Slots lists every slot in draw order.
var Slots = [slotCount]Slot{Left, Right, Bottom, Top}

// layoutOrder is the order margins are committed in. Each slot only touches
// its own edge, so the order does not change the result.
var layoutOrder = [slotCount]Slot{Top, Bottom, Left, Right}

// Valid reports whether s names one of the four slots.
func (s Slot) Valid() bool { return s >= Top && s <= Bottom }

func (s Slot) String() string {
	if !s.Valid() {
		return "invalid"
	}
	return slotNames[s]
}

// Horizontal reports whether the axis runs along the X direction (top and
// bottom slots).
func (s Slot) Horizontal() bool {
	s.mustBeValid()
	return s == Top || s == Bottom
}

// mustBeValid panics on an out-of-range slot. An invalid slot is a programming
// error, never user input.
func (s Slot) mustBeValid() {
	if !s.Valid() {
		errors.Contract(errors.ErrCodeInvalidSlot, "invalid axis slot: %d", int(s))
	}
}

// ParseSlot converts a slot name such as "bottom" into a Slot.
func ParseSlot(name string) (Slot, error) {
	for i, n := range slotNames {
		if strings.EqualFold(name, n) {
			return Slot(i), nil
		}
	}
	return 0, errors.New(errors.ErrCodeInvalidSlot, "unknown axis slot %q (must be top, left, right or bottom)", name)
}

// AxisProvider supplies the axis configured for each slot; nil means the slot
// is empty. Chart data models implement it.
type AxisProvider interface {
	Axis(s Slot) *axis.Axis
}

// Set is the simplest AxisProvider: one optional axis per slot.
type Set struct {
	Top, Left, Right, Bottom *axis.Axis
}

// Axis implements AxisProvider.
func (s *Set) Axis(slot Slot) *axis.Axis {
	switch slot {
	case Top:
		return s.Top
	case Left:
		return s.Left
	case Right:
		return s.Right
	case Bottom:
		return s.Bottom
	}
	slot.mustBeValid()
	return nil
}

// SetAxis replaces the axis of one slot.
func (s *Set) SetAxis(slot Slot, a *axis.Axis) {
	switch slot {
	case Top:
		s.Top = a
	case Left:
		s.Left = a
	case Right:
		s.Right = a
	case Bottom:
		s.Bottom = a
	default:
		slot.mustBeValid()
	}
}
