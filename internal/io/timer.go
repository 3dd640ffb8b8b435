package io

import "github.com/thelolagemann/dmgcore/internal/types"

// Timer holds the timer registers (types.DIV - types.TAC). The
// registers behave as storage only: the timer is not clocked, so
// TIMA never overflows and the timer interrupt is never requested.
type Timer struct {
	div     uint8
	counter uint8 // TIMA
	modulo  uint8 // TMA
	control uint8 // TAC
}

// NewTimer returns a new Timer.
func NewTimer() *Timer {
	return &Timer{}
}

// Enabled reports whether TAC bit 2 is set.
func (t *Timer) Enabled() bool {
	return t.control&types.Bit2 != 0
}

// Read returns the value of one of the timer registers.
func (t *Timer) Read(address uint16) uint8 {
	switch address {
	case types.DIV:
		return t.div
	case types.TIMA:
		return t.counter
	case types.TMA:
		return t.modulo
	default:
		// only the lower 3 bits of TAC are used
		return t.control | 0xF8
	}
}

// Write writes to one of the timer registers.
func (t *Timer) Write(address uint16, value uint8) {
	switch address {
	case types.DIV:
		// any write resets DIV
		t.div = 0
	case types.TIMA:
		t.counter = value
	case types.TMA:
		t.modulo = value
	default:
		t.control = value & 0x07
	}
}
