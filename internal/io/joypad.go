package io

import "github.com/thelolagemann/dmgcore/internal/types"

// Joypad is a stub of the joypad register (types.P1). The select
// lines (bits 4-5) can be written, but no button is ever reported
// as pressed.
type Joypad struct {
	selected uint8
}

// NewJoypad returns a new Joypad with neither button group selected.
func NewJoypad() *Joypad {
	return &Joypad{selected: types.Bit4 | types.Bit5}
}

// Read returns the value of types.P1. Bits 6-7 are unused and the
// button lines (bits 0-3) are pulled high, meaning released.
func (j *Joypad) Read(uint16) uint8 {
	return 0xC0 | j.selected | 0x0F
}

// Write updates the select lines of types.P1.
func (j *Joypad) Write(_ uint16, value uint8) {
	j.selected = value & (types.Bit4 | types.Bit5)
}
