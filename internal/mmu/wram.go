package mmu

import (
	"github.com/thelolagemann/dmgcore/internal/ram"
)

const wramSize = 0x2000

// WRAM is the 8kB of work RAM found at 0xC000 - 0xDFFF, which
// is mirrored at 0xE000 - 0xFDFF.
type WRAM struct {
	raw *ram.RAM
}

// NewWRAM returns a new, zeroed WRAM.
func NewWRAM() *WRAM {
	return &WRAM{raw: ram.NewRAM(wramSize)}
}

// Read reads from either the work RAM or its mirror.
func (w *WRAM) Read(addr uint16) uint8 {
	return w.raw.Read(addr & (wramSize - 1))
}

// Write writes to either the work RAM or its mirror.
func (w *WRAM) Write(addr uint16, v uint8) {
	w.raw.Write(addr&(wramSize-1), v)
}
