// Package ppu implements the timing of the Game Boy's (P)ixel (P)rocessing
// (U)nit. The PPU walks every scanline through the OAM scan, pixel transfer
// and HBlank modes, followed by 10 lines of VBlank, advancing one machine
// cycle per call to Tick. It owns the video RAM and object attribute memory
// and serves the LCD registers.
//
// References:
//   - [Pan Docs](https://gbdev.io/pandocs/Graphics.html)
//   - [Hacktix GBEDG](https://hacktix.github.io/GBEDG/ppu/)
package ppu

import (
	"fmt"

	"github.com/thelolagemann/dmgcore/internal/interrupts"
	"github.com/thelolagemann/dmgcore/internal/ppu/palette"
	"github.com/thelolagemann/dmgcore/internal/ram"
	"github.com/thelolagemann/dmgcore/internal/types"
)

// ScreenHeight is the number of visible scanlines. VBlank starts
// when LY reaches it.
const ScreenHeight = 144

// Mode is the mode of the PPU, as reported in bits 0-1 of types.STAT.
type Mode uint8

const (
	// HBlank (Mode 0) - Horizontal Blanking Period
	//
	//	Duration: 51 cycles
	//	- Allows CPU access to VRAM/OAM
	//	- STAT interrupt available if enabled via STAT.3
	HBlank Mode = iota
	// VBlank (Mode 1) - Vertical Blanking Period
	//
	//	Duration: 114 cycles per line, 10 lines
	//	- VBlank interrupt requested on entry
	//	- STAT interrupt available if enabled via STAT.4
	//	- Active during LY 144-153
	VBlank
	// ReadOAM (Mode 2) - OAM Scan
	//
	//	Duration: 20 cycles
	//	- STAT interrupt available if enabled via STAT.5
	//	- Occurs at start of each visible line
	ReadOAM
	// ReadVRAM (Mode 3) - Pixel Transfer
	//
	//	Duration: 43 cycles
	//	- No STAT interrupts available
	ReadVRAM
)

func (m Mode) String() string {
	switch m {
	case HBlank:
		return "HBlank"
	case VBlank:
		return "VBlank"
	case ReadOAM:
		return "ReadOAM"
	case ReadVRAM:
		return "ReadVRAM"
	}
	return fmt.Sprintf("Mode(%d)", uint8(m))
}

// Mode durations, in machine cycles.
const (
	OAMCycles    = 20
	VRAMCycles   = 43
	HBlankCycles = 51
	// LineCycles is the duration of every scanline, visible or not.
	LineCycles = OAMCycles + VRAMCycles + HBlankCycles

	// LastLine is the last scanline of VBlank.
	LastLine = 153
)

const (
	vramSize = 0x2000
	oamSize  = 0xA0
)

// Requester is used by the PPU to request interrupts.
type Requester interface {
	Request(source interrupts.Source)
}

// PPU implements the timing state machine of the Game Boy's
// (P)ixel (P)rocessing (U)nit.
type PPU struct {
	// LCDC register
	Controller

	// Rendering state
	mode   Mode  // current mode, reported to STAT
	cycles int   // cycles spent in the current mode (or VBlank line)
	ly     uint8 // current line (0-153)

	// LY comparison & STAT interrupt selection
	lyCompare  uint8
	statSelect uint8 // STAT bits 3-6

	// Scroll registers
	scy, scx uint8 // background viewport position
	wy, wx   uint8 // window position

	// Palettes
	BGP  palette.Palette
	OBP0 palette.Palette
	OBP1 palette.Palette

	vram *ram.RAM
	oam  *ram.RAM

	irq Requester
}

// New creates a PPU in the state the DMG boot ROM leaves it in: LCD
// and background enabled, at the start of line 0.
func New(irq Requester) *PPU {
	p := &PPU{
		mode: ReadOAM,
		vram: ram.NewRAM(vramSize),
		oam:  ram.NewRAM(oamSize),
		irq:  irq,
	}
	p.Controller.Write(0x91)
	p.BGP = palette.ByteToPalette(0xFC)
	p.OBP0 = palette.ByteToPalette(0xFF)
	p.OBP1 = palette.ByteToPalette(0xFF)

	return p
}

// Tick advances the PPU by one machine cycle. When the LCD is
// disabled, the PPU is frozen and Tick does nothing.
func (p *PPU) Tick() {
	if !p.Enabled {
		return
	}

	p.cycles++
	switch p.mode {
	case ReadOAM:
		if p.cycles >= OAMCycles {
			p.cycles -= OAMCycles
			p.setMode(ReadVRAM)
		}
	case ReadVRAM:
		if p.cycles >= VRAMCycles {
			p.cycles -= VRAMCycles
			p.setMode(HBlank)
		}
	case HBlank:
		if p.cycles >= HBlankCycles {
			p.cycles -= HBlankCycles
			p.setLY(p.ly + 1)

			if p.ly == ScreenHeight {
				p.setMode(VBlank)
				p.irq.Request(interrupts.VBlank)
			} else {
				p.setMode(ReadOAM)
			}
		}
	case VBlank:
		if p.cycles >= LineCycles {
			p.cycles -= LineCycles
			if p.ly+1 > LastLine {
				p.setLY(0)
				p.setMode(ReadOAM)
			} else {
				p.setLY(p.ly + 1)
			}
		}
	}
}

// setMode transitions to the given mode, requesting a STAT interrupt
// if the mode is selected as a source in types.STAT.
func (p *PPU) setMode(mode Mode) {
	p.mode = mode

	var source uint8
	switch mode {
	case HBlank:
		source = types.Bit3
	case VBlank:
		source = types.Bit4
	case ReadOAM:
		source = types.Bit5
	}
	if p.statSelect&source != 0 {
		p.irq.Request(interrupts.LCDStat)
	}
}

// setLY updates the current line, requesting a STAT interrupt on a
// LY=LYC coincidence if selected in types.STAT.
func (p *PPU) setLY(ly uint8) {
	p.ly = ly
	if p.ly == p.lyCompare && p.statSelect&types.Bit6 != 0 {
		p.irq.Request(interrupts.LCDStat)
	}
}

// Mode returns the current mode.
func (p *PPU) Mode() Mode {
	return p.mode
}

// LY returns the current scanline.
func (p *PPU) LY() uint8 {
	return p.ly
}

// Cycles returns the number of cycles spent in the current mode.
func (p *PPU) Cycles() int {
	return p.cycles
}

// ReadVRAM reads from the video RAM (0x8000 - 0x9FFF).
func (p *PPU) ReadVRAM(address uint16) uint8 {
	return p.vram.Read(address - types.VRAMStart)
}

// WriteVRAM writes to the video RAM (0x8000 - 0x9FFF).
func (p *PPU) WriteVRAM(address uint16, value uint8) {
	p.vram.Write(address-types.VRAMStart, value)
}

// ReadOAM reads from the object attribute memory (0xFE00 - 0xFE9F).
func (p *PPU) ReadOAM(address uint16) uint8 {
	return p.oam.Read(address - types.OAMStart)
}

// WriteOAM writes to the object attribute memory (0xFE00 - 0xFE9F).
func (p *PPU) WriteOAM(address uint16, value uint8) {
	p.oam.Write(address-types.OAMStart, value)
}

// Read returns the value of one of the LCD registers.
func (p *PPU) Read(address uint16) uint8 {
	switch address {
	case types.LCDC:
		return p.Controller.Read()
	case types.STAT:
		return p.status()
	case types.SCY:
		return p.scy
	case types.SCX:
		return p.scx
	case types.LY:
		return p.ly
	case types.LYC:
		return p.lyCompare
	case types.BGP:
		return p.BGP.Raw()
	case types.OBP0:
		return p.OBP0.Raw()
	case types.OBP1:
		return p.OBP1.Raw()
	case types.WY:
		return p.wy
	case types.WX:
		return p.wx
	}

	panic(fmt.Sprintf("ppu: invalid read from address 0x%04X", address))
}

// Write writes to one of the LCD registers.
func (p *PPU) Write(address uint16, value uint8) {
	switch address {
	case types.LCDC:
		p.Controller.Write(value)
	case types.STAT:
		// only the interrupt selection is writable
		p.statSelect = value & 0x78
	case types.SCY:
		p.scy = value
	case types.SCX:
		p.scx = value
	case types.LY:
		// LY is read only, writing resets the line counter
		p.ly = 0
	case types.LYC:
		p.lyCompare = value
	case types.BGP:
		p.BGP = palette.ByteToPalette(value)
	case types.OBP0:
		p.OBP0 = palette.ByteToPalette(value)
	case types.OBP1:
		p.OBP1 = palette.ByteToPalette(value)
	case types.WY:
		p.wy = value
	case types.WX:
		p.wx = value
	default:
		panic(fmt.Sprintf("ppu: invalid write to address 0x%04X", address))
	}
}

// status assembles the STAT register: bit 7 is unused and reads
// as set.
func (p *PPU) status() uint8 {
	stat := types.Bit7 | p.statSelect | uint8(p.mode)
	if p.ly == p.lyCompare {
		stat |= types.Bit2
	}
	return stat
}
