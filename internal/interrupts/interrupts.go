// Package interrupts implements the interrupt controller of the Game
// Boy: the enable (types.IE) and request (types.IF) registers, and the
// priority encoder the CPU uses to pick the interrupt to service.
package interrupts

import (
	"fmt"

	"github.com/thelolagemann/dmgcore/internal/types"
)

// Source is one of the five interrupt sources. Its value is the
// bit it occupies in the IE and IF registers, which also defines
// its priority: the lower the bit, the higher the priority.
type Source uint8

const (
	// VBlank is requested every time the PPU enters VBlank mode.
	VBlank Source = types.Bit0
	// LCDStat is requested by the LCD STAT register (types.STAT),
	// when one of its selected conditions is met.
	LCDStat Source = types.Bit1
	// Timer is requested when the timer overflows.
	Timer Source = types.Bit2
	// Serial is requested when a serial transfer is completed.
	Serial Source = types.Bit3
	// Joypad is requested when any of types.P1 bits 0-3 go from
	// high to low.
	Joypad Source = types.Bit4
)

// mask covers the five significant bits of IE and IF.
const mask = 0x1F

// Vector returns the address the CPU jumps to when servicing the
// interrupt.
func (s Source) Vector() uint16 {
	switch s {
	case VBlank:
		return 0x0040
	case LCDStat:
		return 0x0048
	case Timer:
		return 0x0050
	case Serial:
		return 0x0058
	case Joypad:
		return 0x0060
	}
	panic(fmt.Sprintf("interrupts: invalid source %08b", uint8(s)))
}

func (s Source) String() string {
	switch s {
	case VBlank:
		return "VBlank"
	case LCDStat:
		return "LCDStat"
	case Timer:
		return "Timer"
	case Serial:
		return "Serial"
	case Joypad:
		return "Joypad"
	}
	return fmt.Sprintf("Source(%08b)", uint8(s))
}

// Service is the interrupt service, used to request
// interrupts and to acknowledge the pending one.
//
// When an interrupt is requested, the corresponding bit
// in the Flag register is set. When an interrupt is
// enabled, the corresponding bit in the Enable register
// is set. An interrupt is pending when it is both requested
// and enabled; whether it is serviced is up to the CPU and
// its interrupt master enable.
type Service struct {
	flag   uint8 // interrupt Flag (types.IF)
	enable uint8 // interrupt Enable (types.IE), all 8 bits are stored
}

// NewService returns a new Service with no interrupts
// requested or enabled.
func NewService() *Service {
	return &Service{}
}

// Request requests the specified interrupt, by setting
// the corresponding bit in the Flag register.
func (s *Service) Request(source Source) {
	s.flag |= uint8(source) & mask
}

// HasInterrupts returns true if there are any interrupts
// that are requested and enabled.
func (s *Service) HasInterrupts() bool {
	return s.enable&s.flag != 0
}

// Acknowledge clears the highest priority pending interrupt
// and returns it. If no interrupt is pending, false is
// returned and neither register is modified.
func (s *Service) Acknowledge() (Source, bool) {
	pending := s.enable & s.flag
	if pending == 0 {
		return 0, false
	}

	// isolate the lowest set bit
	lowest := pending & -pending
	s.flag &^= lowest

	return Source(lowest), true
}

// Flag returns the 5 significant bits of the Flag register.
func (s *Service) Flag() uint8 {
	return s.flag
}

// SetFlag replaces the Flag register.
func (s *Service) SetFlag(v uint8) {
	s.flag = v & mask
}

// Enable returns the 5 significant bits of the Enable register.
func (s *Service) Enable() uint8 {
	return s.enable & mask
}

// SetEnable replaces the Enable register.
func (s *Service) SetEnable(v uint8) {
	s.enable = v & mask
}

// ReadFlag is the bus view of types.IF: the upper 3 bits are
// unused and always read as set.
func (s *Service) ReadFlag(uint16) uint8 {
	return s.flag | 0xE0
}

// WriteFlag is the bus view of types.IF.
func (s *Service) WriteFlag(_ uint16, v uint8) {
	s.SetFlag(v)
}

// ReadEnable is the bus view of types.IE. Unlike types.IF, all 8
// bits are readable and writable, the upper 3 just select nothing.
func (s *Service) ReadEnable(uint16) uint8 {
	return s.enable
}

// WriteEnable is the bus view of types.IE.
func (s *Service) WriteEnable(_ uint16, v uint8) {
	s.enable = v
}
