package io

import (
	io2 "io"

	"github.com/thelolagemann/dmgcore/internal/interrupts"
	"github.com/thelolagemann/dmgcore/internal/types"
	"github.com/thelolagemann/dmgcore/pkg/log"
)

// Serial is a stub of the serial port (types.SB, types.SC). No
// device is ever attached: a transfer started with the internal
// clock completes immediately, shifting in 0xFF, and the outgoing
// byte is handed to the output writer (if any). Test ROMs use this
// to report their results.
type Serial struct {
	data    uint8
	control uint8

	out io2.Writer
	irq *interrupts.Service
	log log.Logger
}

// NewSerial returns a new Serial port that requests its interrupts
// through irq. Failures of the output writer are reported to l.
func NewSerial(irq *interrupts.Service, l log.Logger) *Serial {
	return &Serial{irq: irq, log: l}
}

// SetOutput sets the writer that receives transferred bytes.
func (s *Serial) SetOutput(w io2.Writer) {
	s.out = w
}

// Read returns the value of types.SB or types.SC.
func (s *Serial) Read(address uint16) uint8 {
	if address == types.SB {
		return s.data
	}
	// bits 1-6 are unused
	return s.control | 0x7E
}

// Write writes to types.SB or types.SC.
func (s *Serial) Write(address uint16, value uint8) {
	if address == types.SB {
		s.data = value
		return
	}

	s.control = value & (types.Bit7 | types.Bit0)
	// transfer requested with the internal clock?
	if s.control == types.Bit7|types.Bit0 {
		if s.out != nil {
			if _, err := s.out.Write([]byte{s.data}); err != nil {
				s.log.Errorf("serial: writing 0x%02X: %s", s.data, err)
			}
		}
		s.data = 0xFF
		s.control &^= types.Bit7
		s.irq.Request(interrupts.Serial)
	}
}
