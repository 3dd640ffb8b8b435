// Package cartridge provides a Cartridge interface for the DMG.
// The cartridge holds the game ROM and any external RAM, and
// decides how writes to the ROM area select banks.
package cartridge

import (
	"errors"
	"fmt"

	"github.com/cespare/xxhash"
)

// ErrUnsupportedCartridge is returned when the header names a memory
// bank controller that is not implemented.
var ErrUnsupportedCartridge = errors.New("cartridge: unsupported cartridge type")

// Cartridge represents a basic game cartridge. Read and Write
// cover both the ROM area (0x0000 - 0x7FFF) and the external
// RAM area (0xA000 - 0xBFFF).
type Cartridge interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)

	Header() Header
	Title() string
	Fingerprint() uint64
}

type baseCartridge struct {
	rom         []byte
	header      Header
	fingerprint uint64
}

func newBaseCartridge(rom []byte, header Header) baseCartridge {
	return baseCartridge{
		rom:         rom,
		header:      header,
		fingerprint: xxhash.Sum64(rom),
	}
}

func (c *baseCartridge) Header() Header {
	return c.header
}

// Title returns the cartridge title, with padding removed.
func (c *baseCartridge) Title() string {
	return c.header.Title
}

// Fingerprint returns the xxhash64 of the full ROM image.
func (c *baseCartridge) Fingerprint() uint64 {
	return c.fingerprint
}

// readROM reads from the ROM image, treating anything past the
// end of the image as open bus.
func (c *baseCartridge) readROM(offset uint32) uint8 {
	if offset >= uint32(len(c.rom)) {
		return 0xFF
	}
	return c.rom[offset]
}

// New parses the header of rom and returns the cartridge
// implementation matching its type byte. Any image is accepted as
// long as its type byte names a supported controller; reads past the
// end of the image return 0xFF.
func New(rom []byte) (Cartridge, error) {
	header := parseHeader(rom)

	switch header.CartridgeType {
	case ROM, ROMRAM, ROMRAMBATT:
		return NewROMCartridge(rom, header), nil
	case MBC1, MBC1RAM, MBC1RAMBATT:
		return NewMemoryBankedCartridge1(rom, header), nil
	}

	return nil, fmt.Errorf("%w: %s", ErrUnsupportedCartridge, header.CartridgeType)
}
