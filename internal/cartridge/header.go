package cartridge

import (
	"fmt"
	"strings"
)

const (
	headerStart = 0x0100
	headerEnd   = 0x0150
)

var (
	ramMAP = map[uint8]uint{
		0x00: 0,
		0x01: 2 * 1024,
		0x02: 8 * 1024,
		0x03: 32 * 1024,
		0x04: 128 * 1024,
		0x05: 64 * 1024,
	}
)

// Type is the cartridge type byte found at 0x0147.
type Type uint8

const (
	ROM         Type = 0x00
	MBC1        Type = 0x01
	MBC1RAM     Type = 0x02
	MBC1RAMBATT Type = 0x03
	MBC2        Type = 0x05
	MBC2BATT    Type = 0x06
	ROMRAM      Type = 0x08
	ROMRAMBATT  Type = 0x09
	MBC3        Type = 0x11
	MBC5        Type = 0x19
)

func (t Type) String() string {
	switch t {
	case ROM:
		return "ROM"
	case MBC1:
		return "MBC1"
	case MBC1RAM:
		return "MBC1+RAM"
	case MBC1RAMBATT:
		return "MBC1+RAM+BATTERY"
	case MBC2:
		return "MBC2"
	case MBC2BATT:
		return "MBC2+BATTERY"
	case ROMRAM:
		return "ROM+RAM"
	case ROMRAMBATT:
		return "ROM+RAM+BATTERY"
	case MBC3:
		return "MBC3"
	case MBC5:
		return "MBC5"
	}
	return fmt.Sprintf("Type(0x%02X)", uint8(t))
}

// Header represents the header of a cartridge, each cartridge has a header and is
// located at the address space 0x0100-0x014F. The header contains information about
// the cartridge itself, and the hardware it expects to run on.
type Header struct {
	// 0x0134-0x0143 - Title of the game, with trailing padding removed
	Title string

	// 0x0147 - the memory bank controller and any extra hardware
	CartridgeType Type
	// 0x0148 - ROM size in bytes (32 KiB << n)
	ROMSize uint
	// 0x0149 - external RAM size in bytes
	RAMSize uint

	// 0x014D - checksum over 0x0134-0x014C
	HeaderChecksum uint8
	// ValidChecksum reports whether HeaderChecksum matches the header
	ValidChecksum bool
}

// parseHeader parses the header of the given ROM. An image too small
// to hold a header is parsed as if it were padded with zeroes, which
// describes a ROM only cartridge. A bad checksum is reported through
// ValidChecksum, as the hardware itself only checks it in the boot ROM.
func parseHeader(rom []byte) Header {
	header := make([]byte, headerEnd-headerStart)
	if len(rom) > headerStart {
		copy(header, rom[headerStart:])
	}

	h := Header{
		Title:          strings.TrimRight(string(header[0x34:0x44]), "\x00 "),
		CartridgeType:  Type(header[0x47]),
		ROMSize:        (32 * 1024) << header[0x48],
		RAMSize:        ramMAP[header[0x49]],
		HeaderChecksum: header[0x4D],
	}

	// x = x - rom[i] - 1 over 0x0134-0x014C
	var sum uint8
	for _, b := range header[0x34:0x4D] {
		sum = sum - b - 1
	}
	h.ValidChecksum = sum == h.HeaderChecksum

	return h
}

func (h Header) String() string {
	return fmt.Sprintf("%s | Type: %s | ROM Size: %dkB | RAM Size: %dkB", h.Title, h.CartridgeType, h.ROMSize/1024, h.RAMSize/1024)
}
