package cartridge

// ROMCartridge represents a ROM cartridge. This cartridge type is the simplest
// cartridge type and has no MBC. Writes are ignored and the external RAM
// area reads as open bus.
type ROMCartridge struct {
	baseCartridge
}

// NewROMCartridge returns a new ROM cartridge.
func NewROMCartridge(rom []byte, header Header) *ROMCartridge {
	return &ROMCartridge{
		baseCartridge: newBaseCartridge(rom, header),
	}
}

// Read returns the value at the given address.
func (r *ROMCartridge) Read(address uint16) uint8 {
	if address >= 0x8000 {
		return 0xFF
	}
	return r.readROM(uint32(address))
}

// Write writes the value to the given address.
func (r *ROMCartridge) Write(uint16, uint8) {}
