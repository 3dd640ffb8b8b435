package cartridge

// MemoryBankedCartridge1 represents a MBC1 cartridge. This cartridge type has
// up to 2MiB of switchable ROM and up to 32KiB of switchable external RAM.
//
//	0x0000-0x1FFF - RAM enable (0x0A in the lower nibble enables)
//	0x2000-0x3FFF - ROM bank number, lower 5 bits (0 is treated as 1)
//	0x4000-0x5FFF - RAM bank number, or upper 2 bits of the ROM bank
//	0x6000-0x7FFF - banking mode select
type MemoryBankedCartridge1 struct {
	baseCartridge

	romBank uint8 // lower 5 bits of the ROM bank
	bank2   uint8 // 2 bit secondary bank register

	ram        []byte
	ramEnabled bool

	// advanced banking mode: bank2 also applies to 0x0000-0x3FFF
	// and to the external RAM
	mode bool
}

// NewMemoryBankedCartridge1 returns a new MemoryBankedCartridge1 cartridge.
func NewMemoryBankedCartridge1(rom []byte, header Header) *MemoryBankedCartridge1 {
	return &MemoryBankedCartridge1{
		baseCartridge: newBaseCartridge(rom, header),
		romBank:       1,
		ram:           make([]byte, header.RAMSize),
	}
}

// Read returns the value from the cartridges ROM or RAM, depending on the bank
// selected.
func (m *MemoryBankedCartridge1) Read(address uint16) uint8 {
	switch {
	case address < 0x4000:
		var bank uint32
		if m.mode {
			bank = uint32(m.bank2) << 5
		}
		return m.readROM(m.romOffset(bank, address))
	case address < 0x8000:
		bank := uint32(m.bank2)<<5 | uint32(m.romBank)
		return m.readROM(m.romOffset(bank, address-0x4000))
	case address >= 0xA000 && address < 0xC000:
		if offset, ok := m.ramOffset(address); ok {
			return m.ram[offset]
		}
	}
	return 0xFF
}

// Write attempts to switch the ROM or RAM bank, or writes to the
// external RAM.
func (m *MemoryBankedCartridge1) Write(address uint16, value uint8) {
	switch {
	case address < 0x2000:
		m.ramEnabled = value&0x0F == 0x0A
	case address < 0x4000:
		m.romBank = value & 0x1F
		if m.romBank == 0 {
			m.romBank = 1
		}
	case address < 0x6000:
		m.bank2 = value & 0x03
	case address < 0x8000:
		m.mode = value&0x01 == 0x01
	case address >= 0xA000 && address < 0xC000:
		if offset, ok := m.ramOffset(address); ok {
			m.ram[offset] = value
		}
	}
}

// romOffset maps a bank and an offset within that bank to an offset
// within the image, wrapping the bank to the size of the image.
func (m *MemoryBankedCartridge1) romOffset(bank uint32, address uint16) uint32 {
	if banks := uint32(len(m.rom) / 0x4000); banks > 0 {
		bank %= banks
	}
	return bank*0x4000 + uint32(address)
}

// ramOffset returns the offset within the external RAM for the
// given address, or false if the RAM is disabled or absent.
func (m *MemoryBankedCartridge1) ramOffset(address uint16) (uint32, bool) {
	if !m.ramEnabled || len(m.ram) == 0 {
		return 0, false
	}
	offset := uint32(address - 0xA000)
	if m.mode {
		offset += uint32(m.bank2) * 0x2000
	}
	return offset % uint32(len(m.ram)), true
}
