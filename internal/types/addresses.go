package types

// Address represents a memory address (or a range of them) in the
// Game Boy's memory map, which can be read from or written to. The
// MMU holds one Address per 256 byte page, and one per hardware
// register in the 0xFF page.
type Address struct {
	// Read is a function that is called when the CPU reads from
	// the address.
	Read func(address uint16) uint8
	// Write is a function that is called when the CPU writes to
	// the address.
	Write func(address uint16, value uint8)
}

// HardwareAddress represents the address of a hardware
// register of the Game Boy. The hardware IO are mapped
// to memory addresses 0xFF00 - 0xFF7F & 0xFFFF.
type HardwareAddress = uint16

const (
	// P1 is the address of the P1 hardware register. The P1
	// hardware register is used to select the input keys to
	// be read by the CPU, and to read the state of the joypad.
	P1 HardwareAddress = 0xFF00
	// SB is the address of the SB hardware register. The SB
	// hardware register holds the byte to be transferred over
	// the serial port.
	SB HardwareAddress = 0xFF01
	// SC is the address of the SC hardware register. The SC
	// hardware register is used to control the serial port.
	SC HardwareAddress = 0xFF02
	// DIV is the address of the DIV hardware register. Writing
	// any value to it resets it to 0.
	DIV HardwareAddress = 0xFF04
	// TIMA is the address of the TIMA hardware register (timer counter).
	TIMA HardwareAddress = 0xFF05
	// TMA is the address of the TMA hardware register. The TMA
	// hardware register is loaded into TIMA when it overflows.
	TMA HardwareAddress = 0xFF06
	// TAC is the address of the TAC hardware register. The TAC
	// hardware register is used to control the timer.
	TAC HardwareAddress = 0xFF07
	// IF is the address of the IF hardware register. The IF
	// hardware register is used to request interrupts. Writing a 1
	// to a bit in IF requests an interrupt, and writing a 0 clears
	// the request.
	//
	//  Bit 0: V-Blank Interrupt Request (INT 40h)  (1=Request)
	//  Bit 1: LCD STAT Interrupt Request (INT 48h) (1=Request)
	//  Bit 2: Timer Interrupt Request (INT 50h)    (1=Request)
	//  Bit 3: Serial Interrupt Request (INT 58h)   (1=Request)
	//  Bit 4: Joypad Interrupt Request (INT 60h)   (1=Request)
	IF HardwareAddress = 0xFF0F

	// NR10 is the first of the sound registers (0xFF10 - 0xFF26).
	NR10 HardwareAddress = 0xFF10
	// WaveRAMEnd is the last byte of the wave pattern RAM
	// (0xFF30 - 0xFF3F).
	WaveRAMEnd HardwareAddress = 0xFF3F

	// LCDC is the address of the LCDC hardware register. The LCDC
	// hardware register is used to control the LCD.
	//
	//  Bit 7: LCD Display Enable             (0=Off, 1=On)
	//  Bit 6: Window Tile Map Display Select (0=9800-9BFF, 1=9C00-9FFF)
	//  Bit 5: Window Display Enable          (0=Off, 1=On)
	//  Bit 4: BG & Window Tile Data Select   (0=8800-97FF, 1=8000-8FFF)
	//  Bit 3: BG Tile Map Display Select     (0=9800-9BFF, 1=9C00-9FFF)
	//  Bit 2: OBJ (Sprite) Size              (0=8x8, 1=8x16)
	//  Bit 1: OBJ (Sprite) Display Enable    (0=Off, 1=On)
	//  Bit 0: BG Display                     (0=Off, 1=On)
	LCDC HardwareAddress = 0xFF40
	// STAT is the address of the STAT hardware register. The STAT
	// hardware register reports the current PPU mode, the LY=LYC
	// coincidence, and selects the sources of the LCD STAT interrupt.
	//
	//  Bit 6: LYC=LY STAT Interrupt source
	//  Bit 5: Mode 2 OAM STAT Interrupt source
	//  Bit 4: Mode 1 VBlank STAT Interrupt source
	//  Bit 3: Mode 0 HBlank STAT Interrupt source
	//  Bit 2: LYC=LY Flag (Read Only)
	//  Bit 1-0: Mode Flag (Read Only)
	STAT HardwareAddress = 0xFF41
	// SCY is the address of the SCY hardware register, the Y
	// position of the background viewport.
	SCY HardwareAddress = 0xFF42
	// SCX is the address of the SCX hardware register, the X
	// position of the background viewport.
	SCX HardwareAddress = 0xFF43
	// LY is the address of the LY hardware register. The LY
	// hardware register holds the current scanline (0-153).
	// Writing to it resets the scanline to 0.
	LY HardwareAddress = 0xFF44
	// LYC is the address of the LYC hardware register, compared
	// against LY on every scanline change.
	LYC HardwareAddress = 0xFF45
	// DMA is the address of the DMA hardware register. Writing
	// to it copies 160 bytes from XX00-XX9F into OAM.
	DMA HardwareAddress = 0xFF46
	// BGP is the address of the BGP hardware register, the
	// background palette.
	//
	//  Bit 7-6: Colour for index 3
	//  Bit 5-4: Colour for index 2
	//  Bit 3-2: Colour for index 1
	//  Bit 1-0: Colour for index 0
	BGP HardwareAddress = 0xFF47
	// OBP0 is the address of the OBP0 hardware register, the
	// first object palette. Same layout as BGP.
	OBP0 HardwareAddress = 0xFF48
	// OBP1 is the address of the OBP1 hardware register, the
	// second object palette. Same layout as BGP.
	OBP1 HardwareAddress = 0xFF49
	// WY is the address of the WY hardware register, the Y
	// position of the window.
	WY HardwareAddress = 0xFF4A
	// WX is the address of the WX hardware register, the X
	// position of the window plus 7.
	WX HardwareAddress = 0xFF4B
	// KEY0 is the first of the CGB-only registers, which a DMG
	// ignores.
	KEY0 HardwareAddress = 0xFF4C
	// BDIS is the address of the BDIS hardware register. Writing
	// to it unmaps the boot ROM.
	BDIS HardwareAddress = 0xFF50
	// IE is the address of the IE hardware register. The IE
	// hardware register is used to enable interrupts, with the
	// same layout as IF.
	IE HardwareAddress = 0xFFFF
)

const (
	// VRAMStart is the first address of the video RAM.
	VRAMStart = 0x8000
	// ExternalRAMStart is the first address of the cartridge RAM.
	ExternalRAMStart = 0xA000
	// WRAMStart is the first address of the work RAM.
	WRAMStart = 0xC000
	// EchoStart is the first address of the work RAM mirror.
	EchoStart = 0xE000
	// OAMStart is the first address of the object attribute memory.
	OAMStart = 0xFE00
	// OAMEnd is the first address past the object attribute memory.
	OAMEnd = 0xFEA0
	// HRAMStart is the first address of the high RAM.
	HRAMStart = 0xFF80
)
