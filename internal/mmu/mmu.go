// Package mmu provides a memory management unit for the Game Boy. The
// MMU decodes every address to the device that owns it, and advances
// the cycle driven devices each time the CPU ticks the bus.
package mmu

import (
	"errors"
	"fmt"

	"github.com/thelolagemann/dmgcore/internal/boot"
	"github.com/thelolagemann/dmgcore/internal/cartridge"
	"github.com/thelolagemann/dmgcore/internal/interrupts"
	"github.com/thelolagemann/dmgcore/internal/ram"
	"github.com/thelolagemann/dmgcore/internal/types"
	"github.com/thelolagemann/dmgcore/pkg/log"
)

// ErrUnmappedAddress is wrapped by UnmappedAddressError.
var ErrUnmappedAddress = errors.New("mmu: unmapped address")

// UnmappedAddressError is returned when an address with no owning
// device is read or written.
type UnmappedAddressError struct {
	Address uint16
	Write   bool
}

func (e *UnmappedAddressError) Error() string {
	op := "read from"
	if e.Write {
		op = "write to"
	}
	return fmt.Sprintf("mmu: %s unmapped address 0x%04X", op, e.Address)
}

func (e *UnmappedAddressError) Unwrap() error {
	return ErrUnmappedAddress
}

// IOBus is the interface that the MMU uses to communicate with the
// hardware registers of the other components.
type IOBus interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)
}

// Video is the PPU as seen by the MMU. It serves the LCD registers,
// owns the video RAM and OAM, and is ticked once per machine cycle.
type Video interface {
	IOBus
	ReadVRAM(address uint16) uint8
	WriteVRAM(address uint16, value uint8)
	ReadOAM(address uint16) uint8
	WriteOAM(address uint16, value uint8)
	Tick()
}

const (
	hramSize = 0x7F
	dmaSize  = 0xA0
)

// MMU is the memory management unit for the Game Boy. It handles all
// memory reads and writes to the Game Boy's 64kB of memory.
//
// The address space is partitioned into 256 pages of 256 bytes, each
// owned by a single device. The I/O page (0xFF00 - 0xFF7F) is decoded
// per register, and registers with no owner are unmapped.
type MMU struct {
	pages [256]*types.Address
	io    [0x80]*types.Address

	// 0x0000 - 0x00FF - BOOT ROM (256B)
	bootROM     *boot.ROM
	bootROMDone bool

	// 0x0000 - 0x7FFF - ROM
	// 0xA000 - 0xBFFF - External RAM
	cart cartridge.Cartridge

	// 0x8000 - 0x9FFF - Video RAM (8kB)
	// 0xFE00 - 0xFE9F - Sprite Attribute Table (160B)
	video Video

	// 0xC000 - 0xDFFF - Work RAM (8kB)
	// 0xE000 - 0xFDFF - Echo RAM (7.5kB)
	wRAM *WRAM

	// 0xFF80 - 0xFFFE - High RAM (127B)
	hRAM *ram.RAM

	// 0xFF0F & 0xFFFF - interrupt request & enable
	irq *interrupts.Service

	dma    uint8
	cycles uint64

	Log log.Logger
}

// NewMMU returns a new MMU, mapping the cartridge, video, work RAM,
// high RAM, interrupt registers and the registers the DMG ignores.
// The remaining hardware registers are attached with Map.
func NewMMU(cart cartridge.Cartridge, video Video, irq *interrupts.Service, l log.Logger) *MMU {
	m := &MMU{
		cart:  cart,
		video: video,
		wRAM:  NewWRAM(),
		hRAM:  ram.NewRAM(hramSize),
		irq:   irq,
		Log:   l,
	}
	m.init()

	return m
}

func (m *MMU) init() {
	addresses := []types.Address{
		{Read: m.readCart, Write: m.cart.Write},
		{Read: m.cart.Read, Write: m.cart.Write},
		{Read: m.video.ReadVRAM, Write: m.video.WriteVRAM},
		{Read: m.wRAM.Read, Write: m.wRAM.Write},
		{Read: m.readObjects, Write: m.writeObjects},
		{Read: m.readHigh, Write: m.writeHigh},
	}

	// 0x0000 - 0x00FF - boot ROM overlay
	m.pages[0x00] = &addresses[0]
	// 0x0100 - 0x7FFF - ROM
	for i := 0x01; i < 0x80; i++ {
		m.pages[i] = &addresses[1]
	}
	// 0x8000 - 0x9FFF - VRAM (8kB)
	for i := 0x80; i < 0xA0; i++ {
		m.pages[i] = &addresses[2]
	}
	// 0xA000 - 0xBFFF - external RAM (8kB)
	for i := 0xA0; i < 0xC0; i++ {
		m.pages[i] = &addresses[1]
	}
	// 0xC000 - 0xFDFF - work RAM & echo
	for i := 0xC0; i < 0xFE; i++ {
		m.pages[i] = &addresses[3]
	}
	// 0xFE00 - 0xFEFF - OAM & unusable memory
	m.pages[0xFE] = &addresses[4]
	// 0xFF00 - 0xFFFF - I/O, HRAM & IE
	m.pages[0xFF] = &addresses[5]

	// hardware registers owned by the MMU
	m.Map(IOFunc(m.irq.ReadFlag, m.irq.WriteFlag), types.IF)
	m.Map(IOFunc(m.video.Read, m.writeVideo),
		types.LCDC, types.STAT, types.SCY, types.SCX, types.LY, types.LYC,
		types.BGP, types.OBP0, types.OBP1, types.WY, types.WX)
	m.Map(IOFunc(m.readDMA, m.writeDMA), types.DMA)
	m.Map(IOFunc(readOpenBus, m.writeBDIS), types.BDIS)

	ignored := IOFunc(readOpenBus, m.ignore)
	// 0xFF10 - 0xFF3F - sound & wave RAM
	for addr := types.NR10; addr <= types.WaveRAMEnd; addr++ {
		m.Map(ignored, addr)
	}
	// 0xFF4C - 0xFF7F - CGB registers
	for addr := types.KEY0; addr < types.HRAMStart; addr++ {
		if addr != types.BDIS {
			m.Map(ignored, addr)
		}
	}
}

// Map maps the hardware registers at the given addresses
// (0xFF00 - 0xFF7F) to the device.
func (m *MMU) Map(device IOBus, addresses ...uint16) {
	a := &types.Address{Read: device.Read, Write: device.Write}
	for _, addr := range addresses {
		if addr < 0xFF00 || addr >= types.HRAMStart {
			panic(fmt.Sprintf("mmu: 0x%04X is not a hardware register", addr))
		}
		m.io[addr&0x7F] = a
	}
}

// SetBootROM overlays the boot ROM on 0x0000 - 0x00FF, until
// the boot ROM disables itself by writing to types.BDIS.
func (m *MMU) SetBootROM(rom *boot.ROM) {
	m.bootROM = rom
	m.bootROMDone = rom == nil
}

// BootROMMapped returns true if the boot ROM is currently
// overlaying the cartridge.
func (m *MMU) BootROMMapped() bool {
	return m.bootROM != nil && !m.bootROMDone
}

// Read returns the value at the given address. It never ticks.
func (m *MMU) Read(address uint16) (uint8, error) {
	if address >= 0xFF00 && address < types.HRAMStart {
		reg := m.io[address&0x7F]
		if reg == nil {
			return 0xFF, &UnmappedAddressError{Address: address}
		}
		return reg.Read(address), nil
	}
	return m.pages[address>>8].Read(address), nil
}

// Write writes the value to the given address. It never ticks.
func (m *MMU) Write(address uint16, value uint8) error {
	if address >= 0xFF00 && address < types.HRAMStart {
		reg := m.io[address&0x7F]
		if reg == nil {
			return &UnmappedAddressError{Address: address, Write: true}
		}
		reg.Write(address, value)
		return nil
	}
	m.pages[address>>8].Write(address, value)
	return nil
}

// Tick advances the cycle driven devices by a single machine cycle.
func (m *MMU) Tick() {
	m.cycles++
	m.video.Tick()
}

// Cycles returns the number of machine cycles ticked so far.
func (m *MMU) Cycles() uint64 {
	return m.cycles
}

// Interrupts returns the interrupt controller.
func (m *MMU) Interrupts() *interrupts.Service {
	return m.irq
}

func (m *MMU) readCart(address uint16) uint8 {
	if m.BootROMMapped() {
		return m.bootROM.Read(address)
	}
	return m.cart.Read(address)
}

func (m *MMU) readObjects(address uint16) uint8 {
	if address < types.OAMEnd {
		return m.video.ReadOAM(address)
	}
	// 0xFEA0 - 0xFEFF is unusable
	return 0x00
}

func (m *MMU) writeObjects(address uint16, value uint8) {
	if address < types.OAMEnd {
		m.video.WriteOAM(address, value)
	}
}

// readHigh serves 0xFF80 - 0xFFFF, the I/O registers being
// decoded before the page table is consulted.
func (m *MMU) readHigh(address uint16) uint8 {
	if address == types.IE {
		return m.irq.ReadEnable(address)
	}
	return m.hRAM.Read(address - types.HRAMStart)
}

func (m *MMU) writeHigh(address uint16, value uint8) {
	if address == types.IE {
		m.irq.WriteEnable(address, value)
		return
	}
	m.hRAM.Write(address-types.HRAMStart, value)
}

func (m *MMU) writeVideo(address uint16, value uint8) {
	if address == types.STAT {
		m.Log.Debugf("mmu: STAT select 0x%02X", value&0x78)
	}
	m.video.Write(address, value)
}

func (m *MMU) readDMA(uint16) uint8 {
	return m.dma
}

// writeDMA copies 160 bytes from value<<8 into OAM. Sources in
// 0xE000 - 0xFFFF read from work RAM.
func (m *MMU) writeDMA(_ uint16, value uint8) {
	m.dma = value

	source := uint16(value) << 8
	if source >= types.EchoStart {
		source &^= 0x2000
	}
	for i := uint16(0); i < dmaSize; i++ {
		addr := source + i
		m.video.WriteOAM(types.OAMStart+i, m.pages[addr>>8].Read(addr))
	}
}

func (m *MMU) writeBDIS(uint16, uint8) {
	// it's assumed any write to this register will disable the boot rom
	if m.BootROMMapped() {
		m.Log.Debugf("mmu: boot ROM unmapped")
	}
	m.bootROMDone = true
}

func (m *MMU) ignore(address uint16, value uint8) {
	m.Log.Debugf("mmu: ignored write 0x%02X to 0x%04X", value, address)
}

func readOpenBus(uint16) uint8 {
	return 0xFF
}

// IOFunc adapts a pair of functions to an IOBus.
func IOFunc(read func(uint16) uint8, write func(uint16, uint8)) IOBus {
	return ioFunc{read: read, write: write}
}

type ioFunc struct {
	read  func(uint16) uint8
	write func(uint16, uint8)
}

func (f ioFunc) Read(address uint16) uint8 { return f.read(address) }

func (f ioFunc) Write(address uint16, value uint8) { f.write(address, value) }
