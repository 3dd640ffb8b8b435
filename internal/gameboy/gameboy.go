// Package gameboy provides an emulation of a Nintendo Game Boy (DMG).
package gameboy

import (
	"context"
	"fmt"
	io2 "io"

	"github.com/thelolagemann/dmgcore/internal/boot"
	"github.com/thelolagemann/dmgcore/internal/cartridge"
	"github.com/thelolagemann/dmgcore/internal/cpu"
	"github.com/thelolagemann/dmgcore/internal/interrupts"
	"github.com/thelolagemann/dmgcore/internal/io"
	"github.com/thelolagemann/dmgcore/internal/mmu"
	"github.com/thelolagemann/dmgcore/internal/ppu"
	"github.com/thelolagemann/dmgcore/internal/types"
	"github.com/thelolagemann/dmgcore/pkg/log"
)

// GameBoy represents a Game Boy. It contains all the components of the Game Boy.
// It is the main entry point for the emulator.
type GameBoy struct {
	CPU *cpu.CPU
	MMU *mmu.MMU
	PPU *ppu.PPU

	Cartridge  cartridge.Cartridge
	Interrupts *interrupts.Service
	Joypad     *io.Joypad
	Serial     *io.Serial
	Timer      *io.Timer

	log.Logger

	bootROM   *boot.ROM
	serialOut io2.Writer
	err       error
}

// NewGameBoy returns a new GameBoy running the given cartridge image.
// Without a boot ROM the CPU starts at 0x0100, with the registers the
// boot ROM would have left behind.
func NewGameBoy(rom []byte, opts ...Opt) (*GameBoy, error) {
	g := &GameBoy{Logger: log.NewNullLogger()}
	for _, opt := range opts {
		opt(g)
	}
	if g.err != nil {
		return nil, g.err
	}

	cart, err := cartridge.New(rom)
	if err != nil {
		return nil, fmt.Errorf("gameboy: loading cartridge: %w", err)
	}
	g.Cartridge = cart
	g.Infof("cartridge %s (%s) fingerprint %016x", cart.Title(), cart.Header().CartridgeType, cart.Fingerprint())
	if !cart.Header().ValidChecksum {
		g.Infof("cartridge header checksum 0x%02X does not match, continuing", cart.Header().HeaderChecksum)
	}

	g.Interrupts = interrupts.NewService()
	g.PPU = ppu.New(g.Interrupts)
	g.Joypad = io.NewJoypad()
	g.Serial = io.NewSerial(g.Interrupts, g.Logger)
	g.Serial.SetOutput(g.serialOut)
	g.Timer = io.NewTimer()

	g.MMU = mmu.NewMMU(cart, g.PPU, g.Interrupts, g.Logger)
	g.MMU.Map(g.Joypad, types.P1)
	g.MMU.Map(g.Serial, types.SB, types.SC)
	g.MMU.Map(g.Timer, types.DIV, types.TIMA, types.TMA, types.TAC)

	g.CPU = cpu.NewCPU(g.MMU)
	if g.bootROM != nil {
		g.Infof("boot rom %s (%s)", g.bootROM.Model(), g.bootROM.Checksum())
		g.MMU.SetBootROM(g.bootROM)
		g.CPU.PowerOn()
	}

	return g, nil
}

// Step executes a single instruction, or dispatches a single
// interrupt. Errors are fatal.
func (g *GameBoy) Step() error {
	return g.CPU.Step()
}

// Run steps the Game Boy until an error occurs, ctx is cancelled, or
// maxSteps steps have been executed. A maxSteps of 0 or less runs
// without a limit. It returns the number of steps executed.
func (g *GameBoy) Run(ctx context.Context, maxSteps int) (int, error) {
	steps := 0
	for maxSteps <= 0 || steps < maxSteps {
		if err := ctx.Err(); err != nil {
			return steps, err
		}
		if err := g.Step(); err != nil {
			return steps, fmt.Errorf("gameboy: step %d at 0x%04X: %w", steps, g.CPU.PC, err)
		}
		steps++
	}
	return steps, nil
}

// Read reads from the address space without spending any cycles.
func (g *GameBoy) Read(address uint16) (uint8, error) {
	return g.MMU.Read(address)
}

// Write writes to the address space without spending any cycles.
func (g *GameBoy) Write(address uint16, value uint8) error {
	return g.MMU.Write(address, value)
}

// Cycles returns the number of machine cycles executed so far.
func (g *GameBoy) Cycles() uint64 {
	return g.MMU.Cycles()
}
