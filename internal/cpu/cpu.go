// Package cpu implements the Game Boy's Sharp LR35902 CPU. Every bus
// access and internal delay of an instruction ticks the bus once, so
// the rest of the system advances one machine cycle at a time as the
// CPU executes.
package cpu

import (
	"errors"
	"fmt"

	"github.com/thelolagemann/dmgcore/internal/interrupts"
)

// ErrIllegalOperation is wrapped by IllegalOperationError.
var ErrIllegalOperation = errors.New("cpu: illegal operation")

// IllegalOperationError is returned when the CPU executes an undefined
// opcode, or an instruction that stores to an immediate operand.
type IllegalOperationError struct {
	Opcode  uint8
	Address uint16
	Reason  string
}

func (e *IllegalOperationError) Error() string {
	return fmt.Sprintf("cpu: illegal operation 0x%02X at 0x%04X: %s", e.Opcode, e.Address, e.Reason)
}

func (e *IllegalOperationError) Unwrap() error {
	return ErrIllegalOperation
}

// Bus is the address space as seen by the CPU. Read and Write never
// tick; the CPU calls Tick once for every machine cycle it spends.
type Bus interface {
	Read(address uint16) (uint8, error)
	Write(address uint16, value uint8) error
	Tick()
	Interrupts() *interrupts.Service
}

// IME is the state of the interrupt master enable flag.
type IME uint8

const (
	// IMEDisabled ignores pending interrupts.
	IMEDisabled IME = iota
	// IMEEnabled dispatches pending interrupts between instructions.
	IMEEnabled
	// IMEEnabling is set by EI, and becomes IMEEnabled once the
	// instruction following EI has been executed.
	IMEEnabling
)

func (i IME) String() string {
	switch i {
	case IMEDisabled:
		return "Disabled"
	case IMEEnabled:
		return "Enabled"
	case IMEEnabling:
		return "Enabling"
	}
	return fmt.Sprintf("IME(%d)", uint8(i))
}

// CPU represents the Gameboy CPU. It is responsible for executing instructions.
type CPU struct {
	// PC is the program counter, it points to the next instruction to be executed.
	PC uint16
	// SP is the stack pointer, it points to the top of the stack.
	SP uint16
	// Registers contains the 8-bit registers, as well as the 16-bit register pairs.
	Registers

	bus Bus
	irq *interrupts.Service

	ime    IME
	halted bool

	// address of the opcode being executed
	opcodeAddress uint16
	opcode        uint8
}

// NewCPU creates a new CPU with the registers as the DMG boot ROM
// leaves them, starting execution at 0x0100.
func NewCPU(bus Bus) *CPU {
	c := &CPU{
		bus: bus,
		irq: bus.Interrupts(),
	}
	c.Registers.init()

	c.AF.SetUint16(0x01B0)
	c.BC.SetUint16(0x0013)
	c.DE.SetUint16(0x00D8)
	c.HL.SetUint16(0x014D)
	c.SP = 0xFFFE
	c.PC = 0x0100

	return c
}

// PowerOn clears every register and starts execution at 0x0000,
// where a boot ROM is expected to be mapped.
func (c *CPU) PowerOn() {
	c.AF.SetUint16(0)
	c.BC.SetUint16(0)
	c.DE.SetUint16(0)
	c.HL.SetUint16(0)
	c.SP = 0
	c.PC = 0
	c.ime = IMEDisabled
	c.halted = false
}

// IME returns the state of the interrupt master enable flag.
func (c *CPU) IME() IME {
	return c.ime
}

// Halted returns true if the CPU is waiting for an interrupt.
func (c *CPU) Halted() bool {
	return c.halted
}

// fault carries a bus or decode error out of an instruction.
type fault struct {
	err error
}

// Step executes a single instruction, dispatches a single interrupt,
// or spends a single machine cycle halted. Errors are fatal: the
// state of the CPU is undefined after an error is returned.
func (c *CPU) Step() error {
	return c.try(c.step)
}

// try runs fn, returning the error of any fault raised by fn.
func (c *CPU) try(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			f, ok := r.(fault)
			if !ok {
				panic(r)
			}
			err = f.err
		}
	}()
	return fn()
}

func (c *CPU) step() error {
	// EI takes effect after the following instruction
	ime := c.ime
	if c.ime == IMEEnabling {
		c.ime = IMEEnabled
	}

	if c.halted {
		if !c.irq.HasInterrupts() {
			c.bus.Tick()
			return nil
		}
		c.halted = false
	}

	if ime == IMEEnabled && c.irq.HasInterrupts() {
		c.dispatch()
		return nil
	}

	c.opcodeAddress = c.PC
	c.opcode = c.fetch()
	ins, err := Decode(c.opcode)
	if err != nil {
		var illegal *IllegalOperationError
		if errors.As(err, &illegal) {
			illegal.Address = c.opcodeAddress
		}
		return err
	}
	c.execute(ins)

	return nil
}

// dispatch services the highest priority pending interrupt. The
// interrupt is only acknowledged once PC has been pushed, so a push
// that clears the pending interrupt in IE jumps to 0x0000 instead.
func (c *CPU) dispatch() {
	c.ime = IMEDisabled
	c.bus.Tick()
	c.bus.Tick()
	c.push(c.PC)

	if source, ok := c.irq.Acknowledge(); ok {
		c.PC = source.Vector()
	} else {
		c.PC = 0x0000
	}
}

// fetch reads the next byte from PC.
func (c *CPU) fetch() uint8 {
	value := c.readByte(c.PC)
	c.PC++
	return value
}

// fetch16 reads the next little endian word from PC.
func (c *CPU) fetch16() uint16 {
	low := c.fetch()
	return uint16(c.fetch())<<8 | uint16(low)
}

// readByte reads a byte from memory, taking a machine cycle.
func (c *CPU) readByte(addr uint16) uint8 {
	c.bus.Tick()
	value, err := c.bus.Read(addr)
	if err != nil {
		panic(fault{err})
	}
	return value
}

// writeByte writes the given value to the given address, taking a
// machine cycle.
func (c *CPU) writeByte(addr uint16, val uint8) {
	c.bus.Tick()
	if err := c.bus.Write(addr, val); err != nil {
		panic(fault{err})
	}
}

// push pushes a word to the stack, high byte first.
func (c *CPU) push(value uint16) {
	c.SP--
	c.writeByte(c.SP, uint8(value>>8))
	c.SP--
	c.writeByte(c.SP, uint8(value))
}

// pop pops a word from the stack.
func (c *CPU) pop() uint16 {
	low := c.readByte(c.SP)
	c.SP++
	high := c.readByte(c.SP)
	c.SP++
	return uint16(high)<<8 | uint16(low)
}

// illegal aborts the current instruction.
func (c *CPU) illegal(reason string) {
	panic(fault{&IllegalOperationError{Opcode: c.opcode, Address: c.opcodeAddress, Reason: reason}})
}
