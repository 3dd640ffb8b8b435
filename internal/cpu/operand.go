package cpu

import "fmt"

// Mode is the addressing mode of an Operand.
type Mode uint8

const (
	// ModeNone marks an unused operand.
	ModeNone Mode = iota
	// ModeReg8 is an 8-bit register.
	ModeReg8
	// ModeReg16 is a 16-bit register.
	ModeReg16
	// ModeImm8 is the byte following the opcode.
	ModeImm8
	// ModeImm16 is the little endian word following the opcode.
	ModeImm16
	// ModeMem is a location in memory, addressed as described by Indirect.
	ModeMem
	// ModeSPOffset is SP plus the signed byte following the opcode.
	ModeSPOffset
)

// Indirect describes how the address of a ModeMem operand is formed.
type Indirect uint8

const (
	AtBC Indirect = iota
	AtDE
	AtHL
	// AtHLI is (HL), incrementing HL once the address is taken.
	AtHLI
	// AtHLD is (HL), decrementing HL once the address is taken.
	AtHLD
	// AtHighImm is 0xFF00 plus the byte following the opcode.
	AtHighImm
	// AtHighC is 0xFF00 plus C.
	AtHighC
	// AtAbs is the word following the opcode.
	AtAbs
)

// Operand describes where an instruction reads or writes a value.
type Operand struct {
	Mode Mode
	Reg  Reg      // ModeReg8
	Pair Pair     // ModeReg16
	At   Indirect // ModeMem
}

func reg8(r Reg) Operand { return Operand{Mode: ModeReg8, Reg: r} }
func reg16(p Pair) Operand { return Operand{Mode: ModeReg16, Pair: p} }
func mem(at Indirect) Operand { return Operand{Mode: ModeMem, At: at} }
func imm8() Operand { return Operand{Mode: ModeImm8} }
func imm16() Operand { return Operand{Mode: ModeImm16} }
func spOffset() Operand { return Operand{Mode: ModeSPOffset} }
func noOperand() Operand { return Operand{} }

// operandR returns the operand for the register index used in the
// opcode encoding, where index 6 is (HL).
func operandR(index uint8) Operand {
	if index&7 == 6 {
		return mem(AtHL)
	}
	return reg8(Reg(index & 7))
}

func (o Operand) String() string {
	switch o.Mode {
	case ModeReg8:
		return o.Reg.String()
	case ModeReg16:
		return o.Pair.String()
	case ModeImm8:
		return "d8"
	case ModeImm16:
		return "d16"
	case ModeSPOffset:
		return "SP+r8"
	case ModeMem:
		switch o.At {
		case AtBC:
			return "(BC)"
		case AtDE:
			return "(DE)"
		case AtHL:
			return "(HL)"
		case AtHLI:
			return "(HL+)"
		case AtHLD:
			return "(HL-)"
		case AtHighImm:
			return "(a8)"
		case AtHighC:
			return "(C)"
		case AtAbs:
			return "(a16)"
		}
	}
	return ""
}

// location is a resolved Operand. Resolving consumes any immediate
// bytes and applies the HL increment or decrement, so a location may
// be read and written without further side effects.
type location struct {
	mode    Mode
	reg     *Register
	pair    Pair
	address uint16
	value   uint16

	// SP+e carries
	halfCarry, carry bool
}

// locate8 resolves an 8-bit operand.
func (c *CPU) locate8(o Operand) location {
	switch o.Mode {
	case ModeReg8:
		return location{mode: ModeReg8, reg: c.register(o.Reg)}
	case ModeImm8:
		return location{mode: ModeImm8, value: uint16(c.fetch())}
	case ModeMem:
		return location{mode: ModeMem, address: c.indirect(o.At)}
	}
	panic(fmt.Sprintf("cpu: %s is not an 8-bit operand", o))
}

// locate16 resolves a 16-bit operand. ModeMem operands address
// two consecutive bytes, low byte first.
func (c *CPU) locate16(o Operand) location {
	switch o.Mode {
	case ModeReg16:
		return location{mode: ModeReg16, pair: o.Pair}
	case ModeImm16:
		return location{mode: ModeImm16, value: c.fetch16()}
	case ModeMem:
		return location{mode: ModeMem, address: c.indirect(o.At)}
	case ModeSPOffset:
		value, half, carry := c.addSP(c.fetch())
		return location{mode: ModeSPOffset, value: value, halfCarry: half, carry: carry}
	}
	panic(fmt.Sprintf("cpu: %s is not a 16-bit operand", o))
}

// indirect forms the address of a memory operand.
func (c *CPU) indirect(at Indirect) uint16 {
	switch at {
	case AtBC:
		return c.BC.Uint16()
	case AtDE:
		return c.DE.Uint16()
	case AtHL:
		return c.HL.Uint16()
	case AtHLI:
		hl := c.HL.Uint16()
		c.HL.SetUint16(hl + 1)
		return hl
	case AtHLD:
		hl := c.HL.Uint16()
		c.HL.SetUint16(hl - 1)
		return hl
	case AtHighImm:
		return 0xFF00 | uint16(c.fetch())
	case AtHighC:
		return 0xFF00 | uint16(c.C)
	case AtAbs:
		return c.fetch16()
	}
	panic(fmt.Sprintf("cpu: invalid indirect mode %d", at))
}

func (c *CPU) read8(l location) uint8 {
	switch l.mode {
	case ModeReg8:
		return *l.reg
	case ModeMem:
		return c.readByte(l.address)
	}
	return uint8(l.value)
}

func (c *CPU) write8(l location, value uint8) {
	switch l.mode {
	case ModeReg8:
		*l.reg = value
	case ModeMem:
		c.writeByte(l.address, value)
	default:
		c.illegal("store to immediate operand")
	}
}

func (c *CPU) read16(l location) uint16 {
	switch l.mode {
	case ModeReg16:
		return c.pair(l.pair)
	case ModeMem:
		return uint16(c.readByte(l.address)) | uint16(c.readByte(l.address+1))<<8
	}
	return l.value
}

func (c *CPU) write16(l location, value uint16) {
	switch l.mode {
	case ModeReg16:
		c.setPair(l.pair, value)
	case ModeMem:
		c.writeByte(l.address, uint8(value))
		c.writeByte(l.address+1, uint8(value>>8))
	default:
		c.illegal("store to immediate operand")
	}
}

// pair returns the value of a 16-bit register.
func (c *CPU) pair(p Pair) uint16 {
	switch p {
	case PairBC:
		return c.BC.Uint16()
	case PairDE:
		return c.DE.Uint16()
	case PairHL:
		return c.HL.Uint16()
	case PairAF:
		return c.AF.Uint16()
	}
	return c.SP
}

// setPair sets the value of a 16-bit register.
func (c *CPU) setPair(p Pair, value uint16) {
	switch p {
	case PairBC:
		c.BC.SetUint16(value)
	case PairDE:
		c.DE.SetUint16(value)
	case PairHL:
		c.HL.SetUint16(value)
	case PairAF:
		c.AF.SetUint16(value)
	default:
		c.SP = value
	}
}
