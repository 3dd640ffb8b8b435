package cpu

import "github.com/thelolagemann/dmgcore/internal/types"

// alu performs the 8-bit arithmetic and logic operations on the A register.
func (c *CPU) alu(op Op, n uint8) {
	switch op {
	case OpADD, OpADC:
		var carry uint8
		if op == OpADC {
			carry = c.carry()
		}
		sum := uint16(c.A) + uint16(n) + uint16(carry)
		c.setFlags(sum&0xff == 0, false, (c.A&0xf)+(n&0xf)+carry > 0xf, sum > 0xff)
		c.A = uint8(sum)
	case OpSUB, OpSBC, OpCP:
		var carry uint8
		if op == OpSBC {
			carry = c.carry()
		}
		diff := uint16(c.A) - uint16(n) - uint16(carry)
		c.setFlags(diff&0xff == 0, true, (c.A&0xf)-(n&0xf)-carry > 0xf, diff > 0xff)
		if op != OpCP {
			c.A = uint8(diff)
		}
	case OpAND:
		c.A &= n
		c.setFlags(c.A == 0, false, true, false)
	case OpXOR:
		c.A ^= n
		c.setFlags(c.A == 0, false, false, false)
	case OpOR:
		c.A |= n
		c.setFlags(c.A == 0, false, false, false)
	}
}

// increment increments n, preserving the carry flag.
func (c *CPU) increment(n uint8) uint8 {
	result := n + 1
	c.setFlags(result == 0, false, n&0xf == 0xf, c.isFlagSet(FlagCarry))
	return result
}

// decrement decrements n, preserving the carry flag.
func (c *CPU) decrement(n uint8) uint8 {
	result := n - 1
	c.setFlags(result == 0, true, n&0xf == 0, c.isFlagSet(FlagCarry))
	return result
}

// addHL adds n to HL. The half carry is taken from bit 11 and the
// carry from bit 15, the zero flag is preserved.
func (c *CPU) addHL(n uint16) {
	hl := c.HL.Uint16()
	sum := uint32(hl) + uint32(n)
	c.setFlags(c.isFlagSet(FlagZero), false, (hl&0xfff)+(n&0xfff) > 0xfff, sum > 0xffff)
	c.HL.SetUint16(uint16(sum))
}

// addSP returns SP plus the signed offset e. The carries are those of
// adding e to the low byte of SP as an unsigned value.
func (c *CPU) addSP(e uint8) (result uint16, halfCarry, carry bool) {
	result = uint16(int32(c.SP) + int32(int8(e)))
	halfCarry = (c.SP&0xf)+uint16(e&0xf) > 0xf
	carry = (c.SP&0xff)+uint16(e) > 0xff
	return result, halfCarry, carry
}

// daa adjusts A to binary coded decimal after an addition or subtraction.
func (c *CPU) daa() {
	if !c.isFlagSet(FlagSubtract) {
		if c.isFlagSet(FlagCarry) || c.A > 0x99 {
			c.A += 0x60
			c.setFlag(FlagCarry)
		}
		if c.isFlagSet(FlagHalfCarry) || c.A&0xF > 0x9 {
			c.A += 0x06
		}
	} else {
		if c.isFlagSet(FlagCarry) {
			c.A -= 0x60
		}
		if c.isFlagSet(FlagHalfCarry) {
			c.A -= 0x06
		}
	}
	c.clearFlag(FlagHalfCarry)
	if c.A == 0 {
		c.setFlag(FlagZero)
	} else {
		c.clearFlag(FlagZero)
	}
}

// rotate performs one of the CB prefixed rotate and shift operations,
// setting the flags for the result.
func (c *CPU) rotate(op Op, n uint8) uint8 {
	var result, carry uint8
	switch op {
	case OpRLC:
		result = n<<1 | n>>7
		carry = n >> 7
	case OpRRC:
		result = n>>1 | n<<7
		carry = n & types.Bit0
	case OpRL:
		result = n<<1 | c.carry()
		carry = n >> 7
	case OpRR:
		result = n>>1 | c.carry()<<7
		carry = n & types.Bit0
	case OpSLA:
		result = n << 1
		carry = n >> 7
	case OpSRA:
		result = n&types.Bit7 | n>>1
		carry = n & types.Bit0
	case OpSWAP:
		result = n<<4 | n>>4
	case OpSRL:
		result = n >> 1
		carry = n & types.Bit0
	}
	c.setFlags(result == 0, false, false, carry == 1)
	return result
}

// rotateA performs RLCA, RRCA, RLA and RRA, which unlike their CB
// prefixed counterparts always clear the zero flag.
func (c *CPU) rotateA(op Op) {
	switch op {
	case OpRLCA:
		c.A = c.rotate(OpRLC, c.A)
	case OpRRCA:
		c.A = c.rotate(OpRRC, c.A)
	case OpRLA:
		c.A = c.rotate(OpRL, c.A)
	case OpRRA:
		c.A = c.rotate(OpRR, c.A)
	}
	c.clearFlag(FlagZero)
}
