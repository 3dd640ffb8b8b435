package cpu

// Flag is the bit position of a flag in the F register.
type Flag = uint8

const (
	FlagZero      Flag = 7
	FlagSubtract  Flag = 6
	FlagHalfCarry Flag = 5
	FlagCarry     Flag = 4
)

// clearFlag clears a flag from the F register.
func (c *CPU) clearFlag(flag Flag) {
	c.F &^= 1 << flag
}

// setFlag sets a flag in the F register.
func (c *CPU) setFlag(flag Flag) {
	c.F |= 1 << flag
}

// isFlagSet returns true if the given flag is set.
func (c *CPU) isFlagSet(flag Flag) bool {
	return c.F&(1<<flag) != 0
}

// setFlags sets all four flags at once.
func (c *CPU) setFlags(zero, subtract, halfCarry, carry bool) {
	c.F = 0
	if zero {
		c.setFlag(FlagZero)
	}
	if subtract {
		c.setFlag(FlagSubtract)
	}
	if halfCarry {
		c.setFlag(FlagHalfCarry)
	}
	if carry {
		c.setFlag(FlagCarry)
	}
}

// carry returns the carry flag as 0 or 1.
func (c *CPU) carry() uint8 {
	return c.F >> FlagCarry & 1
}

// Condition is the flag condition of a conditional jump, call or return.
type Condition uint8

const (
	Always Condition = iota
	NZ
	Z
	NC
	CY
)

func (cond Condition) String() string {
	switch cond {
	case NZ:
		return "NZ"
	case Z:
		return "Z"
	case NC:
		return "NC"
	case CY:
		return "C"
	}
	return ""
}

// check returns true if the condition holds.
func (c *CPU) check(cond Condition) bool {
	switch cond {
	case NZ:
		return !c.isFlagSet(FlagZero)
	case Z:
		return c.isFlagSet(FlagZero)
	case NC:
		return !c.isFlagSet(FlagCarry)
	case CY:
		return c.isFlagSet(FlagCarry)
	}
	return true
}
