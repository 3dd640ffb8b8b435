package cpu

// execute executes a decoded instruction. Operands are resolved in
// the order the hardware accesses them: the destination before the
// source, so immediate bytes are always consumed before the store.
func (c *CPU) execute(ins Instruction) {
	switch ins.Op {
	case OpNOP:
	case OpLD:
		dst := c.locate8(ins.Dst)
		c.write8(dst, c.read8(c.locate8(ins.Src)))
	case OpLD16:
		dst := c.locate16(ins.Dst)
		src := c.locate16(ins.Src)
		switch {
		case src.mode == ModeSPOffset: // LD HL, SP+r8
			c.setFlags(false, false, src.halfCarry, src.carry)
			c.bus.Tick()
		case ins.Dst.Pair == PairSP && ins.Src.Mode == ModeReg16: // LD SP, HL
			c.bus.Tick()
		}
		c.write16(dst, c.read16(src))
	case OpPUSH:
		value := c.read16(c.locate16(ins.Src))
		c.bus.Tick()
		c.push(value)
	case OpPOP:
		c.write16(c.locate16(ins.Dst), c.pop())

	case OpADD, OpADC, OpSUB, OpSBC, OpAND, OpXOR, OpOR, OpCP:
		c.alu(ins.Op, c.read8(c.locate8(ins.Src)))
	case OpINC:
		dst := c.locate8(ins.Dst)
		c.write8(dst, c.increment(c.read8(dst)))
	case OpDEC:
		dst := c.locate8(ins.Dst)
		c.write8(dst, c.decrement(c.read8(dst)))

	case OpINC16:
		c.bus.Tick()
		c.setPair(ins.Dst.Pair, c.pair(ins.Dst.Pair)+1)
	case OpDEC16:
		c.bus.Tick()
		c.setPair(ins.Dst.Pair, c.pair(ins.Dst.Pair)-1)
	case OpADDHL:
		c.bus.Tick()
		c.addHL(c.pair(ins.Src.Pair))
	case OpADDSP:
		sp, halfCarry, carry := c.addSP(c.read8(c.locate8(ins.Src)))
		c.setFlags(false, false, halfCarry, carry)
		c.bus.Tick()
		c.bus.Tick()
		c.SP = sp

	case OpRLCA, OpRRCA, OpRLA, OpRRA:
		c.rotateA(ins.Op)
	case OpDAA:
		c.daa()
	case OpCPL:
		c.A = 0xFF ^ c.A
		c.setFlag(FlagSubtract)
		c.setFlag(FlagHalfCarry)
	case OpSCF:
		c.setFlags(c.isFlagSet(FlagZero), false, false, true)
	case OpCCF:
		c.setFlags(c.isFlagSet(FlagZero), false, false, !c.isFlagSet(FlagCarry))

	case OpJP:
		target := c.read16(c.locate16(ins.Src))
		if ins.Src.Mode == ModeReg16 { // JP HL
			c.PC = target
			return
		}
		if c.check(ins.Cond) {
			c.bus.Tick()
			c.PC = target
		}
	case OpJR:
		offset := int8(c.read8(c.locate8(ins.Src)))
		if c.check(ins.Cond) {
			c.bus.Tick()
			c.PC = uint16(int32(c.PC) + int32(offset))
		}
	case OpCALL:
		target := c.read16(c.locate16(ins.Src))
		if c.check(ins.Cond) {
			c.bus.Tick()
			c.push(c.PC)
			c.PC = target
		}
	case OpRET:
		if ins.Cond != Always {
			c.bus.Tick()
		}
		if c.check(ins.Cond) {
			pc := c.pop()
			c.bus.Tick()
			c.PC = pc
		}
	case OpRETI:
		pc := c.pop()
		c.bus.Tick()
		c.PC = pc
		c.ime = IMEEnabled
	case OpRST:
		c.bus.Tick()
		c.push(c.PC)
		c.PC = uint16(ins.N)

	case OpHALT:
		c.halted = true
	case OpSTOP:
		// STOP is followed by a byte which is ignored
		c.fetch()
		c.halted = true
	case OpDI:
		c.ime = IMEDisabled
	case OpEI:
		if c.ime == IMEDisabled {
			c.ime = IMEEnabling
		}
	case OpPREFIX:
		c.opcode = c.fetch()
		c.execute(InstructionSetCB[c.opcode])

	case OpRLC, OpRRC, OpRL, OpRR, OpSLA, OpSRA, OpSWAP, OpSRL:
		dst := c.locate8(ins.Dst)
		c.write8(dst, c.rotate(ins.Op, c.read8(dst)))
	case OpBIT:
		value := c.read8(c.locate8(ins.Dst))
		c.setFlags(value&(1<<ins.N) == 0, false, true, c.isFlagSet(FlagCarry))
	case OpRES:
		dst := c.locate8(ins.Dst)
		c.write8(dst, c.read8(dst)&^(1<<ins.N))
	case OpSET:
		dst := c.locate8(ins.Dst)
		c.write8(dst, c.read8(dst)|1<<ins.N)

	default:
		c.illegal("undefined opcode")
	}
}
