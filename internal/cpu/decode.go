package cpu

// The opcodes are decoded from their bit fields:
//
//	xx yyy zzz
//	   pp q
//
// x selects the block, y the operation or destination register,
// z the source register or operation group, p a register pair
// and q a variant.

var (
	// register pairs for 16-bit loads and arithmetic
	rp = [4]Pair{PairBC, PairDE, PairHL, PairSP}

	// register pairs for PUSH and POP
	rp2 = [4]Pair{PairBC, PairDE, PairHL, PairAF}

	// indirect loads of A, LD (rr), A and LD A, (rr)
	rpIndirect = [4]Indirect{AtBC, AtDE, AtHLI, AtHLD}

	conditions  = [4]Condition{NZ, Z, NC, CY}
	alu         = [8]Op{OpADD, OpADC, OpSUB, OpSBC, OpAND, OpXOR, OpOR, OpCP}
	rot         = [8]Op{OpRLC, OpRRC, OpRL, OpRR, OpSLA, OpSRA, OpSWAP, OpSRL}
	accumulator = [8]Op{OpRLCA, OpRRCA, OpRLA, OpRRA, OpDAA, OpCPL, OpSCF, OpCCF}
)

// decode decodes a primary opcode. Undefined opcodes decode to
// OpIllegal.
func decode(opcode uint8) Instruction {
	x, y, z := opcode>>6, opcode>>3&7, opcode&7
	p, q := y>>1, y&1
	a := reg8(RegA)

	switch x {
	case 0:
		switch z {
		case 0:
			switch y {
			case 0:
				return Instruction{Op: OpNOP}
			case 1: // LD (a16), SP
				return Instruction{Op: OpLD16, Dst: mem(AtAbs), Src: reg16(PairSP)}
			case 2:
				return Instruction{Op: OpSTOP}
			case 3: // JR r8
				return Instruction{Op: OpJR, Src: imm8()}
			default: // JR cc, r8
				return Instruction{Op: OpJR, Cond: conditions[y-4], Src: imm8()}
			}
		case 1:
			if q == 0 { // LD rr, d16
				return Instruction{Op: OpLD16, Dst: reg16(rp[p]), Src: imm16()}
			}
			// ADD HL, rr
			return Instruction{Op: OpADDHL, Dst: reg16(PairHL), Src: reg16(rp[p])}
		case 2:
			if q == 0 { // LD (rr), A
				return Instruction{Op: OpLD, Dst: mem(rpIndirect[p]), Src: a}
			}
			// LD A, (rr)
			return Instruction{Op: OpLD, Dst: a, Src: mem(rpIndirect[p])}
		case 3:
			if q == 0 {
				return Instruction{Op: OpINC16, Dst: reg16(rp[p])}
			}
			return Instruction{Op: OpDEC16, Dst: reg16(rp[p])}
		case 4:
			return Instruction{Op: OpINC, Dst: operandR(y)}
		case 5:
			return Instruction{Op: OpDEC, Dst: operandR(y)}
		case 6: // LD r, d8
			return Instruction{Op: OpLD, Dst: operandR(y), Src: imm8()}
		case 7:
			return Instruction{Op: accumulator[y]}
		}
	case 1:
		if opcode == 0x76 {
			return Instruction{Op: OpHALT}
		}
		// LD r, r
		return Instruction{Op: OpLD, Dst: operandR(y), Src: operandR(z)}
	case 2: // ALU A, r
		return Instruction{Op: alu[y], Dst: a, Src: operandR(z)}
	case 3:
		switch z {
		case 0:
			switch y {
			case 4: // LDH (a8), A
				return Instruction{Op: OpLD, Dst: mem(AtHighImm), Src: a}
			case 5: // ADD SP, r8
				return Instruction{Op: OpADDSP, Dst: reg16(PairSP), Src: imm8()}
			case 6: // LDH A, (a8)
				return Instruction{Op: OpLD, Dst: a, Src: mem(AtHighImm)}
			case 7: // LD HL, SP+r8
				return Instruction{Op: OpLD16, Dst: reg16(PairHL), Src: spOffset()}
			default: // RET cc
				return Instruction{Op: OpRET, Cond: conditions[y]}
			}
		case 1:
			if q == 0 {
				return Instruction{Op: OpPOP, Dst: reg16(rp2[p])}
			}
			switch p {
			case 0:
				return Instruction{Op: OpRET}
			case 1:
				return Instruction{Op: OpRETI}
			case 2: // JP HL
				return Instruction{Op: OpJP, Src: reg16(PairHL)}
			case 3: // LD SP, HL
				return Instruction{Op: OpLD16, Dst: reg16(PairSP), Src: reg16(PairHL)}
			}
		case 2:
			switch y {
			case 4: // LD (C), A
				return Instruction{Op: OpLD, Dst: mem(AtHighC), Src: a}
			case 5: // LD (a16), A
				return Instruction{Op: OpLD, Dst: mem(AtAbs), Src: a}
			case 6: // LD A, (C)
				return Instruction{Op: OpLD, Dst: a, Src: mem(AtHighC)}
			case 7: // LD A, (a16)
				return Instruction{Op: OpLD, Dst: a, Src: mem(AtAbs)}
			default: // JP cc, a16
				return Instruction{Op: OpJP, Cond: conditions[y], Src: imm16()}
			}
		case 3:
			switch y {
			case 0:
				return Instruction{Op: OpJP, Src: imm16()}
			case 1:
				return Instruction{Op: OpPREFIX}
			case 6:
				return Instruction{Op: OpDI}
			case 7:
				return Instruction{Op: OpEI}
			}
		case 4:
			if y < 4 { // CALL cc, a16
				return Instruction{Op: OpCALL, Cond: conditions[y], Src: imm16()}
			}
		case 5:
			if q == 0 {
				return Instruction{Op: OpPUSH, Src: reg16(rp2[p])}
			}
			if p == 0 {
				return Instruction{Op: OpCALL, Src: imm16()}
			}
		case 6: // ALU A, d8
			return Instruction{Op: alu[y], Dst: a, Src: imm8()}
		case 7:
			return Instruction{Op: OpRST, N: y * 8}
		}
	}

	return Instruction{Op: OpIllegal}
}

// decodeCB decodes a CB-prefixed opcode.
//
//	00 000 000
//	^^ ^^^ ^^^
//	op bit dst
func decodeCB(opcode uint8) Instruction {
	y, z := opcode>>3&7, opcode&7
	switch opcode >> 6 {
	case 0:
		return Instruction{Op: rot[y], Dst: operandR(z)}
	case 1:
		return Instruction{Op: OpBIT, N: y, Dst: operandR(z)}
	case 2:
		return Instruction{Op: OpRES, N: y, Dst: operandR(z)}
	}
	return Instruction{Op: OpSET, N: y, Dst: operandR(z)}
}
