package cpu

import (
	"fmt"
	"strings"
)

// Op is the operation performed by an Instruction.
type Op uint8

const (
	OpIllegal Op = iota
	OpNOP
	OpLD
	OpLD16
	OpPUSH
	OpPOP

	// 8-bit ALU
	OpADD
	OpADC
	OpSUB
	OpSBC
	OpAND
	OpXOR
	OpOR
	OpCP
	OpINC
	OpDEC

	// 16-bit ALU
	OpINC16
	OpDEC16
	OpADDHL
	OpADDSP

	// accumulator rotates & misc
	OpRLCA
	OpRRCA
	OpRLA
	OpRRA
	OpDAA
	OpCPL
	OpSCF
	OpCCF

	// control flow
	OpJP
	OpJR
	OpCALL
	OpRET
	OpRETI
	OpRST

	// CPU control
	OpHALT
	OpSTOP
	OpDI
	OpEI
	OpPREFIX

	// CB prefixed
	OpRLC
	OpRRC
	OpRL
	OpRR
	OpSLA
	OpSRA
	OpSWAP
	OpSRL
	OpBIT
	OpRES
	OpSET
)

var opNames = [...]string{
	OpIllegal: "ILLEGAL", OpNOP: "NOP", OpLD: "LD", OpLD16: "LD", OpPUSH: "PUSH", OpPOP: "POP",
	OpADD: "ADD", OpADC: "ADC", OpSUB: "SUB", OpSBC: "SBC", OpAND: "AND", OpXOR: "XOR",
	OpOR: "OR", OpCP: "CP", OpINC: "INC", OpDEC: "DEC",
	OpINC16: "INC", OpDEC16: "DEC", OpADDHL: "ADD", OpADDSP: "ADD",
	OpRLCA: "RLCA", OpRRCA: "RRCA", OpRLA: "RLA", OpRRA: "RRA",
	OpDAA: "DAA", OpCPL: "CPL", OpSCF: "SCF", OpCCF: "CCF",
	OpJP: "JP", OpJR: "JR", OpCALL: "CALL", OpRET: "RET", OpRETI: "RETI", OpRST: "RST",
	OpHALT: "HALT", OpSTOP: "STOP", OpDI: "DI", OpEI: "EI", OpPREFIX: "PREFIX CB",
	OpRLC: "RLC", OpRRC: "RRC", OpRL: "RL", OpRR: "RR", OpSLA: "SLA", OpSRA: "SRA",
	OpSWAP: "SWAP", OpSRL: "SRL", OpBIT: "BIT", OpRES: "RES", OpSET: "SET",
}

func (op Op) String() string {
	if int(op) < len(opNames) {
		return opNames[op]
	}
	return fmt.Sprintf("Op(%d)", uint8(op))
}

// Instruction is a decoded opcode. Instructions are plain data; the
// CPU resolves the operands when executing them.
type Instruction struct {
	Op       Op
	Dst, Src Operand
	Cond     Condition
	// N is the bit index of BIT, RES and SET, or the target of RST.
	N uint8
}

// String returns the mnemonic of the instruction, e.g. "LD A, (HL+)".
func (i Instruction) String() string {
	var args []string
	switch i.Op {
	case OpBIT, OpRES, OpSET:
		args = append(args, fmt.Sprint(i.N))
	case OpRST:
		args = append(args, fmt.Sprintf("%02XH", i.N))
	}
	if i.Cond != Always {
		args = append(args, i.Cond.String())
	}
	if i.Dst.Mode != ModeNone {
		args = append(args, i.Dst.String())
	}
	if i.Src.Mode != ModeNone {
		args = append(args, i.Src.String())
	}
	if len(args) == 0 {
		return i.Op.String()
	}
	return i.Op.String() + " " + strings.Join(args, ", ")
}

var (
	// InstructionSet holds the decoded primary opcodes.
	InstructionSet [256]Instruction
	// InstructionSetCB holds the decoded opcodes following the 0xCB prefix.
	InstructionSetCB [256]Instruction
)

func init() {
	for i := 0; i < 256; i++ {
		InstructionSet[i] = decode(uint8(i))
		InstructionSetCB[i] = decodeCB(uint8(i))
	}
}

// Decode returns the instruction for a primary opcode, or an
// IllegalOperationError if the opcode is undefined.
func Decode(opcode uint8) (Instruction, error) {
	ins := InstructionSet[opcode]
	if ins.Op == OpIllegal {
		return ins, &IllegalOperationError{Opcode: opcode, Reason: "undefined opcode"}
	}
	return ins, nil
}

// DecodeCB returns the instruction for a CB prefixed opcode. Every
// CB prefixed opcode is defined.
func DecodeCB(opcode uint8) Instruction {
	return InstructionSetCB[opcode]
}
