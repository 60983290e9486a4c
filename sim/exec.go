package sim

// Executors apply one instruction to the register file (and memory for
// I and S) and return the next PC. Operands are the unsigned values of
// the register words. Encodings a family does not recognize fall through
// to pc+4 without touching state.

const (
	one    = "00000000000000000000000000000001"
	f7Base = "0000000"
	f7Alt  = "0100000"
)

func execR(inst string, pc uint64, regs *RegFile) uint64 {
	a := ToInteger(regs.Get(rs1(inst)))
	bw := regs.Get(rs2(inst))
	b := ToInteger(bw)
	f3, f7 := funct3(inst), funct7(inst)

	var v string
	switch {
	case f3 == "000" && f7 == f7Base: // ADD
		v = ToBinary32(a + b)
	case f3 == "000" && f7 == f7Alt: // SUB
		v = ToBinary32(a - b)
	case (f3 == "010" || f3 == "011") && f7 == f7Base: // SLT, SLTU
		v = Zero
		if a < b {
			v = one
		}
	case f3 == "100" && f7 == f7Base: // XOR
		v = ToBinary32(a ^ b)
	case f3 == "001" && f7 == f7Base: // SLL
		v = ToBinary32(a << ToInteger(bw[WordBits-5:]))
	case f3 == "101" && f7 == f7Base: // SRL
		v = ToBinary32(a >> ToInteger(bw[WordBits-5:]))
	case f3 == "110" && f7 == f7Base: // OR
		v = ToBinary32(a | b)
	case f3 == "111" && f7 == f7Base: // AND
		v = ToBinary32(a & b)
	default:
		return pc + 4
	}
	regs.Set(rd(inst), v)
	return pc + 4
}

func execI(inst string, pc uint64, regs *RegFile, mem *Memory) uint64 {
	imm := immI(inst)
	f3, op := funct3(inst), opcode(inst)

	switch {
	case f3 == "010" && op == OpLoad: // LW
		addr := AddrKey(ToInteger(regs.Get(rs1(inst))) + imm)
		regs.Set(rd(inst), mem.Load(addr))
	case f3 == "000" && op == OpImm: // ADDI
		regs.Set(rd(inst), ToBinary32(ToInteger(regs.Get(rs1(inst)))+imm))
	case f3 == "000" && op == OpJALR:
		// rd is written before rs1 is read.
		regs.Set(rd(inst), ToBinary32(int64(pc)+4))
		return uint64(ToInteger(regs.Get(rs1(inst))) + imm)
	}
	return pc + 4
}

func execS(inst string, pc uint64, regs *RegFile, mem *Memory) uint64 {
	addr := AddrKey(ToInteger(regs.Get(rs1(inst))) + immS(inst))
	mem.Store(addr, regs.Get(rs2(inst)))
	return pc + 4
}

func execB(inst string, pc uint64, regs *RegFile) uint64 {
	a := ToInteger(regs.Get(rs1(inst)))
	b := ToInteger(regs.Get(rs2(inst)))

	var taken bool
	switch funct3(inst) {
	case "000": // BEQ
		taken = a == b
	case "001": // BNE
		taken = a != b
	case "100": // BLT
		taken = a < b
	case "101": // BGE
		taken = a >= b
	}
	if taken {
		return pc + uint64(immB(inst))
	}
	return pc + 4
}

// execU serves LUI and AUIPC alike.
func execU(inst string, pc uint64, regs *RegFile) uint64 {
	regs.Set(rd(inst), ToBinary32(immU(inst)))
	return pc + 4
}

func execJ(inst string, pc uint64, regs *RegFile) uint64 {
	regs.Set(rd(inst), ToBinary32(int64(pc)+4))
	return pc + uint64(immJ(inst))
}
