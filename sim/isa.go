package sim

// Instruction words are 32 binary digits, most significant bit first:
// digit 0 is bit 31 and digit 31 is bit 0.

// Field returns the digits for bit positions hi..lo (inclusive) of inst.
func Field(inst string, hi, lo int) string {
	return inst[WordBits-1-hi : WordBits-lo]
}

func opcode(inst string) string { return Field(inst, 6, 0) }
func rd(inst string) string     { return Field(inst, 11, 7) }
func funct3(inst string) string { return Field(inst, 14, 12) }
func rs1(inst string) string    { return Field(inst, 19, 15) }
func rs2(inst string) string    { return Field(inst, 24, 20) }
func funct7(inst string) string { return Field(inst, 31, 25) }

func immI(inst string) int64 { return ToInteger(SignExtend(Field(inst, 31, 20))) }

func immS(inst string) int64 {
	return ToInteger(SignExtend(Field(inst, 31, 25) + Field(inst, 11, 7)))
}

func immB(inst string) int64 {
	// [12|11|10:5|4:1|0]
	return ToInteger(SignExtend(Field(inst, 31, 31) +
		Field(inst, 7, 7) +
		Field(inst, 30, 25) +
		Field(inst, 11, 8) +
		"0"))
}

func immU(inst string) int64 { return ToInteger(SignExtend(Field(inst, 31, 12))) }

func immJ(inst string) int64 {
	// [20|19:12|11|10:1|0]
	return ToInteger(SignExtend(Field(inst, 31, 31) +
		Field(inst, 19, 12) +
		Field(inst, 20, 20) +
		Field(inst, 30, 21) +
		"0"))
}

// Opcodes.
const (
	OpR      = "0110011"
	OpLoad   = "0000011"
	OpImm    = "0010011"
	OpJALR   = "1100111"
	OpStore  = "0100011"
	OpBranch = "1100011"
	OpLUI    = "0110111"
	OpAUIPC  = "0010111"
	OpJAL    = "1101111"
)

// Family is an instruction encoding family.
type Family uint8

const (
	FamilyNone Family = iota
	FamilyR
	FamilyI
	FamilyS
	FamilyB
	FamilyU
	FamilyJ
)

var familyNames = [...]string{
	FamilyNone: "none",
	FamilyR:    "R",
	FamilyI:    "I",
	FamilyS:    "S",
	FamilyB:    "B",
	FamilyU:    "U",
	FamilyJ:    "J",
}

func (f Family) String() string {
	if int(f) < len(familyNames) {
		return familyNames[f]
	}
	return "unknown"
}

// FamilyOf classifies a 7-digit opcode. Unknown opcodes give FamilyNone.
func FamilyOf(op string) Family {
	switch op {
	case OpR:
		return FamilyR
	case OpLoad, OpImm, OpJALR:
		return FamilyI
	case OpStore:
		return FamilyS
	case OpBranch:
		return FamilyB
	case OpLUI, OpAUIPC:
		return FamilyU
	case OpJAL:
		return FamilyJ
	default:
		return FamilyNone
	}
}
