package sim

import "strings"

// NumRegs is the number of general-purpose registers.
const NumRegs = 32

// RegFile holds x0..x31 and the program slot, all as 32-digit words.
// No register is hard-wired; x0 is written like any other.
type RegFile struct {
	Program string
	x       [NumRegs]string
}

// NewRegFile returns a register file with every slot zeroed.
func NewRegFile() *RegFile {
	r := &RegFile{Program: Zero}
	for i := range r.x {
		r.x[i] = Zero
	}
	return r
}

// RegID renders register number n as a 5-digit identifier.
func RegID(n int) string {
	return ToBinary32(int64(n))[WordBits-5:]
}

// Get returns the value of the register with 5-digit identifier id.
func (r *RegFile) Get(id string) string { return r.x[ToInteger(id)%NumRegs] }

// Set stores v in the register with 5-digit identifier id.
func (r *RegFile) Set(id, v string) { r.x[ToInteger(id)%NumRegs] = v }

// Reg returns the value of register n.
func (r *RegFile) Reg(n int) string { return r.x[n] }

// SetReg stores v in register n.
func (r *RegFile) SetReg(n int, v string) { r.x[n] = v }

// Clone returns an independent copy.
func (r *RegFile) Clone() *RegFile {
	c := *r
	return &c
}

// Snapshot serializes the program slot followed by x0..x31 in identifier
// order, e.g. "program=0…0 00000:0…0 00001:0…0 …".
func (r *RegFile) Snapshot() string {
	var b strings.Builder
	b.Grow((NumRegs + 1) * (WordBits + 8))
	b.WriteString("program=")
	b.WriteString(r.Program)
	for i, v := range r.x {
		b.WriteByte(' ')
		b.WriteString(RegID(i))
		b.WriteByte(':')
		b.WriteString(v)
	}
	return b.String()
}
