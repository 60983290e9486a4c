package sim

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSignExtend(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{in: "0101", want: strings.Repeat("0", 28) + "0101"},
		{in: "1010", want: "1010" + strings.Repeat("1", 28)},
		{in: "011111111111", want: strings.Repeat("0", 20) + "011111111111"},
		{in: "100000000000", want: "100000000000" + strings.Repeat("1", 20)},
		{in: Zero, want: Zero},
		{in: strings.Repeat("1", 32), want: strings.Repeat("1", 32)},
	}
	for _, tt := range cases {
		got := SignExtend(tt.in)
		require.Equal(t, tt.want, got, "SignExtend(%q)", tt.in)
		require.Len(t, got, WordBits)
		require.Equal(t, got, SignExtend(got), "not idempotent for %q", tt.in)
	}
}

func TestToBinary32(t *testing.T) {
	require.Equal(t, Zero, ToBinary32(0))
	require.Equal(t, "00000000000000000000000000001100", ToBinary32(12))
	require.Equal(t, strings.Repeat("1", 32), ToBinary32(-1))
	require.Equal(t, ToBinary32(5), ToBinary32(1<<32+5))
	require.Equal(t, "1"+strings.Repeat("0", 31), ToBinary32(math.MinInt32))
}

func TestBinaryRoundTrip(t *testing.T) {
	for _, n := range []int64{0, 1, 12, 0x7FFFFFFF, 0x80000000, 0xFFFFFFFF, 1 << 32, 1<<33 + 7, -1, -4096, math.MinInt64} {
		require.Equal(t, int64(uint32(n)), ToInteger(ToBinary32(n)), "n=%d", n)
	}
}

func TestToInteger(t *testing.T) {
	require.Equal(t, int64(5), ToInteger("00101"))
	require.Equal(t, int64(0xFFFFFFFF), ToInteger(strings.Repeat("1", 32)))
	require.Equal(t, int64(0), ToInteger(""))
}

func TestAddrKey(t *testing.T) {
	require.Equal(t, "00010004", AddrKey(MemBase+4))
	require.Equal(t, "fffffffc", AddrKey(-4))
	require.Equal(t, "00000000", AddrKey(1<<32))
}

func TestFieldsAndImmediates(t *testing.T) {
	add := encR(opR, 1, 0, 2, 3, 0)
	require.Equal(t, OpR, opcode(add))
	require.Equal(t, "00001", rd(add))
	require.Equal(t, "00010", rs1(add))
	require.Equal(t, "00011", rs2(add))
	require.Equal(t, "000", funct3(add))
	require.Equal(t, "0000000", funct7(add))

	require.Equal(t, int64(2047), immI(encI(opImm, 1, 0, 0, 2047)))
	require.Equal(t, int64(0x7FC), immS(encS(opStore, 2, 1, 2, 0x7FC)))
	require.Equal(t, int64(8), immB(encB(opBranch, 0, 1, 2, 8)))
	require.Equal(t, int64(0xFFE), immB(encB(opBranch, 0, 1, 2, 0xFFE)))
	require.Equal(t, int64(12), immJ(encJ(opJAL, 1, 12)))
	require.Equal(t, int64(0xFFFFE), immJ(encJ(opJAL, 1, 0xFFFFE)))
	require.Equal(t, int64(0x12345), immU(encU(opLUI, 1, 0x12345)))

	// Negative offsets keep the standard bit layout, then take the
	// append-ones extension.
	require.Equal(t, ToInteger("1111111111100"+strings.Repeat("1", 19)), immB(encB(opBranch, 0, 1, 2, -4)))
	require.Equal(t, ToInteger("111111111111111111100"+strings.Repeat("1", 11)), immJ(encJ(opJAL, 1, -4)))
}

func TestFamilyOf(t *testing.T) {
	cases := map[string]Family{
		OpR:       FamilyR,
		OpLoad:    FamilyI,
		OpImm:     FamilyI,
		OpJALR:    FamilyI,
		OpStore:   FamilyS,
		OpBranch:  FamilyB,
		OpLUI:     FamilyU,
		OpAUIPC:   FamilyU,
		OpJAL:     FamilyJ,
		"0001111": FamilyNone,
		"1110011": FamilyNone,
	}
	for op, want := range cases {
		require.Equal(t, want, FamilyOf(op), "opcode %s", op)
	}
	require.Equal(t, "B", FamilyB.String())
	require.Equal(t, "none", FamilyNone.String())
}

func TestRegFile(t *testing.T) {
	r := NewRegFile()
	require.Equal(t, "00000", RegID(0))
	require.Equal(t, "11111", RegID(31))

	r.Set("00101", ToBinary32(7))
	require.Equal(t, ToBinary32(7), r.Reg(5))
	require.Equal(t, ToBinary32(7), r.Get("00101"))

	c := r.Clone()
	c.SetReg(5, Zero)
	c.Program = ToBinary32(4)
	require.Equal(t, ToBinary32(7), r.Reg(5))
	require.Equal(t, Zero, r.Program)

	snap := r.Snapshot()
	require.True(t, strings.HasPrefix(snap, "program="+Zero+" 00000:"+Zero+" "))
	require.Contains(t, snap, " 00101:"+ToBinary32(7)+" ")
	require.True(t, strings.HasSuffix(snap, " 11111:"+Zero))
}

func TestMemory(t *testing.T) {
	m := NewMemory()
	require.Equal(t, MemWords, m.Len())
	require.True(t, m.Mapped("00010000"))
	require.True(t, m.Mapped("0001007c"))
	require.False(t, m.Mapped("00010080"))
	require.Equal(t, Zero, m.Load("deadbeef"))

	c := m.Clone()
	c.Store("00010000", ToBinary32(1))
	require.Equal(t, Zero, m.Load("00010000"))
	require.Equal(t, ToBinary32(1), c.Load("00010000"))
}
