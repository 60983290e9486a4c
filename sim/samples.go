package sim

import (
	"maps"
	"slices"
)

// Sample is a built-in program with a short description.
type Sample struct {
	Name  string
	About string
	Words []string
}

// Program returns a fresh instruction table for the sample.
func (s Sample) Program() *Program { return NewProgram(s.Words...) }

// Samples are the built-in programs, keyed by name.
var Samples = map[string]Sample{
	"halt": {
		Name:  "halt",
		About: "six halt sentinels; produces no trace",
		Words: slices.Repeat([]string{Halt}, 6),
	},
	"sum": {
		Name:  "sum",
		About: "add two registers, store the sum and load it back",
		Words: []string{
			"00000000010100000000000100010011", // addi x2, x0, 5
			"00000000011100000000000110010011", // addi x3, x0, 7
			"00000000001100010000000010110011", // add  x1, x2, x3
			"00010000000000000000001010110111", // lui  x5, 0x10000 (x5 = 0x00010000)
			"00000000000100101010001000100011", // sw   x1, 4(x5)
			"00000000010000101010001000000011", // lw   x4, 4(x5)
			Halt,
		},
	},
	"jump": {
		Name:  "jump",
		About: "jal, bne and jalr control flow",
		Words: []string{
			"00000000110000000000000011101111", // jal  x1, 12
			"00000110001100000000001100010011", // addi x6, x0, 99 (skipped)
			Halt,
			"00000000011100000000001100010011", // addi x6, x0, 7
			"00000000000000110001010001100011", // bne  x6, x0, 8
			"00000000000100000000001100010011", // addi x6, x0, 1 (skipped)
			"00000000010000001000001111100111", // jalr x7, x1, 4
		},
	},
}

// SampleNames returns the sample names in sorted order.
func SampleNames() []string {
	return slices.Sorted(maps.Keys(Samples))
}
