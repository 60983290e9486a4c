package sim

import "maps"

// Halt is beq x0, x0, 0: a branch to itself, treated as "stop".
const Halt = "00000000000000000000000001100011"

// Instruction window: 64 words from PC 0. DefaultMaxPC is the last word.
const (
	ProgramWords = 64
	DefaultMaxPC = 4 * (ProgramWords - 1)
)

// Program is the instruction table, keyed by word-aligned PC.
// Execution never modifies it.
type Program struct {
	words map[uint64]string
}

// NewProgram places words at PC 0, 4, 8, ...
func NewProgram(words ...string) *Program {
	p := &Program{words: make(map[uint64]string, len(words))}
	for i, w := range words {
		p.words[uint64(4*i)] = w
	}
	return p
}

// ProgramAt builds a table from explicit PC -> word pairs.
func ProgramAt(words map[uint64]string) *Program {
	return &Program{words: maps.Clone(words)}
}

// Fetch returns the word at pc.
func (p *Program) Fetch(pc uint64) (string, bool) {
	w, ok := p.words[pc]
	return w, ok
}

// Len returns the number of instructions in the table.
func (p *Program) Len() int { return len(p.words) }
