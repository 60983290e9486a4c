package sim

import "maps"

// Default data window: 32 words at 0x0001_0000.
const (
	MemBase  = 0x00010000
	MemWords = 32
)

// Memory is word-granular storage keyed by 8-hex-digit lowercase addresses.
// Addresses outside the preallocated window read as zero until stored to.
type Memory struct {
	words map[string]string
}

// NewMemory returns the default window with every word zeroed.
func NewMemory() *Memory {
	m := &Memory{words: make(map[string]string, MemWords)}
	for i := int64(0); i < MemWords; i++ {
		m.words[AddrKey(MemBase+4*i)] = Zero
	}
	return m
}

// Load returns the word at addr, or Zero for an unmapped address.
func (m *Memory) Load(addr string) string {
	if v, ok := m.words[addr]; ok {
		return v
	}
	return Zero
}

// Store writes v at addr, creating the entry if needed.
func (m *Memory) Store(addr, v string) {
	m.words[addr] = v
}

// Mapped reports whether addr has an entry.
func (m *Memory) Mapped(addr string) bool {
	_, ok := m.words[addr]
	return ok
}

// Len returns the number of mapped words.
func (m *Memory) Len() int { return len(m.words) }

// Clone returns an independent copy.
func (m *Memory) Clone() *Memory {
	return &Memory{words: maps.Clone(m.words)}
}
