package sim

import (
	"fmt"
	"strconv"
	"strings"
)

// WordBits is the width of registers, memory words and instruction words.
const WordBits = 32

// Zero is the all-zero word.
var Zero = strings.Repeat("0", WordBits)

// SignExtend widens a binary digit string to 32 digits.
//
// A leading 0 is extended on the left. A leading 1 is extended by appending
// ones on the right, so negative immediates come out shifted rather than
// two's-complement extended. Callers depend on that exact result.
func SignExtend(bits string) string {
	n := WordBits - len(bits)
	if n <= 0 {
		return bits
	}
	if len(bits) > 0 && bits[0] == '1' {
		return bits + strings.Repeat("1", n)
	}
	return strings.Repeat("0", n) + bits
}

// ToBinary32 renders n modulo 2^32 as 32 binary digits.
func ToBinary32(n int64) string {
	return fmt.Sprintf("%032b", uint32(n))
}

// ToInteger parses a binary digit string as an unsigned integer.
// Malformed input yields 0.
func ToInteger(bits string) int64 {
	v, err := strconv.ParseUint(bits, 2, 63)
	if err != nil {
		return 0
	}
	return int64(v)
}

// AddrKey renders n modulo 2^32 as a memory address key.
func AddrKey(n int64) string {
	return fmt.Sprintf("%08x", uint32(n))
}
