package sim

import (
	"io"
	"slices"
)

// Trace is the append-only log of register-file snapshots, one per
// executed instruction.
type Trace struct {
	lines []string
}

func NewTrace() *Trace { return &Trace{} }

// Record appends a snapshot of regs.
func (t *Trace) Record(regs *RegFile) {
	t.lines = append(t.lines, regs.Snapshot())
}

// Lines returns a copy of the recorded lines in execution order.
func (t *Trace) Lines() []string { return slices.Clone(t.lines) }

// Len returns the number of recorded lines.
func (t *Trace) Len() int { return len(t.lines) }

// WriteTo writes one line per recorded step.
func (t *Trace) WriteTo(w io.Writer) (int64, error) {
	var n int64
	for _, l := range t.lines {
		k, err := io.WriteString(w, l+"\n")
		n += int64(k)
		if err != nil {
			return n, err
		}
	}
	return n, nil
}
