package sim

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

var (
	// ErrNoInstruction is returned when the PC is inside the window but the
	// instruction table has no word there.
	ErrNoInstruction = errors.New("no instruction at pc")
	// ErrStepLimit is returned by Run when the step budget runs out.
	ErrStepLimit = errors.New("step limit reached")
)

// State of the fetch-decode-execute loop.
type State uint8

const (
	Running State = iota
	Halted
)

func (s State) String() string {
	if s == Halted {
		return "halted"
	}
	return "running"
}

// CPU is a single hart over explicitly owned state. Build a fresh one
// (or clone the state) for every run.
type CPU struct {
	Regs  *RegFile
	Mem   *Memory
	Prog  *Program
	Trace *Trace

	PC    uint64
	MaxPC uint64
	Log   logrus.FieldLogger

	state State
	steps int
}

// NewCPU returns a running CPU at PC 0 with an empty trace.
func NewCPU(regs *RegFile, mem *Memory, prog *Program) *CPU {
	return &CPU{
		Regs:  regs,
		Mem:   mem,
		Prog:  prog,
		Trace: NewTrace(),
		MaxPC: DefaultMaxPC,
		Log:   logrus.StandardLogger(),
	}
}

// State reports whether the loop can still step.
func (c *CPU) State() State { return c.state }

// Steps returns the number of instructions executed so far.
func (c *CPU) Steps() int { return c.steps }

func (c *CPU) halt() bool {
	c.state = Halted
	return false
}

// Step executes one instruction and records its trace line. It returns
// false once the CPU has halted: on the halt sentinel, when the PC leaves
// the window, or on a fetch miss (which also returns an error).
func (c *CPU) Step() (bool, error) {
	if c.state == Halted {
		return false, nil
	}
	if c.PC > c.MaxPC {
		c.Log.WithField("pc", c.PC).Info("pc past end of window")
		return c.halt(), nil
	}
	inst, ok := c.Prog.Fetch(c.PC)
	if !ok {
		c.Log.WithField("pc", c.PC).Warn("fetch miss")
		return c.halt(), fmt.Errorf("fetch at %#x: %w", c.PC, ErrNoInstruction)
	}
	if inst == Halt {
		c.Log.WithField("pc", c.PC).Info("halt")
		return c.halt(), nil
	}

	fam := FamilyOf(opcode(inst))
	c.Log.WithFields(logrus.Fields{
		"pc":     c.PC,
		"inst":   inst,
		"family": fam,
	}).Debug("step")

	switch fam {
	case FamilyR:
		c.PC = execR(inst, c.PC, c.Regs)
	case FamilyI:
		c.PC = execI(inst, c.PC, c.Regs, c.Mem)
	case FamilyS:
		c.PC = execS(inst, c.PC, c.Regs, c.Mem)
	case FamilyB:
		c.PC = execB(inst, c.PC, c.Regs)
	case FamilyU:
		c.PC = execU(inst, c.PC, c.Regs)
	case FamilyJ:
		c.PC = execJ(inst, c.PC, c.Regs)
	default:
		c.Log.WithFields(logrus.Fields{
			"pc":     c.PC,
			"opcode": opcode(inst),
		}).Debug("unsupported opcode")
		c.PC += 4
	}

	c.Regs.Program = ToBinary32(int64(c.PC))
	c.Trace.Record(c.Regs)
	c.steps++
	return true, nil
}

// stopsNext halts the CPU if the next step would stop without executing
// anything: the PC is past the window or the next word is the halt sentinel.
func (c *CPU) stopsNext() bool {
	inst, ok := c.Prog.Fetch(c.PC)
	if c.PC <= c.MaxPC && (!ok || inst != Halt) {
		return false
	}
	c.Step()
	return true
}

// Run steps until the CPU halts. maxSteps bounds the number of executed
// instructions; 0 or less means no bound. A budget that runs out right
// before a halt is not an error.
func (c *CPU) Run(maxSteps int) error {
	for n := 0; maxSteps <= 0 || n < maxSteps; n++ {
		ok, err := c.Step()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}
	if c.state == Running && !c.stopsNext() {
		return fmt.Errorf("after %d steps at pc %#x: %w", maxSteps, c.PC, ErrStepLimit)
	}
	return nil
}
