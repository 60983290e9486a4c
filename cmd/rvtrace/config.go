package main

import (
	"flag"
	"io"

	"github.com/xyproto/env/v2"

	"rvtrace/sim"
)

type config struct {
	program string
	steps   int
	maxPC   int
	debug   bool
	list    bool
}

// parseConfig reads flags from args. Environment variables supply the
// defaults so a flag always wins.
func parseConfig(args []string, stderr io.Writer) (*config, error) {
	// env caches the environment on first use.
	env.Load()

	cfg := &config{}
	fs := flag.NewFlagSet("rvtrace", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.program, "program", env.Str("RVTRACE_PROGRAM", "halt"), "Built-in program to run (see -list)")
	fs.IntVar(&cfg.steps, "steps", env.Int("RVTRACE_STEPS", 10_000_000), "Max steps (0 = unbounded)")
	fs.IntVar(&cfg.maxPC, "max-pc", env.Int("RVTRACE_MAX_PC", sim.DefaultMaxPC), "Last PC the loop executes")
	fs.BoolVar(&cfg.debug, "debug", env.Bool("RVTRACE_DEBUG"), "Log every step to stderr")
	fs.BoolVar(&cfg.list, "list", false, "List built-in programs and exit")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return cfg, nil
}
