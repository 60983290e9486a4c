package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"golang.org/x/term"

	"rvtrace/sim"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := parseConfig(args, stderr)
	if err != nil {
		return 2
	}

	log := newLogger(stderr, cfg.debug)

	if cfg.list {
		for _, name := range sim.SampleNames() {
			s := sim.Samples[name]
			fmt.Fprintf(stdout, "%-6s %2d words  %s\n", name, s.Program().Len(), s.About)
		}
		return 0
	}

	sample, ok := sim.Samples[cfg.program]
	if !ok {
		fmt.Fprintf(stderr, "unknown program %q. Use -list.\n", cfg.program)
		return 2
	}
	if cfg.maxPC < 0 {
		fmt.Fprintln(stderr, "-max-pc must not be negative")
		return 2
	}

	// Build the machine
	cpu := sim.NewCPU(sim.NewRegFile(), sim.NewMemory(), sample.Program())
	cpu.MaxPC = uint64(cfg.maxPC)
	cpu.Log = log.WithField("program", sample.Name)

	// Run
	runErr := cpu.Run(cfg.steps)
	if _, err := cpu.Trace.WriteTo(stdout); err != nil {
		log.WithError(err).Error("write trace")
		return 1
	}
	if runErr != nil {
		log.WithError(runErr).Error("run failed")
		return 1
	}
	log.WithField("steps", cpu.Steps()).Debug("done")
	return 0
}

func newLogger(w io.Writer, debug bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	color := false
	if f, ok := w.(*os.File); ok {
		color = term.IsTerminal(int(f.Fd()))
	}
	log.SetFormatter(&logrus.TextFormatter{
		ForceColors:   color,
		DisableColors: !color,
	})
	if debug {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.WarnLevel)
	}
	return log
}
