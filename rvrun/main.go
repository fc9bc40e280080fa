// Command rvrun executes a flat little-endian RV32 image on a single hart
// and prints the registers it leaves behind.
//
// There is no memory or control transfer: the hart runs straight through
// the image, one word after another, until it reaches the end, hits the
// step limit or meets a word that no instruction matches.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/davecgh/go-spew/spew"
	log "github.com/sirupsen/logrus"

	"github.com/apparentlymart/riscv-dispatch/defs"
	"github.com/apparentlymart/riscv-dispatch/dispatch"
	"github.com/apparentlymart/riscv-dispatch/hart"
	"github.com/apparentlymart/riscv-dispatch/isa"
	"github.com/apparentlymart/riscv-dispatch/rv32"
)

func main() {
	cfg, err := parseFlags(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		log.Fatal(err)
	}
	log.SetLevel(cfg.LogLevel)

	if err := run(cfg, os.Stdout, log.StandardLogger()); err != nil {
		log.Fatal(err)
	}
}

func run(cfg *Config, stdout io.Writer, logger log.FieldLogger) error {
	image, err := os.ReadFile(cfg.ImageFile)
	if err != nil {
		return fmt.Errorf("failed to load image: %w", err)
	}

	table, err := loadTable(cfg.Standard)
	if err != nil {
		return err
	}

	h := hart.New(0, table, logger)
	h.Reset(cfg.Base)
	n, runErr := h.Run(image, cfg.Base, cfg.Limit)
	logger.WithFields(log.Fields{
		"steps": n,
		"pc":    fmt.Sprintf("%#08x", h.PC),
	}).Info("Hart stopped")

	if cfg.Dump {
		spew.Fdump(stdout, h.Regs)
	} else if err := printRegisters(stdout, h); err != nil {
		return err
	}

	var illegal *hart.IllegalInstructionError
	if errors.As(runErr, &illegal) {
		return fmt.Errorf("stopped at %#08x: %w", illegal.PC, runErr)
	}
	return runErr
}

// loadTable returns the generated table for the whole RV32 set, and builds
// one from the built-in definitions for a narrower standard.
func loadTable(std isa.Standard) (*dispatch.Table, error) {
	if std == isa.RV32Any {
		return rv32.Table, nil
	}
	table, err := dispatch.Build(defs.Base().Select(std))
	if err != nil {
		return nil, fmt.Errorf("failed to build the dispatch table: %w", err)
	}
	return table, nil
}

// printRegisters writes pc and every non-zero register, one per line.
func printRegisters(w io.Writer, h *hart.Hart) error {
	if _, err := fmt.Fprintf(w, "pc       0x%08x\n", h.PC); err != nil {
		return err
	}
	for r := isa.Reg(1); r < isa.NumRegs; r++ {
		v := h.Regs.Read(r)
		if v == 0 {
			continue
		}
		if _, err := fmt.Fprintf(w, "x%-2d %-4s 0x%08x\n", int(r), r, v); err != nil {
			return err
		}
	}
	return nil
}
