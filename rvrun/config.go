package main

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/apparentlymart/riscv-dispatch/isa"
)

// Config is built once from the command line and then only read.
type Config struct {
	ImageFile string

	// Base is the address the image is loaded at, which is also where
	// execution starts.
	Base uint32

	// Limit is the maximum number of instructions to execute, or zero for
	// no limit.
	Limit int

	Standard isa.Standard
	Dump     bool
	LogLevel log.Level
}

func parseFlags(args []string) (*Config, error) {
	cfg := &Config{}
	fs := flag.NewFlagSet("rvrun", flag.ContinueOnError)
	rawBase := fs.String("base", "0x80000000", "address the image is loaded at")
	fs.IntVar(&cfg.Limit, "limit", 0, "maximum number of instructions to execute, or 0 for no limit")
	rawStd := fs.String("std", "rv32", "standard whose instructions the hart understands")
	fs.BoolVar(&cfg.Dump, "dump", false, "dump the whole register file when the hart stops")
	rawLevel := fs.String("log-level", "info", "logging level")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 1 {
		return nil, fmt.Errorf("usage: rvrun [flags] IMAGE")
	}
	cfg.ImageFile = fs.Arg(0)

	base, err := strconv.ParseUint(*rawBase, 0, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid load address %q", *rawBase)
	}
	if base%4 != 0 {
		return nil, fmt.Errorf("load address %#x is not word aligned", base)
	}
	cfg.Base = uint32(base)

	if cfg.Limit < 0 {
		return nil, fmt.Errorf("the step limit must not be negative")
	}

	cfg.Standard = isa.ParseStandard(*rawStd)
	if cfg.Standard == isa.Invalid || cfg.Standard.Size() != isa.RV32 {
		return nil, fmt.Errorf("unsupported standard %q", strings.ToLower(*rawStd))
	}

	level, err := log.ParseLevel(*rawLevel)
	if err != nil {
		return nil, err
	}
	cfg.LogLevel = level
	return cfg, nil
}
